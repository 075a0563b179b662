package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"roteiro/backend/internal/cache"
	"roteiro/backend/internal/config"
	"roteiro/backend/internal/db"
	"roteiro/backend/internal/handler"
	internalhttp "roteiro/backend/internal/http"
	"roteiro/backend/internal/repository"
	"roteiro/backend/internal/scheduler"
	"roteiro/backend/internal/service"
	"roteiro/backend/internal/service/rag"
	"roteiro/backend/pkg/logger"
	"roteiro/backend/pkg/snowflake"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(0); err != nil {
		logger.Error("snowflake init failed", "error", err)
		os.Exit(1)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Repositories.
	knowledgeRepo := repository.NewKnowledgeRepository(database)
	configRepo := repository.NewEndpointConfigRepository(database)
	statsRepo := repository.NewStatsRepository(database)

	var store repository.RateLimitStore
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Error("redis ping failed", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		store = repository.NewRedisRateLimitStore(client)
		logger.Info("rate limit store: redis", "addr", cfg.RedisAddr)
	} else {
		store = repository.NewRateLimitRepository(database)
		logger.Info("rate limit store: sqlite")
	}

	// Response cache with its pressure supervisor.
	responseCache := cache.New(cache.Options{
		BudgetBytes:       cfg.CacheBudgetBytes,
		HeapPressureBytes: cfg.HeapPressureBytes,
	})
	responseCache.Start()
	defer responseCache.Stop()

	// AI clients. Both are optional; retrieval degrades tier by tier.
	aiLimiter := rag.NewRateLimiter(cfg.AICallsPerMin)
	var embedder rag.EmbeddingClient
	if cfg.OpenAIAPIKey != "" {
		embedder = rag.NewOpenAIEmbeddingClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.EmbeddingModel, aiLimiter)
	}
	var generator rag.AnswerGenerator
	if cfg.AnthropicAPIKey != "" {
		generator = rag.NewAnthropicGenerator(cfg.AnthropicAPIKey, cfg.AnthropicModel, aiLimiter)
	}

	// Knowledge base ingestion at startup.
	knowledgeService := service.NewKnowledgeService(knowledgeRepo, embedder)
	if _, err := os.Stat(cfg.KnowledgeDir); err == nil {
		n, err := knowledgeService.IngestDir(context.Background(), cfg.KnowledgeDir)
		if err != nil {
			logger.Error("knowledge ingestion failed", "error", err)
			os.Exit(1)
		}
		logger.Info("knowledge base loaded", "sections", n)

		if embedder != nil {
			go func() {
				indexed, err := knowledgeService.IndexEmbeddings(context.Background())
				if err != nil {
					logger.Warn("embedding indexing failed", "error", err)
					return
				}
				logger.Info("embedding index ready", "sections", indexed)
			}()
		}
	} else {
		logger.Warn("knowledge dir missing, retrieval limited to existing data", "dir", cfg.KnowledgeDir)
	}

	// Retrieval chain: FTS first, embeddings second.
	retrievers := []rag.Retriever{rag.NewKnowledgeRetriever(knowledgeRepo)}
	if embedder != nil {
		retrievers = append(retrievers, rag.NewEmbeddingRetriever(knowledgeRepo, embedder))
	}
	var ragOpts []rag.Option
	if generator != nil {
		ragOpts = append(ragOpts, rag.WithGenerator(generator))
	}
	orchestrator := rag.NewOrchestrator(retrievers, ragOpts...)

	// Services.
	rateLimitService := service.NewRateLimitService(store, configRepo, statsRepo, cfg.RateLimitFailClosed)
	chatService := service.NewChatService(orchestrator, responseCache, statsRepo)
	authService := service.NewAuthService(cfg.JWTSecret, cfg.AdminPasswordHash)

	// Retention cleanup.
	sched := scheduler.New(rateLimitService, cfg.CleanupInterval, cfg.RetentionDays)
	sched.Start()
	defer sched.Stop()

	e := internalhttp.NewRouter(
		handler.NewChatHandler(chatService),
		handler.NewRateLimitHandler(rateLimitService),
		handler.NewStatsHandler(rateLimitService, chatService, responseCache),
		handler.NewAuthHandler(authService),
		handler.NewHealthHandler(database, responseCache),
		authService,
		rateLimitService,
	)

	go func() {
		logger.Info("server listening", "addr", cfg.Addr)
		if err := e.Start(cfg.Addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
}
