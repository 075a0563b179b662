//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"roteiro/backend/internal/model"
	"roteiro/backend/internal/repository"
	"roteiro/backend/pkg/logger"
)

// Decision is the outcome of one rate-limit check.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	// ResetAt is approximated as now + window rather than oldest record +
	// window; kept as the historical behavior of this limiter.
	ResetAt int64
	// Source names where the effective limit came from: "override",
	// "config", "default", or "error" when storage failed and the
	// fail-open/fail-closed policy decided the outcome.
	Source string
}

// LimitOverride is an explicit per-call limit, bypassing stored configs.
type LimitOverride struct {
	MaxRequests   int
	WindowSeconds int
}

// RateLimitService decides whether a request for (identifier, endpoint) is
// within budget and maintains the per-endpoint configuration and counters.
type RateLimitService interface {
	Check(ctx context.Context, identifier, endpoint string, override *LimitOverride) Decision
	SetEndpointConfig(ctx context.Context, endpoint string, maxRequests, windowSeconds int) error
	GetEndpointConfig(ctx context.Context, endpoint string) (*model.EndpointConfig, error)
	DeleteEndpointConfig(ctx context.Context, endpoint string) error
	ListEndpointConfigs(ctx context.Context) ([]model.EndpointConfig, error)
	// CleanupOlderThan drops request records older than the given number of
	// days, and daily stats rows past the same horizon.
	CleanupOlderThan(ctx context.Context, days int) (int64, error)
	DailyStats(ctx context.Context, limit int) ([]model.DailyStats, error)
}

// Default limits, matched by substring against the endpoint name. First
// match wins; order is most-specific first.
var defaultLimits = []struct {
	substr        string
	maxRequests   int
	windowSeconds int
}{
	{"login", 10, 300},
	{"chat", 30, 60},
	{"feedback", 20, 60},
	{"admin", 60, 60},
}

const (
	defaultMaxRequests   = 100
	defaultWindowSeconds = 60
)

type rateLimitService struct {
	store      repository.RateLimitStore
	configs    repository.EndpointConfigRepository
	stats      repository.StatsRepository
	failClosed bool
	now        func() time.Time
}

// NewRateLimitService creates the rate limiter. When failClosed is false
// (the default deployment policy) storage failures let requests through.
func NewRateLimitService(
	store repository.RateLimitStore,
	configs repository.EndpointConfigRepository,
	stats repository.StatsRepository,
	failClosed bool,
) RateLimitService {
	return &rateLimitService{
		store:      store,
		configs:    configs,
		stats:      stats,
		failClosed: failClosed,
		now:        time.Now,
	}
}

func (s *rateLimitService) Check(ctx context.Context, identifier, endpoint string, override *LimitOverride) Decision {
	maxRequests, windowSeconds, source := s.resolveLimits(ctx, endpoint, override)

	now := s.now().Unix()
	cutoff := now - int64(windowSeconds)

	count, err := s.store.TrimAndCount(ctx, identifier, endpoint, cutoff)
	if err != nil {
		return s.storageFailure(endpoint, err, maxRequests, windowSeconds, now)
	}

	if count >= maxRequests {
		s.bumpDaily(ctx, true)
		return Decision{
			Allowed:   false,
			Limit:     maxRequests,
			Remaining: 0,
			ResetAt:   now + int64(windowSeconds),
			Source:    source,
		}
	}

	err = s.store.Record(ctx, model.RateLimitRecord{
		Identifier:    identifier,
		Endpoint:      endpoint,
		Timestamp:     now,
		WindowSeconds: windowSeconds,
	})
	if err != nil {
		return s.storageFailure(endpoint, err, maxRequests, windowSeconds, now)
	}

	s.bumpDaily(ctx, false)
	return Decision{
		Allowed:   true,
		Limit:     maxRequests,
		Remaining: maxRequests - count - 1,
		ResetAt:   now + int64(windowSeconds),
		Source:    source,
	}
}

// resolveLimits applies precedence: explicit override, stored config,
// substring-matched default, global default. A failing config lookup only
// logs; limit resolution itself never blocks a request.
func (s *rateLimitService) resolveLimits(ctx context.Context, endpoint string, override *LimitOverride) (int, int, string) {
	if override != nil && override.MaxRequests > 0 && override.WindowSeconds > 0 {
		return override.MaxRequests, override.WindowSeconds, "override"
	}

	cfg, err := s.configs.Get(ctx, endpoint)
	if err != nil {
		logger.Warn("endpoint config lookup failed", "endpoint", endpoint, "error", err)
	} else if cfg != nil {
		return cfg.MaxRequests, cfg.WindowSeconds, "config"
	}

	lowered := strings.ToLower(endpoint)
	for _, d := range defaultLimits {
		if strings.Contains(lowered, d.substr) {
			return d.maxRequests, d.windowSeconds, "default"
		}
	}
	return defaultMaxRequests, defaultWindowSeconds, "default"
}

func (s *rateLimitService) storageFailure(endpoint string, err error, maxRequests, windowSeconds int, now int64) Decision {
	logger.Error("rate limiter storage failure", "endpoint", endpoint, "fail_closed", s.failClosed, "error", err)
	return Decision{
		Allowed:   !s.failClosed,
		Limit:     maxRequests,
		Remaining: 0,
		ResetAt:   now + int64(windowSeconds),
		Source:    "error",
	}
}

func (s *rateLimitService) bumpDaily(ctx context.Context, blocked bool) {
	date := s.now().UTC().Format("2006-01-02")
	if err := s.stats.IncrementDaily(ctx, date, blocked); err != nil {
		logger.Warn("daily stats increment failed", "error", err)
	}
}

func (s *rateLimitService) SetEndpointConfig(ctx context.Context, endpoint string, maxRequests, windowSeconds int) error {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" || maxRequests <= 0 || windowSeconds <= 0 {
		return ErrInvalid
	}
	return s.configs.Upsert(ctx, endpoint, maxRequests, windowSeconds)
}

func (s *rateLimitService) GetEndpointConfig(ctx context.Context, endpoint string) (*model.EndpointConfig, error) {
	cfg, err := s.configs.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, ErrNotFound
	}
	return cfg, nil
}

func (s *rateLimitService) DeleteEndpointConfig(ctx context.Context, endpoint string) error {
	err := s.configs.Delete(ctx, endpoint)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *rateLimitService) ListEndpointConfigs(ctx context.Context) ([]model.EndpointConfig, error) {
	return s.configs.List(ctx)
}

func (s *rateLimitService) CleanupOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, ErrInvalid
	}

	cutoff := s.now().Unix() - int64(days)*86400
	removed, err := s.store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	horizon := s.now().UTC().AddDate(0, 0, -days).Format("2006-01-02")
	if _, err := s.stats.PruneDailyBefore(ctx, horizon); err != nil {
		logger.Warn("daily stats prune failed", "error", err)
	}

	return removed, nil
}

func (s *rateLimitService) DailyStats(ctx context.Context, limit int) ([]model.DailyStats, error) {
	if limit <= 0 {
		limit = 30
	}
	return s.stats.ListDaily(ctx, limit)
}
