//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"roteiro/backend/internal/cache"
	"roteiro/backend/internal/hashutil"
	"roteiro/backend/internal/model"
	"roteiro/backend/internal/repository"
	"roteiro/backend/internal/service/rag"
	"roteiro/backend/pkg/logger"
)

const maxQuestionLength = 1000

// RAGQuerier is the retrieval chain consumed by the chat service.
// Implemented by *rag.Orchestrator.
type RAGQuerier interface {
	Query(ctx context.Context, question string, persona model.Persona, maxResults int) rag.Result
}

// ChatService answers persona-voiced questions about the dispensing
// guideline.
type ChatService interface {
	Ask(ctx context.Context, question, personaID string) (model.ChatAnswer, error)
	PersonaStats(ctx context.Context) ([]model.PersonaStats, error)
}

type chatService struct {
	querier RAGQuerier
	cache   *cache.Cache // may be nil
	stats   repository.StatsRepository
}

// NewChatService creates the chat service. The cache is optional.
func NewChatService(querier RAGQuerier, responseCache *cache.Cache, stats repository.StatsRepository) ChatService {
	return &chatService{querier: querier, cache: responseCache, stats: stats}
}

func (s *chatService) Ask(ctx context.Context, question, personaID string) (model.ChatAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" || len(question) > maxQuestionLength {
		return model.ChatAnswer{}, ErrInvalid
	}

	persona, ok := PersonaByID(personaID)
	if !ok {
		return model.ChatAnswer{}, ErrNotFound
	}

	cacheKey := answerCacheKey(persona.ID, question)
	if cached, ok := s.cachedAnswer(cacheKey); ok {
		cached.Cached = true
		cached.RequestID = uuid.NewString()
		s.bumpPersona(ctx, persona.ID, false)
		return cached, nil
	}

	result := s.querier.Query(ctx, question, persona, 0)

	answer := model.ChatAnswer{
		RequestID:  uuid.NewString(),
		PersonaID:  persona.ID,
		Answer:     result.Answer,
		Confidence: result.Confidence,
		Source:     result.Tier,
		Sources:    result.Sources,
		Success:    result.Success,
	}

	s.bumpPersona(ctx, persona.ID, !result.Success)

	if result.Success {
		s.storeAnswer(cacheKey, answer)
	}
	return answer, nil
}

func (s *chatService) PersonaStats(ctx context.Context) ([]model.PersonaStats, error) {
	return s.stats.ListPersona(ctx)
}

func answerCacheKey(personaID, question string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(question), " "))
	return personaID + ":" + hashutil.ShortKey(normalized)
}

func (s *chatService) cachedAnswer(key string) (model.ChatAnswer, bool) {
	if s.cache == nil {
		return model.ChatAnswer{}, false
	}
	raw, ok := s.cache.Get(cache.CategoryAPI, key)
	if !ok {
		return model.ChatAnswer{}, false
	}

	var answer model.ChatAnswer
	if err := json.Unmarshal([]byte(raw), &answer); err != nil {
		logger.Warn("corrupt cached answer dropped", "key", key, "error", err)
		s.cache.Delete(cache.CategoryAPI, key)
		return model.ChatAnswer{}, false
	}
	return answer, true
}

func (s *chatService) storeAnswer(key string, answer model.ChatAnswer) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(answer)
	if err != nil {
		return
	}
	s.cache.Set(cache.CategoryAPI, key, string(raw))
}

func (s *chatService) bumpPersona(ctx context.Context, personaID string, fallback bool) {
	if err := s.stats.IncrementPersona(ctx, personaID, fallback); err != nil {
		logger.Warn("persona stats increment failed", "persona", personaID, "error", err)
	}
}
