package rag

import (
	"context"
	"strings"
	"time"

	"roteiro/backend/internal/model"
	"roteiro/backend/pkg/logger"
)

const (
	// TierFallback marks answers synthesized from the persona script.
	TierFallback = "fallback"

	defaultTierTimeout = 10 * time.Second
	defaultMaxResults  = 3

	baseConfidence     = 0.5
	criticalBonus      = 0.3
	perSourceBonus     = 0.1
	maxSourceBonus     = 0.3
	fallbackConfidence = 0.1
)

// Orchestrator walks a prioritized retriever chain and assembles the final
// answer. Every tier call is independently guarded: an error or an
// empty/generic result moves on to the next tier instead of aborting.
type Orchestrator struct {
	retrievers  []Retriever
	generator   AnswerGenerator // may be nil
	tierTimeout time.Duration
}

// Option configures the orchestrator.
type Option func(*Orchestrator)

// WithGenerator attaches an answer generator for persona-voiced replies.
func WithGenerator(g AnswerGenerator) Option {
	return func(o *Orchestrator) { o.generator = g }
}

// WithTierTimeout bounds each tier call so a slow backend cannot stall the
// whole chain.
func WithTierTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.tierTimeout = d
		}
	}
}

// NewOrchestrator creates the chain; retrievers are tried in the order
// given.
func NewOrchestrator(retrievers []Retriever, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		retrievers:  retrievers,
		tierTimeout: defaultTierTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Query answers a free-text question for the given persona. It never
// returns an error: when every tier fails the persona's canned script is
// served with low confidence and Success=false.
func (o *Orchestrator) Query(ctx context.Context, question string, persona model.Persona, maxResults int) Result {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	for _, retriever := range o.retrievers {
		passages, err := o.retrieveTier(ctx, retriever, question, maxResults)
		if err != nil {
			logger.Warn("retrieval tier failed", "tier", retriever.Name(), "error", err)
			continue
		}
		if !usable(passages) {
			logger.Debug("retrieval tier empty", "tier", retriever.Name())
			continue
		}

		result := Result{
			Passages: passages,
			Sources:  collectSources(passages),
			Tier:     retriever.Name(),
			Success:  true,
		}
		result.Answer = o.composeAnswer(ctx, persona, question, passages)
		result.Confidence = scoreConfidence(result.Answer, passages, result.Sources)
		return result
	}

	return Result{
		Answer:     persona.Fallback,
		Tier:       TierFallback,
		Confidence: fallbackConfidence,
		Success:    false,
	}
}

func (o *Orchestrator) retrieveTier(ctx context.Context, retriever Retriever, question string, maxResults int) ([]Passage, error) {
	tierCtx, cancel := context.WithTimeout(ctx, o.tierTimeout)
	defer cancel()
	return retriever.Retrieve(tierCtx, question, maxResults)
}

// composeAnswer asks the generator for a persona-voiced reply; when no
// generator is configured or it fails, the raw context is returned instead.
func (o *Orchestrator) composeAnswer(ctx context.Context, persona model.Persona, question string, passages []Passage) string {
	if o.generator == nil {
		return renderContext(passages)
	}

	genCtx, cancel := context.WithTimeout(ctx, o.tierTimeout)
	defer cancel()

	answer, err := o.generator.Generate(genCtx, persona, question, passages)
	if err != nil || strings.TrimSpace(answer) == "" {
		if err != nil {
			logger.Warn("answer generation failed, returning raw context", "error", err)
		}
		return renderContext(passages)
	}
	return answer
}

func renderContext(passages []Passage) string {
	var buf strings.Builder
	for i, p := range passages {
		if i > 0 {
			buf.WriteString("\n\n")
		}
		if p.Priority != "" {
			buf.WriteString(p.Priority)
			buf.WriteString(" ")
		}
		buf.WriteString(p.Title)
		buf.WriteString("\n")
		buf.WriteString(p.Content)
	}
	return buf.String()
}

// scoreConfidence is the readability heuristic carried over from the
// original system: a fixed base, a bonus for critical-priority content, and
// a small bonus per extra cited source.
func scoreConfidence(answer string, passages []Passage, sources []string) float64 {
	confidence := baseConfidence

	critical := strings.Contains(answer, criticalMarker)
	for _, p := range passages {
		if p.Priority == criticalMarker || strings.Contains(p.Content, criticalMarker) {
			critical = true
			break
		}
	}
	if critical {
		confidence += criticalBonus
	}

	if extra := len(sources) - 1; extra > 0 {
		bonus := float64(extra) * perSourceBonus
		if bonus > maxSourceBonus {
			bonus = maxSourceBonus
		}
		confidence += bonus
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

func collectSources(passages []Passage) []string {
	seen := make(map[string]bool, len(passages))
	var sources []string
	for _, p := range passages {
		if p.Source == "" || seen[p.Source] {
			continue
		}
		seen[p.Source] = true
		sources = append(sources, p.Source)
	}
	return sources
}
