package rag_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"roteiro/backend/internal/model"
	"roteiro/backend/internal/service/rag"

	"github.com/stretchr/testify/require"
)

var testPersona = model.Persona{
	ID:       model.PersonaGa,
	Name:     "Gá",
	Style:    "linguagem simples",
	Fallback: "Desculpa, não consegui buscar essa informação agora.",
}

type stubRetriever struct {
	name     string
	passages []rag.Passage
	err      error
	delay    time.Duration
	calls    int
}

func (s *stubRetriever) Name() string { return s.name }

func (s *stubRetriever) Retrieve(ctx context.Context, query string, maxResults int) ([]rag.Passage, error) {
	s.calls++
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.passages, s.err
}

type stubGenerator struct {
	answer string
	err    error
}

func (s *stubGenerator) Generate(ctx context.Context, persona model.Persona, question string, passages []rag.Passage) (string, error) {
	return s.answer, s.err
}

func TestOrchestrator_FirstTierWins(t *testing.T) {
	first := &stubRetriever{name: "knowledge_base", passages: []rag.Passage{
		{Title: "Dose adulto", Content: "Rifampicina 600mg", Source: "roteiro.md"},
	}}
	second := &stubRetriever{name: "embedding"}

	o := rag.NewOrchestrator([]rag.Retriever{first, second})
	result := o.Query(context.Background(), "qual a dose?", testPersona, 3)

	require.True(t, result.Success)
	require.Equal(t, "knowledge_base", result.Tier)
	require.Contains(t, result.Answer, "Rifampicina 600mg")
	require.Equal(t, []string{"roteiro.md"}, result.Sources)
	require.Zero(t, second.calls, "second tier must not be consulted")
}

func TestOrchestrator_ErrorMovesToNextTier(t *testing.T) {
	first := &stubRetriever{name: "knowledge_base", err: errors.New("backend down")}
	second := &stubRetriever{name: "embedding", passages: []rag.Passage{
		{Title: "Dose adulto", Content: "Rifampicina 600mg", Source: "roteiro.md"},
	}}

	o := rag.NewOrchestrator([]rag.Retriever{first, second})
	result := o.Query(context.Background(), "qual a dose?", testPersona, 3)

	require.True(t, result.Success)
	require.Equal(t, "embedding", result.Tier)
	require.Equal(t, 1, first.calls)
}

func TestOrchestrator_GenericContentSkipped(t *testing.T) {
	first := &stubRetriever{name: "knowledge_base", passages: []rag.Passage{
		{Title: "vazio", Content: "Não encontrei informações sobre isso."},
	}}
	second := &stubRetriever{name: "embedding", passages: []rag.Passage{
		{Title: "Dose adulto", Content: "Rifampicina 600mg", Source: "roteiro.md"},
	}}

	o := rag.NewOrchestrator([]rag.Retriever{first, second})
	result := o.Query(context.Background(), "qual a dose?", testPersona, 3)

	require.Equal(t, "embedding", result.Tier)
}

func TestOrchestrator_AllTiersFail_FallbackScript(t *testing.T) {
	first := &stubRetriever{name: "knowledge_base", err: errors.New("down")}
	second := &stubRetriever{name: "embedding"}

	o := rag.NewOrchestrator([]rag.Retriever{first, second})
	result := o.Query(context.Background(), "qual a dose?", testPersona, 3)

	require.False(t, result.Success)
	require.Equal(t, rag.TierFallback, result.Tier)
	require.Equal(t, testPersona.Fallback, result.Answer)
	require.InDelta(t, 0.1, result.Confidence, 1e-9)
}

func TestOrchestrator_SlowTierTimesOut(t *testing.T) {
	slow := &stubRetriever{name: "knowledge_base", delay: 500 * time.Millisecond, passages: []rag.Passage{
		{Title: "lenta", Content: "nunca chega", Source: "x"},
	}}
	fast := &stubRetriever{name: "embedding", passages: []rag.Passage{
		{Title: "Dose adulto", Content: "Rifampicina 600mg", Source: "roteiro.md"},
	}}

	o := rag.NewOrchestrator([]rag.Retriever{slow, fast}, rag.WithTierTimeout(50*time.Millisecond))
	result := o.Query(context.Background(), "qual a dose?", testPersona, 3)

	require.True(t, result.Success)
	require.Equal(t, "embedding", result.Tier)
}

func TestOrchestrator_GeneratorComposesAnswer(t *testing.T) {
	retriever := &stubRetriever{name: "knowledge_base", passages: []rag.Passage{
		{Title: "Dose adulto", Content: "Rifampicina 600mg", Source: "roteiro.md"},
	}}

	o := rag.NewOrchestrator(
		[]rag.Retriever{retriever},
		rag.WithGenerator(&stubGenerator{answer: "A dose mensal do adulto é rifampicina 600mg."}),
	)
	result := o.Query(context.Background(), "qual a dose?", testPersona, 3)

	require.Equal(t, "A dose mensal do adulto é rifampicina 600mg.", result.Answer)
}

func TestOrchestrator_GeneratorFailureDegradesToRawContext(t *testing.T) {
	retriever := &stubRetriever{name: "knowledge_base", passages: []rag.Passage{
		{Title: "Dose adulto", Content: "Rifampicina 600mg", Source: "roteiro.md"},
	}}

	o := rag.NewOrchestrator(
		[]rag.Retriever{retriever},
		rag.WithGenerator(&stubGenerator{err: errors.New("api down")}),
	)
	result := o.Query(context.Background(), "qual a dose?", testPersona, 3)

	require.True(t, result.Success)
	require.Contains(t, result.Answer, "Rifampicina 600mg")
}

func TestOrchestrator_ConfidenceScoring(t *testing.T) {
	t.Run("base confidence single source", func(t *testing.T) {
		r := &stubRetriever{name: "knowledge_base", passages: []rag.Passage{
			{Title: "Dose", Content: "Rifampicina 600mg", Source: "a.md"},
		}}
		result := rag.NewOrchestrator([]rag.Retriever{r}).Query(context.Background(), "dose", testPersona, 3)
		require.InDelta(t, 0.5, result.Confidence, 1e-9)
	})

	t.Run("critical marker adds 0.3", func(t *testing.T) {
		r := &stubRetriever{name: "knowledge_base", passages: []rag.Passage{
			{Title: "Dose", Content: "Rifampicina 600mg", Source: "a.md", Priority: "[CRÍTICO]"},
		}}
		result := rag.NewOrchestrator([]rag.Retriever{r}).Query(context.Background(), "dose", testPersona, 3)
		require.InDelta(t, 0.8, result.Confidence, 1e-9)
	})

	t.Run("extra sources add up to 0.3 and total caps at 1.0", func(t *testing.T) {
		r := &stubRetriever{name: "knowledge_base", passages: []rag.Passage{
			{Title: "a", Content: "Rifampicina", Source: "a.md", Priority: "[CRÍTICO]"},
			{Title: "b", Content: "Clofazimina", Source: "b.md"},
			{Title: "c", Content: "Dapsona", Source: "c.md"},
			{Title: "d", Content: "Dose", Source: "d.md"},
			{Title: "e", Content: "Reações", Source: "e.md"},
		}}
		result := rag.NewOrchestrator([]rag.Retriever{r}).Query(context.Background(), "dose", testPersona, 5)
		require.InDelta(t, 1.0, result.Confidence, 1e-9)
	})
}
