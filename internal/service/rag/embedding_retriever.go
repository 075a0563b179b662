package rag

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"roteiro/backend/internal/repository"
)

// TierEmbedding is the name of the vector-similarity tier.
const TierEmbedding = "embedding"

// minSimilarity filters out passages with no meaningful relation to the
// query; cosine scores below this are noise for this corpus size.
const minSimilarity = 0.25

var ErrNoEmbeddings = errors.New("no embedded sections available")

// EmbeddingClient produces embedding vectors for texts. Implemented by the
// OpenAI client; faked in tests.
type EmbeddingClient interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// openAIEmbeddingClient wraps the OpenAI embeddings API.
type openAIEmbeddingClient struct {
	client  openai.Client
	model   string
	limiter *RateLimiter
}

// NewOpenAIEmbeddingClient creates an embedding client against the OpenAI
// API (or any compatible endpoint via baseURL).
func NewOpenAIEmbeddingClient(apiKey, baseURL, model string, limiter *RateLimiter) EmbeddingClient {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &openAIEmbeddingClient{
		client:  openai.NewClient(opts...),
		model:   model,
		limiter: limiter,
	}
}

func (c *openAIEmbeddingClient) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
		Model: openai.EmbeddingModel(c.model),
	})
	if err != nil {
		return nil, err
	}

	vectors := make([][]float64, len(resp.Data))
	for _, item := range resp.Data {
		if int(item.Index) < len(vectors) {
			vectors[item.Index] = item.Embedding
		}
	}
	return vectors, nil
}

// embeddingRetriever ranks stored sections by cosine similarity between the
// query embedding and each section's stored vector.
type embeddingRetriever struct {
	repo   repository.KnowledgeRepository
	client EmbeddingClient
}

// NewEmbeddingRetriever creates the vector-similarity retriever.
func NewEmbeddingRetriever(repo repository.KnowledgeRepository, client EmbeddingClient) Retriever {
	return &embeddingRetriever{repo: repo, client: client}
}

func (r *embeddingRetriever) Name() string { return TierEmbedding }

func (r *embeddingRetriever) Retrieve(ctx context.Context, query string, maxResults int) ([]Passage, error) {
	vectors, err := r.client.Embed(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, nil
	}
	queryVec := vectors[0]

	sections, err := r.repo.ListEmbedded(ctx)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, ErrNoEmbeddings
	}

	passages := make([]Passage, 0, len(sections))
	for _, section := range sections {
		score := cosineSimilarity(queryVec, section.Embedding)
		if score < minSimilarity {
			continue
		}
		passages = append(passages, Passage{
			Title:    section.Title,
			Content:  section.Content,
			Source:   section.Source,
			Priority: section.Priority,
			Score:    score,
		})
	}

	sort.Slice(passages, func(i, j int) bool { return passages[i].Score > passages[j].Score })
	if len(passages) > maxResults {
		passages = passages[:maxResults]
	}
	return passages, nil
}

func cosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
