package rag

import (
	"context"

	"roteiro/backend/internal/repository"
)

// TierKnowledge is the name of the structured knowledge-base tier, the
// highest-priority backend in the chain.
const TierKnowledge = "knowledge_base"

// knowledgeRetriever serves the full-text tier from the SQLite FTS index.
type knowledgeRetriever struct {
	repo repository.KnowledgeRepository
}

// NewKnowledgeRetriever creates the FTS-backed retriever.
func NewKnowledgeRetriever(repo repository.KnowledgeRepository) Retriever {
	return &knowledgeRetriever{repo: repo}
}

func (r *knowledgeRetriever) Name() string { return TierKnowledge }

func (r *knowledgeRetriever) Retrieve(ctx context.Context, query string, maxResults int) ([]Passage, error) {
	sections, err := r.repo.Search(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}

	passages := make([]Passage, 0, len(sections))
	for _, section := range sections {
		passages = append(passages, Passage{
			Title:    section.Title,
			Content:  section.Content,
			Source:   section.Source,
			Priority: section.Priority,
		})
	}
	return passages, nil
}
