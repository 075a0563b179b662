package repository_test

import (
	"context"
	"testing"

	"roteiro/backend/internal/model"
	"roteiro/backend/internal/repository"
	"roteiro/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestKnowledgeRepository_ReplaceSourceAndSearch(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewKnowledgeRepository(db)
	ctx := context.Background()

	sections := []model.KnowledgeSection{
		{Title: "Esquema PQT-U adulto", Content: "Rifampicina 600mg dose mensal supervisionada", Priority: "[CRÍTICO]"},
		{Title: "Armazenamento", Content: "Manter os blísteres em local seco"},
	}
	require.NoError(t, repo.ReplaceSource(ctx, "roteiro.md", sections))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	results, err := repo.Search(ctx, "rifampicina dose", 5)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	require.Equal(t, "Esquema PQT-U adulto", results[0].Title)
	require.Equal(t, "[CRÍTICO]", results[0].Priority)

	// Replacing the source swaps content; stale sections disappear from FTS.
	require.NoError(t, repo.ReplaceSource(ctx, "roteiro.md", []model.KnowledgeSection{
		{Title: "Nova seção", Content: "Clofazimina 300mg dose mensal"},
	}))

	results, err = repo.Search(ctx, "rifampicina", 5)
	require.NoError(t, err)
	require.Empty(t, results)

	results, err = repo.Search(ctx, "clofazimina", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestKnowledgeRepository_Search_EmptyQuery(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewKnowledgeRepository(db)

	results, err := repo.Search(context.Background(), "   ", 5)
	require.NoError(t, err)
	require.Nil(t, results)
}

func TestKnowledgeRepository_Search_QuotesSpecialCharacters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewKnowledgeRepository(db)
	ctx := context.Background()

	testutil.SeedKnowledgeSection(t, db, model.KnowledgeSection{
		Title: "Reações adversas", Content: "urina avermelhada após a dose",
	})

	// Characters that are FTS5 operators must not break the query.
	_, err := repo.Search(ctx, `dose" AND OR NEAR( *`, 5)
	require.NoError(t, err)
}

func TestKnowledgeRepository_Embeddings(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewKnowledgeRepository(db)
	ctx := context.Background()

	id := testutil.SeedKnowledgeSection(t, db, model.KnowledgeSection{
		Title: "Dose infantil", Content: "Rifampicina 450mg para 30 a 50kg",
	})

	unembedded, err := repo.ListUnembedded(ctx, 10)
	require.NoError(t, err)
	require.Len(t, unembedded, 1)
	require.Equal(t, id, unembedded[0].ID)

	require.NoError(t, repo.SetEmbedding(ctx, id, []float64{0.1, 0.2, 0.3}))

	unembedded, err = repo.ListUnembedded(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, unembedded)

	embedded, err := repo.ListEmbedded(ctx)
	require.NoError(t, err)
	require.Len(t, embedded, 1)
	require.InDeltaSlice(t, []float64{0.1, 0.2, 0.3}, embedded[0].Embedding, 1e-9)

	// Unknown section id reports an error.
	require.Error(t, repo.SetEmbedding(ctx, 99999, []float64{1}))
}
