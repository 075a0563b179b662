//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"roteiro/backend/internal/model"
	"roteiro/backend/pkg/snowflake"
)

// KnowledgeRepository stores indexed guideline sections and serves both the
// FTS5 text tier and the embedding tier of retrieval.
type KnowledgeRepository interface {
	// ReplaceSource atomically swaps all sections ingested from one source
	// file for the given replacements.
	ReplaceSource(ctx context.Context, source string, sections []model.KnowledgeSection) error
	// Search runs an FTS5 match over titles and contents, best-ranked first.
	Search(ctx context.Context, query string, limit int) ([]model.KnowledgeSection, error)
	// ListUnembedded returns sections that have no stored embedding yet.
	ListUnembedded(ctx context.Context, limit int) ([]model.KnowledgeSection, error)
	// SetEmbedding stores the embedding vector for a section.
	SetEmbedding(ctx context.Context, id int64, embedding []float64) error
	// ListEmbedded returns all sections carrying an embedding vector.
	ListEmbedded(ctx context.Context) ([]model.KnowledgeSection, error)
	Count(ctx context.Context) (int64, error)
}

type knowledgeRepository struct {
	db *sql.DB
}

// NewKnowledgeRepository creates a new knowledge repository.
func NewKnowledgeRepository(db *sql.DB) KnowledgeRepository {
	return &knowledgeRepository{db: db}
}

func (r *knowledgeRepository) ReplaceSource(ctx context.Context, source string, sections []model.KnowledgeSection) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM knowledge_sections WHERE source = ?`, source); err != nil {
		return fmt.Errorf("delete old sections: %w", err)
	}

	now := formatTime(time.Now())
	for _, section := range sections {
		id := section.ID
		if id == 0 {
			id = snowflake.NextID()
		}
		embedding, err := encodeEmbedding(section.Embedding)
		if err != nil {
			return fmt.Errorf("encode embedding: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO knowledge_sections (id, source, title, content, priority, embedding, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, id, source, section.Title, section.Content, section.Priority, embedding, now); err != nil {
			return fmt.Errorf("insert section: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *knowledgeRepository) Search(ctx context.Context, query string, limit int) ([]model.KnowledgeSection, error) {
	match := buildMatchQuery(query)
	if match == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.source, s.title, s.content, s.priority, COALESCE(s.embedding, ''), s.created_at
		FROM knowledge_fts f
		JOIN knowledge_sections s ON s.id = f.rowid
		WHERE knowledge_fts MATCH ?
		ORDER BY bm25(knowledge_fts)
		LIMIT ?
	`, match, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSections(rows)
}

func (r *knowledgeRepository) ListUnembedded(ctx context.Context, limit int) ([]model.KnowledgeSection, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, source, title, content, priority, COALESCE(embedding, ''), created_at
		FROM knowledge_sections
		WHERE embedding IS NULL OR embedding = ''
		ORDER BY id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSections(rows)
}

func (r *knowledgeRepository) SetEmbedding(ctx context.Context, id int64, embedding []float64) error {
	encoded, err := encodeEmbedding(embedding)
	if err != nil {
		return fmt.Errorf("encode embedding: %w", err)
	}
	result, err := r.db.ExecContext(ctx, `UPDATE knowledge_sections SET embedding = ? WHERE id = ?`, encoded, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *knowledgeRepository) ListEmbedded(ctx context.Context) ([]model.KnowledgeSection, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, source, title, content, priority, embedding, created_at
		FROM knowledge_sections
		WHERE embedding IS NOT NULL AND embedding != ''
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSections(rows)
}

func (r *knowledgeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM knowledge_sections`).Scan(&count)
	return count, err
}

func scanSections(rows *sql.Rows) ([]model.KnowledgeSection, error) {
	var sections []model.KnowledgeSection
	for rows.Next() {
		var s model.KnowledgeSection
		var embedding, createdAt string
		if err := rows.Scan(&s.ID, &s.Source, &s.Title, &s.Content, &s.Priority, &embedding, &createdAt); err != nil {
			return nil, err
		}
		s.Embedding = decodeEmbedding(embedding)
		s.CreatedAt = parseTime(createdAt)
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

// buildMatchQuery turns free text into a safe FTS5 match expression: each
// token is double-quoted, tokens are OR-ed so partial questions still hit.
func buildMatchQuery(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return ""
	}

	terms := make([]string, 0, len(fields))
	for _, field := range fields {
		escaped := strings.ReplaceAll(field, `"`, `""`)
		terms = append(terms, `"`+escaped+`"`)
	}
	return strings.Join(terms, " OR ")
}
