//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"roteiro/backend/internal/model"
	"roteiro/backend/internal/repository"
	"roteiro/backend/internal/service/rag"
	"roteiro/backend/pkg/logger"
	"roteiro/backend/pkg/sanitizer"
)

const (
	embeddingBatchSize = 16
	// embedWorkers bounds concurrent embedding calls during indexing.
	embedWorkers = 4
)

// KnowledgeService ingests the guideline corpus into the knowledge base and
// maintains the embedding index.
type KnowledgeService interface {
	// IngestDir loads every .md and .json corpus file under dir, replacing
	// previously ingested sections per file. Returns the section count.
	IngestDir(ctx context.Context, dir string) (int, error)
	// IndexEmbeddings embeds sections that have no vector yet. Returns how
	// many sections were indexed.
	IndexEmbeddings(ctx context.Context) (int, error)
	SectionCount(ctx context.Context) (int64, error)
}

// jsonSection mirrors the corpus JSON file layout.
type jsonSection struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority"`
}

type knowledgeService struct {
	repo     repository.KnowledgeRepository
	embedder rag.EmbeddingClient // nil disables the embedding index
}

// NewKnowledgeService creates the ingestion service. The embedding client
// is optional; without it only the FTS tier is fed.
func NewKnowledgeService(repo repository.KnowledgeRepository, embedder rag.EmbeddingClient) KnowledgeService {
	return &knowledgeService{repo: repo, embedder: embedder}
}

func (s *knowledgeService) IngestDir(ctx context.Context, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read knowledge dir: %w", err)
	}

	total := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".md" && ext != ".json" {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return total, fmt.Errorf("read %s: %w", name, err)
		}

		var sections []model.KnowledgeSection
		if ext == ".json" {
			sections, err = parseJSONSections(raw)
		} else {
			sections = parseMarkdownSections(string(raw))
		}
		if err != nil {
			return total, fmt.Errorf("parse %s: %w", name, err)
		}
		if len(sections) == 0 {
			logger.Warn("corpus file produced no sections", "file", name)
			continue
		}

		if err := s.repo.ReplaceSource(ctx, name, sections); err != nil {
			return total, fmt.Errorf("store %s: %w", name, err)
		}
		total += len(sections)
		logger.Info("corpus file ingested", "file", name, "sections", len(sections))
	}

	return total, nil
}

func parseJSONSections(raw []byte) ([]model.KnowledgeSection, error) {
	var parsed []jsonSection
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	var sections []model.KnowledgeSection
	for _, js := range parsed {
		content := sanitizer.CleanText(js.Content)
		title := sanitizer.CleanText(js.Title)
		if title == "" || content == "" {
			continue
		}
		sections = append(sections, model.KnowledgeSection{
			Title:    title,
			Content:  content,
			Priority: normalizePriority(js.Priority, title, content),
		})
	}
	return sections, nil
}

// parseMarkdownSections splits a markdown document on "## " headings. Text
// before the first heading is ignored; heading markup inside section bodies
// stays as content.
func parseMarkdownSections(doc string) []model.KnowledgeSection {
	var sections []model.KnowledgeSection
	var title string
	var body strings.Builder

	flush := func() {
		if title == "" {
			return
		}
		content := sanitizer.CleanText(body.String())
		if content != "" {
			sections = append(sections, model.KnowledgeSection{
				Title:    sanitizer.CleanText(strings.TrimPrefix(title, criticalPrefix(title))),
				Content:  content,
				Priority: normalizePriority("", title, content),
			})
		}
		body.Reset()
	}

	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "## ") {
			flush()
			title = strings.TrimSpace(strings.TrimPrefix(line, "## "))
			continue
		}
		if title != "" {
			body.WriteString(line)
			body.WriteString("\n")
		}
	}
	flush()

	return sections
}

const criticalMarker = "[CRÍTICO]"

func criticalPrefix(title string) string {
	if strings.HasPrefix(strings.TrimSpace(title), criticalMarker) {
		return criticalMarker
	}
	return ""
}

func normalizePriority(explicit, title, content string) string {
	if strings.TrimSpace(explicit) != "" {
		return strings.TrimSpace(explicit)
	}
	if strings.Contains(title, criticalMarker) || strings.Contains(content, criticalMarker) {
		return criticalMarker
	}
	return ""
}

func (s *knowledgeService) IndexEmbeddings(ctx context.Context) (int, error) {
	if s.embedder == nil {
		return 0, nil
	}

	indexed := 0
	for {
		pending, err := s.repo.ListUnembedded(ctx, embeddingBatchSize*embedWorkers)
		if err != nil {
			return indexed, fmt.Errorf("list unembedded: %w", err)
		}
		if len(pending) == 0 {
			return indexed, nil
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(embedWorkers)

		for start := 0; start < len(pending); start += embeddingBatchSize {
			end := min(start+embeddingBatchSize, len(pending))
			batch := pending[start:end]

			g.Go(func() error {
				texts := make([]string, len(batch))
				for i, section := range batch {
					texts[i] = section.Title + "\n" + section.Content
				}

				vectors, err := s.embedder.Embed(gctx, texts)
				if err != nil {
					return fmt.Errorf("embed batch: %w", err)
				}
				if len(vectors) != len(batch) {
					return fmt.Errorf("embed batch: got %d vectors for %d texts", len(vectors), len(batch))
				}

				for i, section := range batch {
					if err := s.repo.SetEmbedding(gctx, section.ID, vectors[i]); err != nil {
						return fmt.Errorf("store embedding: %w", err)
					}
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return indexed, err
		}
		indexed += len(pending)
	}
}

func (s *knowledgeService) SectionCount(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
