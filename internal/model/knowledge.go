package model

import "time"

// KnowledgeSection is one indexed section of the dispensing guideline
// ("Roteiro de Dispensação" PQT-U corpus). Content is sanitized plain text;
// Priority carries the source's urgency marker (e.g. "[CRÍTICO]") when
// present.
type KnowledgeSection struct {
	ID        int64
	Source    string
	Title     string
	Content   string
	Priority  string
	Embedding []float64 // empty until the embedding indexer has run
	CreatedAt time.Time
}
