// Package rag implements the tiered retrieval chain behind the chat
// endpoint: a prioritized list of retrievers is tried in order and the first
// useful result wins, with canned persona fallbacks when every tier fails.
package rag

import (
	"context"
	"strings"
)

// Passage is one retrieved fragment of guideline content.
type Passage struct {
	Title    string
	Content  string
	Source   string
	Priority string
	Score    float64
}

// Result is the orchestrator's answer for one query.
type Result struct {
	Answer     string
	Passages   []Passage
	Sources    []string
	Tier       string // name of the retriever that produced the context, or "fallback"
	Confidence float64
	Success    bool
}

// Retriever is one tier of the retrieval chain.
type Retriever interface {
	Name() string
	Retrieve(ctx context.Context, query string, maxResults int) ([]Passage, error)
}

// criticalMarker tags guideline sections that require pharmacist attention;
// its presence raises answer confidence.
const criticalMarker = "[CRÍTICO]"

// genericPlaceholders are responses some backends return instead of real
// content; a tier answering with one of these is treated as empty.
var genericPlaceholders = []string{
	"não encontrei informações",
	"no information found",
	"sem resultados",
}

func isGeneric(text string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	if trimmed == "" {
		return true
	}
	for _, placeholder := range genericPlaceholders {
		if strings.Contains(trimmed, placeholder) {
			return true
		}
	}
	return false
}

func usable(passages []Passage) bool {
	for _, p := range passages {
		if !isGeneric(p.Content) {
			return true
		}
	}
	return false
}
