package model

// ChatAnswer is the assembled reply for one chat question.
type ChatAnswer struct {
	RequestID  string
	PersonaID  string
	Answer     string
	Confidence float64
	Source     string // retriever tier that produced the context, or "fallback"
	Sources    []string
	Success    bool
	Cached     bool
}
