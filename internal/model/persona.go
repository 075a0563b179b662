package model

// Persona identifiers. The assistant ships with two voices: Dr. Gasnelio
// answers in technical pharmacist language, Gá answers in plain empathetic
// language.
const (
	PersonaDrGasnelio = "dr_gasnelio"
	PersonaGa         = "ga"
)

// Persona describes one of the assistant voices exposed by the API.
type Persona struct {
	ID          string
	Name        string
	Style       string
	Description string
	Greeting    string
	// Fallback is the canned script served when every retrieval tier fails.
	Fallback string
}

// PersonaStats counts answered questions per persona.
type PersonaStats struct {
	PersonaID string
	Questions int64
	Fallbacks int64
}
