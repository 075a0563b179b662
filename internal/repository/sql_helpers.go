package repository

import (
	"encoding/json"
	"time"
)

func formatTime(value time.Time) string {
	return value.UTC().Format(time.RFC3339)
}

func parseTime(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// encodeEmbedding serializes an embedding vector as a JSON array for TEXT
// storage. Empty vectors encode to the empty string (column stays NULL-ish).
func encodeEmbedding(vec []float64) (string, error) {
	if len(vec) == 0 {
		return "", nil
	}
	raw, err := json.Marshal(vec)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeEmbedding(raw string) []float64 {
	if raw == "" {
		return nil
	}
	var vec []float64
	if err := json.Unmarshal([]byte(raw), &vec); err != nil {
		return nil
	}
	return vec
}
