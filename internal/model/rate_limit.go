package model

import "time"

// RateLimitRecord is one request attempt inside a sliding window.
// Records are append-only; the window is enforced by trimming expired rows
// before each count.
type RateLimitRecord struct {
	ID            int64
	Identifier    string
	Endpoint      string
	Timestamp     int64 // epoch seconds
	WindowSeconds int
}

// EndpointConfig is a persisted per-endpoint override of the default limits.
type EndpointConfig struct {
	Endpoint      string
	MaxRequests   int
	WindowSeconds int
	UpdatedAt     time.Time
}

// DailyStats aggregates request counters for one calendar day (UTC).
type DailyStats struct {
	Date            string // "2006-01-02"
	TotalRequests   int64
	BlockedRequests int64
}
