package rag

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the per-minute budget applied when an invalid limit
// is configured.
const DefaultRateLimit = 10

// RateLimiter throttles calls to upstream AI providers to a fixed number
// per minute. The limit is adjustable at runtime.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	perMin  int
}

// NewRateLimiter creates a limiter allowing perMin calls per minute.
func NewRateLimiter(perMin int) *RateLimiter {
	if perMin <= 0 {
		perMin = DefaultRateLimit
	}
	return &RateLimiter{
		limiter: newLimiter(perMin),
		perMin:  perMin,
	}
}

func newLimiter(perMin int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(float64(perMin)/60.0), perMin)
}

// Wait blocks until a call slot is available or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	limiter := r.limiter
	r.mu.Unlock()
	return limiter.Wait(ctx)
}

// GetLimit returns the current per-minute budget.
func (r *RateLimiter) GetLimit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.perMin
}

// SetLimit replaces the per-minute budget. Invalid values reset to the
// default.
func (r *RateLimiter) SetLimit(perMin int) {
	if perMin <= 0 {
		perMin = DefaultRateLimit
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.perMin = perMin
	r.limiter = newLimiter(perMin)
}
