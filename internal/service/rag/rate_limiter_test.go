package rag_test

import (
	"context"
	"testing"

	"roteiro/backend/internal/service/rag"

	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	rl := rag.NewRateLimiter(5)
	require.Equal(t, 5, rl.GetLimit())

	// Test update
	rl.SetLimit(20)
	require.Equal(t, 20, rl.GetLimit())

	// Test default on invalid
	rl.SetLimit(0)
	require.Equal(t, rag.DefaultRateLimit, rl.GetLimit())

	// Test wait (basic)
	err := rl.Wait(context.Background())
	require.NoError(t, err)
}

func TestRateLimiter_WaitCancelled(t *testing.T) {
	rl := rag.NewRateLimiter(1)

	// Burn the burst allowance so the next Wait has to block.
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, rl.Wait(ctx))
}
