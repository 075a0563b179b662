package snowflake_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"roteiro/backend/pkg/snowflake"
)

func TestInit_NodeIDBounds(t *testing.T) {
	require.NoError(t, snowflake.Init(0))
	require.NoError(t, snowflake.Init(1023))
	require.Error(t, snowflake.Init(-1))
	require.Error(t, snowflake.Init(1024))

	// Leave a valid node behind for the other tests.
	require.NoError(t, snowflake.Init(1))
}

func TestNextID_Unique(t *testing.T) {
	require.NoError(t, snowflake.Init(1))

	seen := make(map[int64]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := snowflake.NextID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %d at iteration %d", id, i)
		seen[id] = struct{}{}
	}
}

func TestNextID_Monotonic(t *testing.T) {
	require.NoError(t, snowflake.Init(1))

	prev := snowflake.NextID()
	for i := 0; i < 100; i++ {
		next := snowflake.NextID()
		require.Greater(t, next, prev)
		prev = next
	}
}

func TestNextID_Concurrent(t *testing.T) {
	require.NoError(t, snowflake.Init(1))

	const goroutines = 8
	const perGoroutine = 200

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[int64]struct{}, goroutines*perGoroutine)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]int64, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				ids = append(ids, snowflake.NextID())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range ids {
				seen[id] = struct{}{}
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, goroutines*perGoroutine, "concurrent generation must not collide")
}
