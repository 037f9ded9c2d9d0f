package workerpool_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/common/workerpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_New(t *testing.T) {
	t.Run("creates pool with valid size", func(t *testing.T) {
		pool, err := workerpool.New(10)
		require.NoError(t, err)
		assert.NotNil(t, pool)
		assert.Equal(t, 10, pool.Workers())
		pool.Stop()
	})
}

func TestPool_Submit(t *testing.T) {
	t.Run("executes job with context", func(t *testing.T) {
		pool, err := workerpool.New(2)
		require.NoError(t, err)
		defer pool.Stop()

		var executed atomic.Bool
		var wg sync.WaitGroup
		wg.Add(1)

		err = pool.Submit(context.Background(), func(ctx context.Context) {
			executed.Store(true)
			wg.Done()
		})
		require.NoError(t, err)

		wg.Wait()
		assert.True(t, executed.Load())
	})

	t.Run("skips job when context is cancelled", func(t *testing.T) {
		pool, err := workerpool.New(1)
		require.NoError(t, err)
		defer pool.Stop()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var executed atomic.Bool
		err = pool.Submit(ctx, func(ctx context.Context) {
			executed.Store(true)
		})
		require.NoError(t, err)

		time.Sleep(50 * time.Millisecond)
		assert.False(t, executed.Load())
	})

	t.Run("propagates context to job", func(t *testing.T) {
		pool, err := workerpool.New(2)
		require.NoError(t, err)
		defer pool.Stop()

		type contextKey string
		const key contextKey = "key"
		ctx := context.WithValue(context.Background(), key, "value")
		var receivedValue string
		var wg sync.WaitGroup
		wg.Add(1)

		err = pool.Submit(ctx, func(ctx context.Context) {
			receivedValue = ctx.Value(key).(string)
			wg.Done()
		})
		require.NoError(t, err)

		wg.Wait()
		assert.Equal(t, "value", receivedValue)
	})
}

func TestPool_Stop(t *testing.T) {
	t.Run("stops accepting new jobs", func(t *testing.T) {
		pool, err := workerpool.New(2)
		require.NoError(t, err)

		pool.Stop()

		err = pool.Submit(context.Background(), func(ctx context.Context) {})
		assert.Error(t, err)
	})
}

func TestPool_Bounded(t *testing.T) {
	t.Run("never runs more jobs than workers", func(t *testing.T) {
		pool, err := workerpool.New(2)
		require.NoError(t, err)
		defer pool.Stop()

		var (
			current atomic.Int32
			peak    atomic.Int32
			wg      sync.WaitGroup
		)

		for i := 0; i < 6; i++ {
			wg.Add(1)
			err := pool.Submit(context.Background(), func(ctx context.Context) {
				defer wg.Done()
				n := current.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(20 * time.Millisecond)
				current.Add(-1)
			})
			require.NoError(t, err)
		}

		wg.Wait()
		assert.LessOrEqual(t, peak.Load(), int32(2))
	})

	t.Run("non positive size falls back to one worker", func(t *testing.T) {
		pool, err := workerpool.New(0)
		require.NoError(t, err)
		defer pool.Stop()

		assert.Equal(t, 1, pool.Workers())
	})
}

func TestPool_RunAll(t *testing.T) {
	t.Run("waits for every job", func(t *testing.T) {
		pool, err := workerpool.New(3)
		require.NoError(t, err)
		defer pool.Stop()

		var done atomic.Int32
		jobs := make([]func(ctx context.Context), 10)
		for i := range jobs {
			jobs[i] = func(ctx context.Context) {
				time.Sleep(5 * time.Millisecond)
				done.Add(1)
			}
		}

		require.NoError(t, pool.RunAll(context.Background(), jobs...))
		assert.Equal(t, int32(10), done.Load())
	})

	t.Run("returns when the context is already cancelled", func(t *testing.T) {
		pool, err := workerpool.New(1)
		require.NoError(t, err)
		defer pool.Stop()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var executed atomic.Bool
		require.NoError(t, pool.RunAll(ctx, func(ctx context.Context) { executed.Store(true) }))
		assert.False(t, executed.Load())
	})

	t.Run("reports jobs submitted after stop", func(t *testing.T) {
		pool, err := workerpool.New(1)
		require.NoError(t, err)
		pool.Stop()

		err = pool.RunAll(context.Background(), func(ctx context.Context) {})
		assert.Error(t, err)
	})
}
