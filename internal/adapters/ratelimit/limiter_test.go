package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestEvery_SpacesCalls(t *testing.T) {
	l := Every(30 * time.Millisecond)

	start := time.Now()
	for range 4 {
		require.NoError(t, l.Wait(context.Background()))
	}
	assert.GreaterOrEqual(t, time.Since(start), 85*time.Millisecond)
}

func TestEvery_Disabled(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		t.Run(interval.String(), func(t *testing.T) {
			l := Every(interval)
			start := time.Now()
			for range 10 {
				require.NoError(t, l.Wait(context.Background()))
			}
			assert.Less(t, time.Since(start), 50*time.Millisecond)
		})
	}
}

func TestEvery_Cancelled(t *testing.T) {
	l := Every(time.Hour)
	require.NoError(t, l.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	assert.Error(t, l.Wait(ctx))
	assert.Less(t, time.Since(start), time.Second)
}

func TestEvery_ConcurrentCallers(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := Every(20 * time.Millisecond)
	start := time.Now()

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, l.Wait(context.Background()))
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, time.Since(start), 75*time.Millisecond)
}
