package pacing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstWaitIsImmediate(t *testing.T) {
	p := New(time.Hour)

	start := time.Now()
	require.NoError(t, p.Wait(context.Background()))
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestPauseStartsWhenRequestEnds(t *testing.T) {
	const pause = 120 * time.Millisecond
	p := New(pause)
	ctx := context.Background()

	var done time.Time
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Wait(ctx))
		if i > 0 {
			assert.GreaterOrEqual(t, time.Since(done), pause-5*time.Millisecond, "idle gap before request %d", i+1)
		}
		time.Sleep(pause) // a request as slow as the pause itself
		done = time.Now()
		p.Done()
	}
}

func TestZeroPauseNeverBlocks(t *testing.T) {
	p := New(0)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, p.Wait(ctx))
		p.Done()
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestWaitHonoursCancellation(t *testing.T) {
	p := New(time.Hour)
	p.Done()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, p.Wait(ctx))
}
