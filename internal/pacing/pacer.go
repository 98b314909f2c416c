// Package pacing spaces out requests with a fixed idle pause measured from
// the end of the previous request.
package pacing

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer enforces a courtesy pause between consecutive requests. The first
// Wait returns immediately; every Wait after a Done blocks for the full pause
// however long the request itself took.
type Pacer struct {
	every   rate.Limit
	limiter *rate.Limiter
}

// New returns a pacer for the given pause. A non-positive pause disables it.
func New(pause time.Duration) *Pacer {
	every := rate.Inf
	if pause > 0 {
		every = rate.Every(pause)
	}
	return &Pacer{every: every, limiter: rate.NewLimiter(every, 1)}
}

// Wait blocks until the pause since the last Done has elapsed or ctx ends.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// Done marks the end of a request and restarts the pause from now.
func (p *Pacer) Done() {
	p.DoneAt(time.Now())
}

// DoneAt is Done with an explicit completion time.
func (p *Pacer) DoneAt(t time.Time) {
	// A fresh bucket drained at t holds no credit earned during the request.
	p.limiter = rate.NewLimiter(p.every, 1)
	p.limiter.ReserveN(t, 1)
}
