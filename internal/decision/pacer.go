package decision

import (
	"context"
	"sync"
	"time"
)

// Pacer enforces a minimum interval between calls to an external
// decision API. One Pacer is constructed per process and shared by
// every source that talks to the same provider, so concurrent agent
// cycles draw from a single pacing budget.
type Pacer struct {
	mu          sync.Mutex
	lastRequest time.Time
	minInterval time.Duration
}

func NewPacer(minInterval time.Duration) *Pacer {
	return &Pacer{minInterval: minInterval}
}

// Wait blocks until the minimum interval since the previous request
// has elapsed, or until ctx is cancelled.
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if elapsed := time.Since(p.lastRequest); elapsed < p.minInterval {
		timer := time.NewTimer(p.minInterval - elapsed)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	p.lastRequest = time.Now()
	return nil
}
