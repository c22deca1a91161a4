package infra

import (
	"context"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HostLimiter rate-limits per hostname (finnhub.io, query2.finance.yahoo.com, ...).
type HostLimiter struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

// NewHostLimiter creates a limiter allowing reqPerSec requests per host with the given burst.
func NewHostLimiter(reqPerSec float64, burst int) *HostLimiter {
	if burst < 1 {
		burst = 1
	}
	return &HostLimiter{
		m: make(map[string]*rate.Limiter),
		r: rate.Limit(reqPerSec),
		b: burst,
	}
}

func (hl *HostLimiter) limiterFor(host string) *rate.Limiter {
	hl.mu.Lock()
	defer hl.mu.Unlock()

	if lim, ok := hl.m[host]; ok {
		return lim
	}
	lim := rate.NewLimiter(hl.r, hl.b)
	hl.m[host] = lim
	return lim
}

// WaitURL blocks until a request to raw's host is allowed or ctx is done.
func (hl *HostLimiter) WaitURL(ctx context.Context, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return hl.limiterFor("_").Wait(ctx)
	}
	return hl.limiterFor(u.Host).Wait(ctx)
}

// Pacer inserts a fixed pause between consecutive iterations. The pause
// starts when Wait is called, so it always follows the previous iteration's
// work in full. The first Wait returns immediately.
type Pacer struct {
	pause   time.Duration
	started bool
}

// NewPacer creates a pacer; a non-positive pause disables pacing.
func NewPacer(pause time.Duration) *Pacer {
	return &Pacer{pause: pause}
}

// Wait blocks for the pause, unless this is the first iteration, or until
// ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.pause <= 0 || !p.started {
		if p != nil {
			p.started = true
		}
		return ctx.Err()
	}
	t := time.NewTimer(p.pause)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
