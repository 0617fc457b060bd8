// Package ratelimit caps how often one caller may hit an endpoint.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decides whether one more request for key fits within the limit.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

const sweepEvery = time.Minute

type localEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Local is an in-process token bucket per key. It allows perMinute requests per minute
// with a burst of the same size; idle keys are swept after two minutes.
type Local struct {
	mu        sync.Mutex
	entries   map[string]*localEntry
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewLocal returns a Local limiter. perMinute must be positive.
func NewLocal(perMinute int) *Local {
	return &Local{
		entries: make(map[string]*localEntry),
		limit:   rate.Limit(float64(perMinute) / 60),
		burst:   perMinute,
		now:     time.Now,
	}
}

func (l *Local) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if now.Sub(l.lastSweep) >= sweepEvery {
		for k, e := range l.entries {
			if now.Sub(e.lastSeen) > 2*sweepEvery {
				delete(l.entries, k)
			}
		}
		l.lastSweep = now
	}
	e, ok := l.entries[key]
	if !ok {
		e = &localEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1), nil
}

// size reports tracked keys.
func (l *Local) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
