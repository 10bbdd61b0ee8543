package ratelimit

import (
	"context"
	"sync"
	"time"
)

const sweepInterval = 5 * time.Minute

type windowState struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter keeps counters in a map guarded by a mutex. Expired windows
// are swept periodically by a background goroutine stopped by Close.
type MemoryLimiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	entries map[string]windowState

	now    func() time.Time
	stopCh chan struct{}
	once   sync.Once
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	if window <= 0 {
		window = time.Minute
	}

	l := &MemoryLimiter{
		limit:   limit,
		window:  window,
		entries: make(map[string]windowState),
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}
	go l.sweepLoop()

	return l
}

// Allow never blocks. A limit of zero or less allows everything.
func (l *MemoryLimiter) Allow(_ context.Context, key string) Decision {
	if l.limit <= 0 {
		return Decision{Allowed: true}
	}

	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.entries[key]
	if !ok || !now.Before(state.resetAt) {
		state = windowState{resetAt: now.Add(l.window)}
	}

	if state.count >= l.limit {
		return Decision{Allowed: false, Count: state.count, Limit: l.limit, ResetAt: state.resetAt}
	}

	state.count++
	l.entries[key] = state

	return Decision{Allowed: true, Count: state.count, Limit: l.limit, ResetAt: state.resetAt}
}

func (l *MemoryLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.sweep(l.now())
		case <-l.stopCh:
			return
		}
	}
}

func (l *MemoryLimiter) sweep(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, state := range l.entries {
		if !now.Before(state.resetAt) {
			delete(l.entries, key)
		}
	}
}

func (l *MemoryLimiter) Close() error {
	l.once.Do(func() {
		close(l.stopCh)
	})
	return nil
}
