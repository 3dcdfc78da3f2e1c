package storage

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

var _ Backend = (*MemoryBackend)(nil)

const limiterIdleTTL = 10 * time.Minute

type memoryLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryBackend keeps one token bucket per key in process. Used when no
// Redis is configured.
type MemoryBackend struct {
	limiters  map[string]*memoryLimiter
	mu        sync.Mutex
	rateLimit rate.Limit
	rateBurst int
	now       func() time.Time

	done      chan struct{}
	closeOnce sync.Once
}

func NewMemoryBackend(ratePerSec float64, burst int) *MemoryBackend {
	m := newMemoryBackend(ratePerSec, burst, time.Now)
	go m.cleanupLoop()
	return m
}

func newMemoryBackend(ratePerSec float64, burst int, now func() time.Time) *MemoryBackend {
	return &MemoryBackend{
		limiters:  make(map[string]*memoryLimiter),
		rateLimit: rate.Limit(ratePerSec),
		rateBurst: burst,
		now:       now,
		done:      make(chan struct{}),
	}
}

func (m *MemoryBackend) Allow(_ context.Context, key string) (RateLimitResult, error) {
	now := m.now()

	m.mu.Lock()
	l, ok := m.limiters[key]
	if !ok {
		l = &memoryLimiter{limiter: rate.NewLimiter(m.rateLimit, m.rateBurst)}
		m.limiters[key] = l
	}
	l.lastSeen = now
	m.mu.Unlock()

	r := l.limiter.ReserveN(now, 1)
	if !r.OK() {
		return RateLimitResult{Allowed: false, RetryAfter: time.Second}, nil
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return RateLimitResult{Allowed: false, RetryAfter: delay}, nil
	}

	return RateLimitResult{
		Allowed:   true,
		Remaining: int(l.limiter.TokensAt(now)),
	}, nil
}

func (m *MemoryBackend) Close() error {
	m.closeOnce.Do(func() { close(m.done) })
	return nil
}

func (m *MemoryBackend) Ping(_ context.Context) error {
	return nil
}

func (m *MemoryBackend) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evictIdle()
		case <-m.done:
			return
		}
	}
}

func (m *MemoryBackend) evictIdle() {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, l := range m.limiters {
		if now.Sub(l.lastSeen) > limiterIdleTTL {
			delete(m.limiters, key)
		}
	}
}
