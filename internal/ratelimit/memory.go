package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count int
	start time.Time
	limit time.Duration
}

// Memory is a single-process limiter. A window resets once more than
// limit.Window has passed since its first request.
type Memory struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// MemoryOption configures a Memory limiter.
type MemoryOption func(*Memory)

// WithClock replaces the time source.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) { m.now = now }
}

// NewMemory creates an in-memory limiter. A positive cleanupInterval starts
// a goroutine that drops expired windows; call Stop on shutdown.
func NewMemory(cleanupInterval time.Duration, opts ...MemoryOption) *Memory {
	m := &Memory{
		windows: make(map[string]*window),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	if cleanupInterval > 0 {
		go m.cleanup(cleanupInterval)
	}
	return m
}

// Allow implements Limiter.
func (m *Memory) Allow(_ context.Context, key string, limit Limit) bool {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[key]
	if !ok || now.Sub(w.start) > limit.Window {
		m.windows[key] = &window{count: 1, start: now, limit: limit.Window}
		return true
	}
	if w.count >= limit.MaxRequests {
		return false
	}
	w.count++
	return true
}

// Len returns the number of tracked keys.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.windows)
}

// Stop terminates the background cleanup goroutine. Safe to call twice.
func (m *Memory) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// Sweep removes windows that have already expired.
func (m *Memory) Sweep() {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for key, w := range m.windows {
		if now.Sub(w.start) > w.limit {
			delete(m.windows, key)
		}
	}
}

func (m *Memory) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}
