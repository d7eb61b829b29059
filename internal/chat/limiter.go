package chat

import (
	"sync"
	"time"
)

// Limiter is a sliding-window request counter: at most max requests are
// admitted in any window-long interval. It is safe for concurrent use.
type Limiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   []time.Time // admitted request times, oldest first
	now    func() time.Time
}

// NewLimiter creates a Limiter admitting max requests per window.
func NewLimiter(max int, window time.Duration) *Limiter {
	return &Limiter{
		window: window,
		max:    max,
		now:    time.Now,
	}
}

// Allow records a request and reports whether it is admitted.
// Refused requests are not recorded.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	i := 0
	for i < len(l.hits) && l.hits[i].Before(cutoff) {
		i++
	}
	l.hits = l.hits[i:]

	if len(l.hits) >= l.max {
		return false
	}
	l.hits = append(l.hits, now)
	return true
}
