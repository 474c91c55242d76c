package services

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type loginVisitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginLimiter keeps one token bucket per username. The bucket refills at
// perMinute attempts per minute and holds at most burst attempts.
type LoginLimiter struct {
	mu       sync.Mutex
	visitors map[string]*loginVisitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// NewLoginLimiter creates a limiter allowing burst attempts, refilled at perMinute
func NewLoginLimiter(perMinute float64, burst int) LoginLimiterInterface {
	if burst < 1 {
		burst = 1
	}
	return &LoginLimiter{
		visitors: make(map[string]*loginVisitor),
		limit:    rate.Limit(perMinute / 60),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow consumes one attempt for username
func (l *LoginLimiter) Allow(username string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, exists := l.visitors[username]
	if !exists {
		v = &loginVisitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[username] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Reset forgets the attempts made by username
func (l *LoginLimiter) Reset(username string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.visitors, username)
}

// Cleanup drops usernames idle for longer than idle and returns how many were dropped
func (l *LoginLimiter) Cleanup(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	now := l.now()
	for username, v := range l.visitors {
		if now.Sub(v.lastSeen) > idle {
			delete(l.visitors, username)
			removed++
		}
	}
	return removed
}
