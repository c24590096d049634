package services

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// CommentRateLimiter throttles comment submission per remote IP: one
// comment every 30 seconds with a small burst allowance. Idle entries are
// evicted so the map does not grow with every visitor ever seen.
type CommentRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewCommentRateLimiter() *CommentRateLimiter {
	l := &CommentRateLimiter{
		visitors: make(map[string]*visitor),
	}
	go l.cleanupLoop()
	return l
}

// Allow reports whether the given IP may submit a comment now
func (l *CommentRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[ip]
	if !exists {
		v = &visitor{
			limiter: rate.NewLimiter(rate.Every(30*time.Second), 3),
		}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()

	return v.limiter.Allow()
}

func (l *CommentRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		for ip, v := range l.visitors {
			if time.Since(v.lastSeen) > time.Hour {
				delete(l.visitors, ip)
			}
		}
		l.mu.Unlock()
	}
}
