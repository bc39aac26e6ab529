package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// RateLimiter implements a token bucket rate limiter.
type RateLimiter struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter that allows rps requests per second.
func NewRateLimiter(rps int) *RateLimiter {
	return &RateLimiter{
		tokens:     float64(rps),
		maxTokens:  float64(rps),
		refillRate: float64(rps),
		lastRefill: time.Now(),
	}
}

// Allow reports whether a single request is permitted.
// It consumes one token if available.
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(rl.lastRefill).Seconds()
	rl.tokens += elapsed * rl.refillRate
	if rl.tokens > rl.maxTokens {
		rl.tokens = rl.maxTokens
	}
	rl.lastRefill = now

	if rl.tokens >= 1 {
		rl.tokens--
		return true
	}
	return false
}

// PerClientRateLimiter keeps one token bucket per client key so a single
// noisy caller cannot starve the batch endpoints for everyone else.
type PerClientRateLimiter struct {
	mu      sync.Mutex
	rps     int
	buckets map[string]*RateLimiter
}

// NewPerClientRateLimiter creates a limiter granting rps per client.
func NewPerClientRateLimiter(rps int) *PerClientRateLimiter {
	return &PerClientRateLimiter{
		rps:     rps,
		buckets: make(map[string]*RateLimiter),
	}
}

// Allow reports whether the given client may proceed.
func (p *PerClientRateLimiter) Allow(client string) bool {
	p.mu.Lock()
	rl, ok := p.buckets[client]
	if !ok {
		rl = NewRateLimiter(p.rps)
		p.buckets[client] = rl
	}
	p.mu.Unlock()
	return rl.Allow()
}

// RateLimitMiddleware applies a global rate limit to incoming requests.
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				rejectRateLimited(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// PerClientRateLimitMiddleware applies per-client rate limiting keyed by
// remote IP.
func PerClientRateLimitMiddleware(limiter *PerClientRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r)) {
				rejectRateLimited(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func rejectRateLimited(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	http.Error(w, `{"error":"rate limit exceeded"}`, http.StatusTooManyRequests)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
