package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// Limiter is a simple token bucket keyed by client IP, used to keep a
// misbehaving client from hammering the websocket handshake.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket // per-IP buckets
	max     int                // tokens per window
	per     time.Duration      // window size
}

type bucket struct {
	ts     time.Time // window start
	tokens int       // remaining tokens
}

// New creates a new IP-based limiter allowing max requests per window
func New(max int, per time.Duration) *Limiter {
	return &Limiter{buckets: map[string]*bucket{}, max: max, per: per}
}

// Allow reports whether a request from addr (host:port or bare host)
// fits within the current window, consuming a token if so.
func (l *Limiter) Allow(addr string) bool {
	ip, _, err := net.SplitHostPort(addr)
	if err != nil {
		ip = addr
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.buckets[ip]
	if b == nil || time.Since(b.ts) > l.per {
		// Start a new window; piggyback a sweep of expired buckets
		// so the map doesn't grow with one entry per IP forever.
		for k, v := range l.buckets {
			if time.Since(v.ts) > l.per {
				delete(l.buckets, k)
			}
		}
		b = &bucket{ts: time.Now(), tokens: l.max}
		l.buckets[ip] = b
	}

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// Middleware enforces the rate limit before calling the next handler
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !l.Allow(req.RemoteAddr) {
			http.Error(w, "rate limit", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, req)
	})
}
