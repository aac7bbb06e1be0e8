package middleware

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// client tracks the limiter for one remote IP hitting the credential
// endpoints, plus when it was last seen so idle entries can be evicted.
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type clientLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	rps     rate.Limit
	burst   int
	idle    time.Duration
}

func newClientLimiter(rps float64, burst int, idle time.Duration) *clientLimiter {
	cl := &clientLimiter{
		clients: make(map[string]*client),
		rps:     rate.Limit(rps),
		burst:   burst,
		idle:    idle,
	}
	go cl.sweep()
	return cl
}

func (cl *clientLimiter) allow(ip string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	c, ok := cl.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(cl.rps, cl.burst)}
		cl.clients[ip] = c
	}
	c.lastSeen = time.Now()
	return c.limiter.Allow()
}

func (cl *clientLimiter) sweep() {
	ticker := time.NewTicker(cl.idle)
	defer ticker.Stop()

	for range ticker.C {
		cl.mu.Lock()
		for ip, c := range cl.clients {
			if time.Since(c.lastSeen) > cl.idle {
				delete(cl.clients, ip)
			}
		}
		cl.mu.Unlock()
	}
}

// RateLimit returns middleware that limits requests per client IP. It guards
// login and registration against credential brute-forcing; limiter state for
// an IP is dropped after five idle minutes.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := newClientLimiter(rps, burst, 5*time.Minute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiter.allow(ip) {
				slog.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
				w.Header().Set("Retry-After", "1")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "too many requests"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
