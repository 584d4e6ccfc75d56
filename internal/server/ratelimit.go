package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"sportbook/internal/api"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	clientIdleTTL = 3 * time.Minute
	sweepInterval = time.Minute
)

// clientLimiter keeps one token bucket per client IP.
type clientLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	now     func() time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiter(rps float64, burst int, ttl time.Duration) *clientLimiter {
	return &clientLimiter{
		clients: make(map[string]*clientBucket),
		limit:   rate.Limit(rps),
		burst:   burst,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (l *clientLimiter) allow(ip string) bool {
	l.mu.Lock()
	b, ok := l.clients[ip]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = b
	}
	b.lastSeen = l.now()
	l.mu.Unlock()

	return b.limiter.Allow()
}

// sweep drops clients idle for longer than ttl and returns how many remain.
func (l *clientLimiter) sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.ttl)
	for ip, b := range l.clients {
		if b.lastSeen.Before(cutoff) {
			delete(l.clients, ip)
		}
	}
	return len(l.clients)
}

// run sweeps every interval until ctx is done.
func (l *clientLimiter) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

// RateLimitMiddleware limits each client IP to rps with the given burst.
// Idle clients are forgotten by a sweeper that stops with ctx.
func RateLimitMiddleware(ctx context.Context, rps float64, burst int) gin.HandlerFunc {
	limiter := newClientLimiter(rps, burst, clientIdleTTL)
	go limiter.run(ctx, sweepInterval)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{
				Error: api.ErrorBody{Kind: "RATE_LIMITED", Message: "Rate limit exceeded"},
			})
			return
		}
		c.Next()
	}
}
