package limiter

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Visitors keeps one token bucket per client IP. Entries idle for longer than
// ttl are evicted by Cleanup.
type Visitors struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
}

// DefaultTTL replaces a non-positive idle ttl.
const DefaultTTL = 10 * time.Minute

func NewVisitors(rps int, burst int, ttl time.Duration) *Visitors {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Visitors{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (v *Visitors) Allow(ip string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	vis, ok := v.visitors[ip]
	if !ok {
		vis = &visitor{limiter: rate.NewLimiter(v.limit, v.burst)}
		v.visitors[ip] = vis
	}
	vis.lastSeen = now

	return vis.limiter.AllowN(now, 1)
}

func (v *Visitors) Cleanup() {
	v.mu.Lock()
	defer v.mu.Unlock()

	for ip, vis := range v.visitors {
		if v.now().Sub(vis.lastSeen) > v.ttl {
			delete(v.visitors, ip)
		}
	}
}

// RunCleanup evicts idle visitors every ttl until ctx is done.
func (v *Visitors) RunCleanup(ctx context.Context) {
	ticker := time.NewTicker(v.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v.Cleanup()
		}
	}
}

func (v *Visitors) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.visitors)
}

// Limit rejects requests over rps (with burst) per client IP with 429. Idle
// visitors are evicted in the background until ctx is done.
func Limit(ctx context.Context, rps int, burst int, ttl time.Duration) gin.HandlerFunc {
	visitors := NewVisitors(rps, burst, ttl)

	go visitors.RunCleanup(ctx)

	return Middleware(visitors)
}

func Middleware(visitors *Visitors) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !visitors.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "too many requests"})
			return
		}
		c.Next()
	}
}
