package limiter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestVisitors_Allow(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	v := NewVisitors(1, 2, time.Minute)
	v.now = func() time.Time { return now }

	assert.True(t, v.Allow("10.0.0.1"))
	assert.True(t, v.Allow("10.0.0.1"))
	assert.False(t, v.Allow("10.0.0.1"), "burst exhausted")
	assert.True(t, v.Allow("10.0.0.2"), "buckets are per ip")

	now = now.Add(time.Second)
	assert.True(t, v.Allow("10.0.0.1"), "refilled")
}

func TestVisitors_Cleanup(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	v := NewVisitors(1, 1, time.Minute)
	v.now = func() time.Time { return now }

	v.Allow("a")
	now = now.Add(30 * time.Second)
	v.Allow("b")
	now = now.Add(45 * time.Second)

	v.Cleanup()
	assert.Equal(t, 1, v.Len())
}

func TestNewVisitors_NonPositiveTTL(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Second} {
		v := NewVisitors(1, 1, ttl)
		assert.Equal(t, DefaultTTL, v.ttl)
	}
}

func TestVisitors_RunCleanup(t *testing.T) {
	var mu sync.Mutex
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	v := NewVisitors(1, 1, 10*time.Millisecond)
	v.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	v.Allow("a")

	mu.Lock()
	now = now.Add(time.Minute)
	mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		v.RunCleanup(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return v.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop after cancel")
	}
}

func TestLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Limit(ctx, 1, 1, 0))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(NewVisitors(1, 1, time.Minute)))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"detail":"too many requests"}`, rec.Body.String())
}
