package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serve(handler echo.HandlerFunc, e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	req.Header.Set("X-Real-IP", ip)
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRateLimiter_AllowsBurstThenRejects(t *testing.T) {
	e := echo.New()
	handler := NewRateLimiter(2, 4).Middleware()(okHandler)

	for i := 0; i < 4; i++ {
		assert.Equal(t, http.StatusOK, serve(handler, e, "10.0.0.1").Code, "request %d", i)
	}

	rec := serve(handler, e, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_PerClient(t *testing.T) {
	e := echo.New()
	handler := NewRateLimiter(1, 1).Middleware()(okHandler)

	assert.Equal(t, http.StatusOK, serve(handler, e, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(handler, e, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, serve(handler, e, "10.0.0.2").Code)
}

func TestRateLimiter_BurstNeverBelowRate(t *testing.T) {
	rl := NewRateLimiter(5, 1)
	assert.Equal(t, 5, rl.burst)

	rl = NewRateLimiter(0, 0)
	assert.Equal(t, 1, rl.burst)
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(10, 10)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	handler := rl.Middleware()(okHandler)
	serve(handler, e, "10.0.0.1")
	serve(handler, e, "10.0.0.2")
	assert.Equal(t, 2, rl.visitorCount())

	now = now.Add(2 * time.Minute)
	serve(handler, e, "10.0.0.2")

	now = now.Add(2 * time.Minute)
	rl.evictIdle()
	assert.Equal(t, 1, rl.visitorCount())
}

func TestRateLimiter_RunStopsOnCancel(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		rl.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRateLimiter_ConcurrentAccess(t *testing.T) {
	e := echo.New()
	handler := NewRateLimiter(100, 100).Middleware()(okHandler)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			serve(handler, e, "10.0.0.9")
		}()
	}
	wg.Wait()
}
