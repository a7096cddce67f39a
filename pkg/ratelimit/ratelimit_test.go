package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllow_ConsumesWindow(t *testing.T) {
	l := New(2, time.Minute)

	assert.True(t, l.Allow("1.2.3.4:5678"))
	assert.True(t, l.Allow("1.2.3.4:9999"))
	assert.False(t, l.Allow("1.2.3.4:5678"), "third request in window should be refused")

	// A different IP has its own bucket.
	assert.True(t, l.Allow("5.6.7.8:1234"))
}

func TestAllow_WindowReset(t *testing.T) {
	l := New(1, 10*time.Millisecond)

	assert.True(t, l.Allow("1.2.3.4:1"))
	assert.False(t, l.Allow("1.2.3.4:1"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, l.Allow("1.2.3.4:1"), "new window should refill tokens")
}

func TestMiddleware_RefusesOverLimit(t *testing.T) {
	l := New(1, time.Minute)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.RemoteAddr = "9.9.9.9:1000"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
