package httpx

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JvSdv/whiteboardSoketServer/internal/app"
	"github.com/JvSdv/whiteboardSoketServer/internal/ws"
	"github.com/JvSdv/whiteboardSoketServer/pkg/auth"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := app.Config{
		Env:        "test",
		CORSAllow:  []string{"*"},
		JWTSecret:  "test-secret",
		RateMax:    100,
		RateWindow: time.Minute,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := ws.NewHub(logger, auth.New(cfg.JWTSecret), nil)
	return NewRouter(cfg, logger, hub)
}

func TestRouter_Ping(t *testing.T) {
	h := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Pong!", rec.Body.String())
}

func TestRouter_Probes(t *testing.T) {
	h := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_Metrics(t *testing.T) {
	h := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "whiteboard_")
}

func TestRouter_WSRejectsPlainGet(t *testing.T) {
	h := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))

	// No roomId and no upgrade: refused before any room state is touched.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
