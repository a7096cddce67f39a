package httpx

import (
	"net/http"

	"log/slog"

	"github.com/JvSdv/whiteboardSoketServer/internal/app"
	"github.com/JvSdv/whiteboardSoketServer/internal/ws"
	"github.com/JvSdv/whiteboardSoketServer/pkg/metrics"
)

// NewRouter wires up the liveness probes, metrics, and the relay endpoint
func NewRouter(cfg app.Config, logger *slog.Logger, hub *ws.Hub) http.Handler {
	mw := NewMiddleware(cfg)

	mux := http.NewServeMux()

	// Liveness probe kept byte-compatible with the old server.
	mux.Handle("/ping", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Pong!"))
	}))
	mux.Handle("/healthz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) }))
	mux.Handle("/readyz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) }))
	mux.Handle("/metrics", metrics.Handler())

	// WebSocket endpoint
	mux.Handle("/ws", http.HandlerFunc(hub.ServeWS))

	// CORS + handshake rate limit applied globally
	return mw.Wrap(mux)
}
