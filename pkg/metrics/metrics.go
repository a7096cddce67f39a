package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler exposes Prometheus metrics at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}

var (
	// ConnectionsActive tracks currently open websocket connections.
	ConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "whiteboard_connections_active",
		Help: "Number of open websocket connections.",
	})

	// RoomsActive tracks rooms with at least one member.
	RoomsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "whiteboard_rooms_active",
		Help: "Number of rooms with at least one member.",
	})

	// EventsRelayed counts relayed client events by event name.
	EventsRelayed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "whiteboard_events_relayed_total",
		Help: "Client events relayed, labeled by event name.",
	}, []string{"event"})

	// AuthFailures counts refused connection attempts.
	AuthFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "whiteboard_auth_failures_total",
		Help: "Connection attempts refused during authentication.",
	})
)
