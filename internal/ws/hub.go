package ws

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"log/slog"

	"github.com/JvSdv/whiteboardSoketServer/pkg/auth"
	"github.com/JvSdv/whiteboardSoketServer/pkg/metrics"
)

// Authorizer decides whether a user may join a board's room. The default
// allows everything, matching the relay's historical behavior; a stricter
// deployment can inject its own check without touching the relay core.
type Authorizer interface {
	Authorize(ctx context.Context, userID, roomID string) error
}

// AllowAll authorizes every join.
type AllowAll struct{}

func (AllowAll) Authorize(context.Context, string, string) error { return nil }

// Hub owns the room registry and the per-event relay rules.
type Hub struct {
	log      *slog.Logger
	verifier *auth.JWT
	authz    Authorizer

	mu    sync.Mutex
	rooms map[string]*Room // active board rooms by roomID
}

// NewHub sets up the hub with the token verifier + authorization hook.
func NewHub(logger *slog.Logger, verifier *auth.JWT, authz Authorizer) *Hub {
	if authz == nil {
		authz = AllowAll{}
	}
	return &Hub{log: logger, verifier: verifier, authz: authz, rooms: map[string]*Room{}}
}

// join adds a connection to its room, creating the room on first member.
func (h *Hub) join(c *Conn) {
	h.mu.Lock()
	rm := h.rooms[c.roomID]
	if rm == nil {
		rm = newRoom()
		h.rooms[c.roomID] = rm
		metrics.RoomsActive.Inc()
	}
	rm.add(c)
	h.mu.Unlock()

	metrics.ConnectionsActive.Inc()
	h.log.Debug("ws.join", "room", c.roomID, "conn", c.id, "user", c.userID)
}

// leave removes a connection. An emptied room is deleted immediately; a
// room with members left gets a fresh roster broadcast.
func (h *Hub) leave(c *Conn) {
	h.mu.Lock()
	rm := h.rooms[c.roomID]
	if rm == nil {
		h.mu.Unlock()
		return
	}
	rm.remove(c)
	if rm.empty() {
		delete(h.rooms, c.roomID)
		metrics.RoomsActive.Dec()
		h.mu.Unlock()
		metrics.ConnectionsActive.Dec()
		h.log.Debug("ws.room.closed", "room", c.roomID)
		return
	}
	payload, err := encodeEvent(evtUsers, rm.roster())
	targets := rm.recipients(nil)
	h.mu.Unlock()

	metrics.ConnectionsActive.Dec()
	if err != nil {
		h.log.Error("ws.roster.encode", "err", err)
		return
	}
	deliver(targets, payload)
	h.log.Debug("ws.leave", "room", c.roomID, "conn", c.id)
}

// handleRegister stores the client-supplied identity and echoes the roster
// to the whole room, sender included: the registering connection has no
// other way to learn about itself and its peers.
func (h *Hub) handleRegister(c *Conn, env Envelope) {
	h.mu.Lock()
	c.userID = stringArg(env.Args, 0)
	c.connectionID = stringArg(env.Args, 1)
	c.name = stringArg(env.Args, 2)
	c.picture = stringArg(env.Args, 3)

	rm := h.rooms[c.roomID]
	if rm == nil {
		h.mu.Unlock()
		return
	}
	payload, err := encodeEvent(evtUsers, rm.roster())
	targets := rm.recipients(nil)
	h.mu.Unlock()

	if err != nil {
		h.log.Error("ws.roster.encode", "err", err)
		return
	}
	deliver(targets, payload)
}

// handlePresence stores the opaque presence value and sends the roster to
// everyone else; the originator already has its own state.
func (h *Hub) handlePresence(c *Conn, env Envelope) {
	h.mu.Lock()
	c.presence = rawArg(env.Args, 0)

	rm := h.rooms[c.roomID]
	if rm == nil {
		h.mu.Unlock()
		return
	}
	payload, err := encodeEvent(evtUsers, rm.roster())
	targets := rm.recipients(c)
	h.mu.Unlock()

	if err != nil {
		h.log.Error("ws.roster.encode", "err", err)
		return
	}
	deliver(targets, payload)
}

// relay passes a frame through to the rest of the room untouched. No
// validation, no ordering, no dedup: layer payloads are the clients'
// business.
func (h *Hub) relay(c *Conn, frame []byte) {
	h.mu.Lock()
	rm := h.rooms[c.roomID]
	if rm == nil {
		h.mu.Unlock()
		return
	}
	targets := rm.recipients(c)
	h.mu.Unlock()

	deliver(targets, frame)
}

// dispatch routes one inbound frame. Unknown events are dropped.
func (h *Hub) dispatch(c *Conn, frame []byte) {
	env, err := decodeEnvelope(frame)
	if err != nil {
		h.log.Debug("ws.frame.malformed", "conn", c.id, "err", err)
		return
	}

	switch env.Event {
	case evtRegister:
		h.handleRegister(c, env)
	case evtPresence:
		h.handlePresence(c, env)
	case evtLayerUpdate, evtLayerSend, evtLayerDelete:
		h.relay(c, frame)
	default:
		h.log.Debug("ws.event.unknown", "conn", c.id, "event", env.Event)
		return
	}
	metrics.EventsRelayed.WithLabelValues(env.Event).Inc()
}

// deliver fans a payload out to each recipient's send buffer. Called
// outside the hub mutex so a blocked socket can never stall the registry.
func deliver(targets []*Conn, payload []byte) {
	for _, t := range targets {
		t.send(payload)
	}
}

// ServeWS handles a new /ws connection: verify the token, consult the
// authorization hook, upgrade, join, then pump events until disconnect.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roomID := r.URL.Query().Get("roomId")
	if roomID == "" {
		http.Error(w, "roomId required", http.StatusBadRequest)
		return
	}

	id, err := h.verifier.Verify(r.URL.Query().Get("token"))
	if err != nil {
		metrics.AuthFailures.Inc()
		h.log.Warn("ws.auth.refused", "err", err)
		reason := auth.ErrInvalidToken.Error()
		if errors.Is(err, auth.ErrMissingToken) {
			reason = auth.ErrMissingToken.Error()
		}
		http.Error(w, reason, http.StatusUnauthorized)
		return
	}

	if err := h.authz.Authorize(ctx, id.Subject, roomID); err != nil {
		h.log.Warn("ws.authz.denied", "user", id.Subject, "room", roomID, "err", err)
		http.Error(w, "room access denied", http.StatusForbidden)
		return
	}

	sock, err := Accept(w, r)
	if err != nil {
		h.log.Error("ws.accept", "err", err)
		return
	}

	c := NewConn(sock, roomID, id.Subject, id.Email)
	h.join(c)

	go c.WriteLoop(ctx)

	// Inbound reader; any read error is a disconnect.
	for {
		frame, ok := c.Read(ctx)
		if !ok {
			break
		}
		h.dispatch(c, frame)
	}

	h.leave(c)
	_ = c.Close()
}
