package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"nhooyr.io/websocket"
)

// Conn is one authenticated client channel joined to a single room.
//
// The identity and presence fields start from the token's claims and are
// filled in by the client's register/presence events. They are written by
// the connection's own event handlers and read by the roster builder, both
// under the hub mutex.
type Conn struct {
	id     string // server-generated registry key
	roomID string
	sock   *websocket.Conn
	out    chan []byte

	userID       string
	email        string
	connectionID string
	name         string
	picture      string
	presence     json.RawMessage // nil until the first presence event
}

// Accept upgrades HTTP to websocket (allow all origins)
func Accept(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	return websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns:  []string{"*"},
		CompressionMode: websocket.CompressionDisabled,
	})
}

// NewConn wraps a WS connection for a room, seeding userID from the
// verified token subject.
func NewConn(sock *websocket.Conn, roomID, userID, email string) *Conn {
	return &Conn{
		id:     uuid.NewString(),
		roomID: roomID,
		sock:   sock,
		out:    make(chan []byte, 256),
		userID: userID,
		email:  email,
	}
}

// send queues an outbound frame without blocking; a slow consumer whose
// buffer is full loses the frame rather than stalling the room.
func (c *Conn) send(b []byte) {
	select {
	case c.out <- b:
	default:
	}
}

// Read blocks until it receives a text/binary message
// Returns false if connection is closed
func (c *Conn) Read(ctx context.Context) ([]byte, bool) {
	for {
		typ, data, err := c.sock.Read(ctx)
		if err != nil {
			return nil, false
		}
		if typ == websocket.MessageText || typ == websocket.MessageBinary {
			return data, true
		}
	}
}

// WriteLoop sends outbound messages + periodic pings
// Exits when ctx is cancelled
func (c *Conn) WriteLoop(ctx context.Context) {
	t := time.NewTicker(20 * time.Second)
	defer t.Stop()

	for {
		select {
		case b := <-c.out:
			_ = c.sock.Write(ctx, websocket.MessageText, b)
		case <-t.C:
			_ = c.sock.Ping(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Close closes the WS connection normally
func (c *Conn) Close() error { return c.sock.Close(websocket.StatusNormalClosure, "bye") }
