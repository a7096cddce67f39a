package ws

import "encoding/json"

// Room is the set of connections joined to one board. It carries no lock
// of its own: membership, roster reads, and the identity fields the roster
// reads from are all guarded by the hub mutex, so a snapshot can never be
// computed mid-mutation.
type Room struct {
	members map[*Conn]struct{}
}

func newRoom() *Room { return &Room{members: map[*Conn]struct{}{}} }

func (r *Room) add(c *Conn)    { r.members[c] = struct{}{} }
func (r *Room) remove(c *Conn) { delete(r.members, c) }
func (r *Room) empty() bool    { return len(r.members) == 0 }

// RosterEntry is one participant in a roster snapshot.
type RosterEntry struct {
	UserID       string          `json:"userId"`
	ConnectionID string          `json:"connectionId"`
	Presence     json.RawMessage `json:"presence"`
	Information  Information     `json:"information"`
}

// Information is the display half of a roster entry.
type Information struct {
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// roster derives the current participant list from live connection state.
// Always recomputed; identity and presence mutate independently of
// membership, so a cached snapshot would go stale. Order is unspecified.
func (r *Room) roster() []RosterEntry {
	out := make([]RosterEntry, 0, len(r.members))
	for c := range r.members {
		out = append(out, RosterEntry{
			UserID:       c.userID,
			ConnectionID: c.connectionID,
			Presence:     c.presence,
			Information:  Information{Name: c.name, Picture: c.picture},
		})
	}
	return out
}

// recipients lists members to deliver to, leaving out exclude when set.
func (r *Room) recipients(exclude *Conn) []*Conn {
	out := make([]*Conn, 0, len(r.members))
	for c := range r.members {
		if c == exclude {
			continue
		}
		out = append(out, c)
	}
	return out
}
