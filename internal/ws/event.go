package ws

import "encoding/json"

// Event names understood by the relay. Everything except evtUsers is
// client-originated; evtUsers is the roster snapshot pushed by the server.
const (
	evtRegister    = "register"
	evtPresence    = "presence"
	evtLayerUpdate = "layer-update"
	evtLayerSend   = "layer-send"
	evtLayerDelete = "layer-delete"
	evtUsers       = "users"
)

// Envelope frames every websocket message: a named event plus positional
// arguments kept as raw JSON so relayed payloads pass through untouched.
type Envelope struct {
	Event string            `json:"event"`
	Args  []json.RawMessage `json:"args"`
}

func decodeEnvelope(b []byte) (Envelope, error) {
	var env Envelope
	err := json.Unmarshal(b, &env)
	return env, err
}

// encodeEvent builds an outbound frame from an event name and Go values.
func encodeEvent(event string, args ...any) ([]byte, error) {
	raw := make([]json.RawMessage, 0, len(args))
	for _, a := range args {
		b, err := json.Marshal(a)
		if err != nil {
			return nil, err
		}
		raw = append(raw, b)
	}
	return json.Marshal(Envelope{Event: event, Args: raw})
}

// stringArg returns args[i] decoded as a string, or "" if the argument
// is missing or not a string. Clients that register with fewer fields
// just end up with empty identity, same as before registering.
func stringArg(args []json.RawMessage, i int) string {
	if i >= len(args) {
		return ""
	}
	var s string
	_ = json.Unmarshal(args[i], &s)
	return s
}

// rawArg returns args[i] verbatim, or nil if absent.
func rawArg(args []json.RawMessage, i int) json.RawMessage {
	if i >= len(args) {
		return nil
	}
	return args[i]
}
