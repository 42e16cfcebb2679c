package websocket

import "github.com/campusgrid/timetable-backend/internal/timegrid"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventGrid  Event = "grid"
	EventError Event = "error"
	EventPong  Event = "pong"
)

// GridResponse carries a full rendered grid. Sent once on connect and
// again after every schedule publish.
type GridResponse struct {
	Event Event          `json:"event"`
	Grid  *timegrid.Grid `json:"grid"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
