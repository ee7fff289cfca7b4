package models

import "encoding/json"

// Realtime event kinds published after a successful insert.
const (
	EventDirectMessage = "message"
	EventGroupMessage  = "group_message"
	EventNotification  = "notification"
)

// RealtimeEvent is the envelope published on Redis and delivered over the
// websocket. Payload carries the inserted row so clients can apply it
// without a refetch.
type RealtimeEvent struct {
	Kind     string          `json:"kind"`
	TargetID int             `json:"target_id,omitempty"` // receiver user id; 0 means broadcast
	Payload  json.RawMessage `json:"payload"`
}
