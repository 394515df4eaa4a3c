package audit

import (
	"encoding/json"
	"time"
)

// Entry is one audited mutation: who did what to which resource.
type Entry struct {
	Timestamp     time.Time       `json:"timestamp"`
	RequestID     string          `json:"request_id,omitempty"`
	ActorID       string          `json:"actor_id"`
	Action        string          `json:"action"`
	Entity        string          `json:"entity"`
	ResourceID    string          `json:"resource_id"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}
