package models

// CreateEventRequest contains fields for persisting an event before fan-out.
type CreateEventRequest struct {
	JobID   string         `json:"job_id,omitempty"`
	Channel string         `json:"channel"`
	Payload map[string]any `json:"payload"`
}
