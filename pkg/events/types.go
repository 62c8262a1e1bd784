// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Persistent events (job status transitions, node completions) are written
// to the events table and NOTIFY'd in one transaction, so a reconnecting
// client can catch up from the table by last-seen row id. Transient events
// (per-run progress counters) are NOTIFY-only: cheap, high-frequency, and
// reconstructible from the execution instance row on reconnect.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Job lifecycle — one event type for every status transition.
	EventTypeJobStatus = "job.status"

	// Node lifecycle — published when a node evaluation terminates.
	EventTypeNodeStatus = "node.status"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Per-run progress counters — high-frequency, reconstructible.
	EventTypeJobProgress = "job.progress"
)

// Node status values (used in NodeStatusPayload.Status).
const (
	NodeStatusCompleted = "completed"
	NodeStatusFailed    = "failed"
)

// GlobalJobsChannel carries job.status copies for every job. The active
// jobs page subscribes here instead of one channel per job.
const GlobalJobsChannel = "jobs"

// JobChannel returns the channel name for a specific job's events.
// Format: "job:{job_id}"
func JobChannel(jobID string) string {
	return "job:" + jobID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "job:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
