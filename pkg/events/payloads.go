package events

// BasePayload carries the fields every event shares. Timestamp is
// RFC3339Nano; JobID doubles as the catchup routing key.
type BasePayload struct {
	Type      string `json:"type"`
	JobID     string `json:"job_id"`
	Timestamp string `json:"timestamp"`
}

// JobStatusPayload is the payload for job.status events. Published on
// every queue transition: queued, processing (lease), completed, failed,
// and reaper-driven returns to queued.
type JobStatusPayload struct {
	BasePayload

	SessionID string `json:"session_id,omitempty"`
	BatchID   string `json:"batch_id,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
	Status    string `json:"status"`
	WorkerID  string `json:"worker_id,omitempty"`
	Retries   int    `json:"retries,omitempty"`
	Error     string `json:"error,omitempty"`
}

// JobProgressPayload is the payload for job.progress transient events,
// published after every node termination within a run.
type JobProgressPayload struct {
	BasePayload

	ExecutionInstanceID string `json:"execution_instance_id"`
	TotalNodes          int    `json:"total_nodes"`
	ExecutedNodes       int    `json:"executed_nodes"`
	FailedNodes         int    `json:"failed_nodes"`
	Percentage          int    `json:"percentage"`
	CurrentNodeID       string `json:"current_node_id,omitempty"`
}

// NodeStatusPayload is the payload for node.status events. One per node
// termination; persisted so reconnecting viewers get the full node
// timeline of a run.
type NodeStatusPayload struct {
	BasePayload

	ExecutionInstanceID string `json:"execution_instance_id"`
	NodeID              string `json:"node_id"`
	NodeLabel           string `json:"node_label"`
	Status              string `json:"status"` // completed, failed
	Error               string `json:"error,omitempty"`
	DurationMS          int64  `json:"duration_ms"`
}
