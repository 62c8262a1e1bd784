package models

import "time"

// Job status values as stored and reported. Mirrors the ent enum; kept here
// as plain strings for wire payloads that must not depend on generated code.
const (
	JobStatusQueued     = "queued"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

// TerminalJobStatus reports whether s is a terminal job status.
func TerminalJobStatus(s string) bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// EnqueueJobRequest contains fields for queueing a job. SessionID is set for
// report jobs from the front-end; batch fan-out leaves it empty and sets
// BatchID plus per-file initial variables instead.
type EnqueueJobRequest struct {
	JobID            string            `json:"jobId,omitempty"`
	SessionID        string            `json:"sessionId,omitempty"`
	ProjectID        string            `json:"projectId"`
	InitialVariables map[string]string `json:"initialVariables,omitempty"`
	BatchID          string            `json:"batchId,omitempty"`
}

// PatchJobRequest is the body of a worker job update. An empty or
// "processing" status is a touch that renews the lease; "completed" carries
// the reports mapping; "failed" carries the error text.
type PatchJobRequest struct {
	Status  string    `json:"status,omitempty"`
	Reports ReportSet `json:"reports,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// JobWebhook is the terminal notification posted back to the front-end.
type JobWebhook struct {
	JobID       string    `json:"jobId"`
	SessionID   string    `json:"sessionId"`
	Status      string    `json:"status"`
	Reports     ReportSet `json:"reports,omitempty"`
	Error       string    `json:"error,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
}

// PollResponse answers the front-end job poller.
type PollResponse struct {
	JobID   string    `json:"jobId"`
	Status  string    `json:"status"`
	Reports ReportSet `json:"reports,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// JobProgress is the computed progress block attached to active jobs,
// joined from the most recent running execution instance.
type JobProgress struct {
	TotalNodes    int    `json:"total_nodes"`
	ExecutedNodes int    `json:"executed_nodes"`
	FailedNodes   int    `json:"failed_nodes"`
	Percentage    int    `json:"percentage"`
	CurrentNodeID string `json:"current_node_id,omitempty"`
}

// ActiveJob is one row of the dispatcher's active-jobs listing.
type ActiveJob struct {
	ID           string       `json:"id"`
	SessionID    string       `json:"session_id,omitempty"`
	ProjectID    string       `json:"project_id"`
	PipelineKind string       `json:"pipeline_kind"`
	Status       string       `json:"status"`
	WorkerID     string       `json:"worker_id,omitempty"`
	BatchID      string       `json:"batch_id,omitempty"`
	Retries      int          `json:"retries"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Progress     *JobProgress `json:"progress,omitempty"`
}

// JobFilters narrows the active-jobs listing. A batch filter includes
// terminal siblings; the plain listing covers active jobs only.
type JobFilters struct {
	ProjectID string
	Status    string
	BatchID   string
}

// LeasedJob is the hand-off shape returned to a leasing worker.
type LeasedJob struct {
	ID               string            `json:"id"`
	SessionID        string            `json:"sessionId,omitempty"`
	ProjectID        string            `json:"projectId"`
	PipelineKind     string            `json:"pipelineKind"`
	BatchID          string            `json:"batchId,omitempty"`
	InitialVariables map[string]string `json:"initialVariables,omitempty"`
	LeaseDeadline    time.Time         `json:"leaseDeadline"`
}
