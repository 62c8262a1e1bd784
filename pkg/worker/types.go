// Package worker polls the job queue and drives one DAG execution per
// leased job.
package worker

import (
	"context"
	"errors"
	"time"

	"github.com/assessflow/pipeline/pkg/executor"
	"github.com/assessflow/pipeline/pkg/models"
)

// ErrNoJobsAvailable indicates an empty lease poll.
var ErrNoJobsAvailable = errors.New("no jobs available")

// JobExecutor runs one project DAG for a leased job.
//
// The run writes its own durable trail (instance row, execution logs,
// progress artifacts, events) while it executes. The worker only handles
// leasing, lease renewal and the terminal report.
type JobExecutor interface {
	Run(ctx context.Context, req executor.RunRequest) (*models.ExecutionSummary, error)
}

// Status represents the current state of a worker.
type Status string

// Worker status constants.
const (
	StatusIdle    Status = "idle"
	StatusWorking Status = "working"
)

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	QueueDepths   map[string]int `json:"queue_depths"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	Status        string    `json:"status"`
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
