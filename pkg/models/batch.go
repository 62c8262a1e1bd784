package models

import "time"

// BatchFile is one input document of a folder upload.
type BatchFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// CreateBatchRequest contains fields for a folder-upload fan-out.
type CreateBatchRequest struct {
	ProjectID string      `json:"projectId"`
	Name      string      `json:"name,omitempty"`
	OutputDir string      `json:"outputDir,omitempty"`
	Files     []BatchFile `json:"files"`
}

// BatchJobSpec is one pre-built sibling job of a batch, produced by the
// coordinator and persisted by the batch service.
type BatchJobSpec struct {
	JobID            string            `json:"job_id"`
	SourceName       string            `json:"source_name"`
	InitialVariables map[string]string `json:"initial_variables"`
}

// BatchStatus aggregates a batch and the per-job progress of its siblings.
type BatchStatus struct {
	ID            string      `json:"id"`
	ProjectID     string      `json:"project_id"`
	Name          string      `json:"name"`
	OutputDir     string      `json:"output_dir"`
	Status        string      `json:"status"`
	TotalJobs     int         `json:"total_jobs"`
	CompletedJobs int         `json:"completed_jobs"`
	FailedJobs    int         `json:"failed_jobs"`
	CreatedAt     time.Time   `json:"created_at"`
	CompletedAt   *time.Time  `json:"completed_at,omitempty"`
	PerJob        []ActiveJob `json:"per_job,omitempty"`
}
