package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/assessflow/pipeline/ent"
	"github.com/assessflow/pipeline/ent/job"
	"github.com/assessflow/pipeline/pkg/batch"
	"github.com/assessflow/pipeline/pkg/models"
)

// BatchService persists folder-upload fan-outs. A batch and all of its
// sibling jobs are created in one transaction, so total_jobs can always
// settle against the jobs table; status is derived there, never counted
// up front.
type BatchService struct {
	client *ent.Client
	jobs   *JobService
}

// NewBatchService creates a new BatchService.
func NewBatchService(client *ent.Client, jobs *JobService) *BatchService {
	return &BatchService{client: client, jobs: jobs}
}

// CreateBatch expands the upload through the batch planner and writes
// the batch row plus one queued job per file atomically. The stored
// output_dir is the batch root; per-document directories live in each
// job's initial variables.
func (s *BatchService) CreateBatch(httpCtx context.Context, req models.CreateBatchRequest) (*ent.Batch, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("projectId", "projectId is required")
	}
	if len(req.Files) == 0 {
		return nil, NewValidationError("files", "at least one file is required")
	}
	for i, f := range req.Files {
		if f.Name == "" {
			return nil, NewValidationError("files", fmt.Sprintf("file %d has no name", i))
		}
	}

	proj, err := s.client.Project.Get(httpCtx, req.ProjectID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: project %s", ErrNotFound, req.ProjectID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	batchID := uuid.New().String()
	name := req.Name
	if name == "" {
		name = "batch-" + batchID[:8]
	}
	outputBase := req.OutputDir
	if outputBase == "" {
		outputBase = batch.DefaultOutputBase
	}
	specs := batch.Plan(batchID, outputBase, req.Files)
	kind := models.PipelineKindForProject(proj.Name)

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	created, err := tx.Batch.Create().
		SetID(batchID).
		SetProjectID(proj.ID).
		SetName(name).
		SetOutputDir(batch.Root(outputBase, batchID)).
		SetTotalJobs(len(specs)).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch: %w", err)
	}

	jobs := make([]*ent.Job, 0, len(specs))
	for _, spec := range specs {
		j, err := tx.Job.Create().
			SetID(spec.JobID).
			SetProjectID(proj.ID).
			SetPipelineKind(kind).
			SetStatus(job.StatusQueued).
			SetBatchID(batchID).
			SetInitialVariables(spec.InitialVariables).
			Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to create batch job for %s: %w", spec.SourceName, err)
		}
		jobs = append(jobs, j)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit batch: %w", err)
	}

	for _, j := range jobs {
		s.jobs.publishStatus(httpCtx, j, models.JobStatusQueued, "")
	}
	slog.Info("Batch created",
		"batch_id", batchID,
		"project_id", proj.ID,
		"kind", kind,
		"jobs", len(jobs))
	return created, nil
}

// GetBatch returns one batch row by id.
func (s *BatchService) GetBatch(ctx context.Context, batchID string) (*ent.Batch, error) {
	b, err := s.client.Batch.Get(ctx, batchID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: batch %s", ErrNotFound, batchID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get batch: %w", err)
	}
	return b, nil
}

// GetBatchStatus aggregates the batch row with the per-job view from the
// dispatcher's listing, terminal siblings included.
func (s *BatchService) GetBatchStatus(ctx context.Context, batchID string) (*models.BatchStatus, error) {
	b, err := s.GetBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	perJob, err := s.jobs.ListActive(ctx, models.JobFilters{BatchID: batchID})
	if err != nil {
		return nil, fmt.Errorf("failed to list batch jobs: %w", err)
	}

	status := &models.BatchStatus{
		ID:            b.ID,
		ProjectID:     b.ProjectID,
		Name:          b.Name,
		OutputDir:     b.OutputDir,
		Status:        string(b.Status),
		TotalJobs:     b.TotalJobs,
		CompletedJobs: b.CompletedJobs,
		FailedJobs:    b.FailedJobs,
		CreatedAt:     b.CreatedAt,
		CompletedAt:   b.CompletedAt,
		PerJob:        perJob,
	}
	return status, nil
}
