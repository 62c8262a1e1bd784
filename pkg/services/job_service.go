package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/assessflow/pipeline/ent"
	"github.com/assessflow/pipeline/ent/batch"
	"github.com/assessflow/pipeline/ent/executioninstance"
	"github.com/assessflow/pipeline/ent/job"
	"github.com/assessflow/pipeline/ent/predicate"
	"github.com/assessflow/pipeline/ent/report"
	"github.com/assessflow/pipeline/ent/session"
	"github.com/assessflow/pipeline/pkg/config"
	"github.com/assessflow/pipeline/pkg/events"
	"github.com/assessflow/pipeline/pkg/models"
)

// JobEventPublisher is the slice of the events publisher the job service
// needs. Nil disables publication.
type JobEventPublisher interface {
	PublishJobStatus(ctx context.Context, jobID string, payload events.JobStatusPayload) error
}

// WebhookSender delivers terminal job notifications to the front-end.
// Implementations retry internally and return the last error once the
// attempt budget is spent.
type WebhookSender interface {
	Deliver(ctx context.Context, hook models.JobWebhook) error
}

// reportRows fixes the wire-name to storage mapping for delivered reports.
var reportRows = map[string]struct {
	kind       report.Type
	visibility report.Visibility
}{
	models.ReportNameAdapted:      {report.TypeAdapted, report.VisibilityPrivate},
	models.ReportNameProfessional: {report.TypeFull, report.VisibilityRestricted},
	models.ReportNameScoreProfile: {report.TypeScoreTable, report.VisibilityRestricted},
}

// reportNames is the inverse mapping, used when reports are read back.
var reportNames = map[report.Type]string{
	report.TypeAdapted:    models.ReportNameAdapted,
	report.TypeFull:       models.ReportNameProfessional,
	report.TypeScoreTable: models.ReportNameScoreProfile,
}

// JobService is the authoritative job queue. Jobs move queued →
// processing → {completed, failed}; terminal states never transition
// again. Leasing hands a job to exactly one worker at a time via
// FOR UPDATE SKIP LOCKED, and a lease deadline bounds how long a silent
// worker keeps that claim before the reaper returns the job to the
// queue.
type JobService struct {
	client    *ent.Client
	cfg       *config.Config
	publisher JobEventPublisher
	webhooks  WebhookSender
}

// NewJobService creates a new JobService. publisher and webhooks may be
// nil, which disables event publication and webhook delivery.
func NewJobService(client *ent.Client, cfg *config.Config, publisher JobEventPublisher, webhooks WebhookSender) *JobService {
	return &JobService{client: client, cfg: cfg, publisher: publisher, webhooks: webhooks}
}

// Enqueue creates a queued job for a project. Session-bound enqueues
// require the session to be COMPLETED; they join an already queued or
// processing job idempotently and conflict with a completed one (a
// failed prior job allows a retry). Batch fan-out leaves SessionID
// empty and sets BatchID plus the per-file initial variables.
func (s *JobService) Enqueue(httpCtx context.Context, req models.EnqueueJobRequest) (*ent.Job, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("projectId", "projectId is required")
	}

	proj, err := s.client.Project.Get(httpCtx, req.ProjectID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: project %s", ErrNotFound, req.ProjectID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if req.SessionID != "" {
		sess, err := s.client.Session.Get(httpCtx, req.SessionID)
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: session %s", ErrNotFound, req.SessionID)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get session: %w", err)
		}
		if sess.Status != session.StatusCompleted {
			return nil, fmt.Errorf("%w: session %s is %s, want %s", ErrInvalidInput, req.SessionID, sess.Status, session.StatusCompleted)
		}

		prior, err := s.client.Job.Query().
			Where(job.SessionIDEQ(req.SessionID)).
			Order(ent.Desc(job.FieldCreatedAt)).
			All(httpCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session jobs: %w", err)
		}
		for _, p := range prior {
			switch p.Status {
			case job.StatusQueued, job.StatusProcessing:
				slog.Info("Enqueue joined active job", "session_id", req.SessionID, "job_id", p.ID)
				return p, nil
			case job.StatusCompleted:
				return nil, fmt.Errorf("%w: session %s already completed job %s", ErrConflict, req.SessionID, p.ID)
			}
		}
	}

	jobID := req.JobID
	if jobID == "" {
		jobID = uuid.New().String()
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.Job.Create().
		SetID(jobID).
		SetProjectID(proj.ID).
		SetPipelineKind(models.PipelineKindForProject(proj.Name)).
		SetStatus(job.StatusQueued)
	if req.SessionID != "" {
		create = create.SetSessionID(req.SessionID)
	}
	if req.BatchID != "" {
		create = create.SetBatchID(req.BatchID)
	}
	if len(req.InitialVariables) > 0 {
		create = create.SetInitialVariables(req.InitialVariables)
	}

	created, err := create.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	if req.SessionID != "" {
		if err := s.client.Session.Update().
			Where(session.IDEQ(req.SessionID)).
			SetJobID(created.ID).
			SetJobStatus(models.JobStatusQueued).
			Exec(writeCtx); err != nil {
			slog.Warn("Failed to mirror job onto session", "session_id", req.SessionID, "job_id", created.ID, "error", err)
		}
	}

	s.publishStatus(httpCtx, created, models.JobStatusQueued, "")
	slog.Info("Job enqueued",
		"job_id", created.ID,
		"project_id", proj.ID,
		"kind", created.PipelineKind,
		"session_id", req.SessionID,
		"batch_id", req.BatchID)
	return created, nil
}

// Get returns one job by id.
func (s *JobService) Get(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, jobID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// Lease atomically claims up to batchSize queued jobs of one pipeline
// kind for a worker, oldest first. Claimed rows move to processing with
// a fresh lease deadline. SELECT ... FOR UPDATE SKIP LOCKED keeps
// concurrent leasers from ever seeing the same row.
func (s *JobService) Lease(ctx context.Context, workerID, kind string, batchSize int) ([]models.LeasedJob, error) {
	if batchSize < 1 {
		batchSize = 1
	}
	if batchSize > config.MaxLeaseBatchSize {
		batchSize = config.MaxLeaseBatchSize
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.Job.Query().
		Where(
			job.StatusEQ(job.StatusQueued),
			job.PipelineKindEQ(kind),
		).
		Order(ent.Asc(job.FieldCreatedAt)).
		Limit(batchSize).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query queued jobs: %w", err)
	}
	if len(rows) == 0 {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit lease: %w", err)
		}
		return nil, nil
	}

	deadline := time.Now().Add(time.Duration(s.cfg.Lease.InitialMinutes) * time.Minute)
	claimed := make([]*ent.Job, 0, len(rows))
	for _, row := range rows {
		updated, err := row.Update().
			SetStatus(job.StatusProcessing).
			SetWorkerID(workerID).
			SetLeaseDeadline(deadline).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to claim job %s: %w", row.ID, err)
		}
		claimed = append(claimed, updated)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit lease: %w", err)
	}

	leased := make([]models.LeasedJob, 0, len(claimed))
	syncedBatches := make(map[string]bool)
	for _, j := range claimed {
		s.publishStatus(ctx, j, models.JobStatusProcessing, "")
		s.touchSessionJobStatus(j, models.JobStatusProcessing)
		if j.BatchID != nil && !syncedBatches[*j.BatchID] {
			syncedBatches[*j.BatchID] = true
			if err := s.syncBatch(ctx, *j.BatchID); err != nil {
				slog.Warn("Failed to sync batch after lease", "batch_id", *j.BatchID, "error", err)
			}
		}
		leased = append(leased, leasedView(j))
	}
	slog.Info("Jobs leased", "worker_id", workerID, "kind", kind, "count", len(leased))
	return leased, nil
}

// ReportProgress applies a worker (or integrator) job update. An empty
// or "processing" status is a touch that renews the lease; "completed"
// swaps in the delivered reports and finalizes; "failed" records the
// error. Updates against a terminal job return ErrTerminalJob.
func (s *JobService) ReportProgress(ctx context.Context, jobID string, req models.PatchJobRequest) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, jobID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if models.TerminalJobStatus(string(j.Status)) {
		return nil, ErrTerminalJob
	}

	switch req.Status {
	case "", models.JobStatusProcessing:
		return s.renewLease(j)
	case models.JobStatusCompleted:
		return s.completeJob(ctx, j, req.Reports)
	case models.JobStatusFailed:
		return s.failJob(ctx, j, req.Error)
	default:
		return nil, NewValidationError("status", fmt.Sprintf("unsupported status %q", req.Status))
	}
}

// renewLease extends the visibility window of a processing job. The
// extension is added to the current deadline (or to now once it has
// already passed) so touches never shrink the window.
func (s *JobService) renewLease(j *ent.Job) (*ent.Job, error) {
	base := time.Now()
	if j.LeaseDeadline != nil && j.LeaseDeadline.After(base) {
		base = *j.LeaseDeadline
	}
	deadline := base.Add(time.Duration(s.cfg.Lease.RenewMinutes) * time.Minute)

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	updated, err := s.client.Job.UpdateOneID(j.ID).
		Where(job.StatusEQ(job.StatusProcessing)).
		SetLeaseDeadline(deadline).
		Save(writeCtx)
	if ent.IsNotFound(err) {
		return nil, s.classifyLostLease(writeCtx, j.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to renew lease: %w", err)
	}
	return updated, nil
}

// classifyLostLease tells a toucher why its update missed: the job
// finished under it (terminal) or was reclaimed by the reaper.
func (s *JobService) classifyLostLease(ctx context.Context, jobID string) error {
	j, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to get job: %w", err)
	}
	if models.TerminalJobStatus(string(j.Status)) {
		return ErrTerminalJob
	}
	return ErrLeaseLost
}

// completeJob finalizes a job as completed. The report swap lands
// before the status flip: if the flip is lost the lease expires, the
// job re-runs, and delete-then-insert makes the re-delivery safe. The
// flip accepts queued rows too, so a worker that finishes after a reap
// still wins over a pointless re-run.
func (s *JobService) completeJob(ctx context.Context, j *ent.Job, reports models.ReportSet) (*ent.Job, error) {
	if j.SessionID != nil && *j.SessionID != "" {
		if err := s.swapSessionReports(*j.SessionID, reports); err != nil {
			return nil, err
		}
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	updated, err := s.client.Job.UpdateOneID(j.ID).
		Where(job.StatusIn(job.StatusQueued, job.StatusProcessing)).
		SetStatus(job.StatusCompleted).
		Save(writeCtx)
	if ent.IsNotFound(err) {
		return nil, ErrTerminalJob
	}
	if err != nil {
		return nil, fmt.Errorf("failed to complete job: %w", err)
	}

	s.afterTerminal(ctx, updated, models.JobStatusCompleted, "", reports)
	slog.Info("Job completed", "job_id", updated.ID, "reports", len(reports))
	return updated, nil
}

// failJob finalizes a job as failed with the reported error text.
func (s *JobService) failJob(ctx context.Context, j *ent.Job, errText string) (*ent.Job, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.Job.UpdateOneID(j.ID).
		Where(job.StatusIn(job.StatusQueued, job.StatusProcessing)).
		SetStatus(job.StatusFailed)
	if errText != "" {
		update = update.SetErrorText(errText)
	}
	updated, err := update.Save(writeCtx)
	if ent.IsNotFound(err) {
		return nil, ErrTerminalJob
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fail job: %w", err)
	}

	s.afterTerminal(ctx, updated, models.JobStatusFailed, errText, nil)
	slog.Info("Job failed", "job_id", updated.ID, "error", errText)
	return updated, nil
}

// Requeue returns a leased job to the queue after an interrupted run
// (graceful shutdown, cooperative cancellation). A non-empty workerID
// restricts the return to the current lease holder.
func (s *JobService) Requeue(ctx context.Context, jobID, workerID, reason string) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, jobID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	var extra []predicate.Job
	if workerID != "" {
		extra = append(extra, job.WorkerIDEQ(workerID))
	}
	return s.requeue(ctx, j, reason, extra...)
}

// requeue moves one processing job back to queued, or fails it once the
// retry budget is spent. The update re-checks status (plus any extra
// guards) so a worker finishing concurrently wins; a miss surfaces as
// ErrLeaseLost.
func (s *JobService) requeue(ctx context.Context, j *ent.Job, reason string, extra ...predicate.Job) (*ent.Job, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	guards := append([]predicate.Job{job.StatusEQ(job.StatusProcessing)}, extra...)

	if j.Retries >= s.cfg.Retries.Max {
		errText := fmt.Sprintf("max retries (%d) exhausted: %s", s.cfg.Retries.Max, reason)
		updated, err := s.client.Job.UpdateOneID(j.ID).
			Where(guards...).
			SetStatus(job.StatusFailed).
			SetErrorText(errText).
			Save(writeCtx)
		if ent.IsNotFound(err) {
			return nil, ErrLeaseLost
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fail job: %w", err)
		}
		s.afterTerminal(ctx, updated, models.JobStatusFailed, errText, nil)
		slog.Info("Job failed after retry budget", "job_id", j.ID, "retries", j.Retries, "reason", reason)
		return updated, nil
	}

	updated, err := s.client.Job.UpdateOneID(j.ID).
		Where(guards...).
		SetStatus(job.StatusQueued).
		ClearWorkerID().
		ClearLeaseDeadline().
		AddRetries(1).
		Save(writeCtx)
	if ent.IsNotFound(err) {
		return nil, ErrLeaseLost
	}
	if err != nil {
		return nil, fmt.Errorf("failed to requeue job: %w", err)
	}

	s.publishStatus(ctx, updated, models.JobStatusQueued, "")
	s.touchSessionJobStatus(updated, models.JobStatusQueued)
	slog.Info("Job returned to queue", "job_id", j.ID, "retries", updated.Retries, "reason", reason)
	return updated, nil
}

// Reap returns expired-lease jobs to the queue. The per-job update
// re-checks both status and deadline, so a worker that touched or
// finished between the scan and the update keeps its claim.
func (s *JobService) Reap(ctx context.Context) (int, error) {
	now := time.Now()
	expired, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusProcessing),
			job.LeaseDeadlineLT(now),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired leases: %w", err)
	}

	reaped := 0
	for _, j := range expired {
		_, err := s.requeue(ctx, j, "lease expired", job.LeaseDeadlineLT(now))
		if errors.Is(err, ErrLeaseLost) {
			continue // finished or renewed while we scanned
		}
		if err != nil {
			slog.Warn("Failed to reap job", "job_id", j.ID, "error", err)
			continue
		}
		reaped++
	}
	if reaped > 0 {
		slog.Info("Reaped expired leases", "count", reaped)
	}
	return reaped, nil
}

// ReleaseOrphans returns processing jobs claimed by a previous
// incarnation of this worker pool to the queue. Run at startup, before
// the pool begins leasing, so crash leftovers re-dispatch immediately
// instead of waiting out their lease.
func (s *JobService) ReleaseOrphans(ctx context.Context, workerIDPrefix string) (int, error) {
	orphans, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusProcessing),
			job.WorkerIDHasPrefix(workerIDPrefix),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	released := 0
	for _, j := range orphans {
		_, err := s.requeue(ctx, j, "orphaned by worker restart", job.WorkerIDHasPrefix(workerIDPrefix))
		if errors.Is(err, ErrLeaseLost) {
			continue
		}
		if err != nil {
			slog.Warn("Failed to release orphaned job", "job_id", j.ID, "error", err)
			continue
		}
		released++
	}
	if released > 0 {
		slog.Info("Released orphaned jobs", "count", released, "worker_prefix", workerIDPrefix)
	}
	return released, nil
}

// Poll answers the front-end poller for a session's job: current
// status, the persisted reports once completed, the error text once
// failed.
func (s *JobService) Poll(ctx context.Context, sessionID string) (*models.PollResponse, error) {
	sess, err := s.client.Session.Get(ctx, sessionID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if sess.JobID == nil || *sess.JobID == "" {
		return nil, fmt.Errorf("%w: session %s has no job", ErrNotFound, sessionID)
	}

	j, err := s.client.Job.Get(ctx, *sess.JobID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: job %s", ErrNotFound, *sess.JobID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	resp := &models.PollResponse{JobID: j.ID, Status: string(j.Status)}
	switch j.Status {
	case job.StatusCompleted:
		rows, err := s.client.Report.Query().
			Where(report.SessionIDEQ(sessionID)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load reports: %w", err)
		}
		set := make(models.ReportSet, len(rows))
		for _, r := range rows {
			if name, ok := reportNames[r.Type]; ok {
				set[name] = r.Content
			}
		}
		if len(set) > 0 {
			resp.Reports = set
		}
	case job.StatusFailed:
		if j.ErrorText != nil {
			resp.Error = *j.ErrorText
		}
	}
	return resp, nil
}

// ListActive lists jobs with their live progress, joined from each
// job's most recent running execution instance. Without a status filter
// only queued and processing jobs are returned, in queue order; a batch
// filter widens that to every status so sibling views keep their
// terminal rows.
func (s *JobService) ListActive(ctx context.Context, filters models.JobFilters) ([]models.ActiveJob, error) {
	query := s.client.Job.Query()
	if filters.ProjectID != "" {
		query = query.Where(job.ProjectIDEQ(filters.ProjectID))
	}
	if filters.BatchID != "" {
		query = query.Where(job.BatchIDEQ(filters.BatchID))
	}
	if filters.Status != "" {
		status := job.Status(filters.Status)
		if err := job.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", filters.Status))
		}
		query = query.Where(job.StatusEQ(status))
	} else if filters.BatchID == "" {
		query = query.Where(job.StatusIn(job.StatusQueued, job.StatusProcessing))
	}

	rows, err := query.Order(ent.Asc(job.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	processing := make([]string, 0, len(rows))
	for _, j := range rows {
		if j.Status == job.StatusProcessing {
			processing = append(processing, j.ID)
		}
	}

	progressByJob := make(map[string]*models.JobProgress)
	if len(processing) > 0 {
		instances, err := s.client.ExecutionInstance.Query().
			Where(
				executioninstance.JobIDIn(processing...),
				executioninstance.StatusEQ(executioninstance.StatusRunning),
			).
			Order(ent.Desc(executioninstance.FieldStartedAt)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to join execution progress: %w", err)
		}
		for _, inst := range instances {
			if inst.JobID == nil || progressByJob[*inst.JobID] != nil {
				continue // keep the newest instance per job
			}
			done := inst.ExecutedNodes + inst.FailedNodes
			percentage := 0
			if inst.TotalNodes > 0 {
				percentage = done * 100 / inst.TotalNodes
			}
			progress := &models.JobProgress{
				TotalNodes:    inst.TotalNodes,
				ExecutedNodes: inst.ExecutedNodes,
				FailedNodes:   inst.FailedNodes,
				Percentage:    percentage,
			}
			if inst.CurrentNodeID != nil {
				progress.CurrentNodeID = *inst.CurrentNodeID
			}
			progressByJob[*inst.JobID] = progress
		}
	}

	active := make([]models.ActiveJob, 0, len(rows))
	for _, j := range rows {
		view := models.ActiveJob{
			ID:           j.ID,
			ProjectID:    j.ProjectID,
			PipelineKind: j.PipelineKind,
			Status:       string(j.Status),
			Retries:      j.Retries,
			CreatedAt:    j.CreatedAt,
			UpdatedAt:    j.UpdatedAt,
			Progress:     progressByJob[j.ID],
		}
		if j.SessionID != nil {
			view.SessionID = *j.SessionID
		}
		if j.WorkerID != nil {
			view.WorkerID = *j.WorkerID
		}
		if j.BatchID != nil {
			view.BatchID = *j.BatchID
		}
		active = append(active, view)
	}
	return active, nil
}

// CountByStatus returns queue depths grouped by job status.
func (s *JobService) CountByStatus(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	if err := s.client.Job.Query().
		GroupBy(job.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// HasActiveJobs reports whether any job is queued or processing.
func (s *JobService) HasActiveJobs(ctx context.Context) (bool, error) {
	exist, err := s.client.Job.Query().
		Where(job.StatusIn(job.StatusQueued, job.StatusProcessing)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check active jobs: %w", err)
	}
	return exist, nil
}

// swapSessionReports replaces a session's report rows with the
// delivered set in one transaction. Canonical names carry fixed type
// and visibility; anything else in the mapping is dropped with a
// warning.
func (s *JobService) swapSessionReports(sessionID string, reports models.ReportSet) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sess, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Report.Delete().
		Where(report.SessionIDEQ(sessionID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete prior reports: %w", err)
	}

	inserted := 0
	for _, name := range models.CanonicalReportNames {
		content, ok := reports[name]
		if !ok || content == "" {
			continue
		}
		row := reportRows[name]
		create := tx.Report.Create().
			SetID(uuid.New().String()).
			SetSessionID(sessionID).
			SetType(row.kind).
			SetVisibility(row.visibility).
			SetContent(content)
		if sess.UserID != nil {
			create = create.SetUserID(*sess.UserID)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("failed to insert report %q: %w", name, err)
		}
		inserted++
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit report swap: %w", err)
	}

	if inserted < len(reports) {
		slog.Warn("Dropped non-canonical report names",
			"session_id", sessionID, "delivered", len(reports), "inserted", inserted)
	}
	return nil
}

// afterTerminal applies everything that follows a terminal transition:
// session mirror, batch accounting, event publication and webhook
// delivery. All best-effort; the job row is already the truth.
func (s *JobService) afterTerminal(ctx context.Context, j *ent.Job, status, errText string, reports models.ReportSet) {
	s.touchSessionJobStatus(j, status)
	if j.BatchID != nil {
		if err := s.syncBatch(ctx, *j.BatchID); err != nil {
			slog.Warn("Failed to sync batch after job finished", "batch_id", *j.BatchID, "job_id", j.ID, "error", err)
		}
	}
	s.publishStatus(ctx, j, status, errText)
	s.deliverWebhook(j, status, errText, reports)
}

// touchSessionJobStatus refreshes the denormalized job-status mirror on
// the owning session.
func (s *JobService) touchSessionJobStatus(j *ent.Job, status string) {
	if j.SessionID == nil || *j.SessionID == "" {
		return
	}
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.Session.Update().
		Where(session.IDEQ(*j.SessionID)).
		SetJobStatus(status).
		Exec(writeCtx); err != nil {
		slog.Warn("Failed to update session job status",
			"session_id", *j.SessionID, "job_id", j.ID, "status", status, "error", err)
	}
}

// syncBatch recomputes a batch's counters and derived status from its
// jobs: queued until the first lease, processing while work is in
// flight, then completed with no failures, partial with at least one
// success, failed otherwise.
func (s *JobService) syncBatch(ctx context.Context, batchID string) error {
	b, err := s.client.Batch.Get(ctx, batchID)
	if err != nil {
		return fmt.Errorf("failed to get batch: %w", err)
	}

	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	if err := s.client.Job.Query().
		Where(job.BatchIDEQ(batchID)).
		GroupBy(job.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows); err != nil {
		return fmt.Errorf("failed to count batch jobs: %w", err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	completed := counts[models.JobStatusCompleted]
	failed := counts[models.JobStatusFailed]

	terminal := b.TotalJobs > 0 && completed+failed >= b.TotalJobs
	status := batch.StatusProcessing
	switch {
	case terminal && failed == 0:
		status = batch.StatusCompleted
	case terminal && completed > 0:
		status = batch.StatusPartial
	case terminal:
		status = batch.StatusFailed
	case counts[models.JobStatusQueued] == b.TotalJobs:
		status = batch.StatusQueued
	}

	update := s.client.Batch.UpdateOneID(batchID).
		SetStatus(status).
		SetCompletedJobs(completed).
		SetFailedJobs(failed)
	if terminal && b.CompletedAt == nil {
		update = update.SetCompletedAt(time.Now())
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to update batch: %w", err)
	}
	return nil
}

// publishStatus emits a job.status event. Best-effort.
func (s *JobService) publishStatus(ctx context.Context, j *ent.Job, status, errText string) {
	if s.publisher == nil {
		return
	}
	payload := events.JobStatusPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeJobStatus,
			JobID:     j.ID,
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		},
		ProjectID: j.ProjectID,
		Status:    status,
		Retries:   j.Retries,
		Error:     errText,
	}
	if j.SessionID != nil {
		payload.SessionID = *j.SessionID
	}
	if j.BatchID != nil {
		payload.BatchID = *j.BatchID
	}
	if j.WorkerID != nil {
		payload.WorkerID = *j.WorkerID
	}
	if err := s.publisher.PublishJobStatus(ctx, j.ID, payload); err != nil {
		slog.Warn("Failed to publish job status", "job_id", j.ID, "status", status, "error", err)
	}
}

// deliverWebhook posts the terminal notification for session-bound
// jobs. Fire-and-forget: the sender retries internally, and the report
// rows remain the source of truth if every attempt fails.
func (s *JobService) deliverWebhook(j *ent.Job, status, errText string, reports models.ReportSet) {
	if s.webhooks == nil || j.SessionID == nil || *j.SessionID == "" {
		return
	}
	hook := models.JobWebhook{
		JobID:       j.ID,
		SessionID:   *j.SessionID,
		Status:      status,
		Reports:     reports,
		Error:       errText,
		CompletedAt: time.Now().UTC(),
	}
	go func() {
		if err := s.webhooks.Deliver(context.Background(), hook); err != nil {
			slog.Warn("Webhook delivery failed", "job_id", hook.JobID, "session_id", hook.SessionID, "error", err)
		}
	}()
}

// leasedView converts a claimed row into the worker hand-off shape.
func leasedView(j *ent.Job) models.LeasedJob {
	view := models.LeasedJob{
		ID:               j.ID,
		ProjectID:        j.ProjectID,
		PipelineKind:     j.PipelineKind,
		InitialVariables: j.InitialVariables,
	}
	if j.SessionID != nil {
		view.SessionID = *j.SessionID
	}
	if j.BatchID != nil {
		view.BatchID = *j.BatchID
	}
	if j.LeaseDeadline != nil {
		view.LeaseDeadline = *j.LeaseDeadline
	}
	return view
}
