package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/assessflow/pipeline/pkg/executor"
	"github.com/assessflow/pipeline/pkg/models"
	"github.com/assessflow/pipeline/pkg/services"
)

// leaseRenewalInterval is how often a worker touches the leases it holds
// while a run is in flight. Each touch adds lease.renewMinutes; the cadence
// only has to stay well inside the initial lease window.
const leaseRenewalInterval = 2 * time.Minute

// Worker leases jobs of one pipeline kind and drives their runs
// sequentially.
type Worker struct {
	id       string
	kind     string
	settings models.WorkerSettings
	jobs     *services.JobService
	executor JobExecutor

	renewalInterval time.Duration
	stopCh          chan struct{}
	stopOnce        sync.Once
	wg              sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        Status
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a queue worker for one pipeline kind.
func NewWorker(id, kind string, settings models.WorkerSettings, jobs *services.JobService, executor JobExecutor) *Worker {
	return &Worker{
		id:              id,
		kind:            kind,
		settings:        settings,
		jobs:            jobs,
		executor:        executor,
		renewalInterval: leaseRenewalInterval,
		stopCh:          make(chan struct{}),
		status:          StatusIdle,
		lastActivity:    time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.signalStop()
	w.wait()
}

func (w *Worker) signalStop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

func (w *Worker) wait() {
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Kind:          w.kind,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "kind", w.kind)
	log.Info("Worker started",
		"poll_interval_ms", w.settings.PollIntervalMS,
		"max_concurrent_jobs", w.settings.MaxConcurrentJobs)

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.leaseAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing jobs", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

func (w *Worker) pollInterval() time.Duration {
	return time.Duration(w.settings.PollIntervalMS) * time.Millisecond
}

// leaseAndProcess claims up to maxConcurrentJobs queued jobs and runs them
// one at a time. A single renewal ticker covers every lease still held, so
// jobs waiting for their turn in the batch are not reaped underneath us.
func (w *Worker) leaseAndProcess(ctx context.Context) error {
	leased, err := w.jobs.Lease(ctx, w.id, w.kind, w.settings.MaxConcurrentJobs)
	if err != nil {
		return fmt.Errorf("leasing jobs: %w", err)
	}
	if len(leased) == 0 {
		return ErrNoJobsAvailable
	}

	held := newHeldJobs(leased)
	renewCtx, stopRenewal := context.WithCancel(ctx)
	defer stopRenewal()
	go w.runRenewal(renewCtx, held)

	for i, j := range leased {
		select {
		case <-w.stopCh:
			w.requeueRemaining(leased[i:], held)
			return nil
		default:
		}
		if !held.contains(j.ID) {
			slog.Info("Skipping job whose lease was lost", "job_id", j.ID, "worker_id", w.id)
			continue
		}
		w.processJob(ctx, j)
		held.remove(j.ID)
	}
	return nil
}

// processJob drives one leased job through a run and reports the outcome.
func (w *Worker) processJob(ctx context.Context, j models.LeasedJob) {
	log := slog.With("job_id", j.ID, "worker_id", w.id, "kind", w.kind)
	log.Info("Job claimed", "project_id", j.ProjectID)

	w.setStatus(StatusWorking, j.ID)
	defer w.setStatus(StatusIdle, "")

	vars := make(map[string]models.Variable, len(j.InitialVariables))
	for name, value := range j.InitialVariables {
		vars[name] = models.Variable{Value: value}
	}

	summary, err := w.executor.Run(ctx, executor.RunRequest{
		ProjectID: j.ProjectID,
		JobID:     j.ID,
		SessionID: j.SessionID,
		// Job runs always start from a clean derived environment; stale
		// outputs from another session's run must never leak in.
		InitialVariables: vars,
		ClearResults:     true,
		Stop:             w.stopCh,
	})

	// Terminal reports land on a background context: the loop context may
	// already be cancelled on shutdown.
	reportCtx := context.Background()
	switch {
	case errors.Is(err, executor.ErrCanceled):
		if _, rqErr := w.jobs.Requeue(reportCtx, j.ID, w.id, "worker shutdown"); rqErr != nil {
			log.Warn("Failed to requeue interrupted job", "error", rqErr)
		}
	case err != nil:
		if _, rpErr := w.jobs.ReportProgress(reportCtx, j.ID, models.PatchJobRequest{
			Status: models.JobStatusFailed,
			Error:  err.Error(),
		}); rpErr != nil {
			log.Warn("Failed to report job failure", "error", rpErr)
		}
	default:
		if _, rpErr := w.jobs.ReportProgress(reportCtx, j.ID, models.PatchJobRequest{
			Status:  models.JobStatusCompleted,
			Reports: models.ExtractReports(summary.Variables),
		}); rpErr != nil {
			log.Warn("Failed to report job completion", "error", rpErr)
		}
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()
	log.Info("Job processing complete")
}

// requeueRemaining returns the not-yet-started tail of a lease batch to the
// queue on shutdown.
func (w *Worker) requeueRemaining(rest []models.LeasedJob, held *heldJobs) {
	for _, j := range rest {
		if !held.contains(j.ID) {
			continue
		}
		held.remove(j.ID)
		if _, err := w.jobs.Requeue(context.Background(), j.ID, w.id, "worker shutdown"); err != nil {
			slog.Warn("Failed to requeue leased job on shutdown",
				"job_id", j.ID, "worker_id", w.id, "error", err)
		}
	}
}

// runRenewal periodically touches every held lease. A touch that comes back
// ErrTerminalJob or ErrLeaseLost drops the job from the held set: it was
// settled or reclaimed, and the processing loop skips it.
func (w *Worker) runRenewal(ctx context.Context, held *heldJobs) {
	ticker := time.NewTicker(w.renewalInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, id := range held.list() {
				_, err := w.jobs.ReportProgress(ctx, id, models.PatchJobRequest{Status: models.JobStatusProcessing})
				if err == nil {
					continue
				}
				if errors.Is(err, services.ErrTerminalJob) || errors.Is(err, services.ErrLeaseLost) {
					held.remove(id)
					continue
				}
				slog.Warn("Lease renewal failed", "job_id", id, "worker_id", w.id, "error", err)
			}
		}
	}
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status Status, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}

// heldJobs is the set of lease claims a worker currently owns, shared
// between the processing loop and the renewal ticker.
type heldJobs struct {
	mu  sync.Mutex
	ids map[string]bool
}

func newHeldJobs(leased []models.LeasedJob) *heldJobs {
	ids := make(map[string]bool, len(leased))
	for _, j := range leased {
		ids[j.ID] = true
	}
	return &heldJobs{ids: ids}
}

func (h *heldJobs) contains(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ids[id]
}

func (h *heldJobs) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.ids, id)
}

func (h *heldJobs) list() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	ids := make([]string, 0, len(h.ids))
	for id := range h.ids {
		ids = append(ids, id)
	}
	return ids
}
