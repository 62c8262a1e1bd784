package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/assessflow/pipeline/ent"
	"github.com/assessflow/pipeline/ent/job"
	"github.com/assessflow/pipeline/pkg/config"
	"github.com/assessflow/pipeline/pkg/services"
)

// Pool manages the worker goroutines of one process. Each configured
// pipeline kind gets as many workers as its staged settings ask for;
// settings are read once at Start, which is what makes a settings edit a
// "pending restart".
type Pool struct {
	podID    string
	client   *ent.Client
	cfg      *config.Config
	jobs     *services.JobService
	settings *services.SettingsService
	executor JobExecutor

	workers []*Worker
	started bool
}

// NewPool creates a worker pool. Workers are spawned by Start according to
// the staged per-kind settings.
func NewPool(podID string, client *ent.Client, cfg *config.Config, jobs *services.JobService, settings *services.SettingsService, executor JobExecutor) *Pool {
	return &Pool{
		podID:    podID,
		client:   client,
		cfg:      cfg,
		jobs:     jobs,
		settings: settings,
		executor: executor,
	}
}

// Start releases this pod's orphaned jobs, reads the per-kind worker
// settings and spawns the workers. It is safe to call multiple times;
// subsequent calls are no-ops.
func (p *Pool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	// Crash leftovers re-dispatch immediately instead of waiting out
	// their lease.
	if _, err := p.jobs.ReleaseOrphans(ctx, p.podID); err != nil {
		return fmt.Errorf("release orphaned jobs: %w", err)
	}

	settings, err := p.settings.AllWorkerSettings(ctx, p.cfg.Worker.Kinds)
	if err != nil {
		return fmt.Errorf("load worker settings: %w", err)
	}

	n := 0
	for _, kind := range p.cfg.Worker.Kinds {
		ws := settings[kind]
		for i := 0; i < ws.Instances; i++ {
			w := NewWorker(fmt.Sprintf("%s-w%d", p.podID, n), kind, ws, p.jobs, p.executor)
			n++
			p.workers = append(p.workers, w)
			w.Start(ctx)
		}
		slog.Info("Workers spawned for kind",
			"kind", kind,
			"instances", ws.Instances,
			"poll_interval_ms", ws.PollIntervalMS,
			"max_concurrent_jobs", ws.MaxConcurrentJobs)
	}

	slog.Info("Worker pool started", "pod_id", p.podID, "workers", len(p.workers))
	return nil
}

// Stop signals every worker to stop, then waits for in-flight jobs to
// settle. The stop is cooperative: the current node evaluation finishes and
// interrupted jobs return to the queue.
func (p *Pool) Stop() {
	slog.Info("Stopping worker pool gracefully", "pod_id", p.podID)
	for _, w := range p.workers {
		w.signalStop()
	}
	for _, w := range p.workers {
		w.wait()
	}
	slog.Info("Worker pool stopped gracefully", "pod_id", p.podID)
}

// Health returns the current health status of the pool.
func (p *Pool) Health() *PoolHealth {
	ctx := context.Background()

	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := p.client.Job.Query().
		GroupBy(job.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		slog.Error("Failed to query queue depths for health check",
			"pod_id", p.podID, "error", err)
	}
	depths := make(map[string]int, len(rows))
	for _, row := range rows {
		depths[row.Status] = row.Count
	}

	stats := make([]WorkerHealth, len(p.workers))
	active := 0
	for i, w := range p.workers {
		stats[i] = w.Health()
		if stats[i].Status == string(StatusWorking) {
			active++
		}
	}

	dbHealthy := err == nil
	var dbError string
	if err != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", err)
	}

	return &PoolHealth{
		IsHealthy:     dbHealthy && len(p.workers) > 0,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		PodID:         p.podID,
		ActiveWorkers: active,
		TotalWorkers:  len(p.workers),
		QueueDepths:   depths,
		WorkerStats:   stats,
	}
}
