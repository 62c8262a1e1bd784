// Package cleanup provides the background sweeps of the job queue and the
// execution history.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/assessflow/pipeline/ent"
	"github.com/assessflow/pipeline/ent/executioninstance"
	"github.com/assessflow/pipeline/pkg/config"
	"github.com/assessflow/pipeline/pkg/executor"
	"github.com/assessflow/pipeline/pkg/services"
)

// Service hosts two periodic loops:
//   - Reaper: returns expired-lease jobs to the queue
//   - Retention: purges ExecutionInstances past the retention window (their
//     logs cascade, their progress/dump files are removed) and deletes Event
//     rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	cfg          *config.Config
	client       *ent.Client
	jobService   *services.JobService
	eventService *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.Config,
	client *ent.Client,
	jobService *services.JobService,
	eventService *services.EventService,
) *Service {
	return &Service{
		cfg:          cfg,
		client:       client,
		jobService:   jobService,
		eventService: eventService,
	}
}

// Start launches the background loops.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"reap_interval_seconds", s.cfg.Reaper.IntervalSeconds,
		"retention_days", s.cfg.Retention.Days,
		"event_ttl", s.cfg.Retention.EventTTL,
		"sweep_interval", s.cfg.Retention.SweepInterval)
}

// Stop signals the loops to exit and waits for them to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.reapExpiredLeases(ctx)
	s.sweep(ctx)

	reap := time.NewTicker(time.Duration(s.cfg.Reaper.IntervalSeconds) * time.Second)
	defer reap.Stop()
	sweep := time.NewTicker(s.cfg.Retention.SweepInterval)
	defer sweep.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-reap.C:
			s.reapExpiredLeases(ctx)
		case <-sweep.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	s.purgeOldRuns(ctx)
	s.cleanupExpiredEvents(ctx)
}

// reapExpiredLeases hands the scan to the job service, which logs the
// per-sweep count itself.
func (s *Service) reapExpiredLeases(_ context.Context) {
	if _, err := s.jobService.Reap(context.Background()); err != nil {
		slog.Error("Reaper: expired-lease scan failed", "error", err)
	}
}

// purgeOldRuns deletes ExecutionInstances started before the retention
// cutoff together with their progress and dump files; execution logs go
// with the instance via the FK cascade. Instances still marked running at
// that age are crash leftovers and are purged on the same cutoff.
func (s *Service) purgeOldRuns(_ context.Context) {
	ctx := context.Background()
	cutoff := time.Now().Add(-time.Duration(s.cfg.Retention.Days) * 24 * time.Hour)

	runs, err := s.client.ExecutionInstance.Query().
		Where(executioninstance.StartedAtLT(cutoff)).
		All(ctx)
	if err != nil {
		slog.Error("Retention: scan of old runs failed", "error", err)
		return
	}
	if len(runs) == 0 {
		return
	}

	ids := make([]string, 0, len(runs))
	for _, run := range runs {
		ids = append(ids, run.ID)
	}
	purged, err := s.client.ExecutionInstance.Delete().
		Where(executioninstance.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: purge of old runs failed", "error", err)
		return
	}

	files := 0
	for _, run := range runs {
		tag := run.ID
		if run.JobID != nil && *run.JobID != "" {
			tag = *run.JobID
		}
		n, err := executor.RemoveArtifacts(s.cfg.Progress.LogDir, tag)
		if err != nil {
			slog.Warn("Retention: artifact removal failed",
				"execution_id", run.ID, "error", err)
			continue
		}
		files += n
	}

	slog.Info("Retention: purged old runs", "instances", purged, "files", files)
}

func (s *Service) cleanupExpiredEvents(_ context.Context) {
	count, err := s.eventService.CleanupExpiredEvents(context.Background(), s.cfg.Retention.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted expired events", "count", count)
	}
}
