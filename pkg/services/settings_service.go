package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/assessflow/pipeline/ent"
	"github.com/assessflow/pipeline/pkg/config"
	"github.com/assessflow/pipeline/pkg/models"
)

// workerSettingKey is the settings-store key for one pipeline kind.
func workerSettingKey(kind string) string {
	return "worker." + kind
}

// SettingsService stages worker settings in the settings table. The pool
// reads them once at start, so every edit stays pending until a restart;
// the admin surface signals that with a pending flag while jobs are
// active.
type SettingsService struct {
	client *ent.Client
	jobs   *JobService
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(client *ent.Client, jobs *JobService) *SettingsService {
	return &SettingsService{client: client, jobs: jobs}
}

// WorkerSettings returns the stored settings for one kind, falling back
// to the defaults when no row exists.
func (s *SettingsService) WorkerSettings(ctx context.Context, kind string) (models.WorkerSettings, error) {
	row, err := s.client.Setting.Get(ctx, workerSettingKey(kind))
	if ent.IsNotFound(err) {
		return models.DefaultWorkerSettings(), nil
	}
	if err != nil {
		return models.WorkerSettings{}, fmt.Errorf("failed to get settings for kind %s: %w", kind, err)
	}

	var ws models.WorkerSettings
	if err := json.Unmarshal(row.Value, &ws); err != nil {
		return models.WorkerSettings{}, fmt.Errorf("corrupt settings row %s: %w", row.ID, err)
	}
	return ws, nil
}

// AllWorkerSettings resolves settings for every given kind.
func (s *SettingsService) AllWorkerSettings(ctx context.Context, kinds []string) (map[string]models.WorkerSettings, error) {
	out := make(map[string]models.WorkerSettings, len(kinds))
	for _, kind := range kinds {
		ws, err := s.WorkerSettings(ctx, kind)
		if err != nil {
			return nil, err
		}
		out[kind] = ws
	}
	return out, nil
}

// PutWorkerSettings stages new settings for one kind. Instances 0 keeps
// the kind idle at the next pool start.
func (s *SettingsService) PutWorkerSettings(httpCtx context.Context, kind string, ws models.WorkerSettings) error {
	if kind == "" {
		return NewValidationError("kind", "pipeline kind is required")
	}
	if ws.Instances < 0 {
		return NewValidationError("instances", "must not be negative")
	}
	if ws.PollIntervalMS < 1 {
		return NewValidationError("poll_interval_ms", "must be at least 1")
	}
	if ws.MaxConcurrentJobs < 1 {
		return NewValidationError("max_concurrent_jobs", "must be at least 1")
	}
	if ws.MaxConcurrentJobs > config.MaxLeaseBatchSize {
		return NewValidationError("max_concurrent_jobs", fmt.Sprintf("must not exceed the lease batch limit of %d", config.MaxLeaseBatchSize))
	}

	raw, err := json.Marshal(ws)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	key := workerSettingKey(kind)
	err = s.client.Setting.UpdateOneID(key).SetValue(raw).Exec(writeCtx)
	if ent.IsNotFound(err) {
		_, err = s.client.Setting.Create().SetID(key).SetValue(raw).Save(writeCtx)
		if ent.IsConstraintError(err) {
			return fmt.Errorf("%w: settings for kind %s changed concurrently", ErrConflict, kind)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to store settings for kind %s: %w", kind, err)
	}

	slog.Info("Worker settings staged",
		"kind", kind,
		"instances", ws.Instances,
		"poll_interval_ms", ws.PollIntervalMS,
		"max_concurrent_jobs", ws.MaxConcurrentJobs)
	return nil
}

// PendingRestart reports whether staged settings are still waiting on a
// pool restart. Any active job means the running pool predates the edit.
func (s *SettingsService) PendingRestart(ctx context.Context) (bool, error) {
	return s.jobs.HasActiveJobs(ctx)
}
