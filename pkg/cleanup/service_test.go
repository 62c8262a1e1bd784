package cleanup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assessflow/pipeline/ent"
	"github.com/assessflow/pipeline/ent/event"
	"github.com/assessflow/pipeline/ent/executioninstance"
	"github.com/assessflow/pipeline/ent/executionlog"
	"github.com/assessflow/pipeline/ent/job"
	"github.com/assessflow/pipeline/pkg/config"
	"github.com/assessflow/pipeline/pkg/events"
	"github.com/assessflow/pipeline/pkg/models"
	"github.com/assessflow/pipeline/pkg/services"
	testdb "github.com/assessflow/pipeline/test/database"
)

func setupCleanup(t *testing.T) (*Service, *ent.Client, *services.JobService, string) {
	t.Helper()
	client := testdb.NewTestClient(t)
	logDir := t.TempDir()
	cfg := &config.Config{
		Lease:     config.DefaultLeaseConfig(),
		Retries:   config.DefaultRetriesConfig(),
		Reaper:    config.DefaultReaperConfig(),
		Retention: config.DefaultRetentionConfig(),
		Progress:  &config.ProgressConfig{LogDir: logDir},
	}
	jobService := services.NewJobService(client.Client, cfg, nil, nil)
	eventService := services.NewEventService(client.Client)
	svc := NewService(cfg, client.Client, jobService, eventService)
	return svc, client.Client, jobService, logDir
}

func seedInstance(t *testing.T, client *ent.Client, status executioninstance.Status, jobID string, startedAt time.Time) *ent.ExecutionInstance {
	t.Helper()
	create := client.ExecutionInstance.Create().
		SetID(uuid.New().String()).
		SetProjectID(uuid.New().String()).
		SetStatus(status).
		SetTotalNodes(3).
		SetStartedAt(startedAt).
		SetGlobalVariablesSnapshot(map[string]models.Variable{})
	if jobID != "" {
		create = create.SetJobID(jobID)
	}
	inst, err := create.Save(context.Background())
	require.NoError(t, err)
	return inst
}

// writeArtifacts drops a progress log and dump pair named the way a run
// writes them, so the sweep's glob finds them.
func writeArtifacts(t *testing.T, dir, tag string, startedAt time.Time) []string {
	t.Helper()
	stem := fmt.Sprintf("Prof-Pipeline_%s_%s", tag, startedAt.UTC().Format("20060102T150405"))
	paths := []string{
		filepath.Join(dir, stem+"_progress.log"),
		filepath.Join(dir, stem+".json"),
	}
	for _, path := range paths {
		require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))
	}
	return paths
}

func TestService_PurgesOldRuns(t *testing.T) {
	svc, client, _, logDir := setupCleanup(t)
	ctx := context.Background()

	oldJobID := uuid.New().String()
	oldStart := time.Now().Add(-91 * 24 * time.Hour)
	old := seedInstance(t, client, executioninstance.StatusCompleted, oldJobID, oldStart)
	err := client.ExecutionLog.Create().
		SetID(uuid.New().String()).
		SetExecutionID(old.ID).
		SetNodeID("n1").
		SetStatus(executionlog.StatusCompleted).
		Exec(ctx)
	require.NoError(t, err)
	oldFiles := writeArtifacts(t, logDir, oldJobID, oldStart)

	recentStart := time.Now().Add(-time.Hour)
	recent := seedInstance(t, client, executioninstance.StatusCompleted, "", recentStart)
	recentFiles := writeArtifacts(t, logDir, recent.ID, recentStart)

	svc.sweep(ctx)

	_, err = client.ExecutionInstance.Get(ctx, old.ID)
	assert.True(t, ent.IsNotFound(err), "old instance should be purged")
	logs, err := client.ExecutionLog.Query().
		Where(executionlog.ExecutionIDEQ(old.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, logs, "execution logs should go with the instance")
	for _, path := range oldFiles {
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "artifact should be removed: %s", path)
	}

	_, err = client.ExecutionInstance.Get(ctx, recent.ID)
	assert.NoError(t, err, "recent instance should survive the sweep")
	for _, path := range recentFiles {
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr, "recent artifact should survive: %s", path)
	}
}

func TestService_PurgesStaleRunningInstances(t *testing.T) {
	svc, client, _, _ := setupCleanup(t)
	ctx := context.Background()

	stale := seedInstance(t, client, executioninstance.StatusRunning, "", time.Now().Add(-91*24*time.Hour))
	live := seedInstance(t, client, executioninstance.StatusRunning, "", time.Now())

	svc.sweep(ctx)

	_, err := client.ExecutionInstance.Get(ctx, stale.ID)
	assert.True(t, ent.IsNotFound(err), "crash leftover should be purged on the same cutoff")
	_, err = client.ExecutionInstance.Get(ctx, live.ID)
	assert.NoError(t, err)
}

func TestService_CleansUpExpiredEvents(t *testing.T) {
	svc, client, _, _ := setupCleanup(t)
	ctx := context.Background()

	jobID := uuid.New().String()
	channel := events.JobChannel(jobID)

	err := client.Event.Create().
		SetJobID(jobID).
		SetChannel(channel).
		SetPayload(map[string]any{"type": events.EventTypeJobStatus}).
		SetCreatedAt(time.Now().Add(-25 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)
	err = client.Event.Create().
		SetJobID(jobID).
		SetChannel(channel).
		SetPayload(map[string]any{"type": events.EventTypeJobStatus}).
		Exec(ctx)
	require.NoError(t, err)

	svc.sweep(ctx)

	remaining, err := client.Event.Query().
		Where(event.ChannelEQ(channel)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining, "expired event deleted, recent preserved")
}

func TestService_ReapsExpiredLeases(t *testing.T) {
	svc, client, jobService, _ := setupCleanup(t)
	ctx := context.Background()

	proj, err := client.Project.Create().
		SetID(uuid.New().String()).
		SetName("Prof Pipeline").
		SetCanvasData(json.RawMessage(`{"nodes":[],"edges":[]}`)).
		Save(ctx)
	require.NoError(t, err)

	created, err := jobService.Enqueue(ctx, models.EnqueueJobRequest{ProjectID: proj.ID})
	require.NoError(t, err)
	leased, err := jobService.Lease(ctx, "pod-a-w1", created.PipelineKind, 10)
	require.NoError(t, err)
	require.Len(t, leased, 1)

	err = client.Job.UpdateOneID(created.ID).
		SetLeaseDeadline(time.Now().Add(-time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	svc.reapExpiredLeases(ctx)

	reaped, err := client.Job.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, reaped.Status)
	assert.Equal(t, 1, reaped.Retries)
	assert.Nil(t, reaped.WorkerID)
	assert.Nil(t, reaped.LeaseDeadline)
}
