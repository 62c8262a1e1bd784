package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assessflow/pipeline/pkg/models"
	testdb "github.com/assessflow/pipeline/test/database"
)

func TestSettingsService_WorkerSettings(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client, jobTestConfig(), nil, nil)
	svc := NewSettingsService(client.Client, jobs)
	ctx := context.Background()

	t.Run("returns defaults for an unseeded kind", func(t *testing.T) {
		ws, err := svc.WorkerSettings(ctx, models.KindProf)
		require.NoError(t, err)
		assert.Equal(t, models.DefaultWorkerSettings(), ws)
	})

	t.Run("stages and reads back per kind", func(t *testing.T) {
		staged := models.WorkerSettings{Instances: 2, PollIntervalMS: 1000, MaxConcurrentJobs: 4}
		require.NoError(t, svc.PutWorkerSettings(ctx, models.KindBigFive, staged))

		ws, err := svc.WorkerSettings(ctx, models.KindBigFive)
		require.NoError(t, err)
		assert.Equal(t, staged, ws)

		all, err := svc.AllWorkerSettings(ctx, []string{models.KindProf, models.KindBigFive})
		require.NoError(t, err)
		assert.Equal(t, models.DefaultWorkerSettings(), all[models.KindProf])
		assert.Equal(t, staged, all[models.KindBigFive])
	})

	t.Run("replaces the row on a second put", func(t *testing.T) {
		first := models.WorkerSettings{Instances: 1, PollIntervalMS: 5000, MaxConcurrentJobs: 1}
		require.NoError(t, svc.PutWorkerSettings(ctx, "Replay", first))
		second := models.WorkerSettings{Instances: 3, PollIntervalMS: 2500, MaxConcurrentJobs: 2}
		require.NoError(t, svc.PutWorkerSettings(ctx, "Replay", second))

		ws, err := svc.WorkerSettings(ctx, "Replay")
		require.NoError(t, err)
		assert.Equal(t, second, ws)

		count, err := client.Setting.Query().Count(ctx)
		require.NoError(t, err)
		assert.LessOrEqual(t, count, 3, "one row per kind, replaced in place")
	})

	t.Run("validates bounds", func(t *testing.T) {
		valid := models.DefaultWorkerSettings()

		bad := valid
		bad.MaxConcurrentJobs = 11
		assert.True(t, IsValidationError(svc.PutWorkerSettings(ctx, models.KindProf, bad)))

		bad = valid
		bad.MaxConcurrentJobs = 0
		assert.True(t, IsValidationError(svc.PutWorkerSettings(ctx, models.KindProf, bad)))

		bad = valid
		bad.PollIntervalMS = 0
		assert.True(t, IsValidationError(svc.PutWorkerSettings(ctx, models.KindProf, bad)))

		bad = valid
		bad.Instances = -1
		assert.True(t, IsValidationError(svc.PutWorkerSettings(ctx, models.KindProf, bad)))

		assert.True(t, IsValidationError(svc.PutWorkerSettings(ctx, "", valid)))
	})
}

func TestSettingsService_PendingRestart(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client, jobTestConfig(), nil, nil)
	svc := NewSettingsService(client.Client, jobs)
	ctx := context.Background()

	pending, err := svc.PendingRestart(ctx)
	require.NoError(t, err)
	assert.False(t, pending, "an idle queue applies settings at the next start")

	_, j := enqueueLeased(t, jobs, client.Client, "worker-settings")
	pending, err = svc.PendingRestart(ctx)
	require.NoError(t, err)
	assert.True(t, pending, "active jobs keep the running pool's settings live")

	_, err = jobs.ReportProgress(ctx, j.ID, models.PatchJobRequest{Status: models.JobStatusCompleted})
	require.NoError(t, err)

	pending, err = svc.PendingRestart(ctx)
	require.NoError(t, err)
	assert.False(t, pending)
}
