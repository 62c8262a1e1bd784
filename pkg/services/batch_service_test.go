package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entbatch "github.com/assessflow/pipeline/ent/batch"
	"github.com/assessflow/pipeline/ent/job"
	"github.com/assessflow/pipeline/pkg/batch"
	"github.com/assessflow/pipeline/pkg/models"
	testdb "github.com/assessflow/pipeline/test/database"
)

func TestBatchService_CreateBatch(t *testing.T) {
	client := testdb.NewTestClient(t)
	pub := &recordingJobPublisher{}
	jobs := NewJobService(client.Client, jobTestConfig(), pub, nil)
	svc := NewBatchService(client.Client, jobs)
	ctx := context.Background()

	t.Run("fans out one queued job per file", func(t *testing.T) {
		proj := seedProject(t, client.Client, "Prof Batch Pipeline")

		created, err := svc.CreateBatch(ctx, models.CreateBatchRequest{
			ProjectID: proj.ID,
			Name:      "june uploads",
			OutputDir: "/data/out",
			Files: []models.BatchFile{
				{Name: "alpha.txt", Content: "first body"},
				{Name: "beta.txt", Content: "second body"},
				{Name: "gamma.txt", Content: "third body"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "june uploads", created.Name)
		assert.Equal(t, entbatch.StatusQueued, created.Status)
		assert.Equal(t, 3, created.TotalJobs)
		assert.Equal(t, "/data/out/"+created.ID, created.OutputDir)

		siblings, err := client.Job.Query().
			Where(job.BatchIDEQ(created.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, siblings, 3)

		bodies := make(map[string]string)
		for _, j := range siblings {
			assert.Equal(t, job.StatusQueued, j.Status)
			assert.Equal(t, models.KindProf, j.PipelineKind)
			assert.Nil(t, j.SessionID)

			vars := j.InitialVariables
			assert.Equal(t, created.ID, vars[batch.VarBatchID])
			bodies[vars[batch.VarSourceName]] = vars[batch.VarInputText]
		}
		assert.Equal(t, "first body", bodies["alpha.txt"])
		assert.Equal(t, "second body", bodies["beta.txt"])
		assert.Equal(t, "third body", bodies["gamma.txt"])

		statuses := pub.recorded()
		queued := 0
		for _, s := range statuses {
			if s == models.JobStatusQueued {
				queued++
			}
		}
		assert.GreaterOrEqual(t, queued, 3)
	})

	t.Run("builds per-document output directories", func(t *testing.T) {
		proj := seedProject(t, client.Client, "Prof Dirs")

		created, err := svc.CreateBatch(ctx, models.CreateBatchRequest{
			ProjectID: proj.ID,
			OutputDir: "/srv/results",
			Files:     []models.BatchFile{{Name: "report.final.md", Content: "x"}},
		})
		require.NoError(t, err)

		siblings, err := client.Job.Query().Where(job.BatchIDEQ(created.ID)).All(ctx)
		require.NoError(t, err)
		require.Len(t, siblings, 1)
		assert.Equal(t, "/srv/results/"+created.ID+"/report.final/", siblings[0].InitialVariables[batch.VarOutputDir])
	})

	t.Run("derives the pipeline kind from the project", func(t *testing.T) {
		proj := seedProject(t, client.Client, "BigFive Batch Pipeline")

		created, err := svc.CreateBatch(ctx, models.CreateBatchRequest{
			ProjectID: proj.ID,
			Files:     []models.BatchFile{{Name: "one.txt", Content: "a"}},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.Name)

		siblings, err := client.Job.Query().Where(job.BatchIDEQ(created.ID)).All(ctx)
		require.NoError(t, err)
		require.Len(t, siblings, 1)
		assert.Equal(t, models.KindBigFive, siblings[0].PipelineKind)
	})

	t.Run("rejects an empty upload", func(t *testing.T) {
		proj := seedProject(t, client.Client, "Prof Empty")
		_, err := svc.CreateBatch(ctx, models.CreateBatchRequest{ProjectID: proj.ID})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects a nameless file", func(t *testing.T) {
		proj := seedProject(t, client.Client, "Prof Nameless")
		_, err := svc.CreateBatch(ctx, models.CreateBatchRequest{
			ProjectID: proj.ID,
			Files:     []models.BatchFile{{Content: "body"}},
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns not found for an unknown project", func(t *testing.T) {
		_, err := svc.CreateBatch(ctx, models.CreateBatchRequest{
			ProjectID: uuid.New().String(),
			Files:     []models.BatchFile{{Name: "a.txt", Content: "a"}},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBatchService_Status(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client, jobTestConfig(), nil, nil)
	svc := NewBatchService(client.Client, jobs)
	ctx := context.Background()

	t.Run("tracks siblings through to a partial settle", func(t *testing.T) {
		proj := seedProject(t, client.Client, "Prof Settle")

		created, err := svc.CreateBatch(ctx, models.CreateBatchRequest{
			ProjectID: proj.ID,
			Files: []models.BatchFile{
				{Name: "good.txt", Content: "fine"},
				{Name: "bad.txt", Content: "broken"},
			},
		})
		require.NoError(t, err)

		leased, err := jobs.Lease(ctx, "worker-1", models.KindProf, 10)
		require.NoError(t, err)
		require.Len(t, leased, 2)

		mid, err := svc.GetBatchStatus(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, string(entbatch.StatusProcessing), mid.Status)

		_, err = jobs.ReportProgress(ctx, leased[0].ID, models.PatchJobRequest{Status: models.JobStatusCompleted})
		require.NoError(t, err)
		_, err = jobs.ReportProgress(ctx, leased[1].ID, models.PatchJobRequest{Status: models.JobStatusFailed, Error: "node blew up"})
		require.NoError(t, err)

		final, err := svc.GetBatchStatus(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, string(entbatch.StatusPartial), final.Status)
		assert.Equal(t, 2, final.TotalJobs)
		assert.Equal(t, 1, final.CompletedJobs)
		assert.Equal(t, 1, final.FailedJobs)
		require.NotNil(t, final.CompletedAt)

		require.Len(t, final.PerJob, 2, "terminal siblings stay in the batch view")
		statuses := map[string]bool{}
		for _, pj := range final.PerJob {
			statuses[pj.Status] = true
			assert.Equal(t, created.ID, pj.BatchID)
		}
		assert.True(t, statuses[models.JobStatusCompleted])
		assert.True(t, statuses[models.JobStatusFailed])
	})

	t.Run("returns not found for an unknown batch", func(t *testing.T) {
		_, err := svc.GetBatchStatus(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
