package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assessflow/pipeline/ent"
	"github.com/assessflow/pipeline/ent/batch"
	"github.com/assessflow/pipeline/ent/executioninstance"
	"github.com/assessflow/pipeline/ent/job"
	"github.com/assessflow/pipeline/ent/report"
	"github.com/assessflow/pipeline/ent/session"
	"github.com/assessflow/pipeline/pkg/config"
	"github.com/assessflow/pipeline/pkg/events"
	"github.com/assessflow/pipeline/pkg/models"
	testdb "github.com/assessflow/pipeline/test/database"
)

func jobTestConfig() *config.Config {
	return &config.Config{
		Lease:   config.DefaultLeaseConfig(),
		Retries: config.DefaultRetriesConfig(),
	}
}

func seedProject(t *testing.T, client *ent.Client, name string) *ent.Project {
	t.Helper()
	proj, err := client.Project.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetCanvasData(json.RawMessage(`{"nodes":[],"edges":[]}`)).
		Save(context.Background())
	require.NoError(t, err)
	return proj
}

func seedCompletedSession(t *testing.T, client *ent.Client) *ent.Session {
	t.Helper()
	sess, err := client.Session.Create().
		SetID(uuid.New().String()).
		SetMode(session.ModeProf).
		SetStatus(session.StatusCompleted).
		SetTotalQuestions(10).
		Save(context.Background())
	require.NoError(t, err)
	return sess
}

func seedQueuedJob(t *testing.T, client *ent.Client, projectID, kind string, createdAt time.Time) *ent.Job {
	t.Helper()
	j, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetPipelineKind(kind).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return j
}

// enqueueLeased runs a session job through enqueue and lease, returning
// the processing row. The lease uses a wide batch so leftovers from
// earlier subtests cannot shadow the new job.
func enqueueLeased(t *testing.T, svc *JobService, client *ent.Client, workerID string) (*ent.Session, *ent.Job) {
	t.Helper()
	ctx := context.Background()
	proj := seedProject(t, client, "Prof Pipeline")
	sess := seedCompletedSession(t, client)

	created, err := svc.Enqueue(ctx, models.EnqueueJobRequest{SessionID: sess.ID, ProjectID: proj.ID})
	require.NoError(t, err)

	leased, err := svc.Lease(ctx, workerID, created.PipelineKind, 10)
	require.NoError(t, err)
	ids := make([]string, 0, len(leased))
	for _, l := range leased {
		ids = append(ids, l.ID)
	}
	require.Contains(t, ids, created.ID)

	j, err := client.Job.Get(ctx, created.ID)
	require.NoError(t, err)
	return sess, j
}

type recordingJobPublisher struct {
	mu       sync.Mutex
	statuses []string
}

func (r *recordingJobPublisher) PublishJobStatus(_ context.Context, _ string, payload events.JobStatusPayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, payload.Status)
	return nil
}

func (r *recordingJobPublisher) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.statuses...)
}

type recordingWebhook struct {
	hooks chan models.JobWebhook
}

func (r *recordingWebhook) Deliver(_ context.Context, hook models.JobWebhook) error {
	r.hooks <- hook
	return nil
}

func TestJobService_Enqueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client, jobTestConfig(), nil, nil)
	ctx := context.Background()

	t.Run("enqueues for a completed session", func(t *testing.T) {
		proj := seedProject(t, client.Client, "Prof Assessment")
		sess := seedCompletedSession(t, client.Client)

		created, err := svc.Enqueue(ctx, models.EnqueueJobRequest{SessionID: sess.ID, ProjectID: proj.ID})
		require.NoError(t, err)
		assert.Equal(t, job.StatusQueued, created.Status)
		assert.Equal(t, models.KindProf, created.PipelineKind)
		require.NotNil(t, created.SessionID)
		assert.Equal(t, sess.ID, *created.SessionID)

		mirrored, err := client.Session.Get(ctx, sess.ID)
		require.NoError(t, err)
		require.NotNil(t, mirrored.JobID)
		assert.Equal(t, created.ID, *mirrored.JobID)
		require.NotNil(t, mirrored.JobStatus)
		assert.Equal(t, models.JobStatusQueued, *mirrored.JobStatus)
	})

	t.Run("derives the pipeline kind from the project name", func(t *testing.T) {
		proj := seedProject(t, client.Client, "BigFive Assessment v2")
		sess := seedCompletedSession(t, client.Client)

		created, err := svc.Enqueue(ctx, models.EnqueueJobRequest{SessionID: sess.ID, ProjectID: proj.ID})
		require.NoError(t, err)
		assert.Equal(t, models.KindBigFive, created.PipelineKind)
	})

	t.Run("joins an active job idempotently", func(t *testing.T) {
		proj := seedProject(t, client.Client, "Prof Assessment")
		sess := seedCompletedSession(t, client.Client)

		first, err := svc.Enqueue(ctx, models.EnqueueJobRequest{SessionID: sess.ID, ProjectID: proj.ID})
		require.NoError(t, err)
		second, err := svc.Enqueue(ctx, models.EnqueueJobRequest{SessionID: sess.ID, ProjectID: proj.ID})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("conflicts with a completed job", func(t *testing.T) {
		proj := seedProject(t, client.Client, "Prof Assessment")
		sess := seedCompletedSession(t, client.Client)

		created, err := svc.Enqueue(ctx, models.EnqueueJobRequest{SessionID: sess.ID, ProjectID: proj.ID})
		require.NoError(t, err)
		require.NoError(t, client.Job.UpdateOneID(created.ID).SetStatus(job.StatusCompleted).Exec(ctx))

		_, err = svc.Enqueue(ctx, models.EnqueueJobRequest{SessionID: sess.ID, ProjectID: proj.ID})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("allows a retry after a failed job", func(t *testing.T) {
		proj := seedProject(t, client.Client, "Prof Assessment")
		sess := seedCompletedSession(t, client.Client)

		first, err := svc.Enqueue(ctx, models.EnqueueJobRequest{SessionID: sess.ID, ProjectID: proj.ID})
		require.NoError(t, err)
		require.NoError(t, client.Job.UpdateOneID(first.ID).SetStatus(job.StatusFailed).Exec(ctx))

		second, err := svc.Enqueue(ctx, models.EnqueueJobRequest{SessionID: sess.ID, ProjectID: proj.ID})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("rejects a session that is not completed", func(t *testing.T) {
		proj := seedProject(t, client.Client, "Prof Assessment")
		sess, err := client.Session.Create().
			SetID(uuid.New().String()).
			SetMode(session.ModeProf).
			SetTotalQuestions(10).
			Save(ctx)
		require.NoError(t, err)

		_, err = svc.Enqueue(ctx, models.EnqueueJobRequest{SessionID: sess.ID, ProjectID: proj.ID})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("returns not found for an unknown project", func(t *testing.T) {
		_, err := svc.Enqueue(ctx, models.EnqueueJobRequest{ProjectID: uuid.New().String()})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestJobService_Lease(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client, jobTestConfig(), nil, nil)
	ctx := context.Background()

	t.Run("claims oldest first up to the batch size", func(t *testing.T) {
		proj := seedProject(t, client.Client, "Prof Assessment")
		base := time.Now().Add(-time.Hour)
		oldest := seedQueuedJob(t, client.Client, proj.ID, models.KindProf, base)
		middle := seedQueuedJob(t, client.Client, proj.ID, models.KindProf, base.Add(time.Minute))
		newest := seedQueuedJob(t, client.Client, proj.ID, models.KindProf, base.Add(2*time.Minute))

		leased, err := svc.Lease(ctx, "pod-a-w0", models.KindProf, 2)
		require.NoError(t, err)
		require.Len(t, leased, 2)
		assert.Equal(t, oldest.ID, leased[0].ID)
		assert.Equal(t, middle.ID, leased[1].ID)

		claimed, err := client.Job.Get(ctx, oldest.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusProcessing, claimed.Status)
		require.NotNil(t, claimed.WorkerID)
		assert.Equal(t, "pod-a-w0", *claimed.WorkerID)
		require.NotNil(t, claimed.LeaseDeadline)
		assert.WithinDuration(t, time.Now().Add(120*time.Minute), *claimed.LeaseDeadline, time.Minute)

		rest, err := svc.Lease(ctx, "pod-a-w1", models.KindProf, 10)
		require.NoError(t, err)
		require.Len(t, rest, 1)
		assert.Equal(t, newest.ID, rest[0].ID)
	})

	t.Run("filters by pipeline kind", func(t *testing.T) {
		proj := seedProject(t, client.Client, "BigFive Assessment")
		j := seedQueuedJob(t, client.Client, proj.ID, models.KindBigFive, time.Now())

		leased, err := svc.Lease(ctx, "pod-a-w0", models.KindBigFive, 10)
		require.NoError(t, err)
		require.Len(t, leased, 1)
		assert.Equal(t, j.ID, leased[0].ID)
	})

	t.Run("returns nothing on an empty queue", func(t *testing.T) {
		leased, err := svc.Lease(ctx, "pod-a-w0", models.KindProf, 5)
		require.NoError(t, err)
		assert.Empty(t, leased)
	})

	t.Run("caps the batch size", func(t *testing.T) {
		proj := seedProject(t, client.Client, "Prof Assessment")
		for i := 0; i < 12; i++ {
			seedQueuedJob(t, client.Client, proj.ID, models.KindProf, time.Now().Add(time.Duration(i)*time.Second))
		}

		leased, err := svc.Lease(ctx, "pod-a-w0", models.KindProf, 50)
		require.NoError(t, err)
		assert.Len(t, leased, config.MaxLeaseBatchSize)

		// Drain the rest so later subtests start clean.
		_, err = svc.Lease(ctx, "pod-a-w0", models.KindProf, 10)
		require.NoError(t, err)
	})

	t.Run("concurrent leasers never share a job", func(t *testing.T) {
		proj := seedProject(t, client.Client, "Prof Assessment")
		for i := 0; i < 6; i++ {
			seedQueuedJob(t, client.Client, proj.ID, models.KindProf, time.Now().Add(time.Duration(i)*time.Second))
		}

		var wg sync.WaitGroup
		results := make([][]models.LeasedJob, 2)
		errs := make([]error, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				results[n], errs[n] = svc.Lease(ctx, "pod-race", models.KindProf, 3)
			}(i)
		}
		wg.Wait()

		seen := make(map[string]bool)
		total := 0
		for i := 0; i < 2; i++ {
			require.NoError(t, errs[i])
			for _, l := range results[i] {
				assert.False(t, seen[l.ID], "job %s leased twice", l.ID)
				seen[l.ID] = true
				total++
			}
		}
		assert.Equal(t, 6, total)
	})
}

func TestJobService_ReportProgress(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher := &recordingJobPublisher{}
	webhook := &recordingWebhook{hooks: make(chan models.JobWebhook, 4)}
	svc := NewJobService(client.Client, jobTestConfig(), publisher, webhook)
	ctx := context.Background()

	fullSet := models.ReportSet{
		models.ReportNameAdapted:      "adapted body",
		models.ReportNameProfessional: "professional body",
		models.ReportNameScoreProfile: "score table body",
	}

	t.Run("touch renews the lease", func(t *testing.T) {
		_, j := enqueueLeased(t, svc, client.Client, "pod-a-w0")
		require.NotNil(t, j.LeaseDeadline)
		before := *j.LeaseDeadline

		updated, err := svc.ReportProgress(ctx, j.ID, models.PatchJobRequest{})
		require.NoError(t, err)
		require.NotNil(t, updated.LeaseDeadline)
		assert.WithinDuration(t, before.Add(10*time.Minute), *updated.LeaseDeadline, time.Minute)
		assert.Equal(t, job.StatusProcessing, updated.Status)
	})

	t.Run("completion persists the report mapping", func(t *testing.T) {
		sess, j := enqueueLeased(t, svc, client.Client, "pod-a-w0")

		updated, err := svc.ReportProgress(ctx, j.ID, models.PatchJobRequest{
			Status:  models.JobStatusCompleted,
			Reports: fullSet,
		})
		require.NoError(t, err)
		assert.Equal(t, job.StatusCompleted, updated.Status)

		rows, err := client.Report.Query().
			Where(report.SessionIDEQ(sess.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		byType := make(map[report.Type]*ent.Report, 3)
		for _, r := range rows {
			byType[r.Type] = r
		}
		assert.Equal(t, "adapted body", byType[report.TypeAdapted].Content)
		assert.Equal(t, report.VisibilityPrivate, byType[report.TypeAdapted].Visibility)
		assert.Equal(t, "professional body", byType[report.TypeFull].Content)
		assert.Equal(t, report.VisibilityRestricted, byType[report.TypeFull].Visibility)
		assert.Equal(t, "score table body", byType[report.TypeScoreTable].Content)
		assert.Equal(t, report.VisibilityRestricted, byType[report.TypeScoreTable].Visibility)

		mirrored, err := client.Session.Get(ctx, sess.ID)
		require.NoError(t, err)
		require.NotNil(t, mirrored.JobStatus)
		assert.Equal(t, models.JobStatusCompleted, *mirrored.JobStatus)

		select {
		case hook := <-webhook.hooks:
			assert.Equal(t, j.ID, hook.JobID)
			assert.Equal(t, sess.ID, hook.SessionID)
			assert.Equal(t, models.JobStatusCompleted, hook.Status)
			assert.Equal(t, fullSet, hook.Reports)
		case <-time.After(2 * time.Second):
			t.Fatal("webhook was not delivered")
		}

		assert.Contains(t, publisher.recorded(), models.JobStatusCompleted)
	})

	t.Run("redelivery replaces prior reports", func(t *testing.T) {
		sess, j := enqueueLeased(t, svc, client.Client, "pod-a-w0")
		_, err := client.Report.Create().
			SetID(uuid.New().String()).
			SetSessionID(sess.ID).
			SetType(report.TypeAdapted).
			SetVisibility(report.VisibilityPrivate).
			SetContent("stale body").
			Save(ctx)
		require.NoError(t, err)

		_, err = svc.ReportProgress(ctx, j.ID, models.PatchJobRequest{
			Status:  models.JobStatusCompleted,
			Reports: fullSet,
		})
		require.NoError(t, err)
		<-webhook.hooks

		rows, err := client.Report.Query().
			Where(report.SessionIDEQ(sess.ID), report.TypeEQ(report.TypeAdapted)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "adapted body", rows[0].Content)
	})

	t.Run("updates against a terminal job are rejected", func(t *testing.T) {
		_, j := enqueueLeased(t, svc, client.Client, "pod-a-w0")
		_, err := svc.ReportProgress(ctx, j.ID, models.PatchJobRequest{Status: models.JobStatusCompleted, Reports: fullSet})
		require.NoError(t, err)
		<-webhook.hooks

		_, err = svc.ReportProgress(ctx, j.ID, models.PatchJobRequest{Status: models.JobStatusCompleted, Reports: fullSet})
		assert.ErrorIs(t, err, ErrTerminalJob)
		_, err = svc.ReportProgress(ctx, j.ID, models.PatchJobRequest{})
		assert.ErrorIs(t, err, ErrTerminalJob)
	})

	t.Run("failure records the error and mirrors it", func(t *testing.T) {
		sess, j := enqueueLeased(t, svc, client.Client, "pod-a-w0")

		updated, err := svc.ReportProgress(ctx, j.ID, models.PatchJobRequest{
			Status: models.JobStatusFailed,
			Error:  "provider unavailable",
		})
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorText)
		assert.Equal(t, "provider unavailable", *updated.ErrorText)

		mirrored, err := client.Session.Get(ctx, sess.ID)
		require.NoError(t, err)
		require.NotNil(t, mirrored.JobStatus)
		assert.Equal(t, models.JobStatusFailed, *mirrored.JobStatus)

		select {
		case hook := <-webhook.hooks:
			assert.Equal(t, models.JobStatusFailed, hook.Status)
			assert.Equal(t, "provider unavailable", hook.Error)
		case <-time.After(2 * time.Second):
			t.Fatal("webhook was not delivered")
		}
	})

	t.Run("touch on a reclaimed job reports the lost lease", func(t *testing.T) {
		_, j := enqueueLeased(t, svc, client.Client, "pod-a-w0")
		require.NoError(t, client.Job.UpdateOneID(j.ID).
			SetStatus(job.StatusQueued).
			ClearWorkerID().
			ClearLeaseDeadline().
			Exec(ctx))

		_, err := svc.ReportProgress(ctx, j.ID, models.PatchJobRequest{})
		assert.ErrorIs(t, err, ErrLeaseLost)
	})

	t.Run("completion after a reap still wins", func(t *testing.T) {
		_, j := enqueueLeased(t, svc, client.Client, "pod-a-w0")
		require.NoError(t, client.Job.UpdateOneID(j.ID).
			SetStatus(job.StatusQueued).
			ClearWorkerID().
			ClearLeaseDeadline().
			Exec(ctx))

		updated, err := svc.ReportProgress(ctx, j.ID, models.PatchJobRequest{
			Status:  models.JobStatusCompleted,
			Reports: fullSet,
		})
		require.NoError(t, err)
		assert.Equal(t, job.StatusCompleted, updated.Status)
		<-webhook.hooks
	})
}

func TestJobService_Reap(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client, jobTestConfig(), nil, nil)
	ctx := context.Background()

	expireLease := func(t *testing.T, jobID string) {
		t.Helper()
		require.NoError(t, client.Job.UpdateOneID(jobID).
			SetLeaseDeadline(time.Now().Add(-time.Minute)).
			Exec(ctx))
	}

	t.Run("returns expired leases and fails past the retry budget", func(t *testing.T) {
		sess, j := enqueueLeased(t, svc, client.Client, "pod-a-w0")

		for attempt := 1; attempt <= 3; attempt++ {
			expireLease(t, j.ID)
			reaped, err := svc.Reap(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, reaped)

			requeued, err := client.Job.Get(ctx, j.ID)
			require.NoError(t, err)
			assert.Equal(t, job.StatusQueued, requeued.Status)
			assert.Nil(t, requeued.WorkerID)
			assert.Nil(t, requeued.LeaseDeadline)
			assert.Equal(t, attempt, requeued.Retries)

			leased, err := svc.Lease(ctx, "pod-a-w0", models.KindProf, 1)
			require.NoError(t, err)
			require.Len(t, leased, 1)
			require.Equal(t, j.ID, leased[0].ID)
		}

		// Fourth interruption exhausts the budget.
		expireLease(t, j.ID)
		reaped, err := svc.Reap(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, reaped)

		failed, err := client.Job.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, failed.Status)
		require.NotNil(t, failed.ErrorText)
		assert.Contains(t, *failed.ErrorText, "max retries")

		mirrored, err := client.Session.Get(ctx, sess.ID)
		require.NoError(t, err)
		require.NotNil(t, mirrored.JobStatus)
		assert.Equal(t, models.JobStatusFailed, *mirrored.JobStatus)
	})

	t.Run("leaves live leases alone", func(t *testing.T) {
		_, j := enqueueLeased(t, svc, client.Client, "pod-a-w1")

		reaped, err := svc.Reap(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, reaped)

		still, err := client.Job.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusProcessing, still.Status)
	})
}

func TestJobService_RequeueAndOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client, jobTestConfig(), nil, nil)
	ctx := context.Background()

	t.Run("requeue is restricted to the lease holder", func(t *testing.T) {
		_, j := enqueueLeased(t, svc, client.Client, "pod-a-w0")

		_, err := svc.Requeue(ctx, j.ID, "pod-b-w9", "worker shutdown")
		assert.ErrorIs(t, err, ErrLeaseLost)

		requeued, err := svc.Requeue(ctx, j.ID, "pod-a-w0", "worker shutdown")
		require.NoError(t, err)
		assert.Equal(t, job.StatusQueued, requeued.Status)
		assert.Equal(t, 1, requeued.Retries)
		assert.Nil(t, requeued.WorkerID)
	})

	t.Run("startup release frees this pool's orphans only", func(t *testing.T) {
		proj := seedProject(t, client.Client, "Prof Assessment")
		claim := func(workerID string) *ent.Job {
			j := seedQueuedJob(t, client.Client, proj.ID, models.KindProf, time.Now())
			require.NoError(t, client.Job.UpdateOneID(j.ID).
				SetStatus(job.StatusProcessing).
				SetWorkerID(workerID).
				SetLeaseDeadline(time.Now().Add(2*time.Hour)).
				Exec(ctx))
			return j
		}
		mineA := claim("pod-a-w0")
		mineB := claim("pod-a-w1")
		other := claim("pod-b-w0")

		released, err := svc.ReleaseOrphans(ctx, "pod-a")
		require.NoError(t, err)
		assert.Equal(t, 2, released)

		for _, id := range []string{mineA.ID, mineB.ID} {
			row, err := client.Job.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, job.StatusQueued, row.Status)
		}
		row, err := client.Job.Get(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusProcessing, row.Status)
	})
}

func TestJobService_Poll(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client, jobTestConfig(), nil, nil)
	ctx := context.Background()

	t.Run("unknown session", func(t *testing.T) {
		_, err := svc.Poll(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("session without a job", func(t *testing.T) {
		sess := seedCompletedSession(t, client.Client)
		_, err := svc.Poll(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("queued job has bare status", func(t *testing.T) {
		proj := seedProject(t, client.Client, "Prof Assessment")
		sess := seedCompletedSession(t, client.Client)
		created, err := svc.Enqueue(ctx, models.EnqueueJobRequest{SessionID: sess.ID, ProjectID: proj.ID})
		require.NoError(t, err)

		resp, err := svc.Poll(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, resp.JobID)
		assert.Equal(t, models.JobStatusQueued, resp.Status)
		assert.Empty(t, resp.Reports)
		assert.Empty(t, resp.Error)
	})

	t.Run("completed job returns the persisted reports", func(t *testing.T) {
		sess, j := enqueueLeased(t, svc, client.Client, "pod-a-w0")
		_, err := svc.ReportProgress(ctx, j.ID, models.PatchJobRequest{
			Status: models.JobStatusCompleted,
			Reports: models.ReportSet{
				models.ReportNameAdapted:      "adapted body",
				models.ReportNameProfessional: "professional body",
				models.ReportNameScoreProfile: "score table body",
			},
		})
		require.NoError(t, err)

		resp, err := svc.Poll(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusCompleted, resp.Status)
		assert.Equal(t, "adapted body", resp.Reports[models.ReportNameAdapted])
		assert.Equal(t, "professional body", resp.Reports[models.ReportNameProfessional])
		assert.Equal(t, "score table body", resp.Reports[models.ReportNameScoreProfile])
	})

	t.Run("failed job returns the error text", func(t *testing.T) {
		sess, j := enqueueLeased(t, svc, client.Client, "pod-a-w0")
		_, err := svc.ReportProgress(ctx, j.ID, models.PatchJobRequest{
			Status: models.JobStatusFailed,
			Error:  "graph has a cycle",
		})
		require.NoError(t, err)

		resp, err := svc.Poll(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusFailed, resp.Status)
		assert.Equal(t, "graph has a cycle", resp.Error)
	})
}

func TestJobService_ListActive(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client, jobTestConfig(), nil, nil)
	ctx := context.Background()

	proj := seedProject(t, client.Client, "Prof Assessment")
	otherProj := seedProject(t, client.Client, "Prof Secondary")
	base := time.Now().Add(-time.Hour)

	queued := seedQueuedJob(t, client.Client, proj.ID, models.KindProf, base)
	running := seedQueuedJob(t, client.Client, proj.ID, models.KindProf, base.Add(time.Minute))
	done := seedQueuedJob(t, client.Client, otherProj.ID, models.KindProf, base.Add(2*time.Minute))
	require.NoError(t, client.Job.UpdateOneID(running.ID).
		SetStatus(job.StatusProcessing).
		SetWorkerID("pod-a-w0").
		SetLeaseDeadline(time.Now().Add(2*time.Hour)).
		Exec(ctx))
	require.NoError(t, client.Job.UpdateOneID(done.ID).
		SetStatus(job.StatusCompleted).
		Exec(ctx))

	_, err := client.ExecutionInstance.Create().
		SetID(uuid.New().String()).
		SetProjectID(proj.ID).
		SetJobID(running.ID).
		SetStatus(executioninstance.StatusRunning).
		SetTotalNodes(4).
		SetExecutedNodes(2).
		SetCurrentNodeID("node-c").
		SetStartedAt(time.Now()).
		SetGlobalVariablesSnapshot(map[string]models.Variable{}).
		Save(ctx)
	require.NoError(t, err)

	t.Run("defaults to active jobs with live progress", func(t *testing.T) {
		active, err := svc.ListActive(ctx, models.JobFilters{})
		require.NoError(t, err)
		require.Len(t, active, 2)
		assert.Equal(t, queued.ID, active[0].ID)
		assert.Nil(t, active[0].Progress)

		assert.Equal(t, running.ID, active[1].ID)
		assert.Equal(t, "pod-a-w0", active[1].WorkerID)
		require.NotNil(t, active[1].Progress)
		assert.Equal(t, 4, active[1].Progress.TotalNodes)
		assert.Equal(t, 2, active[1].Progress.ExecutedNodes)
		assert.Equal(t, 50, active[1].Progress.Percentage)
		assert.Equal(t, "node-c", active[1].Progress.CurrentNodeID)
	})

	t.Run("filters by status", func(t *testing.T) {
		active, err := svc.ListActive(ctx, models.JobFilters{Status: models.JobStatusCompleted})
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, done.ID, active[0].ID)
	})

	t.Run("filters by project", func(t *testing.T) {
		active, err := svc.ListActive(ctx, models.JobFilters{ProjectID: proj.ID})
		require.NoError(t, err)
		assert.Len(t, active, 2)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		_, err := svc.ListActive(ctx, models.JobFilters{Status: "sleeping"})
		assert.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestJobService_BatchAccounting(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client, jobTestConfig(), nil, nil)
	ctx := context.Background()

	proj := seedProject(t, client.Client, "Prof Assessment")

	seedBatch := func(t *testing.T, total int) (*ent.Batch, []*ent.Job) {
		t.Helper()
		b, err := client.Batch.Create().
			SetID(uuid.New().String()).
			SetProjectID(proj.ID).
			SetName("upload").
			SetOutputDir("/tmp/batches").
			SetTotalJobs(total).
			Save(ctx)
		require.NoError(t, err)
		jobs := make([]*ent.Job, 0, total)
		for i := 0; i < total; i++ {
			j, err := client.Job.Create().
				SetID(uuid.New().String()).
				SetProjectID(proj.ID).
				SetPipelineKind(models.KindProf).
				SetBatchID(b.ID).
				SetCreatedAt(time.Now().Add(time.Duration(i) * time.Second)).
				Save(ctx)
			require.NoError(t, err)
			jobs = append(jobs, j)
		}
		return b, jobs
	}

	t.Run("lease flips the batch to processing", func(t *testing.T) {
		b, _ := seedBatch(t, 2)

		_, err := svc.Lease(ctx, "pod-a-w0", models.KindProf, 10)
		require.NoError(t, err)

		row, err := client.Batch.Get(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, batch.StatusProcessing, row.Status)
	})

	t.Run("mixed outcomes settle as partial", func(t *testing.T) {
		b, jobs := seedBatch(t, 3)
		_, err := svc.Lease(ctx, "pod-a-w0", models.KindProf, 10)
		require.NoError(t, err)

		_, err = svc.ReportProgress(ctx, jobs[0].ID, models.PatchJobRequest{Status: models.JobStatusCompleted})
		require.NoError(t, err)
		_, err = svc.ReportProgress(ctx, jobs[1].ID, models.PatchJobRequest{Status: models.JobStatusCompleted})
		require.NoError(t, err)
		_, err = svc.ReportProgress(ctx, jobs[2].ID, models.PatchJobRequest{Status: models.JobStatusFailed, Error: "bad input"})
		require.NoError(t, err)

		row, err := client.Batch.Get(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, batch.StatusPartial, row.Status)
		assert.Equal(t, 2, row.CompletedJobs)
		assert.Equal(t, 1, row.FailedJobs)
		assert.NotNil(t, row.CompletedAt)
	})

	t.Run("clean sweep settles as completed", func(t *testing.T) {
		b, jobs := seedBatch(t, 2)
		_, err := svc.Lease(ctx, "pod-a-w0", models.KindProf, 10)
		require.NoError(t, err)

		for _, j := range jobs {
			_, err := svc.ReportProgress(ctx, j.ID, models.PatchJobRequest{Status: models.JobStatusCompleted})
			require.NoError(t, err)
		}

		row, err := client.Batch.Get(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, batch.StatusCompleted, row.Status)
		assert.Equal(t, 2, row.CompletedJobs)
		assert.Equal(t, 0, row.FailedJobs)
	})
}

func TestJobService_Counts(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client, jobTestConfig(), nil, nil)
	ctx := context.Background()

	active, err := svc.HasActiveJobs(ctx)
	require.NoError(t, err)
	assert.False(t, active)

	proj := seedProject(t, client.Client, "Prof Assessment")
	seedQueuedJob(t, client.Client, proj.ID, models.KindProf, time.Now())
	j := seedQueuedJob(t, client.Client, proj.ID, models.KindProf, time.Now())
	require.NoError(t, client.Job.UpdateOneID(j.ID).SetStatus(job.StatusCompleted).Exec(ctx))

	counts, err := svc.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[models.JobStatusQueued])
	assert.Equal(t, 1, counts[models.JobStatusCompleted])

	active, err = svc.HasActiveJobs(ctx)
	require.NoError(t, err)
	assert.True(t, active)
}
