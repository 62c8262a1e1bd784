package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assessflow/pipeline/ent"
	"github.com/assessflow/pipeline/ent/job"
	"github.com/assessflow/pipeline/pkg/config"
	"github.com/assessflow/pipeline/pkg/executor"
	"github.com/assessflow/pipeline/pkg/models"
	"github.com/assessflow/pipeline/pkg/services"
	testdb "github.com/assessflow/pipeline/test/database"
)

// fakeExecutor is a scriptable JobExecutor. The default script succeeds
// with the canonical report variables set.
type fakeExecutor struct {
	mu   sync.Mutex
	runs []executor.RunRequest
	run  func(ctx context.Context, req executor.RunRequest) (*models.ExecutionSummary, error)
}

func (f *fakeExecutor) Run(ctx context.Context, req executor.RunRequest) (*models.ExecutionSummary, error) {
	f.mu.Lock()
	f.runs = append(f.runs, req)
	f.mu.Unlock()
	if f.run != nil {
		return f.run(ctx, req)
	}
	return &models.ExecutionSummary{
		Executed: 1,
		Variables: map[string]string{
			models.ReportNameAdapted: "adapted body",
		},
	}, nil
}

func (f *fakeExecutor) recorded() []executor.RunRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]executor.RunRequest(nil), f.runs...)
}

func workerTestConfig() *config.Config {
	return &config.Config{
		Lease:   config.DefaultLeaseConfig(),
		Retries: config.DefaultRetriesConfig(),
		Worker:  config.DefaultWorkerConfig(),
	}
}

func seedQueuedJob(t *testing.T, client *ent.Client, kind string) *ent.Job {
	t.Helper()
	ctx := context.Background()
	proj, err := client.Project.Create().
		SetID(uuid.New().String()).
		SetName("Worker Test Project").
		SetCanvasData(json.RawMessage(`{"nodes":[],"edges":[]}`)).
		Save(ctx)
	require.NoError(t, err)

	j, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetProjectID(proj.ID).
		SetPipelineKind(kind).
		Save(ctx)
	require.NoError(t, err)
	return j
}

// waitForStatus polls until the job reaches the wanted status or the
// deadline passes.
func waitForStatus(t *testing.T, client *ent.Client, jobID, want string) *ent.Job {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		j, err := client.Job.Get(context.Background(), jobID)
		require.NoError(t, err)
		if string(j.Status) == want {
			return j
		}
		time.Sleep(25 * time.Millisecond)
	}
	t.Fatalf("job %s never reached status %s", jobID, want)
	return nil
}

func TestWorker_ProcessesQueuedJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := workerTestConfig()
	jobs := services.NewJobService(client.Client, cfg, nil, nil)

	seeded := seedQueuedJob(t, client.Client, models.KindProf)

	exec := &fakeExecutor{}
	w := NewWorker("pod-w0", models.KindProf, models.WorkerSettings{
		Instances:         1,
		PollIntervalMS:    25,
		MaxConcurrentJobs: 1,
	}, jobs, exec)
	w.Start(context.Background())
	defer w.Stop()

	done := waitForStatus(t, client.Client, seeded.ID, models.JobStatusCompleted)
	require.NotNil(t, done.WorkerID)
	assert.Equal(t, "pod-w0", *done.WorkerID)

	runs := exec.recorded()
	require.Len(t, runs, 1)
	assert.Equal(t, seeded.ID, runs[0].JobID)
	assert.True(t, runs[0].ClearResults, "job runs start from a clean environment")

	assert.Eventually(t, func() bool {
		return w.Health().JobsProcessed == 1
	}, 5*time.Second, 25*time.Millisecond)
	assert.Equal(t, models.KindProf, w.Health().Kind)
}

func TestWorker_ReportsRunFailure(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := workerTestConfig()
	jobs := services.NewJobService(client.Client, cfg, nil, nil)

	seeded := seedQueuedJob(t, client.Client, models.KindProf)

	exec := &fakeExecutor{run: func(_ context.Context, _ executor.RunRequest) (*models.ExecutionSummary, error) {
		return &models.ExecutionSummary{Failed: 1}, errors.New("node b: provider exploded")
	}}
	w := NewWorker("pod-w0", models.KindProf, models.WorkerSettings{
		PollIntervalMS:    25,
		MaxConcurrentJobs: 1,
	}, jobs, exec)
	w.Start(context.Background())
	defer w.Stop()

	done := waitForStatus(t, client.Client, seeded.ID, models.JobStatusFailed)
	require.NotNil(t, done.ErrorText)
	assert.Contains(t, *done.ErrorText, "provider exploded")
}

func TestWorker_RequeuesOnCanceledRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := workerTestConfig()
	jobs := services.NewJobService(client.Client, cfg, nil, nil)

	seeded := seedQueuedJob(t, client.Client, models.KindProf)

	started := make(chan struct{})
	exec := &fakeExecutor{run: func(_ context.Context, req executor.RunRequest) (*models.ExecutionSummary, error) {
		close(started)
		<-req.Stop
		return &models.ExecutionSummary{Skipped: 1}, executor.ErrCanceled
	}}
	w := NewWorker("pod-w0", models.KindProf, models.WorkerSettings{
		PollIntervalMS:    25,
		MaxConcurrentJobs: 1,
	}, jobs, exec)
	w.Start(context.Background())

	<-started
	w.Stop()

	j := waitForStatus(t, client.Client, seeded.ID, models.JobStatusQueued)
	assert.Nil(t, j.WorkerID, "requeued job sheds its lease")
	assert.Nil(t, j.LeaseDeadline)
	assert.Equal(t, 1, j.Retries)
}

func TestWorker_IgnoresOtherKinds(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := workerTestConfig()
	jobs := services.NewJobService(client.Client, cfg, nil, nil)

	seeded := seedQueuedJob(t, client.Client, models.KindBigFive)

	exec := &fakeExecutor{}
	w := NewWorker("pod-w0", models.KindProf, models.WorkerSettings{
		PollIntervalMS:    25,
		MaxConcurrentJobs: 1,
	}, jobs, exec)
	w.Start(context.Background())
	defer w.Stop()

	time.Sleep(300 * time.Millisecond)
	j, err := client.Job.Get(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, j.Status)
	assert.Empty(t, exec.recorded())
}

func TestPool_SpawnsPerStagedSettings(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := workerTestConfig()
	jobs := services.NewJobService(client.Client, cfg, nil, nil)
	settings := services.NewSettingsService(client.Client, jobs)

	require.NoError(t, settings.PutWorkerSettings(context.Background(), models.KindProf, models.WorkerSettings{
		Instances:         2,
		PollIntervalMS:    25,
		MaxConcurrentJobs: 1,
	}))
	require.NoError(t, settings.PutWorkerSettings(context.Background(), models.KindBigFive, models.WorkerSettings{
		Instances:         0,
		PollIntervalMS:    25,
		MaxConcurrentJobs: 1,
	}))

	pool := NewPool("pod", client.Client, cfg, jobs, settings, &fakeExecutor{})
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.Equal(t, 2, health.TotalWorkers, "BigFive stays idle at zero instances")
	assert.Equal(t, "pod", health.PodID)
}

func TestPool_ReleasesOwnOrphansOnStart(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := workerTestConfig()
	jobs := services.NewJobService(client.Client, cfg, nil, nil)
	settings := services.NewSettingsService(client.Client, jobs)
	ctx := context.Background()

	// A job this pod leased before a crash, and one owned by another pod.
	mine := seedQueuedJob(t, client.Client, models.KindProf)
	require.NoError(t, client.Job.UpdateOneID(mine.ID).
		SetStatus(job.StatusProcessing).
		SetWorkerID("pod-w3").
		SetLeaseDeadline(time.Now().Add(time.Hour)).
		Exec(ctx))

	other := seedQueuedJob(t, client.Client, models.KindProf)
	require.NoError(t, client.Job.UpdateOneID(other.ID).
		SetStatus(job.StatusProcessing).
		SetWorkerID("elsewhere-w0").
		SetLeaseDeadline(time.Now().Add(time.Hour)).
		Exec(ctx))

	// No instances staged, so the released job stays queued for assertion.
	require.NoError(t, settings.PutWorkerSettings(ctx, models.KindProf, models.WorkerSettings{
		Instances: 0, PollIntervalMS: 25, MaxConcurrentJobs: 1,
	}))
	require.NoError(t, settings.PutWorkerSettings(ctx, models.KindBigFive, models.WorkerSettings{
		Instances: 0, PollIntervalMS: 25, MaxConcurrentJobs: 1,
	}))

	pool := NewPool("pod", client.Client, cfg, jobs, settings, &fakeExecutor{})
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	released, err := client.Job.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, released.Status)

	kept, err := client.Job.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusProcessing, kept.Status)
}

func TestPool_StartIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := workerTestConfig()
	jobs := services.NewJobService(client.Client, cfg, nil, nil)
	settings := services.NewSettingsService(client.Client, jobs)

	pool := NewPool("pod", client.Client, cfg, jobs, settings, &fakeExecutor{})
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	first := pool.Health().TotalWorkers
	require.NoError(t, pool.Start(context.Background()))
	assert.Equal(t, first, pool.Health().TotalWorkers)
}
