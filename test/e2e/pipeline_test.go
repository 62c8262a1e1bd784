package e2e

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assessflow/pipeline/pkg/cleanup"
	"github.com/assessflow/pipeline/pkg/config"
	"github.com/assessflow/pipeline/pkg/models"
)

// TestPipeline_QueueToReports drives the happy path end to end: a session
// completes, its job is enqueued over HTTP, a pool worker leases it, the
// executor runs the canvas against the provider, and the three reports
// come back through both the webhook and the poller.
func TestPipeline_QueueToReports(t *testing.T) {
	s := newStack(t, nil)
	analysis := "Openness: high. Conscientiousness: steady."
	s.provider.script(func(string) (int, string) { return http.StatusOK, analysis })

	nodes, edges := profGraph()
	projectID := s.createProject(t, "Prof Pipeline", nodes, edges)
	sessionID := s.createCompletedSession(t)

	jobID := s.enqueue(t, sessionID, projectID, map[string]string{
		"input_text": "answers from the questionnaire",
	})

	s.startWorkers(t)

	hook := s.webhooks.next(t, 15*time.Second)
	assert.Equal(t, jobID, hook.JobID)
	assert.Equal(t, sessionID, hook.SessionID)
	assert.Equal(t, models.JobStatusCompleted, hook.Status)
	assert.Equal(t, analysis, hook.Reports[models.ReportNameAdapted])
	assert.Equal(t, "Professional view: "+analysis, hook.Reports[models.ReportNameProfessional])
	assert.Contains(t, hook.Reports[models.ReportNameScoreProfile], "| trait | score |")

	// The poller fallback sees the same terminal state.
	body := s.pollUntil(t, sessionID, models.JobStatusCompleted, 5*time.Second)
	reports, ok := body["reports"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, analysis, reports[models.ReportNameAdapted])

	assert.Equal(t, 1, s.provider.callCount(), "one prompt node, one provider call")
}

// TestPipeline_ProgressLogPaging reads the run's progress log through the
// admin surface with offset polling.
func TestPipeline_ProgressLogPaging(t *testing.T) {
	s := newStack(t, nil)
	s.provider.script(func(string) (int, string) { return http.StatusOK, "analysis text" })

	nodes, edges := profGraph()
	projectID := s.createProject(t, "Prof Pipeline", nodes, edges)
	sessionID := s.createCompletedSession(t)
	jobID := s.enqueue(t, sessionID, projectID, map[string]string{"input_text": "answers"})

	s.startWorkers(t)
	s.pollUntil(t, sessionID, models.JobStatusCompleted, 15*time.Second)

	code, body := s.do(t, http.MethodGet, "/admin/jobs/"+jobID+"/progress", nil)
	require.Equal(t, http.StatusOK, code)
	total := int(body["total"].(float64))
	require.GreaterOrEqual(t, total, 4, "one line per node at minimum")
	lines, ok := body["lines"].([]any)
	require.True(t, ok)
	assert.Len(t, lines, total)

	// Resuming at the known total returns only what is new — nothing.
	code, body = s.do(t, http.MethodGet,
		fmt.Sprintf("/admin/jobs/%s/progress?offset=%d", jobID, total), nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, total, body["total"])
	assert.Empty(t, body["lines"])

	// A mid-file offset yields the tail.
	code, body = s.do(t, http.MethodGet,
		fmt.Sprintf("/admin/jobs/%s/progress?offset=%d", jobID, total-1), nil)
	require.Equal(t, http.StatusOK, code)
	tail, ok := body["lines"].([]any)
	require.True(t, ok)
	assert.Len(t, tail, 1)
}

// TestPipeline_BreakerOpensOnProviderFaults runs two jobs into a failing
// provider and verifies the breaker opens and surfaces on the health
// endpoint.
func TestPipeline_BreakerOpensOnProviderFaults(t *testing.T) {
	s := newStack(t, func(cfg *config.Config) { cfg.Breaker.FailureThreshold = 2 })
	s.provider.script(func(string) (int, string) { return http.StatusInternalServerError, "" })

	nodes, edges := guardedGraph()
	projectID := s.createProject(t, "Prof Pipeline", nodes, edges)

	for i := 0; i < 2; i++ {
		sessionID := s.createCompletedSession(t)
		s.enqueue(t, sessionID, projectID, map[string]string{"input_text": "answers"})
	}

	s.startWorkers(t)

	first := s.webhooks.next(t, 15*time.Second)
	assert.Equal(t, models.JobStatusFailed, first.Status)
	assert.Contains(t, first.Error, "analysis is empty")

	second := s.webhooks.next(t, 15*time.Second)
	assert.Equal(t, models.JobStatusFailed, second.Status)

	assert.Equal(t, "open", s.gw.BreakerState())

	resp, err := s.api.Client().Get(s.api.URL + "/api/v1/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	var health map[string]any
	require.NoError(t, decodeJSON(resp, &health))
	provider, ok := health["provider"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "open", provider["breaker"])
}

// TestPipeline_ReaperWalksRetryBudget leases a job through the integrator
// surface, never reports, and watches the reaper requeue it once and fail
// it when the budget is spent.
func TestPipeline_ReaperWalksRetryBudget(t *testing.T) {
	s := newStack(t, func(cfg *config.Config) {
		cfg.Lease.InitialMinutes = 0 // leases expire the moment they are granted
		cfg.Retries.Max = 1
		cfg.Reaper.IntervalSeconds = 1
	})

	nodes, edges := profGraph()
	projectID := s.createProject(t, "Prof Pipeline", nodes, edges)
	sessionID := s.createCompletedSession(t)
	s.enqueue(t, sessionID, projectID, nil)

	sweeper := cleanup.NewService(s.cfg, s.client.Client, s.jobs, s.events)
	sweeper.Start(t.Context())
	t.Cleanup(sweeper.Stop)

	// First lease: the integrator claims the job and goes silent.
	code, body := s.do(t, http.MethodGet, "/external/jobs?kind=Prof", nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body["jobs"].([]any), 1)

	// The reaper returns it to the queue with one retry burned.
	s.pollUntil(t, sessionID, models.JobStatusQueued, 10*time.Second)

	// Second claim, silent again: the budget is spent and the job fails.
	code, body = s.do(t, http.MethodGet, "/external/jobs?kind=Prof", nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body["jobs"].([]any), 1)

	final := s.pollUntil(t, sessionID, models.JobStatusFailed, 10*time.Second)
	errText, _ := final["error"].(string)
	assert.Contains(t, errText, "max retries (1) exhausted")
	assert.Contains(t, errText, "lease expired")
}

// TestPipeline_BatchFanOutPartial uploads three documents, one of which
// trips the provider, and verifies the batch settles as partial with
// per-job detail.
func TestPipeline_BatchFanOutPartial(t *testing.T) {
	s := newStack(t, nil)
	s.provider.script(func(userMessage string) (int, string) {
		if strings.Contains(userMessage, "TRIGGER_FAULT") {
			return http.StatusInternalServerError, ""
		}
		return http.StatusOK, "clean analysis"
	})

	nodes, edges := guardedGraph()
	projectID := s.createProject(t, "Folder Analysis", nodes, edges)

	code, body := s.do(t, http.MethodPost, "/internal/batches", models.CreateBatchRequest{
		ProjectID: projectID,
		Name:      "august-upload",
		Files: []models.BatchFile{
			{Name: "alice.txt", Content: "a thoughtful essay"},
			{Name: "broken.txt", Content: "TRIGGER_FAULT"},
			{Name: "carol.txt", Content: "another essay"},
		},
	})
	require.Equal(t, http.StatusCreated, code, "body: %v", body)
	batchID, _ := body["batchId"].(string)
	require.NotEmpty(t, batchID)
	assert.EqualValues(t, 3, body["totalJobs"])

	s.startWorkers(t)

	require.Eventually(t, func() bool {
		_, status := s.do(t, http.MethodGet, "/internal/batches/"+batchID, nil)
		return status["status"] == "partial"
	}, 20*time.Second, 100*time.Millisecond, "batch never settled as partial")

	code, status := s.do(t, http.MethodGet, "/internal/batches/"+batchID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 3, status["total_jobs"])
	assert.EqualValues(t, 2, status["completed_jobs"])
	assert.EqualValues(t, 1, status["failed_jobs"])

	perJob, ok := status["per_job"].([]any)
	require.True(t, ok)
	assert.Len(t, perJob, 3)
}

// TestPipeline_LeaseContention fires two integrator clients at the same
// queue and verifies no job is handed out twice.
func TestPipeline_LeaseContention(t *testing.T) {
	s := newStack(t, nil)

	nodes, edges := profGraph()
	projectID := s.createProject(t, "Prof Pipeline", nodes, edges)
	for i := 0; i < 3; i++ {
		sessionID := s.createCompletedSession(t)
		s.enqueue(t, sessionID, projectID, nil)
	}

	leaseAs := func(workerID string) ([]models.LeasedJob, error) {
		req, err := http.NewRequest(http.MethodGet, s.api.URL+"/external/jobs?kind=Prof&batch=10", nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("X-Backend-Secret", backendSecret)
		req.Header.Set("X-Worker-ID", workerID)
		resp, err := s.api.Client().Do(req)
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("lease as %s: HTTP %d", workerID, resp.StatusCode)
		}

		var body struct {
			Jobs []models.LeasedJob `json:"jobs"`
		}
		if err := decodeJSON(resp, &body); err != nil {
			return nil, err
		}
		return body.Jobs, nil
	}

	type claim struct {
		workerID string
		jobs     []models.LeasedJob
		err      error
	}
	workers := []string{"integrator-a", "integrator-b"}
	results := make(chan claim, len(workers))
	var wg sync.WaitGroup
	for _, workerID := range workers {
		wg.Add(1)
		go func(workerID string) {
			defer wg.Done()
			jobs, err := leaseAs(workerID)
			results <- claim{workerID: workerID, jobs: jobs, err: err}
		}(workerID)
	}
	wg.Wait()
	close(results)

	claimed := map[string]string{}
	for res := range results {
		require.NoError(t, res.err)
		for _, j := range res.jobs {
			assert.False(t, j.LeaseDeadline.IsZero(), "leased job carries a deadline")
			owner, dup := claimed[j.ID]
			assert.False(t, dup, "job %s leased by both %s and %s", j.ID, owner, res.workerID)
			claimed[j.ID] = res.workerID
		}
	}
	assert.Len(t, claimed, 3, "every queued job leased exactly once")
}
