package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assessflow/pipeline/ent"
	"github.com/assessflow/pipeline/ent/session"
	"github.com/assessflow/pipeline/pkg/config"
	"github.com/assessflow/pipeline/pkg/database"
	"github.com/assessflow/pipeline/pkg/models"
	"github.com/assessflow/pipeline/pkg/services"
	testdb "github.com/assessflow/pipeline/test/database"
)

const testSecret = "test-backend-secret"

type apiFixture struct {
	server *httptest.Server
	client *database.Client
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	client := testdb.NewTestClient(t)

	cfg := &config.Config{
		Server:    config.DefaultServerConfig(),
		Polling:   config.DefaultPollingConfig(),
		Lease:     config.DefaultLeaseConfig(),
		Worker:    config.DefaultWorkerConfig(),
		Executor:  config.DefaultExecutorConfig(),
		Progress:  config.DefaultProgressConfig(),
		Provider:  config.DefaultProviderConfig(),
		Breaker:   config.DefaultBreakerConfig(),
		IAM:       config.DefaultIAMConfig(),
		Webhook:   config.DefaultWebhookConfig(),
		Reaper:    config.DefaultReaperConfig(),
		Retries:   config.DefaultRetriesConfig(),
		Retention: config.DefaultRetentionConfig(),
	}
	cfg.Progress.LogDir = t.TempDir()

	jobs := services.NewJobService(client.Client, cfg, nil, nil)
	sessions := services.NewSessionService(client.Client)
	projects := services.NewProjectService(client.Client)
	batches := services.NewBatchService(client.Client, jobs)
	settings := services.NewSettingsService(client.Client, jobs)

	srv := NewServer(cfg, client, testSecret, jobs, sessions, projects, batches, settings, nil)
	ts := httptest.NewServer(srv.Engine())
	t.Cleanup(ts.Close)

	return &apiFixture{server: ts, client: client}
}

// do issues a JSON request with the backend secret attached and decodes the
// response body into a generic map.
func (f *apiFixture) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, f.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(backendSecretHeader, testSecret)

	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	decoded := map[string]any{}
	if resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&decoded)
	}
	return resp.StatusCode, decoded
}

func (f *apiFixture) seedProject(t *testing.T, name string) *ent.Project {
	t.Helper()
	proj, err := f.client.Project.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetCanvasData(json.RawMessage(`{"nodes":[],"edges":[]}`)).
		Save(context.Background())
	require.NoError(t, err)
	return proj
}

func (f *apiFixture) seedCompletedSession(t *testing.T) *ent.Session {
	t.Helper()
	sess, err := f.client.Session.Create().
		SetID(uuid.New().String()).
		SetMode(session.ModeProf).
		SetStatus(session.StatusCompleted).
		SetTotalQuestions(10).
		Save(context.Background())
	require.NoError(t, err)
	return sess
}

func TestServer_Health(t *testing.T) {
	f := newAPIFixture(t)

	resp, err := f.server.Client().Get(f.server.URL + "/api/v1/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body, "database")
}

func TestServer_AuthBoundaries(t *testing.T) {
	f := newAPIFixture(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/external/jobs?kind=Prof"},
		{http.MethodGet, "/admin/jobs"},
		{http.MethodGet, "/admin/settings"},
		{http.MethodPost, "/internal/jobs"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, f.server.URL+tt.path, bytes.NewReader([]byte("{}")))
			require.NoError(t, err)
			resp, err := f.server.Client().Do(req)
			require.NoError(t, err)
			_ = resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestServer_JobLifecycle(t *testing.T) {
	f := newAPIFixture(t)
	proj := f.seedProject(t, "Prof Pipeline")
	sess := f.seedCompletedSession(t)

	// Enqueue through the front-end surface.
	code, body := f.do(t, http.MethodPost, "/internal/jobs", models.EnqueueJobRequest{
		SessionID: sess.ID,
		ProjectID: proj.ID,
	})
	require.Equal(t, http.StatusAccepted, code, "body: %v", body)
	jobID, _ := body["jobId"].(string)
	require.NotEmpty(t, jobID)
	assert.Equal(t, models.JobStatusQueued, body["status"])

	// Duplicate enqueue joins the active job idempotently.
	code, body = f.do(t, http.MethodPost, "/internal/jobs", models.EnqueueJobRequest{
		SessionID: sess.ID,
		ProjectID: proj.ID,
	})
	require.Equal(t, http.StatusAccepted, code)
	assert.Equal(t, jobID, body["jobId"])

	// Poll reflects the queued state.
	code, body = f.do(t, http.MethodGet, "/internal/jobs/"+sess.ID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, models.JobStatusQueued, body["status"])

	// Worker leases the job.
	code, body = f.do(t, http.MethodGet, "/external/jobs?status=queued&kind=Prof&batch=10", nil)
	require.Equal(t, http.StatusOK, code)
	leased, ok := body["jobs"].([]any)
	require.True(t, ok)
	require.Len(t, leased, 1)

	// Worker reports completion with the three deliverables.
	code, body = f.do(t, http.MethodPatch, "/external/jobs/"+jobID, models.PatchJobRequest{
		Status: models.JobStatusCompleted,
		Reports: models.ReportSet{
			models.ReportNameAdapted:      "adapted body",
			models.ReportNameProfessional: "professional body",
			models.ReportNameScoreProfile: "| trait | score |",
		},
	})
	require.Equal(t, http.StatusOK, code, "body: %v", body)
	assert.Equal(t, models.JobStatusCompleted, body["status"])

	// Poll now returns the terminal state with reports.
	code, body = f.do(t, http.MethodGet, "/internal/jobs/"+sess.ID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, models.JobStatusCompleted, body["status"])
	reports, ok := body["reports"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "adapted body", reports[models.ReportNameAdapted])

	// A second terminal patch conflicts.
	code, _ = f.do(t, http.MethodPatch, "/external/jobs/"+jobID, models.PatchJobRequest{
		Status: models.JobStatusFailed,
		Error:  "too late",
	})
	assert.Equal(t, http.StatusConflict, code)

	// Re-enqueueing a session with a completed job conflicts.
	code, _ = f.do(t, http.MethodPost, "/internal/jobs", models.EnqueueJobRequest{
		SessionID: sess.ID,
		ProjectID: proj.ID,
	})
	assert.Equal(t, http.StatusConflict, code)
}

func TestServer_LeaseValidation(t *testing.T) {
	f := newAPIFixture(t)

	code, _ := f.do(t, http.MethodGet, "/external/jobs?status=processing&kind=Prof", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = f.do(t, http.MethodGet, "/external/jobs", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = f.do(t, http.MethodGet, "/external/jobs?kind=Prof&batch=zero", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	// Valid lease against an empty queue returns an empty list, not null.
	code, body := f.do(t, http.MethodGet, "/external/jobs?kind=Prof", nil)
	require.Equal(t, http.StatusOK, code)
	jobs, ok := body["jobs"].([]any)
	require.True(t, ok)
	assert.Empty(t, jobs)
}

func TestServer_PollUnknownSession(t *testing.T) {
	f := newAPIFixture(t)

	code, _ := f.do(t, http.MethodGet, "/internal/jobs/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestServer_ActiveJobs(t *testing.T) {
	f := newAPIFixture(t)
	proj := f.seedProject(t, "Prof Pipeline")
	sess := f.seedCompletedSession(t)

	code, _ := f.do(t, http.MethodPost, "/internal/jobs", models.EnqueueJobRequest{
		SessionID: sess.ID,
		ProjectID: proj.ID,
	})
	require.Equal(t, http.StatusAccepted, code)

	code, body := f.do(t, http.MethodGet, "/admin/jobs?project="+proj.ID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body["total"])

	code, body = f.do(t, http.MethodGet, "/admin/jobs?status=failed", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 0, body["total"])
}

func TestServer_Settings(t *testing.T) {
	f := newAPIFixture(t)

	code, body := f.do(t, http.MethodGet, "/admin/settings", nil)
	require.Equal(t, http.StatusOK, code)
	workers, ok := body["workers"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, workers, models.KindProf)
	assert.Contains(t, workers, models.KindBigFive)
	assert.Equal(t, false, body["pendingRestart"])

	code, body = f.do(t, http.MethodPut, "/admin/settings", map[string]models.WorkerSettings{
		models.KindProf: {Instances: 3, PollIntervalMS: 2000, MaxConcurrentJobs: 2},
	})
	require.Equal(t, http.StatusOK, code, "body: %v", body)
	// No job is active, so the staged settings take effect at the next
	// pool start without a pending flag.
	assert.Equal(t, false, body["pendingRestart"])
	workers = body["workers"].(map[string]any)
	prof := workers[models.KindProf].(map[string]any)
	assert.EqualValues(t, 3, prof["instances"])

	code, _ = f.do(t, http.MethodPut, "/admin/settings", map[string]models.WorkerSettings{
		"Mystery": {Instances: 1},
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = f.do(t, http.MethodPut, "/admin/settings", map[string]models.WorkerSettings{})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestServer_ProjectCRUD(t *testing.T) {
	f := newAPIFixture(t)

	code, body := f.do(t, http.MethodPost, "/admin/projects", models.CreateProjectRequest{
		Name:       "Scoring Canvas",
		CanvasData: json.RawMessage(`{"nodes":[],"edges":[]}`),
	})
	require.Equal(t, http.StatusCreated, code, "body: %v", body)
	projID, _ := body["id"].(string)
	require.NotEmpty(t, projID)

	code, body = f.do(t, http.MethodGet, "/admin/projects/"+projID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Scoring Canvas", body["name"])

	code, body = f.do(t, http.MethodGet, "/admin/projects", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body["total"])

	// Variables round-trip.
	code, _ = f.do(t, http.MethodPut, "/admin/projects/"+projID+"/variables/tone",
		models.VariableUpsert{Value: "formal"})
	require.Equal(t, http.StatusOK, code)

	code, body = f.do(t, http.MethodGet, "/admin/projects/"+projID+"/variables", nil)
	require.Equal(t, http.StatusOK, code)
	vars, ok := body["variables"].([]any)
	require.True(t, ok)
	assert.Len(t, vars, 1)

	code, _ = f.do(t, http.MethodDelete, "/admin/projects/"+projID+"/variables/tone", nil)
	assert.Equal(t, http.StatusNoContent, code)

	code, _ = f.do(t, http.MethodDelete, "/admin/projects/"+projID, nil)
	assert.Equal(t, http.StatusNoContent, code)

	code, _ = f.do(t, http.MethodGet, "/admin/projects/"+projID, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestServer_ProgressEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	// No artifacts for an unknown job yet — empty page, not an error.
	code, body := f.do(t, http.MethodGet, fmt.Sprintf("/admin/jobs/%s/progress", uuid.New().String()), nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 0, body["total"])

	code, _ = f.do(t, http.MethodGet, fmt.Sprintf("/admin/jobs/%s/progress?offset=-1", uuid.New().String()), nil)
	assert.Equal(t, http.StatusBadRequest, code)
}
