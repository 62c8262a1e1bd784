// Package e2e exercises the whole pipeline service in-process: the HTTP
// API over a real gin engine, the worker pool, the DAG executor with the
// stock node kinds, the provider gateway against a scripted provider, and
// webhook delivery against a recording receiver. Only PostgreSQL and the
// two fake HTTP peers sit outside the process.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/assessflow/pipeline/pkg/api"
	"github.com/assessflow/pipeline/pkg/config"
	"github.com/assessflow/pipeline/pkg/database"
	"github.com/assessflow/pipeline/pkg/executor"
	"github.com/assessflow/pipeline/pkg/gateway"
	"github.com/assessflow/pipeline/pkg/graph"
	"github.com/assessflow/pipeline/pkg/models"
	"github.com/assessflow/pipeline/pkg/services"
	"github.com/assessflow/pipeline/pkg/webhook"
	"github.com/assessflow/pipeline/pkg/worker"
	testdb "github.com/assessflow/pipeline/test/database"
)

const (
	backendSecret = "e2e-backend-secret"
	providerKey   = "e2e-provider-key"
)

// completionWire is the slice of the provider request the fake needs.
type completionWire struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// fakeProvider is a scripted chat-completion endpoint. respond receives
// the last user message and decides the HTTP status and completion text.
type fakeProvider struct {
	server *httptest.Server

	mu      sync.Mutex
	calls   int
	respond func(userMessage string) (int, string)
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()
	p := &fakeProvider{}
	p.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+providerKey {
			http.Error(w, "bad credentials", http.StatusUnauthorized)
			return
		}

		raw, _ := io.ReadAll(r.Body)
		var req completionWire
		if err := json.Unmarshal(raw, &req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		user := ""
		for _, m := range req.Messages {
			if m.Role == "user" {
				user = m.Content
			}
		}

		p.mu.Lock()
		p.calls++
		respond := p.respond
		p.mu.Unlock()

		status, content := http.StatusOK, "ok"
		if respond != nil {
			status, content = respond(user)
		}
		if status != http.StatusOK {
			http.Error(w, "upstream fault", status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		})
	}))
	t.Cleanup(p.server.Close)
	return p
}

func (p *fakeProvider) script(respond func(userMessage string) (int, string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.respond = respond
}

func (p *fakeProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// webhookRecorder stands in for the front-end's webhook receiver.
type webhookRecorder struct {
	server *httptest.Server

	mu    sync.Mutex
	hooks []models.JobWebhook
	ch    chan models.JobWebhook
}

func newWebhookRecorder(t *testing.T) *webhookRecorder {
	t.Helper()
	r := &webhookRecorder{ch: make(chan models.JobWebhook, 32)}
	r.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPatch || !strings.HasPrefix(req.URL.Path, "/external/jobs/") {
			http.NotFound(w, req)
			return
		}
		if req.Header.Get("X-Backend-Secret") != backendSecret {
			http.Error(w, "bad secret", http.StatusUnauthorized)
			return
		}
		var hook models.JobWebhook
		if err := json.NewDecoder(req.Body).Decode(&hook); err != nil {
			http.Error(w, "bad payload", http.StatusBadRequest)
			return
		}
		r.mu.Lock()
		r.hooks = append(r.hooks, hook)
		r.mu.Unlock()
		select {
		case r.ch <- hook:
		default:
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(r.server.Close)
	return r
}

// next blocks until the receiver sees another delivery.
func (r *webhookRecorder) next(t *testing.T, timeout time.Duration) models.JobWebhook {
	t.Helper()
	select {
	case hook := <-r.ch:
		return hook
	case <-time.After(timeout):
		t.Fatal("timed out waiting for webhook delivery")
		return models.JobWebhook{}
	}
}

// stack is one fully wired service instance under test.
type stack struct {
	cfg      *config.Config
	client   *database.Client
	api      *httptest.Server
	provider *fakeProvider
	webhooks *webhookRecorder
	gw       *gateway.Gateway

	jobs     *services.JobService
	events   *services.EventService
	settings *services.SettingsService
	pool     *worker.Pool
}

// newStack assembles the service the way cmd/pipelined does, minus the
// NOTIFY listener (WebSocket streaming has its own integration tests).
// tweak runs after the defaults are set and before anything is built.
func newStack(t *testing.T, tweak func(cfg *config.Config)) *stack {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := testdb.NewTestClient(t)
	provider := newFakeProvider(t)
	webhooks := newWebhookRecorder(t)

	t.Setenv("PROVIDER_API_KEY", providerKey)
	t.Setenv("BACKEND_SECRET", backendSecret)

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
	cfg.Provider.BaseURL = provider.server.URL
	cfg.Provider.DefaultModel = "test-model"
	cfg.Webhook.Endpoint = webhooks.server.URL
	cfg.Webhook.BackoffMS = 10
	cfg.Webhook.BackoffCapMS = 50
	if tweak != nil {
		tweak(cfg)
	}

	sender := webhook.NewSender(cfg.Webhook)
	jobs := services.NewJobService(client.Client, cfg, nil, sender)
	sessions := services.NewSessionService(client.Client)
	projects := services.NewProjectService(client.Client)
	batches := services.NewBatchService(client.Client, jobs)
	settings := services.NewSettingsService(client.Client, jobs)
	eventSvc := services.NewEventService(client.Client)

	gw := gateway.New(cfg.Provider, cfg.Breaker, cfg.IAM)
	registry := graph.NewRegistry()
	graph.RegisterBuiltins(registry, gw)
	exec := executor.New(cfg, client.Client, registry, nil)
	pool := worker.NewPool("e2e-pod", client.Client, cfg, jobs, settings, exec)

	srv := api.NewServer(cfg, client, backendSecret,
		jobs, sessions, projects, batches, settings, nil)
	srv.SetWorkerPool(pool)
	srv.SetBreaker(gw)
	ts := httptest.NewServer(srv.Engine())
	t.Cleanup(ts.Close)

	return &stack{
		cfg:      cfg,
		client:   client,
		api:      ts,
		provider: provider,
		webhooks: webhooks,
		gw:       gw,
		jobs:     jobs,
		events:   eventSvc,
		settings: settings,
		pool:     pool,
	}
}

// startWorkers stages fast-poll settings for both kinds and brings the
// pool up.
func (s *stack) startWorkers(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	fast := models.WorkerSettings{Instances: 1, PollIntervalMS: 25, MaxConcurrentJobs: 2}
	require.NoError(t, s.settings.PutWorkerSettings(ctx, models.KindProf, fast))
	require.NoError(t, s.settings.PutWorkerSettings(ctx, models.KindBigFive, fast))
	require.NoError(t, s.pool.Start(ctx))
	t.Cleanup(s.pool.Stop)
}

// do issues a JSON request with the backend secret and decodes the body
// into a generic map.
func (s *stack) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.api.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Backend-Secret", backendSecret)

	resp, err := s.api.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	decoded := map[string]any{}
	if resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&decoded)
	}
	return resp.StatusCode, decoded
}

// createProject registers a project whose canvas holds the given graph.
func (s *stack) createProject(t *testing.T, name string, nodes []graph.Node, edges []graph.Edge) string {
	t.Helper()
	canvas, err := json.Marshal(&graph.Canvas{Nodes: nodes, Edges: edges})
	require.NoError(t, err)

	code, body := s.do(t, http.MethodPost, "/admin/projects", models.CreateProjectRequest{
		Name:       name,
		CanvasData: canvas,
	})
	require.Equal(t, http.StatusCreated, code, "body: %v", body)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

// createCompletedSession drives a session through the front-end surface:
// create, answer one question, seal.
func (s *stack) createCompletedSession(t *testing.T) string {
	t.Helper()
	id := uuid.New().String()

	code, body := s.do(t, http.MethodPost, "/internal/sessions", models.CreateSessionRequest{
		SessionID:      id,
		Mode:           models.SessionModeProf,
		TotalQuestions: 1,
	})
	require.Equal(t, http.StatusCreated, code, "body: %v", body)

	code, body = s.do(t, http.MethodPost, "/internal/sessions/"+id+"/responses", models.RecordResponseRequest{
		QuestionID:   1,
		QuestionText: "Describe a recent challenge.",
		Answer:       "I untangled a deadlock between two teams.",
	})
	require.Equal(t, http.StatusCreated, code, "body: %v", body)

	code, body = s.do(t, http.MethodPost, "/internal/sessions/"+id+"/complete", nil)
	require.Equal(t, http.StatusOK, code, "body: %v", body)
	return id
}

// enqueue submits a job for a completed session and returns the job id.
func (s *stack) enqueue(t *testing.T, sessionID, projectID string, vars map[string]string) string {
	t.Helper()
	code, body := s.do(t, http.MethodPost, "/internal/jobs", models.EnqueueJobRequest{
		SessionID:        sessionID,
		ProjectID:        projectID,
		InitialVariables: vars,
	})
	require.Equal(t, http.StatusAccepted, code, "body: %v", body)
	jobID, _ := body["jobId"].(string)
	require.NotEmpty(t, jobID)
	return jobID
}

// pollUntil polls the front-end job endpoint until the wanted status shows
// up, returning the final body.
func (s *stack) pollUntil(t *testing.T, sessionID, wantStatus string, timeout time.Duration) map[string]any {
	t.Helper()
	deadline := time.Now().Add(timeout)
	var last map[string]any
	for time.Now().Before(deadline) {
		code, body := s.do(t, http.MethodGet, "/internal/jobs/"+sessionID, nil)
		require.Equal(t, http.StatusOK, code)
		last = body
		if body["status"] == wantStatus {
			return body
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("session %s never reached job status %s (last: %v)", sessionID, wantStatus, last)
	return nil
}

// decodeJSON drains a response body into v.
func decodeJSON(resp *http.Response, v any) error {
	return json.NewDecoder(resp.Body).Decode(v)
}

// node builds a canvas node with the kind's data payload.
func node(id, kind string, data map[string]any) graph.Node {
	raw, err := json.Marshal(data)
	if err != nil {
		panic(fmt.Sprintf("marshal node data: %v", err))
	}
	return graph.Node{ID: id, Type: kind, Data: raw}
}

func edge(source, target string) graph.Edge {
	return graph.Edge{Source: source, Target: target}
}

// profGraph is the canonical three-report pipeline used across scenarios:
// one prompt fans out into the three deliverables.
func profGraph() ([]graph.Node, []graph.Edge) {
	nodes := []graph.Node{
		node("analysis", "prompt", map[string]any{
			"label":          "Trait analysis",
			"prompt":         "Analyze the answers: {{input_text}}",
			"outputVariable": "analysis",
		}),
		node("adapted", "report", map[string]any{
			"label":      "Adapted report",
			"reportName": models.ReportNameAdapted,
			"source":     "{{analysis}}",
		}),
		node("professional", "report", map[string]any{
			"label":      "Professional report",
			"reportName": models.ReportNameProfessional,
			"source":     "Professional view: {{analysis}}",
		}),
		node("scores", "report", map[string]any{
			"label":      "Score profile",
			"reportName": models.ReportNameScoreProfile,
			"source":     "| trait | score |\n{{analysis}}",
		}),
	}
	edges := []graph.Edge{
		edge("analysis", "adapted"),
		edge("analysis", "professional"),
		edge("analysis", "scores"),
	}
	return nodes, edges
}

// guardedGraph is a pipeline whose assert node turns a failed prompt into
// a failed run.
func guardedGraph() ([]graph.Node, []graph.Edge) {
	nodes := []graph.Node{
		node("analysis", "prompt", map[string]any{
			"label":          "Trait analysis",
			"prompt":         "Analyze the answers: {{input_text}}",
			"outputVariable": "analysis",
		}),
		node("check", "assert", map[string]any{
			"label":   "Analysis present",
			"value":   "{{analysis}}",
			"message": "analysis is empty",
		}),
		node("adapted", "report", map[string]any{
			"label":      "Adapted report",
			"reportName": models.ReportNameAdapted,
			"source":     "{{analysis}}",
		}),
	}
	edges := []graph.Edge{
		edge("analysis", "check"),
		edge("check", "adapted"),
	}
	return nodes, edges
}
