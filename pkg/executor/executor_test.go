package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/assessflow/pipeline/ent"
	"github.com/assessflow/pipeline/ent/executioninstance"
	"github.com/assessflow/pipeline/ent/executionlog"
	"github.com/assessflow/pipeline/pkg/config"
	"github.com/assessflow/pipeline/pkg/events"
	"github.com/assessflow/pipeline/pkg/graph"
	"github.com/assessflow/pipeline/pkg/models"
	testdb "github.com/assessflow/pipeline/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKind is a scriptable node kind for scheduler tests.
type fakeKind struct {
	kind string
	stop bool
	eval func(ctx context.Context, ec *graph.EvalContext) (*graph.EvalOutput, error)
}

func (f *fakeKind) Kind() string      { return f.kind }
func (f *fakeKind) StopOnError() bool { return f.stop }

func (f *fakeKind) Evaluate(ctx context.Context, ec *graph.EvalContext) (*graph.EvalOutput, error) {
	if f.eval == nil {
		return &graph.EvalOutput{Value: ec.Node.ID}, nil
	}
	return f.eval(ctx, ec)
}

func testConfig(t *testing.T, parallelism int) *config.Config {
	t.Helper()
	return &config.Config{
		Executor: &config.ExecutorConfig{Parallelism: parallelism},
		Progress: &config.ProgressConfig{LogDir: t.TempDir()},
	}
}

// createProject persists a project whose canvas is built from the given
// nodes and edges.
func createProject(t *testing.T, client *ent.Client, name string, nodes []graph.Node, edges []graph.Edge) string {
	t.Helper()
	canvas := graph.Canvas{Nodes: nodes, Edges: edges}
	raw, err := json.Marshal(&canvas)
	require.NoError(t, err)

	id := uuid.New().String()
	_, err = client.Project.Create().
		SetID(id).
		SetName(name).
		SetCanvasData(raw).
		Save(context.Background())
	require.NoError(t, err)
	return id
}

func canvasNode(id, kind, label string) graph.Node {
	return graph.Node{ID: id, Type: kind, Data: json.RawMessage(fmt.Sprintf(`{"label":%q}`, label))}
}

func TestExecutor_Run_Diamond(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	registry := graph.NewRegistry()
	registry.Register(&fakeKind{kind: "seed", eval: func(_ context.Context, ec *graph.EvalContext) (*graph.EvalOutput, error) {
		return &graph.EvalOutput{Value: "base", EnvWrites: map[string]string{"seeded": "yes"}}, nil
	}})
	var dInputs map[string]models.NodeResult
	var dVars map[string]string
	registry.Register(&fakeKind{kind: "join", eval: func(_ context.Context, ec *graph.EvalContext) (*graph.EvalOutput, error) {
		dInputs = ec.Inputs
		dVars = ec.Variables
		return &graph.EvalOutput{Text: "joined"}, nil
	}})
	registry.Register(&fakeKind{kind: "work"})

	exec := New(testConfig(t, 4), client.Client, registry, nil)

	projectID := createProject(t, client.Client, "Diamond Project",
		[]graph.Node{
			canvasNode("a", "seed", "Seed"),
			canvasNode("b", "work", "Left"),
			canvasNode("c", "work", "Right"),
			canvasNode("d", "join", "Join"),
		},
		[]graph.Edge{
			{Source: "a", Target: "b"},
			{Source: "a", Target: "c"},
			{Source: "b", Target: "d"},
			{Source: "c", Target: "d"},
		})

	jobID := uuid.New().String()
	summary, err := exec.Run(ctx, RunRequest{
		ProjectID:        projectID,
		JobID:            jobID,
		InitialVariables: map[string]models.Variable{"input": {Value: "text"}},
		ClearResults:     true,
	})
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, 4, summary.Executed)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 0, summary.Skipped)
	assert.Len(t, summary.Results, 4)
	assert.Equal(t, "yes", summary.Variables["seeded"])
	assert.Equal(t, "text", summary.Variables["input"])

	// The join saw exactly its predecessors, with env writes visible.
	require.NotNil(t, dInputs)
	assert.Len(t, dInputs, 2)
	assert.Contains(t, dInputs, "b")
	assert.Contains(t, dInputs, "c")
	assert.Equal(t, "yes", dVars["seeded"])

	// Instance finalized with the authoritative counters.
	inst, err := client.ExecutionInstance.Get(ctx, summary.ExecutionInstanceID)
	require.NoError(t, err)
	assert.Equal(t, executioninstance.StatusCompleted, inst.Status)
	assert.Equal(t, 4, inst.TotalNodes)
	assert.Equal(t, 4, inst.ExecutedNodes)
	assert.Equal(t, 0, inst.FailedNodes)
	assert.Equal(t, 0, inst.SkippedNodes)
	require.NotNil(t, inst.JobID)
	assert.Equal(t, jobID, *inst.JobID)
	assert.Len(t, inst.ExecutionResults, 4)
	assert.Equal(t, "text", inst.GlobalVariablesSnapshot["input"].Value)
	require.NotNil(t, inst.CompletedAt)
	assert.True(t, inst.CompletedAt.After(inst.StartedAt) || inst.CompletedAt.Equal(inst.StartedAt))

	// One log row per terminated node.
	count, err := client.ExecutionLog.Query().
		Where(executionlog.ExecutionIDEQ(summary.ExecutionInstanceID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestExecutor_Run_StopOnErrorHalts(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	registry := graph.NewRegistry()
	registry.Register(&fakeKind{kind: "work"})
	registry.Register(&fakeKind{kind: "gate", stop: true, eval: func(_ context.Context, _ *graph.EvalContext) (*graph.EvalOutput, error) {
		return nil, fmt.Errorf("gate rejected the value")
	}})

	exec := New(testConfig(t, 1), client.Client, registry, nil)

	projectID := createProject(t, client.Client, "Halting",
		[]graph.Node{
			canvasNode("a", "work", "A"),
			canvasNode("b", "gate", "Gate"),
			canvasNode("c", "work", "C"),
		},
		[]graph.Edge{
			{Source: "a", Target: "b"},
			{Source: "b", Target: "c"},
		})

	summary, err := exec.Run(ctx, RunRequest{ProjectID: projectID, ClearResults: true})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCanceled)
	assert.Contains(t, err.Error(), "gate rejected")
	require.NotNil(t, summary)

	assert.Equal(t, 1, summary.Executed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Skipped)

	inst, getErr := client.ExecutionInstance.Get(ctx, summary.ExecutionInstanceID)
	require.NoError(t, getErr)
	assert.Equal(t, executioninstance.StatusFailed, inst.Status)
	assert.Equal(t, 1, inst.SkippedNodes)

	// Log rows exist only for terminated nodes.
	count, countErr := client.ExecutionLog.Query().
		Where(executionlog.ExecutionIDEQ(summary.ExecutionInstanceID)).
		Count(ctx)
	require.NoError(t, countErr)
	assert.Equal(t, 2, count)
}

func TestExecutor_Run_ContinueOnError(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	registry := graph.NewRegistry()
	registry.Register(&fakeKind{kind: "work"})
	registry.Register(&fakeKind{kind: "flaky", eval: func(_ context.Context, _ *graph.EvalContext) (*graph.EvalOutput, error) {
		return nil, fmt.Errorf("provider exploded")
	}})

	exec := New(testConfig(t, 2), client.Client, registry, nil)

	projectID := createProject(t, client.Client, "Tolerant",
		[]graph.Node{
			canvasNode("a", "flaky", "Flaky"),
			canvasNode("b", "work", "Solid"),
		},
		nil)

	summary, err := exec.Run(ctx, RunRequest{ProjectID: projectID, ClearResults: true})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Executed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 0, summary.Skipped)
	assert.False(t, summary.Results["a"].Success)
	assert.Contains(t, summary.Results["a"].Error, "provider exploded")

	inst, err := client.ExecutionInstance.Get(ctx, summary.ExecutionInstanceID)
	require.NoError(t, err)
	assert.Equal(t, executioninstance.StatusCompleted, inst.Status)
	assert.Equal(t, 1, inst.FailedNodes)
}

func TestExecutor_Run_CooperativeStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	stop := make(chan struct{})
	registry := graph.NewRegistry()
	// The first node "receives SIGTERM" mid-evaluation: it finishes
	// normally, and nothing after it may dispatch.
	registry.Register(&fakeKind{kind: "first", eval: func(_ context.Context, _ *graph.EvalContext) (*graph.EvalOutput, error) {
		close(stop)
		return &graph.EvalOutput{Value: "done"}, nil
	}})
	registry.Register(&fakeKind{kind: "work"})

	exec := New(testConfig(t, 1), client.Client, registry, nil)

	projectID := createProject(t, client.Client, "Stopped",
		[]graph.Node{
			canvasNode("a", "first", "First"),
			canvasNode("b", "work", "Second"),
			canvasNode("c", "work", "Third"),
		},
		[]graph.Edge{
			{Source: "a", Target: "b"},
			{Source: "b", Target: "c"},
		})

	summary, err := exec.Run(ctx, RunRequest{ProjectID: projectID, ClearResults: true, Stop: stop})
	require.ErrorIs(t, err, ErrCanceled)
	require.NotNil(t, summary)

	// The in-flight node finished; the rest never started.
	assert.Equal(t, 1, summary.Executed)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 2, summary.Skipped)
	assert.True(t, summary.Results["a"].Success)

	inst, getErr := client.ExecutionInstance.Get(ctx, summary.ExecutionInstanceID)
	require.NoError(t, getErr)
	assert.Equal(t, executioninstance.StatusFailed, inst.Status)
}

func TestExecutor_Run_ParallelismBudget(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	var inFlight, maxInFlight atomic.Int32
	registry := graph.NewRegistry()
	registry.Register(&fakeKind{kind: "slow", eval: func(_ context.Context, _ *graph.EvalContext) (*graph.EvalOutput, error) {
		n := inFlight.Add(1)
		for {
			prev := maxInFlight.Load()
			if n <= prev || maxInFlight.CompareAndSwap(prev, n) {
				break
			}
		}
		time.Sleep(50 * time.Millisecond)
		inFlight.Add(-1)
		return &graph.EvalOutput{}, nil
	}})

	// Project setting overrides the config default of 4.
	canvas := graph.Canvas{
		Nodes: []graph.Node{
			canvasNode("n1", "slow", "N1"),
			canvasNode("n2", "slow", "N2"),
			canvasNode("n3", "slow", "N3"),
			canvasNode("n4", "slow", "N4"),
			canvasNode("n5", "slow", "N5"),
			canvasNode("n6", "slow", "N6"),
		},
		Settings: &graph.Settings{Parallelism: 2},
	}
	raw, err := json.Marshal(&canvas)
	require.NoError(t, err)
	projectID := uuid.New().String()
	_, err = client.Project.Create().
		SetID(projectID).
		SetName("Bounded").
		SetCanvasData(raw).
		Save(ctx)
	require.NoError(t, err)

	exec := New(testConfig(t, 4), client.Client, registry, nil)
	summary, err := exec.Run(ctx, RunRequest{ProjectID: projectID, ClearResults: true})
	require.NoError(t, err)

	assert.Equal(t, 6, summary.Executed)
	assert.LessOrEqual(t, maxInFlight.Load(), int32(2))
	assert.Equal(t, int32(2), maxInFlight.Load(), "budget should actually be used")
}

func TestExecutor_Run_DispatchOrderDeterministic(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	var mu sync.Mutex
	var order []string
	registry := graph.NewRegistry()
	registry.Register(&fakeKind{kind: "track", eval: func(_ context.Context, ec *graph.EvalContext) (*graph.EvalOutput, error) {
		mu.Lock()
		order = append(order, ec.Node.ID)
		mu.Unlock()
		return &graph.EvalOutput{}, nil
	}})

	exec := New(testConfig(t, 1), client.Client, registry, nil)

	// Same depth resolves by canvas insertion order: c is listed before b.
	projectID := createProject(t, client.Client, "Ordered",
		[]graph.Node{
			canvasNode("a", "track", "A"),
			canvasNode("c", "track", "C"),
			canvasNode("b", "track", "B"),
			canvasNode("d", "track", "D"),
		},
		[]graph.Edge{
			{Source: "a", Target: "b"},
			{Source: "a", Target: "c"},
			{Source: "b", Target: "d"},
			{Source: "c", Target: "d"},
		})

	_, err := exec.Run(ctx, RunRequest{ProjectID: projectID, ClearResults: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b", "d"}, order)
}

func TestExecutor_Run_SeedsFromPriorRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	var seen map[string]string
	registry := graph.NewRegistry()
	registry.Register(&fakeKind{kind: "peek", eval: func(_ context.Context, ec *graph.EvalContext) (*graph.EvalOutput, error) {
		seen = ec.Variables
		return &graph.EvalOutput{}, nil
	}})

	exec := New(testConfig(t, 1), client.Client, registry, nil)
	projectID := createProject(t, client.Client, "Seeded",
		[]graph.Node{canvasNode("n", "peek", "Peek")}, nil)

	// A prior completed run published carry="from-last-run".
	_, err := client.ExecutionInstance.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetStatus(executioninstance.StatusCompleted).
		SetTotalNodes(1).
		SetExecutedNodes(1).
		SetStartedAt(time.Now().Add(-time.Hour)).
		SetGlobalVariablesSnapshot(map[string]models.Variable{}).
		SetExecutionResults(map[string]models.NodeResult{
			"n": {Success: true, EnvWrites: map[string]string{"carry": "from-last-run", "beaten": "old"}},
		}).
		Save(ctx)
	require.NoError(t, err)

	t.Run("clear results ignores prior writes", func(t *testing.T) {
		_, err := exec.Run(ctx, RunRequest{ProjectID: projectID, ClearResults: true})
		require.NoError(t, err)
		assert.NotContains(t, seen, "carry")
	})

	t.Run("keep results seeds prior writes under initials", func(t *testing.T) {
		_, err := exec.Run(ctx, RunRequest{
			ProjectID:        projectID,
			ClearResults:     false,
			InitialVariables: map[string]models.Variable{"beaten": {Value: "new"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "from-last-run", seen["carry"])
		assert.Equal(t, "new", seen["beaten"], "initial variables win over seeds")
	})
}

func TestExecutor_Run_InvalidGraph(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	exec := New(testConfig(t, 1), client.Client, graph.NewRegistry(), nil)
	projectID := createProject(t, client.Client, "Cyclic",
		[]graph.Node{
			canvasNode("a", "work", "A"),
			canvasNode("b", "work", "B"),
		},
		[]graph.Edge{
			{Source: "a", Target: "b"},
			{Source: "b", Target: "a"},
		})

	summary, err := exec.Run(ctx, RunRequest{ProjectID: projectID, ClearResults: true})
	require.Error(t, err)
	assert.Nil(t, summary)

	var cycleErr *graph.CycleError
	assert.ErrorAs(t, err, &cycleErr)

	// No instance row for a run that never started.
	count, err := client.ExecutionInstance.Query().
		Where(executioninstance.ProjectIDEQ(projectID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestExecutor_Run_UnknownKindFailsNode(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	registry := graph.NewRegistry()
	registry.Register(&fakeKind{kind: "work"})

	exec := New(testConfig(t, 1), client.Client, registry, nil)
	projectID := createProject(t, client.Client, "Unknown",
		[]graph.Node{
			canvasNode("a", "alien", "Alien"),
			canvasNode("b", "work", "B"),
		},
		nil)

	summary, err := exec.Run(ctx, RunRequest{ProjectID: projectID, ClearResults: true})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Executed)
	assert.Contains(t, summary.Results["a"].Error, "no evaluator registered")
}

func TestExecutor_Run_MissingProject(t *testing.T) {
	client := testdb.NewTestClient(t)
	exec := New(testConfig(t, 1), client.Client, graph.NewRegistry(), nil)

	summary, err := exec.Run(context.Background(), RunRequest{ProjectID: uuid.New().String(), ClearResults: true})
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.True(t, ent.IsNotFound(err))
}

func TestExecutor_Run_GlobalsAndInitialsMerge(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	var seen map[string]string
	registry := graph.NewRegistry()
	registry.Register(&fakeKind{kind: "peek", eval: func(_ context.Context, ec *graph.EvalContext) (*graph.EvalOutput, error) {
		seen = ec.Variables
		return &graph.EvalOutput{}, nil
	}})

	exec := New(testConfig(t, 1), client.Client, registry, nil)
	projectID := createProject(t, client.Client, "Merged",
		[]graph.Node{canvasNode("n", "peek", "Peek")}, nil)

	_, err := client.GlobalVariable.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetName("tone").
		SetValue("formal").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.GlobalVariable.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetName("language").
		SetValue("en").
		Save(ctx)
	require.NoError(t, err)

	summary, err := exec.Run(ctx, RunRequest{
		ProjectID:        projectID,
		ClearResults:     true,
		InitialVariables: map[string]models.Variable{"tone": {Value: "casual"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "casual", seen["tone"], "initial variables override globals")
	assert.Equal(t, "en", seen["language"])

	// The frozen snapshot carries the merged view.
	inst, err := client.ExecutionInstance.Get(ctx, summary.ExecutionInstanceID)
	require.NoError(t, err)
	assert.Equal(t, "casual", inst.GlobalVariablesSnapshot["tone"].Value)
	assert.Equal(t, "en", inst.GlobalVariablesSnapshot["language"].Value)
}

// recordingPublisher captures events for assertions.
type recordingPublisher struct {
	mu           sync.Mutex
	nodeStatuses []events.NodeStatusPayload
	progresses   []events.JobProgressPayload
}

func (p *recordingPublisher) PublishJobProgress(_ context.Context, _ string, payload events.JobProgressPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.progresses = append(p.progresses, payload)
	return nil
}

func (p *recordingPublisher) PublishNodeStatus(_ context.Context, _ string, payload events.NodeStatusPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nodeStatuses = append(p.nodeStatuses, payload)
	return nil
}

func TestExecutor_Run_PublishesEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	registry := graph.NewRegistry()
	registry.Register(&fakeKind{kind: "work"})
	registry.Register(&fakeKind{kind: "flaky", eval: func(_ context.Context, _ *graph.EvalContext) (*graph.EvalOutput, error) {
		return nil, fmt.Errorf("boom")
	}})

	pub := &recordingPublisher{}
	exec := New(testConfig(t, 1), client.Client, registry, pub)

	projectID := createProject(t, client.Client, "Streamed",
		[]graph.Node{
			canvasNode("a", "work", "Alpha"),
			canvasNode("b", "flaky", "Beta"),
		},
		[]graph.Edge{{Source: "a", Target: "b"}})

	jobID := uuid.New().String()
	summary, err := exec.Run(ctx, RunRequest{ProjectID: projectID, JobID: jobID, ClearResults: true})
	require.NoError(t, err)

	require.Len(t, pub.nodeStatuses, 2)
	assert.Equal(t, "a", pub.nodeStatuses[0].NodeID)
	assert.Equal(t, "Alpha", pub.nodeStatuses[0].NodeLabel)
	assert.Equal(t, events.NodeStatusCompleted, pub.nodeStatuses[0].Status)
	assert.Equal(t, events.NodeStatusFailed, pub.nodeStatuses[1].Status)
	assert.Equal(t, "boom", pub.nodeStatuses[1].Error)
	assert.Equal(t, summary.ExecutionInstanceID, pub.nodeStatuses[0].ExecutionInstanceID)

	require.Len(t, pub.progresses, 2)
	assert.Equal(t, 2, pub.progresses[0].TotalNodes)
	assert.Equal(t, 50, pub.progresses[0].Percentage)
	assert.Equal(t, 100, pub.progresses[1].Percentage)
	assert.Equal(t, 1, pub.progresses[1].FailedNodes)
}

func TestExecutor_Run_NoEventsWithoutJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	registry := graph.NewRegistry()
	registry.Register(&fakeKind{kind: "work"})

	pub := &recordingPublisher{}
	exec := New(testConfig(t, 1), client.Client, registry, pub)
	projectID := createProject(t, client.Client, "Adhoc",
		[]graph.Node{canvasNode("a", "work", "A")}, nil)

	_, err := exec.Run(ctx, RunRequest{ProjectID: projectID, ClearResults: true})
	require.NoError(t, err)
	assert.Empty(t, pub.nodeStatuses)
	assert.Empty(t, pub.progresses)
}

func TestExecutor_Run_WritesArtifacts(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	registry := graph.NewRegistry()
	registry.Register(&fakeKind{kind: "work"})
	registry.Register(&fakeKind{kind: "flaky", eval: func(_ context.Context, _ *graph.EvalContext) (*graph.EvalOutput, error) {
		return nil, fmt.Errorf("bad input")
	}})

	cfg := testConfig(t, 1)
	exec := New(cfg, client.Client, registry, nil)

	projectID := createProject(t, client.Client, "My Report Run",
		[]graph.Node{
			canvasNode("a", "work", "First Step"),
			canvasNode("b", "flaky", "Second Step"),
		},
		[]graph.Edge{{Source: "a", Target: "b"}})

	jobID := uuid.New().String()
	summary, err := exec.Run(ctx, RunRequest{ProjectID: projectID, JobID: jobID, ClearResults: true})
	require.NoError(t, err)

	// Progress log: one line per terminated node, offset-readable.
	page, err := ReadProgress(cfg.Progress.LogDir, jobID, 0)
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)
	assert.Contains(t, page.Lines[0], "✅ COMPLETED")
	assert.Contains(t, page.Lines[0], "First Step (a)")
	assert.Contains(t, page.Lines[0], "Progress: 1/2 (50%)")
	assert.Contains(t, page.Lines[1], "❌ FAILED")
	assert.Contains(t, page.Lines[1], "bad input")

	// Structured dump sits next to it and carries the same stats.
	pattern := filepath.Join(cfg.Progress.LogDir, "*_"+jobID+"_*.json")
	matches, err := filepath.Glob(pattern)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	raw, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	var dump map[string]any
	require.NoError(t, json.Unmarshal(raw, &dump))

	stats, ok := dump["stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), stats["totalNodes"])
	assert.Equal(t, float64(1), stats["executedNodes"])
	assert.Equal(t, float64(1), stats["failedNodes"])

	metadata, ok := dump["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, jobID, metadata["jobId"])
	assert.Equal(t, summary.ExecutionInstanceID, metadata["executionInstanceId"])

	logs, ok := dump["nodeLogs"].([]any)
	require.True(t, ok)
	assert.Len(t, logs, 2)
}
