// Package executor runs one project DAG against a variable environment:
// wave scheduling under a parallelism budget, per-node execution logs, a
// live progress stream, and an ExecutionInstance row bracketing the run.
package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/assessflow/pipeline/ent"
	"github.com/assessflow/pipeline/ent/executioninstance"
	"github.com/assessflow/pipeline/ent/project"
	"github.com/assessflow/pipeline/pkg/config"
	"github.com/assessflow/pipeline/pkg/events"
	"github.com/assessflow/pipeline/pkg/graph"
	"github.com/assessflow/pipeline/pkg/models"
	"github.com/google/uuid"
)

// ErrCanceled is returned when a run was stopped cooperatively before all
// nodes dispatched. The caller decides whether the job goes back to the
// queue (worker shutdown) or stays failed.
var ErrCanceled = errors.New("run canceled")

// EventPublisher is the slice of the event system the executor needs.
// A nil publisher disables streaming.
type EventPublisher interface {
	PublishJobProgress(ctx context.Context, jobID string, payload events.JobProgressPayload) error
	PublishNodeStatus(ctx context.Context, jobID string, payload events.NodeStatusPayload) error
}

// RunRequest describes one execution of a project.
type RunRequest struct {
	ProjectID string

	// JobID and SessionID tag the ExecutionInstance and route events;
	// both may be empty for ad-hoc runs.
	JobID     string
	SessionID string

	// InitialVariables overlay the project globals (initial wins).
	InitialVariables map[string]models.Variable

	// ClearResults starts from a clean derived environment. When false,
	// env writes from the project's most recent completed run seed the
	// environment underneath the initial variables.
	ClearResults bool

	// Stop requests a cooperative halt: no further nodes dispatch,
	// in-flight evaluations finish, the run finalizes failed and Run
	// returns ErrCanceled. Nil means no cooperative stop.
	Stop <-chan struct{}
}

// Executor evaluates project graphs. One Executor serves all workers of a
// process; every Run is independent.
type Executor struct {
	cfg       *config.Config
	client    *ent.Client
	registry  *graph.Registry
	publisher EventPublisher
}

// New creates an executor. publisher may be nil (streaming disabled).
func New(cfg *config.Config, client *ent.Client, registry *graph.Registry, publisher EventPublisher) *Executor {
	return &Executor{
		cfg:       cfg,
		client:    client,
		registry:  registry,
		publisher: publisher,
	}
}

// nodeOutcome is the completion record one evaluation goroutine reports
// back to the scheduling loop.
type nodeOutcome struct {
	nodeID     string
	result     models.NodeResult
	stop       bool
	unresolved int
	input      map[string]interface{}
}

// Run executes the project and returns its summary. A nil error means the
// instance finalized completed (failed continue-on-error nodes included);
// ErrCanceled means a cooperative stop; any other error means the run
// failed (the summary is still returned when an instance was created).
func (e *Executor) Run(ctx context.Context, req RunRequest) (*models.ExecutionSummary, error) {
	logger := slog.With(
		"project_id", req.ProjectID,
		"job_id", req.JobID,
	)

	// 1. Load the project with its globals and build the graph. Failures
	// here happen before any instance exists and are never retried.
	proj, err := e.client.Project.Query().
		Where(project.IDEQ(req.ProjectID)).
		WithGlobalVariables().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("load project %s: %w", req.ProjectID, err)
	}

	canvas, err := graph.ParseCanvas(proj.CanvasData)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", req.ProjectID, err)
	}
	g, err := graph.Build(canvas)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", req.ProjectID, err)
	}

	parallelism := e.cfg.Executor.Parallelism
	if canvas.Settings != nil && canvas.Settings.Parallelism > 0 {
		parallelism = canvas.Settings.Parallelism
	}
	if parallelism < 1 {
		parallelism = 1
	}

	// 2. Freeze the variable snapshot: globals, optional prior-run writes,
	// then the job's initial variables on top.
	base := make(map[string]models.Variable, len(proj.Edges.GlobalVariables))
	for _, gv := range proj.Edges.GlobalVariables {
		v := models.Variable{Value: gv.Value}
		if gv.Description != nil {
			v.Description = *gv.Description
		}
		if gv.Folder != nil {
			v.Folder = *gv.Folder
		}
		base[gv.Name] = v
	}
	if !req.ClearResults {
		e.seedFromLastRun(ctx, req.ProjectID, base)
	}
	snapshot := models.MergeVariables(base, req.InitialVariables)

	derived := make(map[string]string, len(snapshot))
	for name, v := range snapshot {
		derived[name] = v.Value
	}

	// 3. Create the instance before any node dispatches.
	instanceID := uuid.New().String()
	startedAt := time.Now()
	if err := e.createInstance(ctx, instanceID, req, g.Len(), startedAt, snapshot); err != nil {
		return nil, err
	}

	artifacts, err := newRunArtifacts(e.cfg.Progress.LogDir, proj.Name, req.JobID, instanceID, startedAt)
	if err != nil {
		// Progress files are observability, not correctness.
		logger.Warn("Progress log unavailable for run", "error", err)
	}

	logger.Info("Execution starting",
		"execution_id", instanceID,
		"total_nodes", g.Len(),
		"parallelism", parallelism,
		"initial_variables", len(req.InitialVariables),
	)

	// 4. Schedule.
	st := &runState{
		g:        g,
		budget:   parallelism,
		snapshot: snapshot,
		derived:  derived,
		results:  make(map[string]models.NodeResult, g.Len()),
		pending:  make(map[string]int, g.Len()),
	}
	for _, n := range g.Nodes() {
		st.pending[n.ID] = g.Indegree(n.ID)
		if st.pending[n.ID] == 0 {
			st.enqueueReady(n.ID)
		}
	}

	appender := newLogAppender(e.client, instanceID)
	outcomes := make(chan nodeOutcome, g.Len())
	canceled := false

	for {
		for !st.halted && st.inflight < st.budget && len(st.ready) > 0 {
			if stopRequested(ctx, req.Stop) {
				st.halted = true
				canceled = true
				break
			}
			id := st.ready[0]
			st.ready = st.ready[1:]
			st.inflight++
			st.currentNodeID = id
			e.dispatchNode(ctx, st, id, outcomes)
		}
		// Budget ≥ 1, so an empty in-flight set here means the ready
		// list is drained or the run halted.
		if st.inflight == 0 {
			break
		}

		out := <-outcomes
		st.inflight--
		e.recordOutcome(ctx, st, out, appender, artifacts, req.JobID, instanceID)
		if out.stop {
			st.halted = true
		}
		if !canceled && stopRequested(ctx, req.Stop) {
			st.halted = true
			canceled = true
		}
	}

	// 5. Finalize: all log appends acknowledged first.
	appender.wait()

	skipped := g.Len() - st.executed - st.failed
	completedAt := time.Now()
	durationMS := completedAt.Sub(startedAt).Milliseconds()

	status := executioninstance.StatusCompleted
	var runErr error
	switch {
	case canceled:
		status = executioninstance.StatusFailed
		runErr = ErrCanceled
	case st.halted:
		status = executioninstance.StatusFailed
		runErr = fmt.Errorf("run halted: %s", st.haltReason)
	}

	e.finalizeInstance(instanceID, status, st, skipped, completedAt, durationMS)

	summary := &models.ExecutionSummary{
		ExecutionInstanceID: instanceID,
		Executed:            st.executed,
		Failed:              st.failed,
		Skipped:             skipped,
		DurationMS:          durationMS,
		Results:             st.results,
		Variables:           st.derived,
	}

	if artifacts != nil {
		artifacts.close()
		if err := e.writeDump(artifacts, proj, req, instanceID, string(status), startedAt, completedAt, st, summary); err != nil {
			logger.Warn("Failed to write run dump", "execution_id", instanceID, "error", err)
		}
	}

	logger.Info("Execution finished",
		"execution_id", instanceID,
		"status", status,
		"executed", st.executed,
		"failed", st.failed,
		"skipped", skipped,
		"unresolved_variables", st.unresolved,
		"duration_ms", durationMS,
	)

	return summary, runErr
}

// runState is the scheduler's single-goroutine view of one run. Evaluation
// goroutines only ever touch their own EvalContext and the outcomes
// channel; everything here is mutated by the loop alone.
type runState struct {
	g      *graph.Graph
	budget int

	snapshot map[string]models.Variable
	derived  map[string]string
	results  map[string]models.NodeResult

	pending map[string]int
	ready   []string

	inflight      int
	executed      int
	failed        int
	unresolved    int
	halted        bool
	haltReason    string
	currentNodeID string
}

// enqueueReady inserts a node into the ready list keeping (depth,
// insertion index) order, so dispatch order — and with it the progress
// log — is reproducible for a given graph.
func (st *runState) enqueueReady(id string) {
	at := sort.Search(len(st.ready), func(i int) bool {
		a, b := st.ready[i], id
		if d1, d2 := st.g.Depth(a), st.g.Depth(b); d1 != d2 {
			return d1 > d2
		}
		return st.g.InsertionIndex(a) > st.g.InsertionIndex(b)
	})
	st.ready = append(st.ready, "")
	copy(st.ready[at+1:], st.ready[at:])
	st.ready[at] = id
}

// dispatchNode snapshots the node's view of the run and launches its
// evaluation goroutine.
func (e *Executor) dispatchNode(ctx context.Context, st *runState, nodeID string, outcomes chan<- nodeOutcome) {
	node, _ := st.g.Node(nodeID)

	inputs := make(map[string]models.NodeResult)
	for _, pred := range st.g.Predecessors(nodeID) {
		if r, ok := st.results[pred]; ok {
			inputs[pred] = r
		}
	}
	vars := make(map[string]string, len(st.derived))
	for k, v := range st.derived {
		vars[k] = v
	}

	ec := &graph.EvalContext{
		Node:      node,
		Inputs:    inputs,
		Variables: vars,
		Globals:   st.snapshot,
	}

	evaluator, err := e.registry.Lookup(node.Type)
	if err != nil {
		// An unknown kind fails its node like any evaluation error would.
		outcomes <- nodeOutcome{
			nodeID: nodeID,
			result: models.NodeResult{Success: false, Error: err.Error()},
			input:  logInput(ec),
		}
		return
	}

	go func() {
		start := time.Now()
		out, evalErr := evaluator.Evaluate(ctx, ec)
		result := models.NodeResult{
			Success:    evalErr == nil,
			DurationMS: time.Since(start).Milliseconds(),
		}
		if evalErr != nil {
			result.Error = evalErr.Error()
		} else if out != nil {
			result.Value = out.Value
			result.Text = out.Text
			result.Response = out.Response
			result.EnvWrites = out.EnvWrites
		}
		outcomes <- nodeOutcome{
			nodeID:     nodeID,
			result:     result,
			stop:       evalErr != nil && evaluator.StopOnError(),
			unresolved: len(ec.Unresolved()),
			input:      logInput(ec),
		}
	}()
}

// recordOutcome folds one terminated node back into the run: counters, env
// writes, successor bookkeeping, the execution log, the progress line and
// the event stream. Runs on the scheduling loop, so event order matches
// termination order.
func (e *Executor) recordOutcome(ctx context.Context, st *runState, out nodeOutcome, appender *logAppender, artifacts *runArtifacts, jobID, instanceID string) {
	node, _ := st.g.Node(out.nodeID)
	st.results[out.nodeID] = out.result
	st.unresolved += out.unresolved

	if out.result.Success {
		st.executed++
		for name, value := range out.result.EnvWrites {
			st.derived[name] = value
		}
	} else {
		st.failed++
		if out.stop && st.haltReason == "" {
			st.haltReason = fmt.Sprintf("node %s failed: %s", out.nodeID, out.result.Error)
		}
		slog.Warn("Node evaluation failed",
			"execution_id", instanceID,
			"node_id", out.nodeID,
			"node_type", node.Type,
			"stop_on_error", out.stop,
			"error", out.result.Error,
		)
	}

	for _, next := range st.g.Successors(out.nodeID) {
		st.pending[next]--
		if st.pending[next] == 0 {
			st.enqueueReady(next)
		}
	}

	appender.append(out, st.currentNodeID)

	done := st.executed + st.failed
	total := st.g.Len()
	if artifacts != nil {
		artifacts.record(node.Label(), out.nodeID, out.result, done, total)
	}
	e.publishNodeEvents(ctx, st, node, out, jobID, instanceID, done, total)
}

// publishNodeEvents emits the persisted node.status event and the
// transient progress counters. Best-effort: event loss never affects the
// run.
func (e *Executor) publishNodeEvents(ctx context.Context, st *runState, node graph.Node, out nodeOutcome, jobID, instanceID string, done, total int) {
	if e.publisher == nil || jobID == "" {
		return
	}

	status := events.NodeStatusCompleted
	if !out.result.Success {
		status = events.NodeStatusFailed
	}
	if err := e.publisher.PublishNodeStatus(ctx, jobID, events.NodeStatusPayload{
		BasePayload:         events.BasePayload{Type: events.EventTypeNodeStatus, JobID: jobID, Timestamp: time.Now().UTC().Format(time.RFC3339Nano)},
		ExecutionInstanceID: instanceID,
		NodeID:              out.nodeID,
		NodeLabel:           node.Label(),
		Status:              status,
		Error:               out.result.Error,
		DurationMS:          out.result.DurationMS,
	}); err != nil {
		slog.Warn("Failed to publish node status", "job_id", jobID, "node_id", out.nodeID, "error", err)
	}

	percentage := 0
	if total > 0 {
		percentage = done * 100 / total
	}
	if err := e.publisher.PublishJobProgress(ctx, jobID, events.JobProgressPayload{
		BasePayload:         events.BasePayload{Type: events.EventTypeJobProgress, JobID: jobID, Timestamp: time.Now().UTC().Format(time.RFC3339Nano)},
		ExecutionInstanceID: instanceID,
		TotalNodes:          total,
		ExecutedNodes:       st.executed,
		FailedNodes:         st.failed,
		Percentage:          percentage,
		CurrentNodeID:       st.currentNodeID,
	}); err != nil {
		slog.Warn("Failed to publish job progress", "job_id", jobID, "error", err)
	}
}

// seedFromLastRun folds the env writes of the most recent completed run
// into base, giving templates access to stale node outputs when the
// caller asked to keep results.
func (e *Executor) seedFromLastRun(ctx context.Context, projectID string, base map[string]models.Variable) {
	last, err := e.client.ExecutionInstance.Query().
		Where(
			executioninstance.ProjectIDEQ(projectID),
			executioninstance.StatusEQ(executioninstance.StatusCompleted),
		).
		Order(ent.Desc(executioninstance.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			slog.Warn("Failed to load prior run for seeding", "project_id", projectID, "error", err)
		}
		return
	}
	for _, r := range last.ExecutionResults {
		for name, value := range r.EnvWrites {
			base[name] = models.Variable{Value: value}
		}
	}
}

// stopRequested reports whether the run should stop dispatching new
// nodes: hard context cancellation or the cooperative stop signal.
func stopRequested(ctx context.Context, stop <-chan struct{}) bool {
	if ctx.Err() != nil {
		return true
	}
	if stop == nil {
		return false
	}
	select {
	case <-stop:
		return true
	default:
		return false
	}
}

// logInput captures the resolved view a node was dispatched with, for the
// execution log.
func logInput(ec *graph.EvalContext) map[string]interface{} {
	in := map[string]interface{}{
		"node_type": ec.Node.Type,
	}
	if len(ec.Inputs) > 0 {
		preds := make([]string, 0, len(ec.Inputs))
		for id := range ec.Inputs {
			preds = append(preds, id)
		}
		sort.Strings(preds)
		in["predecessors"] = preds
	}
	return in
}
