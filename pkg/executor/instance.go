package executor

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/assessflow/pipeline/ent"
	"github.com/assessflow/pipeline/ent/executioninstance"
	"github.com/assessflow/pipeline/ent/executionlog"
	"github.com/assessflow/pipeline/pkg/models"
	"github.com/google/uuid"
)

// createInstance writes the running ExecutionInstance row. Nothing
// dispatches until this row exists; a crash mid-run leaves a running
// instance for the retention sweep, never an untracked run.
func (e *Executor) createInstance(ctx context.Context, id string, req RunRequest, totalNodes int, startedAt time.Time, snapshot map[string]models.Variable) error {
	create := e.client.ExecutionInstance.Create().
		SetID(id).
		SetProjectID(req.ProjectID).
		SetStatus(executioninstance.StatusRunning).
		SetTotalNodes(totalNodes).
		SetStartedAt(startedAt).
		SetGlobalVariablesSnapshot(snapshot)
	if req.JobID != "" {
		create.SetJobID(req.JobID)
	}
	if req.SessionID != "" {
		create.SetSessionID(req.SessionID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create execution instance: %w", err)
	}
	return nil
}

// finalizeInstance moves the instance to its terminal status with the
// authoritative counters and results. Guarded on status=running, so a
// second finalize is a no-op.
func (e *Executor) finalizeInstance(instanceID string, status executioninstance.Status, st *runState, skipped int, completedAt time.Time, durationMS int64) {
	// Detached context: finalize must land even when the run's context is
	// already cancelled.
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := e.client.ExecutionInstance.Update().
		Where(
			executioninstance.IDEQ(instanceID),
			executioninstance.StatusEQ(executioninstance.StatusRunning),
		).
		SetStatus(status).
		SetExecutedNodes(st.executed).
		SetFailedNodes(st.failed).
		SetSkippedNodes(skipped).
		SetCompletedAt(completedAt).
		SetDurationMs(durationMS).
		SetExecutionResults(st.results).
		ClearCurrentNodeID().
		Save(writeCtx)
	if err != nil {
		slog.Error("Failed to finalize execution instance",
			"execution_id", instanceID, "status", status, "error", err)
		return
	}
	if n == 0 {
		slog.Warn("Execution instance was already finalized", "execution_id", instanceID)
	}
}

// logAppender persists ExecutionLog rows and instance counter touches off
// the scheduling loop. Appends are fire-and-forget per node; wait blocks
// until every append has been acknowledged, which finalize requires.
type logAppender struct {
	client     *ent.Client
	instanceID string
	wg         sync.WaitGroup
}

func newLogAppender(client *ent.Client, instanceID string) *logAppender {
	return &logAppender{client: client, instanceID: instanceID}
}

func (a *logAppender) append(out nodeOutcome, currentNodeID string) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		status := executionlog.StatusCompleted
		if !out.result.Success {
			status = executionlog.StatusFailed
		}
		create := a.client.ExecutionLog.Create().
			SetID(uuid.New().String()).
			SetExecutionID(a.instanceID).
			SetNodeID(out.nodeID).
			SetStatus(status).
			SetDurationMs(out.result.DurationMS).
			SetCreatedAt(time.Now())
		if len(out.input) > 0 {
			create.SetInput(out.input)
		}
		if output := logOutput(out.result); len(output) > 0 {
			create.SetOutput(output)
		}
		if out.result.Error != "" {
			create.SetError(out.result.Error)
		}
		if _, err := create.Save(writeCtx); err != nil {
			slog.Error("Failed to append execution log",
				"execution_id", a.instanceID, "node_id", out.nodeID, "error", err)
		}

		// Counter touch keeps the live-progress join fresh during the run.
		// Increments commute, so touches landing out of order cannot walk
		// the counters backward.
		touch := a.client.ExecutionInstance.Update().
			Where(
				executioninstance.IDEQ(a.instanceID),
				executioninstance.StatusEQ(executioninstance.StatusRunning),
			).
			SetCurrentNodeID(currentNodeID)
		if out.result.Success {
			touch.AddExecutedNodes(1)
		} else {
			touch.AddFailedNodes(1)
		}
		if _, err := touch.Save(writeCtx); err != nil {
			slog.Error("Failed to touch execution progress",
				"execution_id", a.instanceID, "node_id", out.nodeID, "error", err)
		}
	}()
}

// wait blocks until all appends issued so far have completed.
func (a *logAppender) wait() {
	a.wg.Wait()
}

// logOutput shapes a node result for the execution log's output column.
func logOutput(r models.NodeResult) map[string]interface{} {
	if !r.Success {
		return nil
	}
	out := make(map[string]interface{}, 4)
	if r.Value != nil {
		out["value"] = r.Value
	}
	if r.Text != "" {
		out["text"] = r.Text
	}
	if r.Response != "" {
		out["response"] = r.Response
	}
	if len(r.EnvWrites) > 0 {
		names := make([]string, 0, len(r.EnvWrites))
		for name := range r.EnvWrites {
			names = append(names, name)
		}
		sort.Strings(names)
		out["env_writes"] = names
	}
	return out
}
