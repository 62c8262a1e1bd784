package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/assessflow/pipeline/ent"
	"github.com/assessflow/pipeline/ent/response"
	"github.com/assessflow/pipeline/pkg/models"
)

// runDump is the structured artifact written next to the progress log at
// finalize. It is self-contained: everything needed to review a run
// offline without database access.
type runDump struct {
	Metadata               dumpMetadata                 `json:"metadata"`
	Execution              dumpExecution                `json:"execution"`
	Stats                  dumpStats                    `json:"stats"`
	QuestionnaireResponses []dumpResponse               `json:"questionnaireResponses"`
	GlobalVariables        map[string]models.Variable   `json:"globalVariables"`
	NodeLogs               []dumpNodeLog                `json:"nodeLogs"`
	ExecutionResults       map[string]models.NodeResult `json:"executionResults"`
}

type dumpMetadata struct {
	ExecutionInstanceID string    `json:"executionInstanceId"`
	ProjectID           string    `json:"projectId"`
	ProjectName         string    `json:"projectName"`
	JobID               string    `json:"jobId,omitempty"`
	SessionID           string    `json:"sessionId,omitempty"`
	GeneratedAt         time.Time `json:"generatedAt"`
}

type dumpExecution struct {
	Status      string    `json:"status"`
	StartedAt   time.Time `json:"startedAt"`
	CompletedAt time.Time `json:"completedAt"`
	DurationMS  int64     `json:"durationMs"`
}

type dumpStats struct {
	TotalNodes          int `json:"totalNodes"`
	ExecutedNodes       int `json:"executedNodes"`
	FailedNodes         int `json:"failedNodes"`
	SkippedNodes        int `json:"skippedNodes"`
	UnresolvedVariables int `json:"unresolvedVariables"`
}

type dumpResponse struct {
	QuestionID   int       `json:"questionId"`
	QuestionText string    `json:"questionText"`
	Answer       string    `json:"answer"`
	AnsweredAt   time.Time `json:"answeredAt"`
	TimeSpent    *int      `json:"timeSpent,omitempty"`
	CharCount    *int      `json:"charCount,omitempty"`
}

type dumpNodeLog struct {
	NodeID     string    `json:"nodeId"`
	Label      string    `json:"label"`
	Status     string    `json:"status"`
	DurationMS int64     `json:"durationMs"`
	Error      string    `json:"error,omitempty"`
	At         time.Time `json:"at"`
}

// writeDump assembles and writes the run dump. Session responses are
// included when the run belongs to a session, so report reviews can see
// the answers the pipeline consumed.
func (e *Executor) writeDump(a *runArtifacts, proj *ent.Project, req RunRequest, instanceID, status string, startedAt, completedAt time.Time, st *runState, summary *models.ExecutionSummary) error {
	dump := runDump{
		Metadata: dumpMetadata{
			ExecutionInstanceID: instanceID,
			ProjectID:           proj.ID,
			ProjectName:         proj.Name,
			JobID:               req.JobID,
			SessionID:           req.SessionID,
			GeneratedAt:         time.Now().UTC(),
		},
		Execution: dumpExecution{
			Status:      status,
			StartedAt:   startedAt.UTC(),
			CompletedAt: completedAt.UTC(),
			DurationMS:  summary.DurationMS,
		},
		Stats: dumpStats{
			TotalNodes:          st.g.Len(),
			ExecutedNodes:       summary.Executed,
			FailedNodes:         summary.Failed,
			SkippedNodes:        summary.Skipped,
			UnresolvedVariables: st.unresolved,
		},
		QuestionnaireResponses: e.loadResponses(req.SessionID),
		GlobalVariables:        st.snapshot,
		NodeLogs:               a.nodeLogs,
		ExecutionResults:       summary.Results,
	}

	raw, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run dump: %w", err)
	}
	if err := os.WriteFile(a.dumpPath, raw, 0o644); err != nil {
		return fmt.Errorf("write run dump: %w", err)
	}
	return nil
}

// loadResponses fetches the session's questionnaire answers in question
// order. Best-effort: a read failure degrades the dump, never the run.
func (e *Executor) loadResponses(sessionID string) []dumpResponse {
	if sessionID == "" {
		return nil
	}

	readCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rows, err := e.client.Response.Query().
		Where(response.SessionIDEQ(sessionID)).
		Order(ent.Asc(response.FieldQuestionID)).
		All(readCtx)
	if err != nil {
		return nil
	}

	out := make([]dumpResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dumpResponse{
			QuestionID:   r.QuestionID,
			QuestionText: r.QuestionText,
			Answer:       r.Answer,
			AnsweredAt:   r.AnsweredAt.UTC(),
			TimeSpent:    r.TimeSpent,
			CharCount:    r.CharCount,
		})
	}
	return out
}
