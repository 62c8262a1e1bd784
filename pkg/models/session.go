package models

import "strings"

// Session status values as they travel on the wire. Mirrors the ent enum.
const (
	SessionStatusInProgress = "IN_PROGRESS"
	SessionStatusCompleted  = "COMPLETED"
	SessionStatusAbandoned  = "ABANDONED"
)

// Session modes.
const (
	SessionModeProf    = "PROF"
	SessionModeBigFive = "BIG_FIVE"
)

// Pipeline kinds route jobs to a dedicated worker group. The kind is derived
// from the project name at enqueue time and copied onto the job so leasing
// stays a single-table scan.
const (
	KindProf    = "Prof"
	KindBigFive = "BigFive"
)

// PipelineKinds lists every known kind, in worker-group start order.
var PipelineKinds = []string{KindProf, KindBigFive}

// PipelineKindForProject derives the pipeline kind from a project name.
// Projects named after the Big Five questionnaire route to the BigFive
// group; everything else is Prof work.
func PipelineKindForProject(name string) string {
	lowered := strings.ToLower(name)
	for _, marker := range []string{"bigfive", "big five", "big5"} {
		if strings.Contains(lowered, marker) {
			return KindBigFive
		}
	}
	return KindProf
}

// CreateSessionRequest contains fields for creating a questionnaire session.
type CreateSessionRequest struct {
	SessionID      string `json:"session_id"`
	UserID         string `json:"user_id,omitempty"`
	Mode           string `json:"mode"`
	TotalQuestions int    `json:"total_questions"`
}

// RecordResponseRequest contains fields for appending one answer to a
// session.
type RecordResponseRequest struct {
	QuestionID   int    `json:"question_id"`
	QuestionText string `json:"question_text"`
	Answer       string `json:"answer"`
	TimeSpent    *int   `json:"time_spent,omitempty"`
	TokenCount   *int   `json:"token_count,omitempty"`
	CharCount    *int   `json:"char_count,omitempty"`
}

// SessionFilters contains filtering options for listing sessions.
type SessionFilters struct {
	Status string `json:"status,omitempty"`
	Mode   string `json:"mode,omitempty"`
	UserID string `json:"user_id,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}
