// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/assessflow/pipeline/ent/executioninstance"
	"github.com/assessflow/pipeline/pkg/models"
)

// ExecutionInstance is the model entity for the ExecutionInstance schema.
type ExecutionInstance struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Weak reference; ad-hoc runs have no job
	JobID *string `json:"job_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID *string `json:"session_id,omitempty"`
	// Status holds the value of the "status" field.
	Status executioninstance.Status `json:"status,omitempty"`
	// TotalNodes holds the value of the "total_nodes" field.
	TotalNodes int `json:"total_nodes,omitempty"`
	// ExecutedNodes holds the value of the "executed_nodes" field.
	ExecutedNodes int `json:"executed_nodes,omitempty"`
	// FailedNodes holds the value of the "failed_nodes" field.
	FailedNodes int `json:"failed_nodes,omitempty"`
	// SkippedNodes holds the value of the "skipped_nodes" field.
	SkippedNodes int `json:"skipped_nodes,omitempty"`
	// Most recently dispatched node, for live progress joins
	CurrentNodeID *string `json:"current_node_id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int64 `json:"duration_ms,omitempty"`
	// Merged environment frozen before scheduling; never mutated in-run
	GlobalVariablesSnapshot map[string]models.Variable `json:"global_variables_snapshot,omitempty"`
	// ExecutionResults holds the value of the "execution_results" field.
	ExecutionResults map[string]models.NodeResult `json:"execution_results,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExecutionInstanceQuery when eager-loading is set.
	Edges        ExecutionInstanceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExecutionInstanceEdges holds the relations/edges for other nodes in the graph.
type ExecutionInstanceEdges struct {
	// Logs holds the value of the logs edge.
	Logs []*ExecutionLog `json:"logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LogsOrErr returns the Logs value or an error if the edge
// was not loaded in eager-loading.
func (e ExecutionInstanceEdges) LogsOrErr() ([]*ExecutionLog, error) {
	if e.loadedTypes[0] {
		return e.Logs, nil
	}
	return nil, &NotLoadedError{edge: "logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExecutionInstance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case executioninstance.FieldGlobalVariablesSnapshot, executioninstance.FieldExecutionResults:
			values[i] = new([]byte)
		case executioninstance.FieldTotalNodes, executioninstance.FieldExecutedNodes, executioninstance.FieldFailedNodes, executioninstance.FieldSkippedNodes, executioninstance.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case executioninstance.FieldID, executioninstance.FieldProjectID, executioninstance.FieldJobID, executioninstance.FieldSessionID, executioninstance.FieldStatus, executioninstance.FieldCurrentNodeID:
			values[i] = new(sql.NullString)
		case executioninstance.FieldStartedAt, executioninstance.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExecutionInstance fields.
func (_m *ExecutionInstance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case executioninstance.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case executioninstance.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case executioninstance.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = new(string)
				*_m.JobID = value.String
			}
		case executioninstance.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = new(string)
				*_m.SessionID = value.String
			}
		case executioninstance.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = executioninstance.Status(value.String)
			}
		case executioninstance.FieldTotalNodes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_nodes", values[i])
			} else if value.Valid {
				_m.TotalNodes = int(value.Int64)
			}
		case executioninstance.FieldExecutedNodes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field executed_nodes", values[i])
			} else if value.Valid {
				_m.ExecutedNodes = int(value.Int64)
			}
		case executioninstance.FieldFailedNodes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_nodes", values[i])
			} else if value.Valid {
				_m.FailedNodes = int(value.Int64)
			}
		case executioninstance.FieldSkippedNodes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field skipped_nodes", values[i])
			} else if value.Valid {
				_m.SkippedNodes = int(value.Int64)
			}
		case executioninstance.FieldCurrentNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_node_id", values[i])
			} else if value.Valid {
				_m.CurrentNodeID = new(string)
				*_m.CurrentNodeID = value.String
			}
		case executioninstance.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case executioninstance.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case executioninstance.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int64)
				*_m.DurationMs = value.Int64
			}
		case executioninstance.FieldGlobalVariablesSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field global_variables_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GlobalVariablesSnapshot); err != nil {
					return fmt.Errorf("unmarshal field global_variables_snapshot: %w", err)
				}
			}
		case executioninstance.FieldExecutionResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field execution_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExecutionResults); err != nil {
					return fmt.Errorf("unmarshal field execution_results: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExecutionInstance.
// This includes values selected through modifiers, order, etc.
func (_m *ExecutionInstance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLogs queries the "logs" edge of the ExecutionInstance entity.
func (_m *ExecutionInstance) QueryLogs() *ExecutionLogQuery {
	return NewExecutionInstanceClient(_m.config).QueryLogs(_m)
}

// Update returns a builder for updating this ExecutionInstance.
// Note that you need to call ExecutionInstance.Unwrap() before calling this method if this ExecutionInstance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExecutionInstance) Update() *ExecutionInstanceUpdateOne {
	return NewExecutionInstanceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExecutionInstance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExecutionInstance) Unwrap() *ExecutionInstance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExecutionInstance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExecutionInstance) String() string {
	var builder strings.Builder
	builder.WriteString("ExecutionInstance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	if v := _m.JobID; v != nil {
		builder.WriteString("job_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SessionID; v != nil {
		builder.WriteString("session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("total_nodes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalNodes))
	builder.WriteString(", ")
	builder.WriteString("executed_nodes=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutedNodes))
	builder.WriteString(", ")
	builder.WriteString("failed_nodes=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedNodes))
	builder.WriteString(", ")
	builder.WriteString("skipped_nodes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkippedNodes))
	builder.WriteString(", ")
	if v := _m.CurrentNodeID; v != nil {
		builder.WriteString("current_node_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("global_variables_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.GlobalVariablesSnapshot))
	builder.WriteString(", ")
	builder.WriteString("execution_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionResults))
	builder.WriteByte(')')
	return builder.String()
}

// ExecutionInstances is a parsable slice of ExecutionInstance.
type ExecutionInstances []*ExecutionInstance
