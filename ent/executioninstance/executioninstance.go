// Code generated by ent, DO NOT EDIT.

package executioninstance

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the executioninstance type in the database.
	Label = "execution_instance"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTotalNodes holds the string denoting the total_nodes field in the database.
	FieldTotalNodes = "total_nodes"
	// FieldExecutedNodes holds the string denoting the executed_nodes field in the database.
	FieldExecutedNodes = "executed_nodes"
	// FieldFailedNodes holds the string denoting the failed_nodes field in the database.
	FieldFailedNodes = "failed_nodes"
	// FieldSkippedNodes holds the string denoting the skipped_nodes field in the database.
	FieldSkippedNodes = "skipped_nodes"
	// FieldCurrentNodeID holds the string denoting the current_node_id field in the database.
	FieldCurrentNodeID = "current_node_id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldGlobalVariablesSnapshot holds the string denoting the global_variables_snapshot field in the database.
	FieldGlobalVariablesSnapshot = "global_variables_snapshot"
	// FieldExecutionResults holds the string denoting the execution_results field in the database.
	FieldExecutionResults = "execution_results"
	// EdgeLogs holds the string denoting the logs edge name in mutations.
	EdgeLogs = "logs"
	// ExecutionLogFieldID holds the string denoting the ID field of the ExecutionLog.
	ExecutionLogFieldID = "log_id"
	// Table holds the table name of the executioninstance in the database.
	Table = "execution_instances"
	// LogsTable is the table that holds the logs relation/edge.
	LogsTable = "execution_logs"
	// LogsInverseTable is the table name for the ExecutionLog entity.
	// It exists in this package in order to avoid circular dependency with the "executionlog" package.
	LogsInverseTable = "execution_logs"
	// LogsColumn is the table column denoting the logs relation/edge.
	LogsColumn = "execution_id"
)

// Columns holds all SQL columns for executioninstance fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldJobID,
	FieldSessionID,
	FieldStatus,
	FieldTotalNodes,
	FieldExecutedNodes,
	FieldFailedNodes,
	FieldSkippedNodes,
	FieldCurrentNodeID,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationMs,
	FieldGlobalVariablesSnapshot,
	FieldExecutionResults,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultExecutedNodes holds the default value on creation for the "executed_nodes" field.
	DefaultExecutedNodes int
	// DefaultFailedNodes holds the default value on creation for the "failed_nodes" field.
	DefaultFailedNodes int
	// DefaultSkippedNodes holds the default value on creation for the "skipped_nodes" field.
	DefaultSkippedNodes int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("executioninstance: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ExecutionInstance queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotalNodes orders the results by the total_nodes field.
func ByTotalNodes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalNodes, opts...).ToFunc()
}

// ByExecutedNodes orders the results by the executed_nodes field.
func ByExecutedNodes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutedNodes, opts...).ToFunc()
}

// ByFailedNodes orders the results by the failed_nodes field.
func ByFailedNodes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedNodes, opts...).ToFunc()
}

// BySkippedNodes orders the results by the skipped_nodes field.
func BySkippedNodes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkippedNodes, opts...).ToFunc()
}

// ByCurrentNodeID orders the results by the current_node_id field.
func ByCurrentNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentNodeID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByLogsCount orders the results by logs count.
func ByLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLogsStep(), opts...)
	}
}

// ByLogs orders the results by logs terms.
func ByLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LogsInverseTable, ExecutionLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LogsTable, LogsColumn),
	)
}
