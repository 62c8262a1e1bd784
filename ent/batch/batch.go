// Code generated by ent, DO NOT EDIT.

package batch

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the batch type in the database.
	Label = "batch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "batch_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldOutputDir holds the string denoting the output_dir field in the database.
	FieldOutputDir = "output_dir"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTotalJobs holds the string denoting the total_jobs field in the database.
	FieldTotalJobs = "total_jobs"
	// FieldCompletedJobs holds the string denoting the completed_jobs field in the database.
	FieldCompletedJobs = "completed_jobs"
	// FieldFailedJobs holds the string denoting the failed_jobs field in the database.
	FieldFailedJobs = "failed_jobs"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the batch in the database.
	Table = "batches"
)

// Columns holds all SQL columns for batch fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldName,
	FieldOutputDir,
	FieldStatus,
	FieldTotalJobs,
	FieldCompletedJobs,
	FieldFailedJobs,
	FieldCreatedAt,
	FieldCompletedAt,
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
	// DefaultCompletedJobs holds the default value on creation for the "completed_jobs" field.
	DefaultCompletedJobs int
	// DefaultFailedJobs holds the default value on creation for the "failed_jobs" field.
	DefaultFailedJobs int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusPartial    Status = "partial"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusProcessing, StatusCompleted, StatusPartial, StatusFailed:
		return nil
	default:
		return fmt.Errorf("batch: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Batch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByOutputDir orders the results by the output_dir field.
func ByOutputDir(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputDir, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotalJobs orders the results by the total_jobs field.
func ByTotalJobs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalJobs, opts...).ToFunc()
}

// ByCompletedJobs orders the results by the completed_jobs field.
func ByCompletedJobs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedJobs, opts...).ToFunc()
}

// ByFailedJobs orders the results by the failed_jobs field.
func ByFailedJobs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedJobs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
