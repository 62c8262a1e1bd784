// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/assessflow/pipeline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSessionID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldProjectID, v))
}

// PipelineKind applies equality check predicate on the "pipeline_kind" field. It's identical to PipelineKindEQ.
func PipelineKind(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPipelineKind, v))
}

// WorkerID applies equality check predicate on the "worker_id" field. It's identical to WorkerIDEQ.
func WorkerID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWorkerID, v))
}

// LeaseDeadline applies equality check predicate on the "lease_deadline" field. It's identical to LeaseDeadlineEQ.
func LeaseDeadline(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLeaseDeadline, v))
}

// Retries applies equality check predicate on the "retries" field. It's identical to RetriesEQ.
func Retries(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRetries, v))
}

// ErrorText applies equality check predicate on the "error_text" field. It's identical to ErrorTextEQ.
func ErrorText(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorText, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldBatchID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldSessionID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldProjectID, v))
}

// PipelineKindEQ applies the EQ predicate on the "pipeline_kind" field.
func PipelineKindEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPipelineKind, v))
}

// PipelineKindNEQ applies the NEQ predicate on the "pipeline_kind" field.
func PipelineKindNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldPipelineKind, v))
}

// PipelineKindIn applies the In predicate on the "pipeline_kind" field.
func PipelineKindIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldPipelineKind, vs...))
}

// PipelineKindNotIn applies the NotIn predicate on the "pipeline_kind" field.
func PipelineKindNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldPipelineKind, vs...))
}

// PipelineKindGT applies the GT predicate on the "pipeline_kind" field.
func PipelineKindGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldPipelineKind, v))
}

// PipelineKindGTE applies the GTE predicate on the "pipeline_kind" field.
func PipelineKindGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldPipelineKind, v))
}

// PipelineKindLT applies the LT predicate on the "pipeline_kind" field.
func PipelineKindLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldPipelineKind, v))
}

// PipelineKindLTE applies the LTE predicate on the "pipeline_kind" field.
func PipelineKindLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldPipelineKind, v))
}

// PipelineKindContains applies the Contains predicate on the "pipeline_kind" field.
func PipelineKindContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldPipelineKind, v))
}

// PipelineKindHasPrefix applies the HasPrefix predicate on the "pipeline_kind" field.
func PipelineKindHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldPipelineKind, v))
}

// PipelineKindHasSuffix applies the HasSuffix predicate on the "pipeline_kind" field.
func PipelineKindHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldPipelineKind, v))
}

// PipelineKindEqualFold applies the EqualFold predicate on the "pipeline_kind" field.
func PipelineKindEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldPipelineKind, v))
}

// PipelineKindContainsFold applies the ContainsFold predicate on the "pipeline_kind" field.
func PipelineKindContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldPipelineKind, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStatus, vs...))
}

// WorkerIDEQ applies the EQ predicate on the "worker_id" field.
func WorkerIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWorkerID, v))
}

// WorkerIDNEQ applies the NEQ predicate on the "worker_id" field.
func WorkerIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldWorkerID, v))
}

// WorkerIDIn applies the In predicate on the "worker_id" field.
func WorkerIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldWorkerID, vs...))
}

// WorkerIDNotIn applies the NotIn predicate on the "worker_id" field.
func WorkerIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldWorkerID, vs...))
}

// WorkerIDGT applies the GT predicate on the "worker_id" field.
func WorkerIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldWorkerID, v))
}

// WorkerIDGTE applies the GTE predicate on the "worker_id" field.
func WorkerIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldWorkerID, v))
}

// WorkerIDLT applies the LT predicate on the "worker_id" field.
func WorkerIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldWorkerID, v))
}

// WorkerIDLTE applies the LTE predicate on the "worker_id" field.
func WorkerIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldWorkerID, v))
}

// WorkerIDContains applies the Contains predicate on the "worker_id" field.
func WorkerIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldWorkerID, v))
}

// WorkerIDHasPrefix applies the HasPrefix predicate on the "worker_id" field.
func WorkerIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldWorkerID, v))
}

// WorkerIDHasSuffix applies the HasSuffix predicate on the "worker_id" field.
func WorkerIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldWorkerID, v))
}

// WorkerIDIsNil applies the IsNil predicate on the "worker_id" field.
func WorkerIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldWorkerID))
}

// WorkerIDNotNil applies the NotNil predicate on the "worker_id" field.
func WorkerIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldWorkerID))
}

// WorkerIDEqualFold applies the EqualFold predicate on the "worker_id" field.
func WorkerIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldWorkerID, v))
}

// WorkerIDContainsFold applies the ContainsFold predicate on the "worker_id" field.
func WorkerIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldWorkerID, v))
}

// LeaseDeadlineEQ applies the EQ predicate on the "lease_deadline" field.
func LeaseDeadlineEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLeaseDeadline, v))
}

// LeaseDeadlineNEQ applies the NEQ predicate on the "lease_deadline" field.
func LeaseDeadlineNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLeaseDeadline, v))
}

// LeaseDeadlineIn applies the In predicate on the "lease_deadline" field.
func LeaseDeadlineIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLeaseDeadline, vs...))
}

// LeaseDeadlineNotIn applies the NotIn predicate on the "lease_deadline" field.
func LeaseDeadlineNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLeaseDeadline, vs...))
}

// LeaseDeadlineGT applies the GT predicate on the "lease_deadline" field.
func LeaseDeadlineGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLeaseDeadline, v))
}

// LeaseDeadlineGTE applies the GTE predicate on the "lease_deadline" field.
func LeaseDeadlineGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLeaseDeadline, v))
}

// LeaseDeadlineLT applies the LT predicate on the "lease_deadline" field.
func LeaseDeadlineLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLeaseDeadline, v))
}

// LeaseDeadlineLTE applies the LTE predicate on the "lease_deadline" field.
func LeaseDeadlineLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLeaseDeadline, v))
}

// LeaseDeadlineIsNil applies the IsNil predicate on the "lease_deadline" field.
func LeaseDeadlineIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLeaseDeadline))
}

// LeaseDeadlineNotNil applies the NotNil predicate on the "lease_deadline" field.
func LeaseDeadlineNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLeaseDeadline))
}

// RetriesEQ applies the EQ predicate on the "retries" field.
func RetriesEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRetries, v))
}

// RetriesNEQ applies the NEQ predicate on the "retries" field.
func RetriesNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldRetries, v))
}

// RetriesIn applies the In predicate on the "retries" field.
func RetriesIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldRetries, vs...))
}

// RetriesNotIn applies the NotIn predicate on the "retries" field.
func RetriesNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldRetries, vs...))
}

// RetriesGT applies the GT predicate on the "retries" field.
func RetriesGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldRetries, v))
}

// RetriesGTE applies the GTE predicate on the "retries" field.
func RetriesGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldRetries, v))
}

// RetriesLT applies the LT predicate on the "retries" field.
func RetriesLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldRetries, v))
}

// RetriesLTE applies the LTE predicate on the "retries" field.
func RetriesLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldRetries, v))
}

// InitialVariablesIsNil applies the IsNil predicate on the "initial_variables" field.
func InitialVariablesIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldInitialVariables))
}

// InitialVariablesNotNil applies the NotNil predicate on the "initial_variables" field.
func InitialVariablesNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldInitialVariables))
}

// ErrorTextEQ applies the EQ predicate on the "error_text" field.
func ErrorTextEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorText, v))
}

// ErrorTextNEQ applies the NEQ predicate on the "error_text" field.
func ErrorTextNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldErrorText, v))
}

// ErrorTextIn applies the In predicate on the "error_text" field.
func ErrorTextIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldErrorText, vs...))
}

// ErrorTextNotIn applies the NotIn predicate on the "error_text" field.
func ErrorTextNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldErrorText, vs...))
}

// ErrorTextGT applies the GT predicate on the "error_text" field.
func ErrorTextGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldErrorText, v))
}

// ErrorTextGTE applies the GTE predicate on the "error_text" field.
func ErrorTextGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldErrorText, v))
}

// ErrorTextLT applies the LT predicate on the "error_text" field.
func ErrorTextLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldErrorText, v))
}

// ErrorTextLTE applies the LTE predicate on the "error_text" field.
func ErrorTextLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldErrorText, v))
}

// ErrorTextContains applies the Contains predicate on the "error_text" field.
func ErrorTextContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldErrorText, v))
}

// ErrorTextHasPrefix applies the HasPrefix predicate on the "error_text" field.
func ErrorTextHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldErrorText, v))
}

// ErrorTextHasSuffix applies the HasSuffix predicate on the "error_text" field.
func ErrorTextHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldErrorText, v))
}

// ErrorTextIsNil applies the IsNil predicate on the "error_text" field.
func ErrorTextIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldErrorText))
}

// ErrorTextNotNil applies the NotNil predicate on the "error_text" field.
func ErrorTextNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldErrorText))
}

// ErrorTextEqualFold applies the EqualFold predicate on the "error_text" field.
func ErrorTextEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldErrorText, v))
}

// ErrorTextContainsFold applies the ContainsFold predicate on the "error_text" field.
func ErrorTextContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldErrorText, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDIsNil applies the IsNil predicate on the "batch_id" field.
func BatchIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldBatchID))
}

// BatchIDNotNil applies the NotNil predicate on the "batch_id" field.
func BatchIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldBatchID))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldBatchID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
