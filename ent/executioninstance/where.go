// Code generated by ent, DO NOT EDIT.

package executioninstance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/assessflow/pipeline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldProjectID, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldJobID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldSessionID, v))
}

// TotalNodes applies equality check predicate on the "total_nodes" field. It's identical to TotalNodesEQ.
func TotalNodes(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldTotalNodes, v))
}

// ExecutedNodes applies equality check predicate on the "executed_nodes" field. It's identical to ExecutedNodesEQ.
func ExecutedNodes(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldExecutedNodes, v))
}

// FailedNodes applies equality check predicate on the "failed_nodes" field. It's identical to FailedNodesEQ.
func FailedNodes(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldFailedNodes, v))
}

// SkippedNodes applies equality check predicate on the "skipped_nodes" field. It's identical to SkippedNodesEQ.
func SkippedNodes(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldSkippedNodes, v))
}

// CurrentNodeID applies equality check predicate on the "current_node_id" field. It's identical to CurrentNodeIDEQ.
func CurrentNodeID(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldCurrentNodeID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldDurationMs, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldContainsFold(FieldProjectID, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDIsNil applies the IsNil predicate on the "job_id" field.
func JobIDIsNil() predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIsNull(FieldJobID))
}

// JobIDNotNil applies the NotNil predicate on the "job_id" field.
func JobIDNotNil() predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotNull(FieldJobID))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldContainsFold(FieldJobID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldContainsFold(FieldSessionID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotIn(FieldStatus, vs...))
}

// TotalNodesEQ applies the EQ predicate on the "total_nodes" field.
func TotalNodesEQ(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldTotalNodes, v))
}

// TotalNodesNEQ applies the NEQ predicate on the "total_nodes" field.
func TotalNodesNEQ(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNEQ(FieldTotalNodes, v))
}

// TotalNodesIn applies the In predicate on the "total_nodes" field.
func TotalNodesIn(vs ...int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIn(FieldTotalNodes, vs...))
}

// TotalNodesNotIn applies the NotIn predicate on the "total_nodes" field.
func TotalNodesNotIn(vs ...int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotIn(FieldTotalNodes, vs...))
}

// TotalNodesGT applies the GT predicate on the "total_nodes" field.
func TotalNodesGT(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGT(FieldTotalNodes, v))
}

// TotalNodesGTE applies the GTE predicate on the "total_nodes" field.
func TotalNodesGTE(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGTE(FieldTotalNodes, v))
}

// TotalNodesLT applies the LT predicate on the "total_nodes" field.
func TotalNodesLT(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLT(FieldTotalNodes, v))
}

// TotalNodesLTE applies the LTE predicate on the "total_nodes" field.
func TotalNodesLTE(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLTE(FieldTotalNodes, v))
}

// ExecutedNodesEQ applies the EQ predicate on the "executed_nodes" field.
func ExecutedNodesEQ(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldExecutedNodes, v))
}

// ExecutedNodesNEQ applies the NEQ predicate on the "executed_nodes" field.
func ExecutedNodesNEQ(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNEQ(FieldExecutedNodes, v))
}

// ExecutedNodesIn applies the In predicate on the "executed_nodes" field.
func ExecutedNodesIn(vs ...int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIn(FieldExecutedNodes, vs...))
}

// ExecutedNodesNotIn applies the NotIn predicate on the "executed_nodes" field.
func ExecutedNodesNotIn(vs ...int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotIn(FieldExecutedNodes, vs...))
}

// ExecutedNodesGT applies the GT predicate on the "executed_nodes" field.
func ExecutedNodesGT(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGT(FieldExecutedNodes, v))
}

// ExecutedNodesGTE applies the GTE predicate on the "executed_nodes" field.
func ExecutedNodesGTE(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGTE(FieldExecutedNodes, v))
}

// ExecutedNodesLT applies the LT predicate on the "executed_nodes" field.
func ExecutedNodesLT(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLT(FieldExecutedNodes, v))
}

// ExecutedNodesLTE applies the LTE predicate on the "executed_nodes" field.
func ExecutedNodesLTE(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLTE(FieldExecutedNodes, v))
}

// FailedNodesEQ applies the EQ predicate on the "failed_nodes" field.
func FailedNodesEQ(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldFailedNodes, v))
}

// FailedNodesNEQ applies the NEQ predicate on the "failed_nodes" field.
func FailedNodesNEQ(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNEQ(FieldFailedNodes, v))
}

// FailedNodesIn applies the In predicate on the "failed_nodes" field.
func FailedNodesIn(vs ...int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIn(FieldFailedNodes, vs...))
}

// FailedNodesNotIn applies the NotIn predicate on the "failed_nodes" field.
func FailedNodesNotIn(vs ...int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotIn(FieldFailedNodes, vs...))
}

// FailedNodesGT applies the GT predicate on the "failed_nodes" field.
func FailedNodesGT(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGT(FieldFailedNodes, v))
}

// FailedNodesGTE applies the GTE predicate on the "failed_nodes" field.
func FailedNodesGTE(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGTE(FieldFailedNodes, v))
}

// FailedNodesLT applies the LT predicate on the "failed_nodes" field.
func FailedNodesLT(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLT(FieldFailedNodes, v))
}

// FailedNodesLTE applies the LTE predicate on the "failed_nodes" field.
func FailedNodesLTE(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLTE(FieldFailedNodes, v))
}

// SkippedNodesEQ applies the EQ predicate on the "skipped_nodes" field.
func SkippedNodesEQ(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldSkippedNodes, v))
}

// SkippedNodesNEQ applies the NEQ predicate on the "skipped_nodes" field.
func SkippedNodesNEQ(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNEQ(FieldSkippedNodes, v))
}

// SkippedNodesIn applies the In predicate on the "skipped_nodes" field.
func SkippedNodesIn(vs ...int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIn(FieldSkippedNodes, vs...))
}

// SkippedNodesNotIn applies the NotIn predicate on the "skipped_nodes" field.
func SkippedNodesNotIn(vs ...int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotIn(FieldSkippedNodes, vs...))
}

// SkippedNodesGT applies the GT predicate on the "skipped_nodes" field.
func SkippedNodesGT(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGT(FieldSkippedNodes, v))
}

// SkippedNodesGTE applies the GTE predicate on the "skipped_nodes" field.
func SkippedNodesGTE(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGTE(FieldSkippedNodes, v))
}

// SkippedNodesLT applies the LT predicate on the "skipped_nodes" field.
func SkippedNodesLT(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLT(FieldSkippedNodes, v))
}

// SkippedNodesLTE applies the LTE predicate on the "skipped_nodes" field.
func SkippedNodesLTE(v int) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLTE(FieldSkippedNodes, v))
}

// CurrentNodeIDEQ applies the EQ predicate on the "current_node_id" field.
func CurrentNodeIDEQ(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldCurrentNodeID, v))
}

// CurrentNodeIDNEQ applies the NEQ predicate on the "current_node_id" field.
func CurrentNodeIDNEQ(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNEQ(FieldCurrentNodeID, v))
}

// CurrentNodeIDIn applies the In predicate on the "current_node_id" field.
func CurrentNodeIDIn(vs ...string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIn(FieldCurrentNodeID, vs...))
}

// CurrentNodeIDNotIn applies the NotIn predicate on the "current_node_id" field.
func CurrentNodeIDNotIn(vs ...string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotIn(FieldCurrentNodeID, vs...))
}

// CurrentNodeIDGT applies the GT predicate on the "current_node_id" field.
func CurrentNodeIDGT(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGT(FieldCurrentNodeID, v))
}

// CurrentNodeIDGTE applies the GTE predicate on the "current_node_id" field.
func CurrentNodeIDGTE(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGTE(FieldCurrentNodeID, v))
}

// CurrentNodeIDLT applies the LT predicate on the "current_node_id" field.
func CurrentNodeIDLT(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLT(FieldCurrentNodeID, v))
}

// CurrentNodeIDLTE applies the LTE predicate on the "current_node_id" field.
func CurrentNodeIDLTE(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLTE(FieldCurrentNodeID, v))
}

// CurrentNodeIDContains applies the Contains predicate on the "current_node_id" field.
func CurrentNodeIDContains(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldContains(FieldCurrentNodeID, v))
}

// CurrentNodeIDHasPrefix applies the HasPrefix predicate on the "current_node_id" field.
func CurrentNodeIDHasPrefix(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldHasPrefix(FieldCurrentNodeID, v))
}

// CurrentNodeIDHasSuffix applies the HasSuffix predicate on the "current_node_id" field.
func CurrentNodeIDHasSuffix(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldHasSuffix(FieldCurrentNodeID, v))
}

// CurrentNodeIDIsNil applies the IsNil predicate on the "current_node_id" field.
func CurrentNodeIDIsNil() predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIsNull(FieldCurrentNodeID))
}

// CurrentNodeIDNotNil applies the NotNil predicate on the "current_node_id" field.
func CurrentNodeIDNotNil() predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotNull(FieldCurrentNodeID))
}

// CurrentNodeIDEqualFold applies the EqualFold predicate on the "current_node_id" field.
func CurrentNodeIDEqualFold(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEqualFold(FieldCurrentNodeID, v))
}

// CurrentNodeIDContainsFold applies the ContainsFold predicate on the "current_node_id" field.
func CurrentNodeIDContainsFold(v string) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldContainsFold(FieldCurrentNodeID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotNull(FieldDurationMs))
}

// ExecutionResultsIsNil applies the IsNil predicate on the "execution_results" field.
func ExecutionResultsIsNil() predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldIsNull(FieldExecutionResults))
}

// ExecutionResultsNotNil applies the NotNil predicate on the "execution_results" field.
func ExecutionResultsNotNil() predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.FieldNotNull(FieldExecutionResults))
}

// HasLogs applies the HasEdge predicate on the "logs" edge.
func HasLogs() predicate.ExecutionInstance {
	return predicate.ExecutionInstance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LogsTable, LogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLogsWith applies the HasEdge predicate on the "logs" edge with a given conditions (other predicates).
func HasLogsWith(preds ...predicate.ExecutionLog) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(func(s *sql.Selector) {
		step := newLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExecutionInstance) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExecutionInstance) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExecutionInstance) predicate.ExecutionInstance {
	return predicate.ExecutionInstance(sql.NotPredicates(p))
}
