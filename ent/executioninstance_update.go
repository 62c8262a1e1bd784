// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/assessflow/pipeline/ent/executioninstance"
	"github.com/assessflow/pipeline/ent/executionlog"
	"github.com/assessflow/pipeline/ent/predicate"
	"github.com/assessflow/pipeline/pkg/models"
)

// ExecutionInstanceUpdate is the builder for updating ExecutionInstance entities.
type ExecutionInstanceUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionInstanceMutation
}

// Where appends a list predicates to the ExecutionInstanceUpdate builder.
func (_u *ExecutionInstanceUpdate) Where(ps ...predicate.ExecutionInstance) *ExecutionInstanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ExecutionInstanceUpdate) SetJobID(v string) *ExecutionInstanceUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ExecutionInstanceUpdate) SetNillableJobID(v *string) *ExecutionInstanceUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *ExecutionInstanceUpdate) ClearJobID() *ExecutionInstanceUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExecutionInstanceUpdate) SetSessionID(v string) *ExecutionInstanceUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExecutionInstanceUpdate) SetNillableSessionID(v *string) *ExecutionInstanceUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ExecutionInstanceUpdate) ClearSessionID() *ExecutionInstanceUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionInstanceUpdate) SetStatus(v executioninstance.Status) *ExecutionInstanceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionInstanceUpdate) SetNillableStatus(v *executioninstance.Status) *ExecutionInstanceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalNodes sets the "total_nodes" field.
func (_u *ExecutionInstanceUpdate) SetTotalNodes(v int) *ExecutionInstanceUpdate {
	_u.mutation.ResetTotalNodes()
	_u.mutation.SetTotalNodes(v)
	return _u
}

// SetNillableTotalNodes sets the "total_nodes" field if the given value is not nil.
func (_u *ExecutionInstanceUpdate) SetNillableTotalNodes(v *int) *ExecutionInstanceUpdate {
	if v != nil {
		_u.SetTotalNodes(*v)
	}
	return _u
}

// AddTotalNodes adds value to the "total_nodes" field.
func (_u *ExecutionInstanceUpdate) AddTotalNodes(v int) *ExecutionInstanceUpdate {
	_u.mutation.AddTotalNodes(v)
	return _u
}

// SetExecutedNodes sets the "executed_nodes" field.
func (_u *ExecutionInstanceUpdate) SetExecutedNodes(v int) *ExecutionInstanceUpdate {
	_u.mutation.ResetExecutedNodes()
	_u.mutation.SetExecutedNodes(v)
	return _u
}

// SetNillableExecutedNodes sets the "executed_nodes" field if the given value is not nil.
func (_u *ExecutionInstanceUpdate) SetNillableExecutedNodes(v *int) *ExecutionInstanceUpdate {
	if v != nil {
		_u.SetExecutedNodes(*v)
	}
	return _u
}

// AddExecutedNodes adds value to the "executed_nodes" field.
func (_u *ExecutionInstanceUpdate) AddExecutedNodes(v int) *ExecutionInstanceUpdate {
	_u.mutation.AddExecutedNodes(v)
	return _u
}

// SetFailedNodes sets the "failed_nodes" field.
func (_u *ExecutionInstanceUpdate) SetFailedNodes(v int) *ExecutionInstanceUpdate {
	_u.mutation.ResetFailedNodes()
	_u.mutation.SetFailedNodes(v)
	return _u
}

// SetNillableFailedNodes sets the "failed_nodes" field if the given value is not nil.
func (_u *ExecutionInstanceUpdate) SetNillableFailedNodes(v *int) *ExecutionInstanceUpdate {
	if v != nil {
		_u.SetFailedNodes(*v)
	}
	return _u
}

// AddFailedNodes adds value to the "failed_nodes" field.
func (_u *ExecutionInstanceUpdate) AddFailedNodes(v int) *ExecutionInstanceUpdate {
	_u.mutation.AddFailedNodes(v)
	return _u
}

// SetSkippedNodes sets the "skipped_nodes" field.
func (_u *ExecutionInstanceUpdate) SetSkippedNodes(v int) *ExecutionInstanceUpdate {
	_u.mutation.ResetSkippedNodes()
	_u.mutation.SetSkippedNodes(v)
	return _u
}

// SetNillableSkippedNodes sets the "skipped_nodes" field if the given value is not nil.
func (_u *ExecutionInstanceUpdate) SetNillableSkippedNodes(v *int) *ExecutionInstanceUpdate {
	if v != nil {
		_u.SetSkippedNodes(*v)
	}
	return _u
}

// AddSkippedNodes adds value to the "skipped_nodes" field.
func (_u *ExecutionInstanceUpdate) AddSkippedNodes(v int) *ExecutionInstanceUpdate {
	_u.mutation.AddSkippedNodes(v)
	return _u
}

// SetCurrentNodeID sets the "current_node_id" field.
func (_u *ExecutionInstanceUpdate) SetCurrentNodeID(v string) *ExecutionInstanceUpdate {
	_u.mutation.SetCurrentNodeID(v)
	return _u
}

// SetNillableCurrentNodeID sets the "current_node_id" field if the given value is not nil.
func (_u *ExecutionInstanceUpdate) SetNillableCurrentNodeID(v *string) *ExecutionInstanceUpdate {
	if v != nil {
		_u.SetCurrentNodeID(*v)
	}
	return _u
}

// ClearCurrentNodeID clears the value of the "current_node_id" field.
func (_u *ExecutionInstanceUpdate) ClearCurrentNodeID() *ExecutionInstanceUpdate {
	_u.mutation.ClearCurrentNodeID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionInstanceUpdate) SetStartedAt(v time.Time) *ExecutionInstanceUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionInstanceUpdate) SetNillableStartedAt(v *time.Time) *ExecutionInstanceUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionInstanceUpdate) SetCompletedAt(v time.Time) *ExecutionInstanceUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionInstanceUpdate) SetNillableCompletedAt(v *time.Time) *ExecutionInstanceUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionInstanceUpdate) ClearCompletedAt() *ExecutionInstanceUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionInstanceUpdate) SetDurationMs(v int64) *ExecutionInstanceUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionInstanceUpdate) SetNillableDurationMs(v *int64) *ExecutionInstanceUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionInstanceUpdate) AddDurationMs(v int64) *ExecutionInstanceUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ExecutionInstanceUpdate) ClearDurationMs() *ExecutionInstanceUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetGlobalVariablesSnapshot sets the "global_variables_snapshot" field.
func (_u *ExecutionInstanceUpdate) SetGlobalVariablesSnapshot(v map[string]models.Variable) *ExecutionInstanceUpdate {
	_u.mutation.SetGlobalVariablesSnapshot(v)
	return _u
}

// SetExecutionResults sets the "execution_results" field.
func (_u *ExecutionInstanceUpdate) SetExecutionResults(v map[string]models.NodeResult) *ExecutionInstanceUpdate {
	_u.mutation.SetExecutionResults(v)
	return _u
}

// ClearExecutionResults clears the value of the "execution_results" field.
func (_u *ExecutionInstanceUpdate) ClearExecutionResults() *ExecutionInstanceUpdate {
	_u.mutation.ClearExecutionResults()
	return _u
}

// AddLogIDs adds the "logs" edge to the ExecutionLog entity by IDs.
func (_u *ExecutionInstanceUpdate) AddLogIDs(ids ...string) *ExecutionInstanceUpdate {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the ExecutionLog entity.
func (_u *ExecutionInstanceUpdate) AddLogs(v ...*ExecutionLog) *ExecutionInstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the ExecutionInstanceMutation object of the builder.
func (_u *ExecutionInstanceUpdate) Mutation() *ExecutionInstanceMutation {
	return _u.mutation
}

// ClearLogs clears all "logs" edges to the ExecutionLog entity.
func (_u *ExecutionInstanceUpdate) ClearLogs() *ExecutionInstanceUpdate {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to ExecutionLog entities by IDs.
func (_u *ExecutionInstanceUpdate) RemoveLogIDs(ids ...string) *ExecutionInstanceUpdate {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to ExecutionLog entities.
func (_u *ExecutionInstanceUpdate) RemoveLogs(v ...*ExecutionLog) *ExecutionInstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionInstanceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionInstanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionInstanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionInstanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionInstanceUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := executioninstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionInstance.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionInstanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executioninstance.Table, executioninstance.Columns, sqlgraph.NewFieldSpec(executioninstance.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(executioninstance.FieldJobID, field.TypeString, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(executioninstance.FieldJobID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(executioninstance.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(executioninstance.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executioninstance.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalNodes(); ok {
		_spec.SetField(executioninstance.FieldTotalNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalNodes(); ok {
		_spec.AddField(executioninstance.FieldTotalNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExecutedNodes(); ok {
		_spec.SetField(executioninstance.FieldExecutedNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutedNodes(); ok {
		_spec.AddField(executioninstance.FieldExecutedNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedNodes(); ok {
		_spec.SetField(executioninstance.FieldFailedNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedNodes(); ok {
		_spec.AddField(executioninstance.FieldFailedNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkippedNodes(); ok {
		_spec.SetField(executioninstance.FieldSkippedNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkippedNodes(); ok {
		_spec.AddField(executioninstance.FieldSkippedNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentNodeID(); ok {
		_spec.SetField(executioninstance.FieldCurrentNodeID, field.TypeString, value)
	}
	if _u.mutation.CurrentNodeIDCleared() {
		_spec.ClearField(executioninstance.FieldCurrentNodeID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(executioninstance.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(executioninstance.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(executioninstance.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(executioninstance.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(executioninstance.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(executioninstance.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.GlobalVariablesSnapshot(); ok {
		_spec.SetField(executioninstance.FieldGlobalVariablesSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ExecutionResults(); ok {
		_spec.SetField(executioninstance.FieldExecutionResults, field.TypeJSON, value)
	}
	if _u.mutation.ExecutionResultsCleared() {
		_spec.ClearField(executioninstance.FieldExecutionResults, field.TypeJSON)
	}
	if _u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executioninstance.LogsTable,
			Columns: []string{executioninstance.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executioninstance.LogsTable,
			Columns: []string{executioninstance.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executioninstance.LogsTable,
			Columns: []string{executioninstance.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executioninstance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionInstanceUpdateOne is the builder for updating a single ExecutionInstance entity.
type ExecutionInstanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionInstanceMutation
}

// SetJobID sets the "job_id" field.
func (_u *ExecutionInstanceUpdateOne) SetJobID(v string) *ExecutionInstanceUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ExecutionInstanceUpdateOne) SetNillableJobID(v *string) *ExecutionInstanceUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *ExecutionInstanceUpdateOne) ClearJobID() *ExecutionInstanceUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExecutionInstanceUpdateOne) SetSessionID(v string) *ExecutionInstanceUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExecutionInstanceUpdateOne) SetNillableSessionID(v *string) *ExecutionInstanceUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ExecutionInstanceUpdateOne) ClearSessionID() *ExecutionInstanceUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionInstanceUpdateOne) SetStatus(v executioninstance.Status) *ExecutionInstanceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionInstanceUpdateOne) SetNillableStatus(v *executioninstance.Status) *ExecutionInstanceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalNodes sets the "total_nodes" field.
func (_u *ExecutionInstanceUpdateOne) SetTotalNodes(v int) *ExecutionInstanceUpdateOne {
	_u.mutation.ResetTotalNodes()
	_u.mutation.SetTotalNodes(v)
	return _u
}

// SetNillableTotalNodes sets the "total_nodes" field if the given value is not nil.
func (_u *ExecutionInstanceUpdateOne) SetNillableTotalNodes(v *int) *ExecutionInstanceUpdateOne {
	if v != nil {
		_u.SetTotalNodes(*v)
	}
	return _u
}

// AddTotalNodes adds value to the "total_nodes" field.
func (_u *ExecutionInstanceUpdateOne) AddTotalNodes(v int) *ExecutionInstanceUpdateOne {
	_u.mutation.AddTotalNodes(v)
	return _u
}

// SetExecutedNodes sets the "executed_nodes" field.
func (_u *ExecutionInstanceUpdateOne) SetExecutedNodes(v int) *ExecutionInstanceUpdateOne {
	_u.mutation.ResetExecutedNodes()
	_u.mutation.SetExecutedNodes(v)
	return _u
}

// SetNillableExecutedNodes sets the "executed_nodes" field if the given value is not nil.
func (_u *ExecutionInstanceUpdateOne) SetNillableExecutedNodes(v *int) *ExecutionInstanceUpdateOne {
	if v != nil {
		_u.SetExecutedNodes(*v)
	}
	return _u
}

// AddExecutedNodes adds value to the "executed_nodes" field.
func (_u *ExecutionInstanceUpdateOne) AddExecutedNodes(v int) *ExecutionInstanceUpdateOne {
	_u.mutation.AddExecutedNodes(v)
	return _u
}

// SetFailedNodes sets the "failed_nodes" field.
func (_u *ExecutionInstanceUpdateOne) SetFailedNodes(v int) *ExecutionInstanceUpdateOne {
	_u.mutation.ResetFailedNodes()
	_u.mutation.SetFailedNodes(v)
	return _u
}

// SetNillableFailedNodes sets the "failed_nodes" field if the given value is not nil.
func (_u *ExecutionInstanceUpdateOne) SetNillableFailedNodes(v *int) *ExecutionInstanceUpdateOne {
	if v != nil {
		_u.SetFailedNodes(*v)
	}
	return _u
}

// AddFailedNodes adds value to the "failed_nodes" field.
func (_u *ExecutionInstanceUpdateOne) AddFailedNodes(v int) *ExecutionInstanceUpdateOne {
	_u.mutation.AddFailedNodes(v)
	return _u
}

// SetSkippedNodes sets the "skipped_nodes" field.
func (_u *ExecutionInstanceUpdateOne) SetSkippedNodes(v int) *ExecutionInstanceUpdateOne {
	_u.mutation.ResetSkippedNodes()
	_u.mutation.SetSkippedNodes(v)
	return _u
}

// SetNillableSkippedNodes sets the "skipped_nodes" field if the given value is not nil.
func (_u *ExecutionInstanceUpdateOne) SetNillableSkippedNodes(v *int) *ExecutionInstanceUpdateOne {
	if v != nil {
		_u.SetSkippedNodes(*v)
	}
	return _u
}

// AddSkippedNodes adds value to the "skipped_nodes" field.
func (_u *ExecutionInstanceUpdateOne) AddSkippedNodes(v int) *ExecutionInstanceUpdateOne {
	_u.mutation.AddSkippedNodes(v)
	return _u
}

// SetCurrentNodeID sets the "current_node_id" field.
func (_u *ExecutionInstanceUpdateOne) SetCurrentNodeID(v string) *ExecutionInstanceUpdateOne {
	_u.mutation.SetCurrentNodeID(v)
	return _u
}

// SetNillableCurrentNodeID sets the "current_node_id" field if the given value is not nil.
func (_u *ExecutionInstanceUpdateOne) SetNillableCurrentNodeID(v *string) *ExecutionInstanceUpdateOne {
	if v != nil {
		_u.SetCurrentNodeID(*v)
	}
	return _u
}

// ClearCurrentNodeID clears the value of the "current_node_id" field.
func (_u *ExecutionInstanceUpdateOne) ClearCurrentNodeID() *ExecutionInstanceUpdateOne {
	_u.mutation.ClearCurrentNodeID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionInstanceUpdateOne) SetStartedAt(v time.Time) *ExecutionInstanceUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionInstanceUpdateOne) SetNillableStartedAt(v *time.Time) *ExecutionInstanceUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionInstanceUpdateOne) SetCompletedAt(v time.Time) *ExecutionInstanceUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionInstanceUpdateOne) SetNillableCompletedAt(v *time.Time) *ExecutionInstanceUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionInstanceUpdateOne) ClearCompletedAt() *ExecutionInstanceUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionInstanceUpdateOne) SetDurationMs(v int64) *ExecutionInstanceUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionInstanceUpdateOne) SetNillableDurationMs(v *int64) *ExecutionInstanceUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionInstanceUpdateOne) AddDurationMs(v int64) *ExecutionInstanceUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ExecutionInstanceUpdateOne) ClearDurationMs() *ExecutionInstanceUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetGlobalVariablesSnapshot sets the "global_variables_snapshot" field.
func (_u *ExecutionInstanceUpdateOne) SetGlobalVariablesSnapshot(v map[string]models.Variable) *ExecutionInstanceUpdateOne {
	_u.mutation.SetGlobalVariablesSnapshot(v)
	return _u
}

// SetExecutionResults sets the "execution_results" field.
func (_u *ExecutionInstanceUpdateOne) SetExecutionResults(v map[string]models.NodeResult) *ExecutionInstanceUpdateOne {
	_u.mutation.SetExecutionResults(v)
	return _u
}

// ClearExecutionResults clears the value of the "execution_results" field.
func (_u *ExecutionInstanceUpdateOne) ClearExecutionResults() *ExecutionInstanceUpdateOne {
	_u.mutation.ClearExecutionResults()
	return _u
}

// AddLogIDs adds the "logs" edge to the ExecutionLog entity by IDs.
func (_u *ExecutionInstanceUpdateOne) AddLogIDs(ids ...string) *ExecutionInstanceUpdateOne {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the ExecutionLog entity.
func (_u *ExecutionInstanceUpdateOne) AddLogs(v ...*ExecutionLog) *ExecutionInstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the ExecutionInstanceMutation object of the builder.
func (_u *ExecutionInstanceUpdateOne) Mutation() *ExecutionInstanceMutation {
	return _u.mutation
}

// ClearLogs clears all "logs" edges to the ExecutionLog entity.
func (_u *ExecutionInstanceUpdateOne) ClearLogs() *ExecutionInstanceUpdateOne {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to ExecutionLog entities by IDs.
func (_u *ExecutionInstanceUpdateOne) RemoveLogIDs(ids ...string) *ExecutionInstanceUpdateOne {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to ExecutionLog entities.
func (_u *ExecutionInstanceUpdateOne) RemoveLogs(v ...*ExecutionLog) *ExecutionInstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Where appends a list predicates to the ExecutionInstanceUpdate builder.
func (_u *ExecutionInstanceUpdateOne) Where(ps ...predicate.ExecutionInstance) *ExecutionInstanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionInstanceUpdateOne) Select(field string, fields ...string) *ExecutionInstanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionInstance entity.
func (_u *ExecutionInstanceUpdateOne) Save(ctx context.Context) (*ExecutionInstance, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionInstanceUpdateOne) SaveX(ctx context.Context) *ExecutionInstance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionInstanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionInstanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionInstanceUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := executioninstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionInstance.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionInstanceUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionInstance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executioninstance.Table, executioninstance.Columns, sqlgraph.NewFieldSpec(executioninstance.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionInstance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executioninstance.FieldID)
		for _, f := range fields {
			if !executioninstance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executioninstance.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(executioninstance.FieldJobID, field.TypeString, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(executioninstance.FieldJobID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(executioninstance.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(executioninstance.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executioninstance.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalNodes(); ok {
		_spec.SetField(executioninstance.FieldTotalNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalNodes(); ok {
		_spec.AddField(executioninstance.FieldTotalNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExecutedNodes(); ok {
		_spec.SetField(executioninstance.FieldExecutedNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutedNodes(); ok {
		_spec.AddField(executioninstance.FieldExecutedNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedNodes(); ok {
		_spec.SetField(executioninstance.FieldFailedNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedNodes(); ok {
		_spec.AddField(executioninstance.FieldFailedNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkippedNodes(); ok {
		_spec.SetField(executioninstance.FieldSkippedNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkippedNodes(); ok {
		_spec.AddField(executioninstance.FieldSkippedNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentNodeID(); ok {
		_spec.SetField(executioninstance.FieldCurrentNodeID, field.TypeString, value)
	}
	if _u.mutation.CurrentNodeIDCleared() {
		_spec.ClearField(executioninstance.FieldCurrentNodeID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(executioninstance.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(executioninstance.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(executioninstance.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(executioninstance.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(executioninstance.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(executioninstance.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.GlobalVariablesSnapshot(); ok {
		_spec.SetField(executioninstance.FieldGlobalVariablesSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ExecutionResults(); ok {
		_spec.SetField(executioninstance.FieldExecutionResults, field.TypeJSON, value)
	}
	if _u.mutation.ExecutionResultsCleared() {
		_spec.ClearField(executioninstance.FieldExecutionResults, field.TypeJSON)
	}
	if _u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executioninstance.LogsTable,
			Columns: []string{executioninstance.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executioninstance.LogsTable,
			Columns: []string{executioninstance.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executioninstance.LogsTable,
			Columns: []string{executioninstance.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExecutionInstance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executioninstance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
