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
	"github.com/assessflow/pipeline/ent/job"
	"github.com/assessflow/pipeline/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *JobUpdate) SetSessionID(v string) *JobUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSessionID(v *string) *JobUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *JobUpdate) ClearSessionID() *JobUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetPipelineKind sets the "pipeline_kind" field.
func (_u *JobUpdate) SetPipelineKind(v string) *JobUpdate {
	_u.mutation.SetPipelineKind(v)
	return _u
}

// SetNillablePipelineKind sets the "pipeline_kind" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePipelineKind(v *string) *JobUpdate {
	if v != nil {
		_u.SetPipelineKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v job.Status) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *job.Status) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *JobUpdate) SetWorkerID(v string) *JobUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableWorkerID(v *string) *JobUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *JobUpdate) ClearWorkerID() *JobUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetLeaseDeadline sets the "lease_deadline" field.
func (_u *JobUpdate) SetLeaseDeadline(v time.Time) *JobUpdate {
	_u.mutation.SetLeaseDeadline(v)
	return _u
}

// SetNillableLeaseDeadline sets the "lease_deadline" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLeaseDeadline(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLeaseDeadline(*v)
	}
	return _u
}

// ClearLeaseDeadline clears the value of the "lease_deadline" field.
func (_u *JobUpdate) ClearLeaseDeadline() *JobUpdate {
	_u.mutation.ClearLeaseDeadline()
	return _u
}

// SetRetries sets the "retries" field.
func (_u *JobUpdate) SetRetries(v int) *JobUpdate {
	_u.mutation.ResetRetries()
	_u.mutation.SetRetries(v)
	return _u
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRetries(v *int) *JobUpdate {
	if v != nil {
		_u.SetRetries(*v)
	}
	return _u
}

// AddRetries adds value to the "retries" field.
func (_u *JobUpdate) AddRetries(v int) *JobUpdate {
	_u.mutation.AddRetries(v)
	return _u
}

// SetInitialVariables sets the "initial_variables" field.
func (_u *JobUpdate) SetInitialVariables(v map[string]string) *JobUpdate {
	_u.mutation.SetInitialVariables(v)
	return _u
}

// ClearInitialVariables clears the value of the "initial_variables" field.
func (_u *JobUpdate) ClearInitialVariables() *JobUpdate {
	_u.mutation.ClearInitialVariables()
	return _u
}

// SetErrorText sets the "error_text" field.
func (_u *JobUpdate) SetErrorText(v string) *JobUpdate {
	_u.mutation.SetErrorText(v)
	return _u
}

// SetNillableErrorText sets the "error_text" field if the given value is not nil.
func (_u *JobUpdate) SetNillableErrorText(v *string) *JobUpdate {
	if v != nil {
		_u.SetErrorText(*v)
	}
	return _u
}

// ClearErrorText clears the value of the "error_text" field.
func (_u *JobUpdate) ClearErrorText() *JobUpdate {
	_u.mutation.ClearErrorText()
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *JobUpdate) SetBatchID(v string) *JobUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableBatchID(v *string) *JobUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *JobUpdate) ClearBatchID() *JobUpdate {
	_u.mutation.ClearBatchID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdate) SetCreatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCreatedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(job.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(job.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.PipelineKind(); ok {
		_spec.SetField(job.FieldPipelineKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(job.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(job.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseDeadline(); ok {
		_spec.SetField(job.FieldLeaseDeadline, field.TypeTime, value)
	}
	if _u.mutation.LeaseDeadlineCleared() {
		_spec.ClearField(job.FieldLeaseDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.Retries(); ok {
		_spec.SetField(job.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetries(); ok {
		_spec.AddField(job.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InitialVariables(); ok {
		_spec.SetField(job.FieldInitialVariables, field.TypeJSON, value)
	}
	if _u.mutation.InitialVariablesCleared() {
		_spec.ClearField(job.FieldInitialVariables, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorText(); ok {
		_spec.SetField(job.FieldErrorText, field.TypeString, value)
	}
	if _u.mutation.ErrorTextCleared() {
		_spec.ClearField(job.FieldErrorText, field.TypeString)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(job.FieldBatchID, field.TypeString, value)
	}
	if _u.mutation.BatchIDCleared() {
		_spec.ClearField(job.FieldBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetSessionID sets the "session_id" field.
func (_u *JobUpdateOne) SetSessionID(v string) *JobUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSessionID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *JobUpdateOne) ClearSessionID() *JobUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetPipelineKind sets the "pipeline_kind" field.
func (_u *JobUpdateOne) SetPipelineKind(v string) *JobUpdateOne {
	_u.mutation.SetPipelineKind(v)
	return _u
}

// SetNillablePipelineKind sets the "pipeline_kind" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePipelineKind(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetPipelineKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v job.Status) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *job.Status) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *JobUpdateOne) SetWorkerID(v string) *JobUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableWorkerID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *JobUpdateOne) ClearWorkerID() *JobUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetLeaseDeadline sets the "lease_deadline" field.
func (_u *JobUpdateOne) SetLeaseDeadline(v time.Time) *JobUpdateOne {
	_u.mutation.SetLeaseDeadline(v)
	return _u
}

// SetNillableLeaseDeadline sets the "lease_deadline" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLeaseDeadline(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLeaseDeadline(*v)
	}
	return _u
}

// ClearLeaseDeadline clears the value of the "lease_deadline" field.
func (_u *JobUpdateOne) ClearLeaseDeadline() *JobUpdateOne {
	_u.mutation.ClearLeaseDeadline()
	return _u
}

// SetRetries sets the "retries" field.
func (_u *JobUpdateOne) SetRetries(v int) *JobUpdateOne {
	_u.mutation.ResetRetries()
	_u.mutation.SetRetries(v)
	return _u
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRetries(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetRetries(*v)
	}
	return _u
}

// AddRetries adds value to the "retries" field.
func (_u *JobUpdateOne) AddRetries(v int) *JobUpdateOne {
	_u.mutation.AddRetries(v)
	return _u
}

// SetInitialVariables sets the "initial_variables" field.
func (_u *JobUpdateOne) SetInitialVariables(v map[string]string) *JobUpdateOne {
	_u.mutation.SetInitialVariables(v)
	return _u
}

// ClearInitialVariables clears the value of the "initial_variables" field.
func (_u *JobUpdateOne) ClearInitialVariables() *JobUpdateOne {
	_u.mutation.ClearInitialVariables()
	return _u
}

// SetErrorText sets the "error_text" field.
func (_u *JobUpdateOne) SetErrorText(v string) *JobUpdateOne {
	_u.mutation.SetErrorText(v)
	return _u
}

// SetNillableErrorText sets the "error_text" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableErrorText(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetErrorText(*v)
	}
	return _u
}

// ClearErrorText clears the value of the "error_text" field.
func (_u *JobUpdateOne) ClearErrorText() *JobUpdateOne {
	_u.mutation.ClearErrorText()
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *JobUpdateOne) SetBatchID(v string) *JobUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableBatchID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *JobUpdateOne) ClearBatchID() *JobUpdateOne {
	_u.mutation.ClearBatchID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdateOne) SetCreatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCreatedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(job.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(job.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.PipelineKind(); ok {
		_spec.SetField(job.FieldPipelineKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(job.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(job.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseDeadline(); ok {
		_spec.SetField(job.FieldLeaseDeadline, field.TypeTime, value)
	}
	if _u.mutation.LeaseDeadlineCleared() {
		_spec.ClearField(job.FieldLeaseDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.Retries(); ok {
		_spec.SetField(job.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetries(); ok {
		_spec.AddField(job.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InitialVariables(); ok {
		_spec.SetField(job.FieldInitialVariables, field.TypeJSON, value)
	}
	if _u.mutation.InitialVariablesCleared() {
		_spec.ClearField(job.FieldInitialVariables, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorText(); ok {
		_spec.SetField(job.FieldErrorText, field.TypeString, value)
	}
	if _u.mutation.ErrorTextCleared() {
		_spec.ClearField(job.FieldErrorText, field.TypeString)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(job.FieldBatchID, field.TypeString, value)
	}
	if _u.mutation.BatchIDCleared() {
		_spec.ClearField(job.FieldBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
