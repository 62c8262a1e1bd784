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
	"github.com/assessflow/pipeline/ent/batch"
	"github.com/assessflow/pipeline/ent/predicate"
)

// BatchUpdate is the builder for updating Batch entities.
type BatchUpdate struct {
	config
	hooks    []Hook
	mutation *BatchMutation
}

// Where appends a list predicates to the BatchUpdate builder.
func (_u *BatchUpdate) Where(ps ...predicate.Batch) *BatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *BatchUpdate) SetName(v string) *BatchUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableName(v *string) *BatchUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOutputDir sets the "output_dir" field.
func (_u *BatchUpdate) SetOutputDir(v string) *BatchUpdate {
	_u.mutation.SetOutputDir(v)
	return _u
}

// SetNillableOutputDir sets the "output_dir" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableOutputDir(v *string) *BatchUpdate {
	if v != nil {
		_u.SetOutputDir(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchUpdate) SetStatus(v batch.Status) *BatchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableStatus(v *batch.Status) *BatchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalJobs sets the "total_jobs" field.
func (_u *BatchUpdate) SetTotalJobs(v int) *BatchUpdate {
	_u.mutation.ResetTotalJobs()
	_u.mutation.SetTotalJobs(v)
	return _u
}

// SetNillableTotalJobs sets the "total_jobs" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableTotalJobs(v *int) *BatchUpdate {
	if v != nil {
		_u.SetTotalJobs(*v)
	}
	return _u
}

// AddTotalJobs adds value to the "total_jobs" field.
func (_u *BatchUpdate) AddTotalJobs(v int) *BatchUpdate {
	_u.mutation.AddTotalJobs(v)
	return _u
}

// SetCompletedJobs sets the "completed_jobs" field.
func (_u *BatchUpdate) SetCompletedJobs(v int) *BatchUpdate {
	_u.mutation.ResetCompletedJobs()
	_u.mutation.SetCompletedJobs(v)
	return _u
}

// SetNillableCompletedJobs sets the "completed_jobs" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableCompletedJobs(v *int) *BatchUpdate {
	if v != nil {
		_u.SetCompletedJobs(*v)
	}
	return _u
}

// AddCompletedJobs adds value to the "completed_jobs" field.
func (_u *BatchUpdate) AddCompletedJobs(v int) *BatchUpdate {
	_u.mutation.AddCompletedJobs(v)
	return _u
}

// SetFailedJobs sets the "failed_jobs" field.
func (_u *BatchUpdate) SetFailedJobs(v int) *BatchUpdate {
	_u.mutation.ResetFailedJobs()
	_u.mutation.SetFailedJobs(v)
	return _u
}

// SetNillableFailedJobs sets the "failed_jobs" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableFailedJobs(v *int) *BatchUpdate {
	if v != nil {
		_u.SetFailedJobs(*v)
	}
	return _u
}

// AddFailedJobs adds value to the "failed_jobs" field.
func (_u *BatchUpdate) AddFailedJobs(v int) *BatchUpdate {
	_u.mutation.AddFailedJobs(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BatchUpdate) SetCreatedAt(v time.Time) *BatchUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableCreatedAt(v *time.Time) *BatchUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BatchUpdate) SetCompletedAt(v time.Time) *BatchUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableCompletedAt(v *time.Time) *BatchUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BatchUpdate) ClearCompletedAt() *BatchUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the BatchMutation object of the builder.
func (_u *BatchUpdate) Mutation() *BatchMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batch.Table, batch.Columns, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(batch.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputDir(); ok {
		_spec.SetField(batch.FieldOutputDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalJobs(); ok {
		_spec.SetField(batch.FieldTotalJobs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalJobs(); ok {
		_spec.AddField(batch.FieldTotalJobs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedJobs(); ok {
		_spec.SetField(batch.FieldCompletedJobs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedJobs(); ok {
		_spec.AddField(batch.FieldCompletedJobs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedJobs(); ok {
		_spec.SetField(batch.FieldFailedJobs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedJobs(); ok {
		_spec.AddField(batch.FieldFailedJobs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(batch.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(batch.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(batch.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatchUpdateOne is the builder for updating a single Batch entity.
type BatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchMutation
}

// SetName sets the "name" field.
func (_u *BatchUpdateOne) SetName(v string) *BatchUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableName(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOutputDir sets the "output_dir" field.
func (_u *BatchUpdateOne) SetOutputDir(v string) *BatchUpdateOne {
	_u.mutation.SetOutputDir(v)
	return _u
}

// SetNillableOutputDir sets the "output_dir" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableOutputDir(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetOutputDir(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchUpdateOne) SetStatus(v batch.Status) *BatchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableStatus(v *batch.Status) *BatchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalJobs sets the "total_jobs" field.
func (_u *BatchUpdateOne) SetTotalJobs(v int) *BatchUpdateOne {
	_u.mutation.ResetTotalJobs()
	_u.mutation.SetTotalJobs(v)
	return _u
}

// SetNillableTotalJobs sets the "total_jobs" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableTotalJobs(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetTotalJobs(*v)
	}
	return _u
}

// AddTotalJobs adds value to the "total_jobs" field.
func (_u *BatchUpdateOne) AddTotalJobs(v int) *BatchUpdateOne {
	_u.mutation.AddTotalJobs(v)
	return _u
}

// SetCompletedJobs sets the "completed_jobs" field.
func (_u *BatchUpdateOne) SetCompletedJobs(v int) *BatchUpdateOne {
	_u.mutation.ResetCompletedJobs()
	_u.mutation.SetCompletedJobs(v)
	return _u
}

// SetNillableCompletedJobs sets the "completed_jobs" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableCompletedJobs(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetCompletedJobs(*v)
	}
	return _u
}

// AddCompletedJobs adds value to the "completed_jobs" field.
func (_u *BatchUpdateOne) AddCompletedJobs(v int) *BatchUpdateOne {
	_u.mutation.AddCompletedJobs(v)
	return _u
}

// SetFailedJobs sets the "failed_jobs" field.
func (_u *BatchUpdateOne) SetFailedJobs(v int) *BatchUpdateOne {
	_u.mutation.ResetFailedJobs()
	_u.mutation.SetFailedJobs(v)
	return _u
}

// SetNillableFailedJobs sets the "failed_jobs" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableFailedJobs(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetFailedJobs(*v)
	}
	return _u
}

// AddFailedJobs adds value to the "failed_jobs" field.
func (_u *BatchUpdateOne) AddFailedJobs(v int) *BatchUpdateOne {
	_u.mutation.AddFailedJobs(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BatchUpdateOne) SetCreatedAt(v time.Time) *BatchUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableCreatedAt(v *time.Time) *BatchUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BatchUpdateOne) SetCompletedAt(v time.Time) *BatchUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableCompletedAt(v *time.Time) *BatchUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BatchUpdateOne) ClearCompletedAt() *BatchUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the BatchMutation object of the builder.
func (_u *BatchUpdateOne) Mutation() *BatchMutation {
	return _u.mutation
}

// Where appends a list predicates to the BatchUpdate builder.
func (_u *BatchUpdateOne) Where(ps ...predicate.Batch) *BatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatchUpdateOne) Select(field string, fields ...string) *BatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Batch entity.
func (_u *BatchUpdateOne) Save(ctx context.Context) (*Batch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchUpdateOne) SaveX(ctx context.Context) *Batch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchUpdateOne) sqlSave(ctx context.Context) (_node *Batch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batch.Table, batch.Columns, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Batch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batch.FieldID)
		for _, f := range fields {
			if !batch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batch.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(batch.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputDir(); ok {
		_spec.SetField(batch.FieldOutputDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalJobs(); ok {
		_spec.SetField(batch.FieldTotalJobs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalJobs(); ok {
		_spec.AddField(batch.FieldTotalJobs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedJobs(); ok {
		_spec.SetField(batch.FieldCompletedJobs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedJobs(); ok {
		_spec.AddField(batch.FieldCompletedJobs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedJobs(); ok {
		_spec.SetField(batch.FieldFailedJobs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedJobs(); ok {
		_spec.AddField(batch.FieldFailedJobs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(batch.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(batch.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(batch.FieldCompletedAt, field.TypeTime)
	}
	_node = &Batch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
