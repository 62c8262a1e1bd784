// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/assessflow/pipeline/ent/batch"
)

// BatchCreate is the builder for creating a Batch entity.
type BatchCreate struct {
	config
	mutation *BatchMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *BatchCreate) SetProjectID(v string) *BatchCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *BatchCreate) SetName(v string) *BatchCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetOutputDir sets the "output_dir" field.
func (_c *BatchCreate) SetOutputDir(v string) *BatchCreate {
	_c.mutation.SetOutputDir(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BatchCreate) SetStatus(v batch.Status) *BatchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BatchCreate) SetNillableStatus(v *batch.Status) *BatchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalJobs sets the "total_jobs" field.
func (_c *BatchCreate) SetTotalJobs(v int) *BatchCreate {
	_c.mutation.SetTotalJobs(v)
	return _c
}

// SetCompletedJobs sets the "completed_jobs" field.
func (_c *BatchCreate) SetCompletedJobs(v int) *BatchCreate {
	_c.mutation.SetCompletedJobs(v)
	return _c
}

// SetNillableCompletedJobs sets the "completed_jobs" field if the given value is not nil.
func (_c *BatchCreate) SetNillableCompletedJobs(v *int) *BatchCreate {
	if v != nil {
		_c.SetCompletedJobs(*v)
	}
	return _c
}

// SetFailedJobs sets the "failed_jobs" field.
func (_c *BatchCreate) SetFailedJobs(v int) *BatchCreate {
	_c.mutation.SetFailedJobs(v)
	return _c
}

// SetNillableFailedJobs sets the "failed_jobs" field if the given value is not nil.
func (_c *BatchCreate) SetNillableFailedJobs(v *int) *BatchCreate {
	if v != nil {
		_c.SetFailedJobs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BatchCreate) SetCreatedAt(v time.Time) *BatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BatchCreate) SetNillableCreatedAt(v *time.Time) *BatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *BatchCreate) SetCompletedAt(v time.Time) *BatchCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *BatchCreate) SetNillableCompletedAt(v *time.Time) *BatchCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BatchCreate) SetID(v string) *BatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BatchMutation object of the builder.
func (_c *BatchCreate) Mutation() *BatchMutation {
	return _c.mutation
}

// Save creates the Batch in the database.
func (_c *BatchCreate) Save(ctx context.Context) (*Batch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BatchCreate) SaveX(ctx context.Context) *Batch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BatchCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := batch.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CompletedJobs(); !ok {
		v := batch.DefaultCompletedJobs
		_c.mutation.SetCompletedJobs(v)
	}
	if _, ok := _c.mutation.FailedJobs(); !ok {
		v := batch.DefaultFailedJobs
		_c.mutation.SetFailedJobs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := batch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BatchCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Batch.project_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Batch.name"`)}
	}
	if _, ok := _c.mutation.OutputDir(); !ok {
		return &ValidationError{Name: "output_dir", err: errors.New(`ent: missing required field "Batch.output_dir"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Batch.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalJobs(); !ok {
		return &ValidationError{Name: "total_jobs", err: errors.New(`ent: missing required field "Batch.total_jobs"`)}
	}
	if _, ok := _c.mutation.CompletedJobs(); !ok {
		return &ValidationError{Name: "completed_jobs", err: errors.New(`ent: missing required field "Batch.completed_jobs"`)}
	}
	if _, ok := _c.mutation.FailedJobs(); !ok {
		return &ValidationError{Name: "failed_jobs", err: errors.New(`ent: missing required field "Batch.failed_jobs"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Batch.created_at"`)}
	}
	return nil
}

func (_c *BatchCreate) sqlSave(ctx context.Context) (*Batch, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Batch.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BatchCreate) createSpec() (*Batch, *sqlgraph.CreateSpec) {
	var (
		_node = &Batch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(batch.Table, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(batch.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(batch.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.OutputDir(); ok {
		_spec.SetField(batch.FieldOutputDir, field.TypeString, value)
		_node.OutputDir = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalJobs(); ok {
		_spec.SetField(batch.FieldTotalJobs, field.TypeInt, value)
		_node.TotalJobs = value
	}
	if value, ok := _c.mutation.CompletedJobs(); ok {
		_spec.SetField(batch.FieldCompletedJobs, field.TypeInt, value)
		_node.CompletedJobs = value
	}
	if value, ok := _c.mutation.FailedJobs(); ok {
		_spec.SetField(batch.FieldFailedJobs, field.TypeInt, value)
		_node.FailedJobs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(batch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(batch.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// BatchCreateBulk is the builder for creating many Batch entities in bulk.
type BatchCreateBulk struct {
	config
	err      error
	builders []*BatchCreate
}

// Save creates the Batch entities in the database.
func (_c *BatchCreateBulk) Save(ctx context.Context) ([]*Batch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Batch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatchMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BatchCreateBulk) SaveX(ctx context.Context) []*Batch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
