// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/assessflow/pipeline/ent/globalvariable"
	"github.com/assessflow/pipeline/ent/predicate"
)

// GlobalVariableDelete is the builder for deleting a GlobalVariable entity.
type GlobalVariableDelete struct {
	config
	hooks    []Hook
	mutation *GlobalVariableMutation
}

// Where appends a list predicates to the GlobalVariableDelete builder.
func (_d *GlobalVariableDelete) Where(ps ...predicate.GlobalVariable) *GlobalVariableDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GlobalVariableDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GlobalVariableDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GlobalVariableDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(globalvariable.Table, sqlgraph.NewFieldSpec(globalvariable.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// GlobalVariableDeleteOne is the builder for deleting a single GlobalVariable entity.
type GlobalVariableDeleteOne struct {
	_d *GlobalVariableDelete
}

// Where appends a list predicates to the GlobalVariableDelete builder.
func (_d *GlobalVariableDeleteOne) Where(ps ...predicate.GlobalVariable) *GlobalVariableDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GlobalVariableDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{globalvariable.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GlobalVariableDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
