// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/assessflow/pipeline/ent/globalvariable"
	"github.com/assessflow/pipeline/ent/predicate"
)

// GlobalVariableUpdate is the builder for updating GlobalVariable entities.
type GlobalVariableUpdate struct {
	config
	hooks    []Hook
	mutation *GlobalVariableMutation
}

// Where appends a list predicates to the GlobalVariableUpdate builder.
func (_u *GlobalVariableUpdate) Where(ps ...predicate.GlobalVariable) *GlobalVariableUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *GlobalVariableUpdate) SetName(v string) *GlobalVariableUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *GlobalVariableUpdate) SetNillableName(v *string) *GlobalVariableUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *GlobalVariableUpdate) SetValue(v string) *GlobalVariableUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *GlobalVariableUpdate) SetNillableValue(v *string) *GlobalVariableUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *GlobalVariableUpdate) SetType(v string) *GlobalVariableUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *GlobalVariableUpdate) SetNillableType(v *string) *GlobalVariableUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// ClearType clears the value of the "type" field.
func (_u *GlobalVariableUpdate) ClearType() *GlobalVariableUpdate {
	_u.mutation.ClearType()
	return _u
}

// SetDescription sets the "description" field.
func (_u *GlobalVariableUpdate) SetDescription(v string) *GlobalVariableUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *GlobalVariableUpdate) SetNillableDescription(v *string) *GlobalVariableUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *GlobalVariableUpdate) ClearDescription() *GlobalVariableUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetFolder sets the "folder" field.
func (_u *GlobalVariableUpdate) SetFolder(v string) *GlobalVariableUpdate {
	_u.mutation.SetFolder(v)
	return _u
}

// SetNillableFolder sets the "folder" field if the given value is not nil.
func (_u *GlobalVariableUpdate) SetNillableFolder(v *string) *GlobalVariableUpdate {
	if v != nil {
		_u.SetFolder(*v)
	}
	return _u
}

// ClearFolder clears the value of the "folder" field.
func (_u *GlobalVariableUpdate) ClearFolder() *GlobalVariableUpdate {
	_u.mutation.ClearFolder()
	return _u
}

// Mutation returns the GlobalVariableMutation object of the builder.
func (_u *GlobalVariableUpdate) Mutation() *GlobalVariableMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GlobalVariableUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GlobalVariableUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GlobalVariableUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GlobalVariableUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GlobalVariableUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GlobalVariable.project"`)
	}
	return nil
}

func (_u *GlobalVariableUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(globalvariable.Table, globalvariable.Columns, sqlgraph.NewFieldSpec(globalvariable.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(globalvariable.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(globalvariable.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(globalvariable.FieldType, field.TypeString, value)
	}
	if _u.mutation.TypeCleared() {
		_spec.ClearField(globalvariable.FieldType, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(globalvariable.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(globalvariable.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Folder(); ok {
		_spec.SetField(globalvariable.FieldFolder, field.TypeString, value)
	}
	if _u.mutation.FolderCleared() {
		_spec.ClearField(globalvariable.FieldFolder, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{globalvariable.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GlobalVariableUpdateOne is the builder for updating a single GlobalVariable entity.
type GlobalVariableUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GlobalVariableMutation
}

// SetName sets the "name" field.
func (_u *GlobalVariableUpdateOne) SetName(v string) *GlobalVariableUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *GlobalVariableUpdateOne) SetNillableName(v *string) *GlobalVariableUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *GlobalVariableUpdateOne) SetValue(v string) *GlobalVariableUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *GlobalVariableUpdateOne) SetNillableValue(v *string) *GlobalVariableUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *GlobalVariableUpdateOne) SetType(v string) *GlobalVariableUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *GlobalVariableUpdateOne) SetNillableType(v *string) *GlobalVariableUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// ClearType clears the value of the "type" field.
func (_u *GlobalVariableUpdateOne) ClearType() *GlobalVariableUpdateOne {
	_u.mutation.ClearType()
	return _u
}

// SetDescription sets the "description" field.
func (_u *GlobalVariableUpdateOne) SetDescription(v string) *GlobalVariableUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *GlobalVariableUpdateOne) SetNillableDescription(v *string) *GlobalVariableUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *GlobalVariableUpdateOne) ClearDescription() *GlobalVariableUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetFolder sets the "folder" field.
func (_u *GlobalVariableUpdateOne) SetFolder(v string) *GlobalVariableUpdateOne {
	_u.mutation.SetFolder(v)
	return _u
}

// SetNillableFolder sets the "folder" field if the given value is not nil.
func (_u *GlobalVariableUpdateOne) SetNillableFolder(v *string) *GlobalVariableUpdateOne {
	if v != nil {
		_u.SetFolder(*v)
	}
	return _u
}

// ClearFolder clears the value of the "folder" field.
func (_u *GlobalVariableUpdateOne) ClearFolder() *GlobalVariableUpdateOne {
	_u.mutation.ClearFolder()
	return _u
}

// Mutation returns the GlobalVariableMutation object of the builder.
func (_u *GlobalVariableUpdateOne) Mutation() *GlobalVariableMutation {
	return _u.mutation
}

// Where appends a list predicates to the GlobalVariableUpdate builder.
func (_u *GlobalVariableUpdateOne) Where(ps ...predicate.GlobalVariable) *GlobalVariableUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GlobalVariableUpdateOne) Select(field string, fields ...string) *GlobalVariableUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GlobalVariable entity.
func (_u *GlobalVariableUpdateOne) Save(ctx context.Context) (*GlobalVariable, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GlobalVariableUpdateOne) SaveX(ctx context.Context) *GlobalVariable {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GlobalVariableUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GlobalVariableUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GlobalVariableUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GlobalVariable.project"`)
	}
	return nil
}

func (_u *GlobalVariableUpdateOne) sqlSave(ctx context.Context) (_node *GlobalVariable, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(globalvariable.Table, globalvariable.Columns, sqlgraph.NewFieldSpec(globalvariable.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GlobalVariable.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, globalvariable.FieldID)
		for _, f := range fields {
			if !globalvariable.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != globalvariable.FieldID {
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
		_spec.SetField(globalvariable.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(globalvariable.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(globalvariable.FieldType, field.TypeString, value)
	}
	if _u.mutation.TypeCleared() {
		_spec.ClearField(globalvariable.FieldType, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(globalvariable.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(globalvariable.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Folder(); ok {
		_spec.SetField(globalvariable.FieldFolder, field.TypeString, value)
	}
	if _u.mutation.FolderCleared() {
		_spec.ClearField(globalvariable.FieldFolder, field.TypeString)
	}
	_node = &GlobalVariable{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{globalvariable.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
