// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/assessflow/pipeline/ent/globalvariable"
	"github.com/assessflow/pipeline/ent/project"
)

// GlobalVariableCreate is the builder for creating a GlobalVariable entity.
type GlobalVariableCreate struct {
	config
	mutation *GlobalVariableMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *GlobalVariableCreate) SetProjectID(v string) *GlobalVariableCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *GlobalVariableCreate) SetName(v string) *GlobalVariableCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *GlobalVariableCreate) SetValue(v string) *GlobalVariableCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_c *GlobalVariableCreate) SetNillableValue(v *string) *GlobalVariableCreate {
	if v != nil {
		_c.SetValue(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *GlobalVariableCreate) SetType(v string) *GlobalVariableCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *GlobalVariableCreate) SetNillableType(v *string) *GlobalVariableCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *GlobalVariableCreate) SetDescription(v string) *GlobalVariableCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *GlobalVariableCreate) SetNillableDescription(v *string) *GlobalVariableCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetFolder sets the "folder" field.
func (_c *GlobalVariableCreate) SetFolder(v string) *GlobalVariableCreate {
	_c.mutation.SetFolder(v)
	return _c
}

// SetNillableFolder sets the "folder" field if the given value is not nil.
func (_c *GlobalVariableCreate) SetNillableFolder(v *string) *GlobalVariableCreate {
	if v != nil {
		_c.SetFolder(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GlobalVariableCreate) SetID(v string) *GlobalVariableCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *GlobalVariableCreate) SetProject(v *Project) *GlobalVariableCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the GlobalVariableMutation object of the builder.
func (_c *GlobalVariableCreate) Mutation() *GlobalVariableMutation {
	return _c.mutation
}

// Save creates the GlobalVariable in the database.
func (_c *GlobalVariableCreate) Save(ctx context.Context) (*GlobalVariable, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GlobalVariableCreate) SaveX(ctx context.Context) *GlobalVariable {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GlobalVariableCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GlobalVariableCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GlobalVariableCreate) defaults() {
	if _, ok := _c.mutation.Value(); !ok {
		v := globalvariable.DefaultValue
		_c.mutation.SetValue(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GlobalVariableCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "GlobalVariable.project_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "GlobalVariable.name"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "GlobalVariable.value"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "GlobalVariable.project"`)}
	}
	return nil
}

func (_c *GlobalVariableCreate) sqlSave(ctx context.Context) (*GlobalVariable, error) {
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
			return nil, fmt.Errorf("unexpected GlobalVariable.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GlobalVariableCreate) createSpec() (*GlobalVariable, *sqlgraph.CreateSpec) {
	var (
		_node = &GlobalVariable{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(globalvariable.Table, sqlgraph.NewFieldSpec(globalvariable.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(globalvariable.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(globalvariable.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(globalvariable.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(globalvariable.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Folder(); ok {
		_spec.SetField(globalvariable.FieldFolder, field.TypeString, value)
		_node.Folder = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   globalvariable.ProjectTable,
			Columns: []string{globalvariable.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GlobalVariableCreateBulk is the builder for creating many GlobalVariable entities in bulk.
type GlobalVariableCreateBulk struct {
	config
	err      error
	builders []*GlobalVariableCreate
}

// Save creates the GlobalVariable entities in the database.
func (_c *GlobalVariableCreateBulk) Save(ctx context.Context) ([]*GlobalVariable, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GlobalVariable, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GlobalVariableMutation)
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
func (_c *GlobalVariableCreateBulk) SaveX(ctx context.Context) []*GlobalVariable {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GlobalVariableCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GlobalVariableCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
