// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/assessflow/pipeline/ent/executioninstance"
	"github.com/assessflow/pipeline/ent/executionlog"
	"github.com/assessflow/pipeline/pkg/models"
)

// ExecutionInstanceCreate is the builder for creating a ExecutionInstance entity.
type ExecutionInstanceCreate struct {
	config
	mutation *ExecutionInstanceMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *ExecutionInstanceCreate) SetProjectID(v string) *ExecutionInstanceCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *ExecutionInstanceCreate) SetJobID(v string) *ExecutionInstanceCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *ExecutionInstanceCreate) SetNillableJobID(v *string) *ExecutionInstanceCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ExecutionInstanceCreate) SetSessionID(v string) *ExecutionInstanceCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *ExecutionInstanceCreate) SetNillableSessionID(v *string) *ExecutionInstanceCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionInstanceCreate) SetStatus(v executioninstance.Status) *ExecutionInstanceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExecutionInstanceCreate) SetNillableStatus(v *executioninstance.Status) *ExecutionInstanceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalNodes sets the "total_nodes" field.
func (_c *ExecutionInstanceCreate) SetTotalNodes(v int) *ExecutionInstanceCreate {
	_c.mutation.SetTotalNodes(v)
	return _c
}

// SetExecutedNodes sets the "executed_nodes" field.
func (_c *ExecutionInstanceCreate) SetExecutedNodes(v int) *ExecutionInstanceCreate {
	_c.mutation.SetExecutedNodes(v)
	return _c
}

// SetNillableExecutedNodes sets the "executed_nodes" field if the given value is not nil.
func (_c *ExecutionInstanceCreate) SetNillableExecutedNodes(v *int) *ExecutionInstanceCreate {
	if v != nil {
		_c.SetExecutedNodes(*v)
	}
	return _c
}

// SetFailedNodes sets the "failed_nodes" field.
func (_c *ExecutionInstanceCreate) SetFailedNodes(v int) *ExecutionInstanceCreate {
	_c.mutation.SetFailedNodes(v)
	return _c
}

// SetNillableFailedNodes sets the "failed_nodes" field if the given value is not nil.
func (_c *ExecutionInstanceCreate) SetNillableFailedNodes(v *int) *ExecutionInstanceCreate {
	if v != nil {
		_c.SetFailedNodes(*v)
	}
	return _c
}

// SetSkippedNodes sets the "skipped_nodes" field.
func (_c *ExecutionInstanceCreate) SetSkippedNodes(v int) *ExecutionInstanceCreate {
	_c.mutation.SetSkippedNodes(v)
	return _c
}

// SetNillableSkippedNodes sets the "skipped_nodes" field if the given value is not nil.
func (_c *ExecutionInstanceCreate) SetNillableSkippedNodes(v *int) *ExecutionInstanceCreate {
	if v != nil {
		_c.SetSkippedNodes(*v)
	}
	return _c
}

// SetCurrentNodeID sets the "current_node_id" field.
func (_c *ExecutionInstanceCreate) SetCurrentNodeID(v string) *ExecutionInstanceCreate {
	_c.mutation.SetCurrentNodeID(v)
	return _c
}

// SetNillableCurrentNodeID sets the "current_node_id" field if the given value is not nil.
func (_c *ExecutionInstanceCreate) SetNillableCurrentNodeID(v *string) *ExecutionInstanceCreate {
	if v != nil {
		_c.SetCurrentNodeID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExecutionInstanceCreate) SetStartedAt(v time.Time) *ExecutionInstanceCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExecutionInstanceCreate) SetNillableStartedAt(v *time.Time) *ExecutionInstanceCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ExecutionInstanceCreate) SetCompletedAt(v time.Time) *ExecutionInstanceCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ExecutionInstanceCreate) SetNillableCompletedAt(v *time.Time) *ExecutionInstanceCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ExecutionInstanceCreate) SetDurationMs(v int64) *ExecutionInstanceCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ExecutionInstanceCreate) SetNillableDurationMs(v *int64) *ExecutionInstanceCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetGlobalVariablesSnapshot sets the "global_variables_snapshot" field.
func (_c *ExecutionInstanceCreate) SetGlobalVariablesSnapshot(v map[string]models.Variable) *ExecutionInstanceCreate {
	_c.mutation.SetGlobalVariablesSnapshot(v)
	return _c
}

// SetExecutionResults sets the "execution_results" field.
func (_c *ExecutionInstanceCreate) SetExecutionResults(v map[string]models.NodeResult) *ExecutionInstanceCreate {
	_c.mutation.SetExecutionResults(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionInstanceCreate) SetID(v string) *ExecutionInstanceCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddLogIDs adds the "logs" edge to the ExecutionLog entity by IDs.
func (_c *ExecutionInstanceCreate) AddLogIDs(ids ...string) *ExecutionInstanceCreate {
	_c.mutation.AddLogIDs(ids...)
	return _c
}

// AddLogs adds the "logs" edges to the ExecutionLog entity.
func (_c *ExecutionInstanceCreate) AddLogs(v ...*ExecutionLog) *ExecutionInstanceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogIDs(ids...)
}

// Mutation returns the ExecutionInstanceMutation object of the builder.
func (_c *ExecutionInstanceCreate) Mutation() *ExecutionInstanceMutation {
	return _c.mutation
}

// Save creates the ExecutionInstance in the database.
func (_c *ExecutionInstanceCreate) Save(ctx context.Context) (*ExecutionInstance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionInstanceCreate) SaveX(ctx context.Context) *ExecutionInstance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionInstanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionInstanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionInstanceCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := executioninstance.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ExecutedNodes(); !ok {
		v := executioninstance.DefaultExecutedNodes
		_c.mutation.SetExecutedNodes(v)
	}
	if _, ok := _c.mutation.FailedNodes(); !ok {
		v := executioninstance.DefaultFailedNodes
		_c.mutation.SetFailedNodes(v)
	}
	if _, ok := _c.mutation.SkippedNodes(); !ok {
		v := executioninstance.DefaultSkippedNodes
		_c.mutation.SetSkippedNodes(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := executioninstance.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionInstanceCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ExecutionInstance.project_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExecutionInstance.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := executioninstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionInstance.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalNodes(); !ok {
		return &ValidationError{Name: "total_nodes", err: errors.New(`ent: missing required field "ExecutionInstance.total_nodes"`)}
	}
	if _, ok := _c.mutation.ExecutedNodes(); !ok {
		return &ValidationError{Name: "executed_nodes", err: errors.New(`ent: missing required field "ExecutionInstance.executed_nodes"`)}
	}
	if _, ok := _c.mutation.FailedNodes(); !ok {
		return &ValidationError{Name: "failed_nodes", err: errors.New(`ent: missing required field "ExecutionInstance.failed_nodes"`)}
	}
	if _, ok := _c.mutation.SkippedNodes(); !ok {
		return &ValidationError{Name: "skipped_nodes", err: errors.New(`ent: missing required field "ExecutionInstance.skipped_nodes"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ExecutionInstance.started_at"`)}
	}
	if _, ok := _c.mutation.GlobalVariablesSnapshot(); !ok {
		return &ValidationError{Name: "global_variables_snapshot", err: errors.New(`ent: missing required field "ExecutionInstance.global_variables_snapshot"`)}
	}
	return nil
}

func (_c *ExecutionInstanceCreate) sqlSave(ctx context.Context) (*ExecutionInstance, error) {
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
			return nil, fmt.Errorf("unexpected ExecutionInstance.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionInstanceCreate) createSpec() (*ExecutionInstance, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionInstance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executioninstance.Table, sqlgraph.NewFieldSpec(executioninstance.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(executioninstance.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(executioninstance.FieldJobID, field.TypeString, value)
		_node.JobID = &value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(executioninstance.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(executioninstance.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalNodes(); ok {
		_spec.SetField(executioninstance.FieldTotalNodes, field.TypeInt, value)
		_node.TotalNodes = value
	}
	if value, ok := _c.mutation.ExecutedNodes(); ok {
		_spec.SetField(executioninstance.FieldExecutedNodes, field.TypeInt, value)
		_node.ExecutedNodes = value
	}
	if value, ok := _c.mutation.FailedNodes(); ok {
		_spec.SetField(executioninstance.FieldFailedNodes, field.TypeInt, value)
		_node.FailedNodes = value
	}
	if value, ok := _c.mutation.SkippedNodes(); ok {
		_spec.SetField(executioninstance.FieldSkippedNodes, field.TypeInt, value)
		_node.SkippedNodes = value
	}
	if value, ok := _c.mutation.CurrentNodeID(); ok {
		_spec.SetField(executioninstance.FieldCurrentNodeID, field.TypeString, value)
		_node.CurrentNodeID = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(executioninstance.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(executioninstance.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(executioninstance.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.GlobalVariablesSnapshot(); ok {
		_spec.SetField(executioninstance.FieldGlobalVariablesSnapshot, field.TypeJSON, value)
		_node.GlobalVariablesSnapshot = value
	}
	if value, ok := _c.mutation.ExecutionResults(); ok {
		_spec.SetField(executioninstance.FieldExecutionResults, field.TypeJSON, value)
		_node.ExecutionResults = value
	}
	if nodes := _c.mutation.LogsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExecutionInstanceCreateBulk is the builder for creating many ExecutionInstance entities in bulk.
type ExecutionInstanceCreateBulk struct {
	config
	err      error
	builders []*ExecutionInstanceCreate
}

// Save creates the ExecutionInstance entities in the database.
func (_c *ExecutionInstanceCreateBulk) Save(ctx context.Context) ([]*ExecutionInstance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionInstance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionInstanceMutation)
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
func (_c *ExecutionInstanceCreateBulk) SaveX(ctx context.Context) []*ExecutionInstance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionInstanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionInstanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
