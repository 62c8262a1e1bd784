// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/assessflow/pipeline/ent/response"
	"github.com/assessflow/pipeline/ent/session"
)

// ResponseCreate is the builder for creating a Response entity.
type ResponseCreate struct {
	config
	mutation *ResponseMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ResponseCreate) SetSessionID(v string) *ResponseCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *ResponseCreate) SetQuestionID(v int) *ResponseCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *ResponseCreate) SetQuestionText(v string) *ResponseCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *ResponseCreate) SetAnswer(v string) *ResponseCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetAnsweredAt sets the "answered_at" field.
func (_c *ResponseCreate) SetAnsweredAt(v time.Time) *ResponseCreate {
	_c.mutation.SetAnsweredAt(v)
	return _c
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_c *ResponseCreate) SetNillableAnsweredAt(v *time.Time) *ResponseCreate {
	if v != nil {
		_c.SetAnsweredAt(*v)
	}
	return _c
}

// SetTimeSpent sets the "time_spent" field.
func (_c *ResponseCreate) SetTimeSpent(v int) *ResponseCreate {
	_c.mutation.SetTimeSpent(v)
	return _c
}

// SetNillableTimeSpent sets the "time_spent" field if the given value is not nil.
func (_c *ResponseCreate) SetNillableTimeSpent(v *int) *ResponseCreate {
	if v != nil {
		_c.SetTimeSpent(*v)
	}
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *ResponseCreate) SetTokenCount(v int) *ResponseCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_c *ResponseCreate) SetNillableTokenCount(v *int) *ResponseCreate {
	if v != nil {
		_c.SetTokenCount(*v)
	}
	return _c
}

// SetCharCount sets the "char_count" field.
func (_c *ResponseCreate) SetCharCount(v int) *ResponseCreate {
	_c.mutation.SetCharCount(v)
	return _c
}

// SetNillableCharCount sets the "char_count" field if the given value is not nil.
func (_c *ResponseCreate) SetNillableCharCount(v *int) *ResponseCreate {
	if v != nil {
		_c.SetCharCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResponseCreate) SetID(v string) *ResponseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *ResponseCreate) SetSession(v *Session) *ResponseCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the ResponseMutation object of the builder.
func (_c *ResponseCreate) Mutation() *ResponseMutation {
	return _c.mutation
}

// Save creates the Response in the database.
func (_c *ResponseCreate) Save(ctx context.Context) (*Response, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResponseCreate) SaveX(ctx context.Context) *Response {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResponseCreate) defaults() {
	if _, ok := _c.mutation.AnsweredAt(); !ok {
		v := response.DefaultAnsweredAt()
		_c.mutation.SetAnsweredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResponseCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Response.session_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Response.question_id"`)}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "Response.question_text"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "Response.answer"`)}
	}
	if _, ok := _c.mutation.AnsweredAt(); !ok {
		return &ValidationError{Name: "answered_at", err: errors.New(`ent: missing required field "Response.answered_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Response.session"`)}
	}
	return nil
}

func (_c *ResponseCreate) sqlSave(ctx context.Context) (*Response, error) {
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
			return nil, fmt.Errorf("unexpected Response.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResponseCreate) createSpec() (*Response, *sqlgraph.CreateSpec) {
	var (
		_node = &Response{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(response.Table, sqlgraph.NewFieldSpec(response.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(response.FieldQuestionID, field.TypeInt, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(response.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(response.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.AnsweredAt(); ok {
		_spec.SetField(response.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = value
	}
	if value, ok := _c.mutation.TimeSpent(); ok {
		_spec.SetField(response.FieldTimeSpent, field.TypeInt, value)
		_node.TimeSpent = &value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(response.FieldTokenCount, field.TypeInt, value)
		_node.TokenCount = &value
	}
	if value, ok := _c.mutation.CharCount(); ok {
		_spec.SetField(response.FieldCharCount, field.TypeInt, value)
		_node.CharCount = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   response.SessionTable,
			Columns: []string{response.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ResponseCreateBulk is the builder for creating many Response entities in bulk.
type ResponseCreateBulk struct {
	config
	err      error
	builders []*ResponseCreate
}

// Save creates the Response entities in the database.
func (_c *ResponseCreateBulk) Save(ctx context.Context) ([]*Response, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Response, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResponseMutation)
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
func (_c *ResponseCreateBulk) SaveX(ctx context.Context) []*Response {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
