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
	"github.com/assessflow/pipeline/ent/predicate"
	"github.com/assessflow/pipeline/ent/response"
)

// ResponseUpdate is the builder for updating Response entities.
type ResponseUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseMutation
}

// Where appends a list predicates to the ResponseUpdate builder.
func (_u *ResponseUpdate) Where(ps ...predicate.Response) *ResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ResponseUpdate) SetQuestionID(v int) *ResponseUpdate {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableQuestionID(v *int) *ResponseUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *ResponseUpdate) AddQuestionID(v int) *ResponseUpdate {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *ResponseUpdate) SetQuestionText(v string) *ResponseUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableQuestionText(v *string) *ResponseUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ResponseUpdate) SetAnswer(v string) *ResponseUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableAnswer(v *string) *ResponseUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *ResponseUpdate) SetAnsweredAt(v time.Time) *ResponseUpdate {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableAnsweredAt(v *time.Time) *ResponseUpdate {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// SetTimeSpent sets the "time_spent" field.
func (_u *ResponseUpdate) SetTimeSpent(v int) *ResponseUpdate {
	_u.mutation.ResetTimeSpent()
	_u.mutation.SetTimeSpent(v)
	return _u
}

// SetNillableTimeSpent sets the "time_spent" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableTimeSpent(v *int) *ResponseUpdate {
	if v != nil {
		_u.SetTimeSpent(*v)
	}
	return _u
}

// AddTimeSpent adds value to the "time_spent" field.
func (_u *ResponseUpdate) AddTimeSpent(v int) *ResponseUpdate {
	_u.mutation.AddTimeSpent(v)
	return _u
}

// ClearTimeSpent clears the value of the "time_spent" field.
func (_u *ResponseUpdate) ClearTimeSpent() *ResponseUpdate {
	_u.mutation.ClearTimeSpent()
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *ResponseUpdate) SetTokenCount(v int) *ResponseUpdate {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableTokenCount(v *int) *ResponseUpdate {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *ResponseUpdate) AddTokenCount(v int) *ResponseUpdate {
	_u.mutation.AddTokenCount(v)
	return _u
}

// ClearTokenCount clears the value of the "token_count" field.
func (_u *ResponseUpdate) ClearTokenCount() *ResponseUpdate {
	_u.mutation.ClearTokenCount()
	return _u
}

// SetCharCount sets the "char_count" field.
func (_u *ResponseUpdate) SetCharCount(v int) *ResponseUpdate {
	_u.mutation.ResetCharCount()
	_u.mutation.SetCharCount(v)
	return _u
}

// SetNillableCharCount sets the "char_count" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableCharCount(v *int) *ResponseUpdate {
	if v != nil {
		_u.SetCharCount(*v)
	}
	return _u
}

// AddCharCount adds value to the "char_count" field.
func (_u *ResponseUpdate) AddCharCount(v int) *ResponseUpdate {
	_u.mutation.AddCharCount(v)
	return _u
}

// ClearCharCount clears the value of the "char_count" field.
func (_u *ResponseUpdate) ClearCharCount() *ResponseUpdate {
	_u.mutation.ClearCharCount()
	return _u
}

// Mutation returns the ResponseMutation object of the builder.
func (_u *ResponseUpdate) Mutation() *ResponseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Response.session"`)
	}
	return nil
}

func (_u *ResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(response.Table, response.Columns, sqlgraph.NewFieldSpec(response.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(response.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(response.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(response.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(response.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(response.FieldAnsweredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeSpent(); ok {
		_spec.SetField(response.FieldTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpent(); ok {
		_spec.AddField(response.FieldTimeSpent, field.TypeInt, value)
	}
	if _u.mutation.TimeSpentCleared() {
		_spec.ClearField(response.FieldTimeSpent, field.TypeInt)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(response.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(response.FieldTokenCount, field.TypeInt, value)
	}
	if _u.mutation.TokenCountCleared() {
		_spec.ClearField(response.FieldTokenCount, field.TypeInt)
	}
	if value, ok := _u.mutation.CharCount(); ok {
		_spec.SetField(response.FieldCharCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCharCount(); ok {
		_spec.AddField(response.FieldCharCount, field.TypeInt, value)
	}
	if _u.mutation.CharCountCleared() {
		_spec.ClearField(response.FieldCharCount, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{response.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseUpdateOne is the builder for updating a single Response entity.
type ResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *ResponseUpdateOne) SetQuestionID(v int) *ResponseUpdateOne {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableQuestionID(v *int) *ResponseUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *ResponseUpdateOne) AddQuestionID(v int) *ResponseUpdateOne {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *ResponseUpdateOne) SetQuestionText(v string) *ResponseUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableQuestionText(v *string) *ResponseUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ResponseUpdateOne) SetAnswer(v string) *ResponseUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableAnswer(v *string) *ResponseUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *ResponseUpdateOne) SetAnsweredAt(v time.Time) *ResponseUpdateOne {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableAnsweredAt(v *time.Time) *ResponseUpdateOne {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// SetTimeSpent sets the "time_spent" field.
func (_u *ResponseUpdateOne) SetTimeSpent(v int) *ResponseUpdateOne {
	_u.mutation.ResetTimeSpent()
	_u.mutation.SetTimeSpent(v)
	return _u
}

// SetNillableTimeSpent sets the "time_spent" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableTimeSpent(v *int) *ResponseUpdateOne {
	if v != nil {
		_u.SetTimeSpent(*v)
	}
	return _u
}

// AddTimeSpent adds value to the "time_spent" field.
func (_u *ResponseUpdateOne) AddTimeSpent(v int) *ResponseUpdateOne {
	_u.mutation.AddTimeSpent(v)
	return _u
}

// ClearTimeSpent clears the value of the "time_spent" field.
func (_u *ResponseUpdateOne) ClearTimeSpent() *ResponseUpdateOne {
	_u.mutation.ClearTimeSpent()
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *ResponseUpdateOne) SetTokenCount(v int) *ResponseUpdateOne {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableTokenCount(v *int) *ResponseUpdateOne {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *ResponseUpdateOne) AddTokenCount(v int) *ResponseUpdateOne {
	_u.mutation.AddTokenCount(v)
	return _u
}

// ClearTokenCount clears the value of the "token_count" field.
func (_u *ResponseUpdateOne) ClearTokenCount() *ResponseUpdateOne {
	_u.mutation.ClearTokenCount()
	return _u
}

// SetCharCount sets the "char_count" field.
func (_u *ResponseUpdateOne) SetCharCount(v int) *ResponseUpdateOne {
	_u.mutation.ResetCharCount()
	_u.mutation.SetCharCount(v)
	return _u
}

// SetNillableCharCount sets the "char_count" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableCharCount(v *int) *ResponseUpdateOne {
	if v != nil {
		_u.SetCharCount(*v)
	}
	return _u
}

// AddCharCount adds value to the "char_count" field.
func (_u *ResponseUpdateOne) AddCharCount(v int) *ResponseUpdateOne {
	_u.mutation.AddCharCount(v)
	return _u
}

// ClearCharCount clears the value of the "char_count" field.
func (_u *ResponseUpdateOne) ClearCharCount() *ResponseUpdateOne {
	_u.mutation.ClearCharCount()
	return _u
}

// Mutation returns the ResponseMutation object of the builder.
func (_u *ResponseUpdateOne) Mutation() *ResponseMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResponseUpdate builder.
func (_u *ResponseUpdateOne) Where(ps ...predicate.Response) *ResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseUpdateOne) Select(field string, fields ...string) *ResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Response entity.
func (_u *ResponseUpdateOne) Save(ctx context.Context) (*Response, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseUpdateOne) SaveX(ctx context.Context) *Response {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Response.session"`)
	}
	return nil
}

func (_u *ResponseUpdateOne) sqlSave(ctx context.Context) (_node *Response, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(response.Table, response.Columns, sqlgraph.NewFieldSpec(response.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Response.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, response.FieldID)
		for _, f := range fields {
			if !response.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != response.FieldID {
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
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(response.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(response.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(response.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(response.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(response.FieldAnsweredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeSpent(); ok {
		_spec.SetField(response.FieldTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpent(); ok {
		_spec.AddField(response.FieldTimeSpent, field.TypeInt, value)
	}
	if _u.mutation.TimeSpentCleared() {
		_spec.ClearField(response.FieldTimeSpent, field.TypeInt)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(response.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(response.FieldTokenCount, field.TypeInt, value)
	}
	if _u.mutation.TokenCountCleared() {
		_spec.ClearField(response.FieldTokenCount, field.TypeInt)
	}
	if value, ok := _u.mutation.CharCount(); ok {
		_spec.SetField(response.FieldCharCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCharCount(); ok {
		_spec.AddField(response.FieldCharCount, field.TypeInt, value)
	}
	if _u.mutation.CharCountCleared() {
		_spec.ClearField(response.FieldCharCount, field.TypeInt)
	}
	_node = &Response{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{response.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
