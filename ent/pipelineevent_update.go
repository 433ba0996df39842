// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/attune-health/attune/ent/pipelineevent"
	"github.com/attune-health/attune/ent/predicate"
)

// PipelineEventUpdate is the builder for updating PipelineEvent entities.
type PipelineEventUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineEventMutation
}

// Where appends a list predicates to the PipelineEventUpdate builder.
func (_u *PipelineEventUpdate) Where(ps ...predicate.PipelineEvent) *PipelineEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDetails sets the "details" field.
func (_u *PipelineEventUpdate) SetDetails(v map[string]interface{}) *PipelineEventUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *PipelineEventUpdate) ClearDetails() *PipelineEventUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// SetConsumed sets the "consumed" field.
func (_u *PipelineEventUpdate) SetConsumed(v bool) *PipelineEventUpdate {
	_u.mutation.SetConsumed(v)
	return _u
}

// SetNillableConsumed sets the "consumed" field if the given value is not nil.
func (_u *PipelineEventUpdate) SetNillableConsumed(v *bool) *PipelineEventUpdate {
	if v != nil {
		_u.SetConsumed(*v)
	}
	return _u
}

// Mutation returns the PipelineEventMutation object of the builder.
func (_u *PipelineEventUpdate) Mutation() *PipelineEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineEventUpdate) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineEvent.patient"`)
	}
	return nil
}

func (_u *PipelineEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelineevent.Table, pipelineevent.Columns, sqlgraph.NewFieldSpec(pipelineevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(pipelineevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(pipelineevent.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(pipelineevent.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.Consumed(); ok {
		_spec.SetField(pipelineevent.FieldConsumed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelineevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineEventUpdateOne is the builder for updating a single PipelineEvent entity.
type PipelineEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineEventMutation
}

// SetDetails sets the "details" field.
func (_u *PipelineEventUpdateOne) SetDetails(v map[string]interface{}) *PipelineEventUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *PipelineEventUpdateOne) ClearDetails() *PipelineEventUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// SetConsumed sets the "consumed" field.
func (_u *PipelineEventUpdateOne) SetConsumed(v bool) *PipelineEventUpdateOne {
	_u.mutation.SetConsumed(v)
	return _u
}

// SetNillableConsumed sets the "consumed" field if the given value is not nil.
func (_u *PipelineEventUpdateOne) SetNillableConsumed(v *bool) *PipelineEventUpdateOne {
	if v != nil {
		_u.SetConsumed(*v)
	}
	return _u
}

// Mutation returns the PipelineEventMutation object of the builder.
func (_u *PipelineEventUpdateOne) Mutation() *PipelineEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineEventUpdate builder.
func (_u *PipelineEventUpdateOne) Where(ps ...predicate.PipelineEvent) *PipelineEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineEventUpdateOne) Select(field string, fields ...string) *PipelineEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineEvent entity.
func (_u *PipelineEventUpdateOne) Save(ctx context.Context) (*PipelineEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineEventUpdateOne) SaveX(ctx context.Context) *PipelineEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineEventUpdateOne) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineEvent.patient"`)
	}
	return nil
}

func (_u *PipelineEventUpdateOne) sqlSave(ctx context.Context) (_node *PipelineEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelineevent.Table, pipelineevent.Columns, sqlgraph.NewFieldSpec(pipelineevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelineevent.FieldID)
		for _, f := range fields {
			if !pipelineevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelineevent.FieldID {
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
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(pipelineevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(pipelineevent.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(pipelineevent.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.Consumed(); ok {
		_spec.SetField(pipelineevent.FieldConsumed, field.TypeBool, value)
	}
	_node = &PipelineEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelineevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
