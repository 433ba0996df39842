// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/attune-health/attune/ent/journeyversion"
	"github.com/attune-health/attune/ent/predicate"
)

// JourneyVersionUpdate is the builder for updating JourneyVersion entities.
type JourneyVersionUpdate struct {
	config
	hooks    []Hook
	mutation *JourneyVersionMutation
}

// Where appends a list predicates to the JourneyVersionUpdate builder.
func (_u *JourneyVersionUpdate) Where(ps ...predicate.JourneyVersion) *JourneyVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMetadataID sets the "metadata_id" field.
func (_u *JourneyVersionUpdate) SetMetadataID(v int) *JourneyVersionUpdate {
	_u.mutation.ResetMetadataID()
	_u.mutation.SetMetadataID(v)
	return _u
}

// SetNillableMetadataID sets the "metadata_id" field if the given value is not nil.
func (_u *JourneyVersionUpdate) SetNillableMetadataID(v *int) *JourneyVersionUpdate {
	if v != nil {
		_u.SetMetadataID(*v)
	}
	return _u
}

// AddMetadataID adds value to the "metadata_id" field.
func (_u *JourneyVersionUpdate) AddMetadataID(v int) *JourneyVersionUpdate {
	_u.mutation.AddMetadataID(v)
	return _u
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (_u *JourneyVersionUpdate) ClearMetadataID() *JourneyVersionUpdate {
	_u.mutation.ClearMetadataID()
	return _u
}

// Mutation returns the JourneyVersionMutation object of the builder.
func (_u *JourneyVersionUpdate) Mutation() *JourneyVersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JourneyVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JourneyVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JourneyVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JourneyVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JourneyVersionUpdate) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JourneyVersion.patient"`)
	}
	return nil
}

func (_u *JourneyVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(journeyversion.Table, journeyversion.Columns, sqlgraph.NewFieldSpec(journeyversion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MetadataID(); ok {
		_spec.SetField(journeyversion.FieldMetadataID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMetadataID(); ok {
		_spec.AddField(journeyversion.FieldMetadataID, field.TypeInt, value)
	}
	if _u.mutation.MetadataIDCleared() {
		_spec.ClearField(journeyversion.FieldMetadataID, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journeyversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JourneyVersionUpdateOne is the builder for updating a single JourneyVersion entity.
type JourneyVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JourneyVersionMutation
}

// SetMetadataID sets the "metadata_id" field.
func (_u *JourneyVersionUpdateOne) SetMetadataID(v int) *JourneyVersionUpdateOne {
	_u.mutation.ResetMetadataID()
	_u.mutation.SetMetadataID(v)
	return _u
}

// SetNillableMetadataID sets the "metadata_id" field if the given value is not nil.
func (_u *JourneyVersionUpdateOne) SetNillableMetadataID(v *int) *JourneyVersionUpdateOne {
	if v != nil {
		_u.SetMetadataID(*v)
	}
	return _u
}

// AddMetadataID adds value to the "metadata_id" field.
func (_u *JourneyVersionUpdateOne) AddMetadataID(v int) *JourneyVersionUpdateOne {
	_u.mutation.AddMetadataID(v)
	return _u
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (_u *JourneyVersionUpdateOne) ClearMetadataID() *JourneyVersionUpdateOne {
	_u.mutation.ClearMetadataID()
	return _u
}

// Mutation returns the JourneyVersionMutation object of the builder.
func (_u *JourneyVersionUpdateOne) Mutation() *JourneyVersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the JourneyVersionUpdate builder.
func (_u *JourneyVersionUpdateOne) Where(ps ...predicate.JourneyVersion) *JourneyVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JourneyVersionUpdateOne) Select(field string, fields ...string) *JourneyVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JourneyVersion entity.
func (_u *JourneyVersionUpdateOne) Save(ctx context.Context) (*JourneyVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JourneyVersionUpdateOne) SaveX(ctx context.Context) *JourneyVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JourneyVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JourneyVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JourneyVersionUpdateOne) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JourneyVersion.patient"`)
	}
	return nil
}

func (_u *JourneyVersionUpdateOne) sqlSave(ctx context.Context) (_node *JourneyVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(journeyversion.Table, journeyversion.Columns, sqlgraph.NewFieldSpec(journeyversion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JourneyVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, journeyversion.FieldID)
		for _, f := range fields {
			if !journeyversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != journeyversion.FieldID {
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
	if value, ok := _u.mutation.MetadataID(); ok {
		_spec.SetField(journeyversion.FieldMetadataID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMetadataID(); ok {
		_spec.AddField(journeyversion.FieldMetadataID, field.TypeInt, value)
	}
	if _u.mutation.MetadataIDCleared() {
		_spec.ClearField(journeyversion.FieldMetadataID, field.TypeInt)
	}
	_node = &JourneyVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journeyversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
