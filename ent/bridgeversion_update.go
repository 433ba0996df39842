// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/attune-health/attune/ent/bridgeversion"
	"github.com/attune-health/attune/ent/predicate"
)

// BridgeVersionUpdate is the builder for updating BridgeVersion entities.
type BridgeVersionUpdate struct {
	config
	hooks    []Hook
	mutation *BridgeVersionMutation
}

// Where appends a list predicates to the BridgeVersionUpdate builder.
func (_u *BridgeVersionUpdate) Where(ps ...predicate.BridgeVersion) *BridgeVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMetadataID sets the "metadata_id" field.
func (_u *BridgeVersionUpdate) SetMetadataID(v int) *BridgeVersionUpdate {
	_u.mutation.ResetMetadataID()
	_u.mutation.SetMetadataID(v)
	return _u
}

// SetNillableMetadataID sets the "metadata_id" field if the given value is not nil.
func (_u *BridgeVersionUpdate) SetNillableMetadataID(v *int) *BridgeVersionUpdate {
	if v != nil {
		_u.SetMetadataID(*v)
	}
	return _u
}

// AddMetadataID adds value to the "metadata_id" field.
func (_u *BridgeVersionUpdate) AddMetadataID(v int) *BridgeVersionUpdate {
	_u.mutation.AddMetadataID(v)
	return _u
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (_u *BridgeVersionUpdate) ClearMetadataID() *BridgeVersionUpdate {
	_u.mutation.ClearMetadataID()
	return _u
}

// Mutation returns the BridgeVersionMutation object of the builder.
func (_u *BridgeVersionUpdate) Mutation() *BridgeVersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BridgeVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BridgeVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BridgeVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BridgeVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BridgeVersionUpdate) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BridgeVersion.patient"`)
	}
	return nil
}

func (_u *BridgeVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bridgeversion.Table, bridgeversion.Columns, sqlgraph.NewFieldSpec(bridgeversion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MetadataID(); ok {
		_spec.SetField(bridgeversion.FieldMetadataID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMetadataID(); ok {
		_spec.AddField(bridgeversion.FieldMetadataID, field.TypeInt, value)
	}
	if _u.mutation.MetadataIDCleared() {
		_spec.ClearField(bridgeversion.FieldMetadataID, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bridgeversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BridgeVersionUpdateOne is the builder for updating a single BridgeVersion entity.
type BridgeVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BridgeVersionMutation
}

// SetMetadataID sets the "metadata_id" field.
func (_u *BridgeVersionUpdateOne) SetMetadataID(v int) *BridgeVersionUpdateOne {
	_u.mutation.ResetMetadataID()
	_u.mutation.SetMetadataID(v)
	return _u
}

// SetNillableMetadataID sets the "metadata_id" field if the given value is not nil.
func (_u *BridgeVersionUpdateOne) SetNillableMetadataID(v *int) *BridgeVersionUpdateOne {
	if v != nil {
		_u.SetMetadataID(*v)
	}
	return _u
}

// AddMetadataID adds value to the "metadata_id" field.
func (_u *BridgeVersionUpdateOne) AddMetadataID(v int) *BridgeVersionUpdateOne {
	_u.mutation.AddMetadataID(v)
	return _u
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (_u *BridgeVersionUpdateOne) ClearMetadataID() *BridgeVersionUpdateOne {
	_u.mutation.ClearMetadataID()
	return _u
}

// Mutation returns the BridgeVersionMutation object of the builder.
func (_u *BridgeVersionUpdateOne) Mutation() *BridgeVersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the BridgeVersionUpdate builder.
func (_u *BridgeVersionUpdateOne) Where(ps ...predicate.BridgeVersion) *BridgeVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BridgeVersionUpdateOne) Select(field string, fields ...string) *BridgeVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BridgeVersion entity.
func (_u *BridgeVersionUpdateOne) Save(ctx context.Context) (*BridgeVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BridgeVersionUpdateOne) SaveX(ctx context.Context) *BridgeVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BridgeVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BridgeVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BridgeVersionUpdateOne) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BridgeVersion.patient"`)
	}
	return nil
}

func (_u *BridgeVersionUpdateOne) sqlSave(ctx context.Context) (_node *BridgeVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bridgeversion.Table, bridgeversion.Columns, sqlgraph.NewFieldSpec(bridgeversion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BridgeVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bridgeversion.FieldID)
		for _, f := range fields {
			if !bridgeversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bridgeversion.FieldID {
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
		_spec.SetField(bridgeversion.FieldMetadataID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMetadataID(); ok {
		_spec.AddField(bridgeversion.FieldMetadataID, field.TypeInt, value)
	}
	if _u.mutation.MetadataIDCleared() {
		_spec.ClearField(bridgeversion.FieldMetadataID, field.TypeInt)
	}
	_node = &BridgeVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bridgeversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
