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
	"github.com/attune-health/attune/ent/patientbridge"
	"github.com/attune-health/attune/ent/predicate"
)

// PatientBridgeUpdate is the builder for updating PatientBridge entities.
type PatientBridgeUpdate struct {
	config
	hooks    []Hook
	mutation *PatientBridgeMutation
}

// Where appends a list predicates to the PatientBridgeUpdate builder.
func (_u *PatientBridgeUpdate) Where(ps ...predicate.PatientBridge) *PatientBridgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetData sets the "data" field.
func (_u *PatientBridgeUpdate) SetData(v map[string]interface{}) *PatientBridgeUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *PatientBridgeUpdate) SetVersion(v int) *PatientBridgeUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PatientBridgeUpdate) SetNillableVersion(v *int) *PatientBridgeUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PatientBridgeUpdate) AddVersion(v int) *PatientBridgeUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetMetadataID sets the "metadata_id" field.
func (_u *PatientBridgeUpdate) SetMetadataID(v int) *PatientBridgeUpdate {
	_u.mutation.ResetMetadataID()
	_u.mutation.SetMetadataID(v)
	return _u
}

// SetNillableMetadataID sets the "metadata_id" field if the given value is not nil.
func (_u *PatientBridgeUpdate) SetNillableMetadataID(v *int) *PatientBridgeUpdate {
	if v != nil {
		_u.SetMetadataID(*v)
	}
	return _u
}

// AddMetadataID adds value to the "metadata_id" field.
func (_u *PatientBridgeUpdate) AddMetadataID(v int) *PatientBridgeUpdate {
	_u.mutation.AddMetadataID(v)
	return _u
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (_u *PatientBridgeUpdate) ClearMetadataID() *PatientBridgeUpdate {
	_u.mutation.ClearMetadataID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientBridgeUpdate) SetUpdatedAt(v time.Time) *PatientBridgeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PatientBridgeMutation object of the builder.
func (_u *PatientBridgeUpdate) Mutation() *PatientBridgeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientBridgeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientBridgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientBridgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientBridgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientBridgeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientbridge.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PatientBridgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(patientbridge.Table, patientbridge.Columns, sqlgraph.NewFieldSpec(patientbridge.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(patientbridge.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(patientbridge.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(patientbridge.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MetadataID(); ok {
		_spec.SetField(patientbridge.FieldMetadataID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMetadataID(); ok {
		_spec.AddField(patientbridge.FieldMetadataID, field.TypeInt, value)
	}
	if _u.mutation.MetadataIDCleared() {
		_spec.ClearField(patientbridge.FieldMetadataID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patientbridge.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientbridge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientBridgeUpdateOne is the builder for updating a single PatientBridge entity.
type PatientBridgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientBridgeMutation
}

// SetData sets the "data" field.
func (_u *PatientBridgeUpdateOne) SetData(v map[string]interface{}) *PatientBridgeUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *PatientBridgeUpdateOne) SetVersion(v int) *PatientBridgeUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PatientBridgeUpdateOne) SetNillableVersion(v *int) *PatientBridgeUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PatientBridgeUpdateOne) AddVersion(v int) *PatientBridgeUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetMetadataID sets the "metadata_id" field.
func (_u *PatientBridgeUpdateOne) SetMetadataID(v int) *PatientBridgeUpdateOne {
	_u.mutation.ResetMetadataID()
	_u.mutation.SetMetadataID(v)
	return _u
}

// SetNillableMetadataID sets the "metadata_id" field if the given value is not nil.
func (_u *PatientBridgeUpdateOne) SetNillableMetadataID(v *int) *PatientBridgeUpdateOne {
	if v != nil {
		_u.SetMetadataID(*v)
	}
	return _u
}

// AddMetadataID adds value to the "metadata_id" field.
func (_u *PatientBridgeUpdateOne) AddMetadataID(v int) *PatientBridgeUpdateOne {
	_u.mutation.AddMetadataID(v)
	return _u
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (_u *PatientBridgeUpdateOne) ClearMetadataID() *PatientBridgeUpdateOne {
	_u.mutation.ClearMetadataID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientBridgeUpdateOne) SetUpdatedAt(v time.Time) *PatientBridgeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PatientBridgeMutation object of the builder.
func (_u *PatientBridgeUpdateOne) Mutation() *PatientBridgeMutation {
	return _u.mutation
}

// Where appends a list predicates to the PatientBridgeUpdate builder.
func (_u *PatientBridgeUpdateOne) Where(ps ...predicate.PatientBridge) *PatientBridgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientBridgeUpdateOne) Select(field string, fields ...string) *PatientBridgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatientBridge entity.
func (_u *PatientBridgeUpdateOne) Save(ctx context.Context) (*PatientBridge, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientBridgeUpdateOne) SaveX(ctx context.Context) *PatientBridge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientBridgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientBridgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientBridgeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientbridge.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PatientBridgeUpdateOne) sqlSave(ctx context.Context) (_node *PatientBridge, err error) {
	_spec := sqlgraph.NewUpdateSpec(patientbridge.Table, patientbridge.Columns, sqlgraph.NewFieldSpec(patientbridge.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PatientBridge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patientbridge.FieldID)
		for _, f := range fields {
			if !patientbridge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != patientbridge.FieldID {
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
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(patientbridge.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(patientbridge.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(patientbridge.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MetadataID(); ok {
		_spec.SetField(patientbridge.FieldMetadataID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMetadataID(); ok {
		_spec.AddField(patientbridge.FieldMetadataID, field.TypeInt, value)
	}
	if _u.mutation.MetadataIDCleared() {
		_spec.ClearField(patientbridge.FieldMetadataID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patientbridge.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PatientBridge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientbridge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
