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
	"github.com/attune-health/attune/ent/patientjourney"
	"github.com/attune-health/attune/ent/predicate"
)

// PatientJourneyUpdate is the builder for updating PatientJourney entities.
type PatientJourneyUpdate struct {
	config
	hooks    []Hook
	mutation *PatientJourneyMutation
}

// Where appends a list predicates to the PatientJourneyUpdate builder.
func (_u *PatientJourneyUpdate) Where(ps ...predicate.PatientJourney) *PatientJourneyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetData sets the "data" field.
func (_u *PatientJourneyUpdate) SetData(v map[string]interface{}) *PatientJourneyUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *PatientJourneyUpdate) SetVersion(v int) *PatientJourneyUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PatientJourneyUpdate) SetNillableVersion(v *int) *PatientJourneyUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PatientJourneyUpdate) AddVersion(v int) *PatientJourneyUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetMetadataID sets the "metadata_id" field.
func (_u *PatientJourneyUpdate) SetMetadataID(v int) *PatientJourneyUpdate {
	_u.mutation.ResetMetadataID()
	_u.mutation.SetMetadataID(v)
	return _u
}

// SetNillableMetadataID sets the "metadata_id" field if the given value is not nil.
func (_u *PatientJourneyUpdate) SetNillableMetadataID(v *int) *PatientJourneyUpdate {
	if v != nil {
		_u.SetMetadataID(*v)
	}
	return _u
}

// AddMetadataID adds value to the "metadata_id" field.
func (_u *PatientJourneyUpdate) AddMetadataID(v int) *PatientJourneyUpdate {
	_u.mutation.AddMetadataID(v)
	return _u
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (_u *PatientJourneyUpdate) ClearMetadataID() *PatientJourneyUpdate {
	_u.mutation.ClearMetadataID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientJourneyUpdate) SetUpdatedAt(v time.Time) *PatientJourneyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PatientJourneyMutation object of the builder.
func (_u *PatientJourneyUpdate) Mutation() *PatientJourneyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientJourneyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientJourneyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientJourneyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientJourneyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientJourneyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientjourney.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PatientJourneyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(patientjourney.Table, patientjourney.Columns, sqlgraph.NewFieldSpec(patientjourney.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(patientjourney.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(patientjourney.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(patientjourney.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MetadataID(); ok {
		_spec.SetField(patientjourney.FieldMetadataID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMetadataID(); ok {
		_spec.AddField(patientjourney.FieldMetadataID, field.TypeInt, value)
	}
	if _u.mutation.MetadataIDCleared() {
		_spec.ClearField(patientjourney.FieldMetadataID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patientjourney.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientjourney.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientJourneyUpdateOne is the builder for updating a single PatientJourney entity.
type PatientJourneyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientJourneyMutation
}

// SetData sets the "data" field.
func (_u *PatientJourneyUpdateOne) SetData(v map[string]interface{}) *PatientJourneyUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *PatientJourneyUpdateOne) SetVersion(v int) *PatientJourneyUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PatientJourneyUpdateOne) SetNillableVersion(v *int) *PatientJourneyUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PatientJourneyUpdateOne) AddVersion(v int) *PatientJourneyUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetMetadataID sets the "metadata_id" field.
func (_u *PatientJourneyUpdateOne) SetMetadataID(v int) *PatientJourneyUpdateOne {
	_u.mutation.ResetMetadataID()
	_u.mutation.SetMetadataID(v)
	return _u
}

// SetNillableMetadataID sets the "metadata_id" field if the given value is not nil.
func (_u *PatientJourneyUpdateOne) SetNillableMetadataID(v *int) *PatientJourneyUpdateOne {
	if v != nil {
		_u.SetMetadataID(*v)
	}
	return _u
}

// AddMetadataID adds value to the "metadata_id" field.
func (_u *PatientJourneyUpdateOne) AddMetadataID(v int) *PatientJourneyUpdateOne {
	_u.mutation.AddMetadataID(v)
	return _u
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (_u *PatientJourneyUpdateOne) ClearMetadataID() *PatientJourneyUpdateOne {
	_u.mutation.ClearMetadataID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientJourneyUpdateOne) SetUpdatedAt(v time.Time) *PatientJourneyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PatientJourneyMutation object of the builder.
func (_u *PatientJourneyUpdateOne) Mutation() *PatientJourneyMutation {
	return _u.mutation
}

// Where appends a list predicates to the PatientJourneyUpdate builder.
func (_u *PatientJourneyUpdateOne) Where(ps ...predicate.PatientJourney) *PatientJourneyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientJourneyUpdateOne) Select(field string, fields ...string) *PatientJourneyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatientJourney entity.
func (_u *PatientJourneyUpdateOne) Save(ctx context.Context) (*PatientJourney, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientJourneyUpdateOne) SaveX(ctx context.Context) *PatientJourney {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientJourneyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientJourneyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientJourneyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientjourney.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PatientJourneyUpdateOne) sqlSave(ctx context.Context) (_node *PatientJourney, err error) {
	_spec := sqlgraph.NewUpdateSpec(patientjourney.Table, patientjourney.Columns, sqlgraph.NewFieldSpec(patientjourney.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PatientJourney.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patientjourney.FieldID)
		for _, f := range fields {
			if !patientjourney.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != patientjourney.FieldID {
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
		_spec.SetField(patientjourney.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(patientjourney.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(patientjourney.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MetadataID(); ok {
		_spec.SetField(patientjourney.FieldMetadataID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMetadataID(); ok {
		_spec.AddField(patientjourney.FieldMetadataID, field.TypeInt, value)
	}
	if _u.mutation.MetadataIDCleared() {
		_spec.ClearField(patientjourney.FieldMetadataID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patientjourney.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PatientJourney{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientjourney.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
