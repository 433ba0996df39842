// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/attune-health/attune/ent/generationcost"
	"github.com/attune-health/attune/ent/predicate"
)

// GenerationCostUpdate is the builder for updating GenerationCost entities.
type GenerationCostUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationCostMutation
}

// Where appends a list predicates to the GenerationCostUpdate builder.
func (_u *GenerationCostUpdate) Where(ps ...predicate.GenerationCost) *GenerationCostUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *GenerationCostUpdate) SetMetadata(v map[string]interface{}) *GenerationCostUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *GenerationCostUpdate) ClearMetadata() *GenerationCostUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the GenerationCostMutation object of the builder.
func (_u *GenerationCostUpdate) Mutation() *GenerationCostMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenerationCostUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationCostUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenerationCostUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationCostUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GenerationCostUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(generationcost.Table, generationcost.Columns, sqlgraph.NewFieldSpec(generationcost.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(generationcost.FieldSessionID, field.TypeString)
	}
	if _u.mutation.PatientIDCleared() {
		_spec.ClearField(generationcost.FieldPatientID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(generationcost.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(generationcost.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationcost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenerationCostUpdateOne is the builder for updating a single GenerationCost entity.
type GenerationCostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationCostMutation
}

// SetMetadata sets the "metadata" field.
func (_u *GenerationCostUpdateOne) SetMetadata(v map[string]interface{}) *GenerationCostUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *GenerationCostUpdateOne) ClearMetadata() *GenerationCostUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the GenerationCostMutation object of the builder.
func (_u *GenerationCostUpdateOne) Mutation() *GenerationCostMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenerationCostUpdate builder.
func (_u *GenerationCostUpdateOne) Where(ps ...predicate.GenerationCost) *GenerationCostUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenerationCostUpdateOne) Select(field string, fields ...string) *GenerationCostUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenerationCost entity.
func (_u *GenerationCostUpdateOne) Save(ctx context.Context) (*GenerationCost, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationCostUpdateOne) SaveX(ctx context.Context) *GenerationCost {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenerationCostUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationCostUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GenerationCostUpdateOne) sqlSave(ctx context.Context) (_node *GenerationCost, err error) {
	_spec := sqlgraph.NewUpdateSpec(generationcost.Table, generationcost.Columns, sqlgraph.NewFieldSpec(generationcost.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenerationCost.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generationcost.FieldID)
		for _, f := range fields {
			if !generationcost.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generationcost.FieldID {
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
		_spec.ClearField(generationcost.FieldSessionID, field.TypeString)
	}
	if _u.mutation.PatientIDCleared() {
		_spec.ClearField(generationcost.FieldPatientID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(generationcost.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(generationcost.FieldMetadata, field.TypeJSON)
	}
	_node = &GenerationCost{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationcost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
