// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/attune-health/attune/ent/bridgeversion"
	"github.com/attune-health/attune/ent/predicate"
)

// BridgeVersionDelete is the builder for deleting a BridgeVersion entity.
type BridgeVersionDelete struct {
	config
	hooks    []Hook
	mutation *BridgeVersionMutation
}

// Where appends a list predicates to the BridgeVersionDelete builder.
func (_d *BridgeVersionDelete) Where(ps ...predicate.BridgeVersion) *BridgeVersionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BridgeVersionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BridgeVersionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BridgeVersionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(bridgeversion.Table, sqlgraph.NewFieldSpec(bridgeversion.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// BridgeVersionDeleteOne is the builder for deleting a single BridgeVersion entity.
type BridgeVersionDeleteOne struct {
	_d *BridgeVersionDelete
}

// Where appends a list predicates to the BridgeVersionDelete builder.
func (_d *BridgeVersionDeleteOne) Where(ps ...predicate.BridgeVersion) *BridgeVersionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BridgeVersionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{bridgeversion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BridgeVersionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
