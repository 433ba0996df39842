// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/attune-health/attune/ent/generationmetadata"
	"github.com/attune-health/attune/ent/predicate"
)

// GenerationMetadataDelete is the builder for deleting a GenerationMetadata entity.
type GenerationMetadataDelete struct {
	config
	hooks    []Hook
	mutation *GenerationMetadataMutation
}

// Where appends a list predicates to the GenerationMetadataDelete builder.
func (_d *GenerationMetadataDelete) Where(ps ...predicate.GenerationMetadata) *GenerationMetadataDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GenerationMetadataDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GenerationMetadataDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GenerationMetadataDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(generationmetadata.Table, sqlgraph.NewFieldSpec(generationmetadata.FieldID, field.TypeInt))
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

// GenerationMetadataDeleteOne is the builder for deleting a single GenerationMetadata entity.
type GenerationMetadataDeleteOne struct {
	_d *GenerationMetadataDelete
}

// Where appends a list predicates to the GenerationMetadataDelete builder.
func (_d *GenerationMetadataDeleteOne) Where(ps ...predicate.GenerationMetadata) *GenerationMetadataDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GenerationMetadataDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{generationmetadata.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GenerationMetadataDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
