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
	"github.com/attune-health/attune/ent/generationmetadata"
	"github.com/attune-health/attune/ent/predicate"
)

// GenerationMetadataUpdate is the builder for updating GenerationMetadata entities.
type GenerationMetadataUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationMetadataMutation
}

// Where appends a list predicates to the GenerationMetadataUpdate builder.
func (_u *GenerationMetadataUpdate) Where(ps ...predicate.GenerationMetadata) *GenerationMetadataUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJourneyVersionID sets the "journey_version_id" field.
func (_u *GenerationMetadataUpdate) SetJourneyVersionID(v int) *GenerationMetadataUpdate {
	_u.mutation.ResetJourneyVersionID()
	_u.mutation.SetJourneyVersionID(v)
	return _u
}

// SetNillableJourneyVersionID sets the "journey_version_id" field if the given value is not nil.
func (_u *GenerationMetadataUpdate) SetNillableJourneyVersionID(v *int) *GenerationMetadataUpdate {
	if v != nil {
		_u.SetJourneyVersionID(*v)
	}
	return _u
}

// AddJourneyVersionID adds value to the "journey_version_id" field.
func (_u *GenerationMetadataUpdate) AddJourneyVersionID(v int) *GenerationMetadataUpdate {
	_u.mutation.AddJourneyVersionID(v)
	return _u
}

// ClearJourneyVersionID clears the value of the "journey_version_id" field.
func (_u *GenerationMetadataUpdate) ClearJourneyVersionID() *GenerationMetadataUpdate {
	_u.mutation.ClearJourneyVersionID()
	return _u
}

// SetBridgeVersionID sets the "bridge_version_id" field.
func (_u *GenerationMetadataUpdate) SetBridgeVersionID(v int) *GenerationMetadataUpdate {
	_u.mutation.ResetBridgeVersionID()
	_u.mutation.SetBridgeVersionID(v)
	return _u
}

// SetNillableBridgeVersionID sets the "bridge_version_id" field if the given value is not nil.
func (_u *GenerationMetadataUpdate) SetNillableBridgeVersionID(v *int) *GenerationMetadataUpdate {
	if v != nil {
		_u.SetBridgeVersionID(*v)
	}
	return _u
}

// AddBridgeVersionID adds value to the "bridge_version_id" field.
func (_u *GenerationMetadataUpdate) AddBridgeVersionID(v int) *GenerationMetadataUpdate {
	_u.mutation.AddBridgeVersionID(v)
	return _u
}

// ClearBridgeVersionID clears the value of the "bridge_version_id" field.
func (_u *GenerationMetadataUpdate) ClearBridgeVersionID() *GenerationMetadataUpdate {
	_u.mutation.ClearBridgeVersionID()
	return _u
}

// SetSessionsAnalyzed sets the "sessions_analyzed" field.
func (_u *GenerationMetadataUpdate) SetSessionsAnalyzed(v int) *GenerationMetadataUpdate {
	_u.mutation.ResetSessionsAnalyzed()
	_u.mutation.SetSessionsAnalyzed(v)
	return _u
}

// SetNillableSessionsAnalyzed sets the "sessions_analyzed" field if the given value is not nil.
func (_u *GenerationMetadataUpdate) SetNillableSessionsAnalyzed(v *int) *GenerationMetadataUpdate {
	if v != nil {
		_u.SetSessionsAnalyzed(*v)
	}
	return _u
}

// AddSessionsAnalyzed adds value to the "sessions_analyzed" field.
func (_u *GenerationMetadataUpdate) AddSessionsAnalyzed(v int) *GenerationMetadataUpdate {
	_u.mutation.AddSessionsAnalyzed(v)
	return _u
}

// SetTotalSessions sets the "total_sessions" field.
func (_u *GenerationMetadataUpdate) SetTotalSessions(v int) *GenerationMetadataUpdate {
	_u.mutation.ResetTotalSessions()
	_u.mutation.SetTotalSessions(v)
	return _u
}

// SetNillableTotalSessions sets the "total_sessions" field if the given value is not nil.
func (_u *GenerationMetadataUpdate) SetNillableTotalSessions(v *int) *GenerationMetadataUpdate {
	if v != nil {
		_u.SetTotalSessions(*v)
	}
	return _u
}

// AddTotalSessions adds value to the "total_sessions" field.
func (_u *GenerationMetadataUpdate) AddTotalSessions(v int) *GenerationMetadataUpdate {
	_u.mutation.AddTotalSessions(v)
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *GenerationMetadataUpdate) SetModelUsed(v string) *GenerationMetadataUpdate {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *GenerationMetadataUpdate) SetNillableModelUsed(v *string) *GenerationMetadataUpdate {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// SetCompactionStrategy sets the "compaction_strategy" field.
func (_u *GenerationMetadataUpdate) SetCompactionStrategy(v string) *GenerationMetadataUpdate {
	_u.mutation.SetCompactionStrategy(v)
	return _u
}

// SetNillableCompactionStrategy sets the "compaction_strategy" field if the given value is not nil.
func (_u *GenerationMetadataUpdate) SetNillableCompactionStrategy(v *string) *GenerationMetadataUpdate {
	if v != nil {
		_u.SetCompactionStrategy(*v)
	}
	return _u
}

// ClearCompactionStrategy clears the value of the "compaction_strategy" field.
func (_u *GenerationMetadataUpdate) ClearCompactionStrategy() *GenerationMetadataUpdate {
	_u.mutation.ClearCompactionStrategy()
	return _u
}

// SetGenerationTimestamp sets the "generation_timestamp" field.
func (_u *GenerationMetadataUpdate) SetGenerationTimestamp(v time.Time) *GenerationMetadataUpdate {
	_u.mutation.SetGenerationTimestamp(v)
	return _u
}

// SetNillableGenerationTimestamp sets the "generation_timestamp" field if the given value is not nil.
func (_u *GenerationMetadataUpdate) SetNillableGenerationTimestamp(v *time.Time) *GenerationMetadataUpdate {
	if v != nil {
		_u.SetGenerationTimestamp(*v)
	}
	return _u
}

// SetGenerationDurationMs sets the "generation_duration_ms" field.
func (_u *GenerationMetadataUpdate) SetGenerationDurationMs(v int) *GenerationMetadataUpdate {
	_u.mutation.ResetGenerationDurationMs()
	_u.mutation.SetGenerationDurationMs(v)
	return _u
}

// SetNillableGenerationDurationMs sets the "generation_duration_ms" field if the given value is not nil.
func (_u *GenerationMetadataUpdate) SetNillableGenerationDurationMs(v *int) *GenerationMetadataUpdate {
	if v != nil {
		_u.SetGenerationDurationMs(*v)
	}
	return _u
}

// AddGenerationDurationMs adds value to the "generation_duration_ms" field.
func (_u *GenerationMetadataUpdate) AddGenerationDurationMs(v int) *GenerationMetadataUpdate {
	_u.mutation.AddGenerationDurationMs(v)
	return _u
}

// Mutation returns the GenerationMetadataMutation object of the builder.
func (_u *GenerationMetadataUpdate) Mutation() *GenerationMetadataMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenerationMetadataUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationMetadataUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenerationMetadataUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationMetadataUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GenerationMetadataUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(generationmetadata.Table, generationmetadata.Columns, sqlgraph.NewFieldSpec(generationmetadata.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JourneyVersionID(); ok {
		_spec.SetField(generationmetadata.FieldJourneyVersionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJourneyVersionID(); ok {
		_spec.AddField(generationmetadata.FieldJourneyVersionID, field.TypeInt, value)
	}
	if _u.mutation.JourneyVersionIDCleared() {
		_spec.ClearField(generationmetadata.FieldJourneyVersionID, field.TypeInt)
	}
	if value, ok := _u.mutation.BridgeVersionID(); ok {
		_spec.SetField(generationmetadata.FieldBridgeVersionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBridgeVersionID(); ok {
		_spec.AddField(generationmetadata.FieldBridgeVersionID, field.TypeInt, value)
	}
	if _u.mutation.BridgeVersionIDCleared() {
		_spec.ClearField(generationmetadata.FieldBridgeVersionID, field.TypeInt)
	}
	if value, ok := _u.mutation.SessionsAnalyzed(); ok {
		_spec.SetField(generationmetadata.FieldSessionsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsAnalyzed(); ok {
		_spec.AddField(generationmetadata.FieldSessionsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalSessions(); ok {
		_spec.SetField(generationmetadata.FieldTotalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSessions(); ok {
		_spec.AddField(generationmetadata.FieldTotalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(generationmetadata.FieldModelUsed, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompactionStrategy(); ok {
		_spec.SetField(generationmetadata.FieldCompactionStrategy, field.TypeString, value)
	}
	if _u.mutation.CompactionStrategyCleared() {
		_spec.ClearField(generationmetadata.FieldCompactionStrategy, field.TypeString)
	}
	if value, ok := _u.mutation.GenerationTimestamp(); ok {
		_spec.SetField(generationmetadata.FieldGenerationTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GenerationDurationMs(); ok {
		_spec.SetField(generationmetadata.FieldGenerationDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationDurationMs(); ok {
		_spec.AddField(generationmetadata.FieldGenerationDurationMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationmetadata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenerationMetadataUpdateOne is the builder for updating a single GenerationMetadata entity.
type GenerationMetadataUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationMetadataMutation
}

// SetJourneyVersionID sets the "journey_version_id" field.
func (_u *GenerationMetadataUpdateOne) SetJourneyVersionID(v int) *GenerationMetadataUpdateOne {
	_u.mutation.ResetJourneyVersionID()
	_u.mutation.SetJourneyVersionID(v)
	return _u
}

// SetNillableJourneyVersionID sets the "journey_version_id" field if the given value is not nil.
func (_u *GenerationMetadataUpdateOne) SetNillableJourneyVersionID(v *int) *GenerationMetadataUpdateOne {
	if v != nil {
		_u.SetJourneyVersionID(*v)
	}
	return _u
}

// AddJourneyVersionID adds value to the "journey_version_id" field.
func (_u *GenerationMetadataUpdateOne) AddJourneyVersionID(v int) *GenerationMetadataUpdateOne {
	_u.mutation.AddJourneyVersionID(v)
	return _u
}

// ClearJourneyVersionID clears the value of the "journey_version_id" field.
func (_u *GenerationMetadataUpdateOne) ClearJourneyVersionID() *GenerationMetadataUpdateOne {
	_u.mutation.ClearJourneyVersionID()
	return _u
}

// SetBridgeVersionID sets the "bridge_version_id" field.
func (_u *GenerationMetadataUpdateOne) SetBridgeVersionID(v int) *GenerationMetadataUpdateOne {
	_u.mutation.ResetBridgeVersionID()
	_u.mutation.SetBridgeVersionID(v)
	return _u
}

// SetNillableBridgeVersionID sets the "bridge_version_id" field if the given value is not nil.
func (_u *GenerationMetadataUpdateOne) SetNillableBridgeVersionID(v *int) *GenerationMetadataUpdateOne {
	if v != nil {
		_u.SetBridgeVersionID(*v)
	}
	return _u
}

// AddBridgeVersionID adds value to the "bridge_version_id" field.
func (_u *GenerationMetadataUpdateOne) AddBridgeVersionID(v int) *GenerationMetadataUpdateOne {
	_u.mutation.AddBridgeVersionID(v)
	return _u
}

// ClearBridgeVersionID clears the value of the "bridge_version_id" field.
func (_u *GenerationMetadataUpdateOne) ClearBridgeVersionID() *GenerationMetadataUpdateOne {
	_u.mutation.ClearBridgeVersionID()
	return _u
}

// SetSessionsAnalyzed sets the "sessions_analyzed" field.
func (_u *GenerationMetadataUpdateOne) SetSessionsAnalyzed(v int) *GenerationMetadataUpdateOne {
	_u.mutation.ResetSessionsAnalyzed()
	_u.mutation.SetSessionsAnalyzed(v)
	return _u
}

// SetNillableSessionsAnalyzed sets the "sessions_analyzed" field if the given value is not nil.
func (_u *GenerationMetadataUpdateOne) SetNillableSessionsAnalyzed(v *int) *GenerationMetadataUpdateOne {
	if v != nil {
		_u.SetSessionsAnalyzed(*v)
	}
	return _u
}

// AddSessionsAnalyzed adds value to the "sessions_analyzed" field.
func (_u *GenerationMetadataUpdateOne) AddSessionsAnalyzed(v int) *GenerationMetadataUpdateOne {
	_u.mutation.AddSessionsAnalyzed(v)
	return _u
}

// SetTotalSessions sets the "total_sessions" field.
func (_u *GenerationMetadataUpdateOne) SetTotalSessions(v int) *GenerationMetadataUpdateOne {
	_u.mutation.ResetTotalSessions()
	_u.mutation.SetTotalSessions(v)
	return _u
}

// SetNillableTotalSessions sets the "total_sessions" field if the given value is not nil.
func (_u *GenerationMetadataUpdateOne) SetNillableTotalSessions(v *int) *GenerationMetadataUpdateOne {
	if v != nil {
		_u.SetTotalSessions(*v)
	}
	return _u
}

// AddTotalSessions adds value to the "total_sessions" field.
func (_u *GenerationMetadataUpdateOne) AddTotalSessions(v int) *GenerationMetadataUpdateOne {
	_u.mutation.AddTotalSessions(v)
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *GenerationMetadataUpdateOne) SetModelUsed(v string) *GenerationMetadataUpdateOne {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *GenerationMetadataUpdateOne) SetNillableModelUsed(v *string) *GenerationMetadataUpdateOne {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// SetCompactionStrategy sets the "compaction_strategy" field.
func (_u *GenerationMetadataUpdateOne) SetCompactionStrategy(v string) *GenerationMetadataUpdateOne {
	_u.mutation.SetCompactionStrategy(v)
	return _u
}

// SetNillableCompactionStrategy sets the "compaction_strategy" field if the given value is not nil.
func (_u *GenerationMetadataUpdateOne) SetNillableCompactionStrategy(v *string) *GenerationMetadataUpdateOne {
	if v != nil {
		_u.SetCompactionStrategy(*v)
	}
	return _u
}

// ClearCompactionStrategy clears the value of the "compaction_strategy" field.
func (_u *GenerationMetadataUpdateOne) ClearCompactionStrategy() *GenerationMetadataUpdateOne {
	_u.mutation.ClearCompactionStrategy()
	return _u
}

// SetGenerationTimestamp sets the "generation_timestamp" field.
func (_u *GenerationMetadataUpdateOne) SetGenerationTimestamp(v time.Time) *GenerationMetadataUpdateOne {
	_u.mutation.SetGenerationTimestamp(v)
	return _u
}

// SetNillableGenerationTimestamp sets the "generation_timestamp" field if the given value is not nil.
func (_u *GenerationMetadataUpdateOne) SetNillableGenerationTimestamp(v *time.Time) *GenerationMetadataUpdateOne {
	if v != nil {
		_u.SetGenerationTimestamp(*v)
	}
	return _u
}

// SetGenerationDurationMs sets the "generation_duration_ms" field.
func (_u *GenerationMetadataUpdateOne) SetGenerationDurationMs(v int) *GenerationMetadataUpdateOne {
	_u.mutation.ResetGenerationDurationMs()
	_u.mutation.SetGenerationDurationMs(v)
	return _u
}

// SetNillableGenerationDurationMs sets the "generation_duration_ms" field if the given value is not nil.
func (_u *GenerationMetadataUpdateOne) SetNillableGenerationDurationMs(v *int) *GenerationMetadataUpdateOne {
	if v != nil {
		_u.SetGenerationDurationMs(*v)
	}
	return _u
}

// AddGenerationDurationMs adds value to the "generation_duration_ms" field.
func (_u *GenerationMetadataUpdateOne) AddGenerationDurationMs(v int) *GenerationMetadataUpdateOne {
	_u.mutation.AddGenerationDurationMs(v)
	return _u
}

// Mutation returns the GenerationMetadataMutation object of the builder.
func (_u *GenerationMetadataUpdateOne) Mutation() *GenerationMetadataMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenerationMetadataUpdate builder.
func (_u *GenerationMetadataUpdateOne) Where(ps ...predicate.GenerationMetadata) *GenerationMetadataUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenerationMetadataUpdateOne) Select(field string, fields ...string) *GenerationMetadataUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenerationMetadata entity.
func (_u *GenerationMetadataUpdateOne) Save(ctx context.Context) (*GenerationMetadata, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationMetadataUpdateOne) SaveX(ctx context.Context) *GenerationMetadata {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenerationMetadataUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationMetadataUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GenerationMetadataUpdateOne) sqlSave(ctx context.Context) (_node *GenerationMetadata, err error) {
	_spec := sqlgraph.NewUpdateSpec(generationmetadata.Table, generationmetadata.Columns, sqlgraph.NewFieldSpec(generationmetadata.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenerationMetadata.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generationmetadata.FieldID)
		for _, f := range fields {
			if !generationmetadata.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generationmetadata.FieldID {
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
	if value, ok := _u.mutation.JourneyVersionID(); ok {
		_spec.SetField(generationmetadata.FieldJourneyVersionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJourneyVersionID(); ok {
		_spec.AddField(generationmetadata.FieldJourneyVersionID, field.TypeInt, value)
	}
	if _u.mutation.JourneyVersionIDCleared() {
		_spec.ClearField(generationmetadata.FieldJourneyVersionID, field.TypeInt)
	}
	if value, ok := _u.mutation.BridgeVersionID(); ok {
		_spec.SetField(generationmetadata.FieldBridgeVersionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBridgeVersionID(); ok {
		_spec.AddField(generationmetadata.FieldBridgeVersionID, field.TypeInt, value)
	}
	if _u.mutation.BridgeVersionIDCleared() {
		_spec.ClearField(generationmetadata.FieldBridgeVersionID, field.TypeInt)
	}
	if value, ok := _u.mutation.SessionsAnalyzed(); ok {
		_spec.SetField(generationmetadata.FieldSessionsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsAnalyzed(); ok {
		_spec.AddField(generationmetadata.FieldSessionsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalSessions(); ok {
		_spec.SetField(generationmetadata.FieldTotalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSessions(); ok {
		_spec.AddField(generationmetadata.FieldTotalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(generationmetadata.FieldModelUsed, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompactionStrategy(); ok {
		_spec.SetField(generationmetadata.FieldCompactionStrategy, field.TypeString, value)
	}
	if _u.mutation.CompactionStrategyCleared() {
		_spec.ClearField(generationmetadata.FieldCompactionStrategy, field.TypeString)
	}
	if value, ok := _u.mutation.GenerationTimestamp(); ok {
		_spec.SetField(generationmetadata.FieldGenerationTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GenerationDurationMs(); ok {
		_spec.SetField(generationmetadata.FieldGenerationDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationDurationMs(); ok {
		_spec.AddField(generationmetadata.FieldGenerationDurationMs, field.TypeInt, value)
	}
	_node = &GenerationMetadata{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationmetadata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
