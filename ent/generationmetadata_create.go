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
)

// GenerationMetadataCreate is the builder for creating a GenerationMetadata entity.
type GenerationMetadataCreate struct {
	config
	mutation *GenerationMetadataMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJourneyVersionID sets the "journey_version_id" field.
func (_c *GenerationMetadataCreate) SetJourneyVersionID(v int) *GenerationMetadataCreate {
	_c.mutation.SetJourneyVersionID(v)
	return _c
}

// SetNillableJourneyVersionID sets the "journey_version_id" field if the given value is not nil.
func (_c *GenerationMetadataCreate) SetNillableJourneyVersionID(v *int) *GenerationMetadataCreate {
	if v != nil {
		_c.SetJourneyVersionID(*v)
	}
	return _c
}

// SetBridgeVersionID sets the "bridge_version_id" field.
func (_c *GenerationMetadataCreate) SetBridgeVersionID(v int) *GenerationMetadataCreate {
	_c.mutation.SetBridgeVersionID(v)
	return _c
}

// SetNillableBridgeVersionID sets the "bridge_version_id" field if the given value is not nil.
func (_c *GenerationMetadataCreate) SetNillableBridgeVersionID(v *int) *GenerationMetadataCreate {
	if v != nil {
		_c.SetBridgeVersionID(*v)
	}
	return _c
}

// SetSessionsAnalyzed sets the "sessions_analyzed" field.
func (_c *GenerationMetadataCreate) SetSessionsAnalyzed(v int) *GenerationMetadataCreate {
	_c.mutation.SetSessionsAnalyzed(v)
	return _c
}

// SetTotalSessions sets the "total_sessions" field.
func (_c *GenerationMetadataCreate) SetTotalSessions(v int) *GenerationMetadataCreate {
	_c.mutation.SetTotalSessions(v)
	return _c
}

// SetModelUsed sets the "model_used" field.
func (_c *GenerationMetadataCreate) SetModelUsed(v string) *GenerationMetadataCreate {
	_c.mutation.SetModelUsed(v)
	return _c
}

// SetCompactionStrategy sets the "compaction_strategy" field.
func (_c *GenerationMetadataCreate) SetCompactionStrategy(v string) *GenerationMetadataCreate {
	_c.mutation.SetCompactionStrategy(v)
	return _c
}

// SetNillableCompactionStrategy sets the "compaction_strategy" field if the given value is not nil.
func (_c *GenerationMetadataCreate) SetNillableCompactionStrategy(v *string) *GenerationMetadataCreate {
	if v != nil {
		_c.SetCompactionStrategy(*v)
	}
	return _c
}

// SetGenerationTimestamp sets the "generation_timestamp" field.
func (_c *GenerationMetadataCreate) SetGenerationTimestamp(v time.Time) *GenerationMetadataCreate {
	_c.mutation.SetGenerationTimestamp(v)
	return _c
}

// SetNillableGenerationTimestamp sets the "generation_timestamp" field if the given value is not nil.
func (_c *GenerationMetadataCreate) SetNillableGenerationTimestamp(v *time.Time) *GenerationMetadataCreate {
	if v != nil {
		_c.SetGenerationTimestamp(*v)
	}
	return _c
}

// SetGenerationDurationMs sets the "generation_duration_ms" field.
func (_c *GenerationMetadataCreate) SetGenerationDurationMs(v int) *GenerationMetadataCreate {
	_c.mutation.SetGenerationDurationMs(v)
	return _c
}

// Mutation returns the GenerationMetadataMutation object of the builder.
func (_c *GenerationMetadataCreate) Mutation() *GenerationMetadataMutation {
	return _c.mutation
}

// Save creates the GenerationMetadata in the database.
func (_c *GenerationMetadataCreate) Save(ctx context.Context) (*GenerationMetadata, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GenerationMetadataCreate) SaveX(ctx context.Context) *GenerationMetadata {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationMetadataCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationMetadataCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GenerationMetadataCreate) defaults() {
	if _, ok := _c.mutation.GenerationTimestamp(); !ok {
		v := generationmetadata.DefaultGenerationTimestamp()
		_c.mutation.SetGenerationTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GenerationMetadataCreate) check() error {
	if _, ok := _c.mutation.SessionsAnalyzed(); !ok {
		return &ValidationError{Name: "sessions_analyzed", err: errors.New(`ent: missing required field "GenerationMetadata.sessions_analyzed"`)}
	}
	if _, ok := _c.mutation.TotalSessions(); !ok {
		return &ValidationError{Name: "total_sessions", err: errors.New(`ent: missing required field "GenerationMetadata.total_sessions"`)}
	}
	if _, ok := _c.mutation.ModelUsed(); !ok {
		return &ValidationError{Name: "model_used", err: errors.New(`ent: missing required field "GenerationMetadata.model_used"`)}
	}
	if _, ok := _c.mutation.GenerationTimestamp(); !ok {
		return &ValidationError{Name: "generation_timestamp", err: errors.New(`ent: missing required field "GenerationMetadata.generation_timestamp"`)}
	}
	if _, ok := _c.mutation.GenerationDurationMs(); !ok {
		return &ValidationError{Name: "generation_duration_ms", err: errors.New(`ent: missing required field "GenerationMetadata.generation_duration_ms"`)}
	}
	return nil
}

func (_c *GenerationMetadataCreate) sqlSave(ctx context.Context) (*GenerationMetadata, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GenerationMetadataCreate) createSpec() (*GenerationMetadata, *sqlgraph.CreateSpec) {
	var (
		_node = &GenerationMetadata{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generationmetadata.Table, sqlgraph.NewFieldSpec(generationmetadata.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.JourneyVersionID(); ok {
		_spec.SetField(generationmetadata.FieldJourneyVersionID, field.TypeInt, value)
		_node.JourneyVersionID = &value
	}
	if value, ok := _c.mutation.BridgeVersionID(); ok {
		_spec.SetField(generationmetadata.FieldBridgeVersionID, field.TypeInt, value)
		_node.BridgeVersionID = &value
	}
	if value, ok := _c.mutation.SessionsAnalyzed(); ok {
		_spec.SetField(generationmetadata.FieldSessionsAnalyzed, field.TypeInt, value)
		_node.SessionsAnalyzed = value
	}
	if value, ok := _c.mutation.TotalSessions(); ok {
		_spec.SetField(generationmetadata.FieldTotalSessions, field.TypeInt, value)
		_node.TotalSessions = value
	}
	if value, ok := _c.mutation.ModelUsed(); ok {
		_spec.SetField(generationmetadata.FieldModelUsed, field.TypeString, value)
		_node.ModelUsed = value
	}
	if value, ok := _c.mutation.CompactionStrategy(); ok {
		_spec.SetField(generationmetadata.FieldCompactionStrategy, field.TypeString, value)
		_node.CompactionStrategy = &value
	}
	if value, ok := _c.mutation.GenerationTimestamp(); ok {
		_spec.SetField(generationmetadata.FieldGenerationTimestamp, field.TypeTime, value)
		_node.GenerationTimestamp = value
	}
	if value, ok := _c.mutation.GenerationDurationMs(); ok {
		_spec.SetField(generationmetadata.FieldGenerationDurationMs, field.TypeInt, value)
		_node.GenerationDurationMs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GenerationMetadata.Create().
//		SetJourneyVersionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GenerationMetadataUpsert) {
//			SetJourneyVersionID(v+v).
//		}).
//		Exec(ctx)
func (_c *GenerationMetadataCreate) OnConflict(opts ...sql.ConflictOption) *GenerationMetadataUpsertOne {
	_c.conflict = opts
	return &GenerationMetadataUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GenerationMetadata.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GenerationMetadataCreate) OnConflictColumns(columns ...string) *GenerationMetadataUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GenerationMetadataUpsertOne{
		create: _c,
	}
}

type (
	// GenerationMetadataUpsertOne is the builder for "upsert"-ing
	//  one GenerationMetadata node.
	GenerationMetadataUpsertOne struct {
		create *GenerationMetadataCreate
	}

	// GenerationMetadataUpsert is the "OnConflict" setter.
	GenerationMetadataUpsert struct {
		*sql.UpdateSet
	}
)

// SetJourneyVersionID sets the "journey_version_id" field.
func (u *GenerationMetadataUpsert) SetJourneyVersionID(v int) *GenerationMetadataUpsert {
	u.Set(generationmetadata.FieldJourneyVersionID, v)
	return u
}

// UpdateJourneyVersionID sets the "journey_version_id" field to the value that was provided on create.
func (u *GenerationMetadataUpsert) UpdateJourneyVersionID() *GenerationMetadataUpsert {
	u.SetExcluded(generationmetadata.FieldJourneyVersionID)
	return u
}

// AddJourneyVersionID adds v to the "journey_version_id" field.
func (u *GenerationMetadataUpsert) AddJourneyVersionID(v int) *GenerationMetadataUpsert {
	u.Add(generationmetadata.FieldJourneyVersionID, v)
	return u
}

// ClearJourneyVersionID clears the value of the "journey_version_id" field.
func (u *GenerationMetadataUpsert) ClearJourneyVersionID() *GenerationMetadataUpsert {
	u.SetNull(generationmetadata.FieldJourneyVersionID)
	return u
}

// SetBridgeVersionID sets the "bridge_version_id" field.
func (u *GenerationMetadataUpsert) SetBridgeVersionID(v int) *GenerationMetadataUpsert {
	u.Set(generationmetadata.FieldBridgeVersionID, v)
	return u
}

// UpdateBridgeVersionID sets the "bridge_version_id" field to the value that was provided on create.
func (u *GenerationMetadataUpsert) UpdateBridgeVersionID() *GenerationMetadataUpsert {
	u.SetExcluded(generationmetadata.FieldBridgeVersionID)
	return u
}

// AddBridgeVersionID adds v to the "bridge_version_id" field.
func (u *GenerationMetadataUpsert) AddBridgeVersionID(v int) *GenerationMetadataUpsert {
	u.Add(generationmetadata.FieldBridgeVersionID, v)
	return u
}

// ClearBridgeVersionID clears the value of the "bridge_version_id" field.
func (u *GenerationMetadataUpsert) ClearBridgeVersionID() *GenerationMetadataUpsert {
	u.SetNull(generationmetadata.FieldBridgeVersionID)
	return u
}

// SetSessionsAnalyzed sets the "sessions_analyzed" field.
func (u *GenerationMetadataUpsert) SetSessionsAnalyzed(v int) *GenerationMetadataUpsert {
	u.Set(generationmetadata.FieldSessionsAnalyzed, v)
	return u
}

// UpdateSessionsAnalyzed sets the "sessions_analyzed" field to the value that was provided on create.
func (u *GenerationMetadataUpsert) UpdateSessionsAnalyzed() *GenerationMetadataUpsert {
	u.SetExcluded(generationmetadata.FieldSessionsAnalyzed)
	return u
}

// AddSessionsAnalyzed adds v to the "sessions_analyzed" field.
func (u *GenerationMetadataUpsert) AddSessionsAnalyzed(v int) *GenerationMetadataUpsert {
	u.Add(generationmetadata.FieldSessionsAnalyzed, v)
	return u
}

// SetTotalSessions sets the "total_sessions" field.
func (u *GenerationMetadataUpsert) SetTotalSessions(v int) *GenerationMetadataUpsert {
	u.Set(generationmetadata.FieldTotalSessions, v)
	return u
}

// UpdateTotalSessions sets the "total_sessions" field to the value that was provided on create.
func (u *GenerationMetadataUpsert) UpdateTotalSessions() *GenerationMetadataUpsert {
	u.SetExcluded(generationmetadata.FieldTotalSessions)
	return u
}

// AddTotalSessions adds v to the "total_sessions" field.
func (u *GenerationMetadataUpsert) AddTotalSessions(v int) *GenerationMetadataUpsert {
	u.Add(generationmetadata.FieldTotalSessions, v)
	return u
}

// SetModelUsed sets the "model_used" field.
func (u *GenerationMetadataUpsert) SetModelUsed(v string) *GenerationMetadataUpsert {
	u.Set(generationmetadata.FieldModelUsed, v)
	return u
}

// UpdateModelUsed sets the "model_used" field to the value that was provided on create.
func (u *GenerationMetadataUpsert) UpdateModelUsed() *GenerationMetadataUpsert {
	u.SetExcluded(generationmetadata.FieldModelUsed)
	return u
}

// SetCompactionStrategy sets the "compaction_strategy" field.
func (u *GenerationMetadataUpsert) SetCompactionStrategy(v string) *GenerationMetadataUpsert {
	u.Set(generationmetadata.FieldCompactionStrategy, v)
	return u
}

// UpdateCompactionStrategy sets the "compaction_strategy" field to the value that was provided on create.
func (u *GenerationMetadataUpsert) UpdateCompactionStrategy() *GenerationMetadataUpsert {
	u.SetExcluded(generationmetadata.FieldCompactionStrategy)
	return u
}

// ClearCompactionStrategy clears the value of the "compaction_strategy" field.
func (u *GenerationMetadataUpsert) ClearCompactionStrategy() *GenerationMetadataUpsert {
	u.SetNull(generationmetadata.FieldCompactionStrategy)
	return u
}

// SetGenerationTimestamp sets the "generation_timestamp" field.
func (u *GenerationMetadataUpsert) SetGenerationTimestamp(v time.Time) *GenerationMetadataUpsert {
	u.Set(generationmetadata.FieldGenerationTimestamp, v)
	return u
}

// UpdateGenerationTimestamp sets the "generation_timestamp" field to the value that was provided on create.
func (u *GenerationMetadataUpsert) UpdateGenerationTimestamp() *GenerationMetadataUpsert {
	u.SetExcluded(generationmetadata.FieldGenerationTimestamp)
	return u
}

// SetGenerationDurationMs sets the "generation_duration_ms" field.
func (u *GenerationMetadataUpsert) SetGenerationDurationMs(v int) *GenerationMetadataUpsert {
	u.Set(generationmetadata.FieldGenerationDurationMs, v)
	return u
}

// UpdateGenerationDurationMs sets the "generation_duration_ms" field to the value that was provided on create.
func (u *GenerationMetadataUpsert) UpdateGenerationDurationMs() *GenerationMetadataUpsert {
	u.SetExcluded(generationmetadata.FieldGenerationDurationMs)
	return u
}

// AddGenerationDurationMs adds v to the "generation_duration_ms" field.
func (u *GenerationMetadataUpsert) AddGenerationDurationMs(v int) *GenerationMetadataUpsert {
	u.Add(generationmetadata.FieldGenerationDurationMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.GenerationMetadata.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *GenerationMetadataUpsertOne) UpdateNewValues() *GenerationMetadataUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GenerationMetadata.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GenerationMetadataUpsertOne) Ignore() *GenerationMetadataUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GenerationMetadataUpsertOne) DoNothing() *GenerationMetadataUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GenerationMetadataCreate.OnConflict
// documentation for more info.
func (u *GenerationMetadataUpsertOne) Update(set func(*GenerationMetadataUpsert)) *GenerationMetadataUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GenerationMetadataUpsert{UpdateSet: update})
	}))
	return u
}

// SetJourneyVersionID sets the "journey_version_id" field.
func (u *GenerationMetadataUpsertOne) SetJourneyVersionID(v int) *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.SetJourneyVersionID(v)
	})
}

// AddJourneyVersionID adds v to the "journey_version_id" field.
func (u *GenerationMetadataUpsertOne) AddJourneyVersionID(v int) *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.AddJourneyVersionID(v)
	})
}

// UpdateJourneyVersionID sets the "journey_version_id" field to the value that was provided on create.
func (u *GenerationMetadataUpsertOne) UpdateJourneyVersionID() *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.UpdateJourneyVersionID()
	})
}

// ClearJourneyVersionID clears the value of the "journey_version_id" field.
func (u *GenerationMetadataUpsertOne) ClearJourneyVersionID() *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.ClearJourneyVersionID()
	})
}

// SetBridgeVersionID sets the "bridge_version_id" field.
func (u *GenerationMetadataUpsertOne) SetBridgeVersionID(v int) *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.SetBridgeVersionID(v)
	})
}

// AddBridgeVersionID adds v to the "bridge_version_id" field.
func (u *GenerationMetadataUpsertOne) AddBridgeVersionID(v int) *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.AddBridgeVersionID(v)
	})
}

// UpdateBridgeVersionID sets the "bridge_version_id" field to the value that was provided on create.
func (u *GenerationMetadataUpsertOne) UpdateBridgeVersionID() *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.UpdateBridgeVersionID()
	})
}

// ClearBridgeVersionID clears the value of the "bridge_version_id" field.
func (u *GenerationMetadataUpsertOne) ClearBridgeVersionID() *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.ClearBridgeVersionID()
	})
}

// SetSessionsAnalyzed sets the "sessions_analyzed" field.
func (u *GenerationMetadataUpsertOne) SetSessionsAnalyzed(v int) *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.SetSessionsAnalyzed(v)
	})
}

// AddSessionsAnalyzed adds v to the "sessions_analyzed" field.
func (u *GenerationMetadataUpsertOne) AddSessionsAnalyzed(v int) *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.AddSessionsAnalyzed(v)
	})
}

// UpdateSessionsAnalyzed sets the "sessions_analyzed" field to the value that was provided on create.
func (u *GenerationMetadataUpsertOne) UpdateSessionsAnalyzed() *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.UpdateSessionsAnalyzed()
	})
}

// SetTotalSessions sets the "total_sessions" field.
func (u *GenerationMetadataUpsertOne) SetTotalSessions(v int) *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.SetTotalSessions(v)
	})
}

// AddTotalSessions adds v to the "total_sessions" field.
func (u *GenerationMetadataUpsertOne) AddTotalSessions(v int) *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.AddTotalSessions(v)
	})
}

// UpdateTotalSessions sets the "total_sessions" field to the value that was provided on create.
func (u *GenerationMetadataUpsertOne) UpdateTotalSessions() *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.UpdateTotalSessions()
	})
}

// SetModelUsed sets the "model_used" field.
func (u *GenerationMetadataUpsertOne) SetModelUsed(v string) *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.SetModelUsed(v)
	})
}

// UpdateModelUsed sets the "model_used" field to the value that was provided on create.
func (u *GenerationMetadataUpsertOne) UpdateModelUsed() *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.UpdateModelUsed()
	})
}

// SetCompactionStrategy sets the "compaction_strategy" field.
func (u *GenerationMetadataUpsertOne) SetCompactionStrategy(v string) *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.SetCompactionStrategy(v)
	})
}

// UpdateCompactionStrategy sets the "compaction_strategy" field to the value that was provided on create.
func (u *GenerationMetadataUpsertOne) UpdateCompactionStrategy() *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.UpdateCompactionStrategy()
	})
}

// ClearCompactionStrategy clears the value of the "compaction_strategy" field.
func (u *GenerationMetadataUpsertOne) ClearCompactionStrategy() *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.ClearCompactionStrategy()
	})
}

// SetGenerationTimestamp sets the "generation_timestamp" field.
func (u *GenerationMetadataUpsertOne) SetGenerationTimestamp(v time.Time) *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.SetGenerationTimestamp(v)
	})
}

// UpdateGenerationTimestamp sets the "generation_timestamp" field to the value that was provided on create.
func (u *GenerationMetadataUpsertOne) UpdateGenerationTimestamp() *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.UpdateGenerationTimestamp()
	})
}

// SetGenerationDurationMs sets the "generation_duration_ms" field.
func (u *GenerationMetadataUpsertOne) SetGenerationDurationMs(v int) *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.SetGenerationDurationMs(v)
	})
}

// AddGenerationDurationMs adds v to the "generation_duration_ms" field.
func (u *GenerationMetadataUpsertOne) AddGenerationDurationMs(v int) *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.AddGenerationDurationMs(v)
	})
}

// UpdateGenerationDurationMs sets the "generation_duration_ms" field to the value that was provided on create.
func (u *GenerationMetadataUpsertOne) UpdateGenerationDurationMs() *GenerationMetadataUpsertOne {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.UpdateGenerationDurationMs()
	})
}

// Exec executes the query.
func (u *GenerationMetadataUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GenerationMetadataCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GenerationMetadataUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GenerationMetadataUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GenerationMetadataUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerationMetadataCreateBulk is the builder for creating many GenerationMetadata entities in bulk.
type GenerationMetadataCreateBulk struct {
	config
	err      error
	builders []*GenerationMetadataCreate
	conflict []sql.ConflictOption
}

// Save creates the GenerationMetadata entities in the database.
func (_c *GenerationMetadataCreateBulk) Save(ctx context.Context) ([]*GenerationMetadata, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GenerationMetadata, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenerationMetadataMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GenerationMetadataCreateBulk) SaveX(ctx context.Context) []*GenerationMetadata {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationMetadataCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationMetadataCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GenerationMetadata.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GenerationMetadataUpsert) {
//			SetJourneyVersionID(v+v).
//		}).
//		Exec(ctx)
func (_c *GenerationMetadataCreateBulk) OnConflict(opts ...sql.ConflictOption) *GenerationMetadataUpsertBulk {
	_c.conflict = opts
	return &GenerationMetadataUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GenerationMetadata.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GenerationMetadataCreateBulk) OnConflictColumns(columns ...string) *GenerationMetadataUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GenerationMetadataUpsertBulk{
		create: _c,
	}
}

// GenerationMetadataUpsertBulk is the builder for "upsert"-ing
// a bulk of GenerationMetadata nodes.
type GenerationMetadataUpsertBulk struct {
	create *GenerationMetadataCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GenerationMetadata.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *GenerationMetadataUpsertBulk) UpdateNewValues() *GenerationMetadataUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GenerationMetadata.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GenerationMetadataUpsertBulk) Ignore() *GenerationMetadataUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GenerationMetadataUpsertBulk) DoNothing() *GenerationMetadataUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GenerationMetadataCreateBulk.OnConflict
// documentation for more info.
func (u *GenerationMetadataUpsertBulk) Update(set func(*GenerationMetadataUpsert)) *GenerationMetadataUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GenerationMetadataUpsert{UpdateSet: update})
	}))
	return u
}

// SetJourneyVersionID sets the "journey_version_id" field.
func (u *GenerationMetadataUpsertBulk) SetJourneyVersionID(v int) *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.SetJourneyVersionID(v)
	})
}

// AddJourneyVersionID adds v to the "journey_version_id" field.
func (u *GenerationMetadataUpsertBulk) AddJourneyVersionID(v int) *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.AddJourneyVersionID(v)
	})
}

// UpdateJourneyVersionID sets the "journey_version_id" field to the value that was provided on create.
func (u *GenerationMetadataUpsertBulk) UpdateJourneyVersionID() *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.UpdateJourneyVersionID()
	})
}

// ClearJourneyVersionID clears the value of the "journey_version_id" field.
func (u *GenerationMetadataUpsertBulk) ClearJourneyVersionID() *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.ClearJourneyVersionID()
	})
}

// SetBridgeVersionID sets the "bridge_version_id" field.
func (u *GenerationMetadataUpsertBulk) SetBridgeVersionID(v int) *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.SetBridgeVersionID(v)
	})
}

// AddBridgeVersionID adds v to the "bridge_version_id" field.
func (u *GenerationMetadataUpsertBulk) AddBridgeVersionID(v int) *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.AddBridgeVersionID(v)
	})
}

// UpdateBridgeVersionID sets the "bridge_version_id" field to the value that was provided on create.
func (u *GenerationMetadataUpsertBulk) UpdateBridgeVersionID() *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.UpdateBridgeVersionID()
	})
}

// ClearBridgeVersionID clears the value of the "bridge_version_id" field.
func (u *GenerationMetadataUpsertBulk) ClearBridgeVersionID() *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.ClearBridgeVersionID()
	})
}

// SetSessionsAnalyzed sets the "sessions_analyzed" field.
func (u *GenerationMetadataUpsertBulk) SetSessionsAnalyzed(v int) *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.SetSessionsAnalyzed(v)
	})
}

// AddSessionsAnalyzed adds v to the "sessions_analyzed" field.
func (u *GenerationMetadataUpsertBulk) AddSessionsAnalyzed(v int) *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.AddSessionsAnalyzed(v)
	})
}

// UpdateSessionsAnalyzed sets the "sessions_analyzed" field to the value that was provided on create.
func (u *GenerationMetadataUpsertBulk) UpdateSessionsAnalyzed() *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.UpdateSessionsAnalyzed()
	})
}

// SetTotalSessions sets the "total_sessions" field.
func (u *GenerationMetadataUpsertBulk) SetTotalSessions(v int) *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.SetTotalSessions(v)
	})
}

// AddTotalSessions adds v to the "total_sessions" field.
func (u *GenerationMetadataUpsertBulk) AddTotalSessions(v int) *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.AddTotalSessions(v)
	})
}

// UpdateTotalSessions sets the "total_sessions" field to the value that was provided on create.
func (u *GenerationMetadataUpsertBulk) UpdateTotalSessions() *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.UpdateTotalSessions()
	})
}

// SetModelUsed sets the "model_used" field.
func (u *GenerationMetadataUpsertBulk) SetModelUsed(v string) *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.SetModelUsed(v)
	})
}

// UpdateModelUsed sets the "model_used" field to the value that was provided on create.
func (u *GenerationMetadataUpsertBulk) UpdateModelUsed() *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.UpdateModelUsed()
	})
}

// SetCompactionStrategy sets the "compaction_strategy" field.
func (u *GenerationMetadataUpsertBulk) SetCompactionStrategy(v string) *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.SetCompactionStrategy(v)
	})
}

// UpdateCompactionStrategy sets the "compaction_strategy" field to the value that was provided on create.
func (u *GenerationMetadataUpsertBulk) UpdateCompactionStrategy() *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.UpdateCompactionStrategy()
	})
}

// ClearCompactionStrategy clears the value of the "compaction_strategy" field.
func (u *GenerationMetadataUpsertBulk) ClearCompactionStrategy() *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.ClearCompactionStrategy()
	})
}

// SetGenerationTimestamp sets the "generation_timestamp" field.
func (u *GenerationMetadataUpsertBulk) SetGenerationTimestamp(v time.Time) *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.SetGenerationTimestamp(v)
	})
}

// UpdateGenerationTimestamp sets the "generation_timestamp" field to the value that was provided on create.
func (u *GenerationMetadataUpsertBulk) UpdateGenerationTimestamp() *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.UpdateGenerationTimestamp()
	})
}

// SetGenerationDurationMs sets the "generation_duration_ms" field.
func (u *GenerationMetadataUpsertBulk) SetGenerationDurationMs(v int) *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.SetGenerationDurationMs(v)
	})
}

// AddGenerationDurationMs adds v to the "generation_duration_ms" field.
func (u *GenerationMetadataUpsertBulk) AddGenerationDurationMs(v int) *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.AddGenerationDurationMs(v)
	})
}

// UpdateGenerationDurationMs sets the "generation_duration_ms" field to the value that was provided on create.
func (u *GenerationMetadataUpsertBulk) UpdateGenerationDurationMs() *GenerationMetadataUpsertBulk {
	return u.Update(func(s *GenerationMetadataUpsert) {
		s.UpdateGenerationDurationMs()
	})
}

// Exec executes the query.
func (u *GenerationMetadataUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GenerationMetadataCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GenerationMetadataCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GenerationMetadataUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
