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
	"github.com/attune-health/attune/ent/processinglog"
	"github.com/attune-health/attune/ent/therapysession"
)

// ProcessingLogCreate is the builder for creating a ProcessingLog entity.
type ProcessingLogCreate struct {
	config
	mutation *ProcessingLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *ProcessingLogCreate) SetSessionID(v string) *ProcessingLogCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetWave sets the "wave" field.
func (_c *ProcessingLogCreate) SetWave(v string) *ProcessingLogCreate {
	_c.mutation.SetWave(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessingLogCreate) SetStatus(v processinglog.Status) *ProcessingLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProcessingLogCreate) SetNillableStatus(v *processinglog.Status) *ProcessingLogCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *ProcessingLogCreate) SetRetryCount(v int) *ProcessingLogCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *ProcessingLogCreate) SetNillableRetryCount(v *int) *ProcessingLogCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ProcessingLogCreate) SetStartedAt(v time.Time) *ProcessingLogCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ProcessingLogCreate) SetNillableStartedAt(v *time.Time) *ProcessingLogCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ProcessingLogCreate) SetCompletedAt(v time.Time) *ProcessingLogCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ProcessingLogCreate) SetNillableCompletedAt(v *time.Time) *ProcessingLogCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ProcessingLogCreate) SetDurationMs(v int) *ProcessingLogCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ProcessingLogCreate) SetNillableDurationMs(v *int) *ProcessingLogCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ProcessingLogCreate) SetErrorMessage(v string) *ProcessingLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ProcessingLogCreate) SetNillableErrorMessage(v *string) *ProcessingLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the TherapySession entity.
func (_c *ProcessingLogCreate) SetSession(v *TherapySession) *ProcessingLogCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the ProcessingLogMutation object of the builder.
func (_c *ProcessingLogCreate) Mutation() *ProcessingLogMutation {
	return _c.mutation
}

// Save creates the ProcessingLog in the database.
func (_c *ProcessingLogCreate) Save(ctx context.Context) (*ProcessingLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessingLogCreate) SaveX(ctx context.Context) *ProcessingLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessingLogCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := processinglog.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := processinglog.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := processinglog.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessingLogCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ProcessingLog.session_id"`)}
	}
	if _, ok := _c.mutation.Wave(); !ok {
		return &ValidationError{Name: "wave", err: errors.New(`ent: missing required field "ProcessingLog.wave"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProcessingLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := processinglog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "ProcessingLog.retry_count"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ProcessingLog.started_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ProcessingLog.session"`)}
	}
	return nil
}

func (_c *ProcessingLogCreate) sqlSave(ctx context.Context) (*ProcessingLog, error) {
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

func (_c *ProcessingLogCreate) createSpec() (*ProcessingLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessingLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processinglog.Table, sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Wave(); ok {
		_spec.SetField(processinglog.FieldWave, field.TypeString, value)
		_node.Wave = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processinglog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(processinglog.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(processinglog.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(processinglog.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(processinglog.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(processinglog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processinglog.SessionTable,
			Columns: []string{processinglog.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(therapysession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProcessingLog.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProcessingLogUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProcessingLogCreate) OnConflict(opts ...sql.ConflictOption) *ProcessingLogUpsertOne {
	_c.conflict = opts
	return &ProcessingLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProcessingLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProcessingLogCreate) OnConflictColumns(columns ...string) *ProcessingLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProcessingLogUpsertOne{
		create: _c,
	}
}

type (
	// ProcessingLogUpsertOne is the builder for "upsert"-ing
	//  one ProcessingLog node.
	ProcessingLogUpsertOne struct {
		create *ProcessingLogCreate
	}

	// ProcessingLogUpsert is the "OnConflict" setter.
	ProcessingLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetWave sets the "wave" field.
func (u *ProcessingLogUpsert) SetWave(v string) *ProcessingLogUpsert {
	u.Set(processinglog.FieldWave, v)
	return u
}

// UpdateWave sets the "wave" field to the value that was provided on create.
func (u *ProcessingLogUpsert) UpdateWave() *ProcessingLogUpsert {
	u.SetExcluded(processinglog.FieldWave)
	return u
}

// SetStatus sets the "status" field.
func (u *ProcessingLogUpsert) SetStatus(v processinglog.Status) *ProcessingLogUpsert {
	u.Set(processinglog.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProcessingLogUpsert) UpdateStatus() *ProcessingLogUpsert {
	u.SetExcluded(processinglog.FieldStatus)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *ProcessingLogUpsert) SetRetryCount(v int) *ProcessingLogUpsert {
	u.Set(processinglog.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *ProcessingLogUpsert) UpdateRetryCount() *ProcessingLogUpsert {
	u.SetExcluded(processinglog.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *ProcessingLogUpsert) AddRetryCount(v int) *ProcessingLogUpsert {
	u.Add(processinglog.FieldRetryCount, v)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *ProcessingLogUpsert) SetCompletedAt(v time.Time) *ProcessingLogUpsert {
	u.Set(processinglog.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ProcessingLogUpsert) UpdateCompletedAt() *ProcessingLogUpsert {
	u.SetExcluded(processinglog.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ProcessingLogUpsert) ClearCompletedAt() *ProcessingLogUpsert {
	u.SetNull(processinglog.FieldCompletedAt)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *ProcessingLogUpsert) SetDurationMs(v int) *ProcessingLogUpsert {
	u.Set(processinglog.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ProcessingLogUpsert) UpdateDurationMs() *ProcessingLogUpsert {
	u.SetExcluded(processinglog.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ProcessingLogUpsert) AddDurationMs(v int) *ProcessingLogUpsert {
	u.Add(processinglog.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *ProcessingLogUpsert) ClearDurationMs() *ProcessingLogUpsert {
	u.SetNull(processinglog.FieldDurationMs)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ProcessingLogUpsert) SetErrorMessage(v string) *ProcessingLogUpsert {
	u.Set(processinglog.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ProcessingLogUpsert) UpdateErrorMessage() *ProcessingLogUpsert {
	u.SetExcluded(processinglog.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ProcessingLogUpsert) ClearErrorMessage() *ProcessingLogUpsert {
	u.SetNull(processinglog.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ProcessingLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProcessingLogUpsertOne) UpdateNewValues() *ProcessingLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(processinglog.FieldSessionID)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(processinglog.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProcessingLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProcessingLogUpsertOne) Ignore() *ProcessingLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProcessingLogUpsertOne) DoNothing() *ProcessingLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProcessingLogCreate.OnConflict
// documentation for more info.
func (u *ProcessingLogUpsertOne) Update(set func(*ProcessingLogUpsert)) *ProcessingLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProcessingLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetWave sets the "wave" field.
func (u *ProcessingLogUpsertOne) SetWave(v string) *ProcessingLogUpsertOne {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.SetWave(v)
	})
}

// UpdateWave sets the "wave" field to the value that was provided on create.
func (u *ProcessingLogUpsertOne) UpdateWave() *ProcessingLogUpsertOne {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.UpdateWave()
	})
}

// SetStatus sets the "status" field.
func (u *ProcessingLogUpsertOne) SetStatus(v processinglog.Status) *ProcessingLogUpsertOne {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProcessingLogUpsertOne) UpdateStatus() *ProcessingLogUpsertOne {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.UpdateStatus()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *ProcessingLogUpsertOne) SetRetryCount(v int) *ProcessingLogUpsertOne {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *ProcessingLogUpsertOne) AddRetryCount(v int) *ProcessingLogUpsertOne {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *ProcessingLogUpsertOne) UpdateRetryCount() *ProcessingLogUpsertOne {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.UpdateRetryCount()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ProcessingLogUpsertOne) SetCompletedAt(v time.Time) *ProcessingLogUpsertOne {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ProcessingLogUpsertOne) UpdateCompletedAt() *ProcessingLogUpsertOne {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ProcessingLogUpsertOne) ClearCompletedAt() *ProcessingLogUpsertOne {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *ProcessingLogUpsertOne) SetDurationMs(v int) *ProcessingLogUpsertOne {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ProcessingLogUpsertOne) AddDurationMs(v int) *ProcessingLogUpsertOne {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ProcessingLogUpsertOne) UpdateDurationMs() *ProcessingLogUpsertOne {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *ProcessingLogUpsertOne) ClearDurationMs() *ProcessingLogUpsertOne {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.ClearDurationMs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ProcessingLogUpsertOne) SetErrorMessage(v string) *ProcessingLogUpsertOne {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ProcessingLogUpsertOne) UpdateErrorMessage() *ProcessingLogUpsertOne {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ProcessingLogUpsertOne) ClearErrorMessage() *ProcessingLogUpsertOne {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *ProcessingLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProcessingLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProcessingLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProcessingLogUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProcessingLogUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProcessingLogCreateBulk is the builder for creating many ProcessingLog entities in bulk.
type ProcessingLogCreateBulk struct {
	config
	err      error
	builders []*ProcessingLogCreate
	conflict []sql.ConflictOption
}

// Save creates the ProcessingLog entities in the database.
func (_c *ProcessingLogCreateBulk) Save(ctx context.Context) ([]*ProcessingLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessingLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessingLogMutation)
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
func (_c *ProcessingLogCreateBulk) SaveX(ctx context.Context) []*ProcessingLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProcessingLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProcessingLogUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProcessingLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProcessingLogUpsertBulk {
	_c.conflict = opts
	return &ProcessingLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProcessingLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProcessingLogCreateBulk) OnConflictColumns(columns ...string) *ProcessingLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProcessingLogUpsertBulk{
		create: _c,
	}
}

// ProcessingLogUpsertBulk is the builder for "upsert"-ing
// a bulk of ProcessingLog nodes.
type ProcessingLogUpsertBulk struct {
	create *ProcessingLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProcessingLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProcessingLogUpsertBulk) UpdateNewValues() *ProcessingLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(processinglog.FieldSessionID)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(processinglog.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProcessingLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProcessingLogUpsertBulk) Ignore() *ProcessingLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProcessingLogUpsertBulk) DoNothing() *ProcessingLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProcessingLogCreateBulk.OnConflict
// documentation for more info.
func (u *ProcessingLogUpsertBulk) Update(set func(*ProcessingLogUpsert)) *ProcessingLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProcessingLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetWave sets the "wave" field.
func (u *ProcessingLogUpsertBulk) SetWave(v string) *ProcessingLogUpsertBulk {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.SetWave(v)
	})
}

// UpdateWave sets the "wave" field to the value that was provided on create.
func (u *ProcessingLogUpsertBulk) UpdateWave() *ProcessingLogUpsertBulk {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.UpdateWave()
	})
}

// SetStatus sets the "status" field.
func (u *ProcessingLogUpsertBulk) SetStatus(v processinglog.Status) *ProcessingLogUpsertBulk {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProcessingLogUpsertBulk) UpdateStatus() *ProcessingLogUpsertBulk {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.UpdateStatus()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *ProcessingLogUpsertBulk) SetRetryCount(v int) *ProcessingLogUpsertBulk {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *ProcessingLogUpsertBulk) AddRetryCount(v int) *ProcessingLogUpsertBulk {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *ProcessingLogUpsertBulk) UpdateRetryCount() *ProcessingLogUpsertBulk {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.UpdateRetryCount()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ProcessingLogUpsertBulk) SetCompletedAt(v time.Time) *ProcessingLogUpsertBulk {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ProcessingLogUpsertBulk) UpdateCompletedAt() *ProcessingLogUpsertBulk {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ProcessingLogUpsertBulk) ClearCompletedAt() *ProcessingLogUpsertBulk {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *ProcessingLogUpsertBulk) SetDurationMs(v int) *ProcessingLogUpsertBulk {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ProcessingLogUpsertBulk) AddDurationMs(v int) *ProcessingLogUpsertBulk {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ProcessingLogUpsertBulk) UpdateDurationMs() *ProcessingLogUpsertBulk {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *ProcessingLogUpsertBulk) ClearDurationMs() *ProcessingLogUpsertBulk {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.ClearDurationMs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ProcessingLogUpsertBulk) SetErrorMessage(v string) *ProcessingLogUpsertBulk {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ProcessingLogUpsertBulk) UpdateErrorMessage() *ProcessingLogUpsertBulk {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ProcessingLogUpsertBulk) ClearErrorMessage() *ProcessingLogUpsertBulk {
	return u.Update(func(s *ProcessingLogUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *ProcessingLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProcessingLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProcessingLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProcessingLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
