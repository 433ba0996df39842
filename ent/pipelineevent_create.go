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
	"github.com/attune-health/attune/ent/patient"
	"github.com/attune-health/attune/ent/pipelineevent"
)

// PipelineEventCreate is the builder for creating a PipelineEvent entity.
type PipelineEventCreate struct {
	config
	mutation *PipelineEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPatientID sets the "patient_id" field.
func (_c *PipelineEventCreate) SetPatientID(v string) *PipelineEventCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *PipelineEventCreate) SetPhase(v pipelineevent.Phase) *PipelineEventCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *PipelineEventCreate) SetEventType(v string) *PipelineEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PipelineEventCreate) SetSessionID(v string) *PipelineEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *PipelineEventCreate) SetNillableSessionID(v *string) *PipelineEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineEventCreate) SetStatus(v string) *PipelineEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *PipelineEventCreate) SetDetails(v map[string]interface{}) *PipelineEventCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineEventCreate) SetCreatedAt(v time.Time) *PipelineEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineEventCreate) SetNillableCreatedAt(v *time.Time) *PipelineEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetConsumed sets the "consumed" field.
func (_c *PipelineEventCreate) SetConsumed(v bool) *PipelineEventCreate {
	_c.mutation.SetConsumed(v)
	return _c
}

// SetNillableConsumed sets the "consumed" field if the given value is not nil.
func (_c *PipelineEventCreate) SetNillableConsumed(v *bool) *PipelineEventCreate {
	if v != nil {
		_c.SetConsumed(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *PipelineEventCreate) SetPatient(v *Patient) *PipelineEventCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the PipelineEventMutation object of the builder.
func (_c *PipelineEventCreate) Mutation() *PipelineEventMutation {
	return _c.mutation
}

// Save creates the PipelineEvent in the database.
func (_c *PipelineEventCreate) Save(ctx context.Context) (*PipelineEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineEventCreate) SaveX(ctx context.Context) *PipelineEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelineevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Consumed(); !ok {
		v := pipelineevent.DefaultConsumed
		_c.mutation.SetConsumed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineEventCreate) check() error {
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "PipelineEvent.patient_id"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "PipelineEvent.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := pipelineevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "PipelineEvent.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "PipelineEvent.event_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineEvent.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineEvent.created_at"`)}
	}
	if _, ok := _c.mutation.Consumed(); !ok {
		return &ValidationError{Name: "consumed", err: errors.New(`ent: missing required field "PipelineEvent.consumed"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`ent: missing required edge "PipelineEvent.patient"`)}
	}
	return nil
}

func (_c *PipelineEventCreate) sqlSave(ctx context.Context) (*PipelineEvent, error) {
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

func (_c *PipelineEventCreate) createSpec() (*PipelineEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelineevent.Table, sqlgraph.NewFieldSpec(pipelineevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(pipelineevent.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(pipelineevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(pipelineevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelineevent.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(pipelineevent.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelineevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Consumed(); ok {
		_spec.SetField(pipelineevent.FieldConsumed, field.TypeBool, value)
		_node.Consumed = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelineevent.PatientTable,
			Columns: []string{pipelineevent.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineEvent.Create().
//		SetPatientID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineEventUpsert) {
//			SetPatientID(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineEventCreate) OnConflict(opts ...sql.ConflictOption) *PipelineEventUpsertOne {
	_c.conflict = opts
	return &PipelineEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineEventCreate) OnConflictColumns(columns ...string) *PipelineEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineEventUpsertOne{
		create: _c,
	}
}

type (
	// PipelineEventUpsertOne is the builder for "upsert"-ing
	//  one PipelineEvent node.
	PipelineEventUpsertOne struct {
		create *PipelineEventCreate
	}

	// PipelineEventUpsert is the "OnConflict" setter.
	PipelineEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetDetails sets the "details" field.
func (u *PipelineEventUpsert) SetDetails(v map[string]interface{}) *PipelineEventUpsert {
	u.Set(pipelineevent.FieldDetails, v)
	return u
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *PipelineEventUpsert) UpdateDetails() *PipelineEventUpsert {
	u.SetExcluded(pipelineevent.FieldDetails)
	return u
}

// ClearDetails clears the value of the "details" field.
func (u *PipelineEventUpsert) ClearDetails() *PipelineEventUpsert {
	u.SetNull(pipelineevent.FieldDetails)
	return u
}

// SetConsumed sets the "consumed" field.
func (u *PipelineEventUpsert) SetConsumed(v bool) *PipelineEventUpsert {
	u.Set(pipelineevent.FieldConsumed, v)
	return u
}

// UpdateConsumed sets the "consumed" field to the value that was provided on create.
func (u *PipelineEventUpsert) UpdateConsumed() *PipelineEventUpsert {
	u.SetExcluded(pipelineevent.FieldConsumed)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PipelineEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PipelineEventUpsertOne) UpdateNewValues() *PipelineEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.PatientID(); exists {
			s.SetIgnore(pipelineevent.FieldPatientID)
		}
		if _, exists := u.create.mutation.Phase(); exists {
			s.SetIgnore(pipelineevent.FieldPhase)
		}
		if _, exists := u.create.mutation.EventType(); exists {
			s.SetIgnore(pipelineevent.FieldEventType)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(pipelineevent.FieldSessionID)
		}
		if _, exists := u.create.mutation.Status(); exists {
			s.SetIgnore(pipelineevent.FieldStatus)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pipelineevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PipelineEventUpsertOne) Ignore() *PipelineEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineEventUpsertOne) DoNothing() *PipelineEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineEventCreate.OnConflict
// documentation for more info.
func (u *PipelineEventUpsertOne) Update(set func(*PipelineEventUpsert)) *PipelineEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetDetails sets the "details" field.
func (u *PipelineEventUpsertOne) SetDetails(v map[string]interface{}) *PipelineEventUpsertOne {
	return u.Update(func(s *PipelineEventUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *PipelineEventUpsertOne) UpdateDetails() *PipelineEventUpsertOne {
	return u.Update(func(s *PipelineEventUpsert) {
		s.UpdateDetails()
	})
}

// ClearDetails clears the value of the "details" field.
func (u *PipelineEventUpsertOne) ClearDetails() *PipelineEventUpsertOne {
	return u.Update(func(s *PipelineEventUpsert) {
		s.ClearDetails()
	})
}

// SetConsumed sets the "consumed" field.
func (u *PipelineEventUpsertOne) SetConsumed(v bool) *PipelineEventUpsertOne {
	return u.Update(func(s *PipelineEventUpsert) {
		s.SetConsumed(v)
	})
}

// UpdateConsumed sets the "consumed" field to the value that was provided on create.
func (u *PipelineEventUpsertOne) UpdateConsumed() *PipelineEventUpsertOne {
	return u.Update(func(s *PipelineEventUpsert) {
		s.UpdateConsumed()
	})
}

// Exec executes the query.
func (u *PipelineEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PipelineEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PipelineEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PipelineEventCreateBulk is the builder for creating many PipelineEvent entities in bulk.
type PipelineEventCreateBulk struct {
	config
	err      error
	builders []*PipelineEventCreate
	conflict []sql.ConflictOption
}

// Save creates the PipelineEvent entities in the database.
func (_c *PipelineEventCreateBulk) Save(ctx context.Context) ([]*PipelineEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineEventMutation)
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
func (_c *PipelineEventCreateBulk) SaveX(ctx context.Context) []*PipelineEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineEventUpsert) {
//			SetPatientID(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *PipelineEventUpsertBulk {
	_c.conflict = opts
	return &PipelineEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineEventCreateBulk) OnConflictColumns(columns ...string) *PipelineEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineEventUpsertBulk{
		create: _c,
	}
}

// PipelineEventUpsertBulk is the builder for "upsert"-ing
// a bulk of PipelineEvent nodes.
type PipelineEventUpsertBulk struct {
	create *PipelineEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PipelineEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PipelineEventUpsertBulk) UpdateNewValues() *PipelineEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.PatientID(); exists {
				s.SetIgnore(pipelineevent.FieldPatientID)
			}
			if _, exists := b.mutation.Phase(); exists {
				s.SetIgnore(pipelineevent.FieldPhase)
			}
			if _, exists := b.mutation.EventType(); exists {
				s.SetIgnore(pipelineevent.FieldEventType)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(pipelineevent.FieldSessionID)
			}
			if _, exists := b.mutation.Status(); exists {
				s.SetIgnore(pipelineevent.FieldStatus)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pipelineevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PipelineEventUpsertBulk) Ignore() *PipelineEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineEventUpsertBulk) DoNothing() *PipelineEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineEventCreateBulk.OnConflict
// documentation for more info.
func (u *PipelineEventUpsertBulk) Update(set func(*PipelineEventUpsert)) *PipelineEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetDetails sets the "details" field.
func (u *PipelineEventUpsertBulk) SetDetails(v map[string]interface{}) *PipelineEventUpsertBulk {
	return u.Update(func(s *PipelineEventUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *PipelineEventUpsertBulk) UpdateDetails() *PipelineEventUpsertBulk {
	return u.Update(func(s *PipelineEventUpsert) {
		s.UpdateDetails()
	})
}

// ClearDetails clears the value of the "details" field.
func (u *PipelineEventUpsertBulk) ClearDetails() *PipelineEventUpsertBulk {
	return u.Update(func(s *PipelineEventUpsert) {
		s.ClearDetails()
	})
}

// SetConsumed sets the "consumed" field.
func (u *PipelineEventUpsertBulk) SetConsumed(v bool) *PipelineEventUpsertBulk {
	return u.Update(func(s *PipelineEventUpsert) {
		s.SetConsumed(v)
	})
}

// UpdateConsumed sets the "consumed" field to the value that was provided on create.
func (u *PipelineEventUpsertBulk) UpdateConsumed() *PipelineEventUpsertBulk {
	return u.Update(func(s *PipelineEventUpsert) {
		s.UpdateConsumed()
	})
}

// Exec executes the query.
func (u *PipelineEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PipelineEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
