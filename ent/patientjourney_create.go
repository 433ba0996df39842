// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/attune-health/attune/ent/patientjourney"
)

// PatientJourneyCreate is the builder for creating a PatientJourney entity.
type PatientJourneyCreate struct {
	config
	mutation *PatientJourneyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetData sets the "data" field.
func (_c *PatientJourneyCreate) SetData(v map[string]interface{}) *PatientJourneyCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *PatientJourneyCreate) SetVersion(v int) *PatientJourneyCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetMetadataID sets the "metadata_id" field.
func (_c *PatientJourneyCreate) SetMetadataID(v int) *PatientJourneyCreate {
	_c.mutation.SetMetadataID(v)
	return _c
}

// SetNillableMetadataID sets the "metadata_id" field if the given value is not nil.
func (_c *PatientJourneyCreate) SetNillableMetadataID(v *int) *PatientJourneyCreate {
	if v != nil {
		_c.SetMetadataID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientJourneyCreate) SetCreatedAt(v time.Time) *PatientJourneyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientJourneyCreate) SetNillableCreatedAt(v *time.Time) *PatientJourneyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientJourneyCreate) SetUpdatedAt(v time.Time) *PatientJourneyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientJourneyCreate) SetNillableUpdatedAt(v *time.Time) *PatientJourneyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientJourneyCreate) SetID(v string) *PatientJourneyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PatientJourneyMutation object of the builder.
func (_c *PatientJourneyCreate) Mutation() *PatientJourneyMutation {
	return _c.mutation
}

// Save creates the PatientJourney in the database.
func (_c *PatientJourneyCreate) Save(ctx context.Context) (*PatientJourney, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientJourneyCreate) SaveX(ctx context.Context) *PatientJourney {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientJourneyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientJourneyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientJourneyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patientjourney.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patientjourney.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientJourneyCreate) check() error {
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "PatientJourney.data"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "PatientJourney.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PatientJourney.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PatientJourney.updated_at"`)}
	}
	return nil
}

func (_c *PatientJourneyCreate) sqlSave(ctx context.Context) (*PatientJourney, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PatientJourney.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PatientJourneyCreate) createSpec() (*PatientJourney, *sqlgraph.CreateSpec) {
	var (
		_node = &PatientJourney{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patientjourney.Table, sqlgraph.NewFieldSpec(patientjourney.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(patientjourney.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(patientjourney.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.MetadataID(); ok {
		_spec.SetField(patientjourney.FieldMetadataID, field.TypeInt, value)
		_node.MetadataID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patientjourney.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patientjourney.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientJourney.Create().
//		SetData(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientJourneyUpsert) {
//			SetData(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientJourneyCreate) OnConflict(opts ...sql.ConflictOption) *PatientJourneyUpsertOne {
	_c.conflict = opts
	return &PatientJourneyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientJourney.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientJourneyCreate) OnConflictColumns(columns ...string) *PatientJourneyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientJourneyUpsertOne{
		create: _c,
	}
}

type (
	// PatientJourneyUpsertOne is the builder for "upsert"-ing
	//  one PatientJourney node.
	PatientJourneyUpsertOne struct {
		create *PatientJourneyCreate
	}

	// PatientJourneyUpsert is the "OnConflict" setter.
	PatientJourneyUpsert struct {
		*sql.UpdateSet
	}
)

// SetData sets the "data" field.
func (u *PatientJourneyUpsert) SetData(v map[string]interface{}) *PatientJourneyUpsert {
	u.Set(patientjourney.FieldData, v)
	return u
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *PatientJourneyUpsert) UpdateData() *PatientJourneyUpsert {
	u.SetExcluded(patientjourney.FieldData)
	return u
}

// SetVersion sets the "version" field.
func (u *PatientJourneyUpsert) SetVersion(v int) *PatientJourneyUpsert {
	u.Set(patientjourney.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *PatientJourneyUpsert) UpdateVersion() *PatientJourneyUpsert {
	u.SetExcluded(patientjourney.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *PatientJourneyUpsert) AddVersion(v int) *PatientJourneyUpsert {
	u.Add(patientjourney.FieldVersion, v)
	return u
}

// SetMetadataID sets the "metadata_id" field.
func (u *PatientJourneyUpsert) SetMetadataID(v int) *PatientJourneyUpsert {
	u.Set(patientjourney.FieldMetadataID, v)
	return u
}

// UpdateMetadataID sets the "metadata_id" field to the value that was provided on create.
func (u *PatientJourneyUpsert) UpdateMetadataID() *PatientJourneyUpsert {
	u.SetExcluded(patientjourney.FieldMetadataID)
	return u
}

// AddMetadataID adds v to the "metadata_id" field.
func (u *PatientJourneyUpsert) AddMetadataID(v int) *PatientJourneyUpsert {
	u.Add(patientjourney.FieldMetadataID, v)
	return u
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (u *PatientJourneyUpsert) ClearMetadataID() *PatientJourneyUpsert {
	u.SetNull(patientjourney.FieldMetadataID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientJourneyUpsert) SetUpdatedAt(v time.Time) *PatientJourneyUpsert {
	u.Set(patientjourney.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientJourneyUpsert) UpdateUpdatedAt() *PatientJourneyUpsert {
	u.SetExcluded(patientjourney.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PatientJourney.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientjourney.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientJourneyUpsertOne) UpdateNewValues() *PatientJourneyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patientjourney.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patientjourney.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientJourney.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientJourneyUpsertOne) Ignore() *PatientJourneyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientJourneyUpsertOne) DoNothing() *PatientJourneyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientJourneyCreate.OnConflict
// documentation for more info.
func (u *PatientJourneyUpsertOne) Update(set func(*PatientJourneyUpsert)) *PatientJourneyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientJourneyUpsert{UpdateSet: update})
	}))
	return u
}

// SetData sets the "data" field.
func (u *PatientJourneyUpsertOne) SetData(v map[string]interface{}) *PatientJourneyUpsertOne {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *PatientJourneyUpsertOne) UpdateData() *PatientJourneyUpsertOne {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.UpdateData()
	})
}

// SetVersion sets the "version" field.
func (u *PatientJourneyUpsertOne) SetVersion(v int) *PatientJourneyUpsertOne {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *PatientJourneyUpsertOne) AddVersion(v int) *PatientJourneyUpsertOne {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *PatientJourneyUpsertOne) UpdateVersion() *PatientJourneyUpsertOne {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.UpdateVersion()
	})
}

// SetMetadataID sets the "metadata_id" field.
func (u *PatientJourneyUpsertOne) SetMetadataID(v int) *PatientJourneyUpsertOne {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.SetMetadataID(v)
	})
}

// AddMetadataID adds v to the "metadata_id" field.
func (u *PatientJourneyUpsertOne) AddMetadataID(v int) *PatientJourneyUpsertOne {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.AddMetadataID(v)
	})
}

// UpdateMetadataID sets the "metadata_id" field to the value that was provided on create.
func (u *PatientJourneyUpsertOne) UpdateMetadataID() *PatientJourneyUpsertOne {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.UpdateMetadataID()
	})
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (u *PatientJourneyUpsertOne) ClearMetadataID() *PatientJourneyUpsertOne {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.ClearMetadataID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientJourneyUpsertOne) SetUpdatedAt(v time.Time) *PatientJourneyUpsertOne {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientJourneyUpsertOne) UpdateUpdatedAt() *PatientJourneyUpsertOne {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PatientJourneyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PatientJourneyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientJourneyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientJourneyUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PatientJourneyUpsertOne.ID is not supported by MySQL driver. Use PatientJourneyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientJourneyUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientJourneyCreateBulk is the builder for creating many PatientJourney entities in bulk.
type PatientJourneyCreateBulk struct {
	config
	err      error
	builders []*PatientJourneyCreate
	conflict []sql.ConflictOption
}

// Save creates the PatientJourney entities in the database.
func (_c *PatientJourneyCreateBulk) Save(ctx context.Context) ([]*PatientJourney, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatientJourney, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientJourneyMutation)
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
func (_c *PatientJourneyCreateBulk) SaveX(ctx context.Context) []*PatientJourney {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientJourneyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientJourneyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientJourney.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientJourneyUpsert) {
//			SetData(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientJourneyCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientJourneyUpsertBulk {
	_c.conflict = opts
	return &PatientJourneyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientJourney.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientJourneyCreateBulk) OnConflictColumns(columns ...string) *PatientJourneyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientJourneyUpsertBulk{
		create: _c,
	}
}

// PatientJourneyUpsertBulk is the builder for "upsert"-ing
// a bulk of PatientJourney nodes.
type PatientJourneyUpsertBulk struct {
	create *PatientJourneyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PatientJourney.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientjourney.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientJourneyUpsertBulk) UpdateNewValues() *PatientJourneyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patientjourney.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patientjourney.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientJourney.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientJourneyUpsertBulk) Ignore() *PatientJourneyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientJourneyUpsertBulk) DoNothing() *PatientJourneyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientJourneyCreateBulk.OnConflict
// documentation for more info.
func (u *PatientJourneyUpsertBulk) Update(set func(*PatientJourneyUpsert)) *PatientJourneyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientJourneyUpsert{UpdateSet: update})
	}))
	return u
}

// SetData sets the "data" field.
func (u *PatientJourneyUpsertBulk) SetData(v map[string]interface{}) *PatientJourneyUpsertBulk {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *PatientJourneyUpsertBulk) UpdateData() *PatientJourneyUpsertBulk {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.UpdateData()
	})
}

// SetVersion sets the "version" field.
func (u *PatientJourneyUpsertBulk) SetVersion(v int) *PatientJourneyUpsertBulk {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *PatientJourneyUpsertBulk) AddVersion(v int) *PatientJourneyUpsertBulk {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *PatientJourneyUpsertBulk) UpdateVersion() *PatientJourneyUpsertBulk {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.UpdateVersion()
	})
}

// SetMetadataID sets the "metadata_id" field.
func (u *PatientJourneyUpsertBulk) SetMetadataID(v int) *PatientJourneyUpsertBulk {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.SetMetadataID(v)
	})
}

// AddMetadataID adds v to the "metadata_id" field.
func (u *PatientJourneyUpsertBulk) AddMetadataID(v int) *PatientJourneyUpsertBulk {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.AddMetadataID(v)
	})
}

// UpdateMetadataID sets the "metadata_id" field to the value that was provided on create.
func (u *PatientJourneyUpsertBulk) UpdateMetadataID() *PatientJourneyUpsertBulk {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.UpdateMetadataID()
	})
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (u *PatientJourneyUpsertBulk) ClearMetadataID() *PatientJourneyUpsertBulk {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.ClearMetadataID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientJourneyUpsertBulk) SetUpdatedAt(v time.Time) *PatientJourneyUpsertBulk {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientJourneyUpsertBulk) UpdateUpdatedAt() *PatientJourneyUpsertBulk {
	return u.Update(func(s *PatientJourneyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PatientJourneyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PatientJourneyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PatientJourneyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientJourneyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
