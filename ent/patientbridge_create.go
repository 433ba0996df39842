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
	"github.com/attune-health/attune/ent/patientbridge"
)

// PatientBridgeCreate is the builder for creating a PatientBridge entity.
type PatientBridgeCreate struct {
	config
	mutation *PatientBridgeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetData sets the "data" field.
func (_c *PatientBridgeCreate) SetData(v map[string]interface{}) *PatientBridgeCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *PatientBridgeCreate) SetVersion(v int) *PatientBridgeCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetMetadataID sets the "metadata_id" field.
func (_c *PatientBridgeCreate) SetMetadataID(v int) *PatientBridgeCreate {
	_c.mutation.SetMetadataID(v)
	return _c
}

// SetNillableMetadataID sets the "metadata_id" field if the given value is not nil.
func (_c *PatientBridgeCreate) SetNillableMetadataID(v *int) *PatientBridgeCreate {
	if v != nil {
		_c.SetMetadataID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientBridgeCreate) SetCreatedAt(v time.Time) *PatientBridgeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientBridgeCreate) SetNillableCreatedAt(v *time.Time) *PatientBridgeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientBridgeCreate) SetUpdatedAt(v time.Time) *PatientBridgeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientBridgeCreate) SetNillableUpdatedAt(v *time.Time) *PatientBridgeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientBridgeCreate) SetID(v string) *PatientBridgeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PatientBridgeMutation object of the builder.
func (_c *PatientBridgeCreate) Mutation() *PatientBridgeMutation {
	return _c.mutation
}

// Save creates the PatientBridge in the database.
func (_c *PatientBridgeCreate) Save(ctx context.Context) (*PatientBridge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientBridgeCreate) SaveX(ctx context.Context) *PatientBridge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientBridgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientBridgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientBridgeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patientbridge.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patientbridge.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientBridgeCreate) check() error {
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "PatientBridge.data"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "PatientBridge.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PatientBridge.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PatientBridge.updated_at"`)}
	}
	return nil
}

func (_c *PatientBridgeCreate) sqlSave(ctx context.Context) (*PatientBridge, error) {
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
			return nil, fmt.Errorf("unexpected PatientBridge.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PatientBridgeCreate) createSpec() (*PatientBridge, *sqlgraph.CreateSpec) {
	var (
		_node = &PatientBridge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patientbridge.Table, sqlgraph.NewFieldSpec(patientbridge.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(patientbridge.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(patientbridge.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.MetadataID(); ok {
		_spec.SetField(patientbridge.FieldMetadataID, field.TypeInt, value)
		_node.MetadataID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patientbridge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patientbridge.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientBridge.Create().
//		SetData(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientBridgeUpsert) {
//			SetData(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientBridgeCreate) OnConflict(opts ...sql.ConflictOption) *PatientBridgeUpsertOne {
	_c.conflict = opts
	return &PatientBridgeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientBridge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientBridgeCreate) OnConflictColumns(columns ...string) *PatientBridgeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientBridgeUpsertOne{
		create: _c,
	}
}

type (
	// PatientBridgeUpsertOne is the builder for "upsert"-ing
	//  one PatientBridge node.
	PatientBridgeUpsertOne struct {
		create *PatientBridgeCreate
	}

	// PatientBridgeUpsert is the "OnConflict" setter.
	PatientBridgeUpsert struct {
		*sql.UpdateSet
	}
)

// SetData sets the "data" field.
func (u *PatientBridgeUpsert) SetData(v map[string]interface{}) *PatientBridgeUpsert {
	u.Set(patientbridge.FieldData, v)
	return u
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *PatientBridgeUpsert) UpdateData() *PatientBridgeUpsert {
	u.SetExcluded(patientbridge.FieldData)
	return u
}

// SetVersion sets the "version" field.
func (u *PatientBridgeUpsert) SetVersion(v int) *PatientBridgeUpsert {
	u.Set(patientbridge.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *PatientBridgeUpsert) UpdateVersion() *PatientBridgeUpsert {
	u.SetExcluded(patientbridge.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *PatientBridgeUpsert) AddVersion(v int) *PatientBridgeUpsert {
	u.Add(patientbridge.FieldVersion, v)
	return u
}

// SetMetadataID sets the "metadata_id" field.
func (u *PatientBridgeUpsert) SetMetadataID(v int) *PatientBridgeUpsert {
	u.Set(patientbridge.FieldMetadataID, v)
	return u
}

// UpdateMetadataID sets the "metadata_id" field to the value that was provided on create.
func (u *PatientBridgeUpsert) UpdateMetadataID() *PatientBridgeUpsert {
	u.SetExcluded(patientbridge.FieldMetadataID)
	return u
}

// AddMetadataID adds v to the "metadata_id" field.
func (u *PatientBridgeUpsert) AddMetadataID(v int) *PatientBridgeUpsert {
	u.Add(patientbridge.FieldMetadataID, v)
	return u
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (u *PatientBridgeUpsert) ClearMetadataID() *PatientBridgeUpsert {
	u.SetNull(patientbridge.FieldMetadataID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientBridgeUpsert) SetUpdatedAt(v time.Time) *PatientBridgeUpsert {
	u.Set(patientbridge.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientBridgeUpsert) UpdateUpdatedAt() *PatientBridgeUpsert {
	u.SetExcluded(patientbridge.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PatientBridge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientbridge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientBridgeUpsertOne) UpdateNewValues() *PatientBridgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patientbridge.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patientbridge.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientBridge.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientBridgeUpsertOne) Ignore() *PatientBridgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientBridgeUpsertOne) DoNothing() *PatientBridgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientBridgeCreate.OnConflict
// documentation for more info.
func (u *PatientBridgeUpsertOne) Update(set func(*PatientBridgeUpsert)) *PatientBridgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientBridgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetData sets the "data" field.
func (u *PatientBridgeUpsertOne) SetData(v map[string]interface{}) *PatientBridgeUpsertOne {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *PatientBridgeUpsertOne) UpdateData() *PatientBridgeUpsertOne {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.UpdateData()
	})
}

// SetVersion sets the "version" field.
func (u *PatientBridgeUpsertOne) SetVersion(v int) *PatientBridgeUpsertOne {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *PatientBridgeUpsertOne) AddVersion(v int) *PatientBridgeUpsertOne {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *PatientBridgeUpsertOne) UpdateVersion() *PatientBridgeUpsertOne {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.UpdateVersion()
	})
}

// SetMetadataID sets the "metadata_id" field.
func (u *PatientBridgeUpsertOne) SetMetadataID(v int) *PatientBridgeUpsertOne {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.SetMetadataID(v)
	})
}

// AddMetadataID adds v to the "metadata_id" field.
func (u *PatientBridgeUpsertOne) AddMetadataID(v int) *PatientBridgeUpsertOne {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.AddMetadataID(v)
	})
}

// UpdateMetadataID sets the "metadata_id" field to the value that was provided on create.
func (u *PatientBridgeUpsertOne) UpdateMetadataID() *PatientBridgeUpsertOne {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.UpdateMetadataID()
	})
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (u *PatientBridgeUpsertOne) ClearMetadataID() *PatientBridgeUpsertOne {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.ClearMetadataID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientBridgeUpsertOne) SetUpdatedAt(v time.Time) *PatientBridgeUpsertOne {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientBridgeUpsertOne) UpdateUpdatedAt() *PatientBridgeUpsertOne {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PatientBridgeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PatientBridgeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientBridgeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientBridgeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PatientBridgeUpsertOne.ID is not supported by MySQL driver. Use PatientBridgeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientBridgeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientBridgeCreateBulk is the builder for creating many PatientBridge entities in bulk.
type PatientBridgeCreateBulk struct {
	config
	err      error
	builders []*PatientBridgeCreate
	conflict []sql.ConflictOption
}

// Save creates the PatientBridge entities in the database.
func (_c *PatientBridgeCreateBulk) Save(ctx context.Context) ([]*PatientBridge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatientBridge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientBridgeMutation)
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
func (_c *PatientBridgeCreateBulk) SaveX(ctx context.Context) []*PatientBridge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientBridgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientBridgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientBridge.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientBridgeUpsert) {
//			SetData(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientBridgeCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientBridgeUpsertBulk {
	_c.conflict = opts
	return &PatientBridgeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientBridge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientBridgeCreateBulk) OnConflictColumns(columns ...string) *PatientBridgeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientBridgeUpsertBulk{
		create: _c,
	}
}

// PatientBridgeUpsertBulk is the builder for "upsert"-ing
// a bulk of PatientBridge nodes.
type PatientBridgeUpsertBulk struct {
	create *PatientBridgeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PatientBridge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientbridge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientBridgeUpsertBulk) UpdateNewValues() *PatientBridgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patientbridge.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patientbridge.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientBridge.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientBridgeUpsertBulk) Ignore() *PatientBridgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientBridgeUpsertBulk) DoNothing() *PatientBridgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientBridgeCreateBulk.OnConflict
// documentation for more info.
func (u *PatientBridgeUpsertBulk) Update(set func(*PatientBridgeUpsert)) *PatientBridgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientBridgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetData sets the "data" field.
func (u *PatientBridgeUpsertBulk) SetData(v map[string]interface{}) *PatientBridgeUpsertBulk {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *PatientBridgeUpsertBulk) UpdateData() *PatientBridgeUpsertBulk {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.UpdateData()
	})
}

// SetVersion sets the "version" field.
func (u *PatientBridgeUpsertBulk) SetVersion(v int) *PatientBridgeUpsertBulk {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *PatientBridgeUpsertBulk) AddVersion(v int) *PatientBridgeUpsertBulk {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *PatientBridgeUpsertBulk) UpdateVersion() *PatientBridgeUpsertBulk {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.UpdateVersion()
	})
}

// SetMetadataID sets the "metadata_id" field.
func (u *PatientBridgeUpsertBulk) SetMetadataID(v int) *PatientBridgeUpsertBulk {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.SetMetadataID(v)
	})
}

// AddMetadataID adds v to the "metadata_id" field.
func (u *PatientBridgeUpsertBulk) AddMetadataID(v int) *PatientBridgeUpsertBulk {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.AddMetadataID(v)
	})
}

// UpdateMetadataID sets the "metadata_id" field to the value that was provided on create.
func (u *PatientBridgeUpsertBulk) UpdateMetadataID() *PatientBridgeUpsertBulk {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.UpdateMetadataID()
	})
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (u *PatientBridgeUpsertBulk) ClearMetadataID() *PatientBridgeUpsertBulk {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.ClearMetadataID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientBridgeUpsertBulk) SetUpdatedAt(v time.Time) *PatientBridgeUpsertBulk {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientBridgeUpsertBulk) UpdateUpdatedAt() *PatientBridgeUpsertBulk {
	return u.Update(func(s *PatientBridgeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PatientBridgeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PatientBridgeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PatientBridgeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientBridgeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
