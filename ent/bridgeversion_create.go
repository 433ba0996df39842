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
	"github.com/attune-health/attune/ent/bridgeversion"
	"github.com/attune-health/attune/ent/patient"
)

// BridgeVersionCreate is the builder for creating a BridgeVersion entity.
type BridgeVersionCreate struct {
	config
	mutation *BridgeVersionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPatientID sets the "patient_id" field.
func (_c *BridgeVersionCreate) SetPatientID(v string) *BridgeVersionCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *BridgeVersionCreate) SetVersion(v int) *BridgeVersionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetData sets the "data" field.
func (_c *BridgeVersionCreate) SetData(v map[string]interface{}) *BridgeVersionCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetMetadataID sets the "metadata_id" field.
func (_c *BridgeVersionCreate) SetMetadataID(v int) *BridgeVersionCreate {
	_c.mutation.SetMetadataID(v)
	return _c
}

// SetNillableMetadataID sets the "metadata_id" field if the given value is not nil.
func (_c *BridgeVersionCreate) SetNillableMetadataID(v *int) *BridgeVersionCreate {
	if v != nil {
		_c.SetMetadataID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BridgeVersionCreate) SetCreatedAt(v time.Time) *BridgeVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BridgeVersionCreate) SetNillableCreatedAt(v *time.Time) *BridgeVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *BridgeVersionCreate) SetPatient(v *Patient) *BridgeVersionCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the BridgeVersionMutation object of the builder.
func (_c *BridgeVersionCreate) Mutation() *BridgeVersionMutation {
	return _c.mutation
}

// Save creates the BridgeVersion in the database.
func (_c *BridgeVersionCreate) Save(ctx context.Context) (*BridgeVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BridgeVersionCreate) SaveX(ctx context.Context) *BridgeVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BridgeVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BridgeVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BridgeVersionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bridgeversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BridgeVersionCreate) check() error {
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "BridgeVersion.patient_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "BridgeVersion.version"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "BridgeVersion.data"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BridgeVersion.created_at"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`ent: missing required edge "BridgeVersion.patient"`)}
	}
	return nil
}

func (_c *BridgeVersionCreate) sqlSave(ctx context.Context) (*BridgeVersion, error) {
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

func (_c *BridgeVersionCreate) createSpec() (*BridgeVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &BridgeVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bridgeversion.Table, sqlgraph.NewFieldSpec(bridgeversion.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(bridgeversion.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(bridgeversion.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.MetadataID(); ok {
		_spec.SetField(bridgeversion.FieldMetadataID, field.TypeInt, value)
		_node.MetadataID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bridgeversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bridgeversion.PatientTable,
			Columns: []string{bridgeversion.PatientColumn},
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
//	client.BridgeVersion.Create().
//		SetPatientID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BridgeVersionUpsert) {
//			SetPatientID(v+v).
//		}).
//		Exec(ctx)
func (_c *BridgeVersionCreate) OnConflict(opts ...sql.ConflictOption) *BridgeVersionUpsertOne {
	_c.conflict = opts
	return &BridgeVersionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BridgeVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BridgeVersionCreate) OnConflictColumns(columns ...string) *BridgeVersionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BridgeVersionUpsertOne{
		create: _c,
	}
}

type (
	// BridgeVersionUpsertOne is the builder for "upsert"-ing
	//  one BridgeVersion node.
	BridgeVersionUpsertOne struct {
		create *BridgeVersionCreate
	}

	// BridgeVersionUpsert is the "OnConflict" setter.
	BridgeVersionUpsert struct {
		*sql.UpdateSet
	}
)

// SetMetadataID sets the "metadata_id" field.
func (u *BridgeVersionUpsert) SetMetadataID(v int) *BridgeVersionUpsert {
	u.Set(bridgeversion.FieldMetadataID, v)
	return u
}

// UpdateMetadataID sets the "metadata_id" field to the value that was provided on create.
func (u *BridgeVersionUpsert) UpdateMetadataID() *BridgeVersionUpsert {
	u.SetExcluded(bridgeversion.FieldMetadataID)
	return u
}

// AddMetadataID adds v to the "metadata_id" field.
func (u *BridgeVersionUpsert) AddMetadataID(v int) *BridgeVersionUpsert {
	u.Add(bridgeversion.FieldMetadataID, v)
	return u
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (u *BridgeVersionUpsert) ClearMetadataID() *BridgeVersionUpsert {
	u.SetNull(bridgeversion.FieldMetadataID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.BridgeVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BridgeVersionUpsertOne) UpdateNewValues() *BridgeVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.PatientID(); exists {
			s.SetIgnore(bridgeversion.FieldPatientID)
		}
		if _, exists := u.create.mutation.Version(); exists {
			s.SetIgnore(bridgeversion.FieldVersion)
		}
		if _, exists := u.create.mutation.Data(); exists {
			s.SetIgnore(bridgeversion.FieldData)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(bridgeversion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BridgeVersion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BridgeVersionUpsertOne) Ignore() *BridgeVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BridgeVersionUpsertOne) DoNothing() *BridgeVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BridgeVersionCreate.OnConflict
// documentation for more info.
func (u *BridgeVersionUpsertOne) Update(set func(*BridgeVersionUpsert)) *BridgeVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BridgeVersionUpsert{UpdateSet: update})
	}))
	return u
}

// SetMetadataID sets the "metadata_id" field.
func (u *BridgeVersionUpsertOne) SetMetadataID(v int) *BridgeVersionUpsertOne {
	return u.Update(func(s *BridgeVersionUpsert) {
		s.SetMetadataID(v)
	})
}

// AddMetadataID adds v to the "metadata_id" field.
func (u *BridgeVersionUpsertOne) AddMetadataID(v int) *BridgeVersionUpsertOne {
	return u.Update(func(s *BridgeVersionUpsert) {
		s.AddMetadataID(v)
	})
}

// UpdateMetadataID sets the "metadata_id" field to the value that was provided on create.
func (u *BridgeVersionUpsertOne) UpdateMetadataID() *BridgeVersionUpsertOne {
	return u.Update(func(s *BridgeVersionUpsert) {
		s.UpdateMetadataID()
	})
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (u *BridgeVersionUpsertOne) ClearMetadataID() *BridgeVersionUpsertOne {
	return u.Update(func(s *BridgeVersionUpsert) {
		s.ClearMetadataID()
	})
}

// Exec executes the query.
func (u *BridgeVersionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BridgeVersionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BridgeVersionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BridgeVersionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BridgeVersionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BridgeVersionCreateBulk is the builder for creating many BridgeVersion entities in bulk.
type BridgeVersionCreateBulk struct {
	config
	err      error
	builders []*BridgeVersionCreate
	conflict []sql.ConflictOption
}

// Save creates the BridgeVersion entities in the database.
func (_c *BridgeVersionCreateBulk) Save(ctx context.Context) ([]*BridgeVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BridgeVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BridgeVersionMutation)
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
func (_c *BridgeVersionCreateBulk) SaveX(ctx context.Context) []*BridgeVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BridgeVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BridgeVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BridgeVersion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BridgeVersionUpsert) {
//			SetPatientID(v+v).
//		}).
//		Exec(ctx)
func (_c *BridgeVersionCreateBulk) OnConflict(opts ...sql.ConflictOption) *BridgeVersionUpsertBulk {
	_c.conflict = opts
	return &BridgeVersionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BridgeVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BridgeVersionCreateBulk) OnConflictColumns(columns ...string) *BridgeVersionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BridgeVersionUpsertBulk{
		create: _c,
	}
}

// BridgeVersionUpsertBulk is the builder for "upsert"-ing
// a bulk of BridgeVersion nodes.
type BridgeVersionUpsertBulk struct {
	create *BridgeVersionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BridgeVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BridgeVersionUpsertBulk) UpdateNewValues() *BridgeVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.PatientID(); exists {
				s.SetIgnore(bridgeversion.FieldPatientID)
			}
			if _, exists := b.mutation.Version(); exists {
				s.SetIgnore(bridgeversion.FieldVersion)
			}
			if _, exists := b.mutation.Data(); exists {
				s.SetIgnore(bridgeversion.FieldData)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(bridgeversion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BridgeVersion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BridgeVersionUpsertBulk) Ignore() *BridgeVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BridgeVersionUpsertBulk) DoNothing() *BridgeVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BridgeVersionCreateBulk.OnConflict
// documentation for more info.
func (u *BridgeVersionUpsertBulk) Update(set func(*BridgeVersionUpsert)) *BridgeVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BridgeVersionUpsert{UpdateSet: update})
	}))
	return u
}

// SetMetadataID sets the "metadata_id" field.
func (u *BridgeVersionUpsertBulk) SetMetadataID(v int) *BridgeVersionUpsertBulk {
	return u.Update(func(s *BridgeVersionUpsert) {
		s.SetMetadataID(v)
	})
}

// AddMetadataID adds v to the "metadata_id" field.
func (u *BridgeVersionUpsertBulk) AddMetadataID(v int) *BridgeVersionUpsertBulk {
	return u.Update(func(s *BridgeVersionUpsert) {
		s.AddMetadataID(v)
	})
}

// UpdateMetadataID sets the "metadata_id" field to the value that was provided on create.
func (u *BridgeVersionUpsertBulk) UpdateMetadataID() *BridgeVersionUpsertBulk {
	return u.Update(func(s *BridgeVersionUpsert) {
		s.UpdateMetadataID()
	})
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (u *BridgeVersionUpsertBulk) ClearMetadataID() *BridgeVersionUpsertBulk {
	return u.Update(func(s *BridgeVersionUpsert) {
		s.ClearMetadataID()
	})
}

// Exec executes the query.
func (u *BridgeVersionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BridgeVersionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BridgeVersionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BridgeVersionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
