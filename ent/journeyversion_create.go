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
	"github.com/attune-health/attune/ent/journeyversion"
	"github.com/attune-health/attune/ent/patient"
)

// JourneyVersionCreate is the builder for creating a JourneyVersion entity.
type JourneyVersionCreate struct {
	config
	mutation *JourneyVersionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPatientID sets the "patient_id" field.
func (_c *JourneyVersionCreate) SetPatientID(v string) *JourneyVersionCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *JourneyVersionCreate) SetVersion(v int) *JourneyVersionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetData sets the "data" field.
func (_c *JourneyVersionCreate) SetData(v map[string]interface{}) *JourneyVersionCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetMetadataID sets the "metadata_id" field.
func (_c *JourneyVersionCreate) SetMetadataID(v int) *JourneyVersionCreate {
	_c.mutation.SetMetadataID(v)
	return _c
}

// SetNillableMetadataID sets the "metadata_id" field if the given value is not nil.
func (_c *JourneyVersionCreate) SetNillableMetadataID(v *int) *JourneyVersionCreate {
	if v != nil {
		_c.SetMetadataID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JourneyVersionCreate) SetCreatedAt(v time.Time) *JourneyVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JourneyVersionCreate) SetNillableCreatedAt(v *time.Time) *JourneyVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *JourneyVersionCreate) SetPatient(v *Patient) *JourneyVersionCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the JourneyVersionMutation object of the builder.
func (_c *JourneyVersionCreate) Mutation() *JourneyVersionMutation {
	return _c.mutation
}

// Save creates the JourneyVersion in the database.
func (_c *JourneyVersionCreate) Save(ctx context.Context) (*JourneyVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JourneyVersionCreate) SaveX(ctx context.Context) *JourneyVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JourneyVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JourneyVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JourneyVersionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := journeyversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JourneyVersionCreate) check() error {
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "JourneyVersion.patient_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "JourneyVersion.version"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "JourneyVersion.data"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JourneyVersion.created_at"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`ent: missing required edge "JourneyVersion.patient"`)}
	}
	return nil
}

func (_c *JourneyVersionCreate) sqlSave(ctx context.Context) (*JourneyVersion, error) {
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

func (_c *JourneyVersionCreate) createSpec() (*JourneyVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &JourneyVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(journeyversion.Table, sqlgraph.NewFieldSpec(journeyversion.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(journeyversion.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(journeyversion.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.MetadataID(); ok {
		_spec.SetField(journeyversion.FieldMetadataID, field.TypeInt, value)
		_node.MetadataID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(journeyversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   journeyversion.PatientTable,
			Columns: []string{journeyversion.PatientColumn},
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
//	client.JourneyVersion.Create().
//		SetPatientID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JourneyVersionUpsert) {
//			SetPatientID(v+v).
//		}).
//		Exec(ctx)
func (_c *JourneyVersionCreate) OnConflict(opts ...sql.ConflictOption) *JourneyVersionUpsertOne {
	_c.conflict = opts
	return &JourneyVersionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.JourneyVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JourneyVersionCreate) OnConflictColumns(columns ...string) *JourneyVersionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JourneyVersionUpsertOne{
		create: _c,
	}
}

type (
	// JourneyVersionUpsertOne is the builder for "upsert"-ing
	//  one JourneyVersion node.
	JourneyVersionUpsertOne struct {
		create *JourneyVersionCreate
	}

	// JourneyVersionUpsert is the "OnConflict" setter.
	JourneyVersionUpsert struct {
		*sql.UpdateSet
	}
)

// SetMetadataID sets the "metadata_id" field.
func (u *JourneyVersionUpsert) SetMetadataID(v int) *JourneyVersionUpsert {
	u.Set(journeyversion.FieldMetadataID, v)
	return u
}

// UpdateMetadataID sets the "metadata_id" field to the value that was provided on create.
func (u *JourneyVersionUpsert) UpdateMetadataID() *JourneyVersionUpsert {
	u.SetExcluded(journeyversion.FieldMetadataID)
	return u
}

// AddMetadataID adds v to the "metadata_id" field.
func (u *JourneyVersionUpsert) AddMetadataID(v int) *JourneyVersionUpsert {
	u.Add(journeyversion.FieldMetadataID, v)
	return u
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (u *JourneyVersionUpsert) ClearMetadataID() *JourneyVersionUpsert {
	u.SetNull(journeyversion.FieldMetadataID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.JourneyVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *JourneyVersionUpsertOne) UpdateNewValues() *JourneyVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.PatientID(); exists {
			s.SetIgnore(journeyversion.FieldPatientID)
		}
		if _, exists := u.create.mutation.Version(); exists {
			s.SetIgnore(journeyversion.FieldVersion)
		}
		if _, exists := u.create.mutation.Data(); exists {
			s.SetIgnore(journeyversion.FieldData)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(journeyversion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.JourneyVersion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *JourneyVersionUpsertOne) Ignore() *JourneyVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JourneyVersionUpsertOne) DoNothing() *JourneyVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JourneyVersionCreate.OnConflict
// documentation for more info.
func (u *JourneyVersionUpsertOne) Update(set func(*JourneyVersionUpsert)) *JourneyVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JourneyVersionUpsert{UpdateSet: update})
	}))
	return u
}

// SetMetadataID sets the "metadata_id" field.
func (u *JourneyVersionUpsertOne) SetMetadataID(v int) *JourneyVersionUpsertOne {
	return u.Update(func(s *JourneyVersionUpsert) {
		s.SetMetadataID(v)
	})
}

// AddMetadataID adds v to the "metadata_id" field.
func (u *JourneyVersionUpsertOne) AddMetadataID(v int) *JourneyVersionUpsertOne {
	return u.Update(func(s *JourneyVersionUpsert) {
		s.AddMetadataID(v)
	})
}

// UpdateMetadataID sets the "metadata_id" field to the value that was provided on create.
func (u *JourneyVersionUpsertOne) UpdateMetadataID() *JourneyVersionUpsertOne {
	return u.Update(func(s *JourneyVersionUpsert) {
		s.UpdateMetadataID()
	})
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (u *JourneyVersionUpsertOne) ClearMetadataID() *JourneyVersionUpsertOne {
	return u.Update(func(s *JourneyVersionUpsert) {
		s.ClearMetadataID()
	})
}

// Exec executes the query.
func (u *JourneyVersionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JourneyVersionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JourneyVersionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *JourneyVersionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *JourneyVersionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// JourneyVersionCreateBulk is the builder for creating many JourneyVersion entities in bulk.
type JourneyVersionCreateBulk struct {
	config
	err      error
	builders []*JourneyVersionCreate
	conflict []sql.ConflictOption
}

// Save creates the JourneyVersion entities in the database.
func (_c *JourneyVersionCreateBulk) Save(ctx context.Context) ([]*JourneyVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JourneyVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JourneyVersionMutation)
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
func (_c *JourneyVersionCreateBulk) SaveX(ctx context.Context) []*JourneyVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JourneyVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JourneyVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.JourneyVersion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JourneyVersionUpsert) {
//			SetPatientID(v+v).
//		}).
//		Exec(ctx)
func (_c *JourneyVersionCreateBulk) OnConflict(opts ...sql.ConflictOption) *JourneyVersionUpsertBulk {
	_c.conflict = opts
	return &JourneyVersionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.JourneyVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JourneyVersionCreateBulk) OnConflictColumns(columns ...string) *JourneyVersionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JourneyVersionUpsertBulk{
		create: _c,
	}
}

// JourneyVersionUpsertBulk is the builder for "upsert"-ing
// a bulk of JourneyVersion nodes.
type JourneyVersionUpsertBulk struct {
	create *JourneyVersionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.JourneyVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *JourneyVersionUpsertBulk) UpdateNewValues() *JourneyVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.PatientID(); exists {
				s.SetIgnore(journeyversion.FieldPatientID)
			}
			if _, exists := b.mutation.Version(); exists {
				s.SetIgnore(journeyversion.FieldVersion)
			}
			if _, exists := b.mutation.Data(); exists {
				s.SetIgnore(journeyversion.FieldData)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(journeyversion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.JourneyVersion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *JourneyVersionUpsertBulk) Ignore() *JourneyVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JourneyVersionUpsertBulk) DoNothing() *JourneyVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JourneyVersionCreateBulk.OnConflict
// documentation for more info.
func (u *JourneyVersionUpsertBulk) Update(set func(*JourneyVersionUpsert)) *JourneyVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JourneyVersionUpsert{UpdateSet: update})
	}))
	return u
}

// SetMetadataID sets the "metadata_id" field.
func (u *JourneyVersionUpsertBulk) SetMetadataID(v int) *JourneyVersionUpsertBulk {
	return u.Update(func(s *JourneyVersionUpsert) {
		s.SetMetadataID(v)
	})
}

// AddMetadataID adds v to the "metadata_id" field.
func (u *JourneyVersionUpsertBulk) AddMetadataID(v int) *JourneyVersionUpsertBulk {
	return u.Update(func(s *JourneyVersionUpsert) {
		s.AddMetadataID(v)
	})
}

// UpdateMetadataID sets the "metadata_id" field to the value that was provided on create.
func (u *JourneyVersionUpsertBulk) UpdateMetadataID() *JourneyVersionUpsertBulk {
	return u.Update(func(s *JourneyVersionUpsert) {
		s.UpdateMetadataID()
	})
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (u *JourneyVersionUpsertBulk) ClearMetadataID() *JourneyVersionUpsertBulk {
	return u.Update(func(s *JourneyVersionUpsert) {
		s.ClearMetadataID()
	})
}

// Exec executes the query.
func (u *JourneyVersionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the JourneyVersionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JourneyVersionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JourneyVersionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
