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
	"github.com/attune-health/attune/ent/generationcost"
)

// GenerationCostCreate is the builder for creating a GenerationCost entity.
type GenerationCostCreate struct {
	config
	mutation *GenerationCostMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTask sets the "task" field.
func (_c *GenerationCostCreate) SetTask(v string) *GenerationCostCreate {
	_c.mutation.SetTask(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *GenerationCostCreate) SetModel(v string) *GenerationCostCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *GenerationCostCreate) SetInputTokens(v int) *GenerationCostCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *GenerationCostCreate) SetOutputTokens(v int) *GenerationCostCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *GenerationCostCreate) SetCostUsd(v float64) *GenerationCostCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *GenerationCostCreate) SetDurationMs(v int) *GenerationCostCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *GenerationCostCreate) SetSessionID(v string) *GenerationCostCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *GenerationCostCreate) SetNillableSessionID(v *string) *GenerationCostCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *GenerationCostCreate) SetPatientID(v string) *GenerationCostCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_c *GenerationCostCreate) SetNillablePatientID(v *string) *GenerationCostCreate {
	if v != nil {
		_c.SetPatientID(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *GenerationCostCreate) SetMetadata(v map[string]interface{}) *GenerationCostCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GenerationCostCreate) SetCreatedAt(v time.Time) *GenerationCostCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GenerationCostCreate) SetNillableCreatedAt(v *time.Time) *GenerationCostCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the GenerationCostMutation object of the builder.
func (_c *GenerationCostCreate) Mutation() *GenerationCostMutation {
	return _c.mutation
}

// Save creates the GenerationCost in the database.
func (_c *GenerationCostCreate) Save(ctx context.Context) (*GenerationCost, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GenerationCostCreate) SaveX(ctx context.Context) *GenerationCost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationCostCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationCostCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GenerationCostCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := generationcost.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GenerationCostCreate) check() error {
	if _, ok := _c.mutation.Task(); !ok {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required field "GenerationCost.task"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "GenerationCost.model"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "GenerationCost.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "GenerationCost.output_tokens"`)}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "GenerationCost.cost_usd"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "GenerationCost.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GenerationCost.created_at"`)}
	}
	return nil
}

func (_c *GenerationCostCreate) sqlSave(ctx context.Context) (*GenerationCost, error) {
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

func (_c *GenerationCostCreate) createSpec() (*GenerationCost, *sqlgraph.CreateSpec) {
	var (
		_node = &GenerationCost{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generationcost.Table, sqlgraph.NewFieldSpec(generationcost.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Task(); ok {
		_spec.SetField(generationcost.FieldTask, field.TypeString, value)
		_node.Task = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(generationcost.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(generationcost.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(generationcost.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(generationcost.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(generationcost.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(generationcost.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(generationcost.FieldPatientID, field.TypeString, value)
		_node.PatientID = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(generationcost.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(generationcost.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GenerationCost.Create().
//		SetTask(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GenerationCostUpsert) {
//			SetTask(v+v).
//		}).
//		Exec(ctx)
func (_c *GenerationCostCreate) OnConflict(opts ...sql.ConflictOption) *GenerationCostUpsertOne {
	_c.conflict = opts
	return &GenerationCostUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GenerationCost.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GenerationCostCreate) OnConflictColumns(columns ...string) *GenerationCostUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GenerationCostUpsertOne{
		create: _c,
	}
}

type (
	// GenerationCostUpsertOne is the builder for "upsert"-ing
	//  one GenerationCost node.
	GenerationCostUpsertOne struct {
		create *GenerationCostCreate
	}

	// GenerationCostUpsert is the "OnConflict" setter.
	GenerationCostUpsert struct {
		*sql.UpdateSet
	}
)

// SetMetadata sets the "metadata" field.
func (u *GenerationCostUpsert) SetMetadata(v map[string]interface{}) *GenerationCostUpsert {
	u.Set(generationcost.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *GenerationCostUpsert) UpdateMetadata() *GenerationCostUpsert {
	u.SetExcluded(generationcost.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *GenerationCostUpsert) ClearMetadata() *GenerationCostUpsert {
	u.SetNull(generationcost.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.GenerationCost.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *GenerationCostUpsertOne) UpdateNewValues() *GenerationCostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Task(); exists {
			s.SetIgnore(generationcost.FieldTask)
		}
		if _, exists := u.create.mutation.Model(); exists {
			s.SetIgnore(generationcost.FieldModel)
		}
		if _, exists := u.create.mutation.InputTokens(); exists {
			s.SetIgnore(generationcost.FieldInputTokens)
		}
		if _, exists := u.create.mutation.OutputTokens(); exists {
			s.SetIgnore(generationcost.FieldOutputTokens)
		}
		if _, exists := u.create.mutation.CostUsd(); exists {
			s.SetIgnore(generationcost.FieldCostUsd)
		}
		if _, exists := u.create.mutation.DurationMs(); exists {
			s.SetIgnore(generationcost.FieldDurationMs)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(generationcost.FieldSessionID)
		}
		if _, exists := u.create.mutation.PatientID(); exists {
			s.SetIgnore(generationcost.FieldPatientID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(generationcost.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GenerationCost.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GenerationCostUpsertOne) Ignore() *GenerationCostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GenerationCostUpsertOne) DoNothing() *GenerationCostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GenerationCostCreate.OnConflict
// documentation for more info.
func (u *GenerationCostUpsertOne) Update(set func(*GenerationCostUpsert)) *GenerationCostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GenerationCostUpsert{UpdateSet: update})
	}))
	return u
}

// SetMetadata sets the "metadata" field.
func (u *GenerationCostUpsertOne) SetMetadata(v map[string]interface{}) *GenerationCostUpsertOne {
	return u.Update(func(s *GenerationCostUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *GenerationCostUpsertOne) UpdateMetadata() *GenerationCostUpsertOne {
	return u.Update(func(s *GenerationCostUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *GenerationCostUpsertOne) ClearMetadata() *GenerationCostUpsertOne {
	return u.Update(func(s *GenerationCostUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *GenerationCostUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GenerationCostCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GenerationCostUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GenerationCostUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GenerationCostUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerationCostCreateBulk is the builder for creating many GenerationCost entities in bulk.
type GenerationCostCreateBulk struct {
	config
	err      error
	builders []*GenerationCostCreate
	conflict []sql.ConflictOption
}

// Save creates the GenerationCost entities in the database.
func (_c *GenerationCostCreateBulk) Save(ctx context.Context) ([]*GenerationCost, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GenerationCost, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenerationCostMutation)
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
func (_c *GenerationCostCreateBulk) SaveX(ctx context.Context) []*GenerationCost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationCostCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationCostCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GenerationCost.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GenerationCostUpsert) {
//			SetTask(v+v).
//		}).
//		Exec(ctx)
func (_c *GenerationCostCreateBulk) OnConflict(opts ...sql.ConflictOption) *GenerationCostUpsertBulk {
	_c.conflict = opts
	return &GenerationCostUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GenerationCost.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GenerationCostCreateBulk) OnConflictColumns(columns ...string) *GenerationCostUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GenerationCostUpsertBulk{
		create: _c,
	}
}

// GenerationCostUpsertBulk is the builder for "upsert"-ing
// a bulk of GenerationCost nodes.
type GenerationCostUpsertBulk struct {
	create *GenerationCostCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GenerationCost.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *GenerationCostUpsertBulk) UpdateNewValues() *GenerationCostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Task(); exists {
				s.SetIgnore(generationcost.FieldTask)
			}
			if _, exists := b.mutation.Model(); exists {
				s.SetIgnore(generationcost.FieldModel)
			}
			if _, exists := b.mutation.InputTokens(); exists {
				s.SetIgnore(generationcost.FieldInputTokens)
			}
			if _, exists := b.mutation.OutputTokens(); exists {
				s.SetIgnore(generationcost.FieldOutputTokens)
			}
			if _, exists := b.mutation.CostUsd(); exists {
				s.SetIgnore(generationcost.FieldCostUsd)
			}
			if _, exists := b.mutation.DurationMs(); exists {
				s.SetIgnore(generationcost.FieldDurationMs)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(generationcost.FieldSessionID)
			}
			if _, exists := b.mutation.PatientID(); exists {
				s.SetIgnore(generationcost.FieldPatientID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(generationcost.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GenerationCost.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GenerationCostUpsertBulk) Ignore() *GenerationCostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GenerationCostUpsertBulk) DoNothing() *GenerationCostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GenerationCostCreateBulk.OnConflict
// documentation for more info.
func (u *GenerationCostUpsertBulk) Update(set func(*GenerationCostUpsert)) *GenerationCostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GenerationCostUpsert{UpdateSet: update})
	}))
	return u
}

// SetMetadata sets the "metadata" field.
func (u *GenerationCostUpsertBulk) SetMetadata(v map[string]interface{}) *GenerationCostUpsertBulk {
	return u.Update(func(s *GenerationCostUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *GenerationCostUpsertBulk) UpdateMetadata() *GenerationCostUpsertBulk {
	return u.Update(func(s *GenerationCostUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *GenerationCostUpsertBulk) ClearMetadata() *GenerationCostUpsertBulk {
	return u.Update(func(s *GenerationCostUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *GenerationCostUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GenerationCostCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GenerationCostCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GenerationCostUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
