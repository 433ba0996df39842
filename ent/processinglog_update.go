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
	"github.com/attune-health/attune/ent/predicate"
	"github.com/attune-health/attune/ent/processinglog"
)

// ProcessingLogUpdate is the builder for updating ProcessingLog entities.
type ProcessingLogUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingLogMutation
}

// Where appends a list predicates to the ProcessingLogUpdate builder.
func (_u *ProcessingLogUpdate) Where(ps ...predicate.ProcessingLog) *ProcessingLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWave sets the "wave" field.
func (_u *ProcessingLogUpdate) SetWave(v string) *ProcessingLogUpdate {
	_u.mutation.SetWave(v)
	return _u
}

// SetNillableWave sets the "wave" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableWave(v *string) *ProcessingLogUpdate {
	if v != nil {
		_u.SetWave(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingLogUpdate) SetStatus(v processinglog.Status) *ProcessingLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableStatus(v *processinglog.Status) *ProcessingLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ProcessingLogUpdate) SetRetryCount(v int) *ProcessingLogUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableRetryCount(v *int) *ProcessingLogUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ProcessingLogUpdate) AddRetryCount(v int) *ProcessingLogUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProcessingLogUpdate) SetCompletedAt(v time.Time) *ProcessingLogUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableCompletedAt(v *time.Time) *ProcessingLogUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProcessingLogUpdate) ClearCompletedAt() *ProcessingLogUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ProcessingLogUpdate) SetDurationMs(v int) *ProcessingLogUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableDurationMs(v *int) *ProcessingLogUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ProcessingLogUpdate) AddDurationMs(v int) *ProcessingLogUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ProcessingLogUpdate) ClearDurationMs() *ProcessingLogUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessingLogUpdate) SetErrorMessage(v string) *ProcessingLogUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableErrorMessage(v *string) *ProcessingLogUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessingLogUpdate) ClearErrorMessage() *ProcessingLogUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the ProcessingLogMutation object of the builder.
func (_u *ProcessingLogUpdate) Mutation() *ProcessingLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingLogUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processinglog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingLog.session"`)
	}
	return nil
}

func (_u *ProcessingLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processinglog.Table, processinglog.Columns, sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Wave(); ok {
		_spec.SetField(processinglog.FieldWave, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processinglog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(processinglog.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(processinglog.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(processinglog.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(processinglog.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(processinglog.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(processinglog.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(processinglog.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processinglog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processinglog.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processinglog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingLogUpdateOne is the builder for updating a single ProcessingLog entity.
type ProcessingLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingLogMutation
}

// SetWave sets the "wave" field.
func (_u *ProcessingLogUpdateOne) SetWave(v string) *ProcessingLogUpdateOne {
	_u.mutation.SetWave(v)
	return _u
}

// SetNillableWave sets the "wave" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableWave(v *string) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetWave(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingLogUpdateOne) SetStatus(v processinglog.Status) *ProcessingLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableStatus(v *processinglog.Status) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ProcessingLogUpdateOne) SetRetryCount(v int) *ProcessingLogUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableRetryCount(v *int) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ProcessingLogUpdateOne) AddRetryCount(v int) *ProcessingLogUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProcessingLogUpdateOne) SetCompletedAt(v time.Time) *ProcessingLogUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableCompletedAt(v *time.Time) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProcessingLogUpdateOne) ClearCompletedAt() *ProcessingLogUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ProcessingLogUpdateOne) SetDurationMs(v int) *ProcessingLogUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableDurationMs(v *int) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ProcessingLogUpdateOne) AddDurationMs(v int) *ProcessingLogUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ProcessingLogUpdateOne) ClearDurationMs() *ProcessingLogUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessingLogUpdateOne) SetErrorMessage(v string) *ProcessingLogUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableErrorMessage(v *string) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessingLogUpdateOne) ClearErrorMessage() *ProcessingLogUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the ProcessingLogMutation object of the builder.
func (_u *ProcessingLogUpdateOne) Mutation() *ProcessingLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessingLogUpdate builder.
func (_u *ProcessingLogUpdateOne) Where(ps ...predicate.ProcessingLog) *ProcessingLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingLogUpdateOne) Select(field string, fields ...string) *ProcessingLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingLog entity.
func (_u *ProcessingLogUpdateOne) Save(ctx context.Context) (*ProcessingLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingLogUpdateOne) SaveX(ctx context.Context) *ProcessingLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingLogUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processinglog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingLog.session"`)
	}
	return nil
}

func (_u *ProcessingLogUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processinglog.Table, processinglog.Columns, sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processinglog.FieldID)
		for _, f := range fields {
			if !processinglog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processinglog.FieldID {
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
	if value, ok := _u.mutation.Wave(); ok {
		_spec.SetField(processinglog.FieldWave, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processinglog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(processinglog.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(processinglog.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(processinglog.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(processinglog.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(processinglog.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(processinglog.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(processinglog.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processinglog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processinglog.FieldErrorMessage, field.TypeString)
	}
	_node = &ProcessingLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processinglog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
