// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/attune-health/attune/ent/bridgeversion"
	"github.com/attune-health/attune/ent/journeyversion"
	"github.com/attune-health/attune/ent/patient"
	"github.com/attune-health/attune/ent/pipelineevent"
	"github.com/attune-health/attune/ent/predicate"
	"github.com/attune-health/attune/ent/therapysession"
)

// PatientUpdate is the builder for updating Patient entities.
type PatientUpdate struct {
	config
	hooks    []Hook
	mutation *PatientMutation
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdate) Where(ps ...predicate.Patient) *PatientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *PatientUpdate) SetDisplayName(v string) *PatientUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableDisplayName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *PatientUpdate) ClearDisplayName() *PatientUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// AddSessionIDs adds the "sessions" edge to the TherapySession entity by IDs.
func (_u *PatientUpdate) AddSessionIDs(ids ...string) *PatientUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the TherapySession entity.
func (_u *PatientUpdate) AddSessions(v ...*TherapySession) *PatientUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddJourneyVersionIDs adds the "journey_versions" edge to the JourneyVersion entity by IDs.
func (_u *PatientUpdate) AddJourneyVersionIDs(ids ...int) *PatientUpdate {
	_u.mutation.AddJourneyVersionIDs(ids...)
	return _u
}

// AddJourneyVersions adds the "journey_versions" edges to the JourneyVersion entity.
func (_u *PatientUpdate) AddJourneyVersions(v ...*JourneyVersion) *PatientUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJourneyVersionIDs(ids...)
}

// AddBridgeVersionIDs adds the "bridge_versions" edge to the BridgeVersion entity by IDs.
func (_u *PatientUpdate) AddBridgeVersionIDs(ids ...int) *PatientUpdate {
	_u.mutation.AddBridgeVersionIDs(ids...)
	return _u
}

// AddBridgeVersions adds the "bridge_versions" edges to the BridgeVersion entity.
func (_u *PatientUpdate) AddBridgeVersions(v ...*BridgeVersion) *PatientUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBridgeVersionIDs(ids...)
}

// AddPipelineEventIDs adds the "pipeline_events" edge to the PipelineEvent entity by IDs.
func (_u *PatientUpdate) AddPipelineEventIDs(ids ...int) *PatientUpdate {
	_u.mutation.AddPipelineEventIDs(ids...)
	return _u
}

// AddPipelineEvents adds the "pipeline_events" edges to the PipelineEvent entity.
func (_u *PatientUpdate) AddPipelineEvents(v ...*PipelineEvent) *PatientUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPipelineEventIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdate) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the TherapySession entity.
func (_u *PatientUpdate) ClearSessions() *PatientUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to TherapySession entities by IDs.
func (_u *PatientUpdate) RemoveSessionIDs(ids ...string) *PatientUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to TherapySession entities.
func (_u *PatientUpdate) RemoveSessions(v ...*TherapySession) *PatientUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearJourneyVersions clears all "journey_versions" edges to the JourneyVersion entity.
func (_u *PatientUpdate) ClearJourneyVersions() *PatientUpdate {
	_u.mutation.ClearJourneyVersions()
	return _u
}

// RemoveJourneyVersionIDs removes the "journey_versions" edge to JourneyVersion entities by IDs.
func (_u *PatientUpdate) RemoveJourneyVersionIDs(ids ...int) *PatientUpdate {
	_u.mutation.RemoveJourneyVersionIDs(ids...)
	return _u
}

// RemoveJourneyVersions removes "journey_versions" edges to JourneyVersion entities.
func (_u *PatientUpdate) RemoveJourneyVersions(v ...*JourneyVersion) *PatientUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJourneyVersionIDs(ids...)
}

// ClearBridgeVersions clears all "bridge_versions" edges to the BridgeVersion entity.
func (_u *PatientUpdate) ClearBridgeVersions() *PatientUpdate {
	_u.mutation.ClearBridgeVersions()
	return _u
}

// RemoveBridgeVersionIDs removes the "bridge_versions" edge to BridgeVersion entities by IDs.
func (_u *PatientUpdate) RemoveBridgeVersionIDs(ids ...int) *PatientUpdate {
	_u.mutation.RemoveBridgeVersionIDs(ids...)
	return _u
}

// RemoveBridgeVersions removes "bridge_versions" edges to BridgeVersion entities.
func (_u *PatientUpdate) RemoveBridgeVersions(v ...*BridgeVersion) *PatientUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBridgeVersionIDs(ids...)
}

// ClearPipelineEvents clears all "pipeline_events" edges to the PipelineEvent entity.
func (_u *PatientUpdate) ClearPipelineEvents() *PatientUpdate {
	_u.mutation.ClearPipelineEvents()
	return _u
}

// RemovePipelineEventIDs removes the "pipeline_events" edge to PipelineEvent entities by IDs.
func (_u *PatientUpdate) RemovePipelineEventIDs(ids ...int) *PatientUpdate {
	_u.mutation.RemovePipelineEventIDs(ids...)
	return _u
}

// RemovePipelineEvents removes "pipeline_events" edges to PipelineEvent entities.
func (_u *PatientUpdate) RemovePipelineEvents(v ...*PipelineEvent) *PatientUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePipelineEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PatientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(patient.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(patient.FieldDisplayName, field.TypeString)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.SessionsTable,
			Columns: []string{patient.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(therapysession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.SessionsTable,
			Columns: []string{patient.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(therapysession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.SessionsTable,
			Columns: []string{patient.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(therapysession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JourneyVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.JourneyVersionsTable,
			Columns: []string{patient.JourneyVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(journeyversion.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJourneyVersionsIDs(); len(nodes) > 0 && !_u.mutation.JourneyVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.JourneyVersionsTable,
			Columns: []string{patient.JourneyVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(journeyversion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JourneyVersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.JourneyVersionsTable,
			Columns: []string{patient.JourneyVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(journeyversion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BridgeVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.BridgeVersionsTable,
			Columns: []string{patient.BridgeVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bridgeversion.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBridgeVersionsIDs(); len(nodes) > 0 && !_u.mutation.BridgeVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.BridgeVersionsTable,
			Columns: []string{patient.BridgeVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bridgeversion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BridgeVersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.BridgeVersionsTable,
			Columns: []string{patient.BridgeVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bridgeversion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PipelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.PipelineEventsTable,
			Columns: []string{patient.PipelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelineevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPipelineEventsIDs(); len(nodes) > 0 && !_u.mutation.PipelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.PipelineEventsTable,
			Columns: []string{patient.PipelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelineevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PipelineEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.PipelineEventsTable,
			Columns: []string{patient.PipelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelineevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientUpdateOne is the builder for updating a single Patient entity.
type PatientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientMutation
}

// SetDisplayName sets the "display_name" field.
func (_u *PatientUpdateOne) SetDisplayName(v string) *PatientUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableDisplayName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *PatientUpdateOne) ClearDisplayName() *PatientUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// AddSessionIDs adds the "sessions" edge to the TherapySession entity by IDs.
func (_u *PatientUpdateOne) AddSessionIDs(ids ...string) *PatientUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the TherapySession entity.
func (_u *PatientUpdateOne) AddSessions(v ...*TherapySession) *PatientUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddJourneyVersionIDs adds the "journey_versions" edge to the JourneyVersion entity by IDs.
func (_u *PatientUpdateOne) AddJourneyVersionIDs(ids ...int) *PatientUpdateOne {
	_u.mutation.AddJourneyVersionIDs(ids...)
	return _u
}

// AddJourneyVersions adds the "journey_versions" edges to the JourneyVersion entity.
func (_u *PatientUpdateOne) AddJourneyVersions(v ...*JourneyVersion) *PatientUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJourneyVersionIDs(ids...)
}

// AddBridgeVersionIDs adds the "bridge_versions" edge to the BridgeVersion entity by IDs.
func (_u *PatientUpdateOne) AddBridgeVersionIDs(ids ...int) *PatientUpdateOne {
	_u.mutation.AddBridgeVersionIDs(ids...)
	return _u
}

// AddBridgeVersions adds the "bridge_versions" edges to the BridgeVersion entity.
func (_u *PatientUpdateOne) AddBridgeVersions(v ...*BridgeVersion) *PatientUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBridgeVersionIDs(ids...)
}

// AddPipelineEventIDs adds the "pipeline_events" edge to the PipelineEvent entity by IDs.
func (_u *PatientUpdateOne) AddPipelineEventIDs(ids ...int) *PatientUpdateOne {
	_u.mutation.AddPipelineEventIDs(ids...)
	return _u
}

// AddPipelineEvents adds the "pipeline_events" edges to the PipelineEvent entity.
func (_u *PatientUpdateOne) AddPipelineEvents(v ...*PipelineEvent) *PatientUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPipelineEventIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdateOne) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the TherapySession entity.
func (_u *PatientUpdateOne) ClearSessions() *PatientUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to TherapySession entities by IDs.
func (_u *PatientUpdateOne) RemoveSessionIDs(ids ...string) *PatientUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to TherapySession entities.
func (_u *PatientUpdateOne) RemoveSessions(v ...*TherapySession) *PatientUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearJourneyVersions clears all "journey_versions" edges to the JourneyVersion entity.
func (_u *PatientUpdateOne) ClearJourneyVersions() *PatientUpdateOne {
	_u.mutation.ClearJourneyVersions()
	return _u
}

// RemoveJourneyVersionIDs removes the "journey_versions" edge to JourneyVersion entities by IDs.
func (_u *PatientUpdateOne) RemoveJourneyVersionIDs(ids ...int) *PatientUpdateOne {
	_u.mutation.RemoveJourneyVersionIDs(ids...)
	return _u
}

// RemoveJourneyVersions removes "journey_versions" edges to JourneyVersion entities.
func (_u *PatientUpdateOne) RemoveJourneyVersions(v ...*JourneyVersion) *PatientUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJourneyVersionIDs(ids...)
}

// ClearBridgeVersions clears all "bridge_versions" edges to the BridgeVersion entity.
func (_u *PatientUpdateOne) ClearBridgeVersions() *PatientUpdateOne {
	_u.mutation.ClearBridgeVersions()
	return _u
}

// RemoveBridgeVersionIDs removes the "bridge_versions" edge to BridgeVersion entities by IDs.
func (_u *PatientUpdateOne) RemoveBridgeVersionIDs(ids ...int) *PatientUpdateOne {
	_u.mutation.RemoveBridgeVersionIDs(ids...)
	return _u
}

// RemoveBridgeVersions removes "bridge_versions" edges to BridgeVersion entities.
func (_u *PatientUpdateOne) RemoveBridgeVersions(v ...*BridgeVersion) *PatientUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBridgeVersionIDs(ids...)
}

// ClearPipelineEvents clears all "pipeline_events" edges to the PipelineEvent entity.
func (_u *PatientUpdateOne) ClearPipelineEvents() *PatientUpdateOne {
	_u.mutation.ClearPipelineEvents()
	return _u
}

// RemovePipelineEventIDs removes the "pipeline_events" edge to PipelineEvent entities by IDs.
func (_u *PatientUpdateOne) RemovePipelineEventIDs(ids ...int) *PatientUpdateOne {
	_u.mutation.RemovePipelineEventIDs(ids...)
	return _u
}

// RemovePipelineEvents removes "pipeline_events" edges to PipelineEvent entities.
func (_u *PatientUpdateOne) RemovePipelineEvents(v ...*PipelineEvent) *PatientUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePipelineEventIDs(ids...)
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdateOne) Where(ps ...predicate.Patient) *PatientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientUpdateOne) Select(field string, fields ...string) *PatientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Patient entity.
func (_u *PatientUpdateOne) Save(ctx context.Context) (*Patient, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdateOne) SaveX(ctx context.Context) *Patient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PatientUpdateOne) sqlSave(ctx context.Context) (_node *Patient, err error) {
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Patient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patient.FieldID)
		for _, f := range fields {
			if !patient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != patient.FieldID {
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
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(patient.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(patient.FieldDisplayName, field.TypeString)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.SessionsTable,
			Columns: []string{patient.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(therapysession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.SessionsTable,
			Columns: []string{patient.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(therapysession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.SessionsTable,
			Columns: []string{patient.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(therapysession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JourneyVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.JourneyVersionsTable,
			Columns: []string{patient.JourneyVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(journeyversion.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJourneyVersionsIDs(); len(nodes) > 0 && !_u.mutation.JourneyVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.JourneyVersionsTable,
			Columns: []string{patient.JourneyVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(journeyversion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JourneyVersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.JourneyVersionsTable,
			Columns: []string{patient.JourneyVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(journeyversion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BridgeVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.BridgeVersionsTable,
			Columns: []string{patient.BridgeVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bridgeversion.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBridgeVersionsIDs(); len(nodes) > 0 && !_u.mutation.BridgeVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.BridgeVersionsTable,
			Columns: []string{patient.BridgeVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bridgeversion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BridgeVersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.BridgeVersionsTable,
			Columns: []string{patient.BridgeVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bridgeversion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PipelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.PipelineEventsTable,
			Columns: []string{patient.PipelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelineevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPipelineEventsIDs(); len(nodes) > 0 && !_u.mutation.PipelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.PipelineEventsTable,
			Columns: []string{patient.PipelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelineevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PipelineEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.PipelineEventsTable,
			Columns: []string{patient.PipelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelineevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Patient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
