// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/attune-health/attune/ent/bridgeversion"
	"github.com/attune-health/attune/ent/generationcost"
	"github.com/attune-health/attune/ent/generationmetadata"
	"github.com/attune-health/attune/ent/journeyversion"
	"github.com/attune-health/attune/ent/patient"
	"github.com/attune-health/attune/ent/patientbridge"
	"github.com/attune-health/attune/ent/patientjourney"
	"github.com/attune-health/attune/ent/pipelineevent"
	"github.com/attune-health/attune/ent/predicate"
	"github.com/attune-health/attune/ent/processinglog"
	"github.com/attune-health/attune/ent/therapysession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBridgeVersion      = "BridgeVersion"
	TypeGenerationCost     = "GenerationCost"
	TypeGenerationMetadata = "GenerationMetadata"
	TypeJourneyVersion     = "JourneyVersion"
	TypePatient            = "Patient"
	TypePatientBridge      = "PatientBridge"
	TypePatientJourney     = "PatientJourney"
	TypePipelineEvent      = "PipelineEvent"
	TypeProcessingLog      = "ProcessingLog"
	TypeTherapySession     = "TherapySession"
)

// BridgeVersionMutation represents an operation that mutates the BridgeVersion nodes in the graph.
type BridgeVersionMutation struct {
	config
	op             Op
	typ            string
	id             *int
	version        *int
	addversion     *int
	data           *map[string]interface{}
	metadata_id    *int
	addmetadata_id *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	patient        *string
	clearedpatient bool
	done           bool
	oldValue       func(context.Context) (*BridgeVersion, error)
	predicates     []predicate.BridgeVersion
}

var _ ent.Mutation = (*BridgeVersionMutation)(nil)

// bridgeversionOption allows management of the mutation configuration using functional options.
type bridgeversionOption func(*BridgeVersionMutation)

// newBridgeVersionMutation creates new mutation for the BridgeVersion entity.
func newBridgeVersionMutation(c config, op Op, opts ...bridgeversionOption) *BridgeVersionMutation {
	m := &BridgeVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeBridgeVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBridgeVersionID sets the ID field of the mutation.
func withBridgeVersionID(id int) bridgeversionOption {
	return func(m *BridgeVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *BridgeVersion
		)
		m.oldValue = func(ctx context.Context) (*BridgeVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BridgeVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBridgeVersion sets the old BridgeVersion of the mutation.
func withBridgeVersion(node *BridgeVersion) bridgeversionOption {
	return func(m *BridgeVersionMutation) {
		m.oldValue = func(context.Context) (*BridgeVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BridgeVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BridgeVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BridgeVersionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BridgeVersionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BridgeVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatientID sets the "patient_id" field.
func (m *BridgeVersionMutation) SetPatientID(s string) {
	m.patient = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *BridgeVersionMutation) PatientID() (r string, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the BridgeVersion entity.
// If the BridgeVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BridgeVersionMutation) OldPatientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *BridgeVersionMutation) ResetPatientID() {
	m.patient = nil
}

// SetVersion sets the "version" field.
func (m *BridgeVersionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *BridgeVersionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the BridgeVersion entity.
// If the BridgeVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BridgeVersionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *BridgeVersionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *BridgeVersionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *BridgeVersionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetData sets the "data" field.
func (m *BridgeVersionMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *BridgeVersionMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the BridgeVersion entity.
// If the BridgeVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BridgeVersionMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *BridgeVersionMutation) ResetData() {
	m.data = nil
}

// SetMetadataID sets the "metadata_id" field.
func (m *BridgeVersionMutation) SetMetadataID(i int) {
	m.metadata_id = &i
	m.addmetadata_id = nil
}

// MetadataID returns the value of the "metadata_id" field in the mutation.
func (m *BridgeVersionMutation) MetadataID() (r int, exists bool) {
	v := m.metadata_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadataID returns the old "metadata_id" field's value of the BridgeVersion entity.
// If the BridgeVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BridgeVersionMutation) OldMetadataID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadataID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadataID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadataID: %w", err)
	}
	return oldValue.MetadataID, nil
}

// AddMetadataID adds i to the "metadata_id" field.
func (m *BridgeVersionMutation) AddMetadataID(i int) {
	if m.addmetadata_id != nil {
		*m.addmetadata_id += i
	} else {
		m.addmetadata_id = &i
	}
}

// AddedMetadataID returns the value that was added to the "metadata_id" field in this mutation.
func (m *BridgeVersionMutation) AddedMetadataID() (r int, exists bool) {
	v := m.addmetadata_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (m *BridgeVersionMutation) ClearMetadataID() {
	m.metadata_id = nil
	m.addmetadata_id = nil
	m.clearedFields[bridgeversion.FieldMetadataID] = struct{}{}
}

// MetadataIDCleared returns if the "metadata_id" field was cleared in this mutation.
func (m *BridgeVersionMutation) MetadataIDCleared() bool {
	_, ok := m.clearedFields[bridgeversion.FieldMetadataID]
	return ok
}

// ResetMetadataID resets all changes to the "metadata_id" field.
func (m *BridgeVersionMutation) ResetMetadataID() {
	m.metadata_id = nil
	m.addmetadata_id = nil
	delete(m.clearedFields, bridgeversion.FieldMetadataID)
}

// SetCreatedAt sets the "created_at" field.
func (m *BridgeVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BridgeVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BridgeVersion entity.
// If the BridgeVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BridgeVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BridgeVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *BridgeVersionMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[bridgeversion.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *BridgeVersionMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *BridgeVersionMutation) PatientIDs() (ids []string) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *BridgeVersionMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// Where appends a list predicates to the BridgeVersionMutation builder.
func (m *BridgeVersionMutation) Where(ps ...predicate.BridgeVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BridgeVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BridgeVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BridgeVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BridgeVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BridgeVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BridgeVersion).
func (m *BridgeVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BridgeVersionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.patient != nil {
		fields = append(fields, bridgeversion.FieldPatientID)
	}
	if m.version != nil {
		fields = append(fields, bridgeversion.FieldVersion)
	}
	if m.data != nil {
		fields = append(fields, bridgeversion.FieldData)
	}
	if m.metadata_id != nil {
		fields = append(fields, bridgeversion.FieldMetadataID)
	}
	if m.created_at != nil {
		fields = append(fields, bridgeversion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BridgeVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bridgeversion.FieldPatientID:
		return m.PatientID()
	case bridgeversion.FieldVersion:
		return m.Version()
	case bridgeversion.FieldData:
		return m.Data()
	case bridgeversion.FieldMetadataID:
		return m.MetadataID()
	case bridgeversion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BridgeVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bridgeversion.FieldPatientID:
		return m.OldPatientID(ctx)
	case bridgeversion.FieldVersion:
		return m.OldVersion(ctx)
	case bridgeversion.FieldData:
		return m.OldData(ctx)
	case bridgeversion.FieldMetadataID:
		return m.OldMetadataID(ctx)
	case bridgeversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BridgeVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BridgeVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bridgeversion.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case bridgeversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case bridgeversion.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case bridgeversion.FieldMetadataID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadataID(v)
		return nil
	case bridgeversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BridgeVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BridgeVersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, bridgeversion.FieldVersion)
	}
	if m.addmetadata_id != nil {
		fields = append(fields, bridgeversion.FieldMetadataID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BridgeVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bridgeversion.FieldVersion:
		return m.AddedVersion()
	case bridgeversion.FieldMetadataID:
		return m.AddedMetadataID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BridgeVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bridgeversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case bridgeversion.FieldMetadataID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMetadataID(v)
		return nil
	}
	return fmt.Errorf("unknown BridgeVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BridgeVersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bridgeversion.FieldMetadataID) {
		fields = append(fields, bridgeversion.FieldMetadataID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BridgeVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BridgeVersionMutation) ClearField(name string) error {
	switch name {
	case bridgeversion.FieldMetadataID:
		m.ClearMetadataID()
		return nil
	}
	return fmt.Errorf("unknown BridgeVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BridgeVersionMutation) ResetField(name string) error {
	switch name {
	case bridgeversion.FieldPatientID:
		m.ResetPatientID()
		return nil
	case bridgeversion.FieldVersion:
		m.ResetVersion()
		return nil
	case bridgeversion.FieldData:
		m.ResetData()
		return nil
	case bridgeversion.FieldMetadataID:
		m.ResetMetadataID()
		return nil
	case bridgeversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BridgeVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BridgeVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.patient != nil {
		edges = append(edges, bridgeversion.EdgePatient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BridgeVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bridgeversion.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BridgeVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BridgeVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BridgeVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpatient {
		edges = append(edges, bridgeversion.EdgePatient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BridgeVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case bridgeversion.EdgePatient:
		return m.clearedpatient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BridgeVersionMutation) ClearEdge(name string) error {
	switch name {
	case bridgeversion.EdgePatient:
		m.ClearPatient()
		return nil
	}
	return fmt.Errorf("unknown BridgeVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BridgeVersionMutation) ResetEdge(name string) error {
	switch name {
	case bridgeversion.EdgePatient:
		m.ResetPatient()
		return nil
	}
	return fmt.Errorf("unknown BridgeVersion edge %s", name)
}

// GenerationCostMutation represents an operation that mutates the GenerationCost nodes in the graph.
type GenerationCostMutation struct {
	config
	op               Op
	typ              string
	id               *int
	task             *string
	model            *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	cost_usd         *float64
	addcost_usd      *float64
	duration_ms      *int
	addduration_ms   *int
	session_id       *string
	patient_id       *string
	metadata         *map[string]interface{}
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*GenerationCost, error)
	predicates       []predicate.GenerationCost
}

var _ ent.Mutation = (*GenerationCostMutation)(nil)

// generationcostOption allows management of the mutation configuration using functional options.
type generationcostOption func(*GenerationCostMutation)

// newGenerationCostMutation creates new mutation for the GenerationCost entity.
func newGenerationCostMutation(c config, op Op, opts ...generationcostOption) *GenerationCostMutation {
	m := &GenerationCostMutation{
		config:        c,
		op:            op,
		typ:           TypeGenerationCost,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGenerationCostID sets the ID field of the mutation.
func withGenerationCostID(id int) generationcostOption {
	return func(m *GenerationCostMutation) {
		var (
			err   error
			once  sync.Once
			value *GenerationCost
		)
		m.oldValue = func(ctx context.Context) (*GenerationCost, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GenerationCost.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGenerationCost sets the old GenerationCost of the mutation.
func withGenerationCost(node *GenerationCost) generationcostOption {
	return func(m *GenerationCostMutation) {
		m.oldValue = func(context.Context) (*GenerationCost, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GenerationCostMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GenerationCostMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GenerationCostMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GenerationCostMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GenerationCost.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTask sets the "task" field.
func (m *GenerationCostMutation) SetTask(s string) {
	m.task = &s
}

// Task returns the value of the "task" field in the mutation.
func (m *GenerationCostMutation) Task() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTask returns the old "task" field's value of the GenerationCost entity.
// If the GenerationCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationCostMutation) OldTask(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTask is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTask requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTask: %w", err)
	}
	return oldValue.Task, nil
}

// ResetTask resets all changes to the "task" field.
func (m *GenerationCostMutation) ResetTask() {
	m.task = nil
}

// SetModel sets the "model" field.
func (m *GenerationCostMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *GenerationCostMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the GenerationCost entity.
// If the GenerationCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationCostMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *GenerationCostMutation) ResetModel() {
	m.model = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *GenerationCostMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *GenerationCostMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the GenerationCost entity.
// If the GenerationCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationCostMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *GenerationCostMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *GenerationCostMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *GenerationCostMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *GenerationCostMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *GenerationCostMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the GenerationCost entity.
// If the GenerationCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationCostMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *GenerationCostMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *GenerationCostMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *GenerationCostMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *GenerationCostMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *GenerationCostMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the GenerationCost entity.
// If the GenerationCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationCostMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *GenerationCostMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *GenerationCostMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *GenerationCostMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *GenerationCostMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *GenerationCostMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the GenerationCost entity.
// If the GenerationCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationCostMutation) OldDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *GenerationCostMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *GenerationCostMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *GenerationCostMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetSessionID sets the "session_id" field.
func (m *GenerationCostMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *GenerationCostMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the GenerationCost entity.
// If the GenerationCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationCostMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *GenerationCostMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[generationcost.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *GenerationCostMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[generationcost.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *GenerationCostMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, generationcost.FieldSessionID)
}

// SetPatientID sets the "patient_id" field.
func (m *GenerationCostMutation) SetPatientID(s string) {
	m.patient_id = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *GenerationCostMutation) PatientID() (r string, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the GenerationCost entity.
// If the GenerationCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationCostMutation) OldPatientID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ClearPatientID clears the value of the "patient_id" field.
func (m *GenerationCostMutation) ClearPatientID() {
	m.patient_id = nil
	m.clearedFields[generationcost.FieldPatientID] = struct{}{}
}

// PatientIDCleared returns if the "patient_id" field was cleared in this mutation.
func (m *GenerationCostMutation) PatientIDCleared() bool {
	_, ok := m.clearedFields[generationcost.FieldPatientID]
	return ok
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *GenerationCostMutation) ResetPatientID() {
	m.patient_id = nil
	delete(m.clearedFields, generationcost.FieldPatientID)
}

// SetMetadata sets the "metadata" field.
func (m *GenerationCostMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *GenerationCostMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the GenerationCost entity.
// If the GenerationCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationCostMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *GenerationCostMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[generationcost.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *GenerationCostMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[generationcost.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *GenerationCostMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, generationcost.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *GenerationCostMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GenerationCostMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GenerationCost entity.
// If the GenerationCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationCostMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GenerationCostMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the GenerationCostMutation builder.
func (m *GenerationCostMutation) Where(ps ...predicate.GenerationCost) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GenerationCostMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GenerationCostMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GenerationCost, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GenerationCostMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GenerationCostMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GenerationCost).
func (m *GenerationCostMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GenerationCostMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.task != nil {
		fields = append(fields, generationcost.FieldTask)
	}
	if m.model != nil {
		fields = append(fields, generationcost.FieldModel)
	}
	if m.input_tokens != nil {
		fields = append(fields, generationcost.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, generationcost.FieldOutputTokens)
	}
	if m.cost_usd != nil {
		fields = append(fields, generationcost.FieldCostUsd)
	}
	if m.duration_ms != nil {
		fields = append(fields, generationcost.FieldDurationMs)
	}
	if m.session_id != nil {
		fields = append(fields, generationcost.FieldSessionID)
	}
	if m.patient_id != nil {
		fields = append(fields, generationcost.FieldPatientID)
	}
	if m.metadata != nil {
		fields = append(fields, generationcost.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, generationcost.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GenerationCostMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generationcost.FieldTask:
		return m.Task()
	case generationcost.FieldModel:
		return m.Model()
	case generationcost.FieldInputTokens:
		return m.InputTokens()
	case generationcost.FieldOutputTokens:
		return m.OutputTokens()
	case generationcost.FieldCostUsd:
		return m.CostUsd()
	case generationcost.FieldDurationMs:
		return m.DurationMs()
	case generationcost.FieldSessionID:
		return m.SessionID()
	case generationcost.FieldPatientID:
		return m.PatientID()
	case generationcost.FieldMetadata:
		return m.Metadata()
	case generationcost.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GenerationCostMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generationcost.FieldTask:
		return m.OldTask(ctx)
	case generationcost.FieldModel:
		return m.OldModel(ctx)
	case generationcost.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case generationcost.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case generationcost.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case generationcost.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case generationcost.FieldSessionID:
		return m.OldSessionID(ctx)
	case generationcost.FieldPatientID:
		return m.OldPatientID(ctx)
	case generationcost.FieldMetadata:
		return m.OldMetadata(ctx)
	case generationcost.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GenerationCost field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationCostMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generationcost.FieldTask:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTask(v)
		return nil
	case generationcost.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case generationcost.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case generationcost.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case generationcost.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case generationcost.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case generationcost.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case generationcost.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case generationcost.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case generationcost.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationCost field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GenerationCostMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, generationcost.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, generationcost.FieldOutputTokens)
	}
	if m.addcost_usd != nil {
		fields = append(fields, generationcost.FieldCostUsd)
	}
	if m.addduration_ms != nil {
		fields = append(fields, generationcost.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GenerationCostMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case generationcost.FieldInputTokens:
		return m.AddedInputTokens()
	case generationcost.FieldOutputTokens:
		return m.AddedOutputTokens()
	case generationcost.FieldCostUsd:
		return m.AddedCostUsd()
	case generationcost.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationCostMutation) AddField(name string, value ent.Value) error {
	switch name {
	case generationcost.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case generationcost.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case generationcost.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	case generationcost.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationCost numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GenerationCostMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(generationcost.FieldSessionID) {
		fields = append(fields, generationcost.FieldSessionID)
	}
	if m.FieldCleared(generationcost.FieldPatientID) {
		fields = append(fields, generationcost.FieldPatientID)
	}
	if m.FieldCleared(generationcost.FieldMetadata) {
		fields = append(fields, generationcost.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GenerationCostMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GenerationCostMutation) ClearField(name string) error {
	switch name {
	case generationcost.FieldSessionID:
		m.ClearSessionID()
		return nil
	case generationcost.FieldPatientID:
		m.ClearPatientID()
		return nil
	case generationcost.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown GenerationCost nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GenerationCostMutation) ResetField(name string) error {
	switch name {
	case generationcost.FieldTask:
		m.ResetTask()
		return nil
	case generationcost.FieldModel:
		m.ResetModel()
		return nil
	case generationcost.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case generationcost.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case generationcost.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case generationcost.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case generationcost.FieldSessionID:
		m.ResetSessionID()
		return nil
	case generationcost.FieldPatientID:
		m.ResetPatientID()
		return nil
	case generationcost.FieldMetadata:
		m.ResetMetadata()
		return nil
	case generationcost.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GenerationCost field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GenerationCostMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GenerationCostMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GenerationCostMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GenerationCostMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GenerationCostMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GenerationCostMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GenerationCostMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GenerationCost unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GenerationCostMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GenerationCost edge %s", name)
}

// GenerationMetadataMutation represents an operation that mutates the GenerationMetadata nodes in the graph.
type GenerationMetadataMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	journey_version_id        *int
	addjourney_version_id     *int
	bridge_version_id         *int
	addbridge_version_id      *int
	sessions_analyzed         *int
	addsessions_analyzed      *int
	total_sessions            *int
	addtotal_sessions         *int
	model_used                *string
	compaction_strategy       *string
	generation_timestamp      *time.Time
	generation_duration_ms    *int
	addgeneration_duration_ms *int
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*GenerationMetadata, error)
	predicates                []predicate.GenerationMetadata
}

var _ ent.Mutation = (*GenerationMetadataMutation)(nil)

// generationmetadataOption allows management of the mutation configuration using functional options.
type generationmetadataOption func(*GenerationMetadataMutation)

// newGenerationMetadataMutation creates new mutation for the GenerationMetadata entity.
func newGenerationMetadataMutation(c config, op Op, opts ...generationmetadataOption) *GenerationMetadataMutation {
	m := &GenerationMetadataMutation{
		config:        c,
		op:            op,
		typ:           TypeGenerationMetadata,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGenerationMetadataID sets the ID field of the mutation.
func withGenerationMetadataID(id int) generationmetadataOption {
	return func(m *GenerationMetadataMutation) {
		var (
			err   error
			once  sync.Once
			value *GenerationMetadata
		)
		m.oldValue = func(ctx context.Context) (*GenerationMetadata, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GenerationMetadata.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGenerationMetadata sets the old GenerationMetadata of the mutation.
func withGenerationMetadata(node *GenerationMetadata) generationmetadataOption {
	return func(m *GenerationMetadataMutation) {
		m.oldValue = func(context.Context) (*GenerationMetadata, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GenerationMetadataMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GenerationMetadataMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GenerationMetadataMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GenerationMetadataMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GenerationMetadata.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJourneyVersionID sets the "journey_version_id" field.
func (m *GenerationMetadataMutation) SetJourneyVersionID(i int) {
	m.journey_version_id = &i
	m.addjourney_version_id = nil
}

// JourneyVersionID returns the value of the "journey_version_id" field in the mutation.
func (m *GenerationMetadataMutation) JourneyVersionID() (r int, exists bool) {
	v := m.journey_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJourneyVersionID returns the old "journey_version_id" field's value of the GenerationMetadata entity.
// If the GenerationMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetadataMutation) OldJourneyVersionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJourneyVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJourneyVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJourneyVersionID: %w", err)
	}
	return oldValue.JourneyVersionID, nil
}

// AddJourneyVersionID adds i to the "journey_version_id" field.
func (m *GenerationMetadataMutation) AddJourneyVersionID(i int) {
	if m.addjourney_version_id != nil {
		*m.addjourney_version_id += i
	} else {
		m.addjourney_version_id = &i
	}
}

// AddedJourneyVersionID returns the value that was added to the "journey_version_id" field in this mutation.
func (m *GenerationMetadataMutation) AddedJourneyVersionID() (r int, exists bool) {
	v := m.addjourney_version_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearJourneyVersionID clears the value of the "journey_version_id" field.
func (m *GenerationMetadataMutation) ClearJourneyVersionID() {
	m.journey_version_id = nil
	m.addjourney_version_id = nil
	m.clearedFields[generationmetadata.FieldJourneyVersionID] = struct{}{}
}

// JourneyVersionIDCleared returns if the "journey_version_id" field was cleared in this mutation.
func (m *GenerationMetadataMutation) JourneyVersionIDCleared() bool {
	_, ok := m.clearedFields[generationmetadata.FieldJourneyVersionID]
	return ok
}

// ResetJourneyVersionID resets all changes to the "journey_version_id" field.
func (m *GenerationMetadataMutation) ResetJourneyVersionID() {
	m.journey_version_id = nil
	m.addjourney_version_id = nil
	delete(m.clearedFields, generationmetadata.FieldJourneyVersionID)
}

// SetBridgeVersionID sets the "bridge_version_id" field.
func (m *GenerationMetadataMutation) SetBridgeVersionID(i int) {
	m.bridge_version_id = &i
	m.addbridge_version_id = nil
}

// BridgeVersionID returns the value of the "bridge_version_id" field in the mutation.
func (m *GenerationMetadataMutation) BridgeVersionID() (r int, exists bool) {
	v := m.bridge_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBridgeVersionID returns the old "bridge_version_id" field's value of the GenerationMetadata entity.
// If the GenerationMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetadataMutation) OldBridgeVersionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBridgeVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBridgeVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBridgeVersionID: %w", err)
	}
	return oldValue.BridgeVersionID, nil
}

// AddBridgeVersionID adds i to the "bridge_version_id" field.
func (m *GenerationMetadataMutation) AddBridgeVersionID(i int) {
	if m.addbridge_version_id != nil {
		*m.addbridge_version_id += i
	} else {
		m.addbridge_version_id = &i
	}
}

// AddedBridgeVersionID returns the value that was added to the "bridge_version_id" field in this mutation.
func (m *GenerationMetadataMutation) AddedBridgeVersionID() (r int, exists bool) {
	v := m.addbridge_version_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearBridgeVersionID clears the value of the "bridge_version_id" field.
func (m *GenerationMetadataMutation) ClearBridgeVersionID() {
	m.bridge_version_id = nil
	m.addbridge_version_id = nil
	m.clearedFields[generationmetadata.FieldBridgeVersionID] = struct{}{}
}

// BridgeVersionIDCleared returns if the "bridge_version_id" field was cleared in this mutation.
func (m *GenerationMetadataMutation) BridgeVersionIDCleared() bool {
	_, ok := m.clearedFields[generationmetadata.FieldBridgeVersionID]
	return ok
}

// ResetBridgeVersionID resets all changes to the "bridge_version_id" field.
func (m *GenerationMetadataMutation) ResetBridgeVersionID() {
	m.bridge_version_id = nil
	m.addbridge_version_id = nil
	delete(m.clearedFields, generationmetadata.FieldBridgeVersionID)
}

// SetSessionsAnalyzed sets the "sessions_analyzed" field.
func (m *GenerationMetadataMutation) SetSessionsAnalyzed(i int) {
	m.sessions_analyzed = &i
	m.addsessions_analyzed = nil
}

// SessionsAnalyzed returns the value of the "sessions_analyzed" field in the mutation.
func (m *GenerationMetadataMutation) SessionsAnalyzed() (r int, exists bool) {
	v := m.sessions_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionsAnalyzed returns the old "sessions_analyzed" field's value of the GenerationMetadata entity.
// If the GenerationMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetadataMutation) OldSessionsAnalyzed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionsAnalyzed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionsAnalyzed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionsAnalyzed: %w", err)
	}
	return oldValue.SessionsAnalyzed, nil
}

// AddSessionsAnalyzed adds i to the "sessions_analyzed" field.
func (m *GenerationMetadataMutation) AddSessionsAnalyzed(i int) {
	if m.addsessions_analyzed != nil {
		*m.addsessions_analyzed += i
	} else {
		m.addsessions_analyzed = &i
	}
}

// AddedSessionsAnalyzed returns the value that was added to the "sessions_analyzed" field in this mutation.
func (m *GenerationMetadataMutation) AddedSessionsAnalyzed() (r int, exists bool) {
	v := m.addsessions_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionsAnalyzed resets all changes to the "sessions_analyzed" field.
func (m *GenerationMetadataMutation) ResetSessionsAnalyzed() {
	m.sessions_analyzed = nil
	m.addsessions_analyzed = nil
}

// SetTotalSessions sets the "total_sessions" field.
func (m *GenerationMetadataMutation) SetTotalSessions(i int) {
	m.total_sessions = &i
	m.addtotal_sessions = nil
}

// TotalSessions returns the value of the "total_sessions" field in the mutation.
func (m *GenerationMetadataMutation) TotalSessions() (r int, exists bool) {
	v := m.total_sessions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalSessions returns the old "total_sessions" field's value of the GenerationMetadata entity.
// If the GenerationMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetadataMutation) OldTotalSessions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalSessions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalSessions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalSessions: %w", err)
	}
	return oldValue.TotalSessions, nil
}

// AddTotalSessions adds i to the "total_sessions" field.
func (m *GenerationMetadataMutation) AddTotalSessions(i int) {
	if m.addtotal_sessions != nil {
		*m.addtotal_sessions += i
	} else {
		m.addtotal_sessions = &i
	}
}

// AddedTotalSessions returns the value that was added to the "total_sessions" field in this mutation.
func (m *GenerationMetadataMutation) AddedTotalSessions() (r int, exists bool) {
	v := m.addtotal_sessions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalSessions resets all changes to the "total_sessions" field.
func (m *GenerationMetadataMutation) ResetTotalSessions() {
	m.total_sessions = nil
	m.addtotal_sessions = nil
}

// SetModelUsed sets the "model_used" field.
func (m *GenerationMetadataMutation) SetModelUsed(s string) {
	m.model_used = &s
}

// ModelUsed returns the value of the "model_used" field in the mutation.
func (m *GenerationMetadataMutation) ModelUsed() (r string, exists bool) {
	v := m.model_used
	if v == nil {
		return
	}
	return *v, true
}

// OldModelUsed returns the old "model_used" field's value of the GenerationMetadata entity.
// If the GenerationMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetadataMutation) OldModelUsed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelUsed: %w", err)
	}
	return oldValue.ModelUsed, nil
}

// ResetModelUsed resets all changes to the "model_used" field.
func (m *GenerationMetadataMutation) ResetModelUsed() {
	m.model_used = nil
}

// SetCompactionStrategy sets the "compaction_strategy" field.
func (m *GenerationMetadataMutation) SetCompactionStrategy(s string) {
	m.compaction_strategy = &s
}

// CompactionStrategy returns the value of the "compaction_strategy" field in the mutation.
func (m *GenerationMetadataMutation) CompactionStrategy() (r string, exists bool) {
	v := m.compaction_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldCompactionStrategy returns the old "compaction_strategy" field's value of the GenerationMetadata entity.
// If the GenerationMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetadataMutation) OldCompactionStrategy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompactionStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompactionStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompactionStrategy: %w", err)
	}
	return oldValue.CompactionStrategy, nil
}

// ClearCompactionStrategy clears the value of the "compaction_strategy" field.
func (m *GenerationMetadataMutation) ClearCompactionStrategy() {
	m.compaction_strategy = nil
	m.clearedFields[generationmetadata.FieldCompactionStrategy] = struct{}{}
}

// CompactionStrategyCleared returns if the "compaction_strategy" field was cleared in this mutation.
func (m *GenerationMetadataMutation) CompactionStrategyCleared() bool {
	_, ok := m.clearedFields[generationmetadata.FieldCompactionStrategy]
	return ok
}

// ResetCompactionStrategy resets all changes to the "compaction_strategy" field.
func (m *GenerationMetadataMutation) ResetCompactionStrategy() {
	m.compaction_strategy = nil
	delete(m.clearedFields, generationmetadata.FieldCompactionStrategy)
}

// SetGenerationTimestamp sets the "generation_timestamp" field.
func (m *GenerationMetadataMutation) SetGenerationTimestamp(t time.Time) {
	m.generation_timestamp = &t
}

// GenerationTimestamp returns the value of the "generation_timestamp" field in the mutation.
func (m *GenerationMetadataMutation) GenerationTimestamp() (r time.Time, exists bool) {
	v := m.generation_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerationTimestamp returns the old "generation_timestamp" field's value of the GenerationMetadata entity.
// If the GenerationMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetadataMutation) OldGenerationTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerationTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerationTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerationTimestamp: %w", err)
	}
	return oldValue.GenerationTimestamp, nil
}

// ResetGenerationTimestamp resets all changes to the "generation_timestamp" field.
func (m *GenerationMetadataMutation) ResetGenerationTimestamp() {
	m.generation_timestamp = nil
}

// SetGenerationDurationMs sets the "generation_duration_ms" field.
func (m *GenerationMetadataMutation) SetGenerationDurationMs(i int) {
	m.generation_duration_ms = &i
	m.addgeneration_duration_ms = nil
}

// GenerationDurationMs returns the value of the "generation_duration_ms" field in the mutation.
func (m *GenerationMetadataMutation) GenerationDurationMs() (r int, exists bool) {
	v := m.generation_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerationDurationMs returns the old "generation_duration_ms" field's value of the GenerationMetadata entity.
// If the GenerationMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetadataMutation) OldGenerationDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerationDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerationDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerationDurationMs: %w", err)
	}
	return oldValue.GenerationDurationMs, nil
}

// AddGenerationDurationMs adds i to the "generation_duration_ms" field.
func (m *GenerationMetadataMutation) AddGenerationDurationMs(i int) {
	if m.addgeneration_duration_ms != nil {
		*m.addgeneration_duration_ms += i
	} else {
		m.addgeneration_duration_ms = &i
	}
}

// AddedGenerationDurationMs returns the value that was added to the "generation_duration_ms" field in this mutation.
func (m *GenerationMetadataMutation) AddedGenerationDurationMs() (r int, exists bool) {
	v := m.addgeneration_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetGenerationDurationMs resets all changes to the "generation_duration_ms" field.
func (m *GenerationMetadataMutation) ResetGenerationDurationMs() {
	m.generation_duration_ms = nil
	m.addgeneration_duration_ms = nil
}

// Where appends a list predicates to the GenerationMetadataMutation builder.
func (m *GenerationMetadataMutation) Where(ps ...predicate.GenerationMetadata) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GenerationMetadataMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GenerationMetadataMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GenerationMetadata, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GenerationMetadataMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GenerationMetadataMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GenerationMetadata).
func (m *GenerationMetadataMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GenerationMetadataMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.journey_version_id != nil {
		fields = append(fields, generationmetadata.FieldJourneyVersionID)
	}
	if m.bridge_version_id != nil {
		fields = append(fields, generationmetadata.FieldBridgeVersionID)
	}
	if m.sessions_analyzed != nil {
		fields = append(fields, generationmetadata.FieldSessionsAnalyzed)
	}
	if m.total_sessions != nil {
		fields = append(fields, generationmetadata.FieldTotalSessions)
	}
	if m.model_used != nil {
		fields = append(fields, generationmetadata.FieldModelUsed)
	}
	if m.compaction_strategy != nil {
		fields = append(fields, generationmetadata.FieldCompactionStrategy)
	}
	if m.generation_timestamp != nil {
		fields = append(fields, generationmetadata.FieldGenerationTimestamp)
	}
	if m.generation_duration_ms != nil {
		fields = append(fields, generationmetadata.FieldGenerationDurationMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GenerationMetadataMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generationmetadata.FieldJourneyVersionID:
		return m.JourneyVersionID()
	case generationmetadata.FieldBridgeVersionID:
		return m.BridgeVersionID()
	case generationmetadata.FieldSessionsAnalyzed:
		return m.SessionsAnalyzed()
	case generationmetadata.FieldTotalSessions:
		return m.TotalSessions()
	case generationmetadata.FieldModelUsed:
		return m.ModelUsed()
	case generationmetadata.FieldCompactionStrategy:
		return m.CompactionStrategy()
	case generationmetadata.FieldGenerationTimestamp:
		return m.GenerationTimestamp()
	case generationmetadata.FieldGenerationDurationMs:
		return m.GenerationDurationMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GenerationMetadataMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generationmetadata.FieldJourneyVersionID:
		return m.OldJourneyVersionID(ctx)
	case generationmetadata.FieldBridgeVersionID:
		return m.OldBridgeVersionID(ctx)
	case generationmetadata.FieldSessionsAnalyzed:
		return m.OldSessionsAnalyzed(ctx)
	case generationmetadata.FieldTotalSessions:
		return m.OldTotalSessions(ctx)
	case generationmetadata.FieldModelUsed:
		return m.OldModelUsed(ctx)
	case generationmetadata.FieldCompactionStrategy:
		return m.OldCompactionStrategy(ctx)
	case generationmetadata.FieldGenerationTimestamp:
		return m.OldGenerationTimestamp(ctx)
	case generationmetadata.FieldGenerationDurationMs:
		return m.OldGenerationDurationMs(ctx)
	}
	return nil, fmt.Errorf("unknown GenerationMetadata field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationMetadataMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generationmetadata.FieldJourneyVersionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJourneyVersionID(v)
		return nil
	case generationmetadata.FieldBridgeVersionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBridgeVersionID(v)
		return nil
	case generationmetadata.FieldSessionsAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionsAnalyzed(v)
		return nil
	case generationmetadata.FieldTotalSessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalSessions(v)
		return nil
	case generationmetadata.FieldModelUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelUsed(v)
		return nil
	case generationmetadata.FieldCompactionStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompactionStrategy(v)
		return nil
	case generationmetadata.FieldGenerationTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerationTimestamp(v)
		return nil
	case generationmetadata.FieldGenerationDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerationDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationMetadata field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GenerationMetadataMutation) AddedFields() []string {
	var fields []string
	if m.addjourney_version_id != nil {
		fields = append(fields, generationmetadata.FieldJourneyVersionID)
	}
	if m.addbridge_version_id != nil {
		fields = append(fields, generationmetadata.FieldBridgeVersionID)
	}
	if m.addsessions_analyzed != nil {
		fields = append(fields, generationmetadata.FieldSessionsAnalyzed)
	}
	if m.addtotal_sessions != nil {
		fields = append(fields, generationmetadata.FieldTotalSessions)
	}
	if m.addgeneration_duration_ms != nil {
		fields = append(fields, generationmetadata.FieldGenerationDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GenerationMetadataMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case generationmetadata.FieldJourneyVersionID:
		return m.AddedJourneyVersionID()
	case generationmetadata.FieldBridgeVersionID:
		return m.AddedBridgeVersionID()
	case generationmetadata.FieldSessionsAnalyzed:
		return m.AddedSessionsAnalyzed()
	case generationmetadata.FieldTotalSessions:
		return m.AddedTotalSessions()
	case generationmetadata.FieldGenerationDurationMs:
		return m.AddedGenerationDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationMetadataMutation) AddField(name string, value ent.Value) error {
	switch name {
	case generationmetadata.FieldJourneyVersionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddJourneyVersionID(v)
		return nil
	case generationmetadata.FieldBridgeVersionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBridgeVersionID(v)
		return nil
	case generationmetadata.FieldSessionsAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionsAnalyzed(v)
		return nil
	case generationmetadata.FieldTotalSessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalSessions(v)
		return nil
	case generationmetadata.FieldGenerationDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGenerationDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationMetadata numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GenerationMetadataMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(generationmetadata.FieldJourneyVersionID) {
		fields = append(fields, generationmetadata.FieldJourneyVersionID)
	}
	if m.FieldCleared(generationmetadata.FieldBridgeVersionID) {
		fields = append(fields, generationmetadata.FieldBridgeVersionID)
	}
	if m.FieldCleared(generationmetadata.FieldCompactionStrategy) {
		fields = append(fields, generationmetadata.FieldCompactionStrategy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GenerationMetadataMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GenerationMetadataMutation) ClearField(name string) error {
	switch name {
	case generationmetadata.FieldJourneyVersionID:
		m.ClearJourneyVersionID()
		return nil
	case generationmetadata.FieldBridgeVersionID:
		m.ClearBridgeVersionID()
		return nil
	case generationmetadata.FieldCompactionStrategy:
		m.ClearCompactionStrategy()
		return nil
	}
	return fmt.Errorf("unknown GenerationMetadata nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GenerationMetadataMutation) ResetField(name string) error {
	switch name {
	case generationmetadata.FieldJourneyVersionID:
		m.ResetJourneyVersionID()
		return nil
	case generationmetadata.FieldBridgeVersionID:
		m.ResetBridgeVersionID()
		return nil
	case generationmetadata.FieldSessionsAnalyzed:
		m.ResetSessionsAnalyzed()
		return nil
	case generationmetadata.FieldTotalSessions:
		m.ResetTotalSessions()
		return nil
	case generationmetadata.FieldModelUsed:
		m.ResetModelUsed()
		return nil
	case generationmetadata.FieldCompactionStrategy:
		m.ResetCompactionStrategy()
		return nil
	case generationmetadata.FieldGenerationTimestamp:
		m.ResetGenerationTimestamp()
		return nil
	case generationmetadata.FieldGenerationDurationMs:
		m.ResetGenerationDurationMs()
		return nil
	}
	return fmt.Errorf("unknown GenerationMetadata field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GenerationMetadataMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GenerationMetadataMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GenerationMetadataMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GenerationMetadataMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GenerationMetadataMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GenerationMetadataMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GenerationMetadataMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GenerationMetadata unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GenerationMetadataMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GenerationMetadata edge %s", name)
}

// JourneyVersionMutation represents an operation that mutates the JourneyVersion nodes in the graph.
type JourneyVersionMutation struct {
	config
	op             Op
	typ            string
	id             *int
	version        *int
	addversion     *int
	data           *map[string]interface{}
	metadata_id    *int
	addmetadata_id *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	patient        *string
	clearedpatient bool
	done           bool
	oldValue       func(context.Context) (*JourneyVersion, error)
	predicates     []predicate.JourneyVersion
}

var _ ent.Mutation = (*JourneyVersionMutation)(nil)

// journeyversionOption allows management of the mutation configuration using functional options.
type journeyversionOption func(*JourneyVersionMutation)

// newJourneyVersionMutation creates new mutation for the JourneyVersion entity.
func newJourneyVersionMutation(c config, op Op, opts ...journeyversionOption) *JourneyVersionMutation {
	m := &JourneyVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeJourneyVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJourneyVersionID sets the ID field of the mutation.
func withJourneyVersionID(id int) journeyversionOption {
	return func(m *JourneyVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *JourneyVersion
		)
		m.oldValue = func(ctx context.Context) (*JourneyVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JourneyVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJourneyVersion sets the old JourneyVersion of the mutation.
func withJourneyVersion(node *JourneyVersion) journeyversionOption {
	return func(m *JourneyVersionMutation) {
		m.oldValue = func(context.Context) (*JourneyVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JourneyVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JourneyVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JourneyVersionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JourneyVersionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JourneyVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatientID sets the "patient_id" field.
func (m *JourneyVersionMutation) SetPatientID(s string) {
	m.patient = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *JourneyVersionMutation) PatientID() (r string, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the JourneyVersion entity.
// If the JourneyVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyVersionMutation) OldPatientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *JourneyVersionMutation) ResetPatientID() {
	m.patient = nil
}

// SetVersion sets the "version" field.
func (m *JourneyVersionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *JourneyVersionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the JourneyVersion entity.
// If the JourneyVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyVersionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *JourneyVersionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *JourneyVersionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *JourneyVersionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetData sets the "data" field.
func (m *JourneyVersionMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *JourneyVersionMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the JourneyVersion entity.
// If the JourneyVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyVersionMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *JourneyVersionMutation) ResetData() {
	m.data = nil
}

// SetMetadataID sets the "metadata_id" field.
func (m *JourneyVersionMutation) SetMetadataID(i int) {
	m.metadata_id = &i
	m.addmetadata_id = nil
}

// MetadataID returns the value of the "metadata_id" field in the mutation.
func (m *JourneyVersionMutation) MetadataID() (r int, exists bool) {
	v := m.metadata_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadataID returns the old "metadata_id" field's value of the JourneyVersion entity.
// If the JourneyVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyVersionMutation) OldMetadataID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadataID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadataID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadataID: %w", err)
	}
	return oldValue.MetadataID, nil
}

// AddMetadataID adds i to the "metadata_id" field.
func (m *JourneyVersionMutation) AddMetadataID(i int) {
	if m.addmetadata_id != nil {
		*m.addmetadata_id += i
	} else {
		m.addmetadata_id = &i
	}
}

// AddedMetadataID returns the value that was added to the "metadata_id" field in this mutation.
func (m *JourneyVersionMutation) AddedMetadataID() (r int, exists bool) {
	v := m.addmetadata_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (m *JourneyVersionMutation) ClearMetadataID() {
	m.metadata_id = nil
	m.addmetadata_id = nil
	m.clearedFields[journeyversion.FieldMetadataID] = struct{}{}
}

// MetadataIDCleared returns if the "metadata_id" field was cleared in this mutation.
func (m *JourneyVersionMutation) MetadataIDCleared() bool {
	_, ok := m.clearedFields[journeyversion.FieldMetadataID]
	return ok
}

// ResetMetadataID resets all changes to the "metadata_id" field.
func (m *JourneyVersionMutation) ResetMetadataID() {
	m.metadata_id = nil
	m.addmetadata_id = nil
	delete(m.clearedFields, journeyversion.FieldMetadataID)
}

// SetCreatedAt sets the "created_at" field.
func (m *JourneyVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JourneyVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JourneyVersion entity.
// If the JourneyVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JourneyVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *JourneyVersionMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[journeyversion.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *JourneyVersionMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *JourneyVersionMutation) PatientIDs() (ids []string) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *JourneyVersionMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// Where appends a list predicates to the JourneyVersionMutation builder.
func (m *JourneyVersionMutation) Where(ps ...predicate.JourneyVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JourneyVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JourneyVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JourneyVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JourneyVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JourneyVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JourneyVersion).
func (m *JourneyVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JourneyVersionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.patient != nil {
		fields = append(fields, journeyversion.FieldPatientID)
	}
	if m.version != nil {
		fields = append(fields, journeyversion.FieldVersion)
	}
	if m.data != nil {
		fields = append(fields, journeyversion.FieldData)
	}
	if m.metadata_id != nil {
		fields = append(fields, journeyversion.FieldMetadataID)
	}
	if m.created_at != nil {
		fields = append(fields, journeyversion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JourneyVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case journeyversion.FieldPatientID:
		return m.PatientID()
	case journeyversion.FieldVersion:
		return m.Version()
	case journeyversion.FieldData:
		return m.Data()
	case journeyversion.FieldMetadataID:
		return m.MetadataID()
	case journeyversion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JourneyVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case journeyversion.FieldPatientID:
		return m.OldPatientID(ctx)
	case journeyversion.FieldVersion:
		return m.OldVersion(ctx)
	case journeyversion.FieldData:
		return m.OldData(ctx)
	case journeyversion.FieldMetadataID:
		return m.OldMetadataID(ctx)
	case journeyversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JourneyVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JourneyVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case journeyversion.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case journeyversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case journeyversion.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case journeyversion.FieldMetadataID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadataID(v)
		return nil
	case journeyversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JourneyVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JourneyVersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, journeyversion.FieldVersion)
	}
	if m.addmetadata_id != nil {
		fields = append(fields, journeyversion.FieldMetadataID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JourneyVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case journeyversion.FieldVersion:
		return m.AddedVersion()
	case journeyversion.FieldMetadataID:
		return m.AddedMetadataID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JourneyVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case journeyversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case journeyversion.FieldMetadataID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMetadataID(v)
		return nil
	}
	return fmt.Errorf("unknown JourneyVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JourneyVersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(journeyversion.FieldMetadataID) {
		fields = append(fields, journeyversion.FieldMetadataID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JourneyVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JourneyVersionMutation) ClearField(name string) error {
	switch name {
	case journeyversion.FieldMetadataID:
		m.ClearMetadataID()
		return nil
	}
	return fmt.Errorf("unknown JourneyVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JourneyVersionMutation) ResetField(name string) error {
	switch name {
	case journeyversion.FieldPatientID:
		m.ResetPatientID()
		return nil
	case journeyversion.FieldVersion:
		m.ResetVersion()
		return nil
	case journeyversion.FieldData:
		m.ResetData()
		return nil
	case journeyversion.FieldMetadataID:
		m.ResetMetadataID()
		return nil
	case journeyversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown JourneyVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JourneyVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.patient != nil {
		edges = append(edges, journeyversion.EdgePatient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JourneyVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case journeyversion.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JourneyVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JourneyVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JourneyVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpatient {
		edges = append(edges, journeyversion.EdgePatient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JourneyVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case journeyversion.EdgePatient:
		return m.clearedpatient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JourneyVersionMutation) ClearEdge(name string) error {
	switch name {
	case journeyversion.EdgePatient:
		m.ClearPatient()
		return nil
	}
	return fmt.Errorf("unknown JourneyVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JourneyVersionMutation) ResetEdge(name string) error {
	switch name {
	case journeyversion.EdgePatient:
		m.ResetPatient()
		return nil
	}
	return fmt.Errorf("unknown JourneyVersion edge %s", name)
}

// PatientMutation represents an operation that mutates the Patient nodes in the graph.
type PatientMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	display_name            *string
	created_at              *time.Time
	clearedFields           map[string]struct{}
	sessions                map[string]struct{}
	removedsessions         map[string]struct{}
	clearedsessions         bool
	journey_versions        map[int]struct{}
	removedjourney_versions map[int]struct{}
	clearedjourney_versions bool
	bridge_versions         map[int]struct{}
	removedbridge_versions  map[int]struct{}
	clearedbridge_versions  bool
	pipeline_events         map[int]struct{}
	removedpipeline_events  map[int]struct{}
	clearedpipeline_events  bool
	done                    bool
	oldValue                func(context.Context) (*Patient, error)
	predicates              []predicate.Patient
}

var _ ent.Mutation = (*PatientMutation)(nil)

// patientOption allows management of the mutation configuration using functional options.
type patientOption func(*PatientMutation)

// newPatientMutation creates new mutation for the Patient entity.
func newPatientMutation(c config, op Op, opts ...patientOption) *PatientMutation {
	m := &PatientMutation{
		config:        c,
		op:            op,
		typ:           TypePatient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientID sets the ID field of the mutation.
func withPatientID(id string) patientOption {
	return func(m *PatientMutation) {
		var (
			err   error
			once  sync.Once
			value *Patient
		)
		m.oldValue = func(ctx context.Context) (*Patient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Patient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatient sets the old Patient of the mutation.
func withPatient(node *Patient) patientOption {
	return func(m *PatientMutation) {
		m.oldValue = func(context.Context) (*Patient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Patient entities.
func (m *PatientMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Patient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDisplayName sets the "display_name" field.
func (m *PatientMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *PatientMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldDisplayName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *PatientMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[patient.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *PatientMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[patient.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *PatientMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, patient.FieldDisplayName)
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddSessionIDs adds the "sessions" edge to the TherapySession entity by ids.
func (m *PatientMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the TherapySession entity.
func (m *PatientMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the TherapySession entity was cleared.
func (m *PatientMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the TherapySession entity by IDs.
func (m *PatientMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the TherapySession entity.
func (m *PatientMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *PatientMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *PatientMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddJourneyVersionIDs adds the "journey_versions" edge to the JourneyVersion entity by ids.
func (m *PatientMutation) AddJourneyVersionIDs(ids ...int) {
	if m.journey_versions == nil {
		m.journey_versions = make(map[int]struct{})
	}
	for i := range ids {
		m.journey_versions[ids[i]] = struct{}{}
	}
}

// ClearJourneyVersions clears the "journey_versions" edge to the JourneyVersion entity.
func (m *PatientMutation) ClearJourneyVersions() {
	m.clearedjourney_versions = true
}

// JourneyVersionsCleared reports if the "journey_versions" edge to the JourneyVersion entity was cleared.
func (m *PatientMutation) JourneyVersionsCleared() bool {
	return m.clearedjourney_versions
}

// RemoveJourneyVersionIDs removes the "journey_versions" edge to the JourneyVersion entity by IDs.
func (m *PatientMutation) RemoveJourneyVersionIDs(ids ...int) {
	if m.removedjourney_versions == nil {
		m.removedjourney_versions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.journey_versions, ids[i])
		m.removedjourney_versions[ids[i]] = struct{}{}
	}
}

// RemovedJourneyVersions returns the removed IDs of the "journey_versions" edge to the JourneyVersion entity.
func (m *PatientMutation) RemovedJourneyVersionsIDs() (ids []int) {
	for id := range m.removedjourney_versions {
		ids = append(ids, id)
	}
	return
}

// JourneyVersionsIDs returns the "journey_versions" edge IDs in the mutation.
func (m *PatientMutation) JourneyVersionsIDs() (ids []int) {
	for id := range m.journey_versions {
		ids = append(ids, id)
	}
	return
}

// ResetJourneyVersions resets all changes to the "journey_versions" edge.
func (m *PatientMutation) ResetJourneyVersions() {
	m.journey_versions = nil
	m.clearedjourney_versions = false
	m.removedjourney_versions = nil
}

// AddBridgeVersionIDs adds the "bridge_versions" edge to the BridgeVersion entity by ids.
func (m *PatientMutation) AddBridgeVersionIDs(ids ...int) {
	if m.bridge_versions == nil {
		m.bridge_versions = make(map[int]struct{})
	}
	for i := range ids {
		m.bridge_versions[ids[i]] = struct{}{}
	}
}

// ClearBridgeVersions clears the "bridge_versions" edge to the BridgeVersion entity.
func (m *PatientMutation) ClearBridgeVersions() {
	m.clearedbridge_versions = true
}

// BridgeVersionsCleared reports if the "bridge_versions" edge to the BridgeVersion entity was cleared.
func (m *PatientMutation) BridgeVersionsCleared() bool {
	return m.clearedbridge_versions
}

// RemoveBridgeVersionIDs removes the "bridge_versions" edge to the BridgeVersion entity by IDs.
func (m *PatientMutation) RemoveBridgeVersionIDs(ids ...int) {
	if m.removedbridge_versions == nil {
		m.removedbridge_versions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.bridge_versions, ids[i])
		m.removedbridge_versions[ids[i]] = struct{}{}
	}
}

// RemovedBridgeVersions returns the removed IDs of the "bridge_versions" edge to the BridgeVersion entity.
func (m *PatientMutation) RemovedBridgeVersionsIDs() (ids []int) {
	for id := range m.removedbridge_versions {
		ids = append(ids, id)
	}
	return
}

// BridgeVersionsIDs returns the "bridge_versions" edge IDs in the mutation.
func (m *PatientMutation) BridgeVersionsIDs() (ids []int) {
	for id := range m.bridge_versions {
		ids = append(ids, id)
	}
	return
}

// ResetBridgeVersions resets all changes to the "bridge_versions" edge.
func (m *PatientMutation) ResetBridgeVersions() {
	m.bridge_versions = nil
	m.clearedbridge_versions = false
	m.removedbridge_versions = nil
}

// AddPipelineEventIDs adds the "pipeline_events" edge to the PipelineEvent entity by ids.
func (m *PatientMutation) AddPipelineEventIDs(ids ...int) {
	if m.pipeline_events == nil {
		m.pipeline_events = make(map[int]struct{})
	}
	for i := range ids {
		m.pipeline_events[ids[i]] = struct{}{}
	}
}

// ClearPipelineEvents clears the "pipeline_events" edge to the PipelineEvent entity.
func (m *PatientMutation) ClearPipelineEvents() {
	m.clearedpipeline_events = true
}

// PipelineEventsCleared reports if the "pipeline_events" edge to the PipelineEvent entity was cleared.
func (m *PatientMutation) PipelineEventsCleared() bool {
	return m.clearedpipeline_events
}

// RemovePipelineEventIDs removes the "pipeline_events" edge to the PipelineEvent entity by IDs.
func (m *PatientMutation) RemovePipelineEventIDs(ids ...int) {
	if m.removedpipeline_events == nil {
		m.removedpipeline_events = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.pipeline_events, ids[i])
		m.removedpipeline_events[ids[i]] = struct{}{}
	}
}

// RemovedPipelineEvents returns the removed IDs of the "pipeline_events" edge to the PipelineEvent entity.
func (m *PatientMutation) RemovedPipelineEventsIDs() (ids []int) {
	for id := range m.removedpipeline_events {
		ids = append(ids, id)
	}
	return
}

// PipelineEventsIDs returns the "pipeline_events" edge IDs in the mutation.
func (m *PatientMutation) PipelineEventsIDs() (ids []int) {
	for id := range m.pipeline_events {
		ids = append(ids, id)
	}
	return
}

// ResetPipelineEvents resets all changes to the "pipeline_events" edge.
func (m *PatientMutation) ResetPipelineEvents() {
	m.pipeline_events = nil
	m.clearedpipeline_events = false
	m.removedpipeline_events = nil
}

// Where appends a list predicates to the PatientMutation builder.
func (m *PatientMutation) Where(ps ...predicate.Patient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Patient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Patient).
func (m *PatientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.display_name != nil {
		fields = append(fields, patient.FieldDisplayName)
	}
	if m.created_at != nil {
		fields = append(fields, patient.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldDisplayName:
		return m.DisplayName()
	case patient.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patient.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case patient.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Patient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patient.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case patient.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Patient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patient.FieldDisplayName) {
		fields = append(fields, patient.FieldDisplayName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientMutation) ClearField(name string) error {
	switch name {
	case patient.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	}
	return fmt.Errorf("unknown Patient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientMutation) ResetField(name string) error {
	switch name {
	case patient.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case patient.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.sessions != nil {
		edges = append(edges, patient.EdgeSessions)
	}
	if m.journey_versions != nil {
		edges = append(edges, patient.EdgeJourneyVersions)
	}
	if m.bridge_versions != nil {
		edges = append(edges, patient.EdgeBridgeVersions)
	}
	if m.pipeline_events != nil {
		edges = append(edges, patient.EdgePipelineEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeJourneyVersions:
		ids := make([]ent.Value, 0, len(m.journey_versions))
		for id := range m.journey_versions {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeBridgeVersions:
		ids := make([]ent.Value, 0, len(m.bridge_versions))
		for id := range m.bridge_versions {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgePipelineEvents:
		ids := make([]ent.Value, 0, len(m.pipeline_events))
		for id := range m.pipeline_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedsessions != nil {
		edges = append(edges, patient.EdgeSessions)
	}
	if m.removedjourney_versions != nil {
		edges = append(edges, patient.EdgeJourneyVersions)
	}
	if m.removedbridge_versions != nil {
		edges = append(edges, patient.EdgeBridgeVersions)
	}
	if m.removedpipeline_events != nil {
		edges = append(edges, patient.EdgePipelineEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeJourneyVersions:
		ids := make([]ent.Value, 0, len(m.removedjourney_versions))
		for id := range m.removedjourney_versions {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeBridgeVersions:
		ids := make([]ent.Value, 0, len(m.removedbridge_versions))
		for id := range m.removedbridge_versions {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgePipelineEvents:
		ids := make([]ent.Value, 0, len(m.removedpipeline_events))
		for id := range m.removedpipeline_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedsessions {
		edges = append(edges, patient.EdgeSessions)
	}
	if m.clearedjourney_versions {
		edges = append(edges, patient.EdgeJourneyVersions)
	}
	if m.clearedbridge_versions {
		edges = append(edges, patient.EdgeBridgeVersions)
	}
	if m.clearedpipeline_events {
		edges = append(edges, patient.EdgePipelineEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientMutation) EdgeCleared(name string) bool {
	switch name {
	case patient.EdgeSessions:
		return m.clearedsessions
	case patient.EdgeJourneyVersions:
		return m.clearedjourney_versions
	case patient.EdgeBridgeVersions:
		return m.clearedbridge_versions
	case patient.EdgePipelineEvents:
		return m.clearedpipeline_events
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Patient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientMutation) ResetEdge(name string) error {
	switch name {
	case patient.EdgeSessions:
		m.ResetSessions()
		return nil
	case patient.EdgeJourneyVersions:
		m.ResetJourneyVersions()
		return nil
	case patient.EdgeBridgeVersions:
		m.ResetBridgeVersions()
		return nil
	case patient.EdgePipelineEvents:
		m.ResetPipelineEvents()
		return nil
	}
	return fmt.Errorf("unknown Patient edge %s", name)
}

// PatientBridgeMutation represents an operation that mutates the PatientBridge nodes in the graph.
type PatientBridgeMutation struct {
	config
	op             Op
	typ            string
	id             *string
	data           *map[string]interface{}
	version        *int
	addversion     *int
	metadata_id    *int
	addmetadata_id *int
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*PatientBridge, error)
	predicates     []predicate.PatientBridge
}

var _ ent.Mutation = (*PatientBridgeMutation)(nil)

// patientbridgeOption allows management of the mutation configuration using functional options.
type patientbridgeOption func(*PatientBridgeMutation)

// newPatientBridgeMutation creates new mutation for the PatientBridge entity.
func newPatientBridgeMutation(c config, op Op, opts ...patientbridgeOption) *PatientBridgeMutation {
	m := &PatientBridgeMutation{
		config:        c,
		op:            op,
		typ:           TypePatientBridge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientBridgeID sets the ID field of the mutation.
func withPatientBridgeID(id string) patientbridgeOption {
	return func(m *PatientBridgeMutation) {
		var (
			err   error
			once  sync.Once
			value *PatientBridge
		)
		m.oldValue = func(ctx context.Context) (*PatientBridge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PatientBridge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatientBridge sets the old PatientBridge of the mutation.
func withPatientBridge(node *PatientBridge) patientbridgeOption {
	return func(m *PatientBridgeMutation) {
		m.oldValue = func(context.Context) (*PatientBridge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientBridgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientBridgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PatientBridge entities.
func (m *PatientBridgeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientBridgeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientBridgeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PatientBridge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetData sets the "data" field.
func (m *PatientBridgeMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *PatientBridgeMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the PatientBridge entity.
// If the PatientBridge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientBridgeMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *PatientBridgeMutation) ResetData() {
	m.data = nil
}

// SetVersion sets the "version" field.
func (m *PatientBridgeMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *PatientBridgeMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the PatientBridge entity.
// If the PatientBridge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientBridgeMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *PatientBridgeMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *PatientBridgeMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *PatientBridgeMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetMetadataID sets the "metadata_id" field.
func (m *PatientBridgeMutation) SetMetadataID(i int) {
	m.metadata_id = &i
	m.addmetadata_id = nil
}

// MetadataID returns the value of the "metadata_id" field in the mutation.
func (m *PatientBridgeMutation) MetadataID() (r int, exists bool) {
	v := m.metadata_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadataID returns the old "metadata_id" field's value of the PatientBridge entity.
// If the PatientBridge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientBridgeMutation) OldMetadataID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadataID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadataID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadataID: %w", err)
	}
	return oldValue.MetadataID, nil
}

// AddMetadataID adds i to the "metadata_id" field.
func (m *PatientBridgeMutation) AddMetadataID(i int) {
	if m.addmetadata_id != nil {
		*m.addmetadata_id += i
	} else {
		m.addmetadata_id = &i
	}
}

// AddedMetadataID returns the value that was added to the "metadata_id" field in this mutation.
func (m *PatientBridgeMutation) AddedMetadataID() (r int, exists bool) {
	v := m.addmetadata_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (m *PatientBridgeMutation) ClearMetadataID() {
	m.metadata_id = nil
	m.addmetadata_id = nil
	m.clearedFields[patientbridge.FieldMetadataID] = struct{}{}
}

// MetadataIDCleared returns if the "metadata_id" field was cleared in this mutation.
func (m *PatientBridgeMutation) MetadataIDCleared() bool {
	_, ok := m.clearedFields[patientbridge.FieldMetadataID]
	return ok
}

// ResetMetadataID resets all changes to the "metadata_id" field.
func (m *PatientBridgeMutation) ResetMetadataID() {
	m.metadata_id = nil
	m.addmetadata_id = nil
	delete(m.clearedFields, patientbridge.FieldMetadataID)
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientBridgeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientBridgeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PatientBridge entity.
// If the PatientBridge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientBridgeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientBridgeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientBridgeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientBridgeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PatientBridge entity.
// If the PatientBridge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientBridgeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PatientBridgeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PatientBridgeMutation builder.
func (m *PatientBridgeMutation) Where(ps ...predicate.PatientBridge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientBridgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientBridgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PatientBridge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientBridgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientBridgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PatientBridge).
func (m *PatientBridgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientBridgeMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.data != nil {
		fields = append(fields, patientbridge.FieldData)
	}
	if m.version != nil {
		fields = append(fields, patientbridge.FieldVersion)
	}
	if m.metadata_id != nil {
		fields = append(fields, patientbridge.FieldMetadataID)
	}
	if m.created_at != nil {
		fields = append(fields, patientbridge.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patientbridge.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientBridgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patientbridge.FieldData:
		return m.Data()
	case patientbridge.FieldVersion:
		return m.Version()
	case patientbridge.FieldMetadataID:
		return m.MetadataID()
	case patientbridge.FieldCreatedAt:
		return m.CreatedAt()
	case patientbridge.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientBridgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patientbridge.FieldData:
		return m.OldData(ctx)
	case patientbridge.FieldVersion:
		return m.OldVersion(ctx)
	case patientbridge.FieldMetadataID:
		return m.OldMetadataID(ctx)
	case patientbridge.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patientbridge.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PatientBridge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientBridgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patientbridge.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case patientbridge.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case patientbridge.FieldMetadataID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadataID(v)
		return nil
	case patientbridge.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patientbridge.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PatientBridge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientBridgeMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, patientbridge.FieldVersion)
	}
	if m.addmetadata_id != nil {
		fields = append(fields, patientbridge.FieldMetadataID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientBridgeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case patientbridge.FieldVersion:
		return m.AddedVersion()
	case patientbridge.FieldMetadataID:
		return m.AddedMetadataID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientBridgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case patientbridge.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case patientbridge.FieldMetadataID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMetadataID(v)
		return nil
	}
	return fmt.Errorf("unknown PatientBridge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientBridgeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patientbridge.FieldMetadataID) {
		fields = append(fields, patientbridge.FieldMetadataID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientBridgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientBridgeMutation) ClearField(name string) error {
	switch name {
	case patientbridge.FieldMetadataID:
		m.ClearMetadataID()
		return nil
	}
	return fmt.Errorf("unknown PatientBridge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientBridgeMutation) ResetField(name string) error {
	switch name {
	case patientbridge.FieldData:
		m.ResetData()
		return nil
	case patientbridge.FieldVersion:
		m.ResetVersion()
		return nil
	case patientbridge.FieldMetadataID:
		m.ResetMetadataID()
		return nil
	case patientbridge.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patientbridge.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PatientBridge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientBridgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientBridgeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientBridgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientBridgeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientBridgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientBridgeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientBridgeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PatientBridge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientBridgeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PatientBridge edge %s", name)
}

// PatientJourneyMutation represents an operation that mutates the PatientJourney nodes in the graph.
type PatientJourneyMutation struct {
	config
	op             Op
	typ            string
	id             *string
	data           *map[string]interface{}
	version        *int
	addversion     *int
	metadata_id    *int
	addmetadata_id *int
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*PatientJourney, error)
	predicates     []predicate.PatientJourney
}

var _ ent.Mutation = (*PatientJourneyMutation)(nil)

// patientjourneyOption allows management of the mutation configuration using functional options.
type patientjourneyOption func(*PatientJourneyMutation)

// newPatientJourneyMutation creates new mutation for the PatientJourney entity.
func newPatientJourneyMutation(c config, op Op, opts ...patientjourneyOption) *PatientJourneyMutation {
	m := &PatientJourneyMutation{
		config:        c,
		op:            op,
		typ:           TypePatientJourney,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientJourneyID sets the ID field of the mutation.
func withPatientJourneyID(id string) patientjourneyOption {
	return func(m *PatientJourneyMutation) {
		var (
			err   error
			once  sync.Once
			value *PatientJourney
		)
		m.oldValue = func(ctx context.Context) (*PatientJourney, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PatientJourney.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatientJourney sets the old PatientJourney of the mutation.
func withPatientJourney(node *PatientJourney) patientjourneyOption {
	return func(m *PatientJourneyMutation) {
		m.oldValue = func(context.Context) (*PatientJourney, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientJourneyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientJourneyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PatientJourney entities.
func (m *PatientJourneyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientJourneyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientJourneyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PatientJourney.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetData sets the "data" field.
func (m *PatientJourneyMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *PatientJourneyMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the PatientJourney entity.
// If the PatientJourney object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientJourneyMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *PatientJourneyMutation) ResetData() {
	m.data = nil
}

// SetVersion sets the "version" field.
func (m *PatientJourneyMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *PatientJourneyMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the PatientJourney entity.
// If the PatientJourney object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientJourneyMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *PatientJourneyMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *PatientJourneyMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *PatientJourneyMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetMetadataID sets the "metadata_id" field.
func (m *PatientJourneyMutation) SetMetadataID(i int) {
	m.metadata_id = &i
	m.addmetadata_id = nil
}

// MetadataID returns the value of the "metadata_id" field in the mutation.
func (m *PatientJourneyMutation) MetadataID() (r int, exists bool) {
	v := m.metadata_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadataID returns the old "metadata_id" field's value of the PatientJourney entity.
// If the PatientJourney object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientJourneyMutation) OldMetadataID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadataID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadataID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadataID: %w", err)
	}
	return oldValue.MetadataID, nil
}

// AddMetadataID adds i to the "metadata_id" field.
func (m *PatientJourneyMutation) AddMetadataID(i int) {
	if m.addmetadata_id != nil {
		*m.addmetadata_id += i
	} else {
		m.addmetadata_id = &i
	}
}

// AddedMetadataID returns the value that was added to the "metadata_id" field in this mutation.
func (m *PatientJourneyMutation) AddedMetadataID() (r int, exists bool) {
	v := m.addmetadata_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearMetadataID clears the value of the "metadata_id" field.
func (m *PatientJourneyMutation) ClearMetadataID() {
	m.metadata_id = nil
	m.addmetadata_id = nil
	m.clearedFields[patientjourney.FieldMetadataID] = struct{}{}
}

// MetadataIDCleared returns if the "metadata_id" field was cleared in this mutation.
func (m *PatientJourneyMutation) MetadataIDCleared() bool {
	_, ok := m.clearedFields[patientjourney.FieldMetadataID]
	return ok
}

// ResetMetadataID resets all changes to the "metadata_id" field.
func (m *PatientJourneyMutation) ResetMetadataID() {
	m.metadata_id = nil
	m.addmetadata_id = nil
	delete(m.clearedFields, patientjourney.FieldMetadataID)
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientJourneyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientJourneyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PatientJourney entity.
// If the PatientJourney object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientJourneyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientJourneyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientJourneyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientJourneyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PatientJourney entity.
// If the PatientJourney object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientJourneyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PatientJourneyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PatientJourneyMutation builder.
func (m *PatientJourneyMutation) Where(ps ...predicate.PatientJourney) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientJourneyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientJourneyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PatientJourney, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientJourneyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientJourneyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PatientJourney).
func (m *PatientJourneyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientJourneyMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.data != nil {
		fields = append(fields, patientjourney.FieldData)
	}
	if m.version != nil {
		fields = append(fields, patientjourney.FieldVersion)
	}
	if m.metadata_id != nil {
		fields = append(fields, patientjourney.FieldMetadataID)
	}
	if m.created_at != nil {
		fields = append(fields, patientjourney.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patientjourney.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientJourneyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patientjourney.FieldData:
		return m.Data()
	case patientjourney.FieldVersion:
		return m.Version()
	case patientjourney.FieldMetadataID:
		return m.MetadataID()
	case patientjourney.FieldCreatedAt:
		return m.CreatedAt()
	case patientjourney.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientJourneyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patientjourney.FieldData:
		return m.OldData(ctx)
	case patientjourney.FieldVersion:
		return m.OldVersion(ctx)
	case patientjourney.FieldMetadataID:
		return m.OldMetadataID(ctx)
	case patientjourney.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patientjourney.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PatientJourney field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientJourneyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patientjourney.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case patientjourney.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case patientjourney.FieldMetadataID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadataID(v)
		return nil
	case patientjourney.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patientjourney.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PatientJourney field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientJourneyMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, patientjourney.FieldVersion)
	}
	if m.addmetadata_id != nil {
		fields = append(fields, patientjourney.FieldMetadataID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientJourneyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case patientjourney.FieldVersion:
		return m.AddedVersion()
	case patientjourney.FieldMetadataID:
		return m.AddedMetadataID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientJourneyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case patientjourney.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case patientjourney.FieldMetadataID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMetadataID(v)
		return nil
	}
	return fmt.Errorf("unknown PatientJourney numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientJourneyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patientjourney.FieldMetadataID) {
		fields = append(fields, patientjourney.FieldMetadataID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientJourneyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientJourneyMutation) ClearField(name string) error {
	switch name {
	case patientjourney.FieldMetadataID:
		m.ClearMetadataID()
		return nil
	}
	return fmt.Errorf("unknown PatientJourney nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientJourneyMutation) ResetField(name string) error {
	switch name {
	case patientjourney.FieldData:
		m.ResetData()
		return nil
	case patientjourney.FieldVersion:
		m.ResetVersion()
		return nil
	case patientjourney.FieldMetadataID:
		m.ResetMetadataID()
		return nil
	case patientjourney.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patientjourney.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PatientJourney field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientJourneyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientJourneyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientJourneyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientJourneyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientJourneyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientJourneyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientJourneyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PatientJourney unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientJourneyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PatientJourney edge %s", name)
}

// PipelineEventMutation represents an operation that mutates the PipelineEvent nodes in the graph.
type PipelineEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	phase          *pipelineevent.Phase
	event_type     *string
	session_id     *string
	status         *string
	details        *map[string]interface{}
	created_at     *time.Time
	consumed       *bool
	clearedFields  map[string]struct{}
	patient        *string
	clearedpatient bool
	done           bool
	oldValue       func(context.Context) (*PipelineEvent, error)
	predicates     []predicate.PipelineEvent
}

var _ ent.Mutation = (*PipelineEventMutation)(nil)

// pipelineeventOption allows management of the mutation configuration using functional options.
type pipelineeventOption func(*PipelineEventMutation)

// newPipelineEventMutation creates new mutation for the PipelineEvent entity.
func newPipelineEventMutation(c config, op Op, opts ...pipelineeventOption) *PipelineEventMutation {
	m := &PipelineEventMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineEventID sets the ID field of the mutation.
func withPipelineEventID(id int) pipelineeventOption {
	return func(m *PipelineEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineEvent
		)
		m.oldValue = func(ctx context.Context) (*PipelineEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineEvent sets the old PipelineEvent of the mutation.
func withPipelineEvent(node *PipelineEvent) pipelineeventOption {
	return func(m *PipelineEventMutation) {
		m.oldValue = func(context.Context) (*PipelineEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatientID sets the "patient_id" field.
func (m *PipelineEventMutation) SetPatientID(s string) {
	m.patient = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *PipelineEventMutation) PatientID() (r string, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the PipelineEvent entity.
// If the PipelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineEventMutation) OldPatientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *PipelineEventMutation) ResetPatientID() {
	m.patient = nil
}

// SetPhase sets the "phase" field.
func (m *PipelineEventMutation) SetPhase(pi pipelineevent.Phase) {
	m.phase = &pi
}

// Phase returns the value of the "phase" field in the mutation.
func (m *PipelineEventMutation) Phase() (r pipelineevent.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the PipelineEvent entity.
// If the PipelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineEventMutation) OldPhase(ctx context.Context) (v pipelineevent.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *PipelineEventMutation) ResetPhase() {
	m.phase = nil
}

// SetEventType sets the "event_type" field.
func (m *PipelineEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *PipelineEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the PipelineEvent entity.
// If the PipelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *PipelineEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetSessionID sets the "session_id" field.
func (m *PipelineEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PipelineEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PipelineEvent entity.
// If the PipelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineEventMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *PipelineEventMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[pipelineevent.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *PipelineEventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[pipelineevent.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PipelineEventMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, pipelineevent.FieldSessionID)
}

// SetStatus sets the "status" field.
func (m *PipelineEventMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineEventMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineEvent entity.
// If the PipelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineEventMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineEventMutation) ResetStatus() {
	m.status = nil
}

// SetDetails sets the "details" field.
func (m *PipelineEventMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *PipelineEventMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the PipelineEvent entity.
// If the PipelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineEventMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *PipelineEventMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[pipelineevent.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *PipelineEventMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[pipelineevent.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *PipelineEventMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, pipelineevent.FieldDetails)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineEvent entity.
// If the PipelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetConsumed sets the "consumed" field.
func (m *PipelineEventMutation) SetConsumed(b bool) {
	m.consumed = &b
}

// Consumed returns the value of the "consumed" field in the mutation.
func (m *PipelineEventMutation) Consumed() (r bool, exists bool) {
	v := m.consumed
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumed returns the old "consumed" field's value of the PipelineEvent entity.
// If the PipelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineEventMutation) OldConsumed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumed: %w", err)
	}
	return oldValue.Consumed, nil
}

// ResetConsumed resets all changes to the "consumed" field.
func (m *PipelineEventMutation) ResetConsumed() {
	m.consumed = nil
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *PipelineEventMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[pipelineevent.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *PipelineEventMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *PipelineEventMutation) PatientIDs() (ids []string) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *PipelineEventMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// Where appends a list predicates to the PipelineEventMutation builder.
func (m *PipelineEventMutation) Where(ps ...predicate.PipelineEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineEvent).
func (m *PipelineEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.patient != nil {
		fields = append(fields, pipelineevent.FieldPatientID)
	}
	if m.phase != nil {
		fields = append(fields, pipelineevent.FieldPhase)
	}
	if m.event_type != nil {
		fields = append(fields, pipelineevent.FieldEventType)
	}
	if m.session_id != nil {
		fields = append(fields, pipelineevent.FieldSessionID)
	}
	if m.status != nil {
		fields = append(fields, pipelineevent.FieldStatus)
	}
	if m.details != nil {
		fields = append(fields, pipelineevent.FieldDetails)
	}
	if m.created_at != nil {
		fields = append(fields, pipelineevent.FieldCreatedAt)
	}
	if m.consumed != nil {
		fields = append(fields, pipelineevent.FieldConsumed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelineevent.FieldPatientID:
		return m.PatientID()
	case pipelineevent.FieldPhase:
		return m.Phase()
	case pipelineevent.FieldEventType:
		return m.EventType()
	case pipelineevent.FieldSessionID:
		return m.SessionID()
	case pipelineevent.FieldStatus:
		return m.Status()
	case pipelineevent.FieldDetails:
		return m.Details()
	case pipelineevent.FieldCreatedAt:
		return m.CreatedAt()
	case pipelineevent.FieldConsumed:
		return m.Consumed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelineevent.FieldPatientID:
		return m.OldPatientID(ctx)
	case pipelineevent.FieldPhase:
		return m.OldPhase(ctx)
	case pipelineevent.FieldEventType:
		return m.OldEventType(ctx)
	case pipelineevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case pipelineevent.FieldStatus:
		return m.OldStatus(ctx)
	case pipelineevent.FieldDetails:
		return m.OldDetails(ctx)
	case pipelineevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelineevent.FieldConsumed:
		return m.OldConsumed(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelineevent.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case pipelineevent.FieldPhase:
		v, ok := value.(pipelineevent.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case pipelineevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case pipelineevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case pipelineevent.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelineevent.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case pipelineevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelineevent.FieldConsumed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumed(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PipelineEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelineevent.FieldSessionID) {
		fields = append(fields, pipelineevent.FieldSessionID)
	}
	if m.FieldCleared(pipelineevent.FieldDetails) {
		fields = append(fields, pipelineevent.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineEventMutation) ClearField(name string) error {
	switch name {
	case pipelineevent.FieldSessionID:
		m.ClearSessionID()
		return nil
	case pipelineevent.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown PipelineEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineEventMutation) ResetField(name string) error {
	switch name {
	case pipelineevent.FieldPatientID:
		m.ResetPatientID()
		return nil
	case pipelineevent.FieldPhase:
		m.ResetPhase()
		return nil
	case pipelineevent.FieldEventType:
		m.ResetEventType()
		return nil
	case pipelineevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case pipelineevent.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelineevent.FieldDetails:
		m.ResetDetails()
		return nil
	case pipelineevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelineevent.FieldConsumed:
		m.ResetConsumed()
		return nil
	}
	return fmt.Errorf("unknown PipelineEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.patient != nil {
		edges = append(edges, pipelineevent.EdgePatient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelineevent.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpatient {
		edges = append(edges, pipelineevent.EdgePatient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineEventMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelineevent.EdgePatient:
		return m.clearedpatient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineEventMutation) ClearEdge(name string) error {
	switch name {
	case pipelineevent.EdgePatient:
		m.ClearPatient()
		return nil
	}
	return fmt.Errorf("unknown PipelineEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineEventMutation) ResetEdge(name string) error {
	switch name {
	case pipelineevent.EdgePatient:
		m.ResetPatient()
		return nil
	}
	return fmt.Errorf("unknown PipelineEvent edge %s", name)
}

// ProcessingLogMutation represents an operation that mutates the ProcessingLog nodes in the graph.
type ProcessingLogMutation struct {
	config
	op             Op
	typ            string
	id             *int
	wave           *string
	status         *processinglog.Status
	retry_count    *int
	addretry_count *int
	started_at     *time.Time
	completed_at   *time.Time
	duration_ms    *int
	addduration_ms *int
	error_message  *string
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*ProcessingLog, error)
	predicates     []predicate.ProcessingLog
}

var _ ent.Mutation = (*ProcessingLogMutation)(nil)

// processinglogOption allows management of the mutation configuration using functional options.
type processinglogOption func(*ProcessingLogMutation)

// newProcessingLogMutation creates new mutation for the ProcessingLog entity.
func newProcessingLogMutation(c config, op Op, opts ...processinglogOption) *ProcessingLogMutation {
	m := &ProcessingLogMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingLogID sets the ID field of the mutation.
func withProcessingLogID(id int) processinglogOption {
	return func(m *ProcessingLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingLog
		)
		m.oldValue = func(ctx context.Context) (*ProcessingLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingLog sets the old ProcessingLog of the mutation.
func withProcessingLog(node *ProcessingLog) processinglogOption {
	return func(m *ProcessingLogMutation) {
		m.oldValue = func(context.Context) (*ProcessingLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ProcessingLogMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ProcessingLogMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ProcessingLogMutation) ResetSessionID() {
	m.session = nil
}

// SetWave sets the "wave" field.
func (m *ProcessingLogMutation) SetWave(s string) {
	m.wave = &s
}

// Wave returns the value of the "wave" field in the mutation.
func (m *ProcessingLogMutation) Wave() (r string, exists bool) {
	v := m.wave
	if v == nil {
		return
	}
	return *v, true
}

// OldWave returns the old "wave" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldWave(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWave is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWave requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWave: %w", err)
	}
	return oldValue.Wave, nil
}

// ResetWave resets all changes to the "wave" field.
func (m *ProcessingLogMutation) ResetWave() {
	m.wave = nil
}

// SetStatus sets the "status" field.
func (m *ProcessingLogMutation) SetStatus(pr processinglog.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessingLogMutation) Status() (r processinglog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldStatus(ctx context.Context) (v processinglog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessingLogMutation) ResetStatus() {
	m.status = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *ProcessingLogMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *ProcessingLogMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *ProcessingLogMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *ProcessingLogMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *ProcessingLogMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ProcessingLogMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ProcessingLogMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ProcessingLogMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ProcessingLogMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ProcessingLogMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ProcessingLogMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[processinglog.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ProcessingLogMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[processinglog.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ProcessingLogMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, processinglog.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ProcessingLogMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ProcessingLogMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ProcessingLogMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ProcessingLogMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *ProcessingLogMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[processinglog.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *ProcessingLogMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[processinglog.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ProcessingLogMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, processinglog.FieldDurationMs)
}

// SetErrorMessage sets the "error_message" field.
func (m *ProcessingLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ProcessingLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ProcessingLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[processinglog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ProcessingLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[processinglog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ProcessingLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, processinglog.FieldErrorMessage)
}

// ClearSession clears the "session" edge to the TherapySession entity.
func (m *ProcessingLogMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[processinglog.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the TherapySession entity was cleared.
func (m *ProcessingLogMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ProcessingLogMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ProcessingLogMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ProcessingLogMutation builder.
func (m *ProcessingLogMutation) Where(ps ...predicate.ProcessingLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingLog).
func (m *ProcessingLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingLogMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session != nil {
		fields = append(fields, processinglog.FieldSessionID)
	}
	if m.wave != nil {
		fields = append(fields, processinglog.FieldWave)
	}
	if m.status != nil {
		fields = append(fields, processinglog.FieldStatus)
	}
	if m.retry_count != nil {
		fields = append(fields, processinglog.FieldRetryCount)
	}
	if m.started_at != nil {
		fields = append(fields, processinglog.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, processinglog.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, processinglog.FieldDurationMs)
	}
	if m.error_message != nil {
		fields = append(fields, processinglog.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processinglog.FieldSessionID:
		return m.SessionID()
	case processinglog.FieldWave:
		return m.Wave()
	case processinglog.FieldStatus:
		return m.Status()
	case processinglog.FieldRetryCount:
		return m.RetryCount()
	case processinglog.FieldStartedAt:
		return m.StartedAt()
	case processinglog.FieldCompletedAt:
		return m.CompletedAt()
	case processinglog.FieldDurationMs:
		return m.DurationMs()
	case processinglog.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processinglog.FieldSessionID:
		return m.OldSessionID(ctx)
	case processinglog.FieldWave:
		return m.OldWave(ctx)
	case processinglog.FieldStatus:
		return m.OldStatus(ctx)
	case processinglog.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case processinglog.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case processinglog.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case processinglog.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case processinglog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processinglog.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case processinglog.FieldWave:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWave(v)
		return nil
	case processinglog.FieldStatus:
		v, ok := value.(processinglog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processinglog.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case processinglog.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case processinglog.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case processinglog.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case processinglog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingLogMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, processinglog.FieldRetryCount)
	}
	if m.addduration_ms != nil {
		fields = append(fields, processinglog.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processinglog.FieldRetryCount:
		return m.AddedRetryCount()
	case processinglog.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processinglog.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case processinglog.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processinglog.FieldCompletedAt) {
		fields = append(fields, processinglog.FieldCompletedAt)
	}
	if m.FieldCleared(processinglog.FieldDurationMs) {
		fields = append(fields, processinglog.FieldDurationMs)
	}
	if m.FieldCleared(processinglog.FieldErrorMessage) {
		fields = append(fields, processinglog.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingLogMutation) ClearField(name string) error {
	switch name {
	case processinglog.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case processinglog.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case processinglog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingLogMutation) ResetField(name string) error {
	switch name {
	case processinglog.FieldSessionID:
		m.ResetSessionID()
		return nil
	case processinglog.FieldWave:
		m.ResetWave()
		return nil
	case processinglog.FieldStatus:
		m.ResetStatus()
		return nil
	case processinglog.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case processinglog.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case processinglog.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case processinglog.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case processinglog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, processinglog.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processinglog.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, processinglog.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingLogMutation) EdgeCleared(name string) bool {
	switch name {
	case processinglog.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingLogMutation) ClearEdge(name string) error {
	switch name {
	case processinglog.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingLogMutation) ResetEdge(name string) error {
	switch name {
	case processinglog.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog edge %s", name)
}

// TherapySessionMutation represents an operation that mutates the TherapySession nodes in the graph.
type TherapySessionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	session_date             *time.Time
	duration_minutes         *int
	addduration_minutes      *int
	transcript               *[]map[string]interface{}
	appendtranscript         []map[string]interface{}
	processing_status        *therapysession.ProcessingStatus
	analysis_status          *string
	pod_id                   *string
	last_heartbeat_at        *time.Time
	created_at               *time.Time
	started_at               *time.Time
	completed_at             *time.Time
	error_message            *string
	speaker_labels           *map[string]string
	labels_confidence        *float64
	addlabels_confidence     *float64
	mood_score               *float64
	addmood_score            *float64
	mood_confidence          *float64
	addmood_confidence       *float64
	mood_rationale           *string
	mood_indicators          *[]string
	appendmood_indicators    []string
	emotional_tone           *string
	topics                   *[]string
	appendtopics             []string
	action_items             *[]string
	appendaction_items       []string
	technique                *string
	summary                  *string
	action_items_summary     *string
	has_breakthrough         *bool
	breakthrough_label       *string
	breakthrough_data        *map[string]interface{}
	mood_analyzed_at         *time.Time
	topics_extracted_at      *time.Time
	breakthrough_detected_at *time.Time
	wave1_completed_at       *time.Time
	deep_analysis            *map[string]interface{}
	analysis_confidence      *float64
	addanalysis_confidence   *float64
	prose_analysis           *string
	deep_analyzed_at         *time.Time
	prose_generated_at       *time.Time
	clearedFields            map[string]struct{}
	patient                  *string
	clearedpatient           bool
	processing_logs          map[int]struct{}
	removedprocessing_logs   map[int]struct{}
	clearedprocessing_logs   bool
	done                     bool
	oldValue                 func(context.Context) (*TherapySession, error)
	predicates               []predicate.TherapySession
}

var _ ent.Mutation = (*TherapySessionMutation)(nil)

// therapysessionOption allows management of the mutation configuration using functional options.
type therapysessionOption func(*TherapySessionMutation)

// newTherapySessionMutation creates new mutation for the TherapySession entity.
func newTherapySessionMutation(c config, op Op, opts ...therapysessionOption) *TherapySessionMutation {
	m := &TherapySessionMutation{
		config:        c,
		op:            op,
		typ:           TypeTherapySession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTherapySessionID sets the ID field of the mutation.
func withTherapySessionID(id string) therapysessionOption {
	return func(m *TherapySessionMutation) {
		var (
			err   error
			once  sync.Once
			value *TherapySession
		)
		m.oldValue = func(ctx context.Context) (*TherapySession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TherapySession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTherapySession sets the old TherapySession of the mutation.
func withTherapySession(node *TherapySession) therapysessionOption {
	return func(m *TherapySessionMutation) {
		m.oldValue = func(context.Context) (*TherapySession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TherapySessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TherapySessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TherapySession entities.
func (m *TherapySessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TherapySessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TherapySessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TherapySession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatientID sets the "patient_id" field.
func (m *TherapySessionMutation) SetPatientID(s string) {
	m.patient = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *TherapySessionMutation) PatientID() (r string, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldPatientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *TherapySessionMutation) ResetPatientID() {
	m.patient = nil
}

// SetSessionDate sets the "session_date" field.
func (m *TherapySessionMutation) SetSessionDate(t time.Time) {
	m.session_date = &t
}

// SessionDate returns the value of the "session_date" field in the mutation.
func (m *TherapySessionMutation) SessionDate() (r time.Time, exists bool) {
	v := m.session_date
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionDate returns the old "session_date" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldSessionDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionDate: %w", err)
	}
	return oldValue.SessionDate, nil
}

// ResetSessionDate resets all changes to the "session_date" field.
func (m *TherapySessionMutation) ResetSessionDate() {
	m.session_date = nil
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *TherapySessionMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *TherapySessionMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *TherapySessionMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *TherapySessionMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *TherapySessionMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
}

// SetTranscript sets the "transcript" field.
func (m *TherapySessionMutation) SetTranscript(value []map[string]interface{}) {
	m.transcript = &value
	m.appendtranscript = nil
}

// Transcript returns the value of the "transcript" field in the mutation.
func (m *TherapySessionMutation) Transcript() (r []map[string]interface{}, exists bool) {
	v := m.transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscript returns the old "transcript" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldTranscript(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscript: %w", err)
	}
	return oldValue.Transcript, nil
}

// AppendTranscript adds value to the "transcript" field.
func (m *TherapySessionMutation) AppendTranscript(value []map[string]interface{}) {
	m.appendtranscript = append(m.appendtranscript, value...)
}

// AppendedTranscript returns the list of values that were appended to the "transcript" field in this mutation.
func (m *TherapySessionMutation) AppendedTranscript() ([]map[string]interface{}, bool) {
	if len(m.appendtranscript) == 0 {
		return nil, false
	}
	return m.appendtranscript, true
}

// ResetTranscript resets all changes to the "transcript" field.
func (m *TherapySessionMutation) ResetTranscript() {
	m.transcript = nil
	m.appendtranscript = nil
}

// SetProcessingStatus sets the "processing_status" field.
func (m *TherapySessionMutation) SetProcessingStatus(ts therapysession.ProcessingStatus) {
	m.processing_status = &ts
}

// ProcessingStatus returns the value of the "processing_status" field in the mutation.
func (m *TherapySessionMutation) ProcessingStatus() (r therapysession.ProcessingStatus, exists bool) {
	v := m.processing_status
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStatus returns the old "processing_status" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldProcessingStatus(ctx context.Context) (v therapysession.ProcessingStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStatus: %w", err)
	}
	return oldValue.ProcessingStatus, nil
}

// ResetProcessingStatus resets all changes to the "processing_status" field.
func (m *TherapySessionMutation) ResetProcessingStatus() {
	m.processing_status = nil
}

// SetAnalysisStatus sets the "analysis_status" field.
func (m *TherapySessionMutation) SetAnalysisStatus(s string) {
	m.analysis_status = &s
}

// AnalysisStatus returns the value of the "analysis_status" field in the mutation.
func (m *TherapySessionMutation) AnalysisStatus() (r string, exists bool) {
	v := m.analysis_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisStatus returns the old "analysis_status" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldAnalysisStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisStatus: %w", err)
	}
	return oldValue.AnalysisStatus, nil
}

// ClearAnalysisStatus clears the value of the "analysis_status" field.
func (m *TherapySessionMutation) ClearAnalysisStatus() {
	m.analysis_status = nil
	m.clearedFields[therapysession.FieldAnalysisStatus] = struct{}{}
}

// AnalysisStatusCleared returns if the "analysis_status" field was cleared in this mutation.
func (m *TherapySessionMutation) AnalysisStatusCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldAnalysisStatus]
	return ok
}

// ResetAnalysisStatus resets all changes to the "analysis_status" field.
func (m *TherapySessionMutation) ResetAnalysisStatus() {
	m.analysis_status = nil
	delete(m.clearedFields, therapysession.FieldAnalysisStatus)
}

// SetPodID sets the "pod_id" field.
func (m *TherapySessionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *TherapySessionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *TherapySessionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[therapysession.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *TherapySessionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *TherapySessionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, therapysession.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *TherapySessionMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *TherapySessionMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *TherapySessionMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[therapysession.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *TherapySessionMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *TherapySessionMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, therapysession.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TherapySessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TherapySessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TherapySessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TherapySessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TherapySessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TherapySessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[therapysession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TherapySessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TherapySessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, therapysession.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TherapySessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TherapySessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TherapySessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[therapysession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TherapySessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TherapySessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, therapysession.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *TherapySessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TherapySessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TherapySessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[therapysession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TherapySessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TherapySessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, therapysession.FieldErrorMessage)
}

// SetSpeakerLabels sets the "speaker_labels" field.
func (m *TherapySessionMutation) SetSpeakerLabels(value map[string]string) {
	m.speaker_labels = &value
}

// SpeakerLabels returns the value of the "speaker_labels" field in the mutation.
func (m *TherapySessionMutation) SpeakerLabels() (r map[string]string, exists bool) {
	v := m.speaker_labels
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeakerLabels returns the old "speaker_labels" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldSpeakerLabels(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeakerLabels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeakerLabels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeakerLabels: %w", err)
	}
	return oldValue.SpeakerLabels, nil
}

// ClearSpeakerLabels clears the value of the "speaker_labels" field.
func (m *TherapySessionMutation) ClearSpeakerLabels() {
	m.speaker_labels = nil
	m.clearedFields[therapysession.FieldSpeakerLabels] = struct{}{}
}

// SpeakerLabelsCleared returns if the "speaker_labels" field was cleared in this mutation.
func (m *TherapySessionMutation) SpeakerLabelsCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldSpeakerLabels]
	return ok
}

// ResetSpeakerLabels resets all changes to the "speaker_labels" field.
func (m *TherapySessionMutation) ResetSpeakerLabels() {
	m.speaker_labels = nil
	delete(m.clearedFields, therapysession.FieldSpeakerLabels)
}

// SetLabelsConfidence sets the "labels_confidence" field.
func (m *TherapySessionMutation) SetLabelsConfidence(f float64) {
	m.labels_confidence = &f
	m.addlabels_confidence = nil
}

// LabelsConfidence returns the value of the "labels_confidence" field in the mutation.
func (m *TherapySessionMutation) LabelsConfidence() (r float64, exists bool) {
	v := m.labels_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldLabelsConfidence returns the old "labels_confidence" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldLabelsConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabelsConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabelsConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabelsConfidence: %w", err)
	}
	return oldValue.LabelsConfidence, nil
}

// AddLabelsConfidence adds f to the "labels_confidence" field.
func (m *TherapySessionMutation) AddLabelsConfidence(f float64) {
	if m.addlabels_confidence != nil {
		*m.addlabels_confidence += f
	} else {
		m.addlabels_confidence = &f
	}
}

// AddedLabelsConfidence returns the value that was added to the "labels_confidence" field in this mutation.
func (m *TherapySessionMutation) AddedLabelsConfidence() (r float64, exists bool) {
	v := m.addlabels_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearLabelsConfidence clears the value of the "labels_confidence" field.
func (m *TherapySessionMutation) ClearLabelsConfidence() {
	m.labels_confidence = nil
	m.addlabels_confidence = nil
	m.clearedFields[therapysession.FieldLabelsConfidence] = struct{}{}
}

// LabelsConfidenceCleared returns if the "labels_confidence" field was cleared in this mutation.
func (m *TherapySessionMutation) LabelsConfidenceCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldLabelsConfidence]
	return ok
}

// ResetLabelsConfidence resets all changes to the "labels_confidence" field.
func (m *TherapySessionMutation) ResetLabelsConfidence() {
	m.labels_confidence = nil
	m.addlabels_confidence = nil
	delete(m.clearedFields, therapysession.FieldLabelsConfidence)
}

// SetMoodScore sets the "mood_score" field.
func (m *TherapySessionMutation) SetMoodScore(f float64) {
	m.mood_score = &f
	m.addmood_score = nil
}

// MoodScore returns the value of the "mood_score" field in the mutation.
func (m *TherapySessionMutation) MoodScore() (r float64, exists bool) {
	v := m.mood_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMoodScore returns the old "mood_score" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldMoodScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMoodScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMoodScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMoodScore: %w", err)
	}
	return oldValue.MoodScore, nil
}

// AddMoodScore adds f to the "mood_score" field.
func (m *TherapySessionMutation) AddMoodScore(f float64) {
	if m.addmood_score != nil {
		*m.addmood_score += f
	} else {
		m.addmood_score = &f
	}
}

// AddedMoodScore returns the value that was added to the "mood_score" field in this mutation.
func (m *TherapySessionMutation) AddedMoodScore() (r float64, exists bool) {
	v := m.addmood_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearMoodScore clears the value of the "mood_score" field.
func (m *TherapySessionMutation) ClearMoodScore() {
	m.mood_score = nil
	m.addmood_score = nil
	m.clearedFields[therapysession.FieldMoodScore] = struct{}{}
}

// MoodScoreCleared returns if the "mood_score" field was cleared in this mutation.
func (m *TherapySessionMutation) MoodScoreCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldMoodScore]
	return ok
}

// ResetMoodScore resets all changes to the "mood_score" field.
func (m *TherapySessionMutation) ResetMoodScore() {
	m.mood_score = nil
	m.addmood_score = nil
	delete(m.clearedFields, therapysession.FieldMoodScore)
}

// SetMoodConfidence sets the "mood_confidence" field.
func (m *TherapySessionMutation) SetMoodConfidence(f float64) {
	m.mood_confidence = &f
	m.addmood_confidence = nil
}

// MoodConfidence returns the value of the "mood_confidence" field in the mutation.
func (m *TherapySessionMutation) MoodConfidence() (r float64, exists bool) {
	v := m.mood_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldMoodConfidence returns the old "mood_confidence" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldMoodConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMoodConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMoodConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMoodConfidence: %w", err)
	}
	return oldValue.MoodConfidence, nil
}

// AddMoodConfidence adds f to the "mood_confidence" field.
func (m *TherapySessionMutation) AddMoodConfidence(f float64) {
	if m.addmood_confidence != nil {
		*m.addmood_confidence += f
	} else {
		m.addmood_confidence = &f
	}
}

// AddedMoodConfidence returns the value that was added to the "mood_confidence" field in this mutation.
func (m *TherapySessionMutation) AddedMoodConfidence() (r float64, exists bool) {
	v := m.addmood_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearMoodConfidence clears the value of the "mood_confidence" field.
func (m *TherapySessionMutation) ClearMoodConfidence() {
	m.mood_confidence = nil
	m.addmood_confidence = nil
	m.clearedFields[therapysession.FieldMoodConfidence] = struct{}{}
}

// MoodConfidenceCleared returns if the "mood_confidence" field was cleared in this mutation.
func (m *TherapySessionMutation) MoodConfidenceCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldMoodConfidence]
	return ok
}

// ResetMoodConfidence resets all changes to the "mood_confidence" field.
func (m *TherapySessionMutation) ResetMoodConfidence() {
	m.mood_confidence = nil
	m.addmood_confidence = nil
	delete(m.clearedFields, therapysession.FieldMoodConfidence)
}

// SetMoodRationale sets the "mood_rationale" field.
func (m *TherapySessionMutation) SetMoodRationale(s string) {
	m.mood_rationale = &s
}

// MoodRationale returns the value of the "mood_rationale" field in the mutation.
func (m *TherapySessionMutation) MoodRationale() (r string, exists bool) {
	v := m.mood_rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldMoodRationale returns the old "mood_rationale" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldMoodRationale(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMoodRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMoodRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMoodRationale: %w", err)
	}
	return oldValue.MoodRationale, nil
}

// ClearMoodRationale clears the value of the "mood_rationale" field.
func (m *TherapySessionMutation) ClearMoodRationale() {
	m.mood_rationale = nil
	m.clearedFields[therapysession.FieldMoodRationale] = struct{}{}
}

// MoodRationaleCleared returns if the "mood_rationale" field was cleared in this mutation.
func (m *TherapySessionMutation) MoodRationaleCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldMoodRationale]
	return ok
}

// ResetMoodRationale resets all changes to the "mood_rationale" field.
func (m *TherapySessionMutation) ResetMoodRationale() {
	m.mood_rationale = nil
	delete(m.clearedFields, therapysession.FieldMoodRationale)
}

// SetMoodIndicators sets the "mood_indicators" field.
func (m *TherapySessionMutation) SetMoodIndicators(s []string) {
	m.mood_indicators = &s
	m.appendmood_indicators = nil
}

// MoodIndicators returns the value of the "mood_indicators" field in the mutation.
func (m *TherapySessionMutation) MoodIndicators() (r []string, exists bool) {
	v := m.mood_indicators
	if v == nil {
		return
	}
	return *v, true
}

// OldMoodIndicators returns the old "mood_indicators" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldMoodIndicators(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMoodIndicators is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMoodIndicators requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMoodIndicators: %w", err)
	}
	return oldValue.MoodIndicators, nil
}

// AppendMoodIndicators adds s to the "mood_indicators" field.
func (m *TherapySessionMutation) AppendMoodIndicators(s []string) {
	m.appendmood_indicators = append(m.appendmood_indicators, s...)
}

// AppendedMoodIndicators returns the list of values that were appended to the "mood_indicators" field in this mutation.
func (m *TherapySessionMutation) AppendedMoodIndicators() ([]string, bool) {
	if len(m.appendmood_indicators) == 0 {
		return nil, false
	}
	return m.appendmood_indicators, true
}

// ClearMoodIndicators clears the value of the "mood_indicators" field.
func (m *TherapySessionMutation) ClearMoodIndicators() {
	m.mood_indicators = nil
	m.appendmood_indicators = nil
	m.clearedFields[therapysession.FieldMoodIndicators] = struct{}{}
}

// MoodIndicatorsCleared returns if the "mood_indicators" field was cleared in this mutation.
func (m *TherapySessionMutation) MoodIndicatorsCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldMoodIndicators]
	return ok
}

// ResetMoodIndicators resets all changes to the "mood_indicators" field.
func (m *TherapySessionMutation) ResetMoodIndicators() {
	m.mood_indicators = nil
	m.appendmood_indicators = nil
	delete(m.clearedFields, therapysession.FieldMoodIndicators)
}

// SetEmotionalTone sets the "emotional_tone" field.
func (m *TherapySessionMutation) SetEmotionalTone(s string) {
	m.emotional_tone = &s
}

// EmotionalTone returns the value of the "emotional_tone" field in the mutation.
func (m *TherapySessionMutation) EmotionalTone() (r string, exists bool) {
	v := m.emotional_tone
	if v == nil {
		return
	}
	return *v, true
}

// OldEmotionalTone returns the old "emotional_tone" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldEmotionalTone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmotionalTone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmotionalTone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmotionalTone: %w", err)
	}
	return oldValue.EmotionalTone, nil
}

// ClearEmotionalTone clears the value of the "emotional_tone" field.
func (m *TherapySessionMutation) ClearEmotionalTone() {
	m.emotional_tone = nil
	m.clearedFields[therapysession.FieldEmotionalTone] = struct{}{}
}

// EmotionalToneCleared returns if the "emotional_tone" field was cleared in this mutation.
func (m *TherapySessionMutation) EmotionalToneCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldEmotionalTone]
	return ok
}

// ResetEmotionalTone resets all changes to the "emotional_tone" field.
func (m *TherapySessionMutation) ResetEmotionalTone() {
	m.emotional_tone = nil
	delete(m.clearedFields, therapysession.FieldEmotionalTone)
}

// SetTopics sets the "topics" field.
func (m *TherapySessionMutation) SetTopics(s []string) {
	m.topics = &s
	m.appendtopics = nil
}

// Topics returns the value of the "topics" field in the mutation.
func (m *TherapySessionMutation) Topics() (r []string, exists bool) {
	v := m.topics
	if v == nil {
		return
	}
	return *v, true
}

// OldTopics returns the old "topics" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopics: %w", err)
	}
	return oldValue.Topics, nil
}

// AppendTopics adds s to the "topics" field.
func (m *TherapySessionMutation) AppendTopics(s []string) {
	m.appendtopics = append(m.appendtopics, s...)
}

// AppendedTopics returns the list of values that were appended to the "topics" field in this mutation.
func (m *TherapySessionMutation) AppendedTopics() ([]string, bool) {
	if len(m.appendtopics) == 0 {
		return nil, false
	}
	return m.appendtopics, true
}

// ClearTopics clears the value of the "topics" field.
func (m *TherapySessionMutation) ClearTopics() {
	m.topics = nil
	m.appendtopics = nil
	m.clearedFields[therapysession.FieldTopics] = struct{}{}
}

// TopicsCleared returns if the "topics" field was cleared in this mutation.
func (m *TherapySessionMutation) TopicsCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldTopics]
	return ok
}

// ResetTopics resets all changes to the "topics" field.
func (m *TherapySessionMutation) ResetTopics() {
	m.topics = nil
	m.appendtopics = nil
	delete(m.clearedFields, therapysession.FieldTopics)
}

// SetActionItems sets the "action_items" field.
func (m *TherapySessionMutation) SetActionItems(s []string) {
	m.action_items = &s
	m.appendaction_items = nil
}

// ActionItems returns the value of the "action_items" field in the mutation.
func (m *TherapySessionMutation) ActionItems() (r []string, exists bool) {
	v := m.action_items
	if v == nil {
		return
	}
	return *v, true
}

// OldActionItems returns the old "action_items" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldActionItems(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionItems: %w", err)
	}
	return oldValue.ActionItems, nil
}

// AppendActionItems adds s to the "action_items" field.
func (m *TherapySessionMutation) AppendActionItems(s []string) {
	m.appendaction_items = append(m.appendaction_items, s...)
}

// AppendedActionItems returns the list of values that were appended to the "action_items" field in this mutation.
func (m *TherapySessionMutation) AppendedActionItems() ([]string, bool) {
	if len(m.appendaction_items) == 0 {
		return nil, false
	}
	return m.appendaction_items, true
}

// ClearActionItems clears the value of the "action_items" field.
func (m *TherapySessionMutation) ClearActionItems() {
	m.action_items = nil
	m.appendaction_items = nil
	m.clearedFields[therapysession.FieldActionItems] = struct{}{}
}

// ActionItemsCleared returns if the "action_items" field was cleared in this mutation.
func (m *TherapySessionMutation) ActionItemsCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldActionItems]
	return ok
}

// ResetActionItems resets all changes to the "action_items" field.
func (m *TherapySessionMutation) ResetActionItems() {
	m.action_items = nil
	m.appendaction_items = nil
	delete(m.clearedFields, therapysession.FieldActionItems)
}

// SetTechnique sets the "technique" field.
func (m *TherapySessionMutation) SetTechnique(s string) {
	m.technique = &s
}

// Technique returns the value of the "technique" field in the mutation.
func (m *TherapySessionMutation) Technique() (r string, exists bool) {
	v := m.technique
	if v == nil {
		return
	}
	return *v, true
}

// OldTechnique returns the old "technique" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldTechnique(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTechnique is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTechnique requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTechnique: %w", err)
	}
	return oldValue.Technique, nil
}

// ClearTechnique clears the value of the "technique" field.
func (m *TherapySessionMutation) ClearTechnique() {
	m.technique = nil
	m.clearedFields[therapysession.FieldTechnique] = struct{}{}
}

// TechniqueCleared returns if the "technique" field was cleared in this mutation.
func (m *TherapySessionMutation) TechniqueCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldTechnique]
	return ok
}

// ResetTechnique resets all changes to the "technique" field.
func (m *TherapySessionMutation) ResetTechnique() {
	m.technique = nil
	delete(m.clearedFields, therapysession.FieldTechnique)
}

// SetSummary sets the "summary" field.
func (m *TherapySessionMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *TherapySessionMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *TherapySessionMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[therapysession.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *TherapySessionMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *TherapySessionMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, therapysession.FieldSummary)
}

// SetActionItemsSummary sets the "action_items_summary" field.
func (m *TherapySessionMutation) SetActionItemsSummary(s string) {
	m.action_items_summary = &s
}

// ActionItemsSummary returns the value of the "action_items_summary" field in the mutation.
func (m *TherapySessionMutation) ActionItemsSummary() (r string, exists bool) {
	v := m.action_items_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldActionItemsSummary returns the old "action_items_summary" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldActionItemsSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionItemsSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionItemsSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionItemsSummary: %w", err)
	}
	return oldValue.ActionItemsSummary, nil
}

// ClearActionItemsSummary clears the value of the "action_items_summary" field.
func (m *TherapySessionMutation) ClearActionItemsSummary() {
	m.action_items_summary = nil
	m.clearedFields[therapysession.FieldActionItemsSummary] = struct{}{}
}

// ActionItemsSummaryCleared returns if the "action_items_summary" field was cleared in this mutation.
func (m *TherapySessionMutation) ActionItemsSummaryCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldActionItemsSummary]
	return ok
}

// ResetActionItemsSummary resets all changes to the "action_items_summary" field.
func (m *TherapySessionMutation) ResetActionItemsSummary() {
	m.action_items_summary = nil
	delete(m.clearedFields, therapysession.FieldActionItemsSummary)
}

// SetHasBreakthrough sets the "has_breakthrough" field.
func (m *TherapySessionMutation) SetHasBreakthrough(b bool) {
	m.has_breakthrough = &b
}

// HasBreakthrough returns the value of the "has_breakthrough" field in the mutation.
func (m *TherapySessionMutation) HasBreakthrough() (r bool, exists bool) {
	v := m.has_breakthrough
	if v == nil {
		return
	}
	return *v, true
}

// OldHasBreakthrough returns the old "has_breakthrough" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldHasBreakthrough(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasBreakthrough is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasBreakthrough requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasBreakthrough: %w", err)
	}
	return oldValue.HasBreakthrough, nil
}

// ClearHasBreakthrough clears the value of the "has_breakthrough" field.
func (m *TherapySessionMutation) ClearHasBreakthrough() {
	m.has_breakthrough = nil
	m.clearedFields[therapysession.FieldHasBreakthrough] = struct{}{}
}

// HasBreakthroughCleared returns if the "has_breakthrough" field was cleared in this mutation.
func (m *TherapySessionMutation) HasBreakthroughCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldHasBreakthrough]
	return ok
}

// ResetHasBreakthrough resets all changes to the "has_breakthrough" field.
func (m *TherapySessionMutation) ResetHasBreakthrough() {
	m.has_breakthrough = nil
	delete(m.clearedFields, therapysession.FieldHasBreakthrough)
}

// SetBreakthroughLabel sets the "breakthrough_label" field.
func (m *TherapySessionMutation) SetBreakthroughLabel(s string) {
	m.breakthrough_label = &s
}

// BreakthroughLabel returns the value of the "breakthrough_label" field in the mutation.
func (m *TherapySessionMutation) BreakthroughLabel() (r string, exists bool) {
	v := m.breakthrough_label
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakthroughLabel returns the old "breakthrough_label" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldBreakthroughLabel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakthroughLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakthroughLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakthroughLabel: %w", err)
	}
	return oldValue.BreakthroughLabel, nil
}

// ClearBreakthroughLabel clears the value of the "breakthrough_label" field.
func (m *TherapySessionMutation) ClearBreakthroughLabel() {
	m.breakthrough_label = nil
	m.clearedFields[therapysession.FieldBreakthroughLabel] = struct{}{}
}

// BreakthroughLabelCleared returns if the "breakthrough_label" field was cleared in this mutation.
func (m *TherapySessionMutation) BreakthroughLabelCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldBreakthroughLabel]
	return ok
}

// ResetBreakthroughLabel resets all changes to the "breakthrough_label" field.
func (m *TherapySessionMutation) ResetBreakthroughLabel() {
	m.breakthrough_label = nil
	delete(m.clearedFields, therapysession.FieldBreakthroughLabel)
}

// SetBreakthroughData sets the "breakthrough_data" field.
func (m *TherapySessionMutation) SetBreakthroughData(value map[string]interface{}) {
	m.breakthrough_data = &value
}

// BreakthroughData returns the value of the "breakthrough_data" field in the mutation.
func (m *TherapySessionMutation) BreakthroughData() (r map[string]interface{}, exists bool) {
	v := m.breakthrough_data
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakthroughData returns the old "breakthrough_data" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldBreakthroughData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakthroughData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakthroughData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakthroughData: %w", err)
	}
	return oldValue.BreakthroughData, nil
}

// ClearBreakthroughData clears the value of the "breakthrough_data" field.
func (m *TherapySessionMutation) ClearBreakthroughData() {
	m.breakthrough_data = nil
	m.clearedFields[therapysession.FieldBreakthroughData] = struct{}{}
}

// BreakthroughDataCleared returns if the "breakthrough_data" field was cleared in this mutation.
func (m *TherapySessionMutation) BreakthroughDataCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldBreakthroughData]
	return ok
}

// ResetBreakthroughData resets all changes to the "breakthrough_data" field.
func (m *TherapySessionMutation) ResetBreakthroughData() {
	m.breakthrough_data = nil
	delete(m.clearedFields, therapysession.FieldBreakthroughData)
}

// SetMoodAnalyzedAt sets the "mood_analyzed_at" field.
func (m *TherapySessionMutation) SetMoodAnalyzedAt(t time.Time) {
	m.mood_analyzed_at = &t
}

// MoodAnalyzedAt returns the value of the "mood_analyzed_at" field in the mutation.
func (m *TherapySessionMutation) MoodAnalyzedAt() (r time.Time, exists bool) {
	v := m.mood_analyzed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldMoodAnalyzedAt returns the old "mood_analyzed_at" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldMoodAnalyzedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMoodAnalyzedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMoodAnalyzedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMoodAnalyzedAt: %w", err)
	}
	return oldValue.MoodAnalyzedAt, nil
}

// ClearMoodAnalyzedAt clears the value of the "mood_analyzed_at" field.
func (m *TherapySessionMutation) ClearMoodAnalyzedAt() {
	m.mood_analyzed_at = nil
	m.clearedFields[therapysession.FieldMoodAnalyzedAt] = struct{}{}
}

// MoodAnalyzedAtCleared returns if the "mood_analyzed_at" field was cleared in this mutation.
func (m *TherapySessionMutation) MoodAnalyzedAtCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldMoodAnalyzedAt]
	return ok
}

// ResetMoodAnalyzedAt resets all changes to the "mood_analyzed_at" field.
func (m *TherapySessionMutation) ResetMoodAnalyzedAt() {
	m.mood_analyzed_at = nil
	delete(m.clearedFields, therapysession.FieldMoodAnalyzedAt)
}

// SetTopicsExtractedAt sets the "topics_extracted_at" field.
func (m *TherapySessionMutation) SetTopicsExtractedAt(t time.Time) {
	m.topics_extracted_at = &t
}

// TopicsExtractedAt returns the value of the "topics_extracted_at" field in the mutation.
func (m *TherapySessionMutation) TopicsExtractedAt() (r time.Time, exists bool) {
	v := m.topics_extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicsExtractedAt returns the old "topics_extracted_at" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldTopicsExtractedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicsExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicsExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicsExtractedAt: %w", err)
	}
	return oldValue.TopicsExtractedAt, nil
}

// ClearTopicsExtractedAt clears the value of the "topics_extracted_at" field.
func (m *TherapySessionMutation) ClearTopicsExtractedAt() {
	m.topics_extracted_at = nil
	m.clearedFields[therapysession.FieldTopicsExtractedAt] = struct{}{}
}

// TopicsExtractedAtCleared returns if the "topics_extracted_at" field was cleared in this mutation.
func (m *TherapySessionMutation) TopicsExtractedAtCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldTopicsExtractedAt]
	return ok
}

// ResetTopicsExtractedAt resets all changes to the "topics_extracted_at" field.
func (m *TherapySessionMutation) ResetTopicsExtractedAt() {
	m.topics_extracted_at = nil
	delete(m.clearedFields, therapysession.FieldTopicsExtractedAt)
}

// SetBreakthroughDetectedAt sets the "breakthrough_detected_at" field.
func (m *TherapySessionMutation) SetBreakthroughDetectedAt(t time.Time) {
	m.breakthrough_detected_at = &t
}

// BreakthroughDetectedAt returns the value of the "breakthrough_detected_at" field in the mutation.
func (m *TherapySessionMutation) BreakthroughDetectedAt() (r time.Time, exists bool) {
	v := m.breakthrough_detected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakthroughDetectedAt returns the old "breakthrough_detected_at" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldBreakthroughDetectedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakthroughDetectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakthroughDetectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakthroughDetectedAt: %w", err)
	}
	return oldValue.BreakthroughDetectedAt, nil
}

// ClearBreakthroughDetectedAt clears the value of the "breakthrough_detected_at" field.
func (m *TherapySessionMutation) ClearBreakthroughDetectedAt() {
	m.breakthrough_detected_at = nil
	m.clearedFields[therapysession.FieldBreakthroughDetectedAt] = struct{}{}
}

// BreakthroughDetectedAtCleared returns if the "breakthrough_detected_at" field was cleared in this mutation.
func (m *TherapySessionMutation) BreakthroughDetectedAtCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldBreakthroughDetectedAt]
	return ok
}

// ResetBreakthroughDetectedAt resets all changes to the "breakthrough_detected_at" field.
func (m *TherapySessionMutation) ResetBreakthroughDetectedAt() {
	m.breakthrough_detected_at = nil
	delete(m.clearedFields, therapysession.FieldBreakthroughDetectedAt)
}

// SetWave1CompletedAt sets the "wave1_completed_at" field.
func (m *TherapySessionMutation) SetWave1CompletedAt(t time.Time) {
	m.wave1_completed_at = &t
}

// Wave1CompletedAt returns the value of the "wave1_completed_at" field in the mutation.
func (m *TherapySessionMutation) Wave1CompletedAt() (r time.Time, exists bool) {
	v := m.wave1_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldWave1CompletedAt returns the old "wave1_completed_at" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldWave1CompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWave1CompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWave1CompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWave1CompletedAt: %w", err)
	}
	return oldValue.Wave1CompletedAt, nil
}

// ClearWave1CompletedAt clears the value of the "wave1_completed_at" field.
func (m *TherapySessionMutation) ClearWave1CompletedAt() {
	m.wave1_completed_at = nil
	m.clearedFields[therapysession.FieldWave1CompletedAt] = struct{}{}
}

// Wave1CompletedAtCleared returns if the "wave1_completed_at" field was cleared in this mutation.
func (m *TherapySessionMutation) Wave1CompletedAtCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldWave1CompletedAt]
	return ok
}

// ResetWave1CompletedAt resets all changes to the "wave1_completed_at" field.
func (m *TherapySessionMutation) ResetWave1CompletedAt() {
	m.wave1_completed_at = nil
	delete(m.clearedFields, therapysession.FieldWave1CompletedAt)
}

// SetDeepAnalysis sets the "deep_analysis" field.
func (m *TherapySessionMutation) SetDeepAnalysis(value map[string]interface{}) {
	m.deep_analysis = &value
}

// DeepAnalysis returns the value of the "deep_analysis" field in the mutation.
func (m *TherapySessionMutation) DeepAnalysis() (r map[string]interface{}, exists bool) {
	v := m.deep_analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldDeepAnalysis returns the old "deep_analysis" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldDeepAnalysis(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeepAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeepAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeepAnalysis: %w", err)
	}
	return oldValue.DeepAnalysis, nil
}

// ClearDeepAnalysis clears the value of the "deep_analysis" field.
func (m *TherapySessionMutation) ClearDeepAnalysis() {
	m.deep_analysis = nil
	m.clearedFields[therapysession.FieldDeepAnalysis] = struct{}{}
}

// DeepAnalysisCleared returns if the "deep_analysis" field was cleared in this mutation.
func (m *TherapySessionMutation) DeepAnalysisCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldDeepAnalysis]
	return ok
}

// ResetDeepAnalysis resets all changes to the "deep_analysis" field.
func (m *TherapySessionMutation) ResetDeepAnalysis() {
	m.deep_analysis = nil
	delete(m.clearedFields, therapysession.FieldDeepAnalysis)
}

// SetAnalysisConfidence sets the "analysis_confidence" field.
func (m *TherapySessionMutation) SetAnalysisConfidence(f float64) {
	m.analysis_confidence = &f
	m.addanalysis_confidence = nil
}

// AnalysisConfidence returns the value of the "analysis_confidence" field in the mutation.
func (m *TherapySessionMutation) AnalysisConfidence() (r float64, exists bool) {
	v := m.analysis_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisConfidence returns the old "analysis_confidence" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldAnalysisConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisConfidence: %w", err)
	}
	return oldValue.AnalysisConfidence, nil
}

// AddAnalysisConfidence adds f to the "analysis_confidence" field.
func (m *TherapySessionMutation) AddAnalysisConfidence(f float64) {
	if m.addanalysis_confidence != nil {
		*m.addanalysis_confidence += f
	} else {
		m.addanalysis_confidence = &f
	}
}

// AddedAnalysisConfidence returns the value that was added to the "analysis_confidence" field in this mutation.
func (m *TherapySessionMutation) AddedAnalysisConfidence() (r float64, exists bool) {
	v := m.addanalysis_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearAnalysisConfidence clears the value of the "analysis_confidence" field.
func (m *TherapySessionMutation) ClearAnalysisConfidence() {
	m.analysis_confidence = nil
	m.addanalysis_confidence = nil
	m.clearedFields[therapysession.FieldAnalysisConfidence] = struct{}{}
}

// AnalysisConfidenceCleared returns if the "analysis_confidence" field was cleared in this mutation.
func (m *TherapySessionMutation) AnalysisConfidenceCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldAnalysisConfidence]
	return ok
}

// ResetAnalysisConfidence resets all changes to the "analysis_confidence" field.
func (m *TherapySessionMutation) ResetAnalysisConfidence() {
	m.analysis_confidence = nil
	m.addanalysis_confidence = nil
	delete(m.clearedFields, therapysession.FieldAnalysisConfidence)
}

// SetProseAnalysis sets the "prose_analysis" field.
func (m *TherapySessionMutation) SetProseAnalysis(s string) {
	m.prose_analysis = &s
}

// ProseAnalysis returns the value of the "prose_analysis" field in the mutation.
func (m *TherapySessionMutation) ProseAnalysis() (r string, exists bool) {
	v := m.prose_analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldProseAnalysis returns the old "prose_analysis" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldProseAnalysis(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProseAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProseAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProseAnalysis: %w", err)
	}
	return oldValue.ProseAnalysis, nil
}

// ClearProseAnalysis clears the value of the "prose_analysis" field.
func (m *TherapySessionMutation) ClearProseAnalysis() {
	m.prose_analysis = nil
	m.clearedFields[therapysession.FieldProseAnalysis] = struct{}{}
}

// ProseAnalysisCleared returns if the "prose_analysis" field was cleared in this mutation.
func (m *TherapySessionMutation) ProseAnalysisCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldProseAnalysis]
	return ok
}

// ResetProseAnalysis resets all changes to the "prose_analysis" field.
func (m *TherapySessionMutation) ResetProseAnalysis() {
	m.prose_analysis = nil
	delete(m.clearedFields, therapysession.FieldProseAnalysis)
}

// SetDeepAnalyzedAt sets the "deep_analyzed_at" field.
func (m *TherapySessionMutation) SetDeepAnalyzedAt(t time.Time) {
	m.deep_analyzed_at = &t
}

// DeepAnalyzedAt returns the value of the "deep_analyzed_at" field in the mutation.
func (m *TherapySessionMutation) DeepAnalyzedAt() (r time.Time, exists bool) {
	v := m.deep_analyzed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeepAnalyzedAt returns the old "deep_analyzed_at" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldDeepAnalyzedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeepAnalyzedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeepAnalyzedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeepAnalyzedAt: %w", err)
	}
	return oldValue.DeepAnalyzedAt, nil
}

// ClearDeepAnalyzedAt clears the value of the "deep_analyzed_at" field.
func (m *TherapySessionMutation) ClearDeepAnalyzedAt() {
	m.deep_analyzed_at = nil
	m.clearedFields[therapysession.FieldDeepAnalyzedAt] = struct{}{}
}

// DeepAnalyzedAtCleared returns if the "deep_analyzed_at" field was cleared in this mutation.
func (m *TherapySessionMutation) DeepAnalyzedAtCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldDeepAnalyzedAt]
	return ok
}

// ResetDeepAnalyzedAt resets all changes to the "deep_analyzed_at" field.
func (m *TherapySessionMutation) ResetDeepAnalyzedAt() {
	m.deep_analyzed_at = nil
	delete(m.clearedFields, therapysession.FieldDeepAnalyzedAt)
}

// SetProseGeneratedAt sets the "prose_generated_at" field.
func (m *TherapySessionMutation) SetProseGeneratedAt(t time.Time) {
	m.prose_generated_at = &t
}

// ProseGeneratedAt returns the value of the "prose_generated_at" field in the mutation.
func (m *TherapySessionMutation) ProseGeneratedAt() (r time.Time, exists bool) {
	v := m.prose_generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProseGeneratedAt returns the old "prose_generated_at" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldProseGeneratedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProseGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProseGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProseGeneratedAt: %w", err)
	}
	return oldValue.ProseGeneratedAt, nil
}

// ClearProseGeneratedAt clears the value of the "prose_generated_at" field.
func (m *TherapySessionMutation) ClearProseGeneratedAt() {
	m.prose_generated_at = nil
	m.clearedFields[therapysession.FieldProseGeneratedAt] = struct{}{}
}

// ProseGeneratedAtCleared returns if the "prose_generated_at" field was cleared in this mutation.
func (m *TherapySessionMutation) ProseGeneratedAtCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldProseGeneratedAt]
	return ok
}

// ResetProseGeneratedAt resets all changes to the "prose_generated_at" field.
func (m *TherapySessionMutation) ResetProseGeneratedAt() {
	m.prose_generated_at = nil
	delete(m.clearedFields, therapysession.FieldProseGeneratedAt)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *TherapySessionMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[therapysession.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *TherapySessionMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *TherapySessionMutation) PatientIDs() (ids []string) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *TherapySessionMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// AddProcessingLogIDs adds the "processing_logs" edge to the ProcessingLog entity by ids.
func (m *TherapySessionMutation) AddProcessingLogIDs(ids ...int) {
	if m.processing_logs == nil {
		m.processing_logs = make(map[int]struct{})
	}
	for i := range ids {
		m.processing_logs[ids[i]] = struct{}{}
	}
}

// ClearProcessingLogs clears the "processing_logs" edge to the ProcessingLog entity.
func (m *TherapySessionMutation) ClearProcessingLogs() {
	m.clearedprocessing_logs = true
}

// ProcessingLogsCleared reports if the "processing_logs" edge to the ProcessingLog entity was cleared.
func (m *TherapySessionMutation) ProcessingLogsCleared() bool {
	return m.clearedprocessing_logs
}

// RemoveProcessingLogIDs removes the "processing_logs" edge to the ProcessingLog entity by IDs.
func (m *TherapySessionMutation) RemoveProcessingLogIDs(ids ...int) {
	if m.removedprocessing_logs == nil {
		m.removedprocessing_logs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.processing_logs, ids[i])
		m.removedprocessing_logs[ids[i]] = struct{}{}
	}
}

// RemovedProcessingLogs returns the removed IDs of the "processing_logs" edge to the ProcessingLog entity.
func (m *TherapySessionMutation) RemovedProcessingLogsIDs() (ids []int) {
	for id := range m.removedprocessing_logs {
		ids = append(ids, id)
	}
	return
}

// ProcessingLogsIDs returns the "processing_logs" edge IDs in the mutation.
func (m *TherapySessionMutation) ProcessingLogsIDs() (ids []int) {
	for id := range m.processing_logs {
		ids = append(ids, id)
	}
	return
}

// ResetProcessingLogs resets all changes to the "processing_logs" edge.
func (m *TherapySessionMutation) ResetProcessingLogs() {
	m.processing_logs = nil
	m.clearedprocessing_logs = false
	m.removedprocessing_logs = nil
}

// Where appends a list predicates to the TherapySessionMutation builder.
func (m *TherapySessionMutation) Where(ps ...predicate.TherapySession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TherapySessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TherapySessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TherapySession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TherapySessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TherapySessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TherapySession).
func (m *TherapySessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TherapySessionMutation) Fields() []string {
	fields := make([]string, 0, 36)
	if m.patient != nil {
		fields = append(fields, therapysession.FieldPatientID)
	}
	if m.session_date != nil {
		fields = append(fields, therapysession.FieldSessionDate)
	}
	if m.duration_minutes != nil {
		fields = append(fields, therapysession.FieldDurationMinutes)
	}
	if m.transcript != nil {
		fields = append(fields, therapysession.FieldTranscript)
	}
	if m.processing_status != nil {
		fields = append(fields, therapysession.FieldProcessingStatus)
	}
	if m.analysis_status != nil {
		fields = append(fields, therapysession.FieldAnalysisStatus)
	}
	if m.pod_id != nil {
		fields = append(fields, therapysession.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, therapysession.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, therapysession.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, therapysession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, therapysession.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, therapysession.FieldErrorMessage)
	}
	if m.speaker_labels != nil {
		fields = append(fields, therapysession.FieldSpeakerLabels)
	}
	if m.labels_confidence != nil {
		fields = append(fields, therapysession.FieldLabelsConfidence)
	}
	if m.mood_score != nil {
		fields = append(fields, therapysession.FieldMoodScore)
	}
	if m.mood_confidence != nil {
		fields = append(fields, therapysession.FieldMoodConfidence)
	}
	if m.mood_rationale != nil {
		fields = append(fields, therapysession.FieldMoodRationale)
	}
	if m.mood_indicators != nil {
		fields = append(fields, therapysession.FieldMoodIndicators)
	}
	if m.emotional_tone != nil {
		fields = append(fields, therapysession.FieldEmotionalTone)
	}
	if m.topics != nil {
		fields = append(fields, therapysession.FieldTopics)
	}
	if m.action_items != nil {
		fields = append(fields, therapysession.FieldActionItems)
	}
	if m.technique != nil {
		fields = append(fields, therapysession.FieldTechnique)
	}
	if m.summary != nil {
		fields = append(fields, therapysession.FieldSummary)
	}
	if m.action_items_summary != nil {
		fields = append(fields, therapysession.FieldActionItemsSummary)
	}
	if m.has_breakthrough != nil {
		fields = append(fields, therapysession.FieldHasBreakthrough)
	}
	if m.breakthrough_label != nil {
		fields = append(fields, therapysession.FieldBreakthroughLabel)
	}
	if m.breakthrough_data != nil {
		fields = append(fields, therapysession.FieldBreakthroughData)
	}
	if m.mood_analyzed_at != nil {
		fields = append(fields, therapysession.FieldMoodAnalyzedAt)
	}
	if m.topics_extracted_at != nil {
		fields = append(fields, therapysession.FieldTopicsExtractedAt)
	}
	if m.breakthrough_detected_at != nil {
		fields = append(fields, therapysession.FieldBreakthroughDetectedAt)
	}
	if m.wave1_completed_at != nil {
		fields = append(fields, therapysession.FieldWave1CompletedAt)
	}
	if m.deep_analysis != nil {
		fields = append(fields, therapysession.FieldDeepAnalysis)
	}
	if m.analysis_confidence != nil {
		fields = append(fields, therapysession.FieldAnalysisConfidence)
	}
	if m.prose_analysis != nil {
		fields = append(fields, therapysession.FieldProseAnalysis)
	}
	if m.deep_analyzed_at != nil {
		fields = append(fields, therapysession.FieldDeepAnalyzedAt)
	}
	if m.prose_generated_at != nil {
		fields = append(fields, therapysession.FieldProseGeneratedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TherapySessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case therapysession.FieldPatientID:
		return m.PatientID()
	case therapysession.FieldSessionDate:
		return m.SessionDate()
	case therapysession.FieldDurationMinutes:
		return m.DurationMinutes()
	case therapysession.FieldTranscript:
		return m.Transcript()
	case therapysession.FieldProcessingStatus:
		return m.ProcessingStatus()
	case therapysession.FieldAnalysisStatus:
		return m.AnalysisStatus()
	case therapysession.FieldPodID:
		return m.PodID()
	case therapysession.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case therapysession.FieldCreatedAt:
		return m.CreatedAt()
	case therapysession.FieldStartedAt:
		return m.StartedAt()
	case therapysession.FieldCompletedAt:
		return m.CompletedAt()
	case therapysession.FieldErrorMessage:
		return m.ErrorMessage()
	case therapysession.FieldSpeakerLabels:
		return m.SpeakerLabels()
	case therapysession.FieldLabelsConfidence:
		return m.LabelsConfidence()
	case therapysession.FieldMoodScore:
		return m.MoodScore()
	case therapysession.FieldMoodConfidence:
		return m.MoodConfidence()
	case therapysession.FieldMoodRationale:
		return m.MoodRationale()
	case therapysession.FieldMoodIndicators:
		return m.MoodIndicators()
	case therapysession.FieldEmotionalTone:
		return m.EmotionalTone()
	case therapysession.FieldTopics:
		return m.Topics()
	case therapysession.FieldActionItems:
		return m.ActionItems()
	case therapysession.FieldTechnique:
		return m.Technique()
	case therapysession.FieldSummary:
		return m.Summary()
	case therapysession.FieldActionItemsSummary:
		return m.ActionItemsSummary()
	case therapysession.FieldHasBreakthrough:
		return m.HasBreakthrough()
	case therapysession.FieldBreakthroughLabel:
		return m.BreakthroughLabel()
	case therapysession.FieldBreakthroughData:
		return m.BreakthroughData()
	case therapysession.FieldMoodAnalyzedAt:
		return m.MoodAnalyzedAt()
	case therapysession.FieldTopicsExtractedAt:
		return m.TopicsExtractedAt()
	case therapysession.FieldBreakthroughDetectedAt:
		return m.BreakthroughDetectedAt()
	case therapysession.FieldWave1CompletedAt:
		return m.Wave1CompletedAt()
	case therapysession.FieldDeepAnalysis:
		return m.DeepAnalysis()
	case therapysession.FieldAnalysisConfidence:
		return m.AnalysisConfidence()
	case therapysession.FieldProseAnalysis:
		return m.ProseAnalysis()
	case therapysession.FieldDeepAnalyzedAt:
		return m.DeepAnalyzedAt()
	case therapysession.FieldProseGeneratedAt:
		return m.ProseGeneratedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TherapySessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case therapysession.FieldPatientID:
		return m.OldPatientID(ctx)
	case therapysession.FieldSessionDate:
		return m.OldSessionDate(ctx)
	case therapysession.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case therapysession.FieldTranscript:
		return m.OldTranscript(ctx)
	case therapysession.FieldProcessingStatus:
		return m.OldProcessingStatus(ctx)
	case therapysession.FieldAnalysisStatus:
		return m.OldAnalysisStatus(ctx)
	case therapysession.FieldPodID:
		return m.OldPodID(ctx)
	case therapysession.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case therapysession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case therapysession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case therapysession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case therapysession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case therapysession.FieldSpeakerLabels:
		return m.OldSpeakerLabels(ctx)
	case therapysession.FieldLabelsConfidence:
		return m.OldLabelsConfidence(ctx)
	case therapysession.FieldMoodScore:
		return m.OldMoodScore(ctx)
	case therapysession.FieldMoodConfidence:
		return m.OldMoodConfidence(ctx)
	case therapysession.FieldMoodRationale:
		return m.OldMoodRationale(ctx)
	case therapysession.FieldMoodIndicators:
		return m.OldMoodIndicators(ctx)
	case therapysession.FieldEmotionalTone:
		return m.OldEmotionalTone(ctx)
	case therapysession.FieldTopics:
		return m.OldTopics(ctx)
	case therapysession.FieldActionItems:
		return m.OldActionItems(ctx)
	case therapysession.FieldTechnique:
		return m.OldTechnique(ctx)
	case therapysession.FieldSummary:
		return m.OldSummary(ctx)
	case therapysession.FieldActionItemsSummary:
		return m.OldActionItemsSummary(ctx)
	case therapysession.FieldHasBreakthrough:
		return m.OldHasBreakthrough(ctx)
	case therapysession.FieldBreakthroughLabel:
		return m.OldBreakthroughLabel(ctx)
	case therapysession.FieldBreakthroughData:
		return m.OldBreakthroughData(ctx)
	case therapysession.FieldMoodAnalyzedAt:
		return m.OldMoodAnalyzedAt(ctx)
	case therapysession.FieldTopicsExtractedAt:
		return m.OldTopicsExtractedAt(ctx)
	case therapysession.FieldBreakthroughDetectedAt:
		return m.OldBreakthroughDetectedAt(ctx)
	case therapysession.FieldWave1CompletedAt:
		return m.OldWave1CompletedAt(ctx)
	case therapysession.FieldDeepAnalysis:
		return m.OldDeepAnalysis(ctx)
	case therapysession.FieldAnalysisConfidence:
		return m.OldAnalysisConfidence(ctx)
	case therapysession.FieldProseAnalysis:
		return m.OldProseAnalysis(ctx)
	case therapysession.FieldDeepAnalyzedAt:
		return m.OldDeepAnalyzedAt(ctx)
	case therapysession.FieldProseGeneratedAt:
		return m.OldProseGeneratedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TherapySession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TherapySessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case therapysession.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case therapysession.FieldSessionDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionDate(v)
		return nil
	case therapysession.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case therapysession.FieldTranscript:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscript(v)
		return nil
	case therapysession.FieldProcessingStatus:
		v, ok := value.(therapysession.ProcessingStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStatus(v)
		return nil
	case therapysession.FieldAnalysisStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisStatus(v)
		return nil
	case therapysession.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case therapysession.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case therapysession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case therapysession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case therapysession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case therapysession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case therapysession.FieldSpeakerLabels:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeakerLabels(v)
		return nil
	case therapysession.FieldLabelsConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabelsConfidence(v)
		return nil
	case therapysession.FieldMoodScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMoodScore(v)
		return nil
	case therapysession.FieldMoodConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMoodConfidence(v)
		return nil
	case therapysession.FieldMoodRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMoodRationale(v)
		return nil
	case therapysession.FieldMoodIndicators:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMoodIndicators(v)
		return nil
	case therapysession.FieldEmotionalTone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmotionalTone(v)
		return nil
	case therapysession.FieldTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopics(v)
		return nil
	case therapysession.FieldActionItems:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionItems(v)
		return nil
	case therapysession.FieldTechnique:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTechnique(v)
		return nil
	case therapysession.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case therapysession.FieldActionItemsSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionItemsSummary(v)
		return nil
	case therapysession.FieldHasBreakthrough:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasBreakthrough(v)
		return nil
	case therapysession.FieldBreakthroughLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakthroughLabel(v)
		return nil
	case therapysession.FieldBreakthroughData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakthroughData(v)
		return nil
	case therapysession.FieldMoodAnalyzedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMoodAnalyzedAt(v)
		return nil
	case therapysession.FieldTopicsExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicsExtractedAt(v)
		return nil
	case therapysession.FieldBreakthroughDetectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakthroughDetectedAt(v)
		return nil
	case therapysession.FieldWave1CompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWave1CompletedAt(v)
		return nil
	case therapysession.FieldDeepAnalysis:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeepAnalysis(v)
		return nil
	case therapysession.FieldAnalysisConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisConfidence(v)
		return nil
	case therapysession.FieldProseAnalysis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProseAnalysis(v)
		return nil
	case therapysession.FieldDeepAnalyzedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeepAnalyzedAt(v)
		return nil
	case therapysession.FieldProseGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProseGeneratedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TherapySession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TherapySessionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_minutes != nil {
		fields = append(fields, therapysession.FieldDurationMinutes)
	}
	if m.addlabels_confidence != nil {
		fields = append(fields, therapysession.FieldLabelsConfidence)
	}
	if m.addmood_score != nil {
		fields = append(fields, therapysession.FieldMoodScore)
	}
	if m.addmood_confidence != nil {
		fields = append(fields, therapysession.FieldMoodConfidence)
	}
	if m.addanalysis_confidence != nil {
		fields = append(fields, therapysession.FieldAnalysisConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TherapySessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case therapysession.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case therapysession.FieldLabelsConfidence:
		return m.AddedLabelsConfidence()
	case therapysession.FieldMoodScore:
		return m.AddedMoodScore()
	case therapysession.FieldMoodConfidence:
		return m.AddedMoodConfidence()
	case therapysession.FieldAnalysisConfidence:
		return m.AddedAnalysisConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TherapySessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case therapysession.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case therapysession.FieldLabelsConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLabelsConfidence(v)
		return nil
	case therapysession.FieldMoodScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMoodScore(v)
		return nil
	case therapysession.FieldMoodConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMoodConfidence(v)
		return nil
	case therapysession.FieldAnalysisConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnalysisConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown TherapySession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TherapySessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(therapysession.FieldAnalysisStatus) {
		fields = append(fields, therapysession.FieldAnalysisStatus)
	}
	if m.FieldCleared(therapysession.FieldPodID) {
		fields = append(fields, therapysession.FieldPodID)
	}
	if m.FieldCleared(therapysession.FieldLastHeartbeatAt) {
		fields = append(fields, therapysession.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(therapysession.FieldStartedAt) {
		fields = append(fields, therapysession.FieldStartedAt)
	}
	if m.FieldCleared(therapysession.FieldCompletedAt) {
		fields = append(fields, therapysession.FieldCompletedAt)
	}
	if m.FieldCleared(therapysession.FieldErrorMessage) {
		fields = append(fields, therapysession.FieldErrorMessage)
	}
	if m.FieldCleared(therapysession.FieldSpeakerLabels) {
		fields = append(fields, therapysession.FieldSpeakerLabels)
	}
	if m.FieldCleared(therapysession.FieldLabelsConfidence) {
		fields = append(fields, therapysession.FieldLabelsConfidence)
	}
	if m.FieldCleared(therapysession.FieldMoodScore) {
		fields = append(fields, therapysession.FieldMoodScore)
	}
	if m.FieldCleared(therapysession.FieldMoodConfidence) {
		fields = append(fields, therapysession.FieldMoodConfidence)
	}
	if m.FieldCleared(therapysession.FieldMoodRationale) {
		fields = append(fields, therapysession.FieldMoodRationale)
	}
	if m.FieldCleared(therapysession.FieldMoodIndicators) {
		fields = append(fields, therapysession.FieldMoodIndicators)
	}
	if m.FieldCleared(therapysession.FieldEmotionalTone) {
		fields = append(fields, therapysession.FieldEmotionalTone)
	}
	if m.FieldCleared(therapysession.FieldTopics) {
		fields = append(fields, therapysession.FieldTopics)
	}
	if m.FieldCleared(therapysession.FieldActionItems) {
		fields = append(fields, therapysession.FieldActionItems)
	}
	if m.FieldCleared(therapysession.FieldTechnique) {
		fields = append(fields, therapysession.FieldTechnique)
	}
	if m.FieldCleared(therapysession.FieldSummary) {
		fields = append(fields, therapysession.FieldSummary)
	}
	if m.FieldCleared(therapysession.FieldActionItemsSummary) {
		fields = append(fields, therapysession.FieldActionItemsSummary)
	}
	if m.FieldCleared(therapysession.FieldHasBreakthrough) {
		fields = append(fields, therapysession.FieldHasBreakthrough)
	}
	if m.FieldCleared(therapysession.FieldBreakthroughLabel) {
		fields = append(fields, therapysession.FieldBreakthroughLabel)
	}
	if m.FieldCleared(therapysession.FieldBreakthroughData) {
		fields = append(fields, therapysession.FieldBreakthroughData)
	}
	if m.FieldCleared(therapysession.FieldMoodAnalyzedAt) {
		fields = append(fields, therapysession.FieldMoodAnalyzedAt)
	}
	if m.FieldCleared(therapysession.FieldTopicsExtractedAt) {
		fields = append(fields, therapysession.FieldTopicsExtractedAt)
	}
	if m.FieldCleared(therapysession.FieldBreakthroughDetectedAt) {
		fields = append(fields, therapysession.FieldBreakthroughDetectedAt)
	}
	if m.FieldCleared(therapysession.FieldWave1CompletedAt) {
		fields = append(fields, therapysession.FieldWave1CompletedAt)
	}
	if m.FieldCleared(therapysession.FieldDeepAnalysis) {
		fields = append(fields, therapysession.FieldDeepAnalysis)
	}
	if m.FieldCleared(therapysession.FieldAnalysisConfidence) {
		fields = append(fields, therapysession.FieldAnalysisConfidence)
	}
	if m.FieldCleared(therapysession.FieldProseAnalysis) {
		fields = append(fields, therapysession.FieldProseAnalysis)
	}
	if m.FieldCleared(therapysession.FieldDeepAnalyzedAt) {
		fields = append(fields, therapysession.FieldDeepAnalyzedAt)
	}
	if m.FieldCleared(therapysession.FieldProseGeneratedAt) {
		fields = append(fields, therapysession.FieldProseGeneratedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TherapySessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TherapySessionMutation) ClearField(name string) error {
	switch name {
	case therapysession.FieldAnalysisStatus:
		m.ClearAnalysisStatus()
		return nil
	case therapysession.FieldPodID:
		m.ClearPodID()
		return nil
	case therapysession.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case therapysession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case therapysession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case therapysession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case therapysession.FieldSpeakerLabels:
		m.ClearSpeakerLabels()
		return nil
	case therapysession.FieldLabelsConfidence:
		m.ClearLabelsConfidence()
		return nil
	case therapysession.FieldMoodScore:
		m.ClearMoodScore()
		return nil
	case therapysession.FieldMoodConfidence:
		m.ClearMoodConfidence()
		return nil
	case therapysession.FieldMoodRationale:
		m.ClearMoodRationale()
		return nil
	case therapysession.FieldMoodIndicators:
		m.ClearMoodIndicators()
		return nil
	case therapysession.FieldEmotionalTone:
		m.ClearEmotionalTone()
		return nil
	case therapysession.FieldTopics:
		m.ClearTopics()
		return nil
	case therapysession.FieldActionItems:
		m.ClearActionItems()
		return nil
	case therapysession.FieldTechnique:
		m.ClearTechnique()
		return nil
	case therapysession.FieldSummary:
		m.ClearSummary()
		return nil
	case therapysession.FieldActionItemsSummary:
		m.ClearActionItemsSummary()
		return nil
	case therapysession.FieldHasBreakthrough:
		m.ClearHasBreakthrough()
		return nil
	case therapysession.FieldBreakthroughLabel:
		m.ClearBreakthroughLabel()
		return nil
	case therapysession.FieldBreakthroughData:
		m.ClearBreakthroughData()
		return nil
	case therapysession.FieldMoodAnalyzedAt:
		m.ClearMoodAnalyzedAt()
		return nil
	case therapysession.FieldTopicsExtractedAt:
		m.ClearTopicsExtractedAt()
		return nil
	case therapysession.FieldBreakthroughDetectedAt:
		m.ClearBreakthroughDetectedAt()
		return nil
	case therapysession.FieldWave1CompletedAt:
		m.ClearWave1CompletedAt()
		return nil
	case therapysession.FieldDeepAnalysis:
		m.ClearDeepAnalysis()
		return nil
	case therapysession.FieldAnalysisConfidence:
		m.ClearAnalysisConfidence()
		return nil
	case therapysession.FieldProseAnalysis:
		m.ClearProseAnalysis()
		return nil
	case therapysession.FieldDeepAnalyzedAt:
		m.ClearDeepAnalyzedAt()
		return nil
	case therapysession.FieldProseGeneratedAt:
		m.ClearProseGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown TherapySession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TherapySessionMutation) ResetField(name string) error {
	switch name {
	case therapysession.FieldPatientID:
		m.ResetPatientID()
		return nil
	case therapysession.FieldSessionDate:
		m.ResetSessionDate()
		return nil
	case therapysession.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case therapysession.FieldTranscript:
		m.ResetTranscript()
		return nil
	case therapysession.FieldProcessingStatus:
		m.ResetProcessingStatus()
		return nil
	case therapysession.FieldAnalysisStatus:
		m.ResetAnalysisStatus()
		return nil
	case therapysession.FieldPodID:
		m.ResetPodID()
		return nil
	case therapysession.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case therapysession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case therapysession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case therapysession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case therapysession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case therapysession.FieldSpeakerLabels:
		m.ResetSpeakerLabels()
		return nil
	case therapysession.FieldLabelsConfidence:
		m.ResetLabelsConfidence()
		return nil
	case therapysession.FieldMoodScore:
		m.ResetMoodScore()
		return nil
	case therapysession.FieldMoodConfidence:
		m.ResetMoodConfidence()
		return nil
	case therapysession.FieldMoodRationale:
		m.ResetMoodRationale()
		return nil
	case therapysession.FieldMoodIndicators:
		m.ResetMoodIndicators()
		return nil
	case therapysession.FieldEmotionalTone:
		m.ResetEmotionalTone()
		return nil
	case therapysession.FieldTopics:
		m.ResetTopics()
		return nil
	case therapysession.FieldActionItems:
		m.ResetActionItems()
		return nil
	case therapysession.FieldTechnique:
		m.ResetTechnique()
		return nil
	case therapysession.FieldSummary:
		m.ResetSummary()
		return nil
	case therapysession.FieldActionItemsSummary:
		m.ResetActionItemsSummary()
		return nil
	case therapysession.FieldHasBreakthrough:
		m.ResetHasBreakthrough()
		return nil
	case therapysession.FieldBreakthroughLabel:
		m.ResetBreakthroughLabel()
		return nil
	case therapysession.FieldBreakthroughData:
		m.ResetBreakthroughData()
		return nil
	case therapysession.FieldMoodAnalyzedAt:
		m.ResetMoodAnalyzedAt()
		return nil
	case therapysession.FieldTopicsExtractedAt:
		m.ResetTopicsExtractedAt()
		return nil
	case therapysession.FieldBreakthroughDetectedAt:
		m.ResetBreakthroughDetectedAt()
		return nil
	case therapysession.FieldWave1CompletedAt:
		m.ResetWave1CompletedAt()
		return nil
	case therapysession.FieldDeepAnalysis:
		m.ResetDeepAnalysis()
		return nil
	case therapysession.FieldAnalysisConfidence:
		m.ResetAnalysisConfidence()
		return nil
	case therapysession.FieldProseAnalysis:
		m.ResetProseAnalysis()
		return nil
	case therapysession.FieldDeepAnalyzedAt:
		m.ResetDeepAnalyzedAt()
		return nil
	case therapysession.FieldProseGeneratedAt:
		m.ResetProseGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown TherapySession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TherapySessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.patient != nil {
		edges = append(edges, therapysession.EdgePatient)
	}
	if m.processing_logs != nil {
		edges = append(edges, therapysession.EdgeProcessingLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TherapySessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case therapysession.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case therapysession.EdgeProcessingLogs:
		ids := make([]ent.Value, 0, len(m.processing_logs))
		for id := range m.processing_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TherapySessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedprocessing_logs != nil {
		edges = append(edges, therapysession.EdgeProcessingLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TherapySessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case therapysession.EdgeProcessingLogs:
		ids := make([]ent.Value, 0, len(m.removedprocessing_logs))
		for id := range m.removedprocessing_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TherapySessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpatient {
		edges = append(edges, therapysession.EdgePatient)
	}
	if m.clearedprocessing_logs {
		edges = append(edges, therapysession.EdgeProcessingLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TherapySessionMutation) EdgeCleared(name string) bool {
	switch name {
	case therapysession.EdgePatient:
		return m.clearedpatient
	case therapysession.EdgeProcessingLogs:
		return m.clearedprocessing_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TherapySessionMutation) ClearEdge(name string) error {
	switch name {
	case therapysession.EdgePatient:
		m.ClearPatient()
		return nil
	}
	return fmt.Errorf("unknown TherapySession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TherapySessionMutation) ResetEdge(name string) error {
	switch name {
	case therapysession.EdgePatient:
		m.ResetPatient()
		return nil
	case therapysession.EdgeProcessingLogs:
		m.ResetProcessingLogs()
		return nil
	}
	return fmt.Errorf("unknown TherapySession edge %s", name)
}
