// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/attune-health/attune/ent/patient"
)

// Patient is the model entity for the Patient schema.
type Patient struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName *string `json:"display_name,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientQuery when eager-loading is set.
	Edges        PatientEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientEdges holds the relations/edges for other nodes in the graph.
type PatientEdges struct {
	// Sessions holds the value of the sessions edge.
	Sessions []*TherapySession `json:"sessions,omitempty"`
	// JourneyVersions holds the value of the journey_versions edge.
	JourneyVersions []*JourneyVersion `json:"journey_versions,omitempty"`
	// BridgeVersions holds the value of the bridge_versions edge.
	BridgeVersions []*BridgeVersion `json:"bridge_versions,omitempty"`
	// PipelineEvents holds the value of the pipeline_events edge.
	PipelineEvents []*PipelineEvent `json:"pipeline_events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) SessionsOrErr() ([]*TherapySession, error) {
	if e.loadedTypes[0] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// JourneyVersionsOrErr returns the JourneyVersions value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) JourneyVersionsOrErr() ([]*JourneyVersion, error) {
	if e.loadedTypes[1] {
		return e.JourneyVersions, nil
	}
	return nil, &NotLoadedError{edge: "journey_versions"}
}

// BridgeVersionsOrErr returns the BridgeVersions value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) BridgeVersionsOrErr() ([]*BridgeVersion, error) {
	if e.loadedTypes[2] {
		return e.BridgeVersions, nil
	}
	return nil, &NotLoadedError{edge: "bridge_versions"}
}

// PipelineEventsOrErr returns the PipelineEvents value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) PipelineEventsOrErr() ([]*PipelineEvent, error) {
	if e.loadedTypes[3] {
		return e.PipelineEvents, nil
	}
	return nil, &NotLoadedError{edge: "pipeline_events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Patient) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patient.FieldID, patient.FieldDisplayName:
			values[i] = new(sql.NullString)
		case patient.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Patient fields.
func (_m *Patient) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patient.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case patient.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = new(string)
				*_m.DisplayName = value.String
			}
		case patient.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Patient.
// This includes values selected through modifiers, order, etc.
func (_m *Patient) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySessions queries the "sessions" edge of the Patient entity.
func (_m *Patient) QuerySessions() *TherapySessionQuery {
	return NewPatientClient(_m.config).QuerySessions(_m)
}

// QueryJourneyVersions queries the "journey_versions" edge of the Patient entity.
func (_m *Patient) QueryJourneyVersions() *JourneyVersionQuery {
	return NewPatientClient(_m.config).QueryJourneyVersions(_m)
}

// QueryBridgeVersions queries the "bridge_versions" edge of the Patient entity.
func (_m *Patient) QueryBridgeVersions() *BridgeVersionQuery {
	return NewPatientClient(_m.config).QueryBridgeVersions(_m)
}

// QueryPipelineEvents queries the "pipeline_events" edge of the Patient entity.
func (_m *Patient) QueryPipelineEvents() *PipelineEventQuery {
	return NewPatientClient(_m.config).QueryPipelineEvents(_m)
}

// Update returns a builder for updating this Patient.
// Note that you need to call Patient.Unwrap() before calling this method if this Patient
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Patient) Update() *PatientUpdateOne {
	return NewPatientClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Patient entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Patient) Unwrap() *Patient {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Patient is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Patient) String() string {
	var builder strings.Builder
	builder.WriteString("Patient(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.DisplayName; v != nil {
		builder.WriteString("display_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Patients is a parsable slice of Patient.
type Patients []*Patient
