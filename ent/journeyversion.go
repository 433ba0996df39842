// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/attune-health/attune/ent/journeyversion"
	"github.com/attune-health/attune/ent/patient"
)

// JourneyVersion is the model entity for the JourneyVersion schema.
type JourneyVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID string `json:"patient_id,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Data holds the value of the "data" field.
	Data map[string]interface{} `json:"data,omitempty"`
	// MetadataID holds the value of the "metadata_id" field.
	MetadataID *int `json:"metadata_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JourneyVersionQuery when eager-loading is set.
	Edges        JourneyVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JourneyVersionEdges holds the relations/edges for other nodes in the graph.
type JourneyVersionEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JourneyVersionEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JourneyVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case journeyversion.FieldData:
			values[i] = new([]byte)
		case journeyversion.FieldID, journeyversion.FieldVersion, journeyversion.FieldMetadataID:
			values[i] = new(sql.NullInt64)
		case journeyversion.FieldPatientID:
			values[i] = new(sql.NullString)
		case journeyversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JourneyVersion fields.
func (_m *JourneyVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case journeyversion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case journeyversion.FieldPatientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value.Valid {
				_m.PatientID = value.String
			}
		case journeyversion.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case journeyversion.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case journeyversion.FieldMetadataID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field metadata_id", values[i])
			} else if value.Valid {
				_m.MetadataID = new(int)
				*_m.MetadataID = int(value.Int64)
			}
		case journeyversion.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the JourneyVersion.
// This includes values selected through modifiers, order, etc.
func (_m *JourneyVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the JourneyVersion entity.
func (_m *JourneyVersion) QueryPatient() *PatientQuery {
	return NewJourneyVersionClient(_m.config).QueryPatient(_m)
}

// Update returns a builder for updating this JourneyVersion.
// Note that you need to call JourneyVersion.Unwrap() before calling this method if this JourneyVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JourneyVersion) Update() *JourneyVersionUpdateOne {
	return NewJourneyVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JourneyVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JourneyVersion) Unwrap() *JourneyVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JourneyVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JourneyVersion) String() string {
	var builder strings.Builder
	builder.WriteString("JourneyVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("patient_id=")
	builder.WriteString(_m.PatientID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	if v := _m.MetadataID; v != nil {
		builder.WriteString("metadata_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// JourneyVersions is a parsable slice of JourneyVersion.
type JourneyVersions []*JourneyVersion
