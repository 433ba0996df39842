// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/attune-health/attune/ent/generationmetadata"
)

// GenerationMetadata is the model entity for the GenerationMetadata schema.
type GenerationMetadata struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// JourneyVersionID holds the value of the "journey_version_id" field.
	JourneyVersionID *int `json:"journey_version_id,omitempty"`
	// BridgeVersionID holds the value of the "bridge_version_id" field.
	BridgeVersionID *int `json:"bridge_version_id,omitempty"`
	// SessionsAnalyzed holds the value of the "sessions_analyzed" field.
	SessionsAnalyzed int `json:"sessions_analyzed,omitempty"`
	// TotalSessions holds the value of the "total_sessions" field.
	TotalSessions int `json:"total_sessions,omitempty"`
	// ModelUsed holds the value of the "model_used" field.
	ModelUsed string `json:"model_used,omitempty"`
	// CompactionStrategy holds the value of the "compaction_strategy" field.
	CompactionStrategy *string `json:"compaction_strategy,omitempty"`
	// GenerationTimestamp holds the value of the "generation_timestamp" field.
	GenerationTimestamp time.Time `json:"generation_timestamp,omitempty"`
	// GenerationDurationMs holds the value of the "generation_duration_ms" field.
	GenerationDurationMs int `json:"generation_duration_ms,omitempty"`
	selectValues         sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GenerationMetadata) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generationmetadata.FieldID, generationmetadata.FieldJourneyVersionID, generationmetadata.FieldBridgeVersionID, generationmetadata.FieldSessionsAnalyzed, generationmetadata.FieldTotalSessions, generationmetadata.FieldGenerationDurationMs:
			values[i] = new(sql.NullInt64)
		case generationmetadata.FieldModelUsed, generationmetadata.FieldCompactionStrategy:
			values[i] = new(sql.NullString)
		case generationmetadata.FieldGenerationTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GenerationMetadata fields.
func (_m *GenerationMetadata) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generationmetadata.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case generationmetadata.FieldJourneyVersionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field journey_version_id", values[i])
			} else if value.Valid {
				_m.JourneyVersionID = new(int)
				*_m.JourneyVersionID = int(value.Int64)
			}
		case generationmetadata.FieldBridgeVersionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bridge_version_id", values[i])
			} else if value.Valid {
				_m.BridgeVersionID = new(int)
				*_m.BridgeVersionID = int(value.Int64)
			}
		case generationmetadata.FieldSessionsAnalyzed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sessions_analyzed", values[i])
			} else if value.Valid {
				_m.SessionsAnalyzed = int(value.Int64)
			}
		case generationmetadata.FieldTotalSessions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_sessions", values[i])
			} else if value.Valid {
				_m.TotalSessions = int(value.Int64)
			}
		case generationmetadata.FieldModelUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_used", values[i])
			} else if value.Valid {
				_m.ModelUsed = value.String
			}
		case generationmetadata.FieldCompactionStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field compaction_strategy", values[i])
			} else if value.Valid {
				_m.CompactionStrategy = new(string)
				*_m.CompactionStrategy = value.String
			}
		case generationmetadata.FieldGenerationTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generation_timestamp", values[i])
			} else if value.Valid {
				_m.GenerationTimestamp = value.Time
			}
		case generationmetadata.FieldGenerationDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field generation_duration_ms", values[i])
			} else if value.Valid {
				_m.GenerationDurationMs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GenerationMetadata.
// This includes values selected through modifiers, order, etc.
func (_m *GenerationMetadata) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GenerationMetadata.
// Note that you need to call GenerationMetadata.Unwrap() before calling this method if this GenerationMetadata
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GenerationMetadata) Update() *GenerationMetadataUpdateOne {
	return NewGenerationMetadataClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GenerationMetadata entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GenerationMetadata) Unwrap() *GenerationMetadata {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GenerationMetadata is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GenerationMetadata) String() string {
	var builder strings.Builder
	builder.WriteString("GenerationMetadata(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.JourneyVersionID; v != nil {
		builder.WriteString("journey_version_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BridgeVersionID; v != nil {
		builder.WriteString("bridge_version_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("sessions_analyzed=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionsAnalyzed))
	builder.WriteString(", ")
	builder.WriteString("total_sessions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalSessions))
	builder.WriteString(", ")
	builder.WriteString("model_used=")
	builder.WriteString(_m.ModelUsed)
	builder.WriteString(", ")
	if v := _m.CompactionStrategy; v != nil {
		builder.WriteString("compaction_strategy=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("generation_timestamp=")
	builder.WriteString(_m.GenerationTimestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("generation_duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.GenerationDurationMs))
	builder.WriteByte(')')
	return builder.String()
}

// GenerationMetadataSlice is a parsable slice of GenerationMetadata.
type GenerationMetadataSlice []*GenerationMetadata
