package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PatientBridge holds the latest Session Bridge document, one row per
// patient. Mirrors the PatientJourney/JourneyVersion layout.
type PatientBridge struct {
	ent.Schema
}

// Fields of the PatientBridge.
func (PatientBridge) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("patient_id").
			Unique().
			Immutable(),
		field.JSON("data", map[string]interface{}{}),
		field.Int("version"),
		field.Int("metadata_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Like PatientJourney, the patient link stays migration-side: the row id
// is the patient id and cannot double as an edge field.

// BridgeVersion holds the append-only Bridge history.
type BridgeVersion struct {
	ent.Schema
}

// Fields of the BridgeVersion.
func (BridgeVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("patient_id").
			Immutable(),
		field.Int("version").
			Immutable(),
		field.JSON("data", map[string]interface{}{}).
			Immutable(),
		field.Int("metadata_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the BridgeVersion.
func (BridgeVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("bridge_versions").
			Field("patient_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the BridgeVersion.
func (BridgeVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "version").
			Unique(),
	}
}
