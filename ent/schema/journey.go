package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PatientJourney holds the latest Journey roadmap document, one row per
// patient. History lives in JourneyVersion; this row always points at the
// highest version.
type PatientJourney struct {
	ent.Schema
}

// Fields of the PatientJourney.
func (PatientJourney) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("patient_id").
			Unique().
			Immutable(),
		field.JSON("data", map[string]interface{}{}),
		field.Int("version").
			Comment("Version this row mirrors; equals max(journey_versions.version)"),
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

// The patient link is not modeled as an ent edge: the row's own id IS
// the patient id, and ent cannot bind an edge to the entity id column.
// The migration enforces the foreign key at the database level.

// JourneyVersion holds the append-only Journey history with a per-patient
// monotonic version integer starting at 1.
type JourneyVersion struct {
	ent.Schema
}

// Fields of the JourneyVersion.
func (JourneyVersion) Fields() []ent.Field {
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

// Edges of the JourneyVersion.
func (JourneyVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("journey_versions").
			Field("patient_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the JourneyVersion.
func (JourneyVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "version").
			Unique(),
	}
}
