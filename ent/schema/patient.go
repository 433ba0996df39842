package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Patient holds the schema definition for the Patient entity.
// Patients own sessions, the Journey roadmap, and the Session Bridge.
// Created on first ingest; never deleted by the pipeline.
type Patient struct {
	ent.Schema
}

// Fields of the Patient.
func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("patient_id").
			Unique().
			Immutable(),
		field.String("display_name").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Patient.
func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sessions", TherapySession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("journey_versions", JourneyVersion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("bridge_versions", BridgeVersion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("pipeline_events", PipelineEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
