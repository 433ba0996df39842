package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineEvent holds the schema definition for the PipelineEvent entity.
// Durable progress events for SSE delivery. The scheduler frequently runs
// in a different process from the HTTP server, so events MUST go through
// the shared store — in-memory channels do not cross that boundary.
//
// Rows are append-only; the sweeper deletes rows older than the TTL.
type PipelineEvent struct {
	ent.Schema
}

// Fields of the PipelineEvent.
func (PipelineEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("patient_id").
			Immutable(),
		field.Enum("phase").
			Values("TRANSCRIPT", "WAVE1", "WAVE2", "WAVE3").
			Immutable(),
		field.String("event_type").
			Immutable().
			Comment("e.g. wave.started, wave.completed, wave.failed"),
		field.String("session_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("status").
			Immutable(),
		field.JSON("details", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Bool("consumed").
			Default(false).
			Comment("Flipped after delivery to all subscribers up to a watermark"),
	}
}

// Edges of the PipelineEvent.
func (PipelineEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("pipeline_events").
			Field("patient_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PipelineEvent.
func (PipelineEvent) Indexes() []ent.Index {
	return []ent.Index{
		// SSE watermark query: patient events with id > since_id
		index.Fields("patient_id", "created_at"),
		index.Fields("created_at"),
	}
}
