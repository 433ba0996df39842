package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProcessingLog holds the schema definition for the ProcessingLog entity.
// One row per wave attempt per session. Retained indefinitely.
//
// The wave column is deliberately unconstrained: new waves are added by
// deploying code, not by migrating the database. Consumers must treat it
// as an open string set.
type ProcessingLog struct {
	ent.Schema
}

// Fields of the ProcessingLog.
func (ProcessingLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable(),
		field.String("wave").
			Comment("mood, topics, breakthrough, action_summary, deep, prose, your_journey, session_bridge, speaker_label, ..."),
		field.Enum("status").
			Values("started", "completed", "failed", "stopped").
			Default("started"),
		field.Int("retry_count").
			Default(0),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("null iff status=started"),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the ProcessingLog.
func (ProcessingLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", TherapySession.Type).
			Ref("processing_logs").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ProcessingLog. The partial unique index on
// (session_id, wave) WHERE status = 'started' cannot be expressed here;
// it lives in the init migration and in CreatePartialUniqueIndexes for
// ent-built schemas.
func (ProcessingLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "wave", "started_at"),
		index.Fields("status"),
	}
}
