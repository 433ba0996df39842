package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TherapySession holds the schema definition for the TherapySession entity.
// One row per ingested session. The scheduler is the sole writer of the
// analysis fields; each wave persists its fields in a single-row update.
type TherapySession struct {
	ent.Schema
}

// Fields of the TherapySession.
func (TherapySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("patient_id").
			Immutable(),
		field.Time("session_date"),
		field.Int("duration_minutes"),
		field.JSON("transcript", []map[string]interface{}{}).
			Comment("Diarized segments: {start, end, speaker_id, text}"),

		// Queue state
		field.Enum("processing_status").
			Values("pending", "running", "completed", "failed", "stopped").
			Default("pending"),
		field.String("analysis_status").
			Optional().
			Nillable().
			Comment("User-visible failure marker; null while healthy"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),

		// Speaker labeling
		field.JSON("speaker_labels", map[string]string{}).
			Optional().
			Comment("Raw speaker IDs mapped to Therapist/Client"),
		field.Float("labels_confidence").
			Optional().
			Nillable(),

		// Wave 1
		field.Float("mood_score").
			Optional().
			Nillable().
			Comment("0..10 snapped to 0.5 steps"),
		field.Float("mood_confidence").
			Optional().
			Nillable(),
		field.Text("mood_rationale").
			Optional().
			Nillable(),
		field.JSON("mood_indicators", []string{}).
			Optional(),
		field.String("emotional_tone").
			Optional().
			Nillable(),
		field.JSON("topics", []string{}).
			Optional().
			Comment("1-2 entries when populated"),
		field.JSON("action_items", []string{}).
			Optional().
			Comment("Exactly 2 entries when populated"),
		field.String("technique").
			Optional().
			Nillable(),
		field.String("summary").
			Optional().
			Nillable().
			Comment("<=150 chars"),
		field.String("action_items_summary").
			Optional().
			Nillable().
			Comment("<=45 chars; null when topics failed"),
		field.Bool("has_breakthrough").
			Optional().
			Nillable(),
		field.String("breakthrough_label").
			Optional().
			Nillable(),
		field.JSON("breakthrough_data", map[string]interface{}{}).
			Optional().
			Comment("null whenever has_breakthrough=false"),
		field.Time("mood_analyzed_at").
			Optional().
			Nillable(),
		field.Time("topics_extracted_at").
			Optional().
			Nillable(),
		field.Time("breakthrough_detected_at").
			Optional().
			Nillable(),
		field.Time("wave1_completed_at").
			Optional().
			Nillable(),

		// Wave 2 — timestamps may only be set after wave1_completed_at
		field.JSON("deep_analysis", map[string]interface{}{}).
			Optional().
			Comment("5 dimensions: progress, insights, skills, relationship, recommendations"),
		field.Float("analysis_confidence").
			Optional().
			Nillable(),
		field.Text("prose_analysis").
			Optional().
			Nillable().
			Comment("500-750 word narrative"),
		field.Time("deep_analyzed_at").
			Optional().
			Nillable(),
		field.Time("prose_generated_at").
			Optional().
			Nillable(),
	}
}

// Edges of the TherapySession.
func (TherapySession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("sessions").
			Field("patient_id").
			Unique().
			Required().
			Immutable(),
		edge.To("processing_logs", ProcessingLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the TherapySession.
func (TherapySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "session_date"),
		index.Fields("processing_status", "created_at"),
	}
}
