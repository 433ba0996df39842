package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationCost holds the schema definition for the GenerationCost entity.
// Append-only ledger of every remote completion call. Token counts are the
// ones reported by the remote response, never estimated.
type GenerationCost struct {
	ent.Schema
}

// Fields of the GenerationCost.
func (GenerationCost) Fields() []ent.Field {
	return []ent.Field{
		field.String("task").
			Immutable(),
		field.String("model").
			Immutable(),
		field.Int("input_tokens").
			Immutable(),
		field.Int("output_tokens").
			Immutable(),
		field.Float("cost_usd").
			Immutable(),
		field.Int("duration_ms").
			Immutable(),
		field.String("session_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("patient_id").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the GenerationCost.
func (GenerationCost) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("patient_id", "created_at"),
		index.Fields("task", "created_at"),
	}
}
