package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationMetadata holds provenance for a Journey or Bridge version.
// Polymorphic child: exactly one of journey_version_id / bridge_version_id
// is non-null. The XOR invariant is enforced at the application level in
// MetadataService — two nullable FKs keep per-feature queries to a single
// join.
type GenerationMetadata struct {
	ent.Schema
}

// Fields of the GenerationMetadata.
func (GenerationMetadata) Fields() []ent.Field {
	return []ent.Field{
		field.Int("journey_version_id").
			Optional().
			Nillable(),
		field.Int("bridge_version_id").
			Optional().
			Nillable(),
		field.Int("sessions_analyzed"),
		field.Int("total_sessions"),
		field.String("model_used"),
		field.String("compaction_strategy").
			Optional().
			Nillable(),
		field.Time("generation_timestamp").
			Default(time.Now),
		field.Int("generation_duration_ms"),
	}
}

// Annotations of the GenerationMetadata.
func (GenerationMetadata) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "generation_metadata"},
	}
}

// Indexes of the GenerationMetadata.
func (GenerationMetadata) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("journey_version_id"),
		index.Fields("bridge_version_id"),
	}
}
