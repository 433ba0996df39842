// Code generated by ent, DO NOT EDIT.

package generationmetadata

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/attune-health/attune/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldLTE(FieldID, id))
}

// JourneyVersionID applies equality check predicate on the "journey_version_id" field. It's identical to JourneyVersionIDEQ.
func JourneyVersionID(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEQ(FieldJourneyVersionID, v))
}

// BridgeVersionID applies equality check predicate on the "bridge_version_id" field. It's identical to BridgeVersionIDEQ.
func BridgeVersionID(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEQ(FieldBridgeVersionID, v))
}

// SessionsAnalyzed applies equality check predicate on the "sessions_analyzed" field. It's identical to SessionsAnalyzedEQ.
func SessionsAnalyzed(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEQ(FieldSessionsAnalyzed, v))
}

// TotalSessions applies equality check predicate on the "total_sessions" field. It's identical to TotalSessionsEQ.
func TotalSessions(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEQ(FieldTotalSessions, v))
}

// ModelUsed applies equality check predicate on the "model_used" field. It's identical to ModelUsedEQ.
func ModelUsed(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEQ(FieldModelUsed, v))
}

// CompactionStrategy applies equality check predicate on the "compaction_strategy" field. It's identical to CompactionStrategyEQ.
func CompactionStrategy(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEQ(FieldCompactionStrategy, v))
}

// GenerationTimestamp applies equality check predicate on the "generation_timestamp" field. It's identical to GenerationTimestampEQ.
func GenerationTimestamp(v time.Time) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEQ(FieldGenerationTimestamp, v))
}

// GenerationDurationMs applies equality check predicate on the "generation_duration_ms" field. It's identical to GenerationDurationMsEQ.
func GenerationDurationMs(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEQ(FieldGenerationDurationMs, v))
}

// JourneyVersionIDEQ applies the EQ predicate on the "journey_version_id" field.
func JourneyVersionIDEQ(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEQ(FieldJourneyVersionID, v))
}

// JourneyVersionIDNEQ applies the NEQ predicate on the "journey_version_id" field.
func JourneyVersionIDNEQ(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNEQ(FieldJourneyVersionID, v))
}

// JourneyVersionIDIn applies the In predicate on the "journey_version_id" field.
func JourneyVersionIDIn(vs ...int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldIn(FieldJourneyVersionID, vs...))
}

// JourneyVersionIDNotIn applies the NotIn predicate on the "journey_version_id" field.
func JourneyVersionIDNotIn(vs ...int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNotIn(FieldJourneyVersionID, vs...))
}

// JourneyVersionIDGT applies the GT predicate on the "journey_version_id" field.
func JourneyVersionIDGT(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldGT(FieldJourneyVersionID, v))
}

// JourneyVersionIDGTE applies the GTE predicate on the "journey_version_id" field.
func JourneyVersionIDGTE(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldGTE(FieldJourneyVersionID, v))
}

// JourneyVersionIDLT applies the LT predicate on the "journey_version_id" field.
func JourneyVersionIDLT(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldLT(FieldJourneyVersionID, v))
}

// JourneyVersionIDLTE applies the LTE predicate on the "journey_version_id" field.
func JourneyVersionIDLTE(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldLTE(FieldJourneyVersionID, v))
}

// JourneyVersionIDIsNil applies the IsNil predicate on the "journey_version_id" field.
func JourneyVersionIDIsNil() predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldIsNull(FieldJourneyVersionID))
}

// JourneyVersionIDNotNil applies the NotNil predicate on the "journey_version_id" field.
func JourneyVersionIDNotNil() predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNotNull(FieldJourneyVersionID))
}

// BridgeVersionIDEQ applies the EQ predicate on the "bridge_version_id" field.
func BridgeVersionIDEQ(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEQ(FieldBridgeVersionID, v))
}

// BridgeVersionIDNEQ applies the NEQ predicate on the "bridge_version_id" field.
func BridgeVersionIDNEQ(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNEQ(FieldBridgeVersionID, v))
}

// BridgeVersionIDIn applies the In predicate on the "bridge_version_id" field.
func BridgeVersionIDIn(vs ...int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldIn(FieldBridgeVersionID, vs...))
}

// BridgeVersionIDNotIn applies the NotIn predicate on the "bridge_version_id" field.
func BridgeVersionIDNotIn(vs ...int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNotIn(FieldBridgeVersionID, vs...))
}

// BridgeVersionIDGT applies the GT predicate on the "bridge_version_id" field.
func BridgeVersionIDGT(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldGT(FieldBridgeVersionID, v))
}

// BridgeVersionIDGTE applies the GTE predicate on the "bridge_version_id" field.
func BridgeVersionIDGTE(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldGTE(FieldBridgeVersionID, v))
}

// BridgeVersionIDLT applies the LT predicate on the "bridge_version_id" field.
func BridgeVersionIDLT(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldLT(FieldBridgeVersionID, v))
}

// BridgeVersionIDLTE applies the LTE predicate on the "bridge_version_id" field.
func BridgeVersionIDLTE(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldLTE(FieldBridgeVersionID, v))
}

// BridgeVersionIDIsNil applies the IsNil predicate on the "bridge_version_id" field.
func BridgeVersionIDIsNil() predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldIsNull(FieldBridgeVersionID))
}

// BridgeVersionIDNotNil applies the NotNil predicate on the "bridge_version_id" field.
func BridgeVersionIDNotNil() predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNotNull(FieldBridgeVersionID))
}

// SessionsAnalyzedEQ applies the EQ predicate on the "sessions_analyzed" field.
func SessionsAnalyzedEQ(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEQ(FieldSessionsAnalyzed, v))
}

// SessionsAnalyzedNEQ applies the NEQ predicate on the "sessions_analyzed" field.
func SessionsAnalyzedNEQ(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNEQ(FieldSessionsAnalyzed, v))
}

// SessionsAnalyzedIn applies the In predicate on the "sessions_analyzed" field.
func SessionsAnalyzedIn(vs ...int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldIn(FieldSessionsAnalyzed, vs...))
}

// SessionsAnalyzedNotIn applies the NotIn predicate on the "sessions_analyzed" field.
func SessionsAnalyzedNotIn(vs ...int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNotIn(FieldSessionsAnalyzed, vs...))
}

// SessionsAnalyzedGT applies the GT predicate on the "sessions_analyzed" field.
func SessionsAnalyzedGT(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldGT(FieldSessionsAnalyzed, v))
}

// SessionsAnalyzedGTE applies the GTE predicate on the "sessions_analyzed" field.
func SessionsAnalyzedGTE(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldGTE(FieldSessionsAnalyzed, v))
}

// SessionsAnalyzedLT applies the LT predicate on the "sessions_analyzed" field.
func SessionsAnalyzedLT(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldLT(FieldSessionsAnalyzed, v))
}

// SessionsAnalyzedLTE applies the LTE predicate on the "sessions_analyzed" field.
func SessionsAnalyzedLTE(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldLTE(FieldSessionsAnalyzed, v))
}

// TotalSessionsEQ applies the EQ predicate on the "total_sessions" field.
func TotalSessionsEQ(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEQ(FieldTotalSessions, v))
}

// TotalSessionsNEQ applies the NEQ predicate on the "total_sessions" field.
func TotalSessionsNEQ(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNEQ(FieldTotalSessions, v))
}

// TotalSessionsIn applies the In predicate on the "total_sessions" field.
func TotalSessionsIn(vs ...int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldIn(FieldTotalSessions, vs...))
}

// TotalSessionsNotIn applies the NotIn predicate on the "total_sessions" field.
func TotalSessionsNotIn(vs ...int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNotIn(FieldTotalSessions, vs...))
}

// TotalSessionsGT applies the GT predicate on the "total_sessions" field.
func TotalSessionsGT(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldGT(FieldTotalSessions, v))
}

// TotalSessionsGTE applies the GTE predicate on the "total_sessions" field.
func TotalSessionsGTE(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldGTE(FieldTotalSessions, v))
}

// TotalSessionsLT applies the LT predicate on the "total_sessions" field.
func TotalSessionsLT(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldLT(FieldTotalSessions, v))
}

// TotalSessionsLTE applies the LTE predicate on the "total_sessions" field.
func TotalSessionsLTE(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldLTE(FieldTotalSessions, v))
}

// ModelUsedEQ applies the EQ predicate on the "model_used" field.
func ModelUsedEQ(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEQ(FieldModelUsed, v))
}

// ModelUsedNEQ applies the NEQ predicate on the "model_used" field.
func ModelUsedNEQ(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNEQ(FieldModelUsed, v))
}

// ModelUsedIn applies the In predicate on the "model_used" field.
func ModelUsedIn(vs ...string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldIn(FieldModelUsed, vs...))
}

// ModelUsedNotIn applies the NotIn predicate on the "model_used" field.
func ModelUsedNotIn(vs ...string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNotIn(FieldModelUsed, vs...))
}

// ModelUsedGT applies the GT predicate on the "model_used" field.
func ModelUsedGT(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldGT(FieldModelUsed, v))
}

// ModelUsedGTE applies the GTE predicate on the "model_used" field.
func ModelUsedGTE(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldGTE(FieldModelUsed, v))
}

// ModelUsedLT applies the LT predicate on the "model_used" field.
func ModelUsedLT(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldLT(FieldModelUsed, v))
}

// ModelUsedLTE applies the LTE predicate on the "model_used" field.
func ModelUsedLTE(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldLTE(FieldModelUsed, v))
}

// ModelUsedContains applies the Contains predicate on the "model_used" field.
func ModelUsedContains(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldContains(FieldModelUsed, v))
}

// ModelUsedHasPrefix applies the HasPrefix predicate on the "model_used" field.
func ModelUsedHasPrefix(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldHasPrefix(FieldModelUsed, v))
}

// ModelUsedHasSuffix applies the HasSuffix predicate on the "model_used" field.
func ModelUsedHasSuffix(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldHasSuffix(FieldModelUsed, v))
}

// ModelUsedEqualFold applies the EqualFold predicate on the "model_used" field.
func ModelUsedEqualFold(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEqualFold(FieldModelUsed, v))
}

// ModelUsedContainsFold applies the ContainsFold predicate on the "model_used" field.
func ModelUsedContainsFold(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldContainsFold(FieldModelUsed, v))
}

// CompactionStrategyEQ applies the EQ predicate on the "compaction_strategy" field.
func CompactionStrategyEQ(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEQ(FieldCompactionStrategy, v))
}

// CompactionStrategyNEQ applies the NEQ predicate on the "compaction_strategy" field.
func CompactionStrategyNEQ(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNEQ(FieldCompactionStrategy, v))
}

// CompactionStrategyIn applies the In predicate on the "compaction_strategy" field.
func CompactionStrategyIn(vs ...string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldIn(FieldCompactionStrategy, vs...))
}

// CompactionStrategyNotIn applies the NotIn predicate on the "compaction_strategy" field.
func CompactionStrategyNotIn(vs ...string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNotIn(FieldCompactionStrategy, vs...))
}

// CompactionStrategyGT applies the GT predicate on the "compaction_strategy" field.
func CompactionStrategyGT(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldGT(FieldCompactionStrategy, v))
}

// CompactionStrategyGTE applies the GTE predicate on the "compaction_strategy" field.
func CompactionStrategyGTE(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldGTE(FieldCompactionStrategy, v))
}

// CompactionStrategyLT applies the LT predicate on the "compaction_strategy" field.
func CompactionStrategyLT(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldLT(FieldCompactionStrategy, v))
}

// CompactionStrategyLTE applies the LTE predicate on the "compaction_strategy" field.
func CompactionStrategyLTE(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldLTE(FieldCompactionStrategy, v))
}

// CompactionStrategyContains applies the Contains predicate on the "compaction_strategy" field.
func CompactionStrategyContains(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldContains(FieldCompactionStrategy, v))
}

// CompactionStrategyHasPrefix applies the HasPrefix predicate on the "compaction_strategy" field.
func CompactionStrategyHasPrefix(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldHasPrefix(FieldCompactionStrategy, v))
}

// CompactionStrategyHasSuffix applies the HasSuffix predicate on the "compaction_strategy" field.
func CompactionStrategyHasSuffix(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldHasSuffix(FieldCompactionStrategy, v))
}

// CompactionStrategyIsNil applies the IsNil predicate on the "compaction_strategy" field.
func CompactionStrategyIsNil() predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldIsNull(FieldCompactionStrategy))
}

// CompactionStrategyNotNil applies the NotNil predicate on the "compaction_strategy" field.
func CompactionStrategyNotNil() predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNotNull(FieldCompactionStrategy))
}

// CompactionStrategyEqualFold applies the EqualFold predicate on the "compaction_strategy" field.
func CompactionStrategyEqualFold(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEqualFold(FieldCompactionStrategy, v))
}

// CompactionStrategyContainsFold applies the ContainsFold predicate on the "compaction_strategy" field.
func CompactionStrategyContainsFold(v string) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldContainsFold(FieldCompactionStrategy, v))
}

// GenerationTimestampEQ applies the EQ predicate on the "generation_timestamp" field.
func GenerationTimestampEQ(v time.Time) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEQ(FieldGenerationTimestamp, v))
}

// GenerationTimestampNEQ applies the NEQ predicate on the "generation_timestamp" field.
func GenerationTimestampNEQ(v time.Time) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNEQ(FieldGenerationTimestamp, v))
}

// GenerationTimestampIn applies the In predicate on the "generation_timestamp" field.
func GenerationTimestampIn(vs ...time.Time) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldIn(FieldGenerationTimestamp, vs...))
}

// GenerationTimestampNotIn applies the NotIn predicate on the "generation_timestamp" field.
func GenerationTimestampNotIn(vs ...time.Time) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNotIn(FieldGenerationTimestamp, vs...))
}

// GenerationTimestampGT applies the GT predicate on the "generation_timestamp" field.
func GenerationTimestampGT(v time.Time) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldGT(FieldGenerationTimestamp, v))
}

// GenerationTimestampGTE applies the GTE predicate on the "generation_timestamp" field.
func GenerationTimestampGTE(v time.Time) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldGTE(FieldGenerationTimestamp, v))
}

// GenerationTimestampLT applies the LT predicate on the "generation_timestamp" field.
func GenerationTimestampLT(v time.Time) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldLT(FieldGenerationTimestamp, v))
}

// GenerationTimestampLTE applies the LTE predicate on the "generation_timestamp" field.
func GenerationTimestampLTE(v time.Time) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldLTE(FieldGenerationTimestamp, v))
}

// GenerationDurationMsEQ applies the EQ predicate on the "generation_duration_ms" field.
func GenerationDurationMsEQ(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldEQ(FieldGenerationDurationMs, v))
}

// GenerationDurationMsNEQ applies the NEQ predicate on the "generation_duration_ms" field.
func GenerationDurationMsNEQ(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNEQ(FieldGenerationDurationMs, v))
}

// GenerationDurationMsIn applies the In predicate on the "generation_duration_ms" field.
func GenerationDurationMsIn(vs ...int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldIn(FieldGenerationDurationMs, vs...))
}

// GenerationDurationMsNotIn applies the NotIn predicate on the "generation_duration_ms" field.
func GenerationDurationMsNotIn(vs ...int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldNotIn(FieldGenerationDurationMs, vs...))
}

// GenerationDurationMsGT applies the GT predicate on the "generation_duration_ms" field.
func GenerationDurationMsGT(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldGT(FieldGenerationDurationMs, v))
}

// GenerationDurationMsGTE applies the GTE predicate on the "generation_duration_ms" field.
func GenerationDurationMsGTE(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldGTE(FieldGenerationDurationMs, v))
}

// GenerationDurationMsLT applies the LT predicate on the "generation_duration_ms" field.
func GenerationDurationMsLT(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldLT(FieldGenerationDurationMs, v))
}

// GenerationDurationMsLTE applies the LTE predicate on the "generation_duration_ms" field.
func GenerationDurationMsLTE(v int) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.FieldLTE(FieldGenerationDurationMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GenerationMetadata) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GenerationMetadata) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GenerationMetadata) predicate.GenerationMetadata {
	return predicate.GenerationMetadata(sql.NotPredicates(p))
}
