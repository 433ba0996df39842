// Code generated by ent, DO NOT EDIT.

package generationmetadata

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the generationmetadata type in the database.
	Label = "generation_metadata"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJourneyVersionID holds the string denoting the journey_version_id field in the database.
	FieldJourneyVersionID = "journey_version_id"
	// FieldBridgeVersionID holds the string denoting the bridge_version_id field in the database.
	FieldBridgeVersionID = "bridge_version_id"
	// FieldSessionsAnalyzed holds the string denoting the sessions_analyzed field in the database.
	FieldSessionsAnalyzed = "sessions_analyzed"
	// FieldTotalSessions holds the string denoting the total_sessions field in the database.
	FieldTotalSessions = "total_sessions"
	// FieldModelUsed holds the string denoting the model_used field in the database.
	FieldModelUsed = "model_used"
	// FieldCompactionStrategy holds the string denoting the compaction_strategy field in the database.
	FieldCompactionStrategy = "compaction_strategy"
	// FieldGenerationTimestamp holds the string denoting the generation_timestamp field in the database.
	FieldGenerationTimestamp = "generation_timestamp"
	// FieldGenerationDurationMs holds the string denoting the generation_duration_ms field in the database.
	FieldGenerationDurationMs = "generation_duration_ms"
	// Table holds the table name of the generationmetadata in the database.
	Table = "generation_metadata"
)

// Columns holds all SQL columns for generationmetadata fields.
var Columns = []string{
	FieldID,
	FieldJourneyVersionID,
	FieldBridgeVersionID,
	FieldSessionsAnalyzed,
	FieldTotalSessions,
	FieldModelUsed,
	FieldCompactionStrategy,
	FieldGenerationTimestamp,
	FieldGenerationDurationMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultGenerationTimestamp holds the default value on creation for the "generation_timestamp" field.
	DefaultGenerationTimestamp func() time.Time
)

// OrderOption defines the ordering options for the GenerationMetadata queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJourneyVersionID orders the results by the journey_version_id field.
func ByJourneyVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJourneyVersionID, opts...).ToFunc()
}

// ByBridgeVersionID orders the results by the bridge_version_id field.
func ByBridgeVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBridgeVersionID, opts...).ToFunc()
}

// BySessionsAnalyzed orders the results by the sessions_analyzed field.
func BySessionsAnalyzed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionsAnalyzed, opts...).ToFunc()
}

// ByTotalSessions orders the results by the total_sessions field.
func ByTotalSessions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalSessions, opts...).ToFunc()
}

// ByModelUsed orders the results by the model_used field.
func ByModelUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelUsed, opts...).ToFunc()
}

// ByCompactionStrategy orders the results by the compaction_strategy field.
func ByCompactionStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompactionStrategy, opts...).ToFunc()
}

// ByGenerationTimestamp orders the results by the generation_timestamp field.
func ByGenerationTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerationTimestamp, opts...).ToFunc()
}

// ByGenerationDurationMs orders the results by the generation_duration_ms field.
func ByGenerationDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerationDurationMs, opts...).ToFunc()
}
