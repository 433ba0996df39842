// Code generated by ent, DO NOT EDIT.

package patient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the patient type in the database.
	Label = "patient"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "patient_id"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSessions holds the string denoting the sessions edge name in mutations.
	EdgeSessions = "sessions"
	// EdgeJourneyVersions holds the string denoting the journey_versions edge name in mutations.
	EdgeJourneyVersions = "journey_versions"
	// EdgeBridgeVersions holds the string denoting the bridge_versions edge name in mutations.
	EdgeBridgeVersions = "bridge_versions"
	// EdgePipelineEvents holds the string denoting the pipeline_events edge name in mutations.
	EdgePipelineEvents = "pipeline_events"
	// TherapySessionFieldID holds the string denoting the ID field of the TherapySession.
	TherapySessionFieldID = "session_id"
	// JourneyVersionFieldID holds the string denoting the ID field of the JourneyVersion.
	JourneyVersionFieldID = "id"
	// BridgeVersionFieldID holds the string denoting the ID field of the BridgeVersion.
	BridgeVersionFieldID = "id"
	// PipelineEventFieldID holds the string denoting the ID field of the PipelineEvent.
	PipelineEventFieldID = "id"
	// Table holds the table name of the patient in the database.
	Table = "patients"
	// SessionsTable is the table that holds the sessions relation/edge.
	SessionsTable = "therapy_sessions"
	// SessionsInverseTable is the table name for the TherapySession entity.
	// It exists in this package in order to avoid circular dependency with the "therapysession" package.
	SessionsInverseTable = "therapy_sessions"
	// SessionsColumn is the table column denoting the sessions relation/edge.
	SessionsColumn = "patient_id"
	// JourneyVersionsTable is the table that holds the journey_versions relation/edge.
	JourneyVersionsTable = "journey_versions"
	// JourneyVersionsInverseTable is the table name for the JourneyVersion entity.
	// It exists in this package in order to avoid circular dependency with the "journeyversion" package.
	JourneyVersionsInverseTable = "journey_versions"
	// JourneyVersionsColumn is the table column denoting the journey_versions relation/edge.
	JourneyVersionsColumn = "patient_id"
	// BridgeVersionsTable is the table that holds the bridge_versions relation/edge.
	BridgeVersionsTable = "bridge_versions"
	// BridgeVersionsInverseTable is the table name for the BridgeVersion entity.
	// It exists in this package in order to avoid circular dependency with the "bridgeversion" package.
	BridgeVersionsInverseTable = "bridge_versions"
	// BridgeVersionsColumn is the table column denoting the bridge_versions relation/edge.
	BridgeVersionsColumn = "patient_id"
	// PipelineEventsTable is the table that holds the pipeline_events relation/edge.
	PipelineEventsTable = "pipeline_events"
	// PipelineEventsInverseTable is the table name for the PipelineEvent entity.
	// It exists in this package in order to avoid circular dependency with the "pipelineevent" package.
	PipelineEventsInverseTable = "pipeline_events"
	// PipelineEventsColumn is the table column denoting the pipeline_events relation/edge.
	PipelineEventsColumn = "patient_id"
)

// Columns holds all SQL columns for patient fields.
var Columns = []string{
	FieldID,
	FieldDisplayName,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Patient queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionsCount orders the results by sessions count.
func BySessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSessionsStep(), opts...)
	}
}

// BySessions orders the results by sessions terms.
func BySessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJourneyVersionsCount orders the results by journey_versions count.
func ByJourneyVersionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJourneyVersionsStep(), opts...)
	}
}

// ByJourneyVersions orders the results by journey_versions terms.
func ByJourneyVersions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJourneyVersionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBridgeVersionsCount orders the results by bridge_versions count.
func ByBridgeVersionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBridgeVersionsStep(), opts...)
	}
}

// ByBridgeVersions orders the results by bridge_versions terms.
func ByBridgeVersions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBridgeVersionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPipelineEventsCount orders the results by pipeline_events count.
func ByPipelineEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPipelineEventsStep(), opts...)
	}
}

// ByPipelineEvents orders the results by pipeline_events terms.
func ByPipelineEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPipelineEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionsInverseTable, TherapySessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
	)
}
func newJourneyVersionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JourneyVersionsInverseTable, JourneyVersionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JourneyVersionsTable, JourneyVersionsColumn),
	)
}
func newBridgeVersionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BridgeVersionsInverseTable, BridgeVersionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BridgeVersionsTable, BridgeVersionsColumn),
	)
}
func newPipelineEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PipelineEventsInverseTable, PipelineEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PipelineEventsTable, PipelineEventsColumn),
	)
}
