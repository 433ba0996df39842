// Code generated by ent, DO NOT EDIT.

package therapysession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the therapysession type in the database.
	Label = "therapy_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldSessionDate holds the string denoting the session_date field in the database.
	FieldSessionDate = "session_date"
	// FieldDurationMinutes holds the string denoting the duration_minutes field in the database.
	FieldDurationMinutes = "duration_minutes"
	// FieldTranscript holds the string denoting the transcript field in the database.
	FieldTranscript = "transcript"
	// FieldProcessingStatus holds the string denoting the processing_status field in the database.
	FieldProcessingStatus = "processing_status"
	// FieldAnalysisStatus holds the string denoting the analysis_status field in the database.
	FieldAnalysisStatus = "analysis_status"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldSpeakerLabels holds the string denoting the speaker_labels field in the database.
	FieldSpeakerLabels = "speaker_labels"
	// FieldLabelsConfidence holds the string denoting the labels_confidence field in the database.
	FieldLabelsConfidence = "labels_confidence"
	// FieldMoodScore holds the string denoting the mood_score field in the database.
	FieldMoodScore = "mood_score"
	// FieldMoodConfidence holds the string denoting the mood_confidence field in the database.
	FieldMoodConfidence = "mood_confidence"
	// FieldMoodRationale holds the string denoting the mood_rationale field in the database.
	FieldMoodRationale = "mood_rationale"
	// FieldMoodIndicators holds the string denoting the mood_indicators field in the database.
	FieldMoodIndicators = "mood_indicators"
	// FieldEmotionalTone holds the string denoting the emotional_tone field in the database.
	FieldEmotionalTone = "emotional_tone"
	// FieldTopics holds the string denoting the topics field in the database.
	FieldTopics = "topics"
	// FieldActionItems holds the string denoting the action_items field in the database.
	FieldActionItems = "action_items"
	// FieldTechnique holds the string denoting the technique field in the database.
	FieldTechnique = "technique"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldActionItemsSummary holds the string denoting the action_items_summary field in the database.
	FieldActionItemsSummary = "action_items_summary"
	// FieldHasBreakthrough holds the string denoting the has_breakthrough field in the database.
	FieldHasBreakthrough = "has_breakthrough"
	// FieldBreakthroughLabel holds the string denoting the breakthrough_label field in the database.
	FieldBreakthroughLabel = "breakthrough_label"
	// FieldBreakthroughData holds the string denoting the breakthrough_data field in the database.
	FieldBreakthroughData = "breakthrough_data"
	// FieldMoodAnalyzedAt holds the string denoting the mood_analyzed_at field in the database.
	FieldMoodAnalyzedAt = "mood_analyzed_at"
	// FieldTopicsExtractedAt holds the string denoting the topics_extracted_at field in the database.
	FieldTopicsExtractedAt = "topics_extracted_at"
	// FieldBreakthroughDetectedAt holds the string denoting the breakthrough_detected_at field in the database.
	FieldBreakthroughDetectedAt = "breakthrough_detected_at"
	// FieldWave1CompletedAt holds the string denoting the wave1_completed_at field in the database.
	FieldWave1CompletedAt = "wave1_completed_at"
	// FieldDeepAnalysis holds the string denoting the deep_analysis field in the database.
	FieldDeepAnalysis = "deep_analysis"
	// FieldAnalysisConfidence holds the string denoting the analysis_confidence field in the database.
	FieldAnalysisConfidence = "analysis_confidence"
	// FieldProseAnalysis holds the string denoting the prose_analysis field in the database.
	FieldProseAnalysis = "prose_analysis"
	// FieldDeepAnalyzedAt holds the string denoting the deep_analyzed_at field in the database.
	FieldDeepAnalyzedAt = "deep_analyzed_at"
	// FieldProseGeneratedAt holds the string denoting the prose_generated_at field in the database.
	FieldProseGeneratedAt = "prose_generated_at"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// EdgeProcessingLogs holds the string denoting the processing_logs edge name in mutations.
	EdgeProcessingLogs = "processing_logs"
	// PatientFieldID holds the string denoting the ID field of the Patient.
	PatientFieldID = "patient_id"
	// ProcessingLogFieldID holds the string denoting the ID field of the ProcessingLog.
	ProcessingLogFieldID = "id"
	// Table holds the table name of the therapysession in the database.
	Table = "therapy_sessions"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "therapy_sessions"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
	// ProcessingLogsTable is the table that holds the processing_logs relation/edge.
	ProcessingLogsTable = "processing_logs"
	// ProcessingLogsInverseTable is the table name for the ProcessingLog entity.
	// It exists in this package in order to avoid circular dependency with the "processinglog" package.
	ProcessingLogsInverseTable = "processing_logs"
	// ProcessingLogsColumn is the table column denoting the processing_logs relation/edge.
	ProcessingLogsColumn = "session_id"
)

// Columns holds all SQL columns for therapysession fields.
var Columns = []string{
	FieldID,
	FieldPatientID,
	FieldSessionDate,
	FieldDurationMinutes,
	FieldTranscript,
	FieldProcessingStatus,
	FieldAnalysisStatus,
	FieldPodID,
	FieldLastHeartbeatAt,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldErrorMessage,
	FieldSpeakerLabels,
	FieldLabelsConfidence,
	FieldMoodScore,
	FieldMoodConfidence,
	FieldMoodRationale,
	FieldMoodIndicators,
	FieldEmotionalTone,
	FieldTopics,
	FieldActionItems,
	FieldTechnique,
	FieldSummary,
	FieldActionItemsSummary,
	FieldHasBreakthrough,
	FieldBreakthroughLabel,
	FieldBreakthroughData,
	FieldMoodAnalyzedAt,
	FieldTopicsExtractedAt,
	FieldBreakthroughDetectedAt,
	FieldWave1CompletedAt,
	FieldDeepAnalysis,
	FieldAnalysisConfidence,
	FieldProseAnalysis,
	FieldDeepAnalyzedAt,
	FieldProseGeneratedAt,
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

// ProcessingStatus defines the type for the "processing_status" enum field.
type ProcessingStatus string

// ProcessingStatusPending is the default value of the ProcessingStatus enum.
const DefaultProcessingStatus = ProcessingStatusPending

// ProcessingStatus values.
const (
	ProcessingStatusPending   ProcessingStatus = "pending"
	ProcessingStatusRunning   ProcessingStatus = "running"
	ProcessingStatusCompleted ProcessingStatus = "completed"
	ProcessingStatusFailed    ProcessingStatus = "failed"
	ProcessingStatusStopped   ProcessingStatus = "stopped"
)

func (ps ProcessingStatus) String() string {
	return string(ps)
}

// ProcessingStatusValidator is a validator for the "processing_status" field enum values. It is called by the builders before save.
func ProcessingStatusValidator(ps ProcessingStatus) error {
	switch ps {
	case ProcessingStatusPending, ProcessingStatusRunning, ProcessingStatusCompleted, ProcessingStatusFailed, ProcessingStatusStopped:
		return nil
	default:
		return fmt.Errorf("therapysession: invalid enum value for processing_status field: %q", ps)
	}
}

// OrderOption defines the ordering options for the TherapySession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// BySessionDate orders the results by the session_date field.
func BySessionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionDate, opts...).ToFunc()
}

// ByDurationMinutes orders the results by the duration_minutes field.
func ByDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMinutes, opts...).ToFunc()
}

// ByProcessingStatus orders the results by the processing_status field.
func ByProcessingStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStatus, opts...).ToFunc()
}

// ByAnalysisStatus orders the results by the analysis_status field.
func ByAnalysisStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisStatus, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByLabelsConfidence orders the results by the labels_confidence field.
func ByLabelsConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabelsConfidence, opts...).ToFunc()
}

// ByMoodScore orders the results by the mood_score field.
func ByMoodScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMoodScore, opts...).ToFunc()
}

// ByMoodConfidence orders the results by the mood_confidence field.
func ByMoodConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMoodConfidence, opts...).ToFunc()
}

// ByMoodRationale orders the results by the mood_rationale field.
func ByMoodRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMoodRationale, opts...).ToFunc()
}

// ByEmotionalTone orders the results by the emotional_tone field.
func ByEmotionalTone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmotionalTone, opts...).ToFunc()
}

// ByTechnique orders the results by the technique field.
func ByTechnique(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTechnique, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByActionItemsSummary orders the results by the action_items_summary field.
func ByActionItemsSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionItemsSummary, opts...).ToFunc()
}

// ByHasBreakthrough orders the results by the has_breakthrough field.
func ByHasBreakthrough(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasBreakthrough, opts...).ToFunc()
}

// ByBreakthroughLabel orders the results by the breakthrough_label field.
func ByBreakthroughLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakthroughLabel, opts...).ToFunc()
}

// ByMoodAnalyzedAt orders the results by the mood_analyzed_at field.
func ByMoodAnalyzedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMoodAnalyzedAt, opts...).ToFunc()
}

// ByTopicsExtractedAt orders the results by the topics_extracted_at field.
func ByTopicsExtractedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicsExtractedAt, opts...).ToFunc()
}

// ByBreakthroughDetectedAt orders the results by the breakthrough_detected_at field.
func ByBreakthroughDetectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakthroughDetectedAt, opts...).ToFunc()
}

// ByWave1CompletedAt orders the results by the wave1_completed_at field.
func ByWave1CompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWave1CompletedAt, opts...).ToFunc()
}

// ByAnalysisConfidence orders the results by the analysis_confidence field.
func ByAnalysisConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisConfidence, opts...).ToFunc()
}

// ByProseAnalysis orders the results by the prose_analysis field.
func ByProseAnalysis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProseAnalysis, opts...).ToFunc()
}

// ByDeepAnalyzedAt orders the results by the deep_analyzed_at field.
func ByDeepAnalyzedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeepAnalyzedAt, opts...).ToFunc()
}

// ByProseGeneratedAt orders the results by the prose_generated_at field.
func ByProseGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProseGeneratedAt, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}

// ByProcessingLogsCount orders the results by processing_logs count.
func ByProcessingLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProcessingLogsStep(), opts...)
	}
}

// ByProcessingLogs orders the results by processing_logs terms.
func ByProcessingLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProcessingLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, PatientFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
func newProcessingLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProcessingLogsInverseTable, ProcessingLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ProcessingLogsTable, ProcessingLogsColumn),
	)
}
