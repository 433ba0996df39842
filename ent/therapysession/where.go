// Code generated by ent, DO NOT EDIT.

package therapysession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/attune-health/attune/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContainsFold(FieldID, id))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldPatientID, v))
}

// SessionDate applies equality check predicate on the "session_date" field. It's identical to SessionDateEQ.
func SessionDate(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldSessionDate, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldDurationMinutes, v))
}

// AnalysisStatus applies equality check predicate on the "analysis_status" field. It's identical to AnalysisStatusEQ.
func AnalysisStatus(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldAnalysisStatus, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldErrorMessage, v))
}

// LabelsConfidence applies equality check predicate on the "labels_confidence" field. It's identical to LabelsConfidenceEQ.
func LabelsConfidence(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldLabelsConfidence, v))
}

// MoodScore applies equality check predicate on the "mood_score" field. It's identical to MoodScoreEQ.
func MoodScore(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldMoodScore, v))
}

// MoodConfidence applies equality check predicate on the "mood_confidence" field. It's identical to MoodConfidenceEQ.
func MoodConfidence(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldMoodConfidence, v))
}

// MoodRationale applies equality check predicate on the "mood_rationale" field. It's identical to MoodRationaleEQ.
func MoodRationale(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldMoodRationale, v))
}

// EmotionalTone applies equality check predicate on the "emotional_tone" field. It's identical to EmotionalToneEQ.
func EmotionalTone(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldEmotionalTone, v))
}

// Technique applies equality check predicate on the "technique" field. It's identical to TechniqueEQ.
func Technique(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldTechnique, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldSummary, v))
}

// ActionItemsSummary applies equality check predicate on the "action_items_summary" field. It's identical to ActionItemsSummaryEQ.
func ActionItemsSummary(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldActionItemsSummary, v))
}

// HasBreakthrough applies equality check predicate on the "has_breakthrough" field. It's identical to HasBreakthroughEQ.
func HasBreakthrough(v bool) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldHasBreakthrough, v))
}

// BreakthroughLabel applies equality check predicate on the "breakthrough_label" field. It's identical to BreakthroughLabelEQ.
func BreakthroughLabel(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldBreakthroughLabel, v))
}

// MoodAnalyzedAt applies equality check predicate on the "mood_analyzed_at" field. It's identical to MoodAnalyzedAtEQ.
func MoodAnalyzedAt(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldMoodAnalyzedAt, v))
}

// TopicsExtractedAt applies equality check predicate on the "topics_extracted_at" field. It's identical to TopicsExtractedAtEQ.
func TopicsExtractedAt(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldTopicsExtractedAt, v))
}

// BreakthroughDetectedAt applies equality check predicate on the "breakthrough_detected_at" field. It's identical to BreakthroughDetectedAtEQ.
func BreakthroughDetectedAt(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldBreakthroughDetectedAt, v))
}

// Wave1CompletedAt applies equality check predicate on the "wave1_completed_at" field. It's identical to Wave1CompletedAtEQ.
func Wave1CompletedAt(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldWave1CompletedAt, v))
}

// AnalysisConfidence applies equality check predicate on the "analysis_confidence" field. It's identical to AnalysisConfidenceEQ.
func AnalysisConfidence(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldAnalysisConfidence, v))
}

// ProseAnalysis applies equality check predicate on the "prose_analysis" field. It's identical to ProseAnalysisEQ.
func ProseAnalysis(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldProseAnalysis, v))
}

// DeepAnalyzedAt applies equality check predicate on the "deep_analyzed_at" field. It's identical to DeepAnalyzedAtEQ.
func DeepAnalyzedAt(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldDeepAnalyzedAt, v))
}

// ProseGeneratedAt applies equality check predicate on the "prose_generated_at" field. It's identical to ProseGeneratedAtEQ.
func ProseGeneratedAt(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldProseGeneratedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDContains applies the Contains predicate on the "patient_id" field.
func PatientIDContains(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContains(FieldPatientID, v))
}

// PatientIDHasPrefix applies the HasPrefix predicate on the "patient_id" field.
func PatientIDHasPrefix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasPrefix(FieldPatientID, v))
}

// PatientIDHasSuffix applies the HasSuffix predicate on the "patient_id" field.
func PatientIDHasSuffix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasSuffix(FieldPatientID, v))
}

// PatientIDEqualFold applies the EqualFold predicate on the "patient_id" field.
func PatientIDEqualFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEqualFold(FieldPatientID, v))
}

// PatientIDContainsFold applies the ContainsFold predicate on the "patient_id" field.
func PatientIDContainsFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContainsFold(FieldPatientID, v))
}

// SessionDateEQ applies the EQ predicate on the "session_date" field.
func SessionDateEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldSessionDate, v))
}

// SessionDateNEQ applies the NEQ predicate on the "session_date" field.
func SessionDateNEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldSessionDate, v))
}

// SessionDateIn applies the In predicate on the "session_date" field.
func SessionDateIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldSessionDate, vs...))
}

// SessionDateNotIn applies the NotIn predicate on the "session_date" field.
func SessionDateNotIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldSessionDate, vs...))
}

// SessionDateGT applies the GT predicate on the "session_date" field.
func SessionDateGT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldSessionDate, v))
}

// SessionDateGTE applies the GTE predicate on the "session_date" field.
func SessionDateGTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldSessionDate, v))
}

// SessionDateLT applies the LT predicate on the "session_date" field.
func SessionDateLT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldSessionDate, v))
}

// SessionDateLTE applies the LTE predicate on the "session_date" field.
func SessionDateLTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldSessionDate, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldDurationMinutes, v))
}

// ProcessingStatusEQ applies the EQ predicate on the "processing_status" field.
func ProcessingStatusEQ(v ProcessingStatus) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldProcessingStatus, v))
}

// ProcessingStatusNEQ applies the NEQ predicate on the "processing_status" field.
func ProcessingStatusNEQ(v ProcessingStatus) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldProcessingStatus, v))
}

// ProcessingStatusIn applies the In predicate on the "processing_status" field.
func ProcessingStatusIn(vs ...ProcessingStatus) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusNotIn applies the NotIn predicate on the "processing_status" field.
func ProcessingStatusNotIn(vs ...ProcessingStatus) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldProcessingStatus, vs...))
}

// AnalysisStatusEQ applies the EQ predicate on the "analysis_status" field.
func AnalysisStatusEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldAnalysisStatus, v))
}

// AnalysisStatusNEQ applies the NEQ predicate on the "analysis_status" field.
func AnalysisStatusNEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldAnalysisStatus, v))
}

// AnalysisStatusIn applies the In predicate on the "analysis_status" field.
func AnalysisStatusIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldAnalysisStatus, vs...))
}

// AnalysisStatusNotIn applies the NotIn predicate on the "analysis_status" field.
func AnalysisStatusNotIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldAnalysisStatus, vs...))
}

// AnalysisStatusGT applies the GT predicate on the "analysis_status" field.
func AnalysisStatusGT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldAnalysisStatus, v))
}

// AnalysisStatusGTE applies the GTE predicate on the "analysis_status" field.
func AnalysisStatusGTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldAnalysisStatus, v))
}

// AnalysisStatusLT applies the LT predicate on the "analysis_status" field.
func AnalysisStatusLT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldAnalysisStatus, v))
}

// AnalysisStatusLTE applies the LTE predicate on the "analysis_status" field.
func AnalysisStatusLTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldAnalysisStatus, v))
}

// AnalysisStatusContains applies the Contains predicate on the "analysis_status" field.
func AnalysisStatusContains(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContains(FieldAnalysisStatus, v))
}

// AnalysisStatusHasPrefix applies the HasPrefix predicate on the "analysis_status" field.
func AnalysisStatusHasPrefix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasPrefix(FieldAnalysisStatus, v))
}

// AnalysisStatusHasSuffix applies the HasSuffix predicate on the "analysis_status" field.
func AnalysisStatusHasSuffix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasSuffix(FieldAnalysisStatus, v))
}

// AnalysisStatusIsNil applies the IsNil predicate on the "analysis_status" field.
func AnalysisStatusIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldAnalysisStatus))
}

// AnalysisStatusNotNil applies the NotNil predicate on the "analysis_status" field.
func AnalysisStatusNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldAnalysisStatus))
}

// AnalysisStatusEqualFold applies the EqualFold predicate on the "analysis_status" field.
func AnalysisStatusEqualFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEqualFold(FieldAnalysisStatus, v))
}

// AnalysisStatusContainsFold applies the ContainsFold predicate on the "analysis_status" field.
func AnalysisStatusContainsFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContainsFold(FieldAnalysisStatus, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldCompletedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// SpeakerLabelsIsNil applies the IsNil predicate on the "speaker_labels" field.
func SpeakerLabelsIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldSpeakerLabels))
}

// SpeakerLabelsNotNil applies the NotNil predicate on the "speaker_labels" field.
func SpeakerLabelsNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldSpeakerLabels))
}

// LabelsConfidenceEQ applies the EQ predicate on the "labels_confidence" field.
func LabelsConfidenceEQ(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldLabelsConfidence, v))
}

// LabelsConfidenceNEQ applies the NEQ predicate on the "labels_confidence" field.
func LabelsConfidenceNEQ(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldLabelsConfidence, v))
}

// LabelsConfidenceIn applies the In predicate on the "labels_confidence" field.
func LabelsConfidenceIn(vs ...float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldLabelsConfidence, vs...))
}

// LabelsConfidenceNotIn applies the NotIn predicate on the "labels_confidence" field.
func LabelsConfidenceNotIn(vs ...float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldLabelsConfidence, vs...))
}

// LabelsConfidenceGT applies the GT predicate on the "labels_confidence" field.
func LabelsConfidenceGT(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldLabelsConfidence, v))
}

// LabelsConfidenceGTE applies the GTE predicate on the "labels_confidence" field.
func LabelsConfidenceGTE(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldLabelsConfidence, v))
}

// LabelsConfidenceLT applies the LT predicate on the "labels_confidence" field.
func LabelsConfidenceLT(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldLabelsConfidence, v))
}

// LabelsConfidenceLTE applies the LTE predicate on the "labels_confidence" field.
func LabelsConfidenceLTE(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldLabelsConfidence, v))
}

// LabelsConfidenceIsNil applies the IsNil predicate on the "labels_confidence" field.
func LabelsConfidenceIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldLabelsConfidence))
}

// LabelsConfidenceNotNil applies the NotNil predicate on the "labels_confidence" field.
func LabelsConfidenceNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldLabelsConfidence))
}

// MoodScoreEQ applies the EQ predicate on the "mood_score" field.
func MoodScoreEQ(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldMoodScore, v))
}

// MoodScoreNEQ applies the NEQ predicate on the "mood_score" field.
func MoodScoreNEQ(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldMoodScore, v))
}

// MoodScoreIn applies the In predicate on the "mood_score" field.
func MoodScoreIn(vs ...float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldMoodScore, vs...))
}

// MoodScoreNotIn applies the NotIn predicate on the "mood_score" field.
func MoodScoreNotIn(vs ...float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldMoodScore, vs...))
}

// MoodScoreGT applies the GT predicate on the "mood_score" field.
func MoodScoreGT(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldMoodScore, v))
}

// MoodScoreGTE applies the GTE predicate on the "mood_score" field.
func MoodScoreGTE(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldMoodScore, v))
}

// MoodScoreLT applies the LT predicate on the "mood_score" field.
func MoodScoreLT(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldMoodScore, v))
}

// MoodScoreLTE applies the LTE predicate on the "mood_score" field.
func MoodScoreLTE(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldMoodScore, v))
}

// MoodScoreIsNil applies the IsNil predicate on the "mood_score" field.
func MoodScoreIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldMoodScore))
}

// MoodScoreNotNil applies the NotNil predicate on the "mood_score" field.
func MoodScoreNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldMoodScore))
}

// MoodConfidenceEQ applies the EQ predicate on the "mood_confidence" field.
func MoodConfidenceEQ(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldMoodConfidence, v))
}

// MoodConfidenceNEQ applies the NEQ predicate on the "mood_confidence" field.
func MoodConfidenceNEQ(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldMoodConfidence, v))
}

// MoodConfidenceIn applies the In predicate on the "mood_confidence" field.
func MoodConfidenceIn(vs ...float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldMoodConfidence, vs...))
}

// MoodConfidenceNotIn applies the NotIn predicate on the "mood_confidence" field.
func MoodConfidenceNotIn(vs ...float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldMoodConfidence, vs...))
}

// MoodConfidenceGT applies the GT predicate on the "mood_confidence" field.
func MoodConfidenceGT(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldMoodConfidence, v))
}

// MoodConfidenceGTE applies the GTE predicate on the "mood_confidence" field.
func MoodConfidenceGTE(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldMoodConfidence, v))
}

// MoodConfidenceLT applies the LT predicate on the "mood_confidence" field.
func MoodConfidenceLT(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldMoodConfidence, v))
}

// MoodConfidenceLTE applies the LTE predicate on the "mood_confidence" field.
func MoodConfidenceLTE(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldMoodConfidence, v))
}

// MoodConfidenceIsNil applies the IsNil predicate on the "mood_confidence" field.
func MoodConfidenceIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldMoodConfidence))
}

// MoodConfidenceNotNil applies the NotNil predicate on the "mood_confidence" field.
func MoodConfidenceNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldMoodConfidence))
}

// MoodRationaleEQ applies the EQ predicate on the "mood_rationale" field.
func MoodRationaleEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldMoodRationale, v))
}

// MoodRationaleNEQ applies the NEQ predicate on the "mood_rationale" field.
func MoodRationaleNEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldMoodRationale, v))
}

// MoodRationaleIn applies the In predicate on the "mood_rationale" field.
func MoodRationaleIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldMoodRationale, vs...))
}

// MoodRationaleNotIn applies the NotIn predicate on the "mood_rationale" field.
func MoodRationaleNotIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldMoodRationale, vs...))
}

// MoodRationaleGT applies the GT predicate on the "mood_rationale" field.
func MoodRationaleGT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldMoodRationale, v))
}

// MoodRationaleGTE applies the GTE predicate on the "mood_rationale" field.
func MoodRationaleGTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldMoodRationale, v))
}

// MoodRationaleLT applies the LT predicate on the "mood_rationale" field.
func MoodRationaleLT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldMoodRationale, v))
}

// MoodRationaleLTE applies the LTE predicate on the "mood_rationale" field.
func MoodRationaleLTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldMoodRationale, v))
}

// MoodRationaleContains applies the Contains predicate on the "mood_rationale" field.
func MoodRationaleContains(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContains(FieldMoodRationale, v))
}

// MoodRationaleHasPrefix applies the HasPrefix predicate on the "mood_rationale" field.
func MoodRationaleHasPrefix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasPrefix(FieldMoodRationale, v))
}

// MoodRationaleHasSuffix applies the HasSuffix predicate on the "mood_rationale" field.
func MoodRationaleHasSuffix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasSuffix(FieldMoodRationale, v))
}

// MoodRationaleIsNil applies the IsNil predicate on the "mood_rationale" field.
func MoodRationaleIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldMoodRationale))
}

// MoodRationaleNotNil applies the NotNil predicate on the "mood_rationale" field.
func MoodRationaleNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldMoodRationale))
}

// MoodRationaleEqualFold applies the EqualFold predicate on the "mood_rationale" field.
func MoodRationaleEqualFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEqualFold(FieldMoodRationale, v))
}

// MoodRationaleContainsFold applies the ContainsFold predicate on the "mood_rationale" field.
func MoodRationaleContainsFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContainsFold(FieldMoodRationale, v))
}

// MoodIndicatorsIsNil applies the IsNil predicate on the "mood_indicators" field.
func MoodIndicatorsIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldMoodIndicators))
}

// MoodIndicatorsNotNil applies the NotNil predicate on the "mood_indicators" field.
func MoodIndicatorsNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldMoodIndicators))
}

// EmotionalToneEQ applies the EQ predicate on the "emotional_tone" field.
func EmotionalToneEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldEmotionalTone, v))
}

// EmotionalToneNEQ applies the NEQ predicate on the "emotional_tone" field.
func EmotionalToneNEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldEmotionalTone, v))
}

// EmotionalToneIn applies the In predicate on the "emotional_tone" field.
func EmotionalToneIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldEmotionalTone, vs...))
}

// EmotionalToneNotIn applies the NotIn predicate on the "emotional_tone" field.
func EmotionalToneNotIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldEmotionalTone, vs...))
}

// EmotionalToneGT applies the GT predicate on the "emotional_tone" field.
func EmotionalToneGT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldEmotionalTone, v))
}

// EmotionalToneGTE applies the GTE predicate on the "emotional_tone" field.
func EmotionalToneGTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldEmotionalTone, v))
}

// EmotionalToneLT applies the LT predicate on the "emotional_tone" field.
func EmotionalToneLT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldEmotionalTone, v))
}

// EmotionalToneLTE applies the LTE predicate on the "emotional_tone" field.
func EmotionalToneLTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldEmotionalTone, v))
}

// EmotionalToneContains applies the Contains predicate on the "emotional_tone" field.
func EmotionalToneContains(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContains(FieldEmotionalTone, v))
}

// EmotionalToneHasPrefix applies the HasPrefix predicate on the "emotional_tone" field.
func EmotionalToneHasPrefix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasPrefix(FieldEmotionalTone, v))
}

// EmotionalToneHasSuffix applies the HasSuffix predicate on the "emotional_tone" field.
func EmotionalToneHasSuffix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasSuffix(FieldEmotionalTone, v))
}

// EmotionalToneIsNil applies the IsNil predicate on the "emotional_tone" field.
func EmotionalToneIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldEmotionalTone))
}

// EmotionalToneNotNil applies the NotNil predicate on the "emotional_tone" field.
func EmotionalToneNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldEmotionalTone))
}

// EmotionalToneEqualFold applies the EqualFold predicate on the "emotional_tone" field.
func EmotionalToneEqualFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEqualFold(FieldEmotionalTone, v))
}

// EmotionalToneContainsFold applies the ContainsFold predicate on the "emotional_tone" field.
func EmotionalToneContainsFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContainsFold(FieldEmotionalTone, v))
}

// TopicsIsNil applies the IsNil predicate on the "topics" field.
func TopicsIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldTopics))
}

// TopicsNotNil applies the NotNil predicate on the "topics" field.
func TopicsNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldTopics))
}

// ActionItemsIsNil applies the IsNil predicate on the "action_items" field.
func ActionItemsIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldActionItems))
}

// ActionItemsNotNil applies the NotNil predicate on the "action_items" field.
func ActionItemsNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldActionItems))
}

// TechniqueEQ applies the EQ predicate on the "technique" field.
func TechniqueEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldTechnique, v))
}

// TechniqueNEQ applies the NEQ predicate on the "technique" field.
func TechniqueNEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldTechnique, v))
}

// TechniqueIn applies the In predicate on the "technique" field.
func TechniqueIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldTechnique, vs...))
}

// TechniqueNotIn applies the NotIn predicate on the "technique" field.
func TechniqueNotIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldTechnique, vs...))
}

// TechniqueGT applies the GT predicate on the "technique" field.
func TechniqueGT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldTechnique, v))
}

// TechniqueGTE applies the GTE predicate on the "technique" field.
func TechniqueGTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldTechnique, v))
}

// TechniqueLT applies the LT predicate on the "technique" field.
func TechniqueLT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldTechnique, v))
}

// TechniqueLTE applies the LTE predicate on the "technique" field.
func TechniqueLTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldTechnique, v))
}

// TechniqueContains applies the Contains predicate on the "technique" field.
func TechniqueContains(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContains(FieldTechnique, v))
}

// TechniqueHasPrefix applies the HasPrefix predicate on the "technique" field.
func TechniqueHasPrefix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasPrefix(FieldTechnique, v))
}

// TechniqueHasSuffix applies the HasSuffix predicate on the "technique" field.
func TechniqueHasSuffix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasSuffix(FieldTechnique, v))
}

// TechniqueIsNil applies the IsNil predicate on the "technique" field.
func TechniqueIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldTechnique))
}

// TechniqueNotNil applies the NotNil predicate on the "technique" field.
func TechniqueNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldTechnique))
}

// TechniqueEqualFold applies the EqualFold predicate on the "technique" field.
func TechniqueEqualFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEqualFold(FieldTechnique, v))
}

// TechniqueContainsFold applies the ContainsFold predicate on the "technique" field.
func TechniqueContainsFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContainsFold(FieldTechnique, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContainsFold(FieldSummary, v))
}

// ActionItemsSummaryEQ applies the EQ predicate on the "action_items_summary" field.
func ActionItemsSummaryEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldActionItemsSummary, v))
}

// ActionItemsSummaryNEQ applies the NEQ predicate on the "action_items_summary" field.
func ActionItemsSummaryNEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldActionItemsSummary, v))
}

// ActionItemsSummaryIn applies the In predicate on the "action_items_summary" field.
func ActionItemsSummaryIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldActionItemsSummary, vs...))
}

// ActionItemsSummaryNotIn applies the NotIn predicate on the "action_items_summary" field.
func ActionItemsSummaryNotIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldActionItemsSummary, vs...))
}

// ActionItemsSummaryGT applies the GT predicate on the "action_items_summary" field.
func ActionItemsSummaryGT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldActionItemsSummary, v))
}

// ActionItemsSummaryGTE applies the GTE predicate on the "action_items_summary" field.
func ActionItemsSummaryGTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldActionItemsSummary, v))
}

// ActionItemsSummaryLT applies the LT predicate on the "action_items_summary" field.
func ActionItemsSummaryLT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldActionItemsSummary, v))
}

// ActionItemsSummaryLTE applies the LTE predicate on the "action_items_summary" field.
func ActionItemsSummaryLTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldActionItemsSummary, v))
}

// ActionItemsSummaryContains applies the Contains predicate on the "action_items_summary" field.
func ActionItemsSummaryContains(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContains(FieldActionItemsSummary, v))
}

// ActionItemsSummaryHasPrefix applies the HasPrefix predicate on the "action_items_summary" field.
func ActionItemsSummaryHasPrefix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasPrefix(FieldActionItemsSummary, v))
}

// ActionItemsSummaryHasSuffix applies the HasSuffix predicate on the "action_items_summary" field.
func ActionItemsSummaryHasSuffix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasSuffix(FieldActionItemsSummary, v))
}

// ActionItemsSummaryIsNil applies the IsNil predicate on the "action_items_summary" field.
func ActionItemsSummaryIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldActionItemsSummary))
}

// ActionItemsSummaryNotNil applies the NotNil predicate on the "action_items_summary" field.
func ActionItemsSummaryNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldActionItemsSummary))
}

// ActionItemsSummaryEqualFold applies the EqualFold predicate on the "action_items_summary" field.
func ActionItemsSummaryEqualFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEqualFold(FieldActionItemsSummary, v))
}

// ActionItemsSummaryContainsFold applies the ContainsFold predicate on the "action_items_summary" field.
func ActionItemsSummaryContainsFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContainsFold(FieldActionItemsSummary, v))
}

// HasBreakthroughEQ applies the EQ predicate on the "has_breakthrough" field.
func HasBreakthroughEQ(v bool) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldHasBreakthrough, v))
}

// HasBreakthroughNEQ applies the NEQ predicate on the "has_breakthrough" field.
func HasBreakthroughNEQ(v bool) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldHasBreakthrough, v))
}

// HasBreakthroughIsNil applies the IsNil predicate on the "has_breakthrough" field.
func HasBreakthroughIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldHasBreakthrough))
}

// HasBreakthroughNotNil applies the NotNil predicate on the "has_breakthrough" field.
func HasBreakthroughNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldHasBreakthrough))
}

// BreakthroughLabelEQ applies the EQ predicate on the "breakthrough_label" field.
func BreakthroughLabelEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldBreakthroughLabel, v))
}

// BreakthroughLabelNEQ applies the NEQ predicate on the "breakthrough_label" field.
func BreakthroughLabelNEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldBreakthroughLabel, v))
}

// BreakthroughLabelIn applies the In predicate on the "breakthrough_label" field.
func BreakthroughLabelIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldBreakthroughLabel, vs...))
}

// BreakthroughLabelNotIn applies the NotIn predicate on the "breakthrough_label" field.
func BreakthroughLabelNotIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldBreakthroughLabel, vs...))
}

// BreakthroughLabelGT applies the GT predicate on the "breakthrough_label" field.
func BreakthroughLabelGT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldBreakthroughLabel, v))
}

// BreakthroughLabelGTE applies the GTE predicate on the "breakthrough_label" field.
func BreakthroughLabelGTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldBreakthroughLabel, v))
}

// BreakthroughLabelLT applies the LT predicate on the "breakthrough_label" field.
func BreakthroughLabelLT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldBreakthroughLabel, v))
}

// BreakthroughLabelLTE applies the LTE predicate on the "breakthrough_label" field.
func BreakthroughLabelLTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldBreakthroughLabel, v))
}

// BreakthroughLabelContains applies the Contains predicate on the "breakthrough_label" field.
func BreakthroughLabelContains(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContains(FieldBreakthroughLabel, v))
}

// BreakthroughLabelHasPrefix applies the HasPrefix predicate on the "breakthrough_label" field.
func BreakthroughLabelHasPrefix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasPrefix(FieldBreakthroughLabel, v))
}

// BreakthroughLabelHasSuffix applies the HasSuffix predicate on the "breakthrough_label" field.
func BreakthroughLabelHasSuffix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasSuffix(FieldBreakthroughLabel, v))
}

// BreakthroughLabelIsNil applies the IsNil predicate on the "breakthrough_label" field.
func BreakthroughLabelIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldBreakthroughLabel))
}

// BreakthroughLabelNotNil applies the NotNil predicate on the "breakthrough_label" field.
func BreakthroughLabelNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldBreakthroughLabel))
}

// BreakthroughLabelEqualFold applies the EqualFold predicate on the "breakthrough_label" field.
func BreakthroughLabelEqualFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEqualFold(FieldBreakthroughLabel, v))
}

// BreakthroughLabelContainsFold applies the ContainsFold predicate on the "breakthrough_label" field.
func BreakthroughLabelContainsFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContainsFold(FieldBreakthroughLabel, v))
}

// BreakthroughDataIsNil applies the IsNil predicate on the "breakthrough_data" field.
func BreakthroughDataIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldBreakthroughData))
}

// BreakthroughDataNotNil applies the NotNil predicate on the "breakthrough_data" field.
func BreakthroughDataNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldBreakthroughData))
}

// MoodAnalyzedAtEQ applies the EQ predicate on the "mood_analyzed_at" field.
func MoodAnalyzedAtEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldMoodAnalyzedAt, v))
}

// MoodAnalyzedAtNEQ applies the NEQ predicate on the "mood_analyzed_at" field.
func MoodAnalyzedAtNEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldMoodAnalyzedAt, v))
}

// MoodAnalyzedAtIn applies the In predicate on the "mood_analyzed_at" field.
func MoodAnalyzedAtIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldMoodAnalyzedAt, vs...))
}

// MoodAnalyzedAtNotIn applies the NotIn predicate on the "mood_analyzed_at" field.
func MoodAnalyzedAtNotIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldMoodAnalyzedAt, vs...))
}

// MoodAnalyzedAtGT applies the GT predicate on the "mood_analyzed_at" field.
func MoodAnalyzedAtGT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldMoodAnalyzedAt, v))
}

// MoodAnalyzedAtGTE applies the GTE predicate on the "mood_analyzed_at" field.
func MoodAnalyzedAtGTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldMoodAnalyzedAt, v))
}

// MoodAnalyzedAtLT applies the LT predicate on the "mood_analyzed_at" field.
func MoodAnalyzedAtLT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldMoodAnalyzedAt, v))
}

// MoodAnalyzedAtLTE applies the LTE predicate on the "mood_analyzed_at" field.
func MoodAnalyzedAtLTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldMoodAnalyzedAt, v))
}

// MoodAnalyzedAtIsNil applies the IsNil predicate on the "mood_analyzed_at" field.
func MoodAnalyzedAtIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldMoodAnalyzedAt))
}

// MoodAnalyzedAtNotNil applies the NotNil predicate on the "mood_analyzed_at" field.
func MoodAnalyzedAtNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldMoodAnalyzedAt))
}

// TopicsExtractedAtEQ applies the EQ predicate on the "topics_extracted_at" field.
func TopicsExtractedAtEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldTopicsExtractedAt, v))
}

// TopicsExtractedAtNEQ applies the NEQ predicate on the "topics_extracted_at" field.
func TopicsExtractedAtNEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldTopicsExtractedAt, v))
}

// TopicsExtractedAtIn applies the In predicate on the "topics_extracted_at" field.
func TopicsExtractedAtIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldTopicsExtractedAt, vs...))
}

// TopicsExtractedAtNotIn applies the NotIn predicate on the "topics_extracted_at" field.
func TopicsExtractedAtNotIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldTopicsExtractedAt, vs...))
}

// TopicsExtractedAtGT applies the GT predicate on the "topics_extracted_at" field.
func TopicsExtractedAtGT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldTopicsExtractedAt, v))
}

// TopicsExtractedAtGTE applies the GTE predicate on the "topics_extracted_at" field.
func TopicsExtractedAtGTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldTopicsExtractedAt, v))
}

// TopicsExtractedAtLT applies the LT predicate on the "topics_extracted_at" field.
func TopicsExtractedAtLT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldTopicsExtractedAt, v))
}

// TopicsExtractedAtLTE applies the LTE predicate on the "topics_extracted_at" field.
func TopicsExtractedAtLTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldTopicsExtractedAt, v))
}

// TopicsExtractedAtIsNil applies the IsNil predicate on the "topics_extracted_at" field.
func TopicsExtractedAtIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldTopicsExtractedAt))
}

// TopicsExtractedAtNotNil applies the NotNil predicate on the "topics_extracted_at" field.
func TopicsExtractedAtNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldTopicsExtractedAt))
}

// BreakthroughDetectedAtEQ applies the EQ predicate on the "breakthrough_detected_at" field.
func BreakthroughDetectedAtEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldBreakthroughDetectedAt, v))
}

// BreakthroughDetectedAtNEQ applies the NEQ predicate on the "breakthrough_detected_at" field.
func BreakthroughDetectedAtNEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldBreakthroughDetectedAt, v))
}

// BreakthroughDetectedAtIn applies the In predicate on the "breakthrough_detected_at" field.
func BreakthroughDetectedAtIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldBreakthroughDetectedAt, vs...))
}

// BreakthroughDetectedAtNotIn applies the NotIn predicate on the "breakthrough_detected_at" field.
func BreakthroughDetectedAtNotIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldBreakthroughDetectedAt, vs...))
}

// BreakthroughDetectedAtGT applies the GT predicate on the "breakthrough_detected_at" field.
func BreakthroughDetectedAtGT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldBreakthroughDetectedAt, v))
}

// BreakthroughDetectedAtGTE applies the GTE predicate on the "breakthrough_detected_at" field.
func BreakthroughDetectedAtGTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldBreakthroughDetectedAt, v))
}

// BreakthroughDetectedAtLT applies the LT predicate on the "breakthrough_detected_at" field.
func BreakthroughDetectedAtLT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldBreakthroughDetectedAt, v))
}

// BreakthroughDetectedAtLTE applies the LTE predicate on the "breakthrough_detected_at" field.
func BreakthroughDetectedAtLTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldBreakthroughDetectedAt, v))
}

// BreakthroughDetectedAtIsNil applies the IsNil predicate on the "breakthrough_detected_at" field.
func BreakthroughDetectedAtIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldBreakthroughDetectedAt))
}

// BreakthroughDetectedAtNotNil applies the NotNil predicate on the "breakthrough_detected_at" field.
func BreakthroughDetectedAtNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldBreakthroughDetectedAt))
}

// Wave1CompletedAtEQ applies the EQ predicate on the "wave1_completed_at" field.
func Wave1CompletedAtEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldWave1CompletedAt, v))
}

// Wave1CompletedAtNEQ applies the NEQ predicate on the "wave1_completed_at" field.
func Wave1CompletedAtNEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldWave1CompletedAt, v))
}

// Wave1CompletedAtIn applies the In predicate on the "wave1_completed_at" field.
func Wave1CompletedAtIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldWave1CompletedAt, vs...))
}

// Wave1CompletedAtNotIn applies the NotIn predicate on the "wave1_completed_at" field.
func Wave1CompletedAtNotIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldWave1CompletedAt, vs...))
}

// Wave1CompletedAtGT applies the GT predicate on the "wave1_completed_at" field.
func Wave1CompletedAtGT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldWave1CompletedAt, v))
}

// Wave1CompletedAtGTE applies the GTE predicate on the "wave1_completed_at" field.
func Wave1CompletedAtGTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldWave1CompletedAt, v))
}

// Wave1CompletedAtLT applies the LT predicate on the "wave1_completed_at" field.
func Wave1CompletedAtLT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldWave1CompletedAt, v))
}

// Wave1CompletedAtLTE applies the LTE predicate on the "wave1_completed_at" field.
func Wave1CompletedAtLTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldWave1CompletedAt, v))
}

// Wave1CompletedAtIsNil applies the IsNil predicate on the "wave1_completed_at" field.
func Wave1CompletedAtIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldWave1CompletedAt))
}

// Wave1CompletedAtNotNil applies the NotNil predicate on the "wave1_completed_at" field.
func Wave1CompletedAtNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldWave1CompletedAt))
}

// DeepAnalysisIsNil applies the IsNil predicate on the "deep_analysis" field.
func DeepAnalysisIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldDeepAnalysis))
}

// DeepAnalysisNotNil applies the NotNil predicate on the "deep_analysis" field.
func DeepAnalysisNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldDeepAnalysis))
}

// AnalysisConfidenceEQ applies the EQ predicate on the "analysis_confidence" field.
func AnalysisConfidenceEQ(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldAnalysisConfidence, v))
}

// AnalysisConfidenceNEQ applies the NEQ predicate on the "analysis_confidence" field.
func AnalysisConfidenceNEQ(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldAnalysisConfidence, v))
}

// AnalysisConfidenceIn applies the In predicate on the "analysis_confidence" field.
func AnalysisConfidenceIn(vs ...float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldAnalysisConfidence, vs...))
}

// AnalysisConfidenceNotIn applies the NotIn predicate on the "analysis_confidence" field.
func AnalysisConfidenceNotIn(vs ...float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldAnalysisConfidence, vs...))
}

// AnalysisConfidenceGT applies the GT predicate on the "analysis_confidence" field.
func AnalysisConfidenceGT(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldAnalysisConfidence, v))
}

// AnalysisConfidenceGTE applies the GTE predicate on the "analysis_confidence" field.
func AnalysisConfidenceGTE(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldAnalysisConfidence, v))
}

// AnalysisConfidenceLT applies the LT predicate on the "analysis_confidence" field.
func AnalysisConfidenceLT(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldAnalysisConfidence, v))
}

// AnalysisConfidenceLTE applies the LTE predicate on the "analysis_confidence" field.
func AnalysisConfidenceLTE(v float64) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldAnalysisConfidence, v))
}

// AnalysisConfidenceIsNil applies the IsNil predicate on the "analysis_confidence" field.
func AnalysisConfidenceIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldAnalysisConfidence))
}

// AnalysisConfidenceNotNil applies the NotNil predicate on the "analysis_confidence" field.
func AnalysisConfidenceNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldAnalysisConfidence))
}

// ProseAnalysisEQ applies the EQ predicate on the "prose_analysis" field.
func ProseAnalysisEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldProseAnalysis, v))
}

// ProseAnalysisNEQ applies the NEQ predicate on the "prose_analysis" field.
func ProseAnalysisNEQ(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldProseAnalysis, v))
}

// ProseAnalysisIn applies the In predicate on the "prose_analysis" field.
func ProseAnalysisIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldProseAnalysis, vs...))
}

// ProseAnalysisNotIn applies the NotIn predicate on the "prose_analysis" field.
func ProseAnalysisNotIn(vs ...string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldProseAnalysis, vs...))
}

// ProseAnalysisGT applies the GT predicate on the "prose_analysis" field.
func ProseAnalysisGT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldProseAnalysis, v))
}

// ProseAnalysisGTE applies the GTE predicate on the "prose_analysis" field.
func ProseAnalysisGTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldProseAnalysis, v))
}

// ProseAnalysisLT applies the LT predicate on the "prose_analysis" field.
func ProseAnalysisLT(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldProseAnalysis, v))
}

// ProseAnalysisLTE applies the LTE predicate on the "prose_analysis" field.
func ProseAnalysisLTE(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldProseAnalysis, v))
}

// ProseAnalysisContains applies the Contains predicate on the "prose_analysis" field.
func ProseAnalysisContains(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContains(FieldProseAnalysis, v))
}

// ProseAnalysisHasPrefix applies the HasPrefix predicate on the "prose_analysis" field.
func ProseAnalysisHasPrefix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasPrefix(FieldProseAnalysis, v))
}

// ProseAnalysisHasSuffix applies the HasSuffix predicate on the "prose_analysis" field.
func ProseAnalysisHasSuffix(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldHasSuffix(FieldProseAnalysis, v))
}

// ProseAnalysisIsNil applies the IsNil predicate on the "prose_analysis" field.
func ProseAnalysisIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldProseAnalysis))
}

// ProseAnalysisNotNil applies the NotNil predicate on the "prose_analysis" field.
func ProseAnalysisNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldProseAnalysis))
}

// ProseAnalysisEqualFold applies the EqualFold predicate on the "prose_analysis" field.
func ProseAnalysisEqualFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEqualFold(FieldProseAnalysis, v))
}

// ProseAnalysisContainsFold applies the ContainsFold predicate on the "prose_analysis" field.
func ProseAnalysisContainsFold(v string) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldContainsFold(FieldProseAnalysis, v))
}

// DeepAnalyzedAtEQ applies the EQ predicate on the "deep_analyzed_at" field.
func DeepAnalyzedAtEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldDeepAnalyzedAt, v))
}

// DeepAnalyzedAtNEQ applies the NEQ predicate on the "deep_analyzed_at" field.
func DeepAnalyzedAtNEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldDeepAnalyzedAt, v))
}

// DeepAnalyzedAtIn applies the In predicate on the "deep_analyzed_at" field.
func DeepAnalyzedAtIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldDeepAnalyzedAt, vs...))
}

// DeepAnalyzedAtNotIn applies the NotIn predicate on the "deep_analyzed_at" field.
func DeepAnalyzedAtNotIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldDeepAnalyzedAt, vs...))
}

// DeepAnalyzedAtGT applies the GT predicate on the "deep_analyzed_at" field.
func DeepAnalyzedAtGT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldDeepAnalyzedAt, v))
}

// DeepAnalyzedAtGTE applies the GTE predicate on the "deep_analyzed_at" field.
func DeepAnalyzedAtGTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldDeepAnalyzedAt, v))
}

// DeepAnalyzedAtLT applies the LT predicate on the "deep_analyzed_at" field.
func DeepAnalyzedAtLT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldDeepAnalyzedAt, v))
}

// DeepAnalyzedAtLTE applies the LTE predicate on the "deep_analyzed_at" field.
func DeepAnalyzedAtLTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldDeepAnalyzedAt, v))
}

// DeepAnalyzedAtIsNil applies the IsNil predicate on the "deep_analyzed_at" field.
func DeepAnalyzedAtIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldDeepAnalyzedAt))
}

// DeepAnalyzedAtNotNil applies the NotNil predicate on the "deep_analyzed_at" field.
func DeepAnalyzedAtNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldDeepAnalyzedAt))
}

// ProseGeneratedAtEQ applies the EQ predicate on the "prose_generated_at" field.
func ProseGeneratedAtEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldEQ(FieldProseGeneratedAt, v))
}

// ProseGeneratedAtNEQ applies the NEQ predicate on the "prose_generated_at" field.
func ProseGeneratedAtNEQ(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNEQ(FieldProseGeneratedAt, v))
}

// ProseGeneratedAtIn applies the In predicate on the "prose_generated_at" field.
func ProseGeneratedAtIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIn(FieldProseGeneratedAt, vs...))
}

// ProseGeneratedAtNotIn applies the NotIn predicate on the "prose_generated_at" field.
func ProseGeneratedAtNotIn(vs ...time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotIn(FieldProseGeneratedAt, vs...))
}

// ProseGeneratedAtGT applies the GT predicate on the "prose_generated_at" field.
func ProseGeneratedAtGT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGT(FieldProseGeneratedAt, v))
}

// ProseGeneratedAtGTE applies the GTE predicate on the "prose_generated_at" field.
func ProseGeneratedAtGTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldGTE(FieldProseGeneratedAt, v))
}

// ProseGeneratedAtLT applies the LT predicate on the "prose_generated_at" field.
func ProseGeneratedAtLT(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLT(FieldProseGeneratedAt, v))
}

// ProseGeneratedAtLTE applies the LTE predicate on the "prose_generated_at" field.
func ProseGeneratedAtLTE(v time.Time) predicate.TherapySession {
	return predicate.TherapySession(sql.FieldLTE(FieldProseGeneratedAt, v))
}

// ProseGeneratedAtIsNil applies the IsNil predicate on the "prose_generated_at" field.
func ProseGeneratedAtIsNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldIsNull(FieldProseGeneratedAt))
}

// ProseGeneratedAtNotNil applies the NotNil predicate on the "prose_generated_at" field.
func ProseGeneratedAtNotNil() predicate.TherapySession {
	return predicate.TherapySession(sql.FieldNotNull(FieldProseGeneratedAt))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.TherapySession {
	return predicate.TherapySession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.TherapySession {
	return predicate.TherapySession(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProcessingLogs applies the HasEdge predicate on the "processing_logs" edge.
func HasProcessingLogs() predicate.TherapySession {
	return predicate.TherapySession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ProcessingLogsTable, ProcessingLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProcessingLogsWith applies the HasEdge predicate on the "processing_logs" edge with a given conditions (other predicates).
func HasProcessingLogsWith(preds ...predicate.ProcessingLog) predicate.TherapySession {
	return predicate.TherapySession(func(s *sql.Selector) {
		step := newProcessingLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TherapySession) predicate.TherapySession {
	return predicate.TherapySession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TherapySession) predicate.TherapySession {
	return predicate.TherapySession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TherapySession) predicate.TherapySession {
	return predicate.TherapySession(sql.NotPredicates(p))
}
