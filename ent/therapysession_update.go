// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/attune-health/attune/ent/predicate"
	"github.com/attune-health/attune/ent/processinglog"
	"github.com/attune-health/attune/ent/therapysession"
)

// TherapySessionUpdate is the builder for updating TherapySession entities.
type TherapySessionUpdate struct {
	config
	hooks    []Hook
	mutation *TherapySessionMutation
}

// Where appends a list predicates to the TherapySessionUpdate builder.
func (_u *TherapySessionUpdate) Where(ps ...predicate.TherapySession) *TherapySessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionDate sets the "session_date" field.
func (_u *TherapySessionUpdate) SetSessionDate(v time.Time) *TherapySessionUpdate {
	_u.mutation.SetSessionDate(v)
	return _u
}

// SetNillableSessionDate sets the "session_date" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableSessionDate(v *time.Time) *TherapySessionUpdate {
	if v != nil {
		_u.SetSessionDate(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *TherapySessionUpdate) SetDurationMinutes(v int) *TherapySessionUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableDurationMinutes(v *int) *TherapySessionUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *TherapySessionUpdate) AddDurationMinutes(v int) *TherapySessionUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *TherapySessionUpdate) SetTranscript(v []map[string]interface{}) *TherapySessionUpdate {
	_u.mutation.SetTranscript(v)
	return _u
}

// AppendTranscript appends value to the "transcript" field.
func (_u *TherapySessionUpdate) AppendTranscript(v []map[string]interface{}) *TherapySessionUpdate {
	_u.mutation.AppendTranscript(v)
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *TherapySessionUpdate) SetProcessingStatus(v therapysession.ProcessingStatus) *TherapySessionUpdate {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableProcessingStatus(v *therapysession.ProcessingStatus) *TherapySessionUpdate {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetAnalysisStatus sets the "analysis_status" field.
func (_u *TherapySessionUpdate) SetAnalysisStatus(v string) *TherapySessionUpdate {
	_u.mutation.SetAnalysisStatus(v)
	return _u
}

// SetNillableAnalysisStatus sets the "analysis_status" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableAnalysisStatus(v *string) *TherapySessionUpdate {
	if v != nil {
		_u.SetAnalysisStatus(*v)
	}
	return _u
}

// ClearAnalysisStatus clears the value of the "analysis_status" field.
func (_u *TherapySessionUpdate) ClearAnalysisStatus() *TherapySessionUpdate {
	_u.mutation.ClearAnalysisStatus()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *TherapySessionUpdate) SetPodID(v string) *TherapySessionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillablePodID(v *string) *TherapySessionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *TherapySessionUpdate) ClearPodID() *TherapySessionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TherapySessionUpdate) SetLastHeartbeatAt(v time.Time) *TherapySessionUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableLastHeartbeatAt(v *time.Time) *TherapySessionUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TherapySessionUpdate) ClearLastHeartbeatAt() *TherapySessionUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TherapySessionUpdate) SetStartedAt(v time.Time) *TherapySessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableStartedAt(v *time.Time) *TherapySessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TherapySessionUpdate) ClearStartedAt() *TherapySessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TherapySessionUpdate) SetCompletedAt(v time.Time) *TherapySessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableCompletedAt(v *time.Time) *TherapySessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TherapySessionUpdate) ClearCompletedAt() *TherapySessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TherapySessionUpdate) SetErrorMessage(v string) *TherapySessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableErrorMessage(v *string) *TherapySessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TherapySessionUpdate) ClearErrorMessage() *TherapySessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSpeakerLabels sets the "speaker_labels" field.
func (_u *TherapySessionUpdate) SetSpeakerLabels(v map[string]string) *TherapySessionUpdate {
	_u.mutation.SetSpeakerLabels(v)
	return _u
}

// ClearSpeakerLabels clears the value of the "speaker_labels" field.
func (_u *TherapySessionUpdate) ClearSpeakerLabels() *TherapySessionUpdate {
	_u.mutation.ClearSpeakerLabels()
	return _u
}

// SetLabelsConfidence sets the "labels_confidence" field.
func (_u *TherapySessionUpdate) SetLabelsConfidence(v float64) *TherapySessionUpdate {
	_u.mutation.ResetLabelsConfidence()
	_u.mutation.SetLabelsConfidence(v)
	return _u
}

// SetNillableLabelsConfidence sets the "labels_confidence" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableLabelsConfidence(v *float64) *TherapySessionUpdate {
	if v != nil {
		_u.SetLabelsConfidence(*v)
	}
	return _u
}

// AddLabelsConfidence adds value to the "labels_confidence" field.
func (_u *TherapySessionUpdate) AddLabelsConfidence(v float64) *TherapySessionUpdate {
	_u.mutation.AddLabelsConfidence(v)
	return _u
}

// ClearLabelsConfidence clears the value of the "labels_confidence" field.
func (_u *TherapySessionUpdate) ClearLabelsConfidence() *TherapySessionUpdate {
	_u.mutation.ClearLabelsConfidence()
	return _u
}

// SetMoodScore sets the "mood_score" field.
func (_u *TherapySessionUpdate) SetMoodScore(v float64) *TherapySessionUpdate {
	_u.mutation.ResetMoodScore()
	_u.mutation.SetMoodScore(v)
	return _u
}

// SetNillableMoodScore sets the "mood_score" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableMoodScore(v *float64) *TherapySessionUpdate {
	if v != nil {
		_u.SetMoodScore(*v)
	}
	return _u
}

// AddMoodScore adds value to the "mood_score" field.
func (_u *TherapySessionUpdate) AddMoodScore(v float64) *TherapySessionUpdate {
	_u.mutation.AddMoodScore(v)
	return _u
}

// ClearMoodScore clears the value of the "mood_score" field.
func (_u *TherapySessionUpdate) ClearMoodScore() *TherapySessionUpdate {
	_u.mutation.ClearMoodScore()
	return _u
}

// SetMoodConfidence sets the "mood_confidence" field.
func (_u *TherapySessionUpdate) SetMoodConfidence(v float64) *TherapySessionUpdate {
	_u.mutation.ResetMoodConfidence()
	_u.mutation.SetMoodConfidence(v)
	return _u
}

// SetNillableMoodConfidence sets the "mood_confidence" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableMoodConfidence(v *float64) *TherapySessionUpdate {
	if v != nil {
		_u.SetMoodConfidence(*v)
	}
	return _u
}

// AddMoodConfidence adds value to the "mood_confidence" field.
func (_u *TherapySessionUpdate) AddMoodConfidence(v float64) *TherapySessionUpdate {
	_u.mutation.AddMoodConfidence(v)
	return _u
}

// ClearMoodConfidence clears the value of the "mood_confidence" field.
func (_u *TherapySessionUpdate) ClearMoodConfidence() *TherapySessionUpdate {
	_u.mutation.ClearMoodConfidence()
	return _u
}

// SetMoodRationale sets the "mood_rationale" field.
func (_u *TherapySessionUpdate) SetMoodRationale(v string) *TherapySessionUpdate {
	_u.mutation.SetMoodRationale(v)
	return _u
}

// SetNillableMoodRationale sets the "mood_rationale" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableMoodRationale(v *string) *TherapySessionUpdate {
	if v != nil {
		_u.SetMoodRationale(*v)
	}
	return _u
}

// ClearMoodRationale clears the value of the "mood_rationale" field.
func (_u *TherapySessionUpdate) ClearMoodRationale() *TherapySessionUpdate {
	_u.mutation.ClearMoodRationale()
	return _u
}

// SetMoodIndicators sets the "mood_indicators" field.
func (_u *TherapySessionUpdate) SetMoodIndicators(v []string) *TherapySessionUpdate {
	_u.mutation.SetMoodIndicators(v)
	return _u
}

// AppendMoodIndicators appends value to the "mood_indicators" field.
func (_u *TherapySessionUpdate) AppendMoodIndicators(v []string) *TherapySessionUpdate {
	_u.mutation.AppendMoodIndicators(v)
	return _u
}

// ClearMoodIndicators clears the value of the "mood_indicators" field.
func (_u *TherapySessionUpdate) ClearMoodIndicators() *TherapySessionUpdate {
	_u.mutation.ClearMoodIndicators()
	return _u
}

// SetEmotionalTone sets the "emotional_tone" field.
func (_u *TherapySessionUpdate) SetEmotionalTone(v string) *TherapySessionUpdate {
	_u.mutation.SetEmotionalTone(v)
	return _u
}

// SetNillableEmotionalTone sets the "emotional_tone" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableEmotionalTone(v *string) *TherapySessionUpdate {
	if v != nil {
		_u.SetEmotionalTone(*v)
	}
	return _u
}

// ClearEmotionalTone clears the value of the "emotional_tone" field.
func (_u *TherapySessionUpdate) ClearEmotionalTone() *TherapySessionUpdate {
	_u.mutation.ClearEmotionalTone()
	return _u
}

// SetTopics sets the "topics" field.
func (_u *TherapySessionUpdate) SetTopics(v []string) *TherapySessionUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *TherapySessionUpdate) AppendTopics(v []string) *TherapySessionUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *TherapySessionUpdate) ClearTopics() *TherapySessionUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// SetActionItems sets the "action_items" field.
func (_u *TherapySessionUpdate) SetActionItems(v []string) *TherapySessionUpdate {
	_u.mutation.SetActionItems(v)
	return _u
}

// AppendActionItems appends value to the "action_items" field.
func (_u *TherapySessionUpdate) AppendActionItems(v []string) *TherapySessionUpdate {
	_u.mutation.AppendActionItems(v)
	return _u
}

// ClearActionItems clears the value of the "action_items" field.
func (_u *TherapySessionUpdate) ClearActionItems() *TherapySessionUpdate {
	_u.mutation.ClearActionItems()
	return _u
}

// SetTechnique sets the "technique" field.
func (_u *TherapySessionUpdate) SetTechnique(v string) *TherapySessionUpdate {
	_u.mutation.SetTechnique(v)
	return _u
}

// SetNillableTechnique sets the "technique" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableTechnique(v *string) *TherapySessionUpdate {
	if v != nil {
		_u.SetTechnique(*v)
	}
	return _u
}

// ClearTechnique clears the value of the "technique" field.
func (_u *TherapySessionUpdate) ClearTechnique() *TherapySessionUpdate {
	_u.mutation.ClearTechnique()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *TherapySessionUpdate) SetSummary(v string) *TherapySessionUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableSummary(v *string) *TherapySessionUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *TherapySessionUpdate) ClearSummary() *TherapySessionUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetActionItemsSummary sets the "action_items_summary" field.
func (_u *TherapySessionUpdate) SetActionItemsSummary(v string) *TherapySessionUpdate {
	_u.mutation.SetActionItemsSummary(v)
	return _u
}

// SetNillableActionItemsSummary sets the "action_items_summary" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableActionItemsSummary(v *string) *TherapySessionUpdate {
	if v != nil {
		_u.SetActionItemsSummary(*v)
	}
	return _u
}

// ClearActionItemsSummary clears the value of the "action_items_summary" field.
func (_u *TherapySessionUpdate) ClearActionItemsSummary() *TherapySessionUpdate {
	_u.mutation.ClearActionItemsSummary()
	return _u
}

// SetHasBreakthrough sets the "has_breakthrough" field.
func (_u *TherapySessionUpdate) SetHasBreakthrough(v bool) *TherapySessionUpdate {
	_u.mutation.SetHasBreakthrough(v)
	return _u
}

// SetNillableHasBreakthrough sets the "has_breakthrough" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableHasBreakthrough(v *bool) *TherapySessionUpdate {
	if v != nil {
		_u.SetHasBreakthrough(*v)
	}
	return _u
}

// ClearHasBreakthrough clears the value of the "has_breakthrough" field.
func (_u *TherapySessionUpdate) ClearHasBreakthrough() *TherapySessionUpdate {
	_u.mutation.ClearHasBreakthrough()
	return _u
}

// SetBreakthroughLabel sets the "breakthrough_label" field.
func (_u *TherapySessionUpdate) SetBreakthroughLabel(v string) *TherapySessionUpdate {
	_u.mutation.SetBreakthroughLabel(v)
	return _u
}

// SetNillableBreakthroughLabel sets the "breakthrough_label" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableBreakthroughLabel(v *string) *TherapySessionUpdate {
	if v != nil {
		_u.SetBreakthroughLabel(*v)
	}
	return _u
}

// ClearBreakthroughLabel clears the value of the "breakthrough_label" field.
func (_u *TherapySessionUpdate) ClearBreakthroughLabel() *TherapySessionUpdate {
	_u.mutation.ClearBreakthroughLabel()
	return _u
}

// SetBreakthroughData sets the "breakthrough_data" field.
func (_u *TherapySessionUpdate) SetBreakthroughData(v map[string]interface{}) *TherapySessionUpdate {
	_u.mutation.SetBreakthroughData(v)
	return _u
}

// ClearBreakthroughData clears the value of the "breakthrough_data" field.
func (_u *TherapySessionUpdate) ClearBreakthroughData() *TherapySessionUpdate {
	_u.mutation.ClearBreakthroughData()
	return _u
}

// SetMoodAnalyzedAt sets the "mood_analyzed_at" field.
func (_u *TherapySessionUpdate) SetMoodAnalyzedAt(v time.Time) *TherapySessionUpdate {
	_u.mutation.SetMoodAnalyzedAt(v)
	return _u
}

// SetNillableMoodAnalyzedAt sets the "mood_analyzed_at" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableMoodAnalyzedAt(v *time.Time) *TherapySessionUpdate {
	if v != nil {
		_u.SetMoodAnalyzedAt(*v)
	}
	return _u
}

// ClearMoodAnalyzedAt clears the value of the "mood_analyzed_at" field.
func (_u *TherapySessionUpdate) ClearMoodAnalyzedAt() *TherapySessionUpdate {
	_u.mutation.ClearMoodAnalyzedAt()
	return _u
}

// SetTopicsExtractedAt sets the "topics_extracted_at" field.
func (_u *TherapySessionUpdate) SetTopicsExtractedAt(v time.Time) *TherapySessionUpdate {
	_u.mutation.SetTopicsExtractedAt(v)
	return _u
}

// SetNillableTopicsExtractedAt sets the "topics_extracted_at" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableTopicsExtractedAt(v *time.Time) *TherapySessionUpdate {
	if v != nil {
		_u.SetTopicsExtractedAt(*v)
	}
	return _u
}

// ClearTopicsExtractedAt clears the value of the "topics_extracted_at" field.
func (_u *TherapySessionUpdate) ClearTopicsExtractedAt() *TherapySessionUpdate {
	_u.mutation.ClearTopicsExtractedAt()
	return _u
}

// SetBreakthroughDetectedAt sets the "breakthrough_detected_at" field.
func (_u *TherapySessionUpdate) SetBreakthroughDetectedAt(v time.Time) *TherapySessionUpdate {
	_u.mutation.SetBreakthroughDetectedAt(v)
	return _u
}

// SetNillableBreakthroughDetectedAt sets the "breakthrough_detected_at" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableBreakthroughDetectedAt(v *time.Time) *TherapySessionUpdate {
	if v != nil {
		_u.SetBreakthroughDetectedAt(*v)
	}
	return _u
}

// ClearBreakthroughDetectedAt clears the value of the "breakthrough_detected_at" field.
func (_u *TherapySessionUpdate) ClearBreakthroughDetectedAt() *TherapySessionUpdate {
	_u.mutation.ClearBreakthroughDetectedAt()
	return _u
}

// SetWave1CompletedAt sets the "wave1_completed_at" field.
func (_u *TherapySessionUpdate) SetWave1CompletedAt(v time.Time) *TherapySessionUpdate {
	_u.mutation.SetWave1CompletedAt(v)
	return _u
}

// SetNillableWave1CompletedAt sets the "wave1_completed_at" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableWave1CompletedAt(v *time.Time) *TherapySessionUpdate {
	if v != nil {
		_u.SetWave1CompletedAt(*v)
	}
	return _u
}

// ClearWave1CompletedAt clears the value of the "wave1_completed_at" field.
func (_u *TherapySessionUpdate) ClearWave1CompletedAt() *TherapySessionUpdate {
	_u.mutation.ClearWave1CompletedAt()
	return _u
}

// SetDeepAnalysis sets the "deep_analysis" field.
func (_u *TherapySessionUpdate) SetDeepAnalysis(v map[string]interface{}) *TherapySessionUpdate {
	_u.mutation.SetDeepAnalysis(v)
	return _u
}

// ClearDeepAnalysis clears the value of the "deep_analysis" field.
func (_u *TherapySessionUpdate) ClearDeepAnalysis() *TherapySessionUpdate {
	_u.mutation.ClearDeepAnalysis()
	return _u
}

// SetAnalysisConfidence sets the "analysis_confidence" field.
func (_u *TherapySessionUpdate) SetAnalysisConfidence(v float64) *TherapySessionUpdate {
	_u.mutation.ResetAnalysisConfidence()
	_u.mutation.SetAnalysisConfidence(v)
	return _u
}

// SetNillableAnalysisConfidence sets the "analysis_confidence" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableAnalysisConfidence(v *float64) *TherapySessionUpdate {
	if v != nil {
		_u.SetAnalysisConfidence(*v)
	}
	return _u
}

// AddAnalysisConfidence adds value to the "analysis_confidence" field.
func (_u *TherapySessionUpdate) AddAnalysisConfidence(v float64) *TherapySessionUpdate {
	_u.mutation.AddAnalysisConfidence(v)
	return _u
}

// ClearAnalysisConfidence clears the value of the "analysis_confidence" field.
func (_u *TherapySessionUpdate) ClearAnalysisConfidence() *TherapySessionUpdate {
	_u.mutation.ClearAnalysisConfidence()
	return _u
}

// SetProseAnalysis sets the "prose_analysis" field.
func (_u *TherapySessionUpdate) SetProseAnalysis(v string) *TherapySessionUpdate {
	_u.mutation.SetProseAnalysis(v)
	return _u
}

// SetNillableProseAnalysis sets the "prose_analysis" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableProseAnalysis(v *string) *TherapySessionUpdate {
	if v != nil {
		_u.SetProseAnalysis(*v)
	}
	return _u
}

// ClearProseAnalysis clears the value of the "prose_analysis" field.
func (_u *TherapySessionUpdate) ClearProseAnalysis() *TherapySessionUpdate {
	_u.mutation.ClearProseAnalysis()
	return _u
}

// SetDeepAnalyzedAt sets the "deep_analyzed_at" field.
func (_u *TherapySessionUpdate) SetDeepAnalyzedAt(v time.Time) *TherapySessionUpdate {
	_u.mutation.SetDeepAnalyzedAt(v)
	return _u
}

// SetNillableDeepAnalyzedAt sets the "deep_analyzed_at" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableDeepAnalyzedAt(v *time.Time) *TherapySessionUpdate {
	if v != nil {
		_u.SetDeepAnalyzedAt(*v)
	}
	return _u
}

// ClearDeepAnalyzedAt clears the value of the "deep_analyzed_at" field.
func (_u *TherapySessionUpdate) ClearDeepAnalyzedAt() *TherapySessionUpdate {
	_u.mutation.ClearDeepAnalyzedAt()
	return _u
}

// SetProseGeneratedAt sets the "prose_generated_at" field.
func (_u *TherapySessionUpdate) SetProseGeneratedAt(v time.Time) *TherapySessionUpdate {
	_u.mutation.SetProseGeneratedAt(v)
	return _u
}

// SetNillableProseGeneratedAt sets the "prose_generated_at" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableProseGeneratedAt(v *time.Time) *TherapySessionUpdate {
	if v != nil {
		_u.SetProseGeneratedAt(*v)
	}
	return _u
}

// ClearProseGeneratedAt clears the value of the "prose_generated_at" field.
func (_u *TherapySessionUpdate) ClearProseGeneratedAt() *TherapySessionUpdate {
	_u.mutation.ClearProseGeneratedAt()
	return _u
}

// AddProcessingLogIDs adds the "processing_logs" edge to the ProcessingLog entity by IDs.
func (_u *TherapySessionUpdate) AddProcessingLogIDs(ids ...int) *TherapySessionUpdate {
	_u.mutation.AddProcessingLogIDs(ids...)
	return _u
}

// AddProcessingLogs adds the "processing_logs" edges to the ProcessingLog entity.
func (_u *TherapySessionUpdate) AddProcessingLogs(v ...*ProcessingLog) *TherapySessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProcessingLogIDs(ids...)
}

// Mutation returns the TherapySessionMutation object of the builder.
func (_u *TherapySessionUpdate) Mutation() *TherapySessionMutation {
	return _u.mutation
}

// ClearProcessingLogs clears all "processing_logs" edges to the ProcessingLog entity.
func (_u *TherapySessionUpdate) ClearProcessingLogs() *TherapySessionUpdate {
	_u.mutation.ClearProcessingLogs()
	return _u
}

// RemoveProcessingLogIDs removes the "processing_logs" edge to ProcessingLog entities by IDs.
func (_u *TherapySessionUpdate) RemoveProcessingLogIDs(ids ...int) *TherapySessionUpdate {
	_u.mutation.RemoveProcessingLogIDs(ids...)
	return _u
}

// RemoveProcessingLogs removes "processing_logs" edges to ProcessingLog entities.
func (_u *TherapySessionUpdate) RemoveProcessingLogs(v ...*ProcessingLog) *TherapySessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProcessingLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TherapySessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TherapySessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TherapySessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TherapySessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TherapySessionUpdate) check() error {
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := therapysession.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "TherapySession.processing_status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TherapySession.patient"`)
	}
	return nil
}

func (_u *TherapySessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(therapysession.Table, therapysession.Columns, sqlgraph.NewFieldSpec(therapysession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionDate(); ok {
		_spec.SetField(therapysession.FieldSessionDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(therapysession.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(therapysession.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(therapysession.FieldTranscript, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTranscript(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapysession.FieldTranscript, value)
		})
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(therapysession.FieldProcessingStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AnalysisStatus(); ok {
		_spec.SetField(therapysession.FieldAnalysisStatus, field.TypeString, value)
	}
	if _u.mutation.AnalysisStatusCleared() {
		_spec.ClearField(therapysession.FieldAnalysisStatus, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(therapysession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(therapysession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(therapysession.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(therapysession.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(therapysession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(therapysession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(therapysession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(therapysession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(therapysession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(therapysession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SpeakerLabels(); ok {
		_spec.SetField(therapysession.FieldSpeakerLabels, field.TypeJSON, value)
	}
	if _u.mutation.SpeakerLabelsCleared() {
		_spec.ClearField(therapysession.FieldSpeakerLabels, field.TypeJSON)
	}
	if value, ok := _u.mutation.LabelsConfidence(); ok {
		_spec.SetField(therapysession.FieldLabelsConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLabelsConfidence(); ok {
		_spec.AddField(therapysession.FieldLabelsConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.LabelsConfidenceCleared() {
		_spec.ClearField(therapysession.FieldLabelsConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MoodScore(); ok {
		_spec.SetField(therapysession.FieldMoodScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMoodScore(); ok {
		_spec.AddField(therapysession.FieldMoodScore, field.TypeFloat64, value)
	}
	if _u.mutation.MoodScoreCleared() {
		_spec.ClearField(therapysession.FieldMoodScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MoodConfidence(); ok {
		_spec.SetField(therapysession.FieldMoodConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMoodConfidence(); ok {
		_spec.AddField(therapysession.FieldMoodConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.MoodConfidenceCleared() {
		_spec.ClearField(therapysession.FieldMoodConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MoodRationale(); ok {
		_spec.SetField(therapysession.FieldMoodRationale, field.TypeString, value)
	}
	if _u.mutation.MoodRationaleCleared() {
		_spec.ClearField(therapysession.FieldMoodRationale, field.TypeString)
	}
	if value, ok := _u.mutation.MoodIndicators(); ok {
		_spec.SetField(therapysession.FieldMoodIndicators, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMoodIndicators(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapysession.FieldMoodIndicators, value)
		})
	}
	if _u.mutation.MoodIndicatorsCleared() {
		_spec.ClearField(therapysession.FieldMoodIndicators, field.TypeJSON)
	}
	if value, ok := _u.mutation.EmotionalTone(); ok {
		_spec.SetField(therapysession.FieldEmotionalTone, field.TypeString, value)
	}
	if _u.mutation.EmotionalToneCleared() {
		_spec.ClearField(therapysession.FieldEmotionalTone, field.TypeString)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(therapysession.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapysession.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(therapysession.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ActionItems(); ok {
		_spec.SetField(therapysession.FieldActionItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActionItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapysession.FieldActionItems, value)
		})
	}
	if _u.mutation.ActionItemsCleared() {
		_spec.ClearField(therapysession.FieldActionItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Technique(); ok {
		_spec.SetField(therapysession.FieldTechnique, field.TypeString, value)
	}
	if _u.mutation.TechniqueCleared() {
		_spec.ClearField(therapysession.FieldTechnique, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(therapysession.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(therapysession.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ActionItemsSummary(); ok {
		_spec.SetField(therapysession.FieldActionItemsSummary, field.TypeString, value)
	}
	if _u.mutation.ActionItemsSummaryCleared() {
		_spec.ClearField(therapysession.FieldActionItemsSummary, field.TypeString)
	}
	if value, ok := _u.mutation.HasBreakthrough(); ok {
		_spec.SetField(therapysession.FieldHasBreakthrough, field.TypeBool, value)
	}
	if _u.mutation.HasBreakthroughCleared() {
		_spec.ClearField(therapysession.FieldHasBreakthrough, field.TypeBool)
	}
	if value, ok := _u.mutation.BreakthroughLabel(); ok {
		_spec.SetField(therapysession.FieldBreakthroughLabel, field.TypeString, value)
	}
	if _u.mutation.BreakthroughLabelCleared() {
		_spec.ClearField(therapysession.FieldBreakthroughLabel, field.TypeString)
	}
	if value, ok := _u.mutation.BreakthroughData(); ok {
		_spec.SetField(therapysession.FieldBreakthroughData, field.TypeJSON, value)
	}
	if _u.mutation.BreakthroughDataCleared() {
		_spec.ClearField(therapysession.FieldBreakthroughData, field.TypeJSON)
	}
	if value, ok := _u.mutation.MoodAnalyzedAt(); ok {
		_spec.SetField(therapysession.FieldMoodAnalyzedAt, field.TypeTime, value)
	}
	if _u.mutation.MoodAnalyzedAtCleared() {
		_spec.ClearField(therapysession.FieldMoodAnalyzedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TopicsExtractedAt(); ok {
		_spec.SetField(therapysession.FieldTopicsExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.TopicsExtractedAtCleared() {
		_spec.ClearField(therapysession.FieldTopicsExtractedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.BreakthroughDetectedAt(); ok {
		_spec.SetField(therapysession.FieldBreakthroughDetectedAt, field.TypeTime, value)
	}
	if _u.mutation.BreakthroughDetectedAtCleared() {
		_spec.ClearField(therapysession.FieldBreakthroughDetectedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Wave1CompletedAt(); ok {
		_spec.SetField(therapysession.FieldWave1CompletedAt, field.TypeTime, value)
	}
	if _u.mutation.Wave1CompletedAtCleared() {
		_spec.ClearField(therapysession.FieldWave1CompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeepAnalysis(); ok {
		_spec.SetField(therapysession.FieldDeepAnalysis, field.TypeJSON, value)
	}
	if _u.mutation.DeepAnalysisCleared() {
		_spec.ClearField(therapysession.FieldDeepAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnalysisConfidence(); ok {
		_spec.SetField(therapysession.FieldAnalysisConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnalysisConfidence(); ok {
		_spec.AddField(therapysession.FieldAnalysisConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.AnalysisConfidenceCleared() {
		_spec.ClearField(therapysession.FieldAnalysisConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ProseAnalysis(); ok {
		_spec.SetField(therapysession.FieldProseAnalysis, field.TypeString, value)
	}
	if _u.mutation.ProseAnalysisCleared() {
		_spec.ClearField(therapysession.FieldProseAnalysis, field.TypeString)
	}
	if value, ok := _u.mutation.DeepAnalyzedAt(); ok {
		_spec.SetField(therapysession.FieldDeepAnalyzedAt, field.TypeTime, value)
	}
	if _u.mutation.DeepAnalyzedAtCleared() {
		_spec.ClearField(therapysession.FieldDeepAnalyzedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProseGeneratedAt(); ok {
		_spec.SetField(therapysession.FieldProseGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.ProseGeneratedAtCleared() {
		_spec.ClearField(therapysession.FieldProseGeneratedAt, field.TypeTime)
	}
	if _u.mutation.ProcessingLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   therapysession.ProcessingLogsTable,
			Columns: []string{therapysession.ProcessingLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProcessingLogsIDs(); len(nodes) > 0 && !_u.mutation.ProcessingLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   therapysession.ProcessingLogsTable,
			Columns: []string{therapysession.ProcessingLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessingLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   therapysession.ProcessingLogsTable,
			Columns: []string{therapysession.ProcessingLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{therapysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TherapySessionUpdateOne is the builder for updating a single TherapySession entity.
type TherapySessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TherapySessionMutation
}

// SetSessionDate sets the "session_date" field.
func (_u *TherapySessionUpdateOne) SetSessionDate(v time.Time) *TherapySessionUpdateOne {
	_u.mutation.SetSessionDate(v)
	return _u
}

// SetNillableSessionDate sets the "session_date" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableSessionDate(v *time.Time) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetSessionDate(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *TherapySessionUpdateOne) SetDurationMinutes(v int) *TherapySessionUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableDurationMinutes(v *int) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *TherapySessionUpdateOne) AddDurationMinutes(v int) *TherapySessionUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *TherapySessionUpdateOne) SetTranscript(v []map[string]interface{}) *TherapySessionUpdateOne {
	_u.mutation.SetTranscript(v)
	return _u
}

// AppendTranscript appends value to the "transcript" field.
func (_u *TherapySessionUpdateOne) AppendTranscript(v []map[string]interface{}) *TherapySessionUpdateOne {
	_u.mutation.AppendTranscript(v)
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *TherapySessionUpdateOne) SetProcessingStatus(v therapysession.ProcessingStatus) *TherapySessionUpdateOne {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableProcessingStatus(v *therapysession.ProcessingStatus) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetAnalysisStatus sets the "analysis_status" field.
func (_u *TherapySessionUpdateOne) SetAnalysisStatus(v string) *TherapySessionUpdateOne {
	_u.mutation.SetAnalysisStatus(v)
	return _u
}

// SetNillableAnalysisStatus sets the "analysis_status" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableAnalysisStatus(v *string) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetAnalysisStatus(*v)
	}
	return _u
}

// ClearAnalysisStatus clears the value of the "analysis_status" field.
func (_u *TherapySessionUpdateOne) ClearAnalysisStatus() *TherapySessionUpdateOne {
	_u.mutation.ClearAnalysisStatus()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *TherapySessionUpdateOne) SetPodID(v string) *TherapySessionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillablePodID(v *string) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *TherapySessionUpdateOne) ClearPodID() *TherapySessionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TherapySessionUpdateOne) SetLastHeartbeatAt(v time.Time) *TherapySessionUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TherapySessionUpdateOne) ClearLastHeartbeatAt() *TherapySessionUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TherapySessionUpdateOne) SetStartedAt(v time.Time) *TherapySessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableStartedAt(v *time.Time) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TherapySessionUpdateOne) ClearStartedAt() *TherapySessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TherapySessionUpdateOne) SetCompletedAt(v time.Time) *TherapySessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableCompletedAt(v *time.Time) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TherapySessionUpdateOne) ClearCompletedAt() *TherapySessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TherapySessionUpdateOne) SetErrorMessage(v string) *TherapySessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableErrorMessage(v *string) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TherapySessionUpdateOne) ClearErrorMessage() *TherapySessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSpeakerLabels sets the "speaker_labels" field.
func (_u *TherapySessionUpdateOne) SetSpeakerLabels(v map[string]string) *TherapySessionUpdateOne {
	_u.mutation.SetSpeakerLabels(v)
	return _u
}

// ClearSpeakerLabels clears the value of the "speaker_labels" field.
func (_u *TherapySessionUpdateOne) ClearSpeakerLabels() *TherapySessionUpdateOne {
	_u.mutation.ClearSpeakerLabels()
	return _u
}

// SetLabelsConfidence sets the "labels_confidence" field.
func (_u *TherapySessionUpdateOne) SetLabelsConfidence(v float64) *TherapySessionUpdateOne {
	_u.mutation.ResetLabelsConfidence()
	_u.mutation.SetLabelsConfidence(v)
	return _u
}

// SetNillableLabelsConfidence sets the "labels_confidence" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableLabelsConfidence(v *float64) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetLabelsConfidence(*v)
	}
	return _u
}

// AddLabelsConfidence adds value to the "labels_confidence" field.
func (_u *TherapySessionUpdateOne) AddLabelsConfidence(v float64) *TherapySessionUpdateOne {
	_u.mutation.AddLabelsConfidence(v)
	return _u
}

// ClearLabelsConfidence clears the value of the "labels_confidence" field.
func (_u *TherapySessionUpdateOne) ClearLabelsConfidence() *TherapySessionUpdateOne {
	_u.mutation.ClearLabelsConfidence()
	return _u
}

// SetMoodScore sets the "mood_score" field.
func (_u *TherapySessionUpdateOne) SetMoodScore(v float64) *TherapySessionUpdateOne {
	_u.mutation.ResetMoodScore()
	_u.mutation.SetMoodScore(v)
	return _u
}

// SetNillableMoodScore sets the "mood_score" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableMoodScore(v *float64) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetMoodScore(*v)
	}
	return _u
}

// AddMoodScore adds value to the "mood_score" field.
func (_u *TherapySessionUpdateOne) AddMoodScore(v float64) *TherapySessionUpdateOne {
	_u.mutation.AddMoodScore(v)
	return _u
}

// ClearMoodScore clears the value of the "mood_score" field.
func (_u *TherapySessionUpdateOne) ClearMoodScore() *TherapySessionUpdateOne {
	_u.mutation.ClearMoodScore()
	return _u
}

// SetMoodConfidence sets the "mood_confidence" field.
func (_u *TherapySessionUpdateOne) SetMoodConfidence(v float64) *TherapySessionUpdateOne {
	_u.mutation.ResetMoodConfidence()
	_u.mutation.SetMoodConfidence(v)
	return _u
}

// SetNillableMoodConfidence sets the "mood_confidence" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableMoodConfidence(v *float64) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetMoodConfidence(*v)
	}
	return _u
}

// AddMoodConfidence adds value to the "mood_confidence" field.
func (_u *TherapySessionUpdateOne) AddMoodConfidence(v float64) *TherapySessionUpdateOne {
	_u.mutation.AddMoodConfidence(v)
	return _u
}

// ClearMoodConfidence clears the value of the "mood_confidence" field.
func (_u *TherapySessionUpdateOne) ClearMoodConfidence() *TherapySessionUpdateOne {
	_u.mutation.ClearMoodConfidence()
	return _u
}

// SetMoodRationale sets the "mood_rationale" field.
func (_u *TherapySessionUpdateOne) SetMoodRationale(v string) *TherapySessionUpdateOne {
	_u.mutation.SetMoodRationale(v)
	return _u
}

// SetNillableMoodRationale sets the "mood_rationale" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableMoodRationale(v *string) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetMoodRationale(*v)
	}
	return _u
}

// ClearMoodRationale clears the value of the "mood_rationale" field.
func (_u *TherapySessionUpdateOne) ClearMoodRationale() *TherapySessionUpdateOne {
	_u.mutation.ClearMoodRationale()
	return _u
}

// SetMoodIndicators sets the "mood_indicators" field.
func (_u *TherapySessionUpdateOne) SetMoodIndicators(v []string) *TherapySessionUpdateOne {
	_u.mutation.SetMoodIndicators(v)
	return _u
}

// AppendMoodIndicators appends value to the "mood_indicators" field.
func (_u *TherapySessionUpdateOne) AppendMoodIndicators(v []string) *TherapySessionUpdateOne {
	_u.mutation.AppendMoodIndicators(v)
	return _u
}

// ClearMoodIndicators clears the value of the "mood_indicators" field.
func (_u *TherapySessionUpdateOne) ClearMoodIndicators() *TherapySessionUpdateOne {
	_u.mutation.ClearMoodIndicators()
	return _u
}

// SetEmotionalTone sets the "emotional_tone" field.
func (_u *TherapySessionUpdateOne) SetEmotionalTone(v string) *TherapySessionUpdateOne {
	_u.mutation.SetEmotionalTone(v)
	return _u
}

// SetNillableEmotionalTone sets the "emotional_tone" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableEmotionalTone(v *string) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetEmotionalTone(*v)
	}
	return _u
}

// ClearEmotionalTone clears the value of the "emotional_tone" field.
func (_u *TherapySessionUpdateOne) ClearEmotionalTone() *TherapySessionUpdateOne {
	_u.mutation.ClearEmotionalTone()
	return _u
}

// SetTopics sets the "topics" field.
func (_u *TherapySessionUpdateOne) SetTopics(v []string) *TherapySessionUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *TherapySessionUpdateOne) AppendTopics(v []string) *TherapySessionUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *TherapySessionUpdateOne) ClearTopics() *TherapySessionUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// SetActionItems sets the "action_items" field.
func (_u *TherapySessionUpdateOne) SetActionItems(v []string) *TherapySessionUpdateOne {
	_u.mutation.SetActionItems(v)
	return _u
}

// AppendActionItems appends value to the "action_items" field.
func (_u *TherapySessionUpdateOne) AppendActionItems(v []string) *TherapySessionUpdateOne {
	_u.mutation.AppendActionItems(v)
	return _u
}

// ClearActionItems clears the value of the "action_items" field.
func (_u *TherapySessionUpdateOne) ClearActionItems() *TherapySessionUpdateOne {
	_u.mutation.ClearActionItems()
	return _u
}

// SetTechnique sets the "technique" field.
func (_u *TherapySessionUpdateOne) SetTechnique(v string) *TherapySessionUpdateOne {
	_u.mutation.SetTechnique(v)
	return _u
}

// SetNillableTechnique sets the "technique" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableTechnique(v *string) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetTechnique(*v)
	}
	return _u
}

// ClearTechnique clears the value of the "technique" field.
func (_u *TherapySessionUpdateOne) ClearTechnique() *TherapySessionUpdateOne {
	_u.mutation.ClearTechnique()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *TherapySessionUpdateOne) SetSummary(v string) *TherapySessionUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableSummary(v *string) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *TherapySessionUpdateOne) ClearSummary() *TherapySessionUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetActionItemsSummary sets the "action_items_summary" field.
func (_u *TherapySessionUpdateOne) SetActionItemsSummary(v string) *TherapySessionUpdateOne {
	_u.mutation.SetActionItemsSummary(v)
	return _u
}

// SetNillableActionItemsSummary sets the "action_items_summary" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableActionItemsSummary(v *string) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetActionItemsSummary(*v)
	}
	return _u
}

// ClearActionItemsSummary clears the value of the "action_items_summary" field.
func (_u *TherapySessionUpdateOne) ClearActionItemsSummary() *TherapySessionUpdateOne {
	_u.mutation.ClearActionItemsSummary()
	return _u
}

// SetHasBreakthrough sets the "has_breakthrough" field.
func (_u *TherapySessionUpdateOne) SetHasBreakthrough(v bool) *TherapySessionUpdateOne {
	_u.mutation.SetHasBreakthrough(v)
	return _u
}

// SetNillableHasBreakthrough sets the "has_breakthrough" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableHasBreakthrough(v *bool) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetHasBreakthrough(*v)
	}
	return _u
}

// ClearHasBreakthrough clears the value of the "has_breakthrough" field.
func (_u *TherapySessionUpdateOne) ClearHasBreakthrough() *TherapySessionUpdateOne {
	_u.mutation.ClearHasBreakthrough()
	return _u
}

// SetBreakthroughLabel sets the "breakthrough_label" field.
func (_u *TherapySessionUpdateOne) SetBreakthroughLabel(v string) *TherapySessionUpdateOne {
	_u.mutation.SetBreakthroughLabel(v)
	return _u
}

// SetNillableBreakthroughLabel sets the "breakthrough_label" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableBreakthroughLabel(v *string) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetBreakthroughLabel(*v)
	}
	return _u
}

// ClearBreakthroughLabel clears the value of the "breakthrough_label" field.
func (_u *TherapySessionUpdateOne) ClearBreakthroughLabel() *TherapySessionUpdateOne {
	_u.mutation.ClearBreakthroughLabel()
	return _u
}

// SetBreakthroughData sets the "breakthrough_data" field.
func (_u *TherapySessionUpdateOne) SetBreakthroughData(v map[string]interface{}) *TherapySessionUpdateOne {
	_u.mutation.SetBreakthroughData(v)
	return _u
}

// ClearBreakthroughData clears the value of the "breakthrough_data" field.
func (_u *TherapySessionUpdateOne) ClearBreakthroughData() *TherapySessionUpdateOne {
	_u.mutation.ClearBreakthroughData()
	return _u
}

// SetMoodAnalyzedAt sets the "mood_analyzed_at" field.
func (_u *TherapySessionUpdateOne) SetMoodAnalyzedAt(v time.Time) *TherapySessionUpdateOne {
	_u.mutation.SetMoodAnalyzedAt(v)
	return _u
}

// SetNillableMoodAnalyzedAt sets the "mood_analyzed_at" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableMoodAnalyzedAt(v *time.Time) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetMoodAnalyzedAt(*v)
	}
	return _u
}

// ClearMoodAnalyzedAt clears the value of the "mood_analyzed_at" field.
func (_u *TherapySessionUpdateOne) ClearMoodAnalyzedAt() *TherapySessionUpdateOne {
	_u.mutation.ClearMoodAnalyzedAt()
	return _u
}

// SetTopicsExtractedAt sets the "topics_extracted_at" field.
func (_u *TherapySessionUpdateOne) SetTopicsExtractedAt(v time.Time) *TherapySessionUpdateOne {
	_u.mutation.SetTopicsExtractedAt(v)
	return _u
}

// SetNillableTopicsExtractedAt sets the "topics_extracted_at" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableTopicsExtractedAt(v *time.Time) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetTopicsExtractedAt(*v)
	}
	return _u
}

// ClearTopicsExtractedAt clears the value of the "topics_extracted_at" field.
func (_u *TherapySessionUpdateOne) ClearTopicsExtractedAt() *TherapySessionUpdateOne {
	_u.mutation.ClearTopicsExtractedAt()
	return _u
}

// SetBreakthroughDetectedAt sets the "breakthrough_detected_at" field.
func (_u *TherapySessionUpdateOne) SetBreakthroughDetectedAt(v time.Time) *TherapySessionUpdateOne {
	_u.mutation.SetBreakthroughDetectedAt(v)
	return _u
}

// SetNillableBreakthroughDetectedAt sets the "breakthrough_detected_at" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableBreakthroughDetectedAt(v *time.Time) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetBreakthroughDetectedAt(*v)
	}
	return _u
}

// ClearBreakthroughDetectedAt clears the value of the "breakthrough_detected_at" field.
func (_u *TherapySessionUpdateOne) ClearBreakthroughDetectedAt() *TherapySessionUpdateOne {
	_u.mutation.ClearBreakthroughDetectedAt()
	return _u
}

// SetWave1CompletedAt sets the "wave1_completed_at" field.
func (_u *TherapySessionUpdateOne) SetWave1CompletedAt(v time.Time) *TherapySessionUpdateOne {
	_u.mutation.SetWave1CompletedAt(v)
	return _u
}

// SetNillableWave1CompletedAt sets the "wave1_completed_at" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableWave1CompletedAt(v *time.Time) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetWave1CompletedAt(*v)
	}
	return _u
}

// ClearWave1CompletedAt clears the value of the "wave1_completed_at" field.
func (_u *TherapySessionUpdateOne) ClearWave1CompletedAt() *TherapySessionUpdateOne {
	_u.mutation.ClearWave1CompletedAt()
	return _u
}

// SetDeepAnalysis sets the "deep_analysis" field.
func (_u *TherapySessionUpdateOne) SetDeepAnalysis(v map[string]interface{}) *TherapySessionUpdateOne {
	_u.mutation.SetDeepAnalysis(v)
	return _u
}

// ClearDeepAnalysis clears the value of the "deep_analysis" field.
func (_u *TherapySessionUpdateOne) ClearDeepAnalysis() *TherapySessionUpdateOne {
	_u.mutation.ClearDeepAnalysis()
	return _u
}

// SetAnalysisConfidence sets the "analysis_confidence" field.
func (_u *TherapySessionUpdateOne) SetAnalysisConfidence(v float64) *TherapySessionUpdateOne {
	_u.mutation.ResetAnalysisConfidence()
	_u.mutation.SetAnalysisConfidence(v)
	return _u
}

// SetNillableAnalysisConfidence sets the "analysis_confidence" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableAnalysisConfidence(v *float64) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetAnalysisConfidence(*v)
	}
	return _u
}

// AddAnalysisConfidence adds value to the "analysis_confidence" field.
func (_u *TherapySessionUpdateOne) AddAnalysisConfidence(v float64) *TherapySessionUpdateOne {
	_u.mutation.AddAnalysisConfidence(v)
	return _u
}

// ClearAnalysisConfidence clears the value of the "analysis_confidence" field.
func (_u *TherapySessionUpdateOne) ClearAnalysisConfidence() *TherapySessionUpdateOne {
	_u.mutation.ClearAnalysisConfidence()
	return _u
}

// SetProseAnalysis sets the "prose_analysis" field.
func (_u *TherapySessionUpdateOne) SetProseAnalysis(v string) *TherapySessionUpdateOne {
	_u.mutation.SetProseAnalysis(v)
	return _u
}

// SetNillableProseAnalysis sets the "prose_analysis" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableProseAnalysis(v *string) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetProseAnalysis(*v)
	}
	return _u
}

// ClearProseAnalysis clears the value of the "prose_analysis" field.
func (_u *TherapySessionUpdateOne) ClearProseAnalysis() *TherapySessionUpdateOne {
	_u.mutation.ClearProseAnalysis()
	return _u
}

// SetDeepAnalyzedAt sets the "deep_analyzed_at" field.
func (_u *TherapySessionUpdateOne) SetDeepAnalyzedAt(v time.Time) *TherapySessionUpdateOne {
	_u.mutation.SetDeepAnalyzedAt(v)
	return _u
}

// SetNillableDeepAnalyzedAt sets the "deep_analyzed_at" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableDeepAnalyzedAt(v *time.Time) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetDeepAnalyzedAt(*v)
	}
	return _u
}

// ClearDeepAnalyzedAt clears the value of the "deep_analyzed_at" field.
func (_u *TherapySessionUpdateOne) ClearDeepAnalyzedAt() *TherapySessionUpdateOne {
	_u.mutation.ClearDeepAnalyzedAt()
	return _u
}

// SetProseGeneratedAt sets the "prose_generated_at" field.
func (_u *TherapySessionUpdateOne) SetProseGeneratedAt(v time.Time) *TherapySessionUpdateOne {
	_u.mutation.SetProseGeneratedAt(v)
	return _u
}

// SetNillableProseGeneratedAt sets the "prose_generated_at" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableProseGeneratedAt(v *time.Time) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetProseGeneratedAt(*v)
	}
	return _u
}

// ClearProseGeneratedAt clears the value of the "prose_generated_at" field.
func (_u *TherapySessionUpdateOne) ClearProseGeneratedAt() *TherapySessionUpdateOne {
	_u.mutation.ClearProseGeneratedAt()
	return _u
}

// AddProcessingLogIDs adds the "processing_logs" edge to the ProcessingLog entity by IDs.
func (_u *TherapySessionUpdateOne) AddProcessingLogIDs(ids ...int) *TherapySessionUpdateOne {
	_u.mutation.AddProcessingLogIDs(ids...)
	return _u
}

// AddProcessingLogs adds the "processing_logs" edges to the ProcessingLog entity.
func (_u *TherapySessionUpdateOne) AddProcessingLogs(v ...*ProcessingLog) *TherapySessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProcessingLogIDs(ids...)
}

// Mutation returns the TherapySessionMutation object of the builder.
func (_u *TherapySessionUpdateOne) Mutation() *TherapySessionMutation {
	return _u.mutation
}

// ClearProcessingLogs clears all "processing_logs" edges to the ProcessingLog entity.
func (_u *TherapySessionUpdateOne) ClearProcessingLogs() *TherapySessionUpdateOne {
	_u.mutation.ClearProcessingLogs()
	return _u
}

// RemoveProcessingLogIDs removes the "processing_logs" edge to ProcessingLog entities by IDs.
func (_u *TherapySessionUpdateOne) RemoveProcessingLogIDs(ids ...int) *TherapySessionUpdateOne {
	_u.mutation.RemoveProcessingLogIDs(ids...)
	return _u
}

// RemoveProcessingLogs removes "processing_logs" edges to ProcessingLog entities.
func (_u *TherapySessionUpdateOne) RemoveProcessingLogs(v ...*ProcessingLog) *TherapySessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProcessingLogIDs(ids...)
}

// Where appends a list predicates to the TherapySessionUpdate builder.
func (_u *TherapySessionUpdateOne) Where(ps ...predicate.TherapySession) *TherapySessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TherapySessionUpdateOne) Select(field string, fields ...string) *TherapySessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TherapySession entity.
func (_u *TherapySessionUpdateOne) Save(ctx context.Context) (*TherapySession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TherapySessionUpdateOne) SaveX(ctx context.Context) *TherapySession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TherapySessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TherapySessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TherapySessionUpdateOne) check() error {
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := therapysession.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "TherapySession.processing_status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TherapySession.patient"`)
	}
	return nil
}

func (_u *TherapySessionUpdateOne) sqlSave(ctx context.Context) (_node *TherapySession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(therapysession.Table, therapysession.Columns, sqlgraph.NewFieldSpec(therapysession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TherapySession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, therapysession.FieldID)
		for _, f := range fields {
			if !therapysession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != therapysession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionDate(); ok {
		_spec.SetField(therapysession.FieldSessionDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(therapysession.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(therapysession.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(therapysession.FieldTranscript, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTranscript(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapysession.FieldTranscript, value)
		})
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(therapysession.FieldProcessingStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AnalysisStatus(); ok {
		_spec.SetField(therapysession.FieldAnalysisStatus, field.TypeString, value)
	}
	if _u.mutation.AnalysisStatusCleared() {
		_spec.ClearField(therapysession.FieldAnalysisStatus, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(therapysession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(therapysession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(therapysession.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(therapysession.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(therapysession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(therapysession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(therapysession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(therapysession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(therapysession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(therapysession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SpeakerLabels(); ok {
		_spec.SetField(therapysession.FieldSpeakerLabels, field.TypeJSON, value)
	}
	if _u.mutation.SpeakerLabelsCleared() {
		_spec.ClearField(therapysession.FieldSpeakerLabels, field.TypeJSON)
	}
	if value, ok := _u.mutation.LabelsConfidence(); ok {
		_spec.SetField(therapysession.FieldLabelsConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLabelsConfidence(); ok {
		_spec.AddField(therapysession.FieldLabelsConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.LabelsConfidenceCleared() {
		_spec.ClearField(therapysession.FieldLabelsConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MoodScore(); ok {
		_spec.SetField(therapysession.FieldMoodScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMoodScore(); ok {
		_spec.AddField(therapysession.FieldMoodScore, field.TypeFloat64, value)
	}
	if _u.mutation.MoodScoreCleared() {
		_spec.ClearField(therapysession.FieldMoodScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MoodConfidence(); ok {
		_spec.SetField(therapysession.FieldMoodConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMoodConfidence(); ok {
		_spec.AddField(therapysession.FieldMoodConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.MoodConfidenceCleared() {
		_spec.ClearField(therapysession.FieldMoodConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MoodRationale(); ok {
		_spec.SetField(therapysession.FieldMoodRationale, field.TypeString, value)
	}
	if _u.mutation.MoodRationaleCleared() {
		_spec.ClearField(therapysession.FieldMoodRationale, field.TypeString)
	}
	if value, ok := _u.mutation.MoodIndicators(); ok {
		_spec.SetField(therapysession.FieldMoodIndicators, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMoodIndicators(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapysession.FieldMoodIndicators, value)
		})
	}
	if _u.mutation.MoodIndicatorsCleared() {
		_spec.ClearField(therapysession.FieldMoodIndicators, field.TypeJSON)
	}
	if value, ok := _u.mutation.EmotionalTone(); ok {
		_spec.SetField(therapysession.FieldEmotionalTone, field.TypeString, value)
	}
	if _u.mutation.EmotionalToneCleared() {
		_spec.ClearField(therapysession.FieldEmotionalTone, field.TypeString)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(therapysession.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapysession.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(therapysession.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ActionItems(); ok {
		_spec.SetField(therapysession.FieldActionItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActionItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapysession.FieldActionItems, value)
		})
	}
	if _u.mutation.ActionItemsCleared() {
		_spec.ClearField(therapysession.FieldActionItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Technique(); ok {
		_spec.SetField(therapysession.FieldTechnique, field.TypeString, value)
	}
	if _u.mutation.TechniqueCleared() {
		_spec.ClearField(therapysession.FieldTechnique, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(therapysession.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(therapysession.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ActionItemsSummary(); ok {
		_spec.SetField(therapysession.FieldActionItemsSummary, field.TypeString, value)
	}
	if _u.mutation.ActionItemsSummaryCleared() {
		_spec.ClearField(therapysession.FieldActionItemsSummary, field.TypeString)
	}
	if value, ok := _u.mutation.HasBreakthrough(); ok {
		_spec.SetField(therapysession.FieldHasBreakthrough, field.TypeBool, value)
	}
	if _u.mutation.HasBreakthroughCleared() {
		_spec.ClearField(therapysession.FieldHasBreakthrough, field.TypeBool)
	}
	if value, ok := _u.mutation.BreakthroughLabel(); ok {
		_spec.SetField(therapysession.FieldBreakthroughLabel, field.TypeString, value)
	}
	if _u.mutation.BreakthroughLabelCleared() {
		_spec.ClearField(therapysession.FieldBreakthroughLabel, field.TypeString)
	}
	if value, ok := _u.mutation.BreakthroughData(); ok {
		_spec.SetField(therapysession.FieldBreakthroughData, field.TypeJSON, value)
	}
	if _u.mutation.BreakthroughDataCleared() {
		_spec.ClearField(therapysession.FieldBreakthroughData, field.TypeJSON)
	}
	if value, ok := _u.mutation.MoodAnalyzedAt(); ok {
		_spec.SetField(therapysession.FieldMoodAnalyzedAt, field.TypeTime, value)
	}
	if _u.mutation.MoodAnalyzedAtCleared() {
		_spec.ClearField(therapysession.FieldMoodAnalyzedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TopicsExtractedAt(); ok {
		_spec.SetField(therapysession.FieldTopicsExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.TopicsExtractedAtCleared() {
		_spec.ClearField(therapysession.FieldTopicsExtractedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.BreakthroughDetectedAt(); ok {
		_spec.SetField(therapysession.FieldBreakthroughDetectedAt, field.TypeTime, value)
	}
	if _u.mutation.BreakthroughDetectedAtCleared() {
		_spec.ClearField(therapysession.FieldBreakthroughDetectedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Wave1CompletedAt(); ok {
		_spec.SetField(therapysession.FieldWave1CompletedAt, field.TypeTime, value)
	}
	if _u.mutation.Wave1CompletedAtCleared() {
		_spec.ClearField(therapysession.FieldWave1CompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeepAnalysis(); ok {
		_spec.SetField(therapysession.FieldDeepAnalysis, field.TypeJSON, value)
	}
	if _u.mutation.DeepAnalysisCleared() {
		_spec.ClearField(therapysession.FieldDeepAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnalysisConfidence(); ok {
		_spec.SetField(therapysession.FieldAnalysisConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnalysisConfidence(); ok {
		_spec.AddField(therapysession.FieldAnalysisConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.AnalysisConfidenceCleared() {
		_spec.ClearField(therapysession.FieldAnalysisConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ProseAnalysis(); ok {
		_spec.SetField(therapysession.FieldProseAnalysis, field.TypeString, value)
	}
	if _u.mutation.ProseAnalysisCleared() {
		_spec.ClearField(therapysession.FieldProseAnalysis, field.TypeString)
	}
	if value, ok := _u.mutation.DeepAnalyzedAt(); ok {
		_spec.SetField(therapysession.FieldDeepAnalyzedAt, field.TypeTime, value)
	}
	if _u.mutation.DeepAnalyzedAtCleared() {
		_spec.ClearField(therapysession.FieldDeepAnalyzedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProseGeneratedAt(); ok {
		_spec.SetField(therapysession.FieldProseGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.ProseGeneratedAtCleared() {
		_spec.ClearField(therapysession.FieldProseGeneratedAt, field.TypeTime)
	}
	if _u.mutation.ProcessingLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   therapysession.ProcessingLogsTable,
			Columns: []string{therapysession.ProcessingLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProcessingLogsIDs(); len(nodes) > 0 && !_u.mutation.ProcessingLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   therapysession.ProcessingLogsTable,
			Columns: []string{therapysession.ProcessingLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessingLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   therapysession.ProcessingLogsTable,
			Columns: []string{therapysession.ProcessingLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TherapySession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{therapysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
