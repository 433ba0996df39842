// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/attune-health/attune/ent/patient"
	"github.com/attune-health/attune/ent/processinglog"
	"github.com/attune-health/attune/ent/therapysession"
)

// TherapySessionCreate is the builder for creating a TherapySession entity.
type TherapySessionCreate struct {
	config
	mutation *TherapySessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPatientID sets the "patient_id" field.
func (_c *TherapySessionCreate) SetPatientID(v string) *TherapySessionCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetSessionDate sets the "session_date" field.
func (_c *TherapySessionCreate) SetSessionDate(v time.Time) *TherapySessionCreate {
	_c.mutation.SetSessionDate(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *TherapySessionCreate) SetDurationMinutes(v int) *TherapySessionCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetTranscript sets the "transcript" field.
func (_c *TherapySessionCreate) SetTranscript(v []map[string]interface{}) *TherapySessionCreate {
	_c.mutation.SetTranscript(v)
	return _c
}

// SetProcessingStatus sets the "processing_status" field.
func (_c *TherapySessionCreate) SetProcessingStatus(v therapysession.ProcessingStatus) *TherapySessionCreate {
	_c.mutation.SetProcessingStatus(v)
	return _c
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableProcessingStatus(v *therapysession.ProcessingStatus) *TherapySessionCreate {
	if v != nil {
		_c.SetProcessingStatus(*v)
	}
	return _c
}

// SetAnalysisStatus sets the "analysis_status" field.
func (_c *TherapySessionCreate) SetAnalysisStatus(v string) *TherapySessionCreate {
	_c.mutation.SetAnalysisStatus(v)
	return _c
}

// SetNillableAnalysisStatus sets the "analysis_status" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableAnalysisStatus(v *string) *TherapySessionCreate {
	if v != nil {
		_c.SetAnalysisStatus(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *TherapySessionCreate) SetPodID(v string) *TherapySessionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillablePodID(v *string) *TherapySessionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *TherapySessionCreate) SetLastHeartbeatAt(v time.Time) *TherapySessionCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableLastHeartbeatAt(v *time.Time) *TherapySessionCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TherapySessionCreate) SetCreatedAt(v time.Time) *TherapySessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableCreatedAt(v *time.Time) *TherapySessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TherapySessionCreate) SetStartedAt(v time.Time) *TherapySessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableStartedAt(v *time.Time) *TherapySessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TherapySessionCreate) SetCompletedAt(v time.Time) *TherapySessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableCompletedAt(v *time.Time) *TherapySessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TherapySessionCreate) SetErrorMessage(v string) *TherapySessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableErrorMessage(v *string) *TherapySessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetSpeakerLabels sets the "speaker_labels" field.
func (_c *TherapySessionCreate) SetSpeakerLabels(v map[string]string) *TherapySessionCreate {
	_c.mutation.SetSpeakerLabels(v)
	return _c
}

// SetLabelsConfidence sets the "labels_confidence" field.
func (_c *TherapySessionCreate) SetLabelsConfidence(v float64) *TherapySessionCreate {
	_c.mutation.SetLabelsConfidence(v)
	return _c
}

// SetNillableLabelsConfidence sets the "labels_confidence" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableLabelsConfidence(v *float64) *TherapySessionCreate {
	if v != nil {
		_c.SetLabelsConfidence(*v)
	}
	return _c
}

// SetMoodScore sets the "mood_score" field.
func (_c *TherapySessionCreate) SetMoodScore(v float64) *TherapySessionCreate {
	_c.mutation.SetMoodScore(v)
	return _c
}

// SetNillableMoodScore sets the "mood_score" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableMoodScore(v *float64) *TherapySessionCreate {
	if v != nil {
		_c.SetMoodScore(*v)
	}
	return _c
}

// SetMoodConfidence sets the "mood_confidence" field.
func (_c *TherapySessionCreate) SetMoodConfidence(v float64) *TherapySessionCreate {
	_c.mutation.SetMoodConfidence(v)
	return _c
}

// SetNillableMoodConfidence sets the "mood_confidence" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableMoodConfidence(v *float64) *TherapySessionCreate {
	if v != nil {
		_c.SetMoodConfidence(*v)
	}
	return _c
}

// SetMoodRationale sets the "mood_rationale" field.
func (_c *TherapySessionCreate) SetMoodRationale(v string) *TherapySessionCreate {
	_c.mutation.SetMoodRationale(v)
	return _c
}

// SetNillableMoodRationale sets the "mood_rationale" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableMoodRationale(v *string) *TherapySessionCreate {
	if v != nil {
		_c.SetMoodRationale(*v)
	}
	return _c
}

// SetMoodIndicators sets the "mood_indicators" field.
func (_c *TherapySessionCreate) SetMoodIndicators(v []string) *TherapySessionCreate {
	_c.mutation.SetMoodIndicators(v)
	return _c
}

// SetEmotionalTone sets the "emotional_tone" field.
func (_c *TherapySessionCreate) SetEmotionalTone(v string) *TherapySessionCreate {
	_c.mutation.SetEmotionalTone(v)
	return _c
}

// SetNillableEmotionalTone sets the "emotional_tone" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableEmotionalTone(v *string) *TherapySessionCreate {
	if v != nil {
		_c.SetEmotionalTone(*v)
	}
	return _c
}

// SetTopics sets the "topics" field.
func (_c *TherapySessionCreate) SetTopics(v []string) *TherapySessionCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// SetActionItems sets the "action_items" field.
func (_c *TherapySessionCreate) SetActionItems(v []string) *TherapySessionCreate {
	_c.mutation.SetActionItems(v)
	return _c
}

// SetTechnique sets the "technique" field.
func (_c *TherapySessionCreate) SetTechnique(v string) *TherapySessionCreate {
	_c.mutation.SetTechnique(v)
	return _c
}

// SetNillableTechnique sets the "technique" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableTechnique(v *string) *TherapySessionCreate {
	if v != nil {
		_c.SetTechnique(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *TherapySessionCreate) SetSummary(v string) *TherapySessionCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableSummary(v *string) *TherapySessionCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetActionItemsSummary sets the "action_items_summary" field.
func (_c *TherapySessionCreate) SetActionItemsSummary(v string) *TherapySessionCreate {
	_c.mutation.SetActionItemsSummary(v)
	return _c
}

// SetNillableActionItemsSummary sets the "action_items_summary" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableActionItemsSummary(v *string) *TherapySessionCreate {
	if v != nil {
		_c.SetActionItemsSummary(*v)
	}
	return _c
}

// SetHasBreakthrough sets the "has_breakthrough" field.
func (_c *TherapySessionCreate) SetHasBreakthrough(v bool) *TherapySessionCreate {
	_c.mutation.SetHasBreakthrough(v)
	return _c
}

// SetNillableHasBreakthrough sets the "has_breakthrough" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableHasBreakthrough(v *bool) *TherapySessionCreate {
	if v != nil {
		_c.SetHasBreakthrough(*v)
	}
	return _c
}

// SetBreakthroughLabel sets the "breakthrough_label" field.
func (_c *TherapySessionCreate) SetBreakthroughLabel(v string) *TherapySessionCreate {
	_c.mutation.SetBreakthroughLabel(v)
	return _c
}

// SetNillableBreakthroughLabel sets the "breakthrough_label" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableBreakthroughLabel(v *string) *TherapySessionCreate {
	if v != nil {
		_c.SetBreakthroughLabel(*v)
	}
	return _c
}

// SetBreakthroughData sets the "breakthrough_data" field.
func (_c *TherapySessionCreate) SetBreakthroughData(v map[string]interface{}) *TherapySessionCreate {
	_c.mutation.SetBreakthroughData(v)
	return _c
}

// SetMoodAnalyzedAt sets the "mood_analyzed_at" field.
func (_c *TherapySessionCreate) SetMoodAnalyzedAt(v time.Time) *TherapySessionCreate {
	_c.mutation.SetMoodAnalyzedAt(v)
	return _c
}

// SetNillableMoodAnalyzedAt sets the "mood_analyzed_at" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableMoodAnalyzedAt(v *time.Time) *TherapySessionCreate {
	if v != nil {
		_c.SetMoodAnalyzedAt(*v)
	}
	return _c
}

// SetTopicsExtractedAt sets the "topics_extracted_at" field.
func (_c *TherapySessionCreate) SetTopicsExtractedAt(v time.Time) *TherapySessionCreate {
	_c.mutation.SetTopicsExtractedAt(v)
	return _c
}

// SetNillableTopicsExtractedAt sets the "topics_extracted_at" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableTopicsExtractedAt(v *time.Time) *TherapySessionCreate {
	if v != nil {
		_c.SetTopicsExtractedAt(*v)
	}
	return _c
}

// SetBreakthroughDetectedAt sets the "breakthrough_detected_at" field.
func (_c *TherapySessionCreate) SetBreakthroughDetectedAt(v time.Time) *TherapySessionCreate {
	_c.mutation.SetBreakthroughDetectedAt(v)
	return _c
}

// SetNillableBreakthroughDetectedAt sets the "breakthrough_detected_at" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableBreakthroughDetectedAt(v *time.Time) *TherapySessionCreate {
	if v != nil {
		_c.SetBreakthroughDetectedAt(*v)
	}
	return _c
}

// SetWave1CompletedAt sets the "wave1_completed_at" field.
func (_c *TherapySessionCreate) SetWave1CompletedAt(v time.Time) *TherapySessionCreate {
	_c.mutation.SetWave1CompletedAt(v)
	return _c
}

// SetNillableWave1CompletedAt sets the "wave1_completed_at" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableWave1CompletedAt(v *time.Time) *TherapySessionCreate {
	if v != nil {
		_c.SetWave1CompletedAt(*v)
	}
	return _c
}

// SetDeepAnalysis sets the "deep_analysis" field.
func (_c *TherapySessionCreate) SetDeepAnalysis(v map[string]interface{}) *TherapySessionCreate {
	_c.mutation.SetDeepAnalysis(v)
	return _c
}

// SetAnalysisConfidence sets the "analysis_confidence" field.
func (_c *TherapySessionCreate) SetAnalysisConfidence(v float64) *TherapySessionCreate {
	_c.mutation.SetAnalysisConfidence(v)
	return _c
}

// SetNillableAnalysisConfidence sets the "analysis_confidence" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableAnalysisConfidence(v *float64) *TherapySessionCreate {
	if v != nil {
		_c.SetAnalysisConfidence(*v)
	}
	return _c
}

// SetProseAnalysis sets the "prose_analysis" field.
func (_c *TherapySessionCreate) SetProseAnalysis(v string) *TherapySessionCreate {
	_c.mutation.SetProseAnalysis(v)
	return _c
}

// SetNillableProseAnalysis sets the "prose_analysis" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableProseAnalysis(v *string) *TherapySessionCreate {
	if v != nil {
		_c.SetProseAnalysis(*v)
	}
	return _c
}

// SetDeepAnalyzedAt sets the "deep_analyzed_at" field.
func (_c *TherapySessionCreate) SetDeepAnalyzedAt(v time.Time) *TherapySessionCreate {
	_c.mutation.SetDeepAnalyzedAt(v)
	return _c
}

// SetNillableDeepAnalyzedAt sets the "deep_analyzed_at" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableDeepAnalyzedAt(v *time.Time) *TherapySessionCreate {
	if v != nil {
		_c.SetDeepAnalyzedAt(*v)
	}
	return _c
}

// SetProseGeneratedAt sets the "prose_generated_at" field.
func (_c *TherapySessionCreate) SetProseGeneratedAt(v time.Time) *TherapySessionCreate {
	_c.mutation.SetProseGeneratedAt(v)
	return _c
}

// SetNillableProseGeneratedAt sets the "prose_generated_at" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableProseGeneratedAt(v *time.Time) *TherapySessionCreate {
	if v != nil {
		_c.SetProseGeneratedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TherapySessionCreate) SetID(v string) *TherapySessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *TherapySessionCreate) SetPatient(v *Patient) *TherapySessionCreate {
	return _c.SetPatientID(v.ID)
}

// AddProcessingLogIDs adds the "processing_logs" edge to the ProcessingLog entity by IDs.
func (_c *TherapySessionCreate) AddProcessingLogIDs(ids ...int) *TherapySessionCreate {
	_c.mutation.AddProcessingLogIDs(ids...)
	return _c
}

// AddProcessingLogs adds the "processing_logs" edges to the ProcessingLog entity.
func (_c *TherapySessionCreate) AddProcessingLogs(v ...*ProcessingLog) *TherapySessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProcessingLogIDs(ids...)
}

// Mutation returns the TherapySessionMutation object of the builder.
func (_c *TherapySessionCreate) Mutation() *TherapySessionMutation {
	return _c.mutation
}

// Save creates the TherapySession in the database.
func (_c *TherapySessionCreate) Save(ctx context.Context) (*TherapySession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TherapySessionCreate) SaveX(ctx context.Context) *TherapySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TherapySessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TherapySessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TherapySessionCreate) defaults() {
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		v := therapysession.DefaultProcessingStatus
		_c.mutation.SetProcessingStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := therapysession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TherapySessionCreate) check() error {
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "TherapySession.patient_id"`)}
	}
	if _, ok := _c.mutation.SessionDate(); !ok {
		return &ValidationError{Name: "session_date", err: errors.New(`ent: missing required field "TherapySession.session_date"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "TherapySession.duration_minutes"`)}
	}
	if _, ok := _c.mutation.Transcript(); !ok {
		return &ValidationError{Name: "transcript", err: errors.New(`ent: missing required field "TherapySession.transcript"`)}
	}
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		return &ValidationError{Name: "processing_status", err: errors.New(`ent: missing required field "TherapySession.processing_status"`)}
	}
	if v, ok := _c.mutation.ProcessingStatus(); ok {
		if err := therapysession.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "TherapySession.processing_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TherapySession.created_at"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`ent: missing required edge "TherapySession.patient"`)}
	}
	return nil
}

func (_c *TherapySessionCreate) sqlSave(ctx context.Context) (*TherapySession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TherapySession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TherapySessionCreate) createSpec() (*TherapySession, *sqlgraph.CreateSpec) {
	var (
		_node = &TherapySession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(therapysession.Table, sqlgraph.NewFieldSpec(therapysession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionDate(); ok {
		_spec.SetField(therapysession.FieldSessionDate, field.TypeTime, value)
		_node.SessionDate = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(therapysession.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.Transcript(); ok {
		_spec.SetField(therapysession.FieldTranscript, field.TypeJSON, value)
		_node.Transcript = value
	}
	if value, ok := _c.mutation.ProcessingStatus(); ok {
		_spec.SetField(therapysession.FieldProcessingStatus, field.TypeEnum, value)
		_node.ProcessingStatus = value
	}
	if value, ok := _c.mutation.AnalysisStatus(); ok {
		_spec.SetField(therapysession.FieldAnalysisStatus, field.TypeString, value)
		_node.AnalysisStatus = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(therapysession.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(therapysession.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(therapysession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(therapysession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(therapysession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(therapysession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.SpeakerLabels(); ok {
		_spec.SetField(therapysession.FieldSpeakerLabels, field.TypeJSON, value)
		_node.SpeakerLabels = value
	}
	if value, ok := _c.mutation.LabelsConfidence(); ok {
		_spec.SetField(therapysession.FieldLabelsConfidence, field.TypeFloat64, value)
		_node.LabelsConfidence = &value
	}
	if value, ok := _c.mutation.MoodScore(); ok {
		_spec.SetField(therapysession.FieldMoodScore, field.TypeFloat64, value)
		_node.MoodScore = &value
	}
	if value, ok := _c.mutation.MoodConfidence(); ok {
		_spec.SetField(therapysession.FieldMoodConfidence, field.TypeFloat64, value)
		_node.MoodConfidence = &value
	}
	if value, ok := _c.mutation.MoodRationale(); ok {
		_spec.SetField(therapysession.FieldMoodRationale, field.TypeString, value)
		_node.MoodRationale = &value
	}
	if value, ok := _c.mutation.MoodIndicators(); ok {
		_spec.SetField(therapysession.FieldMoodIndicators, field.TypeJSON, value)
		_node.MoodIndicators = value
	}
	if value, ok := _c.mutation.EmotionalTone(); ok {
		_spec.SetField(therapysession.FieldEmotionalTone, field.TypeString, value)
		_node.EmotionalTone = &value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(therapysession.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	if value, ok := _c.mutation.ActionItems(); ok {
		_spec.SetField(therapysession.FieldActionItems, field.TypeJSON, value)
		_node.ActionItems = value
	}
	if value, ok := _c.mutation.Technique(); ok {
		_spec.SetField(therapysession.FieldTechnique, field.TypeString, value)
		_node.Technique = &value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(therapysession.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.ActionItemsSummary(); ok {
		_spec.SetField(therapysession.FieldActionItemsSummary, field.TypeString, value)
		_node.ActionItemsSummary = &value
	}
	if value, ok := _c.mutation.HasBreakthrough(); ok {
		_spec.SetField(therapysession.FieldHasBreakthrough, field.TypeBool, value)
		_node.HasBreakthrough = &value
	}
	if value, ok := _c.mutation.BreakthroughLabel(); ok {
		_spec.SetField(therapysession.FieldBreakthroughLabel, field.TypeString, value)
		_node.BreakthroughLabel = &value
	}
	if value, ok := _c.mutation.BreakthroughData(); ok {
		_spec.SetField(therapysession.FieldBreakthroughData, field.TypeJSON, value)
		_node.BreakthroughData = value
	}
	if value, ok := _c.mutation.MoodAnalyzedAt(); ok {
		_spec.SetField(therapysession.FieldMoodAnalyzedAt, field.TypeTime, value)
		_node.MoodAnalyzedAt = &value
	}
	if value, ok := _c.mutation.TopicsExtractedAt(); ok {
		_spec.SetField(therapysession.FieldTopicsExtractedAt, field.TypeTime, value)
		_node.TopicsExtractedAt = &value
	}
	if value, ok := _c.mutation.BreakthroughDetectedAt(); ok {
		_spec.SetField(therapysession.FieldBreakthroughDetectedAt, field.TypeTime, value)
		_node.BreakthroughDetectedAt = &value
	}
	if value, ok := _c.mutation.Wave1CompletedAt(); ok {
		_spec.SetField(therapysession.FieldWave1CompletedAt, field.TypeTime, value)
		_node.Wave1CompletedAt = &value
	}
	if value, ok := _c.mutation.DeepAnalysis(); ok {
		_spec.SetField(therapysession.FieldDeepAnalysis, field.TypeJSON, value)
		_node.DeepAnalysis = value
	}
	if value, ok := _c.mutation.AnalysisConfidence(); ok {
		_spec.SetField(therapysession.FieldAnalysisConfidence, field.TypeFloat64, value)
		_node.AnalysisConfidence = &value
	}
	if value, ok := _c.mutation.ProseAnalysis(); ok {
		_spec.SetField(therapysession.FieldProseAnalysis, field.TypeString, value)
		_node.ProseAnalysis = &value
	}
	if value, ok := _c.mutation.DeepAnalyzedAt(); ok {
		_spec.SetField(therapysession.FieldDeepAnalyzedAt, field.TypeTime, value)
		_node.DeepAnalyzedAt = &value
	}
	if value, ok := _c.mutation.ProseGeneratedAt(); ok {
		_spec.SetField(therapysession.FieldProseGeneratedAt, field.TypeTime, value)
		_node.ProseGeneratedAt = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   therapysession.PatientTable,
			Columns: []string{therapysession.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProcessingLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TherapySession.Create().
//		SetPatientID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TherapySessionUpsert) {
//			SetPatientID(v+v).
//		}).
//		Exec(ctx)
func (_c *TherapySessionCreate) OnConflict(opts ...sql.ConflictOption) *TherapySessionUpsertOne {
	_c.conflict = opts
	return &TherapySessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TherapySession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TherapySessionCreate) OnConflictColumns(columns ...string) *TherapySessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TherapySessionUpsertOne{
		create: _c,
	}
}

type (
	// TherapySessionUpsertOne is the builder for "upsert"-ing
	//  one TherapySession node.
	TherapySessionUpsertOne struct {
		create *TherapySessionCreate
	}

	// TherapySessionUpsert is the "OnConflict" setter.
	TherapySessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionDate sets the "session_date" field.
func (u *TherapySessionUpsert) SetSessionDate(v time.Time) *TherapySessionUpsert {
	u.Set(therapysession.FieldSessionDate, v)
	return u
}

// UpdateSessionDate sets the "session_date" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateSessionDate() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldSessionDate)
	return u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *TherapySessionUpsert) SetDurationMinutes(v int) *TherapySessionUpsert {
	u.Set(therapysession.FieldDurationMinutes, v)
	return u
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateDurationMinutes() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldDurationMinutes)
	return u
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *TherapySessionUpsert) AddDurationMinutes(v int) *TherapySessionUpsert {
	u.Add(therapysession.FieldDurationMinutes, v)
	return u
}

// SetTranscript sets the "transcript" field.
func (u *TherapySessionUpsert) SetTranscript(v []map[string]interface{}) *TherapySessionUpsert {
	u.Set(therapysession.FieldTranscript, v)
	return u
}

// UpdateTranscript sets the "transcript" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateTranscript() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldTranscript)
	return u
}

// SetProcessingStatus sets the "processing_status" field.
func (u *TherapySessionUpsert) SetProcessingStatus(v therapysession.ProcessingStatus) *TherapySessionUpsert {
	u.Set(therapysession.FieldProcessingStatus, v)
	return u
}

// UpdateProcessingStatus sets the "processing_status" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateProcessingStatus() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldProcessingStatus)
	return u
}

// SetAnalysisStatus sets the "analysis_status" field.
func (u *TherapySessionUpsert) SetAnalysisStatus(v string) *TherapySessionUpsert {
	u.Set(therapysession.FieldAnalysisStatus, v)
	return u
}

// UpdateAnalysisStatus sets the "analysis_status" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateAnalysisStatus() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldAnalysisStatus)
	return u
}

// ClearAnalysisStatus clears the value of the "analysis_status" field.
func (u *TherapySessionUpsert) ClearAnalysisStatus() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldAnalysisStatus)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *TherapySessionUpsert) SetPodID(v string) *TherapySessionUpsert {
	u.Set(therapysession.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdatePodID() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *TherapySessionUpsert) ClearPodID() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldPodID)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *TherapySessionUpsert) SetLastHeartbeatAt(v time.Time) *TherapySessionUpsert {
	u.Set(therapysession.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateLastHeartbeatAt() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *TherapySessionUpsert) ClearLastHeartbeatAt() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldLastHeartbeatAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *TherapySessionUpsert) SetStartedAt(v time.Time) *TherapySessionUpsert {
	u.Set(therapysession.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateStartedAt() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TherapySessionUpsert) ClearStartedAt() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *TherapySessionUpsert) SetCompletedAt(v time.Time) *TherapySessionUpsert {
	u.Set(therapysession.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateCompletedAt() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TherapySessionUpsert) ClearCompletedAt() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldCompletedAt)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *TherapySessionUpsert) SetErrorMessage(v string) *TherapySessionUpsert {
	u.Set(therapysession.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateErrorMessage() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *TherapySessionUpsert) ClearErrorMessage() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldErrorMessage)
	return u
}

// SetSpeakerLabels sets the "speaker_labels" field.
func (u *TherapySessionUpsert) SetSpeakerLabels(v map[string]string) *TherapySessionUpsert {
	u.Set(therapysession.FieldSpeakerLabels, v)
	return u
}

// UpdateSpeakerLabels sets the "speaker_labels" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateSpeakerLabels() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldSpeakerLabels)
	return u
}

// ClearSpeakerLabels clears the value of the "speaker_labels" field.
func (u *TherapySessionUpsert) ClearSpeakerLabels() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldSpeakerLabels)
	return u
}

// SetLabelsConfidence sets the "labels_confidence" field.
func (u *TherapySessionUpsert) SetLabelsConfidence(v float64) *TherapySessionUpsert {
	u.Set(therapysession.FieldLabelsConfidence, v)
	return u
}

// UpdateLabelsConfidence sets the "labels_confidence" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateLabelsConfidence() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldLabelsConfidence)
	return u
}

// AddLabelsConfidence adds v to the "labels_confidence" field.
func (u *TherapySessionUpsert) AddLabelsConfidence(v float64) *TherapySessionUpsert {
	u.Add(therapysession.FieldLabelsConfidence, v)
	return u
}

// ClearLabelsConfidence clears the value of the "labels_confidence" field.
func (u *TherapySessionUpsert) ClearLabelsConfidence() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldLabelsConfidence)
	return u
}

// SetMoodScore sets the "mood_score" field.
func (u *TherapySessionUpsert) SetMoodScore(v float64) *TherapySessionUpsert {
	u.Set(therapysession.FieldMoodScore, v)
	return u
}

// UpdateMoodScore sets the "mood_score" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateMoodScore() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldMoodScore)
	return u
}

// AddMoodScore adds v to the "mood_score" field.
func (u *TherapySessionUpsert) AddMoodScore(v float64) *TherapySessionUpsert {
	u.Add(therapysession.FieldMoodScore, v)
	return u
}

// ClearMoodScore clears the value of the "mood_score" field.
func (u *TherapySessionUpsert) ClearMoodScore() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldMoodScore)
	return u
}

// SetMoodConfidence sets the "mood_confidence" field.
func (u *TherapySessionUpsert) SetMoodConfidence(v float64) *TherapySessionUpsert {
	u.Set(therapysession.FieldMoodConfidence, v)
	return u
}

// UpdateMoodConfidence sets the "mood_confidence" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateMoodConfidence() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldMoodConfidence)
	return u
}

// AddMoodConfidence adds v to the "mood_confidence" field.
func (u *TherapySessionUpsert) AddMoodConfidence(v float64) *TherapySessionUpsert {
	u.Add(therapysession.FieldMoodConfidence, v)
	return u
}

// ClearMoodConfidence clears the value of the "mood_confidence" field.
func (u *TherapySessionUpsert) ClearMoodConfidence() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldMoodConfidence)
	return u
}

// SetMoodRationale sets the "mood_rationale" field.
func (u *TherapySessionUpsert) SetMoodRationale(v string) *TherapySessionUpsert {
	u.Set(therapysession.FieldMoodRationale, v)
	return u
}

// UpdateMoodRationale sets the "mood_rationale" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateMoodRationale() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldMoodRationale)
	return u
}

// ClearMoodRationale clears the value of the "mood_rationale" field.
func (u *TherapySessionUpsert) ClearMoodRationale() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldMoodRationale)
	return u
}

// SetMoodIndicators sets the "mood_indicators" field.
func (u *TherapySessionUpsert) SetMoodIndicators(v []string) *TherapySessionUpsert {
	u.Set(therapysession.FieldMoodIndicators, v)
	return u
}

// UpdateMoodIndicators sets the "mood_indicators" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateMoodIndicators() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldMoodIndicators)
	return u
}

// ClearMoodIndicators clears the value of the "mood_indicators" field.
func (u *TherapySessionUpsert) ClearMoodIndicators() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldMoodIndicators)
	return u
}

// SetEmotionalTone sets the "emotional_tone" field.
func (u *TherapySessionUpsert) SetEmotionalTone(v string) *TherapySessionUpsert {
	u.Set(therapysession.FieldEmotionalTone, v)
	return u
}

// UpdateEmotionalTone sets the "emotional_tone" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateEmotionalTone() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldEmotionalTone)
	return u
}

// ClearEmotionalTone clears the value of the "emotional_tone" field.
func (u *TherapySessionUpsert) ClearEmotionalTone() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldEmotionalTone)
	return u
}

// SetTopics sets the "topics" field.
func (u *TherapySessionUpsert) SetTopics(v []string) *TherapySessionUpsert {
	u.Set(therapysession.FieldTopics, v)
	return u
}

// UpdateTopics sets the "topics" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateTopics() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldTopics)
	return u
}

// ClearTopics clears the value of the "topics" field.
func (u *TherapySessionUpsert) ClearTopics() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldTopics)
	return u
}

// SetActionItems sets the "action_items" field.
func (u *TherapySessionUpsert) SetActionItems(v []string) *TherapySessionUpsert {
	u.Set(therapysession.FieldActionItems, v)
	return u
}

// UpdateActionItems sets the "action_items" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateActionItems() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldActionItems)
	return u
}

// ClearActionItems clears the value of the "action_items" field.
func (u *TherapySessionUpsert) ClearActionItems() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldActionItems)
	return u
}

// SetTechnique sets the "technique" field.
func (u *TherapySessionUpsert) SetTechnique(v string) *TherapySessionUpsert {
	u.Set(therapysession.FieldTechnique, v)
	return u
}

// UpdateTechnique sets the "technique" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateTechnique() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldTechnique)
	return u
}

// ClearTechnique clears the value of the "technique" field.
func (u *TherapySessionUpsert) ClearTechnique() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldTechnique)
	return u
}

// SetSummary sets the "summary" field.
func (u *TherapySessionUpsert) SetSummary(v string) *TherapySessionUpsert {
	u.Set(therapysession.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateSummary() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *TherapySessionUpsert) ClearSummary() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldSummary)
	return u
}

// SetActionItemsSummary sets the "action_items_summary" field.
func (u *TherapySessionUpsert) SetActionItemsSummary(v string) *TherapySessionUpsert {
	u.Set(therapysession.FieldActionItemsSummary, v)
	return u
}

// UpdateActionItemsSummary sets the "action_items_summary" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateActionItemsSummary() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldActionItemsSummary)
	return u
}

// ClearActionItemsSummary clears the value of the "action_items_summary" field.
func (u *TherapySessionUpsert) ClearActionItemsSummary() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldActionItemsSummary)
	return u
}

// SetHasBreakthrough sets the "has_breakthrough" field.
func (u *TherapySessionUpsert) SetHasBreakthrough(v bool) *TherapySessionUpsert {
	u.Set(therapysession.FieldHasBreakthrough, v)
	return u
}

// UpdateHasBreakthrough sets the "has_breakthrough" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateHasBreakthrough() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldHasBreakthrough)
	return u
}

// ClearHasBreakthrough clears the value of the "has_breakthrough" field.
func (u *TherapySessionUpsert) ClearHasBreakthrough() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldHasBreakthrough)
	return u
}

// SetBreakthroughLabel sets the "breakthrough_label" field.
func (u *TherapySessionUpsert) SetBreakthroughLabel(v string) *TherapySessionUpsert {
	u.Set(therapysession.FieldBreakthroughLabel, v)
	return u
}

// UpdateBreakthroughLabel sets the "breakthrough_label" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateBreakthroughLabel() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldBreakthroughLabel)
	return u
}

// ClearBreakthroughLabel clears the value of the "breakthrough_label" field.
func (u *TherapySessionUpsert) ClearBreakthroughLabel() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldBreakthroughLabel)
	return u
}

// SetBreakthroughData sets the "breakthrough_data" field.
func (u *TherapySessionUpsert) SetBreakthroughData(v map[string]interface{}) *TherapySessionUpsert {
	u.Set(therapysession.FieldBreakthroughData, v)
	return u
}

// UpdateBreakthroughData sets the "breakthrough_data" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateBreakthroughData() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldBreakthroughData)
	return u
}

// ClearBreakthroughData clears the value of the "breakthrough_data" field.
func (u *TherapySessionUpsert) ClearBreakthroughData() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldBreakthroughData)
	return u
}

// SetMoodAnalyzedAt sets the "mood_analyzed_at" field.
func (u *TherapySessionUpsert) SetMoodAnalyzedAt(v time.Time) *TherapySessionUpsert {
	u.Set(therapysession.FieldMoodAnalyzedAt, v)
	return u
}

// UpdateMoodAnalyzedAt sets the "mood_analyzed_at" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateMoodAnalyzedAt() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldMoodAnalyzedAt)
	return u
}

// ClearMoodAnalyzedAt clears the value of the "mood_analyzed_at" field.
func (u *TherapySessionUpsert) ClearMoodAnalyzedAt() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldMoodAnalyzedAt)
	return u
}

// SetTopicsExtractedAt sets the "topics_extracted_at" field.
func (u *TherapySessionUpsert) SetTopicsExtractedAt(v time.Time) *TherapySessionUpsert {
	u.Set(therapysession.FieldTopicsExtractedAt, v)
	return u
}

// UpdateTopicsExtractedAt sets the "topics_extracted_at" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateTopicsExtractedAt() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldTopicsExtractedAt)
	return u
}

// ClearTopicsExtractedAt clears the value of the "topics_extracted_at" field.
func (u *TherapySessionUpsert) ClearTopicsExtractedAt() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldTopicsExtractedAt)
	return u
}

// SetBreakthroughDetectedAt sets the "breakthrough_detected_at" field.
func (u *TherapySessionUpsert) SetBreakthroughDetectedAt(v time.Time) *TherapySessionUpsert {
	u.Set(therapysession.FieldBreakthroughDetectedAt, v)
	return u
}

// UpdateBreakthroughDetectedAt sets the "breakthrough_detected_at" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateBreakthroughDetectedAt() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldBreakthroughDetectedAt)
	return u
}

// ClearBreakthroughDetectedAt clears the value of the "breakthrough_detected_at" field.
func (u *TherapySessionUpsert) ClearBreakthroughDetectedAt() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldBreakthroughDetectedAt)
	return u
}

// SetWave1CompletedAt sets the "wave1_completed_at" field.
func (u *TherapySessionUpsert) SetWave1CompletedAt(v time.Time) *TherapySessionUpsert {
	u.Set(therapysession.FieldWave1CompletedAt, v)
	return u
}

// UpdateWave1CompletedAt sets the "wave1_completed_at" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateWave1CompletedAt() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldWave1CompletedAt)
	return u
}

// ClearWave1CompletedAt clears the value of the "wave1_completed_at" field.
func (u *TherapySessionUpsert) ClearWave1CompletedAt() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldWave1CompletedAt)
	return u
}

// SetDeepAnalysis sets the "deep_analysis" field.
func (u *TherapySessionUpsert) SetDeepAnalysis(v map[string]interface{}) *TherapySessionUpsert {
	u.Set(therapysession.FieldDeepAnalysis, v)
	return u
}

// UpdateDeepAnalysis sets the "deep_analysis" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateDeepAnalysis() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldDeepAnalysis)
	return u
}

// ClearDeepAnalysis clears the value of the "deep_analysis" field.
func (u *TherapySessionUpsert) ClearDeepAnalysis() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldDeepAnalysis)
	return u
}

// SetAnalysisConfidence sets the "analysis_confidence" field.
func (u *TherapySessionUpsert) SetAnalysisConfidence(v float64) *TherapySessionUpsert {
	u.Set(therapysession.FieldAnalysisConfidence, v)
	return u
}

// UpdateAnalysisConfidence sets the "analysis_confidence" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateAnalysisConfidence() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldAnalysisConfidence)
	return u
}

// AddAnalysisConfidence adds v to the "analysis_confidence" field.
func (u *TherapySessionUpsert) AddAnalysisConfidence(v float64) *TherapySessionUpsert {
	u.Add(therapysession.FieldAnalysisConfidence, v)
	return u
}

// ClearAnalysisConfidence clears the value of the "analysis_confidence" field.
func (u *TherapySessionUpsert) ClearAnalysisConfidence() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldAnalysisConfidence)
	return u
}

// SetProseAnalysis sets the "prose_analysis" field.
func (u *TherapySessionUpsert) SetProseAnalysis(v string) *TherapySessionUpsert {
	u.Set(therapysession.FieldProseAnalysis, v)
	return u
}

// UpdateProseAnalysis sets the "prose_analysis" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateProseAnalysis() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldProseAnalysis)
	return u
}

// ClearProseAnalysis clears the value of the "prose_analysis" field.
func (u *TherapySessionUpsert) ClearProseAnalysis() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldProseAnalysis)
	return u
}

// SetDeepAnalyzedAt sets the "deep_analyzed_at" field.
func (u *TherapySessionUpsert) SetDeepAnalyzedAt(v time.Time) *TherapySessionUpsert {
	u.Set(therapysession.FieldDeepAnalyzedAt, v)
	return u
}

// UpdateDeepAnalyzedAt sets the "deep_analyzed_at" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateDeepAnalyzedAt() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldDeepAnalyzedAt)
	return u
}

// ClearDeepAnalyzedAt clears the value of the "deep_analyzed_at" field.
func (u *TherapySessionUpsert) ClearDeepAnalyzedAt() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldDeepAnalyzedAt)
	return u
}

// SetProseGeneratedAt sets the "prose_generated_at" field.
func (u *TherapySessionUpsert) SetProseGeneratedAt(v time.Time) *TherapySessionUpsert {
	u.Set(therapysession.FieldProseGeneratedAt, v)
	return u
}

// UpdateProseGeneratedAt sets the "prose_generated_at" field to the value that was provided on create.
func (u *TherapySessionUpsert) UpdateProseGeneratedAt() *TherapySessionUpsert {
	u.SetExcluded(therapysession.FieldProseGeneratedAt)
	return u
}

// ClearProseGeneratedAt clears the value of the "prose_generated_at" field.
func (u *TherapySessionUpsert) ClearProseGeneratedAt() *TherapySessionUpsert {
	u.SetNull(therapysession.FieldProseGeneratedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TherapySession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(therapysession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TherapySessionUpsertOne) UpdateNewValues() *TherapySessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(therapysession.FieldID)
		}
		if _, exists := u.create.mutation.PatientID(); exists {
			s.SetIgnore(therapysession.FieldPatientID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(therapysession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TherapySession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TherapySessionUpsertOne) Ignore() *TherapySessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TherapySessionUpsertOne) DoNothing() *TherapySessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TherapySessionCreate.OnConflict
// documentation for more info.
func (u *TherapySessionUpsertOne) Update(set func(*TherapySessionUpsert)) *TherapySessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TherapySessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionDate sets the "session_date" field.
func (u *TherapySessionUpsertOne) SetSessionDate(v time.Time) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetSessionDate(v)
	})
}

// UpdateSessionDate sets the "session_date" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateSessionDate() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateSessionDate()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *TherapySessionUpsertOne) SetDurationMinutes(v int) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *TherapySessionUpsertOne) AddDurationMinutes(v int) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateDurationMinutes() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetTranscript sets the "transcript" field.
func (u *TherapySessionUpsertOne) SetTranscript(v []map[string]interface{}) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetTranscript(v)
	})
}

// UpdateTranscript sets the "transcript" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateTranscript() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateTranscript()
	})
}

// SetProcessingStatus sets the "processing_status" field.
func (u *TherapySessionUpsertOne) SetProcessingStatus(v therapysession.ProcessingStatus) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetProcessingStatus(v)
	})
}

// UpdateProcessingStatus sets the "processing_status" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateProcessingStatus() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateProcessingStatus()
	})
}

// SetAnalysisStatus sets the "analysis_status" field.
func (u *TherapySessionUpsertOne) SetAnalysisStatus(v string) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetAnalysisStatus(v)
	})
}

// UpdateAnalysisStatus sets the "analysis_status" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateAnalysisStatus() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateAnalysisStatus()
	})
}

// ClearAnalysisStatus clears the value of the "analysis_status" field.
func (u *TherapySessionUpsertOne) ClearAnalysisStatus() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearAnalysisStatus()
	})
}

// SetPodID sets the "pod_id" field.
func (u *TherapySessionUpsertOne) SetPodID(v string) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdatePodID() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *TherapySessionUpsertOne) ClearPodID() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *TherapySessionUpsertOne) SetLastHeartbeatAt(v time.Time) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateLastHeartbeatAt() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *TherapySessionUpsertOne) ClearLastHeartbeatAt() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TherapySessionUpsertOne) SetStartedAt(v time.Time) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateStartedAt() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TherapySessionUpsertOne) ClearStartedAt() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TherapySessionUpsertOne) SetCompletedAt(v time.Time) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateCompletedAt() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TherapySessionUpsertOne) ClearCompletedAt() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *TherapySessionUpsertOne) SetErrorMessage(v string) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateErrorMessage() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *TherapySessionUpsertOne) ClearErrorMessage() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetSpeakerLabels sets the "speaker_labels" field.
func (u *TherapySessionUpsertOne) SetSpeakerLabels(v map[string]string) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetSpeakerLabels(v)
	})
}

// UpdateSpeakerLabels sets the "speaker_labels" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateSpeakerLabels() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateSpeakerLabels()
	})
}

// ClearSpeakerLabels clears the value of the "speaker_labels" field.
func (u *TherapySessionUpsertOne) ClearSpeakerLabels() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearSpeakerLabels()
	})
}

// SetLabelsConfidence sets the "labels_confidence" field.
func (u *TherapySessionUpsertOne) SetLabelsConfidence(v float64) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetLabelsConfidence(v)
	})
}

// AddLabelsConfidence adds v to the "labels_confidence" field.
func (u *TherapySessionUpsertOne) AddLabelsConfidence(v float64) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.AddLabelsConfidence(v)
	})
}

// UpdateLabelsConfidence sets the "labels_confidence" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateLabelsConfidence() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateLabelsConfidence()
	})
}

// ClearLabelsConfidence clears the value of the "labels_confidence" field.
func (u *TherapySessionUpsertOne) ClearLabelsConfidence() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearLabelsConfidence()
	})
}

// SetMoodScore sets the "mood_score" field.
func (u *TherapySessionUpsertOne) SetMoodScore(v float64) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetMoodScore(v)
	})
}

// AddMoodScore adds v to the "mood_score" field.
func (u *TherapySessionUpsertOne) AddMoodScore(v float64) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.AddMoodScore(v)
	})
}

// UpdateMoodScore sets the "mood_score" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateMoodScore() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateMoodScore()
	})
}

// ClearMoodScore clears the value of the "mood_score" field.
func (u *TherapySessionUpsertOne) ClearMoodScore() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearMoodScore()
	})
}

// SetMoodConfidence sets the "mood_confidence" field.
func (u *TherapySessionUpsertOne) SetMoodConfidence(v float64) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetMoodConfidence(v)
	})
}

// AddMoodConfidence adds v to the "mood_confidence" field.
func (u *TherapySessionUpsertOne) AddMoodConfidence(v float64) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.AddMoodConfidence(v)
	})
}

// UpdateMoodConfidence sets the "mood_confidence" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateMoodConfidence() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateMoodConfidence()
	})
}

// ClearMoodConfidence clears the value of the "mood_confidence" field.
func (u *TherapySessionUpsertOne) ClearMoodConfidence() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearMoodConfidence()
	})
}

// SetMoodRationale sets the "mood_rationale" field.
func (u *TherapySessionUpsertOne) SetMoodRationale(v string) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetMoodRationale(v)
	})
}

// UpdateMoodRationale sets the "mood_rationale" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateMoodRationale() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateMoodRationale()
	})
}

// ClearMoodRationale clears the value of the "mood_rationale" field.
func (u *TherapySessionUpsertOne) ClearMoodRationale() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearMoodRationale()
	})
}

// SetMoodIndicators sets the "mood_indicators" field.
func (u *TherapySessionUpsertOne) SetMoodIndicators(v []string) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetMoodIndicators(v)
	})
}

// UpdateMoodIndicators sets the "mood_indicators" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateMoodIndicators() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateMoodIndicators()
	})
}

// ClearMoodIndicators clears the value of the "mood_indicators" field.
func (u *TherapySessionUpsertOne) ClearMoodIndicators() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearMoodIndicators()
	})
}

// SetEmotionalTone sets the "emotional_tone" field.
func (u *TherapySessionUpsertOne) SetEmotionalTone(v string) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetEmotionalTone(v)
	})
}

// UpdateEmotionalTone sets the "emotional_tone" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateEmotionalTone() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateEmotionalTone()
	})
}

// ClearEmotionalTone clears the value of the "emotional_tone" field.
func (u *TherapySessionUpsertOne) ClearEmotionalTone() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearEmotionalTone()
	})
}

// SetTopics sets the "topics" field.
func (u *TherapySessionUpsertOne) SetTopics(v []string) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetTopics(v)
	})
}

// UpdateTopics sets the "topics" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateTopics() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateTopics()
	})
}

// ClearTopics clears the value of the "topics" field.
func (u *TherapySessionUpsertOne) ClearTopics() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearTopics()
	})
}

// SetActionItems sets the "action_items" field.
func (u *TherapySessionUpsertOne) SetActionItems(v []string) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetActionItems(v)
	})
}

// UpdateActionItems sets the "action_items" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateActionItems() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateActionItems()
	})
}

// ClearActionItems clears the value of the "action_items" field.
func (u *TherapySessionUpsertOne) ClearActionItems() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearActionItems()
	})
}

// SetTechnique sets the "technique" field.
func (u *TherapySessionUpsertOne) SetTechnique(v string) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetTechnique(v)
	})
}

// UpdateTechnique sets the "technique" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateTechnique() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateTechnique()
	})
}

// ClearTechnique clears the value of the "technique" field.
func (u *TherapySessionUpsertOne) ClearTechnique() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearTechnique()
	})
}

// SetSummary sets the "summary" field.
func (u *TherapySessionUpsertOne) SetSummary(v string) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateSummary() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *TherapySessionUpsertOne) ClearSummary() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearSummary()
	})
}

// SetActionItemsSummary sets the "action_items_summary" field.
func (u *TherapySessionUpsertOne) SetActionItemsSummary(v string) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetActionItemsSummary(v)
	})
}

// UpdateActionItemsSummary sets the "action_items_summary" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateActionItemsSummary() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateActionItemsSummary()
	})
}

// ClearActionItemsSummary clears the value of the "action_items_summary" field.
func (u *TherapySessionUpsertOne) ClearActionItemsSummary() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearActionItemsSummary()
	})
}

// SetHasBreakthrough sets the "has_breakthrough" field.
func (u *TherapySessionUpsertOne) SetHasBreakthrough(v bool) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetHasBreakthrough(v)
	})
}

// UpdateHasBreakthrough sets the "has_breakthrough" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateHasBreakthrough() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateHasBreakthrough()
	})
}

// ClearHasBreakthrough clears the value of the "has_breakthrough" field.
func (u *TherapySessionUpsertOne) ClearHasBreakthrough() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearHasBreakthrough()
	})
}

// SetBreakthroughLabel sets the "breakthrough_label" field.
func (u *TherapySessionUpsertOne) SetBreakthroughLabel(v string) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetBreakthroughLabel(v)
	})
}

// UpdateBreakthroughLabel sets the "breakthrough_label" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateBreakthroughLabel() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateBreakthroughLabel()
	})
}

// ClearBreakthroughLabel clears the value of the "breakthrough_label" field.
func (u *TherapySessionUpsertOne) ClearBreakthroughLabel() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearBreakthroughLabel()
	})
}

// SetBreakthroughData sets the "breakthrough_data" field.
func (u *TherapySessionUpsertOne) SetBreakthroughData(v map[string]interface{}) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetBreakthroughData(v)
	})
}

// UpdateBreakthroughData sets the "breakthrough_data" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateBreakthroughData() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateBreakthroughData()
	})
}

// ClearBreakthroughData clears the value of the "breakthrough_data" field.
func (u *TherapySessionUpsertOne) ClearBreakthroughData() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearBreakthroughData()
	})
}

// SetMoodAnalyzedAt sets the "mood_analyzed_at" field.
func (u *TherapySessionUpsertOne) SetMoodAnalyzedAt(v time.Time) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetMoodAnalyzedAt(v)
	})
}

// UpdateMoodAnalyzedAt sets the "mood_analyzed_at" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateMoodAnalyzedAt() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateMoodAnalyzedAt()
	})
}

// ClearMoodAnalyzedAt clears the value of the "mood_analyzed_at" field.
func (u *TherapySessionUpsertOne) ClearMoodAnalyzedAt() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearMoodAnalyzedAt()
	})
}

// SetTopicsExtractedAt sets the "topics_extracted_at" field.
func (u *TherapySessionUpsertOne) SetTopicsExtractedAt(v time.Time) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetTopicsExtractedAt(v)
	})
}

// UpdateTopicsExtractedAt sets the "topics_extracted_at" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateTopicsExtractedAt() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateTopicsExtractedAt()
	})
}

// ClearTopicsExtractedAt clears the value of the "topics_extracted_at" field.
func (u *TherapySessionUpsertOne) ClearTopicsExtractedAt() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearTopicsExtractedAt()
	})
}

// SetBreakthroughDetectedAt sets the "breakthrough_detected_at" field.
func (u *TherapySessionUpsertOne) SetBreakthroughDetectedAt(v time.Time) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetBreakthroughDetectedAt(v)
	})
}

// UpdateBreakthroughDetectedAt sets the "breakthrough_detected_at" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateBreakthroughDetectedAt() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateBreakthroughDetectedAt()
	})
}

// ClearBreakthroughDetectedAt clears the value of the "breakthrough_detected_at" field.
func (u *TherapySessionUpsertOne) ClearBreakthroughDetectedAt() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearBreakthroughDetectedAt()
	})
}

// SetWave1CompletedAt sets the "wave1_completed_at" field.
func (u *TherapySessionUpsertOne) SetWave1CompletedAt(v time.Time) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetWave1CompletedAt(v)
	})
}

// UpdateWave1CompletedAt sets the "wave1_completed_at" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateWave1CompletedAt() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateWave1CompletedAt()
	})
}

// ClearWave1CompletedAt clears the value of the "wave1_completed_at" field.
func (u *TherapySessionUpsertOne) ClearWave1CompletedAt() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearWave1CompletedAt()
	})
}

// SetDeepAnalysis sets the "deep_analysis" field.
func (u *TherapySessionUpsertOne) SetDeepAnalysis(v map[string]interface{}) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetDeepAnalysis(v)
	})
}

// UpdateDeepAnalysis sets the "deep_analysis" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateDeepAnalysis() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateDeepAnalysis()
	})
}

// ClearDeepAnalysis clears the value of the "deep_analysis" field.
func (u *TherapySessionUpsertOne) ClearDeepAnalysis() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearDeepAnalysis()
	})
}

// SetAnalysisConfidence sets the "analysis_confidence" field.
func (u *TherapySessionUpsertOne) SetAnalysisConfidence(v float64) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetAnalysisConfidence(v)
	})
}

// AddAnalysisConfidence adds v to the "analysis_confidence" field.
func (u *TherapySessionUpsertOne) AddAnalysisConfidence(v float64) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.AddAnalysisConfidence(v)
	})
}

// UpdateAnalysisConfidence sets the "analysis_confidence" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateAnalysisConfidence() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateAnalysisConfidence()
	})
}

// ClearAnalysisConfidence clears the value of the "analysis_confidence" field.
func (u *TherapySessionUpsertOne) ClearAnalysisConfidence() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearAnalysisConfidence()
	})
}

// SetProseAnalysis sets the "prose_analysis" field.
func (u *TherapySessionUpsertOne) SetProseAnalysis(v string) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetProseAnalysis(v)
	})
}

// UpdateProseAnalysis sets the "prose_analysis" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateProseAnalysis() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateProseAnalysis()
	})
}

// ClearProseAnalysis clears the value of the "prose_analysis" field.
func (u *TherapySessionUpsertOne) ClearProseAnalysis() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearProseAnalysis()
	})
}

// SetDeepAnalyzedAt sets the "deep_analyzed_at" field.
func (u *TherapySessionUpsertOne) SetDeepAnalyzedAt(v time.Time) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetDeepAnalyzedAt(v)
	})
}

// UpdateDeepAnalyzedAt sets the "deep_analyzed_at" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateDeepAnalyzedAt() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateDeepAnalyzedAt()
	})
}

// ClearDeepAnalyzedAt clears the value of the "deep_analyzed_at" field.
func (u *TherapySessionUpsertOne) ClearDeepAnalyzedAt() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearDeepAnalyzedAt()
	})
}

// SetProseGeneratedAt sets the "prose_generated_at" field.
func (u *TherapySessionUpsertOne) SetProseGeneratedAt(v time.Time) *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetProseGeneratedAt(v)
	})
}

// UpdateProseGeneratedAt sets the "prose_generated_at" field to the value that was provided on create.
func (u *TherapySessionUpsertOne) UpdateProseGeneratedAt() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateProseGeneratedAt()
	})
}

// ClearProseGeneratedAt clears the value of the "prose_generated_at" field.
func (u *TherapySessionUpsertOne) ClearProseGeneratedAt() *TherapySessionUpsertOne {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearProseGeneratedAt()
	})
}

// Exec executes the query.
func (u *TherapySessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TherapySessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TherapySessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TherapySessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TherapySessionUpsertOne.ID is not supported by MySQL driver. Use TherapySessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TherapySessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TherapySessionCreateBulk is the builder for creating many TherapySession entities in bulk.
type TherapySessionCreateBulk struct {
	config
	err      error
	builders []*TherapySessionCreate
	conflict []sql.ConflictOption
}

// Save creates the TherapySession entities in the database.
func (_c *TherapySessionCreateBulk) Save(ctx context.Context) ([]*TherapySession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TherapySession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TherapySessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TherapySessionCreateBulk) SaveX(ctx context.Context) []*TherapySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TherapySessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TherapySessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TherapySession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TherapySessionUpsert) {
//			SetPatientID(v+v).
//		}).
//		Exec(ctx)
func (_c *TherapySessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *TherapySessionUpsertBulk {
	_c.conflict = opts
	return &TherapySessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TherapySession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TherapySessionCreateBulk) OnConflictColumns(columns ...string) *TherapySessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TherapySessionUpsertBulk{
		create: _c,
	}
}

// TherapySessionUpsertBulk is the builder for "upsert"-ing
// a bulk of TherapySession nodes.
type TherapySessionUpsertBulk struct {
	create *TherapySessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TherapySession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(therapysession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TherapySessionUpsertBulk) UpdateNewValues() *TherapySessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(therapysession.FieldID)
			}
			if _, exists := b.mutation.PatientID(); exists {
				s.SetIgnore(therapysession.FieldPatientID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(therapysession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TherapySession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TherapySessionUpsertBulk) Ignore() *TherapySessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TherapySessionUpsertBulk) DoNothing() *TherapySessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TherapySessionCreateBulk.OnConflict
// documentation for more info.
func (u *TherapySessionUpsertBulk) Update(set func(*TherapySessionUpsert)) *TherapySessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TherapySessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionDate sets the "session_date" field.
func (u *TherapySessionUpsertBulk) SetSessionDate(v time.Time) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetSessionDate(v)
	})
}

// UpdateSessionDate sets the "session_date" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateSessionDate() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateSessionDate()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *TherapySessionUpsertBulk) SetDurationMinutes(v int) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *TherapySessionUpsertBulk) AddDurationMinutes(v int) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateDurationMinutes() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetTranscript sets the "transcript" field.
func (u *TherapySessionUpsertBulk) SetTranscript(v []map[string]interface{}) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetTranscript(v)
	})
}

// UpdateTranscript sets the "transcript" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateTranscript() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateTranscript()
	})
}

// SetProcessingStatus sets the "processing_status" field.
func (u *TherapySessionUpsertBulk) SetProcessingStatus(v therapysession.ProcessingStatus) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetProcessingStatus(v)
	})
}

// UpdateProcessingStatus sets the "processing_status" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateProcessingStatus() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateProcessingStatus()
	})
}

// SetAnalysisStatus sets the "analysis_status" field.
func (u *TherapySessionUpsertBulk) SetAnalysisStatus(v string) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetAnalysisStatus(v)
	})
}

// UpdateAnalysisStatus sets the "analysis_status" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateAnalysisStatus() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateAnalysisStatus()
	})
}

// ClearAnalysisStatus clears the value of the "analysis_status" field.
func (u *TherapySessionUpsertBulk) ClearAnalysisStatus() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearAnalysisStatus()
	})
}

// SetPodID sets the "pod_id" field.
func (u *TherapySessionUpsertBulk) SetPodID(v string) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdatePodID() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *TherapySessionUpsertBulk) ClearPodID() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *TherapySessionUpsertBulk) SetLastHeartbeatAt(v time.Time) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateLastHeartbeatAt() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *TherapySessionUpsertBulk) ClearLastHeartbeatAt() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TherapySessionUpsertBulk) SetStartedAt(v time.Time) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateStartedAt() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TherapySessionUpsertBulk) ClearStartedAt() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TherapySessionUpsertBulk) SetCompletedAt(v time.Time) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateCompletedAt() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TherapySessionUpsertBulk) ClearCompletedAt() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *TherapySessionUpsertBulk) SetErrorMessage(v string) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateErrorMessage() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *TherapySessionUpsertBulk) ClearErrorMessage() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetSpeakerLabels sets the "speaker_labels" field.
func (u *TherapySessionUpsertBulk) SetSpeakerLabels(v map[string]string) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetSpeakerLabels(v)
	})
}

// UpdateSpeakerLabels sets the "speaker_labels" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateSpeakerLabels() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateSpeakerLabels()
	})
}

// ClearSpeakerLabels clears the value of the "speaker_labels" field.
func (u *TherapySessionUpsertBulk) ClearSpeakerLabels() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearSpeakerLabels()
	})
}

// SetLabelsConfidence sets the "labels_confidence" field.
func (u *TherapySessionUpsertBulk) SetLabelsConfidence(v float64) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetLabelsConfidence(v)
	})
}

// AddLabelsConfidence adds v to the "labels_confidence" field.
func (u *TherapySessionUpsertBulk) AddLabelsConfidence(v float64) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.AddLabelsConfidence(v)
	})
}

// UpdateLabelsConfidence sets the "labels_confidence" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateLabelsConfidence() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateLabelsConfidence()
	})
}

// ClearLabelsConfidence clears the value of the "labels_confidence" field.
func (u *TherapySessionUpsertBulk) ClearLabelsConfidence() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearLabelsConfidence()
	})
}

// SetMoodScore sets the "mood_score" field.
func (u *TherapySessionUpsertBulk) SetMoodScore(v float64) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetMoodScore(v)
	})
}

// AddMoodScore adds v to the "mood_score" field.
func (u *TherapySessionUpsertBulk) AddMoodScore(v float64) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.AddMoodScore(v)
	})
}

// UpdateMoodScore sets the "mood_score" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateMoodScore() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateMoodScore()
	})
}

// ClearMoodScore clears the value of the "mood_score" field.
func (u *TherapySessionUpsertBulk) ClearMoodScore() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearMoodScore()
	})
}

// SetMoodConfidence sets the "mood_confidence" field.
func (u *TherapySessionUpsertBulk) SetMoodConfidence(v float64) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetMoodConfidence(v)
	})
}

// AddMoodConfidence adds v to the "mood_confidence" field.
func (u *TherapySessionUpsertBulk) AddMoodConfidence(v float64) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.AddMoodConfidence(v)
	})
}

// UpdateMoodConfidence sets the "mood_confidence" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateMoodConfidence() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateMoodConfidence()
	})
}

// ClearMoodConfidence clears the value of the "mood_confidence" field.
func (u *TherapySessionUpsertBulk) ClearMoodConfidence() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearMoodConfidence()
	})
}

// SetMoodRationale sets the "mood_rationale" field.
func (u *TherapySessionUpsertBulk) SetMoodRationale(v string) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetMoodRationale(v)
	})
}

// UpdateMoodRationale sets the "mood_rationale" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateMoodRationale() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateMoodRationale()
	})
}

// ClearMoodRationale clears the value of the "mood_rationale" field.
func (u *TherapySessionUpsertBulk) ClearMoodRationale() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearMoodRationale()
	})
}

// SetMoodIndicators sets the "mood_indicators" field.
func (u *TherapySessionUpsertBulk) SetMoodIndicators(v []string) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetMoodIndicators(v)
	})
}

// UpdateMoodIndicators sets the "mood_indicators" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateMoodIndicators() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateMoodIndicators()
	})
}

// ClearMoodIndicators clears the value of the "mood_indicators" field.
func (u *TherapySessionUpsertBulk) ClearMoodIndicators() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearMoodIndicators()
	})
}

// SetEmotionalTone sets the "emotional_tone" field.
func (u *TherapySessionUpsertBulk) SetEmotionalTone(v string) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetEmotionalTone(v)
	})
}

// UpdateEmotionalTone sets the "emotional_tone" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateEmotionalTone() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateEmotionalTone()
	})
}

// ClearEmotionalTone clears the value of the "emotional_tone" field.
func (u *TherapySessionUpsertBulk) ClearEmotionalTone() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearEmotionalTone()
	})
}

// SetTopics sets the "topics" field.
func (u *TherapySessionUpsertBulk) SetTopics(v []string) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetTopics(v)
	})
}

// UpdateTopics sets the "topics" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateTopics() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateTopics()
	})
}

// ClearTopics clears the value of the "topics" field.
func (u *TherapySessionUpsertBulk) ClearTopics() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearTopics()
	})
}

// SetActionItems sets the "action_items" field.
func (u *TherapySessionUpsertBulk) SetActionItems(v []string) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetActionItems(v)
	})
}

// UpdateActionItems sets the "action_items" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateActionItems() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateActionItems()
	})
}

// ClearActionItems clears the value of the "action_items" field.
func (u *TherapySessionUpsertBulk) ClearActionItems() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearActionItems()
	})
}

// SetTechnique sets the "technique" field.
func (u *TherapySessionUpsertBulk) SetTechnique(v string) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetTechnique(v)
	})
}

// UpdateTechnique sets the "technique" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateTechnique() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateTechnique()
	})
}

// ClearTechnique clears the value of the "technique" field.
func (u *TherapySessionUpsertBulk) ClearTechnique() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearTechnique()
	})
}

// SetSummary sets the "summary" field.
func (u *TherapySessionUpsertBulk) SetSummary(v string) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateSummary() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *TherapySessionUpsertBulk) ClearSummary() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearSummary()
	})
}

// SetActionItemsSummary sets the "action_items_summary" field.
func (u *TherapySessionUpsertBulk) SetActionItemsSummary(v string) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetActionItemsSummary(v)
	})
}

// UpdateActionItemsSummary sets the "action_items_summary" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateActionItemsSummary() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateActionItemsSummary()
	})
}

// ClearActionItemsSummary clears the value of the "action_items_summary" field.
func (u *TherapySessionUpsertBulk) ClearActionItemsSummary() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearActionItemsSummary()
	})
}

// SetHasBreakthrough sets the "has_breakthrough" field.
func (u *TherapySessionUpsertBulk) SetHasBreakthrough(v bool) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetHasBreakthrough(v)
	})
}

// UpdateHasBreakthrough sets the "has_breakthrough" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateHasBreakthrough() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateHasBreakthrough()
	})
}

// ClearHasBreakthrough clears the value of the "has_breakthrough" field.
func (u *TherapySessionUpsertBulk) ClearHasBreakthrough() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearHasBreakthrough()
	})
}

// SetBreakthroughLabel sets the "breakthrough_label" field.
func (u *TherapySessionUpsertBulk) SetBreakthroughLabel(v string) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetBreakthroughLabel(v)
	})
}

// UpdateBreakthroughLabel sets the "breakthrough_label" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateBreakthroughLabel() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateBreakthroughLabel()
	})
}

// ClearBreakthroughLabel clears the value of the "breakthrough_label" field.
func (u *TherapySessionUpsertBulk) ClearBreakthroughLabel() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearBreakthroughLabel()
	})
}

// SetBreakthroughData sets the "breakthrough_data" field.
func (u *TherapySessionUpsertBulk) SetBreakthroughData(v map[string]interface{}) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetBreakthroughData(v)
	})
}

// UpdateBreakthroughData sets the "breakthrough_data" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateBreakthroughData() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateBreakthroughData()
	})
}

// ClearBreakthroughData clears the value of the "breakthrough_data" field.
func (u *TherapySessionUpsertBulk) ClearBreakthroughData() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearBreakthroughData()
	})
}

// SetMoodAnalyzedAt sets the "mood_analyzed_at" field.
func (u *TherapySessionUpsertBulk) SetMoodAnalyzedAt(v time.Time) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetMoodAnalyzedAt(v)
	})
}

// UpdateMoodAnalyzedAt sets the "mood_analyzed_at" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateMoodAnalyzedAt() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateMoodAnalyzedAt()
	})
}

// ClearMoodAnalyzedAt clears the value of the "mood_analyzed_at" field.
func (u *TherapySessionUpsertBulk) ClearMoodAnalyzedAt() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearMoodAnalyzedAt()
	})
}

// SetTopicsExtractedAt sets the "topics_extracted_at" field.
func (u *TherapySessionUpsertBulk) SetTopicsExtractedAt(v time.Time) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetTopicsExtractedAt(v)
	})
}

// UpdateTopicsExtractedAt sets the "topics_extracted_at" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateTopicsExtractedAt() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateTopicsExtractedAt()
	})
}

// ClearTopicsExtractedAt clears the value of the "topics_extracted_at" field.
func (u *TherapySessionUpsertBulk) ClearTopicsExtractedAt() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearTopicsExtractedAt()
	})
}

// SetBreakthroughDetectedAt sets the "breakthrough_detected_at" field.
func (u *TherapySessionUpsertBulk) SetBreakthroughDetectedAt(v time.Time) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetBreakthroughDetectedAt(v)
	})
}

// UpdateBreakthroughDetectedAt sets the "breakthrough_detected_at" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateBreakthroughDetectedAt() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateBreakthroughDetectedAt()
	})
}

// ClearBreakthroughDetectedAt clears the value of the "breakthrough_detected_at" field.
func (u *TherapySessionUpsertBulk) ClearBreakthroughDetectedAt() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearBreakthroughDetectedAt()
	})
}

// SetWave1CompletedAt sets the "wave1_completed_at" field.
func (u *TherapySessionUpsertBulk) SetWave1CompletedAt(v time.Time) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetWave1CompletedAt(v)
	})
}

// UpdateWave1CompletedAt sets the "wave1_completed_at" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateWave1CompletedAt() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateWave1CompletedAt()
	})
}

// ClearWave1CompletedAt clears the value of the "wave1_completed_at" field.
func (u *TherapySessionUpsertBulk) ClearWave1CompletedAt() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearWave1CompletedAt()
	})
}

// SetDeepAnalysis sets the "deep_analysis" field.
func (u *TherapySessionUpsertBulk) SetDeepAnalysis(v map[string]interface{}) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetDeepAnalysis(v)
	})
}

// UpdateDeepAnalysis sets the "deep_analysis" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateDeepAnalysis() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateDeepAnalysis()
	})
}

// ClearDeepAnalysis clears the value of the "deep_analysis" field.
func (u *TherapySessionUpsertBulk) ClearDeepAnalysis() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearDeepAnalysis()
	})
}

// SetAnalysisConfidence sets the "analysis_confidence" field.
func (u *TherapySessionUpsertBulk) SetAnalysisConfidence(v float64) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetAnalysisConfidence(v)
	})
}

// AddAnalysisConfidence adds v to the "analysis_confidence" field.
func (u *TherapySessionUpsertBulk) AddAnalysisConfidence(v float64) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.AddAnalysisConfidence(v)
	})
}

// UpdateAnalysisConfidence sets the "analysis_confidence" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateAnalysisConfidence() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateAnalysisConfidence()
	})
}

// ClearAnalysisConfidence clears the value of the "analysis_confidence" field.
func (u *TherapySessionUpsertBulk) ClearAnalysisConfidence() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearAnalysisConfidence()
	})
}

// SetProseAnalysis sets the "prose_analysis" field.
func (u *TherapySessionUpsertBulk) SetProseAnalysis(v string) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetProseAnalysis(v)
	})
}

// UpdateProseAnalysis sets the "prose_analysis" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateProseAnalysis() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateProseAnalysis()
	})
}

// ClearProseAnalysis clears the value of the "prose_analysis" field.
func (u *TherapySessionUpsertBulk) ClearProseAnalysis() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearProseAnalysis()
	})
}

// SetDeepAnalyzedAt sets the "deep_analyzed_at" field.
func (u *TherapySessionUpsertBulk) SetDeepAnalyzedAt(v time.Time) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetDeepAnalyzedAt(v)
	})
}

// UpdateDeepAnalyzedAt sets the "deep_analyzed_at" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateDeepAnalyzedAt() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateDeepAnalyzedAt()
	})
}

// ClearDeepAnalyzedAt clears the value of the "deep_analyzed_at" field.
func (u *TherapySessionUpsertBulk) ClearDeepAnalyzedAt() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearDeepAnalyzedAt()
	})
}

// SetProseGeneratedAt sets the "prose_generated_at" field.
func (u *TherapySessionUpsertBulk) SetProseGeneratedAt(v time.Time) *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.SetProseGeneratedAt(v)
	})
}

// UpdateProseGeneratedAt sets the "prose_generated_at" field to the value that was provided on create.
func (u *TherapySessionUpsertBulk) UpdateProseGeneratedAt() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.UpdateProseGeneratedAt()
	})
}

// ClearProseGeneratedAt clears the value of the "prose_generated_at" field.
func (u *TherapySessionUpsertBulk) ClearProseGeneratedAt() *TherapySessionUpsertBulk {
	return u.Update(func(s *TherapySessionUpsert) {
		s.ClearProseGeneratedAt()
	})
}

// Exec executes the query.
func (u *TherapySessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TherapySessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TherapySessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TherapySessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
