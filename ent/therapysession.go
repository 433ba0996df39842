// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/attune-health/attune/ent/patient"
	"github.com/attune-health/attune/ent/therapysession"
)

// TherapySession is the model entity for the TherapySession schema.
type TherapySession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID string `json:"patient_id,omitempty"`
	// SessionDate holds the value of the "session_date" field.
	SessionDate time.Time `json:"session_date,omitempty"`
	// DurationMinutes holds the value of the "duration_minutes" field.
	DurationMinutes int `json:"duration_minutes,omitempty"`
	// Diarized segments: {start, end, speaker_id, text}
	Transcript []map[string]interface{} `json:"transcript,omitempty"`
	// ProcessingStatus holds the value of the "processing_status" field.
	ProcessingStatus therapysession.ProcessingStatus `json:"processing_status,omitempty"`
	// User-visible failure marker; null while healthy
	AnalysisStatus *string `json:"analysis_status,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Raw speaker IDs mapped to Therapist/Client
	SpeakerLabels map[string]string `json:"speaker_labels,omitempty"`
	// LabelsConfidence holds the value of the "labels_confidence" field.
	LabelsConfidence *float64 `json:"labels_confidence,omitempty"`
	// 0..10 snapped to 0.5 steps
	MoodScore *float64 `json:"mood_score,omitempty"`
	// MoodConfidence holds the value of the "mood_confidence" field.
	MoodConfidence *float64 `json:"mood_confidence,omitempty"`
	// MoodRationale holds the value of the "mood_rationale" field.
	MoodRationale *string `json:"mood_rationale,omitempty"`
	// MoodIndicators holds the value of the "mood_indicators" field.
	MoodIndicators []string `json:"mood_indicators,omitempty"`
	// EmotionalTone holds the value of the "emotional_tone" field.
	EmotionalTone *string `json:"emotional_tone,omitempty"`
	// 1-2 entries when populated
	Topics []string `json:"topics,omitempty"`
	// Exactly 2 entries when populated
	ActionItems []string `json:"action_items,omitempty"`
	// Technique holds the value of the "technique" field.
	Technique *string `json:"technique,omitempty"`
	// <=150 chars
	Summary *string `json:"summary,omitempty"`
	// <=45 chars; null when topics failed
	ActionItemsSummary *string `json:"action_items_summary,omitempty"`
	// HasBreakthrough holds the value of the "has_breakthrough" field.
	HasBreakthrough *bool `json:"has_breakthrough,omitempty"`
	// BreakthroughLabel holds the value of the "breakthrough_label" field.
	BreakthroughLabel *string `json:"breakthrough_label,omitempty"`
	// null whenever has_breakthrough=false
	BreakthroughData map[string]interface{} `json:"breakthrough_data,omitempty"`
	// MoodAnalyzedAt holds the value of the "mood_analyzed_at" field.
	MoodAnalyzedAt *time.Time `json:"mood_analyzed_at,omitempty"`
	// TopicsExtractedAt holds the value of the "topics_extracted_at" field.
	TopicsExtractedAt *time.Time `json:"topics_extracted_at,omitempty"`
	// BreakthroughDetectedAt holds the value of the "breakthrough_detected_at" field.
	BreakthroughDetectedAt *time.Time `json:"breakthrough_detected_at,omitempty"`
	// Wave1CompletedAt holds the value of the "wave1_completed_at" field.
	Wave1CompletedAt *time.Time `json:"wave1_completed_at,omitempty"`
	// 5 dimensions: progress, insights, skills, relationship, recommendations
	DeepAnalysis map[string]interface{} `json:"deep_analysis,omitempty"`
	// AnalysisConfidence holds the value of the "analysis_confidence" field.
	AnalysisConfidence *float64 `json:"analysis_confidence,omitempty"`
	// 500-750 word narrative
	ProseAnalysis *string `json:"prose_analysis,omitempty"`
	// DeepAnalyzedAt holds the value of the "deep_analyzed_at" field.
	DeepAnalyzedAt *time.Time `json:"deep_analyzed_at,omitempty"`
	// ProseGeneratedAt holds the value of the "prose_generated_at" field.
	ProseGeneratedAt *time.Time `json:"prose_generated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TherapySessionQuery when eager-loading is set.
	Edges        TherapySessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TherapySessionEdges holds the relations/edges for other nodes in the graph.
type TherapySessionEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// ProcessingLogs holds the value of the processing_logs edge.
	ProcessingLogs []*ProcessingLog `json:"processing_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TherapySessionEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// ProcessingLogsOrErr returns the ProcessingLogs value or an error if the edge
// was not loaded in eager-loading.
func (e TherapySessionEdges) ProcessingLogsOrErr() ([]*ProcessingLog, error) {
	if e.loadedTypes[1] {
		return e.ProcessingLogs, nil
	}
	return nil, &NotLoadedError{edge: "processing_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TherapySession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case therapysession.FieldTranscript, therapysession.FieldSpeakerLabels, therapysession.FieldMoodIndicators, therapysession.FieldTopics, therapysession.FieldActionItems, therapysession.FieldBreakthroughData, therapysession.FieldDeepAnalysis:
			values[i] = new([]byte)
		case therapysession.FieldHasBreakthrough:
			values[i] = new(sql.NullBool)
		case therapysession.FieldLabelsConfidence, therapysession.FieldMoodScore, therapysession.FieldMoodConfidence, therapysession.FieldAnalysisConfidence:
			values[i] = new(sql.NullFloat64)
		case therapysession.FieldDurationMinutes:
			values[i] = new(sql.NullInt64)
		case therapysession.FieldID, therapysession.FieldPatientID, therapysession.FieldProcessingStatus, therapysession.FieldAnalysisStatus, therapysession.FieldPodID, therapysession.FieldErrorMessage, therapysession.FieldMoodRationale, therapysession.FieldEmotionalTone, therapysession.FieldTechnique, therapysession.FieldSummary, therapysession.FieldActionItemsSummary, therapysession.FieldBreakthroughLabel, therapysession.FieldProseAnalysis:
			values[i] = new(sql.NullString)
		case therapysession.FieldSessionDate, therapysession.FieldLastHeartbeatAt, therapysession.FieldCreatedAt, therapysession.FieldStartedAt, therapysession.FieldCompletedAt, therapysession.FieldMoodAnalyzedAt, therapysession.FieldTopicsExtractedAt, therapysession.FieldBreakthroughDetectedAt, therapysession.FieldWave1CompletedAt, therapysession.FieldDeepAnalyzedAt, therapysession.FieldProseGeneratedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TherapySession fields.
func (_m *TherapySession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case therapysession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case therapysession.FieldPatientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value.Valid {
				_m.PatientID = value.String
			}
		case therapysession.FieldSessionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field session_date", values[i])
			} else if value.Valid {
				_m.SessionDate = value.Time
			}
		case therapysession.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = int(value.Int64)
			}
		case therapysession.FieldTranscript:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field transcript", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Transcript); err != nil {
					return fmt.Errorf("unmarshal field transcript: %w", err)
				}
			}
		case therapysession.FieldProcessingStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_status", values[i])
			} else if value.Valid {
				_m.ProcessingStatus = therapysession.ProcessingStatus(value.String)
			}
		case therapysession.FieldAnalysisStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_status", values[i])
			} else if value.Valid {
				_m.AnalysisStatus = new(string)
				*_m.AnalysisStatus = value.String
			}
		case therapysession.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case therapysession.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case therapysession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case therapysession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case therapysession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case therapysession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case therapysession.FieldSpeakerLabels:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field speaker_labels", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SpeakerLabels); err != nil {
					return fmt.Errorf("unmarshal field speaker_labels: %w", err)
				}
			}
		case therapysession.FieldLabelsConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field labels_confidence", values[i])
			} else if value.Valid {
				_m.LabelsConfidence = new(float64)
				*_m.LabelsConfidence = value.Float64
			}
		case therapysession.FieldMoodScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mood_score", values[i])
			} else if value.Valid {
				_m.MoodScore = new(float64)
				*_m.MoodScore = value.Float64
			}
		case therapysession.FieldMoodConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mood_confidence", values[i])
			} else if value.Valid {
				_m.MoodConfidence = new(float64)
				*_m.MoodConfidence = value.Float64
			}
		case therapysession.FieldMoodRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mood_rationale", values[i])
			} else if value.Valid {
				_m.MoodRationale = new(string)
				*_m.MoodRationale = value.String
			}
		case therapysession.FieldMoodIndicators:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field mood_indicators", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MoodIndicators); err != nil {
					return fmt.Errorf("unmarshal field mood_indicators: %w", err)
				}
			}
		case therapysession.FieldEmotionalTone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emotional_tone", values[i])
			} else if value.Valid {
				_m.EmotionalTone = new(string)
				*_m.EmotionalTone = value.String
			}
		case therapysession.FieldTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Topics); err != nil {
					return fmt.Errorf("unmarshal field topics: %w", err)
				}
			}
		case therapysession.FieldActionItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action_items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActionItems); err != nil {
					return fmt.Errorf("unmarshal field action_items: %w", err)
				}
			}
		case therapysession.FieldTechnique:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field technique", values[i])
			} else if value.Valid {
				_m.Technique = new(string)
				*_m.Technique = value.String
			}
		case therapysession.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = new(string)
				*_m.Summary = value.String
			}
		case therapysession.FieldActionItemsSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_items_summary", values[i])
			} else if value.Valid {
				_m.ActionItemsSummary = new(string)
				*_m.ActionItemsSummary = value.String
			}
		case therapysession.FieldHasBreakthrough:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_breakthrough", values[i])
			} else if value.Valid {
				_m.HasBreakthrough = new(bool)
				*_m.HasBreakthrough = value.Bool
			}
		case therapysession.FieldBreakthroughLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field breakthrough_label", values[i])
			} else if value.Valid {
				_m.BreakthroughLabel = new(string)
				*_m.BreakthroughLabel = value.String
			}
		case therapysession.FieldBreakthroughData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field breakthrough_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BreakthroughData); err != nil {
					return fmt.Errorf("unmarshal field breakthrough_data: %w", err)
				}
			}
		case therapysession.FieldMoodAnalyzedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field mood_analyzed_at", values[i])
			} else if value.Valid {
				_m.MoodAnalyzedAt = new(time.Time)
				*_m.MoodAnalyzedAt = value.Time
			}
		case therapysession.FieldTopicsExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field topics_extracted_at", values[i])
			} else if value.Valid {
				_m.TopicsExtractedAt = new(time.Time)
				*_m.TopicsExtractedAt = value.Time
			}
		case therapysession.FieldBreakthroughDetectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field breakthrough_detected_at", values[i])
			} else if value.Valid {
				_m.BreakthroughDetectedAt = new(time.Time)
				*_m.BreakthroughDetectedAt = value.Time
			}
		case therapysession.FieldWave1CompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field wave1_completed_at", values[i])
			} else if value.Valid {
				_m.Wave1CompletedAt = new(time.Time)
				*_m.Wave1CompletedAt = value.Time
			}
		case therapysession.FieldDeepAnalysis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field deep_analysis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DeepAnalysis); err != nil {
					return fmt.Errorf("unmarshal field deep_analysis: %w", err)
				}
			}
		case therapysession.FieldAnalysisConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_confidence", values[i])
			} else if value.Valid {
				_m.AnalysisConfidence = new(float64)
				*_m.AnalysisConfidence = value.Float64
			}
		case therapysession.FieldProseAnalysis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prose_analysis", values[i])
			} else if value.Valid {
				_m.ProseAnalysis = new(string)
				*_m.ProseAnalysis = value.String
			}
		case therapysession.FieldDeepAnalyzedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deep_analyzed_at", values[i])
			} else if value.Valid {
				_m.DeepAnalyzedAt = new(time.Time)
				*_m.DeepAnalyzedAt = value.Time
			}
		case therapysession.FieldProseGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field prose_generated_at", values[i])
			} else if value.Valid {
				_m.ProseGeneratedAt = new(time.Time)
				*_m.ProseGeneratedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TherapySession.
// This includes values selected through modifiers, order, etc.
func (_m *TherapySession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the TherapySession entity.
func (_m *TherapySession) QueryPatient() *PatientQuery {
	return NewTherapySessionClient(_m.config).QueryPatient(_m)
}

// QueryProcessingLogs queries the "processing_logs" edge of the TherapySession entity.
func (_m *TherapySession) QueryProcessingLogs() *ProcessingLogQuery {
	return NewTherapySessionClient(_m.config).QueryProcessingLogs(_m)
}

// Update returns a builder for updating this TherapySession.
// Note that you need to call TherapySession.Unwrap() before calling this method if this TherapySession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TherapySession) Update() *TherapySessionUpdateOne {
	return NewTherapySessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TherapySession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TherapySession) Unwrap() *TherapySession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TherapySession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TherapySession) String() string {
	var builder strings.Builder
	builder.WriteString("TherapySession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("patient_id=")
	builder.WriteString(_m.PatientID)
	builder.WriteString(", ")
	builder.WriteString("session_date=")
	builder.WriteString(_m.SessionDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("transcript=")
	builder.WriteString(fmt.Sprintf("%v", _m.Transcript))
	builder.WriteString(", ")
	builder.WriteString("processing_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingStatus))
	builder.WriteString(", ")
	if v := _m.AnalysisStatus; v != nil {
		builder.WriteString("analysis_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("speaker_labels=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpeakerLabels))
	builder.WriteString(", ")
	if v := _m.LabelsConfidence; v != nil {
		builder.WriteString("labels_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MoodScore; v != nil {
		builder.WriteString("mood_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MoodConfidence; v != nil {
		builder.WriteString("mood_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MoodRationale; v != nil {
		builder.WriteString("mood_rationale=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("mood_indicators=")
	builder.WriteString(fmt.Sprintf("%v", _m.MoodIndicators))
	builder.WriteString(", ")
	if v := _m.EmotionalTone; v != nil {
		builder.WriteString("emotional_tone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Topics))
	builder.WriteString(", ")
	builder.WriteString("action_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionItems))
	builder.WriteString(", ")
	if v := _m.Technique; v != nil {
		builder.WriteString("technique=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Summary; v != nil {
		builder.WriteString("summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ActionItemsSummary; v != nil {
		builder.WriteString("action_items_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HasBreakthrough; v != nil {
		builder.WriteString("has_breakthrough=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BreakthroughLabel; v != nil {
		builder.WriteString("breakthrough_label=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("breakthrough_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.BreakthroughData))
	builder.WriteString(", ")
	if v := _m.MoodAnalyzedAt; v != nil {
		builder.WriteString("mood_analyzed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TopicsExtractedAt; v != nil {
		builder.WriteString("topics_extracted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.BreakthroughDetectedAt; v != nil {
		builder.WriteString("breakthrough_detected_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Wave1CompletedAt; v != nil {
		builder.WriteString("wave1_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("deep_analysis=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeepAnalysis))
	builder.WriteString(", ")
	if v := _m.AnalysisConfidence; v != nil {
		builder.WriteString("analysis_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ProseAnalysis; v != nil {
		builder.WriteString("prose_analysis=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DeepAnalyzedAt; v != nil {
		builder.WriteString("deep_analyzed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ProseGeneratedAt; v != nil {
		builder.WriteString("prose_generated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// TherapySessions is a parsable slice of TherapySession.
type TherapySessions []*TherapySession
