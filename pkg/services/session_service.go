package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/attune-health/attune/ent"
	"github.com/attune-health/attune/ent/patient"
	"github.com/attune-health/attune/ent/therapysession"
	"github.com/attune-health/attune/pkg/tasks"
	"github.com/attune-health/attune/pkg/transcript"
)

// writeTimeout bounds each service-level database write.
const writeTimeout = 10 * time.Second

// SessionService manages therapy session lifecycle and analysis fields.
// It is the only code path that mutates session analysis columns.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// IngestRequest is the payload of POST /ingest/session.
type IngestRequest struct {
	PatientID       string               `json:"patient_id"`
	SessionDate     time.Time            `json:"session_date"`
	DurationMinutes int                  `json:"duration_minutes"`
	Transcript      []transcript.Segment `json:"transcript"`
}

// IngestSession validates the transcript, creates the patient row if it
// does not exist yet, and enqueues a pending session for the scheduler.
func (s *SessionService) IngestSession(httpCtx context.Context, req IngestRequest) (*ent.TherapySession, error) {
	if req.PatientID == "" {
		return nil, NewValidationError("patient_id", "required")
	}
	if req.SessionDate.IsZero() {
		return nil, NewValidationError("session_date", "required")
	}
	if req.DurationMinutes <= 0 {
		return nil, NewValidationError("duration_minutes", "must be positive")
	}
	if err := transcript.Validate(req.Transcript); err != nil {
		return nil, NewValidationError("transcript", err.Error())
	}

	segments, err := encodeTranscript(req.Transcript)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, writeTimeout)
	defer cancel()

	err = s.client.Patient.Create().
		SetID(req.PatientID).
		OnConflictColumns(patient.FieldID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure patient: %w", err)
	}

	session, err := s.client.TherapySession.Create().
		SetID(uuid.New().String()).
		SetPatientID(req.PatientID).
		SetSessionDate(req.SessionDate).
		SetDurationMinutes(req.DurationMinutes).
		SetTranscript(segments).
		SetProcessingStatus(therapysession.ProcessingStatusPending).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// GetSession fetches one session by id.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.TherapySession, error) {
	session, err := s.client.TherapySession.Get(ctx, sessionID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ListPatientSessions returns a patient's sessions ordered by date
// descending (most recent first).
func (s *SessionService) ListPatientSessions(ctx context.Context, patientID string) ([]*ent.TherapySession, error) {
	sessions, err := s.client.TherapySession.Query().
		Where(therapysession.PatientIDEQ(patientID)).
		Order(ent.Desc(therapysession.FieldSessionDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// ClaimPending atomically claims the oldest pending session for this
// replica using FOR UPDATE SKIP LOCKED, so concurrent replicas never
// claim the same row. Returns (nil, nil) when the queue is empty.
func (s *SessionService) ClaimPending(ctx context.Context, podID string) (*ent.TherapySession, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	session, err := tx.TherapySession.Query().
		Where(therapysession.ProcessingStatusEQ(therapysession.ProcessingStatusPending)).
		Order(ent.Asc(therapysession.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query pending sessions: %w", err)
	}

	now := time.Now()
	session, err = tx.TherapySession.UpdateOne(session).
		SetProcessingStatus(therapysession.ProcessingStatusRunning).
		SetPodID(podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return session, nil
}

// RequeuePodSessions requeues every running session claimed by the
// given pod. Called once at startup: anything still attributed to this
// pod id was left behind by a previous incarnation that died mid-flight.
func (s *SessionService) RequeuePodSessions(ctx context.Context, podID string) ([]string, error) {
	stale, err := s.client.TherapySession.Query().
		Where(
			therapysession.ProcessingStatusEQ(therapysession.ProcessingStatusRunning),
			therapysession.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale pod sessions: %w", err)
	}

	var recovered []string
	for _, session := range stale {
		_, err := s.client.TherapySession.UpdateOne(session).
			SetProcessingStatus(therapysession.ProcessingStatusPending).
			ClearPodID().
			ClearLastHeartbeatAt().
			ClearStartedAt().
			Save(ctx)
		if err != nil {
			return recovered, fmt.Errorf("failed to requeue session %s: %w", session.ID, err)
		}
		recovered = append(recovered, session.ID)
	}
	return recovered, nil
}

// Heartbeat refreshes the claim timestamp of a running session.
func (s *SessionService) Heartbeat(ctx context.Context, sessionID string) error {
	_, err := s.client.TherapySession.UpdateOneID(sessionID).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat session %s: %w", sessionID, err)
	}
	return nil
}

// RecoverOrphans requeues running sessions whose heartbeat is older
// than the threshold (their worker died mid-flight). Returns the ids of
// requeued sessions.
func (s *SessionService) RecoverOrphans(ctx context.Context, threshold time.Duration) ([]string, error) {
	cutoff := time.Now().Add(-threshold)
	orphans, err := s.client.TherapySession.Query().
		Where(
			therapysession.ProcessingStatusEQ(therapysession.ProcessingStatusRunning),
			therapysession.Or(
				therapysession.LastHeartbeatAtLT(cutoff),
				therapysession.LastHeartbeatAtIsNil(),
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query orphaned sessions: %w", err)
	}

	var recovered []string
	for _, orphan := range orphans {
		_, err := s.client.TherapySession.UpdateOne(orphan).
			SetProcessingStatus(therapysession.ProcessingStatusPending).
			ClearPodID().
			ClearLastHeartbeatAt().
			ClearStartedAt().
			Save(ctx)
		if err != nil {
			return recovered, fmt.Errorf("failed to requeue session %s: %w", orphan.ID, err)
		}
		recovered = append(recovered, orphan.ID)
	}
	return recovered, nil
}

// SetSpeakerLabels persists the fused speaker-label mapping.
func (s *SessionService) SetSpeakerLabels(ctx context.Context, sessionID string, guess transcript.LabelGuess) error {
	_, err := s.client.TherapySession.UpdateOneID(sessionID).
		SetSpeakerLabels(guess.Labels).
		SetLabelsConfidence(guess.Confidence).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set speaker labels: %w", err)
	}
	return nil
}

// Wave1Results collects the fields the scheduler persists when Wave 1
// reaches a terminal state. Nil members mean the corresponding task
// failed and its columns stay null.
type Wave1Results struct {
	Mood          *tasks.MoodResult
	Topics        *tasks.TopicsResult
	Breakthrough  *tasks.BreakthroughResult
	ActionSummary *tasks.ActionSummaryResult
}

// ApplyWave1Results writes every Wave-1 field that succeeded in one
// single-row update and stamps wave1_completed_at.
func (s *SessionService) ApplyWave1Results(httpCtx context.Context, sessionID string, results Wave1Results) (*ent.TherapySession, error) {
	ctx, cancel := context.WithTimeout(httpCtx, writeTimeout)
	defer cancel()

	now := time.Now()
	update := s.client.TherapySession.UpdateOneID(sessionID).
		SetWave1CompletedAt(now)

	if results.Mood != nil {
		update.
			SetMoodScore(results.Mood.Score).
			SetMoodConfidence(results.Mood.Confidence).
			SetMoodRationale(results.Mood.Rationale).
			SetMoodIndicators(results.Mood.KeyIndicators).
			SetEmotionalTone(results.Mood.EmotionalTone).
			SetMoodAnalyzedAt(now)
	}
	if results.Topics != nil {
		update.
			SetTopics(results.Topics.Topics).
			SetActionItems(results.Topics.ActionItems).
			SetTechnique(results.Topics.Technique).
			SetSummary(results.Topics.Summary).
			SetTopicsExtractedAt(now)
	}
	if results.Breakthrough != nil {
		update.
			SetHasBreakthrough(results.Breakthrough.HasBreakthrough).
			SetBreakthroughDetectedAt(now)
		if results.Breakthrough.HasBreakthrough {
			update.
				SetBreakthroughLabel(results.Breakthrough.Label).
				SetBreakthroughData(map[string]interface{}{
					"evidence_quote":  results.Breakthrough.EvidenceQuote,
					"timestamp_range": results.Breakthrough.TimestampRange,
					"confidence":      results.Breakthrough.Confidence,
				})
		}
	}
	if results.ActionSummary != nil && results.ActionSummary.Summary != "" {
		update.SetActionItemsSummary(results.ActionSummary.Summary)
	}

	session, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to apply wave-1 results: %w", err)
	}
	return session, nil
}

// ApplyWave2Results persists deep analysis and prose in one update.
// Either member may be nil when its task failed.
func (s *SessionService) ApplyWave2Results(httpCtx context.Context, sessionID string, deep *tasks.DeepAnalysis, prose *tasks.ProseResult) (*ent.TherapySession, error) {
	current, err := s.GetSession(httpCtx, sessionID)
	if err != nil {
		return nil, err
	}
	if current.Wave1CompletedAt == nil {
		return nil, NewValidationError("wave1_completed_at", "wave 2 results require a completed wave 1")
	}

	ctx, cancel := context.WithTimeout(httpCtx, writeTimeout)
	defer cancel()

	now := time.Now()
	update := s.client.TherapySession.UpdateOneID(sessionID)
	if deep != nil {
		deepMap, err := toMap(deep)
		if err != nil {
			return nil, err
		}
		update.
			SetDeepAnalysis(deepMap).
			SetAnalysisConfidence(deep.Confidence).
			SetDeepAnalyzedAt(now)
	}
	if prose != nil {
		update.
			SetProseAnalysis(prose.ProseAnalysis).
			SetProseGeneratedAt(now)
	}

	session, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to apply wave-2 results: %w", err)
	}
	return session, nil
}

// FinishSession marks a session's terminal processing state.
func (s *SessionService) FinishSession(ctx context.Context, sessionID string, status therapysession.ProcessingStatus, errorMessage string) error {
	update := s.client.TherapySession.UpdateOneID(sessionID).
		SetProcessingStatus(status).
		SetCompletedAt(time.Now()).
		ClearPodID().
		ClearLastHeartbeatAt()
	if errorMessage != "" {
		update.SetErrorMessage(errorMessage)
		update.SetAnalysisStatus("failed")
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to finish session %s: %w", sessionID, err)
	}
	return nil
}

// StopRunning marks every running or pending session of the patient as
// stopped and returns their ids.
func (s *SessionService) StopRunning(ctx context.Context, patientID string) ([]string, error) {
	sessions, err := s.client.TherapySession.Query().
		Where(
			therapysession.PatientIDEQ(patientID),
			therapysession.ProcessingStatusIn(
				therapysession.ProcessingStatusRunning,
				therapysession.ProcessingStatusPending,
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query running sessions: %w", err)
	}

	var stopped []string
	for _, session := range sessions {
		_, err := s.client.TherapySession.UpdateOne(session).
			SetProcessingStatus(therapysession.ProcessingStatusStopped).
			ClearPodID().
			ClearLastHeartbeatAt().
			Save(ctx)
		if err != nil {
			return stopped, fmt.Errorf("failed to stop session %s: %w", session.ID, err)
		}
		stopped = append(stopped, session.ID)
	}
	return stopped, nil
}

// ResumeStopped requeues the patient's stopped sessions as pending and
// returns their ids, oldest first.
func (s *SessionService) ResumeStopped(ctx context.Context, patientID string) ([]string, error) {
	sessions, err := s.client.TherapySession.Query().
		Where(
			therapysession.PatientIDEQ(patientID),
			therapysession.ProcessingStatusEQ(therapysession.ProcessingStatusStopped),
		).
		Order(ent.Asc(therapysession.FieldSessionDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stopped sessions: %w", err)
	}

	var resumed []string
	for _, session := range sessions {
		_, err := s.client.TherapySession.UpdateOne(session).
			SetProcessingStatus(therapysession.ProcessingStatusPending).
			ClearErrorMessage().
			ClearAnalysisStatus().
			Save(ctx)
		if err != nil {
			return resumed, fmt.Errorf("failed to resume session %s: %w", session.ID, err)
		}
		resumed = append(resumed, session.ID)
	}
	return resumed, nil
}

// EarlierWave1Incomplete reports whether any earlier session of the
// patient still lacks wave1_completed_at. Wave 2 for a session must wait
// until every earlier session's Wave 1 has finished, so prior-session
// summaries exist when deep analysis builds its history.
func (s *SessionService) EarlierWave1Incomplete(ctx context.Context, patientID string, sessionDate time.Time, sessionID string) (bool, error) {
	count, err := s.client.TherapySession.Query().
		Where(
			therapysession.PatientIDEQ(patientID),
			therapysession.IDNEQ(sessionID),
			therapysession.SessionDateLT(sessionDate),
			therapysession.Wave1CompletedAtIsNil(),
			therapysession.ProcessingStatusNotIn(
				therapysession.ProcessingStatusFailed,
				therapysession.ProcessingStatusStopped,
			),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check earlier sessions: %w", err)
	}
	return count > 0, nil
}

// FirstResumableSession finds the patient's earliest session with Wave 1
// complete but Wave 2 incomplete, per the resume protocol.
func (s *SessionService) FirstResumableSession(ctx context.Context, patientID string) (*ent.TherapySession, error) {
	session, err := s.client.TherapySession.Query().
		Where(
			therapysession.PatientIDEQ(patientID),
			therapysession.Wave1CompletedAtNotNil(),
			therapysession.ProseGeneratedAtIsNil(),
		).
		Order(ent.Asc(therapysession.FieldSessionDate)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find resumable session: %w", err)
	}
	return session, nil
}

// DecodeTranscript converts the stored JSON segments back to typed form.
func DecodeTranscript(session *ent.TherapySession) ([]transcript.Segment, error) {
	encoded, err := json.Marshal(session.Transcript)
	if err != nil {
		return nil, fmt.Errorf("re-encoding transcript: %w", err)
	}
	var segments []transcript.Segment
	if err := json.Unmarshal(encoded, &segments); err != nil {
		return nil, fmt.Errorf("decoding transcript: %w", err)
	}
	return segments, nil
}

func encodeTranscript(segments []transcript.Segment) ([]map[string]interface{}, error) {
	encoded, err := json.Marshal(segments)
	if err != nil {
		return nil, fmt.Errorf("encoding transcript: %w", err)
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, fmt.Errorf("normalizing transcript: %w", err)
	}
	return out, nil
}

func toMap(v interface{}) (map[string]interface{}, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding value: %w", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, fmt.Errorf("normalizing value: %w", err)
	}
	return out, nil
}
