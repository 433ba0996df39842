package services

import (
	"context"
	"fmt"
	"time"

	"github.com/attune-health/attune/ent"
	"github.com/attune-health/attune/ent/therapysession"
)

// Pipeline-level analysis states reported by GET /patients/{id}/status.
const (
	StatusNotStarted = "not_started"
	StatusRunning    = "running"
	StatusStopped    = "stopped"
	StatusComplete   = "complete"
)

// PatientStatus is the derived status view of one patient's pipeline.
type PatientStatus struct {
	AnalysisStatus     string     `json:"analysis_status"`
	Wave1CompleteCount int        `json:"wave1_complete_count"`
	Wave2CompleteCount int        `json:"wave2_complete_count"`
	TotalSessions      int        `json:"total_sessions"`
	RoadmapUpdatedAt   *time.Time `json:"roadmap_updated_at,omitempty"`
	ProcessingState    string     `json:"processing_state"`
	StoppedAtSessionID string     `json:"stopped_at_session_id,omitempty"`
	CanResume          bool       `json:"can_resume"`
}

// StatusService derives patient pipeline status from session timestamps
// and the version store. It holds no state of its own.
type StatusService struct {
	client   *ent.Client
	versions *VersionService
}

// NewStatusService creates a new StatusService
func NewStatusService(client *ent.Client, versions *VersionService) *StatusService {
	return &StatusService{client: client, versions: versions}
}

// Status computes the status view for one patient.
//
// State machine: not_started -> running -> (stopped <-> running) ->
// complete. Complete requires Wave 1 and Wave 2 done for every session
// AND a roadmap regenerated after the last Wave-2 completion.
func (s *StatusService) Status(ctx context.Context, patientID string) (*PatientStatus, error) {
	if patientID == "" {
		return nil, NewValidationError("patient_id", "required")
	}

	sessions, err := s.client.TherapySession.Query().
		Where(therapysession.PatientIDEQ(patientID)).
		Order(ent.Asc(therapysession.FieldSessionDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}

	status := &PatientStatus{TotalSessions: len(sessions)}
	if len(sessions) == 0 {
		status.AnalysisStatus = StatusNotStarted
		status.ProcessingState = "idle"
		return status, nil
	}

	var lastWave2 *time.Time
	anyStopped := false
	anyActive := false
	for _, session := range sessions {
		if session.Wave1CompletedAt != nil {
			status.Wave1CompleteCount++
		}
		if session.ProseGeneratedAt != nil {
			status.Wave2CompleteCount++
			if lastWave2 == nil || session.ProseGeneratedAt.After(*lastWave2) {
				lastWave2 = session.ProseGeneratedAt
			}
		}
		switch session.ProcessingStatus {
		case therapysession.ProcessingStatusStopped:
			if !anyStopped {
				status.StoppedAtSessionID = session.ID
			}
			anyStopped = true
		case therapysession.ProcessingStatusRunning, therapysession.ProcessingStatusPending:
			anyActive = true
		}
	}

	if journey, err := s.versions.GetJourney(ctx, patientID); err == nil {
		updatedAt := journey.UpdatedAt
		status.RoadmapUpdatedAt = &updatedAt
	}

	switch {
	case anyStopped:
		status.AnalysisStatus = StatusStopped
		status.ProcessingState = "stopped"
		status.CanResume = true
	case anyActive:
		status.AnalysisStatus = StatusRunning
		status.ProcessingState = "processing"
	case status.Wave1CompleteCount == len(sessions) &&
		status.Wave2CompleteCount == len(sessions) &&
		roadmapCurrent(status.RoadmapUpdatedAt, lastWave2):
		status.AnalysisStatus = StatusComplete
		status.ProcessingState = "idle"
	case status.Wave1CompleteCount == len(sessions) && status.Wave2CompleteCount == len(sessions):
		// Waves done but the debounced Wave-3 regeneration has not
		// landed yet.
		status.AnalysisStatus = StatusRunning
		status.ProcessingState = "awaiting_roadmap"
	default:
		status.AnalysisStatus = StatusRunning
		status.ProcessingState = "processing"
	}
	return status, nil
}

func roadmapCurrent(roadmapAt, lastWave2 *time.Time) bool {
	if lastWave2 == nil {
		return roadmapAt != nil
	}
	return roadmapAt != nil && !roadmapAt.Before(*lastWave2)
}
