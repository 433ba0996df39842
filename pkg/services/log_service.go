package services

import (
	"context"
	"fmt"
	"time"

	"github.com/attune-health/attune/ent"
	"github.com/attune-health/attune/ent/processinglog"
)

// LogService is the append-heavy processing log with a narrow update
// surface: entries open as "started" and close exactly once.
type LogService struct {
	client *ent.Client
}

// NewLogService creates a new LogService
func NewLogService(client *ent.Client) *LogService {
	return &LogService{client: client}
}

// LogStart opens a log entry for one task attempt. A partial unique
// index on (session_id, wave) WHERE status='started' makes a second
// concurrent start for the same wave fail at the database.
func (s *LogService) LogStart(httpCtx context.Context, sessionID, wave string, retryCount int) (int, error) {
	if sessionID == "" {
		return 0, NewValidationError("session_id", "required")
	}
	if wave == "" {
		return 0, NewValidationError("wave", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, writeTimeout)
	defer cancel()

	entry, err := s.client.ProcessingLog.Create().
		SetSessionID(sessionID).
		SetWave(wave).
		SetStatus(processinglog.StatusStarted).
		SetRetryCount(retryCount).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to open log entry: %w", err)
	}
	return entry.ID, nil
}

// LogComplete closes a log entry as completed.
func (s *LogService) LogComplete(ctx context.Context, logID int, duration time.Duration) error {
	return s.close(ctx, logID, processinglog.StatusCompleted, duration, "")
}

// LogFail closes a log entry as failed with the attempt's error.
func (s *LogService) LogFail(ctx context.Context, logID int, duration time.Duration, errorMessage string) error {
	return s.close(ctx, logID, processinglog.StatusFailed, duration, errorMessage)
}

// LogStopped closes a log entry as stopped (user or shutdown initiated).
func (s *LogService) LogStopped(ctx context.Context, logID int, duration time.Duration) error {
	return s.close(ctx, logID, processinglog.StatusStopped, duration, "")
}

func (s *LogService) close(httpCtx context.Context, logID int, status processinglog.Status, duration time.Duration, errorMessage string) error {
	ctx, cancel := context.WithTimeout(httpCtx, writeTimeout)
	defer cancel()

	update := s.client.ProcessingLog.UpdateOneID(logID).
		SetStatus(status).
		SetCompletedAt(time.Now()).
		SetDurationMs(int(duration.Milliseconds()))
	if errorMessage != "" {
		update.SetErrorMessage(errorMessage)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to close log entry %d: %w", logID, err)
	}
	return nil
}

// IsWaveComplete reports whether the latest attempt for (session, wave)
// completed. Earlier failed attempts do not count against a later
// success.
func (s *LogService) IsWaveComplete(ctx context.Context, sessionID, wave string) (bool, error) {
	latest, err := s.client.ProcessingLog.Query().
		Where(
			processinglog.SessionIDEQ(sessionID),
			processinglog.WaveEQ(wave),
		).
		Order(ent.Desc(processinglog.FieldStartedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query log entries: %w", err)
	}
	return latest.Status == processinglog.StatusCompleted, nil
}

// SessionLog returns every attempt for a session, oldest first.
func (s *LogService) SessionLog(ctx context.Context, sessionID string) ([]*ent.ProcessingLog, error) {
	entries, err := s.client.ProcessingLog.Query().
		Where(processinglog.SessionIDEQ(sessionID)).
		Order(ent.Asc(processinglog.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list log entries: %w", err)
	}
	return entries, nil
}

// OpenEntries returns the "started" entries for a set of sessions, used
// by stop to report which tasks were aborted.
func (s *LogService) OpenEntries(ctx context.Context, sessionIDs []string) ([]*ent.ProcessingLog, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}
	entries, err := s.client.ProcessingLog.Query().
		Where(
			processinglog.SessionIDIn(sessionIDs...),
			processinglog.StatusEQ(processinglog.StatusStarted),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open log entries: %w", err)
	}
	return entries, nil
}
