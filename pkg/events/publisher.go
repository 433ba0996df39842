package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// notifyMaxBytes is the pg_notify payload ceiling (8000 with headroom).
// Oversized payloads are replaced by a slim wake-up frame; subscribers
// fetch the full row through the catch-up query anyway.
const notifyMaxBytes = 7800

// Publisher appends pipeline events and fires the patient's NOTIFY
// channel in the same transaction, so a wake-up never precedes its row.
type Publisher struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPublisher creates a Publisher. The db parameter should be the
// *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{db: db, logger: logger}
}

// Publish persists one event and notifies the patient channel. Returns
// the assigned event id.
func (p *Publisher) Publish(ctx context.Context, event Event) (int64, error) {
	if err := event.Validate(); err != nil {
		return 0, err
	}

	var details []byte
	if event.Details != nil {
		var err error
		details, err = json.Marshal(event.Details)
		if err != nil {
			return 0, fmt.Errorf("marshaling event details: %w", err)
		}
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	var createdAt time.Time
	err = tx.QueryRowContext(ctx,
		`INSERT INTO pipeline_events (patient_id, session_id, phase, event_type, status, details, consumed, created_at)
		 VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, false, $7) RETURNING id, created_at`,
		event.PatientID, event.SessionID, event.Phase, event.EventType, event.Status, details, time.Now(),
	).Scan(&eventID, &createdAt)
	if err != nil {
		return 0, fmt.Errorf("failed to persist event: %w", err)
	}

	event.ID = eventID
	event.CreatedAt = createdAt
	payload, err := notifyPayload(event)
	if err != nil {
		return 0, err
	}

	// NOTIFY in the same transaction is held until COMMIT, so listeners
	// always find the row when they wake.
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", PatientChannel(event.PatientID), payload); err != nil {
		return 0, fmt.Errorf("pg_notify failed: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return eventID, nil
}

// PublishBestEffort publishes without letting a failure propagate. The
// failure is written to stdout with an explicit flush, which some
// hosting platforms require for log lines from short-lived child
// processes to survive.
func (p *Publisher) PublishBestEffort(ctx context.Context, event Event) {
	if _, err := p.Publish(ctx, event); err != nil {
		p.logger.Warn("Failed to publish pipeline event",
			"patient_id", event.PatientID, "event_type", event.EventType, "error", err)
		fmt.Fprintf(os.Stdout, "event publish failed: patient=%s type=%s err=%v\n",
			event.PatientID, event.EventType, err)
		_ = os.Stdout.Sync()
	}
}

// notifyPayload renders the NOTIFY body, degrading to an id-only frame
// when the full event would exceed the pg_notify limit.
func notifyPayload(event Event) (string, error) {
	full, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("marshaling notify payload: %w", err)
	}
	if len(full) <= notifyMaxBytes {
		return string(full), nil
	}
	slim, err := json.Marshal(Event{
		ID:        event.ID,
		PatientID: event.PatientID,
		Phase:     event.Phase,
		EventType: event.EventType,
		CreatedAt: event.CreatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling slim notify payload: %w", err)
	}
	return string(slim), nil
}
