package services

import (
	"context"
	"fmt"
	"time"

	"github.com/attune-health/attune/ent"
	"github.com/attune-health/attune/ent/pipelineevent"
	"github.com/attune-health/attune/pkg/events"
)

// catchupBatchLimit caps one catch-up query so a long-idle subscriber
// cannot stall the SSE loop.
const catchupBatchLimit = 500

// EventService is the read and cleanup side of the durable event queue.
// The write side lives in events.Publisher.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// ListSince returns the patient's events with id > sinceID, in id order.
// This is both the SSE poll query and the reconnect catch-up query.
func (s *EventService) ListSince(ctx context.Context, patientID string, sinceID int64) ([]events.Event, error) {
	rows, err := s.client.PipelineEvent.Query().
		Where(
			pipelineevent.PatientIDEQ(patientID),
			pipelineevent.IDGT(int(sinceID)),
		).
		Order(ent.Asc(pipelineevent.FieldID)).
		Limit(catchupBatchLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	out := make([]events.Event, 0, len(rows))
	for _, row := range rows {
		event := events.Event{
			ID:        int64(row.ID),
			PatientID: row.PatientID,
			Phase:     string(row.Phase),
			EventType: row.EventType,
			Status:    row.Status,
			Details:   row.Details,
			CreatedAt: row.CreatedAt,
		}
		if row.SessionID != nil {
			event.SessionID = *row.SessionID
		}
		out = append(out, event)
	}
	return out, nil
}

// LatestID returns the current high-water mark for a patient, so a new
// subscriber without since_id starts from "now".
func (s *EventService) LatestID(ctx context.Context, patientID string) (int64, error) {
	row, err := s.client.PipelineEvent.Query().
		Where(pipelineevent.PatientIDEQ(patientID)).
		Order(ent.Desc(pipelineevent.FieldID)).
		First(ctx)
	if ent.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query latest event: %w", err)
	}
	return int64(row.ID), nil
}

// DeleteOlderThan removes events past their retention window. Returns
// the number of rows deleted.
func (s *EventService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	deleted, err := s.client.PipelineEvent.Delete().
		Where(pipelineevent.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep events: %w", err)
	}
	return deleted, nil
}
