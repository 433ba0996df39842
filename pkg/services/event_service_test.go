package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attune-health/attune/pkg/events"
	testdb "github.com/attune-health/attune/test/database"
)

func newTestPublisher(svc *testServices) *events.Publisher {
	return events.NewPublisher(svc.db.DB(), nil)
}

func TestPublishAndListSince(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	session := ingestTestSession(t, svc, "p1", time.Now())
	publisher := newTestPublisher(svc)

	id1, err := publisher.Publish(ctx, events.Event{
		PatientID: "p1",
		SessionID: session.ID,
		Phase:     events.PhaseWave1,
		EventType: events.EventTypeWaveStarted,
		Details:   map[string]interface{}{"wave": "mood"},
	})
	require.NoError(t, err)

	id2, err := publisher.Publish(ctx, events.Event{
		PatientID: "p1",
		SessionID: session.ID,
		Phase:     events.PhaseWave1,
		EventType: events.EventTypeWaveCompleted,
		Details:   map[string]interface{}{"wave": "mood"},
	})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	// Another patient's events never leak into the stream.
	ingestTestSession(t, svc, "p2", time.Now())
	_, err = publisher.Publish(ctx, events.Event{
		PatientID: "p2",
		Phase:     events.PhaseWave1,
		EventType: events.EventTypeWaveStarted,
	})
	require.NoError(t, err)

	list, err := svc.events.ListSince(ctx, "p1", 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, events.EventTypeWaveStarted, list[0].EventType)
	assert.Equal(t, events.EventTypeWaveCompleted, list[1].EventType)
	assert.Equal(t, "mood", list[0].Details["wave"])
	assert.Equal(t, session.ID, list[0].SessionID)

	// Watermark resumes mid-stream.
	tail, err := svc.events.ListSince(ctx, "p1", id1)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, id2, tail[0].ID)

	latest, err := svc.events.LatestID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, id2, latest)
}

func TestPublishValidation(t *testing.T) {
	svc := newTestServices(t)
	publisher := newTestPublisher(svc)

	_, err := publisher.Publish(context.Background(), events.Event{
		Phase:     events.PhaseWave1,
		EventType: events.EventTypeWaveStarted,
	})
	assert.Error(t, err)
}

func TestDeleteOlderThan(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ingestTestSession(t, svc, "p1", time.Now())
	publisher := newTestPublisher(svc)

	_, err := publisher.Publish(ctx, events.Event{
		PatientID: "p1",
		Phase:     events.PhaseTranscript,
		EventType: events.EventTypeSessionIngested,
	})
	require.NoError(t, err)

	// Nothing old enough yet.
	deleted, err := svc.events.DeleteOlderThan(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, deleted)

	deleted, err = svc.events.DeleteOlderThan(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	remaining, err := svc.events.ListSince(ctx, "p1", 0)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestListenerWakesHubOnPublish(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	ctx := context.Background()

	// The listener needs its own dedicated connection, so this test uses
	// the shared-schema helper that exposes a raw connection string.
	shared := testdb.NewSharedTestDB(t)
	db := shared.NewClient(t)
	sessions := NewSessionService(db.Client)
	_, err := sessions.IngestSession(ctx, IngestRequest{
		PatientID:       "p1",
		SessionDate:     time.Now(),
		DurationMinutes: 50,
		Transcript:      testTranscript(),
	})
	require.NoError(t, err)
	publisher := events.NewPublisher(db.DB(), nil)

	hub := events.NewHub()
	wake, cancelSub := hub.Subscribe("p1")
	defer cancelSub()

	listener := events.NewNotifyListener(shared.ConnString(), hub)
	require.NoError(t, listener.Start(ctx))
	defer listener.Stop(context.Background())
	require.NoError(t, listener.Subscribe(ctx, events.PatientChannel("p1")))

	_, err = publisher.Publish(ctx, events.Event{
		PatientID: "p1",
		Phase:     events.PhaseWave1,
		EventType: events.EventTypeWaveStarted,
	})
	require.NoError(t, err)

	select {
	case <-wake:
	case <-time.After(5 * time.Second):
		t.Fatal("expected NOTIFY to wake the hub subscriber")
	}
}
