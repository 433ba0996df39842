package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attune-health/attune/pkg/events"
	"github.com/attune-health/attune/pkg/services"
	testdb "github.com/attune-health/attune/test/database"
)

func TestSweeperDeletesOnlyExpiredEvents(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	publisher := events.NewPublisher(db.DB(), nil)
	for i := 0; i < 3; i++ {
		_, err := publisher.Publish(ctx, events.Event{
			PatientID: "p1",
			Phase:     events.PhaseWave1,
			EventType: events.EventTypeWaveStarted,
		})
		require.NoError(t, err)
	}

	eventService := services.NewEventService(db.Client)
	sweeper := NewSweeper(eventService, 24*time.Hour, time.Hour, nil)

	// Fresh events survive a sweep.
	sweeper.sweep()
	list, err := eventService.ListSince(ctx, "p1", 0)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	// With a zero TTL everything is expired.
	sweeper.ttl = 0
	time.Sleep(10 * time.Millisecond)
	sweeper.sweep()
	list, err = eventService.ListSince(ctx, "p1", 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSweeperStartStop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	db := testdb.NewTestClient(t)

	sweeper := NewSweeper(services.NewEventService(db.Client), 24*time.Hour, time.Hour, nil)
	sweeper.Start(context.Background())
	// Second Start is a no-op.
	sweeper.Start(context.Background())
	sweeper.Stop()
}
