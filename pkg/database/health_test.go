package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attune-health/attune/pkg/database"
	testdb "github.com/attune-health/attune/test/database"
)

func TestCheckHealth(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	health, err := database.CheckHealth(ctx, client.DB())
	require.NoError(t, err)
	assert.True(t, health.Reachable)
	assert.Zero(t, health.PendingSessions)

	// An unclaimed session shows up as queue pressure.
	require.NoError(t, client.Patient.Create().SetID("p1").Exec(ctx))
	require.NoError(t, client.TherapySession.Create().
		SetID("s-1").
		SetPatientID("p1").
		SetSessionDate(time.Now()).
		SetDurationMinutes(50).
		SetTranscript([]map[string]interface{}{
			{"start": 0.0, "end": 2.5, "speaker_id": "S0", "text": "how was your week"},
		}).
		Exec(ctx))

	health, err = database.CheckHealth(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, 1, health.PendingSessions)
}

func TestCheckHealthUnreachable(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	health, err := database.CheckHealth(ctx, client.DB())
	require.Error(t, err)
	assert.False(t, health.Reachable)
}
