package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMetadataXOR(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ingestTestSession(t, svc, "p1", time.Now())

	journeyVersion, err := svc.versions.SaveJourney(ctx, "p1", map[string]interface{}{"s": "v"}, testMeta())
	require.NoError(t, err)

	// Neither reference set.
	_, err = svc.metadata.CreateMetadata(ctx, CreateMetadataRequest{ModelUsed: "gpt-5"})
	assert.True(t, IsValidationError(err))

	// Both references set.
	id := journeyVersion.ID
	_, err = svc.metadata.CreateMetadata(ctx, CreateMetadataRequest{
		JourneyVersionID: &id,
		BridgeVersionID:  &id,
		ModelUsed:        "gpt-5",
	})
	assert.True(t, IsValidationError(err))

	// Exactly one.
	metadata, err := svc.metadata.CreateMetadata(ctx, CreateMetadataRequest{
		JourneyVersionID:   &id,
		SessionsAnalyzed:   2,
		TotalSessions:      5,
		ModelUsed:          "gpt-5",
		CompactionStrategy: "full",
		Duration:           time.Second,
	})
	require.NoError(t, err)
	require.NotNil(t, metadata.JourneyVersionID)
	assert.Nil(t, metadata.BridgeVersionID)
}

func TestUpdateMetadataPartial(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ingestTestSession(t, svc, "p1", time.Now())

	version, err := svc.versions.SaveJourney(ctx, "p1", map[string]interface{}{"s": "v"}, testMeta())
	require.NoError(t, err)
	require.NotNil(t, version.MetadataID)

	total := 9
	updated, err := svc.metadata.UpdateMetadata(ctx, *version.MetadataID, MetadataPatch{TotalSessions: &total})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.TotalSessions)
	// Untouched fields survive.
	assert.Equal(t, "gpt-5", updated.ModelUsed)
	assert.Equal(t, 3, updated.SessionsAnalyzed)

	_, err = svc.metadata.UpdateMetadata(ctx, 999999, MetadataPatch{TotalSessions: &total})
	assert.ErrorIs(t, err, ErrNotFound)
}
