package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMeta() MetadataInput {
	return MetadataInput{
		SessionsAnalyzed:   3,
		TotalSessions:      3,
		ModelUsed:          "gpt-5",
		CompactionStrategy: "hierarchical",
		Duration:           4 * time.Second,
	}
}

func TestSaveJourneyVersioning(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ingestTestSession(t, svc, "p1", time.Now())

	v1, err := svc.versions.SaveJourney(ctx, "p1", map[string]interface{}{"summary": "first"}, testMeta())
	require.NoError(t, err)
	assert.Equal(t, 1, v1.Version)
	require.NotNil(t, v1.MetadataID)

	v2, err := svc.versions.SaveJourney(ctx, "p1", map[string]interface{}{"summary": "second"}, testMeta())
	require.NoError(t, err)
	assert.Equal(t, 2, v2.Version)

	latest, err := svc.versions.GetJourney(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, latest.Version)
	assert.Equal(t, "second", latest.Data["summary"])

	history, err := svc.versions.ListJourneyVersions(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 2, history[0].Version)
	assert.Equal(t, "first", history[1].Data["summary"])
}

func TestSaveJourneyMetadataLink(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ingestTestSession(t, svc, "p1", time.Now())

	version, err := svc.versions.SaveJourney(ctx, "p1", map[string]interface{}{"summary": "s"}, testMeta())
	require.NoError(t, err)
	require.NotNil(t, version.MetadataID)

	metadata, err := svc.metadata.GetMetadata(ctx, *version.MetadataID)
	require.NoError(t, err)
	require.NotNil(t, metadata.JourneyVersionID)
	assert.Equal(t, version.ID, *metadata.JourneyVersionID)
	assert.Nil(t, metadata.BridgeVersionID)
	assert.Equal(t, "hierarchical", *metadata.CompactionStrategy)
	assert.Equal(t, 4000, metadata.GenerationDurationMs)
}

func TestSaveBridgeVersioning(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ingestTestSession(t, svc, "p1", time.Now())

	v1, err := svc.versions.SaveBridge(ctx, "p1", map[string]interface{}{"setGoals": []string{"a"}}, testMeta())
	require.NoError(t, err)
	assert.Equal(t, 1, v1.Version)

	latest, err := svc.versions.GetBridge(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, latest.Version)

	// Journey and Bridge versions are independent sequences.
	jv, err := svc.versions.SaveJourney(ctx, "p1", map[string]interface{}{"summary": "s"}, testMeta())
	require.NoError(t, err)
	assert.Equal(t, 1, jv.Version)
}

func TestSaveJourneyValidation(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.versions.SaveJourney(ctx, "", map[string]interface{}{"s": 1}, testMeta())
	assert.True(t, IsValidationError(err))

	_, err = svc.versions.SaveJourney(ctx, "p1", nil, testMeta())
	assert.True(t, IsValidationError(err))
}

func TestGetJourneyNotFound(t *testing.T) {
	svc := newTestServices(t)
	_, err := svc.versions.GetJourney(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
