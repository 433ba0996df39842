package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attune-health/attune/pkg/tasks"
)

func completeWaves(t *testing.T, svc *testServices, sessionID string) {
	t.Helper()
	ctx := context.Background()
	_, err := svc.sessions.ApplyWave1Results(ctx, sessionID, Wave1Results{
		Topics: &tasks.TopicsResult{Topics: []string{"x"}, ActionItems: []string{"a", "b"}},
	})
	require.NoError(t, err)
	deep := &tasks.DeepAnalysis{Progress: "p", Insights: []string{"i"}, Relationship: "r", Recommendations: []string{"c"}}
	_, err = svc.sessions.ApplyWave2Results(ctx, sessionID, deep, &tasks.ProseResult{ProseAnalysis: "n"})
	require.NoError(t, err)
	require.NoError(t, svc.sessions.FinishSession(ctx, sessionID, "completed", ""))
}

func TestStatusNotStarted(t *testing.T) {
	svc := newTestServices(t)
	status, err := svc.status.Status(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, StatusNotStarted, status.AnalysisStatus)
	assert.Zero(t, status.TotalSessions)
}

func TestStatusRunning(t *testing.T) {
	svc := newTestServices(t)
	ingestTestSession(t, svc, "p1", time.Now())

	status, err := svc.status.Status(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, status.AnalysisStatus)
	assert.Equal(t, "processing", status.ProcessingState)
	assert.False(t, status.CanResume)
}

func TestStatusStopped(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	session := ingestTestSession(t, svc, "p1", time.Now())

	_, err := svc.sessions.StopRunning(ctx, "p1")
	require.NoError(t, err)

	status, err := svc.status.Status(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, StatusStopped, status.AnalysisStatus)
	assert.Equal(t, session.ID, status.StoppedAtSessionID)
	assert.True(t, status.CanResume)
}

func TestStatusAwaitingRoadmap(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	session := ingestTestSession(t, svc, "p1", time.Now())
	completeWaves(t, svc, session.ID)

	// Waves done, no roadmap yet: still running.
	status, err := svc.status.Status(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, status.AnalysisStatus)
	assert.Equal(t, "awaiting_roadmap", status.ProcessingState)
	assert.Equal(t, 1, status.Wave1CompleteCount)
	assert.Equal(t, 1, status.Wave2CompleteCount)
}

func TestStatusComplete(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	session := ingestTestSession(t, svc, "p1", time.Now())
	completeWaves(t, svc, session.ID)

	// Roadmap regenerated after the last Wave-2 completion.
	_, err := svc.versions.SaveJourney(ctx, "p1", map[string]interface{}{"summary": "s"}, testMeta())
	require.NoError(t, err)

	status, err := svc.status.Status(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, StatusComplete, status.AnalysisStatus)
	assert.NotNil(t, status.RoadmapUpdatedAt)
}
