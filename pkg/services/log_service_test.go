package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attune-health/attune/pkg/llm"
)

func TestLogLifecycle(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	session := ingestTestSession(t, svc, "p1", time.Now())

	logID, err := svc.logs.LogStart(ctx, session.ID, llm.TaskMood, 0)
	require.NoError(t, err)

	complete, err := svc.logs.IsWaveComplete(ctx, session.ID, llm.TaskMood)
	require.NoError(t, err)
	assert.False(t, complete)

	require.NoError(t, svc.logs.LogComplete(ctx, logID, 1500*time.Millisecond))

	complete, err = svc.logs.IsWaveComplete(ctx, session.ID, llm.TaskMood)
	require.NoError(t, err)
	assert.True(t, complete)

	entries, err := svc.logs.SessionLog(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1500, entries[0].DurationMs)
	assert.NotNil(t, entries[0].CompletedAt)
}

func TestLogLatestAttemptWins(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	session := ingestTestSession(t, svc, "p1", time.Now())

	// First attempt fails.
	logID, err := svc.logs.LogStart(ctx, session.ID, llm.TaskTopics, 0)
	require.NoError(t, err)
	require.NoError(t, svc.logs.LogFail(ctx, logID, time.Second, "remote error (status 500)"))

	complete, err := svc.logs.IsWaveComplete(ctx, session.ID, llm.TaskTopics)
	require.NoError(t, err)
	assert.False(t, complete)

	// Retry succeeds; the latest attempt decides completeness.
	retryID, err := svc.logs.LogStart(ctx, session.ID, llm.TaskTopics, 1)
	require.NoError(t, err)
	require.NoError(t, svc.logs.LogComplete(ctx, retryID, 2*time.Second))

	complete, err = svc.logs.IsWaveComplete(ctx, session.ID, llm.TaskTopics)
	require.NoError(t, err)
	assert.True(t, complete)

	entries, err := svc.logs.SessionLog(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[1].RetryCount)
	require.NotNil(t, entries[0].ErrorMessage)
	assert.Contains(t, *entries[0].ErrorMessage, "status 500")
}

func TestLogDoubleStartRejected(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	session := ingestTestSession(t, svc, "p1", time.Now())

	logID, err := svc.logs.LogStart(ctx, session.ID, llm.TaskDeepAnalysis, 0)
	require.NoError(t, err)

	// The partial unique index forbids a second open entry for the same
	// (session, wave).
	_, err = svc.logs.LogStart(ctx, session.ID, llm.TaskDeepAnalysis, 0)
	assert.Error(t, err)

	// Closing the entry frees the slot for a retry.
	require.NoError(t, svc.logs.LogFail(ctx, logID, time.Second, "timeout"))
	_, err = svc.logs.LogStart(ctx, session.ID, llm.TaskDeepAnalysis, 1)
	assert.NoError(t, err)
}

func TestOpenEntries(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	session := ingestTestSession(t, svc, "p1", time.Now())

	logID, err := svc.logs.LogStart(ctx, session.ID, llm.TaskProse, 0)
	require.NoError(t, err)

	open, err := svc.logs.OpenEntries(ctx, []string{session.ID})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, llm.TaskProse, open[0].Wave)

	require.NoError(t, svc.logs.LogStopped(ctx, logID, time.Second))
	open, err = svc.logs.OpenEntries(ctx, []string{session.ID})
	require.NoError(t, err)
	assert.Empty(t, open)
}
