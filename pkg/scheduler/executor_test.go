package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attune-health/attune/ent/therapysession"
	"github.com/attune-health/attune/pkg/config"
	"github.com/attune-health/attune/pkg/llm"
)

func TestBackoffDelayBounds(t *testing.T) {
	cfg := &config.SchedulerConfig{
		BackoffBase: 2 * time.Second,
		BackoffCap:  30 * time.Second,
	}

	for i := 0; i < 100; i++ {
		first := backoffDelay(cfg, 1)
		assert.GreaterOrEqual(t, first, 1600*time.Millisecond)
		assert.LessOrEqual(t, first, 2400*time.Millisecond)

		second := backoffDelay(cfg, 2)
		assert.GreaterOrEqual(t, second, 3200*time.Millisecond)
		assert.LessOrEqual(t, second, 4800*time.Millisecond)

		// Deep into the sequence the cap governs.
		capped := backoffDelay(cfg, 10)
		assert.GreaterOrEqual(t, capped, 24*time.Second)
		assert.LessOrEqual(t, capped, 36*time.Second)
	}
}

func TestExecuteHappyPath(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	session := rig.ingest(t, "p1", time.Now())

	result := rig.exec.Execute(ctx, session)
	require.NoError(t, result.Error)
	assert.Equal(t, therapysession.ProcessingStatusCompleted, result.Status)

	stored, err := rig.sessions.GetSession(ctx, session.ID)
	require.NoError(t, err)

	// Speaker labels fused and persisted.
	assert.Equal(t, "Therapist", stored.SpeakerLabels["S0"])
	assert.Equal(t, "Client", stored.SpeakerLabels["S1"])

	// Wave 1 columns, including the 0.5-step mood snap.
	require.NotNil(t, stored.MoodScore)
	assert.Equal(t, 6.5, *stored.MoodScore)
	assert.Equal(t, []string{"workplace anxiety"}, stored.Topics)
	require.NotNil(t, stored.Technique)
	assert.Equal(t, "Cognitive Behavioral Therapy", *stored.Technique)
	require.NotNil(t, stored.ActionItemsSummary)
	assert.Equal(t, "Journal daily; practice breathing", *stored.ActionItemsSummary)
	require.NotNil(t, stored.HasBreakthrough)
	assert.True(t, *stored.HasBreakthrough)
	require.NotNil(t, stored.Wave1CompletedAt)

	// Wave 2 columns.
	assert.NotEmpty(t, stored.DeepAnalysis)
	require.NotNil(t, stored.ProseAnalysis)
	require.NotNil(t, stored.ProseGeneratedAt)

	// Every task closed its log entry as completed.
	for _, wave := range []string{llm.TaskSpeakerLabel, llm.TaskMood, llm.TaskTopics, llm.TaskBreakthrough, llm.TaskActionSummary, llm.TaskDeepAnalysis, llm.TaskProse} {
		done, err := rig.logs.IsWaveComplete(ctx, session.ID, wave)
		require.NoError(t, err)
		assert.True(t, done, "wave %s not complete", wave)
	}

	// Lifecycle events were appended for both waves.
	list, err := rig.eventsSvc.ListSince(ctx, "p1", 0)
	require.NoError(t, err)
	types := make(map[string]int)
	for _, event := range list {
		types[event.Phase+"/"+event.EventType]++
	}
	assert.Equal(t, 1, types["WAVE1/wave.started"])
	assert.Equal(t, 1, types["WAVE1/wave.completed"])
	assert.Equal(t, 1, types["WAVE2/wave.started"])
	assert.Equal(t, 1, types["WAVE2/wave.completed"])
}

func TestExecuteTopicsFailureSkipsWave2(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	rig.chat.setFail(llm.TaskTopics, true)
	session := rig.ingest(t, "p1", time.Now())

	result := rig.exec.Execute(ctx, session)
	assert.Equal(t, therapysession.ProcessingStatusFailed, result.Status)
	require.Error(t, result.Error)

	stored, err := rig.sessions.GetSession(ctx, session.ID)
	require.NoError(t, err)

	// Wave 1 is terminal with the surviving tasks persisted.
	require.NotNil(t, stored.Wave1CompletedAt)
	require.NotNil(t, stored.MoodScore)
	assert.Empty(t, stored.Topics)
	assert.Nil(t, stored.ActionItemsSummary)

	// Deep analysis never ran.
	assert.Zero(t, rig.chat.callCount(llm.TaskDeepAnalysis))
	assert.Zero(t, rig.chat.callCount(llm.TaskActionSummary))
}

func TestExecuteParseFallbackAccepted(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	rig.chat.setResponse(llm.TaskMood, "not json at all")
	session := rig.ingest(t, "p1", time.Now())

	result := rig.exec.Execute(ctx, session)
	require.NoError(t, result.Error)
	assert.Equal(t, therapysession.ProcessingStatusCompleted, result.Status)

	// One parse retry, then the fallback midpoint with zero confidence.
	assert.Equal(t, 2, rig.chat.callCount(llm.TaskMood))
	stored, err := rig.sessions.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.MoodScore)
	assert.Equal(t, 5.0, *stored.MoodScore)
	require.NotNil(t, stored.MoodConfidence)
	assert.Zero(t, *stored.MoodConfidence)
}

func TestExecuteDeepFailureFailsSession(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	rig.chat.setFail(llm.TaskDeepAnalysis, true)
	session := rig.ingest(t, "p1", time.Now())

	result := rig.exec.Execute(ctx, session)
	assert.Equal(t, therapysession.ProcessingStatusFailed, result.Status)

	// Deep has no fallback, so prose never runs and Wave 2 stays open.
	assert.Zero(t, rig.chat.callCount(llm.TaskProse))
	stored, err := rig.sessions.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ProseGeneratedAt)
	require.NotNil(t, stored.Wave1CompletedAt)
}

func TestExecuteBlocksOnEarlierWave1(t *testing.T) {
	rig := newTestRig(t)
	base := time.Now()

	// Earlier session still pending; the later one must wait for it.
	rig.ingest(t, "p1", base.Add(-24*time.Hour))
	later := rig.ingest(t, "p1", base)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	result := rig.exec.Execute(ctx, later)

	// The gate never opened; wave 1 of the later session completed but
	// deep analysis did not run.
	assert.NotEqual(t, therapysession.ProcessingStatusCompleted, result.Status)
	assert.Zero(t, rig.chat.callCount(llm.TaskDeepAnalysis))

	stored, err := rig.sessions.GetSession(context.Background(), later.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Wave1CompletedAt)
	assert.Nil(t, stored.ProseGeneratedAt)
}

func TestExecuteResumeSkipsCompletedWave1(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	session := rig.ingest(t, "p1", time.Now())

	// First run completes everything.
	result := rig.exec.Execute(ctx, session)
	require.Equal(t, therapysession.ProcessingStatusCompleted, result.Status)
	moodCalls := rig.chat.callCount(llm.TaskMood)

	// Re-execution is a no-op: prose already exists.
	stored, err := rig.sessions.GetSession(ctx, session.ID)
	require.NoError(t, err)
	again := rig.exec.Execute(ctx, stored)
	assert.Equal(t, therapysession.ProcessingStatusCompleted, again.Status)
	assert.Equal(t, moodCalls, rig.chat.callCount(llm.TaskMood))
}
