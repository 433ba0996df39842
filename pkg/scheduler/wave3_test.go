package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attune-health/attune/ent"
	"github.com/attune-health/attune/pkg/llm"
	"github.com/attune-health/attune/pkg/services"
	"github.com/attune-health/attune/pkg/tasks"
)

// completeSession pushes a fresh session through both waves directly via
// the services, bypassing the executor.
func completeSession(t *testing.T, rig *testRig, patientID string, date time.Time) *ent.TherapySession {
	t.Helper()
	ctx := context.Background()
	session := rig.ingest(t, patientID, date)

	_, err := rig.sessions.ApplyWave1Results(ctx, session.ID, services.Wave1Results{
		Mood:   &tasks.MoodResult{Score: 6.5, Confidence: 0.8, EmotionalTone: "hopeful"},
		Topics: &tasks.TopicsResult{Topics: []string{"anxiety"}, ActionItems: []string{"a", "b"}, Summary: "s"},
	})
	require.NoError(t, err)

	deep := &tasks.DeepAnalysis{
		Progress:        "steady",
		Insights:        []string{"i"},
		Relationship:    "strong",
		Recommendations: []string{"r"},
		Confidence:      0.8,
	}
	_, err = rig.sessions.ApplyWave2Results(ctx, session.ID, deep, &tasks.ProseResult{ProseAnalysis: "n"})
	require.NoError(t, err)
	require.NoError(t, rig.sessions.FinishSession(ctx, session.ID, "completed", ""))
	return session
}

func TestDebouncerCoalescesTriggers(t *testing.T) {
	rig := newTestRig(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	completeSession(t, rig, "p1", time.Now())

	rig.wave3.Start(ctx)
	defer rig.wave3.Stop()

	// Two triggers inside the quiet window collapse into one regeneration.
	rig.wave3.Trigger("p1")
	rig.wave3.Trigger("p1")

	require.Eventually(t, func() bool {
		_, err := rig.versions.GetBridge(ctx, "p1")
		return err == nil
	}, 10*time.Second, 20*time.Millisecond, "bridge never generated")

	assert.Equal(t, 1, rig.chat.callCount(llm.TaskYourJourney))
	assert.Equal(t, 1, rig.chat.callCount(llm.TaskSessionBridge))

	journey, err := rig.versions.GetJourney(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, journey.Version)
	assert.Equal(t, "You have made real progress over these sessions.", journey.Data["summary"])

	// Tier-1 insights were refreshed for the session with a deep analysis.
	assert.Equal(t, 1, rig.chat.callCount(llm.TaskSessionInsights))

	// journey.updated and bridge.updated landed on the event stream.
	list, err := rig.eventsSvc.ListSince(ctx, "p1", 0)
	require.NoError(t, err)
	types := make(map[string]int)
	for _, event := range list {
		types[event.EventType]++
	}
	assert.Equal(t, 1, types["journey.updated"])
	assert.Equal(t, 1, types["bridge.updated"])
}

func TestDebouncerTriggerAtWindowBoundary(t *testing.T) {
	rig := newTestRig(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// No sessions for the patient, so a fired regeneration returns
	// immediately. A trigger landing just as the quiet window elapses
	// used to reset an already-fired timer, running its callback twice
	// and driving the wait group negative on Stop.
	quiet := 500 * time.Microsecond
	debouncer := NewDebouncer(rig.exec, quiet, nil)
	debouncer.Start(ctx)

	for i := 0; i < 2000; i++ {
		debouncer.Trigger("p-boundary")
		time.Sleep(quiet)
	}
	debouncer.Stop()
}

func TestDebouncerSecondRoundBumpsVersions(t *testing.T) {
	rig := newTestRig(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	completeSession(t, rig, "p1", time.Now().Add(-48*time.Hour))

	rig.wave3.Start(ctx)
	defer rig.wave3.Stop()

	rig.wave3.Trigger("p1")
	require.Eventually(t, func() bool {
		_, err := rig.versions.GetBridge(ctx, "p1")
		return err == nil
	}, 10*time.Second, 20*time.Millisecond)

	// A second completed session triggers a fresh regeneration that
	// carries the previous journey as context.
	completeSession(t, rig, "p1", time.Now())
	rig.wave3.Trigger("p1")

	require.Eventually(t, func() bool {
		journey, err := rig.versions.GetJourney(ctx, "p1")
		return err == nil && journey.Version == 2
	}, 10*time.Second, 20*time.Millisecond, "journey never reached version 2")

	versions, err := rig.versions.ListJourneyVersions(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, 2, versions[0].Version)

	// Metadata carries the compaction strategy and the model used.
	require.NotNil(t, versions[0].MetadataID)
}

func TestDebouncerJourneyFailureLeavesVersionUntouched(t *testing.T) {
	rig := newTestRig(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	completeSession(t, rig, "p1", time.Now())
	rig.chat.setFail(llm.TaskYourJourney, true)

	rig.wave3.Start(ctx)
	defer rig.wave3.Stop()
	rig.wave3.Trigger("p1")

	require.Eventually(t, func() bool {
		return rig.chat.callCount(llm.TaskYourJourney) > 0
	}, 10*time.Second, 20*time.Millisecond)
	// Give the regeneration goroutine a beat to finish.
	time.Sleep(100 * time.Millisecond)

	_, err := rig.versions.GetJourney(ctx, "p1")
	assert.ErrorIs(t, err, services.ErrNotFound)
	// Bridge is sequenced after Journey and never ran.
	assert.Zero(t, rig.chat.callCount(llm.TaskSessionBridge))

	// The failure is retried on the next trigger.
	rig.chat.setFail(llm.TaskYourJourney, false)
	rig.wave3.Trigger("p1")
	require.Eventually(t, func() bool {
		_, err := rig.versions.GetJourney(ctx, "p1")
		return err == nil
	}, 10*time.Second, 20*time.Millisecond)
}
