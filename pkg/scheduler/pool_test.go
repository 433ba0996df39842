package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attune-health/attune/ent/therapysession"
	"github.com/attune-health/attune/pkg/llm"
)

func TestPoolProcessesQueue(t *testing.T) {
	rig := newTestRig(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, rig.pool.Start(ctx))
	defer rig.pool.Stop()

	session := rig.ingest(t, "p1", time.Now())

	require.Eventually(t, func() bool {
		stored, err := rig.sessions.GetSession(ctx, session.ID)
		if err != nil {
			return false
		}
		return stored.ProcessingStatus == therapysession.ProcessingStatusCompleted
	}, 15*time.Second, 50*time.Millisecond, "session never completed")

	// Wave 3 follows after the debounce window.
	require.Eventually(t, func() bool {
		_, err := rig.versions.GetJourney(ctx, "p1")
		return err == nil
	}, 15*time.Second, 50*time.Millisecond, "journey never generated")

	bridge, err := rig.versions.GetBridge(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, bridge.Version)

	stored, err := rig.sessions.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.PodID)
	require.NotNil(t, stored.CompletedAt)
}

func TestStopPatientIdempotent(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()

	report, err := rig.pool.StopPatient(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, report.StoppedSessionIDs)
	assert.Empty(t, report.AbortedTasks)
}

func TestStopReportsAbortedTasks(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	session := rig.ingest(t, "p1", time.Now())

	// Simulate an in-flight task attempt.
	_, err := rig.logs.LogStart(ctx, session.ID, llm.TaskDeepAnalysis, 0)
	require.NoError(t, err)

	report, err := rig.pool.StopPatient(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{session.ID}, report.StoppedSessionIDs)
	require.Len(t, report.AbortedTasks, 1)
	assert.Equal(t, llm.TaskDeepAnalysis, report.AbortedTasks[0].Task)

	// The open entry was closed as stopped.
	entries, err := rig.logs.SessionLog(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "stopped", string(entries[0].Status))

	// A second stop finds nothing.
	report, err = rig.pool.StopPatient(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, report.StoppedSessionIDs)
}

func TestStopThenResume(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	session := rig.ingest(t, "p1", time.Now())

	report, err := rig.pool.StopPatient(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, []string{session.ID}, report.StoppedSessionIDs)

	resume, err := rig.pool.ResumePatient(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{session.ID}, resume.ResumedSessionIDs)

	stored, err := rig.sessions.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, therapysession.ProcessingStatusPending, stored.ProcessingStatus)

	// Resume with nothing stopped is a no-op.
	resume, err = rig.pool.ResumePatient(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, resume.ResumedSessionIDs)

	// Stop and resume left pipeline lifecycle events behind.
	list, err := rig.eventsSvc.ListSince(ctx, "p1", 0)
	require.NoError(t, err)
	var stopped, resumed bool
	for _, event := range list {
		switch event.EventType {
		case "pipeline.stopped":
			stopped = true
		case "pipeline.resumed":
			resumed = true
		}
	}
	assert.True(t, stopped)
	assert.True(t, resumed)
}

func TestCancelPatientOnlyTouchesOwnSessions(t *testing.T) {
	rig := newTestRig(t)

	var cancelledA, cancelledB bool
	rig.pool.RegisterSession("s-a", "patient-a", func() { cancelledA = true })
	rig.pool.RegisterSession("s-b", "patient-b", func() { cancelledB = true })
	defer rig.pool.UnregisterSession("s-a")
	defer rig.pool.UnregisterSession("s-b")

	assert.Equal(t, 1, rig.pool.CancelPatient("patient-a"))
	assert.True(t, cancelledA)
	assert.False(t, cancelledB)
}
