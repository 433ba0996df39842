package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attune-health/attune/ent/therapysession"
	"github.com/attune-health/attune/pkg/tasks"
	"github.com/attune-health/attune/pkg/transcript"
)

func TestIngestSessionValidation(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.sessions.IngestSession(ctx, IngestRequest{
		SessionDate:     time.Now(),
		DurationMinutes: 50,
		Transcript:      testTranscript(),
	})
	assert.True(t, IsValidationError(err))

	_, err = svc.sessions.IngestSession(ctx, IngestRequest{
		PatientID:       "p1",
		SessionDate:     time.Now(),
		DurationMinutes: 50,
		Transcript: []transcript.Segment{
			{StartSec: 5, EndSec: 5, SpeakerID: "S0", Text: "bad"},
		},
	})
	assert.True(t, IsValidationError(err))

	_, err = svc.sessions.IngestSession(ctx, IngestRequest{
		PatientID:       "p1",
		SessionDate:     time.Now(),
		DurationMinutes: 0,
		Transcript:      testTranscript(),
	})
	assert.True(t, IsValidationError(err))
}

func TestIngestSessionCreatesPatientAndPendingSession(t *testing.T) {
	svc := newTestServices(t)
	session := ingestTestSession(t, svc, "p1", time.Now())

	assert.Equal(t, therapysession.ProcessingStatusPending, session.ProcessingStatus)
	assert.Equal(t, "p1", session.PatientID)

	fetched, err := svc.sessions.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	segments, err := DecodeTranscript(fetched)
	require.NoError(t, err)
	assert.Len(t, segments, 4)
	assert.Equal(t, "S0", segments[0].SpeakerID)

	// Second session for the same patient reuses the patient row.
	ingestTestSession(t, svc, "p1", time.Now().Add(time.Hour))
	sessions, err := svc.sessions.ListPatientSessions(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestClaimPendingIsExclusive(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	first := ingestTestSession(t, svc, "p1", time.Now().Add(-time.Hour))
	second := ingestTestSession(t, svc, "p1", time.Now())

	claimed1, err := svc.sessions.ClaimPending(ctx, "pod-a")
	require.NoError(t, err)
	require.NotNil(t, claimed1)
	assert.Equal(t, first.ID, claimed1.ID)
	assert.Equal(t, therapysession.ProcessingStatusRunning, claimed1.ProcessingStatus)
	require.NotNil(t, claimed1.PodID)
	assert.Equal(t, "pod-a", *claimed1.PodID)

	claimed2, err := svc.sessions.ClaimPending(ctx, "pod-b")
	require.NoError(t, err)
	require.NotNil(t, claimed2)
	assert.Equal(t, second.ID, claimed2.ID)

	claimed3, err := svc.sessions.ClaimPending(ctx, "pod-c")
	require.NoError(t, err)
	assert.Nil(t, claimed3)
}

func TestRecoverOrphans(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	session := ingestTestSession(t, svc, "p1", time.Now())

	claimed, err := svc.sessions.ClaimPending(ctx, "pod-a")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	// Fresh heartbeat: not an orphan.
	recovered, err := svc.sessions.RecoverOrphans(ctx, 5*time.Minute)
	require.NoError(t, err)
	assert.Empty(t, recovered)

	// Age the heartbeat past the threshold.
	_, err = svc.client.TherapySession.UpdateOneID(session.ID).
		SetLastHeartbeatAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	recovered, err = svc.sessions.RecoverOrphans(ctx, 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []string{session.ID}, recovered)

	requeued, err := svc.sessions.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, therapysession.ProcessingStatusPending, requeued.ProcessingStatus)
	assert.Nil(t, requeued.PodID)
}

func TestRequeuePodSessionsOnlyTouchesOwnPod(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	mine := ingestTestSession(t, svc, "p1", time.Now().Add(-time.Hour))
	theirs := ingestTestSession(t, svc, "p2", time.Now())

	claimedMine, err := svc.sessions.ClaimPending(ctx, "pod-a")
	require.NoError(t, err)
	require.Equal(t, mine.ID, claimedMine.ID)
	claimedTheirs, err := svc.sessions.ClaimPending(ctx, "pod-b")
	require.NoError(t, err)
	require.Equal(t, theirs.ID, claimedTheirs.ID)

	recovered, err := svc.sessions.RequeuePodSessions(ctx, "pod-a")
	require.NoError(t, err)
	assert.Equal(t, []string{mine.ID}, recovered)

	requeued, err := svc.sessions.GetSession(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, therapysession.ProcessingStatusPending, requeued.ProcessingStatus)

	// The other pod's claim is untouched.
	untouched, err := svc.sessions.GetSession(ctx, theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, therapysession.ProcessingStatusRunning, untouched.ProcessingStatus)
}

func TestHeartbeat(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	session := ingestTestSession(t, svc, "p1", time.Now())

	_, err := svc.sessions.ClaimPending(ctx, "pod-a")
	require.NoError(t, err)

	require.NoError(t, svc.sessions.Heartbeat(ctx, session.ID))
	updated, err := svc.sessions.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.NotNil(t, updated.LastHeartbeatAt)
}

func TestApplyWave1Results(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	session := ingestTestSession(t, svc, "p1", time.Now())

	updated, err := svc.sessions.ApplyWave1Results(ctx, session.ID, Wave1Results{
		Mood: &tasks.MoodResult{Score: 6.5, Confidence: 0.8, Rationale: "steady", EmotionalTone: "calm"},
		Topics: &tasks.TopicsResult{
			Topics:      []string{"Work"},
			ActionItems: []string{"journal", "walk"},
			Technique:   "Cognitive Behavioral Therapy",
			Summary:     "Work stress discussed.",
		},
		Breakthrough: &tasks.BreakthroughResult{
			HasBreakthrough: true,
			Label:           "boundary setting",
			EvidenceQuote:   "I said no",
			Confidence:      0.9,
		},
		ActionSummary: &tasks.ActionSummaryResult{Summary: "Journal and walk daily"},
	})
	require.NoError(t, err)

	require.NotNil(t, updated.MoodScore)
	assert.Equal(t, 6.5, *updated.MoodScore)
	assert.Equal(t, []string{"Work"}, updated.Topics)
	require.NotNil(t, updated.HasBreakthrough)
	assert.True(t, *updated.HasBreakthrough)
	assert.Equal(t, "I said no", updated.BreakthroughData["evidence_quote"])
	require.NotNil(t, updated.ActionItemsSummary)
	assert.Equal(t, "Journal and walk daily", *updated.ActionItemsSummary)
	assert.NotNil(t, updated.Wave1CompletedAt)
	assert.NotNil(t, updated.MoodAnalyzedAt)
}

func TestApplyWave1PartialFailureLeavesNulls(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	session := ingestTestSession(t, svc, "p1", time.Now())

	// Topics failed: its columns and the action summary stay null, but
	// wave1_completed_at is still stamped (terminal state, not success).
	updated, err := svc.sessions.ApplyWave1Results(ctx, session.ID, Wave1Results{
		Mood: &tasks.MoodResult{Score: 4, Confidence: 0.6},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Topics)
	assert.Nil(t, updated.ActionItemsSummary)
	assert.NotNil(t, updated.Wave1CompletedAt)
	assert.Nil(t, updated.TopicsExtractedAt)
}

func TestApplyWave2RequiresWave1(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	session := ingestTestSession(t, svc, "p1", time.Now())

	deep := &tasks.DeepAnalysis{
		Progress:        "good",
		Insights:        []string{"i"},
		Relationship:    "strong",
		Recommendations: []string{"r"},
	}

	_, err := svc.sessions.ApplyWave2Results(ctx, session.ID, deep, nil)
	assert.True(t, IsValidationError(err))

	_, err = svc.sessions.ApplyWave1Results(ctx, session.ID, Wave1Results{})
	require.NoError(t, err)

	updated, err := svc.sessions.ApplyWave2Results(ctx, session.ID, deep, &tasks.ProseResult{ProseAnalysis: "narrative"})
	require.NoError(t, err)
	assert.Equal(t, "good", updated.DeepAnalysis["progress"])
	require.NotNil(t, updated.ProseAnalysis)
	assert.NotNil(t, updated.DeepAnalyzedAt)
	assert.NotNil(t, updated.ProseGeneratedAt)
}

func TestStopAndResume(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	s1 := ingestTestSession(t, svc, "p1", time.Now().Add(-time.Hour))
	s2 := ingestTestSession(t, svc, "p1", time.Now())
	other := ingestTestSession(t, svc, "p2", time.Now())

	_, err := svc.sessions.ClaimPending(ctx, "pod-a")
	require.NoError(t, err)

	stopped, err := svc.sessions.StopRunning(ctx, "p1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{s1.ID, s2.ID}, stopped)

	// Other patient untouched.
	unaffected, err := svc.sessions.GetSession(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, therapysession.ProcessingStatusPending, unaffected.ProcessingStatus)

	resumed, err := svc.sessions.ResumeStopped(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{s1.ID, s2.ID}, resumed)

	back, err := svc.sessions.GetSession(ctx, s1.ID)
	require.NoError(t, err)
	assert.Equal(t, therapysession.ProcessingStatusPending, back.ProcessingStatus)
}

func TestEarlierWave1Incomplete(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	earlier := ingestTestSession(t, svc, "p1", time.Now().Add(-48*time.Hour))
	later := ingestTestSession(t, svc, "p1", time.Now())

	blocked, err := svc.sessions.EarlierWave1Incomplete(ctx, "p1", later.SessionDate, later.ID)
	require.NoError(t, err)
	assert.True(t, blocked)

	_, err = svc.sessions.ApplyWave1Results(ctx, earlier.ID, Wave1Results{})
	require.NoError(t, err)

	blocked, err = svc.sessions.EarlierWave1Incomplete(ctx, "p1", later.SessionDate, later.ID)
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestFirstResumableSession(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	none, err := svc.sessions.FirstResumableSession(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, none)

	s1 := ingestTestSession(t, svc, "p1", time.Now().Add(-48*time.Hour))
	ingestTestSession(t, svc, "p1", time.Now())

	_, err = svc.sessions.ApplyWave1Results(ctx, s1.ID, Wave1Results{})
	require.NoError(t, err)

	resumable, err := svc.sessions.FirstResumableSession(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, resumable)
	assert.Equal(t, s1.ID, resumable.ID)
}
