package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoSpeakerTranscript builds an alternating S0/S1 transcript where S0
// holds roughly the given share of total speech time.
func twoSpeakerTranscript(s0Share float64) []Segment {
	const pairs = 10
	s0Len := s0Share * 10
	s1Len := (1 - s0Share) * 10
	var segments []Segment
	t := 0.0
	for i := 0; i < pairs; i++ {
		segments = append(segments, Segment{StartSec: t, EndSec: t + s0Len, SpeakerID: "S0", Text: "how was your week"})
		t += s0Len
		segments = append(segments, Segment{StartSec: t, EndSec: t + s1Len, SpeakerID: "S1", Text: "it was hard"})
		t += s1Len
	}
	return segments
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(twoSpeakerTranscript(0.3)))

	assert.Error(t, Validate(nil))

	assert.Error(t, Validate([]Segment{
		{StartSec: 5, EndSec: 5, SpeakerID: "S0", Text: "x"},
	}))

	assert.Error(t, Validate([]Segment{
		{StartSec: 0, EndSec: 10, SpeakerID: "S0", Text: "a"},
		{StartSec: 5, EndSec: 15, SpeakerID: "S0", Text: "b"},
	}))

	// Overlap across different speakers is fine (cross-talk).
	assert.NoError(t, Validate([]Segment{
		{StartSec: 0, EndSec: 10, SpeakerID: "S0", Text: "a"},
		{StartSec: 5, EndSec: 15, SpeakerID: "S1", Text: "b"},
	}))

	assert.Error(t, Validate([]Segment{
		{StartSec: 0, EndSec: 1, SpeakerID: "", Text: "a"},
	}))
}

func TestSpeakingRatios(t *testing.T) {
	ratios := SpeakingRatios(twoSpeakerTranscript(0.3))
	assert.InDelta(t, 0.3, ratios["S0"], 0.01)
	assert.InDelta(t, 0.7, ratios["S1"], 0.01)
}

func TestHeuristicLabelsBothSignalsAgree(t *testing.T) {
	// First speaker with a 30% share: classic therapist shape.
	guess := HeuristicLabels(twoSpeakerTranscript(0.3))
	assert.Equal(t, RoleTherapist, guess.Labels["S0"])
	assert.Equal(t, RoleClient, guess.Labels["S1"])
	assert.InDelta(t, 0.9, guess.Confidence, 1e-9)
}

func TestHeuristicLabelsRatioOverridesFirstSpeaker(t *testing.T) {
	// First speaker dominates (70%); the second speaker's 30% share
	// matches the therapist band, so roles flip.
	guess := HeuristicLabels(twoSpeakerTranscript(0.7))
	assert.Equal(t, RoleClient, guess.Labels["S0"])
	assert.Equal(t, RoleTherapist, guess.Labels["S1"])
	assert.InDelta(t, 0.7, guess.Confidence, 1e-9)
}

func TestHeuristicLabelsFirstSpeakerPriorOnly(t *testing.T) {
	// Neither ratio lands in the therapist band; fall back to the
	// first-speaker prior with reduced confidence.
	guess := HeuristicLabels(twoSpeakerTranscript(0.5))
	assert.Equal(t, RoleTherapist, guess.Labels["S0"])
	assert.InDelta(t, 0.6, guess.Confidence, 1e-9)
}

func TestHeuristicLabelsNonTwoSpeaker(t *testing.T) {
	guess := HeuristicLabels([]Segment{
		{StartSec: 0, EndSec: 1, SpeakerID: "S0", Text: "a"},
	})
	assert.Empty(t, guess.Labels)
}

func TestFuseLabels(t *testing.T) {
	heuristic := LabelGuess{
		Labels:     map[string]string{"S0": RoleTherapist, "S1": RoleClient},
		Confidence: 0.6,
	}
	agreeing := LabelGuess{
		Labels:     map[string]string{"S0": RoleTherapist, "S1": RoleClient},
		Confidence: 0.8,
	}
	disagreeing := LabelGuess{
		Labels:     map[string]string{"S0": RoleClient, "S1": RoleTherapist},
		Confidence: 0.95,
	}

	fused := FuseLabels(heuristic, agreeing)
	assert.Equal(t, heuristic.Labels, fused.Labels)
	assert.Greater(t, fused.Confidence, 0.8)

	fused = FuseLabels(heuristic, disagreeing)
	assert.Equal(t, disagreeing.Labels, fused.Labels)

	fused = FuseLabels(heuristic, LabelGuess{})
	assert.Equal(t, heuristic.Labels, fused.Labels)
}

func TestRelabelAndFilter(t *testing.T) {
	segments := twoSpeakerTranscript(0.3)
	labeled := Relabel(segments, map[string]string{"S0": RoleTherapist, "S1": RoleClient})

	clientSegs := FilterBySpeaker(labeled, RoleClient)
	assert.Len(t, clientSegs, 10)
	for _, seg := range clientSegs {
		assert.Equal(t, "it was hard", seg.Text)
	}

	// Originals untouched.
	assert.Equal(t, "S0", segments[0].SpeakerID)
}

func TestClientSegmentsUnlabeledFallsBackToHeuristic(t *testing.T) {
	segments := twoSpeakerTranscript(0.3)
	clientSegs := ClientSegments(segments)
	require.NotEmpty(t, clientSegs)
	for _, seg := range clientSegs {
		assert.Equal(t, "S1", seg.SpeakerID)
	}
}

func TestRender(t *testing.T) {
	out := Render([]Segment{
		{StartSec: 0, EndSec: 1, SpeakerID: "Therapist", Text: "hello"},
		{StartSec: 1, EndSec: 2, SpeakerID: "Client", Text: "hi"},
	})
	assert.Equal(t, "Therapist: hello\nClient: hi\n", out)
}
