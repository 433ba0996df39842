package tasks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attune-health/attune/pkg/llm"
	"github.com/attune-health/attune/pkg/transcript"
)

func sampleTranscript() []transcript.Segment {
	var segments []transcript.Segment
	t := 0.0
	for i := 0; i < 10; i++ {
		segments = append(segments,
			transcript.Segment{StartSec: t, EndSec: t + 3, SpeakerID: "S0", Text: "tell me more about that"},
			transcript.Segment{StartSec: t + 3, EndSec: t + 10, SpeakerID: "S1", Text: "I kept thinking about work all week"},
		)
		t += 10
	}
	return segments
}

func TestSnapMoodScore(t *testing.T) {
	tests := []struct {
		in, out float64
	}{
		{7.3, 7.5},
		{7.2, 7.0},
		{7.25, 7.5},
		{0.1, 0.0},
		{9.9, 10.0},
		{-1, 0.0},
		{11, 10.0},
		{5.0, 5.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, SnapMoodScore(tt.in), "snap(%v)", tt.in)
	}
}

func TestMoodTaskParse(t *testing.T) {
	raw := `{"score": 6.3, "confidence": 0.85, "rationale": "Mostly stable.", "key_indicators": ["routine intact"], "emotional_tone": "steady"}`
	result, err := MoodTask{}.ParseResult(raw)
	require.NoError(t, err)
	assert.Equal(t, 6.5, result.Score)
	assert.Equal(t, 0.85, result.Confidence)
	assert.Equal(t, "steady", result.EmotionalTone)
}

func TestMoodTaskParseFencedOutput(t *testing.T) {
	raw := "```json\n{\"score\": 4, \"confidence\": 0.7, \"rationale\": \"r\", \"key_indicators\": [], \"emotional_tone\": \"flat\"}\n```"
	result, err := MoodTask{}.ParseResult(raw)
	require.NoError(t, err)
	assert.Equal(t, 4.0, result.Score)
}

func TestMoodTaskRejectsOutOfRange(t *testing.T) {
	_, err := MoodTask{}.ParseResult(`{"score": 14, "confidence": 0.9}`)
	assert.Error(t, err)
}

func TestMoodTaskMessagesUseClientSpeechOnly(t *testing.T) {
	messages, err := MoodTask{}.BuildMessages(sampleTranscript())
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Contains(t, messages[1].Content, "thinking about work")
	assert.NotContains(t, messages[1].Content, "tell me more")
}

func TestMoodFallback(t *testing.T) {
	fb := MoodTask{}.Fallback(nil)
	assert.Equal(t, 5.0, fb.Score)
	assert.Zero(t, fb.Confidence)
}

func TestTopicsTaskParse(t *testing.T) {
	raw := `{"topics": ["Work stress", "Sleep"], "action_items": ["Keep a worry journal", "Set a phone curfew"], "technique": "cognitive behavioral therapy", "summary": "Explored work rumination and its effect on sleep.", "confidence": 0.8}`
	result, err := TopicsTask{}.ParseResult(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Work stress", "Sleep"}, result.Topics)
	assert.Len(t, result.ActionItems, 2)
	assert.Equal(t, "Cognitive Behavioral Therapy", result.Technique)
}

func TestTopicsTaskRejectsWrongActionItemCount(t *testing.T) {
	raw := `{"topics": ["Work"], "action_items": ["Only one"], "technique": "", "summary": "s", "confidence": 0.5}`
	_, err := TopicsTask{}.ParseResult(raw)
	assert.Error(t, err)
}

func TestTopicsTaskTrimsExtraTopics(t *testing.T) {
	raw := `{"topics": ["A", "B", "C"], "action_items": ["x", "y"], "technique": "", "summary": "s", "confidence": 0.5}`
	result, err := TopicsTask{}.ParseResult(raw)
	require.NoError(t, err)
	assert.Len(t, result.Topics, 2)
}

func TestTopicsSummaryTruncatedAtWordBoundary(t *testing.T) {
	long := strings.Repeat("insight ", 40) // well past 150 chars
	raw := `{"topics": ["A"], "action_items": ["x", "y"], "technique": "", "summary": "` + strings.TrimSpace(long) + `", "confidence": 0.5}`
	result, err := TopicsTask{}.ParseResult(raw)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(result.Summary), 150)
	assert.False(t, strings.HasSuffix(result.Summary, " "))
	// No mid-word cut: the summary ends on a complete word.
	assert.True(t, strings.HasSuffix(result.Summary, "insight"))
}

func TestMatchTechnique(t *testing.T) {
	assert.Equal(t, "Cognitive Behavioral Therapy", MatchTechnique("cognitive behavioral therapy"))
	assert.Equal(t, "Mindfulness-Based Cognitive Therapy", MatchTechnique("mindfulness-based cognitive therapy"))
	assert.Equal(t, "Not specified", MatchTechnique("interpretive dance"))
	assert.Equal(t, "Not specified", MatchTechnique(""))
}

func TestBreakthroughConfidenceFloor(t *testing.T) {
	raw := `{"has_breakthrough": 1, "label": "boundary setting", "evidence_quote": "I told him no", "timestamp_range": "120-180", "confidence": 0.75}`
	result, err := BreakthroughTask{}.ParseResult(raw)
	require.NoError(t, err)
	// Below the floor the detection is discarded wholesale.
	assert.False(t, result.HasBreakthrough)
	assert.Empty(t, result.Label)
	assert.Empty(t, result.EvidenceQuote)
}

func TestBreakthroughAboveFloor(t *testing.T) {
	raw := `{"has_breakthrough": 1, "label": "boundary setting", "evidence_quote": "I told him no", "timestamp_range": "120-180", "confidence": 0.92}`
	result, err := BreakthroughTask{}.ParseResult(raw)
	require.NoError(t, err)
	assert.True(t, result.HasBreakthrough)
	assert.Equal(t, "boundary setting", result.Label)
}

func TestBreakthroughLabelWordCount(t *testing.T) {
	raw := `{"has_breakthrough": 1, "label": "a very long breakthrough label here", "evidence_quote": "q", "timestamp_range": "0-1", "confidence": 0.9}`
	_, err := BreakthroughTask{}.ParseResult(raw)
	assert.Error(t, err)
}

func TestBreakthroughNone(t *testing.T) {
	raw := `{"has_breakthrough": 0, "label": "", "evidence_quote": "", "timestamp_range": "", "confidence": 0.95}`
	result, err := BreakthroughTask{}.ParseResult(raw)
	require.NoError(t, err)
	assert.False(t, result.HasBreakthrough)
}

func TestActionSummaryParse(t *testing.T) {
	result, err := ActionSummaryTask{}.ParseResult(`{"summary": "Journal worries; phone off by 10pm"}`)
	require.NoError(t, err)
	assert.Equal(t, "Journal worries; phone off by 10pm", result.Summary)
	assert.LessOrEqual(t, len(result.Summary), 45)
}

func TestActionSummaryTruncates(t *testing.T) {
	result, err := ActionSummaryTask{}.ParseResult(`{"summary": "Keep a detailed worry journal every single evening before bedtime"}`)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(result.Summary), 45)
}

func TestActionSummaryEmptyIsValid(t *testing.T) {
	result, err := ActionSummaryTask{}.ParseResult(`{"summary": ""}`)
	require.NoError(t, err)
	assert.Empty(t, result.Summary)
}

func TestActionSummaryRequestStaysMinimal(t *testing.T) {
	// The request body carries only model and messages: no completion
	// parameters beyond the defaults.
	_, ok := interface{}(ActionSummaryTask{}).(llm.OptionalParams)
	assert.False(t, ok, "action_summary must not set completion params")
}
