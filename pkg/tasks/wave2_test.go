package tasks

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attune-health/attune/pkg/transcript"
)

func validDeep() DeepAnalysis {
	return DeepAnalysis{
		Progress:        "Steady movement on boundary work.",
		Insights:        []string{"Work rumination drives sleep loss", "Avoidance easing"},
		Skills:          []string{"Thought records"},
		Relationship:    "Strong alliance, open disclosure.",
		Recommendations: []string{"Continue journaling", "Introduce sleep hygiene plan"},
		Confidence:      0.8,
	}
}

func TestDeepAnalysisParse(t *testing.T) {
	encoded, err := json.Marshal(validDeep())
	require.NoError(t, err)

	result, err := DeepAnalysisTask{}.ParseResult(string(encoded))
	require.NoError(t, err)
	assert.Equal(t, "Steady movement on boundary work.", result.Progress)
	assert.Len(t, result.Insights, 2)
}

func TestDeepAnalysisRejectsMissingDimensions(t *testing.T) {
	for _, mutate := range []func(*DeepAnalysis){
		func(d *DeepAnalysis) { d.Progress = "" },
		func(d *DeepAnalysis) { d.Insights = nil },
		func(d *DeepAnalysis) { d.Relationship = "" },
		func(d *DeepAnalysis) { d.Recommendations = nil },
	} {
		d := validDeep()
		mutate(&d)
		encoded, err := json.Marshal(d)
		require.NoError(t, err)
		_, err = DeepAnalysisTask{}.ParseResult(string(encoded))
		assert.Error(t, err)
	}
}

func TestDeepAnalysisRequiresTopics(t *testing.T) {
	_, err := DeepAnalysisTask{}.BuildMessages(DeepInput{})
	assert.Error(t, err)

	messages, err := DeepAnalysisTask{}.BuildMessages(DeepInput{
		SessionDate: "2026-08-01",
		Topics:      TopicsResult{Topics: []string{"Work"}, ActionItems: []string{"a", "b"}},
	})
	require.NoError(t, err)
	assert.Contains(t, messages[1].Content, "2026-08-01")
}

func TestProseParseValidLength(t *testing.T) {
	narrative := strings.TrimSpace(strings.Repeat("The client continued to build on earlier progress this week. ", 60))
	encoded, err := json.Marshal(map[string]interface{}{"prose_analysis": narrative, "confidence": 0.7})
	require.NoError(t, err)

	result, err := ProseTask{}.ParseResult(string(encoded))
	require.NoError(t, err)
	words := len(strings.Fields(result.ProseAnalysis))
	assert.GreaterOrEqual(t, words, 500)
	assert.LessOrEqual(t, words, 750)
}

func TestProseParseRejectsShortNarrative(t *testing.T) {
	encoded, err := json.Marshal(map[string]interface{}{"prose_analysis": "Too short.", "confidence": 0.7})
	require.NoError(t, err)
	_, err = ProseTask{}.ParseResult(string(encoded))
	assert.Error(t, err)
}

func TestProseParseRejectsListMarkup(t *testing.T) {
	narrative := strings.Repeat("word ", 520) + "\n- a bullet snuck in"
	encoded, err := json.Marshal(map[string]interface{}{"prose_analysis": narrative, "confidence": 0.7})
	require.NoError(t, err)
	_, err = ProseTask{}.ParseResult(string(encoded))
	assert.Error(t, err)
}

func TestSpeakerLabelParse(t *testing.T) {
	raw := `{"S0": "Therapist", "S1": "Client", "confidence": 0.88}`
	guess, err := SpeakerLabelTask{}.ParseResult(raw)
	require.NoError(t, err)
	assert.Equal(t, transcript.RoleTherapist, guess.Labels["S0"])
	assert.Equal(t, transcript.RoleClient, guess.Labels["S1"])
	assert.Equal(t, 0.88, guess.Confidence)
}

func TestSpeakerLabelRejectsDuplicateRoles(t *testing.T) {
	_, err := SpeakerLabelTask{}.ParseResult(`{"S0": "Client", "S1": "Client", "confidence": 0.9}`)
	assert.Error(t, err)
}

func TestSpeakerLabelRejectsUnknownRole(t *testing.T) {
	_, err := SpeakerLabelTask{}.ParseResult(`{"S0": "Doctor", "S1": "Client", "confidence": 0.9}`)
	assert.Error(t, err)
}

func TestInsightsParse(t *testing.T) {
	raw := `{"bullets": ["Mood improved to 7", "Boundary conversation landed", "Sleep still fragile"]}`
	result, err := SessionInsightsTask{}.ParseResult(raw)
	require.NoError(t, err)
	assert.Len(t, result.Bullets, 3)

	_, err = SessionInsightsTask{}.ParseResult(`{"bullets": ["only", "two"]}`)
	assert.Error(t, err)
}

func TestInsightsFallbackAlwaysValid(t *testing.T) {
	fb := SessionInsightsTask{}.Fallback(InsightsInput{SessionDate: "2026-08-01", MoodScore: 6})
	assert.GreaterOrEqual(t, len(fb.Bullets), 3)
	assert.LessOrEqual(t, len(fb.Bullets), 5)
}
