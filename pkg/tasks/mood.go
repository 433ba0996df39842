package tasks

import (
	"fmt"
	"math"

	"github.com/attune-health/attune/pkg/llm"
	"github.com/attune-health/attune/pkg/transcript"
)

// MoodResult is the Wave-1 mood assessment of a session.
type MoodResult struct {
	Score         float64  `json:"score"`
	Confidence    float64  `json:"confidence"`
	Rationale     string   `json:"rationale"`
	KeyIndicators []string `json:"key_indicators"`
	EmotionalTone string   `json:"emotional_tone"`
}

// MoodTask scores the client's mood on a 0-10 scale in half-point steps,
// looking only at the client's own utterances.
type MoodTask struct{}

func (MoodTask) Name() string { return llm.TaskMood }

func (MoodTask) BuildMessages(segments []transcript.Segment) ([]llm.Message, error) {
	clientSegs := transcript.ClientSegments(segments)
	if len(clientSegs) == 0 {
		return nil, fmt.Errorf("no client segments to score")
	}
	return []llm.Message{
		llm.SystemMessage(`You assess a therapy client's mood from their own words in a session transcript.
Score 0 (severe distress) to 10 (thriving). Respond with JSON only:
{"score": <number>, "confidence": <0-1>, "rationale": "<1-2 sentences>", "key_indicators": ["..."], "emotional_tone": "<one or two words>"}`),
		llm.UserMessage(transcript.Render(clientSegs)),
	}, nil
}

func (MoodTask) ParseResult(raw string) (MoodResult, error) {
	var result MoodResult
	if err := decodeJSON(raw, &result); err != nil {
		return MoodResult{}, err
	}
	if result.Score < 0 || result.Score > 10 {
		return MoodResult{}, fmt.Errorf("score %.2f outside [0, 10]", result.Score)
	}
	result.Score = SnapMoodScore(result.Score)
	result.Confidence = clamp01(result.Confidence)
	if result.EmotionalTone == "" {
		result.EmotionalTone = "neutral"
	}
	return result, nil
}

// Fallback yields a neutral midpoint score with zero confidence.
func (MoodTask) Fallback(_ []transcript.Segment) MoodResult {
	return MoodResult{
		Score:         5.0,
		Confidence:    0,
		Rationale:     "Automated fallback: mood could not be determined from the transcript.",
		EmotionalTone: "unknown",
	}
}

// SnapMoodScore rounds a score to the nearest 0.5 step within [0, 10].
func SnapMoodScore(score float64) float64 {
	snapped := math.Round(score*2) / 2
	if snapped < 0 {
		return 0
	}
	if snapped > 10 {
		return 10
	}
	return snapped
}
