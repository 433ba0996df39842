package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/attune-health/attune/pkg/llm"
)

// InsightsInput is the per-session material the insights task digests.
type InsightsInput struct {
	SessionDate  string       `json:"session_date"`
	MoodScore    float64      `json:"mood_score"`
	Topics       []string     `json:"topics"`
	Summary      string       `json:"summary"`
	DeepAnalysis DeepAnalysis `json:"deep_analysis"`
}

// InsightsResult is a compact bullet digest of one session, used as
// Tier-1 material when building Journey and Bridge context.
type InsightsResult struct {
	Bullets []string `json:"bullets"`
}

// SessionInsightsTask distills one completed session into 3-5 bullets.
type SessionInsightsTask struct{}

func (SessionInsightsTask) Name() string { return llm.TaskSessionInsights }

func (SessionInsightsTask) BuildMessages(input InsightsInput) ([]llm.Message, error) {
	if input.SessionDate == "" {
		return nil, fmt.Errorf("insights input missing session date")
	}
	encoded, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding insights input: %w", err)
	}
	return []llm.Message{
		llm.SystemMessage(`Distill this therapy session's analysis into 3-5 short bullets capturing what mattered most. Respond with JSON only: {"bullets": ["..."]}`),
		llm.UserMessage(string(encoded)),
	}, nil
}

func (SessionInsightsTask) ParseResult(raw string) (InsightsResult, error) {
	var result InsightsResult
	if err := decodeJSON(raw, &result); err != nil {
		return InsightsResult{}, err
	}
	if len(result.Bullets) < 3 || len(result.Bullets) > 5 {
		return InsightsResult{}, fmt.Errorf("expected 3-5 bullets, got %d", len(result.Bullets))
	}
	return result, nil
}

// Fallback digests the session from its stored summary without a model.
func (SessionInsightsTask) Fallback(input InsightsInput) InsightsResult {
	bullets := []string{
		fmt.Sprintf("Session on %s, mood %.1f", input.SessionDate, input.MoodScore),
	}
	for _, topic := range input.Topics {
		bullets = append(bullets, "Discussed: "+topic)
	}
	if input.Summary != "" {
		bullets = append(bullets, input.Summary)
	}
	for len(bullets) < 3 {
		bullets = append(bullets, "No further detail available.")
	}
	if len(bullets) > 5 {
		bullets = bullets[:5]
	}
	return InsightsResult{Bullets: bullets}
}
