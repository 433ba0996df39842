package tasks

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/attune-health/attune/pkg/llm"
)

const (
	proseMinWords = 500
	proseMaxWords = 750
)

// ProseResult is the Wave-2 narrative rendering of the deep analysis.
type ProseResult struct {
	ProseAnalysis string  `json:"prose_analysis"`
	Confidence    float64 `json:"confidence"`
}

// ProseTask turns the structured deep analysis into a flowing narrative
// for the clinician's session page.
type ProseTask struct{}

func (ProseTask) Name() string { return llm.TaskProse }

func (ProseTask) BuildMessages(analysis DeepAnalysis) ([]llm.Message, error) {
	if analysis.Progress == "" {
		return nil, fmt.Errorf("prose requires a deep analysis")
	}
	encoded, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding deep analysis: %w", err)
	}
	return []llm.Message{
		llm.SystemMessage(fmt.Sprintf(`Write a clinical narrative of %d-%d words from the structured session analysis below. Use a single flowing voice with no lists, headings or bullet points. Respond with JSON only: {"prose_analysis": "<narrative>", "confidence": <0-1>}`, proseMinWords, proseMaxWords)),
		llm.UserMessage(string(encoded)),
	}, nil
}

func (ProseTask) ParseResult(raw string) (ProseResult, error) {
	var result ProseResult
	if err := decodeJSON(raw, &result); err != nil {
		return ProseResult{}, err
	}
	words := wordCount(result.ProseAnalysis)
	if words < proseMinWords || words > proseMaxWords {
		return ProseResult{}, fmt.Errorf("narrative is %d words, want %d-%d", words, proseMinWords, proseMaxWords)
	}
	for _, line := range strings.Split(result.ProseAnalysis, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "#") {
			return ProseResult{}, fmt.Errorf("narrative contains list or heading markup")
		}
	}
	result.Confidence = clamp01(result.Confidence)
	return result, nil
}
