package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/attune-health/attune/pkg/llm"
)

// DeepInput bundles everything the deep-analysis task consumes: the
// current session's Wave-1 outputs plus tiered context over the
// patient's history produced by the compaction engine.
type DeepInput struct {
	SessionDate     string
	DurationMinutes int
	Mood            MoodResult
	Topics          TopicsResult
	Breakthrough    BreakthroughResult
	// HistoryContext is the compaction engine's output, serialized
	// verbatim into the prompt.
	HistoryContext map[string]interface{}
}

// DeepAnalysis is the structured Wave-2 clinical synthesis.
type DeepAnalysis struct {
	Progress        string   `json:"progress"`
	Insights        []string `json:"insights"`
	Skills          []string `json:"skills"`
	Relationship    string   `json:"relationship"`
	Recommendations []string `json:"recommendations"`
	Confidence      float64  `json:"confidence"`
}

// DeepAnalysisTask synthesizes Wave-1 results and patient history into a
// five-dimension clinical analysis. Slowest task in the pipeline; the
// scheduler gives it an extended deadline.
type DeepAnalysisTask struct{}

func (DeepAnalysisTask) Name() string { return llm.TaskDeepAnalysis }

func (DeepAnalysisTask) BuildMessages(input DeepInput) ([]llm.Message, error) {
	if len(input.Topics.Topics) == 0 {
		return nil, fmt.Errorf("deep analysis requires topic extraction results")
	}

	payload := map[string]interface{}{
		"session_date":     input.SessionDate,
		"duration_minutes": input.DurationMinutes,
		"mood":             input.Mood,
		"topics":           input.Topics,
		"breakthrough":     input.Breakthrough,
	}
	if len(input.HistoryContext) > 0 {
		payload["history"] = input.HistoryContext
	}
	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding deep-analysis input: %w", err)
	}

	return []llm.Message{
		llm.SystemMessage(`You are a clinical analyst synthesizing a therapy session in the context of the patient's history. Respond with JSON only:
{"progress": "<assessment of movement since prior sessions>", "insights": ["<3-5 clinical insights>"], "skills": ["<skills practiced or needed>"], "relationship": "<therapeutic alliance assessment>", "recommendations": ["<2-4 concrete recommendations>"], "confidence": <0-1>}`),
		llm.UserMessage(string(encoded)),
	}, nil
}

func (DeepAnalysisTask) ParseResult(raw string) (DeepAnalysis, error) {
	var result DeepAnalysis
	if err := decodeJSON(raw, &result); err != nil {
		return DeepAnalysis{}, err
	}
	if result.Progress == "" {
		return DeepAnalysis{}, fmt.Errorf("missing progress dimension")
	}
	if len(result.Insights) == 0 {
		return DeepAnalysis{}, fmt.Errorf("missing insights dimension")
	}
	if result.Relationship == "" {
		return DeepAnalysis{}, fmt.Errorf("missing relationship dimension")
	}
	if len(result.Recommendations) == 0 {
		return DeepAnalysis{}, fmt.Errorf("missing recommendations dimension")
	}
	result.Confidence = clamp01(result.Confidence)
	return result, nil
}
