package tasks

import (
	"fmt"
	"strings"

	"github.com/attune-health/attune/pkg/llm"
	"github.com/attune-health/attune/pkg/transcript"
)

// breakthroughConfidenceFloor is the strictness threshold: detections
// below it are discarded to keep false positives out of patient records.
const breakthroughConfidenceFloor = 0.8

// BreakthroughResult is the Wave-1 breakthrough detection of a session.
type BreakthroughResult struct {
	HasBreakthrough bool    `json:"has_breakthrough"`
	Label           string  `json:"label"`
	EvidenceQuote   string  `json:"evidence_quote"`
	TimestampRange  string  `json:"timestamp_range"`
	Confidence      float64 `json:"confidence"`
}

// BreakthroughTask detects genuine therapeutic breakthroughs. It is
// deliberately strict: anything under the confidence floor is reported
// as no breakthrough.
type BreakthroughTask struct{}

func (BreakthroughTask) Name() string { return llm.TaskBreakthrough }

func (BreakthroughTask) BuildMessages(segments []transcript.Segment) ([]llm.Message, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("no segments to analyze")
	}
	return []llm.Message{
		llm.SystemMessage(`You detect genuine therapeutic breakthroughs in a session transcript: a moment of new insight, connection or resolve that marks a turning point. Most sessions have none; only report one when the evidence is strong. Respond with JSON only:
{"has_breakthrough": 0 or 1, "label": "<2-3 words>", "evidence_quote": "<verbatim client quote>", "timestamp_range": "<start-end seconds>", "confidence": <0-1>}`),
		llm.UserMessage(transcript.Render(segments)),
	}, nil
}

func (BreakthroughTask) ParseResult(raw string) (BreakthroughResult, error) {
	// has_breakthrough arrives as 0/1 per the prompt contract.
	var parsed struct {
		HasBreakthrough int     `json:"has_breakthrough"`
		Label           string  `json:"label"`
		EvidenceQuote   string  `json:"evidence_quote"`
		TimestampRange  string  `json:"timestamp_range"`
		Confidence      float64 `json:"confidence"`
	}
	if err := decodeJSON(raw, &parsed); err != nil {
		return BreakthroughResult{}, err
	}

	result := BreakthroughResult{
		HasBreakthrough: parsed.HasBreakthrough == 1,
		Label:           strings.TrimSpace(parsed.Label),
		EvidenceQuote:   parsed.EvidenceQuote,
		TimestampRange:  parsed.TimestampRange,
		Confidence:      clamp01(parsed.Confidence),
	}

	if result.HasBreakthrough {
		words := len(strings.Fields(result.Label))
		if words < 2 || words > 3 {
			return BreakthroughResult{}, fmt.Errorf("label %q is not 2-3 words", result.Label)
		}
	}
	if result.Confidence < breakthroughConfidenceFloor {
		result.HasBreakthrough = false
	}
	if !result.HasBreakthrough {
		result.Label = ""
		result.EvidenceQuote = ""
		result.TimestampRange = ""
	}
	return result, nil
}

// Fallback reports no breakthrough. Safe by construction: a missed
// detection is recoverable, a fabricated one is not.
func (BreakthroughTask) Fallback(_ []transcript.Segment) BreakthroughResult {
	return BreakthroughResult{}
}
