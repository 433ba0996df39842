package tasks

import (
	"fmt"
	"strings"

	"github.com/attune-health/attune/pkg/llm"
	"github.com/attune-health/attune/pkg/transcript"
)

const (
	summaryMaxChars = 150
	// techniqueNotSpecified is stored when the model names a technique
	// outside the library.
	techniqueNotSpecified = "Not specified"
)

// techniqueLibrary is the closed set of therapeutic techniques a session
// may be tagged with. Model output is matched case-insensitively.
var techniqueLibrary = []string{
	"Cognitive Behavioral Therapy",
	"Dialectical Behavior Therapy",
	"Acceptance and Commitment Therapy",
	"Eye Movement Desensitization and Reprocessing",
	"Psychodynamic Therapy",
	"Motivational Interviewing",
	"Solution-Focused Brief Therapy",
	"Exposure Therapy",
	"Mindfulness-Based Cognitive Therapy",
	"Interpersonal Therapy",
	"Narrative Therapy",
	"Somatic Experiencing",
	"Internal Family Systems",
	"Person-Centered Therapy",
	"Gestalt Therapy",
}

// TopicsResult is the Wave-1 topic extraction of a session.
type TopicsResult struct {
	Topics      []string `json:"topics"`
	ActionItems []string `json:"action_items"`
	Technique   string   `json:"technique"`
	Summary     string   `json:"summary"`
	Confidence  float64  `json:"confidence"`
}

// TopicsTask extracts session topics, two action items, the dominant
// therapeutic technique and a short summary from the full conversation.
type TopicsTask struct{}

func (TopicsTask) Name() string { return llm.TaskTopics }

func (TopicsTask) BuildMessages(segments []transcript.Segment) ([]llm.Message, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("no segments to analyze")
	}
	return []llm.Message{
		llm.SystemMessage(fmt.Sprintf(`You analyze a therapy session transcript. Respond with JSON only:
{"topics": ["<1-2 main topics>"], "action_items": ["<exactly 2 concrete items the client agreed to>"], "technique": "<the therapeutic technique most in evidence>", "summary": "<one sentence, under %d characters>", "confidence": <0-1>}
Choose the technique from: %s. If none clearly applies, use "%s".`,
			summaryMaxChars, strings.Join(techniqueLibrary, "; "), techniqueNotSpecified)),
		llm.UserMessage(transcript.Render(segments)),
	}, nil
}

func (TopicsTask) ParseResult(raw string) (TopicsResult, error) {
	var result TopicsResult
	if err := decodeJSON(raw, &result); err != nil {
		return TopicsResult{}, err
	}
	if len(result.Topics) < 1 {
		return TopicsResult{}, fmt.Errorf("no topics extracted")
	}
	if len(result.Topics) > 2 {
		result.Topics = result.Topics[:2]
	}
	if len(result.ActionItems) != 2 {
		return TopicsResult{}, fmt.Errorf("expected exactly 2 action items, got %d", len(result.ActionItems))
	}
	result.Technique = MatchTechnique(result.Technique)
	result.Summary = truncateAtWord(result.Summary, summaryMaxChars)
	result.Confidence = clamp01(result.Confidence)
	return result, nil
}

// Fallback yields an empty-but-valid extraction with zero confidence.
func (TopicsTask) Fallback(_ []transcript.Segment) TopicsResult {
	return TopicsResult{
		Topics:      []string{"General discussion"},
		ActionItems: []string{"Review session notes", "Continue current practices"},
		Technique:   techniqueNotSpecified,
		Summary:     "Session content could not be summarized automatically.",
	}
}

// MatchTechnique maps free-form model output onto the technique library,
// case-insensitively. Unmatched values become "Not specified".
func MatchTechnique(name string) string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return techniqueNotSpecified
	}
	for _, known := range techniqueLibrary {
		lower := strings.ToLower(known)
		if needle == lower || strings.Contains(lower, needle) || strings.Contains(needle, lower) {
			return known
		}
	}
	return techniqueNotSpecified
}
