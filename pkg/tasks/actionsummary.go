package tasks

import (
	"fmt"
	"strings"

	"github.com/attune-health/attune/pkg/llm"
)

const actionSummaryMaxChars = 45

// ActionSummaryResult is the condensed action-item line shown in list
// views. Empty model output is represented as Summary == "" and treated
// as non-fatal by the scheduler.
type ActionSummaryResult struct {
	Summary string `json:"summary"`
}

// ActionSummaryTask condenses the two Wave-1 action items into one short
// line. It runs after topics and is the cheapest task in the pipeline.
type ActionSummaryTask struct{}

func (ActionSummaryTask) Name() string { return llm.TaskActionSummary }

func (ActionSummaryTask) BuildMessages(actionItems []string) ([]llm.Message, error) {
	if len(actionItems) == 0 {
		return nil, fmt.Errorf("no action items to summarize")
	}
	return []llm.Message{
		llm.SystemMessage(fmt.Sprintf(`Condense the following therapy action items into one line of at most %d characters. Respond with JSON only: {"summary": "<line>"}`, actionSummaryMaxChars)),
		llm.UserMessage(strings.Join(actionItems, "\n")),
	}, nil
}

func (ActionSummaryTask) ParseResult(raw string) (ActionSummaryResult, error) {
	var result ActionSummaryResult
	if err := decodeJSON(raw, &result); err != nil {
		return ActionSummaryResult{}, err
	}
	result.Summary = truncateAtWord(strings.TrimSpace(result.Summary), actionSummaryMaxChars)
	return result, nil
}

// Fallback is the empty summary: the session keeps its full action items
// and the list view simply shows nothing extra.
func (ActionSummaryTask) Fallback(_ []string) ActionSummaryResult {
	return ActionSummaryResult{}
}
