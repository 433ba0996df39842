package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/attune-health/attune/pkg/llm"
)

// JourneySectionTitles is the fixed roadmap vocabulary. The model must
// fill exactly these five sections in this order.
var JourneySectionTitles = []string{
	"Where You Started",
	"What You've Worked Through",
	"Skills You're Building",
	"Where You Are Now",
	"What's Ahead",
}

// JourneySection is one titled block of the roadmap.
type JourneySection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// JourneyResult is the patient-facing "Your Journey" roadmap document.
type JourneyResult struct {
	Summary      string           `json:"summary"`
	Achievements []string         `json:"achievements"`
	CurrentFocus []string         `json:"currentFocus"`
	Sections     []JourneySection `json:"sections"`
}

// JourneyInput is the compaction engine's tiered context plus the count
// of sessions it covers.
type JourneyInput struct {
	PatientID     string
	SessionCount  int
	TieredContext map[string]interface{}
	PreviousDoc   *JourneyResult
}

// YourJourneyTask regenerates the patient's roadmap from tiered history.
type YourJourneyTask struct{}

func (YourJourneyTask) Name() string { return llm.TaskYourJourney }

func (YourJourneyTask) BuildMessages(input JourneyInput) ([]llm.Message, error) {
	if len(input.TieredContext) == 0 {
		return nil, fmt.Errorf("journey requires tiered context")
	}
	payload := map[string]interface{}{
		"session_count": input.SessionCount,
		"history":       input.TieredContext,
	}
	if input.PreviousDoc != nil {
		payload["previous_journey"] = input.PreviousDoc
	}
	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding journey input: %w", err)
	}

	titles, _ := json.Marshal(JourneySectionTitles)
	return []llm.Message{
		llm.SystemMessage(fmt.Sprintf(`You write a warm, patient-facing therapy roadmap from the session history below. Respond with JSON only:
{"summary": "<2-3 sentence overview>", "achievements": ["<exactly 5>"], "currentFocus": ["<exactly 3>"], "sections": [{"title": "...", "content": "..."}]}
The sections array must contain exactly these five titles in order: %s. Address the patient as "you".`, titles)),
		llm.UserMessage(string(encoded)),
	}, nil
}

func (YourJourneyTask) ParseResult(raw string) (JourneyResult, error) {
	var result JourneyResult
	if err := decodeJSON(raw, &result); err != nil {
		return JourneyResult{}, err
	}
	if result.Summary == "" {
		return JourneyResult{}, fmt.Errorf("missing summary")
	}
	if len(result.Achievements) != 5 {
		return JourneyResult{}, fmt.Errorf("expected 5 achievements, got %d", len(result.Achievements))
	}
	if len(result.CurrentFocus) != 3 {
		return JourneyResult{}, fmt.Errorf("expected 3 focus items, got %d", len(result.CurrentFocus))
	}
	if len(result.Sections) != len(JourneySectionTitles) {
		return JourneyResult{}, fmt.Errorf("expected %d sections, got %d", len(JourneySectionTitles), len(result.Sections))
	}
	for i, section := range result.Sections {
		if section.Title != JourneySectionTitles[i] {
			return JourneyResult{}, fmt.Errorf("section %d titled %q, want %q", i, section.Title, JourneySectionTitles[i])
		}
		if section.Content == "" {
			return JourneyResult{}, fmt.Errorf("section %q is empty", section.Title)
		}
	}
	return result, nil
}
