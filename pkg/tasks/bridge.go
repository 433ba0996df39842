package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/attune-health/attune/pkg/llm"
)

const bridgeListLength = 4

// BridgeResult is the patient-facing "Session Bridge": prompts that help
// the patient prepare for their next session.
type BridgeResult struct {
	ShareConcerns []string `json:"shareConcerns"`
	ShareProgress []string `json:"shareProgress"`
	SetGoals      []string `json:"setGoals"`
}

// BridgeInput mirrors JourneyInput; Bridge and Journey consume the same
// tiered context.
type BridgeInput struct {
	PatientID     string
	SessionCount  int
	TieredContext map[string]interface{}
}

// SessionBridgeTask generates next-session preparation prompts.
type SessionBridgeTask struct{}

func (SessionBridgeTask) Name() string { return llm.TaskSessionBridge }

func (SessionBridgeTask) BuildMessages(input BridgeInput) ([]llm.Message, error) {
	if len(input.TieredContext) == 0 {
		return nil, fmt.Errorf("bridge requires tiered context")
	}
	encoded, err := json.MarshalIndent(map[string]interface{}{
		"session_count": input.SessionCount,
		"history":       input.TieredContext,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding bridge input: %w", err)
	}
	return []llm.Message{
		llm.SystemMessage(fmt.Sprintf(`You help a therapy patient prepare for their next session. From the history below, write three lists of exactly %d items each, phrased in the patient's own voice ("I want to talk about..."). Respond with JSON only:
{"shareConcerns": ["..."], "shareProgress": ["..."], "setGoals": ["..."]}`, bridgeListLength)),
		llm.UserMessage(string(encoded)),
	}, nil
}

func (SessionBridgeTask) ParseResult(raw string) (BridgeResult, error) {
	var result BridgeResult
	if err := decodeJSON(raw, &result); err != nil {
		return BridgeResult{}, err
	}
	for name, list := range map[string][]string{
		"shareConcerns": result.ShareConcerns,
		"shareProgress": result.ShareProgress,
		"setGoals":      result.SetGoals,
	} {
		if len(list) != bridgeListLength {
			return BridgeResult{}, fmt.Errorf("%s has %d items, want %d", name, len(list), bridgeListLength)
		}
		for i, item := range list {
			if item == "" {
				return BridgeResult{}, fmt.Errorf("%s[%d] is empty", name, i)
			}
		}
	}
	return result, nil
}
