package tasks

import (
	"fmt"

	"github.com/attune-health/attune/pkg/llm"
	"github.com/attune-health/attune/pkg/transcript"
)

// SpeakerLabelTask asks the model which raw speaker is the therapist.
// Its result is fused with the structural heuristic in
// transcript.FuseLabels before the transcript is relabeled.
type SpeakerLabelTask struct{}

func (SpeakerLabelTask) Name() string { return llm.TaskSpeakerLabel }

func (SpeakerLabelTask) BuildMessages(segments []transcript.Segment) ([]llm.Message, error) {
	speakers := transcript.Speakers(segments)
	if len(speakers) != 2 {
		return nil, fmt.Errorf("expected 2 speakers, got %d", len(speakers))
	}
	return []llm.Message{
		llm.SystemMessage(fmt.Sprintf(`This is a diarized therapy session with unlabeled speakers %s and %s. Decide which is the therapist and which is the client from what they say. Respond with JSON only:
{"%s": "Therapist" or "Client", "%s": "Therapist" or "Client", "confidence": <0-1>}`,
			speakers[0], speakers[1], speakers[0], speakers[1])),
		llm.UserMessage(transcript.Render(segments)),
	}, nil
}

func (SpeakerLabelTask) ParseResult(raw string) (transcript.LabelGuess, error) {
	var parsed map[string]interface{}
	if err := decodeJSON(raw, &parsed); err != nil {
		return transcript.LabelGuess{}, err
	}

	guess := transcript.LabelGuess{Labels: make(map[string]string)}
	for key, value := range parsed {
		if key == "confidence" {
			if c, ok := value.(float64); ok {
				guess.Confidence = clamp01(c)
			}
			continue
		}
		role, ok := value.(string)
		if !ok || (role != transcript.RoleTherapist && role != transcript.RoleClient) {
			return transcript.LabelGuess{}, fmt.Errorf("invalid role %v for speaker %s", value, key)
		}
		guess.Labels[key] = role
	}

	if len(guess.Labels) != 2 {
		return transcript.LabelGuess{}, fmt.Errorf("expected 2 labeled speakers, got %d", len(guess.Labels))
	}
	roles := make(map[string]int)
	for _, role := range guess.Labels {
		roles[role]++
	}
	if roles[transcript.RoleTherapist] != 1 || roles[transcript.RoleClient] != 1 {
		return transcript.LabelGuess{}, fmt.Errorf("labels must assign one therapist and one client")
	}
	return guess, nil
}

// Fallback is the empty guess: fusion then relies on the heuristic alone.
func (SpeakerLabelTask) Fallback(_ []transcript.Segment) transcript.LabelGuess {
	return transcript.LabelGuess{Labels: map[string]string{}}
}
