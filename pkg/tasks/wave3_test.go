package tasks

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJourney() JourneyResult {
	sections := make([]JourneySection, len(JourneySectionTitles))
	for i, title := range JourneySectionTitles {
		sections[i] = JourneySection{Title: title, Content: "Something meaningful."}
	}
	return JourneyResult{
		Summary:      "You have been steadily building healthier boundaries.",
		Achievements: []string{"a", "b", "c", "d", "e"},
		CurrentFocus: []string{"x", "y", "z"},
		Sections:     sections,
	}
}

func TestJourneyParse(t *testing.T) {
	encoded, err := json.Marshal(validJourney())
	require.NoError(t, err)

	result, err := YourJourneyTask{}.ParseResult(string(encoded))
	require.NoError(t, err)
	assert.Len(t, result.Sections, 5)
	assert.Equal(t, "Where You Started", result.Sections[0].Title)
}

func TestJourneyParseRejectsBadShapes(t *testing.T) {
	for name, mutate := range map[string]func(*JourneyResult){
		"missing summary":     func(j *JourneyResult) { j.Summary = "" },
		"four achievements":   func(j *JourneyResult) { j.Achievements = j.Achievements[:4] },
		"two focus items":     func(j *JourneyResult) { j.CurrentFocus = j.CurrentFocus[:2] },
		"four sections":       func(j *JourneyResult) { j.Sections = j.Sections[:4] },
		"wrong section title": func(j *JourneyResult) { j.Sections[2].Title = "Random Heading" },
		"empty section body":  func(j *JourneyResult) { j.Sections[1].Content = "" },
		"reordered sections":  func(j *JourneyResult) { j.Sections[0], j.Sections[1] = j.Sections[1], j.Sections[0] },
	} {
		t.Run(name, func(t *testing.T) {
			j := validJourney()
			mutate(&j)
			encoded, err := json.Marshal(j)
			require.NoError(t, err)
			_, err = YourJourneyTask{}.ParseResult(string(encoded))
			assert.Error(t, err)
		})
	}
}

func TestJourneyRequiresContext(t *testing.T) {
	_, err := YourJourneyTask{}.BuildMessages(JourneyInput{})
	assert.Error(t, err)

	prev := validJourney()
	messages, err := YourJourneyTask{}.BuildMessages(JourneyInput{
		SessionCount:  3,
		TieredContext: map[string]interface{}{"tier1": []string{"insight"}},
		PreviousDoc:   &prev,
	})
	require.NoError(t, err)
	assert.Contains(t, messages[1].Content, "previous_journey")
}

func validBridge() BridgeResult {
	return BridgeResult{
		ShareConcerns: []string{"a", "b", "c", "d"},
		ShareProgress: []string{"a", "b", "c", "d"},
		SetGoals:      []string{"a", "b", "c", "d"},
	}
}

func TestBridgeParse(t *testing.T) {
	encoded, err := json.Marshal(validBridge())
	require.NoError(t, err)

	result, err := SessionBridgeTask{}.ParseResult(string(encoded))
	require.NoError(t, err)
	assert.Len(t, result.ShareConcerns, 4)
	assert.Len(t, result.ShareProgress, 4)
	assert.Len(t, result.SetGoals, 4)
}

func TestBridgeParseRejectsBadLists(t *testing.T) {
	for name, mutate := range map[string]func(*BridgeResult){
		"three concerns": func(b *BridgeResult) { b.ShareConcerns = b.ShareConcerns[:3] },
		"five goals":     func(b *BridgeResult) { b.SetGoals = append(b.SetGoals, "extra") },
		"empty item":     func(b *BridgeResult) { b.ShareProgress[1] = "" },
	} {
		t.Run(name, func(t *testing.T) {
			b := validBridge()
			mutate(&b)
			encoded, err := json.Marshal(b)
			require.NoError(t, err)
			_, err = SessionBridgeTask{}.ParseResult(string(encoded))
			assert.Error(t, err)
		})
	}
}
