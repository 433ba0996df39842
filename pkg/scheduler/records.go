package scheduler

import (
	"encoding/json"
	"fmt"

	"github.com/attune-health/attune/ent"
	"github.com/attune-health/attune/pkg/compaction"
	"github.com/attune-health/attune/pkg/tasks"
)

// sessionRecords converts stored sessions into compaction records,
// keeping only those with a completed Wave 1. Input and output are both
// ordered most recent first.
func sessionRecords(sessions []*ent.TherapySession) []compaction.SessionRecord {
	records := make([]compaction.SessionRecord, 0, len(sessions))
	for _, session := range sessions {
		if session.Wave1CompletedAt == nil {
			continue
		}
		record := compaction.SessionRecord{
			SessionID:   session.ID,
			SessionDate: session.SessionDate,
			Topics:      session.Topics,
		}
		if session.MoodScore != nil {
			record.MoodScore = *session.MoodScore
		}
		if session.Summary != nil {
			record.Summary = *session.Summary
		}
		if session.HasBreakthrough != nil {
			record.HasBreak = *session.HasBreakthrough
		}
		if session.BreakthroughLabel != nil {
			record.BreakLabel = *session.BreakthroughLabel
		}
		if deep, err := decodeDeepAnalysis(session); err == nil && deep != nil {
			record.Deep = deep
		}
		records = append(records, record)
	}
	return records
}

// decodeDeepAnalysis converts the stored deep_analysis JSON column back
// to typed form. Returns (nil, nil) when the column is null.
func decodeDeepAnalysis(session *ent.TherapySession) (*tasks.DeepAnalysis, error) {
	if len(session.DeepAnalysis) == 0 {
		return nil, nil
	}
	encoded, err := json.Marshal(session.DeepAnalysis)
	if err != nil {
		return nil, fmt.Errorf("re-encoding deep analysis: %w", err)
	}
	var deep tasks.DeepAnalysis
	if err := json.Unmarshal(encoded, &deep); err != nil {
		return nil, fmt.Errorf("decoding deep analysis: %w", err)
	}
	return &deep, nil
}

// decodeJourneyDoc converts a stored journey data map back to the typed
// document, for use as previous-version context.
func decodeJourneyDoc(data map[string]interface{}) (*tasks.JourneyResult, error) {
	if len(data) == 0 {
		return nil, nil
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("re-encoding journey: %w", err)
	}
	var doc tasks.JourneyResult
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return nil, fmt.Errorf("decoding journey: %w", err)
	}
	return &doc, nil
}

// toDocMap converts a typed document into the map form the version store
// persists.
func toDocMap(v interface{}) (map[string]interface{}, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, fmt.Errorf("normalizing document: %w", err)
	}
	return out, nil
}
