// Package tasks implements the concrete analysis tasks executed by the
// wave scheduler: the Wave-1 trio plus action summary, the Wave-2 deep
// and prose pair, speaker labeling, and the Wave-3 Journey and Bridge
// document generators.
package tasks

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// decodeJSON unmarshals model output into v, tolerating markdown code
// fences and surrounding prose. Models wrap JSON in ```json blocks often
// enough that stripping them here beats re-prompting.
func decodeJSON(raw string, v interface{}) error {
	cleaned := stripFences(raw)
	start := strings.IndexAny(cleaned, "{[")
	if start < 0 {
		return fmt.Errorf("no JSON object in output")
	}
	end := strings.LastIndexAny(cleaned, "}]")
	if end < start {
		return fmt.Errorf("unterminated JSON in output")
	}
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), v); err != nil {
		return fmt.Errorf("decoding output: %w", err)
	}
	return nil
}

func stripFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if nl := strings.IndexByte(trimmed, '\n'); nl >= 0 {
		trimmed = trimmed[nl+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// truncateAtWord shortens s to at most limit characters without breaking
// a word. If the first word alone exceeds the limit it is hard-cut.
func truncateAtWord(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := s[:limit]
	if idx := strings.LastIndexFunc(cut, unicode.IsSpace); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRightFunc(cut, unicode.IsSpace)
}

// wordCount counts whitespace-separated words.
func wordCount(s string) int {
	return len(strings.Fields(s))
}

// clamp01 bounds a confidence value to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
