// Package compaction builds tiered context over a patient's session
// history so Journey and Bridge generation cost stays roughly flat as
// sessions accumulate. The engine is a pure function of its inputs.
package compaction

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/attune-health/attune/pkg/config"
	"github.com/attune-health/attune/pkg/tasks"
)

// Tier boundaries, counted from the most recent session.
const (
	tier1Size  = 3  // full insight records
	tier2End   = 7  // paragraph summaries for sessions 4-7
	maxHistory = 30 // sessions beyond this fold into the arc unseen
)

// tier2SummaryChars bounds the per-session paragraph in Tier 2.
const tier2SummaryChars = 300

// SessionRecord is one completed session as the engine sees it, most
// recent first in the input slice.
type SessionRecord struct {
	SessionID   string
	SessionDate time.Time
	MoodScore   float64
	Topics      []string
	Summary     string
	HasBreak    bool
	BreakLabel  string
	Deep        *tasks.DeepAnalysis
	// Insights holds precomputed session_insights bullets. The scheduler
	// populates them for Tier-1 candidates before calling the engine;
	// sessions without them fall back to stored Wave-1 fields.
	Insights []string
}

// Build produces the context dictionary for the given strategy. Sessions
// must be ordered most recent first. previousJourney may be empty.
func Build(strategy config.CompactionStrategy, sessions []SessionRecord, previousJourney map[string]interface{}) (map[string]interface{}, error) {
	switch strategy {
	case config.CompactionFull:
		return buildFull(sessions), nil
	case config.CompactionProgressive:
		return buildProgressive(sessions, previousJourney), nil
	case config.CompactionHierarchical:
		return buildHierarchical(sessions, previousJourney), nil
	default:
		return nil, fmt.Errorf("unknown compaction strategy %q", strategy)
	}
}

// buildFull concatenates every session's raw fields keyed by date.
// Linear cost; kept for small histories and debugging.
func buildFull(sessions []SessionRecord) map[string]interface{} {
	byDate := make(map[string]interface{}, len(sessions))
	for _, s := range sessions {
		entry := map[string]interface{}{
			"mood_score": s.MoodScore,
			"topics":     s.Topics,
			"summary":    s.Summary,
		}
		if s.HasBreak {
			entry["breakthrough"] = s.BreakLabel
		}
		if s.Deep != nil {
			entry["deep_analysis"] = s.Deep
		}
		byDate[s.SessionDate.Format("2006-01-02")] = entry
	}
	return map[string]interface{}{
		"strategy": string(config.CompactionFull),
		"sessions": byDate,
	}
}

// buildProgressive uses only the previous Journey plus the newest
// session. Constant cost, lossy across time.
func buildProgressive(sessions []SessionRecord, previousJourney map[string]interface{}) map[string]interface{} {
	ctx := map[string]interface{}{
		"strategy": string(config.CompactionProgressive),
	}
	if len(previousJourney) > 0 {
		ctx["previous_journey"] = previousJourney
	}
	if len(sessions) > 0 {
		ctx["current_session"] = sessionInsightRecord(sessions[0])
	}
	return ctx
}

// buildHierarchical partitions the history by recency: full insight
// records for the newest three, short paragraphs for the next four, one
// arc string for everything older.
func buildHierarchical(sessions []SessionRecord, previousJourney map[string]interface{}) map[string]interface{} {
	if len(sessions) > maxHistory {
		sessions = sessions[:maxHistory]
	}

	ctx := map[string]interface{}{
		"strategy": string(config.CompactionHierarchical),
	}

	tier1End := min(tier1Size, len(sessions))
	recent := make([]map[string]interface{}, 0, tier1End)
	for _, s := range sessions[:tier1End] {
		recent = append(recent, sessionInsightRecord(s))
	}
	ctx["recent_sessions"] = recent

	if len(sessions) > tier1Size {
		end := min(tier2End, len(sessions))
		middle := make([]map[string]interface{}, 0, end-tier1Size)
		for _, s := range sessions[tier1Size:end] {
			middle = append(middle, map[string]interface{}{
				"date":    s.SessionDate.Format("2006-01-02"),
				"summary": tier2Summary(s),
			})
		}
		ctx["earlier_sessions"] = middle
	}

	if len(sessions) > tier2End {
		ctx["journey_arc"] = journeyArc(sessions[tier2End:])
	}

	if len(previousJourney) > 0 {
		ctx["previous_journey"] = previousJourney
	}
	return ctx
}

// sessionInsightRecord is the Tier-1 shape: the precomputed insight
// bullets when available, stored Wave-1 fields otherwise.
func sessionInsightRecord(s SessionRecord) map[string]interface{} {
	record := map[string]interface{}{
		"date":       s.SessionDate.Format("2006-01-02"),
		"mood_score": s.MoodScore,
	}
	if len(s.Insights) > 0 {
		record["insights"] = s.Insights
	} else {
		record["topics"] = s.Topics
		record["summary"] = s.Summary
		if s.Deep != nil {
			record["deep_analysis"] = s.Deep
		}
	}
	if s.HasBreak {
		record["breakthrough"] = s.BreakLabel
	}
	return record
}

// tier2Summary extracts the key lines of a session's deep analysis into
// roughly 300 characters without another model call.
func tier2Summary(s SessionRecord) string {
	var parts []string
	if s.Deep != nil {
		if s.Deep.Progress != "" {
			parts = append(parts, s.Deep.Progress)
		}
		if len(s.Deep.Insights) > 0 {
			parts = append(parts, s.Deep.Insights[0])
		}
		if len(s.Deep.Recommendations) > 0 {
			parts = append(parts, s.Deep.Recommendations[0])
		}
	}
	if len(parts) == 0 {
		parts = append(parts, s.Summary)
	}
	return truncateAtWord(strings.Join(parts, " "), tier2SummaryChars)
}

// journeyArc folds the oldest tail into one string: the covered span,
// mood trajectory and recurring topics.
func journeyArc(tail []SessionRecord) string {
	if len(tail) == 0 {
		return ""
	}
	newest := tail[0].SessionDate
	oldest := tail[len(tail)-1].SessionDate

	var moodSum float64
	topicCounts := make(map[string]int)
	breakthroughs := 0
	for _, s := range tail {
		moodSum += s.MoodScore
		for _, topic := range s.Topics {
			topicCounts[topic]++
		}
		if s.HasBreak {
			breakthroughs++
		}
	}

	var recurring []string
	for topic, count := range topicCounts {
		if count >= 2 {
			recurring = append(recurring, topic)
		}
	}
	sort.Strings(recurring)

	arc := fmt.Sprintf("%d earlier sessions from %s to %s, average mood %.1f",
		len(tail), oldest.Format("2006-01-02"), newest.Format("2006-01-02"), moodSum/float64(len(tail)))
	if len(recurring) > 0 {
		arc += "; recurring themes: " + strings.Join(recurring, ", ")
	}
	if breakthroughs > 0 {
		arc += fmt.Sprintf("; %d breakthrough(s) recorded", breakthroughs)
	}
	return arc
}

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
