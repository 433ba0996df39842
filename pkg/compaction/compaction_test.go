package compaction

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attune-health/attune/pkg/config"
	"github.com/attune-health/attune/pkg/tasks"
)

// history builds n sessions, most recent first, one week apart.
func history(n int) []SessionRecord {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	sessions := make([]SessionRecord, n)
	for i := 0; i < n; i++ {
		sessions[i] = SessionRecord{
			SessionID:   fmt.Sprintf("sess-%d", n-i),
			SessionDate: base.AddDate(0, 0, -7*i),
			MoodScore:   5.5,
			Topics:      []string{"Work stress"},
			Summary:     "Talked about work.",
			Insights:    []string{"b1", "b2", "b3"},
			Deep: &tasks.DeepAnalysis{
				Progress:        "Some movement.",
				Insights:        []string{"Rumination persists"},
				Recommendations: []string{"Keep journaling"},
			},
		}
	}
	return sessions
}

func hierarchical(t *testing.T, n int) map[string]interface{} {
	t.Helper()
	ctx, err := Build(config.CompactionHierarchical, history(n), nil)
	require.NoError(t, err)
	return ctx
}

func tierLen(t *testing.T, ctx map[string]interface{}, key string) int {
	t.Helper()
	v, ok := ctx[key]
	if !ok {
		return 0
	}
	list, ok := v.([]map[string]interface{})
	require.True(t, ok, "tier %s has unexpected type %T", key, v)
	return len(list)
}

func TestHierarchicalPartitionBoundaries(t *testing.T) {
	tests := []struct {
		sessions int
		tier1    int
		tier2    int
		hasArc   bool
	}{
		{1, 1, 0, false},
		{3, 3, 0, false},
		{4, 3, 1, false},
		{7, 3, 4, false},
		{8, 3, 4, true},
		{15, 3, 4, true},
		{30, 3, 4, true},
		{45, 3, 4, true}, // capped at 30
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_sessions", tt.sessions), func(t *testing.T) {
			ctx := hierarchical(t, tt.sessions)
			assert.Equal(t, tt.tier1, tierLen(t, ctx, "recent_sessions"))
			assert.Equal(t, tt.tier2, tierLen(t, ctx, "earlier_sessions"))
			_, hasArc := ctx["journey_arc"]
			assert.Equal(t, tt.hasArc, hasArc)
		})
	}
}

func TestHierarchicalCountsFromMostRecent(t *testing.T) {
	ctx := hierarchical(t, 5)
	recent := ctx["recent_sessions"].([]map[string]interface{})
	require.Len(t, recent, 3)
	// Most recent session (2026-08-01) leads Tier 1.
	assert.Equal(t, "2026-08-01", recent[0]["date"])
	earlier := ctx["earlier_sessions"].([]map[string]interface{})
	require.Len(t, earlier, 2)
	assert.Equal(t, "2026-07-11", earlier[0]["date"])
}

func TestHierarchicalArcCapsAtThirty(t *testing.T) {
	ctx := hierarchical(t, 45)
	arc, ok := ctx["journey_arc"].(string)
	require.True(t, ok)
	// 30 kept total, 7 in tiers 1-2, 23 in the arc.
	assert.Contains(t, arc, "23 earlier sessions")
}

func TestHierarchicalTier2SummaryLength(t *testing.T) {
	ctx := hierarchical(t, 7)
	earlier := ctx["earlier_sessions"].([]map[string]interface{})
	for _, entry := range earlier {
		summary := entry["summary"].(string)
		assert.NotEmpty(t, summary)
		assert.LessOrEqual(t, len(summary), 300)
	}
}

func TestHierarchicalTier1UsesInsights(t *testing.T) {
	ctx := hierarchical(t, 3)
	recent := ctx["recent_sessions"].([]map[string]interface{})
	assert.Equal(t, []string{"b1", "b2", "b3"}, recent[0]["insights"])

	// Without precomputed insights Tier 1 falls back to stored fields.
	sessions := history(1)
	sessions[0].Insights = nil
	fallbackCtx, err := Build(config.CompactionHierarchical, sessions, nil)
	require.NoError(t, err)
	record := fallbackCtx["recent_sessions"].([]map[string]interface{})[0]
	assert.Equal(t, "Talked about work.", record["summary"])
	assert.NotContains(t, record, "insights")
}

func TestHierarchicalIncludesPreviousJourney(t *testing.T) {
	prev := map[string]interface{}{"summary": "You started strong."}
	ctx, err := Build(config.CompactionHierarchical, history(2), prev)
	require.NoError(t, err)
	assert.Equal(t, prev, ctx["previous_journey"])
}

func TestFullStrategy(t *testing.T) {
	ctx, err := Build(config.CompactionFull, history(4), nil)
	require.NoError(t, err)
	byDate := ctx["sessions"].(map[string]interface{})
	assert.Len(t, byDate, 4)
}

func TestProgressiveStrategy(t *testing.T) {
	prev := map[string]interface{}{"summary": "prior"}
	ctx, err := Build(config.CompactionProgressive, history(10), prev)
	require.NoError(t, err)
	assert.Equal(t, prev, ctx["previous_journey"])
	assert.NotNil(t, ctx["current_session"])
	// No per-session tiers: cost stays constant regardless of history.
	assert.NotContains(t, ctx, "recent_sessions")
	assert.NotContains(t, ctx, "sessions")
}

func TestUnknownStrategy(t *testing.T) {
	_, err := Build(config.CompactionStrategy("vibes"), history(1), nil)
	assert.Error(t, err)
}
