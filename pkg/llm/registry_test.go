package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attune-health/attune/pkg/config"
)

func newTestRegistry(t *testing.T, tier string) *Registry {
	t.Helper()
	t.Setenv("MODEL_TIER", tier)
	return NewRegistry(config.NewTierCache(time.Millisecond))
}

func TestResolveModelTierTable(t *testing.T) {
	tests := []struct {
		tier     string
		task     string
		expected string
	}{
		{"precision", TaskDeepAnalysis, ModelStrong},
		{"precision", TaskProse, ModelStrong},
		{"precision", TaskYourJourney, ModelStrong},
		{"precision", TaskSessionBridge, ModelStrong},
		{"precision", TaskBreakthrough, ModelStrong},
		{"precision", TaskMood, ModelMid},
		{"precision", TaskTopics, ModelMid},
		{"precision", TaskActionSummary, ModelMid},
		{"balanced", TaskDeepAnalysis, ModelMid},
		{"balanced", TaskBreakthrough, ModelMid},
		// Balanced only swaps the heavyweight model; lightweight tasks
		// keep the mid model instead of dropping a rung.
		{"balanced", TaskMood, ModelMid},
		{"balanced", TaskActionSummary, ModelMid},
		{"rapid", TaskDeepAnalysis, ModelCheap},
		{"rapid", TaskMood, ModelCheap},
	}

	for _, tt := range tests {
		t.Run(tt.tier+"/"+tt.task, func(t *testing.T) {
			registry := newTestRegistry(t, tt.tier)
			model, err := registry.ResolveModel(tt.task, "")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, model)
		})
	}
}

func TestResolveModelUnknownTask(t *testing.T) {
	registry := newTestRegistry(t, "precision")

	_, err := registry.ResolveModel("sentiment", "")
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestResolveModelCallOverride(t *testing.T) {
	registry := newTestRegistry(t, "rapid")

	model, err := registry.ResolveModel(TaskMood, ModelStrong)
	require.NoError(t, err)
	assert.Equal(t, ModelStrong, model)

	_, err = registry.ResolveModel(TaskMood, "gpt-7")
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestResolveModelEnvOverride(t *testing.T) {
	t.Setenv("MODEL_OVERRIDE_MOOD", ModelStrong)
	registry := newTestRegistry(t, "rapid")

	model, err := registry.ResolveModel(TaskMood, "")
	require.NoError(t, err)
	assert.Equal(t, ModelStrong, model)

	// Other tasks still follow the tier table.
	model, err = registry.ResolveModel(TaskTopics, "")
	require.NoError(t, err)
	assert.Equal(t, ModelCheap, model)
}

func TestResolveModelEnvOverrideUnknownModel(t *testing.T) {
	t.Setenv("MODEL_OVERRIDE_MOOD", "made-up-model")
	registry := newTestRegistry(t, "precision")

	_, err := registry.ResolveModel(TaskMood, "")
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestResolveModelTierSwitchMidRun(t *testing.T) {
	registry := newTestRegistry(t, "precision")

	model, err := registry.ResolveModel(TaskMood, "")
	require.NoError(t, err)
	assert.Equal(t, ModelMid, model)

	t.Setenv("MODEL_TIER", "rapid")
	time.Sleep(5 * time.Millisecond) // let the 1ms cache TTL lapse

	model, err = registry.ResolveModel(TaskMood, "")
	require.NoError(t, err)
	assert.Equal(t, ModelCheap, model)
}

func TestCostOf(t *testing.T) {
	// 1M input + 1M output at gpt-5 prices.
	assert.InDelta(t, 11.25, CostOf(ModelStrong, 1_000_000, 1_000_000), 1e-9)
	// 10k input + 2k output on the nano model.
	assert.InDelta(t, 10_000.0/1e6*0.05+2_000.0/1e6*0.40, CostOf(ModelCheap, 10_000, 2_000), 1e-9)
	assert.Zero(t, CostOf("unknown", 1000, 1000))
}

func TestPriceOf(t *testing.T) {
	p, ok := PriceOf(ModelMid)
	require.True(t, ok)
	assert.Equal(t, 0.25, p.InputPerMillion)
	assert.Equal(t, 2.00, p.OutputPerMillion)

	_, ok = PriceOf("nope")
	assert.False(t, ok)
}
