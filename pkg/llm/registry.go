package llm

import (
	"github.com/attune-health/attune/pkg/config"
)

// Task names. These double as processing-log wave identifiers and cost
// ledger keys, so they are stable strings rather than iota constants.
const (
	TaskMood            = "mood"
	TaskTopics          = "topics"
	TaskBreakthrough    = "breakthrough"
	TaskActionSummary   = "action_summary"
	TaskDeepAnalysis    = "deep"
	TaskProse           = "prose"
	TaskSpeakerLabel    = "speaker_label"
	TaskSessionInsights = "session_insights"
	TaskYourJourney     = "your_journey"
	TaskSessionBridge   = "session_bridge"
)

// Model identifiers accepted by the remote endpoint.
const (
	ModelStrong = "gpt-5"
	ModelMid    = "gpt-5-mini"
	ModelCheap  = "gpt-5-nano"
)

// ModelPrice is the per-million-token price for one model.
type ModelPrice struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// modelPrices is the authoritative price table. ResolveModel rejects any
// model (including overrides) absent from it.
var modelPrices = map[string]ModelPrice{
	ModelStrong: {InputPerMillion: 1.25, OutputPerMillion: 10.00},
	ModelMid:    {InputPerMillion: 0.25, OutputPerMillion: 2.00},
	ModelCheap:  {InputPerMillion: 0.05, OutputPerMillion: 0.40},
}

// heavyweight tasks get the strong model under the precision tier and
// the mid model under balanced; everything else stays on the mid model
// under both. Rapid sends every task to the cheap model.
var heavyweight = map[string]bool{
	TaskDeepAnalysis:  true,
	TaskProse:         true,
	TaskYourJourney:   true,
	TaskSessionBridge: true,
	TaskBreakthrough:  true,
}

var knownTasks = map[string]bool{
	TaskMood:            true,
	TaskTopics:          true,
	TaskBreakthrough:    true,
	TaskActionSummary:   true,
	TaskDeepAnalysis:    true,
	TaskProse:           true,
	TaskSpeakerLabel:    true,
	TaskSessionInsights: true,
	TaskYourJourney:     true,
	TaskSessionBridge:   true,
}

// KnownTask reports whether name is a registered task.
func KnownTask(name string) bool { return knownTasks[name] }

// Registry resolves the model for a task from the active tier, per-task
// environment overrides and an optional per-call override.
type Registry struct {
	tiers *config.TierCache
}

// NewRegistry creates a Registry backed by the given tier cache.
func NewRegistry(tiers *config.TierCache) *Registry {
	return &Registry{tiers: tiers}
}

// ResolveModel picks the model for a task. Precedence: per-call override,
// then MODEL_OVERRIDE_<TASK>, then the tier table. Unknown tasks and
// unknown model identifiers yield a ConfigError.
func (r *Registry) ResolveModel(task, override string) (string, error) {
	if !knownTasks[task] {
		return "", NewConfigError("unknown task %q", task)
	}
	if override != "" {
		if _, ok := modelPrices[override]; !ok {
			return "", NewConfigError("unknown model %q for task %s", override, task)
		}
		return override, nil
	}

	state := r.tiers.Current()
	if envOverride, ok := state.Overrides[task]; ok {
		if _, priced := modelPrices[envOverride]; !priced {
			return "", NewConfigError("unknown model %q in MODEL_OVERRIDE for task %s", envOverride, task)
		}
		return envOverride, nil
	}

	switch state.Tier {
	case config.TierPrecision:
		if heavyweight[task] {
			return ModelStrong, nil
		}
		return ModelMid, nil
	case config.TierBalanced:
		return ModelMid, nil
	case config.TierRapid:
		return ModelCheap, nil
	default:
		return "", NewConfigError("unknown tier %q", state.Tier)
	}
}

// PriceOf returns the price entry for a model.
func PriceOf(model string) (ModelPrice, bool) {
	p, ok := modelPrices[model]
	return p, ok
}

// CostOf computes the dollar cost of a completion. Unknown models cost
// zero; the caller already validated the model through ResolveModel.
func CostOf(model string, inputTokens, outputTokens int) float64 {
	p, ok := modelPrices[model]
	if !ok {
		return 0
	}
	return float64(inputTokens)/1e6*p.InputPerMillion +
		float64(outputTokens)/1e6*p.OutputPerMillion
}
