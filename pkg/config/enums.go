package config

import "fmt"

// Tier selects the model quality/speed tradeoff for every task.
// Tier names are speed/quality adjectives, never cost labels.
type Tier string

// Model tiers.
const (
	TierPrecision Tier = "precision"
	TierBalanced  Tier = "balanced"
	TierRapid     Tier = "rapid"
)

// ParseTier validates and returns a Tier.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierPrecision, TierBalanced, TierRapid:
		return Tier(s), nil
	}
	return "", fmt.Errorf("%w: unknown model tier %q", ErrInvalidConfig, s)
}

// CompactionStrategy selects how prior-session context is built for
// Journey and Bridge generation.
type CompactionStrategy string

// Compaction strategies.
const (
	// CompactionFull concatenates every prior session. Cost grows linearly.
	CompactionFull CompactionStrategy = "full"
	// CompactionProgressive uses only the previous Journey plus the current
	// session. Constant cost, loses fidelity across time.
	CompactionProgressive CompactionStrategy = "progressive"
	// CompactionHierarchical partitions history into recent/mid/old tiers.
	CompactionHierarchical CompactionStrategy = "hierarchical"
)

// ParseCompactionStrategy validates and returns a CompactionStrategy.
func ParseCompactionStrategy(s string) (CompactionStrategy, error) {
	switch CompactionStrategy(s) {
	case CompactionFull, CompactionProgressive, CompactionHierarchical:
		return CompactionStrategy(s), nil
	}
	return "", fmt.Errorf("%w: unknown compaction strategy %q", ErrInvalidConfig, s)
}
