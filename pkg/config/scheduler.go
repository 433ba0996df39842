package config

import "time"

// SchedulerConfig controls the wave scheduler's work pool and retry policy.
type SchedulerConfig struct {
	// PoolSize is the number of concurrent task slots per replica. The
	// default of 4 covers the Wave-1 triple plus action summary.
	PoolSize int

	// Wave1Parallelism bounds how many of the Wave-1 generators run at
	// once for a single session.
	Wave1Parallelism int

	// MaxRetries is the per-task attempt cap (first attempt + retries).
	MaxRetries int

	// BackoffBase and BackoffCap bound the exponential retry backoff.
	// Jitter of ±20% is applied on top.
	BackoffBase time.Duration
	BackoffCap  time.Duration

	// DeepTimeout is the per-attempt deadline for the deep-analysis task;
	// TaskTimeout applies to every other task.
	DeepTimeout time.Duration
	TaskTimeout time.Duration

	// Debounce is the Wave-3 quiet window: Wave-2 completions for the
	// same patient inside this window coalesce into one regeneration.
	Debounce time.Duration

	// PollInterval is the base interval for claiming pending sessions;
	// PollIntervalJitter randomises it to avoid thundering herds.
	PollInterval       time.Duration
	PollIntervalJitter time.Duration

	// SessionTimeout caps end-to-end processing of one session.
	SessionTimeout time.Duration

	// HeartbeatInterval and OrphanThreshold drive crash recovery: a
	// running session whose heartbeat is older than the threshold is
	// reset to pending.
	HeartbeatInterval       time.Duration
	OrphanThreshold         time.Duration
	OrphanDetectionInterval time.Duration

	// GracefulShutdownTimeout is how long Stop waits for in-flight waves.
	GracefulShutdownTimeout time.Duration

	// StopGracePeriod is how long /stop waits for cancellation to take
	// effect before reporting the aborted tasks.
	StopGracePeriod time.Duration
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		PoolSize:                4,
		Wave1Parallelism:        3,
		MaxRetries:              3,
		BackoffBase:             2 * time.Second,
		BackoffCap:              30 * time.Second,
		DeepTimeout:             300 * time.Second,
		TaskTimeout:             60 * time.Second,
		Debounce:                time.Second,
		PollInterval:            time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		SessionTimeout:          30 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanThreshold:         5 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		GracefulShutdownTimeout: 10 * time.Minute,
		StopGracePeriod:         5 * time.Second,
	}
}
