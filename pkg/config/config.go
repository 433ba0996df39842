// Package config loads pipeline configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the process-wide configuration loaded at startup. The model
// tier is deliberately NOT part of this struct: it may change at any time
// and is read through TierCache on every generator invocation.
type Config struct {
	// Remote completion endpoint
	RemoteAPIKey     string
	RemoteAPIBaseURL string

	// Context construction for Journey/Bridge
	Compaction CompactionStrategy

	Scheduler *SchedulerConfig

	// Event infrastructure
	EventSweepTTL   time.Duration
	SweepInterval   time.Duration
	SSEKeepAlive    time.Duration
	SSEPollInterval time.Duration
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	apiKey := os.Getenv("REMOTE_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	strategy, err := ParseCompactionStrategy(getEnv("COMPACTION_STRATEGY", string(CompactionHierarchical)))
	if err != nil {
		return nil, err
	}

	// Validate the tier eagerly so a typo fails at startup, even though
	// resolution re-reads it per call.
	if _, err := ParseTier(getEnv("MODEL_TIER", string(TierPrecision))); err != nil {
		return nil, err
	}

	sched := DefaultSchedulerConfig()
	if v := os.Getenv("POOL_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: POOL_SIZE %q", ErrInvalidConfig, v)
		}
		sched.PoolSize = n
	}
	if v := os.Getenv("DEBOUNCE_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: DEBOUNCE_MS %q", ErrInvalidConfig, v)
		}
		sched.Debounce = time.Duration(n) * time.Millisecond
	}

	ttlHours, err := envInt("EVENT_SWEEP_TTL_HOURS", 24)
	if err != nil {
		return nil, err
	}
	keepAlive, err := envInt("SSE_KEEPALIVE_SECONDS", 5)
	if err != nil {
		return nil, err
	}

	return &Config{
		RemoteAPIKey:     apiKey,
		RemoteAPIBaseURL: os.Getenv("REMOTE_API_BASE_URL"),
		Compaction:       strategy,
		Scheduler:        sched,
		EventSweepTTL:    time.Duration(ttlHours) * time.Hour,
		SweepInterval:    time.Hour,
		SSEKeepAlive:     time.Duration(keepAlive) * time.Second,
		SSEPollInterval:  500 * time.Millisecond,
	}, nil
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidConfig, key, v)
	}
	return n, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
