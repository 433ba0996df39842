package config

import (
	"os"
	"strings"
	"sync"
	"time"
)

// TierState is an immutable snapshot of the tier selection plus any
// per-task model overrides (MODEL_OVERRIDE_<TASK> environment variables).
type TierState struct {
	Tier      Tier
	Overrides map[string]string
	Version   uint64
}

// TierCache is a read-through cache over the MODEL_TIER environment
// variable. The environment may change under a running process (operators
// flip tiers mid-run); re-reading with a sub-second TTL picks the change
// up within one second without an env read on every call.
type TierCache struct {
	ttl time.Duration

	mu      sync.Mutex
	state   *TierState
	expires time.Time
	version uint64
}

// NewTierCache creates a TierCache with the given TTL. TTLs above one
// second are clamped so tier switches are observed within a second.
func NewTierCache(ttl time.Duration) *TierCache {
	if ttl <= 0 || ttl > time.Second {
		ttl = time.Second
	}
	return &TierCache{ttl: ttl}
}

// Current returns the active tier state, refreshing from the environment
// when the TTL has elapsed. Unknown MODEL_TIER values fall back to
// precision; startup validation in Load already rejects typos, so this
// path only triggers on mid-run edits.
func (c *TierCache) Current() *TierState {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if c.state != nil && now.Before(c.expires) {
		return c.state
	}

	tier, err := ParseTier(getEnv("MODEL_TIER", string(TierPrecision)))
	if err != nil {
		tier = TierPrecision
	}
	next := &TierState{
		Tier:      tier,
		Overrides: readOverrides(),
	}

	if c.state == nil || !statesEqual(c.state, next) {
		c.version++
	}
	next.Version = c.version
	c.state = next
	c.expires = now.Add(c.ttl)
	return c.state
}

// Invalidate forces the next Current call to re-read the environment.
func (c *TierCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expires = time.Time{}
}

// readOverrides collects MODEL_OVERRIDE_<TASK>=<model> variables keyed by
// lower-cased task name.
func readOverrides() map[string]string {
	const prefix = "MODEL_OVERRIDE_"
	overrides := make(map[string]string)
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, prefix) {
			continue
		}
		eq := strings.IndexByte(kv, '=')
		if eq < 0 {
			continue
		}
		task := strings.ToLower(kv[len(prefix):eq])
		if task == "" || kv[eq+1:] == "" {
			continue
		}
		overrides[task] = kv[eq+1:]
	}
	return overrides
}

func statesEqual(a, b *TierState) bool {
	if a.Tier != b.Tier || len(a.Overrides) != len(b.Overrides) {
		return false
	}
	for k, v := range a.Overrides {
		if b.Overrides[k] != v {
			return false
		}
	}
	return true
}
