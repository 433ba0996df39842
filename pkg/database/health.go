package database

import (
	"context"
	"database/sql"
	"time"
)

// Health is the snapshot behind /healthz: database reachability and
// latency, connection pool pressure, and how many ingested sessions are
// still waiting for a worker to claim them.
type Health struct {
	Reachable       bool  `json:"reachable"`
	LatencyMS       int64 `json:"latency_ms"`
	PendingSessions int   `json:"pending_sessions"`
	PoolInUse       int   `json:"pool_in_use"`
	PoolIdle        int   `json:"pool_idle"`
	PoolWaitCount   int64 `json:"pool_wait_count"`
}

// CheckHealth pings the database, samples the pool, and counts the
// ingest queue. The queue count shares the probe's deadline; if it
// fails, the database is not answering queries and the probe fails
// with it.
func CheckHealth(ctx context.Context, db *sql.DB) (Health, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return Health{LatencyMS: time.Since(start).Milliseconds()}, err
	}

	stats := db.Stats()
	health := Health{
		Reachable:     true,
		PoolInUse:     stats.InUse,
		PoolIdle:      stats.Idle,
		PoolWaitCount: stats.WaitCount,
	}

	row := db.QueryRowContext(ctx,
		`SELECT count(*) FROM therapy_sessions WHERE processing_status = 'pending'`)
	if err := row.Scan(&health.PendingSessions); err != nil {
		health.Reachable = false
		health.LatencyMS = time.Since(start).Milliseconds()
		return health, err
	}
	health.LatencyMS = time.Since(start).Milliseconds()
	return health, nil
}
