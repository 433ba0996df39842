// Package cleanup enforces event retention. Pipeline events are a
// delivery mechanism, not an archive: consumed or not, they expire
// after the sweep TTL and the analysis tables remain the durable record.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/attune-health/attune/pkg/services"
)

// Sweeper periodically deletes pipeline events past their TTL. Deletion
// is idempotent and safe to run from multiple pods.
type Sweeper struct {
	ttl      time.Duration
	interval time.Duration
	events   *services.EventService
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a new event sweeper.
func NewSweeper(events *services.EventService, ttl, interval time.Duration, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{
		ttl:      ttl,
		interval: interval,
		events:   events,
		logger:   logger,
	}
}

// Start launches the background sweep loop. One sweep runs immediately.
func (s *Sweeper) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Event sweeper started", "ttl", s.ttl, "interval", s.interval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Event sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep deletes events older than the TTL. Runs on a background context
// so an in-progress delete survives shutdown-triggered cancellation.
func (s *Sweeper) sweep() {
	cutoff := time.Now().Add(-s.ttl)
	count, err := s.events.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		s.logger.Error("Event sweep failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Swept expired events", "count", count, "cutoff", cutoff)
	}
}
