package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/attune-health/attune/pkg/config"
	"github.com/attune-health/attune/pkg/events"
	"github.com/attune-health/attune/pkg/services"
)

// WorkerPool manages the scheduler workers, the orphan sweeper, the
// Wave-3 debouncer and the per-pod cancel registry that stop requests
// use to interrupt in-flight sessions.
type WorkerPool struct {
	podID     string
	cfg       *config.SchedulerConfig
	sessions  *services.SessionService
	logs      *services.LogService
	publisher *events.Publisher
	executor  *Executor
	wave3     *Debouncer
	logger    *slog.Logger

	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Cancel registry: session_id → its patient and cancel function.
	mu      sync.RWMutex
	active  map[string]sessionHandle
	started bool
}

type sessionHandle struct {
	patientID string
	cancel    context.CancelFunc
}

// NewWorkerPool creates a worker pool.
func NewWorkerPool(podID string, cfg *config.SchedulerConfig, sessions *services.SessionService, logs *services.LogService, publisher *events.Publisher, executor *Executor, wave3 *Debouncer, logger *slog.Logger) *WorkerPool {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkerPool{
		podID:     podID,
		cfg:       cfg,
		sessions:  sessions,
		logs:      logs,
		publisher: publisher,
		executor:  executor,
		wave3:     wave3,
		logger:    logger,
		workers:   make([]*Worker, 0, cfg.PoolSize),
		stopCh:    make(chan struct{}),
		active:    make(map[string]sessionHandle),
	}
}

// Start spawns the workers, the orphan sweeper and the debouncer. Safe
// to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		p.logger.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	p.logger.Info("Starting worker pool", "pod_id", p.podID, "pool_size", p.cfg.PoolSize)

	p.wave3.Start(ctx)

	for i := 0; i < p.cfg.PoolSize; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.cfg, p.sessions, p.executor, p.wave3, p, p.logger)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanSweep(ctx)
	}()

	p.logger.Info("Worker pool started")
	return nil
}

// Stop signals workers to stop and waits for in-flight sessions to
// finish (graceful shutdown).
func (p *WorkerPool) Stop() {
	p.logger.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	p.wave3.Stop()

	p.logger.Info("Worker pool stopped gracefully")
}

// RegisterSession stores the cancel function for an in-flight session.
func (p *WorkerPool) RegisterSession(sessionID, patientID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active[sessionID] = sessionHandle{patientID: patientID, cancel: cancel}
}

// UnregisterSession removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterSession(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.active, sessionID)
}

// CancelPatient cancels every in-flight session of the patient on this
// pod and returns how many were cancelled.
func (p *WorkerPool) CancelPatient(patientID string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	cancelled := 0
	for _, handle := range p.active {
		if handle.patientID == patientID {
			handle.cancel()
			cancelled++
		}
	}
	return cancelled
}

// StopPatient halts the patient's pipeline: queued and running sessions
// are marked stopped, in-flight work on this pod is cancelled, and after
// the grace period the still-open task attempts are closed and reported.
// Idempotent: with nothing to stop it returns an empty report.
func (p *WorkerPool) StopPatient(ctx context.Context, patientID string) (*StopReport, error) {
	stopped, err := p.sessions.StopRunning(ctx, patientID)
	if err != nil {
		return nil, err
	}
	report := &StopReport{StoppedSessionIDs: stopped}
	if len(stopped) == 0 {
		return report, nil
	}

	p.wave3.CancelPending(patientID)

	if cancelled := p.CancelPatient(patientID); cancelled > 0 {
		p.logger.Info("Cancelled in-flight sessions for stop",
			"patient_id", patientID, "count", cancelled)
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		case <-time.After(p.cfg.StopGracePeriod):
		}
	}

	entries, err := p.logs.OpenEntries(ctx, stopped)
	if err != nil {
		return report, err
	}
	for _, entry := range entries {
		if err := p.logs.LogStopped(ctx, entry.ID, time.Since(entry.StartedAt)); err != nil {
			p.logger.Warn("Failed to close aborted log entry", "log_id", entry.ID, "error", err)
		}
		report.AbortedTasks = append(report.AbortedTasks, AbortedTask{
			SessionID: entry.SessionID,
			Task:      entry.Wave,
		})
	}

	p.publisher.PublishBestEffort(ctx, events.Event{
		PatientID: patientID,
		Phase:     events.PhasePipeline,
		EventType: events.EventTypePipelineStopped,
		Details: map[string]interface{}{
			"stopped_sessions": len(stopped),
			"aborted_tasks":    len(report.AbortedTasks),
		},
	})

	return report, nil
}

// ResumePatient requeues the patient's stopped sessions. Workers pick
// them up in date order and skip the waves that already completed.
// Idempotent: with nothing stopped it returns an empty report.
func (p *WorkerPool) ResumePatient(ctx context.Context, patientID string) (*ResumeReport, error) {
	resumed, err := p.sessions.ResumeStopped(ctx, patientID)
	if err != nil {
		return nil, err
	}
	report := &ResumeReport{ResumedSessionIDs: resumed}
	if len(resumed) == 0 {
		return report, nil
	}

	if session, err := p.sessions.FirstResumableSession(ctx, patientID); err == nil && session != nil {
		report.ResumeFromSessionID = session.ID
	}

	p.publisher.PublishBestEffort(ctx, events.Event{
		PatientID: patientID,
		Phase:     events.PhasePipeline,
		EventType: events.EventTypePipelineResumed,
		Details: map[string]interface{}{
			"resumed_sessions": len(resumed),
		},
	})

	return report, nil
}

// runOrphanSweep periodically requeues running sessions whose heartbeat
// went stale. All pods run this independently; requeueing is idempotent.
func (p *WorkerPool) runOrphanSweep(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			recovered, err := p.sessions.RecoverOrphans(ctx, p.cfg.OrphanThreshold)
			if err != nil {
				p.logger.Error("Orphan sweep failed", "error", err)
				continue
			}
			if len(recovered) > 0 {
				p.logger.Warn("Requeued orphaned sessions",
					"count", len(recovered), "session_ids", recovered)
			}
		}
	}
}
