package scheduler

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/attune-health/attune/ent/therapysession"
	"github.com/attune-health/attune/pkg/config"
	"github.com/attune-health/attune/pkg/services"
)

// SessionRegistry is the subset of WorkerPool used by Worker to register
// in-flight sessions for stop-triggered cancellation.
type SessionRegistry interface {
	RegisterSession(sessionID, patientID string, cancel context.CancelFunc)
	UnregisterSession(sessionID string)
}

// Worker is a single scheduler worker that polls for and processes
// pending sessions.
type Worker struct {
	id       string
	podID    string
	cfg      *config.SchedulerConfig
	sessions *services.SessionService
	executor *Executor
	wave3    *Debouncer
	pool     SessionRegistry
	logger   *slog.Logger
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWorker creates a scheduler worker.
func NewWorker(id, podID string, cfg *config.SchedulerConfig, sessions *services.SessionService, executor *Executor, wave3 *Debouncer, pool SessionRegistry, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{
		id:       id,
		podID:    podID,
		cfg:      cfg,
		sessions: sessions,
		executor: executor,
		wave3:    wave3,
		pool:     pool,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// session. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := w.logger.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if err == ErrNoSessionsAvailable {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing session", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next pending session and runs it through the
// executor.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	session, err := w.sessions.ClaimPending(ctx, w.podID)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrNoSessionsAvailable
	}

	log := w.logger.With("session_id", session.ID, "worker_id", w.id)
	log.Info("Session claimed")

	sessionCtx, cancelSession := context.WithTimeout(ctx, w.cfg.SessionTimeout)
	defer cancelSession()

	// Register for stop-triggered cancellation.
	w.pool.RegisterSession(session.ID, session.PatientID, cancelSession)
	defer w.pool.UnregisterSession(session.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(sessionCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, session.ID)

	result := w.executor.Execute(sessionCtx, session)
	cancelHeartbeat()

	// The session context may be cancelled; the terminal write must land.
	finishCtx := context.WithoutCancel(ctx)

	errorMessage := ""
	if result.Status == therapysession.ProcessingStatusFailed && result.Error != nil {
		errorMessage = result.Error.Error()
	}
	if err := w.sessions.FinishSession(finishCtx, session.ID, result.Status, errorMessage); err != nil {
		log.Error("Failed to write terminal session status", "error", err)
		return err
	}

	if result.Status == therapysession.ProcessingStatusCompleted {
		w.wave3.Trigger(session.PatientID)
	}

	log.Info("Session processing complete", "status", result.Status)
	return nil
}

// runHeartbeat refreshes the claim timestamp for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, sessionID string) {
	ticker := time.NewTicker(w.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.sessions.Heartbeat(ctx, sessionID); err != nil {
				w.logger.Warn("Heartbeat update failed", "session_id", sessionID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.cfg.PollInterval
	jitter := w.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}
