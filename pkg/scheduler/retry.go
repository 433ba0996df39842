package scheduler

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/attune-health/attune/pkg/config"
	"github.com/attune-health/attune/pkg/llm"
)

// attemptOpts carries per-task attribution and deadline into runAttempts.
type attemptOpts struct {
	SessionID string
	PatientID string
	Timeout   time.Duration
}

// backoffDelay returns the wait before retry number attempt (1-based):
// exponential from the configured base, capped, with ±20% jitter.
func backoffDelay(cfg *config.SchedulerConfig, attempt int) time.Duration {
	delay := cfg.BackoffBase << (attempt - 1)
	if delay > cfg.BackoffCap || delay <= 0 {
		delay = cfg.BackoffCap
	}
	jitter := time.Duration(rand.Int64N(int64(delay) * 2 / 5))
	return delay - delay/5 + jitter
}

// runAttempts executes one task with the retry policy: up to MaxRetries
// attempts, exponential backoff between them, each attempt logged as its
// own processing_logs entry. Parse failures are retried once; when the
// second parse also fails the task's fallback value is returned together
// with the ParseError so the caller can accept a degraded result.
func runAttempts[I, R any](ctx context.Context, e *Executor, task llm.Task[I, R], input I, opts attemptOpts) (R, *llm.CostEntry, error) {
	var zero R
	var lastResult R
	var lastEntry *llm.CostEntry
	var lastErr error
	parseFailures := 0

	for attempt := 0; attempt < e.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return zero, nil, ctx.Err()
			case <-time.After(backoffDelay(e.cfg, attempt)):
			}
		}

		logID, err := e.logs.LogStart(ctx, opts.SessionID, task.Name(), attempt)
		if err != nil {
			return zero, nil, err
		}

		start := time.Now()
		result, entry, err := llm.Generate(ctx, e.generator, task, input, llm.Options{
			SessionID: opts.SessionID,
			PatientID: opts.PatientID,
			Timeout:   opts.Timeout,
		})
		elapsed := time.Since(start)

		// Log closes must survive caller cancellation.
		closeCtx := context.WithoutCancel(ctx)

		if err == nil {
			if logErr := e.logs.LogComplete(closeCtx, logID, elapsed); logErr != nil {
				e.logger.Warn("Failed to close log entry", "task", task.Name(), "error", logErr)
			}
			return result, entry, nil
		}

		if llm.IsCancelled(err) {
			if logErr := e.logs.LogStopped(closeCtx, logID, elapsed); logErr != nil {
				e.logger.Warn("Failed to close log entry", "task", task.Name(), "error", logErr)
			}
			return zero, nil, err
		}

		if logErr := e.logs.LogFail(closeCtx, logID, elapsed, err.Error()); logErr != nil {
			e.logger.Warn("Failed to close log entry", "task", task.Name(), "error", logErr)
		}

		if llm.IsParseError(err) {
			parseFailures++
			lastResult, lastEntry, lastErr = result, entry, err
			if parseFailures > 1 {
				// Fallback (when the task has one) came back alongside the
				// error; hand both to the caller.
				return lastResult, lastEntry, lastErr
			}
			continue
		}

		if !llm.IsRetryable(err) {
			return zero, nil, err
		}

		e.logger.Warn("Task attempt failed, retrying",
			"task", task.Name(), "session_id", opts.SessionID, "attempt", attempt, "error", err)
		lastErr = err
	}

	return lastResult, lastEntry, lastErr
}
