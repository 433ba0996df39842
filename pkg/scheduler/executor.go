package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/attune-health/attune/ent"
	"github.com/attune-health/attune/ent/therapysession"
	"github.com/attune-health/attune/pkg/compaction"
	"github.com/attune-health/attune/pkg/config"
	"github.com/attune-health/attune/pkg/events"
	"github.com/attune-health/attune/pkg/llm"
	"github.com/attune-health/attune/pkg/services"
	"github.com/attune-health/attune/pkg/tasks"
	"github.com/attune-health/attune/pkg/transcript"
)

// Executor owns one session's pipeline end to end: speaker labeling, the
// Wave-1 parallel triple plus action summary, the Wave-2 ordering gate,
// and deep analysis followed by prose. It writes results progressively;
// the worker only handles claiming, heartbeat and terminal status.
type Executor struct {
	cfg       *config.SchedulerConfig
	strategy  config.CompactionStrategy
	sessions  *services.SessionService
	logs      *services.LogService
	versions  *services.VersionService
	generator *llm.Generator
	publisher *events.Publisher
	logger    *slog.Logger
}

// NewExecutor creates an Executor.
func NewExecutor(cfg *config.SchedulerConfig, strategy config.CompactionStrategy, sessions *services.SessionService, logs *services.LogService, versions *services.VersionService, generator *llm.Generator, publisher *events.Publisher, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		cfg:       cfg,
		strategy:  strategy,
		sessions:  sessions,
		logs:      logs,
		versions:  versions,
		generator: generator,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute runs the pipeline for one claimed session. Waves that already
// completed in a previous run (resume path) are skipped.
func (e *Executor) Execute(ctx context.Context, session *ent.TherapySession) *ExecutionResult {
	log := e.logger.With("session_id", session.ID, "patient_id", session.PatientID)

	if session.ProseGeneratedAt != nil {
		return &ExecutionResult{Status: therapysession.ProcessingStatusCompleted}
	}

	segments, err := services.DecodeTranscript(session)
	if err != nil {
		return &ExecutionResult{Status: therapysession.ProcessingStatusFailed, Error: err}
	}

	var wave1 services.Wave1Results
	if session.Wave1CompletedAt == nil {
		segments = e.labelSpeakers(ctx, session, segments)
		wave1, err = e.runWave1(ctx, session, segments)
		if err != nil {
			return e.interruptedOrFailed(err)
		}
	} else {
		log.Info("Wave 1 already complete, resuming at wave 2")
		wave1 = wave1FromRow(session)
	}

	// Wave 2 for this session must wait until every earlier session's
	// Wave 1 has finished, so history context is complete.
	if err := e.waitEarlierWave1(ctx, session); err != nil {
		return e.interruptedOrFailed(err)
	}

	if wave1.Topics == nil {
		err := fmt.Errorf("topic extraction failed; deep analysis skipped")
		e.publishWave(ctx, session, events.PhaseWave2, events.EventTypeWaveFailed, "wave2",
			map[string]interface{}{"reason": err.Error()})
		return &ExecutionResult{Status: therapysession.ProcessingStatusFailed, Error: err}
	}

	if err := e.runWave2(ctx, session, wave1); err != nil {
		return e.interruptedOrFailed(err)
	}

	log.Info("Session pipeline complete")
	return &ExecutionResult{Status: therapysession.ProcessingStatusCompleted}
}

// interruptedOrFailed maps an error to the stopped or failed terminal
// state. Cancellation means a stop request or shutdown, never a failure.
func (e *Executor) interruptedOrFailed(err error) *ExecutionResult {
	if llm.IsCancelled(err) || errors.Is(err, context.Canceled) {
		return &ExecutionResult{Status: therapysession.ProcessingStatusStopped, Error: err}
	}
	return &ExecutionResult{Status: therapysession.ProcessingStatusFailed, Error: err}
}

// labelSpeakers fuses the structural heuristic with the model's guess and
// relabels the transcript. Labeling failure is non-fatal: analysis then
// runs over the raw speaker ids.
func (e *Executor) labelSpeakers(ctx context.Context, session *ent.TherapySession, segments []transcript.Segment) []transcript.Segment {
	heuristic := transcript.HeuristicLabels(segments)

	guess, _, err := runAttempts(ctx, e, tasks.SpeakerLabelTask{}, segments, attemptOpts{
		SessionID: session.ID,
		PatientID: session.PatientID,
		Timeout:   e.cfg.TaskTimeout,
	})
	if err != nil && !llm.IsParseError(err) {
		guess = transcript.LabelGuess{Labels: map[string]string{}}
	}

	fused := transcript.FuseLabels(heuristic, guess)
	if len(fused.Labels) == 0 {
		e.logger.Warn("Speaker labeling inconclusive, keeping raw ids", "session_id", session.ID)
		return segments
	}

	if err := e.sessions.SetSpeakerLabels(ctx, session.ID, fused); err != nil {
		e.logger.Warn("Failed to persist speaker labels", "session_id", session.ID, "error", err)
	}
	return transcript.Relabel(segments, fused.Labels)
}

// runWave1 executes mood, topics and breakthrough concurrently, then the
// action summary when topics succeeded, and persists everything in one
// update. Individual task failures leave their columns null; the wave is
// terminal either way.
func (e *Executor) runWave1(ctx context.Context, session *ent.TherapySession, segments []transcript.Segment) (services.Wave1Results, error) {
	var results services.Wave1Results
	opts := attemptOpts{
		SessionID: session.ID,
		PatientID: session.PatientID,
		Timeout:   e.cfg.TaskTimeout,
	}

	e.publishWave(ctx, session, events.PhaseWave1, events.EventTypeWaveStarted, "wave1", nil)

	var (
		mood     tasks.MoodResult
		topics   tasks.TopicsResult
		breakRes tasks.BreakthroughResult

		moodErr, topicsErr, breakErr error
	)

	// The three generators are independent: one failing must not cancel
	// its siblings, so errors are captured instead of returned.
	var g errgroup.Group
	g.SetLimit(e.cfg.Wave1Parallelism)
	g.Go(func() error {
		mood, _, moodErr = runAttempts(ctx, e, tasks.MoodTask{}, segments, opts)
		return nil
	})
	g.Go(func() error {
		topics, _, topicsErr = runAttempts(ctx, e, tasks.TopicsTask{}, segments, opts)
		return nil
	})
	g.Go(func() error {
		breakRes, _, breakErr = runAttempts(ctx, e, tasks.BreakthroughTask{}, segments, opts)
		return nil
	})
	_ = g.Wait()

	for _, err := range []error{moodErr, topicsErr, breakErr} {
		if llm.IsCancelled(err) || errors.Is(err, context.Canceled) {
			return results, err
		}
	}

	var failed []string
	if accepted(moodErr) {
		results.Mood = &mood
	} else {
		failed = append(failed, llm.TaskMood)
	}
	if accepted(topicsErr) {
		results.Topics = &topics
	} else {
		failed = append(failed, llm.TaskTopics)
	}
	if accepted(breakErr) {
		results.Breakthrough = &breakRes
	} else {
		failed = append(failed, llm.TaskBreakthrough)
	}

	// Action summary feeds off the extracted action items; without topics
	// its column stays null.
	if results.Topics != nil {
		summary, _, err := runAttempts(ctx, e, tasks.ActionSummaryTask{}, results.Topics.ActionItems, opts)
		if llm.IsCancelled(err) || errors.Is(err, context.Canceled) {
			return results, err
		}
		if accepted(err) {
			results.ActionSummary = &summary
		} else {
			failed = append(failed, llm.TaskActionSummary)
		}
	}

	if _, err := e.sessions.ApplyWave1Results(ctx, session.ID, results); err != nil {
		return results, err
	}

	details := map[string]interface{}{}
	if len(failed) > 0 {
		details["failed_tasks"] = failed
	}
	e.publishWave(ctx, session, events.PhaseWave1, events.EventTypeWaveCompleted, "wave1", details)
	return results, nil
}

// accepted reports whether a task outcome is usable: clean success, or a
// parse failure whose fallback value the pipeline stores with zero
// confidence.
func accepted(err error) bool {
	return err == nil || llm.IsParseError(err)
}

// waitEarlierWave1 blocks until no earlier session of the patient lacks a
// completed Wave 1.
func (e *Executor) waitEarlierWave1(ctx context.Context, session *ent.TherapySession) error {
	for {
		blocked, err := e.sessions.EarlierWave1Incomplete(ctx, session.PatientID, session.SessionDate, session.ID)
		if err != nil {
			return err
		}
		if !blocked {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(e.cfg.PollInterval):
		}
	}
}

// runWave2 synthesizes the deep analysis over the patient's history, then
// renders the prose narrative from it. Deep analysis has no fallback: its
// failure fails the wave and prose never runs.
func (e *Executor) runWave2(ctx context.Context, session *ent.TherapySession, wave1 services.Wave1Results) error {
	e.publishWave(ctx, session, events.PhaseWave2, events.EventTypeWaveStarted, "wave2", nil)

	history := e.historyContext(ctx, session)

	input := tasks.DeepInput{
		SessionDate:     session.SessionDate.Format("2006-01-02"),
		DurationMinutes: session.DurationMinutes,
		Topics:          *wave1.Topics,
		HistoryContext:  history,
	}
	if wave1.Mood != nil {
		input.Mood = *wave1.Mood
	}
	if wave1.Breakthrough != nil {
		input.Breakthrough = *wave1.Breakthrough
	}

	deep, _, err := runAttempts(ctx, e, tasks.DeepAnalysisTask{}, input, attemptOpts{
		SessionID: session.ID,
		PatientID: session.PatientID,
		Timeout:   e.cfg.DeepTimeout,
	})
	if err != nil {
		e.publishWave(ctx, session, events.PhaseWave2, events.EventTypeWaveFailed, "wave2",
			map[string]interface{}{"task": llm.TaskDeepAnalysis, "reason": err.Error()})
		return fmt.Errorf("deep analysis: %w", err)
	}

	prose, _, proseErr := runAttempts(ctx, e, tasks.ProseTask{}, deep, attemptOpts{
		SessionID: session.ID,
		PatientID: session.PatientID,
		Timeout:   e.cfg.TaskTimeout,
	})
	var prosePtr *tasks.ProseResult
	if proseErr == nil {
		prosePtr = &prose
	}

	// Persist deep even when prose failed: resume re-runs prose only.
	if _, err := e.sessions.ApplyWave2Results(ctx, session.ID, &deep, prosePtr); err != nil {
		return err
	}

	if proseErr != nil {
		e.publishWave(ctx, session, events.PhaseWave2, events.EventTypeWaveFailed, "wave2",
			map[string]interface{}{"task": llm.TaskProse, "reason": proseErr.Error()})
		return fmt.Errorf("prose generation: %w", proseErr)
	}

	e.publishWave(ctx, session, events.PhaseWave2, events.EventTypeWaveCompleted, "wave2", nil)
	return nil
}

// historyContext builds the compaction engine's tiered context over the
// patient's earlier sessions. Failure yields empty context, never a
// pipeline error.
func (e *Executor) historyContext(ctx context.Context, session *ent.TherapySession) map[string]interface{} {
	all, err := e.sessions.ListPatientSessions(ctx, session.PatientID)
	if err != nil {
		e.logger.Warn("Failed to list history sessions", "patient_id", session.PatientID, "error", err)
		return nil
	}

	earlier := make([]*ent.TherapySession, 0, len(all))
	for _, s := range all {
		if s.ID != session.ID && s.SessionDate.Before(session.SessionDate) {
			earlier = append(earlier, s)
		}
	}
	records := sessionRecords(earlier)
	if len(records) == 0 {
		return nil
	}

	var previous map[string]interface{}
	if journey, err := e.versions.GetJourney(ctx, session.PatientID); err == nil {
		previous = journey.Data
	}

	history, err := compaction.Build(e.strategy, records, previous)
	if err != nil {
		e.logger.Warn("Failed to build history context", "patient_id", session.PatientID, "error", err)
		return nil
	}
	return history
}

// publishWave emits a best-effort wave lifecycle event.
func (e *Executor) publishWave(ctx context.Context, session *ent.TherapySession, phase, eventType, wave string, details map[string]interface{}) {
	e.publisher.PublishBestEffort(ctx, events.WaveEvent(session.PatientID, session.ID, phase, eventType, wave, details))
}

// wave1FromRow rebuilds Wave-1 results from stored columns on the resume
// path, where Wave 1 completed in a previous run.
func wave1FromRow(session *ent.TherapySession) services.Wave1Results {
	var results services.Wave1Results

	if session.MoodScore != nil {
		results.Mood = &tasks.MoodResult{
			Score:         *session.MoodScore,
			Confidence:    derefFloat(session.MoodConfidence),
			Rationale:     derefString(session.MoodRationale),
			KeyIndicators: session.MoodIndicators,
			EmotionalTone: derefString(session.EmotionalTone),
		}
	}
	if len(session.Topics) > 0 {
		results.Topics = &tasks.TopicsResult{
			Topics:      session.Topics,
			ActionItems: session.ActionItems,
			Technique:   derefString(session.Technique),
			Summary:     derefString(session.Summary),
		}
	}
	if session.HasBreakthrough != nil {
		breakthrough := &tasks.BreakthroughResult{
			HasBreakthrough: *session.HasBreakthrough,
			Label:           derefString(session.BreakthroughLabel),
		}
		if data := session.BreakthroughData; data != nil {
			if quote, ok := data["evidence_quote"].(string); ok {
				breakthrough.EvidenceQuote = quote
			}
			if span, ok := data["timestamp_range"].(string); ok {
				breakthrough.TimestampRange = span
			}
			if confidence, ok := data["confidence"].(float64); ok {
				breakthrough.Confidence = confidence
			}
		}
		results.Breakthrough = breakthrough
	}
	return results
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
