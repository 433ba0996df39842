package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/attune-health/attune/pkg/compaction"
	"github.com/attune-health/attune/pkg/events"
	"github.com/attune-health/attune/pkg/llm"
	"github.com/attune-health/attune/pkg/services"
	"github.com/attune-health/attune/pkg/tasks"
)

// tier1InsightCandidates bounds how many recent sessions get a fresh
// session_insights generation before compaction runs. Matches the
// compaction engine's Tier-1 size.
const tier1InsightCandidates = 3

// Debouncer coalesces Wave-2 completions per patient: each trigger
// resets a quiet-window timer, and only when the window elapses without
// another trigger does one Journey+Bridge regeneration run. Regeneration
// failure is non-fatal; the next trigger retries it.
type Debouncer struct {
	exec   *Executor
	quiet  time.Duration
	logger *slog.Logger

	mu     sync.Mutex
	gen    uint64
	timers map[string]*time.Timer
	armed  map[string]uint64
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDebouncer creates the Wave-3 debouncer.
func NewDebouncer(exec *Executor, quiet time.Duration, logger *slog.Logger) *Debouncer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Debouncer{
		exec:   exec,
		quiet:  quiet,
		logger: logger,
		timers: make(map[string]*time.Timer),
		armed:  make(map[string]uint64),
	}
}

// Start arms the debouncer. Triggers before Start are dropped.
func (d *Debouncer) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ctx, d.cancel = context.WithCancel(ctx)
}

// Stop cancels pending timers and waits for in-flight regenerations.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	for patientID, timer := range d.timers {
		if timer.Stop() {
			d.wg.Done()
		}
		delete(d.timers, patientID)
		delete(d.armed, patientID)
	}
	if d.cancel != nil {
		d.cancel()
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// Trigger schedules a regeneration for the patient after the quiet
// window. A trigger inside the window resets it.
func (d *Debouncer) Trigger(patientID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ctx == nil || d.ctx.Err() != nil {
		return
	}
	if timer, ok := d.timers[patientID]; ok && timer.Stop() {
		timer.Reset(d.quiet)
		return
	}
	// Either no timer is armed, or the armed one already fired and its
	// callback is pending. Arming a fresh generation turns the pending
	// callback into a no-op so one window never runs twice.
	d.gen++
	gen := d.gen
	d.armed[patientID] = gen
	d.wg.Add(1)
	d.timers[patientID] = time.AfterFunc(d.quiet, func() {
		defer d.wg.Done()
		d.mu.Lock()
		if d.armed[patientID] != gen {
			d.mu.Unlock()
			return
		}
		delete(d.timers, patientID)
		delete(d.armed, patientID)
		ctx := d.ctx
		d.mu.Unlock()
		if ctx == nil || ctx.Err() != nil {
			return
		}
		d.regenerate(ctx, patientID)
	})
}

// CancelPending drops any armed timer for the patient without running
// the regeneration. Used by stop.
func (d *Debouncer) CancelPending(patientID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if timer, ok := d.timers[patientID]; ok {
		if timer.Stop() {
			d.wg.Done()
		}
		delete(d.timers, patientID)
		delete(d.armed, patientID)
	}
}

// regenerate rebuilds the Journey and Bridge documents from the
// patient's full history: fresh Tier-1 insights, tiered compaction,
// Journey first, then Bridge over the same context.
func (d *Debouncer) regenerate(ctx context.Context, patientID string) {
	e := d.exec
	log := d.logger.With("patient_id", patientID)

	all, err := e.sessions.ListPatientSessions(ctx, patientID)
	if err != nil {
		log.Error("Wave 3: failed to list sessions", "error", err)
		return
	}
	records := sessionRecords(all)
	if len(records) == 0 {
		return
	}
	anchorSessionID := records[0].SessionID

	d.publishWave3(ctx, patientID, anchorSessionID, events.EventTypeWaveStarted, nil)

	var previousData map[string]interface{}
	var previousDoc *tasks.JourneyResult
	if journey, err := e.versions.GetJourney(ctx, patientID); err == nil {
		previousData = journey.Data
		if doc, err := decodeJourneyDoc(journey.Data); err == nil {
			previousDoc = doc
		}
	}

	d.refreshInsights(ctx, patientID, records)

	tiered, err := compaction.Build(e.strategy, records, previousData)
	if err != nil {
		log.Error("Wave 3: failed to build tiered context", "error", err)
		return
	}

	opts := attemptOpts{
		SessionID: anchorSessionID,
		PatientID: patientID,
		Timeout:   e.cfg.TaskTimeout,
	}

	journeyStart := time.Now()
	journey, journeyEntry, err := runAttempts(ctx, e, tasks.YourJourneyTask{}, tasks.JourneyInput{
		PatientID:     patientID,
		SessionCount:  len(records),
		TieredContext: tiered,
		PreviousDoc:   previousDoc,
	}, opts)
	if err != nil {
		log.Warn("Wave 3: journey generation failed", "error", err)
		d.publishWave3(ctx, patientID, anchorSessionID, events.EventTypeWaveFailed,
			map[string]interface{}{"task": llm.TaskYourJourney, "reason": err.Error()})
		return
	}

	journeyMap, err := toDocMap(journey)
	if err != nil {
		log.Error("Wave 3: failed to encode journey", "error", err)
		return
	}
	journeyVersion, err := e.versions.SaveJourney(ctx, patientID, journeyMap, d.metadata(len(records), len(all), journeyEntry, journeyStart))
	if err != nil {
		log.Error("Wave 3: failed to save journey", "error", err)
		return
	}
	e.publisher.PublishBestEffort(ctx, events.Event{
		PatientID: patientID,
		SessionID: anchorSessionID,
		Phase:     events.PhaseWave3,
		EventType: events.EventTypeJourneyUpdated,
		Details:   map[string]interface{}{"version": journeyVersion.Version},
	})

	bridgeStart := time.Now()
	bridge, bridgeEntry, err := runAttempts(ctx, e, tasks.SessionBridgeTask{}, tasks.BridgeInput{
		PatientID:     patientID,
		SessionCount:  len(records),
		TieredContext: tiered,
	}, opts)
	if err != nil {
		log.Warn("Wave 3: bridge generation failed", "error", err)
		d.publishWave3(ctx, patientID, anchorSessionID, events.EventTypeWaveFailed,
			map[string]interface{}{"task": llm.TaskSessionBridge, "reason": err.Error()})
		return
	}

	bridgeMap, err := toDocMap(bridge)
	if err != nil {
		log.Error("Wave 3: failed to encode bridge", "error", err)
		return
	}
	bridgeVersion, err := e.versions.SaveBridge(ctx, patientID, bridgeMap, d.metadata(len(records), len(all), bridgeEntry, bridgeStart))
	if err != nil {
		log.Error("Wave 3: failed to save bridge", "error", err)
		return
	}
	e.publisher.PublishBestEffort(ctx, events.Event{
		PatientID: patientID,
		SessionID: anchorSessionID,
		Phase:     events.PhaseWave3,
		EventType: events.EventTypeBridgeUpdated,
		Details:   map[string]interface{}{"version": bridgeVersion.Version},
	})

	d.publishWave3(ctx, patientID, anchorSessionID, events.EventTypeWaveCompleted, map[string]interface{}{
		"journey_version": journeyVersion.Version,
		"bridge_version":  bridgeVersion.Version,
	})
	log.Info("Wave 3 regeneration complete",
		"journey_version", journeyVersion.Version, "bridge_version", bridgeVersion.Version)
}

// refreshInsights generates session_insights bullets for the Tier-1
// candidates that have a deep analysis. The task's fallback digests the
// stored fields, so records always end up with usable bullets.
func (d *Debouncer) refreshInsights(ctx context.Context, patientID string, records []compaction.SessionRecord) {
	for i := 0; i < len(records) && i < tier1InsightCandidates; i++ {
		if records[i].Deep == nil {
			continue
		}
		insights, _, err := runAttempts(ctx, d.exec, tasks.SessionInsightsTask{}, tasks.InsightsInput{
			SessionDate:  records[i].SessionDate.Format("2006-01-02"),
			MoodScore:    records[i].MoodScore,
			Topics:       records[i].Topics,
			Summary:      records[i].Summary,
			DeepAnalysis: *records[i].Deep,
		}, attemptOpts{
			SessionID: records[i].SessionID,
			PatientID: patientID,
			Timeout:   d.exec.cfg.TaskTimeout,
		})
		if accepted(err) {
			records[i].Insights = insights.Bullets
		}
	}
}

// metadata builds the generation metadata for one saved version.
func (d *Debouncer) metadata(analyzed, total int, entry *llm.CostEntry, start time.Time) services.MetadataInput {
	meta := services.MetadataInput{
		SessionsAnalyzed:   analyzed,
		TotalSessions:      total,
		CompactionStrategy: string(d.exec.strategy),
		Duration:           time.Since(start),
	}
	if entry != nil {
		meta.ModelUsed = entry.Model
	}
	return meta
}

func (d *Debouncer) publishWave3(ctx context.Context, patientID, sessionID, eventType string, details map[string]interface{}) {
	d.exec.publisher.PublishBestEffort(ctx, events.WaveEvent(patientID, sessionID, events.PhaseWave3, eventType, "wave3", details))
}
