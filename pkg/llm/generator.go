// Package llm provides the model registry, the chat-completion transport
// and the generic task generator the analysis pipeline is built on.
package llm

import (
	"context"
	"log/slog"
	"time"
)

// Task defines one analysis task: how to turn its input into chat
// messages and how to turn the remote's reply into a typed result.
// ParseResult must perform schema validation and return a ParseError or
// ValidationError on bad output.
type Task[I, R any] interface {
	// Name returns the registry task name (see the Task* constants).
	Name() string
	// BuildMessages renders the prompt for one input.
	BuildMessages(input I) ([]Message, error)
	// ParseResult converts raw model output into the typed result.
	ParseResult(raw string) (R, error)
}

// Fallbacker is implemented by tasks that can produce a degraded result
// when the remote output cannot be parsed after the retry budget is
// spent. The fallback is stored with zero confidence.
type Fallbacker[I, R any] interface {
	Fallback(input I) R
}

// OptionalParams is implemented by tasks that need request knobs beyond
// {model, messages}.
type OptionalParams interface {
	Params() CompletionParams
}

// Options carries per-call settings into Generate.
type Options struct {
	// OverrideModel bypasses tier resolution; it must still be a known
	// model identifier.
	OverrideModel string
	// SessionID and PatientID attribute the cost entry.
	SessionID string
	PatientID string
	// ExtraMetadata is merged into the cost entry's metadata.
	ExtraMetadata map[string]interface{}
	// Timeout is the per-attempt deadline; zero means the caller's
	// context governs.
	Timeout time.Duration
}

// CostEntry records one completed generation for the cost ledger.
type CostEntry struct {
	Task         string
	Model        string
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	Duration     time.Duration
	SessionID    string
	PatientID    string
	Metadata     map[string]interface{}
}

// CostRecorder persists cost entries. Recording is best-effort: a failed
// write is logged and never fails the generation.
type CostRecorder interface {
	RecordCost(ctx context.Context, entry *CostEntry) error
}

// Generator binds the registry, the transport and the cost ledger.
// Task-specific behavior lives in Task implementations; Generate is the
// single execution path all of them share.
type Generator struct {
	registry *Registry
	client   ChatClient
	costs    CostRecorder
	logger   *slog.Logger
}

// NewGenerator creates a Generator. costs may be nil to disable cost
// recording (tests do this).
func NewGenerator(registry *Registry, client ChatClient, costs CostRecorder, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{registry: registry, client: client, costs: costs, logger: logger}
}

// Generate runs one task attempt end to end: resolve model, render
// messages, call the remote, parse, record cost. On a parse failure the
// result of task.Fallback (when implemented) is returned alongside the
// ParseError so the caller can decide whether to accept the degraded
// result; the cost entry is still recorded because tokens were spent.
func Generate[I, R any](ctx context.Context, g *Generator, task Task[I, R], input I, opts Options) (R, *CostEntry, error) {
	var zero R

	model, err := g.registry.ResolveModel(task.Name(), opts.OverrideModel)
	if err != nil {
		return zero, nil, err
	}

	messages, err := task.BuildMessages(input)
	if err != nil {
		return zero, nil, &ParseError{Task: task.Name(), Err: err}
	}

	var params CompletionParams
	if p, ok := any(task).(OptionalParams); ok {
		params = p.Params()
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	completion, err := g.client.Complete(ctx, model, messages, params)
	elapsed := time.Since(start)
	if err != nil {
		return zero, nil, err
	}

	entry := &CostEntry{
		Task:         task.Name(),
		Model:        model,
		InputTokens:  completion.Usage.InputTokens,
		OutputTokens: completion.Usage.OutputTokens,
		CostUSD:      CostOf(model, completion.Usage.InputTokens, completion.Usage.OutputTokens),
		Duration:     elapsed,
		SessionID:    opts.SessionID,
		PatientID:    opts.PatientID,
		Metadata:     opts.ExtraMetadata,
	}
	g.recordCost(ctx, entry)

	result, parseErr := task.ParseResult(completion.Content)
	if parseErr != nil {
		wrapped := parseErr
		if !IsParseError(parseErr) {
			wrapped = &ParseError{Task: task.Name(), Err: parseErr}
		}
		if fb, ok := any(task).(Fallbacker[I, R]); ok {
			return fb.Fallback(input), entry, wrapped
		}
		return zero, entry, wrapped
	}

	return result, entry, nil
}

// recordCost persists the entry without letting a ledger failure affect
// the generation. Uses a detached context so cost rows survive caller
// cancellation.
func (g *Generator) recordCost(ctx context.Context, entry *CostEntry) {
	if g.costs == nil {
		return
	}
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := g.costs.RecordCost(recordCtx, entry); err != nil {
		g.logger.Warn("Failed to record generation cost",
			"task", entry.Task, "model", entry.Model, "error", err)
	}
}
