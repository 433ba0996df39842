package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attune-health/attune/pkg/config"
)

// fakeChatClient returns canned completions and records requests.
type fakeChatClient struct {
	content string
	usage   Usage
	err     error

	lastModel    string
	lastMessages []Message
	lastParams   CompletionParams
	calls        int
}

func (f *fakeChatClient) Complete(ctx context.Context, model string, messages []Message, params CompletionParams) (*Completion, error) {
	f.calls++
	f.lastModel = model
	f.lastMessages = messages
	f.lastParams = params
	if f.err != nil {
		return nil, f.err
	}
	return &Completion{Content: f.content, Usage: f.usage}, nil
}

type recordedCost struct {
	entries []*CostEntry
	err     error
}

func (r *recordedCost) RecordCost(_ context.Context, entry *CostEntry) error {
	r.entries = append(r.entries, entry)
	return r.err
}

// echoTask parses {"value": N} and falls back to -1.
type echoTask struct{}

func (echoTask) Name() string { return TaskMood }

func (echoTask) BuildMessages(input string) ([]Message, error) {
	return []Message{SystemMessage("score the text"), UserMessage(input)}, nil
}

func (echoTask) ParseResult(raw string) (int, error) {
	var parsed struct {
		Value int `json:"value"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &parsed); err != nil {
		return 0, fmt.Errorf("decoding score: %w", err)
	}
	return parsed.Value, nil
}

func (echoTask) Fallback(_ string) int { return -1 }

func newTestGenerator(t *testing.T, client ChatClient, costs CostRecorder) *Generator {
	t.Helper()
	t.Setenv("MODEL_TIER", "precision")
	registry := NewRegistry(config.NewTierCache(time.Millisecond))
	return NewGenerator(registry, client, costs, nil)
}

func TestGenerateSuccess(t *testing.T) {
	client := &fakeChatClient{
		content: `{"value": 7}`,
		usage:   Usage{InputTokens: 1000, OutputTokens: 200},
	}
	costs := &recordedCost{}
	gen := newTestGenerator(t, client, costs)

	result, entry, err := Generate(context.Background(), gen, echoTask{}, "hello", Options{
		SessionID: "sess-1",
		PatientID: "pat-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, result)

	// Tier resolution picked the mid model for a lightweight task.
	assert.Equal(t, ModelMid, client.lastModel)
	require.Len(t, client.lastMessages, 2)
	assert.Equal(t, "hello", client.lastMessages[1].Content)
	// No optional params unless the task asks for them.
	assert.Nil(t, client.lastParams.Temperature)
	assert.Zero(t, client.lastParams.MaxTokens)

	require.NotNil(t, entry)
	assert.Equal(t, TaskMood, entry.Task)
	assert.Equal(t, 1000, entry.InputTokens)
	assert.Equal(t, 200, entry.OutputTokens)
	assert.InDelta(t, CostOf(ModelMid, 1000, 200), entry.CostUSD, 1e-12)
	assert.Equal(t, "sess-1", entry.SessionID)
	assert.Equal(t, "pat-1", entry.PatientID)

	require.Len(t, costs.entries, 1)
	assert.Equal(t, entry, costs.entries[0])
}

func TestGenerateParseFailureReturnsFallback(t *testing.T) {
	client := &fakeChatClient{
		content: "I am not JSON",
		usage:   Usage{InputTokens: 500, OutputTokens: 50},
	}
	costs := &recordedCost{}
	gen := newTestGenerator(t, client, costs)

	result, entry, err := Generate(context.Background(), gen, echoTask{}, "hello", Options{})
	require.Error(t, err)
	assert.True(t, IsParseError(err))
	assert.Equal(t, -1, result)

	// Tokens were spent, so the cost is still recorded.
	require.NotNil(t, entry)
	require.Len(t, costs.entries, 1)
}

func TestGenerateTransportErrorPassesThrough(t *testing.T) {
	client := &fakeChatClient{err: &TransportError{Err: errors.New("connection refused")}}
	costs := &recordedCost{}
	gen := newTestGenerator(t, client, costs)

	_, entry, err := Generate(context.Background(), gen, echoTask{}, "hello", Options{})
	require.Error(t, err)
	assert.True(t, IsRetryable(err))
	assert.Nil(t, entry)
	assert.Empty(t, costs.entries)
}

func TestGenerateModelOverride(t *testing.T) {
	client := &fakeChatClient{content: `{"value": 1}`}
	gen := newTestGenerator(t, client, nil)

	_, _, err := Generate(context.Background(), gen, echoTask{}, "hi", Options{OverrideModel: ModelStrong})
	require.NoError(t, err)
	assert.Equal(t, ModelStrong, client.lastModel)
}

func TestGenerateUnknownOverrideModel(t *testing.T) {
	client := &fakeChatClient{content: `{"value": 1}`}
	gen := newTestGenerator(t, client, nil)

	_, _, err := Generate(context.Background(), gen, echoTask{}, "hi", Options{OverrideModel: "gpt-9"})
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Zero(t, client.calls)
}

func TestGenerateCostRecorderFailureIsNonFatal(t *testing.T) {
	client := &fakeChatClient{content: `{"value": 3}`}
	costs := &recordedCost{err: errors.New("ledger down")}
	gen := newTestGenerator(t, client, costs)

	result, _, err := Generate(context.Background(), gen, echoTask{}, "hi", Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, result)
}

func TestRemoteErrorRetryability(t *testing.T) {
	assert.True(t, (&RemoteError{StatusCode: 429}).Retryable())
	assert.True(t, (&RemoteError{StatusCode: 500}).Retryable())
	assert.True(t, (&RemoteError{StatusCode: 503}).Retryable())
	assert.False(t, (&RemoteError{StatusCode: 400}).Retryable())
	assert.False(t, (&RemoteError{StatusCode: 401}).Retryable())
	assert.False(t, (&RemoteError{StatusCode: 404}).Retryable())
}
