package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attune-health/attune/pkg/llm"
)

func TestRecordCostAndPatientCosts(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	session := ingestTestSession(t, svc, "p1", time.Now())

	entries := []*llm.CostEntry{
		{Task: llm.TaskMood, Model: llm.ModelMid, InputTokens: 1000, OutputTokens: 100, CostUSD: 0.00045, Duration: time.Second, SessionID: session.ID, PatientID: "p1"},
		{Task: llm.TaskMood, Model: llm.ModelMid, InputTokens: 900, OutputTokens: 120, CostUSD: 0.000465, Duration: time.Second, SessionID: session.ID, PatientID: "p1"},
		{Task: llm.TaskDeepAnalysis, Model: llm.ModelStrong, InputTokens: 8000, OutputTokens: 2000, CostUSD: 0.03, Duration: 20 * time.Second, SessionID: session.ID, PatientID: "p1"},
		{Task: llm.TaskMood, Model: llm.ModelMid, InputTokens: 500, OutputTokens: 50, CostUSD: 0.000225, Duration: time.Second, PatientID: "p2"},
	}
	for _, entry := range entries {
		require.NoError(t, svc.costs.RecordCost(ctx, entry))
	}

	summary, err := svc.costs.PatientCosts(ctx, "p1", nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.030915, summary.TotalUSD, 1e-9)
	require.Len(t, summary.ByTask, 2)

	// Stable task ordering: mood before deep.
	assert.Equal(t, llm.TaskMood, summary.ByTask[0].Task)
	assert.Equal(t, 2, summary.ByTask[0].Calls)
	assert.Equal(t, 1900, summary.ByTask[0].InputTokens)
	assert.Equal(t, llm.TaskDeepAnalysis, summary.ByTask[1].Task)
}

func TestPatientCostsSinceWindow(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ingestTestSession(t, svc, "p1", time.Now())

	require.NoError(t, svc.costs.RecordCost(ctx, &llm.CostEntry{
		Task: llm.TaskMood, Model: llm.ModelMid, CostUSD: 0.001, PatientID: "p1",
	}))

	future := time.Now().Add(time.Hour)
	summary, err := svc.costs.PatientCosts(ctx, "p1", &future)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalUSD)
	assert.Empty(t, summary.ByTask)
}
