package services

import (
	"context"
	"fmt"
	"time"

	"github.com/attune-health/attune/ent"
	"github.com/attune-health/attune/ent/generationcost"
	"github.com/attune-health/attune/pkg/llm"
)

// CostService persists generation cost entries. It satisfies
// llm.CostRecorder so the generator records spend without knowing about
// the database.
type CostService struct {
	client *ent.Client
}

// NewCostService creates a new CostService
func NewCostService(client *ent.Client) *CostService {
	return &CostService{client: client}
}

var _ llm.CostRecorder = (*CostService)(nil)

// RecordCost appends one immutable cost row.
func (s *CostService) RecordCost(httpCtx context.Context, entry *llm.CostEntry) error {
	ctx, cancel := context.WithTimeout(httpCtx, writeTimeout)
	defer cancel()

	create := s.client.GenerationCost.Create().
		SetTask(entry.Task).
		SetModel(entry.Model).
		SetInputTokens(entry.InputTokens).
		SetOutputTokens(entry.OutputTokens).
		SetCostUsd(entry.CostUSD).
		SetDurationMs(int(entry.Duration.Milliseconds()))
	if entry.SessionID != "" {
		create.SetSessionID(entry.SessionID)
	}
	if entry.PatientID != "" {
		create.SetPatientID(entry.PatientID)
	}
	if entry.Metadata != nil {
		create.SetMetadata(entry.Metadata)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to record generation cost: %w", err)
	}
	return nil
}

// TaskCost aggregates spend for one task name.
type TaskCost struct {
	Task         string  `json:"task"`
	Calls        int     `json:"calls"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	CostUSD      float64 `json:"cost_usd"`
}

// CostSummary is the per-patient spend report.
type CostSummary struct {
	PatientID string     `json:"patient_id"`
	TotalUSD  float64    `json:"total_usd"`
	ByTask    []TaskCost `json:"by_task"`
	Since     *time.Time `json:"since,omitempty"`
}

// PatientCosts aggregates a patient's spend by task. A non-nil since
// restricts the window.
func (s *CostService) PatientCosts(ctx context.Context, patientID string, since *time.Time) (*CostSummary, error) {
	query := s.client.GenerationCost.Query().
		Where(generationcost.PatientIDEQ(patientID))
	if since != nil {
		query = query.Where(generationcost.CreatedAtGTE(*since))
	}
	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query costs: %w", err)
	}

	byTask := make(map[string]*TaskCost)
	summary := &CostSummary{PatientID: patientID, Since: since}
	for _, row := range rows {
		tc := byTask[row.Task]
		if tc == nil {
			tc = &TaskCost{Task: row.Task}
			byTask[row.Task] = tc
		}
		tc.Calls++
		tc.InputTokens += row.InputTokens
		tc.OutputTokens += row.OutputTokens
		tc.CostUSD += row.CostUsd
		summary.TotalUSD += row.CostUsd
	}

	summary.ByTask = make([]TaskCost, 0, len(byTask))
	for _, task := range []string{
		llm.TaskSpeakerLabel, llm.TaskMood, llm.TaskTopics, llm.TaskBreakthrough,
		llm.TaskActionSummary, llm.TaskDeepAnalysis, llm.TaskProse,
		llm.TaskSessionInsights, llm.TaskYourJourney, llm.TaskSessionBridge,
	} {
		if tc, ok := byTask[task]; ok {
			summary.ByTask = append(summary.ByTask, *tc)
		}
	}
	return summary, nil
}
