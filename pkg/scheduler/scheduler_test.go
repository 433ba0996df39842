package scheduler

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/attune-health/attune/ent"
	"github.com/attune-health/attune/pkg/config"
	"github.com/attune-health/attune/pkg/database"
	"github.com/attune-health/attune/pkg/events"
	"github.com/attune-health/attune/pkg/llm"
	"github.com/attune-health/attune/pkg/services"
	"github.com/attune-health/attune/pkg/tasks"
	"github.com/attune-health/attune/pkg/transcript"
	testdb "github.com/attune-health/attune/test/database"
)

// scriptedClient is a ChatClient that recognizes which task is calling
// from the system prompt and replies with a canned (or scripted) answer.
type scriptedClient struct {
	mu        sync.Mutex
	calls     map[string]int
	responses map[string]string
	fail      map[string]bool
}

func newScriptedClient() *scriptedClient {
	return &scriptedClient{
		calls:     make(map[string]int),
		responses: cannedResponses(),
		fail:      make(map[string]bool),
	}
}

func (c *scriptedClient) Complete(_ context.Context, _ string, messages []llm.Message, _ llm.CompletionParams) (*llm.Completion, error) {
	task := taskOf(messages[0].Content)
	c.mu.Lock()
	c.calls[task]++
	failing := c.fail[task]
	response := c.responses[task]
	c.mu.Unlock()

	if failing {
		return nil, &llm.RemoteError{StatusCode: 400, Msg: "scripted failure"}
	}
	return &llm.Completion{
		Content: response,
		Usage:   llm.Usage{InputTokens: 100, OutputTokens: 50},
	}, nil
}

func (c *scriptedClient) callCount(task string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[task]
}

func (c *scriptedClient) setResponse(task, response string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responses[task] = response
}

func (c *scriptedClient) setFail(task string, failing bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fail[task] = failing
}

// taskOf identifies the calling task from its system prompt.
func taskOf(system string) string {
	switch {
	case strings.Contains(system, "unlabeled speakers"):
		return llm.TaskSpeakerLabel
	case strings.Contains(system, "client's mood"):
		return llm.TaskMood
	case strings.Contains(system, "therapeutic breakthroughs"):
		return llm.TaskBreakthrough
	case strings.Contains(system, "action items into one line"):
		return llm.TaskActionSummary
	case strings.Contains(system, "clinical analyst"):
		return llm.TaskDeepAnalysis
	case strings.Contains(system, "clinical narrative"):
		return llm.TaskProse
	case strings.Contains(system, "Distill"):
		return llm.TaskSessionInsights
	case strings.Contains(system, "therapy roadmap"):
		return llm.TaskYourJourney
	case strings.Contains(system, "prepare for their next session"):
		return llm.TaskSessionBridge
	default:
		return llm.TaskTopics
	}
}

func cannedResponses() map[string]string {
	mustJSON := func(v interface{}) string {
		encoded, err := json.Marshal(v)
		if err != nil {
			panic(err)
		}
		return string(encoded)
	}

	// 10 words repeated to land inside the 500-750 word window.
	narrative := strings.TrimSpace(strings.Repeat("The client continues to make steady measurable progress in treatment. ", 60))

	journey := tasks.JourneyResult{
		Summary:      "You have made real progress over these sessions.",
		Achievements: []string{"a1", "a2", "a3", "a4", "a5"},
		CurrentFocus: []string{"f1", "f2", "f3"},
	}
	for _, title := range tasks.JourneySectionTitles {
		journey.Sections = append(journey.Sections, tasks.JourneySection{Title: title, Content: "content"})
	}

	return map[string]string{
		llm.TaskSpeakerLabel:  `{"S0": "Therapist", "S1": "Client", "confidence": 0.9}`,
		llm.TaskMood:          `{"score": 6.4, "confidence": 0.8, "rationale": "Hopeful tone throughout.", "key_indicators": ["journaling"], "emotional_tone": "hopeful"}`,
		llm.TaskTopics:        `{"topics": ["workplace anxiety"], "action_items": ["Journal daily", "Practice breathing"], "technique": "Cognitive Behavioral Therapy", "summary": "Discussed workplace anxiety and coping strategies.", "confidence": 0.9}`,
		llm.TaskBreakthrough:  `{"has_breakthrough": 1, "label": "new insight", "evidence_quote": "the journaling helped", "timestamp_range": "13-20", "confidence": 0.9}`,
		llm.TaskActionSummary: `{"summary": "Journal daily; practice breathing"}`,
		llm.TaskDeepAnalysis: mustJSON(tasks.DeepAnalysis{
			Progress:        "Steady gains in distress tolerance.",
			Insights:        []string{"i1", "i2", "i3"},
			Skills:          []string{"breathing"},
			Relationship:    "Strong working alliance.",
			Recommendations: []string{"r1", "r2"},
			Confidence:      0.85,
		}),
		llm.TaskProse:           mustJSON(tasks.ProseResult{ProseAnalysis: narrative, Confidence: 0.8}),
		llm.TaskSessionInsights: `{"bullets": ["Mood improving", "Journaling helps", "Keep practicing breathing"]}`,
		llm.TaskYourJourney:     mustJSON(journey),
		llm.TaskSessionBridge: mustJSON(tasks.BridgeResult{
			ShareConcerns: []string{"c1", "c2", "c3", "c4"},
			ShareProgress: []string{"p1", "p2", "p3", "p4"},
			SetGoals:      []string{"g1", "g2", "g3", "g4"},
		}),
	}
}

// testRig wires the full scheduler over one test database with the
// scripted chat client.
type testRig struct {
	db        *database.Client
	client    *ent.Client
	cfg       *config.SchedulerConfig
	chat      *scriptedClient
	exec      *Executor
	wave3     *Debouncer
	pool      *WorkerPool
	sessions  *services.SessionService
	logs      *services.LogService
	versions  *services.VersionService
	eventsSvc *services.EventService
	publisher *events.Publisher
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}

	db := testdb.NewTestClient(t)
	cfg := &config.SchedulerConfig{
		PoolSize:                2,
		Wave1Parallelism:        3,
		MaxRetries:              2,
		BackoffBase:             time.Millisecond,
		BackoffCap:              5 * time.Millisecond,
		DeepTimeout:             5 * time.Second,
		TaskTimeout:             5 * time.Second,
		Debounce:                50 * time.Millisecond,
		PollInterval:            20 * time.Millisecond,
		PollIntervalJitter:      0,
		SessionTimeout:          30 * time.Second,
		HeartbeatInterval:       50 * time.Millisecond,
		OrphanThreshold:         time.Minute,
		OrphanDetectionInterval: time.Hour,
		GracefulShutdownTimeout: 10 * time.Second,
		StopGracePeriod:         50 * time.Millisecond,
	}

	chat := newScriptedClient()
	registry := llm.NewRegistry(config.NewTierCache(time.Minute))
	sessions := services.NewSessionService(db.Client)
	logs := services.NewLogService(db.Client)
	versions := services.NewVersionService(db.Client)
	costs := services.NewCostService(db.Client)
	publisher := events.NewPublisher(db.DB(), nil)

	generator := llm.NewGenerator(registry, chat, costs, nil)
	exec := NewExecutor(cfg, config.CompactionHierarchical, sessions, logs, versions, generator, publisher, nil)
	wave3 := NewDebouncer(exec, cfg.Debounce, nil)
	pool := NewWorkerPool("test-pod", cfg, sessions, logs, publisher, exec, wave3, nil)

	return &testRig{
		db:        db,
		client:    db.Client,
		cfg:       cfg,
		chat:      chat,
		exec:      exec,
		wave3:     wave3,
		pool:      pool,
		sessions:  sessions,
		logs:      logs,
		versions:  versions,
		eventsSvc: services.NewEventService(db.Client),
		publisher: publisher,
	}
}

// twoSpeakerTranscript puts the first speaker at a therapist-plausible
// 30% speaking share.
func twoSpeakerTranscript() []transcript.Segment {
	return []transcript.Segment{
		{StartSec: 0, EndSec: 3, SpeakerID: "S0", Text: "how was your week"},
		{StartSec: 3, EndSec: 10, SpeakerID: "S1", Text: "rough, but I journaled"},
		{StartSec: 10, EndSec: 13, SpeakerID: "S0", Text: "tell me more"},
		{StartSec: 13, EndSec: 20, SpeakerID: "S1", Text: "the journaling helped"},
	}
}

func (r *testRig) ingest(t *testing.T, patientID string, date time.Time) *ent.TherapySession {
	t.Helper()
	session, err := r.sessions.IngestSession(context.Background(), services.IngestRequest{
		PatientID:       patientID,
		SessionDate:     date,
		DurationMinutes: 50,
		Transcript:      twoSpeakerTranscript(),
	})
	require.NoError(t, err)
	return session
}
