package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attune-health/attune/pkg/config"
	"github.com/attune-health/attune/pkg/events"
	"github.com/attune-health/attune/pkg/scheduler"
	"github.com/attune-health/attune/pkg/services"
	testdb "github.com/attune-health/attune/test/database"
)

// fakePipeline records control calls without a running worker pool.
type fakePipeline struct {
	stopped []string
	resumed []string
}

func (f *fakePipeline) StopPatient(_ context.Context, patientID string) (*scheduler.StopReport, error) {
	f.stopped = append(f.stopped, patientID)
	return &scheduler.StopReport{
		StoppedSessionIDs: []string{"s-1"},
		AbortedTasks:      []scheduler.AbortedTask{{SessionID: "s-1", Task: "deep_analysis"}},
	}, nil
}

func (f *fakePipeline) ResumePatient(_ context.Context, patientID string) (*scheduler.ResumeReport, error) {
	f.resumed = append(f.resumed, patientID)
	return &scheduler.ResumeReport{ResumedSessionIDs: []string{"s-1"}, ResumeFromSessionID: "s-1"}, nil
}

type apiRig struct {
	server   *Server
	router   *gin.Engine
	pipeline *fakePipeline
	versions *services.VersionService
	events   *services.EventService
}

func newAPIRig(t *testing.T) *apiRig {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}

	db := testdb.NewTestClient(t)
	versions := services.NewVersionService(db.Client)
	pipeline := &fakePipeline{}

	cfg := &config.Config{
		SSEKeepAlive:    time.Second,
		SSEPollInterval: 50 * time.Millisecond,
	}
	server := NewServer(Deps{
		DB:        db,
		Sessions:  services.NewSessionService(db.Client),
		Versions:  versions,
		Status:    services.NewStatusService(db.Client, versions),
		Costs:     services.NewCostService(db.Client),
		Events:    services.NewEventService(db.Client),
		Publisher: events.NewPublisher(db.DB(), nil),
		Hub:       events.NewHub(),
		Pipeline:  pipeline,
		Config:    cfg,
	})
	return &apiRig{
		server:   server,
		router:   server.Router(),
		pipeline: pipeline,
		versions: versions,
		events:   services.NewEventService(db.Client),
	}
}

func (r *apiRig) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.router.ServeHTTP(rec, req)
	return rec
}

func ingestBody(patientID string) map[string]interface{} {
	return map[string]interface{}{
		"patient_id":       patientID,
		"session_date":     time.Now().UTC().Format(time.RFC3339),
		"duration_minutes": 50,
		"transcript": []map[string]interface{}{
			{"start_sec": 0, "end_sec": 3, "speaker_id": "S0", "text": "how was your week"},
			{"start_sec": 3, "end_sec": 10, "speaker_id": "S1", "text": "rough, but I journaled"},
		},
	}
}

func TestIngestReturnsAcceptedAndPersistsEvent(t *testing.T) {
	rig := newAPIRig(t)

	rec := rig.do(t, http.MethodPost, "/ingest/session", ingestBody("p1"))
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	var body struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.SessionID)

	// The session is readable and queued.
	rec = rig.do(t, http.MethodGet, "/sessions/"+body.SessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"processing_status":"pending"`)

	// Ingestion left a durable session.ingested event behind.
	list, err := rig.events.ListSince(context.Background(), "p1", 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, events.EventTypeSessionIngested, list[0].EventType)
	assert.Equal(t, events.PhaseTranscript, list[0].Phase)
}

func TestIngestValidation(t *testing.T) {
	rig := newAPIRig(t)

	body := ingestBody("")
	rec := rig.do(t, http.MethodPost, "/ingest/session", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = rig.do(t, http.MethodPost, "/ingest/session", "not an object")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSessionNotFound(t *testing.T) {
	rig := newAPIRig(t)
	rec := rig.do(t, http.MethodGet, "/sessions/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListPatientSessions(t *testing.T) {
	rig := newAPIRig(t)
	require.Equal(t, http.StatusAccepted, rig.do(t, http.MethodPost, "/ingest/session", ingestBody("p1")).Code)
	require.Equal(t, http.StatusAccepted, rig.do(t, http.MethodPost, "/ingest/session", ingestBody("p1")).Code)

	rec := rig.do(t, http.MethodGet, "/patients/p1/sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
}

func TestJourneyNotFoundThenServed(t *testing.T) {
	rig := newAPIRig(t)

	rec := rig.do(t, http.MethodGet, "/patients/p1/journey", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	_, err := rig.versions.SaveJourney(context.Background(), "p1",
		map[string]interface{}{"summary": "steady progress"},
		services.MetadataInput{SessionsAnalyzed: 1, TotalSessions: 1})
	require.NoError(t, err)

	rec = rig.do(t, http.MethodGet, "/patients/p1/journey", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "steady progress")

	// Bridge has its own document and stays 404.
	rec = rig.do(t, http.MethodGet, "/patients/p1/bridge", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusEndpoint(t *testing.T) {
	rig := newAPIRig(t)
	require.Equal(t, http.StatusAccepted, rig.do(t, http.MethodPost, "/ingest/session", ingestBody("p1")).Code)

	rec := rig.do(t, http.MethodGet, "/patients/p1/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var status services.PatientStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, 1, status.TotalSessions)
	assert.Zero(t, status.Wave1CompleteCount)
}

func TestStopAndResumeDelegateToPipeline(t *testing.T) {
	rig := newAPIRig(t)

	rec := rig.do(t, http.MethodPost, "/patients/p1/stop", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"stopped_session_ids":["s-1"]`)
	assert.Equal(t, []string{"p1"}, rig.pipeline.stopped)

	rec = rig.do(t, http.MethodPost, "/patients/p1/resume", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"resume_from_session_id":"s-1"`)
	assert.Equal(t, []string{"p1"}, rig.pipeline.resumed)
}

func TestCostsEndpoint(t *testing.T) {
	rig := newAPIRig(t)

	rec := rig.do(t, http.MethodGet, "/patients/p1/costs?since=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = rig.do(t, http.MethodGet, "/patients/p1/costs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_usd":0`)
}

func TestHealthz(t *testing.T) {
	rig := newAPIRig(t)
	rec := rig.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

func TestSSEStreamReplaysAndFollows(t *testing.T) {
	rig := newAPIRig(t)
	ctx := context.Background()

	// One event persisted before the client connects: since_id=0 replays it.
	rig.server.publisher.PublishBestEffort(ctx, events.Event{
		PatientID: "p1",
		SessionID: "s-1",
		Phase:     events.PhaseWave1,
		EventType: events.EventTypeWaveStarted,
	})

	srv := httptest.NewServer(rig.router)
	defer srv.Close()

	reqCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, srv.URL+"/sse/events/p1?since_id=0", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	scanner := bufio.NewScanner(resp.Body)
	frames := make(chan string, 16)
	go func() {
		for scanner.Scan() {
			line := scanner.Text()
			if strings.HasPrefix(line, "data: ") {
				frames <- strings.TrimPrefix(line, "data: ")
			}
		}
		close(frames)
	}()

	waitFrame := func(eventType string) events.Event {
		t.Helper()
		deadline := time.After(5 * time.Second)
		for {
			select {
			case data, ok := <-frames:
				require.True(t, ok, "stream closed before %s", eventType)
				var event events.Event
				require.NoError(t, json.Unmarshal([]byte(data), &event))
				if event.EventType == eventType {
					return event
				}
			case <-deadline:
				t.Fatalf("no %s frame within deadline", eventType)
			}
		}
	}

	replayed := waitFrame(events.EventTypeWaveStarted)
	assert.Equal(t, "p1", replayed.PatientID)

	// A later publish is picked up by the poll loop.
	rig.server.publisher.PublishBestEffort(ctx, events.Event{
		PatientID: "p1",
		SessionID: "s-1",
		Phase:     events.PhaseWave1,
		EventType: events.EventTypeWaveCompleted,
	})
	completed := waitFrame(events.EventTypeWaveCompleted)
	assert.Greater(t, completed.ID, replayed.ID)
}

func TestSSEDefaultWatermarkTailsLive(t *testing.T) {
	rig := newAPIRig(t)
	ctx := context.Background()

	// History that a plain connect must NOT replay.
	for i := 0; i < 3; i++ {
		rig.server.publisher.PublishBestEffort(ctx, events.Event{
			PatientID: "p1",
			Phase:     events.PhaseWave1,
			EventType: events.EventTypeWaveStarted,
			Details:   map[string]interface{}{"n": i},
		})
	}

	srv := httptest.NewServer(rig.router)
	defer srv.Close()

	reqCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, srv.URL+"/sse/events/p1", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Give the handler a beat to establish its watermark, then publish.
	time.Sleep(200 * time.Millisecond)
	rig.server.publisher.PublishBestEffort(ctx, events.Event{
		PatientID: "p1",
		Phase:     events.PhaseWave1,
		EventType: events.EventTypeWaveCompleted,
	})

	// The first data frame is the live event, not history.
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var event events.Event
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &event))
		assert.Equal(t, events.EventTypeWaveCompleted, event.EventType,
			"stream replayed history without since_id")
		return
	}
	t.Fatal("no live frame before deadline")
}

func TestSSERejectsBadSinceID(t *testing.T) {
	rig := newAPIRig(t)
	rec := rig.do(t, http.MethodGet, "/sse/events/p1?since_id=banana", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSSESinceIDSkipsOldEvents(t *testing.T) {
	rig := newAPIRig(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rig.server.publisher.PublishBestEffort(ctx, events.Event{
			PatientID: "p1",
			Phase:     events.PhaseWave1,
			EventType: events.EventTypeWaveStarted,
			Details:   map[string]interface{}{"n": i},
		})
	}
	latest, err := rig.events.LatestID(ctx, "p1")
	require.NoError(t, err)

	srv := httptest.NewServer(rig.router)
	defer srv.Close()

	reqCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	url := fmt.Sprintf("%s/sse/events/p1?since_id=%d", srv.URL, latest)
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// Only keep-alive comments until the deadline: nothing to replay.
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		assert.False(t, strings.HasPrefix(scanner.Text(), "data: "),
			"unexpected replayed event past watermark: %s", scanner.Text())
	}
}
