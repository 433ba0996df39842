package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/attune-health/attune/ent"
	"github.com/attune-health/attune/pkg/database"
	"github.com/attune-health/attune/pkg/transcript"
	testdb "github.com/attune-health/attune/test/database"
)

// testServices bundles every service over one test database.
type testServices struct {
	db       *database.Client
	client   *ent.Client
	sessions *SessionService
	logs     *LogService
	costs    *CostService
	versions *VersionService
	metadata *MetadataService
	events   *EventService
	status   *StatusService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	db := testdb.NewTestClient(t)
	client := db.Client
	versions := NewVersionService(client)
	return &testServices{
		db:       db,
		client:   client,
		sessions: NewSessionService(client),
		logs:     NewLogService(client),
		costs:    NewCostService(client),
		versions: versions,
		metadata: NewMetadataService(client),
		events:   NewEventService(client),
		status:   NewStatusService(client, versions),
	}
}

// testTranscript returns a small valid two-speaker transcript.
func testTranscript() []transcript.Segment {
	return []transcript.Segment{
		{StartSec: 0, EndSec: 3, SpeakerID: "S0", Text: "how was your week"},
		{StartSec: 3, EndSec: 10, SpeakerID: "S1", Text: "rough, but I journaled"},
		{StartSec: 10, EndSec: 13, SpeakerID: "S0", Text: "tell me more"},
		{StartSec: 13, EndSec: 20, SpeakerID: "S1", Text: "the journaling helped"},
	}
}

// ingestTestSession creates a pending session for the patient.
func ingestTestSession(t *testing.T, svc *testServices, patientID string, date time.Time) *ent.TherapySession {
	t.Helper()
	session, err := svc.sessions.IngestSession(context.Background(), IngestRequest{
		PatientID:       patientID,
		SessionDate:     date,
		DurationMinutes: 50,
		Transcript:      testTranscript(),
	})
	require.NoError(t, err)
	return session
}
