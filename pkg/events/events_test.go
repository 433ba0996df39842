package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventValidate(t *testing.T) {
	valid := Event{PatientID: "p1", Phase: PhaseWave1, EventType: EventTypeWaveStarted}
	assert.NoError(t, valid.Validate())

	for name, event := range map[string]Event{
		"missing patient": {Phase: PhaseWave1, EventType: EventTypeWaveStarted},
		"unknown phase":   {PatientID: "p1", Phase: "WAVE9", EventType: EventTypeWaveStarted},
		"missing type":    {PatientID: "p1", Phase: PhaseWave1},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, event.Validate())
		})
	}
}

func TestSSEFrame(t *testing.T) {
	event := Event{
		ID:        42,
		PatientID: "p1",
		SessionID: "s1",
		Phase:     PhaseWave2,
		EventType: EventTypeWaveCompleted,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	frame, err := event.SSEFrame()
	require.NoError(t, err)

	text := string(frame)
	assert.True(t, strings.HasPrefix(text, "event: WAVE2\ndata: "))
	assert.True(t, strings.HasSuffix(text, "\n\n"))

	dataLine := strings.TrimSuffix(strings.TrimPrefix(text, "event: WAVE2\ndata: "), "\n\n")
	var decoded Event
	require.NoError(t, json.Unmarshal([]byte(dataLine), &decoded))
	assert.Equal(t, int64(42), decoded.ID)
	assert.Equal(t, EventTypeWaveCompleted, decoded.EventType)
}

func TestPatientChannel(t *testing.T) {
	assert.Equal(t, "patient:p-123", PatientChannel("p-123"))
}

func TestWaveEvent(t *testing.T) {
	event := WaveEvent("p1", "s1", PhaseWave1, EventTypeWaveFailed, "mood", map[string]interface{}{"error": "boom"})
	assert.Equal(t, "mood", event.Details["wave"])
	assert.Equal(t, "boom", event.Details["error"])
	assert.NoError(t, event.Validate())
}

func TestNotifyPayloadDegradesWhenOversized(t *testing.T) {
	big := strings.Repeat("x", notifyMaxBytes+100)
	event := Event{
		ID:        7,
		PatientID: "p1",
		Phase:     PhaseWave1,
		EventType: EventTypeWaveCompleted,
		Details:   map[string]interface{}{"blob": big},
	}
	payload, err := notifyPayload(event)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(payload), notifyMaxBytes)

	var decoded Event
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	assert.Equal(t, int64(7), decoded.ID)
	assert.Nil(t, decoded.Details)
}

func TestHubSubscribeAndWake(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe("p1")
	defer cancel()

	assert.Equal(t, 1, hub.SubscriberCount("p1"))

	hub.Wake("p1")
	select {
	case <-ch:
	default:
		t.Fatal("expected a wake signal")
	}

	// Wakes coalesce: two signals while unread collapse to one.
	hub.Wake("p1")
	hub.Wake("p1")
	<-ch
	select {
	case <-ch:
		t.Fatal("wake signals should coalesce")
	default:
	}
}

func TestHubWakeOtherPatientIsSilent(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe("p1")
	defer cancel()

	hub.Wake("p2")
	select {
	case <-ch:
		t.Fatal("wrong patient woke the subscriber")
	default:
	}
}

func TestHubCancelRemovesSubscriber(t *testing.T) {
	hub := NewHub()
	_, cancel := hub.Subscribe("p1")
	cancel()
	assert.Zero(t, hub.SubscriberCount("p1"))
	// Cancel twice is safe.
	cancel()
}
