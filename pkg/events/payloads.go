package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event is one pipeline event as appended by producers and streamed to
// SSE subscribers. ID and CreatedAt are assigned by the database.
type Event struct {
	ID        int64                  `json:"id"`
	PatientID string                 `json:"patient_id"`
	SessionID string                 `json:"session_id,omitempty"`
	Phase     string                 `json:"phase"`
	EventType string                 `json:"event_type"`
	Status    string                 `json:"status,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// Validate checks the producer-supplied fields.
func (e *Event) Validate() error {
	if e.PatientID == "" {
		return fmt.Errorf("event missing patient_id")
	}
	switch e.Phase {
	case PhaseTranscript, PhaseWave1, PhaseWave2, PhaseWave3, PhasePipeline:
	default:
		return fmt.Errorf("unknown phase %q", e.Phase)
	}
	if e.EventType == "" {
		return fmt.Errorf("event missing event_type")
	}
	return nil
}

// SSEFrame renders the event as one SSE frame: the phase is the SSE
// event name and the JSON body the data line.
func (e *Event) SSEFrame() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshaling event %d: %w", e.ID, err)
	}
	frame := make([]byte, 0, len(data)+len(e.Phase)+16)
	frame = append(frame, "event: "...)
	frame = append(frame, e.Phase...)
	frame = append(frame, "\ndata: "...)
	frame = append(frame, data...)
	frame = append(frame, "\n\n"...)
	return frame, nil
}

// WaveEvent builds a wave lifecycle event.
func WaveEvent(patientID, sessionID, phase, eventType, wave string, details map[string]interface{}) Event {
	if details == nil {
		details = map[string]interface{}{}
	}
	details["wave"] = wave
	return Event{
		PatientID: patientID,
		SessionID: sessionID,
		Phase:     phase,
		EventType: eventType,
		Details:   details,
	}
}
