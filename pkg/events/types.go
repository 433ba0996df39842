// Package events provides durable pipeline event delivery. Producers
// persist events to the pipeline_events table; the HTTP server streams
// them per patient over SSE. Because the scheduler may run in a process
// separate from the server, the table is the source of truth and
// PostgreSQL NOTIFY is only a wake-up optimization for the poll loop.
package events

// Pipeline phases. Every event belongs to exactly one.
const (
	PhaseTranscript = "TRANSCRIPT"
	PhaseWave1      = "WAVE1"
	PhaseWave2      = "WAVE2"
	PhaseWave3      = "WAVE3"
	// PhasePipeline carries patient-level lifecycle events (stop/resume)
	// that do not belong to a single wave.
	PhasePipeline = "PIPELINE"
)

// Event types.
const (
	EventTypeSessionIngested = "session.ingested"
	EventTypeWaveStarted     = "wave.started"
	EventTypeWaveCompleted   = "wave.completed"
	EventTypeWaveFailed      = "wave.failed"
	EventTypeWaveStopped     = "wave.stopped"
	EventTypeJourneyUpdated  = "journey.updated"
	EventTypeBridgeUpdated   = "bridge.updated"
	EventTypePipelineStopped = "pipeline.stopped"
	EventTypePipelineResumed = "pipeline.resumed"
)

// PatientChannel returns the NOTIFY channel for one patient's events.
// Format: "patient:{patient_id}"
func PatientChannel(patientID string) string {
	return "patient:" + patientID
}
