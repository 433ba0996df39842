// Package scheduler runs the multi-wave analysis pipeline: workers claim
// pending sessions from the database queue, execute Wave 1 and Wave 2 for
// each session, and a per-patient debouncer regenerates the Wave-3
// documents after Wave-2 completions settle.
package scheduler

import (
	"errors"

	"github.com/attune-health/attune/ent/therapysession"
)

// ErrNoSessionsAvailable indicates no pending sessions are in the queue.
var ErrNoSessionsAvailable = errors.New("no sessions available")

// ExecutionResult is the terminal state of one session's processing. All
// intermediate state was already written to the database by the executor.
type ExecutionResult struct {
	Status therapysession.ProcessingStatus
	Error  error
}

// AbortedTask identifies one task attempt that was open when a stop
// request interrupted it.
type AbortedTask struct {
	SessionID string `json:"session_id"`
	Task      string `json:"task"`
}

// StopReport summarizes a stop request: which sessions were taken off
// the queue and which in-flight task attempts were aborted.
type StopReport struct {
	StoppedSessionIDs []string      `json:"stopped_session_ids"`
	AbortedTasks      []AbortedTask `json:"aborted_tasks"`
}

// ResumeReport summarizes a resume request.
type ResumeReport struct {
	ResumedSessionIDs []string `json:"resumed_session_ids"`
	// ResumeFromSessionID is the earliest session whose Wave 2 is still
	// outstanding, i.e. where processing picks back up.
	ResumeFromSessionID string `json:"resume_from_session_id,omitempty"`
}
