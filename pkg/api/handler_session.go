package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/attune-health/attune/pkg/events"
	"github.com/attune-health/attune/pkg/services"
)

// IngestSession handles POST /ingest/session. The transcript is
// validated and the session enqueued pending; analysis happens
// asynchronously in the worker pool.
func (s *Server) IngestSession(c *gin.Context) {
	var req services.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	session, err := s.sessions.IngestSession(c.Request.Context(), req)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	s.publisher.PublishBestEffort(c.Request.Context(), events.Event{
		PatientID: session.PatientID,
		SessionID: session.ID,
		Phase:     events.PhaseTranscript,
		EventType: events.EventTypeSessionIngested,
		Details: map[string]interface{}{
			"segments": len(req.Transcript),
		},
	})

	c.JSON(http.StatusAccepted, gin.H{"session_id": session.ID})
}

// GetSession handles GET /sessions/:id.
func (s *Server) GetSession(c *gin.Context) {
	session, err := s.sessions.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ListPatientSessions handles GET /patients/:id/sessions. Sessions come
// back newest first.
func (s *Server) ListPatientSessions(c *gin.Context) {
	sessions, err := s.sessions.ListPatientSessions(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessions": sessions,
		"total":    len(sessions),
	})
}
