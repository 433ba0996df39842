package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StopPatient handles POST /patients/:id/stop. Idempotent: stopping a
// patient with nothing running returns an empty report.
func (s *Server) StopPatient(c *gin.Context) {
	report, err := s.pipeline.StopPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ResumePatient handles POST /patients/:id/resume.
func (s *Server) ResumePatient(c *gin.Context) {
	report, err := s.pipeline.ResumePatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
