package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetJourney handles GET /patients/:id/journey. 404 until the first
// Wave-3 regeneration has landed.
func (s *Server) GetJourney(c *gin.Context) {
	journey, err := s.versions.GetJourney(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, journey)
}

// GetBridge handles GET /patients/:id/bridge.
func (s *Server) GetBridge(c *gin.Context) {
	bridge, err := s.versions.GetBridge(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bridge)
}

// GetStatus handles GET /patients/:id/status.
func (s *Server) GetStatus(c *gin.Context) {
	status, err := s.status.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetCosts handles GET /patients/:id/costs. An optional since query
// param (RFC 3339) restricts the window.
func (s *Server) GetCosts(c *gin.Context) {
	var since *time.Time
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since must be RFC 3339"})
			return
		}
		since = &parsed
	}

	summary, err := s.costs.PatientCosts(c.Request.Context(), c.Param("id"), since)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
