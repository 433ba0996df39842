package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/attune-health/attune/pkg/services"
)

// respondServiceError maps service-layer errors to HTTP error responses.
func (s *Server) respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
		return
	}

	// Unexpected error
	s.logger.Error("Unexpected service error", slog.Any("error", err),
		slog.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
