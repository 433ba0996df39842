// Package api exposes the pipeline over HTTP: session ingestion, read
// endpoints for sessions and the Journey/Bridge documents, stop/resume
// control, and the per-patient SSE event stream.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/attune-health/attune/pkg/config"
	"github.com/attune-health/attune/pkg/database"
	"github.com/attune-health/attune/pkg/events"
	"github.com/attune-health/attune/pkg/scheduler"
	"github.com/attune-health/attune/pkg/services"
)

// PipelineController is the scheduler surface the control endpoints
// need. Implemented by scheduler.WorkerPool.
type PipelineController interface {
	StopPatient(ctx context.Context, patientID string) (*scheduler.StopReport, error)
	ResumePatient(ctx context.Context, patientID string) (*scheduler.ResumeReport, error)
}

// Deps bundles everything the server is wired with.
type Deps struct {
	DB        *database.Client
	Sessions  *services.SessionService
	Versions  *services.VersionService
	Status    *services.StatusService
	Costs     *services.CostService
	Events    *services.EventService
	Publisher *events.Publisher
	Hub       *events.Hub
	// Listener is optional; without it the SSE loop still works on its
	// poll timer, just without NOTIFY wake-ups.
	Listener *events.NotifyListener
	Pipeline PipelineController
	Config   *config.Config
	Logger   *slog.Logger
}

// Server is the HTTP API server.
type Server struct {
	db         *database.Client
	sessions   *services.SessionService
	versions   *services.VersionService
	status     *services.StatusService
	costs      *services.CostService
	eventStore *services.EventService
	publisher  *events.Publisher
	hub        *events.Hub
	listener   *events.NotifyListener
	pipeline   PipelineController
	cfg        *config.Config
	logger     *slog.Logger
}

// NewServer creates a new API server.
func NewServer(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		db:         deps.DB,
		sessions:   deps.Sessions,
		versions:   deps.Versions,
		status:     deps.Status,
		costs:      deps.Costs,
		eventStore: deps.Events,
		publisher:  deps.Publisher,
		hub:        deps.Hub,
		listener:   deps.Listener,
		pipeline:   deps.Pipeline,
		cfg:        deps.Config,
		logger:     logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(s.logger), securityHeaders())

	router.GET("/healthz", s.Health)
	router.POST("/ingest/session", s.IngestSession)
	router.GET("/sessions/:id", s.GetSession)

	patients := router.Group("/patients/:id")
	patients.GET("/sessions", s.ListPatientSessions)
	patients.GET("/journey", s.GetJourney)
	patients.GET("/bridge", s.GetBridge)
	patients.GET("/status", s.GetStatus)
	patients.GET("/costs", s.GetCosts)
	patients.POST("/stop", s.StopPatient)
	patients.POST("/resume", s.ResumePatient)

	router.GET("/sse/events/:patient_id", s.StreamEvents)
	return router
}

// Health handles GET /healthz.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	health, err := database.CheckHealth(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": health,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": health,
	})
}
