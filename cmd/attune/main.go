// Attune analysis server — ingests therapy-session transcripts over
// HTTP, runs the multi-wave analysis pipeline against a remote
// completion API, and streams pipeline progress per patient over SSE.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/attune-health/attune/pkg/api"
	"github.com/attune-health/attune/pkg/cleanup"
	"github.com/attune-health/attune/pkg/config"
	"github.com/attune-health/attune/pkg/database"
	"github.com/attune-health/attune/pkg/events"
	"github.com/attune-health/attune/pkg/llm"
	"github.com/attune-health/attune/pkg/scheduler"
	"github.com/attune-health/attune/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica
// coordination. Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting attune", "http_port", httpPort, "pod_id", podID)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(2)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	sessionService := services.NewSessionService(dbClient.Client)

	// One-time startup orphan recovery: sessions a previous incarnation
	// of this pod left running go back to pending before the workers
	// start. Crashed peers are covered by the periodic heartbeat sweep.
	if recovered, err := sessionService.RequeuePodSessions(ctx, podID); err != nil {
		slog.Error("Startup orphan recovery failed", "error", err)
	} else if len(recovered) > 0 {
		slog.Warn("Requeued orphaned sessions at startup", "count", len(recovered))
	}
	logService := services.NewLogService(dbClient.Client)
	versionService := services.NewVersionService(dbClient.Client)
	statusService := services.NewStatusService(dbClient.Client, versionService)
	costService := services.NewCostService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)

	// 4. Remote completion client and generator
	chatClient, err := llm.NewOpenAIClient(cfg.RemoteAPIKey, cfg.RemoteAPIBaseURL)
	if err != nil {
		slog.Error("Failed to initialize completion client", "error", err)
		os.Exit(1)
	}
	registry := llm.NewRegistry(config.NewTierCache(time.Minute))
	generator := llm.NewGenerator(registry, chatClient, costService, nil)

	// 5. Event infrastructure: durable publisher plus NOTIFY wake-ups
	// for the SSE poll loops.
	publisher := events.NewPublisher(dbClient.DB(), nil)
	hub := events.NewHub()
	listener := events.NewNotifyListener(dbConfig.DSN(), hub)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)
	slog.Info("Event infrastructure initialized")

	// 6. Scheduler: executor, Wave-3 debouncer, worker pool
	executor := scheduler.NewExecutor(cfg.Scheduler, cfg.Compaction,
		sessionService, logService, versionService, generator, publisher, nil)
	wave3 := scheduler.NewDebouncer(executor, cfg.Scheduler.Debounce, nil)
	pool := scheduler.NewWorkerPool(podID, cfg.Scheduler,
		sessionService, logService, publisher, executor, wave3, nil)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7. Event retention sweeper
	sweeper := cleanup.NewSweeper(eventService, cfg.EventSweepTTL, cfg.SweepInterval, nil)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	// 8. HTTP server
	server := api.NewServer(api.Deps{
		DB:        dbClient,
		Sessions:  sessionService,
		Versions:  versionService,
		Status:    statusService,
		Costs:     costService,
		Events:    eventService,
		Publisher: publisher,
		Hub:       hub,
		Listener:  listener,
		Pipeline:  pool,
		Config:    cfg,
	})
	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Attune started successfully",
		"pod_id", podID,
		"workers", cfg.Scheduler.PoolSize,
		"compaction", cfg.Compaction)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: workers finish their current wave, then the
	// HTTP server drains. Anything still incomplete after the budget is
	// orphan-recovered by the next pod.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Scheduler.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete sessions will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
