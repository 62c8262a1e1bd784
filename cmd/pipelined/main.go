// pipelined is the pipeline orchestrator server — serves the HTTP API,
// runs the worker pool and the DAG executor, and streams job events.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/assessflow/pipeline/pkg/api"
	"github.com/assessflow/pipeline/pkg/cleanup"
	"github.com/assessflow/pipeline/pkg/config"
	"github.com/assessflow/pipeline/pkg/database"
	"github.com/assessflow/pipeline/pkg/events"
	"github.com/assessflow/pipeline/pkg/executor"
	"github.com/assessflow/pipeline/pkg/gateway"
	"github.com/assessflow/pipeline/pkg/graph"
	"github.com/assessflow/pipeline/pkg/services"
	"github.com/assessflow/pipeline/pkg/version"
	"github.com/assessflow/pipeline/pkg/webhook"
	"github.com/assessflow/pipeline/pkg/worker"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
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
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	stats := cfg.Stats()
	slog.Info("Starting pipelined",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir,
		"kinds", stats.Kinds,
		"parallelism", stats.Parallelism,
		"lease_minutes", stats.LeaseMin,
		"poll_ms", stats.PollMS)

	// 2. Initialize database
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
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	webhookSender := webhook.NewSender(cfg.Webhook)

	jobService := services.NewJobService(dbClient.Client, cfg, eventPublisher, webhookSender)
	sessionService := services.NewSessionService(dbClient.Client)
	projectService := services.NewProjectService(dbClient.Client)
	batchService := services.NewBatchService(dbClient.Client, jobService)
	settingsService := services.NewSettingsService(dbClient.Client, jobService)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Streaming infrastructure
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	// Wire listener ↔ manager bidirectional link
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 5. Provider gateway and node registry
	providerGateway := gateway.New(cfg.Provider, cfg.Breaker, cfg.IAM)
	registry := graph.NewRegistry()
	graph.RegisterBuiltins(registry, providerGateway)
	slog.Info("Provider gateway initialized",
		"base_url", cfg.Provider.BaseURL,
		"default_model", providerGateway.DefaultModel())

	// 6. Executor and worker pool (pool starts before the HTTP server so
	// leases are never handed out against a dead pool)
	dagExecutor := executor.New(cfg, dbClient.Client, registry, eventPublisher)
	workerPool := worker.NewPool(podID, dbClient.Client, cfg, jobService, settingsService, dagExecutor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7. Background reaper and retention sweeps
	cleanupService := cleanup.NewService(cfg, dbClient.Client, jobService, eventService)
	cleanupService.Start(ctx)

	// 8. HTTP server
	secret := os.Getenv(cfg.Webhook.SecretEnv)
	httpServer := api.NewServer(cfg, dbClient, secret,
		jobService, sessionService, projectService, batchService, settingsService,
		connManager)
	httpServer.SetWorkerPool(workerPool)
	httpServer.SetBreaker(providerGateway)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + getEnv("HTTP_PORT", strconv.Itoa(cfg.Server.Port))
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("pipelined started successfully", "pod_id", podID)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop the sweeps, then drain the pool, then
	// close the HTTP server.
	cleanupService.Stop()

	poolCtx, poolCancel := context.WithTimeout(ctx, 30*time.Second)
	defer poolCancel()
	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-poolCtx.Done():
		slog.Warn("Shutdown timeout exceeded — in-flight jobs will be orphan-recovered")
	}

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
