// Package api exposes the HTTP surface of the pipeline service: the
// front-end enqueue/poll endpoints under /internal, the worker lease/report
// endpoints under /external, the operator endpoints under /admin, and the
// health + live event stream under /api/v1.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/assessflow/pipeline/pkg/config"
	"github.com/assessflow/pipeline/pkg/database"
	"github.com/assessflow/pipeline/pkg/events"
	"github.com/assessflow/pipeline/pkg/services"
	"github.com/assessflow/pipeline/pkg/worker"
)

// BreakerStater reports the provider circuit-breaker state for the health
// surface. Implemented by the gateway.
type BreakerStater interface {
	BreakerState() string
}

// Server is the API server. Construct with NewServer, attach optional
// collaborators with the Set* methods, then Start.
type Server struct {
	cfg    *config.Config
	db     *database.Client
	secret string

	jobs     *services.JobService
	sessions *services.SessionService
	projects *services.ProjectService
	batches  *services.BatchService
	settings *services.SettingsService

	pool        *worker.Pool
	breaker     BreakerStater
	connManager *events.ConnectionManager

	httpServer *http.Server
}

// NewServer creates the API server. secret is the shared backend secret for
// the /external and /admin groups; empty disables authentication (local
// development only).
func NewServer(
	cfg *config.Config,
	db *database.Client,
	secret string,
	jobs *services.JobService,
	sessions *services.SessionService,
	projects *services.ProjectService,
	batches *services.BatchService,
	settings *services.SettingsService,
	connManager *events.ConnectionManager,
) *Server {
	if secret == "" {
		slog.Warn("Backend secret is empty — API authentication disabled")
	}
	return &Server{
		cfg:         cfg,
		db:          db,
		secret:      secret,
		jobs:        jobs,
		sessions:    sessions,
		projects:    projects,
		batches:     batches,
		settings:    settings,
		connManager: connManager,
	}
}

// SetWorkerPool attaches the worker pool for the health surface.
func (s *Server) SetWorkerPool(pool *worker.Pool) {
	s.pool = pool
}

// SetBreaker attaches the provider gateway for the health surface.
func (s *Server) SetBreaker(b BreakerStater) {
	s.breaker = b
}

// Engine builds the router with all routes and middleware registered.
// Exposed for in-process tests; Start wraps it in an http.Server.
func (s *Server) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/api/v1/health", s.healthHandler)
	r.GET("/api/v1/ws", s.wsHandler)

	// UI1-facing endpoints: session JWT (opaque to this service) or the
	// shared secret.
	internal := r.Group("/internal", s.requireAuth())
	{
		internal.POST("/jobs", s.enqueueJobHandler)
		internal.GET("/jobs/:sessionId", s.pollJobHandler)
		internal.POST("/batches", s.createBatchHandler)
		internal.GET("/batches/:id", s.getBatchHandler)
		internal.POST("/sessions", s.createSessionHandler)
		internal.GET("/sessions/:id", s.getSessionHandler)
		internal.POST("/sessions/:id/responses", s.recordResponseHandler)
		internal.POST("/sessions/:id/complete", s.completeSessionHandler)
		internal.POST("/sessions/:id/abandon", s.abandonSessionHandler)
	}

	// Worker and integrator endpoints: shared secret only.
	external := r.Group("/external", s.requireSecret())
	{
		external.GET("/jobs", s.leaseJobsHandler)
		external.PATCH("/jobs/:jobId", s.patchJobHandler)
	}

	// Operator endpoints: shared secret only.
	admin := r.Group("/admin", s.requireSecret())
	{
		admin.GET("/jobs", s.listActiveJobsHandler)
		admin.GET("/jobs/:id/progress", s.jobProgressHandler)
		admin.GET("/settings", s.getSettingsHandler)
		admin.PUT("/settings", s.putSettingsHandler)
		admin.GET("/sessions", s.listSessionsHandler)
		admin.GET("/projects", s.listProjectsHandler)
		admin.POST("/projects", s.createProjectHandler)
		admin.GET("/projects/:id", s.getProjectHandler)
		admin.PUT("/projects/:id", s.updateProjectHandler)
		admin.DELETE("/projects/:id", s.deleteProjectHandler)
		admin.GET("/projects/:id/variables", s.listVariablesHandler)
		admin.PUT("/projects/:id/variables/:name", s.upsertVariableHandler)
		admin.DELETE("/projects/:id/variables/:name", s.deleteVariableHandler)
	}

	return r
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
