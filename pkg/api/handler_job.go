package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/assessflow/pipeline/pkg/executor"
	"github.com/assessflow/pipeline/pkg/models"
)

// enqueueJobHandler handles POST /internal/jobs.
func (s *Server) enqueueJobHandler(c *gin.Context) {
	var req models.EnqueueJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	j, err := s.jobs.Enqueue(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"jobId":  j.ID,
		"status": string(j.Status),
	})
}

// pollJobHandler handles GET /internal/jobs/:sessionId — the front-end
// poller fallback when webhook delivery fails.
func (s *Server) pollJobHandler(c *gin.Context) {
	resp, err := s.jobs.Poll(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// leaseJobsHandler handles GET /external/jobs — the worker lease poll.
// Query: status=queued (the only supported value), kind=<pipeline kind>,
// batch=<n ≤ 10>. The worker identifies itself via X-Worker-ID.
func (s *Server) leaseJobsHandler(c *gin.Context) {
	if status := c.DefaultQuery("status", models.JobStatusQueued); status != models.JobStatusQueued {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only status=queued can be leased"})
		return
	}

	kind := c.Query("kind")
	if kind == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind query parameter is required"})
		return
	}

	batch := 1
	if raw := c.Query("batch"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "batch must be a positive integer"})
			return
		}
		batch = n
	}

	workerID := c.GetHeader("X-Worker-ID")
	if workerID == "" {
		workerID = "integrator"
	}

	jobs, err := s.jobs.Lease(c.Request.Context(), workerID, kind, batch)
	if err != nil {
		respondError(c, err)
		return
	}
	if jobs == nil {
		jobs = []models.LeasedJob{}
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// patchJobHandler handles PATCH /external/jobs/:jobId — progress touches
// and terminal reports from workers and integrators.
func (s *Server) patchJobHandler(c *gin.Context) {
	var req models.PatchJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	j, err := s.jobs.ReportProgress(c.Request.Context(), c.Param("jobId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobId":  j.ID,
		"status": string(j.Status),
	})
}

// listActiveJobsHandler handles GET /admin/jobs with optional project,
// status and batch filters.
func (s *Server) listActiveJobsHandler(c *gin.Context) {
	filters := models.JobFilters{
		ProjectID: c.Query("project"),
		Status:    c.Query("status"),
		BatchID:   c.Query("batch"),
	}

	jobs, err := s.jobs.ListActive(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	if jobs == nil {
		jobs = []models.ActiveJob{}
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// jobProgressHandler handles GET /admin/jobs/:id/progress?offset=<n> —
// offset-polled reads of the human-readable progress log.
func (s *Server) jobProgressHandler(c *gin.Context) {
	offset := 0
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
			return
		}
		offset = n
	}

	page, err := executor.ReadProgress(s.cfg.Progress.LogDir, c.Param("id"), offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
