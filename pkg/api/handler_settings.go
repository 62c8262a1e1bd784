package api

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/assessflow/pipeline/pkg/models"
)

// getSettingsHandler handles GET /admin/settings — the per-kind worker
// settings plus whether a staged change awaits a pool restart.
func (s *Server) getSettingsHandler(c *gin.Context) {
	workers, err := s.settings.AllWorkerSettings(c.Request.Context(), s.cfg.Worker.Kinds)
	if err != nil {
		respondError(c, err)
		return
	}
	pending, err := s.settings.PendingRestart(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"workers":        workers,
		"pendingRestart": pending,
	})
}

// putSettingsHandler handles PUT /admin/settings. The body maps pipeline
// kind to its worker settings; unknown kinds are rejected before any row is
// written. Changes take effect on the next pool restart.
func (s *Server) putSettingsHandler(c *gin.Context) {
	var body map[string]models.WorkerSettings
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one worker kind is required"})
		return
	}
	for kind := range body {
		if !slices.Contains(s.cfg.Worker.Kinds, kind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown worker kind: " + kind})
			return
		}
	}

	for kind, ws := range body {
		if err := s.settings.PutWorkerSettings(c.Request.Context(), kind, ws); err != nil {
			respondError(c, err)
			return
		}
	}

	workers, err := s.settings.AllWorkerSettings(c.Request.Context(), s.cfg.Worker.Kinds)
	if err != nil {
		respondError(c, err)
		return
	}
	pending, err := s.settings.PendingRestart(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"workers":        workers,
		"pendingRestart": pending,
	})
}
