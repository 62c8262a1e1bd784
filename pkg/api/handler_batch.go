package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assessflow/pipeline/pkg/models"
)

// createBatchHandler handles POST /internal/batches — a folder-upload
// fan-out into sibling jobs.
func (s *Server) createBatchHandler(c *gin.Context) {
	var req models.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	b, err := s.batches.CreateBatch(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"batchId":   b.ID,
		"status":    string(b.Status),
		"totalJobs": b.TotalJobs,
	})
}

// getBatchHandler handles GET /internal/batches/:id — aggregate batch
// status with per-job progress.
func (s *Server) getBatchHandler(c *gin.Context) {
	status, err := s.batches.GetBatchStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
