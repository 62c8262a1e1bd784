package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/assessflow/pipeline/pkg/models"
)

// createSessionHandler handles POST /internal/sessions.
func (s *Server) createSessionHandler(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	sess, err := s.sessions.CreateSession(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

// getSessionHandler handles GET /internal/sessions/:id with responses loaded.
func (s *Server) getSessionHandler(c *gin.Context) {
	sess, err := s.sessions.GetSession(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// recordResponseHandler handles POST /internal/sessions/:id/responses.
func (s *Server) recordResponseHandler(c *gin.Context) {
	var req models.RecordResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	resp, err := s.sessions.RecordResponse(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// completeSessionHandler handles POST /internal/sessions/:id/complete.
func (s *Server) completeSessionHandler(c *gin.Context) {
	sess, err := s.sessions.CompleteSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// abandonSessionHandler handles POST /internal/sessions/:id/abandon.
func (s *Server) abandonSessionHandler(c *gin.Context) {
	sess, err := s.sessions.AbandonSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// listSessionsHandler handles GET /admin/sessions with status, mode, user
// and paging filters.
func (s *Server) listSessionsHandler(c *gin.Context) {
	filters := models.SessionFilters{
		Status: c.Query("status"),
		Mode:   c.Query("mode"),
		UserID: c.Query("user"),
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		filters.Limit = n
	}
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
			return
		}
		filters.Offset = n
	}

	sessions, total, err := s.sessions.ListSessions(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessions": sessions,
		"total":    total,
	})
}
