package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assessflow/pipeline/pkg/models"
)

// listProjectsHandler handles GET /admin/projects.
func (s *Server) listProjectsHandler(c *gin.Context) {
	projects, err := s.projects.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"total":    len(projects),
	})
}

// getProjectHandler handles GET /admin/projects/:id, with global variables
// loaded.
func (s *Server) getProjectHandler(c *gin.Context) {
	proj, err := s.projects.GetProject(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proj)
}

// createProjectHandler handles POST /admin/projects.
func (s *Server) createProjectHandler(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	proj, err := s.projects.CreateProject(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, proj)
}

// updateProjectHandler handles PUT /admin/projects/:id.
func (s *Server) updateProjectHandler(c *gin.Context) {
	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	proj, err := s.projects.UpdateProject(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proj)
}

// deleteProjectHandler handles DELETE /admin/projects/:id. System projects
// answer 403.
func (s *Server) deleteProjectHandler(c *gin.Context) {
	if err := s.projects.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// listVariablesHandler handles GET /admin/projects/:id/variables.
func (s *Server) listVariablesHandler(c *gin.Context) {
	vars, err := s.projects.ListGlobalVariables(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"variables": vars})
}

// upsertVariableHandler handles PUT /admin/projects/:id/variables/:name —
// whole-row create-or-replace.
func (s *Server) upsertVariableHandler(c *gin.Context) {
	var req models.VariableUpsert
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	v, err := s.projects.UpsertGlobalVariable(c.Request.Context(), c.Param("id"), c.Param("name"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// deleteVariableHandler handles DELETE /admin/projects/:id/variables/:name.
func (s *Server) deleteVariableHandler(c *gin.Context) {
	if err := s.projects.DeleteGlobalVariable(c.Request.Context(), c.Param("id"), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
