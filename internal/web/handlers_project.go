package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskflow/internal/services"
)

func (s *Server) handleListProjects(c *gin.Context) {
	projects, err := s.projects.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// handleProjectStats serves bulk per-project counts. projectIds may be
// repeated or comma-separated; none at all selects every project.
func (s *Server) handleProjectStats(c *gin.Context) {
	var projectIDs []string
	for _, raw := range c.QueryArray("projectIds") {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				projectIDs = append(projectIDs, id)
			}
		}
	}

	stats, err := s.stats.StatsFor(c.Request.Context(), projectIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleGetProject(c *gin.Context) {
	project, err := s.projects.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (s *Server) handleCreateProject(c *gin.Context) {
	var input services.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	project, err := s.projects.CreateProject(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (s *Server) handleUpdateProject(c *gin.Context) {
	var patch services.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	project, err := s.projects.UpdateProject(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (s *Server) handleDeleteProject(c *gin.Context) {
	deleted, err := s.projects.DeleteProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
