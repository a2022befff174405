package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskflow/internal/domain"
	"taskflow/internal/services"
)

// handleQueryTasks serves the filtered/sorted task query. Every filter
// is optional; unrecognized sortBy values pass through unsorted rather
// than being rejected.
func (s *Server) handleQueryTasks(c *gin.Context) {
	var query domain.TaskQuery

	if projectID := c.Query("projectId"); projectID != "" {
		query.ProjectID = &projectID
	}
	if status := c.Query("status"); status != "" {
		taskStatus := domain.TaskStatus(status)
		query.Status = &taskStatus
	}
	if priority := c.Query("priority"); priority != "" {
		p, err := strconv.Atoi(priority)
		if err != nil {
			respondBadRequest(c, "priority must be an integer")
			return
		}
		query.Priority = &p
	}
	if startDate := c.Query("startDate"); startDate != "" {
		start, err := s.validator.ParseDueDate(startDate)
		if err != nil {
			respondBadRequest(c, "startDate must be an ISO-8601 timestamp")
			return
		}
		query.StartDate = start
	}
	if endDate := c.Query("endDate"); endDate != "" {
		end, err := s.validator.ParseDueDate(endDate)
		if err != nil {
			respondBadRequest(c, "endDate must be an ISO-8601 timestamp")
			return
		}
		query.EndDate = end
	}
	query.SortBy = domain.SortKey(c.Query("sortBy"))
	query.SortOrder = domain.SortOrder(c.Query("sortOrder"))

	result, err := s.tasks.QueryTasks(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleGetTask(c *gin.Context) {
	task, err := s.tasks.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var input services.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	task, err := s.tasks.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	var patch services.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	task, err := s.tasks.UpdateTask(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// handleUpdateTaskStatus is the status-only shorthand. A body without a
// status key is structurally malformed and rejected before the service
// is consulted.
func (s *Server) handleUpdateTaskStatus(c *gin.Context) {
	var body struct {
		Status *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if body.Status == nil {
		respondBadRequest(c, "status is required")
		return
	}

	task, err := s.tasks.UpdateTaskStatus(c.Request.Context(), c.Param("id"), *body.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	deleted, err := s.tasks.DeleteTask(c.Request.Context(), c.Param("id"))
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
