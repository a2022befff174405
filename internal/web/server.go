package web

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"taskflow/internal/services"
	"taskflow/internal/validation"
)

// Server is the taskflow REST API server
type Server struct {
	projects services.ProjectService
	tasks    services.TaskService
	stats    services.StatsService

	validator *validation.Validator
	router    *gin.Engine
}

// NewServer creates a new API server. staticDir, when non-empty, points
// at a built client directory served with an index fallback.
func NewServer(projects services.ProjectService, tasks services.TaskService, stats services.StatsService, staticDir string) *Server {
	router := gin.Default()

	s := &Server{
		projects:  projects,
		tasks:     tasks,
		stats:     stats,
		validator: validation.NewValidator(),
		router:    router,
	}

	api := router.Group("/api")
	{
		projectsGroup := api.Group("/projects")
		{
			projectsGroup.GET("", s.handleListProjects)
			projectsGroup.GET("/stats", s.handleProjectStats)
			projectsGroup.GET("/:id", s.handleGetProject)
			projectsGroup.POST("", s.handleCreateProject)
			projectsGroup.PATCH("/:id", s.handleUpdateProject)
			projectsGroup.DELETE("/:id", s.handleDeleteProject)
		}

		tasksGroup := api.Group("/tasks")
		{
			tasksGroup.GET("", s.handleQueryTasks)
			tasksGroup.GET("/:id", s.handleGetTask)
			tasksGroup.POST("", s.handleCreateTask)
			tasksGroup.PATCH("/:id", s.handleUpdateTask)
			tasksGroup.PATCH("/:id/status", s.handleUpdateTaskStatus)
			tasksGroup.DELETE("/:id", s.handleDeleteTask)
		}
	}

	if staticDir != "" {
		s.registerStatic(staticDir)
	}

	return s
}

// registerStatic serves the client bundle with an index.html fallback
// for client-side routes.
func (s *Server) registerStatic(dir string) {
	s.router.Static("/assets", filepath.Join(dir, "assets"))
	s.router.StaticFile("/", filepath.Join(dir, "index.html"))
	s.router.NoRoute(func(c *gin.Context) {
		c.File(filepath.Join(dir, "index.html"))
	})
}

// Handler returns the server's HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server on the given address
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
