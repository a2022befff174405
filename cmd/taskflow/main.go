package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"taskflow/internal/config"
	"taskflow/internal/notify"
	"taskflow/internal/services"
	"taskflow/internal/web"
)

var Version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var addr string
	var staticDir string
	var env string

	cmd := &cobra.Command{
		Use:     "taskflow",
		Short:   "TaskFlow - task and project management REST backend",
		Version: Version,
		Long: `TaskFlow serves a REST API for projects and tasks with per-project
completion statistics and asynchronous notification side effects.

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  TASKFLOW_ENV                     development | testing | production (default: production)
  TASKFLOW_ADDR                    Listen address (default: :8080)
  TASKFLOW_STATIC_DIR              Client bundle directory to serve (default: none)
  TASKFLOW_DB_DIR                  Database directory (default: ~/.taskflow)
  TASKFLOW_DB_FILENAME             Database filename (default: taskflow.db)
  TASKFLOW_NOTIFY_WORKERS          Notification worker count (default: 4)
  TASKFLOW_NOTIFY_QUEUE_SIZE       Notification queue capacity (default: 256)
  TASKFLOW_NOTIFY_DRAIN_TIMEOUT    Shutdown drain grace period (default: 10s)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewConfig()
			if err := cfg.LoadFromEnvironment(); err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if staticDir != "" {
				cfg.Server.StaticDir = staticDir
			}

			environment := GetEnvironment()
			if env != "" {
				environment = Environment(env)
			}

			return runServer(environment, cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides TASKFLOW_ADDR)")
	cmd.Flags().StringVar(&staticDir, "static", "", "client bundle directory to serve")
	cmd.Flags().StringVar(&env, "env", "", "environment: development, testing or production (overrides TASKFLOW_ENV)")

	return cmd
}

func runServer(env Environment, cfg *config.Config) error {
	// Create repository with dependency injection
	factory := NewRepositoryFactory(env, cfg)
	repo, err := factory.CreateRepository()
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	// The dispatcher is constructed once here and handed to whatever
	// creates or updates tasks; there is no ambient global pool.
	dispatcher := notify.New(cfg.Notifications.Workers, cfg.Notifications.QueueSize, nil)
	dispatcher.Start()

	projectService := services.NewProjectService(repo)
	taskService := services.NewTaskService(repo, dispatcher)
	statsService := services.NewStatsService(repo)

	server := web.NewServer(projectService, taskService, statsService, cfg.Server.StaticDir)

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("taskflow listening on %s", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		dispatcher.Shutdown(cfg.Notifications.DrainTimeout)
		return err
	case <-ctx.Done():
	}

	log.Printf("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}

	// Already-enqueued notifications get the drain grace period, then
	// the remainder is abandoned.
	if err := dispatcher.Shutdown(cfg.Notifications.DrainTimeout); err != nil {
		log.Printf("dispatcher shutdown: %v", err)
	}

	return nil
}
