package main

import (
	"fmt"
	"os"

	"taskflow/internal/config"
	"taskflow/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
	cfg *config.Config
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment, cfg *config.Config) *RepositoryFactory {
	return &RepositoryFactory{env: env, cfg: cfg}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository() (sqlite.Repository, error) {
	switch rf.env {
	case Development:
		return rf.createDevelopmentRepository()
	case Testing:
		return rf.createTestingRepository()
	case Production:
		return rf.createProductionRepository()
	default:
		return rf.createProductionRepository() // Default to production
	}
}

// createDevelopmentRepository creates a repository for development
// Uses a local SQLite database in the working directory
func (rf *RepositoryFactory) createDevelopmentRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New("taskflow.db")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development database: %w", err)
	}

	return repo, nil
}

// createTestingRepository creates a repository for testing
// Uses an in-memory SQLite database
func (rf *RepositoryFactory) createTestingRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize testing database: %w", err)
	}

	return repo, nil
}

// createProductionRepository creates a repository for production
// Uses the configured database location, creating the directory if needed
func (rf *RepositoryFactory) createProductionRepository() (sqlite.Repository, error) {
	if err := rf.cfg.EnsureDatabaseDir(); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.New(rf.cfg.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize production database: %w", err)
	}

	return repo, nil
}

// GetEnvironment determines the current environment
func GetEnvironment() Environment {
	env := os.Getenv("TASKFLOW_ENV")
	switch env {
	case "development":
		return Development
	case "testing":
		return Testing
	case "production":
		return Production
	default:
		// Default to production for safety
		return Production
	}
}
