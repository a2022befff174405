package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the taskflow server
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Notifications NotificationsConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `env:"TASKFLOW_ADDR"`
	StaticDir       string        `env:"TASKFLOW_STATIC_DIR"`
	ShutdownTimeout time.Duration `env:"TASKFLOW_SERVER_SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string `env:"TASKFLOW_DB_DIR"`
	Filename       string `env:"TASKFLOW_DB_FILENAME"`
	DirPermissions uint32 `env:"TASKFLOW_DB_DIR_PERMISSIONS"`
}

// NotificationsConfig holds notification dispatcher configuration
type NotificationsConfig struct {
	Workers      int           `env:"TASKFLOW_NOTIFY_WORKERS"`
	QueueSize    int           `env:"TASKFLOW_NOTIFY_QUEUE_SIZE"`
	DrainTimeout time.Duration `env:"TASKFLOW_NOTIFY_DRAIN_TIMEOUT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".taskflow")

	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			StaticDir:       "",
			ShutdownTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "taskflow.db",
			DirPermissions: 0755,
		},
		Notifications: NotificationsConfig{
			Workers:      4,
			QueueSize:    256,
			DrainTimeout: 10 * time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Server configuration
	if addr := os.Getenv("TASKFLOW_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if dir := os.Getenv("TASKFLOW_STATIC_DIR"); dir != "" {
		c.Server.StaticDir = dir
	}
	if timeout := os.Getenv("TASKFLOW_SERVER_SHUTDOWN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Server.ShutdownTimeout = d
		}
	}

	// Database configuration
	if dir := os.Getenv("TASKFLOW_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TASKFLOW_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if perms := os.Getenv("TASKFLOW_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Notification configuration
	if workers := os.Getenv("TASKFLOW_NOTIFY_WORKERS"); workers != "" {
		if n, err := strconv.Atoi(workers); err == nil && n > 0 {
			c.Notifications.Workers = n
		}
	}
	if size := os.Getenv("TASKFLOW_NOTIFY_QUEUE_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil && n > 0 {
			c.Notifications.QueueSize = n
		}
	}
	if timeout := os.Getenv("TASKFLOW_NOTIFY_DRAIN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Notifications.DrainTimeout = d
		}
	}

	return nil
}

// EnsureDatabaseDir creates the database directory if it does not exist
func (c *Config) EnsureDatabaseDir() error {
	return os.MkdirAll(c.Database.Dir, os.FileMode(c.Database.DirPermissions))
}
