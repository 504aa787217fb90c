package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DatabaseBackend identifies which storage engine the server runs against.
// The backend is chosen once at startup from the environment; there is no
// runtime fallback from one engine to the other.
type DatabaseBackend string

const (
	BackendPostgres DatabaseBackend = "postgres"
	BackendSQLite   DatabaseBackend = "sqlite"
)

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Backend DatabaseBackend

	// Postgres fields
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string // full DSN override, takes precedence when set

	// SQLite field
	Path string
}

// GetDatabaseConfig returns database configuration from environment
// variables. Selection order: DATABASE_URL, then DB_HOST (postgres DSN
// assembled from parts), then the embedded SQLite file.
func GetDatabaseConfig() *DatabaseConfig {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return &DatabaseConfig{
			Backend: BackendPostgres,
			URL:     url,
		}
	}

	if os.Getenv("DB_HOST") != "" {
		return &DatabaseConfig{
			Backend:  BackendPostgres,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "downtime"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "lab_downtime"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		}
	}

	return &DatabaseConfig{
		Backend: BackendSQLite,
		Path:    getEnv("SQLITE_PATH", defaultSQLitePath()),
	}
}

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	if c.Backend == BackendSQLite {
		return c.Path
	}
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Description returns a human-readable, credential-free summary of the
// selected backend for logs and diagnostics.
func (c *DatabaseConfig) Description() string {
	switch c.Backend {
	case BackendSQLite:
		return fmt.Sprintf("sqlite file %s", c.Path)
	default:
		if c.URL != "" {
			return "postgres via DATABASE_URL"
		}
		return fmt.Sprintf("postgres %s:%s/%s", c.Host, c.Port, c.DBName)
	}
}

// defaultSQLitePath places the embedded database under a fixed per-user
// directory, falling back to the system temp directory when the home
// directory is unavailable.
func defaultSQLitePath() string {
	dir := filepath.Join(os.TempDir(), "lab_downtime")
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".lab_downtime")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "downtime.db")
}
