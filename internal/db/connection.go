package db

import (
	"fmt"
	"os"
	"time"

	"lab_downtime_server/config"
	"lab_downtime_server/pkg/colors"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	DB           *gorm.DB
	activeConfig *config.DatabaseConfig
)

// Initialize establishes the database connection and runs migrations.
// The backend is fixed by configuration at startup; there is no runtime
// fallback from postgres to sqlite.
func Initialize() error {
	dbConfig := config.GetDatabaseConfig()
	colors.PrintInfo("Storage backend: %s", dbConfig.Description())

	var err error
	switch dbConfig.Backend {
	case config.BackendSQLite:
		DB, err = openSQLite(dbConfig.Path)
	default:
		DB, err = gorm.Open(postgres.Open(dbConfig.GetDSN()), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
	}

	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	activeConfig = dbConfig
	colors.PrintSuccess("Database connection established successfully")

	if err := RunMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %v", err)
	}

	return nil
}

// openSQLite opens the embedded database file. SQLite performs best with
// a single writer, so the pool is capped at one connection, and WAL plus
// a busy timeout keep concurrent readers from tripping over writes.
func openSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, err
		}
	}

	return db, nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// Close closes the database connection
func Close() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Diagnostics describes the active storage backend for the health
// endpoint and the db-check tool.
type StorageDiagnostics struct {
	Backend       string `json:"backend"`
	Location      string `json:"location"`
	FileSizeBytes *int64 `json:"file_size_bytes,omitempty"`
}

// GetDiagnostics reports the backend kind, its location, and for the
// embedded backend the on-disk file size.
func GetDiagnostics() StorageDiagnostics {
	if activeConfig == nil {
		return StorageDiagnostics{Backend: "unknown"}
	}

	diag := StorageDiagnostics{
		Backend:  string(activeConfig.Backend),
		Location: activeConfig.Description(),
	}
	if activeConfig.Backend == config.BackendSQLite {
		if info, err := os.Stat(activeConfig.Path); err == nil {
			size := info.Size()
			diag.FileSizeBytes = &size
		}
	}
	return diag
}
