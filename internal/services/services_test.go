package services

import (
	"path/filepath"
	"testing"

	"lab_downtime_server/config"
	"lab_downtime_server/internal/db"
)

// setupTestDB points the storage layer at a fresh SQLite file and
// initializes timezone and schema for one test.
func setupTestDB(t *testing.T) {
	t.Helper()

	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "test.db"))
	t.Setenv("APP_TIMEZONE", "Europe/Istanbul")

	if err := config.InitializeTimezone(); err != nil {
		t.Fatalf("InitializeTimezone() failed: %v", err)
	}
	if err := db.Initialize(); err != nil {
		t.Fatalf("db.Initialize() failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
}
