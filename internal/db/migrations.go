package db

import (
	"fmt"

	"lab_downtime_server/internal/models"
	"lab_downtime_server/pkg/colors"
)

// RunMigrations runs all database migrations
func RunMigrations() error {
	colors.PrintSubHeader("Running Database Migrations")

	// Base table first, then tables with foreign keys
	if err := DB.AutoMigrate(&models.Device{}); err != nil {
		return fmt.Errorf("device table migration failed: %v", err)
	}
	colors.PrintSuccess("✓ Devices table ready")

	if err := DB.AutoMigrate(&models.Fault{}); err != nil {
		return fmt.Errorf("fault table migration failed: %v", err)
	}
	colors.PrintSuccess("✓ Faults table ready")

	colors.PrintSuccess("Database migrations completed successfully")
	return nil
}
