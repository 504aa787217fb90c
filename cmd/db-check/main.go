// Storage connectivity probe: connects with the same configuration as
// the server and prints backend diagnostics and row counts.
package main

import (
	"os"

	"lab_downtime_server/internal/db"
	"lab_downtime_server/internal/services"
	"lab_downtime_server/pkg/colors"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		colors.PrintWarning("No .env file found, using system environment variables")
	}

	if err := db.Initialize(); err != nil {
		colors.PrintError("Database check failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	diag := db.GetDiagnostics()
	colors.PrintSubHeader("Storage Diagnostics")
	colors.PrintStats("Backend", diag.Backend)
	colors.PrintStats("Location", diag.Location)
	if diag.FileSizeBytes != nil {
		colors.PrintStats("File size (bytes)", *diag.FileSizeBytes)
	}

	deviceCount, err := services.NewDeviceDBService().Count()
	if err != nil {
		colors.PrintError("Device count failed: %v", err)
		os.Exit(1)
	}
	faultCount, err := services.NewFaultDBService().Count()
	if err != nil {
		colors.PrintError("Fault count failed: %v", err)
		os.Exit(1)
	}

	colors.PrintStats("Devices", deviceCount)
	colors.PrintStats("Faults", faultCount)
	colors.PrintSuccess("Database check passed")
}
