// Offline XLSX export: writes the faults of a local date range to a file
// without going through the HTTP server.
package main

import (
	"flag"
	"log"
	"os"

	"lab_downtime_server/config"
	"lab_downtime_server/internal/db"
	"lab_downtime_server/internal/services"
	"lab_downtime_server/pkg/colors"

	"github.com/joho/godotenv"
)

func main() {
	var from, to, out string
	flag.StringVar(&from, "from", "", "start of local date range (YYYY-MM-DD, default: first day of current month)")
	flag.StringVar(&to, "to", "", "end of local date range (YYYY-MM-DD, default: today)")
	flag.StringVar(&out, "out", "faults.xlsx", "output file path")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		colors.PrintWarning("No .env file found, using system environment variables")
	}

	if err := config.InitializeTimezone(); err != nil {
		log.Fatalf("Timezone initialization failed: %v", err)
	}

	defaultFrom, defaultTo := config.CurrentMonthRange()
	if from == "" {
		from = defaultFrom
	}
	if to == "" {
		to = defaultTo
	}

	if err := db.Initialize(); err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	defer db.Close()

	reports := services.NewReportService(services.NewFaultDBService())

	rows, err := reports.BuildReport(from, to)
	if err != nil {
		log.Fatalf("Failed to build report: %v", err)
	}

	artifact, err := reports.ExportXLSX(rows)
	if err != nil {
		log.Fatalf("Failed to encode spreadsheet: %v", err)
	}

	if err := os.WriteFile(out, artifact, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", out, err)
	}

	colors.PrintSuccess("Exported %d faults (%s .. %s) to %s", len(rows), from, to, out)
}
