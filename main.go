package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"lab_downtime_server/config"
	"lab_downtime_server/internal/auth"
	"lab_downtime_server/internal/db"
	"lab_downtime_server/internal/http"
	"lab_downtime_server/pkg/colors"

	"github.com/joho/godotenv"
)

func main() {
	// Print attractive banner
	colors.PrintBanner()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		colors.PrintWarning("No .env file found, using system environment variables")
	} else {
		colors.PrintSuccess("Environment configuration loaded from .env file")
	}

	// Fixed timezone for all user-entered times
	if err := config.InitializeTimezone(); err != nil {
		colors.PrintError("Failed to initialize timezone: %v", err)
		log.Fatalf("Timezone initialization failed: %v", err)
	}
	colors.PrintSuccess("Application timezone: %s", config.GetTimezoneString())

	// Admin secret (absence means device registration stays locked)
	if err := config.InitializeAdminAuth(); err != nil {
		colors.PrintError("Failed to load admin token: %v", err)
		log.Fatalf("Admin token loading failed: %v", err)
	}
	if !config.GetAdminAuth().Configured() {
		colors.PrintWarning("No admin token configured; device registration will be unavailable")
	}

	// Initialize database connection
	colors.PrintInfo("Initializing database connection...")
	if err := db.Initialize(); err != nil {
		colors.PrintError("Failed to initialize database: %v", err)
		log.Fatalf("Database initialization failed: %v", err)
	}
	defer db.Close()

	httpPort := os.Getenv("HTTP_PORT")
	if httpPort == "" {
		httpPort = "8080"
	}

	sessions := auth.NewSessionStore(auth.DefaultSessionTTL)

	colors.PrintHeader("DOWNTIME SERVER INITIALIZATION")
	colors.PrintServer("🌐", "HTTP Server configured for port %s (REST API Access)", httpPort)

	colors.PrintSubHeader("Available REST API Endpoints")
	colors.PrintEndpoint("GET", "/health", "Health check and storage diagnostics")
	colors.PrintEndpoint("POST", "/api/v1/auth/login", "Admin authentication")
	colors.PrintEndpoint("POST", "/api/v1/auth/logout", "End admin session")
	colors.PrintEndpoint("GET", "/api/v1/auth/me", "Admin session status")
	colors.PrintEndpoint("GET", "/api/v1/devices", "List registered devices")
	colors.PrintEndpoint("POST", "/api/v1/devices", "Register new device (Admin)")
	colors.PrintEndpoint("GET", "/api/v1/faults", "List faults in a date range")
	colors.PrintEndpoint("GET", "/api/v1/faults/export", "Export faults as XLSX")
	colors.PrintEndpoint("GET", "/api/v1/faults/:id", "Get one fault")
	colors.PrintEndpoint("POST", "/api/v1/faults", "Record a fault")
	colors.PrintEndpoint("PUT", "/api/v1/faults/:id", "Edit a fault")
	colors.PrintEndpoint("POST", "/api/v1/faults/:id/close", "Close an open fault now")

	errorChan := make(chan error, 1)
	go func() {
		server := http.NewServer(httpPort, sessions)
		errorChan <- server.Start()
	}()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errorChan:
		colors.PrintError("Server startup failed: %v", err)
		return
	case <-quit:
		colors.PrintShutdown()
		return
	}
}
