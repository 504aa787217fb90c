package http

import (
	"lab_downtime_server/internal/auth"
	"lab_downtime_server/internal/db"
	"lab_downtime_server/internal/http/controllers"
	"lab_downtime_server/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, sessions *auth.SessionStore) {
	// Initialize controllers
	authController := controllers.NewAuthController(sessions)
	deviceController := controllers.NewDeviceController()
	faultController := controllers.NewFaultController()

	adminOnly := middleware.AdminSessionMiddleware(sessions)

	// API version 1
	v1 := router.Group("/api/v1")
	{
		// Public authentication routes (no middleware)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", authController.Login)
		}

		// Protected authentication routes (require admin session)
		authProtected := v1.Group("/auth")
		authProtected.Use(adminOnly)
		{
			authProtected.POST("/logout", authController.Logout)
			authProtected.GET("/me", authController.Me)
		}

		// Device registry: reading is open to every technician,
		// registration is the one admin-gated operation.
		devices := v1.Group("/devices")
		{
			devices.GET("", deviceController.GetDevices)
			devices.POST("", adminOnly, deviceController.CreateDevice)
		}

		// Downtime records: open to every technician
		faults := v1.Group("/faults")
		{
			faults.GET("", faultController.GetFaults)
			faults.GET("/export", faultController.ExportFaults)
			faults.GET("/:id", faultController.GetFault)
			faults.POST("", faultController.CreateFault)
			faults.PUT("/:id", faultController.UpdateFault)
			faults.POST("/:id/close", faultController.CloseFault)
		}
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Downtime server is running",
			"api":     "/api/v1",
			"storage": db.GetDiagnostics(),
		})
	})
}
