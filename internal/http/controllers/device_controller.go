package controllers

import (
	"errors"
	"net/http"
	"strings"

	"lab_downtime_server/internal/services"
	"lab_downtime_server/pkg/colors"

	"github.com/gin-gonic/gin"
)

// DeviceController handles device registry HTTP requests
type DeviceController struct {
	devices *services.DeviceDBService
}

// NewDeviceController creates a new device controller
func NewDeviceController() *DeviceController {
	return &DeviceController{devices: services.NewDeviceDBService()}
}

// Enhanced error response structure
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
	Code    string            `json:"code,omitempty"`
}

// Success response structure
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Count   int         `json:"count,omitempty"`
}

// Helper function to create error response
func createErrorResponse(c *gin.Context, statusCode int, errorCode string, message string, details map[string]string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
		Details: details,
		Code:    errorCode,
	})
}

// Helper function to create success response
func createSuccessResponse(c *gin.Context, statusCode int, message string, data interface{}, count int) {
	response := SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
	if count > 0 {
		response.Count = count
	}
	c.JSON(statusCode, response)
}

// databaseErrorResponse classifies a storage-layer error: connectivity
// problems map to 503, everything else to 500. Diagnostic detail rides
// along in the details map.
func databaseErrorResponse(c *gin.Context, err error) {
	lower := strings.ToLower(err.Error())
	if strings.Contains(lower, "connection") || strings.Contains(lower, "connect") {
		createErrorResponse(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE",
			"Database connection issue, please try again later",
			map[string]string{"database_error": err.Error()})
		return
	}
	createErrorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR",
		"Database operation failed",
		map[string]string{"database_error": err.Error()})
}

// CreateDeviceRequest represents the device registration body
type CreateDeviceRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetDevices returns all devices; ?sort=name gives the alphabetical
// dropdown ordering, anything else the newest-first registry view.
func (dc *DeviceController) GetDevices(c *gin.Context) {
	order := services.DeviceOrderNewest
	if c.Query("sort") == "name" {
		order = services.DeviceOrderName
	}

	devices, err := dc.devices.List(order)
	if err != nil {
		databaseErrorResponse(c, err)
		return
	}

	createSuccessResponse(c, http.StatusOK, "Devices retrieved successfully", devices, len(devices))
}

// CreateDevice registers a new device (admin session required)
func (dc *DeviceController) CreateDevice(c *gin.Context) {
	var req CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		createErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST",
			"Invalid JSON format in request body",
			map[string]string{"binding_error": err.Error()})
		return
	}

	device, err := dc.devices.Register(req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyDeviceName):
			createErrorResponse(c, http.StatusBadRequest, "EMPTY_DEVICE_NAME",
				"Device name must not be empty",
				map[string]string{"provided_name": req.Name})
		case errors.Is(err, services.ErrDuplicateDeviceName):
			colors.PrintWarning("Duplicate device name rejected: %s", req.Name)
			createErrorResponse(c, http.StatusConflict, "DUPLICATE_DEVICE_NAME",
				"A device with this name is already registered",
				map[string]string{
					"provided_name": req.Name,
					"suggestion":    "Device names are compared case-insensitively",
				})
		default:
			databaseErrorResponse(c, err)
		}
		return
	}

	createSuccessResponse(c, http.StatusCreated, "Device registered successfully", device, 0)
}
