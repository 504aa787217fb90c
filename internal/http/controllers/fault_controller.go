package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"lab_downtime_server/config"
	"lab_downtime_server/internal/services"

	"github.com/gin-gonic/gin"
)

// FaultController handles downtime record HTTP requests
type FaultController struct {
	faults  *services.FaultDBService
	reports *services.ReportService
}

// NewFaultController creates a new fault controller
func NewFaultController() *FaultController {
	faults := services.NewFaultDBService()
	return &FaultController{
		faults:  faults,
		reports: services.NewReportService(faults),
	}
}

// faultID parses the :id path parameter
func faultID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		createErrorResponse(c, http.StatusBadRequest, "INVALID_FAULT_ID",
			"Fault ID must be a valid number",
			map[string]string{"provided_id": c.Param("id")})
		return 0, false
	}
	return uint(id), true
}

// faultErrorResponse maps service errors to HTTP statuses and codes
func faultErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDeviceNotFound):
		createErrorResponse(c, http.StatusBadRequest, "MISSING_DEVICE",
			"The referenced device does not exist",
			map[string]string{"suggestion": "Select a registered device"})
	case errors.Is(err, services.ErrFaultNotFound):
		createErrorResponse(c, http.StatusNotFound, "FAULT_NOT_FOUND",
			"No fault found with the specified ID", nil)
	case errors.Is(err, services.ErrInvalidLocalTime):
		createErrorResponse(c, http.StatusBadRequest, "INVALID_DATETIME",
			"Date/time must match the format "+config.LocalMinuteLayout,
			map[string]string{"expected_format": config.LocalMinuteLayout})
	case errors.Is(err, services.ErrEndBeforeStart):
		createErrorResponse(c, http.StatusBadRequest, "END_BEFORE_START",
			"Fault end time must not be before its start time", nil)
	case errors.Is(err, services.ErrFaultAlreadyClosed):
		createErrorResponse(c, http.StatusConflict, "ALREADY_CLOSED",
			"This fault already has an end time", nil)
	case errors.Is(err, services.ErrInvalidDateRange):
		createErrorResponse(c, http.StatusBadRequest, "INVALID_DATE_RANGE",
			"Filter dates must match the format "+config.LocalDateLayout,
			map[string]string{"expected_format": config.LocalDateLayout})
	default:
		databaseErrorResponse(c, err)
	}
}

// dateRange reads the ?from/?to filter, defaulting to the first day of
// the current local month through today.
func dateRange(c *gin.Context) (string, string) {
	defaultFrom, defaultTo := config.CurrentMonthRange()
	from := c.DefaultQuery("from", defaultFrom)
	to := c.DefaultQuery("to", defaultTo)
	return from, to
}

// GetFaults returns the display projection of faults in the filter range
func (fc *FaultController) GetFaults(c *gin.Context) {
	from, to := dateRange(c)

	rows, err := fc.reports.BuildReport(from, to)
	if err != nil {
		faultErrorResponse(c, err)
		return
	}

	createSuccessResponse(c, http.StatusOK, "Faults retrieved successfully", rows, len(rows))
}

// GetFault returns one raw fault row for the edit form
func (fc *FaultController) GetFault(c *gin.Context) {
	id, ok := faultID(c)
	if !ok {
		return
	}

	fault, err := fc.faults.GetByID(id)
	if err != nil {
		faultErrorResponse(c, err)
		return
	}

	createSuccessResponse(c, http.StatusOK, "Fault retrieved successfully", fault, 0)
}

// CreateFault records a new downtime event, open or closed
func (fc *FaultController) CreateFault(c *gin.Context) {
	var req services.FaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		createErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST",
			"Invalid JSON format in request body",
			map[string]string{"binding_error": err.Error()})
		return
	}

	fault, err := fc.faults.Create(&req)
	if err != nil {
		faultErrorResponse(c, err)
		return
	}

	createSuccessResponse(c, http.StatusCreated, "Fault recorded successfully", fault, 0)
}

// UpdateFault overwrites the mutable fields of an existing fault
func (fc *FaultController) UpdateFault(c *gin.Context) {
	id, ok := faultID(c)
	if !ok {
		return
	}

	var req services.FaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		createErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST",
			"Invalid JSON format in request body",
			map[string]string{"binding_error": err.Error()})
		return
	}

	fault, err := fc.faults.Update(id, &req)
	if err != nil {
		faultErrorResponse(c, err)
		return
	}

	createSuccessResponse(c, http.StatusOK, "Fault updated successfully", fault, 0)
}

// CloseFault stamps the current instant as the end of an open fault
func (fc *FaultController) CloseFault(c *gin.Context) {
	id, ok := faultID(c)
	if !ok {
		return
	}

	fault, err := fc.faults.CloseNow(id)
	if err != nil {
		faultErrorResponse(c, err)
		return
	}

	createSuccessResponse(c, http.StatusOK, "Fault closed successfully", fault, 0)
}

// ExportFaults serves the filtered range as an XLSX download
func (fc *FaultController) ExportFaults(c *gin.Context) {
	from, to := dateRange(c)

	rows, err := fc.reports.BuildReport(from, to)
	if err != nil {
		faultErrorResponse(c, err)
		return
	}

	artifact, err := fc.reports.ExportXLSX(rows)
	if err != nil {
		createErrorResponse(c, http.StatusInternalServerError, "EXPORT_FAILED",
			"Failed to encode the spreadsheet",
			map[string]string{"encoding_error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="faults.xlsx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		artifact)
}
