package services

import (
	"fmt"
	"time"

	"lab_downtime_server/config"
	"lab_downtime_server/internal/models"

	"github.com/xuri/excelize/v2"
)

// ReportSheetName is the single sheet of the export artifact
const ReportSheetName = "faults"

// reportHeader is the fixed column order of both projections
var reportHeader = []interface{}{
	"id", "device", "reason", "started_local", "ended_local",
	"started_utc", "ended_utc", "duration_min", "status",
}

// ReportRow is the display projection of one fault: device name joined
// in, timestamps localized, blanks for the open state.
type ReportRow struct {
	ID           uint   `json:"id"`
	Device       string `json:"device"`
	Reason       string `json:"reason"`
	StartedLocal string `json:"started_local"`
	EndedLocal   string `json:"ended_local"`
	StartedUTC   string `json:"started_utc"`
	EndedUTC     string `json:"ended_utc"`
	DurationMin  *int64 `json:"duration_min"`
	Status       string `json:"status"`
}

// ReportService projects fault records into list rows and XLSX exports
type ReportService struct {
	faults *FaultDBService
}

// NewReportService creates a new report service
func NewReportService(faults *FaultDBService) *ReportService {
	return &ReportService{faults: faults}
}

// BuildReport lists the faults in the inclusive local date range and
// projects them for display, newest first.
func (rs *ReportService) BuildReport(fromDate, toDate string) ([]ReportRow, error) {
	faults, err := rs.faults.ListByRange(fromDate, toDate)
	if err != nil {
		return nil, err
	}

	rows := make([]ReportRow, 0, len(faults))
	for i := range faults {
		rows = append(rows, projectFault(&faults[i]))
	}
	return rows, nil
}

func projectFault(fault *models.Fault) ReportRow {
	row := ReportRow{
		ID:           fault.ID,
		Device:       fault.Device.Name,
		StartedLocal: config.FormatLocalMinute(fault.StartedAt),
		StartedUTC:   fault.StartedAt.UTC().Format(time.RFC3339),
		Status:       fault.Closure().Status(),
	}
	if fault.Reason != nil {
		row.Reason = *fault.Reason
	}
	if end, ok := fault.Closure().End(); ok {
		minutes, _ := fault.Closure().DurationMin()
		row.EndedLocal = config.FormatLocalMinute(end)
		row.EndedUTC = end.UTC().Format(time.RFC3339)
		row.DurationMin = &minutes
	}
	return row
}

// ExportXLSX serializes report rows into a spreadsheet document and
// returns the encoded bytes. No file is written; delivery is the
// caller's responsibility.
func (rs *ReportService) ExportXLSX(rows []ReportRow) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), ReportSheetName); err != nil {
		return nil, err
	}
	if err := file.SetSheetRow(ReportSheetName, "A1", &reportHeader); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cells := []interface{}{
			row.ID, row.Device, row.Reason,
			row.StartedLocal, row.EndedLocal,
			row.StartedUTC, row.EndedUTC,
			nil, row.Status,
		}
		if row.DurationMin != nil {
			cells[7] = *row.DurationMin
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(ReportSheetName, cell, &cells); err != nil {
			return nil, err
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
