package services

import (
	"errors"
	"strings"
	"time"

	"lab_downtime_server/config"
	"lab_downtime_server/internal/db"
	"lab_downtime_server/internal/models"
	"lab_downtime_server/pkg/colors"

	"gorm.io/gorm"
)

// FaultDBService handles database operations for downtime records
type FaultDBService struct{}

// NewFaultDBService creates a new fault database service
func NewFaultDBService() *FaultDBService {
	return &FaultDBService{}
}

// FaultRequest carries the user-entered fields of a fault. Times are
// local wall-clock strings in the application timezone; an empty
// EndedLocal means the fault is still ongoing.
type FaultRequest struct {
	DeviceID     uint   `json:"device_id" binding:"required"`
	Reason       string `json:"reason"`
	StartedLocal string `json:"started_local" binding:"required"`
	EndedLocal   string `json:"ended_local"`
}

// resolve validates a request and converts it into UTC instants plus a
// closure state. Nothing is written until everything checks out.
func (fs *FaultDBService) resolve(tx *gorm.DB, req *FaultRequest) (time.Time, models.Closure, *string, error) {
	var device models.Device
	if err := tx.First(&device, req.DeviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, models.Closure{}, nil, ErrDeviceNotFound
		}
		return time.Time{}, models.Closure{}, nil, err
	}

	start, err := config.ParseLocalMinute(req.StartedLocal)
	if err != nil {
		return time.Time{}, models.Closure{}, nil, ErrInvalidLocalTime
	}

	closure := models.OpenFault()
	if req.EndedLocal != "" {
		end, err := config.ParseLocalMinute(req.EndedLocal)
		if err != nil {
			return time.Time{}, models.Closure{}, nil, ErrInvalidLocalTime
		}
		if end.Before(start) {
			return time.Time{}, models.Closure{}, nil, ErrEndBeforeStart
		}
		closure = models.ClosedFault(start, end)
	}

	var reason *string
	if trimmed := strings.TrimSpace(req.Reason); trimmed != "" {
		reason = &trimmed
	}

	return start, closure, reason, nil
}

// Create records a new fault, open or closed
func (fs *FaultDBService) Create(req *FaultRequest) (*models.Fault, error) {
	var fault models.Fault

	err := db.GetDB().Transaction(func(tx *gorm.DB) error {
		start, closure, reason, err := fs.resolve(tx, req)
		if err != nil {
			return err
		}

		fault = models.Fault{
			DeviceID:  req.DeviceID,
			Reason:    reason,
			StartedAt: start,
			CreatedAt: time.Now().UTC(),
		}
		fault.SetClosure(closure)

		return tx.Create(&fault).Error
	})
	if err != nil {
		return nil, err
	}

	colors.PrintSuccess("Fault recorded: ID=%d, Device=%d, Status=%s", fault.ID, fault.DeviceID, fault.Closure().Status())
	return &fault, nil
}

// Update overwrites all mutable fields of an existing fault and
// recomputes the duration. ID and creation timestamp are untouched.
// Clearing the end time reopens the fault.
func (fs *FaultDBService) Update(id uint, req *FaultRequest) (*models.Fault, error) {
	var fault models.Fault

	err := db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&fault, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFaultNotFound
			}
			return err
		}

		start, closure, reason, err := fs.resolve(tx, req)
		if err != nil {
			return err
		}

		fault.DeviceID = req.DeviceID
		fault.Reason = reason
		fault.StartedAt = start
		fault.SetClosure(closure)

		// Select lists every mutable column so clearing the nullable
		// pair back to NULL is actually written.
		return tx.Model(&fault).
			Select("device_id", "reason", "started_at", "ended_at", "duration_minutes").
			Updates(&fault).Error
	})
	if err != nil {
		return nil, err
	}

	return &fault, nil
}

// CloseNow stamps the current UTC instant as the end of an open fault
func (fs *FaultDBService) CloseNow(id uint) (*models.Fault, error) {
	var fault models.Fault

	err := db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&fault, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFaultNotFound
			}
			return err
		}

		if !fault.IsOpen() {
			return ErrFaultAlreadyClosed
		}

		now := time.Now().UTC()
		if now.Before(fault.StartedAt) {
			// Start instant lies in the future; closing now would
			// violate start <= end.
			return ErrEndBeforeStart
		}
		fault.SetClosure(models.ClosedFault(fault.StartedAt, now))

		return tx.Model(&fault).
			Select("ended_at", "duration_minutes").
			Updates(&fault).Error
	})
	if err != nil {
		return nil, err
	}

	colors.PrintSuccess("Fault closed: ID=%d, Duration=%d min", fault.ID, *fault.DurationMin)
	return &fault, nil
}

// GetByID fetches one fault with its device for the edit screen
func (fs *FaultDBService) GetByID(id uint) (*models.Fault, error) {
	var fault models.Fault
	if err := db.GetDB().Preload("Device").First(&fault, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFaultNotFound
		}
		return nil, err
	}
	return &fault, nil
}

// ListByRange returns faults whose start instant falls within the
// inclusive local date range, newest first, with devices preloaded.
func (fs *FaultDBService) ListByRange(fromDate, toDate string) ([]models.Fault, error) {
	startUTC, endUTC, err := config.LocalDayRangeUTC(fromDate, toDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if endUTC.Before(startUTC) {
		return nil, ErrInvalidDateRange
	}

	var faults []models.Fault
	err = db.GetDB().
		Preload("Device").
		Where("started_at BETWEEN ? AND ?", startUTC, endUTC).
		Order("started_at DESC").
		Find(&faults).Error
	if err != nil {
		return nil, err
	}
	return faults, nil
}

// Count returns the number of recorded faults
func (fs *FaultDBService) Count() (int64, error) {
	var count int64
	if err := db.GetDB().Model(&models.Fault{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
