package services

import (
	"errors"
	"time"

	"lab_downtime_server/internal/db"
	"lab_downtime_server/internal/models"
	"lab_downtime_server/pkg/colors"

	"gorm.io/gorm"
)

// DeviceOrder selects the ordering of a device listing
type DeviceOrder string

const (
	// DeviceOrderNewest is the registry view: most recently created first
	DeviceOrderNewest DeviceOrder = "newest"
	// DeviceOrderName is for selection dropdowns: alphabetical
	DeviceOrderName DeviceOrder = "name"
)

// DeviceDBService handles database operations for the device registry
type DeviceDBService struct{}

// NewDeviceDBService creates a new device database service
func NewDeviceDBService() *DeviceDBService {
	return &DeviceDBService{}
}

// Register normalizes and inserts a new device name. Uniqueness is
// case-insensitive at the application layer; the unique index on name
// backstops exact duplicates under concurrent inserts.
func (ds *DeviceDBService) Register(name string) (*models.Device, error) {
	normalized := models.NormalizeDeviceName(name)
	if normalized == "" {
		return nil, ErrEmptyDeviceName
	}

	device := models.Device{
		Name:      normalized,
		CreatedAt: time.Now().UTC(),
	}

	err := db.GetDB().Transaction(func(tx *gorm.DB) error {
		var existing models.Device
		err := tx.Where("LOWER(name) = LOWER(?)", normalized).First(&existing).Error
		if err == nil {
			return ErrDuplicateDeviceName
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&device).Error
	})
	if err != nil {
		return nil, err
	}

	colors.PrintSuccess("Device registered: ID=%d, Name=%s", device.ID, device.Name)
	return &device, nil
}

// List returns all devices in the requested order
func (ds *DeviceDBService) List(order DeviceOrder) ([]models.Device, error) {
	var devices []models.Device

	query := db.GetDB().Model(&models.Device{})
	switch order {
	case DeviceOrderName:
		query = query.Order("LOWER(name) ASC")
	default:
		query = query.Order("id DESC")
	}

	if err := query.Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

// GetByID resolves a device reference
func (ds *DeviceDBService) GetByID(id uint) (*models.Device, error) {
	var device models.Device
	if err := db.GetDB().First(&device, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}
	return &device, nil
}

// Count returns the number of registered devices
func (ds *DeviceDBService) Count() (int64, error) {
	var count int64
	if err := db.GetDB().Model(&models.Device{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
