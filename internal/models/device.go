package models

import (
	"strings"
	"time"
)

// Device represents a piece of lab equipment that faults are recorded
// against. Devices are create-only: no update or delete in this design.
type Device struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"size:200;uniqueIndex;not null" validate:"required,max=200"`
	CreatedAt time.Time `json:"created_at"`

	// No UpdatedAt/DeletedAt: the registry never mutates a device.
}

// TableName specifies the table name for Device model
func (Device) TableName() string {
	return "devices"
}

// NormalizeDeviceName trims the name and collapses internal whitespace
// runs to single spaces. An empty result means the input was blank.
func NormalizeDeviceName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
