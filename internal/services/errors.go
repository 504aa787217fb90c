package services

import "errors"

// Validation and state errors surfaced to controllers. Anything not in
// this list is treated as an operational (database) error.
var (
	ErrEmptyDeviceName     = errors.New("device name is empty")
	ErrDuplicateDeviceName = errors.New("device name already registered")
	ErrDeviceNotFound      = errors.New("device not found")
	ErrFaultNotFound       = errors.New("fault not found")
	ErrInvalidLocalTime    = errors.New("invalid local date/time")
	ErrEndBeforeStart      = errors.New("fault end is before its start")
	ErrFaultAlreadyClosed  = errors.New("fault is already closed")
	ErrInvalidDateRange    = errors.New("invalid date range")
)
