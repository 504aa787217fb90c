package models

import (
	"math"
	"time"
)

// Fault status labels used in list projections and exports
const (
	FaultStatusOpen   = "open"
	FaultStatusClosed = "closed"
)

// Fault represents one equipment downtime record. EndedAt and
// DurationMin are NULL together while the fault is still ongoing.
type Fault struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	DeviceID    uint       `json:"device_id" gorm:"not null;index" validate:"required"`
	Device      Device     `json:"device,omitempty" gorm:"foreignKey:DeviceID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Reason      *string    `json:"reason" gorm:"type:text"`
	StartedAt   time.Time  `json:"started_at" gorm:"not null;index"`
	EndedAt     *time.Time `json:"ended_at"`
	DurationMin *int64     `json:"duration_min" gorm:"column:duration_minutes"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TableName specifies the table name for Fault model
func (Fault) TableName() string {
	return "faults"
}

// DurationMinutes returns whole elapsed minutes between two UTC instants,
// floored, clamped to zero. Callers must reject end < start before
// calling; the clamp is not a substitute for that validation.
func DurationMinutes(start, end time.Time) int64 {
	minutes := int64(math.Floor(end.Sub(start).Seconds() / 60))
	if minutes < 0 {
		minutes = 0
	}
	return minutes
}

// Closure is the tagged open/closed state of a fault. Using one value
// instead of two independently nullable columns makes a half-set
// ended_at/duration_min pair unrepresentable in domain code.
type Closure struct {
	end         *time.Time
	durationMin *int64
}

// OpenFault returns the closure state of an ongoing fault
func OpenFault() Closure {
	return Closure{}
}

// ClosedFault returns the closure state of a finished fault, deriving
// the duration from the start instant.
func ClosedFault(start, end time.Time) Closure {
	end = end.UTC()
	minutes := DurationMinutes(start, end)
	return Closure{end: &end, durationMin: &minutes}
}

// IsClosed reports whether the fault has ended
func (c Closure) IsClosed() bool {
	return c.end != nil
}

// End returns the end instant when the fault is closed
func (c Closure) End() (time.Time, bool) {
	if c.end == nil {
		return time.Time{}, false
	}
	return *c.end, true
}

// DurationMin returns the derived duration when the fault is closed
func (c Closure) DurationMin() (int64, bool) {
	if c.durationMin == nil {
		return 0, false
	}
	return *c.durationMin, true
}

// Status returns the open/closed label for projections
func (c Closure) Status() string {
	if c.IsClosed() {
		return FaultStatusClosed
	}
	return FaultStatusOpen
}

// Closure materializes the row's nullable pair back into a tagged value.
// A row with an end instant but a missing duration is repaired here by
// re-deriving the duration from the timestamps.
func (f *Fault) Closure() Closure {
	if f.EndedAt == nil {
		return OpenFault()
	}
	return ClosedFault(f.StartedAt, *f.EndedAt)
}

// SetClosure writes a closure state back onto the row's column pair
func (f *Fault) SetClosure(c Closure) {
	if end, ok := c.End(); ok {
		minutes, _ := c.DurationMin()
		f.EndedAt = &end
		f.DurationMin = &minutes
		return
	}
	f.EndedAt = nil
	f.DurationMin = nil
}

// IsOpen reports whether the fault is still ongoing
func (f *Fault) IsOpen() bool {
	return f.EndedAt == nil
}
