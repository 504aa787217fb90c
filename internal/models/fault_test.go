package models

import (
	"testing"
	"time"
)

func TestDurationMinutes(t *testing.T) {
	base := time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int64
	}{
		{"zero elapsed", base, 0},
		{"under one minute floors to zero", base.Add(59 * time.Second), 0},
		{"exactly one minute", base.Add(time.Minute), 1},
		{"partial minute floors", base.Add(45*time.Minute + 59*time.Second), 45},
		{"full day", base.Add(24 * time.Hour), 1440},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DurationMinutes(base, tt.end); got != tt.want {
				t.Errorf("DurationMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDurationMinutesClampsNegative(t *testing.T) {
	base := time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC)
	if got := DurationMinutes(base, base.Add(-time.Hour)); got != 0 {
		t.Errorf("DurationMinutes() = %d, want 0 for reversed inputs", got)
	}
}

func TestClosureOpen(t *testing.T) {
	c := OpenFault()
	if c.IsClosed() {
		t.Fatal("OpenFault() should not be closed")
	}
	if _, ok := c.End(); ok {
		t.Error("open closure should have no end")
	}
	if _, ok := c.DurationMin(); ok {
		t.Error("open closure should have no duration")
	}
	if c.Status() != FaultStatusOpen {
		t.Errorf("Status() = %q, want %q", c.Status(), FaultStatusOpen)
	}
}

func TestClosureClosed(t *testing.T) {
	start := time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)

	c := ClosedFault(start, end)
	if !c.IsClosed() {
		t.Fatal("ClosedFault() should be closed")
	}
	gotEnd, ok := c.End()
	if !ok || !gotEnd.Equal(end) {
		t.Errorf("End() = %v, want %v", gotEnd, end)
	}
	minutes, ok := c.DurationMin()
	if !ok || minutes != 45 {
		t.Errorf("DurationMin() = %d, want 45", minutes)
	}
	if c.Status() != FaultStatusClosed {
		t.Errorf("Status() = %q, want %q", c.Status(), FaultStatusClosed)
	}
}

func TestFaultSetClosureRoundTrip(t *testing.T) {
	start := time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	fault := Fault{StartedAt: start}
	fault.SetClosure(ClosedFault(start, end))

	if fault.EndedAt == nil || fault.DurationMin == nil {
		t.Fatal("closed fault must have both ended_at and duration_min set")
	}
	if *fault.DurationMin != 90 {
		t.Errorf("duration_min = %d, want 90", *fault.DurationMin)
	}

	fault.SetClosure(OpenFault())
	if fault.EndedAt != nil || fault.DurationMin != nil {
		t.Error("reopening must clear both ended_at and duration_min")
	}
	if !fault.IsOpen() {
		t.Error("fault should be open after clearing closure")
	}
}

func TestFaultClosureRepairsMissingDuration(t *testing.T) {
	start := time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	// Row with an end instant but no stored duration
	fault := Fault{StartedAt: start, EndedAt: &end}

	c := fault.Closure()
	minutes, ok := c.DurationMin()
	if !ok || minutes != 30 {
		t.Errorf("DurationMin() = %d, want 30 re-derived from timestamps", minutes)
	}
}
