package config

import (
	"testing"
	"time"
)

func initIstanbul(t *testing.T) {
	t.Helper()
	t.Setenv("APP_TIMEZONE", "Europe/Istanbul")
	if err := InitializeTimezone(); err != nil {
		t.Fatalf("InitializeTimezone() failed: %v", err)
	}
}

func TestParseLocalMinuteRoundTrip(t *testing.T) {
	initIstanbul(t)

	start, err := ParseLocalMinute("2024-03-10 09:00")
	if err != nil {
		t.Fatalf("ParseLocalMinute() failed: %v", err)
	}
	end, err := ParseLocalMinute("2024-03-10 09:45")
	if err != nil {
		t.Fatalf("ParseLocalMinute() failed: %v", err)
	}

	if elapsed := end.Sub(start); elapsed != 45*time.Minute {
		t.Errorf("elapsed = %v, want 45m", elapsed)
	}

	// Istanbul is UTC+3; stored instants must be UTC
	if start.Hour() != 6 || start.Location() != time.UTC {
		t.Errorf("stored start = %v, want 06:00 UTC", start)
	}

	// Re-displaying in the same zone yields the identical local strings
	if got := FormatLocalMinute(start); got != "2024-03-10 09:00" {
		t.Errorf("FormatLocalMinute(start) = %q, want %q", got, "2024-03-10 09:00")
	}
	if got := FormatLocalMinute(end); got != "2024-03-10 09:45" {
		t.Errorf("FormatLocalMinute(end) = %q, want %q", got, "2024-03-10 09:45")
	}
}

func TestParseLocalMinuteRejectsGarbage(t *testing.T) {
	initIstanbul(t)

	for _, input := range []string{"", "10/03/2024 09:00", "2024-03-10", "2024-03-10T09:00"} {
		if _, err := ParseLocalMinute(input); err == nil {
			t.Errorf("ParseLocalMinute(%q) should fail", input)
		}
	}
}

func TestLocalDayRangeUTC(t *testing.T) {
	initIstanbul(t)

	start, end, err := LocalDayRangeUTC("2024-03-10", "2024-03-12")
	if err != nil {
		t.Fatalf("LocalDayRangeUTC() failed: %v", err)
	}

	// 2024-03-10 00:00 Istanbul is 2024-03-09 21:00 UTC
	wantStart := time.Date(2024, 3, 9, 21, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}

	// The span must cover the whole last local day
	lastIn, _ := ParseLocalMinute("2024-03-12 23:59")
	if lastIn.After(end) {
		t.Errorf("end = %v excludes the last minute of the range (%v)", end, lastIn)
	}
	firstOut, _ := ParseLocalMinute("2024-03-13 00:00")
	if !firstOut.After(end) {
		t.Errorf("end = %v includes the following day", end)
	}
}

func TestLocalDayRangeUTCRejectsBadDates(t *testing.T) {
	initIstanbul(t)

	if _, _, err := LocalDayRangeUTC("10.03.2024", "2024-03-12"); err == nil {
		t.Error("LocalDayRangeUTC should reject malformed from date")
	}
	if _, _, err := LocalDayRangeUTC("2024-03-10", "tomorrow"); err == nil {
		t.Error("LocalDayRangeUTC should reject malformed to date")
	}
}

func TestInitializeTimezoneFallsBackOnBogusZone(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Mars/Olympus_Mons")
	if err := InitializeTimezone(); err != nil {
		t.Fatalf("InitializeTimezone() failed: %v", err)
	}
	if got := GetTimezoneString(); got != "Europe/Istanbul" {
		t.Errorf("timezone = %q, want fallback Europe/Istanbul", got)
	}
}

func TestCurrentMonthRange(t *testing.T) {
	initIstanbul(t)

	from, to := CurrentMonthRange()
	fromDate, err := ParseLocalDate(from)
	if err != nil {
		t.Fatalf("from %q is not a valid date: %v", from, err)
	}
	if fromDate.Day() != 1 {
		t.Errorf("from = %q, want first day of month", from)
	}
	toDate, err := ParseLocalDate(to)
	if err != nil {
		t.Fatalf("to %q is not a valid date: %v", to, err)
	}
	if toDate.Before(fromDate) {
		t.Errorf("to %q precedes from %q", to, from)
	}
}
