package config

import (
	"time"
)

// LocalMinuteLayout is the wall-clock layout users type and see.
// Seconds are intentionally absent; downtime is tracked to the minute.
const LocalMinuteLayout = "2006-01-02 15:04"

// LocalDateLayout is the layout for date-only filter inputs.
const LocalDateLayout = "2006-01-02"

// TimezoneConfig holds timezone configuration
type TimezoneConfig struct {
	Location *time.Location
}

var (
	// Default timezone for the lab (Istanbul)
	IstanbulLocation *time.Location
	// Global timezone configuration
	AppTimezone *TimezoneConfig
)

// InitializeTimezone sets up the application timezone. All user-entered
// times are interpreted in this zone; storage is always UTC.
func InitializeTimezone() error {
	// Try to get timezone from environment variable, default to Istanbul
	tzName := getEnv("APP_TIMEZONE", "Europe/Istanbul")

	location, err := time.LoadLocation(tzName)
	if err != nil {
		// Fallback to Istanbul if the specified timezone is invalid
		location, err = time.LoadLocation("Europe/Istanbul")
		if err != nil {
			return err
		}
	}

	IstanbulLocation = location
	AppTimezone = &TimezoneConfig{Location: location}

	return nil
}

// GetLocation returns the configured application timezone
func GetLocation() *time.Location {
	if AppTimezone != nil && AppTimezone.Location != nil {
		return AppTimezone.Location
	}
	return IstanbulLocation
}

// GetCurrentTime returns current time in the application timezone
func GetCurrentTime() time.Time {
	return time.Now().In(GetLocation())
}

// ParseLocalMinute parses a "YYYY-MM-DD HH:MM" string entered in the
// application timezone and returns the corresponding UTC instant.
func ParseLocalMinute(value string) (time.Time, error) {
	t, err := time.ParseInLocation(LocalMinuteLayout, value, GetLocation())
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FormatLocalMinute formats a stored UTC instant back into the
// application timezone for display.
func FormatLocalMinute(t time.Time) string {
	return t.In(GetLocation()).Format(LocalMinuteLayout)
}

// ParseLocalDate parses a "YYYY-MM-DD" string in the application timezone
func ParseLocalDate(value string) (time.Time, error) {
	return time.ParseInLocation(LocalDateLayout, value, GetLocation())
}

// LocalDayRangeUTC expands an inclusive local date range into the UTC span
// covering the full local days: [from 00:00:00, to 23:59:59.999999].
func LocalDayRangeUTC(fromDate, toDate string) (time.Time, time.Time, error) {
	from, err := ParseLocalDate(fromDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := ParseLocalDate(toDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	loc := GetLocation()
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999999000, loc)

	return start.UTC(), end.UTC(), nil
}

// CurrentMonthRange returns the default filter range: the first day of the
// current local month through today, as local date strings.
func CurrentMonthRange() (string, string) {
	now := GetCurrentTime()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, GetLocation())
	return first.Format(LocalDateLayout), now.Format(LocalDateLayout)
}

// GetTimezoneString returns the timezone string
func GetTimezoneString() string {
	return GetLocation().String()
}
