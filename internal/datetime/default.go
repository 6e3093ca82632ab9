package datetime

import (
	"sync"
	"time"
)

var (
	defaultOnce      sync.Once
	defaultFormatter *Formatter
)

// Default returns the process-wide Formatter using the host clock and the
// host local zone.
func Default() *Formatter {
	defaultOnce.Do(func() {
		defaultFormatter = New()
	})
	return defaultFormatter
}

// CurrentDateTime calls Default().CurrentDateTime.
func CurrentDateTime(format string) string {
	return Default().CurrentDateTime(format)
}

// FormatDateToUTC calls Default().FormatDateToUTC.
func FormatDateToUTC(date any, format string) (string, error) {
	return Default().FormatDateToUTC(date, format)
}

// FormatDateToISOString calls Default().FormatDateToISOString.
func FormatDateToISOString(date any) (string, error) {
	return Default().FormatDateToISOString(date)
}

// FormatDateToLocalTime calls Default().FormatDateToLocalTime.
func FormatDateToLocalTime(date any, format string) (string, error) {
	return Default().FormatDateToLocalTime(date, format)
}

// FormatFilterDates calls Default().FormatFilterDates.
func FormatFilterDates(startDate, endDate string) (FilterDates, error) {
	return Default().FormatFilterDates(startDate, endDate)
}

// CurrentDateTimeISOString calls Default().CurrentDateTimeISOString.
func CurrentDateTimeISOString() string {
	return Default().CurrentDateTimeISOString()
}

// UTCTimestamp calls Default().UTCTimestamp.
func UTCTimestamp() int64 {
	return Default().UTCTimestamp()
}

// CurrentDateTimeInZone calls Default().CurrentDateTimeInZone.
func CurrentDateTimeInZone(tz, format string) (string, error) {
	return Default().CurrentDateTimeInZone(tz, format)
}

// DateTimeInZone calls Default().DateTimeInZone.
func DateTimeInZone(date any, tz, format string) (string, error) {
	return Default().DateTimeInZone(date, tz, format)
}

// FixedClock returns a clock that always reports t. Intended for WithClock.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
