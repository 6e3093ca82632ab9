// Package datetime provides UTC conversion, ISO-8601 serialization,
// timezone-aware rendering and filter range construction over date-like
// values. Patterns use moment-style tokens (YYYY-MM-DD HH:mm:ss).
//
// Parsing is delegated to github.com/araddon/dateparse, pattern rendering to
// github.com/vjeantet/jodaTime and strict ISO parsing to
// github.com/relvacode/iso8601.
package datetime

import (
	"errors"
	"time"
)

// DefaultFormat is used whenever a caller passes an empty format.
const DefaultFormat = "YYYY-MM-DD HH:mm:ss"

// InvalidDate is returned in place of a formatted value when the input
// could not be parsed or the requested zone is unknown.
const InvalidDate = "Invalid date"

// isoLayout renders an instant the way JavaScript's toISOString does.
const isoLayout = "2006-01-02T15:04:05.000Z"

// FilterDates holds the ISO-8601 bounds of a calendar-day filter range.
type FilterDates struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Formatter converts and renders date-like values. A Formatter has no
// mutable state and is safe for concurrent use.
type Formatter struct {
	now           func() time.Time
	local         *time.Location
	defaultFormat string
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithClock replaces time.Now as the source of the current instant.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		if now != nil {
			f.now = now
		}
	}
}

// WithLocation sets the zone used for "local" parsing and rendering.
// The host zone (time.Local) is used when no location is configured.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.local = loc
		}
	}
}

// WithDefaultFormat replaces DefaultFormat for calls that omit a format.
func WithDefaultFormat(format string) Option {
	return func(f *Formatter) {
		if format != "" {
			f.defaultFormat = format
		}
	}
}

// New creates a Formatter.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		now:           time.Now,
		local:         time.Local,
		defaultFormat: DefaultFormat,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Location returns the zone treated as local time.
func (f *Formatter) Location() *time.Location {
	return f.local
}

// DefaultFormat returns the pattern applied when a caller omits one.
func (f *Formatter) DefaultFormat() string {
	return f.defaultFormat
}

func (f *Formatter) pattern(format string) string {
	if format == "" {
		return f.defaultFormat
	}
	return format
}

// CurrentDateTime returns the current UTC instant rendered with format.
func (f *Formatter) CurrentDateTime(format string) string {
	return FormatPattern(f.now().UTC(), f.pattern(format))
}

// FormatDateToUTC interprets date in UTC and renders it with format.
// Strings without zone information are read as UTC wall-clock time.
func (f *Formatter) FormatDateToUTC(date any, format string) (string, error) {
	t, err := toTime(date, time.UTC)
	if err != nil {
		return InvalidDate, err
	}
	return FormatPattern(t.UTC(), f.pattern(format)), nil
}

// FormatDateToISOString interprets date in the local zone and returns the
// instant as an ISO-8601 UTC string, e.g. 2024-01-01T00:00:00.000Z.
func (f *Formatter) FormatDateToISOString(date any) (string, error) {
	t, err := toTime(date, f.local)
	if err != nil {
		return InvalidDate, err
	}
	return isoString(t), nil
}

// FormatDateToLocalTime interprets date in the local zone and renders it in
// that zone with format.
func (f *Formatter) FormatDateToLocalTime(date any, format string) (string, error) {
	t, err := toTime(date, f.local)
	if err != nil {
		return InvalidDate, err
	}
	return FormatPattern(t.In(f.local), f.pattern(format)), nil
}

// FormatFilterDates expands two YYYY-MM-DD calendar dates into an ISO-8601
// range covering both days completely in the local zone: startDate from
// 00:00:00.000 and endDate through 23:59:59.999.
//
// A bound that cannot be parsed is reported as InvalidDate; the returned
// error joins the failures of both bounds.
func (f *Formatter) FormatFilterDates(startDate, endDate string) (FilterDates, error) {
	start, startErr := f.dayBound(startDate, "00:00:00")
	end, endErr := f.dayBound(endDate, "23:59:59.999")
	return FilterDates{StartDate: start, EndDate: end}, errors.Join(startErr, endErr)
}

func (f *Formatter) dayBound(day, clock string) (string, error) {
	if day == "" {
		return InvalidDate, invalidInput(day)
	}
	return f.FormatDateToISOString(day + " " + clock)
}

// CurrentDateTimeISOString returns the current instant as ISO-8601 UTC.
func (f *Formatter) CurrentDateTimeISOString() string {
	return isoString(f.now())
}

// UTCTimestamp returns the current instant in epoch milliseconds.
func (f *Formatter) UTCTimestamp() int64 {
	return f.now().UnixMilli()
}

// CurrentDateTimeInZone renders the current instant in the IANA zone tz.
func (f *Formatter) CurrentDateTimeInZone(tz, format string) (string, error) {
	loc, err := LoadLocation(tz)
	if err != nil {
		return InvalidDate, err
	}
	return FormatPattern(f.now().In(loc), f.pattern(format)), nil
}

// DateTimeInZone interprets date in the local zone and renders it in the
// IANA zone tz.
func (f *Formatter) DateTimeInZone(date any, tz, format string) (string, error) {
	t, err := toTime(date, f.local)
	if err != nil {
		return InvalidDate, err
	}
	loc, err := LoadLocation(tz)
	if err != nil {
		return InvalidDate, err
	}
	return FormatPattern(t.In(loc), f.pattern(format)), nil
}

func isoString(t time.Time) string {
	return t.UTC().Format(isoLayout)
}
