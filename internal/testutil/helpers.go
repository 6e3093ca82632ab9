package testutil

import (
	"testing"
	"time"

	"github.com/ndewijer/datetime-formatter/internal/datetime"
	"github.com/ndewijer/datetime-formatter/internal/metrics"
	"github.com/ndewijer/datetime-formatter/internal/service"
)

// FixedNow is the instant reported by formatters built in tests.
var FixedNow = time.Date(2024, time.March, 10, 7, 8, 9, 123456789, time.UTC)

// LoadLocation resolves tz or fails the test.
func LoadLocation(t *testing.T, tz string) *time.Location {
	t.Helper()

	loc, err := datetime.LoadLocation(tz)
	if err != nil {
		t.Fatalf("Failed to load location %s: %v", tz, err)
	}
	return loc
}

// NewTestFormatter builds a formatter with a fixed clock whose local zone
// is tz.
func NewTestFormatter(t *testing.T, tz string) *datetime.Formatter {
	t.Helper()

	return datetime.New(
		datetime.WithClock(datetime.FixedClock(FixedNow)),
		datetime.WithLocation(LoadLocation(t, tz)),
	)
}

func NewTestDateTimeService(t *testing.T, tz string) (*service.DateTimeService, *metrics.Metrics) {
	t.Helper()

	m := metrics.NewMetrics()
	return service.NewDateTimeService(NewTestFormatter(t, tz), m), m
}

func NewTestSystemService(t *testing.T, tz string) *service.SystemService {
	t.Helper()

	return service.NewSystemService(NewTestFormatter(t, tz))
}
