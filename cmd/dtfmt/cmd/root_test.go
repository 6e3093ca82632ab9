package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ndewijer/datetime-formatter/internal/apperrors"
	"github.com/ndewijer/datetime-formatter/internal/datetime"
	"github.com/ndewijer/datetime-formatter/internal/version"
)

var fixedNow = time.Date(2024, time.March, 10, 7, 8, 9, 123000000, time.UTC)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATETIME_DEFAULT_FORMAT", "")
	t.Setenv("DATETIME_LOCAL_TIMEZONE", "")

	root := newRootCmd(datetime.FixedClock(fixedNow))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "now", args: []string{"now"}, want: "2024-03-10 07:08:09"},
		{name: "now with format", args: []string{"now", "-f", "HH:mm"}, want: "07:08"},
		{name: "now in zone", args: []string{"now", "--tz", "Asia/Tokyo"}, want: "2024-03-10 16:08:09"},
		{name: "now iso", args: []string{"now", "--iso"}, want: "2024-03-10T07:08:09.123Z"},
		{name: "timestamp", args: []string{"timestamp"}, want: "1710054489123"},
		{name: "utc", args: []string{"utc", "2024-01-15 10:30:00"}, want: "2024-01-15 10:30:00"},
		{name: "iso", args: []string{"--local-tz", "America/New_York", "iso", "2024-01-15 10:30:00"}, want: "2024-01-15T15:30:00.000Z"},
		{name: "local", args: []string{"--local-tz", "Europe/Amsterdam", "local", "2024-01-15T10:30:00Z"}, want: "2024-01-15 11:30:00"},
		{name: "zone", args: []string{"zone", "2024-01-15T10:30:00Z", "--tz", "America/New_York", "-f", "HH:mm"}, want: "05:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected '%s', got '%s'", tt.want, got)
			}
		})
	}
}

func TestFilterCommand(t *testing.T) {
	got, err := run(t, "--local-tz", "America/New_York", "filter", "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(got, `"startDate": "2024-01-01T05:00:00.000Z"`) {
		t.Errorf("Expected start bound in output, got %s", got)
	}
	if !strings.Contains(got, `"endDate": "2024-02-01T04:59:59.999Z"`) {
		t.Errorf("Expected end bound in output, got %s", got)
	}
}

func TestCommandErrors(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		_, err := run(t, "utc", "not-a-date")
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown zone", func(t *testing.T) {
		_, err := run(t, "zone", "2024-01-15", "--tz", "Mars/Olympus_Mons")
		if !errors.Is(err, apperrors.ErrUnknownTimeZone) {
			t.Errorf("Expected ErrUnknownTimeZone, got %v", err)
		}
	})

	t.Run("unknown local zone", func(t *testing.T) {
		_, err := run(t, "--local-tz", "Nowhere/Special", "now")
		if !errors.Is(err, apperrors.ErrUnknownTimeZone) {
			t.Errorf("Expected ErrUnknownTimeZone, got %v", err)
		}
	})

	t.Run("zone requires --tz", func(t *testing.T) {
		if _, err := run(t, "zone", "2024-01-15"); err == nil {
			t.Error("Expected error for missing --tz")
		}
	})

	t.Run("reversed filter range", func(t *testing.T) {
		_, err := run(t, "filter", "2024-02-01", "2024-01-01")
		if !errors.Is(err, apperrors.ErrInvalidDateRange) {
			t.Errorf("Expected ErrInvalidDateRange, got %v", err)
		}
	})
}

func TestVersionCommand(t *testing.T) {
	got, err := run(t, "version")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasPrefix(got, "dtfmt v"+version.Version) {
		t.Errorf("Expected version banner, got %s", got)
	}
}
