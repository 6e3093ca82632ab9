package service_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ndewijer/datetime-formatter/internal/api/request"
	"github.com/ndewijer/datetime-formatter/internal/apperrors"
	"github.com/ndewijer/datetime-formatter/internal/datetime"
	"github.com/ndewijer/datetime-formatter/internal/metrics"
	"github.com/ndewijer/datetime-formatter/internal/service"
	apptestutil "github.com/ndewijer/datetime-formatter/internal/testutil"
	"github.com/ndewijer/datetime-formatter/internal/validation"
)

func conversions(m *metrics.Metrics, operation, result string) float64 {
	return testutil.ToFloat64(m.ConversionsTotal.WithLabelValues(operation, result))
}

func TestDateTimeService_Now(t *testing.T) {
	t.Run("renders the current instant in UTC by default", func(t *testing.T) {
		svc, m := apptestutil.NewTestDateTimeService(t, "America/New_York")

		got, err := svc.Now(request.NowRequest{})
		if err != nil {
			t.Fatalf("Now() returned unexpected error: %v", err)
		}
		if got != "2024-03-10 07:08:09" {
			t.Errorf("Expected '2024-03-10 07:08:09', got '%s'", got)
		}
		if conversions(m, service.OpNow, metrics.ResultOK) != 1 {
			t.Error("Expected one successful conversion to be recorded")
		}
	})

	t.Run("renders the current instant in a zone", func(t *testing.T) {
		svc, _ := apptestutil.NewTestDateTimeService(t, "America/New_York")

		got, err := svc.Now(request.NowRequest{TimeZone: "Asia/Tokyo", Format: "HH:mm"})
		if err != nil {
			t.Fatalf("Now() returned unexpected error: %v", err)
		}
		if got != "16:08" {
			t.Errorf("Expected '16:08', got '%s'", got)
		}
	})

	t.Run("reports unknown zones", func(t *testing.T) {
		svc, m := apptestutil.NewTestDateTimeService(t, "UTC")

		got, err := svc.Now(request.NowRequest{TimeZone: "Mars/Olympus_Mons"})
		if !errors.Is(err, apperrors.ErrUnknownTimeZone) {
			t.Fatalf("Expected ErrUnknownTimeZone, got %v", err)
		}
		if got != datetime.InvalidDate {
			t.Errorf("Expected '%s', got '%s'", datetime.InvalidDate, got)
		}
		if conversions(m, service.OpNow, metrics.ResultUnknownZone) != 1 {
			t.Error("Expected unknown zone to be recorded")
		}
	})
}

func TestDateTimeService_CurrentInstant(t *testing.T) {
	svc, m := apptestutil.NewTestDateTimeService(t, "UTC")

	if got := svc.NowISO(); got != "2024-03-10T07:08:09.123Z" {
		t.Errorf("Expected '2024-03-10T07:08:09.123Z', got '%s'", got)
	}
	if got := svc.Timestamp(); got != apptestutil.FixedNow.UnixMilli() {
		t.Errorf("Expected %d, got %d", apptestutil.FixedNow.UnixMilli(), got)
	}
	if conversions(m, service.OpNowISO, metrics.ResultOK) != 1 {
		t.Error("Expected now_iso conversion to be recorded")
	}
	if conversions(m, service.OpTimestamp, metrics.ResultOK) != 1 {
		t.Error("Expected timestamp conversion to be recorded")
	}
}

func TestDateTimeService_Conversions(t *testing.T) {
	svc, _ := apptestutil.NewTestDateTimeService(t, "America/New_York")

	t.Run("utc reads naive input as UTC", func(t *testing.T) {
		got, err := svc.ToUTC(request.DateRequest{Date: "2024-01-15 10:30:00"})
		if err != nil {
			t.Fatalf("ToUTC() returned unexpected error: %v", err)
		}
		if got != "2024-01-15 10:30:00" {
			t.Errorf("Expected '2024-01-15 10:30:00', got '%s'", got)
		}
	})

	t.Run("iso reads naive input as local", func(t *testing.T) {
		got, err := svc.ToISO(request.DateRequest{Date: "2024-01-15 10:30:00"})
		if err != nil {
			t.Fatalf("ToISO() returned unexpected error: %v", err)
		}
		if got != "2024-01-15T15:30:00.000Z" {
			t.Errorf("Expected '2024-01-15T15:30:00.000Z', got '%s'", got)
		}
	})

	t.Run("local renders in the configured zone", func(t *testing.T) {
		got, err := svc.ToLocal(request.DateRequest{Date: "2024-01-15T15:30:00Z", Format: "HH:mm"})
		if err != nil {
			t.Fatalf("ToLocal() returned unexpected error: %v", err)
		}
		if got != "10:30" {
			t.Errorf("Expected '10:30', got '%s'", got)
		}
	})

	t.Run("zone renders in the requested zone", func(t *testing.T) {
		got, err := svc.InZone(request.ZoneRequest{Date: "2024-01-15T10:30:00Z", TimeZone: "Europe/Amsterdam"})
		if err != nil {
			t.Fatalf("InZone() returned unexpected error: %v", err)
		}
		if got != "2024-01-15 11:30:00" {
			t.Errorf("Expected '2024-01-15 11:30:00', got '%s'", got)
		}
	})
}

func TestDateTimeService_InvalidInput(t *testing.T) {
	t.Run("missing date is a validation error", func(t *testing.T) {
		svc, m := apptestutil.NewTestDateTimeService(t, "UTC")

		_, err := svc.ToUTC(request.DateRequest{})
		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
		if conversions(m, service.OpUTC, metrics.ResultInvalidInput) != 1 {
			t.Error("Expected validation failure to be recorded as invalid input")
		}
	})

	t.Run("unparseable date yields the marker", func(t *testing.T) {
		svc, m := apptestutil.NewTestDateTimeService(t, "UTC")

		got, err := svc.ToISO(request.DateRequest{Date: "not-a-date"})
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("Expected ErrInvalidInput, got %v", err)
		}
		if got != datetime.InvalidDate {
			t.Errorf("Expected '%s', got '%s'", datetime.InvalidDate, got)
		}
		if conversions(m, service.OpISO, metrics.ResultInvalidInput) != 1 {
			t.Error("Expected invalid input to be recorded")
		}
	})

	t.Run("zone request requires tz", func(t *testing.T) {
		svc, m := apptestutil.NewTestDateTimeService(t, "UTC")

		_, err := svc.InZone(request.ZoneRequest{Date: "2024-01-15"})
		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
		if conversions(m, service.OpZone, metrics.ResultInvalidInput) != 1 {
			t.Error("Expected missing tz to be recorded as invalid input")
		}
	})
}

func TestDateTimeService_FilterDates(t *testing.T) {
	t.Run("covers both days in the local zone", func(t *testing.T) {
		svc, m := apptestutil.NewTestDateTimeService(t, "America/New_York")

		dates, err := svc.FilterDates(request.FilterDatesRequest{StartDate: "2024-01-01", EndDate: "2024-01-31"})
		if err != nil {
			t.Fatalf("FilterDates() returned unexpected error: %v", err)
		}
		if dates.StartDate != "2024-01-01T05:00:00.000Z" {
			t.Errorf("Expected start '2024-01-01T05:00:00.000Z', got '%s'", dates.StartDate)
		}
		if dates.EndDate != "2024-02-01T04:59:59.999Z" {
			t.Errorf("Expected end '2024-02-01T04:59:59.999Z', got '%s'", dates.EndDate)
		}
		if conversions(m, service.OpFilter, metrics.ResultOK) != 1 {
			t.Error("Expected filter conversion to be recorded")
		}
	})

	t.Run("rejects reversed ranges", func(t *testing.T) {
		svc, m := apptestutil.NewTestDateTimeService(t, "UTC")

		_, err := svc.FilterDates(request.FilterDatesRequest{StartDate: "2024-02-01", EndDate: "2024-01-01"})
		if !errors.Is(err, apperrors.ErrInvalidDateRange) {
			t.Fatalf("Expected ErrInvalidDateRange, got %v", err)
		}
		if conversions(m, service.OpFilter, metrics.ResultInvalidInput) != 1 {
			t.Error("Expected reversed range to be recorded as invalid input")
		}
	})

	t.Run("rejects malformed and missing days", func(t *testing.T) {
		svc, m := apptestutil.NewTestDateTimeService(t, "UTC")

		_, err := svc.FilterDates(request.FilterDatesRequest{StartDate: "yesterday", EndDate: "2024-01-01"})
		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
		if _, err := svc.FilterDates(request.FilterDatesRequest{}); !errors.As(err, &vErr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
		if conversions(m, service.OpFilter, metrics.ResultInvalidInput) != 2 {
			t.Error("Expected both rejected ranges to be recorded as invalid input")
		}
	})
}
