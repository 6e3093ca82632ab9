package service

import (
	"errors"
	"fmt"

	"github.com/ndewijer/datetime-formatter/internal/api/request"
	"github.com/ndewijer/datetime-formatter/internal/apperrors"
	"github.com/ndewijer/datetime-formatter/internal/datetime"
	"github.com/ndewijer/datetime-formatter/internal/metrics"
	"github.com/ndewijer/datetime-formatter/internal/validation"
)

// Operation names used as the "operation" metrics label.
const (
	OpNow       = "now"
	OpNowISO    = "now_iso"
	OpTimestamp = "timestamp"
	OpUTC       = "utc"
	OpISO       = "iso"
	OpLocal     = "local"
	OpZone      = "zone"
	OpFilter    = "filter"
)

// DateTimeService handles date conversion requests
type DateTimeService struct {
	formatter *datetime.Formatter
	metrics   *metrics.Metrics
}

// NewDateTimeService creates a new DateTimeService. m may be nil.
func NewDateTimeService(formatter *datetime.Formatter, m *metrics.Metrics) *DateTimeService {
	return &DateTimeService{
		formatter: formatter,
		metrics:   m,
	}
}

// Formatter returns the formatter backing the service.
func (s *DateTimeService) Formatter() *datetime.Formatter {
	return s.formatter
}

// Now renders the current instant in UTC, or in req.TimeZone when set.
func (s *DateTimeService) Now(req request.NowRequest) (string, error) {
	if req.TimeZone == "" {
		s.record(OpNow, nil)
		return s.formatter.CurrentDateTime(req.Format), nil
	}
	result, err := s.formatter.CurrentDateTimeInZone(req.TimeZone, req.Format)
	s.record(OpNow, err)
	return result, err
}

func (s *DateTimeService) NowISO() string {
	s.record(OpNowISO, nil)
	return s.formatter.CurrentDateTimeISOString()
}

func (s *DateTimeService) Timestamp() int64 {
	s.record(OpTimestamp, nil)
	return s.formatter.UTCTimestamp()
}

// ToUTC renders req.Date as UTC.
func (s *DateTimeService) ToUTC(req request.DateRequest) (string, error) {
	if err := validation.ValidateDateRequest(req); err != nil {
		s.record(OpUTC, err)
		return "", err
	}
	result, err := s.formatter.FormatDateToUTC(req.Date, req.Format)
	s.record(OpUTC, err)
	return result, err
}

// ToISO returns req.Date as an ISO-8601 UTC string. Format is ignored.
func (s *DateTimeService) ToISO(req request.DateRequest) (string, error) {
	if err := validation.ValidateDateRequest(req); err != nil {
		s.record(OpISO, err)
		return "", err
	}
	result, err := s.formatter.FormatDateToISOString(req.Date)
	s.record(OpISO, err)
	return result, err
}

// ToLocal renders req.Date in the configured local zone.
func (s *DateTimeService) ToLocal(req request.DateRequest) (string, error) {
	if err := validation.ValidateDateRequest(req); err != nil {
		s.record(OpLocal, err)
		return "", err
	}
	result, err := s.formatter.FormatDateToLocalTime(req.Date, req.Format)
	s.record(OpLocal, err)
	return result, err
}

// InZone renders req.Date in req.TimeZone.
func (s *DateTimeService) InZone(req request.ZoneRequest) (string, error) {
	if err := validation.ValidateZoneRequest(req); err != nil {
		s.record(OpZone, err)
		return "", err
	}
	result, err := s.formatter.DateTimeInZone(req.Date, req.TimeZone, req.Format)
	s.record(OpZone, err)
	return result, err
}

// FilterDates builds the ISO-8601 range covering both calendar days.
// Reversed ranges are rejected with apperrors.ErrInvalidDateRange.
func (s *DateTimeService) FilterDates(req request.FilterDatesRequest) (datetime.FilterDates, error) {
	if err := validation.ValidateFilterDates(req); err != nil {
		s.record(OpFilter, err)
		return datetime.FilterDates{}, err
	}
	dates, err := s.formatter.FormatFilterDates(req.StartDate, req.EndDate)
	if err != nil {
		s.record(OpFilter, err)
		return dates, fmt.Errorf("%w: %w", apperrors.ErrFailedToBuildFilterDates, err)
	}
	s.record(OpFilter, nil)
	return dates, nil
}

func (s *DateTimeService) record(operation string, err error) {
	s.metrics.RecordConversion(operation, resultLabel(err))
}

// resultLabel classifies err. Rejected requests count as invalid input
// whether validation or the parser caught them.
func resultLabel(err error) string {
	var vErr *validation.Error
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.As(err, &vErr):
		return metrics.ResultInvalidInput
	case errors.Is(err, apperrors.ErrUnknownTimeZone):
		return metrics.ResultUnknownZone
	case errors.Is(err, apperrors.ErrInvalidInput), errors.Is(err, apperrors.ErrInvalidDateRange):
		return metrics.ResultInvalidInput
	default:
		return metrics.ResultError
	}
}
