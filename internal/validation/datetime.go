package validation

import (
	"fmt"
	"time"

	"github.com/ndewijer/datetime-formatter/internal/api/request"
	"github.com/ndewijer/datetime-formatter/internal/apperrors"
)

const calendarDateLayout = "2006-01-02"

func ValidateDateRequest(req request.DateRequest) error {
	errors := make(map[string]string)

	required(errors, request.ParamDate, req.Date)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateZoneRequest(req request.ZoneRequest) error {
	errors := make(map[string]string)

	required(errors, request.ParamDate, req.Date)
	required(errors, request.ParamTimeZone, req.TimeZone)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateFilterDates checks that both bounds are YYYY-MM-DD calendar days
// and that the range is not reversed.
func ValidateFilterDates(req request.FilterDatesRequest) error {
	errors := make(map[string]string)

	required(errors, request.ParamStartDate, req.StartDate)
	required(errors, request.ParamEndDate, req.EndDate)
	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	start, err := time.Parse(calendarDateLayout, req.StartDate)
	if err != nil {
		errors[request.ParamStartDate] = "start_date must be YYYY-MM-DD"
	}
	end, err := time.Parse(calendarDateLayout, req.EndDate)
	if err != nil {
		errors[request.ParamEndDate] = "end_date must be YYYY-MM-DD"
	}
	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	if end.Before(start) {
		return fmt.Errorf("%w: %s is before %s", apperrors.ErrInvalidDateRange, req.EndDate, req.StartDate)
	}
	return nil
}
