package apperrors

import "errors"

// Input errors are returned when a caller supplies a value the date
// libraries cannot interpret.
var (
	// ErrInvalidInput indicates that a date-like value could not be parsed.
	// Functions returning it also return the "Invalid date" marker.
	ErrInvalidInput = errors.New("invalid date input")

	// ErrUnknownTimeZone indicates that a zone identifier is not present in
	// the IANA timezone database.
	ErrUnknownTimeZone = errors.New("unknown timezone")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")
)

// Operation failure errors are reported by handlers when a conversion could
// not be completed.
var (
	ErrFailedToFormatDate       = errors.New("failed to format date")
	ErrFailedToBuildFilterDates = errors.New("failed to build filter dates")
)
