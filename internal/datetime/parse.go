package datetime

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/relvacode/iso8601"

	"github.com/ndewijer/datetime-formatter/internal/apperrors"
)

const maxEpochMillis = 8.64e15

// toTime converts a date-like value to an instant. Strings carrying no zone
// information are read as wall-clock time in loc; numbers are epoch
// milliseconds.
func toTime(value any, loc *time.Location) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, invalidInput(value)
		}
		return *v, nil
	case string:
		return parseString(v, loc)
	case int:
		return fromMillis(float64(v), value)
	case int64:
		return fromMillis(float64(v), value)
	case float64:
		return fromMillis(v, value)
	default:
		return time.Time{}, invalidInput(value)
	}
}

// fromMillis converts epoch milliseconds, rejecting values beyond
// ±100,000,000 days from the epoch.
func fromMillis(ms float64, value any) (time.Time, error) {
	if math.IsNaN(ms) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, invalidInput(value)
	}
	return time.UnixMilli(int64(ms)), nil
}

func parseString(value string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" || isEpochLike(s) {
		return time.Time{}, invalidInput(value)
	}
	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", apperrors.ErrInvalidInput, value, err)
	}
	return t, nil
}

// ParseISOString strictly parses an ISO-8601 timestamp such as the values
// produced by FormatDateToISOString.
func ParseISOString(value string) (time.Time, error) {
	t, err := iso8601.ParseString(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", apperrors.ErrInvalidInput, value, err)
	}
	return t, nil
}

// isEpochLike reports digit-only strings that are not a YYYY year or a
// YYYYMMDD date. dateparse would read them as Unix timestamps.
func isEpochLike(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) != 4 && len(s) != 8
}

func invalidInput(value any) error {
	return fmt.Errorf("%w: %#v", apperrors.ErrInvalidInput, value)
}
