package service

import (
	"fmt"
	"runtime"
	"time"

	"github.com/ndewijer/datetime-formatter/internal/apperrors"
	"github.com/ndewijer/datetime-formatter/internal/datetime"
	"github.com/ndewijer/datetime-formatter/internal/version"
)

const epochISO = "1970-01-01T00:00:00.000Z"

// SystemService handles system-related operations
type SystemService struct {
	formatter *datetime.Formatter
	started   time.Time
}

// HealthStatus describes the running process.
type HealthStatus struct {
	LocalTimezone string
	DefaultFormat string
	Uptime        time.Duration
}

// VersionInfo describes the running build.
type VersionInfo struct {
	AppVersion string
	GoVersion  string
}

// NewSystemService creates a new SystemService
func NewSystemService(formatter *datetime.Formatter) *SystemService {
	return &SystemService{
		formatter: formatter,
		started:   time.Now(),
	}
}

// CheckHealth round-trips the epoch through the formatter and reports its
// configuration.
func (s *SystemService) CheckHealth() (HealthStatus, error) {
	iso, err := s.formatter.FormatDateToISOString(int64(0))
	if err != nil {
		return HealthStatus{}, err
	}
	if iso != epochISO {
		return HealthStatus{}, fmt.Errorf("%w: epoch rendered as %s", apperrors.ErrFailedToFormatDate, iso)
	}
	if t, err := datetime.ParseISOString(iso); err != nil || t.UnixMilli() != 0 {
		return HealthStatus{}, fmt.Errorf("%w: %s does not round-trip", apperrors.ErrFailedToFormatDate, iso)
	}
	return HealthStatus{
		LocalTimezone: s.formatter.Location().String(),
		DefaultFormat: s.formatter.DefaultFormat(),
		Uptime:        time.Since(s.started),
	}, nil
}

func (s *SystemService) CheckVersion() VersionInfo {
	return VersionInfo{
		AppVersion: version.Version,
		GoVersion:  runtime.Version(),
	}
}
