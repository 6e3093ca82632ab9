package datetime

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata" // IANA database for hosts without zoneinfo

	"github.com/ndewijer/datetime-formatter/internal/apperrors"
)

var (
	zoneCache = make(map[string]*time.Location)
	zoneMu    sync.RWMutex
)

// LoadLocation resolves an IANA zone identifier such as "America/New_York".
// Resolved zones are cached for the lifetime of the process.
func LoadLocation(tz string) (*time.Location, error) {
	if tz == "" {
		return nil, fmt.Errorf("%w: empty zone identifier", apperrors.ErrUnknownTimeZone)
	}

	zoneMu.RLock()
	loc, ok := zoneCache[tz]
	zoneMu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownTimeZone, tz)
	}

	zoneMu.Lock()
	zoneCache[tz] = loc
	zoneMu.Unlock()

	return loc, nil
}
