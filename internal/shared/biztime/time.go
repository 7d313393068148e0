// Package biztime holds the business-timezone used for date arithmetic.
// Storage and transport stay in UTC; the business timezone only decides
// calendar boundaries (year suffix of request numbers, day elapsed
// counts shown to dispatchers).
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone matches the dispatch service's operating region.
const DefaultTimezone = "Europe/Moscow"

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init loads the business timezone. Call once at startup; empty tz
// falls back to DefaultTimezone.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone, auto-initializing with the
// default when Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Now returns the current time in the business timezone.
func Now() time.Time {
	return time.Now().In(Location())
}

// CurrentYear returns the calendar year in the business timezone.
// Request numbers carry its last two digits as a suffix.
func CurrentYear() int {
	return Now().Year()
}

// ToBizTimezone converts a stored UTC time for display.
func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}
