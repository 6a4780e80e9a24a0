package timezone

import "time"

const DefaultTimezone = "UTC"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// Clock is the application's notion of "now" in its configured zone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(tz string) Clock {
	return Clock{loc: Location(tz), now: time.Now}
}

// Fixed returns a clock frozen at t, in t's location.
func Fixed(t time.Time) Clock {
	return Clock{loc: t.Location(), now: func() time.Time { return t }}
}

func (c Clock) Now() time.Time {
	if c.now == nil {
		return time.Now().In(c.Location())
	}
	return c.now().In(c.Location())
}

func (c Clock) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// ParseDate parses a YYYY-MM-DD calendar date in the clock's zone.
func (c Clock) ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, c.Location())
}
