package availability

import (
	"fmt"
	"strings"
	"time"
)

type Day string

const (
	Monday    Day = "Mon"
	Tuesday   Day = "Tue"
	Wednesday Day = "Wed"
	Thursday  Day = "Thu"
	Friday    Day = "Fri"
	Saturday  Day = "Sat"
	Sunday    Day = "Sun"
)

var days = []Day{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// ParseDay accepts "mon", "Monday", "MON" and so on.
func ParseDay(s string) (Day, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for _, d := range days {
		if in == strings.ToLower(string(d)) || in == strings.ToLower(longNames[d]) {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid day %q", s)
}

var longNames = map[Day]string{
	Sunday:    "Sunday",
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

func DayOf(t time.Time) Day {
	return days[t.Weekday()]
}

// WeekOrder lists days Monday first, the order slots are presented in.
var WeekOrder = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Index is the position of d in WeekOrder, or -1.
func (d Day) Index() int {
	for i, w := range WeekOrder {
		if w == d {
			return i
		}
	}
	return -1
}

// Clock is minutes since midnight.
type Clock int

// EndOfDay is "24:00". It may only close a window.
const EndOfDay Clock = 24 * 60

// ParseClock parses a 24-hour "HH:MM" string, plus "24:00".
func ParseClock(s string) (Clock, error) {
	if s == "24:00" {
		return EndOfDay, nil
	}
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Window is a half-open [Start, End) range within one day.
type Window struct {
	Start Clock
	End   Clock
}

func ParseWindow(start, end string) (Window, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Window{}, err
	}
	if s == EndOfDay {
		return Window{}, fmt.Errorf("invalid start %q, 24:00 only ends a window", start)
	}
	e, err := ParseClock(end)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: s, End: e}, nil
}

func (w Window) Valid() bool {
	return w.Start < w.End
}

func (w Window) Overlaps(o Window) bool {
	return w.Start < o.End && o.Start < w.End
}

func (w Window) Contains(o Window) bool {
	return w.Start <= o.Start && o.End <= w.End
}

// On returns the absolute instants of w on the calendar day of date.
func (w Window) On(date time.Time, loc *time.Location) (time.Time, time.Time) {
	at := func(c Clock) time.Time {
		return time.Date(date.Year(), date.Month(), date.Day(), int(c)/60, int(c)%60, 0, 0, loc)
	}
	return at(w.Start), at(w.End)
}
