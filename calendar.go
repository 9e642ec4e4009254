package timepicker

import (
	"time"

	"golang.org/x/text/language"
)

// Provider supplies locale data.
type Provider interface {
	// TimePattern returns the locale's preferred hour-minute pattern
	// (CLDR "jm" skeleton), or false when the locale is unknown.
	TimePattern(tag language.Tag) (string, bool)
	// DayPeriods returns the AM and PM symbols.
	DayPeriods(tag language.Tag) (am, pm string)
}

// Fields are the calendar components of a point in time.
type Fields struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// Calendar splits and builds points in time.
type Calendar interface {
	Fields(t time.Time, loc *time.Location) Fields
	// Compose builds a time from fields, or returns false if the
	// combination does not exist in loc.
	Compose(year int, month time.Month, day, hour, minute, second int, loc *time.Location) (time.Time, bool)
}

// Gregorian is the default Calendar. It rejects wall-clock times skipped
// by a daylight-saving transition instead of normalising them.
type Gregorian struct{}

func (Gregorian) Fields(t time.Time, loc *time.Location) Fields {
	if loc != nil {
		t = t.In(loc)
	}
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return Fields{Year: y, Month: mo, Day: d, Hour: h, Minute: mi, Second: s}
}

func (Gregorian) Compose(year int, month time.Month, day, hour, minute, second int, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	t := time.Date(year, month, day, hour, minute, second, 0, loc)
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	if y != year || mo != month || d != day || h != hour || mi != minute || s != second {
		return time.Time{}, false
	}
	return t, true
}
