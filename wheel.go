package timepicker

import "strconv"

// ToRow converts a field value to its row on a wrapping reel.
func ToRow(value int) int {
	return value + Margin
}

// wrap is a modulo that stays non-negative.
func wrap(n, period int) int {
	m := n % period
	if m < 0 {
		m += period
	}
	return m
}

// Wheel turns reel rows into field values and labels for one format.
type Wheel struct {
	Format TimeFormat
	AM, PM string
}

// Value returns the field value stored at row: 0-23 for hours, 0-59 for
// minutes and seconds, 0 (AM) or 1 (PM) for the day period.
func (w Wheel) Value(f Field, row int) int {
	switch f {
	case FieldHour:
		return wrap(row, 24)
	case FieldAmPm:
		return wrap(row, 2)
	}
	return wrap(row, 60)
}

// DisplayHour returns the hour as shown on the reel: 0-23 in 24-hour
// formats, 1-12 otherwise.
func (w Wheel) DisplayHour(row int) int {
	switch w.Format.(type) {
	case TwentyFourHour:
		return wrap(row, 24)
	case AmPmTrailing, AmPmLeading:
		if h := wrap(row, 12); h != 0 {
			return h
		}
		return 12
	}
	panic("timepicker: unknown time format")
}

// Label returns the text of row on a reel editing f.
func (w Wheel) Label(f Field, row int) string {
	switch f {
	case FieldHour:
		h := w.DisplayHour(row)
		if w.Format.Digits() == TwoDigits {
			return twoDigits(h)
		}
		return strconv.Itoa(h)
	case FieldAmPm:
		if wrap(row, 2) == 0 {
			return w.AM
		}
		return w.PM
	}
	return twoDigits(wrap(row, 60))
}

func twoDigits(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// NudgeAmPm suggests a day-period row while the hour reel passes hourRow
// mid-drag, so the AM/PM label keeps up with a fast scroll. It only fires
// on a few hours well inside each half of the day.
func NudgeAmPm(hourRow int) (ampmRow int, ok bool) {
	switch wrap(hourRow, 24) {
	case 16, 19:
		return 1, true
	case 4, 7:
		return 0, true
	}
	return 0, false
}
