package timepicker

import "fmt"

// Field is the time component a reel edits.
type Field uint8

const (
	FieldHour Field = iota
	FieldMinute
	FieldSecond
	FieldAmPm
)

func (f Field) String() string {
	switch f {
	case FieldHour:
		return "hour"
	case FieldMinute:
		return "minute"
	case FieldSecond:
		return "second"
	case FieldAmPm:
		return "am/pm"
	}
	return fmt.Sprintf("Field(%d)", uint8(f))
}

const (
	// MaxRows is the row count of every wrapping reel. It is a multiple of
	// 24 so a half-day shift of the hour reel never leaves the reel.
	MaxRows = 24000
	// Margin is the row of value zero; it is a multiple of 24 and 60.
	Margin = MaxRows / 2
	// AmPmRows is the row count of the day-period reel.
	AmPmRows = 2
)

// Layout places time fields on reel indices.
type Layout struct {
	Reels   int
	Hour    int
	Minute  int
	Second  int
	AmPm    int // valid only when HasAmPm
	HasAmPm bool
}

// LayoutFor returns the reel layout for a format.
func LayoutFor(format TimeFormat) Layout {
	switch format.(type) {
	case TwentyFourHour:
		return Layout{Reels: 3, Hour: 0, Minute: 1, Second: 2, AmPm: -1}
	case AmPmTrailing:
		return Layout{Reels: 4, Hour: 0, Minute: 1, Second: 2, AmPm: 3, HasAmPm: true}
	case AmPmLeading:
		return Layout{Reels: 4, AmPm: 0, Hour: 1, Minute: 2, Second: 3, HasAmPm: true}
	}
	panic(fmt.Sprintf("timepicker: unknown time format %T", format))
}

// Field reports which field the reel at index edits.
func (l Layout) Field(reel int) (Field, bool) {
	switch {
	case l.HasAmPm && reel == l.AmPm:
		return FieldAmPm, true
	case reel == l.Hour:
		return FieldHour, true
	case reel == l.Minute:
		return FieldMinute, true
	case reel == l.Second:
		return FieldSecond, true
	}
	return 0, false
}

// Reel returns the reel index for a field.
func (l Layout) Reel(f Field) (int, bool) {
	switch f {
	case FieldHour:
		return l.Hour, true
	case FieldMinute:
		return l.Minute, true
	case FieldSecond:
		return l.Second, true
	case FieldAmPm:
		return l.AmPm, l.HasAmPm
	}
	return -1, false
}

// RowCount returns the number of rows for the reel at index, or 0 if the
// index is outside the layout.
func (l Layout) RowCount(reel int) int {
	f, ok := l.Field(reel)
	switch {
	case !ok:
		return 0
	case f == FieldAmPm:
		return AmPmRows
	}
	return MaxRows
}

// Fields lists the reel fields in display order.
func (l Layout) Fields() []Field {
	out := make([]Field, 0, l.Reels)
	for i := 0; i < l.Reels; i++ {
		if f, ok := l.Field(i); ok {
			out = append(out, f)
		}
	}
	return out
}
