package timepicker

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// HourDigits is the minimum width of the hour label.
type HourDigits uint8

const (
	OneDigit  HourDigits = iota + 1 // 9
	TwoDigits                       // 09
)

// TimeFormat is the reel arrangement derived from a locale's time pattern.
// The set of variants is closed: AmPmTrailing, AmPmLeading and TwentyFourHour.
type TimeFormat interface {
	Digits() HourDigits
	String() string
	timeFormat()
}

// AmPmTrailing is a 12-hour format with the day period after the time ("h:mm a").
type AmPmTrailing struct{ HourDigits HourDigits }

// AmPmLeading is a 12-hour format with the day period first ("a h:mm").
type AmPmLeading struct{ HourDigits HourDigits }

// TwentyFourHour is a 24-hour format without a day period ("HH:mm").
type TwentyFourHour struct{ HourDigits HourDigits }

func (f AmPmTrailing) Digits() HourDigits   { return f.HourDigits }
func (f AmPmLeading) Digits() HourDigits    { return f.HourDigits }
func (f TwentyFourHour) Digits() HourDigits { return f.HourDigits }

func (f AmPmTrailing) String() string   { return "am/pm trailing" + digitSuffix(f.HourDigits) }
func (f AmPmLeading) String() string    { return "am/pm leading" + digitSuffix(f.HourDigits) }
func (f TwentyFourHour) String() string { return "24-hour" + digitSuffix(f.HourDigits) }

func (AmPmTrailing) timeFormat()   {}
func (AmPmLeading) timeFormat()    {}
func (TwentyFourHour) timeFormat() {}

func digitSuffix(d HourDigits) string {
	if d == TwoDigits {
		return ", padded"
	}
	return ""
}

// DefaultFormat is used when a locale has no usable time pattern.
var DefaultFormat TimeFormat = AmPmTrailing{HourDigits: OneDigit}

// ClassifyPattern derives a TimeFormat from a CLDR-style time pattern.
// Only a day-period marker at the very start or end of the pattern is
// recognised; anything else yields DefaultFormat.
func ClassifyPattern(pattern string) TimeFormat {
	p := strings.TrimSpace(stripLiterals(pattern))
	if p == "" {
		return DefaultFormat
	}

	if strings.Contains(p, "H") {
		if strings.Contains(p, "HH") {
			return TwentyFourHour{HourDigits: TwoDigits}
		}
		return TwentyFourHour{HourDigits: OneDigit}
	}

	digits := OneDigit
	if strings.Contains(p, "hh") {
		digits = TwoDigits
	}
	switch {
	case strings.HasPrefix(p, "a"):
		return AmPmLeading{HourDigits: digits}
	case strings.HasSuffix(p, "a"):
		return AmPmTrailing{HourDigits: digits}
	}
	return DefaultFormat
}

// stripLiterals removes quoted literal text. A doubled quote is a literal
// apostrophe and is dropped as well.
func stripLiterals(pattern string) string {
	if !strings.ContainsRune(pattern, '\'') {
		return pattern
	}
	var b strings.Builder
	quoted := false
	for _, r := range pattern {
		if r == '\'' {
			quoted = !quoted
			continue
		}
		if !quoted {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Resolver maps locales to time formats, memoising per tag.
type Resolver struct {
	provider Provider

	mu    sync.Mutex
	cache map[language.Tag]resolved
}

type resolved struct {
	pattern string
	ok      bool
	format  TimeFormat
}

// NewResolver creates a resolver backed by provider.
func NewResolver(provider Provider) *Resolver {
	return &Resolver{
		provider: provider,
		cache:    make(map[language.Tag]resolved),
	}
}

// Resolve returns the time format for tag.
func (r *Resolver) Resolve(tag language.Tag) TimeFormat {
	return r.lookup(tag).format
}

// Pattern returns the raw pattern the provider supplied for tag.
func (r *Resolver) Pattern(tag language.Tag) (string, bool) {
	res := r.lookup(tag)
	return res.pattern, res.ok
}

func (r *Resolver) lookup(tag language.Tag) resolved {
	r.mu.Lock()
	defer r.mu.Unlock()

	if res, ok := r.cache[tag]; ok {
		return res
	}
	res := resolved{format: DefaultFormat}
	if r.provider != nil {
		res.pattern, res.ok = r.provider.TimePattern(tag)
	}
	if res.ok {
		res.format = ClassifyPattern(res.pattern)
	}
	r.cache[tag] = res
	return res
}
