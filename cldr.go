package timepicker

import "golang.org/x/text/language"

// localeData is the CLDR "jm" pattern and day-period names for one locale.
type localeData struct {
	tag     string
	pattern string
	am, pm  string
}

// A lookup is served by the closest entry of the same language; other
// languages are misses.
var cldrLocales = []localeData{
	{"en", "h:mm a", "AM", "PM"},
	{"en-US", "h:mm a", "AM", "PM"},
	{"en-GB", "HH:mm", "am", "pm"},
	{"en-AU", "h:mm a", "am", "pm"},
	{"en-CA", "h:mm a", "a.m.", "p.m."},
	{"en-IN", "h:mm a", "am", "pm"},
	{"en-NZ", "h:mm a", "am", "pm"},
	{"ko", "a h:mm", "오전", "오후"},
	{"ja", "H:mm", "午前", "午後"},
	{"zh", "HH:mm", "上午", "下午"},
	{"zh-TW", "ah:mm", "上午", "下午"},
	{"zh-HK", "ah:mm", "上午", "下午"},
	{"de", "HH:mm", "AM", "PM"},
	{"fr", "HH:mm", "AM", "PM"},
	{"fr-CA", "HH 'h' mm", "a.m.", "p.m."},
	{"es", "H:mm", "a. m.", "p. m."},
	{"es-MX", "h:mm a", "a. m.", "p. m."},
	{"it", "HH:mm", "AM", "PM"},
	{"pt", "HH:mm", "AM", "PM"},
	{"nl", "HH:mm", "a.m.", "p.m."},
	{"sv", "HH:mm", "fm", "em"},
	{"da", "HH.mm", "AM", "PM"},
	{"nb", "HH:mm", "a.m.", "p.m."},
	{"no", "HH:mm", "a.m.", "p.m."},
	{"fi", "H.mm", "ap.", "ip."},
	{"pl", "HH:mm", "AM", "PM"},
	{"ru", "HH:mm", "AM", "PM"},
	{"tr", "HH:mm", "ÖÖ", "ÖS"},
	{"el", "h:mm a", "π.μ.", "μ.μ."},
	{"hu", "H:mm", "de.", "du."},
	{"he", "H:mm", "לפנה״צ", "אחה״צ"},
	{"ar", "h:mm a", "ص", "م"},
	{"hi", "h:mm a", "am", "pm"},
	{"bn", "h:mm a", "AM", "PM"},
	{"th", "HH:mm", "ก่อนเที่ยง", "หลังเที่ยง"},
	{"vi", "HH:mm", "SA", "CH"},
	{"id", "HH.mm", "AM", "PM"},
	{"ms", "h:mm a", "PG", "PTG"},
	{"fil", "h:mm a", "AM", "PM"},
}

var (
	cldrTags    []language.Tag
	cldrMatcher language.Matcher
)

func init() {
	cldrTags = make([]language.Tag, len(cldrLocales))
	for i, l := range cldrLocales {
		cldrTags[i] = language.MustParse(l.tag)
	}
	cldrMatcher = language.NewMatcher(cldrTags)
}

// CLDRProvider serves built-in CLDR time patterns for common locales,
// picking the closest supported locale for any tag.
type CLDRProvider struct{}

func (CLDRProvider) lookup(tag language.Tag) (localeData, bool) {
	_, i, conf := cldrMatcher.Match(tag)
	if conf == language.No {
		return localeData{}, false
	}
	// The matcher falls back to other languages with High confidence.
	want, _ := tag.Base()
	got, _ := cldrTags[i].Base()
	if want != got {
		return localeData{}, false
	}
	return cldrLocales[i], true
}

func (p CLDRProvider) TimePattern(tag language.Tag) (string, bool) {
	l, ok := p.lookup(tag)
	if !ok {
		return "", false
	}
	return l.pattern, true
}

func (p CLDRProvider) DayPeriods(tag language.Tag) (am, pm string) {
	l, ok := p.lookup(tag)
	if !ok {
		return "AM", "PM"
	}
	return l.am, l.pm
}

// Locales lists the tags with built-in data, in table order.
func (CLDRProvider) Locales() []language.Tag {
	out := make([]language.Tag, len(cldrTags))
	copy(out, cldrTags)
	return out
}
