// Package timepicker provides a locale-aware hour/minute/second picker built
// from independently scrolling reels.
//
// The reel arrangement is inferred from the locale's preferred time pattern:
// 24-hour locales get three reels, 12-hour locales get a fourth day-period
// reel placed before or after the time. Wrapping reels are MaxRows tall and
// start at Margin so they can be scrolled a long way in either direction.
package timepicker

import (
	"io"
	"log"
	"sync"
	"time"

	"golang.org/x/text/language"
)

// DataSource describes reel contents to a widget.
type DataSource interface {
	ReelCount() int
	RowCount(reel int) int
	RowLabel(reel, row int) string
}

// Reels is the scrolling widget a Picker drives.
type Reels interface {
	// Reload replaces the reel count, row counts and labels.
	Reload(src DataSource)
	// MoveTo selects row on reel.
	MoveTo(reel, row int, animated bool)
	// CurrentRow returns the selected row of reel.
	CurrentRow(reel int) int
}

// Picker keeps a point in time and a set of reels consistent.
//
// Widgets report drags with Scroll and committed rows with Settle. Hosts
// change the value with SetTime and the arrangement with SetLocale.
type Picker struct {
	mu sync.Mutex

	reels    Reels
	resolver *Resolver
	provider Provider
	calendar Calendar
	logger   *log.Logger

	locale   language.Tag
	loc      *time.Location
	date     time.Time
	onSelect func(time.Time)

	format TimeFormat
	layout Layout
	wheel  Wheel

	source    *Observable[language.Tag]
	unsub     func()
	following bool
}

// Option configures a Picker.
type Option func(*pickerConfig)

type pickerConfig struct {
	locale   language.Tag
	loc      *time.Location
	provider Provider
	calendar Calendar
	logger   *log.Logger
	date     time.Time
	now      func() time.Time
	source   *Observable[language.Tag]
	onSelect func(time.Time)
}

// WithLocale sets the initial locale. Default: language.AmericanEnglish.
func WithLocale(tag language.Tag) Option {
	return func(c *pickerConfig) { c.locale = tag }
}

// WithTimeZone sets the zone used to split and compose times. Default: time.Local.
func WithTimeZone(loc *time.Location) Option {
	return func(c *pickerConfig) { c.loc = loc }
}

// WithProvider sets the locale data provider. Default: CLDRProvider.
func WithProvider(p Provider) Option {
	return func(c *pickerConfig) { c.provider = p }
}

// WithCalendar sets the calendar. Default: Gregorian.
func WithCalendar(cal Calendar) Option {
	return func(c *pickerConfig) { c.calendar = cal }
}

// WithLogger sets the debug logger. Default: discard.
func WithLogger(l *log.Logger) Option {
	return func(c *pickerConfig) { c.logger = l }
}

// WithTime sets the initial time. Default: the current time.
func WithTime(t time.Time) Option {
	return func(c *pickerConfig) { c.date = t }
}

// WithNow sets the clock used for the initial time when WithTime is not given.
func WithNow(now func() time.Time) Option {
	return func(c *pickerConfig) { c.now = now }
}

// WithLocaleSource follows a host-owned locale value. The picker takes its
// initial locale from src and resyncs whenever src changes, until Close.
func WithLocaleSource(src *Observable[language.Tag]) Option {
	return func(c *pickerConfig) { c.source = src }
}

// OnTimeSelected sets the callback for user selections.
func OnTimeSelected(fn func(time.Time)) Option {
	return func(c *pickerConfig) { c.onSelect = fn }
}

// New creates a picker driving reels.
func New(reels Reels, opts ...Option) *Picker {
	cfg := pickerConfig{
		locale:   language.AmericanEnglish,
		loc:      time.Local,
		provider: CLDRProvider{},
		calendar: Gregorian{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard, "", 0)
	}
	if cfg.loc == nil {
		cfg.loc = time.Local
	}
	if cfg.source != nil {
		cfg.locale = cfg.source.Get()
	}
	if cfg.date.IsZero() {
		cfg.date = cfg.now()
	}

	p := &Picker{
		reels:    reels,
		resolver: NewResolver(cfg.provider),
		provider: cfg.provider,
		calendar: cfg.calendar,
		logger:   cfg.logger,
		locale:   cfg.locale,
		loc:      cfg.loc,
		date:     cfg.date,
		onSelect: cfg.onSelect,
		source:   cfg.source,

		following: cfg.source != nil,
	}

	p.mu.Lock()
	p.refreshFormat()
	p.setTime(p.date, false)
	p.mu.Unlock()

	if p.source != nil {
		unsub := p.source.Subscribe(p.followLocale)
		p.mu.Lock()
		closed := !p.following
		if !closed {
			p.unsub = unsub
		}
		p.mu.Unlock()
		if closed {
			unsub()
		}
	}
	return p
}

// Close detaches the picker from its locale source. Once Close returns, no
// further source changes reach the picker, including ones already being
// delivered.
func (p *Picker) Close() {
	p.mu.Lock()
	p.following = false
	unsub := p.unsub
	p.unsub = nil
	p.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

func (p *Picker) followLocale(tag language.Tag) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.following {
		return
	}
	p.setLocale(tag)
}

// SetTime moves the reels to t. No selection event is emitted.
func (p *Picker) SetTime(t time.Time, animated bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setTime(t, animated)
}

func (p *Picker) setTime(t time.Time, animated bool) {
	p.date = t
	f := p.calendar.Fields(t, p.loc)
	p.reels.MoveTo(p.layout.Hour, ToRow(f.Hour), animated)
	p.reels.MoveTo(p.layout.Minute, ToRow(f.Minute), animated)
	p.reels.MoveTo(p.layout.Second, ToRow(f.Second), animated)
	if p.layout.HasAmPm {
		p.reels.MoveTo(p.layout.AmPm, f.Hour/12, animated)
	}
}

// Time returns the selected time.
func (p *Picker) Time() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.date
}

// SetLocale switches locale, rebuilding the reels for its time format.
// No selection event is emitted.
func (p *Picker) SetLocale(tag language.Tag) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setLocale(tag)
}

func (p *Picker) setLocale(tag language.Tag) {
	p.locale = tag
	p.refreshFormat()
	p.setTime(p.date, false)
}

// Locale returns the active locale.
func (p *Picker) Locale() language.Tag {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.locale
}

// SetTimeZone changes the zone used for later field extraction and
// composition. The reels are not moved.
func (p *Picker) SetTimeZone(loc *time.Location) {
	if loc == nil {
		loc = time.Local
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loc = loc
}

// TimeZone returns the active zone.
func (p *Picker) TimeZone() *time.Location {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loc
}

// OnTimeSelected replaces the selection callback.
func (p *Picker) OnTimeSelected(fn func(time.Time)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onSelect = fn
}

func (p *Picker) refreshFormat() {
	p.format = p.resolver.Resolve(p.locale)
	p.layout = LayoutFor(p.format)
	am, pm := "AM", "PM"
	if p.provider != nil {
		am, pm = p.provider.DayPeriods(p.locale)
	}
	p.wheel = Wheel{Format: p.format, AM: am, PM: pm}
	p.logger.Printf("locale %s: %s, %d reels", p.locale, p.format, p.layout.Reels)
	p.reels.Reload(p.snapshot())
}

// Scroll reports that reel is passing row during a drag. It may move the
// day-period reel ahead of the hour; Settle has the final say.
func (p *Picker) Scroll(reel, row int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.layout.HasAmPm || reel != p.layout.Hour {
		return
	}
	if ampm, ok := NudgeAmPm(row); ok && p.reels.CurrentRow(p.layout.AmPm) != ampm {
		p.reels.MoveTo(p.layout.AmPm, ampm, true)
	}
}

// Settle commits the user's choice of row on reel and publishes the
// resulting time. If the calendar rejects the time the selection is dropped
// and the previous time is kept.
func (p *Picker) Settle(reel, row int) {
	p.mu.Lock()
	if reel < 0 || reel >= p.layout.Reels {
		p.mu.Unlock()
		return
	}
	if p.reels.CurrentRow(reel) != row {
		p.reels.MoveTo(reel, row, false)
	}
	p.syncAmPm()

	hour := p.wheel.Value(FieldHour, p.reels.CurrentRow(p.layout.Hour))
	minute := p.wheel.Value(FieldMinute, p.reels.CurrentRow(p.layout.Minute))
	second := p.wheel.Value(FieldSecond, p.reels.CurrentRow(p.layout.Second))

	d := p.calendar.Fields(p.date, p.loc)
	t, ok := p.calendar.Compose(d.Year, d.Month, d.Day, hour, minute, second, p.loc)
	if !ok {
		p.logger.Printf("settle dropped: %04d-%02d-%02d %02d:%02d:%02d does not exist in %s",
			d.Year, d.Month, d.Day, hour, minute, second, p.loc)
		p.mu.Unlock()
		return
	}
	p.date = t
	fn := p.onSelect
	p.mu.Unlock()

	if fn != nil {
		fn(t)
	}
}

// syncAmPm shifts the hour reel by half a day when it disagrees with the
// day-period reel.
func (p *Picker) syncAmPm() {
	if !p.layout.HasAmPm {
		return
	}
	am := p.wheel.Value(FieldAmPm, p.reels.CurrentRow(p.layout.AmPm)) == 0
	row := p.reels.CurrentRow(p.layout.Hour)
	hour := p.wheel.Value(FieldHour, row)
	switch {
	case am && hour >= 12:
		p.reels.MoveTo(p.layout.Hour, row-12, false)
	case !am && hour < 12:
		p.reels.MoveTo(p.layout.Hour, row+12, false)
	}
}

// Format returns the active time format.
func (p *Picker) Format() TimeFormat {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.format
}

// Layout returns the active reel layout.
func (p *Picker) Layout() Layout {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.layout
}

// Pattern returns the locale pattern the format was derived from.
func (p *Picker) Pattern() (string, bool) {
	p.mu.Lock()
	tag := p.locale
	p.mu.Unlock()
	return p.resolver.Pattern(tag)
}

// Source returns an immutable description of the current reels.
func (p *Picker) Source() DataSource {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

func (p *Picker) ReelCount() int                { return p.Source().ReelCount() }
func (p *Picker) RowCount(reel int) int         { return p.Source().RowCount(reel) }
func (p *Picker) RowLabel(reel, row int) string { return p.Source().RowLabel(reel, row) }

func (p *Picker) snapshot() reelSource {
	return reelSource{layout: p.layout, wheel: p.wheel}
}

// reelSource is a DataSource fixed to one layout.
type reelSource struct {
	layout Layout
	wheel  Wheel
}

func (s reelSource) ReelCount() int        { return s.layout.Reels }
func (s reelSource) RowCount(reel int) int { return s.layout.RowCount(reel) }

func (s reelSource) RowLabel(reel, row int) string {
	f, ok := s.layout.Field(reel)
	if !ok {
		return ""
	}
	return s.wheel.Label(f, row)
}
