package timepicker

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
)

const (
	// DefaultSettleDelay is how long a reel must rest before a drag counts
	// as a selection.
	DefaultSettleDelay = 150 * time.Millisecond

	frameInterval = 30 * time.Millisecond
	viewRadius    = 2
)

type settleMsg struct {
	seq       int
	reel, row int
}

type frameMsg struct{}

// Model is a Bubble Tea model rendering a Picker on a ReelSet.
type Model struct {
	picker *Picker
	reels  *ReelSet

	keys    KeyMap
	help    help.Model
	theme   Theme
	locales []language.Tag
	delay   time.Duration
	animate bool
	now     func() time.Time
	onPick  func(time.Time)

	seq       int
	animating bool
	selected  time.Time
	picked    bool
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	picker  []Option
	keys    KeyMap
	theme   Theme
	locales []language.Tag
	delay   time.Duration
	animate bool
	now     func() time.Time
	onPick  func(time.Time)
}

// WithPickerOptions passes options to the underlying Picker.
func WithPickerOptions(opts ...Option) ModelOption {
	return func(c *modelConfig) { c.picker = append(c.picker, opts...) }
}

// WithTheme sets the theme. Default: ThemeDark.
func WithTheme(t Theme) ModelOption {
	return func(c *modelConfig) { c.theme = t }
}

// WithKeyMap replaces the key bindings.
func WithKeyMap(k KeyMap) ModelOption {
	return func(c *modelConfig) { c.keys = k }
}

// WithSettleDelay sets the rest time before a drag is committed.
func WithSettleDelay(d time.Duration) ModelOption {
	return func(c *modelConfig) { c.delay = d }
}

// WithAnimation enables or disables animated programmatic moves.
func WithAnimation(on bool) ModelOption {
	return func(c *modelConfig) { c.animate = on }
}

// WithLocaleCycle sets the locales the Locale key steps through.
// Default: CLDRProvider locales.
func WithLocaleCycle(tags []language.Tag) ModelOption {
	return func(c *modelConfig) { c.locales = tags }
}

// WithClock sets the clock used by the Now key.
func WithClock(now func() time.Time) ModelOption {
	return func(c *modelConfig) { c.now = now }
}

// WithSelectHandler is called after every committed selection. The model
// owns the picker's OnTimeSelected callback, so hosts register here.
func WithSelectHandler(fn func(time.Time)) ModelOption {
	return func(c *modelConfig) { c.onPick = fn }
}

// NewModel creates a picker model.
func NewModel(opts ...ModelOption) *Model {
	cfg := modelConfig{
		keys:    DefaultKeyMap(),
		theme:   ThemeDark,
		locales: CLDRProvider{}.Locales(),
		delay:   DefaultSettleDelay,
		animate: true,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Model{
		reels:   NewReelSet(),
		keys:    cfg.keys,
		help:    help.New(),
		theme:   cfg.theme,
		locales: cfg.locales,
		delay:   cfg.delay,
		animate: cfg.animate,
		now:     cfg.now,
		onPick:  cfg.onPick,
	}
	m.picker = New(m.reels, cfg.picker...)
	m.picker.OnTimeSelected(m.selectTime)
	return m
}

func (m *Model) selectTime(t time.Time) {
	m.selected = t
	m.picked = true
	if m.onPick != nil {
		m.onPick(t)
	}
}

// Picker returns the underlying picker.
func (m *Model) Picker() *Picker {
	return m.picker
}

// Reels returns the reel widget.
func (m *Model) Reels() *ReelSet {
	return m.reels
}

// Selected returns the last committed selection.
func (m *Model) Selected() (time.Time, bool) {
	return m.selected, m.picked
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			m.reels.FocusPrev()
		case key.Matches(msg, m.keys.Right):
			m.reels.FocusNext()
		case key.Matches(msg, m.keys.Up):
			return m, m.drag(-1)
		case key.Matches(msg, m.keys.Down):
			return m, m.drag(1)
		case key.Matches(msg, m.keys.PageUp):
			return m, m.drag(-5)
		case key.Matches(msg, m.keys.PageDown):
			return m, m.drag(5)
		case key.Matches(msg, m.keys.Now):
			m.seq++ // drop any pending settle
			m.picker.SetTime(m.now(), m.animate)
			return m, m.startAnimation()
		case key.Matches(msg, m.keys.Locale):
			m.nextLocale()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case settleMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.picker.Settle(msg.reel, msg.row)
		return m, m.startAnimation()

	case frameMsg:
		if m.reels.Step() {
			return m, frame()
		}
		m.animating = false
	}
	return m, nil
}

// drag scrolls the focused reel one row at a time so the picker sees every
// row passed, then schedules a settle for when the reel comes to rest.
func (m *Model) drag(delta int) tea.Cmd {
	step := 1
	if delta < 0 {
		step, delta = -1, -delta
	}
	var reel, row int
	for i := 0; i < delta; i++ {
		reel, row = m.reels.Drag(step)
		m.picker.Scroll(reel, row)
	}

	m.seq++
	seq := m.seq
	settle := tea.Tick(m.delay, func(time.Time) tea.Msg {
		return settleMsg{seq: seq, reel: reel, row: row}
	})
	return tea.Batch(settle, m.startAnimation())
}

func (m *Model) startAnimation() tea.Cmd {
	if !m.reels.Animating() {
		return nil
	}
	if !m.animate {
		for m.reels.Step() {
		}
		return nil
	}
	if m.animating {
		return nil
	}
	m.animating = true
	return frame()
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m *Model) nextLocale() {
	if len(m.locales) == 0 {
		return
	}
	cur := m.picker.Locale()
	next := m.locales[0]
	for i, tag := range m.locales {
		if tag == cur {
			next = m.locales[(i+1)%len(m.locales)]
			break
		}
	}
	m.seq++
	m.picker.SetLocale(next)
}

// View implements tea.Model.
func (m *Model) View() string {
	pattern, ok := m.picker.Pattern()
	if !ok {
		pattern = "default"
	}
	title := m.theme.Title.Render(fmt.Sprintf("%s  %s  (%s)", m.picker.Locale(), pattern, m.picker.Format()))

	cols := make([]string, 0, 2*m.reels.Len())
	for i := 0; i < m.reels.Len(); i++ {
		if i > 0 {
			cols = append(cols, " ")
		}
		cols = append(cols, m.renderReel(i))
	}
	body := m.theme.Border.Render(lipgloss.JoinHorizontal(lipgloss.Top, cols...))

	status := m.theme.Muted.Render("no selection yet")
	if m.picked {
		status = m.theme.Value.Render("selected " + m.selected.Format("2006-01-02 15:04:05 MST"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, body, status, m.help.View(m.keys)) + "\n"
}

func (m *Model) renderReel(reel int) string {
	labels := m.reels.WindowLabels(reel, viewRadius)
	width := 2
	for _, label := range labels {
		width = max(width, lipgloss.Width(label))
	}

	lines := make([]string, len(labels))
	for i, label := range labels {
		var style lipgloss.Style
		switch d := i - viewRadius; {
		case d == 0 && reel == m.reels.Focus():
			style = m.theme.Focused
		case d == 0:
			style = m.theme.Selected
		case d == -1 || d == 1:
			style = m.theme.Base
		default:
			style = m.theme.Muted
		}
		pad := width - lipgloss.Width(label)
		left := pad / 2
		lines[i] = strings.Repeat(" ", left) + style.Render(label) + strings.Repeat(" ", pad-left)
	}
	return strings.Join(lines, "\n")
}
