package timepicker

import "github.com/charmbracelet/lipgloss"

// Theme provides the styles the terminal picker renders with.
type Theme struct {
	Base     lipgloss.Style // unselected rows
	Muted    lipgloss.Style // rows far from the selection, help text
	Selected lipgloss.Style // selected row of an unfocused reel
	Focused  lipgloss.Style // selected row of the focused reel
	Border   lipgloss.Style // frame around the reels
	Title    lipgloss.Style // locale header
	Value    lipgloss.Style // last selected time
}

// ThemeDark is a dark theme with light text on dark background.
var ThemeDark = Theme{
	Base:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true).Underline(true),
	Border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}

// ThemeLight is a light theme with dark text on light background.
var ThemeLight = Theme{
	Base:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
	Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Bold(true),
	Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true).Underline(true),
	Border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
	Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
}

// ThemeMonochrome is a minimal theme using only attributes.
var ThemeMonochrome = Theme{
	Base:     lipgloss.NewStyle(),
	Muted:    lipgloss.NewStyle().Faint(true),
	Selected: lipgloss.NewStyle().Bold(true),
	Focused:  lipgloss.NewStyle().Bold(true).Reverse(true),
	Border:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	Title:    lipgloss.NewStyle().Bold(true),
	Value:    lipgloss.NewStyle().Underline(true),
}

// Themes maps theme names accepted by the command line to themes.
var Themes = map[string]Theme{
	"dark":  ThemeDark,
	"light": ThemeLight,
	"mono":  ThemeMonochrome,
}
