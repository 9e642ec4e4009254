package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"

	"github.com/kungfusheep/timepicker"
)

var (
	cfgFile   string
	flagLoc   string
	flagTZ    string
	flagTime  string
	flagTheme string
	noAnimate bool
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "timepicker",
	Short: "Locale-aware terminal time picker",
	Long: `timepicker shows hour, minute and second reels, plus an AM/PM reel for
12-hour locales, arranged the way the locale writes times.

Scroll a reel with the arrow keys; the selection is committed when the
reel comes to rest. The last selected time is printed on exit.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPicker,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/timepicker/config.toml)")
	f.StringVar(&flagLoc, "locale", "", "BCP 47 locale tag (default: from LC_ALL/LC_TIME/LANG)")

	rf := rootCmd.Flags()
	rf.StringVar(&flagTZ, "tz", "", "IANA time zone (default: local)")
	rf.StringVar(&flagTime, "time", "", "initial time as HH:MM[:SS] (default: now)")
	rf.StringVar(&flagTheme, "theme", "", "color theme: dark, light or mono")
	rf.BoolVar(&noAnimate, "no-animate", false, "disable reel animation")
	rf.BoolVar(&debug, "debug", false, "write debug log to timepicker.log")

	rootCmd.AddCommand(localesCmd)
}

// loadSettings merges the config file with flags set on the command line.
func loadSettings(cmd *cobra.Command) (settings, error) {
	path, optional := cfgFile, false
	if path == "" {
		path, optional = defaultConfigPath(), true
	}
	cfg, err := LoadConfig(path, optional)
	if err != nil {
		return settings{}, err
	}
	if cfg.Locale == "" {
		// an unusable environment locale falls back to the default
		if env := systemLocale(); env != "" {
			if _, err := language.Parse(env); err == nil {
				cfg.Locale = env
			}
		}
	}

	flags := cmd.Flags()
	if flags.Changed("locale") {
		cfg.Locale = flagLoc
	}
	if flags.Changed("tz") {
		cfg.TimeZone = flagTZ
	}
	if flags.Changed("theme") {
		cfg.Theme = flagTheme
	}
	if flags.Changed("no-animate") {
		animate := !noAnimate
		cfg.Animate = &animate
	}
	return cfg.settings()
}

// parseClock parses HH:MM or HH:MM:SS onto today's date in loc.
func parseClock(s string, now time.Time, loc *time.Location) (time.Time, error) {
	layout := "15:04:05"
	if strings.Count(s, ":") == 1 {
		layout = "15:04"
	}
	c, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	y, mo, d := now.In(loc).Date()
	return time.Date(y, mo, d, c.Hour(), c.Minute(), c.Second(), 0, loc), nil
}

func runPicker(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if debug {
		f, err := tea.LogToFile("timepicker.log", "timepicker")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	start := time.Now().In(s.loc)
	if flagTime != "" {
		if start, err = parseClock(flagTime, start, s.loc); err != nil {
			return err
		}
	}

	pickerOpts := []timepicker.Option{
		timepicker.WithLocale(s.locale),
		timepicker.WithTimeZone(s.loc),
		timepicker.WithTime(start),
		timepicker.WithLogger(logger),
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		reels := timepicker.NewReelSet()
		p := timepicker.New(reels, pickerOpts...)
		return writeSummary(cmd.OutOrStdout(), p, reels)
	}

	m := timepicker.NewModel(
		timepicker.WithPickerOptions(pickerOpts...),
		timepicker.WithTheme(s.theme),
		timepicker.WithSettleDelay(s.delay),
		timepicker.WithAnimation(s.animate),
	)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	if t, ok := m.Selected(); ok {
		fmt.Fprintln(cmd.OutOrStdout(), t.Format(time.RFC3339))
	}
	return nil
}

// writeSummary prints the reel arrangement and the selected row of each
// reel, for when there is no terminal to draw on.
func writeSummary(w io.Writer, p *timepicker.Picker, reels *timepicker.ReelSet) error {
	pattern, ok := p.Pattern()
	if !ok {
		pattern = "(none, using default)"
	}
	var names []string
	for _, f := range p.Layout().Fields() {
		names = append(names, f.String())
	}
	labels := make([]string, reels.Len())
	for i := range labels {
		labels[i] = reels.Label(i, reels.CurrentRow(i))
	}

	_, err := fmt.Fprintf(w, "locale:  %s\npattern: %s\nformat:  %s\nreels:   %s\ntime:    %s\n",
		p.Locale(), pattern, p.Format(), strings.Join(names, " | "), strings.Join(labels, " "))
	return err
}
