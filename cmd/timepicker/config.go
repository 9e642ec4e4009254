package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/kungfusheep/timepicker"
)

// Config is the on-disk configuration.
//
//	locale       = "ko-KR"
//	time_zone    = "Asia/Seoul"
//	theme        = "light"
//	settle_delay = "200ms"
//	animate      = false
type Config struct {
	Locale      string   `toml:"locale"`
	TimeZone    string   `toml:"time_zone"`
	Theme       string   `toml:"theme"`
	SettleDelay duration `toml:"settle_delay"`
	Animate     *bool    `toml:"animate"`
}

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// defaultConfigPath returns the per-user config file location.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "timepicker", "config.toml")
}

// LoadConfig reads a TOML config file. A missing file is not an error when
// optional is set.
func LoadConfig(path string, optional bool) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// settings are validated values ready to build a picker from.
type settings struct {
	locale  language.Tag
	loc     *time.Location
	theme   timepicker.Theme
	delay   time.Duration
	animate bool
}

func (c Config) settings() (settings, error) {
	s := settings{
		locale:  language.AmericanEnglish,
		loc:     time.Local,
		theme:   timepicker.ThemeDark,
		delay:   timepicker.DefaultSettleDelay,
		animate: true,
	}
	if c.Locale != "" {
		tag, err := language.Parse(c.Locale)
		if err != nil {
			return settings{}, fmt.Errorf("locale %q: %w", c.Locale, err)
		}
		s.locale = tag
	}
	if c.TimeZone != "" {
		loc, err := time.LoadLocation(c.TimeZone)
		if err != nil {
			return settings{}, fmt.Errorf("time zone %q: %w", c.TimeZone, err)
		}
		s.loc = loc
	}
	if c.Theme != "" {
		t, ok := timepicker.Themes[c.Theme]
		if !ok {
			return settings{}, fmt.Errorf("unknown theme %q (want dark, light or mono)", c.Theme)
		}
		s.theme = t
	}
	if c.SettleDelay.Duration < 0 {
		return settings{}, fmt.Errorf("settle_delay must not be negative, got %s", c.SettleDelay.Duration)
	}
	if c.SettleDelay.Duration > 0 {
		s.delay = c.SettleDelay.Duration
	}
	if c.Animate != nil {
		s.animate = *c.Animate
	}
	return s, nil
}

// systemLocale returns the locale named by the POSIX environment, if any.
func systemLocale() string {
	for _, env := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		v := os.Getenv(env)
		// en_GB.UTF-8@euro -> en-GB
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return ""
}
