package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/kungfusheep/timepicker"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		path := writeConfig(t, `
locale = "ko-KR"
time_zone = "UTC"
theme = "light"
settle_delay = "250ms"
animate = false
`)
		cfg, err := LoadConfig(path, false)
		if err != nil {
			t.Fatal(err)
		}
		s, err := cfg.settings()
		if err != nil {
			t.Fatal(err)
		}
		if s.locale != language.MustParse("ko-KR") {
			t.Errorf("expected ko-KR, got %s", s.locale)
		}
		if s.loc != time.UTC {
			t.Errorf("expected UTC, got %s", s.loc)
		}
		if s.delay != 250*time.Millisecond {
			t.Errorf("expected 250ms, got %s", s.delay)
		}
		if s.animate {
			t.Error("expected animation off")
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		s, err := Config{}.settings()
		if err != nil {
			t.Fatal(err)
		}
		if s.locale != language.AmericanEnglish || s.delay != timepicker.DefaultSettleDelay || !s.animate {
			t.Errorf("unexpected defaults: %+v", s)
		}
	})

	t.Run("MissingOptional", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"), true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Locale != "" {
			t.Errorf("expected empty config, got %+v", cfg)
		}
	})

	t.Run("MissingRequired", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"), false); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("UnknownKey", func(t *testing.T) {
		path := writeConfig(t, `colour = "red"`)
		_, err := LoadConfig(path, false)
		if err == nil || !strings.Contains(err.Error(), "colour") {
			t.Errorf("expected unknown key error, got %v", err)
		}
	})

	t.Run("BadDuration", func(t *testing.T) {
		path := writeConfig(t, `settle_delay = "soon"`)
		if _, err := LoadConfig(path, false); err == nil {
			t.Error("expected error for bad duration")
		}
	})

	t.Run("InvalidValues", func(t *testing.T) {
		for _, cfg := range []Config{
			{Theme: "neon"},
			{TimeZone: "Mars/Olympus_Mons"},
			{Locale: "not a locale"},
			{SettleDelay: duration{-time.Second}},
		} {
			if _, err := cfg.settings(); err == nil {
				t.Errorf("expected error for %+v", cfg)
			}
		}
	})
}

func TestSystemLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_TIME", "en_GB.UTF-8@euro")
	t.Setenv("LANG", "C")
	if got := systemLocale(); got != "en-GB" {
		t.Errorf("expected en-GB, got %q", got)
	}

	t.Setenv("LC_TIME", "")
	if got := systemLocale(); got != "" {
		t.Errorf("expected no locale, got %q", got)
	}

	for _, v := range []string{"C.UTF-8", "POSIX", "C.utf8@euro"} {
		t.Setenv("LANG", v)
		if got := systemLocale(); got != "" {
			t.Errorf("%s: expected no locale, got %q", v, got)
		}
	}

	t.Setenv("LC_ALL", "C.UTF-8")
	t.Setenv("LANG", "ko_KR.UTF-8")
	if got := systemLocale(); got != "ko-KR" {
		t.Errorf("expected LC_ALL=C.UTF-8 to defer to LANG, got %q", got)
	}
}

func TestLoadSettingsEnvironmentLocale(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_TIME", "")

	tests := []struct {
		lang string
		want language.Tag
	}{
		{"C.UTF-8", language.AmericanEnglish},
		{"not a locale!", language.AmericanEnglish},
		{"ko_KR.UTF-8", language.MustParse("ko-KR")},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			t.Setenv("LANG", tt.lang)
			s, err := loadSettings(rootCmd)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if s.locale != tt.want {
				t.Errorf("expected %s, got %s", tt.want, s.locale)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	now := time.Date(2024, time.May, 1, 23, 0, 0, 0, time.UTC)
	got, err := parseClock("07:08:09", now, time.UTC)
	if err != nil || !got.Equal(time.Date(2024, time.May, 1, 7, 8, 9, 0, time.UTC)) {
		t.Errorf("expected 07:08:09, got %s (%v)", got, err)
	}
	got, err = parseClock("7:08", now, time.UTC)
	if err != nil || got.Hour() != 7 || got.Minute() != 8 || got.Second() != 0 {
		t.Errorf("expected 07:08:00, got %s (%v)", got, err)
	}
	if _, err := parseClock("25:00", now, time.UTC); err == nil {
		t.Error("expected error for hour 25")
	}
}

func TestRenderLocales(t *testing.T) {
	var buf bytes.Buffer
	tags := []language.Tag{language.MustParse("ko-KR"), language.MustParse("en-GB")}
	renderLocales(&buf, timepicker.CLDRProvider{}, tags)
	out := buf.String()
	for _, want := range []string{"ko-KR", "a h:mm", "am/pm leading", "am/pm hour minute second", "en-GB", "HH:mm", "hour minute second"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestWriteSummary(t *testing.T) {
	reels := timepicker.NewReelSet()
	p := timepicker.New(reels,
		timepicker.WithLocale(language.MustParse("en-GB")),
		timepicker.WithTimeZone(time.UTC),
		timepicker.WithTime(time.Date(2024, time.May, 1, 13, 5, 9, 0, time.UTC)),
	)
	var buf bytes.Buffer
	if err := writeSummary(&buf, p, reels); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"en-GB", "HH:mm", "hour | minute | second", "13 05 09"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}
