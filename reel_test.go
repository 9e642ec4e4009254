package timepicker

import (
	"strings"
	"sync"
	"testing"
)

func testSource(f TimeFormat) reelSource {
	return reelSource{layout: LayoutFor(f), wheel: Wheel{Format: f, AM: "AM", PM: "PM"}}
}

func TestReelSet(t *testing.T) {
	t.Run("Reload", func(t *testing.T) {
		s := NewReelSet()
		s.Reload(testSource(AmPmTrailing{OneDigit}))
		if s.Len() != 4 {
			t.Fatalf("expected 4 reels, got %d", s.Len())
		}
		s.MoveTo(0, ToRow(5), false)
		s.MoveTo(3, 1, false)
		s.SetFocus(3)

		s.Reload(testSource(TwentyFourHour{TwoDigits}))
		if s.Len() != 3 {
			t.Fatalf("expected 3 reels, got %d", s.Len())
		}
		if s.CurrentRow(0) != ToRow(5) {
			t.Errorf("expected row to survive reload, got %d", s.CurrentRow(0))
		}
		if s.Focus() != 2 {
			t.Errorf("expected focus clamped to 2, got %d", s.Focus())
		}
	})

	t.Run("MoveToClamps", func(t *testing.T) {
		s := NewReelSet()
		s.Reload(testSource(AmPmTrailing{OneDigit}))
		s.MoveTo(3, 5, false)
		if s.CurrentRow(3) != 1 {
			t.Errorf("expected am/pm row clamped to 1, got %d", s.CurrentRow(3))
		}
		s.MoveTo(0, -3, false)
		if s.CurrentRow(0) != 0 {
			t.Errorf("expected row clamped to 0, got %d", s.CurrentRow(0))
		}
		s.MoveTo(0, MaxRows+10, false)
		if s.CurrentRow(0) != MaxRows-1 {
			t.Errorf("expected row clamped to %d, got %d", MaxRows-1, s.CurrentRow(0))
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		s := NewReelSet()
		s.Reload(testSource(TwentyFourHour{TwoDigits}))
		s.MoveTo(9, 1, false)
		if s.CurrentRow(9) != 0 {
			t.Error("expected 0 for unknown reel")
		}
		if s.Label(9, 0) != "" || s.Label(0, -1) != "" || s.Label(0, MaxRows) != "" {
			t.Error("expected empty labels outside the reels")
		}
	})

	t.Run("Label", func(t *testing.T) {
		s := NewReelSet()
		s.Reload(testSource(AmPmLeading{OneDigit}))
		if got := s.Label(0, 1); got != "PM" {
			t.Errorf("expected PM, got %q", got)
		}
		if got := s.Label(1, ToRow(15)); got != "3" {
			t.Errorf("expected 3, got %q", got)
		}
	})

	t.Run("Focus", func(t *testing.T) {
		s := NewReelSet()
		s.Reload(testSource(TwentyFourHour{TwoDigits}))
		s.FocusPrev()
		if s.Focus() != 2 {
			t.Errorf("expected focus to wrap to 2, got %d", s.Focus())
		}
		s.FocusNext()
		if s.Focus() != 0 {
			t.Errorf("expected focus to wrap to 0, got %d", s.Focus())
		}
		s.SetFocus(5)
		if s.Focus() != 0 {
			t.Errorf("expected focus unchanged, got %d", s.Focus())
		}
	})

	t.Run("Drag", func(t *testing.T) {
		s := NewReelSet()
		s.Reload(testSource(TwentyFourHour{TwoDigits}))
		s.MoveTo(1, ToRow(30), false)
		s.SetFocus(1)
		reel, row := s.Drag(-3)
		if reel != 1 || row != ToRow(27) {
			t.Errorf("expected reel 1 row %d, got reel %d row %d", ToRow(27), reel, row)
		}
		if s.ShownRow(1) != row {
			t.Error("expected drag to move the shown row")
		}
	})

	t.Run("Animation", func(t *testing.T) {
		s := NewReelSet()
		s.Reload(testSource(TwentyFourHour{TwoDigits}))
		s.MoveTo(0, ToRow(0), false)
		s.MoveTo(0, ToRow(40), true)
		if s.CurrentRow(0) != ToRow(40) {
			t.Errorf("expected selected row to change immediately")
		}
		if !s.Animating() {
			t.Fatal("expected animation")
		}
		frames := 0
		for s.Step() {
			frames++
			if frames > 50 {
				t.Fatal("animation did not settle")
			}
		}
		if s.ShownRow(0) != ToRow(40) {
			t.Errorf("expected shown row %d, got %d", ToRow(40), s.ShownRow(0))
		}
		if s.Animating() {
			t.Error("expected animation finished")
		}
	})

	t.Run("Window", func(t *testing.T) {
		s := NewReelSet()
		s.Reload(testSource(AmPmTrailing{OneDigit}))
		s.MoveTo(3, 0, false)
		got := s.Window(3, 2)
		want := []int{-1, -1, 0, 1, -1}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("expected %v, got %v", want, got)
				break
			}
		}
	})
	t.Run("WindowLabels", func(t *testing.T) {
		s := NewReelSet()
		s.Reload(testSource(AmPmTrailing{OneDigit}))
		s.MoveTo(3, 0, false)
		got := s.WindowLabels(3, 2)
		want := []string{"", "", "AM", "PM", ""}
		if strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("expected %q, got %q", want, got)
		}
		if got := s.WindowLabels(9, 2); len(got) != 0 {
			t.Errorf("expected no labels for a missing reel, got %q", got)
		}
	})

	t.Run("ConcurrentReload", func(t *testing.T) {
		s := NewReelSet()
		s.Reload(testSource(TwentyFourHour{TwoDigits}))
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if i%2 == 0 {
					s.Reload(testSource(AmPmLeading{OneDigit}))
				} else {
					s.Reload(testSource(TwentyFourHour{TwoDigits}))
				}
			}
		}()
		for i := 0; i < 200; i++ {
			for reel := 0; reel < s.Len(); reel++ {
				s.WindowLabels(reel, 2)
				s.Label(reel, s.CurrentRow(reel))
			}
		}
		wg.Wait()
	})
}
