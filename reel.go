package timepicker

import "sync"

// ReelSet is an in-memory Reels widget. It tracks the selected row of each
// reel, the row currently shown while an animated move is in flight, and
// which reel has focus.
//
// ReelSet is safe for concurrent use: a Picker may reload it from a locale
// notification while the host renders it.
type ReelSet struct {
	mu    sync.Mutex
	src   DataSource
	reels []reelState
	focus int
}

type reelState struct {
	rows  int
	row   int // selected row
	shown int // row on screen; trails row while animating
}

// NewReelSet creates an empty reel set. A Picker fills it on construction.
func NewReelSet() *ReelSet {
	return &ReelSet{}
}

// Reload implements Reels. Selected rows survive where the reel still
// exists and are clamped to the new row counts.
func (s *ReelSet) Reload(src DataSource) {
	n := src.ReelCount()
	rows := make([]int, n)
	for i := range rows {
		rows[i] = src.RowCount(i)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.src = src
	if cap(s.reels) < n {
		grown := make([]reelState, n)
		copy(grown, s.reels)
		s.reels = grown
	} else {
		s.reels = s.reels[:n]
	}
	for i := range s.reels {
		r := &s.reels[i]
		r.rows = rows[i]
		r.row = clampRow(r.row, r.rows)
		r.shown = r.row
	}
	if s.focus >= n {
		s.focus = max(0, n-1)
	}
}

func clampRow(row, rows int) int {
	if row < 0 || rows <= 0 {
		return 0
	}
	if row >= rows {
		return rows - 1
	}
	return row
}

// MoveTo implements Reels.
func (s *ReelSet) MoveTo(reel, row int, animated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if reel < 0 || reel >= len(s.reels) {
		return
	}
	r := &s.reels[reel]
	r.row = clampRow(row, r.rows)
	if !animated {
		r.shown = r.row
	}
}

// CurrentRow implements Reels.
func (s *ReelSet) CurrentRow(reel int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if reel < 0 || reel >= len(s.reels) {
		return 0
	}
	return s.reels[reel].row
}

// ShownRow returns the row on screen for reel.
func (s *ReelSet) ShownRow(reel int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if reel < 0 || reel >= len(s.reels) {
		return 0
	}
	return s.reels[reel].shown
}

// Len returns the number of reels.
func (s *ReelSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reels)
}

// Label returns the text of row on reel, or "" outside the reel.
func (s *ReelSet) Label(reel, row int) string {
	s.mu.Lock()
	src := s.src
	ok := src != nil && reel >= 0 && reel < len(s.reels) && row >= 0 && row < s.reels[reel].rows
	s.mu.Unlock()
	if !ok {
		return ""
	}
	return src.RowLabel(reel, row)
}

// Focus returns the focused reel.
func (s *ReelSet) Focus() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focus
}

// SetFocus focuses reel if it exists.
func (s *ReelSet) SetFocus(reel int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if reel >= 0 && reel < len(s.reels) {
		s.focus = reel
	}
}

// FocusNext moves focus right, wrapping around.
func (s *ReelSet) FocusNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.reels); n > 0 {
		s.focus = (s.focus + 1) % n
	}
}

// FocusPrev moves focus left, wrapping around.
func (s *ReelSet) FocusPrev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.reels); n > 0 {
		s.focus = (s.focus - 1 + n) % n
	}
}

// Drag scrolls the focused reel by delta rows (positive = down) and
// returns the reel and its new row.
func (s *ReelSet) Drag(delta int) (reel, row int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.reels) == 0 {
		return 0, 0
	}
	reel = s.focus
	r := &s.reels[reel]
	r.row = clampRow(r.row+delta, r.rows)
	r.shown = r.row
	return reel, r.row
}

// Animating reports whether any reel is still moving toward its row.
func (s *ReelSet) Animating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reels {
		if r.shown != r.row {
			return true
		}
	}
	return false
}

// animSnap is the distance beyond which an animation jumps close to its
// target instead of spinning through every row.
const animSnap = 6

// Step advances every animation by one frame and reports whether any
// reel is still moving.
func (s *ReelSet) Step() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	moving := false
	for i := range s.reels {
		r := &s.reels[i]
		d := r.row - r.shown
		switch {
		case d == 0:
			continue
		case d > animSnap:
			r.shown = r.row - animSnap
		case d < -animSnap:
			r.shown = r.row + animSnap
		case d > 0:
			r.shown += max(1, d/2)
		default:
			r.shown -= max(1, -d/2)
		}
		if r.shown != r.row {
			moving = true
		}
	}
	return moving
}

// Window returns the rows from radius above to radius below the shown row
// of reel. Rows outside the reel are -1.
func (s *ReelSet) Window(reel, radius int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, 0, 2*radius+1)
	if reel < 0 || reel >= len(s.reels) {
		return out
	}
	r := s.reels[reel]
	for row := r.shown - radius; row <= r.shown+radius; row++ {
		if row < 0 || row >= r.rows {
			out = append(out, -1)
			continue
		}
		out = append(out, row)
	}
	return out
}

// WindowLabels is Window resolved to labels, read from a single state of
// the reel set. Rows outside the reel are "".
func (s *ReelSet) WindowLabels(reel, radius int) []string {
	s.mu.Lock()
	src := s.src
	var rows []int
	if reel >= 0 && reel < len(s.reels) {
		r := s.reels[reel]
		for row := r.shown - radius; row <= r.shown+radius; row++ {
			if row < 0 || row >= r.rows {
				rows = append(rows, -1)
				continue
			}
			rows = append(rows, row)
		}
	}
	s.mu.Unlock()

	labels := make([]string, len(rows))
	for i, row := range rows {
		if row >= 0 && src != nil {
			labels[i] = src.RowLabel(reel, row)
		}
	}
	return labels
}
