// Package screen implements the screen-buffer component (C): a mutable
// 2-D grid of styled character cells, a deferred z-indexed draw queue, and
// per-window cursor/menu anchor registration.
package screen

import (
	"sort"

	"github.com/mattn/go-runewidth"
)

// Char is a single screen cell: a grapheme cluster, its style classes, and
// its display width (1 or 2 columns). A width-2 cluster's right-hand
// neighbor cell is a zero-width continuation marker (spec §4.C).
type Char struct {
	Grapheme string
	Style    string
	Width    int
}

// continuation marks the right-hand cell of a wide character.
var continuation = Char{Grapheme: "", Style: "", Width: 0}

// Point is a (row, col) screen coordinate.
type Point struct {
	Row, Col int
}

// drawCall is a deferred draw enqueued via DrawWithZIndex.
type drawCall struct {
	z   int
	seq int
	fn  func()
}

// Screen is a sparse grid of Char addressed by (row, col), plus a deferred
// z-indexed draw queue and per-window cursor/menu anchors.
type Screen struct {
	cells map[Point]Char

	cursorPoints map[interface{}]Point
	menuPoints   map[interface{}]Point

	queue    []drawCall
	nextSeq  int

	width, height int
}

// New creates an empty screen of the given size.
func New(width, height int) *Screen {
	return &Screen{
		cells:        make(map[Point]Char),
		cursorPoints: make(map[interface{}]Point),
		menuPoints:   make(map[interface{}]Point),
		width:        width,
		height:       height,
	}
}

// Width and Height report the screen's dimensions.
func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

// Resize changes the screen's reported dimensions. Existing cells outside
// the new bounds are left in place but will not be visited by Render.
func (s *Screen) Resize(width, height int) {
	s.width = width
	s.height = height
}

// DrawChar writes ch directly at (row, col), bypassing the deferred queue.
// A width-2 grapheme also writes a continuation marker at (row, col+1).
func (s *Screen) DrawChar(row, col int, ch Char) {
	if ch.Width <= 0 {
		ch.Width = 1
	}
	s.cells[Point{row, col}] = ch
	if ch.Width == 2 {
		s.cells[Point{row, col + 1}] = continuation
	}
}

// GetChar returns the cell at (row, col), or the zero Char if unset.
func (s *Screen) GetChar(row, col int) Char {
	return s.cells[Point{row, col}]
}

// DrawWithZIndex enqueues fn to run during Render, ordered by ascending z,
// then ascending insertion order within the same z (spec §4.C, §8).
func (s *Screen) DrawWithZIndex(z int, fn func()) {
	s.queue = append(s.queue, drawCall{z: z, seq: s.nextSeq, fn: fn})
	s.nextSeq++
}

// Render resolves the deferred draw queue in (z asc, insertion asc) order,
// then clears the queue.
func (s *Screen) Render() {
	sort.SliceStable(s.queue, func(i, j int) bool {
		if s.queue[i].z != s.queue[j].z {
			return s.queue[i].z < s.queue[j].z
		}
		return s.queue[i].seq < s.queue[j].seq
	})
	for _, c := range s.queue {
		c.fn()
	}
	s.queue = s.queue[:0]
}

// SetCursorPosition registers the cursor anchor for window (any comparable
// key identifying a window).
func (s *Screen) SetCursorPosition(window interface{}, p Point) {
	s.cursorPoints[window] = p
}

// CursorPosition returns the registered cursor anchor for window, if any.
func (s *Screen) CursorPosition(window interface{}) (Point, bool) {
	p, ok := s.cursorPoints[window]
	return p, ok
}

// SetMenuPosition registers the completion-menu anchor for window.
func (s *Screen) SetMenuPosition(window interface{}, p Point) {
	s.menuPoints[window] = p
}

// MenuPosition returns the registered menu anchor for window, if any.
func (s *Screen) MenuPosition(window interface{}) (Point, bool) {
	p, ok := s.menuPoints[window]
	return p, ok
}

// CharWidth returns the display width of the first grapheme-relevant rune
// in s (1 or 2 columns), via go-runewidth.
func CharWidth(s string) int {
	for _, r := range s {
		if runewidth.RuneWidth(r) == 2 {
			return 2
		}
		return 1
	}
	return 0
}
