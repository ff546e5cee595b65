// Package controls implements component H: UI controls producing
// line-by-line styled content (UIContent) for a Window to render, plus the
// StyleAndTextTuple fragment type shared across the rendering pipeline.
package controls

import (
	"github.com/mattn/go-runewidth"

	"github.com/willibrandon/stroke/keys"
)

// MouseEvent describes a mouse interaction delivered to a control or a
// formatted-text fragment's embedded handler.
type MouseEvent struct {
	Row, Col int
	Button   string // "left", "middle", "right", "none"
	Kind     string // "down", "up", "move", "scroll-up", "scroll-down"
}

// MouseHandlerResult is returned by a control's MouseHandler.
type MouseHandlerResult int

const (
	NotImplemented MouseHandlerResult = iota
	Handled
)

// StyleAndTextTuple pairs a space-separated style-class string with a run
// of text, and optionally a mouse handler invoked when that run is
// clicked (spec §3).
type StyleAndTextTuple struct {
	Style   string
	Text    string
	OnClick func(ev MouseEvent) MouseHandlerResult
}

// Point is a (row, col) position within a control's content.
type Point struct {
	Row, Col int
}

// UIContent is an immutable per-frame snapshot of a control's rendered
// output (spec §3).
type UIContent struct {
	LineCount int
	GetLine   func(row int) []StyleAndTextTuple
	CursorPos *Point
	MenuPos   *Point
	ShowCursor bool
}

// Line fetches row's fragments, or nil if out of range.
func (c *UIContent) Line(row int) []StyleAndTextTuple {
	if row < 0 || row >= c.LineCount || c.GetLine == nil {
		return nil
	}
	return c.GetLine(row)
}

// UIControl is the interface every control (Buffer/FormattedText/Dummy)
// implements (spec §4.H).
type UIControl interface {
	CreateContent(width, height int) UIContent
	PreferredWidth(maxAvailableWidth int) *int
	PreferredHeight(width, maxAvailableHeight int, wrapLines bool, getLinePrefix func(lineNo, wrapCount int) []StyleAndTextTuple) *int
	IsFocusable() bool
	MouseHandler(content UIContent, ev MouseEvent) MouseHandlerResult
	GetKeyBindings() keys.KeyBindings
	// GetInvalidateEvents reports subscribable change sources; implemented
	// via callback registration rather than an event object (spec §4.H).
	GetInvalidateEvents(notify func())
}

// FragmentWidth returns the display width of text, honoring wide/CJK
// characters and zero-width combiners via go-runewidth (spec §4.H point 2,
// §9 open question on the wide-character table).
func FragmentWidth(text string) int {
	w := 0
	for _, r := range text {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// FragmentsWidth sums FragmentWidth over a run of fragments.
func FragmentsWidth(frags []StyleAndTextTuple) int {
	w := 0
	for _, f := range frags {
		w += FragmentWidth(f.Text)
	}
	return w
}

// GetHeightForLine computes how many display rows content.Line(lineNo)
// wraps to at the given width, honoring an optional line-prefix renderer
// (spec §4.H's UIContent.GetHeightForLine algorithm).
func GetHeightForLine(content UIContent, lineNo, width int, getLinePrefix func(lineNo, wrapCount int) []StyleAndTextTuple, sliceStop *int) int {
	if width <= 0 {
		width = 1
	}
	frags := content.Line(lineNo)
	if sliceStop != nil {
		frags = truncateFragments(frags, *sliceStop)
	}

	total := FragmentsWidth(frags)

	if getLinePrefix == nil {
		rows := (total + width - 1) / width
		if rows < 1 {
			rows = 1
		}
		return rows
	}

	// Prefixes vary per wrapped row, so rows must be grown iteratively:
	// row 0 gets the first-row prefix, each continuation row its own.
	remaining := total
	rows := 0
	for {
		prefix := FragmentsWidth(getLinePrefix(lineNo, rows))
		avail := width - prefix
		if avail < 1 {
			avail = 1
		}
		rows++
		remaining -= avail
		if remaining <= 0 {
			break
		}
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// truncateFragments returns the prefix of frags whose cumulative code-point
// count is at most stop.
func truncateFragments(frags []StyleAndTextTuple, stop int) []StyleAndTextTuple {
	out := make([]StyleAndTextTuple, 0, len(frags))
	n := 0
	for _, f := range frags {
		runes := []rune(f.Text)
		if n+len(runes) <= stop {
			out = append(out, f)
			n += len(runes)
			continue
		}
		take := stop - n
		if take > 0 {
			out = append(out, StyleAndTextTuple{Style: f.Style, Text: string(runes[:take]), OnClick: f.OnClick})
		}
		break
	}
	return out
}
