package window

import (
	"strings"

	"github.com/willibrandon/stroke/controls"
	"github.com/willibrandon/stroke/screen"
)

// applyOverlays merges cursor-line, cursor-column, and color-column
// styling into already-drawn cells, per spec §4.I step 8.
func (w *Window) applyOverlays(s *screen.Screen, content controls.UIContent, x, y, width, height int, visibleLineToRow map[int]int) {
	if content.CursorPos == nil {
		return
	}

	if w.cursorLineActive() {
		if row, ok := visibleLineToRow[content.CursorPos.Row]; ok {
			for col := x; col < x+width; col++ {
				mergeStyle(s, y+row, col, "class:cursor-line")
			}
		}
	}

	if w.cursorColumnActive() {
		col := x + content.CursorPos.Col
		if col >= x && col < x+width {
			for row := 0; row < height; row++ {
				mergeStyle(s, y+row, col, "class:cursor-column")
			}
		}
	}

	for _, cc := range w.ColorColumns {
		col := x + cc
		if cc < 0 || col >= x+width {
			continue
		}
		for row := 0; row < height; row++ {
			mergeStyle(s, y+row, col, "class:color-column")
		}
	}
}

// mergeStyle appends class into the cell's existing style, unless the
// cell already carries an overriding style (spec §4.I: "unless cell has
// an overriding style" — encoded here as a "nooverlay" token anywhere in
// the cell's style, which a fragment can set to opt out).
func mergeStyle(s *screen.Screen, row, col int, class string) {
	ch := s.GetChar(row, col)
	if strings.Contains(ch.Style, "nooverlay") {
		return
	}
	ch.Style = strings.TrimSpace(ch.Style + " " + class)
	s.DrawChar(row, col, ch)
}
