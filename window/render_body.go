package window

import (
	"github.com/willibrandon/stroke/controls"
	"github.com/willibrandon/stroke/screen"
)

// renderBody copies the control's content into the screen at (x, y),
// honoring alignment and (if enabled) line wrapping, and returns the
// bidirectional mapping between source line number and screen row used
// for cursor/menu placement and RenderInfo (spec §4.I steps 5-6).
func (w *Window) renderBody(s *screen.Screen, content controls.UIContent, x, y, width, height, vScroll, vScroll2, hScroll int) (map[int]int, map[int]int) {
	visibleLineToRow := make(map[int]int)
	rowToVisibleLine := make(map[int]int)

	if w.wrap() {
		return w.renderBodyWrapped(s, content, x, y, width, height, vScroll, vScroll2)
	}

	for row := 0; row < height; row++ {
		lineNo := vScroll + row
		if lineNo < 0 || lineNo >= content.LineCount {
			w.drawBlankRow(s, x, y+row, width)
			continue
		}
		frags := content.Line(lineNo)
		w.drawFragmentsAligned(s, frags, x, y+row, width, hScroll)
		visibleLineToRow[lineNo] = row
		rowToVisibleLine[row] = lineNo
	}
	return visibleLineToRow, rowToVisibleLine
}

func (w *Window) renderBodyWrapped(s *screen.Screen, content controls.UIContent, x, y, width, height, vScroll, vScroll2 int) (map[int]int, map[int]int) {
	visibleLineToRow := make(map[int]int)
	rowToVisibleLine := make(map[int]int)

	row := 0
	wrappedRow := 0
	for lineNo := 0; lineNo < content.LineCount && row < height; lineNo++ {
		lineHeight := controls.GetHeightForLine(content, lineNo, width, w.GetLinePrefix, nil)
		frags := content.Line(lineNo)
		subLines := wrapFragments(frags, width)

		skipSub := 0
		if lineHeight > height {
			skipSub = vScroll2
		}
		for sub := 0; sub < lineHeight; sub++ {
			if wrappedRow < vScroll || sub < skipSub {
				wrappedRow++
				continue
			}
			if row >= height {
				break
			}
			var frag []controls.StyleAndTextTuple
			if sub < len(subLines) {
				frag = subLines[sub]
			}
			w.drawFragmentsAligned(s, frag, x, y+row, width, 0)
			if sub == 0 {
				visibleLineToRow[lineNo] = row
			}
			rowToVisibleLine[row] = lineNo
			row++
			wrappedRow++
		}
	}
	for ; row < height; row++ {
		w.drawBlankRow(s, x, y+row, width)
	}
	return visibleLineToRow, rowToVisibleLine
}

// wrapFragments splits a fragment run into display-width-bounded chunks.
func wrapFragments(frags []controls.StyleAndTextTuple, width int) [][]controls.StyleAndTextTuple {
	if width < 1 {
		width = 1
	}
	var lines [][]controls.StyleAndTextTuple
	var cur []controls.StyleAndTextTuple
	col := 0
	for _, f := range frags {
		for _, r := range f.Text {
			rw := controls.FragmentWidth(string(r))
			if col+rw > width {
				lines = append(lines, cur)
				cur = nil
				col = 0
			}
			cur = append(cur, controls.StyleAndTextTuple{Style: f.Style, Text: string(r)})
			col += rw
		}
	}
	lines = append(lines, cur)
	return lines
}

func (w *Window) drawBlankRow(s *screen.Screen, x, y, width int) {
	style := w.Style
	ch := w.Char
	if ch == "" {
		ch = " "
	}
	for col := x; col < x+width; col++ {
		s.DrawChar(y, col, screen.Char{Grapheme: ch, Style: style, Width: 1})
	}
}

func (w *Window) drawFragmentsAligned(s *screen.Screen, frags []controls.StyleAndTextTuple, x, y, width, hScroll int) {
	total := controls.FragmentsWidth(frags)
	pad := width - total
	start := x
	if pad > 0 {
		switch w.Align {
		case AlignCenter:
			start = x + pad/2
		case AlignRight:
			start = x + pad
		}
	}

	for col := x; col < x+width; col++ {
		s.DrawChar(y, col, screen.Char{Grapheme: " ", Style: w.Style, Width: 1})
	}

	col := start
	skip := hScroll
	for _, f := range frags {
		for _, r := range f.Text {
			rw := controls.FragmentWidth(string(r))
			if skip > 0 {
				skip -= rw
				continue
			}
			if col >= x+width {
				return
			}
			if col >= x {
				s.DrawChar(y, col, screen.Char{Grapheme: string(r), Style: resolveStyle(w.Style, f.Style), Width: rw})
			}
			col += rw
		}
	}
}
