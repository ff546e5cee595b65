// Package window implements component I: a Window container that maps a
// UIControl's line content onto the screen with scrolling (wrapped and
// unwrapped), margins, and cursor/column overlays, grounded on
// cansyan-co's TextEditor.EnsureVisible/clampScroll top/bottom-offset
// scrolling logic, generalized to the wrapped-line case that editor
// doesn't need.
package window

import (
	"sync"

	"github.com/willibrandon/stroke/controls"
	"github.com/willibrandon/stroke/layout"
	"github.com/willibrandon/stroke/screen"
)

// HAlign mirrors the horizontal alignment enum of layout's splits, scoped
// to a Window's own content alignment (spec §3).
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// ScrollOffsets controls how many rows/cols of margin are kept between the
// cursor and the window edge (spec §4.I).
type ScrollOffsets struct {
	Top, Bottom, Left, Right int
}

// Margin renders per-row fragments alongside a Window's content (spec
// §4.I).
type Margin interface {
	GetWidth(uiContent controls.UIContent) int
	CreateMargin(info *RenderInfo, width, height int) func(row int) []controls.StyleAndTextTuple
}

// Window is a leaf Container wrapping a single UIControl (spec §3/§4.I).
type Window struct {
	Content controls.UIControl

	LeftMargins, RightMargins []Margin

	Width, Height layout.Dimension
	HasWidth      bool
	HasHeight     bool

	ScrollOffsets     ScrollOffsets
	WrapLines         func() bool
	CursorLine        func() bool
	CursorColumn      func() bool
	ColorColumns      []int
	Align             HAlign
	Style             string
	Char              string
	GetLinePrefix     func(lineNo, wrapCount int) []controls.StyleAndTextTuple
	DontExtendWidth   bool
	DontExtendHeight  bool
	AllowScrollBeyondBottom func() bool

	mu          sync.Mutex
	vScroll     int
	vScroll2    int // sub-line offset within an over-tall wrapped line
	hScroll     int
	renderInfo  *RenderInfo
}

func (w *Window) GetChildren() []layout.Container { return nil }

func (w *Window) wrap() bool {
	if w.WrapLines == nil {
		return false
	}
	return w.WrapLines()
}

func (w *Window) cursorLineActive() bool {
	return w.CursorLine != nil && w.CursorLine()
}

func (w *Window) cursorColumnActive() bool {
	return w.CursorColumn != nil && w.CursorColumn()
}

func (w *Window) allowScrollBeyondBottom() bool {
	return w.AllowScrollBeyondBottom != nil && w.AllowScrollBeyondBottom()
}

// PreferredWidth reports the control's preferred width, or the window's
// explicit Width dimension when set (spec §4.I).
func (w *Window) PreferredWidth(maxAvailableWidth int) layout.Dimension {
	if w.HasWidth {
		return w.Width.Normalize()
	}
	if p := w.Content.PreferredWidth(maxAvailableWidth); p != nil {
		return layout.Dimension{Min: 0, Preferred: *p, Max: maxAvailableWidth, Weight: 1}.Normalize()
	}
	return layout.DefaultDimension()
}

// PreferredHeight reports the control's preferred height for the given
// width, or the window's explicit Height dimension when set (spec §4.I).
func (w *Window) PreferredHeight(width, maxAvailableHeight int) layout.Dimension {
	if w.HasHeight {
		return w.Height.Normalize()
	}
	if p := w.Content.PreferredHeight(width, maxAvailableHeight, w.wrap(), w.GetLinePrefix); p != nil {
		h := *p
		if h > maxAvailableHeight {
			h = maxAvailableHeight
		}
		return layout.Dimension{Min: 0, Preferred: h, Max: maxAvailableHeight, Weight: 1}.Normalize()
	}
	return layout.DefaultDimension()
}

// shrinkForExtendFilters trims wp down to the control's preferred size
// when DontExtendWidth/Height is set (spec §4.I step 1).
func (w *Window) shrinkForExtendFilters(wp layout.WritePosition) layout.WritePosition {
	if w.DontExtendWidth {
		if p := w.Content.PreferredWidth(wp.Width); p != nil && *p < wp.Width {
			wp.Width = *p
		}
	}
	if w.DontExtendHeight {
		if p := w.Content.PreferredHeight(wp.Width, wp.Height, w.wrap(), w.GetLinePrefix); p != nil && *p < wp.Height {
			wp.Height = *p
		}
	}
	return wp
}

func marginWidths(margins []Margin, content controls.UIContent) ([]int, int) {
	widths := make([]int, len(margins))
	total := 0
	for i, m := range margins {
		widths[i] = m.GetWidth(content)
		total += widths[i]
	}
	return widths, total
}

// WriteToScreen implements the full per-frame render contract of spec
// §4.I steps 1-10.
func (w *Window) WriteToScreen(s *screen.Screen, mh *layout.MouseHandlers, wp layout.WritePosition, parentStyle string, eraseBg bool, zIndex int) {
	wp = w.shrinkForExtendFilters(wp)

	leftWidths, leftTotal := marginWidths(w.LeftMargins, controls.UIContent{})
	rightWidths, rightTotal := marginWidths(w.RightMargins, controls.UIContent{})
	bodyWidth := wp.Width - leftTotal - rightTotal
	if bodyWidth < 0 {
		bodyWidth = 0
	}

	content := w.Content.CreateContent(bodyWidth, wp.Height)
	// Margins may depend on UIContent (e.g. digit width from line count);
	// recompute now that content exists.
	leftWidths, leftTotal = marginWidths(w.LeftMargins, content)
	rightWidths, rightTotal = marginWidths(w.RightMargins, content)
	bodyWidth = wp.Width - leftTotal - rightTotal
	if bodyWidth < 0 {
		bodyWidth = 0
	}

	w.mu.Lock()
	w.updateScroll(content, bodyWidth, wp.Height)
	vScroll, vScroll2, hScroll := w.vScroll, w.vScroll2, w.hScroll
	w.mu.Unlock()

	if eraseBg {
		fillRectWin(s, wp.XPos, wp.YPos, wp.Width, wp.Height, resolveStyle(parentStyle, w.Style))
	}

	x := wp.XPos
	for i, m := range w.LeftMargins {
		w.renderMargin(s, m, content, leftWidths[i], x, wp.YPos, wp.Height, vScroll)
		x += leftWidths[i]
	}
	bodyX := x
	x += bodyWidth
	for i, m := range w.RightMargins {
		w.renderMargin(s, m, content, rightWidths[i], x, wp.YPos, wp.Height, vScroll)
		x += rightWidths[i]
	}

	visibleLineToRow, rowToVisibleLine := w.renderBody(s, content, bodyX, wp.YPos, bodyWidth, wp.Height, vScroll, vScroll2, hScroll)

	w.applyOverlays(s, content, bodyX, wp.YPos, bodyWidth, wp.Height, visibleLineToRow)

	info := &RenderInfo{
		Window: w, UIContent: content,
		HScroll: hScroll, VScroll: vScroll,
		Width: bodyWidth, Height: wp.Height,
		Offsets:            w.ScrollOffsets,
		VisibleLineToRow:   visibleLineToRow,
		RowToVisibleLine:   rowToVisibleLine,
		XOffset: bodyX, YOffset: wp.YPos,
		WrapLines: w.wrap(),
	}
	w.mu.Lock()
	w.renderInfo = info
	w.mu.Unlock()

	if content.CursorPos != nil {
		if row, ok := visibleLineToRow[content.CursorPos.Row]; ok {
			s.SetCursorPosition(w, screen.Point{Row: wp.YPos + row, Col: bodyX + content.CursorPos.Col - hScroll})
		}
	}
	if content.MenuPos != nil {
		if row, ok := visibleLineToRow[content.MenuPos.Row]; ok {
			s.SetMenuPosition(w, screen.Point{Row: wp.YPos + row, Col: bodyX + content.MenuPos.Col - hScroll})
		}
	}
}

func resolveStyle(parent, own string) string {
	if own == "" {
		return parent
	}
	if parent == "" {
		return own
	}
	return parent + " " + own
}

func fillRectWin(s *screen.Screen, x, y, w, h int, style string) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.DrawChar(row, col, screen.Char{Grapheme: " ", Style: style, Width: 1})
		}
	}
}

func (w *Window) renderMargin(s *screen.Screen, m Margin, content controls.UIContent, width, x, y, height, vScroll int) {
	info := &RenderInfo{Window: w, UIContent: content, VScroll: vScroll, Height: height}
	fn := m.CreateMargin(info, width, height)
	for row := 0; row < height; row++ {
		frags := fn(row)
		col := x
		for _, f := range frags {
			for _, r := range f.Text {
				s.DrawChar(y+row, col, screen.Char{Grapheme: string(r), Style: f.Style, Width: screen.CharWidth(string(r))})
				col++
			}
		}
	}
}
