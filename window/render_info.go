package window

import "github.com/willibrandon/stroke/controls"

// RenderInfo is an immutable per-frame snapshot of a Window's scroll and
// coordinate-mapping state (spec §3). It is reborn every frame and must
// not be retained across frames (spec §9: "treat RenderInfo as a
// per-frame value; drop with the frame").
type RenderInfo struct {
	Window    *Window
	UIContent controls.UIContent

	HScroll, VScroll int
	Width, Height    int
	Offsets          ScrollOffsets

	VisibleLineToRow map[int]int
	RowToVisibleLine map[int]int

	XOffset, YOffset int
	WrapLines        bool
}

// FirstVisibleLine returns the lowest source line number currently drawn.
func (r *RenderInfo) FirstVisibleLine() int {
	min := -1
	for ln := range r.VisibleLineToRow {
		if min == -1 || ln < min {
			min = ln
		}
	}
	if min == -1 {
		return 0
	}
	return min
}

// LastVisibleLine returns the highest source line number currently drawn.
func (r *RenderInfo) LastVisibleLine() int {
	max := -1
	for ln := range r.VisibleLineToRow {
		if ln > max {
			max = ln
		}
	}
	if max == -1 {
		return 0
	}
	return max
}

// CenterVisibleLine returns the source line number at the vertical
// midpoint of the currently drawn rows.
func (r *RenderInfo) CenterVisibleLine() int {
	if ln, ok := r.RowToVisibleLine[r.Height/2]; ok {
		return ln
	}
	return r.FirstVisibleLine()
}

// CursorPosition returns the cursor's (row, col) within the window, or
// (0, 0) if the content reports no cursor.
func (r *RenderInfo) CursorPosition() (row, col int) {
	if r.UIContent.CursorPos == nil {
		return 0, 0
	}
	if row, ok := r.VisibleLineToRow[r.UIContent.CursorPos.Row]; ok {
		return row, r.UIContent.CursorPos.Col - r.HScroll
	}
	return 0, 0
}

// ScrollPercentage returns vertical scroll progress in [0, 100].
func (r *RenderInfo) ScrollPercentage() int {
	maxScroll := r.UIContent.LineCount - r.Height
	if maxScroll <= 0 {
		return 100
	}
	pct := r.VScroll * 100 / maxScroll
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}
