package window

import "github.com/willibrandon/stroke/controls"

// updateScroll recomputes vScroll/vScroll2/hScroll to keep the cursor
// visible, dispatching to the wrapped or unwrapped algorithm of spec
// §4.I. Caller holds w.mu.
func (w *Window) updateScroll(content controls.UIContent, width, height int) {
	if content.CursorPos == nil {
		return
	}
	if w.wrap() {
		w.updateScrollWrapped(content, width, height)
		w.hScroll = 0
		return
	}
	w.updateScrollUnwrapped(content, height)
}

// updateScrollUnwrapped implements the "Scroll without wrapping" formula
// of spec §4.I, grounded on cansyan-co's TextEditor.clampScroll/
// EnsureVisible top/bottom-offset logic.
func (w *Window) updateScrollUnwrapped(content controls.UIContent, height int) {
	cursorRow := content.CursorPos.Row
	top := w.ScrollOffsets.Top
	bottom := height - w.ScrollOffsets.Bottom

	if cursorRow < w.vScroll+top {
		w.vScroll = cursorRow - top
	}
	if cursorRow >= w.vScroll+bottom {
		w.vScroll = cursorRow - height + w.ScrollOffsets.Bottom + 1
	}

	maxScroll := content.LineCount - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if w.vScroll < 0 {
		w.vScroll = 0
	}
	if !w.allowScrollBeyondBottom() && w.vScroll > maxScroll {
		w.vScroll = maxScroll
	}
}

// updateScrollWrapped implements the wrapped-line variant: total height
// is the sum of GetHeightForLine results, and offsets apply on the
// wrapped-row axis rather than the source-line axis (spec §4.I).
func (w *Window) updateScrollWrapped(content controls.UIContent, width, height int) {
	// rowStart[n] is the first wrapped-row index of source line n;
	// rowStart[LineCount] is the total wrapped-row count.
	rowStart := make([]int, content.LineCount+1)
	acc := 0
	for i := 0; i < content.LineCount; i++ {
		rowStart[i] = acc
		acc += controls.GetHeightForLine(content, i, width, w.GetLinePrefix, nil)
	}
	rowStart[content.LineCount] = acc

	cursorLineHeight := 1
	if content.CursorPos.Row < content.LineCount {
		cursorLineHeight = controls.GetHeightForLine(content, content.CursorPos.Row, width, w.GetLinePrefix, nil)
	}
	cursorWrappedRow := rowStart[content.CursorPos.Row]
	if w.vScroll2 >= cursorLineHeight {
		w.vScroll2 = cursorLineHeight - 1
	}
	cursorWrappedRow += w.vScroll2

	top := w.ScrollOffsets.Top
	bottom := height - w.ScrollOffsets.Bottom

	if cursorWrappedRow < w.vScroll+top {
		w.vScroll = cursorWrappedRow - top
	}
	if cursorWrappedRow >= w.vScroll+bottom {
		w.vScroll = cursorWrappedRow - height + w.ScrollOffsets.Bottom + 1
	}

	if cursorLineHeight > height {
		// A single source line taller than the window: vScroll2 tracks
		// the sub-line offset within it (spec §4.I).
		if cursorWrappedRow-w.vScroll2 < w.vScroll {
			w.vScroll2 = cursorWrappedRow - w.vScroll
		}
	}

	maxScroll := acc - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if w.vScroll < 0 {
		w.vScroll = 0
	}
	if !w.allowScrollBeyondBottom() && w.vScroll > maxScroll {
		w.vScroll = maxScroll
	}
}
