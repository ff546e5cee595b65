package window

import (
	"strconv"
	"strings"
	"testing"

	"github.com/willibrandon/stroke/controls"
)

func uiContentWithCursorRow(lineCount, cursorRow int) controls.UIContent {
	return controls.UIContent{LineCount: lineCount, CursorPos: &controls.Point{Row: cursorRow, Col: 0}}
}

func TestNumberedMarginWidthIsDigitsPlusOne(t *testing.T) {
	m := NumberedMargin{}
	if w := m.GetWidth(controls.UIContent{LineCount: 100}); w != 4 {
		t.Errorf("got %d, want 4 (3 digits + 1)", w)
	}
	if w := m.GetWidth(controls.UIContent{LineCount: 9}); w != 2 {
		t.Errorf("got %d, want 2 (1 digit + 1)", w)
	}
}

func TestNumberedMarginCurrentLineGetsCurrentLineNumberClass(t *testing.T) {
	m := NumberedMargin{}
	info := &RenderInfo{UIContent: uiContentWithCursorRow(10, 4), VScroll: 0}
	fn := m.CreateMargin(info, 3, 10)

	frags := fn(4)
	if len(frags) != 1 || !strings.Contains(frags[0].Style, "current-line-number") {
		t.Fatalf("got %+v, want current-line-number style on cursor row", frags)
	}
	if strconv.Itoa(5) != strings.TrimSpace(frags[0].Text) {
		t.Errorf("text = %q, want line number 5", frags[0].Text)
	}
}

func TestNumberedMarginNonCurrentLineShowsOneBasedNumber(t *testing.T) {
	m := NumberedMargin{}
	info := &RenderInfo{UIContent: uiContentWithCursorRow(10, 4), VScroll: 0}
	fn := m.CreateMargin(info, 3, 10)

	frags := fn(0)
	if strings.TrimSpace(frags[0].Text) != "1" {
		t.Errorf("text = %q, want 1", frags[0].Text)
	}
}

func TestNumberedMarginRelativeShowsDistanceFromCursor(t *testing.T) {
	m := NumberedMargin{Relative: true}
	info := &RenderInfo{UIContent: uiContentWithCursorRow(10, 4), VScroll: 0}
	fn := m.CreateMargin(info, 3, 10)

	if got := strings.TrimSpace(fn(0)[0].Text); got != "4" {
		t.Errorf("row 0 relative to cursor row 4: got %q, want 4", got)
	}
	if got := strings.TrimSpace(fn(4)[0].Text); got != "0" {
		t.Errorf("cursor row relative: got %q, want 0", got)
	}
}

func TestNumberedMarginPastEndShowsTildeWhenConfigured(t *testing.T) {
	m := NumberedMargin{DisplayTildes: true}
	info := &RenderInfo{UIContent: uiContentWithCursorRow(3, 0), VScroll: 0}
	fn := m.CreateMargin(info, 2, 10)

	if got := strings.TrimSpace(fn(5)[0].Text); got != "~" {
		t.Errorf("past-end row: got %q, want ~", got)
	}
}

func TestScrollbarMarginWidthIsOne(t *testing.T) {
	if (ScrollbarMargin{}).GetWidth(controls.UIContent{}) != 1 {
		t.Error("ScrollbarMargin width should always be 1")
	}
}

func TestScrollbarMarginThumbPositionNoArrows(t *testing.T) {
	m := ScrollbarMargin{}
	info := &RenderInfo{UIContent: controls.UIContent{LineCount: 100}, VScroll: 45}
	fn := m.CreateMargin(info, 1, 10)

	if frags := fn(4); frags[0].Style != "class:scrollbar.button" {
		t.Errorf("row 4 (thumbStart) = %q, want scrollbar.button", frags[0].Style)
	}
	if frags := fn(3); frags[0].Style != "class:scrollbar.background" {
		t.Errorf("row 3 (above thumb) = %q, want scrollbar.background", frags[0].Style)
	}
}

func TestScrollbarMarginArrowsAtEnds(t *testing.T) {
	m := ScrollbarMargin{DisplayArrows: true}
	info := &RenderInfo{UIContent: controls.UIContent{LineCount: 100}, VScroll: 40}
	fn := m.CreateMargin(info, 1, 10)

	if frags := fn(0); frags[0].Text != "^" {
		t.Errorf("row 0 should be the up arrow, got %+v", frags)
	}
	if frags := fn(9); frags[0].Text != "v" {
		t.Errorf("last row should be the down arrow, got %+v", frags)
	}
}

func TestConditionalMarginForwardsWhenFilterTrue(t *testing.T) {
	inner := NumberedMargin{}
	cm := ConditionalMargin{Inner: inner, Filter: func() bool { return true }}
	if cm.GetWidth(controls.UIContent{LineCount: 100}) != inner.GetWidth(controls.UIContent{LineCount: 100}) {
		t.Error("expected width forwarded to inner margin")
	}
}

func TestConditionalMarginZeroWidthWhenFilterFalse(t *testing.T) {
	cm := ConditionalMargin{Inner: NumberedMargin{}, Filter: func() bool { return false }}
	if w := cm.GetWidth(controls.UIContent{LineCount: 100}); w != 0 {
		t.Errorf("got %d, want 0", w)
	}
	fn := cm.CreateMargin(&RenderInfo{}, 0, 10)
	if got := fn(0); got != nil {
		t.Errorf("got %+v, want nil when filter false", got)
	}
}
