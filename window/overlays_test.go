package window

import (
	"strings"
	"testing"

	"github.com/willibrandon/stroke/controls"
	"github.com/willibrandon/stroke/screen"
)

func TestApplyOverlaysCursorLineMergesAcrossRow(t *testing.T) {
	w := &Window{CursorLine: func() bool { return true }}
	s := screen.New(20, 5)
	content := controls.UIContent{CursorPos: &controls.Point{Row: 2, Col: 3}}

	w.applyOverlays(s, content, 0, 0, 10, 5, map[int]int{2: 2})

	for col := 0; col < 10; col++ {
		if !strings.Contains(s.GetChar(2, col).Style, "cursor-line") {
			t.Fatalf("col %d missing cursor-line style", col)
		}
	}
	if strings.Contains(s.GetChar(1, 0).Style, "cursor-line") {
		t.Error("row 1 should not carry cursor-line style")
	}
}

func TestApplyOverlaysCursorColumnMergesDownColumn(t *testing.T) {
	w := &Window{CursorColumn: func() bool { return true }}
	s := screen.New(20, 5)
	content := controls.UIContent{CursorPos: &controls.Point{Row: 0, Col: 3}}

	w.applyOverlays(s, content, 0, 0, 10, 5, map[int]int{0: 0})

	for row := 0; row < 5; row++ {
		if !strings.Contains(s.GetChar(row, 3).Style, "cursor-column") {
			t.Fatalf("row %d missing cursor-column style", row)
		}
	}
}

func TestApplyOverlaysColorColumnsIgnoresOutOfRange(t *testing.T) {
	w := &Window{ColorColumns: []int{-1, 2, 50}}
	s := screen.New(20, 5)
	content := controls.UIContent{CursorPos: &controls.Point{Row: 0, Col: 0}}

	w.applyOverlays(s, content, 0, 0, 10, 5, map[int]int{0: 0})

	if !strings.Contains(s.GetChar(0, 2).Style, "color-column") {
		t.Error("column 2 should carry color-column style")
	}
	// -1 and 50 are out of [0, width) and must not panic or write anywhere
	// observable; the lack of a panic in this test is itself the assertion.
}

func TestMergeStyleRespectsNooverlayException(t *testing.T) {
	w := &Window{CursorLine: func() bool { return true }}
	s := screen.New(20, 5)
	s.DrawChar(2, 0, screen.Char{Grapheme: "x", Style: "class:nooverlay", Width: 1})
	content := controls.UIContent{CursorPos: &controls.Point{Row: 2, Col: 0}}

	w.applyOverlays(s, content, 0, 0, 10, 5, map[int]int{2: 2})

	if strings.Contains(s.GetChar(2, 0).Style, "cursor-line") {
		t.Error("cell marked nooverlay should not receive cursor-line style")
	}
}
