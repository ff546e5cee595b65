package controls

import (
	"strings"

	"github.com/willibrandon/stroke/keys"
)

// FormattedTextControl renders a static list of styled fragments, split
// into lines on embedded newlines. Fragments whose style contains the
// sentinel classes "[SetCursorPosition]" / "[SetMenuPosition]" mark where
// the cursor/menu anchor should be reported, mirroring the teacher's
// markup-to-styled-runs convention of encoding positions as zero-width
// marker fragments (spec §4.H).
type FormattedTextControl struct {
	Fragments []StyleAndTextTuple
	Focusable bool

	// GetFragments, if set, is called on every CreateContent instead of
	// using the static Fragments field (for dynamically generated text).
	GetFragments func() []StyleAndTextTuple
}

const (
	cursorMarker = "[SetCursorPosition]"
	menuMarker   = "[SetMenuPosition]"
)

func (c *FormattedTextControl) fragments() []StyleAndTextTuple {
	if c.GetFragments != nil {
		return c.GetFragments()
	}
	return c.Fragments
}

// splitLines breaks a fragment run into per-line fragment slices on '\n'
// within fragment text, preserving style and click handlers per split.
func splitLines(frags []StyleAndTextTuple) [][]StyleAndTextTuple {
	lines := [][]StyleAndTextTuple{{}}
	for _, f := range frags {
		parts := strings.Split(f.Text, "\n")
		for i, part := range parts {
			// Zero-width marker fragments (cursorMarker/menuMarker) carry no
			// text but must still appear in the split output so CreateContent
			// can locate them.
			if part != "" || strings.Contains(f.Style, cursorMarker) || strings.Contains(f.Style, menuMarker) {
				cur := &lines[len(lines)-1]
				*cur = append(*cur, StyleAndTextTuple{Style: f.Style, Text: part, OnClick: f.OnClick})
			}
			if i != len(parts)-1 {
				lines = append(lines, []StyleAndTextTuple{})
			}
		}
	}
	return lines
}

func (c *FormattedTextControl) CreateContent(width, height int) UIContent {
	lines := splitLines(c.fragments())
	var cursor, menu *Point
	for row, frags := range lines {
		col := 0
		for _, f := range frags {
			if strings.Contains(f.Style, cursorMarker) {
				p := Point{row, col}
				cursor = &p
			}
			if strings.Contains(f.Style, menuMarker) {
				p := Point{row, col}
				menu = &p
			}
			col += FragmentWidth(f.Text)
		}
	}
	return UIContent{
		LineCount: len(lines),
		GetLine: func(row int) []StyleAndTextTuple {
			if row < 0 || row >= len(lines) {
				return nil
			}
			return lines[row]
		},
		CursorPos:  cursor,
		MenuPos:    menu,
		ShowCursor: cursor != nil,
	}
}

func (c *FormattedTextControl) PreferredWidth(maxAvailableWidth int) *int {
	lines := splitLines(c.fragments())
	w := 0
	for _, l := range lines {
		if lw := FragmentsWidth(l); lw > w {
			w = lw
		}
	}
	return &w
}

func (c *FormattedTextControl) PreferredHeight(width, maxAvailableHeight int, wrapLines bool, getLinePrefix func(int, int) []StyleAndTextTuple) *int {
	content := c.CreateContent(width, maxAvailableHeight)
	if !wrapLines {
		h := content.LineCount
		return &h
	}
	h := 0
	for i := 0; i < content.LineCount; i++ {
		h += GetHeightForLine(content, i, width, getLinePrefix, nil)
	}
	return &h
}

func (c *FormattedTextControl) IsFocusable() bool { return c.Focusable }

// MouseHandler dispatches to the clicked fragment's OnClick, if any
// (spec §4.H: "mouse clicks find the fragment under the cell and invoke
// its handler if any").
func (c *FormattedTextControl) MouseHandler(content UIContent, ev MouseEvent) MouseHandlerResult {
	frags := content.Line(ev.Row)
	col := 0
	for _, f := range frags {
		w := FragmentWidth(f.Text)
		if ev.Col >= col && ev.Col < col+w {
			if f.OnClick != nil {
				return f.OnClick(ev)
			}
			return NotImplemented
		}
		col += w
	}
	return NotImplemented
}

func (c *FormattedTextControl) GetKeyBindings() keys.KeyBindings  { return nil }
func (c *FormattedTextControl) GetInvalidateEvents(notify func()) {}
