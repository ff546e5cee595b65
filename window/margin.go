package window

import (
	"strconv"

	"github.com/willibrandon/stroke/controls"
	"github.com/willibrandon/stroke/keys"
)

// NumberedMargin renders 1-based (or cursor-relative) line numbers (spec
// §4.I).
type NumberedMargin struct {
	Relative       bool
	DisplayTildes  bool
}

func digits(n int) int {
	if n < 1 {
		n = 1
	}
	d := 0
	for n > 0 {
		d++
		n /= 10
	}
	if d == 0 {
		d = 1
	}
	return d
}

func (m NumberedMargin) GetWidth(content controls.UIContent) int {
	return digits(content.LineCount) + 1
}

func (m NumberedMargin) CreateMargin(info *RenderInfo, width, height int) func(int) []controls.StyleAndTextTuple {
	content := info.UIContent
	cursorLine := 0
	if content.CursorPos != nil {
		cursorLine = content.CursorPos.Row
	}
	return func(row int) []controls.StyleAndTextTuple {
		lineNo := info.VScroll + row
		if lineNo < 0 || lineNo >= content.LineCount {
			text := ""
			if m.DisplayTildes {
				text = "~"
			}
			return []controls.StyleAndTextTuple{{Style: "class:line-number", Text: pad(text, width)}}
		}

		n := lineNo + 1
		style := "class:line-number"
		if lineNo == cursorLine {
			style = "class:line-number,current-line-number"
			if m.Relative {
				n = 0
			}
		} else if m.Relative {
			n = lineNo - cursorLine
			if n < 0 {
				n = -n
			}
		}
		return []controls.StyleAndTextTuple{{Style: style, Text: pad(strconv.Itoa(n), width)}}
	}
}

func pad(s string, width int) string {
	for len(s) < width-1 {
		s = " " + s
	}
	return s + " "
}

// ScrollbarMargin renders a 1-column scrollbar thumb, with optional
// arrows at each end (spec §4.I).
type ScrollbarMargin struct {
	DisplayArrows bool
}

func (m ScrollbarMargin) GetWidth(controls.UIContent) int { return 1 }

func (m ScrollbarMargin) CreateMargin(info *RenderInfo, width, height int) func(int) []controls.StyleAndTextTuple {
	contentHeight := info.UIContent.LineCount
	if contentHeight <= 0 {
		contentHeight = 1
	}
	visible := height
	if m.DisplayArrows {
		visible -= 2
	}
	if visible < 1 {
		visible = 1
	}

	thumbStart := info.VScroll * visible / contentHeight
	thumbSize := visible * visible / contentHeight
	if thumbSize < 1 {
		thumbSize = 1
	}

	return func(row int) []controls.StyleAndTextTuple {
		if m.DisplayArrows {
			if row == 0 {
				return []controls.StyleAndTextTuple{{Style: "class:scrollbar.arrow", Text: "^"}}
			}
			if row == height-1 {
				return []controls.StyleAndTextTuple{{Style: "class:scrollbar.arrow", Text: "v"}}
			}
			row--
		}
		if row >= thumbStart && row < thumbStart+thumbSize {
			return []controls.StyleAndTextTuple{{Style: "class:scrollbar.button", Text: " "}}
		}
		return []controls.StyleAndTextTuple{{Style: "class:scrollbar.background", Text: " "}}
	}
}

// ConditionalMargin forwards to Inner when Filter holds, and is width-0
// otherwise. A nil Filter defaults to always-true (spec §4.I).
type ConditionalMargin struct {
	Inner  Margin
	Filter keys.Filter
}

func (m ConditionalMargin) GetWidth(content controls.UIContent) int {
	if !m.Filter.Eval() {
		return 0
	}
	return m.Inner.GetWidth(content)
}

func (m ConditionalMargin) CreateMargin(info *RenderInfo, width, height int) func(int) []controls.StyleAndTextTuple {
	if !m.Filter.Eval() {
		return func(int) []controls.StyleAndTextTuple { return nil }
	}
	return m.Inner.CreateMargin(info, width, height)
}
