package app

import (
	"github.com/willibrandon/stroke/output"
	"github.com/willibrandon/stroke/screen"
	"github.com/willibrandon/stroke/style"
)

// Renderer turns a rendered Screen into the minimal escape-sequence diff
// against what it last wrote, per spec §4.B's "Output emits minimal diff
// of escape sequences" contract. It owns the previous frame's cells so a
// cell whose grapheme and style are unchanged between frames costs zero
// writes.
type Renderer struct {
	writer output.Writer
	sheet  *style.Sheet
	depth  style.ColorDepth

	prevCells map[screen.Point]screen.Char
	prevSize  struct{ w, h int }
}

// NewRenderer constructs a Renderer writing through w, resolving style
// strings via sheet (style.DefaultSheet() if nil).
func NewRenderer(w output.Writer, sheet *style.Sheet) *Renderer {
	if sheet == nil {
		sheet = style.DefaultSheet()
	}
	return &Renderer{writer: w, sheet: sheet, depth: w.GetDefaultColorDepth(), prevCells: make(map[screen.Point]screen.Char)}
}

// Render diffs s against the previously rendered frame and writes only
// the cells that changed, then positions the cursor at cursorWindow's
// registered anchor (if any) and flushes.
func (r *Renderer) Render(s *screen.Screen, cursorWindow interface{}) error {
	w, h := s.Width(), s.Height()
	if w != r.prevSize.w || h != r.prevSize.h {
		r.writer.EraseScreen()
		r.prevCells = make(map[screen.Point]screen.Char)
		r.prevSize.w, r.prevSize.h = w, h
	}

	var lastStyle string
	haveLastStyle := false
	lastRow, lastCol := -1, -1

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			p := screen.Point{Row: row, Col: col}
			cur := s.GetChar(row, col)
			if cur.Grapheme == "" && cur.Width == 0 {
				cur = screen.Char{Grapheme: " ", Width: 1}
			}
			if prev, ok := r.prevCells[p]; ok && prev == cur {
				continue
			}
			r.prevCells[p] = cur

			if row != lastRow || col != lastCol {
				r.writer.CursorGoto(row+1, col+1)
			}
			if !haveLastStyle || cur.Style != lastStyle {
				r.writer.SetAttributes(r.sheet.Resolve(cur.Style), r.depth)
				lastStyle, haveLastStyle = cur.Style, true
			}
			r.writer.Write(cur.Grapheme)

			lastRow, lastCol = row, col+cur.Width
		}
	}

	r.writer.ResetAttributes()

	if cursorWindow != nil {
		if p, ok := s.CursorPosition(cursorWindow); ok {
			r.writer.CursorGoto(p.Row+1, p.Col+1)
		}
	}

	return r.writer.Flush()
}

// Reset forces the next Render to redraw every cell, e.g. after a resize
// the Screen itself didn't report or a corrupted terminal state.
func (r *Renderer) Reset() {
	r.prevCells = make(map[screen.Point]screen.Char)
}
