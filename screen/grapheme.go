package screen

import (
	"github.com/rivo/uniseg"
)

// DrawText writes text starting at (row, col), advancing one column per
// grapheme cluster (two for wide clusters), wrapping to the next row on '\n'.
// It segments text with uniseg so combining marks and ZWJ sequences occupy a
// single cell rather than one cell per rune.
func (s *Screen) DrawText(row, col int, text, style string) {
	gr := uniseg.NewGraphemes(text)
	c := col
	for gr.Next() {
		cluster := gr.Str()
		if cluster == "\n" {
			row++
			c = col
			continue
		}
		w := CharWidth(cluster)
		if w == 0 {
			w = 1
		}
		s.DrawChar(row, c, Char{Grapheme: cluster, Style: style, Width: w})
		c += w
	}
}
