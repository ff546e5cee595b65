package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/willibrandon/stroke/style"
)

// PlainWriter is a terminal output variant with no escape sequences: cursor
// movement and color are approximated with whitespace/newlines or dropped
// entirely (spec §4.B variant 2).
type PlainWriter struct {
	out *bufio.Writer
}

// NewPlainWriter wraps w as a plain-text writer.
func NewPlainWriter(w io.Writer) *PlainWriter {
	return &PlainWriter{out: bufio.NewWriter(w)}
}

func (w *PlainWriter) Write(s string)    { w.out.WriteString(s) }
func (w *PlainWriter) WriteRaw(s string) { w.out.WriteString(s) }

func (w *PlainWriter) Flush() error {
	if w.out.Buffered() == 0 {
		return nil
	}
	_ = w.out.Flush()
	return nil
}

func (w *PlainWriter) EraseScreen()    {}
func (w *PlainWriter) EraseEndOfLine() {}
func (w *PlainWriter) EraseDown()      {}

func (w *PlainWriter) EnterAlternateScreen() {}
func (w *PlainWriter) QuitAlternateScreen()  {}

func (w *PlainWriter) CursorGoto(row, col int) {}
func (w *PlainWriter) CursorUp(n int)          {}
func (w *PlainWriter) CursorDown(n int) {
	if n > 0 {
		w.out.WriteString(strings.Repeat("\n", n))
	}
}
func (w *PlainWriter) CursorForward(n int) {
	if n > 0 {
		w.out.WriteString(strings.Repeat(" ", n))
	}
}
func (w *PlainWriter) CursorBackward(n int) {}

func (w *PlainWriter) HideCursor() {}
func (w *PlainWriter) ShowCursor() {}
func (w *PlainWriter) SetCursorShape(shape CursorShape) {}
func (w *PlainWriter) ResetCursorShape()                {}

func (w *PlainWriter) ResetAttributes()                                      {}
func (w *PlainWriter) SetAttributes(a style.Attrs, depth style.ColorDepth)    {}

func (w *PlainWriter) EnableAutowrap()  {}
func (w *PlainWriter) DisableAutowrap() {}

func (w *PlainWriter) EnableMouseSupport()  {}
func (w *PlainWriter) DisableMouseSupport() {}

func (w *PlainWriter) EnableBracketedPaste()  {}
func (w *PlainWriter) DisableBracketedPaste() {}

func (w *PlainWriter) SetTitle(s string) {}
func (w *PlainWriter) ClearTitle()       {}

func (w *PlainWriter) Bell()      {}
func (w *PlainWriter) AskForCPR() {}

func (w *PlainWriter) GetSize() (rows, cols int)              { return 24, 80 }
func (w *PlainWriter) GetDefaultColorDepth() style.ColorDepth { return style.Depth1Bit }
func (w *PlainWriter) Fileno() (int, error)                   { return -1, nil }
