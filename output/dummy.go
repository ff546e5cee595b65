package output

import (
	"errors"

	"github.com/willibrandon/stroke/style"
)

// DummyWriter discards everything; used when stdout is /dev/null or
// otherwise unavailable (spec §4.B variant 3).
type DummyWriter struct{}

// NewDummyWriter creates a no-op writer.
func NewDummyWriter() *DummyWriter { return &DummyWriter{} }

func (w *DummyWriter) Write(s string)    {}
func (w *DummyWriter) WriteRaw(s string) {}
func (w *DummyWriter) Flush() error      { return nil }

func (w *DummyWriter) EraseScreen()    {}
func (w *DummyWriter) EraseEndOfLine() {}
func (w *DummyWriter) EraseDown()      {}

func (w *DummyWriter) EnterAlternateScreen() {}
func (w *DummyWriter) QuitAlternateScreen()  {}

func (w *DummyWriter) CursorGoto(row, col int) {}
func (w *DummyWriter) CursorUp(n int)          {}
func (w *DummyWriter) CursorDown(n int)        {}
func (w *DummyWriter) CursorForward(n int)     {}
func (w *DummyWriter) CursorBackward(n int)    {}

func (w *DummyWriter) HideCursor() {}
func (w *DummyWriter) ShowCursor() {}
func (w *DummyWriter) SetCursorShape(shape CursorShape) {}
func (w *DummyWriter) ResetCursorShape()                {}

func (w *DummyWriter) ResetAttributes()                                   {}
func (w *DummyWriter) SetAttributes(a style.Attrs, depth style.ColorDepth) {}

func (w *DummyWriter) EnableAutowrap()  {}
func (w *DummyWriter) DisableAutowrap() {}

func (w *DummyWriter) EnableMouseSupport()  {}
func (w *DummyWriter) DisableMouseSupport() {}

func (w *DummyWriter) EnableBracketedPaste()  {}
func (w *DummyWriter) DisableBracketedPaste() {}

func (w *DummyWriter) SetTitle(s string) {}
func (w *DummyWriter) ClearTitle()       {}

func (w *DummyWriter) Bell()      {}
func (w *DummyWriter) AskForCPR() {}

func (w *DummyWriter) GetSize() (rows, cols int)              { return 40, 80 }
func (w *DummyWriter) GetDefaultColorDepth() style.ColorDepth { return style.Depth1Bit }
func (w *DummyWriter) Fileno() (int, error)                   { return -1, errors.New("not implemented") }
