// Package output implements the terminal output component (B): a buffered
// writer, cursor/screen state machine, and escape emission, with VT100,
// plain-text, and dummy variants.
package output

import (
	"github.com/willibrandon/stroke/style"
)

// CursorShape enumerates the VT100 cursor shapes (spec §6).
type CursorShape int

const (
	CursorShapeNever CursorShape = iota
	CursorShapeBlock
	CursorShapeBlinkBlock
	CursorShapeUnderline
	CursorShapeBlinkUnderline
	CursorShapeBeam
	CursorShapeBlinkBeam
)

// Writer is the full terminal-output contract of spec §4.B.
type Writer interface {
	Write(s string)
	WriteRaw(s string)
	Flush() error

	EraseScreen()
	EraseEndOfLine()
	EraseDown()

	EnterAlternateScreen()
	QuitAlternateScreen()

	CursorGoto(row, col int)
	CursorUp(n int)
	CursorDown(n int)
	CursorForward(n int)
	CursorBackward(n int)

	HideCursor()
	ShowCursor()
	SetCursorShape(shape CursorShape)
	ResetCursorShape()

	ResetAttributes()
	SetAttributes(a style.Attrs, depth style.ColorDepth)

	EnableAutowrap()
	DisableAutowrap()

	EnableMouseSupport()
	DisableMouseSupport()

	EnableBracketedPaste()
	DisableBracketedPaste()

	SetTitle(s string)
	ClearTitle()

	Bell()
	AskForCPR()

	GetSize() (rows, cols int)
	GetDefaultColorDepth() style.ColorDepth
	Fileno() (int, error)
}
