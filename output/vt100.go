package output

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/willibrandon/stroke/style"
	"golang.org/x/term"
)

const esc = "\x1b"

// VT100Writer is the full-featured terminal writer of spec §4.B. All writes
// are buffered; only Flush performs I/O.
type VT100Writer struct {
	out *bufio.Writer
	fd  int

	cache *style.Cache
	depth style.ColorDepth

	cursorVisible   bool
	cursorShapeSet  bool
	titleSuppressed bool

	lastErr error
}

// NewVT100Writer wraps f (typically os.Stdout) as a VT100Writer.
func NewVT100Writer(f *os.File, depth style.ColorDepth) *VT100Writer {
	term := os.Getenv("TERM")
	return &VT100Writer{
		out:             bufio.NewWriter(f),
		fd:              int(f.Fd()),
		cache:           style.NewCache(),
		depth:           depth,
		cursorVisible:   true,
		titleSuppressed: term == "linux" || term == "eterm-color",
	}
}

// Write appends user-controlled text, replacing every ESC byte with '?' so
// untrusted content cannot forge escape sequences.
func (w *VT100Writer) Write(s string) {
	w.out.WriteString(strings.ReplaceAll(s, esc, "?"))
}

// WriteRaw appends s verbatim, including any escape sequences it contains.
func (w *VT100Writer) WriteRaw(s string) {
	w.out.WriteString(s)
}

// Flush performs the buffered I/O. An empty buffer is a no-op: no syscall.
func (w *VT100Writer) Flush() error {
	if w.out.Buffered() == 0 {
		return nil
	}
	err := w.out.Flush()
	if err != nil {
		w.lastErr = err
		log.Printf("output: flush failed: %v", err)
		return nil // TransientIO: logged and swallowed, per spec §7.
	}
	return nil
}

func (w *VT100Writer) EraseScreen()    { w.WriteRaw(esc + "[2J") }
func (w *VT100Writer) EraseEndOfLine() { w.WriteRaw(esc + "[K") }
func (w *VT100Writer) EraseDown()      { w.WriteRaw(esc + "[J") }

func (w *VT100Writer) EnterAlternateScreen() { w.WriteRaw(esc + "[?1049h" + esc + "[H") }
func (w *VT100Writer) QuitAlternateScreen()  { w.WriteRaw(esc + "[?1049l") }

func (w *VT100Writer) CursorGoto(row, col int) {
	w.WriteRaw(esc + "[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H")
}

func (w *VT100Writer) CursorUp(n int)       { w.cursorMove(n, "A") }
func (w *VT100Writer) CursorDown(n int)     { w.cursorMove(n, "B") }
func (w *VT100Writer) CursorForward(n int)  { w.cursorMove(n, "C") }
func (w *VT100Writer) CursorBackward(n int) { w.cursorBackward(n) }

func (w *VT100Writer) cursorMove(n int, final string) {
	if n == 0 {
		return
	}
	if n == 1 {
		w.WriteRaw(esc + "[" + final)
		return
	}
	w.WriteRaw(esc + "[" + strconv.Itoa(n) + final)
}

func (w *VT100Writer) cursorBackward(n int) {
	if n == 0 {
		return
	}
	if n == 1 {
		w.WriteRaw("\b")
		return
	}
	w.WriteRaw(esc + "[" + strconv.Itoa(n) + "D")
}

func (w *VT100Writer) HideCursor() {
	if w.cursorVisible {
		w.WriteRaw(esc + "[?25l")
		w.cursorVisible = false
	}
}

func (w *VT100Writer) ShowCursor() {
	if !w.cursorVisible {
		w.WriteRaw(esc + "[?12l" + esc + "[?25h")
		w.cursorVisible = true
	}
}

func (w *VT100Writer) SetCursorShape(shape CursorShape) {
	w.cursorShapeSet = true
	switch shape {
	case CursorShapeBlock:
		w.WriteRaw(esc + "[2 q")
	case CursorShapeBlinkBlock:
		w.WriteRaw(esc + "[1 q")
	case CursorShapeUnderline:
		w.WriteRaw(esc + "[4 q")
	case CursorShapeBlinkUnderline:
		w.WriteRaw(esc + "[3 q")
	case CursorShapeBeam:
		w.WriteRaw(esc + "[6 q")
	case CursorShapeBlinkBeam:
		w.WriteRaw(esc + "[5 q")
	}
}

func (w *VT100Writer) ResetCursorShape() {
	if w.cursorShapeSet {
		w.WriteRaw(esc + "[0 q")
		w.cursorShapeSet = false
	}
}

func (w *VT100Writer) ResetAttributes() { w.WriteRaw(esc + "[0m") }

func (w *VT100Writer) SetAttributes(a style.Attrs, depth style.ColorDepth) {
	w.WriteRaw(w.cache.Escape(a, depth))
}

func (w *VT100Writer) EnableAutowrap()  { w.WriteRaw(esc + "[?7h") }
func (w *VT100Writer) DisableAutowrap() { w.WriteRaw(esc + "[?7l") }

func (w *VT100Writer) EnableMouseSupport() {
	w.WriteRaw(esc + "[?1000h" + esc + "[?1003h" + esc + "[?1015h" + esc + "[?1006h")
}

func (w *VT100Writer) DisableMouseSupport() {
	w.WriteRaw(esc + "[?1000l" + esc + "[?1003l" + esc + "[?1015l" + esc + "[?1006l")
}

func (w *VT100Writer) EnableBracketedPaste()  { w.WriteRaw(esc + "[?2004h") }
func (w *VT100Writer) DisableBracketedPaste() { w.WriteRaw(esc + "[?2004l") }

func (w *VT100Writer) SetTitle(s string) {
	if w.titleSuppressed {
		return
	}
	s = strings.ReplaceAll(s, esc, "")
	s = strings.ReplaceAll(s, "\x07", "")
	w.WriteRaw(esc + "]2;" + s + "\x07")
}

func (w *VT100Writer) ClearTitle() {
	if w.titleSuppressed {
		return
	}
	w.WriteRaw(esc + "]2;\x07")
}

func (w *VT100Writer) Bell()      { w.WriteRaw("\x07") }
func (w *VT100Writer) AskForCPR() { w.WriteRaw(esc + "[6n") }

func (w *VT100Writer) GetSize() (rows, cols int) {
	cols, rows, err := term.GetSize(w.fd)
	if err != nil {
		return 24, 80
	}
	return rows, cols
}

func (w *VT100Writer) GetDefaultColorDepth() style.ColorDepth { return w.depth }

func (w *VT100Writer) Fileno() (int, error) { return w.fd, nil }
