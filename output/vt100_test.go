package output

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/willibrandon/stroke/style"
)

func newTestVT100(buf *bytes.Buffer) *VT100Writer {
	return &VT100Writer{
		out:           bufio.NewWriter(buf),
		fd:            -1,
		cache:         style.NewCache(),
		depth:         style.Depth24Bit,
		cursorVisible: true,
	}
}

func TestVT100CursorMoveShortForm(t *testing.T) {
	var buf bytes.Buffer
	w := newTestVT100(&buf)

	w.CursorUp(1)
	w.Flush()
	if got := buf.String(); got != esc+"[A" {
		t.Errorf("CursorUp(1) = %q, want short form", got)
	}
}

func TestVT100CursorMoveZeroIsNoop(t *testing.T) {
	var buf bytes.Buffer
	w := newTestVT100(&buf)

	w.CursorDown(0)
	w.Flush()
	if got := buf.String(); got != "" {
		t.Errorf("CursorDown(0) = %q, want empty", got)
	}
}

func TestVT100CursorMoveParameterizedForm(t *testing.T) {
	var buf bytes.Buffer
	w := newTestVT100(&buf)

	w.CursorForward(5)
	w.Flush()
	if got := buf.String(); got != esc+"[5C" {
		t.Errorf("CursorForward(5) = %q, want parameterized form", got)
	}
}

func TestVT100CursorBackwardUsesBackspace(t *testing.T) {
	var buf bytes.Buffer
	w := newTestVT100(&buf)

	w.CursorBackward(1)
	w.Flush()
	if got := buf.String(); got != "\b" {
		t.Errorf("CursorBackward(1) = %q, want backspace", got)
	}
}

func TestVT100HideShowCursorIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	w := newTestVT100(&buf)

	w.HideCursor()
	w.HideCursor()
	w.Flush()
	if got := buf.String(); got != esc+"[?25l" {
		t.Errorf("double HideCursor emitted extra sequences: %q", got)
	}
}

func TestVT100WriteEscapesUntrustedESC(t *testing.T) {
	var buf bytes.Buffer
	w := newTestVT100(&buf)

	w.Write("a" + esc + "[31mb")
	w.Flush()
	if got := buf.String(); got != "a?[31mb" {
		t.Errorf("Write did not neutralize ESC: %q", got)
	}
}

func TestVT100SetTitleStripsControlBytes(t *testing.T) {
	var buf bytes.Buffer
	w := newTestVT100(&buf)

	w.SetTitle("hi" + esc + "there\x07")
	w.Flush()
	if got := buf.String(); got != esc+"]2;hithere\x07" {
		t.Errorf("SetTitle did not strip control bytes: %q", got)
	}
}

func TestVT100SetTitleSuppressedOnLinuxTerm(t *testing.T) {
	var buf bytes.Buffer
	w := newTestVT100(&buf)
	w.titleSuppressed = true

	w.SetTitle("hi")
	w.Flush()
	if got := buf.String(); got != "" {
		t.Errorf("SetTitle should be suppressed, got %q", got)
	}
}

func TestVT100FlushNoopOnEmptyBuffer(t *testing.T) {
	var buf bytes.Buffer
	w := newTestVT100(&buf)

	if err := w.Flush(); err != nil {
		t.Errorf("Flush on empty buffer returned error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Flush on empty buffer wrote %q", buf.String())
	}
}

func TestVT100EraseAndAlternateScreen(t *testing.T) {
	var buf bytes.Buffer
	w := newTestVT100(&buf)

	w.EraseScreen()
	w.EnterAlternateScreen()
	w.Flush()
	if got := buf.String(); got != esc+"[2J"+esc+"[?1049h"+esc+"[H" {
		t.Errorf("unexpected sequence: %q", got)
	}
}

func TestVT100SetAttributesUsesCache(t *testing.T) {
	var buf bytes.Buffer
	w := newTestVT100(&buf)

	w.SetAttributes(style.Attrs{Color: "ff0000"}, style.Depth24Bit)
	w.Flush()
	if got := buf.String(); got != esc+"[0;38;2;255;0;0m" {
		t.Errorf("SetAttributes = %q", got)
	}
}
