package output

import (
	"bytes"
	"testing"
)

func TestPlainWriterCursorDownIsNewlines(t *testing.T) {
	var buf bytes.Buffer
	w := NewPlainWriter(&buf)

	w.CursorDown(3)
	w.Flush()
	if got := buf.String(); got != "\n\n\n" {
		t.Errorf("CursorDown(3) = %q, want three newlines", got)
	}
}

func TestPlainWriterCursorForwardIsSpaces(t *testing.T) {
	var buf bytes.Buffer
	w := NewPlainWriter(&buf)

	w.CursorForward(4)
	w.Flush()
	if got := buf.String(); got != "    " {
		t.Errorf("CursorForward(4) = %q, want four spaces", got)
	}
}

func TestPlainWriterWriteIsLiteral(t *testing.T) {
	var buf bytes.Buffer
	w := NewPlainWriter(&buf)

	w.Write("hello\x1b[31m")
	w.Flush()
	if got := buf.String(); got != "hello\x1b[31m" {
		t.Errorf("Write = %q, want literal passthrough", got)
	}
}

func TestPlainWriterGetSize(t *testing.T) {
	w := NewPlainWriter(&bytes.Buffer{})
	rows, cols := w.GetSize()
	if rows != 24 || cols != 80 {
		t.Errorf("GetSize = (%d,%d), want (24,80)", rows, cols)
	}
}
