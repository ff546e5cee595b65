package app

import (
	"testing"

	"github.com/willibrandon/stroke/output"
	"github.com/willibrandon/stroke/screen"
	"github.com/willibrandon/stroke/style"
)

// recordingWriter wraps a DummyWriter and counts the calls that matter for
// verifying the diff-only contract: writes, cursor repositions, and
// attribute changes.
type recordingWriter struct {
	output.DummyWriter
	writes   []string
	gotos    int
	setAttrs int
}

func (w *recordingWriter) Write(s string)                                 { w.writes = append(w.writes, s) }
func (w *recordingWriter) CursorGoto(r, c int)                            { w.gotos++ }
func (w *recordingWriter) SetAttributes(a style.Attrs, d style.ColorDepth) { w.setAttrs++ }

func TestRenderOnlyWritesChangedCells(t *testing.T) {
	w := &recordingWriter{}
	r := NewRenderer(w, nil)

	s := screen.New(5, 1)
	s.DrawChar(0, 0, screen.Char{Grapheme: "a", Width: 1})
	s.DrawChar(0, 1, screen.Char{Grapheme: "b", Width: 1})
	if err := r.Render(s, nil); err != nil {
		t.Fatal(err)
	}
	firstWrites := len(w.writes)
	if firstWrites == 0 {
		t.Fatal("expected writes on first render")
	}

	// Re-render an identical screen: nothing changed, so nothing new should
	// be written.
	w.writes = nil
	if err := r.Render(s, nil); err != nil {
		t.Fatal(err)
	}
	if len(w.writes) != 0 {
		t.Errorf("expected zero writes on unchanged re-render, got %d: %v", len(w.writes), w.writes)
	}
}

func TestRenderResizeForcesFullRedraw(t *testing.T) {
	w := &recordingWriter{}
	r := NewRenderer(w, nil)

	s := screen.New(5, 1)
	s.DrawChar(0, 0, screen.Char{Grapheme: "a", Width: 1})
	if err := r.Render(s, nil); err != nil {
		t.Fatal(err)
	}

	s2 := screen.New(6, 1)
	s2.DrawChar(0, 0, screen.Char{Grapheme: "a", Width: 1})
	w.writes = nil
	if err := r.Render(s2, nil); err != nil {
		t.Fatal(err)
	}
	if len(w.writes) == 0 {
		t.Error("expected a full redraw after resize even though cell (0,0) is unchanged")
	}
}

func TestRenderResetForcesNextFullRedraw(t *testing.T) {
	w := &recordingWriter{}
	r := NewRenderer(w, nil)

	s := screen.New(5, 1)
	s.DrawChar(0, 0, screen.Char{Grapheme: "a", Width: 1})
	r.Render(s, nil)

	r.Reset()
	w.writes = nil
	r.Render(s, nil)
	if len(w.writes) == 0 {
		t.Error("expected Reset to force a redraw on the next Render")
	}
}
