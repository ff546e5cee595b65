package app

import (
	"errors"
	"testing"

	"github.com/willibrandon/stroke/keys"
	"github.com/willibrandon/stroke/layout"
	"github.com/willibrandon/stroke/screen"
)

// fakeRoot is a minimal layout.Container that paints a single fixed
// character at the origin, enough to drive Application's frame loop.
type fakeRoot struct {
	writes int
}

func (r *fakeRoot) PreferredWidth(int) layout.Dimension  { return layout.DefaultDimension() }
func (r *fakeRoot) PreferredHeight(int, int) layout.Dimension { return layout.DefaultDimension() }
func (r *fakeRoot) GetChildren() []layout.Container       { return nil }
func (r *fakeRoot) WriteToScreen(s *screen.Screen, mh *layout.MouseHandlers, wp layout.WritePosition, parentStyle string, eraseBg bool, zIndex int) {
	r.writes++
	s.DrawChar(0, 0, screen.Char{Grapheme: "x", Width: 1})
}

func TestApplicationRenderFrameDrivesRootAndRenderer(t *testing.T) {
	root := &fakeRoot{}
	w := &recordingWriter{}
	a := New(root, w, keys.NewRegistry())

	if err := a.RenderFrame(); err != nil {
		t.Fatal(err)
	}
	if root.writes != 1 {
		t.Fatalf("root.writes = %d, want 1", root.writes)
	}
	if len(w.writes) == 0 {
		t.Error("expected the renderer to emit writes for the drawn cell")
	}
}

func TestApplicationRunFeedsKeysAndRendersUntilClosed(t *testing.T) {
	root := &fakeRoot{}
	w := &recordingWriter{}
	a := New(root, w, keys.NewRegistry())

	input := make(chan keys.KeyPress, 2)
	input <- keys.KeyPress{Key: keys.KoC{IsChar: true, Char: 'a'}, Data: "a"}
	input <- keys.KeyPress{Key: keys.KoC{IsChar: true, Char: 'b'}, Data: "b"}
	close(input)

	if err := a.Run(input); err != nil {
		t.Fatal(err)
	}
	if root.writes == 0 {
		t.Error("expected at least one frame rendered before input closed")
	}
}

func TestApplicationExitStopsRunWithError(t *testing.T) {
	root := &fakeRoot{}
	w := &recordingWriter{}
	a := New(root, w, keys.NewRegistry())

	wantErr := errors.New("boom")
	a.Exit(wantErr)

	input := make(chan keys.KeyPress, 1)
	input <- keys.KeyPress{Key: keys.KoC{IsChar: true, Char: 'a'}, Data: "a"}
	close(input)

	err := a.Run(input)
	if err != wantErr {
		t.Fatalf("got err %v, want %v", err, wantErr)
	}
}

func TestApplicationInvalidateIsConsumedOnce(t *testing.T) {
	root := &fakeRoot{}
	w := &recordingWriter{}
	a := New(root, w, keys.NewRegistry())

	a.Invalidate()
	if !a.consumeInvalidated() {
		t.Fatal("expected invalidated after Invalidate()")
	}
	if a.consumeInvalidated() {
		t.Fatal("expected consumeInvalidated to reset the flag")
	}
}
