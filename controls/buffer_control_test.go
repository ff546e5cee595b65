package controls

import (
	"testing"
	"time"

	"github.com/willibrandon/stroke/document"
)

func bufferWith(text string, cursor int) *document.Buffer {
	b := document.NewBuffer()
	b.SetDocument(document.New(text, cursor, nil), true)
	return b
}

func TestBufferControlCreateContentReflectsLines(t *testing.T) {
	b := bufferWith("hello\nworld", 11)
	c := &BufferControl{Buffer: b}

	content := c.CreateContent(80, 10)
	if content.LineCount != 2 {
		t.Fatalf("LineCount = %d, want 2", content.LineCount)
	}
	if content.CursorPos.Row != 1 || content.CursorPos.Col != 5 {
		t.Fatalf("CursorPos = %+v, want row 1 col 5", content.CursorPos)
	}
}

func TestBufferControlCachesUntilDocumentChanges(t *testing.T) {
	b := bufferWith("abc", 3)
	c := &BufferControl{Buffer: b}

	first := c.CreateContent(80, 10)
	second := c.CreateContent(80, 10)
	if &first != &second && first.LineCount != second.LineCount {
		t.Fatalf("expected identical cached content")
	}

	b.InsertText("d")
	third := c.CreateContent(80, 10)
	if third.LineCount != first.LineCount {
		t.Fatalf("line count should still be 1, got %d", third.LineCount)
	}
	line := third.Line(0)
	if len(line) != 1 || line[0].Text != "abcd" {
		t.Fatalf("got %+v, want updated text abcd", line)
	}
}

func TestSelectionProcessorHighlightsSelectedRange(t *testing.T) {
	d := document.New("hello world", 5, &document.Selection{AnchorPosition: 0})
	frags := []StyleAndTextTuple{{Text: "hello world"}}
	got := SelectionProcessor{}.ApplyTransformation(d, 0, frags)

	if len(got) != len("hello world") {
		t.Fatalf("expected one fragment per rune, got %d", len(got))
	}
	for i := 0; i < 5; i++ {
		if got[i].Style != "class:selected" {
			t.Errorf("rune %d: style = %q, want class:selected", i, got[i].Style)
		}
	}
	for i := 5; i < len(got); i++ {
		if got[i].Style == "class:selected" {
			t.Errorf("rune %d: unexpectedly selected", i)
		}
	}
}

func TestSearchHighlightProcessorMarksMatch(t *testing.T) {
	d := document.New("find the needle here", 0, nil)
	p := SearchHighlightProcessor{Pattern: "needle"}
	frags := []StyleAndTextTuple{{Text: "find the needle here"}}
	got := p.ApplyTransformation(d, 0, frags)

	matchStart := len("find the ")
	for i, f := range got {
		want := ""
		if i >= matchStart && i < matchStart+len("needle") {
			want = "class:search"
		}
		if f.Style != want {
			t.Errorf("rune %d (%q): style = %q, want %q", i, f.Text, f.Style, want)
		}
	}
}

func TestBufferControlMouseHandlerSingleClickMovesCursor(t *testing.T) {
	b := bufferWith("hello world", 0)
	c := &BufferControl{Buffer: b}
	content := c.CreateContent(80, 10)

	res := c.MouseHandler(content, MouseEvent{Row: 0, Col: 6, Kind: "down"})
	if res != Handled {
		t.Fatalf("expected Handled")
	}
	if b.Document().CursorPosition() != 6 {
		t.Fatalf("cursor = %d, want 6", b.Document().CursorPosition())
	}
}

func TestBufferControlMouseHandlerDoubleClickSelectsWord(t *testing.T) {
	b := bufferWith("hello world", 0)
	c := &BufferControl{Buffer: b}
	content := c.CreateContent(80, 10)

	c.MouseHandler(content, MouseEvent{Row: 0, Col: 2, Kind: "down"})
	// Force the second click to be seen as within the double-click window
	// by resetting the recorded click time just before it.
	c.lastClickAt = time.Now()
	c.MouseHandler(content, MouseEvent{Row: 0, Col: 2, Kind: "down"})

	sel := b.Document().Selection()
	if sel == nil {
		t.Fatal("expected a selection after double-click")
	}
}
