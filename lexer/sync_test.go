package lexer

import (
	"testing"

	"github.com/willibrandon/stroke/document"
)

func TestSyncFromStartAlwaysReturnsOrigin(t *testing.T) {
	doc := document.New("a\nb\nc\n", 0, nil)
	row, col := SyncFromStart.GetSyncStartPosition(doc, 2)
	if row != 0 || col != 0 {
		t.Fatalf("got (%d, %d), want (0, 0)", row, col)
	}
}

func TestRegexSyncFindsNearestMatchingLineBackward(t *testing.T) {
	doc := document.New("x = 1\ndef foo():\n    pass\n    return 1\n", 0, nil)
	s := ForLanguage("python")
	row, col := s.GetSyncStartPosition(doc, 3)
	if row != 1 || col != 0 {
		t.Fatalf("got (%d, %d), want (1, 0) — the def line", row, col)
	}
}

func TestRegexSyncFallsBackToZeroBelowThreshold(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "x = 1"
	}
	text := ""
	for i, l := range lines {
		if i > 0 {
			text += "\n"
		}
		text += l
	}
	doc := document.New(text, 0, nil)
	s := ForLanguage("python")
	row, _ := s.GetSyncStartPosition(doc, 5)
	if row != 0 {
		t.Fatalf("got row %d, want 0 (no match found, below fallbackThreshold)", row)
	}
}

func TestForLanguageDefaultsToCaretPattern(t *testing.T) {
	doc := document.New("anything\nhere\n", 0, nil)
	s := ForLanguage("unknown-language")
	row, col := s.GetSyncStartPosition(doc, 1)
	if row != 1 || col != 0 {
		t.Fatalf("got (%d, %d), want (1, 0) since ^ matches every line", row, col)
	}
}

func TestTokenCacheMemoizesAndLowercases(t *testing.T) {
	c := NewTokenCache()
	a := c.StyleFor([]string{"Keyword", "Reserved"})
	b := c.StyleFor([]string{"Keyword", "Reserved"})
	if a != b {
		t.Fatalf("expected memoized identical result, got %q vs %q", a, b)
	}
	if a != "class:pygments.keyword.reserved" {
		t.Fatalf("got %q, want class:pygments.keyword.reserved", a)
	}
}
