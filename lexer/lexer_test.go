package lexer

import (
	"testing"

	"github.com/willibrandon/stroke/document"
)

func TestSimpleLexerAppliesUniformStyle(t *testing.T) {
	l := SimpleLexer{Style: "class:code"}
	doc := document.New("one\ntwo", 0, nil)
	lex := l.LexDocument(doc)

	got := lex(1)
	if len(got) != 1 || got[0].Text != "two" || got[0].Style != "class:code" {
		t.Fatalf("got %+v", got)
	}
	if lex(2) != nil {
		t.Error("expected nil for an out-of-range line")
	}
}

func TestSimpleLexerInvalidationHashVariesByStyle(t *testing.T) {
	a := SimpleLexer{Style: "class:a"}.InvalidationHash()
	b := SimpleLexer{Style: "class:b"}.InvalidationHash()
	if a == b {
		t.Error("expected different hashes for different styles")
	}
}

func TestDynamicLexerFallsBackWhenResolverNil(t *testing.T) {
	l := DynamicLexer{}
	doc := document.New("x", 0, nil)
	got := l.LexDocument(doc)(0)
	if len(got) != 1 || got[0].Text != "x" {
		t.Fatalf("got %+v", got)
	}
}

func TestDynamicLexerDelegatesToResolver(t *testing.T) {
	l := DynamicLexer{Resolver: func() Lexer { return SimpleLexer{Style: "class:resolved"} }}
	doc := document.New("x", 0, nil)
	got := l.LexDocument(doc)(0)
	if got[0].Style != "class:resolved" {
		t.Fatalf("got %+v", got)
	}
}

func TestTokenLexerProducesFragmentsPerLine(t *testing.T) {
	l := NewTokenLexer("python", true, nil)
	doc := document.New("x = 1\ny = 2\n", 0, nil)
	lex := l.LexDocument(doc)

	line0 := lex(0)
	if len(line0) == 0 {
		t.Fatal("expected at least one fragment for line 0")
	}
	var text string
	for _, f := range line0 {
		text += f.Text
	}
	if text != "x = 1" {
		t.Fatalf("reconstructed line 0 = %q, want %q", text, "x = 1")
	}
}

func TestTokenLexerCachesLinesAcrossCalls(t *testing.T) {
	l := NewTokenLexer("python", true, nil)
	doc := document.New("a = 1\nb = 2\nc = 3\n", 0, nil)
	lex := l.LexDocument(doc)

	first := lex(2)
	second := lex(2)
	if len(first) != len(second) {
		t.Fatalf("expected cached result to match: %+v vs %+v", first, second)
	}
}

func TestTokenLexerInvalidationHashVariesByLanguage(t *testing.T) {
	a := NewTokenLexer("python", true, nil).InvalidationHash()
	b := NewTokenLexer("go", true, nil).InvalidationHash()
	if a == b {
		t.Error("expected different hashes for different languages")
	}
}
