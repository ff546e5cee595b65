// Package lexer implements component J: line-lazy tokenization with
// syntax-sync points and generator reuse, wrapping chroma as the
// corpus's Pygments-equivalent token provider.
package lexer

import (
	"github.com/willibrandon/stroke/controls"
	"github.com/willibrandon/stroke/document"
)

// Lexer produces styled fragments for a document, one line at a time.
// LexDocument returns a closure bound to doc so repeated calls for
// different lines can share per-document state (spec §4.J).
type Lexer interface {
	LexDocument(doc *document.Document) func(lineNo int) []controls.StyleAndTextTuple
	InvalidationHash() uint64
}

// SimpleLexer applies a single style uniformly to every line (spec §4.J).
type SimpleLexer struct {
	Style string
}

func (l SimpleLexer) LexDocument(doc *document.Document) func(int) []controls.StyleAndTextTuple {
	lines := doc.Lines()
	return func(lineNo int) []controls.StyleAndTextTuple {
		if lineNo < 0 || lineNo >= len(lines) {
			return nil
		}
		return []controls.StyleAndTextTuple{{Style: l.Style, Text: lines[lineNo]}}
	}
}

func (l SimpleLexer) InvalidationHash() uint64 { return hashString("simple:" + l.Style) }

// DynamicLexer delegates to Resolver(), falling back to SimpleLexer("")
// when Resolver is nil or returns nil (spec §4.J).
type DynamicLexer struct {
	Resolver func() Lexer
}

func (l DynamicLexer) resolve() Lexer {
	if l.Resolver != nil {
		if inner := l.Resolver(); inner != nil {
			return inner
		}
	}
	return SimpleLexer{}
}

func (l DynamicLexer) LexDocument(doc *document.Document) func(int) []controls.StyleAndTextTuple {
	return l.resolve().LexDocument(doc)
}

func (l DynamicLexer) InvalidationHash() uint64 {
	return l.resolve().InvalidationHash()
}

func hashString(s string) uint64 {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}
