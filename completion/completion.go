// Package completion implements component K: sync and streaming
// completers, combinators (merge, deduplicate, conditional, dynamic,
// threaded, fuzzy), grounded directly in spec §4.K — no existing
// completer in the retrieval pack, so naming and error style follow the
// corpus's plain-error, constructor-function conventions.
package completion

import (
	"context"
	"fmt"

	"github.com/willibrandon/stroke/controls"
	"github.com/willibrandon/stroke/document"
	"github.com/willibrandon/stroke/keys"
)

// Completion is a single completion candidate (spec §3). StartPosition
// must be <= 0: insertion always replaces characters at or before the
// cursor. A positive StartPosition is a programmer error and panics at
// construction, per the spec's §9 open-question resolution.
type Completion struct {
	Text          string
	StartPosition int
	Display       string
	DisplayMeta   string
	Style         string
	SelectedStyle string

	// DisplayFragments, when non-nil, overrides Display with per-run
	// styled text (used by FuzzyCompleter to highlight matched
	// characters; spec §4.K).
	DisplayFragments []controls.StyleAndTextTuple
}

// NewCompletion validates and constructs a Completion.
func NewCompletion(text string, startPosition int) Completion {
	if startPosition > 0 {
		panic(fmt.Sprintf("completion: StartPosition must be <= 0, got %d", startPosition))
	}
	return Completion{Text: text, StartPosition: startPosition, Display: text}
}

// CompleteEvent carries the context a completer runs in: whether it was
// triggered by an explicit completion request versus an incidental
// keystroke (Prompt Toolkit calls this "complete while typing").
type CompleteEvent struct {
	CompletionRequested bool
}

// Completer is the synchronous completion interface (spec §4.K).
type Completer interface {
	GetCompletions(doc *document.Document, ev CompleteEvent) []Completion
}

// AsyncCompleter additionally supports a cancellable streaming query; its
// default behavior (when a Completer doesn't implement it) is to yield
// the synchronous result once (spec §4.K).
type AsyncCompleter interface {
	Completer
	GetCompletionsAsync(ctx context.Context, doc *document.Document, ev CompleteEvent) <-chan Completion
}

// GetCompletionsAsync adapts any Completer to the async interface,
// honoring AsyncCompleter when the concrete type implements it.
func GetCompletionsAsync(ctx context.Context, c Completer, doc *document.Document, ev CompleteEvent) <-chan Completion {
	if ac, ok := c.(AsyncCompleter); ok {
		return ac.GetCompletionsAsync(ctx, doc, ev)
	}
	out := make(chan Completion)
	go func() {
		defer close(out)
		for _, comp := range c.GetCompletions(doc, ev) {
			select {
			case out <- comp:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// DummyCompleter yields nothing (spec §4.K).
type DummyCompleter struct{}

func (DummyCompleter) GetCompletions(*document.Document, CompleteEvent) []Completion { return nil }

// ConditionalCompleter yields nothing when Filter is false, and otherwise
// delegates to Inner without invoking it when the filter fails (spec
// §4.K).
type ConditionalCompleter struct {
	Inner  Completer
	Filter keys.Filter
}

func (c ConditionalCompleter) GetCompletions(doc *document.Document, ev CompleteEvent) []Completion {
	if !c.Filter.Eval() {
		return nil
	}
	return c.Inner.GetCompletions(doc, ev)
}

// DynamicCompleter resolves Inner freshly on every call. A nil Resolver,
// or one returning nil, behaves as DummyCompleter (spec §4.K).
type DynamicCompleter struct {
	Resolver func() Completer
}

func (c DynamicCompleter) GetCompletions(doc *document.Document, ev CompleteEvent) []Completion {
	if c.Resolver != nil {
		if inner := c.Resolver(); inner != nil {
			return inner.GetCompletions(doc, ev)
		}
	}
	return nil
}

// Merge concatenates the results of each completer in order. When
// deduplicate is true, the result is wrapped in a DeduplicateCompleter
// (spec §4.K).
func Merge(completers []Completer, deduplicate bool) Completer {
	m := mergedCompleter(completers)
	if deduplicate {
		return DeduplicateCompleter{Inner: m}
	}
	return m
}

type mergedCompleter []Completer

func (m mergedCompleter) GetCompletions(doc *document.Document, ev CompleteEvent) []Completion {
	var out []Completion
	for _, c := range m {
		out = append(out, c.GetCompletions(doc, ev)...)
	}
	return out
}

// DeduplicateCompleter yields a completion only the first time applying
// it to doc would produce a previously unseen (text, cursor) pair;
// completions producing no change are also suppressed (spec §4.K).
type DeduplicateCompleter struct {
	Inner Completer
}

type applyResult struct {
	text   string
	cursor int
}

func applyCompletion(doc *document.Document, c Completion) applyResult {
	pos := doc.CursorPosition() + c.StartPosition
	if pos < 0 {
		pos = 0
	}
	newText := doc.Text()[:pos] + c.Text + doc.Text()[doc.CursorPosition():]
	return applyResult{text: newText, cursor: pos + len(c.Text)}
}

func (d DeduplicateCompleter) GetCompletions(doc *document.Document, ev CompleteEvent) []Completion {
	seen := make(map[applyResult]bool)
	var out []Completion
	for _, c := range d.Inner.GetCompletions(doc, ev) {
		r := applyCompletion(doc, c)
		if r.text == doc.Text() {
			continue
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, c)
	}
	return out
}

// GetCommonCompleteSuffix returns the longest string S such that every
// completion, applied to doc, produces document_prefix + S + … where
// document_prefix is document.Text()[:cursor+c.StartPosition] and is the
// same across every completion. Returns "" if completions disagree on
// the text before the cursor they'd produce (spec §4.K).
func GetCommonCompleteSuffix(doc *document.Document, completions []Completion) string {
	if len(completions) == 0 {
		return ""
	}

	documentPrefix := func(c Completion) string {
		pos := doc.CursorPosition() + c.StartPosition
		if pos < 0 {
			pos = 0
		}
		if pos > len(doc.Text()) {
			pos = len(doc.Text())
		}
		return doc.Text()[:pos]
	}

	want := documentPrefix(completions[0])
	for _, c := range completions[1:] {
		if documentPrefix(c) != want {
			return ""
		}
	}

	common := completions[0].Text
	for _, c := range completions[1:] {
		common = commonPrefix(common, c.Text)
	}
	return common
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
