package completion

import (
	"fmt"
	"sort"
	"strings"

	"github.com/willibrandon/stroke/document"
)

// WordCompleter completes against a static or dynamically resolved word
// list, matching the word (or WORD, or whole sentence) before the cursor
// by prefix, or by substring when MatchMiddle is set (spec §4.K). WORD
// and Sentence are mutually exclusive; construction does not check this,
// and GetCompletions panics when both are set.
type WordCompleter struct {
	Words       []string
	WordsFunc   func() []string
	IgnoreCase  bool
	MatchMiddle bool
	WORD        bool
	Sentence    bool
	Pattern     string // not read by GetCompletions: the word before the cursor is chosen by WORD/Sentence only
	DisplayDict map[string]string
	MetaDict    map[string]string
}

// NewWordCompleter creates a WordCompleter over a static word list. It does
// not check WORD/Sentence exclusivity; GetCompletions panics on that.
func NewWordCompleter(words []string) *WordCompleter {
	return &WordCompleter{Words: words}
}

func (w *WordCompleter) words() []string {
	if w.WordsFunc != nil {
		return w.WordsFunc()
	}
	return w.Words
}

func (w *WordCompleter) GetCompletions(doc *document.Document, ev CompleteEvent) []Completion {
	if w.WORD && w.Sentence {
		panic(fmt.Sprintf("completion: WordCompleter WORD and Sentence are mutually exclusive"))
	}

	wordBefore := doc.WordBeforeCursor(w.WORD, w.Sentence)

	needle := wordBefore
	if w.IgnoreCase {
		needle = strings.ToLower(needle)
	}

	var out []Completion
	for _, candidate := range w.words() {
		hay := candidate
		if w.IgnoreCase {
			hay = strings.ToLower(hay)
		}

		matched := false
		if w.MatchMiddle {
			matched = strings.Contains(hay, needle)
		} else {
			matched = strings.HasPrefix(hay, needle)
		}
		if !matched {
			continue
		}

		c := Completion{
			Text:          candidate,
			StartPosition: -len([]rune(wordBefore)),
			Display:       candidate,
		}
		if d, ok := w.DisplayDict[candidate]; ok {
			c.Display = d
		}
		if m, ok := w.MetaDict[candidate]; ok {
			c.DisplayMeta = m
		}
		out = append(out, c)
	}
	return out
}

// NestedCompleter dispatches to a child Completer chosen by walking the
// already-typed words of the sentence before the cursor, supporting
// command-subcommand style completion trees (spec §4.K).
type NestedCompleter struct {
	Options map[string]Completer
}

// FromNestedDict builds a NestedCompleter from a map whose leaves are
// either nil (terminal, WordCompleter over sibling keys), a Completer, or
// another map[string]interface{} describing a deeper level.
func FromNestedDict(data map[string]interface{}) *NestedCompleter {
	options := make(map[string]Completer, len(data))
	for key, val := range data {
		switch v := val.(type) {
		case nil:
			options[key] = nil
		case Completer:
			options[key] = v
		case map[string]interface{}:
			options[key] = FromNestedDict(v)
		}
	}
	return &NestedCompleter{Options: options}
}

func (n *NestedCompleter) GetCompletions(doc *document.Document, ev CompleteEvent) []Completion {
	text := doc.TextBeforeCursor()
	stripped := strings.TrimLeft(text, " ")
	if idx := strings.IndexByte(stripped, ' '); idx >= 0 {
		firstWord := stripped[:idx]
		rest := stripped[idx+1:]
		child, ok := n.Options[firstWord]
		if !ok || child == nil {
			return nil
		}
		innerDoc := document.New(rest, len(rest), nil)
		return child.GetCompletions(innerDoc, ev)
	}

	keys := make([]string, 0, len(n.Options))
	for k := range n.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	wc := &WordCompleter{Words: keys}
	return wc.GetCompletions(doc, ev)
}
