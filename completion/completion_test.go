package completion

import (
	"strings"
	"testing"

	"github.com/willibrandon/stroke/document"
)

func doc(text string) *document.Document {
	return document.New(text, len(text), nil)
}

func TestWordCompleterPrefixMatch(t *testing.T) {
	c := NewWordCompleter([]string{"select", "insert", "update", "delete"})
	got := c.GetCompletions(doc("sel"), CompleteEvent{})
	if len(got) != 1 || got[0].Text != "select" {
		t.Fatalf("got %+v", got)
	}
	if got[0].StartPosition != -3 {
		t.Errorf("StartPosition = %d, want -3", got[0].StartPosition)
	}
}

func TestWordCompleterMatchMiddle(t *testing.T) {
	c := &WordCompleter{Words: []string{"select", "insert"}, MatchMiddle: true}
	got := c.GetCompletions(doc("sert"), CompleteEvent{})
	if len(got) != 1 || got[0].Text != "insert" {
		t.Fatalf("got %+v", got)
	}
}

func TestWordCompleterWordAndSentencePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for WORD+Sentence")
		}
	}()
	c := &WordCompleter{WORD: true, Sentence: true}
	c.GetCompletions(doc("x"), CompleteEvent{})
}

func TestFuzzyCompleterOrdersByMatchQuality(t *testing.T) {
	fz := &FuzzyCompleter{Inner: allCompleter{"foobar", "fbar", "barfoo"}}
	got := fz.GetCompletions(doc("fb"), CompleteEvent{})
	if len(got) == 0 {
		t.Fatal("expected matches")
	}
	if got[0].Text != "fbar" {
		t.Errorf("expected tightest match first, got %+v", got)
	}
}

func TestFuzzyCompleterRunsInnerOverEmptyQuery(t *testing.T) {
	// WordCompleter alone would prefix-filter "sel" down to just "select"
	// before FuzzyCompleter ever sees the candidates; wrapped in Fuzzy it
	// must see the inner's full word list and fuzzy-filter that instead.
	inner := NewWordCompleter([]string{"select", "insert", "update"})
	fz := &FuzzyCompleter{Inner: inner}

	got := fz.GetCompletions(doc("sel"), CompleteEvent{})

	texts := map[string]bool{}
	for _, c := range got {
		texts[c.Text] = true
	}
	if !texts["select"] {
		t.Errorf("expected select to match, got %+v", got)
	}
	if texts["insert"] || texts["update"] {
		t.Errorf("insert/update should not fuzzy-match \"sel\", got %+v", got)
	}
}

func TestFuzzyCompleterHighlightsMatchedCharacters(t *testing.T) {
	fz := &FuzzyCompleter{Inner: allCompleter{"foobar"}}
	got := fz.GetCompletions(doc("fba"), CompleteEvent{})
	if len(got) != 1 {
		t.Fatalf("got %+v, want 1 match", got)
	}

	frags := got[0].DisplayFragments
	if len(frags) == 0 {
		t.Fatal("expected DisplayFragments to be populated")
	}

	var rebuilt string
	matchedChars := 0
	for _, f := range frags {
		rebuilt += f.Text
		if strings.Contains(f.Style, "fuzzymatch") {
			matchedChars += len([]rune(f.Text))
		}
	}
	if rebuilt != "foobar" {
		t.Errorf("fragments reassemble to %q, want \"foobar\"", rebuilt)
	}
	if matchedChars != 3 {
		t.Errorf("matchedChars = %d, want 3 (f, b, a)", matchedChars)
	}
}

type allCompleter []string

func (a allCompleter) GetCompletions(*document.Document, CompleteEvent) []Completion {
	out := make([]Completion, len(a))
	for i, s := range a {
		out[i] = Completion{Text: s}
	}
	return out
}

func TestMergeDeduplicates(t *testing.T) {
	a := NewWordCompleter([]string{"select"})
	b := NewWordCompleter([]string{"select", "set"})
	merged := Merge([]Completer{a, b}, true)

	got := merged.GetCompletions(doc("se"), CompleteEvent{})
	texts := map[string]int{}
	for _, c := range got {
		texts[c.Text]++
	}
	if texts["select"] != 1 {
		t.Errorf("expected select deduplicated to 1, got %d", texts["select"])
	}
	if texts["set"] != 1 {
		t.Errorf("expected set present once, got %d", texts["set"])
	}
}

func TestConditionalCompleterGatesOnFilter(t *testing.T) {
	inner := NewWordCompleter([]string{"select"})
	cc := ConditionalCompleter{Inner: inner, Filter: func() bool { return false }}
	if got := cc.GetCompletions(doc("se"), CompleteEvent{}); got != nil {
		t.Errorf("expected nil when filter false, got %+v", got)
	}
}

func TestGetCommonCompleteSuffixSingle(t *testing.T) {
	d := doc("sel")
	c := Completion{Text: "select", StartPosition: -3}
	if got := GetCommonCompleteSuffix(d, []Completion{c}); got != "select" {
		t.Errorf("got %q, want select", got)
	}
}

func TestGetCommonCompleteSuffixDivergesToEmpty(t *testing.T) {
	d := doc("se")
	c1 := Completion{Text: "select", StartPosition: -2}
	c2 := Completion{Text: "set", StartPosition: -1} // disagrees on prefix consumed
	if got := GetCommonCompleteSuffix(d, []Completion{c1, c2}); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestGetCommonCompleteSuffixCommonPrefix(t *testing.T) {
	d := doc("se")
	c1 := Completion{Text: "select", StartPosition: -2}
	c2 := Completion{Text: "sessions", StartPosition: -2}
	if got := GetCommonCompleteSuffix(d, []Completion{c1, c2}); got != "se" {
		t.Errorf("got %q, want se", got)
	}
}

func TestNestedCompleterDispatchesToChild(t *testing.T) {
	n := &NestedCompleter{Options: map[string]Completer{
		"show": NewWordCompleter([]string{"tables", "databases"}),
	}}
	got := n.GetCompletions(doc("show ta"), CompleteEvent{})
	if len(got) != 1 || got[0].Text != "tables" {
		t.Fatalf("got %+v", got)
	}
}
