package completion

import (
	"regexp"
	"sort"
	"strings"

	"github.com/willibrandon/stroke/controls"
	"github.com/willibrandon/stroke/document"
)

// FuzzyCompleter wraps Inner and re-ranks its completions by fuzzy
// matching the word before the cursor against each completion's Text,
// per spec §4.K: build a regex from the needle by escaping each
// character and joining with `.*?` (case-insensitive), keep only
// completions whose Text matches, and sort by (match start offset, match
// length, original order). Inner runs over an empty-query document, so a
// prefix- or substring-filtering Inner (WordCompleter, NestedCompleter)
// still yields its full candidate set for the fuzzy pass to narrow.
type FuzzyCompleter struct {
	Inner   Completer
	WORD    bool
	Pattern string // optional override; "" derives the pattern from the needle
}

type fuzzyMatch struct {
	comp  Completion
	start int
	size  int
	order int
	loc   []int
}

// fuzzyPattern wraps each needle character in its own capturing group so
// the matched characters (not just the overall span) can be recovered
// for highlighting.
func fuzzyPattern(needle string) string {
	var b strings.Builder
	for i, r := range needle {
		if i > 0 {
			b.WriteString(".*?")
		}
		b.WriteString("(")
		b.WriteString(regexp.QuoteMeta(string(r)))
		b.WriteString(")")
	}
	return b.String()
}

func (f *FuzzyCompleter) GetCompletions(doc *document.Document, ev CompleteEvent) []Completion {
	needle := doc.WordBeforeCursor(f.WORD, false)

	emptyDoc := document.New("", 0, nil)
	inner := f.Inner.GetCompletions(emptyDoc, ev)
	if needle == "" {
		return inner
	}

	pattern := f.Pattern
	if pattern == "" {
		pattern = fuzzyPattern(needle)
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return inner
	}

	var matches []fuzzyMatch
	for i, c := range inner {
		loc := re.FindStringSubmatchIndex(c.Text)
		if loc == nil {
			continue
		}
		matches = append(matches, fuzzyMatch{
			comp:  c,
			start: loc[0],
			size:  loc[1] - loc[0],
			order: i,
			loc:   loc,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].start != matches[j].start {
			return matches[i].start < matches[j].start
		}
		if matches[i].size != matches[j].size {
			return matches[i].size < matches[j].size
		}
		return matches[i].order < matches[j].order
	})

	out := make([]Completion, len(matches))
	for i, m := range matches {
		c := m.comp
		c.DisplayFragments = fuzzyHighlight(c.Text, m.loc)
		out[i] = c
	}
	return out
}

// fuzzyHighlight splits text into fragments, marking every rune covered
// by one of loc's captured submatches (the individually matched fuzzy
// characters) with the fuzzymatch style.
func fuzzyHighlight(text string, loc []int) []controls.StyleAndTextTuple {
	matched := make([]bool, len(text))
	for i := 2; i+1 < len(loc); i += 2 {
		s, e := loc[i], loc[i+1]
		if s < 0 {
			continue
		}
		for b := s; b < e; b++ {
			matched[b] = true
		}
	}

	var frags []controls.StyleAndTextTuple
	var cur strings.Builder
	curMatched := false
	first := true
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		style := ""
		if curMatched {
			style = "class:completion-menu.completion.fuzzymatch"
		}
		frags = append(frags, controls.StyleAndTextTuple{Style: style, Text: cur.String()})
		cur.Reset()
	}
	for i, r := range text {
		m := matched[i]
		if !first && m != curMatched {
			flush()
		}
		curMatched = m
		first = false
		cur.WriteRune(r)
	}
	flush()
	return frags
}
