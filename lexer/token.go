package lexer

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"

	"github.com/willibrandon/stroke/controls"
	"github.com/willibrandon/stroke/document"
)

// TokenLexer wraps an external token-stream provider (here, chroma — the
// corpus's Pygments-equivalent) behind the line-lazy, sync-point-aware
// protocol of spec §4.J ("PygmentsLexer"). Grounded on the teacher's
// tui/highlight_chroma.go Tokenise call, generalized from "tokenize the
// whole buffer eagerly" to the cached generator-reuse protocol below.
type TokenLexer struct {
	Language      string
	SyncFromStart bool
	SyncStrategy  SyncStrategy

	cache *TokenCache

	mu    sync.Mutex
	state map[*document.Document]*tokenDocState
}

type tokenGenerator struct {
	startRow int
	pos      int // last line number materialized into lineCache
	lines    map[int][]controls.StyleAndTextTuple
	lineN    int // total line count covered by this generator's tokenization
}

type tokenDocState struct {
	mu         sync.Mutex
	lineCache  map[int][]controls.StyleAndTextTuple
	generators []*tokenGenerator
}

// NewTokenLexer creates a TokenLexer for the given chroma language name.
func NewTokenLexer(language string, syncFromStart bool, strategy SyncStrategy) *TokenLexer {
	if strategy == nil {
		strategy = ForLanguage(language)
	}
	return &TokenLexer{
		Language:      language,
		SyncFromStart: syncFromStart,
		SyncStrategy:  strategy,
		cache:         NewTokenCache(),
		state:         make(map[*document.Document]*tokenDocState),
	}
}

func (l *TokenLexer) docState(doc *document.Document) *tokenDocState {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, ok := l.state[doc]
	if !ok {
		st = &tokenDocState{lineCache: make(map[int][]controls.StyleAndTextTuple)}
		l.state[doc] = st
		// Bound memory: a TokenLexer that sees many distinct Documents
		// (one per edit, since Document is immutable) would otherwise
		// grow state unboundedly; once more than 8 are held, one other
		// entry (an arbitrary one, not necessarily the oldest) is evicted.
		if len(l.state) > 8 {
			for k := range l.state {
				if k != doc {
					delete(l.state, k)
					break
				}
			}
		}
	}
	return st
}

// tokenizeFrom runs chroma over the document's text starting at (row, col)
// and returns a per-line fragment map plus the number of lines produced.
func (l *TokenLexer) tokenizeFrom(doc *document.Document, row, col int) (map[int][]controls.StyleAndTextTuple, int) {
	lines := doc.Lines()
	if row < 0 {
		row = 0
	}
	if row > len(lines) {
		row = len(lines)
	}
	text := strings.Join(lines[row:], "\n")
	if col > 0 && row < len(lines) && col < len(lines[row]) {
		text = lines[row][col:] + "\n" + strings.Join(lines[row+1:], "\n")
	}

	lex := lexers.Get(l.Language)
	if lex == nil {
		lex = lexers.Fallback
	}
	lex = chroma.Coalesce(lex)

	out := make(map[int][]controls.StyleAndTextTuple)
	iter, err := lex.Tokenise(nil, text)
	if err != nil {
		for i, ln := range lines[row:] {
			out[row+i] = []controls.StyleAndTextTuple{{Text: ln}}
		}
		return out, len(lines) - row
	}

	curRow := row
	var curLine []controls.StyleAndTextTuple
	for _, tok := range iter.Tokens() {
		path := strings.Split(tok.Type.String(), ".")
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if part != "" {
				curLine = append(curLine, controls.StyleAndTextTuple{
					Style: l.cache.StyleFor(path),
					Text:  part,
				})
			}
			if i != len(parts)-1 {
				out[curRow] = curLine
				curRow++
				curLine = nil
			}
		}
	}
	out[curRow] = curLine
	return out, curRow - row + 1
}

// LexDocument returns a closure over per-document generator/cache state,
// implementing the "request for line N" protocol of spec §4.J.
func (l *TokenLexer) LexDocument(doc *document.Document) func(int) []controls.StyleAndTextTuple {
	st := l.docState(doc)

	return func(n int) []controls.StyleAndTextTuple {
		lines := doc.Lines()
		if n < 0 || n >= len(lines) {
			return nil
		}

		st.mu.Lock()
		defer st.mu.Unlock()

		if frags, ok := st.lineCache[n]; ok {
			return frags
		}

		// Step 2: find a reusable generator.
		var g *tokenGenerator
		for _, cand := range st.generators {
			if cand.pos < n && n-cand.pos < reuseMax {
				g = cand
				break
			}
		}

		if g == nil {
			var row, col int
			if l.SyncFromStart {
				row, col = 0, 0
			} else {
				start := n - minBack
				if start < 0 {
					start = 0
				}
				row, col = l.SyncStrategy.GetSyncStartPosition(doc, start)
			}
			frags, count := l.tokenizeFrom(doc, row, col)
			g = &tokenGenerator{startRow: row, pos: row - 1, lines: frags, lineN: row + count}
			st.generators = append(st.generators, g)
		}

		for row := g.pos + 1; row <= n; row++ {
			if f, ok := g.lines[row]; ok {
				st.lineCache[row] = f
			}
		}
		g.pos = n

		return st.lineCache[n]
	}
}

// InvalidationHash reports the lexer's configuration identity; the token
// cache and per-document generator state are keyed separately and don't
// affect it.
func (l *TokenLexer) InvalidationHash() uint64 {
	return hashString("token:" + l.Language)
}
