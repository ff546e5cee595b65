package controls

import (
	"strings"
	"sync"
	"time"

	"github.com/willibrandon/stroke/document"
	"github.com/willibrandon/stroke/keys"
)

// Lexer is the subset of the lexer package's contract BufferControl
// depends on, declared locally to avoid an import cycle (the lexer
// package itself depends on controls for StyleAndTextTuple).
type Lexer interface {
	LexDocument(doc *document.Document) func(lineNo int) []StyleAndTextTuple
	InvalidationHash() uint64
}

type simpleLexer struct{ style string }

func (l simpleLexer) LexDocument(doc *document.Document) func(int) []StyleAndTextTuple {
	lines := doc.Lines()
	return func(n int) []StyleAndTextTuple {
		if n < 0 || n >= len(lines) {
			return nil
		}
		return []StyleAndTextTuple{{Style: l.style, Text: lines[n]}}
	}
}
func (l simpleLexer) InvalidationHash() uint64 { return 0 }

// DefaultLexer is a SimpleLexer equivalent used when a BufferControl is
// constructed without one (spec §4.J's SimpleLexer).
func DefaultLexer() Lexer { return simpleLexer{} }

// InputProcessor transforms the fragments of a single already-lexed line,
// e.g. to merge in search-match or selection highlighting (spec §4.H:
// "applies input processors (search highlight, selection highlight,
// multi-cursor)").
type InputProcessor interface {
	ApplyTransformation(doc *document.Document, lineNo int, frags []StyleAndTextTuple) []StyleAndTextTuple
	InvalidationHash() uint64
}

// SelectionProcessor merges "class:selected" into the fragments spanned by
// the document's current selection.
type SelectionProcessor struct{}

func (SelectionProcessor) InvalidationHash() uint64 { return 0 }

func (SelectionProcessor) ApplyTransformation(doc *document.Document, lineNo int, frags []StyleAndTextTuple) []StyleAndTextTuple {
	sel := doc.Selection()
	if sel == nil {
		return frags
	}
	lineByteStart := lineStartByteOffset(doc, lineNo)
	lineRuneStart := lineStartRuneOffset(doc, lineNo)

	cursorRune := runeIndexIn(doc.Text(), doc.CursorPosition())
	anchorRune := runeIndexIn(doc.Text(), sel.AnchorPosition)

	lo, hi := cursorRune, anchorRune
	if lo > hi {
		lo, hi = hi, lo
	}
	loCol, hiCol := lo-lineRuneStart, hi-lineRuneStart
	if hiCol < 0 || loCol > len([]rune(doc.Lines()[lineNoOrZero(doc, lineNo)])) {
		return frags
	}
	_ = lineByteStart
	if loCol < 0 {
		loCol = 0
	}
	return highlightRange(frags, loCol, hiCol, "class:selected")
}

func lineNoOrZero(doc *document.Document, lineNo int) int {
	if lineNo < 0 {
		return 0
	}
	if lines := doc.Lines(); lineNo >= len(lines) {
		return len(lines) - 1
	}
	return lineNo
}

// runeIndexIn converts a byte offset into doc's full text to a rune index.
func runeIndexIn(text string, byteOffset int) int {
	n := 0
	for i := range text {
		if i >= byteOffset {
			return n
		}
		n++
	}
	return n
}

func lineStartByteOffset(doc *document.Document, lineNo int) int {
	lines := doc.Lines()
	off := 0
	for i := 0; i < lineNo && i < len(lines); i++ {
		off += len(lines[i]) + 1
	}
	return off
}

func lineStartRuneOffset(doc *document.Document, lineNo int) int {
	lines := doc.Lines()
	off := 0
	for i := 0; i < lineNo && i < len(lines); i++ {
		off += len([]rune(lines[i])) + 1
	}
	return off
}

// highlightRange adds style to the [lo, hi) rune-column slice of frags.
func highlightRange(frags []StyleAndTextTuple, lo, hi int, style string) []StyleAndTextTuple {
	out := make([]StyleAndTextTuple, 0, len(frags))
	col := 0
	for _, f := range frags {
		runes := []rune(f.Text)
		for i, r := range runes {
			pos := col + i
			s := f.Style
			if pos >= lo && pos < hi {
				s = strings.TrimSpace(s + " " + style)
			}
			out = append(out, StyleAndTextTuple{Style: s, Text: string(r), OnClick: f.OnClick})
		}
		col += len(runes)
	}
	return out
}

// SearchHighlightProcessor merges "class:search" (or "class:search.current"
// for the active match) into fragments overlapping search matches.
type SearchHighlightProcessor struct {
	Pattern string
	Current int // byte offset of the currently selected match, or -1
}

func (p SearchHighlightProcessor) InvalidationHash() uint64 {
	return hashStr(p.Pattern)*31 + uint64(p.Current)
}

func (p SearchHighlightProcessor) ApplyTransformation(doc *document.Document, lineNo int, frags []StyleAndTextTuple) []StyleAndTextTuple {
	if p.Pattern == "" {
		return frags
	}
	lineText := ""
	if lines := doc.Lines(); lineNo >= 0 && lineNo < len(lines) {
		lineText = lines[lineNo]
	}
	lineStart := lineStartByteOffset(doc, lineNo)
	for from := 0; from <= len(lineText); {
		idx := strings.Index(lineText[from:], p.Pattern)
		if idx < 0 {
			break
		}
		idx += from
		style := "class:search"
		if lineStart+idx == p.Current {
			style = "class:search.current"
		}
		loR := len([]rune(lineText[:idx]))
		hiR := loR + len([]rune(p.Pattern))
		frags = highlightRange(frags, loR, hiR, style)
		from = idx + len(p.Pattern)
	}
	return frags
}

func hashStr(s string) uint64 {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}

type bufferContentCacheKey struct {
	docHash   string
	cursor    int
	selection document.Selection
	hasSel    bool
	procHash  uint64
	width     int
}

// BufferControl lexes a Buffer's Document line-by-line, applies input
// processors, and reports the cursor at the buffer's cursor position
// (spec §4.H).
type BufferControl struct {
	Buffer          *document.Buffer
	Lexer           Lexer
	InputProcessors []InputProcessor
	Focusable       bool

	mu        sync.Mutex
	cacheKey  bufferContentCacheKey
	cacheVal  UIContent
	cacheSet  bool

	lastClickAt  time.Time
	lastClickPos int
	clickCount   int
}

func (c *BufferControl) lexer() Lexer {
	if c.Lexer != nil {
		return c.Lexer
	}
	return DefaultLexer()
}

func (c *BufferControl) procHash() uint64 {
	var h uint64
	for _, p := range c.InputProcessors {
		h = h*31 + p.InvalidationHash()
	}
	return h
}

func (c *BufferControl) CreateContent(width, height int) UIContent {
	doc := c.Buffer.Document()
	key := bufferContentCacheKey{docHash: doc.Text(), cursor: doc.CursorPosition(), procHash: c.procHash(), width: width}
	if s := doc.Selection(); s != nil {
		key.selection, key.hasSel = *s, true
	}

	c.mu.Lock()
	if c.cacheSet && c.cacheKey == key {
		v := c.cacheVal
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	lex := c.lexer().LexDocument(doc)
	lines := doc.Lines()

	getLine := func(n int) []StyleAndTextTuple {
		frags := lex(n)
		for _, p := range c.InputProcessors {
			frags = p.ApplyTransformation(doc, n, frags)
		}
		return frags
	}

	row := doc.CursorPositionRow()
	col := doc.CursorPositionCol()
	cursor := &Point{Row: row, Col: len([]rune(lines[row][:min(col, len(lines[row]))]))}

	content := UIContent{
		LineCount:  len(lines),
		GetLine:    getLine,
		CursorPos:  cursor,
		ShowCursor: true,
	}

	c.mu.Lock()
	c.cacheKey, c.cacheVal, c.cacheSet = key, content, true
	c.mu.Unlock()

	return content
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (c *BufferControl) PreferredWidth(maxAvailableWidth int) *int { return nil }

func (c *BufferControl) PreferredHeight(width, maxAvailableHeight int, wrapLines bool, getLinePrefix func(int, int) []StyleAndTextTuple) *int {
	content := c.CreateContent(width, maxAvailableHeight)
	if !wrapLines {
		h := content.LineCount
		return &h
	}
	h := 0
	for i := 0; i < content.LineCount; i++ {
		h += GetHeightForLine(content, i, width, getLinePrefix, nil)
	}
	return &h
}

func (c *BufferControl) IsFocusable() bool { return c.Focusable }

// doubleClickWindow is the spec's 500ms double-click threshold (§4.H).
const doubleClickWindow = 500 * time.Millisecond

// MouseHandler implements click-to-position, double-click word select,
// triple-click line select, and drag-to-extend-selection (spec §4.H).
func (c *BufferControl) MouseHandler(content UIContent, ev MouseEvent) MouseHandlerResult {
	doc := c.Buffer.Document()
	lines := doc.Lines()
	if ev.Row < 0 || ev.Row >= len(lines) {
		return NotImplemented
	}
	pos := lineStartByteOffset(doc, ev.Row) + byteOffsetAtCol(lines[ev.Row], ev.Col)

	now := time.Now()
	c.mu.Lock()
	if now.Sub(c.lastClickAt) <= doubleClickWindow && c.lastClickPos == pos {
		c.clickCount++
	} else {
		c.clickCount = 1
	}
	c.lastClickAt, c.lastClickPos = now, pos
	count := c.clickCount
	c.mu.Unlock()

	switch {
	case ev.Kind == "down" && count >= 3:
		c.selectLine(doc, ev.Row)
	case ev.Kind == "down" && count == 2:
		c.selectWordAt(doc, pos)
	case ev.Kind == "down":
		c.Buffer.SetDocument(document.New(doc.Text(), pos, nil), true)
	case ev.Kind == "move" && ev.Button == "left":
		anchor := pos
		if s := doc.Selection(); s != nil {
			anchor = s.AnchorPosition
		} else {
			anchor = doc.CursorPosition()
		}
		c.Buffer.SetDocument(document.New(doc.Text(), pos, &document.Selection{AnchorPosition: anchor}), true)
	default:
		return NotImplemented
	}
	return Handled
}

func byteOffsetAtCol(line string, col int) int {
	runes := []rune(line)
	if col > len(runes) {
		col = len(runes)
	}
	if col < 0 {
		col = 0
	}
	return len(string(runes[:col]))
}

func (c *BufferControl) selectWordAt(doc *document.Document, pos int) {
	d2 := document.New(doc.Text(), pos, nil)
	start := pos - len(d2.WordBeforeCursor(false, false))
	end := pos
	if e := d2.FindNextWordEnding(); e != nil {
		end = *e
	}
	c.Buffer.SetDocument(document.New(doc.Text(), end, &document.Selection{AnchorPosition: start}), true)
}

func (c *BufferControl) selectLine(doc *document.Document, row int) {
	lines := doc.Lines()
	start := lineStartByteOffset(doc, row)
	end := start + len(lines[row])
	if row+1 < len(lines) {
		end++ // include the trailing newline
	}
	c.Buffer.SetDocument(document.New(doc.Text(), end, &document.Selection{AnchorPosition: start, Type: document.SelectionLines}), true)
}

func (c *BufferControl) GetKeyBindings() keys.KeyBindings { return nil }

// GetInvalidateEvents subscribes notify to the buffer's document signal,
// so a control's cache invalidates whenever its buffer changes, including
// edits made outside of rendering (spec §4.H).
func (c *BufferControl) GetInvalidateEvents(notify func()) {
	if c.Buffer == nil {
		return
	}
	c.Buffer.Subscribe(notify)
}

// SearchBufferControl is a BufferControl variant carrying a reference to a
// SearchState and a case-insensitivity filter (spec §4.H).
type SearchBufferControl struct {
	BufferControl
	IgnoreCase bool
	State      *SearchState
}

// SearchState holds the active incremental-search query shared between a
// SearchBufferControl and the BufferControl it searches within.
type SearchState struct {
	mu      sync.Mutex
	Text    string
	Forward bool
}

func (s *SearchState) Set(text string, forward bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Text, s.Forward = text, forward
}

func (s *SearchState) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Text, s.Forward
}
