// Package document implements the immutable Document and mutable Buffer
// of component F: text + cursor with lazily memoized line/word views and
// word/selection navigation primitives.
package document

import (
	"strings"
	"sync"
	"unicode"
)

// SelectionType distinguishes character-wise from line-wise selection.
type SelectionType int

const (
	SelectionChars SelectionType = iota
	SelectionLines
)

// Selection anchors a selection at a fixed position relative to the
// cursor (spec §3).
type Selection struct {
	AnchorPosition int
	Type           SelectionType
}

// Document is an immutable (text, cursor_position, selection?) value.
// Derived views are lazily memoized behind a mutex, since a Document may
// be shared across goroutines rendering different parts of a frame.
type Document struct {
	text           string
	cursorPosition int
	selection      *Selection

	mu        sync.Mutex
	lines     []string
	linesSet  bool
	lineStart []int // cumulative byte offset of each line's start
}

// New constructs a Document. cursorPosition must be a valid UTF-8 boundary
// in [0, len(text)]; out-of-range values are clamped.
func New(text string, cursorPosition int, selection *Selection) *Document {
	if cursorPosition < 0 {
		cursorPosition = 0
	}
	if cursorPosition > len(text) {
		cursorPosition = len(text)
	}
	for cursorPosition > 0 && cursorPosition < len(text) && !isUTF8Boundary(text, cursorPosition) {
		cursorPosition--
	}
	return &Document{text: text, cursorPosition: cursorPosition, selection: selection}
}

func isUTF8Boundary(s string, i int) bool {
	if i == 0 || i == len(s) {
		return true
	}
	return s[i]&0xC0 != 0x80
}

// Text returns the document's full text.
func (d *Document) Text() string { return d.text }

// CursorPosition returns the cursor's byte offset into Text().
func (d *Document) CursorPosition() int { return d.cursorPosition }

// Selection returns the document's selection, or nil if none.
func (d *Document) Selection() *Selection { return d.selection }

// TextBeforeCursor and TextAfterCursor split Text() at the cursor.
func (d *Document) TextBeforeCursor() string { return d.text[:d.cursorPosition] }
func (d *Document) TextAfterCursor() string  { return d.text[d.cursorPosition:] }

func (d *Document) ensureLines() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.linesSet {
		return
	}
	d.lines = strings.Split(d.text, "\n")
	d.lineStart = make([]int, len(d.lines))
	offset := 0
	for i, l := range d.lines {
		d.lineStart[i] = offset
		offset += len(l) + 1 // +1 for the '\n' consumed by Split
	}
	d.linesSet = true
}

// Lines splits Text() on '\n' with no carriage-return normalization
// (callers pre-normalize) — spec §4.F.
func (d *Document) Lines() []string {
	d.ensureLines()
	return append([]string(nil), d.lines...)
}

// CursorPositionRow and CursorPositionCol locate the cursor within Lines(),
// derived by accumulating line lengths (spec §4.F).
func (d *Document) CursorPositionRow() int {
	row, _ := d.rowCol()
	return row
}

func (d *Document) CursorPositionCol() int {
	_, col := d.rowCol()
	return col
}

func (d *Document) rowCol() (row, col int) {
	d.ensureLines()
	for i, start := range d.lineStart {
		end := start + len(d.lines[i])
		if d.cursorPosition <= end || i == len(d.lineStart)-1 {
			return i, d.cursorPosition - start
		}
	}
	return 0, d.cursorPosition
}

// isWordChar matches the alphanumeric/underscore word class used as the
// default for navigation primitives and WordBeforeCursor (spec §4.F).
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// WordBeforeCursor returns the run of word characters ending exactly at
// the cursor, by default the longest `\w+` run. WORD=true widens the
// class to any non-whitespace run. sentence=true returns the entire
// substring from the last newline (or start) to the cursor.
func (d *Document) WordBeforeCursor(word bool, sentence bool) string {
	before := d.TextBeforeCursor()
	if sentence {
		if i := strings.LastIndexByte(before, '\n'); i >= 0 {
			return before[i+1:]
		}
		return before
	}

	runes := []rune(before)
	classify := isWordChar
	if word {
		classify = func(r rune) bool { return !unicode.IsSpace(r) }
	}
	end := len(runes)
	start := end
	for start > 0 && classify(runes[start-1]) {
		start--
	}
	return string(runes[start:end])
}

// runes returns the text as runes. Document positions are byte offsets
// (UTF-8) but word navigation operates rune-at-a-time; byteOffsetOf and
// runeIndexOf convert between the two.
func (d *Document) runes() []rune { return []rune(d.text) }

func byteOffsetOf(text string, runeIdx int) int {
	if runeIdx <= 0 {
		return 0
	}
	n := 0
	for i := range text {
		if n == runeIdx {
			return i
		}
		n++
	}
	return len(text)
}

func runeIndexOf(text string, byteOffset int) int {
	n := 0
	for i := range text {
		if i >= byteOffset {
			return n
		}
		n++
	}
	return n
}

// FindNextWordBeginning returns the byte offset of the start of the next
// word after the cursor, or nil if none exists.
func (d *Document) FindNextWordBeginning() *int {
	runes := d.runes()
	i := runeIndexOf(d.text, d.cursorPosition)
	n := len(runes)

	for i < n && isWordChar(runes[i]) {
		i++
	}
	for i < n && !isWordChar(runes[i]) {
		i++
	}
	if i >= n {
		return nil
	}
	off := byteOffsetOf(d.text, i)
	return &off
}

// FindNextWordEnding returns the byte offset just past the end of the
// current or next word after the cursor, or nil if none exists.
func (d *Document) FindNextWordEnding() *int {
	runes := d.runes()
	i := runeIndexOf(d.text, d.cursorPosition)
	n := len(runes)

	for i < n && !isWordChar(runes[i]) {
		i++
	}
	for i < n && isWordChar(runes[i]) {
		i++
	}
	if i == runeIndexOf(d.text, d.cursorPosition) || i > n {
		return nil
	}
	off := byteOffsetOf(d.text, i)
	return &off
}

// FindPreviousWordBeginning returns the byte offset of the start of the
// word before the cursor, or nil if none exists.
func (d *Document) FindPreviousWordBeginning() *int {
	runes := d.runes()
	i := runeIndexOf(d.text, d.cursorPosition)

	for i > 0 && !isWordChar(runes[i-1]) {
		i--
	}
	for i > 0 && isWordChar(runes[i-1]) {
		i--
	}
	if i == runeIndexOf(d.text, d.cursorPosition) {
		return nil
	}
	off := byteOffsetOf(d.text, i)
	return &off
}

// FindPreviousWordEnding returns the byte offset just past the end of a
// word before the cursor, or nil if none exists. If the character before
// the cursor is a word character, the word it belongs to is skipped first
// and the result is the end of the word before that one; otherwise it is
// the end of the nearest word before the cursor.
func (d *Document) FindPreviousWordEnding() *int {
	runes := d.runes()
	i := runeIndexOf(d.text, d.cursorPosition)

	for i > 0 && isWordChar(runes[i-1]) {
		i--
	}
	for i > 0 && !isWordChar(runes[i-1]) {
		i--
	}
	if i == 0 {
		return nil
	}
	off := byteOffsetOf(d.text, i)
	return &off
}
