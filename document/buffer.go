package document

import (
	"sync"

	"github.com/willibrandon/stroke/signals"
)

// clipboardEntry is one ring slot: cut/yanked text plus whether it was a
// line-wise cut (affects paste placement the way an editor's "linewise
// yank" does).
type clipboardEntry struct {
	text     string
	linewise bool
}

// Buffer is a mutable wrapper over the current Document, with undo/redo
// stacks, a clipboard ring, a working index into history, and an accept
// handler (spec §3). Every public mutation pushes the prior Document onto
// the undo stack unless the mutation declares "no-save".
//
// The current Document is held in a signals.Signal rather than a plain
// field: controls subscribe to it via Buffer.Subscribe, giving
// UIControl.GetInvalidateEvents (spec §4.H) a real notification backbone
// instead of a hand-rolled observer list.
type Buffer struct {
	mu sync.Mutex

	doc *signals.Signal[*Document]

	undoStack []*Document
	redoStack []*Document

	clipboard   []clipboardEntry
	historyIdx  int // -1 = not browsing history
	workingLine string

	// AcceptHandler, when set, is invoked by Accept with the buffer's
	// current text; it returns true if the buffer should be kept (not
	// reset) after acceptance.
	AcceptHandler func(text string) bool
}

// NewBuffer creates a Buffer over an empty Document.
func NewBuffer() *Buffer {
	return &Buffer{doc: signals.New(New("", 0, nil)), historyIdx: -1}
}

// Document returns the buffer's current Document snapshot.
func (b *Buffer) Document() *Document {
	return b.doc.Peek()
}

// Subscribe registers notify to run whenever the buffer's document
// changes, including the initial registration. The returned Effect's
// Dispose unsubscribes it (spec §4.H's GetInvalidateEvents contract).
func (b *Buffer) Subscribe(notify func()) *signals.Effect {
	return signals.CreateEffect(func() {
		b.doc.Get()
		notify()
	})
}

// noSave replaces the current document without touching the undo stack,
// for mutations the spec marks "no-save" (e.g. history navigation).
func (b *Buffer) noSave(d *Document) {
	b.doc.Set(d)
}

// save replaces the current document, pushing the prior one onto the undo
// stack and clearing the redo stack (a fresh edit invalidates redo).
func (b *Buffer) save(d *Document) {
	b.undoStack = append(b.undoStack, b.doc.Peek())
	b.redoStack = nil
	b.doc.Set(d)
}

// SetDocument replaces the current document. If noSaveUndo is true, the
// mutation does not push onto the undo stack (spec §3's "no-save"
// mutations, e.g. undo/redo themselves or history browsing).
func (b *Buffer) SetDocument(d *Document, noSaveUndo bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if noSaveUndo {
		b.noSave(d)
	} else {
		b.save(d)
	}
}

// InsertText inserts text at the cursor, moving the cursor past it.
func (b *Buffer) InsertText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	d := b.doc.Peek()
	newText := d.TextBeforeCursor() + text + d.TextAfterCursor()
	b.save(New(newText, d.CursorPosition()+len(text), nil))
}

// DeleteBeforeCursor removes up to n bytes before the cursor (clamped to
// the text start) and returns the deleted text.
func (b *Buffer) DeleteBeforeCursor(n int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	d := b.doc.Peek()
	before := d.TextBeforeCursor()
	start := len(before) - n
	if start < 0 {
		start = 0
	}
	deleted := before[start:]
	newText := before[:start] + d.TextAfterCursor()
	b.save(New(newText, start, nil))
	return deleted
}

// Delete removes up to n bytes starting at the cursor and returns the
// deleted text.
func (b *Buffer) Delete(n int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	d := b.doc.Peek()
	after := d.TextAfterCursor()
	end := n
	if end > len(after) {
		end = len(after)
	}
	deleted := after[:end]
	newText := d.TextBeforeCursor() + after[end:]
	b.save(New(newText, d.CursorPosition(), nil))
	return deleted
}

// CursorLeft/CursorRight move the cursor by n positions (no-save: cursor
// movement alone never touches the undo stack).
func (b *Buffer) CursorLeft(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	d := b.doc.Peek()
	pos := d.CursorPosition() - n
	if pos < 0 {
		pos = 0
	}
	b.noSave(New(d.Text(), pos, d.Selection()))
}

func (b *Buffer) CursorRight(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	d := b.doc.Peek()
	pos := d.CursorPosition() + n
	if pos > len(d.Text()) {
		pos = len(d.Text())
	}
	b.noSave(New(d.Text(), pos, d.Selection()))
}

// Undo pops the undo stack onto the redo stack and restores the prior
// document. A no-op when the undo stack is empty.
func (b *Buffer) Undo() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.undoStack) == 0 {
		return
	}
	prev := b.undoStack[len(b.undoStack)-1]
	b.undoStack = b.undoStack[:len(b.undoStack)-1]
	b.redoStack = append(b.redoStack, b.doc.Peek())
	b.doc.Set(prev)
}

// Redo pops the redo stack and restores it, pushing the current document
// back onto the undo stack. A no-op when the redo stack is empty.
func (b *Buffer) Redo() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.redoStack) == 0 {
		return
	}
	next := b.redoStack[len(b.redoStack)-1]
	b.redoStack = b.redoStack[:len(b.redoStack)-1]
	b.undoStack = append(b.undoStack, b.doc.Peek())
	b.doc.Set(next)
}

// Cut pushes text onto the front of the clipboard ring (most-recent-first,
// matching a kill-ring's "last yank wins" retrieval order).
func (b *Buffer) Cut(text string, linewise bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clipboard = append([]clipboardEntry{{text: text, linewise: linewise}}, b.clipboard...)
}

// Paste inserts the most recently cut text at the cursor. A no-op if the
// clipboard ring is empty.
func (b *Buffer) Paste() {
	b.mu.Lock()
	text, ok := "", false
	if len(b.clipboard) > 0 {
		text, ok = b.clipboard[0].text, true
	}
	b.mu.Unlock()
	if ok {
		b.InsertText(text)
	}
}

// Accept invokes AcceptHandler (if set) with the current text. Per the
// handler's return value, the buffer is reset to empty unless the handler
// asked to keep it (e.g. a multiline editor accepting a paragraph).
func (b *Buffer) Accept() {
	text := b.doc.Peek().Text()
	handler := b.AcceptHandler

	keep := false
	if handler != nil {
		keep = handler(text)
	}
	if !keep {
		b.mu.Lock()
		b.doc.Set(New("", 0, nil))
		b.undoStack = nil
		b.redoStack = nil
		b.mu.Unlock()
	}
}
