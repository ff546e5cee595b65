// Package keyproc implements the key processor (component E): the
// queue → pending-buffer → match → dispatch state machine, numeric-argument
// accumulator, and macro record/replay, grounded on the channel-draining
// consumer shape of the teacher's input loop.
package keyproc

import (
	"log"
	"sync"

	"github.com/willibrandon/stroke/document"
	"github.com/willibrandon/stroke/keys"
)

const argClamp = 1_000_000

// Processor is the key-processor state machine of spec §4.E. A single
// Processor is owned by the event loop and mutated from one thread at a
// time; Feed synchronizes insertion into the queue so it may be called
// from any thread.
type Processor struct {
	mu       sync.Mutex
	queue    []keys.KeyPress
	pending  []keys.KeyPress
	arg      *string // nil = no argument being entered; "-" pending a digit
	prevSeq  []keys.KeyPress

	bindings keys.KeyBindings

	recording     bool
	macro         []keys.KeyPress
	BeforeKeyPress func(ev *keys.KeyPressEvent)
	AfterKeyPress  func(ev *keys.KeyPressEvent)

	// SaveBeforeHook, when set, is invoked whenever a dispatched binding's
	// SaveBefore predicate is true (typically wired to push the current
	// buffer's document onto its undo stack).
	SaveBeforeHook func()

	// CurrentBuffer, when set, supplies the KeyPressEvent's current_buffer
	// (spec §4.E step 3). It is called fresh on every dispatch since the
	// focused buffer can change between keypresses.
	CurrentBuffer func() *document.Buffer

	// App, when set, is copied onto every dispatched KeyPressEvent's App
	// field. Typed interface{} to avoid an import cycle (app imports
	// keyproc).
	App interface{}
}

// New creates a Processor dispatching against bindings.
func New(bindings keys.KeyBindings) *Processor {
	return &Processor{bindings: bindings}
}

// Feed appends kp to the input queue. If first is true, kp is inserted at
// the front instead (used for synthetic SIGINT injection).
func (p *Processor) Feed(kp keys.KeyPress, first bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if first {
		p.queue = append([]keys.KeyPress{kp}, p.queue...)
	} else {
		p.queue = append(p.queue, kp)
	}
}

// FeedSIGINT synthetically feeds a SIGINT KeyPress at the front of the
// queue (spec §4.E).
func (p *Processor) FeedSIGINT() {
	p.Feed(keys.KeyPress{Key: keys.Key(keys.SIGINT)}, true)
}

// EmptyQueue drains both the pending buffer and the input queue as a
// single list, filtering out CPRResponse markers (spec §4.E).
func (p *Processor) EmptyQueue() []keys.KeyPress {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]keys.KeyPress, 0, len(p.pending)+len(p.queue))
	out = append(out, p.pending...)
	out = append(out, p.queue...)
	p.pending = nil
	p.queue = nil

	filtered := out[:0:0]
	for _, kp := range out {
		if !kp.Key.IsChar && kp.Key.Name == keys.CPRResponse {
			continue
		}
		filtered = append(filtered, kp)
	}
	return filtered
}

// Reset clears the queue, pending buffer, and numeric argument.
func (p *Processor) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = nil
	p.pending = nil
	p.arg = nil
}

// Arg returns the current numeric-argument value, or nil if none is being
// entered.
func (p *Processor) Arg() *int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.argValue()
}

func (p *Processor) argValue() *int {
	if p.arg == nil {
		return nil
	}
	s := *p.arg
	if s == "" || s == "-" {
		v := -1
		if s == "" {
			v = 0
		}
		return &v
	}
	n := 0
	neg := false
	i := 0
	if s[0] == '-' {
		neg = true
		i = 1
	}
	for ; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
		if n > argClamp {
			n = argClamp
		}
	}
	if neg {
		n = -n
	}
	return &n
}

// AppendToArgCount feeds a digit ('0'..'9') or '-' into the numeric
// argument accumulator (spec §4.E).
func (p *Processor) AppendToArgCount(r rune) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if r == '-' {
		if p.arg == nil {
			s := "-"
			p.arg = &s
		}
		return
	}
	if r < '0' || r > '9' {
		return
	}
	if p.arg == nil {
		s := string(r)
		p.arg = &s
		return
	}
	*p.arg += string(r)
}

// dequeue pops the head of the input queue, or ok=false if empty.
func (p *Processor) dequeue() (keys.KeyPress, bool) {
	if len(p.queue) == 0 {
		return keys.KeyPress{}, false
	}
	kp := p.queue[0]
	p.queue = p.queue[1:]
	return kp, true
}

func sequenceOf(kps []keys.KeyPress) []keys.KoC {
	out := make([]keys.KoC, len(kps))
	for i, kp := range kps {
		out[i] = kp.Key
	}
	return out
}

func filterEagerBindings(bindings []*keys.Binding) []*keys.Binding {
	var out []*keys.Binding
	for _, b := range bindings {
		if b.Eager != nil && b.Eager() {
			out = append(out, b)
		}
	}
	return out
}

// ProcessKeys runs the protocol of spec §4.E to exhaustion: while the
// queue is non-empty, it grows the pending buffer and dispatches on
// exact/eager matches, or flushes the buffer key-by-key when no match is
// possible. Must run on the event-loop thread only.
func (p *Processor) ProcessKeys() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.queue) > 0 {
		kp, ok := p.dequeue()
		if !ok {
			break
		}
		p.pending = append(p.pending, kp)

		seq := sequenceOf(p.pending)
		exactMatches := p.bindings.GetBindingsForKeys(seq)
		prefixMatches := p.bindings.GetBindingsStartingWithKeys(seq)
		eagerExact := filterEagerBindings(exactMatches)

		switch {
		case len(eagerExact) > 0:
			p.dispatch(eagerExact, p.pending)
			p.pending = nil
		case len(prefixMatches) > 0:
			// continue: wait for more keys
		case len(exactMatches) > 0:
			p.dispatch(exactMatches, p.pending)
			p.pending = nil
		default:
			p.flushPendingOneByOne()
		}
	}
}

// flushPendingOneByOne implements the "no match possible" branch: pop keys
// off the front of the pending buffer, dispatching single-key exact
// matches and discarding unmatched ones.
func (p *Processor) flushPendingOneByOne() {
	for len(p.pending) > 0 {
		kp := p.pending[0]
		p.pending = p.pending[1:]

		matches := p.bindings.GetBindingsForKeys([]keys.KoC{kp.Key})
		if len(matches) > 0 {
			p.dispatch(matches, []keys.KeyPress{kp})
		}
	}
}

// sequenceEqual compares two key sequences by KoC only, ignoring the raw
// Data bytes (spec §3's notion of key_sequence identity).
func sequenceEqual(a, b []keys.KeyPress) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key {
			return false
		}
	}
	return true
}

// dispatch runs the full dispatch protocol (spec §4.E steps 1-7) against
// candidates, a list of bindings matching keyPresses ordered by
// registration (last = most-recently-registered, tried first per "last
// match wins"). If a handler returns NotImplemented, dispatch walks to
// the next candidate and retries (spec §4.E step 4).
func (p *Processor) dispatch(candidates []*keys.Binding, keyPresses []keys.KeyPress) {
	arg := p.argValue()
	prevSeq := append([]keys.KeyPress(nil), p.prevSeq...)
	seq := append([]keys.KeyPress(nil), keyPresses...)

	ev := &keys.KeyPressEvent{
		KeyPresses:          seq,
		PreviousKeySequence: prevSeq,
		IsRepeat:            sequenceEqual(seq, prevSeq),
		Arg:                 arg,
		App:                 p.App,
	}
	if p.CurrentBuffer != nil {
		ev.CurrentBuffer = p.CurrentBuffer()
	}

	if p.BeforeKeyPress != nil {
		p.BeforeKeyPress(ev)
	}

	var handledBy *keys.Binding
	for i := len(candidates) - 1; i >= 0; i-- {
		b := candidates[i]

		// save_before / filter exceptions are programmer error and propagate.
		if b.SaveBefore != nil && b.SaveBefore(b.Handler) {
			// Undo-stack push is the document model's responsibility; the
			// processor only decides whether it should happen.
			if p.SaveBeforeHook != nil {
				p.SaveBeforeHook()
			}
		}

		result, panicked := p.invokeHandler(b.Handler, ev)
		if panicked {
			break
		}
		if result == keys.Handled {
			handledBy = b
			break
		}
	}

	p.arg = nil
	p.prevSeq = seq
	if handledBy != nil && handledBy.RecordInMacro.Eval() && p.recording {
		p.macro = append(p.macro, keyPresses...)
	}

	if p.AfterKeyPress != nil {
		p.AfterKeyPress(ev)
	}
}

// invokeHandler calls h, logging and swallowing any panic (spec §4.E.5:
// handler exceptions are logged and swallowed). panicked reports whether
// h panicked, in which case dispatch stops trying further candidates.
func (p *Processor) invokeHandler(h keys.Handler, ev *keys.KeyPressEvent) (result keys.HandlerResult, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("keyproc: handler panic recovered: %v", r)
			panicked = true
		}
	}()
	result = h(ev)
	return
}

// StartRecording begins macro recording.
func (p *Processor) StartRecording() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.recording = true
	p.macro = nil
}

// StopRecording ends macro recording and returns the recorded sequence.
func (p *Processor) StopRecording() []keys.KeyPress {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.recording = false
	return append([]keys.KeyPress(nil), p.macro...)
}

// Replay feeds a previously recorded macro back into the queue.
func (p *Processor) Replay(macro []keys.KeyPress) {
	for _, kp := range macro {
		p.Feed(kp, false)
	}
}
