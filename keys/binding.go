package keys

import (
	"errors"

	"github.com/willibrandon/stroke/document"
)

// HandlerResult tells the key processor whether a Handler dispatched the
// event or declined it. NotImplemented is the zero value, so a handler
// that forgets a return statement on some path fails open toward "try the
// next candidate" rather than silently eating the keypress (spec §4.E
// step 4).
type HandlerResult int

const (
	NotImplemented HandlerResult = iota
	Handled
)

// Handler is invoked when a Binding's key-sequence is dispatched. It
// returns NotImplemented to let the processor walk to the next candidate
// binding in the match list, or Handled to stop there.
type Handler func(event *KeyPressEvent) HandlerResult

// KeyPressEvent carries the matched key presses and argument state to a
// handler. Defined here (not in keyproc) so Binding.Handler has no import
// cycle back to the processor.
type KeyPressEvent struct {
	KeyPresses          []KeyPress
	PreviousKeySequence []KeyPress // the sequence dispatched immediately before this one
	IsRepeat            bool       // KeyPresses repeats PreviousKeySequence
	Arg                 *int       // nil when no numeric argument was entered
	CurrentBuffer       *document.Buffer
	App                 interface{} // the running *app.Application; interface{} avoids an import cycle
}

// ErrEmptyKeySequence is returned when a Binding is registered with no keys.
var ErrEmptyKeySequence = errors.New("keys: binding key sequence must not be empty")

// ErrNilHandler is returned when a Binding is registered with a nil handler.
var ErrNilHandler = errors.New("keys: binding handler must not be nil")

// Binding is an immutable (key-sequence, handler, metadata) tuple (spec §3).
type Binding struct {
	Keys         []KoC
	Handler      Handler
	Filter       Filter
	Eager        Filter
	IsGlobal     bool
	SaveBefore   func(Handler) bool
	RecordInMacro Filter
}

// NewBinding validates and constructs a Binding. Per spec §4.D, an empty
// key sequence or nil handler is an ArgumentError.
func NewBinding(seq []KoC, handler Handler, opts ...BindingOption) (*Binding, error) {
	if len(seq) == 0 {
		return nil, ErrEmptyKeySequence
	}
	if handler == nil {
		return nil, ErrNilHandler
	}
	b := &Binding{
		Keys:          append([]KoC(nil), seq...),
		Handler:       handler,
		SaveBefore:    func(Handler) bool { return true },
		RecordInMacro: Always,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// BindingOption configures optional Binding metadata.
type BindingOption func(*Binding)

// WithFilter sets the binding's candidacy filter.
func WithFilter(f Filter) BindingOption { return func(b *Binding) { b.Filter = f } }

// WithEager sets the binding's eager filter (eager bindings preempt longer
// matches when true).
func WithEager(f Filter) BindingOption { return func(b *Binding) { b.Eager = f } }

// WithGlobal marks the binding as global.
func WithGlobal() BindingOption { return func(b *Binding) { b.IsGlobal = true } }

// WithSaveBefore overrides the default save-before-dispatch predicate.
func WithSaveBefore(f func(Handler) bool) BindingOption {
	return func(b *Binding) { b.SaveBefore = f }
}

// WithRecordInMacro overrides the default always-record-in-macro filter.
func WithRecordInMacro(f Filter) BindingOption {
	return func(b *Binding) { b.RecordInMacro = f }
}

// filterOK reports whether the binding is currently a candidate: its
// Filter evaluates true (nil Filter defaults to true).
func (b *Binding) filterOK() bool {
	return b.Filter.eval()
}

// eagerOK reports whether the binding's eager filter currently holds.
func (b *Binding) eagerOK() bool {
	return b.Eager.eval()
}
