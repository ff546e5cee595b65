// Package app supplements the spec with the Application the core's other
// components are described relative to but which spec.md itself leaves
// undefined (§9: "the Application" is referenced as a handler parameter
// without a definition). It wires together the key processor (E), a root
// container (G), a Screen (C), and an Output writer (B) into the single
// cooperative event-loop thread spec §8 describes.
package app

import (
	"sync"

	"github.com/willibrandon/stroke/keyproc"
	"github.com/willibrandon/stroke/keys"
	"github.com/willibrandon/stroke/layout"
	"github.com/willibrandon/stroke/output"
	"github.com/willibrandon/stroke/screen"
	"github.com/willibrandon/stroke/style"
)

// Application owns the frame loop: feed key events, run the processor to
// exhaustion, re-layout the root container onto a fresh Screen, and emit
// the diff through a Renderer.
type Application struct {
	Root      layout.Container
	Processor *keyproc.Processor
	Writer    output.Writer
	Renderer  *Renderer

	// CursorWindow identifies which window's registered cursor anchor the
	// Renderer should position the terminal cursor at; typically the
	// currently focused Window. Nil suppresses cursor positioning.
	CursorWindow interface{}

	mu          sync.Mutex
	invalidated bool
	exitErr     error
	exiting     bool
}

// New constructs an Application rendering root through w, dispatching
// keys against bindings.
func New(root layout.Container, w output.Writer, bindings keys.KeyBindings) *Application {
	a := &Application{
		Root:      root,
		Processor: keyproc.New(bindings),
		Writer:    w,
		Renderer:  NewRenderer(w, style.DefaultSheet()),
	}
	// Processor.App is interface{} precisely so it can hold *Application
	// without keys (and keyproc) importing this package.
	a.Processor.App = a
	return a
}

// Invalidate marks the application as needing a redraw on the next frame,
// e.g. from a Buffer.Subscribe callback fired outside the frame loop.
func (a *Application) Invalidate() {
	a.mu.Lock()
	a.invalidated = true
	a.mu.Unlock()
}

func (a *Application) consumeInvalidated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	v := a.invalidated
	a.invalidated = false
	return v
}

// Exit requests the Run loop stop after the current frame, recording err
// (possibly nil) as the value Run returns.
func (a *Application) Exit(err error) {
	a.mu.Lock()
	a.exiting = true
	a.exitErr = err
	a.mu.Unlock()
}

func (a *Application) exitRequested() (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.exiting, a.exitErr
}

// RenderFrame lays the root container out onto a fresh Screen sized to
// the writer's current terminal dimensions and emits the diff (spec §8's
// "Layout traversal → Controls produce UIContent → Window writes styled
// cells to Screen → Output emits minimal diff").
func (a *Application) RenderFrame() error {
	rows, cols := a.Writer.GetSize()
	if rows <= 0 {
		rows = 40
	}
	if cols <= 0 {
		cols = 80
	}

	s := screen.New(cols, rows)
	mh := layout.NewMouseHandlers()
	wp := layout.WritePosition{XPos: 0, YPos: 0, Width: cols, Height: rows}
	a.Root.WriteToScreen(s, mh, wp, "", true, 0)
	s.Render()

	return a.Renderer.Render(s, a.CursorWindow)
}

// RunFrame processes any queued key events to exhaustion and renders a
// single frame. Callers drive their own input source and call RunFrame
// once per batch of delivered KeyPresses; byte-level input decoding is
// outside this package (spec's non-goals: "the terminal-input byte
// decoder").
func (a *Application) RunFrame() error {
	a.Processor.ProcessKeys()
	return a.RenderFrame()
}

// Run feeds events from input into the processor and renders a frame
// after each batch, until input closes or Exit is called. It returns
// Exit's recorded error (nil on a plain input-closed exit).
func (a *Application) Run(input <-chan keys.KeyPress) error {
	for {
		kp, ok := <-input
		if !ok {
			return nil
		}
		a.Processor.Feed(kp, false)

		// Drain whatever else arrived without blocking, so a burst of
		// paste/macro keys dispatches and renders as one frame.
		draining := true
		for draining {
			select {
			case kp, ok := <-input:
				if !ok {
					draining = false
					break
				}
				a.Processor.Feed(kp, false)
			default:
				draining = false
			}
		}

		if err := a.RunFrame(); err != nil {
			return err
		}
		a.consumeInvalidated()

		if exiting, err := a.exitRequested(); exiting {
			return err
		}
	}
}
