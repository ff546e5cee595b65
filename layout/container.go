package layout

import (
	"github.com/willibrandon/stroke/controls"
	"github.com/willibrandon/stroke/screen"
)

// WritePosition is the rectangle a container has been allotted to render
// into for one frame.
type WritePosition struct {
	XPos, YPos, Width, Height int
}

// MouseHandlers maps a screen point to the handler that owns it, built up
// as containers write themselves (spec §4.G/§4.H).
type MouseHandlers struct {
	m map[screen.Point]func(ev controls.MouseEvent) controls.MouseHandlerResult
}

// NewMouseHandlers creates an empty handler map.
func NewMouseHandlers() *MouseHandlers {
	return &MouseHandlers{m: make(map[screen.Point]func(controls.MouseEvent) controls.MouseHandlerResult)}
}

// Set registers the handler owning point p.
func (mh *MouseHandlers) Set(p screen.Point, h func(controls.MouseEvent) controls.MouseHandlerResult) {
	mh.m[p] = h
}

// Get returns the handler owning point p, if any.
func (mh *MouseHandlers) Get(p screen.Point) (func(controls.MouseEvent) controls.MouseHandlerResult, bool) {
	h, ok := mh.m[p]
	return h, ok
}

// Container is the sum-type interface implemented by HSplit, VSplit,
// FloatContainer, ConditionalContainer, DynamicContainer, and (in package
// window) Window (spec §3).
type Container interface {
	PreferredWidth(maxAvailableWidth int) Dimension
	PreferredHeight(width, maxAvailableHeight int) Dimension
	WriteToScreen(s *screen.Screen, mouseHandlers *MouseHandlers, wp WritePosition, parentStyle string, eraseBg bool, zIndex int)
	GetChildren() []Container
}

// fillRect blanks a rectangle with a styled space, used by HSplit/VSplit
// to paint padding gutters and by FloatContainer to erase
// backgrounds before drawing content (spec §4.I step 4).
func fillRect(s *screen.Screen, x, y, w, h int, style string) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.DrawChar(row, col, screen.Char{Grapheme: " ", Style: style, Width: 1})
		}
	}
}
