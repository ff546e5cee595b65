package layout

import (
	"github.com/willibrandon/stroke/keys"
	"github.com/willibrandon/stroke/screen"
)

// ConditionalContainer renders Content when Filter holds, and Else (which
// may be nil) otherwise. A nil Filter defaults to always-true (spec §4.G).
type ConditionalContainer struct {
	Content Container
	Filter  keys.Filter
	Else    Container
}

func (c *ConditionalContainer) active() bool { return c.Filter.Eval() }

func (c *ConditionalContainer) GetChildren() []Container {
	if c.active() {
		return []Container{c.Content}
	}
	if c.Else != nil {
		return []Container{c.Else}
	}
	return nil
}

func (c *ConditionalContainer) PreferredWidth(maxAvailableWidth int) Dimension {
	if !c.active() {
		if c.Else != nil {
			return c.Else.PreferredWidth(maxAvailableWidth)
		}
		return Exact(0)
	}
	return c.Content.PreferredWidth(maxAvailableWidth)
}

func (c *ConditionalContainer) PreferredHeight(width, maxAvailableHeight int) Dimension {
	if !c.active() {
		if c.Else != nil {
			return c.Else.PreferredHeight(width, maxAvailableHeight)
		}
		return Exact(0)
	}
	return c.Content.PreferredHeight(width, maxAvailableHeight)
}

func (c *ConditionalContainer) WriteToScreen(s *screen.Screen, mh *MouseHandlers, wp WritePosition, parentStyle string, eraseBg bool, zIndex int) {
	if !c.active() {
		if c.Else != nil {
			c.Else.WriteToScreen(s, mh, wp, parentStyle, eraseBg, zIndex)
		}
		return
	}
	c.Content.WriteToScreen(s, mh, wp, parentStyle, eraseBg, zIndex)
}

// DynamicContainer resolves its content freshly on every method call. A
// nil Resolver, or one returning nil, behaves as a zero-size DummyControl
// would (spec §4.G).
type DynamicContainer struct {
	Resolver func() Container
}

func (d *DynamicContainer) resolve() Container {
	if d.Resolver != nil {
		if c := d.Resolver(); c != nil {
			return c
		}
	}
	return nil
}

func (d *DynamicContainer) GetChildren() []Container {
	if c := d.resolve(); c != nil {
		return []Container{c}
	}
	return nil
}

func (d *DynamicContainer) PreferredWidth(maxAvailableWidth int) Dimension {
	if c := d.resolve(); c != nil {
		return c.PreferredWidth(maxAvailableWidth)
	}
	return Exact(0)
}

func (d *DynamicContainer) PreferredHeight(width, maxAvailableHeight int) Dimension {
	if c := d.resolve(); c != nil {
		return c.PreferredHeight(width, maxAvailableHeight)
	}
	return Exact(0)
}

func (d *DynamicContainer) WriteToScreen(s *screen.Screen, mh *MouseHandlers, wp WritePosition, parentStyle string, eraseBg bool, zIndex int) {
	if c := d.resolve(); c != nil {
		c.WriteToScreen(s, mh, wp, parentStyle, eraseBg, zIndex)
	}
}
