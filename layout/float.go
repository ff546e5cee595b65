package layout

import "github.com/willibrandon/stroke/screen"

// Float is a floating overlay drawn above FloatContainer's background
// content at an assigned z-index (spec §3).
type Float struct {
	Content Container

	Top, Right, Bottom, Left *int
	Width, Height            *int

	XCursor, YCursor bool
	AttachToWindow   interface{} // a window identity, matched against screen cursor anchors

	ZIndex int // >= 1

	Transparent          bool
	AllowCoverCursor     bool
	HideWhenCoveringContent bool
}

// FloatContainer draws content as the background, then overlays each
// Float at its assigned z-index (spec §4.G).
type FloatContainer struct {
	Content Container
	Floats  []Float
}

func (f *FloatContainer) GetChildren() []Container {
	out := []Container{f.Content}
	for _, fl := range f.Floats {
		out = append(out, fl.Content)
	}
	return out
}

func (f *FloatContainer) PreferredWidth(maxAvailableWidth int) Dimension {
	return f.Content.PreferredWidth(maxAvailableWidth)
}

func (f *FloatContainer) PreferredHeight(width, maxAvailableHeight int) Dimension {
	return f.Content.PreferredHeight(width, maxAvailableHeight)
}

// floatRect resolves one Float's position/size against the background
// rectangle, per the table in spec §4.G.
func floatRect(fl Float, bg WritePosition, cursor *screen.Point) WritePosition {
	width := bg.Width
	if fl.Width != nil {
		width = *fl.Width
	} else if fl.Left != nil && fl.Right != nil {
		width = bg.Width - *fl.Left - *fl.Right
	} else if pref := fl.Content.PreferredWidth(bg.Width); fl.Left == nil && fl.Right == nil && fl.Width == nil {
		width = pref.Preferred
		if width > bg.Width {
			width = bg.Width
		}
	}
	if width < 0 {
		width = 0
	}

	var x int
	switch {
	case fl.Left != nil:
		x = bg.XPos + *fl.Left
	case fl.Right != nil:
		x = bg.XPos + bg.Width - *fl.Right - width
	case fl.XCursor && cursor != nil:
		x = bg.XPos + cursor.Col
		if x+width > bg.XPos+bg.Width {
			x = bg.XPos + bg.Width - width
		}
	default:
		x = bg.XPos + (bg.Width-width)/2
	}

	height := bg.Height
	if fl.Height != nil {
		height = *fl.Height
	} else if fl.Top != nil && fl.Bottom != nil {
		height = bg.Height - *fl.Top - *fl.Bottom
	} else {
		pref := fl.Content.PreferredHeight(width, bg.Height)
		height = pref.Preferred
		if height > bg.Height {
			height = bg.Height
		}
	}
	if height < 0 {
		height = 0
	}

	var y int
	switch {
	case fl.Top != nil:
		y = bg.YPos + *fl.Top
	case fl.Bottom != nil:
		y = bg.YPos + bg.Height - *fl.Bottom - height
	case fl.YCursor && cursor != nil:
		y = bg.YPos + cursor.Row + 1
		if y+height > bg.YPos+bg.Height {
			y = bg.YPos + cursor.Row - height
		}
	default:
		y = bg.YPos + (bg.Height-height)/2
	}

	return WritePosition{XPos: x, YPos: y, Width: width, Height: height}
}

func (f *FloatContainer) WriteToScreen(s *screen.Screen, mh *MouseHandlers, wp WritePosition, parentStyle string, eraseBg bool, zIndex int) {
	f.Content.WriteToScreen(s, mh, wp, parentStyle, eraseBg, zIndex)

	for _, fl := range f.Floats {
		fl := fl
		var cursor *screen.Point
		if fl.XCursor || fl.YCursor {
			if p, ok := s.CursorPosition(fl.AttachToWindow); ok {
				cursor = &p
			}
		}
		rect := floatRect(fl, wp, cursor)

		if fl.HideWhenCoveringContent && !fl.AllowCoverCursor {
			if p, ok := s.CursorPosition(fl.AttachToWindow); ok {
				if p.Row >= rect.YPos && p.Row < rect.YPos+rect.Height &&
					p.Col >= rect.XPos && p.Col < rect.XPos+rect.Width {
					continue
				}
			}
		}

		z := fl.ZIndex
		if z < 1 {
			z = 1
		}
		s.DrawWithZIndex(z, func() {
			if !fl.Transparent {
				fillRect(s, rect.XPos, rect.YPos, rect.Width, rect.Height, parentStyle)
			}
			fl.Content.WriteToScreen(s, mh, rect, parentStyle, !fl.Transparent, z)
		})
	}
}
