package style

import "strings"

// Sheet maps class names (the spec's "class:foo" style tokens, spec §3's
// StyleAndTextTuple) to the Attrs they contribute. Resolve merges a
// StyleAndTextTuple's space-separated style string — classes and raw
// fragments ("bold", "fg:red", "bg:ff0000") alike — into a single Attrs,
// later token wins on conflicting fields.
type Sheet struct {
	rules map[string]Attrs
}

// NewSheet creates an empty Sheet.
func NewSheet() *Sheet { return &Sheet{rules: make(map[string]Attrs)} }

// Set registers or replaces the Attrs for class name.
func (s *Sheet) Set(name string, a Attrs) { s.rules[name] = a }

// DefaultSheet provides Attrs for the class names the rendering pipeline
// emits on its own (selection, search highlight, margins, scrollbar),
// so a window built with zero application-supplied styling still renders
// visibly distinct overlays.
func DefaultSheet() *Sheet {
	s := NewSheet()
	s.Set("selected", Attrs{Reverse: true})
	s.Set("search", Attrs{BgColor: "yellow", Color: "black"})
	s.Set("search.current", Attrs{BgColor: "brightyellow", Color: "black"})
	s.Set("cursor-line", Attrs{Reverse: false, BgColor: "darkgray"})
	s.Set("cursor-column", Attrs{BgColor: "darkgray"})
	s.Set("color-column", Attrs{BgColor: "darkgray"})
	s.Set("line-number", Attrs{Color: "gray"})
	s.Set("current-line-number", Attrs{Bold: true})
	s.Set("scrollbar.background", Attrs{BgColor: "darkgray"})
	s.Set("scrollbar.button", Attrs{BgColor: "gray"})
	s.Set("scrollbar.arrow", Attrs{Bold: true})
	return s
}

func mergeAttrs(dst, src Attrs) Attrs {
	if src.Color != "" {
		dst.Color = src.Color
	}
	if src.BgColor != "" {
		dst.BgColor = src.BgColor
	}
	dst.Bold = dst.Bold || src.Bold
	dst.Underline = dst.Underline || src.Underline
	dst.Strike = dst.Strike || src.Strike
	dst.Italic = dst.Italic || src.Italic
	dst.Blink = dst.Blink || src.Blink
	dst.Reverse = dst.Reverse || src.Reverse
	dst.Hidden = dst.Hidden || src.Hidden
	return dst
}

// Resolve parses a space-separated style string into Attrs. "nooverlay"
// is a marker token consumers check for directly (it carries no visual
// attributes of its own) and is otherwise ignored here.
func (s *Sheet) Resolve(styleString string) Attrs {
	var a Attrs
	for _, tok := range strings.Fields(styleString) {
		switch {
		case tok == "nooverlay":
			continue
		case strings.HasPrefix(tok, "class:"):
			for _, cls := range strings.Split(strings.TrimPrefix(tok, "class:"), ",") {
				if rule, ok := s.rules[cls]; ok {
					a = mergeAttrs(a, rule)
				}
			}
		case strings.HasPrefix(tok, "fg:"):
			a.Color = strings.TrimPrefix(tok, "fg:")
		case strings.HasPrefix(tok, "bg:"):
			a.BgColor = strings.TrimPrefix(tok, "bg:")
		case tok == "bold":
			a.Bold = true
		case tok == "nobold":
			a.Bold = false
		case tok == "italic":
			a.Italic = true
		case tok == "noitalic":
			a.Italic = false
		case tok == "underline":
			a.Underline = true
		case tok == "nounderline":
			a.Underline = false
		case tok == "strike":
			a.Strike = true
		case tok == "nostrike":
			a.Strike = false
		case tok == "blink":
			a.Blink = true
		case tok == "noblink":
			a.Blink = false
		case tok == "reverse":
			a.Reverse = true
		case tok == "noreverse":
			a.Reverse = false
		case tok == "hidden":
			a.Hidden = true
		case tok == "nohidden":
			a.Hidden = false
		default:
			// Bare color name or hex triplet, prompt_toolkit-style.
			a.Color = tok
		}
	}
	return a
}
