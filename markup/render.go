package markup

import (
	"strings"

	"github.com/willibrandon/stroke/controls"
)

// hrWidth matches the teacher's fixed horizontal-rule width.
const hrWidth = 72

// Render walks tree and flattens it into a single fragment run, filling
// %v holes from args in the order they're encountered (depth-first,
// left-to-right) and joining blocks with newlines so the result can be
// fed straight to a FormattedTextControl.
func Render(tree *Node, args ...string) []controls.StyleAndTextTuple {
	var out []controls.StyleAndTextTuple
	holeIdx := 0

	var walkInline func(n *Node, style string)
	walkInline = func(n *Node, style string) {
		switch n.Type {
		case NodeText:
			if n.Content != "" {
				out = append(out, controls.StyleAndTextTuple{Style: style, Text: n.Content})
			}
		case NodeHole:
			text := ""
			if holeIdx < len(args) {
				text = args[holeIdx]
			}
			holeIdx++
			out = append(out, controls.StyleAndTextTuple{Style: style, Text: text})
		case NodeStyle:
			childStyle := strings.TrimSpace(style + " " + n.Style)
			for _, c := range n.Children {
				walkInline(c, childStyle)
			}
		default:
			for _, c := range n.Children {
				walkInline(c, style)
			}
		}
	}

	for i, block := range tree.Children {
		if i > 0 {
			out = append(out, controls.StyleAndTextTuple{Text: "\n"})
		}

		switch block.Type {
		case NodeHR:
			out = append(out, controls.StyleAndTextTuple{Style: "bold", Text: strings.Repeat("─", hrWidth)})
		case NodeCodeBlock:
			out = append(out, controls.StyleAndTextTuple{Style: "class:code", Text: strings.TrimSuffix(block.Content, "\n")})
		case NodeQuote:
			out = append(out, controls.StyleAndTextTuple{Style: "italic", Text: "▎ "})
			for _, c := range block.Children {
				walkInline(c, "italic")
			}
		case NodeList:
			for j, item := range block.Children {
				if j > 0 {
					out = append(out, controls.StyleAndTextTuple{Text: "\n"})
				}
				out = append(out, controls.StyleAndTextTuple{Text: "• "})
				for _, c := range item.Children {
					walkInline(c, "")
				}
			}
		case NodeHeader:
			out = append(out, controls.StyleAndTextTuple{Style: block.Style, Text: " "})
			for _, c := range block.Children {
				walkInline(c, block.Style)
			}
			out = append(out, controls.StyleAndTextTuple{Style: block.Style, Text: " "})
		case NodeText:
			// blank line between paragraphs; nothing to emit beyond the
			// join newline already written above.
		default:
			for _, c := range block.Children {
				walkInline(c, "")
			}
		}
	}

	return out
}

// RenderString is a convenience wrapper for callers that only need the
// plain text (no styling), e.g. computing a display width.
func RenderString(tree *Node, args ...string) string {
	var b strings.Builder
	for _, f := range Render(tree, args...) {
		b.WriteString(f.Text)
	}
	return b.String()
}

// Control parses source and wraps the rendered fragments in a
// FormattedTextControl, so any caller assembling a UI out of Windows
// (component I) gets markup support by constructing its content here
// instead of handing raw fragments to FormattedTextControl directly. args
// fill %v holes left in source the same way Render does.
func Control(source string, args ...string) *controls.FormattedTextControl {
	tree := Parse(source)
	return &controls.FormattedTextControl{
		Fragments: Render(tree, args...),
	}
}
