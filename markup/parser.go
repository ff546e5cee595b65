package markup

import (
	"regexp"
	"strings"
)

var (
	headerBlockRe = regexp.MustCompile(`^(\#{1,6})[ \t]+(.+)`)
	hrBlockRe     = regexp.MustCompile(`^(\*{3,}|-{3,}|_{3,})$`)
	listBlockRe   = regexp.MustCompile(`^([ \t]*)([*+-]|\d+\.)[ \t]+(.+)`)
	quoteBlockRe  = regexp.MustCompile(`^>[ \t]*(.+)`)
	codeFenceRe   = regexp.MustCompile("^```(.*)")

	inlineTokenRe = regexp.MustCompile(`(%v)|(\*\*.+?\*\*)|(\*.+?\*)|(__.+?__)|(~~.+?~~)|(!?#[a-zA-Z0-9]{3,8}\(.+?\))`)
)

// Parse parses a basement-flavored markup string into a block tree (the
// teacher's markdown-ish block/inline grammar, adapted to emit style-class
// nodes instead of baked ANSI).
func Parse(input string) *Node {
	root := newNode(NodeRoot)
	lines := strings.Split(input, "\n")

	var currentList *Node
	var inCodeBlock bool
	var codeBlockLang string
	var codeBlockContent strings.Builder

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if matches := codeFenceRe.FindStringSubmatch(trimmed); matches != nil {
			if inCodeBlock {
				node := newNode(NodeCodeBlock)
				node.Content = codeBlockContent.String()
				node.Lang = codeBlockLang
				root.addChild(node)
				codeBlockContent.Reset()
				inCodeBlock = false
				codeBlockLang = ""
			} else {
				inCodeBlock = true
				codeBlockLang = strings.TrimSpace(matches[1])
			}
			continue
		}
		if inCodeBlock {
			codeBlockContent.WriteString(line + "\n")
			continue
		}

		if matches := listBlockRe.FindStringSubmatch(line); matches != nil {
			if currentList == nil {
				currentList = newNode(NodeList)
				root.addChild(currentList)
			}
			item := newNode(NodeListItem)
			item.Children = parseInline(matches[3])
			currentList.addChild(item)
			continue
		}
		if trimmed != "" {
			currentList = nil
		}

		if matches := headerBlockRe.FindStringSubmatch(line); matches != nil {
			level := len(matches[1])
			content := matches[2]

			style := "bold"
			switch level {
			case 1:
				style = "bold reverse"
			case 2:
				style = "bold underline"
			}

			node := newNode(NodeHeader)
			node.Style = style
			node.Children = parseInline(content)
			root.addChild(node)
			continue
		}

		if hrBlockRe.MatchString(trimmed) {
			root.addChild(newNode(NodeHR))
			continue
		}

		if matches := quoteBlockRe.FindStringSubmatch(line); matches != nil {
			node := newNode(NodeQuote)
			node.Style = "italic"
			node.Children = parseInline(matches[1])
			root.addChild(node)
			continue
		}

		if trimmed == "" {
			root.addChild(newNode(NodeText))
			continue
		}

		node := newNode(NodeBlock)
		node.Children = parseInline(line)
		root.addChild(node)
	}

	return root
}

// parseInline tokenizes bold/italic/underline/strike spans, `#name(...)`
// color spans, and %v holes out of a single line of text.
func parseInline(text string) []*Node {
	var nodes []*Node
	lastIndex := 0

	for _, match := range inlineTokenRe.FindAllStringIndex(text, -1) {
		start, end := match[0], match[1]
		if start > lastIndex {
			nodes = append(nodes, &Node{Type: NodeText, Content: text[lastIndex:start]})
		}

		token := text[start:end]
		switch {
		case token == "%v":
			nodes = append(nodes, &Node{Type: NodeHole, HoleID: -1})
		case strings.HasPrefix(token, "**"):
			nodes = append(nodes, styleSpan("bold", token[2:len(token)-2]))
		case strings.HasPrefix(token, "__"):
			nodes = append(nodes, styleSpan("underline", token[2:len(token)-2]))
		case strings.HasPrefix(token, "~~"):
			nodes = append(nodes, styleSpan("strike", token[2:len(token)-2]))
		case strings.HasPrefix(token, "*"):
			nodes = append(nodes, styleSpan("italic", token[1:len(token)-1]))
		case strings.Contains(token, "#"):
			nodes = append(nodes, colorSpan(token))
		}

		lastIndex = end
	}

	if lastIndex < len(text) {
		nodes = append(nodes, &Node{Type: NodeText, Content: text[lastIndex:]})
	}
	return nodes
}

func styleSpan(style, content string) *Node {
	n := newNode(NodeStyle)
	n.Style = style
	n.Children = parseInline(content)
	return n
}

// colorSpan parses a `#name(content)` or `!#name(content)` (background)
// token into a style node carrying "fg:name" or "bg:name".
func colorSpan(token string) *Node {
	isBg := strings.HasPrefix(token, "!")
	startParen := strings.Index(token, "(")
	endParen := strings.LastIndex(token, ")")
	if startParen < 0 || endParen <= startParen {
		return &Node{Type: NodeText, Content: token}
	}

	colorName := token[1:startParen]
	if isBg {
		colorName = token[2:startParen]
	}
	content := token[startParen+1 : endParen]

	n := newNode(NodeStyle)
	if isBg {
		n.Style = "bg:" + colorName
	} else {
		n.Style = "fg:" + colorName
	}
	n.Children = parseInline(content)
	return n
}
