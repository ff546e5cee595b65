// Command demo renders basement-flavored markup from the command line or
// stdin through the full component pipeline: markup.Control parses the
// text and wraps it in a FormattedTextControl (H), a Window (I) maps that
// control's lines onto a Screen (C), and Application.RenderFrame (the
// event-loop's single-frame path) emits the diff through an output.Writer
// (B).
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/willibrandon/stroke/app"
	"github.com/willibrandon/stroke/keys"
	"github.com/willibrandon/stroke/markup"
	"github.com/willibrandon/stroke/output"
	"github.com/willibrandon/stroke/window"
)

func main() {
	info, statErr := os.Stdin.Stat()

	switch {
	case len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help"):
		demo()
	case len(os.Args) > 1:
		render(strings.Join(os.Args[1:], " "))
	case statErr == nil && info.Mode()&os.ModeCharDevice == 0:
		reader := bufio.NewReader(os.Stdin)
		var b strings.Builder
		for {
			line, err := reader.ReadString('\n')
			b.WriteString(line)
			if err == io.EOF {
				break
			}
		}
		render(b.String())
	default:
		fmt.Fprintln(os.Stderr, "usage: demo <markup text> or pipe input")
	}
}

func render(input string) {
	w := output.New(false)
	root := &window.Window{Content: markup.Control(input)}
	a := app.New(root, w, keys.NewRegistry())

	if err := a.RenderFrame(); err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
	}
}

func demo() {
	render(`
# Bringing MD-Like Syntax To The Terminal
It should be something as **easy**
and as __natural__ as writing text.

> Keep It Simple

Is the idea

* behind
* all this

~~striking~~ UX also for ` + "`code spans`" + ` users.
#green(colored) and !#blue(highlighted) text too!
`)
}
