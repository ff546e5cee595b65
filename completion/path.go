package completion

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/willibrandon/stroke/document"
)

// PathCompleter completes filesystem paths from the fragment before the
// cursor, splitting it into a directory part (to list) and a filename
// prefix (to filter), per spec §4.K. OnlyDirectories restricts results to
// directories; MinInputLen suppresses completion below a length floor.
type PathCompleter struct {
	OnlyDirectories bool
	ExpandUser      bool
	MinInputLen     int
	FileFilter      func(name string) bool
}

func (p *PathCompleter) GetCompletions(doc *document.Document, ev CompleteEvent) []Completion {
	wordBefore := doc.WordBeforeCursor(true, false)
	if len(wordBefore) < p.MinInputLen {
		return nil
	}

	text := wordBefore
	if p.ExpandUser && strings.HasPrefix(text, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			text = home + text[1:]
		}
	}

	dir, prefix := filepath.Split(text)
	lookDir := dir
	if lookDir == "" {
		lookDir = "."
	}

	entries, err := os.ReadDir(lookDir)
	if err != nil {
		return nil
	}

	var out []Completion
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if p.OnlyDirectories && !e.IsDir() {
			continue
		}
		if p.FileFilter != nil && !e.IsDir() && !p.FileFilter(name) {
			continue
		}

		display := name
		insertText := name
		if e.IsDir() {
			display += "/"
			insertText += string(filepath.Separator)
		}

		out = append(out, Completion{
			Text:          insertText,
			StartPosition: -len([]rune(prefix)),
			Display:       display,
		})
	}
	return out
}

// ExecutableCompleter completes executable names found on PATH, falling
// back to PathCompleter-style filesystem completion once the word before
// the cursor contains a path separator (spec §4.K).
type ExecutableCompleter struct{}

func (ExecutableCompleter) GetCompletions(doc *document.Document, ev CompleteEvent) []Completion {
	wordBefore := doc.WordBeforeCursor(true, false)
	if strings.ContainsRune(wordBefore, filepath.Separator) || strings.HasPrefix(wordBefore, "~") {
		pc := &PathCompleter{}
		return pc.GetCompletions(doc, ev)
	}

	seen := make(map[string]bool)
	var out []Completion
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			if !strings.HasPrefix(name, wordBefore) {
				continue
			}
			if seen[name] {
				continue
			}
			if !isExecutable(filepath.Join(dir, name)) {
				continue
			}
			seen[name] = true
			out = append(out, Completion{
				Text:          name,
				StartPosition: -len([]rune(wordBefore)),
				Display:       name,
			})
		}
	}
	return out
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0111 != 0
}
