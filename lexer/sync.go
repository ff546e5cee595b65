package lexer

import (
	"regexp"

	"github.com/willibrandon/stroke/document"
)

// Constants pinned by spec §4.J.
const (
	reuseMax          = 100 // generator reuse: N - G_pos < REUSE_MAX
	minBack           = 50  // sync_strategy start = max(0, N - MIN_BACK)
	maxBack           = 500 // RegexSync scan window
	fallbackThreshold = 100
)

// SyncStrategy locates a safe restart point for line-lazy lexing
// (spec §4.J, glossary "Sync point").
type SyncStrategy interface {
	GetSyncStartPosition(doc *document.Document, start int) (row, col int)
}

// syncFromStartStrategy always returns (0, 0).
type syncFromStartStrategy struct{}

// SyncFromStart is the singleton strategy that always restarts at the
// document's beginning.
var SyncFromStart SyncStrategy = syncFromStartStrategy{}

func (syncFromStartStrategy) GetSyncStartPosition(doc *document.Document, start int) (int, int) {
	return 0, 0
}

// RegexSync scans lines in [max(0, lineNo-maxBack), lineNo] for Pattern,
// returning the first (from the end) matching row, or falling back per
// spec §4.J's fallbackThreshold rule.
type RegexSync struct {
	Pattern *regexp.Regexp
}

// NewRegexSync compiles pattern into a RegexSync.
func NewRegexSync(pattern string) RegexSync {
	return RegexSync{Pattern: regexp.MustCompile(pattern)}
}

// ForLanguage returns the RegexSync preset for a named language, or "^" as
// the catch-all default (spec §4.J).
func ForLanguage(name string) RegexSync {
	switch name {
	case "python", "python3":
		return NewRegexSync(`^\s*(class|def)\s+`)
	case "html":
		return NewRegexSync(`<[/a-zA-Z]`)
	case "javascript":
		return NewRegexSync(`\bfunction\b`)
	default:
		return NewRegexSync(`^`)
	}
}

func (s RegexSync) GetSyncStartPosition(doc *document.Document, lineNo int) (int, int) {
	lines := doc.Lines()
	from := lineNo - maxBack
	if from < 0 {
		from = 0
	}
	if lineNo >= len(lines) {
		lineNo = len(lines) - 1
	}
	for row := lineNo; row >= from; row-- {
		if row < 0 || row >= len(lines) {
			continue
		}
		if s.Pattern.MatchString(lines[row]) {
			return row, 0
		}
	}
	if lineNo < fallbackThreshold {
		return 0, 0
	}
	return lineNo, 0
}

// TokenCache amortizes building "class:pygments.<joined.lowercase>" style
// strings from a token-type path (spec §4.J).
type TokenCache struct {
	cache map[string]string
}

// NewTokenCache creates an empty TokenCache.
func NewTokenCache() *TokenCache { return &TokenCache{cache: make(map[string]string)} }

// StyleFor returns the memoized style string for a token-type path.
func (c *TokenCache) StyleFor(path []string) string {
	key := joinLower(path)
	if v, ok := c.cache[key]; ok {
		return v
	}
	v := "class:pygments." + key
	c.cache[key] = v
	return v
}

func joinLower(path []string) string {
	out := make([]byte, 0, 32)
	for i, p := range path {
		if i > 0 {
			out = append(out, '.')
		}
		for _, r := range p {
			if r >= 'A' && r <= 'Z' {
				r = r - 'A' + 'a'
			}
			out = append(out, byte(r))
		}
	}
	return string(out)
}
