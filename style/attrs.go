// Package style implements the escape-code and color caches (component A):
// RGB-to-palette mapping and an attrs+depth to SGR string memoization cache.
package style

// ColorDepth enumerates the four supported terminal color depths.
type ColorDepth int

const (
	Depth1Bit  ColorDepth = iota // monochrome
	Depth4Bit                    // 16 ANSI colors
	Depth8Bit                    // 256-color palette
	Depth24Bit                   // true color (RGB)
)

// Attrs describes the visual style of a run of text. Color and BgColor hold
// either an ANSI color name ("red"), a hex RGB triplet ("ff5733"), or the
// empty string for "unset". They are semantic values resolved to an escape
// sequence only by the Cache, never baked in ahead of time.
type Attrs struct {
	Color   string
	BgColor string

	Bold      bool
	Underline bool
	Strike    bool
	Italic    bool
	Blink     bool
	Reverse   bool
	Hidden    bool
}

// ansiNames maps the 16 base color names recognized for 4-bit output to
// their SGR foreground code offsets (30-37 for normal, 90-97 for bright).
var ansiNames = []struct {
	name          string
	r, g, b       int
	code          int
	bright        bool
}{
	{"black", 0, 0, 0, 0, false},
	{"red", 255, 0, 0, 1, false},
	{"green", 0, 255, 0, 2, false},
	{"yellow", 255, 255, 0, 3, false},
	{"blue", 0, 0, 255, 4, false},
	{"magenta", 255, 0, 255, 5, false},
	{"cyan", 0, 255, 255, 6, false},
	{"gray", 192, 192, 192, 7, false},
	{"darkgray", 128, 128, 128, 0, true},
	{"brightred", 255, 85, 85, 1, true},
	{"brightgreen", 85, 255, 85, 2, true},
	{"brightyellow", 255, 255, 85, 3, true},
	{"brightblue", 85, 85, 255, 4, true},
	{"brightmagenta", 255, 85, 255, 5, true},
	{"brightcyan", 85, 255, 255, 6, true},
	{"white", 255, 255, 255, 7, true},
}
