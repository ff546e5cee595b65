package style

import (
	"strconv"
	"strings"
	"sync"
)

type escapeKey struct {
	attrs Attrs
	depth ColorDepth
}

// Cache memoizes (Attrs, ColorDepth) -> SGR escape-sequence string, plus the
// two color-downsampling caches it depends on (spec §4.A).
type Cache struct {
	c16  *Color16Cache
	c256 *Color256Cache

	mu    sync.RWMutex
	cache map[escapeKey]string
}

// NewCache creates an escape-code cache with fresh color sub-caches.
func NewCache() *Cache {
	return &Cache{
		c16:   NewColor16Cache(),
		c256:  NewColor256Cache(),
		cache: make(map[escapeKey]string),
	}
}

// Escape returns the full `ESC [ 0 ; codes m` string for the given attrs at
// the given color depth. Pure function of its inputs: equal calls produce
// equal strings.
func (c *Cache) Escape(a Attrs, depth ColorDepth) string {
	key := escapeKey{a, depth}

	c.mu.RLock()
	if v, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	v := c.compute(a, depth)

	c.mu.Lock()
	c.cache[key] = v
	c.mu.Unlock()

	return v
}

func (c *Cache) compute(a Attrs, depth ColorDepth) string {
	var codes []string

	if fg := c.fgCode(a.Color, depth); fg != "" {
		codes = append(codes, fg)
	}
	// Prevent fg == bg only in the 4-bit path, where both get mapped
	// through the same nearest-candidate search (spec §4.A exclude_name).
	bgExclude := ""
	if depth == Depth4Bit {
		if _, name := c.nearestName16(a.Color); name != "" {
			bgExclude = name
		}
	}
	if bg := c.bgCode(a.BgColor, depth, bgExclude); bg != "" {
		codes = append(codes, bg)
	}

	if a.Bold {
		codes = append(codes, "1")
	}
	if a.Italic {
		codes = append(codes, "3")
	}
	if a.Underline {
		codes = append(codes, "4")
	}
	if a.Blink {
		codes = append(codes, "5")
	}
	if a.Reverse {
		codes = append(codes, "7")
	}
	if a.Hidden {
		codes = append(codes, "8")
	}
	if a.Strike {
		codes = append(codes, "9")
	}

	if len(codes) == 0 {
		return "\x1b[0m"
	}
	return "\x1b[0;" + strings.Join(codes, ";") + "m"
}

func (c *Cache) nearestName16(color string) (int, string) {
	r, g, b, ok := rgbOf(color)
	if !ok {
		return 0, ""
	}
	return c.c16.Get(r, g, b, "")
}

func (c *Cache) fgCode(color string, depth ColorDepth) string {
	return c.colorCode(color, depth, false, "")
}

func (c *Cache) bgCode(color string, depth ColorDepth, exclude string) string {
	return c.colorCode(color, depth, true, exclude)
}

func (c *Cache) colorCode(color string, depth ColorDepth, bg bool, exclude string) string {
	if color == "" || depth == Depth1Bit {
		return ""
	}

	r, g, b, ok := rgbOf(color)
	if !ok {
		return ""
	}

	switch depth {
	case Depth4Bit:
		code, _ := c.c16.Get(r, g, b, exclude)
		if bg {
			code += 10
		}
		return strconv.Itoa(code)
	case Depth8Bit:
		idx := c.c256.Get(r, g, b)
		if bg {
			return "48;5;" + strconv.Itoa(idx)
		}
		return "38;5;" + strconv.Itoa(idx)
	case Depth24Bit:
		if bg {
			return "48;2;" + strconv.Itoa(r) + ";" + strconv.Itoa(g) + ";" + strconv.Itoa(b)
		}
		return "38;2;" + strconv.Itoa(r) + ";" + strconv.Itoa(g) + ";" + strconv.Itoa(b)
	}
	return ""
}
