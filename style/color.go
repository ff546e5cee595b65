package style

import "strconv"

// rgbOf resolves a semantic color string (a hex triplet like "ff5733" or an
// ANSI color name like "red") to its RGB components. ok is false for the
// empty string or an unrecognized name.
func rgbOf(s string) (r, g, b int, ok bool) {
	if s == "" {
		return 0, 0, 0, false
	}
	if r, g, b, ok = parseHex(s); ok {
		return r, g, b, true
	}
	for _, c := range ansiNames {
		if c.name == s {
			return c.r, c.g, c.b, true
		}
	}
	return 0, 0, 0, false
}

func parseHex(s string) (r, g, b int, ok bool) {
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	rv, err1 := strconv.ParseInt(s[0:2], 16, 32)
	gv, err2 := strconv.ParseInt(s[2:4], 16, 32)
	bv, err3 := strconv.ParseInt(s[4:6], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return int(rv), int(gv), int(bv), true
}
