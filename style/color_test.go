package style

import "testing"

func TestNearest256(t *testing.T) {
	cases := []struct {
		r, g, b int
		want    int
	}{
		{255, 0, 0, 196},
		{255, 255, 255, 231},
	}
	for _, c := range cases {
		got := nearest256(c.r, c.g, c.b)
		if got != c.want {
			t.Errorf("nearest256(%d,%d,%d) = %d, want %d", c.r, c.g, c.b, got, c.want)
		}
	}
}

func TestNearest256TieBreakLowerIndex(t *testing.T) {
	idx := nearest256(128, 128, 128)
	// Confirm it lies in the addressable palette (indices 16-255).
	if idx < 16 || idx > 255 {
		t.Fatalf("nearest256(128,128,128) = %d out of range", idx)
	}

	// (13,13,13) is equally far from gray 232 (8,8,8) and gray 233
	// (18,18,18); the tie goes to the lower index.
	if got := nearest256(13, 13, 13); got != 232 {
		t.Errorf("nearest256(13,13,13) = %d, want 232 (tie broken to lower index)", got)
	}
}

func TestColor256CachePure(t *testing.T) {
	c := NewColor256Cache()
	a := c.Get(10, 20, 30)
	b := c.Get(10, 20, 30)
	if a != b {
		t.Errorf("cache not pure: %d != %d", a, b)
	}
}

func TestColor16ExcludesGrayWhenSaturated(t *testing.T) {
	// A highly saturated red should never resolve to black/white/gray/darkgray.
	_, name := nearest16(255, 0, 0, "")
	if name == "black" || name == "white" || name == "gray" || name == "darkgray" {
		t.Errorf("saturated red mapped to gray family color %q", name)
	}
}

func TestColor16ExcludeName(t *testing.T) {
	_, name := nearest16(0, 0, 0, "black")
	if name == "black" {
		t.Errorf("exclude_name=black was not honored")
	}
}

func TestEscapeCacheIsPure(t *testing.T) {
	cache := NewCache()
	attrs := Attrs{Color: "ff0000", Bold: true}
	a := cache.Escape(attrs, Depth24Bit)
	b := cache.Escape(attrs, Depth24Bit)
	if a != b {
		t.Errorf("escape cache not pure: %q != %q", a, b)
	}
}

func TestEscapeCacheDepths(t *testing.T) {
	cache := NewCache()
	attrs := Attrs{Color: "ff0000"}

	if got := cache.Escape(attrs, Depth1Bit); got != "\x1b[0m" {
		t.Errorf("1-bit depth should drop color, got %q", got)
	}
	if got := cache.Escape(attrs, Depth24Bit); got != "\x1b[0;38;2;255;0;0m" {
		t.Errorf("24-bit escape = %q", got)
	}
	if got := cache.Escape(attrs, Depth8Bit); got != "\x1b[0;38;5;196m" {
		t.Errorf("8-bit escape = %q", got)
	}
}
