package output

import (
	"os"
	"strconv"
	"strings"

	"github.com/willibrandon/stroke/style"
)

// DetectColorDepth implements the color-depth detection rules of spec §4.B.
func DetectColorDepth() style.ColorDepth {
	if os.Getenv("NO_COLOR") != "" {
		return style.Depth1Bit
	}

	if v := os.Getenv("STROKE_COLOR_DEPTH"); v != "" {
		switch v {
		case "DEPTH_1_BIT":
			return style.Depth1Bit
		case "DEPTH_4_BIT":
			return style.Depth4Bit
		case "DEPTH_8_BIT":
			return style.Depth8Bit
		case "DEPTH_24_BIT":
			return style.Depth24Bit
		default:
			panic("output: invalid STROKE_COLOR_DEPTH value " + strconv.Quote(v))
		}
	}

	term := os.Getenv("TERM")
	switch {
	case strings.HasPrefix(term, "dumb"):
		return style.Depth1Bit
	case term == "linux" || term == "eterm-color":
		return style.Depth4Bit
	default:
		return style.Depth8Bit
	}
}
