package output

import (
	"os"

	"golang.org/x/term"
)

// New selects a Writer variant for stdout per spec §4.B: dummy when stdout
// is /dev/null, plain-text when stdout is not a TTY (unless alwaysPreferTTY
// is set and stderr is a TTY), otherwise a full VT100 writer.
func New(alwaysPreferTTY bool) Writer {
	if isDevNull(os.Stdout) {
		return NewDummyWriter()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		if alwaysPreferTTY && term.IsTerminal(int(os.Stderr.Fd())) {
			return NewVT100Writer(os.Stderr, DetectColorDepth())
		}
		return NewPlainWriter(os.Stdout)
	}

	return NewVT100Writer(os.Stdout, DetectColorDepth())
}

func isDevNull(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	devNullInfo, err := os.Stat(os.DevNull)
	if err != nil {
		return false
	}
	return os.SameFile(info, devNullInfo)
}
