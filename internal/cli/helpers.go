package cli

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/alexander-akhmetov/attitude/internal/config"
)

// terminalInfo reports whether w is a terminal and its width.
func terminalInfo(w io.Writer) (isTTY bool, width int) {
	f, ok := w.(*os.File)
	if !ok {
		return false, 0
	}
	fd := int(f.Fd()) //nolint:gosec // file descriptors fit in int
	if !term.IsTerminal(fd) {
		return false, 0
	}
	width, _, _ = term.GetSize(fd)
	return true, width
}

// useColor resolves a color mode against the terminal and NO_COLOR.
func useColor(mode string, isTTY bool) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isTTY && os.Getenv("NO_COLOR") == ""
	}
}
