package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ResolveColorMode turns the color setting into the tty flag handed to
// NewPrinter. "never" and "always" override detection outright; any
// other value falls back to the detected terminal, with NO_COLOR in
// the environment winning over it.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return isTTY
	}
}

// IsTTY reports whether the writer is an os.File attached to a
// terminal. Buffers and pipes report false.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
