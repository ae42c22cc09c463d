package display

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// isTTY reports whether w is an interactive terminal. Buffers and
// redirected files get plain output.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
