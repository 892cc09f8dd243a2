package sllog

import (
	"io"

	"github.com/smi11/sllog/internal/istty"
)

type fdWriter interface {
	Fd() uintptr
}

// IsTerminal reports whether w writes to a terminal. Hosts typically use it
// to decide whether to install the ansi.Colorize transform for a sink.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return istty.IsTerminal(int(f.Fd()))
}
