package framelog

import (
	"io"

	"golang.org/x/term"
)

type fdWriter interface {
	Fd() uintptr
}

// isTerminal reports whether w is backed by a TTY. Writers without a file
// descriptor (buffers, pipes through io.Writer wrappers) are never terminals,
// which is what disables color for captured output.
func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
