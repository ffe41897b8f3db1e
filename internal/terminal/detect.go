// Package terminal reports whether the settings editor can prompt.
package terminal

import (
	"os"

	"golang.org/x/term"
)

var isTerminal = term.IsTerminal

// IsInteractive reports whether stdin and stderr are terminals. Prompts are
// drawn on stderr so stdout stays free for exported data.
func IsInteractive() bool {
	return fdIsTerminal(os.Stdin) && fdIsTerminal(os.Stderr)
}

func fdIsTerminal(f *os.File) bool {
	return f != nil && isTerminal(int(f.Fd()))
}
