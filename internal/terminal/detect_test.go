package terminal

import (
	"os"
	"testing"
)

func TestIsInteractive(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })

	ttys := map[uintptr]bool{}
	isTerminal = func(fd int) bool { return ttys[uintptr(fd)] }

	if IsInteractive() {
		t.Fatalf("expected non-interactive without terminals")
	}
	ttys[os.Stdin.Fd()] = true
	if IsInteractive() {
		t.Fatalf("expected non-interactive when only stdin is a terminal")
	}
	ttys[os.Stderr.Fd()] = true
	if !IsInteractive() {
		t.Fatalf("expected interactive when stdin and stderr are terminals")
	}
}
