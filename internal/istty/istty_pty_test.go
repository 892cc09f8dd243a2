//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package istty

import (
	"testing"

	"github.com/creack/pty"
)

func TestIsTerminalPTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty open: %v", err)
	}
	t.Cleanup(func() {
		_ = ptmx.Close()
		_ = tty.Close()
	})

	if !IsTerminal(int(tty.Fd())) {
		t.Fatalf("expected pty slave to be a terminal")
	}
	if !IsTerminal(int(ptmx.Fd())) {
		t.Fatalf("expected pty master to be a terminal")
	}
}
