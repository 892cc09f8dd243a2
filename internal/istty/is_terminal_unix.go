//go:build unix

package istty

import "golang.org/x/term"

func isTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
