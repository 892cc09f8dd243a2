//go:build !unix && !windows

package istty

func isTerminal(int) bool {
	return false
}
