// Package istty answers a single question: does a file descriptor refer to
// a terminal. It exists so the root package can gate color markup on real
// TTYs without dragging terminal concerns into the logger itself.
package istty

// IsTerminal reports whether fd refers to a terminal device.
func IsTerminal(fd int) bool {
	return isTerminal(fd)
}
