//go:build windows

package istty

import "golang.org/x/sys/windows"

func isTerminal(fd int) bool {
	var mode uint32
	return windows.GetConsoleMode(windows.Handle(fd), &mode) == nil
}
