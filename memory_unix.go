//go:build linux || freebsd || netbsd || openbsd || dragonfly

package sllog

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// residentMemoryBytes returns the process max resident set size. Getrusage
// reports Maxrss in kilobytes on these platforms. When the syscall is
// unavailable, the runtime's reserved memory stands in.
func residentMemoryBytes() int64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err == nil && ru.Maxrss > 0 {
		return int64(ru.Maxrss) * 1024
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return int64(ms.Sys)
}
