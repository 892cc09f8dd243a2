//go:build darwin

package sllog

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// residentMemoryBytes returns the process max resident set size. Darwin
// reports Maxrss in bytes.
func residentMemoryBytes() int64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err == nil && ru.Maxrss > 0 {
		return int64(ru.Maxrss)
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return int64(ms.Sys)
}
