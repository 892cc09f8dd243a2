//go:build !linux && !freebsd && !netbsd && !openbsd && !dragonfly && !darwin

package sllog

import "runtime"

// residentMemoryBytes approximates resident memory with the runtime's
// reserved memory on platforms without a usable getrusage.
func residentMemoryBytes() int64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return int64(ms.Sys)
}
