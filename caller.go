package sllog

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

const unknownFunction = "unknown"

// callerInfo captures the log call site once per emission, at a fixed stack
// depth from the public entry points. It is only captured when the level's
// compiled templates contain %S or %f.
type callerInfo struct {
	file string
	line int
	fn   string
}

func captureCaller(skip int) callerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return callerInfo{file: unknownFunction}
	}
	return callerInfo{file: file, line: line, fn: functionNameForPC(pc)}
}

// site renders the call site as "<file-without-extension>:<line>".
func (c *callerInfo) site() string {
	if c == nil || c.file == "" || c.file == unknownFunction {
		return unknownFunction + ":0"
	}
	name := strings.TrimSuffix(filepath.Base(c.file), ".go")
	return name + ":" + strconv.Itoa(c.line)
}

// function renders the caller function name with a leading space, or the
// empty string when the caller is anonymous or unknown.
func (c *callerInfo) function() string {
	if c == nil || anonymousFunction(c.fn) {
		return ""
	}
	return " " + c.fn
}

func functionNameForPC(pc uintptr) string {
	if pc == 0 {
		return unknownFunction
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return unknownFunction
	}
	return trimFunctionName(fn.Name())
}

func trimFunctionName(name string) string {
	if name == "" {
		return unknownFunction
	}
	// Remove package path and package prefix.
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return unknownFunction
	}
	return name
}

// anonymousFunction reports whether a trimmed function name denotes a
// function literal ("func1", "func2.1", ...) or an unknown frame.
func anonymousFunction(name string) bool {
	if name == "" || name == unknownFunction {
		return true
	}
	if !strings.HasPrefix(name, "func") {
		return false
	}
	rest := name[len("func"):]
	if rest == "" {
		return false
	}
	for i := 0; i < len(rest); i++ {
		if (rest[i] < '0' || rest[i] > '9') && rest[i] != '.' {
			return false
		}
	}
	return true
}
