//go:build !windows

package sllog

// lineEnding is the platform line terminator emitted by the %n tag.
const lineEnding = "\n"
