package sllog

import (
	"fmt"
	"io"
)

// DefaultEnvvar is the environment variable consulted when the threshold is
// left unspecified.
const DefaultEnvvar = "SLLOG_LEVEL"

// DefaultPad is the serializer's indentation unit.
const DefaultPad = "  "

// LevelSpec declares one severity: its unique name, the prefix and suffix
// templates framing every emitted line, and the sink the line is written to.
// A nil Sink falls back to os.Stderr.
type LevelSpec struct {
	Name   string
	Prefix string
	Suffix string
	Sink   io.Writer
}

type level struct {
	name   string
	prefix *template
	suffix *template
	sink   io.Writer
}

// Options configures a Logger beyond its level set. Zero values for Envvar,
// Report and Pad preserve the previous (or default) setting across
// reconfiguration; Level nil resolves the threshold from the environment and
// TimeSource nil restores the default wall clock.
type Options struct {
	// Level selects the initial threshold: a numeric index, a registered
	// level name, or nil to consult Envvar.
	Level any

	// Envvar names the environment variable consulted when Level is nil.
	// Defaults to DefaultEnvvar.
	Envvar string

	// Report selects the level used for the logger's own status messages.
	// Unset keeps reporting disabled.
	Report any

	// Pad is the indentation unit used by Dump. Defaults to DefaultPad.
	Pad string

	// TimeSource overrides the wall clock for all date, time and elapsed
	// tags. Installing a source (or leaving it nil for the default) resets
	// the start and previous-emit reference times.
	TimeSource TimeSource

	// Colorize transforms raw template text before compilation, turning
	// color markup into ANSI escapes. It runs once per template, not per
	// render. See ansi.Colorize.
	Colorize func(string) string
}

// Logger is a leveled line logger whose output format is driven by per-level
// prefix and suffix templates. It holds no internal locks: compile, resolve,
// emit and serialize are expected to run on one logical thread of control,
// and concurrent hosts must serialize access themselves.
type Logger struct {
	levels    []level
	threshold int
	envvar    string
	report    int
	pad       string
	colorize  func(string) string
	clock     *clock
	templates map[string]*template
}

// New constructs a Logger from an ordered level set and options.
func New(specs []LevelSpec, opts Options) (*Logger, error) {
	l := &Logger{}
	if err := l.Init(specs, opts); err != nil {
		return nil, err
	}
	return l, nil
}

// Init replaces the entire level set atomically and applies opts. On error
// the logger keeps its previous configuration, time source included. Option
// defaults set by an earlier Init survive reconfiguration unless overridden.
func (l *Logger) Init(specs []LevelSpec, opts Options) error {
	prev := *l
	if l.envvar == "" {
		l.envvar = DefaultEnvvar
	}
	if l.pad == "" {
		l.pad = DefaultPad
	}
	if opts.Envvar != "" {
		l.envvar = opts.Envvar
	}
	if opts.Pad != "" {
		l.pad = opts.Pad
	}
	if opts.Colorize != nil {
		// A new transform invalidates previously compiled templates.
		l.colorize = opts.Colorize
		l.templates = nil
	}
	if l.templates == nil {
		l.templates = make(map[string]*template)
	}

	levels, err := l.buildLevels(specs)
	if err != nil {
		*l = prev
		return err
	}
	l.levels = levels

	threshold, err := l.Resolve(opts.Level)
	if err != nil {
		*l = prev
		return err
	}
	l.threshold = threshold

	if opts.Report != nil {
		report, err := l.Resolve(opts.Report)
		if err != nil {
			*l = prev
			return err
		}
		l.report = report
	} else if l.report > len(l.levels) {
		l.report = 0
	}

	// Installed only now: a failed Init keeps the previous clock and its
	// start and previous-emit references.
	l.clock = newClock(opts.TimeSource)

	l.reportf("%d levels registered, threshold %s", len(l.levels), l.describeThreshold())
	return nil
}

// Log emits the arguments, rendered as by fmt.Sprint, at the given level.
// The identifier may be a numeric index, a registered name, or nil for the
// environment-derived level. Emission never fails: an unresolvable level or
// one above the threshold produces no output.
func (l *Logger) Log(level any, args ...any) {
	idx, err := l.Resolve(level)
	if err != nil {
		return
	}
	l.output(idx, fmt.Sprint(args...))
}

// Logf emits a printf-formatted message at the given level.
func (l *Logger) Logf(level any, format string, args ...any) {
	idx, err := l.Resolve(level)
	if err != nil {
		return
	}
	l.output(idx, fmt.Sprintf(format, args...))
}

// output writes one framed line. It must be called directly from a public
// entry point so that %S and %f resolve the host's frame.
func (l *Logger) output(idx int, msg string) {
	if !l.shouldEmit(idx) {
		return
	}
	lv := &l.levels[idx-1]
	var caller *callerInfo
	if lv.prefix.needsCaller || lv.suffix.needsCaller {
		info := captureCaller(3)
		caller = &info
	}
	prefix := lv.prefix.render(l, idx, caller)
	suffix := lv.suffix.render(l, idx, caller)
	buf := make([]byte, 0, len(prefix)+len(msg)+len(suffix))
	buf = append(buf, prefix...)
	buf = append(buf, msg...)
	buf = append(buf, suffix...)
	_, _ = lv.sink.Write(buf)
	l.clock.markEmit()
}

// reportf emits the logger's own status messages at the report level.
func (l *Logger) reportf(format string, args ...any) {
	if l.report == 0 {
		return
	}
	l.output(l.report, fmt.Sprintf(format, args...))
}

func (l *Logger) describeThreshold() string {
	if l.threshold == 0 {
		return "off"
	}
	return l.levels[l.threshold-1].name
}

// Close releases sinks owned by the logger. Sinks wrapped with Own are
// closed once; every other sink, os.Stdout and os.Stderr included, is left
// open. Only owned sinks are deduplicated: comparing arbitrary writers would
// panic on uncomparable dynamic types.
func (l *Logger) Close() error {
	var firstErr error
	seen := make(map[ownedCloser]bool, len(l.levels))
	for i := range l.levels {
		c, ok := l.levels[i].sink.(ownedCloser)
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		if err := c.ownedClose(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
