package sllog

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

func (l *Logger) buildLevels(specs []LevelSpec) ([]level, error) {
	if len(specs) == 0 {
		return nil, errors.Wrap(ErrConfiguration, "no levels")
	}
	levels := make([]level, 0, len(specs))
	names := make(map[string]bool, len(specs))
	for i, spec := range specs {
		if spec.Name == "" {
			return nil, errors.Wrapf(ErrConfiguration, "level %d has no name", i+1)
		}
		if names[spec.Name] {
			return nil, errors.Wrapf(ErrDuplicateLevelName, "%q", spec.Name)
		}
		names[spec.Name] = true
		sink := spec.Sink
		if sink == nil {
			sink = os.Stderr
		}
		levels = append(levels, level{
			name:   spec.Name,
			prefix: l.compile(spec.Prefix),
			suffix: l.compile(spec.Suffix),
			sink:   sink,
		})
	}
	return levels, nil
}

// Resolve maps a level identifier to its 1-based index. Numeric identifiers
// are clamped into [0, N] and never fail; names must match a registered
// level or fail with ErrUnknownLevel; nil consults the configured
// environment variable, where an unset or invalid value resolves to 0
// (no output). Any other identifier shape is ErrConfiguration.
func (l *Logger) Resolve(identifier any) (int, error) {
	switch v := identifier.(type) {
	case nil:
		return l.resolveEnv(), nil
	case int:
		return clampLevel(v, len(l.levels)), nil
	case string:
		if idx, ok := l.indexByName(v); ok {
			return idx, nil
		}
		return 0, errors.Wrapf(ErrUnknownLevel, "%q", v)
	default:
		return 0, errors.Wrapf(ErrConfiguration, "level identifier %T", identifier)
	}
}

// resolveEnv reads the configured environment variable and interprets the
// value as an integer in 1..N or a registered name. Anything else counts as
// absent and resolves to 0.
func (l *Logger) resolveEnv() int {
	value, ok := os.LookupEnv(l.envvar)
	if !ok {
		return 0
	}
	if n, err := strconv.Atoi(value); err == nil {
		if n >= 1 && n <= len(l.levels) {
			return n
		}
		return 0
	}
	if idx, ok := l.indexByName(value); ok {
		return idx
	}
	return 0
}

func (l *Logger) indexByName(name string) (int, bool) {
	for i := range l.levels {
		if l.levels[i].name == name {
			return i + 1, true
		}
	}
	return 0, false
}

func clampLevel(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}
	return v
}

// SetLevel resolves identifier and stores it as the emission threshold.
func (l *Logger) SetLevel(identifier any) error {
	threshold, err := l.Resolve(identifier)
	if err != nil {
		return err
	}
	l.threshold = threshold
	l.reportf("threshold %s", l.describeThreshold())
	return nil
}

// Threshold returns the current threshold index; 0 means no output.
func (l *Logger) Threshold() int {
	return l.threshold
}

func (l *Logger) shouldEmit(levelIndex int) bool {
	return 0 < levelIndex && levelIndex <= l.threshold
}

// Enabled reports whether a message at identifier would currently be
// emitted. Unresolvable identifiers are simply not enabled.
func (l *Logger) Enabled(identifier any) bool {
	idx, err := l.Resolve(identifier)
	if err != nil {
		return false
	}
	return l.shouldEmit(idx)
}

func (l *Logger) levelName(levelIndex int) string {
	if levelIndex < 1 || levelIndex > len(l.levels) {
		return ""
	}
	return l.levels[levelIndex-1].name
}
