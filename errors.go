package sllog

import "github.com/pkg/errors"

// Sentinel errors returned by Init, Resolve and SetLevel. They are only ever
// raised during configuration; once a logger is configured, emission never
// fails. Wrap context is attached with github.com/pkg/errors, so callers can
// test with errors.Is.
var (
	// ErrConfiguration reports a malformed level set or option value.
	ErrConfiguration = errors.New("sllog: invalid configuration")
	// ErrDuplicateLevelName reports two level specs sharing a name.
	ErrDuplicateLevelName = errors.New("sllog: duplicate level name")
	// ErrUnknownLevel reports a level name that matches no registered level.
	ErrUnknownLevel = errors.New("sllog: unknown level")
)
