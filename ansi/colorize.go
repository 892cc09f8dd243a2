package ansi

import "regexp"

var (
	markupRE = regexp.MustCompile(`%\{([A-Za-z0-9_]*)\}`)
	escapeRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

// Colorize replaces %{name} markup in template with escape sequences from
// the Default palette. An empty name (%{}) resets styling; unknown names
// are removed. It matches the signature of the logger's Colorize option.
func Colorize(template string) string {
	return Default.Colorize(template)
}

// Colorize replaces %{name} markup using p. Names missing from p are
// removed, so any palette (including Mono) yields markup-free output.
func (p Palette) Colorize(template string) string {
	return markupRE.ReplaceAllStringFunc(template, func(token string) string {
		name := token[2 : len(token)-1]
		if name == "" {
			name = "reset"
		}
		return p[name]
	})
}

// Strip removes markup tokens and ANSI escape sequences from s. Useful for
// asserting on rendered output in tests and for plain-text sinks.
func Strip(s string) string {
	return escapeRE.ReplaceAllString(markupRE.ReplaceAllString(s, ""), "")
}
