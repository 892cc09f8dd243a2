// Package ansi turns color markup inside log templates into ANSI escape
// sequences. Markup tokens have the form %{name}, e.g. "%{red}%L%{reset}",
// and are replaced once, before the template is compiled, so rendering never
// pays for the substitution. The exported constants can also be embedded in
// templates directly.
package ansi

// Reset clears all terminal styling; the remaining constants are the common
// ANSI color and style sequences.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	Gray          = "\x1b[37m"
	BrightRed     = "\x1b[1;31m"
	BrightGreen   = "\x1b[1;32m"
	BrightYellow  = "\x1b[1;33m"
	BrightBlue    = "\x1b[1;34m"
	BrightMagenta = "\x1b[1;35m"
	BrightCyan    = "\x1b[1;36m"
	BrightWhite   = "\x1b[1;37m"
)

// Palette maps markup names to escape sequences. Colorize uses Default;
// custom palettes colorize through their own Colorize method.
type Palette map[string]string

// Default is the palette used by the package-level Colorize.
var Default = Palette{
	"reset":          Reset,
	"bold":           Bold,
	"faint":          Faint,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"gray":           Gray,
	"bright_red":     BrightRed,
	"bright_green":   BrightGreen,
	"bright_yellow":  BrightYellow,
	"bright_blue":    BrightBlue,
	"bright_magenta": BrightMagenta,
	"bright_cyan":    BrightCyan,
	"bright_white":   BrightWhite,
}

// Mono maps every markup name to nothing, for stripping markup from
// templates headed to non-terminal sinks.
var Mono = Palette{}
