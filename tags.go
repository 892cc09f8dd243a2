package sllog

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// Tag evaluators are pure functions of the logger state, the emitting level
// and the captured modifier string. Each produces the raw text a tag segment
// contributes to a rendered prefix or suffix.
//
//	%c  locale date and time            %l  numeric level index
//	%F  YYYY-MM-DD                      %L  level name
//	%r  12-hour clock                   %S  call site as file:line
//	%T  24-hour time                    %f  caller function name
//	%x  locale date                     %n  platform line terminator
//	%X  locale time                     %k  resident memory, kilobytes
//	%e  seconds since start             %b  resident memory, bytes
//	%E  HH:MM:SS since start
//	%p  seconds since previous emit
//	%P  HH:MM:SS since previous emit
type tagFunc func(l *Logger, levelIndex int, mod string, caller *callerInfo) string

var tagEvaluators = map[byte]tagFunc{
	'c': timeTag(time.ANSIC, true),
	'F': timeTag(time.DateOnly, false),
	'r': timeTag("03:04:05 PM", true),
	'T': timeTag(time.TimeOnly, true),
	'x': timeTag("01/02/06", false),
	'X': timeTag(time.TimeOnly, true),
	'e': func(l *Logger, _ int, mod string, _ *callerInfo) string {
		return formatFloatTag(l.clock.sinceStart(), mod)
	},
	'E': func(l *Logger, _ int, mod string, _ *callerInfo) string {
		return formatHMS(l.clock.sinceStart(), parsePrecision(mod))
	},
	'p': func(l *Logger, _ int, mod string, _ *callerInfo) string {
		return formatFloatTag(l.clock.sincePrev(), mod)
	},
	'P': func(l *Logger, _ int, mod string, _ *callerInfo) string {
		return formatHMS(l.clock.sincePrev(), parsePrecision(mod))
	},
	'l': func(_ *Logger, levelIndex int, _ string, _ *callerInfo) string {
		return strconv.Itoa(levelIndex)
	},
	'L': func(l *Logger, levelIndex int, mod string, _ *callerInfo) string {
		return fmt.Sprintf("%"+cleanStringMod(mod)+"s", l.levelName(levelIndex))
	},
	'S': func(_ *Logger, _ int, _ string, caller *callerInfo) string {
		return caller.site()
	},
	'f': func(_ *Logger, _ int, _ string, caller *callerInfo) string {
		return caller.function()
	},
	'n': func(_ *Logger, _ int, _ string, _ *callerInfo) string {
		return lineEnding
	},
	'k': func(_ *Logger, _ int, mod string, _ *callerInfo) string {
		return formatFloatTag(float64(residentMemoryBytes())/1024, mod)
	},
	'b': func(_ *Logger, _ int, mod string, _ *callerInfo) string {
		return fmt.Sprintf("%"+cleanIntMod(mod)+"d", residentMemoryBytes())
	},
}

func timeTag(layout string, subsecond bool) tagFunc {
	return func(l *Logger, _ int, mod string, _ *callerInfo) string {
		prec := 0
		if subsecond {
			prec = parsePrecision(mod)
		}
		return formatClockTag(l.clock.now(), layout, prec)
	}
}

// formatClockTag renders now through layout, splicing a fractional-seconds
// suffix after the seconds field when prec > 0. Rounding the fraction up to
// 1.0 carries into the integer seconds before the date/time is formatted, so
// "12:00:00.9996" at three digits renders as "12:00:01.000".
func formatClockTag(now float64, layout string, prec int) string {
	secs, frac := splitSeconds(now, prec)
	ts := time.Unix(secs, 0).Format(layout)
	if frac == "" {
		return ts
	}
	return spliceAfterSeconds(ts, frac)
}

// splitSeconds splits a float-seconds reading into whole seconds and a
// rendered ".ddd" fraction of prec digits, applying the rounding carry.
func splitSeconds(now float64, prec int) (int64, string) {
	secs := int64(math.Floor(now))
	if prec <= 0 {
		return secs, ""
	}
	frac := strconv.FormatFloat(now-math.Floor(now), 'f', prec, 64)
	if frac[0] == '1' {
		secs++
	}
	return secs, frac[1:]
}

var secondsFieldRE = regexp.MustCompile(`[0-9]{2}:[0-9]{2}:[0-9]{2}`)

func spliceAfterSeconds(ts, frac string) string {
	loc := secondsFieldRE.FindStringIndex(ts)
	if loc == nil {
		return ts + frac
	}
	return ts[:loc[1]] + frac + ts[loc[1]:]
}

// formatHMS renders elapsed seconds as HH:MM:SS with an optional fraction of
// prec digits, using the same rounding carry as the clock tags.
func formatHMS(elapsed float64, prec int) string {
	secs, frac := splitSeconds(elapsed, prec)
	buf := make([]byte, 0, 12+len(frac))
	buf = appendTwoDigits(buf, int(secs/3600))
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, int(secs%3600/60))
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, int(secs%60))
	buf = append(buf, frac...)
	return string(buf)
}

func appendTwoDigits(buf []byte, value int) []byte {
	if value > 99 {
		return strconv.AppendInt(buf, int64(value), 10)
	}
	buf = append(buf, byte('0'+value/10))
	buf = append(buf, byte('0'+value%10))
	return buf
}

func formatFloatTag(v float64, mod string) string {
	return fmt.Sprintf("%"+cleanNumericMod(mod)+"f", v)
}

// parsePrecision reads a digits-only modifier; anything else falls back to 0.
func parsePrecision(mod string) int {
	if mod == "" {
		return 0
	}
	prec := 0
	for i := 0; i < len(mod); i++ {
		if mod[i] < '0' || mod[i] > '9' {
			return 0
		}
		prec = prec*10 + int(mod[i]-'0')
	}
	if prec > 9 {
		prec = 9
	}
	return prec
}

// cleanNumericMod validates a printf-style float modifier (flags, width,
// precision). Malformed modifiers fall back to default formatting.
func cleanNumericMod(mod string) string {
	i := 0
	for i < len(mod) && (mod[i] == '+' || mod[i] == '#' || mod[i] == '-') {
		i++
	}
	for i < len(mod) && mod[i] >= '0' && mod[i] <= '9' {
		i++
	}
	if i < len(mod) && mod[i] == '.' {
		i++
		for i < len(mod) && mod[i] >= '0' && mod[i] <= '9' {
			i++
		}
	}
	if i != len(mod) {
		return ""
	}
	return mod
}

// cleanIntMod is cleanNumericMod without a precision part.
func cleanIntMod(mod string) string {
	i := 0
	for i < len(mod) && (mod[i] == '+' || mod[i] == '#' || mod[i] == '-') {
		i++
	}
	for i < len(mod) && mod[i] >= '0' && mod[i] <= '9' {
		i++
	}
	if i != len(mod) {
		return ""
	}
	return mod
}

// cleanStringMod keeps only the left-justify flag, width and precision.
func cleanStringMod(mod string) string {
	cleaned := cleanNumericMod(mod)
	out := make([]byte, 0, len(cleaned))
	for i := 0; i < len(cleaned); i++ {
		if cleaned[i] == '+' || cleaned[i] == '#' {
			continue
		}
		out = append(out, cleaned[i])
	}
	return string(out)
}
