// Package sllog is a leveled line logger whose output format is declared in
// small templates instead of code. Each level carries a prefix and a suffix
// template; templates are compiled once into a segment list and cached, so
// the per-emission cost is a walk over precomputed literals and tag
// evaluators.
//
// # Design overview
//
//   - Levels are an ordered set declared at Init; their 1-based declaration
//     order is their rank, and a threshold index gates emission: a message
//     at index i is written iff 0 < i <= threshold. Index 0 means silence.
//   - Templates mix literal text with tags such as %T (wall clock), %e
//     (seconds since start), %L (level name), %S (call site) and %n (line
//     terminator). Tags accept printf-style modifiers: "%.3e" renders
//     elapsed seconds with three decimals, "%-5L" left-justifies the level
//     name. Unrecognized tag letters are dropped from the output.
//   - The time source is pluggable. Sources with only whole-second
//     resolution are detected per reading, and elapsed tags then substitute
//     the process monotonic clock for sub-second precision.
//   - Dump serializes arbitrary values line by line through the same gate,
//     assigning ordinals to composites so shared references and cycles
//     render as <table N> back-references instead of recursing forever.
//
// # Usage
//
//	logger, err := sllog.New([]sllog.LevelSpec{
//		{Name: "err", Prefix: "%F %T %-4L ", Suffix: "%n", Sink: os.Stderr},
//		{Name: "info", Prefix: "%F %T %-4L ", Suffix: "%n", Sink: os.Stdout},
//		{Name: "dbg", Prefix: "%F %3T %-4L %S", Suffix: " (%.2e)%n", Sink: os.Stdout},
//	}, sllog.Options{Level: "info"})
//	if err != nil {
//		// configuration errors surface here; emission never fails
//	}
//	defer logger.Close()
//
//	logger.Log("info", "listening on ", addr)
//	logger.Logf("dbg", "cache warm in %dms", ms)
//	logger.Dump("dbg", "config", cfg)
//
// The threshold can also come from the environment: Options.Level nil reads
// the variable named by Options.Envvar (default SLLOG_LEVEL), accepting a
// level index or name.
//
// # Integration notes
//
//   - The ansi subpackage translates %{red}-style markup in templates into
//     escape sequences; install ansi.Colorize via Options.Colorize, ideally
//     only when IsTerminal reports the sink is a TTY.
//   - Wrap file sinks with Own so Close releases them; os.Stdout and
//     os.Stderr are never closed.
//   - The logger holds no locks. Hosts with concurrent writers must
//     serialize Log, Dump and Init calls themselves.
package sllog
