package sllog

import (
	"strconv"

	env "github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/smi11/sllog/ansi"
)

// envOptions mirrors the Options fields that make sense to configure from
// the process environment.
type envOptions struct {
	Level   string `env:"SLLOG_LEVEL"`
	Envvar  string `env:"SLLOG_ENVVAR"`
	Report  string `env:"SLLOG_REPORT"`
	Pad     string `env:"SLLOG_PAD"`
	Color   bool   `env:"SLLOG_COLOR"`
	NoColor string `env:"NO_COLOR"`
}

// OptionsFromEnv builds Options from SLLOG_* environment variables.
// SLLOG_LEVEL and SLLOG_REPORT take a numeric index or a level name,
// SLLOG_ENVVAR renames the variable consulted for unspecified levels,
// SLLOG_PAD sets the serializer indentation, and SLLOG_COLOR=true installs
// ansi.Colorize unless the NO_COLOR convention overrides it. Unset
// variables leave the corresponding option at its default.
func OptionsFromEnv() (Options, error) {
	var cfg envOptions
	if err := env.Parse(&cfg); err != nil {
		return Options{}, errors.Wrap(ErrConfiguration, err.Error())
	}
	opts := Options{
		Envvar: cfg.Envvar,
		Pad:    cfg.Pad,
	}
	if cfg.Level != "" {
		opts.Level = levelIdentifier(cfg.Level)
	}
	if cfg.Report != "" {
		opts.Report = levelIdentifier(cfg.Report)
	}
	if cfg.Color && cfg.NoColor == "" {
		opts.Colorize = ansi.Colorize
	}
	return opts, nil
}

// levelIdentifier turns an environment value into a Resolve identifier,
// preferring the numeric form.
func levelIdentifier(value string) any {
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return value
}
