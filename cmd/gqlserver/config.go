package main

import (
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"golang.org/x/xerrors"

	"github.com/Protocol-Lattice/gqlparser/handler"
	"github.com/Protocol-Lattice/gqlparser/parser"
)

// config holds the server settings. Values come from the defaults, then
// the optional TOML file, then command line flags.
type config struct {
	Addr                               string        `toml:"addr"`
	ShutdownTimeout                    time.Duration `toml:"shutdown_timeout"`
	MaxBodyBytes                       int64         `toml:"max_body_bytes"`
	MaxDepth                           int           `toml:"max_depth"`
	NoLocation                         bool          `toml:"no_location"`
	AllowLegacySDLEmptyFields          bool          `toml:"allow_legacy_sdl_empty_fields"`
	AllowLegacySDLImplementsInterfaces bool          `toml:"allow_legacy_sdl_implements_interfaces"`
	ExperimentalFragmentVariables      bool          `toml:"experimental_fragment_variables"`
	Dev                                bool          `toml:"dev"`
}

func defaultConfig() config {
	return config{
		Addr:            ":8080",
		ShutdownTimeout: 5 * time.Second,
		MaxBodyBytes:    handler.DefaultMaxBodyBytes,
	}
}

// loadConfig reads the config file named by --config, if any, and applies
// the remaining flags on top of it.
func loadConfig(args []string, stderr io.Writer) (config, error) {
	cfg := defaultConfig()

	pre := pflag.NewFlagSet("gqlserver", pflag.ContinueOnError)
	pre.ParseErrorsWhitelist.UnknownFlags = true
	pre.SetOutput(io.Discard)
	pre.Usage = func() {}
	path := pre.String("config", "", "")
	_ = pre.Parse(args)
	if *path != "" {
		if _, err := toml.DecodeFile(*path, &cfg); err != nil {
			return cfg, xerrors.Errorf("config %s: %w", *path, err)
		}
	}

	flags := pflag.NewFlagSet("gqlserver", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.String("config", "", "Path to a TOML config file.")
	flags.StringVar(&cfg.Addr, "addr", cfg.Addr, "Address to listen on.")
	flags.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Time allowed for in-flight requests on shutdown.")
	flags.Int64Var(&cfg.MaxBodyBytes, "max-body-bytes", cfg.MaxBodyBytes, "Largest request body accepted.")
	flags.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "Maximum nesting depth, 0 for the default, negative for no limit.")
	flags.BoolVar(&cfg.NoLocation, "no-location", cfg.NoLocation, "Omit source locations from every tree.")
	flags.BoolVar(&cfg.AllowLegacySDLEmptyFields, "legacy-empty-fields", cfg.AllowLegacySDLEmptyFields, "Accept empty field sets such as type T {}.")
	flags.BoolVar(&cfg.AllowLegacySDLImplementsInterfaces, "legacy-implements", cfg.AllowLegacySDLImplementsInterfaces, "Accept interfaces separated by spaces instead of &.")
	flags.BoolVar(&cfg.ExperimentalFragmentVariables, "fragment-variables", cfg.ExperimentalFragmentVariables, "Accept variable definitions on fragments.")
	flags.BoolVar(&cfg.Dev, "dev", cfg.Dev, "Human readable debug logging.")
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c config) handlerOptions() handler.Options {
	return handler.Options{
		MaxBodyBytes: c.MaxBodyBytes,
		Parser: parser.Options{
			NoLocation:                         c.NoLocation,
			MaxDepth:                           c.MaxDepth,
			AllowLegacySDLEmptyFields:          c.AllowLegacySDLEmptyFields,
			AllowLegacySDLImplementsInterfaces: c.AllowLegacySDLImplementsInterfaces,
			ExperimentalFragmentVariables:      c.ExperimentalFragmentVariables,
		},
	}
}
