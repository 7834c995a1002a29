// Package flags defines the command line flags shared by the numerics commands.
package flags

import (
	"github.com/urfave/cli/v2"
)

var (
	// VerbosityFlag defines the logrus configuration.
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity (trace, debug, info=default, warn, error, fatal, panic)",
		Value: "info",
	}
	// LogFormat specifies the log output format.
	LogFormat = NewEnumFlag("log-format", "Specify log formatting. Supports: text, json, fluentd.", "text", "text", "json", "fluentd")
	// LogFileName specifies the log output file name.
	LogFileName = &cli.StringFlag{
		Name:  "log-file",
		Usage: "Specify log file name, relative or absolute",
	}
	// ConfigFileFlag specifies the filepath to load flag values.
	ConfigFileFlag = &cli.StringFlag{
		Name:  "config-file",
		Usage: "The filepath to a yaml file with flag values",
	}
	// ParamsFileFlag loads numeric parameters from a yaml file.
	ParamsFileFlag = &cli.StringFlag{
		Name:  "params-file",
		Usage: "The filepath to a yaml file overriding the default numeric parameters (MAX_INPUT, SQRT_EPSILON, ...)",
	}
	// MinimalConfigFlag switches to the small parameter set used in tests and local runs.
	MinimalConfigFlag = &cli.BoolFlag{
		Name:  "minimal-config",
		Usage: "Use minimal config with small caches and short session lifetimes",
	}
	// HTTPHostFlag defines the host on which the API server listens.
	HTTPHostFlag = &cli.StringFlag{
		Name:  "http-host",
		Usage: "Host on which the HTTP API server listens",
		Value: "127.0.0.1",
	}
	// HTTPPortFlag defines the port on which the API server listens.
	HTTPPortFlag = &cli.IntFlag{
		Name:  "http-port",
		Usage: "Port on which the HTTP API server listens",
		Value: 3500,
	}
	// MonitoringPortFlag defines the http port used to serve prometheus metrics.
	MonitoringPortFlag = &cli.IntFlag{
		Name:  "monitoring-port",
		Usage: "Port used to listening and respond metrics for prometheus.",
		Value: 8080,
	}
	// DisableMonitoringFlag disables the monitoring service.
	DisableMonitoringFlag = &cli.BoolFlag{
		Name:  "disable-monitoring",
		Usage: "Disable monitoring service.",
	}
	// AllowedOriginsFlag sets the CORS allowed origins of the API server.
	AllowedOriginsFlag = &cli.StringSliceFlag{
		Name:  "allowed-origins",
		Usage: "Comma separated list of origins allowed to call the HTTP API",
		Value: cli.NewStringSlice("http://localhost:4200"),
	}
	// WatchParamsFlag reloads the params file whenever it changes on disk.
	WatchParamsFlag = &cli.BoolFlag{
		Name:  "watch-params",
		Usage: "Reload --params-file when it changes on disk",
	}

	// FromFlag is the first input of a sweep.
	FromFlag = &cli.IntFlag{
		Name:  "from",
		Usage: "First input checked by the sweep",
		Value: 0,
	}
	// ToFlag is the last input of a sweep. When unset the sweep runs up to MAX_INPUT.
	ToFlag = &cli.IntFlag{
		Name:  "to",
		Usage: "Last input checked by the sweep, defaults to MAX_INPUT",
	}
	// OperationsFlag selects which routines a sweep checks.
	OperationsFlag = &cli.StringFlag{
		Name:  "ops",
		Usage: "Comma separated routines to sweep: sqrt, coins, guess",
		Value: "sqrt,coins",
	}
	// WorkersFlag overrides SWEEP_WORKERS.
	WorkersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "Number of sweep workers, defaults to SWEEP_WORKERS",
	}
	// SecretFlag is the hidden number used by a non interactive guess.
	SecretFlag = &cli.IntFlag{
		Name:  "secret",
		Usage: "Hidden number for a non interactive guess; when unset you are prompted for each guess",
	}
)
