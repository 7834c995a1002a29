// Package main is the entrypoint of the numerics command line tool and server.
package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	joonix "github.com/joonix/log"
	"github.com/prysmaticlabs/numerics/cmd/flags"
	"github.com/prysmaticlabs/numerics/io/logs"
	"github.com/prysmaticlabs/numerics/monitoring/prometheus"
	"github.com/prysmaticlabs/numerics/node"
	"github.com/prysmaticlabs/numerics/runtime/prereqs"
	"github.com/prysmaticlabs/numerics/runtime/version"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	_ "go.uber.org/automaxprocs"
)

var log = logrus.WithField("prefix", "main")

var appFlags = []cli.Flag{
	flags.VerbosityFlag,
	flags.LogFormat,
	flags.LogFileName,
	flags.ConfigFileFlag,
	flags.ParamsFileFlag,
	flags.MinimalConfigFlag,
}

var serveFlags = []cli.Flag{
	flags.HTTPHostFlag,
	flags.HTTPPortFlag,
	flags.MonitoringPortFlag,
	flags.DisableMonitoringFlag,
	flags.AllowedOriginsFlag,
	flags.WatchParamsFlag,
}

func init() {
	appFlags = flags.WrapFlags(appFlags)
	serveFlags = flags.WrapFlags(serveFlags)
}

func newApp() *cli.App {
	app := &cli.App{}
	app.Name = "numerics"
	app.Usage = "bounded integer square roots, coin staircases and number guessing"
	app.Version = version.Version()
	app.Flags = append([]cli.Flag{}, appFlags...)
	app.Commands = []*cli.Command{
		sqrtCommand(),
		coinsCommand(),
		guessCommand(),
		sweepCommand(),
		{
			Name:   "serve",
			Usage:  "runs the HTTP API and the prometheus monitoring endpoint",
			Flags:  append([]cli.Flag{}, serveFlags...),
			Before: loadFlagsFromFile(serveFlags),
			Action: serve,
		},
	}
	app.Before = before
	return app
}

var negativeInt = regexp.MustCompile(`^-[0-9]+$`)

// escapeNegativeArgs inserts "--" ahead of the first negative integer that is
// not a flag value, so `numerics sqrt -5` reaches the input domain check
// instead of failing as an unknown flag.
func escapeNegativeArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if i == 0 || !negativeInt.MatchString(arg) || strings.HasPrefix(args[i-1], "-") {
			continue
		}
		escaped := make([]string, 0, len(args)+1)
		escaped = append(escaped, args[:i]...)
		escaped = append(escaped, "--")
		return append(escaped, args[i:]...)
	}
	return args
}

// loadFlagsFromFile fills unset flags from the --config-file yaml, if specified.
func loadFlagsFromFile(fl []cli.Flag) cli.BeforeFunc {
	return func(ctx *cli.Context) error {
		if !ctx.IsSet(flags.ConfigFileFlag.Name) {
			return nil
		}
		return altsrc.InitInputSourceWithContext(
			fl,
			altsrc.NewYamlSourceFromFlagFunc(
				flags.ConfigFileFlag.Name))(ctx)
	}
}

func before(ctx *cli.Context) error {
	if err := loadFlagsFromFile(appFlags)(ctx); err != nil {
		return err
	}

	verbosity := ctx.String(flags.VerbosityFlag.Name)
	level, err := logrus.ParseLevel(verbosity)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	format := flags.EnumString(ctx, flags.LogFormat)
	switch format {
	case "text":
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		// If persistent log files are written - we disable the log messages coloring because
		// the colors are ANSI codes and seen as Gibberish in the log files.
		formatter.DisableColors = ctx.String(flags.LogFileName.Name) != ""
		logrus.SetFormatter(formatter)
	case "fluentd":
		logrus.SetFormatter(joonix.NewFormatter())
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %s", format)
	}

	logFileName := ctx.String(flags.LogFileName.Name)
	if logFileName != "" {
		if err := logs.ConfigurePersistentLogging(logFileName); err != nil {
			log.WithError(err).Error("Failed to configuring logging to disk.")
		}
	}
	prereqs.WarnIfPlatformNotSupported()
	return flags.ConfigureParams(ctx)
}

func serve(ctx *cli.Context) error {
	if !ctx.Bool(flags.DisableMonitoringFlag.Name) {
		logrus.AddHook(prometheus.NewLogrusCollector())
	}
	numericsNode, err := node.New(ctx)
	if err != nil {
		return err
	}
	numericsNode.Start()
	return nil
}

func main() {
	if err := newApp().Run(escapeNegativeArgs(os.Args)); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
