// This code was adapted from https://github.com/ethereum/go-ethereum/blob/master/cmd/geth/usage.go
package main

import (
	"io"
	"sort"

	"github.com/prysmaticlabs/numerics/cmd/flags"
	"github.com/urfave/cli/v2"
)

var appHelpTemplate = `NAME:
   {{.App.Name}} - {{.App.Usage}}
USAGE:
   {{.App.HelpName}} [options]{{if .App.Commands}} command [command options]{{end}} {{if .App.ArgsUsage}}{{.App.ArgsUsage}}{{else}}[arguments...]{{end}}
   {{if .App.Commands}}
COMMANDS:
   {{range .App.Commands}}{{join .Names ", "}}{{ "\t" }}{{.Usage}}
   {{end}}{{end}}{{if .FlagGroups}}
{{range .FlagGroups}}{{.Name}} OPTIONS:
   {{range .Flags}}{{.}}
   {{end}}
{{end}}{{end}}{{if .App.Version}}
VERSION:
   {{.App.Version}}
   {{end}}
`

type flagGroup struct {
	Name  string
	Flags []cli.Flag
}

var appHelpFlagGroups = []flagGroup{
	{
		Name: "logging",
		Flags: []cli.Flag{
			flags.VerbosityFlag,
			flags.LogFormat,
			flags.LogFileName,
		},
	},
	{
		Name: "config",
		Flags: []cli.Flag{
			flags.ConfigFileFlag,
			flags.ParamsFileFlag,
			flags.MinimalConfigFlag,
		},
	},
	{
		Name: "serve",
		Flags: []cli.Flag{
			flags.HTTPHostFlag,
			flags.HTTPPortFlag,
			flags.MonitoringPortFlag,
			flags.DisableMonitoringFlag,
			flags.AllowedOriginsFlag,
			flags.WatchParamsFlag,
		},
	},
	{
		Name: "sweep",
		Flags: []cli.Flag{
			flags.FromFlag,
			flags.ToFlag,
			flags.OperationsFlag,
			flags.WorkersFlag,
		},
	},
	{
		Name: "guess",
		Flags: []cli.Flag{
			flags.SecretFlag,
		},
	},
}

func init() {
	cli.AppHelpTemplate = appHelpTemplate

	type helpData struct {
		App        interface{}
		FlagGroups []flagGroup
	}

	originalHelpPrinter := cli.HelpPrinter
	cli.HelpPrinter = func(w io.Writer, tmpl string, data interface{}) {
		if tmpl == appHelpTemplate {
			for _, group := range appHelpFlagGroups {
				sort.Sort(cli.FlagsByName(group.Flags))
			}
			originalHelpPrinter(w, tmpl, helpData{data, appHelpFlagGroups})
		} else {
			originalHelpPrinter(w, tmpl, data)
		}
	}
}
