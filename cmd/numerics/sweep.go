package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/k0kubun/go-ansi"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/numerics/cmd/flags"
	"github.com/prysmaticlabs/numerics/config/params"
	"github.com/prysmaticlabs/numerics/math"
	"github.com/prysmaticlabs/numerics/sweep"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func sweepCommand() *cli.Command {
	sweepFlags := flags.WrapFlags([]cli.Flag{
		flags.FromFlag,
		flags.ToFlag,
		flags.OperationsFlag,
		flags.WorkersFlag,
	})
	return &cli.Command{
		Name:   "sweep",
		Usage:  "checks the routines against their defining properties for every input in a range",
		Flags:  sweepFlags,
		Before: loadFlagsFromFile(sweepFlags),
		Action: runSweep,
	}
}

func runSweep(ctx *cli.Context) error {
	ops, err := math.ParseOperations(ctx.String(flags.OperationsFlag.Name))
	if err != nil {
		return err
	}
	from := int64(ctx.Int(flags.FromFlag.Name))
	to := params.ActiveConfig().MaxInput
	if ctx.IsSet(flags.ToFlag.Name) {
		to = int64(ctx.Int(flags.ToFlag.Name))
	}
	if from > to {
		return errors.Errorf("--from %d is past --to %d", from, to)
	}

	bar := initializeProgressBar(int(to-from+1), fmt.Sprintf("Sweeping %s", ctx.String(flags.OperationsFlag.Name)))
	report, err := sweep.Run(ctx.Context, sweep.Config{
		From:    from,
		To:      to,
		Ops:     ops,
		Workers: ctx.Int(flags.WorkersFlag.Name),
		Progress: func(done int64) {
			if err := bar.Add(int(done)); err != nil {
				log.WithError(err).Debug("Could not update progress bar")
			}
		},
	})
	if err != nil {
		return errors.Wrap(err, "sweep failed")
	}
	log.WithFields(logrus.Fields{
		"inputs":  humanize.Comma(report.Inputs),
		"checks":  humanize.Comma(report.Checks),
		"elapsed": report.Elapsed,
	}).Info("Sweep found no violations")
	return nil
}

func initializeProgressBar(numItems int, msg string) *progressbar.ProgressBar {
	return progressbar.NewOptions(
		numItems,
		progressbar.OptionFullWidth(),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() { fmt.Println() }),
		progressbar.OptionSetDescription(msg),
	)
}
