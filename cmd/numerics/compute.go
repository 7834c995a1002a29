package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/numerics/math"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func sqrtCommand() *cli.Command {
	return &cli.Command{
		Name:      "sqrt",
		Usage:     "prints floor(sqrt(x))",
		ArgsUsage: "X",
		Action: func(ctx *cli.Context) error {
			x, err := int64Arg(ctx, "X")
			if err != nil {
				return err
			}
			root, err := math.IntegerSquareRoot(x)
			if err != nil {
				return errors.Wrap(err, "could not compute square root")
			}
			log.WithFields(logrus.Fields{"x": x, "result": root}).Debug("Computed square root")
			_, err = fmt.Fprintln(ctx.App.Writer, root)
			return err
		},
	}
}

func coinsCommand() *cli.Command {
	return &cli.Command{
		Name:      "coins",
		Usage:     "prints the number of complete staircase rows N coins can build",
		ArgsUsage: "N",
		Action: func(ctx *cli.Context) error {
			n, err := int64Arg(ctx, "N")
			if err != nil {
				return err
			}
			rows, err := math.ArrangeCoins(n)
			if err != nil {
				return errors.Wrap(err, "could not arrange coins")
			}
			log.WithFields(logrus.Fields{
				"coins": n,
				"rows":  rows,
				"spare": n - math.StaircaseCoins(rows),
			}).Debug("Arranged coins")
			_, err = fmt.Fprintln(ctx.App.Writer, rows)
			return err
		},
	}
}

func int64Arg(ctx *cli.Context, name string) (int64, error) {
	if ctx.NArg() != 1 {
		return 0, errors.Errorf("expected exactly one argument %s, got %d", name, ctx.NArg())
	}
	v, err := strconv.ParseInt(ctx.Args().First(), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", name)
	}
	return v, nil
}
