package flags

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/numerics/config/params"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.WithField("prefix", "flags")

// BaseParams returns the config a params file is layered on: the minimal
// config with --minimal-config, the default config otherwise.
func BaseParams(ctx *cli.Context) *params.NumericsConfig {
	if ctx.Bool(MinimalConfigFlag.Name) {
		return params.MinimalConfig()
	}
	return params.DefaultConfig()
}

// ConfigureParams applies --params-file on top of BaseParams and makes the
// result the active numerics config.
func ConfigureParams(ctx *cli.Context) error {
	conf := BaseParams(ctx)
	if ctx.Bool(MinimalConfigFlag.Name) {
		log.Warn("Using minimal config")
	}
	if file := ctx.String(ParamsFileFlag.Name); file != "" {
		loaded, err := params.UnmarshalConfigFileOnto(conf, file)
		if err != nil {
			return errors.Wrapf(err, "could not load params file %s", file)
		}
		conf = loaded
		log.WithField("config", conf.ConfigName).Info("Loaded numeric params")
	}
	params.OverrideNumericsConfig(conf)
	return nil
}
