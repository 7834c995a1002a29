package flags

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/prysmaticlabs/numerics/testing/assert"
	"github.com/prysmaticlabs/numerics/testing/require"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

func TestWrapFlags_LoadsFromYaml(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "flags.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("http-port: 4000\nverbosity: debug\n"), 0600))

	wrapped := WrapFlags([]cli.Flag{ConfigFileFlag, HTTPPortFlag, VerbosityFlag})
	set := flag.NewFlagSet("test", 0)
	for _, f := range wrapped {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse([]string{"--" + ConfigFileFlag.Name, configFile}))
	ctx := cli.NewContext(&cli.App{}, set, nil)

	before := altsrc.InitInputSourceWithContext(wrapped, altsrc.NewYamlSourceFromFlagFunc(ConfigFileFlag.Name))
	require.NoError(t, before(ctx))
	assert.Equal(t, 4000, ctx.Int(HTTPPortFlag.Name))
	assert.Equal(t, "debug", ctx.String(VerbosityFlag.Name))
}

func TestWrapFlags_PanicsOnUnsupported(t *testing.T) {
	defer func() {
		assert.NotNil(t, recover())
	}()
	WrapFlags([]cli.Flag{&cli.Int64Flag{Name: "bad"}})
}

func TestWrapFlags_PanicsOnUint64(t *testing.T) {
	defer func() {
		assert.NotNil(t, recover())
	}()
	WrapFlags([]cli.Flag{&cli.Uint64Flag{Name: "bad"}})
}

func TestEnumValue(t *testing.T) {
	e := &EnumValue{Enum: []string{"text", "json"}, Default: "text"}
	assert.Equal(t, "text", e.String())
	require.NoError(t, e.Set("json"))
	assert.Equal(t, "json", e.String())
	assert.ErrorContains(t, "allowed values are text, json", e.Set("xml"))
	assert.Equal(t, "json", e.String())
}

func TestEnumString(t *testing.T) {
	format := NewEnumFlag("format", "test", "text", "text", "json")
	app := &cli.App{Flags: []cli.Flag{format}}
	var got string
	app.Action = func(ctx *cli.Context) error {
		got = EnumString(ctx, format)
		return nil
	}
	require.NoError(t, app.Run([]string{"app", "--format", "json"}))
	assert.Equal(t, "json", got)

	err := app.Run([]string{"app", "--format", "xml"})
	assert.ErrorContains(t, "allowed values are text, json", err)

	ctx := cli.NewContext(&cli.App{}, flag.NewFlagSet("empty", 0), nil)
	assert.Equal(t, "text", EnumString(ctx, format))
}
