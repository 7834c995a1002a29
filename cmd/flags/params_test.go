package flags

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/prysmaticlabs/numerics/config/params"
	"github.com/prysmaticlabs/numerics/testing/assert"
	"github.com/prysmaticlabs/numerics/testing/require"
	"github.com/urfave/cli/v2"
)

func TestConfigureParams_Minimal(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	set := flag.NewFlagSet("test", 0)
	set.Bool(MinimalConfigFlag.Name, true, "test")
	ctx := cli.NewContext(&cli.App{}, set, nil)

	require.NoError(t, ConfigureParams(ctx))
	assert.Equal(t, "minimal", params.ActiveConfig().ConfigName)
}

func TestConfigureParams_File(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	file := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(file, []byte("MAX_INPUT: 1000\n"), 0600))

	set := flag.NewFlagSet("test", 0)
	set.String(ParamsFileFlag.Name, file, "test")
	ctx := cli.NewContext(&cli.App{}, set, nil)

	require.NoError(t, ConfigureParams(ctx))
	assert.Equal(t, int64(1000), params.ActiveConfig().MaxInput)
	assert.Equal(t, "custom", params.ActiveConfig().ConfigName)
}

func TestConfigureParams_BadFile(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	file := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(file, []byte("SQRT_EPSILON: 5\n"), 0600))

	set := flag.NewFlagSet("test", 0)
	set.String(ParamsFileFlag.Name, file, "test")
	ctx := cli.NewContext(&cli.App{}, set, nil)

	assert.ErrorContains(t, "SQRT_EPSILON must be within", ConfigureParams(ctx))
	assert.Equal(t, params.DefaultConfig().MaxInput, params.ActiveConfig().MaxInput)
}

func TestConfigureParams_FileOverMinimal(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	file := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(file, []byte("MAX_INPUT: 1000\n"), 0600))

	set := flag.NewFlagSet("test", 0)
	set.Bool(MinimalConfigFlag.Name, true, "test")
	set.String(ParamsFileFlag.Name, file, "test")
	ctx := cli.NewContext(&cli.App{}, set, nil)

	require.NoError(t, ConfigureParams(ctx))
	assert.Equal(t, int64(1000), params.ActiveConfig().MaxInput)
	assert.Equal(t, params.MinimalConfig().ResultCacheSize, params.ActiveConfig().ResultCacheSize)
	assert.Equal(t, params.MinimalConfig().SweepWorkers, params.ActiveConfig().SweepWorkers)
}
