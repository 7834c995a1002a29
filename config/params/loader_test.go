package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prysmaticlabs/numerics/testing/assert"
	"github.com/prysmaticlabs/numerics/testing/require"
)

func TestLoadConfigFile(t *testing.T) {
	SetupTestConfigCleanup(t)
	file := filepath.Join(t.TempDir(), "params.yaml")
	content := []byte(`CONFIG_NAME: "testnet"
MAX_INPUT: 1000000
SQRT_EPSILON: 0.01
SWEEP_WORKERS: 8
`)
	require.NoError(t, os.WriteFile(file, content, 0600))
	require.NoError(t, LoadConfigFile(file))

	cfg := ActiveConfig()
	assert.Equal(t, "testnet", cfg.ConfigName)
	assert.Equal(t, int64(1000000), cfg.MaxInput)
	assert.Equal(t, 0.01, cfg.SqrtEpsilon)
	assert.Equal(t, 8, cfg.SweepWorkers)
	// Untouched fields keep their defaults.
	assert.Equal(t, DefaultConfig().MaxSqrtIterations, cfg.MaxSqrtIterations)
	assert.Equal(t, DefaultConfig().ResultCacheSize, cfg.ResultCacheSize)
}

func TestLoadConfigFile_MissingFile(t *testing.T) {
	SetupTestConfigCleanup(t)
	err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, "could not read params file", err)
	assert.Equal(t, "default", ActiveConfig().ConfigName)
}

func TestUnmarshalConfig(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantName  string
		wantedErr string
	}{
		{
			name:     "empty file keeps defaults",
			yaml:     "",
			wantName: "custom",
		},
		{
			name:      "unknown field",
			yaml:      "SQRT_TOLERANCE: 0.1",
			wantedErr: "could not parse params yaml",
		},
		{
			name:      "max input above limit",
			yaml:      "MAX_INPUT: 2147483648",
			wantedErr: "MAX_INPUT must be within",
		},
		{
			name:      "zero max input",
			yaml:      "MAX_INPUT: 0",
			wantedErr: "MAX_INPUT must be within",
		},
		{
			name:      "epsilon too small",
			yaml:      "SQRT_EPSILON: 0.0000001",
			wantedErr: "SQRT_EPSILON must be within",
		},
		{
			name:      "epsilon too large",
			yaml:      "SQRT_EPSILON: 1",
			wantedErr: "SQRT_EPSILON must be within",
		},
		{
			name:      "no iterations",
			yaml:      "MAX_SQRT_ITERATIONS: 0",
			wantedErr: "MAX_SQRT_ITERATIONS must be positive",
		},
		{
			name:      "no workers",
			yaml:      "SWEEP_WORKERS: 0",
			wantedErr: "SWEEP_WORKERS must be positive",
		},
		{
			name:      "no rate limit",
			yaml:      "API_RATE_LIMIT: 0",
			wantedErr: "API_RATE_LIMIT and API_BURST must be positive",
		},
		{
			name:     "named config",
			yaml:     "CONFIG_NAME: local",
			wantName: "local",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := UnmarshalConfig([]byte(tt.yaml))
			if tt.wantedErr != "" {
				assert.ErrorContains(t, tt.wantedErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, cfg.ConfigName)
		})
	}
}

func TestNumericsConfig_Copy(t *testing.T) {
	cfg := DefaultConfig()
	cp := cfg.Copy()
	cp.MaxInput = 10
	assert.Equal(t, MaxInputLimit, cfg.MaxInput)
	assert.Equal(t, int64(10), cp.MaxInput)
}

func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
	require.NoError(t, MinimalConfig().Validate())
}

func TestOverrideNumericsConfig(t *testing.T) {
	SetupTestConfigCleanup(t)
	cfg := MinimalConfig()
	OverrideNumericsConfig(cfg)
	assert.Equal(t, "minimal", ActiveConfig().ConfigName)
	assert.Equal(t, int64(5), int64(ActiveConfig().GuessSessionTTL().Seconds()))
}

func TestUnmarshalConfigOnto_KeepsBase(t *testing.T) {
	base := MinimalConfig()
	cfg, err := UnmarshalConfigOnto(base, []byte("MAX_INPUT: 1000\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(1000), cfg.MaxInput)
	assert.Equal(t, base.ResultCacheSize, cfg.ResultCacheSize)
	assert.Equal(t, base.GuessSessionTTLSeconds, cfg.GuessSessionTTLSeconds)
	assert.Equal(t, "custom", cfg.ConfigName)
	assert.Equal(t, MaxInputLimit, base.MaxInput, "base config was modified")
}
