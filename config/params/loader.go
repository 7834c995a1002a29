package params

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const (
	minSqrtEpsilon = 0.001
	maxSqrtEpsilon = 1.0
)

// LoadConfigFile loads, validates and applies a numerics params yaml file.
// Any field missing from the file keeps its default value.
func LoadConfigFile(configFileName string) error {
	conf, err := UnmarshalConfigFile(configFileName)
	if err != nil {
		return err
	}
	log.Debugf("Config file values: %+v", conf)
	OverrideNumericsConfig(conf)
	return nil
}

// UnmarshalConfigFile reads a params yaml file on top of the default config
// without applying it.
func UnmarshalConfigFile(configFileName string) (*NumericsConfig, error) {
	return UnmarshalConfigFileOnto(DefaultConfig(), configFileName)
}

// UnmarshalConfigFileOnto reads a params yaml file on top of a copy of base.
func UnmarshalConfigFileOnto(base *NumericsConfig, configFileName string) (*NumericsConfig, error) {
	yamlFile, err := os.ReadFile(configFileName) // #nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "could not read params file")
	}
	return UnmarshalConfigOnto(base, yamlFile)
}

// UnmarshalConfig parses params yaml bytes on top of the default config.
func UnmarshalConfig(yamlFile []byte) (*NumericsConfig, error) {
	return UnmarshalConfigOnto(DefaultConfig(), yamlFile)
}

// UnmarshalConfigOnto parses params yaml bytes on top of a copy of base.
// base itself is left untouched.
func UnmarshalConfigOnto(base *NumericsConfig, yamlFile []byte) (*NumericsConfig, error) {
	conf := base.Copy()
	if err := yaml.UnmarshalStrict(yamlFile, conf); err != nil {
		return nil, errors.Wrap(err, "could not parse params yaml")
	}
	if conf.ConfigName == "" || conf.ConfigName == base.ConfigName {
		conf.ConfigName = "custom"
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate reports the first config value that would break the numeric routines.
func (c *NumericsConfig) Validate() error {
	switch {
	case c.MaxInput < 1 || c.MaxInput > MaxInputLimit:
		return errors.Errorf("MAX_INPUT must be within [1, %d], got %d", MaxInputLimit, c.MaxInput)
	case c.SqrtEpsilon < minSqrtEpsilon || c.SqrtEpsilon >= maxSqrtEpsilon:
		return errors.Errorf("SQRT_EPSILON must be within [%v, %v), got %v", minSqrtEpsilon, maxSqrtEpsilon, c.SqrtEpsilon)
	case c.MaxSqrtIterations < 1:
		return errors.Errorf("MAX_SQRT_ITERATIONS must be positive, got %d", c.MaxSqrtIterations)
	case c.ResultCacheSize < 1:
		return errors.Errorf("RESULT_CACHE_SIZE must be positive, got %d", c.ResultCacheSize)
	case c.GuessSessionTTLSeconds == 0:
		return errors.New("GUESS_SESSION_TTL_SECONDS must be positive")
	case c.SweepWorkers < 1:
		return errors.Errorf("SWEEP_WORKERS must be positive, got %d", c.SweepWorkers)
	case c.SweepChunkSize < 1:
		return errors.Errorf("SWEEP_CHUNK_SIZE must be positive, got %d", c.SweepChunkSize)
	case c.APIRateLimit <= 0 || c.APIBurst < 1:
		return errors.Errorf("API_RATE_LIMIT and API_BURST must be positive, got %v and %d", c.APIRateLimit, c.APIBurst)
	}
	return nil
}
