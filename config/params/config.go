// Package params defines important constants that are essential to the numerics services.
package params

import (
	"time"
)

// MaxInputLimit is the widest input domain the numeric routines accept: the
// largest signed 32-bit integer. MAX_INPUT may be lowered but never raised past it.
const MaxInputLimit int64 = 1<<31 - 1

// NumericsConfig contains constant configs used by the numeric routines and the services wrapping them.
type NumericsConfig struct {
	ConfigName string `yaml:"CONFIG_NAME"` // ConfigName for allowing an easy human-readable way of knowing what config is being used.

	// Numeric routines.
	MaxInput          int64   `yaml:"MAX_INPUT"`           // MaxInput is the largest input accepted by any numeric routine.
	SqrtEpsilon       float64 `yaml:"SQRT_EPSILON"`        // SqrtEpsilon is the tolerance a Newton iterate's square may exceed x by before the loop stops.
	MaxSqrtIterations int     `yaml:"MAX_SQRT_ITERATIONS"` // MaxSqrtIterations bounds the Newton loop.

	// Caching and sessions.
	ResultCacheSize            int    `yaml:"RESULT_CACHE_SIZE"`             // ResultCacheSize is the number of memoized results kept by the API.
	GuessSessionTTLSeconds     uint64 `yaml:"GUESS_SESSION_TTL_SECONDS"`     // GuessSessionTTLSeconds is how long an idle interactive guess session lives.
	GuessSessionCleanupSeconds uint64 `yaml:"GUESS_SESSION_CLEANUP_SECONDS"` // GuessSessionCleanupSeconds is the interval between expired session sweeps.

	// Sweep.
	SweepWorkers   int   `yaml:"SWEEP_WORKERS"`    // SweepWorkers is the number of goroutines checking a sweep range.
	SweepChunkSize int64 `yaml:"SWEEP_CHUNK_SIZE"` // SweepChunkSize is the number of inputs a worker checks per unit of work.

	// API limits.
	APIRateLimit float64 `yaml:"API_RATE_LIMIT"` // APIRateLimit is the number of requests per second a single client may sustain.
	APIBurst     int64   `yaml:"API_BURST"`      // APIBurst is the number of requests a single client may issue at once.
}

// DefaultConfig returns the configuration used unless a params file overrides it.
func DefaultConfig() *NumericsConfig {
	return defaultNumericsConfig.Copy()
}

var defaultNumericsConfig = &NumericsConfig{
	ConfigName: "default",

	MaxInput:          MaxInputLimit,
	SqrtEpsilon:       0.1,
	MaxSqrtIterations: 64,

	ResultCacheSize:            4096,
	GuessSessionTTLSeconds:     300,
	GuessSessionCleanupSeconds: 60,

	SweepWorkers:   4,
	SweepChunkSize: 1 << 16,

	APIRateLimit: 50,
	APIBurst:     100,
}

// MinimalConfig returns a small footprint configuration, used by tests.
func MinimalConfig() *NumericsConfig {
	minimalConfig := DefaultConfig()
	minimalConfig.ConfigName = "minimal"
	minimalConfig.ResultCacheSize = 16
	minimalConfig.GuessSessionTTLSeconds = 5
	minimalConfig.GuessSessionCleanupSeconds = 1
	minimalConfig.SweepWorkers = 1
	minimalConfig.SweepChunkSize = 256
	minimalConfig.APIRateLimit = 5
	minimalConfig.APIBurst = 10
	return minimalConfig
}

// GuessSessionTTL returns the guess session time to live as a duration.
func (c *NumericsConfig) GuessSessionTTL() time.Duration {
	return time.Duration(c.GuessSessionTTLSeconds) * time.Second
}

// GuessSessionCleanupInterval returns the expired session sweep interval as a duration.
func (c *NumericsConfig) GuessSessionCleanupInterval() time.Duration {
	return time.Duration(c.GuessSessionCleanupSeconds) * time.Second
}
