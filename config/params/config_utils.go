package params

import (
	"sync"

	"github.com/mohae/deepcopy"
)

var (
	activeLock   sync.RWMutex
	activeConfig = DefaultConfig()
)

// ActiveConfig retrieves the numerics config currently in use.
func ActiveConfig() *NumericsConfig {
	activeLock.RLock()
	defer activeLock.RUnlock()
	return activeConfig
}

// OverrideNumericsConfig by replacing the config. The preferred pattern is to
// call ActiveConfig(), copy it, change the specific parameters, and then call
// OverrideNumericsConfig(c). Any subsequent calls to params.ActiveConfig() will
// return this new configuration.
func OverrideNumericsConfig(c *NumericsConfig) {
	activeLock.Lock()
	defer activeLock.Unlock()
	activeConfig = c
}

// Copy returns a copy of the config object.
func (c *NumericsConfig) Copy() *NumericsConfig {
	config := deepcopy.Copy(*c).(NumericsConfig)
	return &config
}
