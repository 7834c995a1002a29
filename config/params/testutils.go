package params

import (
	"testing"
)

// SetupTestConfigCleanup preserves the active config and restores it when the test ends.
func SetupTestConfigCleanup(t testing.TB) {
	prev := ActiveConfig().Copy()
	t.Cleanup(func() {
		OverrideNumericsConfig(prev)
	})
}
