package version

import (
	"strings"
	"testing"

	"github.com/prysmaticlabs/numerics/testing/assert"
)

func TestVersion(t *testing.T) {
	v := Version()
	assert.Equal(t, true, strings.HasPrefix(v, "Numerics/Unknown/Local build"), v)
	assert.StringContains(t, "Built at: Moments ago", v)
}

func TestFields(t *testing.T) {
	fields := Fields()
	assert.Equal(t, "Unknown", fields["version"])
	assert.Equal(t, "Local build", fields["commit"])
	assert.Equal(t, BuildDate(), fields["buildDate"])
}
