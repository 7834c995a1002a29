package logs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prysmaticlabs/numerics/testing/assert"
	"github.com/prysmaticlabs/numerics/testing/require"
	"github.com/sirupsen/logrus"
)

func TestConfigurePersistentLogging(t *testing.T) {
	out := logrus.StandardLogger().Out
	t.Cleanup(func() {
		logrus.SetOutput(out)
	})

	logFileName := filepath.Join(t.TempDir(), "numerics.log")
	require.NoError(t, ConfigurePersistentLogging(logFileName))
	logrus.Info("Computed square root")

	content, err := os.ReadFile(logFileName)
	require.NoError(t, err)
	assert.StringContains(t, "File logging initialized", string(content))
	assert.StringContains(t, "Computed square root", string(content))
}

func TestConfigurePersistentLogging_MissingDirectory(t *testing.T) {
	logFileName := filepath.Join(t.TempDir(), "missing-dir", "numerics.log")
	err := ConfigurePersistentLogging(logFileName)
	assert.ErrorContains(t, "could not open log file", err)
}
