// Package version reports which numerics build is running.
package version

import (
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Set through linker options, for example
// -X github.com/prysmaticlabs/numerics/runtime/version.gitTag=v1.2.0
var (
	gitCommit = "Local build"
	buildDate = "Moments ago"
	gitTag    = "Unknown"
)

const (
	unstampedCommit = "{STABLE_GIT_COMMIT}"
	unstampedDate   = "{DATE}"
)

var resolveOnce sync.Once

// resolve fills in commit and date when the linker was given placeholders.
func resolve() {
	resolveOnce.Do(func() {
		if buildDate == unstampedDate {
			buildDate = time.Now().Format(time.RFC3339)
		}
		if gitCommit != unstampedCommit {
			return
		}
		commit, err := exec.Command("git", "rev-parse", "HEAD").Output()
		if err != nil {
			logrus.WithError(err).Debug("Could not read git commit")
			return
		}
		gitCommit = strings.TrimRight(string(commit), "\r\n")
	})
}

// Version returns the version string of this build.
func Version() string {
	return fmt.Sprintf("%s. Built at: %s", BuildData(), BuildDate())
}

// BuildData returns the git tag and commit of the current build.
func BuildData() string {
	resolve()
	return fmt.Sprintf("Numerics/%s/%s", gitTag, gitCommit)
}

// BuildDate returns when this binary was built.
func BuildDate() string {
	resolve()
	return buildDate
}

// Fields describes the build for structured logs.
func Fields() logrus.Fields {
	resolve()
	return logrus.Fields{
		"version":   gitTag,
		"commit":    gitCommit,
		"buildDate": buildDate,
	}
}
