// Package prereqs warns when numerics runs on a platform it is not built for.
package prereqs

import (
	"math/bits"
	"runtime"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "prereqs")

type platform struct {
	os   string
	arch string
}

var (
	runtimeOS   = runtime.GOOS
	runtimeArch = runtime.GOARCH
	wordSize    = bits.UintSize
)

func supportedPlatforms() []platform {
	return []platform{
		{os: "linux", arch: "amd64"},
		{os: "linux", arch: "arm64"},
		{os: "darwin", arch: "amd64"},
		{os: "darwin", arch: "arm64"},
		{os: "windows", arch: "amd64"},
	}
}

// meetsMinPlatformReqs returns true if the runtime matches any on the list of
// supported platforms. Progress reporting counts whole input ranges in an int,
// so a 64-bit word is required as well.
func meetsMinPlatformReqs() bool {
	if wordSize < 64 {
		return false
	}
	for _, p := range supportedPlatforms() {
		if runtimeOS == p.os && runtimeArch == p.arch {
			return true
		}
	}
	return false
}

// WarnIfPlatformNotSupported warns if the user's platform is not supported.
func WarnIfPlatformNotSupported() {
	if !meetsMinPlatformReqs() {
		log.WithFields(logrus.Fields{
			"os":       runtimeOS,
			"arch":     runtimeArch,
			"wordSize": wordSize,
		}).Warn("This platform is not supported. The following platforms are supported: Linux/AMD64," +
			" Linux/ARM64, Mac OS X/AMD64, Mac OS X/ARM64 and Windows/AMD64")
	}
}
