package core

import (
	"fmt"

	"go.uber.org/zap"
)

var Version = NoVersion

const NoVersion = "no_version_info"

// SetVersion prefers the version linked in at build time over the configured one.
func SetVersion(c *Conf, versionByBuildFlag string) {
	switch {
	case versionByBuildFlag != "":
		Version = versionByBuildFlag
	case c.Version != "":
		Version = c.Version
	default:
		Version = NoVersion
	}
	zap.L().Debug(fmt.Sprintf("Version is %s", Version))
}

// UserAgent identifies qdeck to remote backends.
func UserAgent() string {
	return "qdeck/" + Version
}
