// Package version exposes the build version stamped in via -ldflags.
package version

// version is overridden at build time:
//
//	go build -ldflags "-X github.com/landquant/severance/pkg/version.version=v1.2.3"
var version = "dev" //nolint:gochecknoglobals // set by the linker

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}
