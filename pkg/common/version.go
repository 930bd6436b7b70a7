// Package common holds build metadata shared by the binaries.
package common

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version returns the release version, e.g. "0.4.0".
func Version() string {
	return strings.TrimSpace(version)
}

// ServerName is sent in the Server header when no revision is set.
func ServerName() string {
	return "solarledger/" + Version()
}
