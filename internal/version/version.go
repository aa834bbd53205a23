// Package version contains version information for the bumptag tool itself.
package version

import (
	"fmt"
)

// Version information
const (
	// Major version component
	Major = 0
	// Minor version component
	Minor = 1
	// Patch version component
	Patch = 0
)

// Full returns the full version string
func Full() string {
	return fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
}

// Info returns the tool name with its version
func Info() string {
	return "bumptag " + Full()
}
