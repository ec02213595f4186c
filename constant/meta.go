// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

import _ "embed"

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "tunesearch"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is sent with every catalog request.
	UserAgent = App + "/" + Version
)

// Build metadata, injected with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// AsciiArtLogo is printed above the root command's long help.
//
//go:embed ascii.txt
var AsciiArtLogo string

// Platform identifiers for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
