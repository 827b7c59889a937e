// Package constant holds application-wide identifiers.
package constant

const (
	// App is the application name used for paths, env prefixes and branding.
	App = "tcut"

	// Version is the current application version.
	Version = "1.0.0"
)
