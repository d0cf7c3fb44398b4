// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep naming and layout decisions in one place.
package meta

const (
	// Project Identity
	AppName   = "sitemap"
	EnvPrefix = "SITEMAP"

	// Directory Layout
	HomeDir        = ".sitemap"
	ConfigFilename = "config.yaml"

	// Output naming
	DefaultReversedSuffix = "-reversed"
)
