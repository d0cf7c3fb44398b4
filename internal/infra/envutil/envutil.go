// Package envutil provides helpers for SITEMAP_-prefixed environment variables.
package envutil

import (
	"os"
	"strings"

	"github.com/poruru-code/sitemap-cli/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name.
// Example: HostEnvKey("CONFIG") returns "SITEMAP_CONFIG".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + strings.ToUpper(strings.TrimSpace(suffix))
}

// GetHostEnv returns the trimmed value of a host-level environment variable.
// Example: GetHostEnv("S3_ACCESS_KEY") returns the value of SITEMAP_S3_ACCESS_KEY.
func GetHostEnv(suffix string) string {
	return strings.TrimSpace(os.Getenv(HostEnvKey(suffix)))
}
