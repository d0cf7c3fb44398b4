// Where: internal/infra/config/config.go
// What: CLI config load/save.
// Why: Manage ~/.sitemap/config.yaml consistently.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru-code/sitemap-cli/internal/infra/fileops"
	"github.com/poruru-code/sitemap-cli/internal/meta"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the default config location.
const EnvConfigPath = meta.EnvPrefix + "_CONFIG"

// Config represents the sitemap CLI configuration file.
type Config struct {
	Version int          `yaml:"version"`
	Output  OutputConfig `yaml:"output"`
	Report  ReportConfig `yaml:"report,omitempty"`
	S3      S3Config     `yaml:"s3,omitempty"`
}

// OutputConfig controls how reversed documents are written.
type OutputConfig struct {
	Indent     int    `yaml:"indent"`
	EscapeHTML bool   `yaml:"escape_html"`
	Suffix     string `yaml:"suffix"`
}

// ReportConfig holds the summary template printed by reverse.
type ReportConfig struct {
	Template string `yaml:"template,omitempty"`
}

// S3Config points s3:// locations at AWS or an S3-compatible endpoint.
type S3Config struct {
	Endpoint  string `yaml:"endpoint,omitempty"`
	Region    string `yaml:"region,omitempty"`
	PathStyle bool   `yaml:"path_style,omitempty"`
}

// DefaultConfig returns an initialized Config with version set.
func DefaultConfig() Config {
	return Config{
		Version: 1,
		Output: OutputConfig{
			Indent: 2,
			Suffix: meta.DefaultReversedSuffix,
		},
	}
}

// ConfigPath returns the config file location. An explicit path wins,
// then $SITEMAP_CONFIG, then ~/.sitemap/config.yaml.
func ConfigPath(explicit string) (string, error) {
	if path := strings.TrimSpace(explicit); path != "" {
		return path, nil
	}
	if path := strings.TrimSpace(os.Getenv(EnvConfigPath)); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, meta.HomeDir, meta.ConfigFilename), nil
}

// Resolve loads the config at path, falling back to defaults when the file
// does not exist and required is false.
func Resolve(path string, required bool) (Config, error) {
	cfg, err := LoadConfig(path)
	if err == nil {
		return cfg, nil
	}
	if !required && errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return Config{}, err
}

// LoadConfig reads, validates and parses the config file. Missing fields
// keep their default values.
func LoadConfig(path string) (Config, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if len(bytes.TrimSpace(payload)) == 0 {
		return cfg, nil
	}
	if err := validateConfig(payload); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes a Config to the specified path.
func SaveConfig(path string, cfg Config) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := fileops.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if err := fileops.WriteFileAtomic(path, payload, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// EnsureConfig creates the config file with defaults. It reports whether a
// file was written; an existing file is only replaced when force is set.
func EnsureConfig(path string, force bool) (bool, error) {
	if fileops.DirExists(path) {
		return false, fmt.Errorf("config path %s is a directory", path)
	}
	if fileops.FileExists(path) && !force {
		return false, nil
	}
	if err := SaveConfig(path, DefaultConfig()); err != nil {
		return false, err
	}
	return true, nil
}

// Encode renders cfg as YAML.
func Encode(cfg Config) ([]byte, error) {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return payload, nil
}
