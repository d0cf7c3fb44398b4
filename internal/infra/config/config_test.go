// Where: internal/infra/config/config_test.go
// What: Tests for config load/save.
// Why: Ensure config round-trips correctly and invalid files are rejected.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/poruru-code/sitemap-cli/internal/meta"
)

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Config{
		Version: 1,
		Output: OutputConfig{
			Indent:     4,
			EscapeHTML: true,
			Suffix:     "-rev",
		},
		Report: ReportConfig{Template: "{{ len .Reversed }} pages\n"},
		S3: S3Config{
			Endpoint:  "http://localhost:9000",
			Region:    "ap-northeast-1",
			PathStyle: true,
		},
	}

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loaded) {
		t.Fatalf("config mismatch: expected %#v, got %#v", cfg, loaded)
	}
}

func TestLoadConfigKeepsDefaultsForMissingFields(t *testing.T) {
	path := writeConfig(t, "output:\n  indent: 0\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Output.Indent != 0 {
		t.Fatalf("indent override lost: %d", cfg.Output.Indent)
	}
	if cfg.Output.Suffix != meta.DefaultReversedSuffix || cfg.Version != 1 {
		t.Fatalf("defaults lost: %#v", cfg)
	}
}

func TestLoadConfigEmptyFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "\n"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("expected defaults, got %#v", cfg)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "indent too large", content: "output:\n  indent: 12\n"},
		{name: "indent not integer", content: "output:\n  indent: two\n"},
		{name: "unknown field", content: "outptu:\n  indent: 2\n"},
		{name: "suffix with slash", content: "output:\n  suffix: a/b\n"},
		{name: "endpoint without scheme", content: "s3:\n  endpoint: localhost:9000\n"},
		{name: "wrong version", content: "version: 2\n"},
		{name: "not a mapping", content: "- a\n- b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), "validate config") {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestResolveFallsBackToDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := Resolve(missing, false)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("expected defaults, got %#v", cfg)
	}

	if _, err := Resolve(missing, true); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error for required config, got %v", err)
	}
}

func TestConfigPathPriority(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/sitemap.yaml")
	if got, _ := ConfigPath(" ./local.yaml "); got != "./local.yaml" {
		t.Fatalf("explicit path not preferred: %s", got)
	}
	if got, _ := ConfigPath(""); got != "/etc/sitemap.yaml" {
		t.Fatalf("env path not used: %s", got)
	}

	home := t.TempDir()
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", home)
	got, err := ConfigPath("")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if want := filepath.Join(home, meta.HomeDir, meta.ConfigFilename); got != want {
		t.Fatalf("unexpected default path: %s", got)
	}
}

func TestEnsureConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), meta.HomeDir, meta.ConfigFilename)

	written, err := EnsureConfig(path, false)
	if err != nil || !written {
		t.Fatalf("ensure config: written=%v err=%v", written, err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !reflect.DeepEqual(loaded, DefaultConfig()) {
		t.Fatalf("unexpected default config: %#v", loaded)
	}

	if err := os.WriteFile(path, []byte("output:\n  indent: 4\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	written, err = EnsureConfig(path, false)
	if err != nil || written {
		t.Fatalf("existing config must be kept: written=%v err=%v", written, err)
	}
	written, err = EnsureConfig(path, true)
	if err != nil || !written {
		t.Fatalf("force must rewrite: written=%v err=%v", written, err)
	}
	loaded, _ = LoadConfig(path)
	if loaded.Output.Indent != 2 {
		t.Fatalf("force did not restore defaults: %#v", loaded)
	}
}

func TestEnsureConfigRejectsDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), meta.ConfigFilename)
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	for _, force := range []bool{false, true} {
		written, err := EnsureConfig(path, force)
		if err == nil || written {
			t.Fatalf("force=%v: expected error for directory path, written=%v err=%v", force, written, err)
		}
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory was replaced: %v", err)
	}
}

func TestSaveConfigReplacesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", meta.ConfigFilename)
	if err := SaveConfig(path, DefaultConfig()); err != nil {
		t.Fatalf("save config: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat config: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Fatalf("unexpected config mode: %o", got)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
