//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/club",
			expected: filepath.Join(home, "club"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/club/content/site-content.json",
			expected: filepath.Join(home, "club", "content", "site-content.json"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/srv/club/content.json",
			expected: "/srv/club/content.json",
		},
		{
			name:     "relative path unchanged",
			input:    "content/site-content.json",
			expected: "content/site-content.json",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "clubview", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFrom_Defaults(t *testing.T) {
	t.Setenv(protocolEnvOverride, "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.ContentPath != DefaultContentPath {
		t.Errorf("ContentPath = %q, want %q", cfg.ContentPath, DefaultContentPath)
	}
	if cfg.Site.URL != DefaultSiteURL {
		t.Errorf("Site.URL = %q, want %q", cfg.Site.URL, DefaultSiteURL)
	}
	if cfg.Images.Host != DefaultImageHost {
		t.Errorf("Images.Host = %q, want %q", cfg.Images.Host, DefaultImageHost)
	}
	if cfg.Images.Protocol != "auto" {
		t.Errorf("Images.Protocol = %q, want auto", cfg.Images.Protocol)
	}
	if cfg.Gallery.PreviewCount != 8 {
		t.Errorf("Gallery.PreviewCount = %d, want 8", cfg.Gallery.PreviewCount)
	}
	if cfg.ImageParams() != nil {
		t.Errorf("ImageParams() = %v, want nil", cfg.ImageParams())
	}
	if cfg.FetchTimeout() != 15*time.Second {
		t.Errorf("FetchTimeout() = %v, want 15s", cfg.FetchTimeout())
	}
	if cfg.CacheTTL() != 30*24*time.Hour {
		t.Errorf("CacheTTL() = %v, want 720h", cfg.CacheTTL())
	}
	if cfg.UI.Icons != "none" {
		t.Errorf("UI.Icons = %q, want none", cfg.UI.Icons)
	}
}

func TestLoadFrom_LastWins(t *testing.T) {
	t.Setenv(protocolEnvOverride, "")
	dir := t.TempDir()

	first := writeConfig(t, dir, "a.toml", `
content_path = "/srv/a.json"

[site]
url = "https://example.org/"

[gallery]
preview_count = 4

[ui]
icons = "nerd"
`)
	second := writeConfig(t, dir, "b.toml", `
content_path = "/srv/b.json"

[images]
host = "https://img.example.org/"
params = ["b=2", "a=1"]
protocol = "Kitty"
fetch_timeout_seconds = 500
`)

	cfg, err := LoadFrom(first, second)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.ContentPath != "/srv/b.json" {
		t.Errorf("ContentPath = %q, want /srv/b.json", cfg.ContentPath)
	}
	if cfg.Site.URL != "https://example.org" {
		t.Errorf("Site.URL = %q, trailing slash should be trimmed", cfg.Site.URL)
	}
	if cfg.Gallery.PreviewCount != 4 {
		t.Errorf("Gallery.PreviewCount = %d, want 4", cfg.Gallery.PreviewCount)
	}
	if cfg.UI.Icons != "nerd" {
		t.Errorf("UI.Icons = %q, want nerd", cfg.UI.Icons)
	}
	if cfg.Images.Host != "https://img.example.org" {
		t.Errorf("Images.Host = %q", cfg.Images.Host)
	}
	params := cfg.ImageParams()
	if len(params) != 2 || params[0] != "b=2" || params[1] != "a=1" {
		t.Errorf("ImageParams() = %v, want order kept", params)
	}
	if cfg.Images.Protocol != "kitty" {
		t.Errorf("Images.Protocol = %q, want kitty", cfg.Images.Protocol)
	}
	if cfg.Images.FetchTimeoutSecs != DefaultFetchTimeout {
		t.Errorf("out-of-range timeout should fall back, got %d", cfg.Images.FetchTimeoutSecs)
	}
}

func TestLoadFrom_EnvProtocolOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "c.toml", `
[images]
protocol = "kitty"
`)
	t.Setenv(protocolEnvOverride, "none")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Images.Protocol != "none" {
		t.Errorf("Images.Protocol = %q, want none", cfg.Images.Protocol)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "bad.toml", "content_path = [")
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should fail on malformed TOML")
	}
}

func TestNormalizeProtocol(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"kitty", "kitty"},
		{" SIXEL ", "sixel"},
		{"none", "none"},
		{"off", "none"},
		{"", "auto"},
		{"iterm", "auto"},
	}

	for _, tt := range tests {
		if got := normalizeProtocol(tt.input); got != tt.expected {
			t.Errorf("normalizeProtocol(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
