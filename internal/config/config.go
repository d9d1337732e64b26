package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "clubview"

// Defaults applied when a key is missing or out of range.
const (
	DefaultContentPath    = "content/site-content.json"
	DefaultSiteURL        = "https://corvettesofdurham.vercel.app"
	DefaultSiteName       = "Corvettes of Durham"
	DefaultSiteDesc       = "A dedicated group of Corvette enthusiasts in Durham Region, Ontario, Canada. Join us for meetings, cruises, car shows, and charity events. Established 2000."
	DefaultImageHost      = "https://nebula.wsimg.com"
	DefaultCacheTTLDays   = 30
	DefaultMemoryEntries  = 64
	DefaultFetchTimeout   = 15
	DefaultPreviewCount   = 8
	DefaultLogLevel       = "info"
	DefaultImageProtocol  = "auto"
	protocolEnvOverride   = "CLUBVIEW_IMAGE_PROTOCOL"
	maxMemoryEntries      = 1024
	maxFetchTimeoutSecond = 120
)

type Config struct {
	ContentPath string        `koanf:"content_path"` // path to the site content JSON
	Site        SiteConfig    `koanf:"site"`
	Images      ImagesConfig  `koanf:"images"`
	Gallery     GalleryConfig `koanf:"gallery"`
	UI          UIConfig      `koanf:"ui"`
	Log         LogConfig     `koanf:"log"`
}

// UIConfig holds display settings.
type UIConfig struct {
	Icons string `koanf:"icons"` // "nerd", "unicode", or "none" (default)
}

// SiteConfig describes the public site the content was taken from.
type SiteConfig struct {
	URL         string `koanf:"url"`
	Name        string `koanf:"name"`
	Description string `koanf:"description"`
}

// ImagesConfig controls how gallery identifiers become pictures.
type ImagesConfig struct {
	Host             string   `koanf:"host"`
	Params           []string `koanf:"params"`                // ordered key=value pairs
	Protocol         string   `koanf:"protocol"`              // "auto", "kitty", "sixel", or "none"
	CacheTTLDays     int      `koanf:"cache_ttl_days"`        // disk cache lifetime (default: 30)
	MemoryEntries    int      `koanf:"memory_entries"`        // in-memory LRU size (default: 64)
	FetchTimeoutSecs int      `koanf:"fetch_timeout_seconds"` // per-request timeout (default: 15)
}

// GalleryConfig holds gallery display settings.
type GalleryConfig struct {
	PreviewCount int `koanf:"preview_count"` // photos shown before "View All" (default: 8)
}

// LogConfig holds log output settings.
type LogConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"` // empty means the XDG state directory
}

// Load reads the default config locations. An explicit path, when given,
// is loaded last and wins over the others.
func Load(explicit string) (*Config, error) {
	paths := getConfigPaths()
	if explicit != "" {
		paths = append(paths, expandPath(explicit))
	}
	return LoadFrom(paths...)
}

// LoadFrom reads the given TOML files in order; missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ContentPath == "" {
		c.ContentPath = DefaultContentPath
	}
	c.ContentPath = expandPath(c.ContentPath)

	if c.Site.URL == "" {
		c.Site.URL = DefaultSiteURL
	}
	c.Site.URL = strings.TrimSuffix(c.Site.URL, "/")
	if c.Site.Name == "" {
		c.Site.Name = DefaultSiteName
	}
	if c.Site.Description == "" {
		c.Site.Description = DefaultSiteDesc
	}

	if c.Images.Host == "" {
		c.Images.Host = DefaultImageHost
	}
	c.Images.Host = strings.TrimSuffix(c.Images.Host, "/")
	if c.Images.CacheTTLDays <= 0 {
		c.Images.CacheTTLDays = DefaultCacheTTLDays
	}
	if c.Images.MemoryEntries <= 0 || c.Images.MemoryEntries > maxMemoryEntries {
		c.Images.MemoryEntries = DefaultMemoryEntries
	}
	if c.Images.FetchTimeoutSecs <= 0 || c.Images.FetchTimeoutSecs > maxFetchTimeoutSecond {
		c.Images.FetchTimeoutSecs = DefaultFetchTimeout
	}

	// Environment variable takes precedence over the config file.
	if env := os.Getenv(protocolEnvOverride); env != "" {
		c.Images.Protocol = env
	}
	c.Images.Protocol = normalizeProtocol(c.Images.Protocol)

	if c.Gallery.PreviewCount <= 0 {
		c.Gallery.PreviewCount = DefaultPreviewCount
	}

	switch c.UI.Icons {
	case "nerd", "unicode":
	default:
		c.UI.Icons = "none"
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.File != "" {
		c.Log.File = expandPath(c.Log.File)
	}
}

func normalizeProtocol(p string) string {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "kitty":
		return "kitty"
	case "sixel":
		return "sixel"
	case "none", "off":
		return "none"
	default:
		return DefaultImageProtocol
	}
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/clubview/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// FetchTimeout returns the per-request image timeout.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Images.FetchTimeoutSecs) * time.Second
}

// CacheTTL returns how long fetched images stay in the disk cache.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Images.CacheTTLDays) * 24 * time.Hour
}

// ImageParams returns the configured access parameters, or nil when the
// resolver defaults should be used.
func (c *Config) ImageParams() []string {
	if c.Images.Params == nil {
		return nil
	}
	out := make([]string, len(c.Images.Params))
	copy(out, c.Images.Params)
	return out
}
