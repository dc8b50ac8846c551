package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/montage/internal/catalog"
)

const (
	defaultThumbWidth  = 24
	defaultThumbHeight = 10
	maxThumbWidth      = 80
	maxThumbHeight     = 40
)

type Config struct {
	CatalogDir string       `koanf:"catalog_dir"` // folder scanned for images
	Images     []ImageEntry `koanf:"images"`      // explicit catalog entries

	StatePath  string `koanf:"state_path"`  // sqlite file; empty means XDG data dir
	StorageKey string `koanf:"storage_key"` // key holding the selection; empty means default

	LogFile  string `koanf:"log_file"`  // empty means XDG state dir
	LogLevel string `koanf:"log_level"` // "debug", "info", "warn", "error" (default: "info")

	Thumbnails ThumbnailConfig `koanf:"thumbnails"`
}

// ImageEntry is one [[images]] table.
type ImageEntry struct {
	ID    int    `koanf:"id"`
	Image string `koanf:"image"`
}

// ThumbnailConfig controls the catalog preview.
type ThumbnailConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
	Width   int   `koanf:"width"`   // cells (default: 24)
	Height  int   `koanf:"height"`  // cells (default: 10)
	Cache   *bool `koanf:"cache"`   // keep resized thumbnails on disk (default: true)
}

// Load reads the layered config files. explicit, when set, is loaded last and must exist.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if explicit != "" {
		path := expandPath(explicit)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.CatalogDir = expandPath(cfg.CatalogDir)
	cfg.StatePath = expandPath(cfg.StatePath)
	cfg.LogFile = expandPath(cfg.LogFile)
	for i := range cfg.Images {
		cfg.Images[i].Image = expandPath(cfg.Images[i].Image)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/montage/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "montage", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
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

// CatalogItems converts the configured [[images]] entries.
func (c *Config) CatalogItems() []catalog.Item {
	items := make([]catalog.Item, 0, len(c.Images))
	for _, e := range c.Images {
		items = append(items, catalog.Item{ID: e.ID, Image: e.Image})
	}
	return items
}

// HasCatalog returns true if any image source is configured.
func (c *Config) HasCatalog() bool {
	return c.CatalogDir != "" || len(c.Images) > 0
}

// GetThumbnailConfig returns the thumbnail configuration with defaults applied.
func (c *Config) GetThumbnailConfig() ThumbnailConfig {
	cfg := c.Thumbnails

	if cfg.Enabled == nil {
		enabled := true
		cfg.Enabled = &enabled
	}
	if cfg.Cache == nil {
		cache := true
		cfg.Cache = &cache
	}
	if cfg.Width <= 0 || cfg.Width > maxThumbWidth {
		cfg.Width = defaultThumbWidth
	}
	if cfg.Height <= 0 || cfg.Height > maxThumbHeight {
		cfg.Height = defaultThumbHeight
	}

	return cfg
}

// ThumbnailsEnabled reports whether previews are drawn.
func (c *Config) ThumbnailsEnabled() bool {
	return *c.GetThumbnailConfig().Enabled
}
