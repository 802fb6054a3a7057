// Package config loads viewer settings from TOML configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName        = "oeuvre"
	configFileName = "config.toml"

	// defaultTimeoutSeconds bounds every museum API call. One attempt per
	// call, no retries, so the bound is generous.
	defaultTimeoutSeconds = 15
)

type Config struct {
	APIURL  string `koanf:"api_url"`  // museum API base URL (empty = artic.edu)
	IIIFURL string `koanf:"iiif_url"` // IIIF image server base URL (empty = artic.edu)

	TimeoutSeconds int `koanf:"timeout_seconds"` // per-request HTTP timeout

	Fill bool `koanf:"fill"` // paint cell backgrounds, not just glyphs

	// Converter is the path of an external jp2a-compatible binary. Empty
	// means the built-in converter.
	Converter string `koanf:"converter"`

	// ImageWidth caps the source pixel dimensions fed to the built-in
	// converter. Zero keeps the converter's own default.
	ImageWidth int `koanf:"image_width"`

	UserAgent string `koanf:"user_agent"` // overrides the default API User-Agent
}

// Load reads configuration from the default locations. Files are tried in
// priority order, last wins; a missing file is not an error.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	return unmarshal(k)
}

// LoadFile reads configuration from one explicit file. Unlike Load, the
// file must exist: the caller asked for it by name.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Normalize URLs (remove trailing slash)
	cfg.APIURL = strings.TrimSuffix(cfg.APIURL, "/")
	cfg.IIIFURL = strings.TrimSuffix(cfg.IIIFURL, "/")

	// Expand ~ in converter path
	if cfg.Converter != "" {
		cfg.Converter = expandPath(cfg.Converter)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/oeuvre/config.toml
		filepath.Join(xdg.ConfigHome, appName, configFileName),
		// 2. ./config.toml (pwd, highest priority)
		configFileName,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Timeout returns the HTTP timeout with the default applied.
func (c *Config) Timeout() time.Duration {
	seconds := c.TimeoutSeconds
	if seconds <= 0 {
		seconds = defaultTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}
