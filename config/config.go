package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ftahirops/gridmix/logger"
	"github.com/ftahirops/gridmix/model"
)

// EnvPrefix prefixes environment overrides; "__" separates nesting levels,
// e.g. GRIDMIX_API__URL sets api.url.
const EnvPrefix = "GRIDMIX_"

// Config holds user-configurable defaults and integrations.
type Config struct {
	API     APIConfig     `koanf:"api"`
	UI      UIConfig      `koanf:"ui"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// APIConfig locates the analytics service.
type APIConfig struct {
	// URL overrides the derived base URL when set.
	URL     string        `koanf:"url"`
	Scheme  string        `koanf:"scheme"`
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

type UIConfig struct {
	DefaultDuration int    `koanf:"default_duration"`
	Timezone        string `koanf:"timezone"`
	Mouse           bool   `koanf:"mouse"`
}

type LogConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

type MetricsConfig struct {
	// Addr serves Prometheus metrics when non-empty, e.g. "127.0.0.1:9108".
	Addr string `koanf:"addr"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() map[string]any {
	return map[string]any{
		"api.url":             "",
		"api.scheme":          "https",
		"api.host":            "localhost",
		"api.port":            7250,
		"api.timeout":         "10s",
		"ui.default_duration": model.DefaultChargingHours,
		"ui.timezone":         "Local",
		"ui.mouse":            true,
		"log.level":           "info",
		"log.file":            "",
		"metrics.addr":        "",
	}
}

// Path returns ~/.config/gridmix/config.yaml (or under XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "gridmix", "config.yaml")
}

// Load layers defaults, the YAML file at path, GRIDMIX_ environment
// variables and finally overrides (dotted keys, typically from CLI flags).
// A missing file is only an error when required is set.
func Load(path string, required bool, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if required || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.API.URL == "" {
		if c.API.Host == "" {
			return fmt.Errorf("api.host is required when api.url is not set")
		}
		if c.API.Port < 1 || c.API.Port > 65535 {
			return fmt.Errorf("api.port %d out of range", c.API.Port)
		}
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	if d := c.UI.DefaultDuration; d < model.MinChargingHours || d > model.MaxChargingHours {
		return fmt.Errorf("ui.default_duration %d outside [%d,%d]", d, model.MinChargingHours, model.MaxChargingHours)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// BaseURL resolves the API root: the explicit override when set, otherwise
// scheme://host:port/api.
func (c Config) BaseURL() string {
	if u := strings.TrimSpace(c.API.URL); u != "" {
		return strings.TrimRight(u, "/")
	}
	scheme := c.API.Scheme
	if scheme == "" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/api", scheme, net.JoinHostPort(c.API.Host, strconv.Itoa(c.API.Port)))
}

// Location returns the zone used to display window times.
func (c Config) Location() (*time.Location, error) {
	if c.UI.Timezone == "" || c.UI.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.UI.Timezone)
	if err != nil {
		return nil, fmt.Errorf("ui.timezone: %w", err)
	}
	return loc, nil
}
