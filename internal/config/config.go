package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"reel/internal/catalog"
)

var ErrInvalidConfig = errors.New("invalid config")

type Catalog struct {
	Path    string `toml:"path"`
	Backend string `toml:"backend"`
}

type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type Report struct {
	Dir string `toml:"dir"`
}

type Config struct {
	Catalog Catalog `toml:"catalog"`
	Logging Logging `toml:"logging"`
	Report  Report  `toml:"report"`
}

func Default() Config {
	return Config{
		Catalog: Catalog{
			Path:    DefaultCatalogPath(),
			Backend: string(catalog.BackendAuto),
		},
		Logging: Logging{
			Level:  "warn",
			Format: "console",
		},
		Report: Report{
			Dir: ".",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error; the
// second return reports whether the file existed.
func Load(path string) (*Config, bool, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	exists := err == nil
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, false, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, true, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, exists, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, exists, err
	}
	return &cfg, exists, nil
}

func (c *Config) normalize() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Catalog.Backend = strings.ToLower(strings.TrimSpace(c.Catalog.Backend))

	if strings.TrimSpace(c.Catalog.Path) == "" {
		c.Catalog.Path = DefaultCatalogPath()
	}
	path, err := ExpandPath(c.Catalog.Path)
	if err != nil {
		return fmt.Errorf("catalog path: %w", err)
	}
	c.Catalog.Path = path

	if strings.TrimSpace(c.Report.Dir) == "" {
		c.Report.Dir = "."
	}
	dir, err := ExpandPath(c.Report.Dir)
	if err != nil {
		return fmt.Errorf("report dir: %w", err)
	}
	c.Report.Dir = dir
	return nil
}

func (c *Config) Validate() error {
	if _, err := catalog.ParseBackendKind(c.Catalog.Backend); err != nil {
		return fmt.Errorf("%w: catalog.backend: %v", ErrInvalidConfig, err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalidConfig, c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level must be debug, info, warn or error, got %q", ErrInvalidConfig, c.Logging.Level)
	}
	return nil
}

func (c *Config) BackendKind() catalog.BackendKind {
	kind, _ := catalog.ParseBackendKind(c.Catalog.Backend)
	return kind
}
