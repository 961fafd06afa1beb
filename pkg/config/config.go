// Package config loads srclint configuration by layering, in increasing
// precedence: embedded defaults, a project srclint.toml (or .srclint.toml),
// and SRCLINT_* environment variables.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/srclint/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix for environment variable overrides, e.g.
// SRCLINT_WORKERS=8 or SRCLINT_FAIL_ON_ERROR=true.
const EnvPrefix = "SRCLINT_"

// Config is the fully merged configuration for one analysis run.
type Config struct {
	Includes    string   `koanf:"includes" toml:"includes"`
	Excludes    string   `koanf:"excludes" toml:"excludes"`
	FailOnError bool     `koanf:"fail_on_error" toml:"fail_on_error"`
	Workers     int      `koanf:"workers" toml:"workers"`
	RuleSet     string   `koanf:"ruleset" toml:"ruleset"`
	Rules       []string `koanf:"rules" toml:"rules"`
	Format      string   `koanf:"format" toml:"format"`
}

// Load merges the configuration layers for a project rooted at dir.
// Both srclint.toml and .srclint.toml are recognized; the first one found
// wins and the other is ignored.
func Load(dir string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	// 2. Project config if it exists
	for _, filename := range []string{"srclint.toml", ".srclint.toml"} {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
			}
			break
		}
	}

	// 3. Environment overrides. Keys are flat, so underscores are kept:
	// SRCLINT_FAIL_ON_ERROR maps to fail_on_error.
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	return unmarshal(k)
}

// LoadBytes parses a single TOML document over the embedded defaults.
func LoadBytes(data []byte) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}
	if err := k.Load(rawbytes.Provider(data), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse configuration")
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid configuration values")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the merged values that koanf cannot.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return errors.Newf(errors.ErrConfigInvalid, "unknown report format %q (expected text, json, or yaml)", c.Format)
	}
	if c.Workers < 0 {
		return errors.Newf(errors.ErrConfigInvalid, "workers must be non-negative, got %d", c.Workers)
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := LoadBytes(nil)
	if err != nil {
		// The embedded defaults are validated by tests.
		panic(err)
	}
	return cfg
}

// DefaultTOML renders the built-in configuration as a TOML document,
// used to seed a new project config file.
func DefaultTOML() (string, error) {
	data, err := gotoml.Marshal(Default())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render default configuration")
	}
	return string(data), nil
}

// DefaultConfigContent returns the embedded defaults file verbatim,
// comments included.
func DefaultConfigContent() string {
	return string(defaultConfig)
}
