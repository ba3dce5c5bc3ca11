// Package config loads the wizard's settings: defaults first, then an
// optional YAML file, then MATFORGE_* environment overrides.
package config

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileName is looked up in the user's home directory when no explicit
// path is given.
const FileName = ".matforge.yaml"

// Logging holds the log settings.
type Logging struct {
	Level string `yaml:"level" env:"LOG_LEVEL" default:"info"`
}

// Config is the wizard's runtime configuration.
type Config struct {
	// OutputDir is where generated tool projects land.
	OutputDir string `yaml:"output_dir" env:"OUTPUT_DIR" default:"./generated_tools"`
	// TemplateDir overrides the embedded template bundle when set.
	TemplateDir string `yaml:"template_dir" env:"TEMPLATE_DIR"`
	// ReservedWords extends the built-in MATLAB keyword table.
	ReservedWords []string `yaml:"reserved_words" env:"RESERVED_WORDS" envSeparator:","`
	Logging       Logging  `yaml:"logging"`
}

// Validate implements the usual config contract.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	for _, w := range c.ReservedWords {
		if w == "" {
			return errors.New("reserved_words must not contain empty entries")
		}
	}
	return nil
}

// Load builds a Config from path. An empty path means the file in the
// user's home directory; a missing file is fine, everything then comes
// from defaults and environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "applying defaults")
	}

	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, FileName)
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// no config file, keep defaults
		case err != nil:
			return nil, errors.Wrapf(err, "reading config %s", path)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parsing config %s", path)
			}
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "MATFORGE_"}); err != nil {
		return nil, errors.Wrap(err, "reading environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}
