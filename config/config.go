// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jongio/azd-which/which"
)

// DefaultFile is the config path relative to a project directory.
var DefaultFile = filepath.Join(".azd", "which.yaml")

// Config holds lookup defaults.
type Config struct {
	// Path replaces PATH when non-nil. An empty string searches nothing but the command itself.
	Path *string `yaml:"path,omitempty"`

	// PathExt is the Windows extension list.
	PathExt string `yaml:"pathExt,omitempty"`

	// Delimiter splits Path and PathExt.
	Delimiter string `yaml:"delimiter,omitempty"`

	// ExtraDirs are searched after the effective path, in order.
	ExtraDirs []string `yaml:"extraDirs,omitempty"`

	All     bool `yaml:"all,omitempty"`
	NoThrow bool `yaml:"nothrow,omitempty"`
}

// Load reads a config file. A missing file yields an empty Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is chosen by the caller
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read which config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse which config %s: %w", path, err)
	}

	// Relative extra directories are relative to the config file's project directory.
	base := filepath.Dir(filepath.Dir(path))
	if filepath.Base(filepath.Dir(path)) != ".azd" {
		base = filepath.Dir(path)
	}
	for i, d := range cfg.ExtraDirs {
		cfg.ExtraDirs[i] = expandDir(d, base)
	}
	return &cfg, nil
}

// LoadFromDir reads DefaultFile from a project directory.
func LoadFromDir(projectDir string) (*Config, error) {
	return Load(filepath.Join(projectDir, DefaultFile))
}

// expandDir resolves "~" and relative directories against base.
func expandDir(dir, base string) string {
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
		}
	}
	if dir != "" && !filepath.IsAbs(dir) {
		dir = filepath.Join(base, dir)
	}
	return dir
}

// Options converts the config into which options. getenv reads the
// environment used for PATH when ExtraDirs must be appended to it; nil means
// os.Getenv.
func (c *Config) Options(getenv func(string) string) []which.Option {
	var opts []which.Option
	if c.All {
		opts = append(opts, which.WithAll())
	}
	if c.NoThrow {
		opts = append(opts, which.WithNoThrow())
	}
	if c.PathExt != "" {
		opts = append(opts, which.WithPathExt(c.PathExt))
	}
	if c.Delimiter != "" {
		opts = append(opts, which.WithDelimiter(c.Delimiter))
	}

	if c.Path == nil && len(c.ExtraDirs) == 0 {
		return opts
	}

	if getenv == nil {
		getenv = os.Getenv
	}
	path := getenv(which.EnvPath)
	if c.Path != nil {
		path = *c.Path
	}
	if len(c.ExtraDirs) > 0 {
		delimiter := c.Delimiter
		if delimiter == "" {
			delimiter = string(os.PathListSeparator)
		}
		parts := append([]string{path}, c.ExtraDirs...)
		if path == "" {
			parts = c.ExtraDirs
		}
		path = strings.Join(parts, delimiter)
	}
	return append(opts, which.WithPath(path))
}
