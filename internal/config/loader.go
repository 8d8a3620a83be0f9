// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader resolves the effective configuration from defaults, an optional
// YAML file and the environment, in that order.
type Loader struct {
	path string
}

// NewLoader returns a loader for the given config file path. An empty path
// skips the file layer.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load resolves and validates the configuration.
func (l *Loader) Load() (Config, error) {
	cfg := Defaults()

	if l.path != "" {
		data, err := os.ReadFile(l.path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// missing file is fine, env and defaults still apply
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", l.path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", l.path, err)
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
