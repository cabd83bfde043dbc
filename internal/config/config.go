// Package config loads the optional user configuration file that sets
// defaults for the match commands.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"dyematch/internal/colour"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/dyematch"
	configFileName = "config.yaml"
)

// Config holds user-tunable defaults. Flags override these values,
// which in turn override the built-in defaults.
type Config struct {
	// Method is the default distance method key (e.g. "ciede2000").
	Method string `yaml:"method,omitempty"`

	// MaxResults is the default result cap for match searches.
	MaxResults int `yaml:"max_results,omitempty"`

	// MaxDistance is the default distance ceiling; 0 disables it.
	MaxDistance float64 `yaml:"max_distance,omitempty"`

	// Catalog points at a custom dye catalog JSON file. Empty means the
	// bundled catalog.
	Catalog string `yaml:"catalog,omitempty"`

	// Weights tune the oklch-weighted method.
	Weights colour.Weights `yaml:"weights,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Method:     colour.MethodCIEDE2000.String(),
		MaxResults: 5,
		Weights:    colour.DefaultWeights(),
	}
}

// Load reads the configuration from path, or from
// ~/.config/dyematch/config.yaml when path is empty. A missing file is
// not an error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		userPath, err := getUserConfigPath()
		if err != nil {
			// User config is optional; fall back to defaults.
			return cfg, nil
		}
		path = userPath
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return cfg, nil
		}
	}

	overlay, err := loadFromFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return merge(cfg, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

func loadFromFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// merge overlays the file values onto the defaults. Zero values in the
// overlay leave the base untouched.
func merge(base, overlay Config) Config {
	merged := base
	if overlay.Method != "" {
		merged.Method = overlay.Method
	}
	if overlay.MaxResults != 0 {
		merged.MaxResults = overlay.MaxResults
	}
	if overlay.MaxDistance != 0 {
		merged.MaxDistance = overlay.MaxDistance
	}
	if overlay.Catalog != "" {
		merged.Catalog = overlay.Catalog
	}
	if overlay.Weights != (colour.Weights{}) {
		merged.Weights = overlay.Weights
	}
	return merged
}

// Validate checks that the configured method and numeric defaults are
// usable before any command relies on them.
func (c Config) Validate() error {
	if _, err := colour.ParseMethod(c.Method); err != nil {
		return err
	}
	if c.MaxResults < 0 {
		return fmt.Errorf("%w: max_results %d", colour.ErrInvalidRange, c.MaxResults)
	}
	if c.MaxDistance < 0 {
		return fmt.Errorf("%w: max_distance %v", colour.ErrInvalidRange, c.MaxDistance)
	}
	return nil
}
