package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"witness/pkg/logging"

	"gopkg.in/yaml.v3"
)

const configFileName = "witness.yaml"

// DefaultResultCachePath is where run outcomes are cached between runs.
const DefaultResultCachePath = ".witness.result.cache"

// Default returns the built-in configuration used when no configuration
// file is present or loading is bypassed.
func Default() Config {
	return Config{
		CacheResult:     true,
		ResultCachePath: DefaultResultCachePath,
	}
}

// Load reads witness.yaml from dir, layered over the defaults. A missing
// file is not an error; the defaults are returned.
func Load(dir string) (Config, error) {
	path := filepath.Join(dir, configFileName)
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("Config", "No %s found in %s, using defaults", configFileName, dir)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	logging.Info("Config", "Loaded configuration from %s", path)
	return cfg, nil
}
