package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ResultCache persists the outcome of every test from the previous run.
// Consumers can use it to order defects first on the next run.
type ResultCache struct {
	Outcomes map[string]string `yaml:"outcomes"`
}

// NewResultCache returns an empty cache.
func NewResultCache() *ResultCache {
	return &ResultCache{Outcomes: make(map[string]string)}
}

// LoadResultCache reads a cache file. A missing file yields an empty
// cache, not an error.
func LoadResultCache(path string) (*ResultCache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewResultCache(), nil
		}
		return nil, fmt.Errorf("reading result cache %s: %w", path, err)
	}
	cache := NewResultCache()
	if err := yaml.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("parsing result cache %s: %w", path, err)
	}
	if cache.Outcomes == nil {
		cache.Outcomes = make(map[string]string)
	}
	return cache, nil
}

// Record stores the outcome for a test.
func (c *ResultCache) Record(test, outcome string) {
	c.Outcomes[test] = outcome
}

// Save writes the cache to path.
func (c *ResultCache) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding result cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing result cache %s: %w", path, err)
	}
	return nil
}
