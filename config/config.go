// Package config holds the static configuration of a transform run: the
// ordered CURIE prefix maps, the ontology-class→category-label table, and
// logging. Configuration is loaded once at process start and passed by
// reference into the components that need it; nothing mutates it
// afterwards.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/obangraph/vocabulary"
)

// Config is the root configuration.
type Config struct {
	// Prefixes is the ordered list of prefix→namespace maps used for
	// CURIE contraction and expansion. Order is semantic: earlier maps
	// win. A non-empty list in a config file replaces the default list
	// wholesale rather than merging into it.
	Prefixes []map[string]string `yaml:"prefixes"`

	// CategoryLabels maps ontology class IRIs to category labels. File
	// entries merge over the defaults.
	CategoryLabels map[string]string `yaml:"category_labels"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Prefixes:       vocabulary.DefaultPrefixMaps(),
		CategoryLabels: vocabulary.DefaultCategoryLabels(),
		Log:            LogConfig{Level: "info"},
	}
}

// LoadFromFile reads a YAML config file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Merge overlays other onto c: a non-empty prefix list replaces, category
// labels merge, a non-empty log level overrides.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if len(other.Prefixes) > 0 {
		c.Prefixes = other.Prefixes
	}
	for iri, label := range other.CategoryLabels {
		c.CategoryLabels[iri] = label
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}

// Validate checks structural invariants of the final configuration.
func (c *Config) Validate() error {
	if len(c.Prefixes) == 0 {
		return fmt.Errorf("config: at least one prefix map is required")
	}
	for i, pm := range c.Prefixes {
		if len(pm) == 0 {
			return fmt.Errorf("config: prefix map %d is empty", i)
		}
		for prefix, ns := range pm {
			if prefix == "" || ns == "" {
				return fmt.Errorf("config: prefix map %d has an empty entry", i)
			}
			if !strings.Contains(ns, ":") {
				return fmt.Errorf("config: namespace %q for prefix %q is not absolute", ns, prefix)
			}
		}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return nil
}
