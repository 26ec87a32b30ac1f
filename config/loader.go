package config

import (
	"log/slog"
	"os"
)

// DefaultConfigFile is the config filename looked for in the working
// directory when no path is given.
const DefaultConfigFile = "obangraph.yaml"

// Loader loads configuration with layered precedence: defaults, then an
// optional file overlay.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load builds the final configuration. path may be empty, in which case
// DefaultConfigFile is used if present and silently skipped otherwise; a
// path given explicitly must exist.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	fileCfg, err := LoadFromFile(path)
	switch {
	case err == nil:
		l.logger.Debug("loaded config file", slog.String("path", path))
		cfg.Merge(fileCfg)
	case os.IsNotExist(err) && !explicit:
		l.logger.Debug("no config file, using defaults")
	default:
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Level returns the slog level for the configured name.
func (c *Config) Level() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
