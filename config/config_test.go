package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.NotEmpty(t, cfg.Prefixes)
	assert.NotEmpty(t, cfg.CategoryLabels)
}

func TestMergeSemantics(t *testing.T) {
	cfg := DefaultConfig()
	defaultLabelCount := len(cfg.CategoryLabels)

	cfg.Merge(&Config{
		Prefixes: []map[string]string{
			{"EX": "http://example.org/ns/"},
		},
		CategoryLabels: map[string]string{
			"http://example.org/ns/Widget": "widget",
		},
		Log: LogConfig{Level: "debug"},
	})

	// Prefix lists replace (order is semantic); labels merge.
	require.Len(t, cfg.Prefixes, 1)
	assert.Equal(t, "http://example.org/ns/", cfg.Prefixes[0]["EX"])
	assert.Len(t, cfg.CategoryLabels, defaultLabelCount+1)
	assert.Equal(t, "widget", cfg.CategoryLabels["http://example.org/ns/Widget"])
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Prefixes = nil
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Prefixes = append(cfg.Prefixes, map[string]string{"EX": "not-a-namespace"})
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Log.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestLoaderOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "obangraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644))

	cfg, err := NewLoader(nil).Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	// Untouched sections keep their defaults.
	assert.NotEmpty(t, cfg.Prefixes)
}

func TestLoaderExplicitMissingFileFails(t *testing.T) {
	_, err := NewLoader(nil).Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
