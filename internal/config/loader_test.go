package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqmine/internal/config"
	"github.com/katalvlaran/seqmine/mining"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seqmine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 0.25, cfg.Mining.MinSupport)
	assert.Zero(t, cfg.Mining.AbsoluteSupport)
	assert.False(t, cfg.Mining.Strip)
	assert.Equal(t, "partition", cfg.Mining.Backend)
	assert.True(t, cfg.Mining.LazyPruning)
	assert.False(t, cfg.Input.Itemset)
	assert.False(t, cfg.Input.Numeric)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, mining.Relative(0.25), cfg.Support())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
mining:
  absolute_support: 3
  backend: pseudo
  lazy_pruning: false
input:
  itemset: true
output:
  format: yaml
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "pseudo", cfg.Mining.Backend)
	assert.False(t, cfg.Mining.LazyPruning)
	assert.True(t, cfg.Input.Itemset)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, mining.Absolute(3), cfg.Support())
	assert.Equal(t, 0.25, cfg.Mining.MinSupport, "untouched keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "mining:\n  min_support: 0.4\nlog:\n  level: warn\n")
	t.Setenv("SEQMINE_MINING_MIN_SUPPORT", "0.6")
	t.Setenv("SEQMINE_LOG_FORMAT", "json")
	t.Setenv("SEQMINE_MINING_LAZY_PRUNING", "false")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.6, cfg.Mining.MinSupport)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Mining.LazyPruning)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"support above one": "mining:\n  min_support: 1.5\n",
		"negative absolute": "mining:\n  absolute_support: -1\n",
		"unknown backend":   "mining:\n  backend: bitmap\n",
		"unknown format":    "output:\n  format: xml\n",
		"bad level":         "log:\n  level: loud\n",
		"bad log format":    "log:\n  format: logfmt\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, body))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := config.Load(writeConfig(t, "mining: [unclosed\n"))
	assert.Error(t, err)
}
