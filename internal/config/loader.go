package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks environment overrides: SEQMINE_MINING_MIN_SUPPORT -> mining.min_support.
	EnvPrefix = "SEQMINE_"

	maxConfigFileSize = 1024 * 1024 // 1MB
)

// defaults is loaded first so that every later layer only overrides.
const defaults = `
mining:
  min_support: 0.25
  absolute_support: 0
  strip: false
  backend: partition
  lazy_pruning: true
input:
  itemset: false
  numeric: false
output:
  format: text
log:
  level: info
  format: console
`

// Load builds a Config.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (SEQMINE_MINING_BACKEND, SEQMINE_LOG_LEVEL, ...)
//  2. YAML config file at path (skipped when path is empty)
//  3. Built-in defaults
//
// Command-line flags are applied by the caller on top of the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider([]byte(defaults)), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
		if info.Size() > maxConfigFileSize {
			return nil, fmt.Errorf("%w: config file %s exceeds %d bytes", ErrInvalidConfig, path, maxConfigFileSize)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envKey maps SEQMINE_SECTION_FIELD_NAME to section.field_name.
// Only the first underscore after the prefix separates the section.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(lower, "_")
	if !ok {
		return lower
	}

	return section + "." + field
}
