// Package config provides configuration loading for seqmine.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/seqmine/mining"
	"github.com/katalvlaran/seqmine/seqio"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the complete seqmine configuration.
type Config struct {
	Mining MiningConfig `koanf:"mining"`
	Input  InputConfig  `koanf:"input"`
	Output OutputConfig `koanf:"output"`
	Log    LogConfig    `koanf:"log"`
}

// MiningConfig holds engine settings.
type MiningConfig struct {
	MinSupport      float64 `koanf:"min_support" validate:"gte=0,lte=1"` // relative, used when AbsoluteSupport is 0
	AbsoluteSupport int     `koanf:"absolute_support" validate:"gte=0"`  // sequence count; 0 means "use MinSupport"
	Strip           bool    `koanf:"strip"`
	Backend         string  `koanf:"backend"` // partition | pseudo
	LazyPruning     bool    `koanf:"lazy_pruning"`
}

// InputConfig describes how databases are read.
type InputConfig struct {
	Itemset bool `koanf:"itemset"`
	Numeric bool `koanf:"numeric"`
}

// OutputConfig selects the result encoding.
type OutputConfig struct {
	Format string `koanf:"format"` // text | yaml
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

// Support returns the configured threshold.
func (c *Config) Support() mining.Support {
	if c.Mining.AbsoluteSupport > 0 {
		return mining.Absolute(c.Mining.AbsoluteSupport)
	}

	return mining.Relative(c.Mining.MinSupport)
}

// Validate checks ranges and enumerations. Struct tags cover the static
// ranges; backend, format and level names are checked by their parsers.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Mining.AbsoluteSupport == 0 {
		if _, err := c.Support().Resolve(1); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	if _, err := mining.ParseBackend(c.Mining.Backend); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := seqio.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
