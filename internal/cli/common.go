// Package cli implements the seqmine command tree.
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/seqmine/internal/config"
	"github.com/katalvlaran/seqmine/internal/logging"
	"github.com/katalvlaran/seqmine/sequence"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
)

// inputFlags are shared by every command that reads sequence files.
type inputFlags struct {
	configPath string
	itemset    bool
	numeric    bool
	logLevel   string
}

func (f *inputFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "YAML configuration file")
	cmd.Flags().BoolVarP(&f.itemset, "itemset", "i", false, "treat sequence positions as itemsets")
	cmd.Flags().BoolVarP(&f.numeric, "numeric", "n", false, "parse items as integers")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// load reads the configuration and applies explicitly set flags on top.
func (f *inputFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("itemset") {
		cfg.Input.Itemset = f.itemset
	}
	if flags.Changed("numeric") {
		cfg.Input.Numeric = f.numeric
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}

	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Log)
}

func kindOf(cfg *config.Config) sequence.Kind {
	if cfg.Input.Itemset {
		return sequence.Itemsets
	}

	return sequence.Items
}
