package cli

import (
	"cmp"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/seqmine/internal/config"
	"github.com/katalvlaran/seqmine/mining"
	"github.com/katalvlaran/seqmine/prefixclosed"
	"github.com/katalvlaran/seqmine/seqio"
)

type mineFlags struct {
	inputFlags
	minSupport float64
	absolute   int
	strip      bool
	backend    string
	lazy       bool
	suffixFile string
	rina       bool
	outFile    string
	format     string
	graphFile  string
}

// MineCmd returns the mine command.
func MineCmd() *cobra.Command {
	f := &mineFlags{}

	cmd := &cobra.Command{
		Use:   "mine [flags] infile",
		Short: "Mine frequent closed sequential patterns",
		Long: `Mine frequent closed sequential patterns from a sequence database.

The result lists, for every support value in ascending order, the support
followed by the closed patterns found with it, one per line.

Examples:
  seqmine mine -m 0.5 db.txt                 # relative support
  seqmine mine --absolute 3 -i -n db.txt     # numeric itemsets, 3 sequences
  seqmine mine --suffixfile ends.txt db.txt  # patterns anchored on suffixes
  seqmine mine --format yaml -o out.yaml db.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.loadMine(cmd)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if cfg.Input.Numeric {
				return runMine(cmd, cfg, f, args[0], log, seqio.IntItem)
			}
			return runMine(cmd, cfg, f, args[0], log, seqio.StringItem)
		},
	}

	f.bind(cmd)
	cmd.Flags().Float64VarP(&f.minSupport, "min-support", "m", 0, "relative minimum support in (0,1]")
	cmd.Flags().IntVar(&f.absolute, "absolute", 0, "absolute minimum support (sequence count)")
	cmd.Flags().BoolVarP(&f.strip, "strip-sequences", "s", false, "remove infrequent items before mining")
	cmd.Flags().StringVar(&f.backend, "backend", "", "working-set backend (partition, pseudo)")
	cmd.Flags().BoolVar(&f.lazy, "lazy", true, "prune failed sequence-extension candidates")
	cmd.Flags().StringVar(&f.suffixFile, "suffixfile", "", "only report patterns ending with one of these sequences")
	cmd.Flags().BoolVar(&f.rina, "rina", false, "with --suffixfile: mine the suffix-projected database")
	cmd.Flags().StringVarP(&f.outFile, "outfile", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&f.format, "format", "", "output format (text, yaml)")
	cmd.Flags().StringVar(&f.graphFile, "graph", "", "write the search edges as a Graphviz file")

	return cmd
}

// loadMine layers the mine-specific flags over the configuration.
func (f *mineFlags) loadMine(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := f.load(cmd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("min-support") {
		cfg.Mining.MinSupport = f.minSupport
		cfg.Mining.AbsoluteSupport = 0
	}
	if flags.Changed("absolute") {
		cfg.Mining.AbsoluteSupport = f.absolute
	}
	if flags.Changed("strip-sequences") {
		cfg.Mining.Strip = f.strip
	}
	if flags.Changed("backend") {
		cfg.Mining.Backend = f.backend
	}
	if flags.Changed("lazy") {
		cfg.Mining.LazyPruning = f.lazy
	}
	if flags.Changed("format") {
		cfg.Output.Format = f.format
	}
	if f.rina && f.suffixFile == "" {
		return nil, fmt.Errorf("%w: --rina requires --suffixfile", config.ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func miningOptions(cfg *config.Config, log *zap.Logger) ([]mining.Option, error) {
	backend, err := mining.ParseBackend(cfg.Mining.Backend)
	if err != nil {
		return nil, err
	}

	return []mining.Option{
		mining.WithBackend(backend),
		mining.WithStripSequences(cfg.Mining.Strip),
		mining.WithLazyPruning(cfg.Mining.LazyPruning),
		mining.WithLogger(log.Named("mining")),
	}, nil
}

func runMine[T cmp.Ordered](cmd *cobra.Command, cfg *config.Config, f *mineFlags, infile string, log *zap.Logger, parse seqio.ItemParser[T]) error {
	kind := kindOf(cfg)

	db, err := seqio.ReadFile(infile, kind, parse)
	if err != nil {
		log.Error("failed to read database", zap.String("file", infile), zap.Error(err))
		return err
	}

	opts, err := miningOptions(cfg, log)
	if err != nil {
		return err
	}
	var edges mining.EdgeLog
	if f.graphFile != "" {
		opts = append(opts, mining.WithOnExtend(edges.Record))
	}

	var res *mining.Result[T]
	if f.suffixFile == "" {
		res, err = mining.Mine(db, cfg.Support(), opts...)
	} else {
		suffixes, serr := seqio.ReadFile(f.suffixFile, kind, parse)
		if serr != nil {
			log.Error("failed to read suffixes", zap.String("file", f.suffixFile), zap.Error(serr))
			return serr
		}
		if f.rina {
			res, err = prefixclosed.Mine(db, suffixes, cfg.Support(), opts...)
		} else {
			res, err = prefixclosed.MineRewrite(db, suffixes, cfg.Support(), opts...)
		}
	}
	if err != nil {
		return err
	}

	format, err := seqio.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	if err := writeTo(cmd.OutOrStdout(), f.outFile, func(w io.Writer) error {
		return seqio.Write(w, format, res.Frontier, res.MinSupport)
	}); err != nil {
		return err
	}
	if f.graphFile != "" {
		if err := writeTo(nil, f.graphFile, func(w io.Writer) error {
			return mining.WriteDOT(w, edges.Edges)
		}); err != nil {
			return err
		}
	}

	log.Info("mining finished",
		zap.String("file", infile),
		zap.Int("sequences", len(db)),
		zap.Int("min_support", res.MinSupport),
		zap.Int("patterns", res.Frontier.Len()),
		zap.Int("nodes", res.Nodes),
	)
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %d closed patterns at min support %d\n",
		okMark, infile, res.Frontier.Len(), res.MinSupport)

	return nil
}

// writeTo runs fn against path, or against fallback when path is empty.
func writeTo(fallback io.Writer, path string, fn func(io.Writer) error) error {
	if path == "" {
		return fn(fallback)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(file); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return file.Close()
}
