package cli

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seqmine/seqio"
	"github.com/katalvlaran/seqmine/sequence"
)

// FixSuffix is appended to each cleaned file name.
const FixSuffix = ".fix"

// CleanupCmd returns the cleanup command.
func CleanupCmd() *cobra.Command {
	f := &inputFlags{}

	cmd := &cobra.Command{
		Use:   "cleanup [flags] infile [infile ...]",
		Short: "Rewrite sequence databases in canonical form",
		Long: `Re-emit every input database in canonical form to <infile>.fix.

Itemsets are sorted and de-duplicated and whitespace is normalised. A file
that fails to parse is reported and skipped; the others are still written.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			var errs []error
			if cfg.Input.Numeric {
				errs = cleanupFiles(cmd.Context(), args, kindOf(cfg), seqio.IntItem, log)
			} else {
				errs = cleanupFiles(cmd.Context(), args, kindOf(cfg), seqio.StringItem, log)
			}

			out := cmd.ErrOrStderr()
			for i, path := range args {
				if errs[i] != nil {
					fmt.Fprintf(out, "%s %v\n", failMark, errs[i])
					continue
				}
				fmt.Fprintf(out, "%s %s -> %s%s\n", okMark, path, path, FixSuffix)
			}

			return errors.Join(errs...)
		},
	}

	f.bind(cmd)

	return cmd
}

// cleanupFiles canonicalizes every path concurrently. The result holds one
// error slot per path; a failure never stops the other files.
func cleanupFiles[T cmp.Ordered](ctx context.Context, paths []string, kind sequence.Kind, parse seqio.ItemParser[T], log *zap.Logger) []error {
	if ctx == nil {
		ctx = context.Background()
	}
	errs := make([]error, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			if err := cleanupFile(path, kind, parse); err != nil {
				log.Error("cleanup failed", zap.String("file", path), zap.Error(err))
				errs[i] = err
				return nil
			}
			log.Debug("cleanup written", zap.String("file", path+FixSuffix))
			return nil
		})
	}
	_ = g.Wait()

	return errs
}

func cleanupFile[T cmp.Ordered](path string, kind sequence.Kind, parse seqio.ItemParser[T]) error {
	db, err := seqio.ReadFile(path, kind, parse)
	if err != nil {
		return err
	}

	return writeTo(nil, path+FixSuffix, func(w io.Writer) error {
		return seqio.WriteDatabase(w, db)
	})
}
