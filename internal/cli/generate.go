package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqmine/generator"
	"github.com/katalvlaran/seqmine/seqio"
	"github.com/katalvlaran/seqmine/sequence"
)

// GenerateCmd returns the generate command.
func GenerateCmd() *cobra.Command {
	var (
		sequences, minLen, maxLen int
		symbols, minSet, maxSet   int
		itemset                   bool
		seed                      int64
		output                    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate sequences with a uniform symbol distribution",
		Long: `Generate a random sequence database with a uniform symbol distribution.

Examples:
  seqmine generate > db.txt
  seqmine generate --itemset --num-symbols 20 --seed 7 -o db.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if minLen < 0 || maxLen < minLen {
				return fmt.Errorf("%w: sequence length range [%d, %d]", generator.ErrBadSize, minLen, maxLen)
			}
			if sequences < 0 || symbols < 1 {
				return fmt.Errorf("%w: %d sequences over %d symbols", generator.ErrBadSize, sequences, symbols)
			}
			if itemset && (minSet < 1 || maxSet < minSet) {
				return fmt.Errorf("%w: set size range [%d, %d]", generator.ErrBadSize, minSet, maxSet)
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			opts := []generator.Option{
				generator.WithSeed(seed),
				generator.WithSequences(sequences),
				generator.WithLength(minLen, maxLen),
				generator.WithSymbols(symbols),
			}

			var (
				db  []sequence.Sequence[int]
				err error
			)
			if itemset {
				db, err = generator.Itemsets(append(opts, generator.WithSetSize(minSet, maxSet))...)
			} else {
				db, err = generator.Items(opts...)
			}
			if err != nil {
				return err
			}

			return writeTo(cmd.OutOrStdout(), output, func(w io.Writer) error {
				return seqio.WriteDatabase(w, db)
			})
		},
	}

	cmd.Flags().IntVar(&sequences, "num-sequences", 100, "number of sequences")
	cmd.Flags().IntVar(&minLen, "min-seq-len", 10, "minimum sequence length")
	cmd.Flags().IntVar(&maxLen, "max-seq-len", 20, "maximum sequence length")
	cmd.Flags().IntVar(&symbols, "num-symbols", 10, "number of unique symbols")
	cmd.Flags().BoolVar(&itemset, "itemset", false, "generate sequences of itemsets")
	cmd.Flags().IntVar(&minSet, "min-set-size", 3, "minimum itemset size")
	cmd.Flags().IntVar(&maxSet, "max-set-size", 7, "maximum itemset size")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: time based)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
