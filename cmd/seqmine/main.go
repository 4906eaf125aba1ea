package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqmine/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seqmine",
		Short: "seqmine - frequent closed sequential pattern mining",
		Long: `seqmine mines frequent closed sequential patterns from databases of
item or itemset sequences, and ships helpers to generate and clean such
databases.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.MineCmd())
	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.CleanupCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
