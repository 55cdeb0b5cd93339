// Package cmd implements the benchpair CLI subcommands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benchpair/benchpair/internal/logging"
)

var log logging.Logger

var quiet bool

var rootCmd = &cobra.Command{
	Use:   "benchpair",
	Short: "benchpair is a paired microbenchmark harness",
	Long: `benchpair measures the relative performance of a baseline and a
candidate function on matched inputs, interleaving measurements to detect
small, statistically significant differences under noisy wall-clock
conditions.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if quiet {
			log = logging.NewNoOp()
		} else {
			log = logging.New()
		}
	},
}

// Execute is the primary entrypoint for the benchpair CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "disable logging output")
}
