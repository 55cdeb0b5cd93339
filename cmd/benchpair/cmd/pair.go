package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/benchpair/benchpair/internal/measure"
	"github.com/benchpair/benchpair/internal/reporter"
)

var (
	pairMaxSamples  int
	pairMaxDuration time.Duration
	pairNoOutliers  bool
	pairVerbose     bool
	pairJSON        bool
	pairDumpDir     string
	pairMetricsAddr string
)

func init() {
	rootCmd.AddCommand(pairCmd)
	pairCmd.Flags().IntVar(&pairMaxSamples, "max-samples", 1_000_000, "maximum paired samples per pair")
	pairCmd.Flags().DurationVar(&pairMaxDuration, "max-duration", 100*time.Millisecond, "wall-clock budget per pair")
	pairCmd.Flags().BoolVar(&pairNoOutliers, "no-outliers", false, "disable the IQR outlier filter")
	pairCmd.Flags().BoolVarP(&pairVerbose, "verbose", "v", false, "print n/mean/variance of the baseline/candidate/diff summaries")
	pairCmd.Flags().BoolVar(&pairJSON, "json", false, "emit one JSON RunResult per line instead of text (for compare)")
	pairCmd.Flags().StringVar(&pairDumpDir, "dump-dir", "", "directory to write raw baseline_ns,candidate_ns CSV dumps to")
	pairCmd.Flags().StringVar(&pairMetricsAddr, "metrics-addr", "", "serve /metrics on this address while running (e.g. :9090)")
}

var pairCmd = &cobra.Command{
	Use:   "pair [filter]",
	Short: "Measure registered baseline/candidate pairs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := ""
		if len(args) == 1 {
			filter = args[0]
		}

		settings := measure.DefaultSettings()
		settings.MaxSamples = pairMaxSamples
		settings.MaxDuration = pairMaxDuration
		settings.OutlierDetectionEnabled = !pairNoOutliers

		suite := builtinSuite()
		if pairJSON {
			suite.AddReporter(reporter.JSON{Out: cmd.OutOrStdout()})
		} else {
			suite.AddReporter(newReporter(pairVerbose))
		}
		if pairDumpDir != "" {
			csv, err := reporter.NewCSV(pairDumpDir)
			if err != nil {
				return err
			}
			suite.AddReporter(csv)
		}
		if pairMetricsAddr != "" {
			suite.AddReporter(reporter.NewPrometheus(pairMetricsAddr))
		}

		suite.RunByName(filter, settings)
		return nil
	},
}
