package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchpair/benchpair/internal/result"
)

func init() {
	rootCmd.AddCommand(calibrateCmd)
}

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Run the H0/H1 calibration suite against registered pairs",
	Long: `calibrate repeats each registered pair's measurement TRIES times under
fixed settings, once comparing each function against itself (H0, the
false-positive rate) and once comparing baseline against candidate (H1,
the true-positive rate).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		suite := builtinSuite()
		reports := suite.RunCalibration()

		fmt.Println("H0 testing...")
		for _, r := range reports {
			baselineName, candidateName := splitPairName(r.Name)
			fmt.Printf("  %-20s %d/%d\n", baselineName, result.Tries-r.H0BaselineSignificant, result.Tries)
			fmt.Printf("  %-20s %d/%d\n", candidateName, result.Tries-r.H0CandidateSignificant, result.Tries)
		}

		fmt.Println("H1 testing...")
		for _, r := range reports {
			baselineName, candidateName := splitPairName(r.Name)
			fmt.Printf("  %s / %-20s %d/%d\n", baselineName, candidateName, r.H1Significant, result.Tries)
		}

		return nil
	},
}

func splitPairName(key string) (baseline, candidate string) {
	for i := 0; i < len(key); i++ {
		if key[i] == '-' {
			return key[:i], key[i+1:]
		}
	}
	return key, key
}
