package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/benchpair/benchpair/internal/measure"
	"github.com/benchpair/benchpair/internal/result"
)

func init() {
	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:   "compare <binary> [filter]",
	Short: "Compare this binary's pairs against another benchpair binary's build",
	Long: `compare runs the pairs this binary and a second benchpair binary both
register, then reports how their candidate/baseline ratios differ across
builds. It never loads the other binary as a library: it execs "<binary>
list --json" to discover shared pair names and "<binary> pair --json
<name>" to collect its RunResults, the same way two independently built
benchmark binaries would be compared in CI.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		otherBinary := args[0]
		filter := ""
		if len(args) == 2 {
			filter = args[1]
		}

		otherNames, err := execJSONLines[string](otherBinary, "list", "--json")
		if err != nil {
			return fmt.Errorf("listing %s: %w", otherBinary, err)
		}
		otherSet := make(map[string]bool, len(otherNames))
		for _, n := range otherNames {
			otherSet[n] = true
		}

		suite := builtinSuite()
		localResults := &collector{}
		suite.AddReporter(localResults)
		suite.RunByName(filter, measure.DefaultSettings())

		otherResults, err := execJSONLines[result.RunResult](otherBinary, "pair", "--json", filter)
		if err != nil {
			return fmt.Errorf("running pair on %s: %w", otherBinary, err)
		}
		otherByName := make(map[string]result.RunResult, len(otherResults))
		for _, r := range otherResults {
			otherByName[r.Name] = r
		}

		for _, local := range localResults.results {
			if !otherSet[local.Name] {
				continue
			}
			other, ok := otherByName[local.Name]
			if !ok {
				continue
			}
			shift := 0.0
			if other.Diff.Mean != 0 {
				shift = 100 * (local.Diff.Mean - other.Diff.Mean) / other.Diff.Mean
			}
			fmt.Printf("  %-30s local %+8.2f%%  other %+8.2f%%  shift %+7.2f%%\n",
				local.Name, relDiff(local), relDiff(other), shift)
		}

		return nil
	},
}

func relDiff(r result.RunResult) float64 {
	if r.Candidate.Mean == 0 {
		return 0
	}
	return 100 * r.Diff.Mean / r.Candidate.Mean
}

// collector is an in-process reporter.Reporter that retains every RunResult
// it is given, used by compare to gather this binary's own results without
// shelling out to itself.
type collector struct {
	results []result.RunResult
}

func (c *collector) OnStart(generatorName string) {}

func (c *collector) OnComplete(run *result.RunResult) {
	c.results = append(c.results, *run)
}

// execJSONLines runs name with args and decodes its stdout as
// newline-delimited JSON values of type T.
func execJSONLines[T any](name string, args ...string) ([]T, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s", err, stderr.String())
	}

	var out []T
	scanner := bufio.NewScanner(&stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var v T
		if err := json.Unmarshal(line, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, scanner.Err()
}
