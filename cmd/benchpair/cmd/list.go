package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listJSON bool

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "emit one JSON string per line instead of plain text")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered baseline/candidate pairs",
	RunE: func(cmd *cobra.Command, args []string) error {
		suite := builtinSuite()
		enc := json.NewEncoder(cmd.OutOrStdout())
		for _, name := range suite.ListFunctions() {
			if listJSON {
				if err := enc.Encode(name); err != nil {
					return err
				}
				continue
			}
			fmt.Println(name)
		}
		return nil
	},
}
