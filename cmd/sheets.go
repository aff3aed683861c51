package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"data-gate/internal/source"
)

var sheetsRules string

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "List the sheets of a rules workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := source.NewLoader(GetInputOptions(), nil, *Logger)
		if err != nil {
			return fmt.Errorf("invalid input options: %w", err)
		}
		sheets, err := loader.RuleSheets(sheetsRules)
		if err != nil {
			return err
		}
		for i, s := range sheets {
			fmt.Fprintf(cmd.OutOrStdout(), "[%02d] %s\n", i+1, s)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sheetsCmd)

	sheetsCmd.Flags().StringVarP(&sheetsRules, "rules", "r", "", "rules workbook (xlsx) or rule sheet (csv)")
	sheetsCmd.MarkFlagRequired("rules")
}
