package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/strata/rules"
)

var rulesOut string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the effective rule table and thresholds as YAML",
	Long: `Print the rule table and thresholds that classification would use,
in the YAML format accepted by --rules. With no --rules flag this dumps
the built-in defaults, which is the starting point for a custom table.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}

		f := rules.File{
			Thresholds: engine.Thresholds(),
			Rules:      engine.Rules(),
		}
		out, err := yaml.Marshal(f)
		if err != nil {
			return fmt.Errorf("encode rules: %w", err)
		}
		return writeOutput(rulesOut, out)
	},
}

func init() {
	rulesCmd.Flags().StringVarP(&rulesOut, "output", "o", "", "write to file instead of stdout")

	rootCmd.AddCommand(rulesCmd)
}
