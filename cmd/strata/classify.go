package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/strata"
	"github.com/tsawler/strata/jsonio"
	"github.com/tsawler/strata/source"
)

var (
	classifyOut         string
	classifyNoCalibrate bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify <lines.json>",
	Short: "Label every line record without assembling an outline",
	Long: `Classify each line record and emit the labeled lines as JSON.

This exposes the raw per-line decisions (Title, H1, H2, H3, BodyText,
Other) that the outline command aggregates, which is the useful view when
tuning a rule table or debugging a misclassified document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}

		recs, err := source.LoadFile(args[0])
		if err != nil {
			return err
		}
		recs = source.Normalize(recs)

		p := strata.New(strata.Config{
			Engine:        engine,
			NoCalibration: classifyNoCalibrate,
			Logger:        newLogger(),
		})
		labeled := p.Classify(recs)

		out, err := jsonio.MarshalIndent(labeled, "", "  ")
		if err != nil {
			return fmt.Errorf("encode classified lines: %w", err)
		}
		return writeOutput(classifyOut, append(out, '\n'))
	},
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyOut, "output", "o", "", "write to file instead of stdout")
	classifyCmd.Flags().BoolVar(&classifyNoCalibrate, "no-calibrate", false, "skip per-document font-size calibration")

	rootCmd.AddCommand(classifyCmd)
}
