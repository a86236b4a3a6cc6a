package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/strata"
	"github.com/tsawler/strata/jsonio"
	"github.com/tsawler/strata/outline"
	"github.com/tsawler/strata/source"
)

var (
	outlineFormat      string
	outlineOut         string
	outlineDedupe      bool
	outlineNoCalibrate bool
)

var outlineCmd = &cobra.Command{
	Use:   "outline <lines.json>",
	Short: "Extract the title and table of contents from line records",
	Long: `Extract a document outline from a JSON array of line records.

The records are normalized (NFC text, reading order, recomputed vertical
gaps), classified against the rule table, and the resulting headings are
assembled into a table of contents.

Examples:
  strata outline lines.json                   # JSON outline to stdout
  strata outline lines.json --format markdown # Markdown bullet list
  strata outline lines.json --dedupe -o toc.json`,
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
			NoCalibration: outlineNoCalibrate,
			Dedupe:        outlineDedupe,
			Logger:        newLogger(),
		})
		result := p.Process(recs)

		var out []byte
		switch outlineFormat {
		case "json":
			out, err = jsonio.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("encode outline: %w", err)
			}
			out = append(out, '\n')
		case "text":
			out = []byte(outline.RenderText(result))
		case "markdown":
			out = []byte(outline.RenderMarkdown(result))
		default:
			return fmt.Errorf("unknown format %q (want json, text, or markdown)", outlineFormat)
		}

		return writeOutput(outlineOut, out)
	},
}

func init() {
	outlineCmd.Flags().StringVar(&outlineFormat, "format", "json", "output format: json, text, or markdown")
	outlineCmd.Flags().StringVarP(&outlineOut, "output", "o", "", "write to file instead of stdout")
	outlineCmd.Flags().BoolVar(&outlineDedupe, "dedupe", false, "drop repeated outline entries")
	outlineCmd.Flags().BoolVar(&outlineNoCalibrate, "no-calibrate", false, "skip per-document font-size calibration")

	rootCmd.AddCommand(outlineCmd)
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
