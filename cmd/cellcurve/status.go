package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/models"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/output"
)

func checkFormat() error {
	switch format {
	case "json", "csv":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (must be json or csv)", format)
	}
}

// writeRecords writes the records in the selected format to the output
// file, or to stdout when no file is set.
func writeRecords(stdout io.Writer, records []models.ProcessedRecord) error {
	w := stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if format == "csv" {
		if err := output.WriteSummaryCSV(w, records); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		return nil
	}

	data, err := output.ToJSON(records, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// printStatus prints one line per record and a final count.
func printStatus(w io.Writer, records []models.ProcessedRecord) {
	failed := 0
	for _, r := range records {
		if r.Failed() {
			failed++
			fmt.Fprintf(w, "%s %s: %s\n", mark(false), r.FileName, color.RedString(r.Error))
			continue
		}
		fmt.Fprintf(w, "%s %s: serial %s, capacity %s, %d sections\n",
			mark(true), r.FileName, bold("%s", r.SerialNumber), r.DischargeCapacity, len(r.Sections))
	}
	fmt.Fprintf(w, "%s files processed, %s failed\n",
		bold("%d", len(records)), bold("%d", failed))
}

func mark(ok bool) string {
	if ok {
		return color.New(color.Bold, color.FgGreen).Sprint("✔")
	}
	return color.New(color.Bold, color.FgRed).Sprint("✘")
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
