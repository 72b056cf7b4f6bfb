package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/cellcurve-go/internal/logger"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/source"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [file|dir...]",
	Short: "Extract records from local test reports",
	Long: `Extract one or more local .xlsx test reports. Directories are expanded to
the spreadsheets they directly contain.

Examples:
  cellcurve extract report.xlsx --pretty
  cellcurve extract ./reports --format csv -o summary.csv
  cellcurve extract ./reports --mode summary --concurrency 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	cfg, err := setup()
	if err != nil {
		return err
	}
	if err := checkFormat(); err != nil {
		return err
	}

	inputs, err := collectInputs(ctx, args)
	if err != nil {
		logger.Logger.WithError(err).Error("Failed to collect input files")
		return err
	}

	opts := cfg.Options()
	opts.Logger = logger.Logger

	records, err := cellcurve.ProcessBatch(ctx, inputs, opts)
	if err != nil {
		return fmt.Errorf("extraction cancelled: %w", err)
	}

	if !quiet {
		printStatus(cmd.ErrOrStderr(), records)
	}
	return writeRecords(cmd.OutOrStdout(), records)
}

// collectInputs turns file and directory arguments into batch inputs,
// keeping argument order.
func collectInputs(ctx context.Context, args []string) ([]cellcurve.Input, error) {
	var inputs []cellcurve.Input
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("file not found: %s", arg)
		}

		if !info.IsDir() {
			inputs = append(inputs, cellcurve.FileInput(arg))
			continue
		}

		local, err := source.NewLocal(arg)
		if err != nil {
			return nil, err
		}
		files, err := local.List(ctx, ".")
		if err != nil {
			return nil, err
		}
		logger.Logger.WithField("dir", arg).Debugf("Found %d spreadsheets", len(files))
		for _, f := range files {
			inputs = append(inputs, cellcurve.SourceInput(local, f))
		}
	}
	return inputs, nil
}
