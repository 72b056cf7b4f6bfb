package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/api/option"

	"github.com/ukaji3/cellcurve-go/internal/config"
	"github.com/ukaji3/cellcurve-go/internal/logger"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/source"
)

// driveCmd represents the drive command
var driveCmd = &cobra.Command{
	Use:   "drive [folder]",
	Short: "Extract records from a Google Drive folder",
	Long: `Extract every .xlsx test report in a Google Drive folder. The folder is
either a folder link or a folder name looked up below the configured root
path ("# #Test reports/Cells/Prismatic" by default).

Examples:
  cellcurve drive "Batch 12" --api-key $GOOGLE_DRIVE_API_KEY
  cellcurve drive https://drive.google.com/drive/folders/<id> --format csv`,
	Args: cobra.ExactArgs(1),
	RunE: runDrive,
}

func runDrive(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	cfg, err := setup()
	if err != nil {
		return err
	}
	if err := checkFormat(); err != nil {
		return err
	}

	key := apiKey
	if key == "" {
		key = cfg.DriveAPIKey()
	}
	src, err := newDrive(ctx, cfg, key)
	if err != nil {
		return fmt.Errorf("failed to create drive source: %w", err)
	}

	opts := cfg.Options()
	opts.Logger = logger.Logger

	logger.Logger.WithField("folder", args[0]).Info("Processing Drive folder")
	records, err := cellcurve.ProcessSource(ctx, src, args[0], opts)
	if err != nil {
		logger.Logger.WithError(err).Error("Failed to process Drive folder")
		return fmt.Errorf("failed to process folder: %w", err)
	}

	if !quiet {
		printStatus(cmd.ErrOrStderr(), records)
	}
	return writeRecords(cmd.OutOrStdout(), records)
}

// newDrive creates the Drive source described by cfg.
func newDrive(ctx context.Context, cfg *config.Config, key string) (*source.Drive, error) {
	var opts []option.ClientOption
	if cfg.Drive.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Drive.Endpoint))
	}
	return source.NewDrive(ctx, key, cfg.Drive.RootPath, opts...)
}
