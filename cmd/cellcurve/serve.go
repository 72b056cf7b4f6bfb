package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ukaji3/cellcurve-go/internal/logger"
	"github.com/ukaji3/cellcurve-go/internal/server"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/source"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the extraction HTTP API",
	Long: `Serve the HTTP API used by the web front end:

  GET  /api/health
  POST /api/process                 multipart "files", ?format=csv for a summary
  POST /api/drive/list              {"folderInput": "..."}
  GET  /api/drive/download/:fileId
  POST /api/drive/process           {"folderInput": "..."}

The Drive API key is read from the environment variable named by
drive.api_key_env (GOOGLE_DRIVE_API_KEY by default).`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := cfg.Options()
	drive := func(ctx context.Context) (source.Source, error) {
		return newDrive(ctx, cfg, cfg.DriveAPIKey())
	}

	return server.New(opts, drive, logger.Logger).Run(ctx, cfg.Server.Addr)
}
