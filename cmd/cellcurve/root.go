package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/cellcurve-go/internal/config"
	"github.com/ukaji3/cellcurve-go/internal/logger"
)

var (
	// Version information
	Version = "0.1.0"

	// CLI flags
	outputPath  string
	format      string
	pretty      bool
	mode        string
	concurrency int
	configFile  string
	verbose     bool
	quiet       bool
	apiKey      string
	addr        string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "cellcurve",
	Short:   "Battery test-report extraction",
	Version: Version,
	Long: `cellcurve reads battery cycler test reports (.xlsx) and extracts the cell
serial number, the discharge capacity and the capacity curve of every test
phase (charge, discharge, rest).

Results are written as JSON records or as a CSV summary.`,
}

func init() {
	RootCmd.AddCommand(extractCmd, driveCmd, serveCmd)

	for _, cmd := range []*cobra.Command{extractCmd, driveCmd, serveCmd} {
		cmd.Flags().StringVarP(&configFile, "config", "c", "", "Configuration file path")
		cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
		cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
		cmd.Flags().StringVar(&mode, "mode", "", "Extraction mode: summary or full (default from config: full)")
		cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Maximum number of files processed in parallel")
	}
	for _, cmd := range []*cobra.Command{extractCmd, driveCmd} {
		cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
		cmd.Flags().StringVar(&format, "format", "json", "Output format: json or csv")
		cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	}
	driveCmd.Flags().StringVar(&apiKey, "api-key", "", "Google Drive API key (default: environment variable named in config)")
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config: :3000)")
}

// setup configures logging and loads the validated configuration.
func setup() (*config.Config, error) {
	if quiet {
		logger.SetQuiet()
	} else if verbose {
		logger.SetVerbose()
	}

	loader := config.NewLoader()
	cfg, err := loader.LoadConfig(configFile)
	if err != nil {
		logger.Logger.WithError(err).Error("Failed to load configuration")
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	loader.OverrideWithFlags(cfg, config.Overrides{
		Addr:        addr,
		Mode:        mode,
		Concurrency: concurrency,
	})

	if err := loader.ValidateConfig(cfg); err != nil {
		logger.Logger.WithError(err).Error("Configuration validation failed")
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
