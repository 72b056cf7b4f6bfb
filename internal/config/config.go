// Package config loads cellcurve settings from YAML.
package config

import (
	"os"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/cellcurve-go/pkg/cellcurve"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/source"
)

// Config is the complete application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Processing ProcessingConfig `yaml:"processing"`
	Drive      DriveConfig      `yaml:"drive"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// ProcessingConfig configures extraction.
type ProcessingConfig struct {
	Mode        string `yaml:"mode"`
	Concurrency int    `yaml:"concurrency"`
}

// DriveConfig configures the Google Drive source.
type DriveConfig struct {
	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`
	// RootPath is the folder path under which folder names are resolved.
	RootPath []string `yaml:"root_path"`
	// Endpoint overrides the Drive API base URL.
	Endpoint string `yaml:"endpoint"`
}

// Overrides carries command-line values that take precedence over the file.
type Overrides struct {
	Addr        string
	Mode        string
	Concurrency int
}

// Loader handles configuration loading and validation
type Loader struct{}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadConfig loads configuration from file or returns default config
func (l *Loader) LoadConfig(configFile string) (*Config, error) {
	config := l.getDefaultConfig()

	if configFile == "" {
		return config, nil
	}
	if _, err := os.Stat(configFile); err != nil {
		return config, nil
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to read config file %s", configFile)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to parse config file %s", configFile)
	}

	return config, nil
}

// getDefaultConfig returns the default configuration
func (l *Loader) getDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":3000",
		},
		Processing: ProcessingConfig{
			Mode:        string(cellcurve.ModeFull),
			Concurrency: 8,
		},
		Drive: DriveConfig{
			APIKeyEnv: "GOOGLE_DRIVE_API_KEY",
			RootPath:  append([]string(nil), source.DefaultDriveRoot...),
		},
	}
}

// OverrideWithFlags overrides config values with command line flags
func (l *Loader) OverrideWithFlags(config *Config, flags Overrides) {
	if flags.Addr != "" {
		config.Server.Addr = flags.Addr
	}
	if flags.Mode != "" {
		config.Processing.Mode = flags.Mode
	}
	if flags.Concurrency > 0 {
		config.Processing.Concurrency = flags.Concurrency
	}
}

// ValidateConfig validates the configuration
func (l *Loader) ValidateConfig(config *Config) error {
	if _, ok := cellcurve.ParseMode(config.Processing.Mode); !ok {
		return pkgerrors.Errorf("invalid processing mode: %s (must be summary or full)", config.Processing.Mode)
	}
	if config.Processing.Concurrency <= 0 {
		return pkgerrors.New("concurrency must be greater than 0")
	}
	if config.Server.Addr == "" {
		return pkgerrors.New("server address must not be empty")
	}
	return nil
}

// Options converts the processing section into extraction options.
func (c *Config) Options() cellcurve.Options {
	mode, ok := cellcurve.ParseMode(c.Processing.Mode)
	if !ok {
		mode = cellcurve.ModeFull
	}
	return cellcurve.Options{
		Mode:        mode,
		Concurrency: c.Processing.Concurrency,
	}
}

// DriveAPIKey returns the API key from the configured environment variable.
func (c *Config) DriveAPIKey() string {
	if c.Drive.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.Drive.APIKeyEnv)
}
