package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/cellcurve-go/pkg/cellcurve"
)

func TestLoader_LoadConfig(t *testing.T) {
	loader := NewLoader()

	t.Run("should load default config when no file specified", func(t *testing.T) {
		config, err := loader.LoadConfig("")
		require.NoError(t, err)

		assert.Equal(t, ":3000", config.Server.Addr)
		assert.Equal(t, "full", config.Processing.Mode)
		assert.Equal(t, "GOOGLE_DRIVE_API_KEY", config.Drive.APIKeyEnv)
		assert.Equal(t, []string{"# #Test reports", "Cells", "Prismatic"}, config.Drive.RootPath)
	})

	t.Run("should use default config when file does not exist", func(t *testing.T) {
		config, err := loader.LoadConfig(filepath.Join(t.TempDir(), "nonexistent.yml"))
		require.NoError(t, err)
		assert.Equal(t, 8, config.Processing.Concurrency)
	})

	t.Run("should load config from valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cellcurve.yml")
		content := `
server:
  addr: "127.0.0.1:8080"
processing:
  mode: summary
  concurrency: 2
drive:
  api_key_env: CUSTOM_KEY
  root_path: ["Reports", "Cells"]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		config, err := loader.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:8080", config.Server.Addr)
		assert.Equal(t, "summary", config.Processing.Mode)
		assert.Equal(t, 2, config.Processing.Concurrency)
		assert.Equal(t, "CUSTOM_KEY", config.Drive.APIKeyEnv)
		assert.Equal(t, []string{"Reports", "Cells"}, config.Drive.RootPath)
	})

	t.Run("should error on invalid YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yml")
		require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0o644))

		_, err := loader.LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestLoader_OverrideAndValidate(t *testing.T) {
	loader := NewLoader()
	config, err := loader.LoadConfig("")
	require.NoError(t, err)

	loader.OverrideWithFlags(config, Overrides{Addr: ":9000", Mode: "summary", Concurrency: 4})
	assert.Equal(t, ":9000", config.Server.Addr)
	require.NoError(t, loader.ValidateConfig(config))

	opts := config.Options()
	assert.Equal(t, cellcurve.ModeSummary, opts.Mode)
	assert.Equal(t, 4, opts.Concurrency)

	config.Processing.Mode = "verbose"
	assert.Error(t, loader.ValidateConfig(config))

	config.Processing.Mode = "full"
	config.Processing.Concurrency = 0
	assert.Error(t, loader.ValidateConfig(config))
}

func TestDriveAPIKey(t *testing.T) {
	t.Setenv("CELLCURVE_TEST_KEY", "secret")
	config := &Config{Drive: DriveConfig{APIKeyEnv: "CELLCURVE_TEST_KEY"}}
	assert.Equal(t, "secret", config.DriveAPIKey())

	config.Drive.APIKeyEnv = ""
	assert.Empty(t, config.DriveAPIKey())
}
