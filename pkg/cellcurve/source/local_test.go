package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSpreadsheet(t *testing.T) {
	assert.True(t, IsSpreadsheet("report.xlsx", ""))
	assert.True(t, IsSpreadsheet("REPORT.XLSX", ""))
	assert.True(t, IsSpreadsheet("export", SpreadsheetMIME))
	assert.False(t, IsSpreadsheet("report.xls", ""))
	assert.False(t, IsSpreadsheet("notes.txt", "text/plain"))
}

func TestLocal(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "b.xlsx"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "a.xlsx"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "notes.txt"), []byte("n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(base, "batch"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "batch", "c.xlsx"), []byte("c"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(base, "dir.xlsx"), 0o755))

	src, err := NewLocal(base)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("should list spreadsheets in the base directory", func(t *testing.T) {
		files, err := src.List(ctx, ".")
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, "a.xlsx", files[0].ID)
		assert.Equal(t, "b.xlsx", files[1].Name)
	})

	t.Run("should list a subdirectory", func(t *testing.T) {
		files, err := src.List(ctx, "batch")
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "batch/c.xlsx", files[0].ID)

		data, err := src.Fetch(ctx, files[0].ID)
		require.NoError(t, err)
		assert.Equal(t, []byte("c"), data)
	})

	t.Run("should reject traversal", func(t *testing.T) {
		_, err := src.List(ctx, "../")
		assert.Error(t, err)
		_, err = src.Fetch(ctx, "../../etc/passwd")
		assert.Error(t, err)
		_, err = src.Fetch(ctx, "/etc/passwd")
		assert.Error(t, err)
	})

	t.Run("should reject directories", func(t *testing.T) {
		_, err := src.Fetch(ctx, "batch")
		assert.Error(t, err)
	})

	t.Run("should honor cancellation", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := src.Fetch(cctx, "a.xlsx")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewLocalInvalid(t *testing.T) {
	_, err := NewLocal(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file.xlsx")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = NewLocal(file)
	assert.Error(t, err)
}
