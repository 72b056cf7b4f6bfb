package source

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

var _ Source = &Local{}

// Local serves spreadsheets from directories below a base path.
type Local struct {
	basePath string
}

// NewLocal creates a local source rooted at basePath.
func NewLocal(basePath string) (*Local, error) {
	info, err := os.Stat(basePath)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "invalid path %s", basePath)
	}
	if !info.IsDir() {
		return nil, pkgerrors.Errorf("path %s is not a directory", basePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to get absolute path")
	}

	return &Local{basePath: absPath}, nil
}

// List returns the spreadsheets directly inside the locator directory.
// Subdirectories and symlinks are skipped. IDs are slash-separated paths
// relative to the base path.
func (l *Local) List(ctx context.Context, locator string) ([]File, error) {
	dir, err := l.sanitizePath(locator)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(filepath.Join(l.basePath, dir))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to read directory %s", locator)
	}

	var files []File
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() || e.Type()&fs.ModeSymlink != 0 {
			continue
		}
		if !IsSpreadsheet(e.Name(), "") {
			continue
		}
		files = append(files, File{
			ID:       filepath.ToSlash(filepath.Join(dir, e.Name())),
			Name:     e.Name(),
			MimeType: SpreadsheetMIME,
		})
	}

	return files, nil
}

// Fetch reads the file with the given relative ID.
func (l *Local) Fetch(ctx context.Context, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rel, err := l.sanitizePath(id)
	if err != nil {
		return nil, err
	}

	fullPath := filepath.Join(l.basePath, rel)
	info, err := os.Lstat(fullPath)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to stat %s", id)
	}
	if info.Mode()&fs.ModeSymlink != 0 || info.IsDir() {
		return nil, pkgerrors.Errorf("not a regular file: %s", id)
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to read %s", id)
	}
	return data, nil
}

// sanitizePath rejects absolute paths and paths escaping the base path.
func (l *Local) sanitizePath(p string) (string, error) {
	cleanPath := filepath.Clean(filepath.FromSlash(p))
	if filepath.IsAbs(cleanPath) || cleanPath == ".." || strings.HasPrefix(cleanPath, ".."+string(filepath.Separator)) {
		return "", pkgerrors.Errorf("invalid path: %s", p)
	}
	return cleanPath, nil
}
