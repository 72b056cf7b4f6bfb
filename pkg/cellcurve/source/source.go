// Package source lists and fetches test-report spreadsheets from folders.
package source

import (
	"context"
	"strings"
)

// SpreadsheetMIME is the MIME type of xlsx files.
const SpreadsheetMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// File is a candidate spreadsheet in a folder.
type File struct {
	// ID identifies the file for Fetch.
	ID string `json:"id"`
	// Name is the file name, used for serial number fallback.
	Name string `json:"name"`
	// MimeType is the reported MIME type, if known.
	MimeType string `json:"mimeType,omitempty"`
}

// Source lists spreadsheets in a folder and fetches their bytes.
type Source interface {
	// List returns the spreadsheets in the folder named by locator.
	List(ctx context.Context, locator string) ([]File, error)
	// Fetch returns the raw bytes of a listed file.
	Fetch(ctx context.Context, id string) ([]byte, error)
}

// IsSpreadsheet reports whether a file is an xlsx spreadsheet.
func IsSpreadsheet(name, mimeType string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".xlsx") || mimeType == SpreadsheetMIME
}
