package cellcurve

import (
	"fmt"

	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/workbook"
)

// ErrMalformedInput indicates the input bytes are not a readable workbook.
var ErrMalformedInput = workbook.ErrMalformedInput

// Extraction stages reported by ExtractionError.
const (
	StageLoad     = "load"
	StageOpen     = "open"
	StageSections = "sections"
	StagePanic    = "panic"
)

// ExtractionError represents an error while processing one file.
type ExtractionError struct {
	FileName string
	Stage    string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in %q (%s): %v", e.FileName, e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(fileName, stage string, err error) *ExtractionError {
	return &ExtractionError{
		FileName: fileName,
		Stage:    stage,
		Err:      err,
	}
}
