package workbook

import (
	"errors"
	"fmt"
)

// ErrMalformedInput indicates the bytes cannot be read as a workbook.
var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError describes where reading the workbook failed.
type MalformedInputError struct {
	Op  string
	Err error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %s: %v", e.Op, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformedInput) hold for every MalformedInputError.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

func malformed(op string, err error) error {
	return &MalformedInputError{Op: op, Err: err}
}
