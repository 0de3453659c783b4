package turnos

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// errInvalidText is reported for cells whose text is not valid UTF-8.
var errInvalidText = errors.New("cell text is not valid UTF-8")

// ExtractionError represents a recoverable error while scanning a sheet.
type ExtractionError struct {
	SheetName string
	Component string // "sheet", "cell"
	Cell      string // A1-style reference, empty for sheet-level errors
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.Cell != "" {
		return fmt.Sprintf("extraction error in sheet %q cell %s (%s): %v", e.SheetName, e.Cell, e.Component, e.Err)
	}
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component, cell string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Cell:      cell,
		Err:       err,
	}
}
