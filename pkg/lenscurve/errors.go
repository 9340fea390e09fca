package lenscurve

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx or JSON file.
var ErrInvalidFormat = errors.New("invalid input format")

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoReferenceFocalLengths indicates a data file declares no usable
// reference focal length labels.
var ErrNoReferenceFocalLengths = errors.New("no reference focal lengths")

// IngestError represents an error while reading a spreadsheet.
type IngestError struct {
	SheetName string
	Stage     string // "open", "rows"
	Err       error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("ingest error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

// NewIngestError creates a new IngestError.
func NewIngestError(sheetName, stage string, err error) *IngestError {
	return &IngestError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
