package grid

import (
	"errors"
	"fmt"
)

// ErrUnsupportedValue indicates a cell value that cannot be written as a
// spreadsheet scalar.
var ErrUnsupportedValue = errors.New("unsupported cell value")

// ErrDuplicateSheet indicates two tables resolve to the same sheet name.
var ErrDuplicateSheet = errors.New("duplicate sheet name")

// ErrInvalidRange indicates a malformed A1 range in a rule.
var ErrInvalidRange = errors.New("invalid cell range")

// ErrNilTable indicates a nil entry in a book's table list.
var ErrNilTable = errors.New("nil table")

// ErrInvalidStyle indicates a style attribute the sink cannot represent.
var ErrInvalidStyle = errors.New("invalid style")

// SerializationError represents a failure to write a cell, style or rule.
// Row and Col are 0-based grid positions, or -1 when the failure is not tied
// to a cell.
type SerializationError struct {
	Sheet string
	Row   int
	Col   int
	Err   error
}

func (e *SerializationError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("serialization error in sheet %q: %v", e.Sheet, e.Err)
	}
	return fmt.Sprintf("serialization error in sheet %q at row %d, column %d: %v", e.Sheet, e.Row, e.Col, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// NewSerializationError creates a SerializationError for a cell.
func NewSerializationError(sheet string, row, col int, err error) *SerializationError {
	return &SerializationError{
		Sheet: sheet,
		Row:   row,
		Col:   col,
		Err:   err,
	}
}

// NewSheetError creates a SerializationError that is not tied to a cell.
func NewSheetError(sheet string, err error) *SerializationError {
	return NewSerializationError(sheet, -1, -1, err)
}

// MalformedInputError represents input bytes that are not a readable workbook.
type MalformedInputError struct {
	Err error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %v", e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// UnsupportedFeatureError represents a request for a spreadsheet feature
// that is not supported, such as a formula cell.
type UnsupportedFeatureError struct {
	Feature string
	Sheet   string
	Row     int
	Col     int
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("unsupported feature %s in sheet %q at row %d, column %d", e.Feature, e.Sheet, e.Row, e.Col)
}
