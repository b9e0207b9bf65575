package tabxlsx

import (
	"errors"

	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/grid"
)

// ErrUnknownFormat indicates an import format other than xlsx or xlsb.
var ErrUnknownFormat = errors.New("unknown workbook format")

// SerializationError represents a cell, style or rule that cannot be written.
type SerializationError = grid.SerializationError

// MalformedInputError represents input that is not a readable workbook.
type MalformedInputError = grid.MalformedInputError

// UnsupportedFeatureError represents a request for an unsupported feature.
type UnsupportedFeatureError = grid.UnsupportedFeatureError

// Sentinel errors wrapped by SerializationError.
var (
	ErrUnsupportedValue = grid.ErrUnsupportedValue
	ErrDuplicateSheet   = grid.ErrDuplicateSheet
	ErrInvalidRange     = grid.ErrInvalidRange
	ErrInvalidStyle     = grid.ErrInvalidStyle
	ErrNilTable         = grid.ErrNilTable
)
