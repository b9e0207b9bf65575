// Package tabxlsx converts logical tables and books to and from xlsx workbooks.
package tabxlsx

import (
	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/grid"
	"go.uber.org/zap"
)

// Format identifies the workbook format read by the import functions.
type Format string

const (
	// FormatXLSX is the Office Open XML workbook format.
	FormatXLSX Format = "xlsx"
	// FormatXLSB is the Excel binary workbook format. It is read-only.
	FormatXLSB Format = "xlsb"
)

// StyleScope controls how styles are shared during an export.
type StyleScope = grid.Scope

const (
	// ScopeBook dedupes identical styles across all tables of an export.
	ScopeBook = grid.ScopeBook
	// ScopeTable registers styles separately for each table.
	ScopeTable = grid.ScopeTable
)

// Options configures export and import behavior.
type Options struct {
	// Headers specifies whether the first row of each sheet is the header
	// row on import. If nil, defaults to true.
	Headers *bool
	// FreezeHeader specifies whether the header row is frozen on export.
	// If nil, defaults to true.
	FreezeHeader *bool
	// StyleScope selects the lifetime of the style registry on export.
	StyleScope StyleScope
	// Format selects the import format. Empty means FormatXLSX.
	Format Format
	// Logger receives debug records. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		StyleScope: ScopeBook,
		Format:     FormatXLSX,
	}
}

// ShouldReadHeaders returns whether the first row is read as headers.
func (o Options) ShouldReadHeaders() bool {
	if o.Headers != nil {
		return *o.Headers
	}
	return true
}

// ShouldFreezeHeader returns whether the header row is frozen.
func (o Options) ShouldFreezeHeader() bool {
	if o.FreezeHeader != nil {
		return *o.FreezeHeader
	}
	return true
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
