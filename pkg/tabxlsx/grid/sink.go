// Package grid maps logical tables onto grids of styled cells and back.
package grid

import "github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/models"

// StyleHandle identifies a style registered with a Sink. The zero value is
// NoStyle. Handles are only meaningful to the sink that created them.
type StyleHandle struct {
	id    int
	valid bool
}

// NoStyle is the handle of an absent style.
var NoStyle = StyleHandle{}

// NewStyleHandle wraps a sink-specific style id.
func NewStyleHandle(id int) StyleHandle {
	return StyleHandle{id: id, valid: true}
}

// ID returns the sink-specific id and whether the handle refers to a style.
func (h StyleHandle) ID() (int, bool) {
	return h.id, h.valid
}

// GridCell is a value paired with its resolved style.
type GridCell struct {
	Value any
	Style StyleHandle
}

// GridRow is one physical row of a sheet.
type GridRow []GridCell

// DropdownSpec is a dropdown validation ready to apply to a sheet.
type DropdownSpec struct {
	Range       string
	Values      []string
	AllowBlank  bool
	PromptTitle string
	Prompt      string
	ErrorTitle  string
	Error       string
	ErrorStyle  string
}

// ConditionalFormatSpec is a conditional format whose style has been resolved
// to a handle created by CreateConditionalStyle.
type ConditionalFormatSpec struct {
	Range      string
	Type       string
	Criteria   string
	Value      string
	MinValue   string
	MaxValue   string
	StopIfTrue bool
	Style      StyleHandle
}

// Sink receives a grid and serializes it.
type Sink interface {
	// CreateSheet adds a sheet and returns the name used to address it.
	CreateSheet(name string) (string, error)
	// WriteCell writes a coerced scalar at the 0-based position.
	WriteCell(sheet string, row, col int, value any, style StyleHandle) error
	// CreateStyle registers a cell style built from the attributes.
	CreateStyle(attrs []models.Attr) (StyleHandle, error)
	// CreateConditionalStyle registers a style for conditional formats.
	CreateConditionalStyle(attrs []models.Attr) (StyleHandle, error)
	// FreezeRows keeps the first n rows visible while scrolling.
	FreezeRows(sheet string, n int) error
	ApplyDropdown(sheet string, spec DropdownSpec) error
	ApplyConditionalFormat(sheet string, spec ConditionalFormatSpec) error
	// Finalize returns the serialized workbook.
	Finalize() ([]byte, error)
	// Close releases any resources held by the sink.
	Close() error
}

// SheetData is one sheet as read from a Source.
type SheetData struct {
	Title string
	// Rows holds raw cell values; empty cells are nil.
	Rows [][]any
}

// TrimRow drops the trailing nil values of a raw row.
func TrimRow(values []any) []any {
	n := len(values)
	for n > 0 && values[n-1] == nil {
		n--
	}
	return values[:n]
}

// Source parses serialized workbooks.
type Source interface {
	// Open parses the whole workbook. Sheets are returned in file order.
	Open(data []byte) ([]SheetData, error)
}
