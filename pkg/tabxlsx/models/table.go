// Package models defines the logical tables and books exchanged with xlsx files.
package models

// Separator inserts a single-cell labeled row before base row Index. Base rows
// are the header row (when headers are present) followed by the data rows,
// numbered before any separator is inserted.
type Separator struct {
	Index int    `json:"index" yaml:"index" validate:"gte=0"`
	Label string `json:"label" yaml:"label"`
}

// Table is a logical table: optional headers, data rows, separator rows and
// the styles and rules attached to them.
type Table struct {
	// Title becomes the sheet name. Empty means a positional default.
	Title string `json:"title,omitempty" yaml:"title,omitempty" validate:"max=31"`
	// Headers holds the header names. Empty means no header row.
	Headers []string `json:"headers,omitempty" yaml:"headers,omitempty"`
	// HeaderStyles holds the style of each header cell.
	HeaderStyles []Style     `json:"header_styles,omitempty" yaml:"header_styles,omitempty" validate:"dive"`
	Rows         []Row       `json:"rows,omitempty" yaml:"rows,omitempty" validate:"dive"`
	Separators   []Separator `json:"separators,omitempty" yaml:"separators,omitempty" validate:"dive"`
	// Styles lists the styles used by the table so they can be registered
	// before any cell is written.
	Styles             []Style                 `json:"styles,omitempty" yaml:"styles,omitempty" validate:"dive"`
	Dropdowns          []DropdownRule          `json:"dropdowns,omitempty" yaml:"dropdowns,omitempty" validate:"dive"`
	ConditionalFormats []ConditionalFormatRule `json:"conditional_formats,omitempty" yaml:"conditional_formats,omitempty" validate:"dive"`
}

// NewTable returns an empty table with the given title.
func NewTable(title string) *Table {
	return &Table{Title: title}
}

// Wipe removes all headers, rows, separators, styles and rules. The title is
// kept.
func (t *Table) Wipe() {
	title := t.Title
	*t = Table{Title: title}
}

// SetTitle sets the table title.
func (t *Table) SetTitle(title string) {
	t.Title = title
}

// SetHeaders replaces the header names.
func (t *Table) SetHeaders(headers []string) {
	t.Headers = headers
}

// HasHeaders reports whether the table has a header row.
func (t *Table) HasHeaders() bool {
	return len(t.Headers) > 0
}

// Append adds an unstyled data row.
func (t *Table) Append(values ...any) {
	t.Rows = append(t.Rows, Row{Values: values})
}

// AppendRow adds a data row with its styles.
func (t *Table) AppendRow(row Row) {
	t.Rows = append(t.Rows, row)
}

// AppendSeparator adds a separator after the current last row.
func (t *Table) AppendSeparator(label string) {
	index := len(t.Rows)
	if t.HasHeaders() {
		index++
	}
	t.Separators = append(t.Separators, Separator{Index: index, Label: label})
}

// Height returns the number of data rows.
func (t *Table) Height() int {
	return len(t.Rows)
}

// Width returns the number of header columns, or the number of values in the
// first row when there are no headers.
func (t *Table) Width() int {
	if t.HasHeaders() {
		return len(t.Headers)
	}
	if len(t.Rows) > 0 {
		return len(t.Rows[0].Values)
	}
	return 0
}

// Validate checks styles, separators and rules.
func (t *Table) Validate() error {
	return validate.Struct(t)
}
