package models

// Formula marks a cell value as a spreadsheet formula. Formulas are not
// supported by the writer and are rejected rather than written as text.
type Formula string

// Row is a single logical data row.
type Row struct {
	// Values holds the cell values in column order.
	Values []any `json:"values" yaml:"values"`
	// Styles holds the style of each cell. It may be shorter than Values;
	// missing entries mean no style.
	Styles []Style `json:"styles,omitempty" yaml:"styles,omitempty" validate:"dive"`
}

// StyleAt returns the style of column i, or the empty style.
func (r Row) StyleAt(i int) Style {
	if i < 0 || i >= len(r.Styles) {
		return Style{}
	}
	return r.Styles[i]
}
