package models

// DropdownRule restricts the cells of Range to a list of allowed values.
type DropdownRule struct {
	// Range is an A1 range such as "B2:B100".
	Range string `json:"range" yaml:"range" validate:"required"`
	// Values are the allowed values shown in the dropdown.
	Values     []string `json:"values" yaml:"values" validate:"min=1"`
	AllowBlank bool     `json:"allow_blank,omitempty" yaml:"allow_blank,omitempty"`
	// PromptTitle and Prompt are shown when a cell in Range is selected.
	PromptTitle string `json:"prompt_title,omitempty" yaml:"prompt_title,omitempty"`
	Prompt      string `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	// ErrorTitle and Error are shown when an invalid value is entered.
	ErrorTitle string `json:"error_title,omitempty" yaml:"error_title,omitempty"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
	// ErrorStyle is one of "stop" (default), "warning" or "information".
	ErrorStyle string `json:"error_style,omitempty" yaml:"error_style,omitempty" validate:"omitempty,oneof=stop warning information"`
}

// ConditionalFormatRule applies Style to the cells of Range that match the
// condition.
type ConditionalFormatRule struct {
	// Range is an A1 range such as "C2:C100".
	Range string `json:"range" yaml:"range" validate:"required"`
	// Type is the rule type, e.g. "cell", "text", "top", "duplicate".
	Type string `json:"type" yaml:"type" validate:"required,oneof=cell text top bottom average duplicate unique formula blanks no_blanks errors no_errors"`
	// Criteria is the comparison operator for "cell" rules, e.g. ">" or
	// "between", or the formula for "formula" rules.
	Criteria   string `json:"criteria,omitempty" yaml:"criteria,omitempty"`
	Value      string `json:"value,omitempty" yaml:"value,omitempty"`
	MinValue   string `json:"min_value,omitempty" yaml:"min_value,omitempty"`
	MaxValue   string `json:"max_value,omitempty" yaml:"max_value,omitempty"`
	StopIfTrue bool   `json:"stop_if_true,omitempty" yaml:"stop_if_true,omitempty"`
	// Style is the format applied to matching cells.
	Style Style `json:"style" yaml:"style"`
}

// CellRange represents 1-based inclusive cell coordinate bounds.
type CellRange struct {
	// R1 is the start row.
	R1 int `json:"r1"`
	// C1 is the start column.
	C1 int `json:"c1"`
	// R2 is the end row (inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (inclusive).
	C2 int `json:"c2"`
}
