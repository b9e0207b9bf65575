package grid

import (
	"sort"

	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/models"
)

// Projector turns logical tables into grid rows, resolving styles through a
// Registry.
type Projector struct {
	registry *Registry
}

// NewProjector creates a projector that resolves styles with registry.
func NewProjector(registry *Registry) *Projector {
	return &Projector{registry: registry}
}

// Project returns the physical rows of t: the header row (if any), the data
// rows and the separator rows at their offset positions.
func (p *Projector) Project(t *models.Table) ([]GridRow, error) {
	rows := make([]GridRow, 0, len(t.Rows)+len(t.Separators)+1)

	if t.HasHeaders() {
		header := make(GridRow, len(t.Headers))
		for j, name := range t.Headers {
			var s models.Style
			if j < len(t.HeaderStyles) {
				s = t.HeaderStyles[j]
			}
			h, err := p.registry.Resolve(s)
			if err != nil {
				return nil, NewSerializationError(t.Title, 0, j, err)
			}
			header[j] = GridCell{Value: name, Style: h}
		}
		rows = append(rows, header)
	}

	for _, row := range t.Rows {
		i := len(rows)
		cells := make(GridRow, len(row.Values))
		for j, v := range row.Values {
			h, err := p.registry.Resolve(row.StyleAt(j))
			if err != nil {
				return nil, NewSerializationError(t.Title, i, j, err)
			}
			cells[j] = GridCell{Value: v, Style: h}
		}
		rows = append(rows, cells)
	}

	return insertSeparators(rows, t.Separators), nil
}

// insertSeparators inserts one single-cell row per separator. Indices refer
// to the rows before any insertion; equal indices keep their given order.
func insertSeparators(rows []GridRow, seps []models.Separator) []GridRow {
	if len(seps) == 0 {
		return rows
	}
	ordered := make([]models.Separator, len(seps))
	copy(ordered, seps)
	sort.SliceStable(ordered, func(a, b int) bool {
		return ordered[a].Index < ordered[b].Index
	})

	offset := 0
	for _, sep := range ordered {
		pos := sep.Index + offset
		if pos < 0 {
			pos = 0
		}
		if pos > len(rows) {
			pos = len(rows)
		}
		rows = append(rows, nil)
		copy(rows[pos+1:], rows[pos:])
		rows[pos] = GridRow{{Value: sep.Label, Style: NoStyle}}
		offset++
	}
	return rows
}

// ProjectRules converts the table's dropdowns and conditional formats into
// sink specs. Ranges are normalized to plain A1 form ("$b$2:B10" and
// "Sheet1!B2:B10" both become "B2:B10"). Conditional styles are resolved to
// handles.
func (p *Projector) ProjectRules(t *models.Table) ([]DropdownSpec, []ConditionalFormatSpec, error) {
	dropdowns := make([]DropdownSpec, 0, len(t.Dropdowns))
	for _, rule := range t.Dropdowns {
		ref, err := normalizeRange(rule.Range)
		if err != nil {
			return nil, nil, NewSheetError(t.Title, err)
		}
		dropdowns = append(dropdowns, DropdownSpec{
			Range:       ref,
			Values:      rule.Values,
			AllowBlank:  rule.AllowBlank,
			PromptTitle: rule.PromptTitle,
			Prompt:      rule.Prompt,
			ErrorTitle:  rule.ErrorTitle,
			Error:       rule.Error,
			ErrorStyle:  rule.ErrorStyle,
		})
	}

	formats := make([]ConditionalFormatSpec, 0, len(t.ConditionalFormats))
	for _, rule := range t.ConditionalFormats {
		ref, err := normalizeRange(rule.Range)
		if err != nil {
			return nil, nil, NewSheetError(t.Title, err)
		}
		h, err := p.registry.ResolveConditional(rule.Style)
		if err != nil {
			return nil, nil, NewSheetError(t.Title, err)
		}
		formats = append(formats, ConditionalFormatSpec{
			Range:      ref,
			Type:       rule.Type,
			Criteria:   rule.Criteria,
			Value:      rule.Value,
			MinValue:   rule.MinValue,
			MaxValue:   rule.MaxValue,
			StopIfTrue: rule.StopIfTrue,
			Style:      h,
		})
	}
	return dropdowns, formats, nil
}

func normalizeRange(ref string) (string, error) {
	r, err := ParseRange(ref)
	if err != nil {
		return "", err
	}
	return FormatRange(r)
}
