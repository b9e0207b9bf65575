package tabxlsx

import "github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/grid"

// SheetSummary describes one sheet of a workbook.
type SheetSummary struct {
	Title string `json:"title" yaml:"title"`
	Rows  int    `json:"rows" yaml:"rows"`
	// UsedRange is the A1 range of the non-empty cells, or "" for an
	// empty sheet.
	UsedRange string `json:"used_range,omitempty" yaml:"used_range,omitempty"`
}

// Inspect summarizes the sheets of data without building tables.
func Inspect(data []byte, opts Options) ([]SheetSummary, error) {
	source, err := sourceFor(opts.Format)
	if err != nil {
		return nil, err
	}
	sheets, err := source.Open(data)
	if err != nil {
		return nil, err
	}

	summaries := make([]SheetSummary, 0, len(sheets))
	for _, sheet := range sheets {
		summary := SheetSummary{Title: sheet.Title, Rows: len(sheet.Rows)}
		if r, ok := grid.UsedRange(sheet.Rows); ok {
			ref, err := grid.FormatRange(r)
			if err != nil {
				return nil, err
			}
			summary.UsedRange = ref
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
