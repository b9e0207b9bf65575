// Package xlsb reads Excel binary workbooks (.xlsb) as a grid source.
package xlsb

import (
	"bytes"
	"fmt"
	"math"

	xlsbreader "github.com/TsubasaBE/go-xlsb"
	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/grid"
)

// Source reads .xlsb workbooks. Values come back as nil, string, float64 or
// bool; integral numbers are returned as int64 to match the xlsx source.
type Source struct{}

// Open parses every sheet of an .xlsb workbook.
func (Source) Open(data []byte) ([]grid.SheetData, error) {
	wb, err := xlsbreader.OpenReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &grid.MalformedInputError{Err: err}
	}
	defer wb.Close()

	names := wb.Sheets()
	sheets := make([]grid.SheetData, 0, len(names))
	for i, name := range names {
		ws, err := wb.Sheet(i + 1)
		if err != nil {
			return nil, &grid.MalformedInputError{Err: fmt.Errorf("sheet %q: %w", name, err)}
		}
		sheet := grid.SheetData{Title: name}
		for row := range ws.Rows(false) {
			values := make([]any, len(row))
			for _, cell := range row {
				if cell.C < len(values) {
					values[cell.C] = normalize(cell.V)
				}
			}
			sheet.Rows = append(sheet.Rows, grid.TrimRow(values))
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func normalize(v any) any {
	switch x := v.(type) {
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return int64(x)
		}
		return x
	case string:
		if x == "" {
			return nil
		}
		return x
	default:
		return x
	}
}
