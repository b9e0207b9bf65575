package excel

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/grid"
	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/models"
	"github.com/xuri/excelize/v2"
)

// Source reads xlsx workbooks.
type Source struct{}

// Open parses every sheet of an xlsx workbook.
func (Source) Open(data []byte) ([]grid.SheetData, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &grid.MalformedInputError{Err: err}
	}
	defer f.Close()

	var sheets []grid.SheetData
	for _, sheetName := range f.GetSheetList() {
		rows, err := ExtractRows(f, sheetName)
		if err != nil {
			return nil, &grid.MalformedInputError{Err: err}
		}
		sheets = append(sheets, grid.SheetData{
			Title: sheetName,
			Rows:  rows,
		})
	}
	return sheets, nil
}

// Detect reports whether data opens as an xlsx workbook with at least one
// sheet.
func Detect(data []byte) bool {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return false
	}
	defer f.Close()
	return len(f.GetSheetList()) > 0
}

// ExtractRows reads the raw values of a sheet. Numbers become int64 or
// float64, booleans become bool and empty string cells stay "". Cells with no
// value are nil. Rows up to the end of the sheet's recorded used range are
// kept even when they hold no values.
func ExtractRows(f *excelize.File, sheetName string) ([][]any, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	height, width := len(rows), 0
	if dim, ok := sheetDimension(f, sheetName); ok {
		height = max(height, dim.R2)
		width = dim.C2
	}

	result := make([][]any, height)
	for rowIdx := range result {
		var row []string
		if rowIdx < len(rows) {
			row = rows[rowIdx]
		}
		values := make([]any, max(len(row), width))
		for colIdx := range values {
			cellValue := ""
			if colIdx < len(row) {
				cellValue = row[colIdx]
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			if cellValue == "" {
				if cellType == excelize.CellTypeSharedString || cellType == excelize.CellTypeInlineString {
					values[colIdx] = ""
				}
				continue
			}
			values[colIdx] = typedValue(cellType, cellValue)
		}
		result[rowIdx] = grid.TrimRow(values)
	}
	return result, nil
}

// sheetDimension returns the used range recorded in the sheet. A single-cell
// reference is what blank sheets carry, so only ranges count.
func sheetDimension(f *excelize.File, sheetName string) (models.CellRange, bool) {
	ref, err := f.GetSheetDimension(sheetName)
	if err != nil || !strings.Contains(ref, ":") {
		return models.CellRange{}, false
	}
	dim, err := grid.ParseRange(ref)
	if err != nil {
		return models.CellRange{}, false
	}
	return dim, true
}

func typedValue(cellType excelize.CellType, raw string) any {
	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		return parseValue(raw)
	default:
		return raw
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
