package grid

import (
	"fmt"

	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/models"
	"github.com/xuri/excelize/v2"
)

// UsedRange returns the bounding box of the non-empty cells of rows. ok is
// false when every cell is empty.
func UsedRange(rows [][]any) (r models.CellRange, ok bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.CellRange{}, false
	}
	return models.CellRange{
		R1: minRow + 1,
		C1: minCol + 1,
		R2: maxRow + 1,
		C2: maxCol + 1,
	}, true
}

// FormatRange renders r in A1 notation, e.g. "A1:D10".
func FormatRange(r models.CellRange) (string, error) {
	startCell, err := excelize.CoordinatesToCellName(r.C1, r.R1)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(r.C2, r.R2)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}

// findDataBounds finds the 0-based bounding box of non-empty cells.
func findDataBounds(rows [][]any) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == nil {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
