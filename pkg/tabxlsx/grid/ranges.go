package grid

import (
	"fmt"
	"strings"

	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses an A1 reference such as "B2:B10", "$A$1:$D$10" or a
// single cell "C3" into 1-based bounds.
func ParseRange(ref string) (models.CellRange, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	if idx := strings.LastIndex(clean, "!"); idx >= 0 {
		clean = clean[idx+1:]
	}

	parts := strings.Split(clean, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.CellRange{}, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CellRange{}, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.CellRange{}, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return models.CellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, nil
}
