package excel

import (
	"strings"

	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/models"
	"github.com/xuri/excelize/v2"
)

var borderEdges = []string{"left", "top", "right", "bottom"}

// buildStyle converts canonical attributes into an excelize style.
func buildStyle(attrs []models.Attr) (*excelize.Style, error) {
	s, err := models.StyleFromAttrs(attrs)
	if err != nil {
		return nil, err
	}

	style := &excelize.Style{}
	if s.BgColor != "" {
		style.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{normalizeColor(s.BgColor)},
		}
	}
	if s.Font != "" || s.FontColor != "" || s.FontSize != 0 || s.Bold || s.Italic {
		style.Font = &excelize.Font{
			Family: s.Font,
			Color:  normalizeColor(s.FontColor),
			Size:   s.FontSize,
			Bold:   s.Bold,
			Italic: s.Italic,
		}
	}
	if s.Align != "" {
		style.Alignment = &excelize.Alignment{Horizontal: s.Align}
	}
	if s.Border != 0 {
		for _, edge := range borderEdges {
			style.Border = append(style.Border, excelize.Border{
				Type:  edge,
				Color: "000000",
				Style: s.Border,
			})
		}
	}
	return style, nil
}

// normalizeColor strips a leading '#' and upper-cases the hex digits.
func normalizeColor(c string) string {
	return strings.ToUpper(strings.TrimPrefix(c, "#"))
}
