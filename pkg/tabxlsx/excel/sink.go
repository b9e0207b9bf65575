// Package excel reads and writes xlsx workbooks with excelize.
package excel

import (
	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/grid"
	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/models"
	"github.com/xuri/excelize/v2"
)

// Sink writes a grid into an in-memory xlsx workbook.
type Sink struct {
	f            *excelize.File
	defaultSheet string
	sheets       int
	// extents holds the 1-based far corner written on each sheet, so rows of
	// empty cells still count towards the sheet's used range.
	extents map[string]models.CellRange
	order   []string
}

// NewSink creates a sink over a new, empty workbook.
func NewSink() *Sink {
	f := excelize.NewFile()
	return &Sink{
		f:            f,
		defaultSheet: f.GetSheetName(0),
		extents:      make(map[string]models.CellRange),
	}
}

// NewGridSink is NewSink typed for grid.NewWriter.
func NewGridSink() grid.Sink {
	return NewSink()
}

// CreateSheet adds a sheet. The first sheet reuses the workbook's default
// sheet so no empty sheet is left behind.
func (s *Sink) CreateSheet(name string) (string, error) {
	if s.sheets == 0 {
		if name != s.defaultSheet {
			if err := s.f.SetSheetName(s.defaultSheet, name); err != nil {
				return "", err
			}
		}
	} else if _, err := s.f.NewSheet(name); err != nil {
		return "", err
	}
	s.sheets++
	s.order = append(s.order, name)
	return name, nil
}

// WriteCell writes value at the 0-based position and applies style.
func (s *Sink) WriteCell(sheet string, row, col int, value any, style grid.StyleHandle) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	if err := s.f.SetCellValue(sheet, cell, value); err != nil {
		return err
	}
	ext := s.extents[sheet]
	ext.R2 = max(ext.R2, row+1)
	ext.C2 = max(ext.C2, col+1)
	s.extents[sheet] = ext
	if id, ok := style.ID(); ok {
		return s.f.SetCellStyle(sheet, cell, cell, id)
	}
	return nil
}

// CreateStyle registers a cell style.
func (s *Sink) CreateStyle(attrs []models.Attr) (grid.StyleHandle, error) {
	style, err := buildStyle(attrs)
	if err != nil {
		return grid.NoStyle, err
	}
	id, err := s.f.NewStyle(style)
	if err != nil {
		return grid.NoStyle, err
	}
	return grid.NewStyleHandle(id), nil
}

// CreateConditionalStyle registers a differential style for conditional
// formats.
func (s *Sink) CreateConditionalStyle(attrs []models.Attr) (grid.StyleHandle, error) {
	style, err := buildStyle(attrs)
	if err != nil {
		return grid.NoStyle, err
	}
	id, err := s.f.NewConditionalStyle(style)
	if err != nil {
		return grid.NoStyle, err
	}
	return grid.NewStyleHandle(id), nil
}

// FreezeRows freezes the first n rows of sheet.
func (s *Sink) FreezeRows(sheet string, n int) error {
	topLeft, err := excelize.CoordinatesToCellName(1, n+1)
	if err != nil {
		return err
	}
	return s.f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      n,
		TopLeftCell: topLeft,
		ActivePane:  "bottomLeft",
		Selection: []excelize.Selection{
			{SQRef: topLeft, ActiveCell: topLeft, Pane: "bottomLeft"},
		},
	})
}

// ApplyDropdown adds a list validation over spec.Range.
func (s *Sink) ApplyDropdown(sheet string, spec grid.DropdownSpec) error {
	dv := excelize.NewDataValidation(spec.AllowBlank)
	dv.Sqref = spec.Range
	if err := dv.SetDropList(spec.Values); err != nil {
		return err
	}
	if spec.PromptTitle != "" || spec.Prompt != "" {
		dv.SetInput(spec.PromptTitle, spec.Prompt)
	}
	if spec.ErrorTitle != "" || spec.Error != "" {
		dv.SetError(errorStyle(spec.ErrorStyle), spec.ErrorTitle, spec.Error)
	}
	return s.f.AddDataValidation(sheet, dv)
}

func errorStyle(name string) excelize.DataValidationErrorStyle {
	switch name {
	case "warning":
		return excelize.DataValidationErrorStyleWarning
	case "information":
		return excelize.DataValidationErrorStyleInformation
	default:
		return excelize.DataValidationErrorStyleStop
	}
}

// ApplyConditionalFormat adds a conditional format over spec.Range.
func (s *Sink) ApplyConditionalFormat(sheet string, spec grid.ConditionalFormatSpec) error {
	opts := excelize.ConditionalFormatOptions{
		Type:       spec.Type,
		Criteria:   spec.Criteria,
		Value:      spec.Value,
		MinValue:   spec.MinValue,
		MaxValue:   spec.MaxValue,
		StopIfTrue: spec.StopIfTrue,
	}
	if id, ok := spec.Style.ID(); ok {
		opts.Format = &id
	}
	return s.f.SetConditionalFormat(sheet, spec.Range, []excelize.ConditionalFormatOptions{opts})
}

// Finalize records the used range of every sheet and serializes the
// workbook.
func (s *Sink) Finalize() ([]byte, error) {
	for _, sheet := range s.order {
		ext, ok := s.extents[sheet]
		if !ok {
			continue
		}
		ext.R1, ext.C1 = 1, 1
		ref, err := grid.FormatRange(ext)
		if err != nil {
			return nil, err
		}
		if err := s.f.SetSheetDimension(sheet, ref); err != nil {
			return nil, err
		}
	}
	buf, err := s.f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Close releases the workbook's temporary files.
func (s *Sink) Close() error {
	return s.f.Close()
}
