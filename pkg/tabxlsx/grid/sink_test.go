package grid

import (
	"errors"
	"fmt"

	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/models"
)

type writtenCell struct {
	value any
	style StyleHandle
}

// fakeSink records every call in memory.
type fakeSink struct {
	sheets             []string
	cells              map[string]map[[2]int]writtenCell
	styleCalls         [][]models.Attr
	conditionalCalls   [][]models.Attr
	frozen             map[string]int
	dropdowns          map[string][]DropdownSpec
	conditionalFormats map[string][]ConditionalFormatSpec
	closed             int
	finalized          bool

	failWriteAt *[2]int
}

func newFakeSink() *fakeSink {
	return &fakeSink{
		cells:              make(map[string]map[[2]int]writtenCell),
		frozen:             make(map[string]int),
		dropdowns:          make(map[string][]DropdownSpec),
		conditionalFormats: make(map[string][]ConditionalFormatSpec),
	}
}

func (s *fakeSink) CreateSheet(name string) (string, error) {
	s.sheets = append(s.sheets, name)
	s.cells[name] = make(map[[2]int]writtenCell)
	return name, nil
}

func (s *fakeSink) WriteCell(sheet string, row, col int, value any, style StyleHandle) error {
	if s.failWriteAt != nil && *s.failWriteAt == [2]int{row, col} {
		return errors.New("disk full")
	}
	s.cells[sheet][[2]int{row, col}] = writtenCell{value: value, style: style}
	return nil
}

func (s *fakeSink) CreateStyle(attrs []models.Attr) (StyleHandle, error) {
	s.styleCalls = append(s.styleCalls, attrs)
	return NewStyleHandle(len(s.styleCalls)), nil
}

func (s *fakeSink) CreateConditionalStyle(attrs []models.Attr) (StyleHandle, error) {
	s.conditionalCalls = append(s.conditionalCalls, attrs)
	return NewStyleHandle(len(s.conditionalCalls) - 1), nil
}

func (s *fakeSink) FreezeRows(sheet string, n int) error {
	s.frozen[sheet] = n
	return nil
}

func (s *fakeSink) ApplyDropdown(sheet string, spec DropdownSpec) error {
	s.dropdowns[sheet] = append(s.dropdowns[sheet], spec)
	return nil
}

func (s *fakeSink) ApplyConditionalFormat(sheet string, spec ConditionalFormatSpec) error {
	s.conditionalFormats[sheet] = append(s.conditionalFormats[sheet], spec)
	return nil
}

func (s *fakeSink) Finalize() ([]byte, error) {
	s.finalized = true
	return []byte(fmt.Sprintf("%d sheets", len(s.sheets))), nil
}

func (s *fakeSink) Close() error {
	s.closed++
	return nil
}

// fakeSource returns fixed sheets or a fixed error.
type fakeSource struct {
	sheets []SheetData
	err    error
}

func (s fakeSource) Open([]byte) ([]SheetData, error) {
	return s.sheets, s.err
}
