package grid

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/models"
)

func rowLabels(rows []GridRow) []any {
	labels := make([]any, len(rows))
	for i, row := range rows {
		labels[i] = row[0].Value
	}
	return labels
}

func TestProjectSeparators(t *testing.T) {
	tests := []struct {
		name       string
		headers    []string
		separators []models.Separator
		expected   []any
	}{
		{
			name:       "single",
			separators: []models.Separator{{Index: 1, Label: "SEP"}},
			expected:   []any{"A", "SEP", "B", "C"},
		},
		{
			name:       "same index keeps order",
			separators: []models.Separator{{Index: 1, Label: "SEP1"}, {Index: 1, Label: "SEP2"}},
			expected:   []any{"A", "SEP1", "SEP2", "B", "C"},
		},
		{
			name:       "unsorted input",
			separators: []models.Separator{{Index: 2, Label: "SEP2"}, {Index: 1, Label: "SEP1"}},
			expected:   []any{"A", "SEP1", "B", "SEP2", "C"},
		},
		{
			name:       "prepend",
			separators: []models.Separator{{Index: 0, Label: "TOP"}},
			expected:   []any{"TOP", "A", "B", "C"},
		},
		{
			name:       "beyond end appends",
			separators: []models.Separator{{Index: 10, Label: "END"}, {Index: 3, Label: "TAIL"}},
			expected:   []any{"A", "B", "C", "TAIL", "END"},
		},
		{
			name:       "header is base row zero",
			headers:    []string{"H"},
			separators: []models.Separator{{Index: 1, Label: "SEP"}},
			expected:   []any{"H", "SEP", "A", "B", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := &models.Table{Headers: tt.headers, Separators: tt.separators}
			tbl.Append("A")
			tbl.Append("B")
			tbl.Append("C")

			rows, err := NewProjector(NewRegistry(newFakeSink())).Project(tbl)
			if err != nil {
				t.Fatalf("Project failed: %v", err)
			}
			if got := rowLabels(rows); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("rows = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestProjectSeparatorRowIsSingleUnstyledCell(t *testing.T) {
	tbl := &models.Table{Separators: []models.Separator{{Index: 0, Label: "SEP"}}}
	tbl.AppendRow(models.Row{Values: []any{"x", "y"}, Styles: []models.Style{{Bold: true}}})

	rows, err := NewProjector(NewRegistry(newFakeSink())).Project(tbl)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if len(rows[0]) != 1 || rows[0][0].Style != NoStyle {
		t.Errorf("separator row = %v", rows[0])
	}
	if _, ok := rows[1][0].Style.ID(); !ok {
		t.Error("styled cell lost its handle")
	}
	if rows[1][1].Style != NoStyle {
		t.Error("cell without style got a handle")
	}
}

func TestProjectDoesNotMutateSeparators(t *testing.T) {
	seps := []models.Separator{{Index: 2, Label: "b"}, {Index: 1, Label: "a"}}
	tbl := &models.Table{Separators: seps}
	tbl.Append(1)
	tbl.Append(2)

	if _, err := NewProjector(NewRegistry(newFakeSink())).Project(tbl); err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if seps[0].Label != "b" {
		t.Error("Project reordered the caller's separators")
	}
}

func TestProjectHeaderStyles(t *testing.T) {
	sink := newFakeSink()
	tbl := &models.Table{
		Headers:      []string{"Name", "Age"},
		HeaderStyles: []models.Style{{Bold: true}},
	}
	tbl.Append("Alice", 30)

	rows, err := NewProjector(NewRegistry(sink)).Project(tbl)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, expected 2", len(rows))
	}
	if _, ok := rows[0][0].Style.ID(); !ok {
		t.Error("header cell missing style")
	}
	if rows[0][1].Style != NoStyle {
		t.Error("unstyled header cell has a style")
	}
	if rows[1][1].Value != 30 {
		t.Errorf("data value = %v", rows[1][1].Value)
	}
}

func TestProjectInvalidStyle(t *testing.T) {
	tbl := &models.Table{}
	tbl.AppendRow(models.Row{Values: []any{1, 2}, Styles: []models.Style{{}, {Align: "diagonal"}}})

	_, err := NewProjector(NewRegistry(newFakeSink())).Project(tbl)
	var serr *SerializationError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, expected SerializationError", err)
	}
	if serr.Row != 0 || serr.Col != 1 {
		t.Errorf("error position = (%d, %d), expected (0, 1)", serr.Row, serr.Col)
	}
}

func TestProjectRules(t *testing.T) {
	sink := newFakeSink()
	highlight := models.Style{BgColor: "#FFC7CE", FontColor: "#9C0006"}
	tbl := &models.Table{
		Dropdowns: []models.DropdownRule{
			{Range: "B2:B20", Values: []string{"open", "closed"}, AllowBlank: true, Prompt: "Pick one", ErrorStyle: "warning"},
		},
		ConditionalFormats: []models.ConditionalFormatRule{
			{Range: "C2:C20", Type: "cell", Criteria: ">", Value: "100", Style: highlight},
			{Range: "D2:D20", Type: "duplicate", Style: highlight, StopIfTrue: true},
		},
	}

	dropdowns, formats, err := NewProjector(NewRegistry(sink)).ProjectRules(tbl)
	if err != nil {
		t.Fatalf("ProjectRules failed: %v", err)
	}

	expectedDropdown := DropdownSpec{Range: "B2:B20", Values: []string{"open", "closed"}, AllowBlank: true, Prompt: "Pick one", ErrorStyle: "warning"}
	if len(dropdowns) != 1 || !reflect.DeepEqual(dropdowns[0], expectedDropdown) {
		t.Errorf("dropdowns = %+v", dropdowns)
	}
	if len(formats) != 2 {
		t.Fatalf("got %d conditional formats, expected 2", len(formats))
	}
	if formats[0].Style != formats[1].Style {
		t.Error("identical conditional styles resolved to different handles")
	}
	if len(sink.conditionalCalls) != 1 {
		t.Errorf("CreateConditionalStyle called %d times, expected 1", len(sink.conditionalCalls))
	}
	if formats[0].Criteria != ">" || formats[0].Value != "100" || formats[0].Type != "cell" {
		t.Errorf("conditional fields not passed through: %+v", formats[0])
	}
	if !formats[1].StopIfTrue {
		t.Error("StopIfTrue not passed through")
	}
}

func TestProjectRulesInvalidRange(t *testing.T) {
	tbl := &models.Table{
		Title:     "Rules",
		Dropdowns: []models.DropdownRule{{Range: "B2:", Values: []string{"x"}}},
	}
	_, _, err := NewProjector(NewRegistry(newFakeSink())).ProjectRules(tbl)
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("err = %v, expected ErrInvalidRange", err)
	}
}

func TestProjectRulesNormalizesRanges(t *testing.T) {
	tbl := &models.Table{
		Dropdowns: []models.DropdownRule{
			{Range: "$b$2:$B$10", Values: []string{"x"}},
			{Range: "Data!C5", Values: []string{"y"}},
		},
		ConditionalFormats: []models.ConditionalFormatRule{
			{Range: "D9:C2", Type: "duplicate", Style: models.Style{Bold: true}},
		},
	}

	dropdowns, formats, err := NewProjector(NewRegistry(newFakeSink())).ProjectRules(tbl)
	if err != nil {
		t.Fatalf("ProjectRules failed: %v", err)
	}
	if dropdowns[0].Range != "B2:B10" || dropdowns[1].Range != "C5:C5" {
		t.Errorf("dropdown ranges = %q, %q", dropdowns[0].Range, dropdowns[1].Range)
	}
	if formats[0].Range != "C2:D9" {
		t.Errorf("conditional format range = %q, expected C2:D9", formats[0].Range)
	}
}
