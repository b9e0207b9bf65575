package xlsb

import (
	"errors"
	"testing"

	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/grid"
)

func TestOpenMalformed(t *testing.T) {
	_, err := Source{}.Open([]byte("not a workbook"))
	var merr *grid.MalformedInputError
	if !errors.As(err, &merr) {
		t.Errorf("err = %v, expected MalformedInputError", err)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    any
		expected any
	}{
		{nil, nil},
		{"", nil},
		{"text", "text"},
		{float64(12), int64(12)},
		{12.5, 12.5},
		{true, true},
	}
	for _, tt := range tests {
		if got := normalize(tt.input); got != tt.expected {
			t.Errorf("normalize(%v) = %v (type: %T), expected %v (type: %T)", tt.input, got, got, tt.expected, tt.expected)
		}
	}
}
