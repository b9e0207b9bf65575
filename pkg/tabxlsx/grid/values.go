package grid

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/models"
	"github.com/xuri/excelize/v2"
)

// errFormula is returned by Coerce for formula values; the writer turns it
// into an UnsupportedFeatureError.
var errFormula = fmt.Errorf("%w: formula", ErrUnsupportedValue)

// Coerce converts a logical cell value into a scalar a sink accepts: nil,
// string, bool, an integer or float kind, time.Time or time.Duration.
// Strings lose invalid UTF-8 sequences and must fit in one cell; floats must
// be finite.
func Coerce(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case models.Formula:
		return nil, errFormula
	case string:
		return cellString(x)
	case []byte:
		return cellString(string(x))
	case float32:
		return finite(x, float64(x))
	case float64:
		return finite(x, x)
	case bool, time.Time, time.Duration,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return x, nil
	case fmt.Stringer:
		return cellString(x.String())
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func cellString(s string) (any, error) {
	s = strings.ToValidUTF8(s, "")
	if n := utf16Len(s); n > excelize.TotalCellChars {
		return nil, fmt.Errorf("%w: string of %d characters exceeds the %d cell limit",
			ErrUnsupportedValue, n, excelize.TotalCellChars)
	}
	return s, nil
}

// utf16Len counts s in UTF-16 code units, the unit of the xlsx cell limit.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

func finite(v any, f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: non-finite number %v", ErrUnsupportedValue, f)
	}
	return v, nil
}
