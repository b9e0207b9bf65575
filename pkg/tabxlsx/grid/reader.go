package grid

import (
	"errors"
	"fmt"

	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/models"
	"go.uber.org/zap"
)

// Reader rebuilds logical tables from the sheets of a Source. Only values are
// read back; styles and rules are not reconstructed.
type Reader struct {
	source Source
	logger *zap.Logger
}

// NewReader creates a reader over source. A nil logger disables logging.
func NewReader(source Source, logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{source: source, logger: logger}
}

// Read parses data into a new book, one table per sheet in file order.
func (r *Reader) Read(data []byte, headers bool) (*models.Book, error) {
	sheets, err := r.open(data)
	if err != nil {
		return nil, err
	}
	book := models.NewBook()
	for _, sheet := range sheets {
		book.AddTable(r.buildTable(sheet, headers))
	}
	return book, nil
}

// ReadInto replaces the contents of t with the first sheet of data. t is left
// untouched when data cannot be parsed.
func (r *Reader) ReadInto(t *models.Table, data []byte, headers bool) error {
	sheets, err := r.open(data)
	if err != nil {
		return err
	}
	if len(sheets) == 0 {
		return &MalformedInputError{Err: errors.New("workbook has no sheets")}
	}
	*t = *r.buildTable(sheets[0], headers)
	return nil
}

func (r *Reader) open(data []byte) ([]SheetData, error) {
	sheets, err := r.source.Open(data)
	if err != nil {
		var merr *MalformedInputError
		if errors.As(err, &merr) {
			return nil, err
		}
		return nil, &MalformedInputError{Err: err}
	}
	return sheets, nil
}

func (r *Reader) buildTable(sheet SheetData, headers bool) *models.Table {
	t := models.NewTable(sheet.Title)
	rows := sheet.Rows
	if headers && len(rows) > 0 {
		names := make([]string, len(rows[0]))
		for j, v := range rows[0] {
			names[j] = headerName(v)
		}
		t.SetHeaders(names)
		rows = rows[1:]
	}

	width := len(t.Headers)
	if !headers {
		for _, row := range rows {
			width = max(width, len(row))
		}
	}
	for _, row := range rows {
		t.Append(padRow(row, width)...)
	}

	r.logger.Debug("sheet read",
		zap.String("sheet", sheet.Title),
		zap.Int("headers", len(t.Headers)),
		zap.Int("rows", t.Height()))
	return t
}

// padRow extends row with nil up to width. Longer rows are kept as is.
func padRow(row []any, width int) []any {
	if len(row) >= width {
		return row
	}
	padded := make([]any, width)
	copy(padded, row)
	return padded
}

func headerName(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
