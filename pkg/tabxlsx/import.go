package tabxlsx

import (
	"fmt"

	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/excel"
	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/grid"
	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/models"
	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/xlsb"
)

// ImportTable replaces the contents of t with the first sheet of data. On
// error t is left unmodified.
func ImportTable(t *models.Table, data []byte, opts Options) error {
	r, err := newReader(opts)
	if err != nil {
		return err
	}
	return r.ReadInto(t, data, opts.ShouldReadHeaders())
}

// ImportBook replaces the tables of b with the sheets of data. On error b is
// left unmodified.
func ImportBook(b *models.Book, data []byte, opts Options) error {
	r, err := newReader(opts)
	if err != nil {
		return err
	}
	parsed, err := r.Read(data, opts.ShouldReadHeaders())
	if err != nil {
		return err
	}
	b.Wipe()
	for _, t := range parsed.Tables {
		b.AddTable(t)
	}
	return nil
}

// Detect reports whether data is a readable xlsx workbook.
func Detect(data []byte) bool {
	return excel.Detect(data)
}

func newReader(opts Options) (*grid.Reader, error) {
	source, err := sourceFor(opts.Format)
	if err != nil {
		return nil, err
	}
	return grid.NewReader(source, opts.logger()), nil
}

func sourceFor(f Format) (grid.Source, error) {
	switch f {
	case "", FormatXLSX:
		return excel.Source{}, nil
	case FormatXLSB:
		return xlsb.Source{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
