package tabxlsx

import (
	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/excel"
	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/grid"
	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/models"
)

// ExportTable returns the xlsx representation of a single table. An untitled
// table is written to a sheet named "Tablib Dataset".
func ExportTable(t *models.Table, opts Options) ([]byte, error) {
	return newWriter(opts).WriteTable(t)
}

// ExportBook returns the xlsx representation of a book, one sheet per table
// in order. An untitled table at index i is written to "Sheet{i}".
func ExportBook(b *models.Book, opts Options) ([]byte, error) {
	return newWriter(opts).WriteBook(b)
}

func newWriter(opts Options) *grid.Writer {
	return grid.NewWriter(excel.NewGridSink, grid.WriterOptions{
		Scope:        opts.StyleScope,
		FreezeHeader: opts.ShouldFreezeHeader(),
		Logger:       opts.logger(),
	})
}
