package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/models"
	"go.uber.org/zap"
)

// DefaultTableTitle names the sheet of an untitled single-table export.
const DefaultTableTitle = "Tablib Dataset"

// Scope controls how long a style registry lives during an export.
type Scope int

const (
	// ScopeBook shares one registry across all tables of an export, so an
	// identical style used in two tables is created once.
	ScopeBook Scope = iota
	// ScopeTable creates a fresh registry for each table.
	ScopeTable
)

// WriterOptions configures a Writer.
type WriterOptions struct {
	Scope Scope
	// FreezeHeader freezes the header row of tables that have headers.
	FreezeHeader bool
	Logger       *zap.Logger
}

// Writer drives a Sink to serialize tables. Each call uses a new sink from
// the factory, so a Writer may be used by several goroutines.
type Writer struct {
	newSink func() Sink
	opts    WriterOptions
	logger  *zap.Logger
}

// NewWriter creates a writer. newSink must return an independent sink on
// every call.
func NewWriter(newSink func() Sink, opts WriterOptions) *Writer {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{newSink: newSink, opts: opts, logger: logger}
}

// WriteTable serializes a single table. An untitled table is written to a
// sheet named DefaultTableTitle.
func (w *Writer) WriteTable(t *models.Table) ([]byte, error) {
	return w.write([]*models.Table{t}, func(int) string { return DefaultTableTitle })
}

// WriteBook serializes every table of b in order. An untitled table is
// written to a sheet named "Sheet{index}" with a 0-based index.
func (w *Writer) WriteBook(b *models.Book) ([]byte, error) {
	return w.write(b.Tables, func(i int) string { return fmt.Sprintf("Sheet%d", i) })
}

func (w *Writer) write(tables []*models.Table, defaultName func(int) string) (out []byte, err error) {
	sink := w.newSink()
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			out, err = nil, cerr
		}
	}()

	registry := NewRegistry(sink)
	seen := make(map[string]bool, len(tables))
	for i, t := range tables {
		if t == nil {
			return nil, NewSheetError(defaultName(i), ErrNilTable)
		}
		name := t.Title
		if name == "" {
			name = defaultName(i)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, NewSheetError(name, ErrDuplicateSheet)
		}
		seen[key] = true

		if w.opts.Scope == ScopeTable && i > 0 {
			registry = NewRegistry(sink)
		}
		if err := w.writeTable(sink, registry, t, name); err != nil {
			return nil, err
		}
	}

	data, err := sink.Finalize()
	if err != nil {
		return nil, fmt.Errorf("finalize workbook: %w", err)
	}
	w.logger.Debug("workbook serialized",
		zap.Int("sheets", len(tables)),
		zap.Int("bytes", len(data)))
	return data, nil
}

func (w *Writer) writeTable(sink Sink, registry *Registry, t *models.Table, name string) error {
	sheet, err := sink.CreateSheet(name)
	if err != nil {
		return NewSheetError(name, err)
	}

	if err := registry.Preregister(t); err != nil {
		return withSheet(err, name)
	}

	projector := NewProjector(registry)
	rows, err := projector.Project(t)
	if err != nil {
		return withSheet(err, name)
	}
	dropdowns, formats, err := projector.ProjectRules(t)
	if err != nil {
		return withSheet(err, name)
	}

	for i, row := range rows {
		for j, cell := range row {
			value, err := Coerce(cell.Value)
			if errors.Is(err, errFormula) {
				return &UnsupportedFeatureError{Feature: "formula", Sheet: name, Row: i, Col: j}
			}
			if err != nil {
				return NewSerializationError(name, i, j, err)
			}
			if err := sink.WriteCell(sheet, i, j, value, cell.Style); err != nil {
				return NewSerializationError(name, i, j, err)
			}
		}
	}

	if w.opts.FreezeHeader && t.HasHeaders() {
		if err := sink.FreezeRows(sheet, 1); err != nil {
			return NewSheetError(name, err)
		}
	}
	for _, spec := range dropdowns {
		if err := sink.ApplyDropdown(sheet, spec); err != nil {
			return NewSheetError(name, fmt.Errorf("dropdown %s: %w", spec.Range, err))
		}
	}
	for _, spec := range formats {
		if err := sink.ApplyConditionalFormat(sheet, spec); err != nil {
			return NewSheetError(name, fmt.Errorf("conditional format %s: %w", spec.Range, err))
		}
	}

	w.logger.Debug("sheet written",
		zap.String("sheet", name),
		zap.Int("rows", len(rows)),
		zap.Int("styles", registry.Len()))
	return nil
}

// withSheet replaces the sheet name carried by a SerializationError.
func withSheet(err error, name string) error {
	var serr *SerializationError
	if errors.As(err, &serr) {
		serr.Sheet = name
	}
	return err
}
