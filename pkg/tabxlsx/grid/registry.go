package grid

import (
	"fmt"

	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/models"
)

// Registry deduplicates styles into sink handles keyed by canonical content.
// A Registry belongs to a single export and must not be shared between sinks.
type Registry struct {
	sink        Sink
	cells       map[string]StyleHandle
	conditional map[string]StyleHandle
}

// NewRegistry creates an empty registry bound to sink.
func NewRegistry(sink Sink) *Registry {
	return &Registry{
		sink:        sink,
		cells:       make(map[string]StyleHandle),
		conditional: make(map[string]StyleHandle),
	}
}

// Resolve returns the cell style handle for s, creating it on first use. The
// empty style resolves to NoStyle without touching the sink.
func (r *Registry) Resolve(s models.Style) (StyleHandle, error) {
	return r.resolve(s, r.cells, r.sink.CreateStyle)
}

// ResolveConditional is Resolve for the styles of conditional formats, which
// the sink keeps apart from cell styles.
func (r *Registry) ResolveConditional(s models.Style) (StyleHandle, error) {
	return r.resolve(s, r.conditional, r.sink.CreateConditionalStyle)
}

func (r *Registry) resolve(s models.Style, cache map[string]StyleHandle, create func([]models.Attr) (StyleHandle, error)) (StyleHandle, error) {
	key := s.Key()
	if key == "" {
		return NoStyle, nil
	}
	if h, ok := cache[key]; ok {
		return h, nil
	}
	if err := s.Validate(); err != nil {
		return NoStyle, fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}
	h, err := create(s.Attrs())
	if err != nil {
		return NoStyle, err
	}
	cache[key] = h
	return h, nil
}

// Preregister resolves every style a table uses: the declared style list,
// header styles, cell styles and the styles of conditional formats. A bad
// header or cell style fails with a SerializationError carrying its base row
// and column.
func (r *Registry) Preregister(t *models.Table) error {
	for _, s := range t.Styles {
		if _, err := r.Resolve(s); err != nil {
			return NewSheetError(t.Title, err)
		}
	}
	for j, s := range t.HeaderStyles {
		if _, err := r.Resolve(s); err != nil {
			return NewSerializationError(t.Title, 0, j, err)
		}
	}
	offset := 0
	if t.HasHeaders() {
		offset = 1
	}
	for i, row := range t.Rows {
		for j, s := range row.Styles {
			if _, err := r.Resolve(s); err != nil {
				return NewSerializationError(t.Title, i+offset, j, err)
			}
		}
	}
	for _, rule := range t.ConditionalFormats {
		if _, err := r.ResolveConditional(rule.Style); err != nil {
			return NewSheetError(t.Title, fmt.Errorf("conditional format %s: %w", rule.Range, err))
		}
	}
	return nil
}

// Len returns the number of distinct handles created so far.
func (r *Registry) Len() int {
	return len(r.cells) + len(r.conditional)
}
