// Package document encodes books as YAML or JSON documents.
package document

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/models"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension. Anything other than
// ".json" is YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Decode parses and validates a book document.
func Decode(data []byte, format Format) (*models.Book, error) {
	var book models.Book
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &book); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &book); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}

	if err := book.Validate(); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	return &book, nil
}

// Encode renders a book document.
func Encode(book *models.Book, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatJSON:
		if pretty {
			return json.MarshalIndent(book, "", "  ")
		}
		return json.Marshal(book)
	case FormatYAML:
		return yaml.Marshal(book)
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}
}
