package models

import (
	"fmt"
	"strconv"
	"strings"
)

// AttrName names a single style attribute.
type AttrName string

// Style attribute names. The order of the constants is the canonical
// (alphabetical) order used by Style.Attrs.
const (
	AttrAlign     AttrName = "align"
	AttrBgColor   AttrName = "bg_color"
	AttrBold      AttrName = "bold"
	AttrBorder    AttrName = "border"
	AttrFont      AttrName = "font"
	AttrFontColor AttrName = "font_color"
	AttrFontSize  AttrName = "font_size"
	AttrItalic    AttrName = "italic"
)

// Attr is one present style attribute.
type Attr struct {
	Name  AttrName
	Value any
}

// Style describes the visual formatting of a cell independently of any file
// format. The zero value of every field means the attribute is absent and the
// spreadsheet default applies. A false Bold or Italic is the same as absent.
type Style struct {
	// BgColor is the solid fill color, e.g. "#FFCC00" or "FFCC00".
	BgColor string `json:"bg_color,omitempty" yaml:"bg_color,omitempty" validate:"omitempty,xlsxcolor"`
	// Font is the font family name.
	Font string `json:"font,omitempty" yaml:"font,omitempty" validate:"omitempty,max=31"`
	// FontColor is the font color in the same notation as BgColor.
	FontColor string `json:"font_color,omitempty" yaml:"font_color,omitempty" validate:"omitempty,xlsxcolor"`
	// FontSize is the font size in points.
	FontSize float64 `json:"font_size,omitempty" yaml:"font_size,omitempty" validate:"gte=0,lte=409"`
	Bold     bool    `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic   bool    `json:"italic,omitempty" yaml:"italic,omitempty"`
	// Align is the horizontal alignment.
	Align string `json:"align,omitempty" yaml:"align,omitempty" validate:"omitempty,oneof=left center right fill justify centerContinuous distributed"`
	// Border is the border line style index applied to all four edges (1-13).
	Border int `json:"border,omitempty" yaml:"border,omitempty" validate:"gte=0,lte=13"`
}

// IsZero reports whether no attribute is present.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Attrs returns the present attributes sorted by name. It is the canonical
// form of the style: two styles are equal iff their Attrs are equal.
func (s Style) Attrs() []Attr {
	var attrs []Attr
	if s.Align != "" {
		attrs = append(attrs, Attr{AttrAlign, s.Align})
	}
	if s.BgColor != "" {
		attrs = append(attrs, Attr{AttrBgColor, s.BgColor})
	}
	if s.Bold {
		attrs = append(attrs, Attr{AttrBold, true})
	}
	if s.Border != 0 {
		attrs = append(attrs, Attr{AttrBorder, s.Border})
	}
	if s.Font != "" {
		attrs = append(attrs, Attr{AttrFont, s.Font})
	}
	if s.FontColor != "" {
		attrs = append(attrs, Attr{AttrFontColor, s.FontColor})
	}
	if s.FontSize != 0 {
		attrs = append(attrs, Attr{AttrFontSize, s.FontSize})
	}
	if s.Italic {
		attrs = append(attrs, Attr{AttrItalic, true})
	}
	return attrs
}

// Key renders the canonical attribute list. The empty style has the key "".
func (s Style) Key() string {
	attrs := s.Attrs()
	if len(attrs) == 0 {
		return ""
	}
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = string(a.Name) + "=" + formatAttrValue(a.Value)
	}
	return strings.Join(parts, ";")
}

// Validate checks every present attribute.
func (s Style) Validate() error {
	return validate.Struct(s)
}

// StyleFromAttrs rebuilds a Style from an attribute list.
func StyleFromAttrs(attrs []Attr) (Style, error) {
	var s Style
	for _, a := range attrs {
		var ok bool
		switch a.Name {
		case AttrAlign:
			s.Align, ok = a.Value.(string)
		case AttrBgColor:
			s.BgColor, ok = a.Value.(string)
		case AttrBold:
			s.Bold, ok = a.Value.(bool)
		case AttrBorder:
			s.Border, ok = a.Value.(int)
		case AttrFont:
			s.Font, ok = a.Value.(string)
		case AttrFontColor:
			s.FontColor, ok = a.Value.(string)
		case AttrFontSize:
			s.FontSize, ok = a.Value.(float64)
		case AttrItalic:
			s.Italic, ok = a.Value.(bool)
		default:
			return Style{}, fmt.Errorf("unknown style attribute %q", a.Name)
		}
		if !ok {
			return Style{}, fmt.Errorf("style attribute %q has type %T", a.Name, a.Value)
		}
	}
	return s, nil
}

func formatAttrValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
