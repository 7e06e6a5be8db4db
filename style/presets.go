// Package style holds the named cell-style presets and the small description
// languages (alignment, font style, number format) used by the workbook facade.
package style

import (
	"strings"

	"github.com/orayew2002/excel-adapter/excel"
	"github.com/xuri/excelize/v2"
)

// Name identifies a style preset.
type Name int

const (
	NormalCell Name = iota
	FileHeading
	ThinBorderBold
	MediumBlackBorderOutline
	ThinBlackBorderOutline
	Total
	TotalLabel
	BoldText
)

// keys are the lower-cased description strings accepted by ParseName.
var keys = map[string]Name{
	"normalcell":                    NormalCell,
	"fileheading":                   FileHeading,
	"thinborderbold":                ThinBorderBold,
	"stylemediumblackborderoutline": MediumBlackBorderOutline,
	"stylethinblackborderoutline":   ThinBlackBorderOutline,
	"styletotal":                    Total,
	"styletotallabel":               TotalLabel,
	"boldtext":                      BoldText,
}

var names = [...]string{
	NormalCell:               "normalCell",
	FileHeading:              "fileHeading",
	ThinBorderBold:           "thinBorderBold",
	MediumBlackBorderOutline: "styleMediumBlackBorderOutline",
	ThinBlackBorderOutline:   "styleThinBlackBorderOutline",
	Total:                    "styleTotal",
	TotalLabel:               "styleTotalLabel",
	BoldText:                 "boldText",
}

// ParseName maps a style description to its preset name, ignoring case and
// surrounding space. Unknown descriptions map to NormalCell; callers never get an error.
func ParseName(desc string) Name {
	if n, ok := keys[strings.ToLower(strings.TrimSpace(desc))]; ok {
		return n
	}
	return NormalCell
}

// Known reports whether desc names a preset other than by fallback.
func Known(desc string) bool {
	_, ok := keys[strings.ToLower(strings.TrimSpace(desc))]
	return ok
}

func (n Name) String() string {
	if n < 0 || int(n) >= len(names) {
		return names[NormalCell]
	}
	return names[n]
}

// Preset returns the preset registered under n.
func (n Name) Preset() Preset {
	if n < 0 || int(n) >= len(presets) {
		return presets[NormalCell]
	}
	return presets[n]
}

// Lookup is ParseName(desc).Preset().
func Lookup(desc string) Preset {
	return ParseName(desc).Preset()
}

// BorderStyle is an excelize border style index.
type BorderStyle int

const (
	BorderThin   BorderStyle = 1
	BorderMedium BorderStyle = 2
	BorderDouble BorderStyle = 6
)

// Edge selects which side(s) of a cell a border is drawn on.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	// EdgeOutline draws the border only on the perimeter of the styled block.
	EdgeOutline
)

// Font describes font attributes. Zero values leave the existing attribute untouched.
type Font struct {
	Bold, Italic, Underline bool
	Size                    float64
}

// Alignment describes cell alignment. Empty strings leave the existing value untouched.
type Alignment struct {
	Horizontal string
	Vertical   string
	WrapText   bool
}

// Border is one border entry of a preset.
type Border struct {
	Edge  Edge
	Style BorderStyle
	Color string
}

// Fill is a two-colour linear gradient.
type Fill struct {
	Rotation   int
	StartColor string
	EndColor   string
}

// Preset is an immutable bundle of formatting attributes.
type Preset struct {
	Name      Name
	Font      *Font
	Alignment *Alignment
	Borders   []Border
	Fill      *Fill
}

const black = "000000"

var presets = [...]Preset{
	NormalCell: {
		Name:      NormalCell,
		Alignment: &Alignment{Horizontal: "left"},
	},
	FileHeading: {
		Name:      FileHeading,
		Font:      &Font{Bold: true},
		Alignment: &Alignment{Horizontal: "center"},
		Borders:   []Border{{Edge: EdgeTop, Style: BorderThin, Color: black}},
		Fill:      &Fill{Rotation: 90, StartColor: "A0A0A0", EndColor: "FFFFFF"},
	},
	ThinBorderBold: {
		Name:      ThinBorderBold,
		Font:      &Font{Bold: true},
		Alignment: &Alignment{Horizontal: "center"},
		Borders:   []Border{{Edge: EdgeOutline, Style: BorderMedium, Color: black}},
	},
	MediumBlackBorderOutline: {
		Name:    MediumBlackBorderOutline,
		Borders: []Border{{Edge: EdgeOutline, Style: BorderMedium, Color: black}},
	},
	ThinBlackBorderOutline: {
		Name:    ThinBlackBorderOutline,
		Borders: []Border{{Edge: EdgeOutline, Style: BorderThin, Color: black}},
	},
	Total: {
		Name:    Total,
		Borders: []Border{{Edge: EdgeBottom, Style: BorderDouble, Color: black}},
	},
	TotalLabel: {
		Name:      TotalLabel,
		Font:      &Font{Bold: true},
		Alignment: &Alignment{Horizontal: "right"},
	},
	BoldText: {
		Name: BoldText,
		Font: &Font{Bold: true},
	},
}

// Apply overlays the preset onto st. Borders are drawn only on the sides
// listed in perimeter: a fixed-edge border on its own side, an outline border
// on each of them.
func (p Preset) Apply(st *excelize.Style, perimeter excel.Edges) {
	if p.Font != nil {
		if st.Font == nil {
			st.Font = &excelize.Font{}
		}
		if p.Font.Bold {
			st.Font.Bold = true
		}
		if p.Font.Italic {
			st.Font.Italic = true
		}
		if p.Font.Underline {
			st.Font.Underline = "single"
		}
		if p.Font.Size > 0 {
			st.Font.Size = p.Font.Size
		}
	}

	if p.Alignment != nil {
		if st.Alignment == nil {
			st.Alignment = &excelize.Alignment{}
		}
		if p.Alignment.Horizontal != "" {
			st.Alignment.Horizontal = p.Alignment.Horizontal
		}
		if p.Alignment.Vertical != "" {
			st.Alignment.Vertical = p.Alignment.Vertical
		}
		if p.Alignment.WrapText {
			st.Alignment.WrapText = true
		}
	}

	for _, b := range p.Borders {
		for _, side := range b.sides(perimeter) {
			st.Border = setBorder(st.Border, excelize.Border{Type: side, Color: b.Color, Style: int(b.Style)})
		}
	}

	if p.Fill != nil {
		st.Fill = excelize.Fill{
			Type:    "gradient",
			Color:   []string{p.Fill.StartColor, p.Fill.EndColor},
			Shading: shading(p.Fill.Rotation),
		}
	}
}

func (b Border) sides(perimeter excel.Edges) []string {
	var sides []string
	for _, s := range []struct {
		edge Edge
		side excel.Edges
		name string
	}{
		{EdgeLeft, excel.EdgeLeft, "left"},
		{EdgeTop, excel.EdgeTop, "top"},
		{EdgeRight, excel.EdgeRight, "right"},
		{EdgeBottom, excel.EdgeBottom, "bottom"},
	} {
		if (b.Edge == s.edge || b.Edge == EdgeOutline) && perimeter.Has(s.side) {
			sides = append(sides, s.name)
		}
	}
	return sides
}

// setBorder replaces the border of the same type in list, or appends it.
func setBorder(list []excelize.Border, b excelize.Border) []excelize.Border {
	for i := range list {
		if list[i].Type == b.Type {
			list[i] = b
			return list
		}
	}
	return append(list, b)
}

// shading maps a gradient rotation in degrees to the excelize linear
// shading variant.
func shading(rotation int) int {
	switch rotation {
	case 0:
		return 3
	case 45:
		return 6
	case 135:
		return 9
	default:
		return 0
	}
}
