package style

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Align is a set of alignment flags parsed from a description such as "HL, VT".
type Align uint8

const (
	AlignLeft Align = 1 << iota
	AlignCenter
	AlignRight
	AlignTop
	AlignMiddle
	AlignBottom
	AlignWrap
)

var alignTokens = []struct {
	token string
	flag  Align
}{
	{"hl", AlignLeft},
	{"hc", AlignCenter},
	{"hr", AlignRight},
	{"vt", AlignTop},
	{"vc", AlignMiddle},
	{"vb", AlignBottom},
	{"wt", AlignWrap},
}

// ParseAlign collects every alignment token found anywhere in desc, ignoring case.
// Text that matches no token is ignored.
func ParseAlign(desc string) Align {
	desc = strings.ToLower(desc)
	var a Align
	for _, t := range alignTokens {
		if strings.Contains(desc, t.token) {
			a |= t.flag
		}
	}
	return a
}

// Has reports whether all flags in f are set.
func (a Align) Has(f Align) bool { return a&f == f }

// Horizontal returns the excelize horizontal alignment, or "" when none is set.
// Conflicting flags resolve center over left over right.
func (a Align) Horizontal() string {
	switch {
	case a.Has(AlignCenter):
		return "center"
	case a.Has(AlignLeft):
		return "left"
	case a.Has(AlignRight):
		return "right"
	}
	return ""
}

// Vertical returns the excelize vertical alignment, or "" when none is set.
// Conflicting flags resolve center over top over bottom.
func (a Align) Vertical() string {
	switch {
	case a.Has(AlignMiddle):
		return "center"
	case a.Has(AlignTop):
		return "top"
	case a.Has(AlignBottom):
		return "bottom"
	}
	return ""
}

// Apply sets the parsed alignment on st, keeping attributes a does not mention.
func (a Align) Apply(st *excelize.Style) {
	if a == 0 {
		return
	}
	if st.Alignment == nil {
		st.Alignment = &excelize.Alignment{}
	}
	if h := a.Horizontal(); h != "" {
		st.Alignment.Horizontal = h
	}
	if v := a.Vertical(); v != "" {
		st.Alignment.Vertical = v
	}
	if a.Has(AlignWrap) {
		st.Alignment.WrapText = true
	}
}

// FontStyle is a set of font flags parsed from a description such as "B, I".
type FontStyle uint8

const (
	FontBold FontStyle = 1 << iota
	FontItalic
	FontUnderline
)

// ParseFont sets bold, italic and underline when "b", "i" or "u" occur in desc,
// ignoring case. Any word containing one of those letters enables it.
func ParseFont(desc string) FontStyle {
	desc = strings.ToLower(desc)
	var f FontStyle
	if strings.Contains(desc, "b") {
		f |= FontBold
	}
	if strings.Contains(desc, "i") {
		f |= FontItalic
	}
	if strings.Contains(desc, "u") {
		f |= FontUnderline
	}
	return f
}

// Has reports whether all flags in o are set.
func (f FontStyle) Has(o FontStyle) bool { return f&o == o }

// Apply switches on the flagged font attributes of st.
func (f FontStyle) Apply(st *excelize.Style) {
	if f == 0 {
		return
	}
	if st.Font == nil {
		st.Font = &excelize.Font{}
	}
	if f.Has(FontBold) {
		st.Font.Bold = true
	}
	if f.Has(FontItalic) {
		st.Font.Italic = true
	}
	if f.Has(FontUnderline) {
		st.Font.Underline = "single"
	}
}

// CurrencyFormat is the number format selected by the "currency" description.
const CurrencyFormat = `"R "#,##0.00_-`

// NumberFormat maps a format description to a format code. "currency", and the
// empty description, select CurrencyFormat; anything else is used verbatim.
func NumberFormat(desc string) string {
	switch desc {
	case "", "currency":
		return CurrencyFormat
	default:
		return desc
	}
}
