package style

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseAlign(t *testing.T) {
	tests := []struct {
		input      string
		horizontal string
		vertical   string
		wrap       bool
	}{
		{"HL, VT", "left", "top", false},
		{"hc", "center", "", false},
		{"hr vb wt", "right", "bottom", true},
		{"VC", "", "center", false},
		{"nothing useful", "", "", false},
		{"", "", "", false},
		{"hl hr", "left", "", false},
		{"hr, hc", "center", "", false},
		{"vt vb", "", "top", false},
	}

	for _, tt := range tests {
		a := ParseAlign(tt.input)
		if got := a.Horizontal(); got != tt.horizontal {
			t.Errorf("ParseAlign(%q).Horizontal() = %q, expected %q", tt.input, got, tt.horizontal)
		}
		if got := a.Vertical(); got != tt.vertical {
			t.Errorf("ParseAlign(%q).Vertical() = %q, expected %q", tt.input, got, tt.vertical)
		}
		if got := a.Has(AlignWrap); got != tt.wrap {
			t.Errorf("ParseAlign(%q) wrap = %v, expected %v", tt.input, got, tt.wrap)
		}
	}
}

func TestAlignApplyKeepsOtherAxis(t *testing.T) {
	st := &excelize.Style{Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "bottom"}}
	ParseAlign("vt").Apply(st)
	if st.Alignment.Horizontal != "right" || st.Alignment.Vertical != "top" {
		t.Errorf("alignment = %+v", st.Alignment)
	}

	empty := &excelize.Style{}
	ParseAlign("xyz").Apply(empty)
	if empty.Alignment != nil {
		t.Errorf("no-op description created alignment %+v", empty.Alignment)
	}
}

func TestParseFont(t *testing.T) {
	tests := []struct {
		input    string
		expected FontStyle
	}{
		{"B", FontBold},
		{"b, i, u", FontBold | FontItalic | FontUnderline},
		{"I", FontItalic},
		{"U", FontUnderline},
		{"", 0},
		{"xyz", 0},
	}

	for _, tt := range tests {
		if got := ParseFont(tt.input); got != tt.expected {
			t.Errorf("ParseFont(%q) = %03b, expected %03b", tt.input, got, tt.expected)
		}
	}

	st := &excelize.Style{}
	ParseFont("b,u").Apply(st)
	if !st.Font.Bold || st.Font.Italic || st.Font.Underline != "single" {
		t.Errorf("font = %+v", st.Font)
	}
}

func TestNumberFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"currency", `"R "#,##0.00_-`},
		{"", `"R "#,##0.00_-`},
		{"0.00%", "0.00%"},
		{"yyyy-mm-dd hh:mm", "yyyy-mm-dd hh:mm"},
		{"Currency", "Currency"},
	}

	for _, tt := range tests {
		if got := NumberFormat(tt.input); got != tt.expected {
			t.Errorf("NumberFormat(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
