package style

import (
	"testing"

	"github.com/orayew2002/excel-adapter/excel"
	"github.com/xuri/excelize/v2"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		input    string
		expected Name
	}{
		{"fileHeading", FileHeading},
		{"FILEHEADING", FileHeading},
		{"thinBorderBold", ThinBorderBold},
		{" styleMediumBlackBorderOutline ", MediumBlackBorderOutline},
		{"styleThinBlackBorderOutline", ThinBlackBorderOutline},
		{"styleTotal", Total},
		{"styletotallabel", TotalLabel},
		{"boldText", BoldText},
		{"normalCell", NormalCell},
	}

	for _, tt := range tests {
		if got := ParseName(tt.input); got != tt.expected {
			t.Errorf("ParseName(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
		if !Known(tt.input) {
			t.Errorf("Known(%q) = false", tt.input)
		}
	}
}

func TestUnknownNameFallsBackToNormal(t *testing.T) {
	for _, input := range []string{"", "bold", "HEADING", "thin-border-bold", "styleTotals"} {
		if got := ParseName(input); got != NormalCell {
			t.Errorf("ParseName(%q) = %v, expected normalCell", input, got)
		}
		if Known(input) {
			t.Errorf("Known(%q) = true", input)
		}
		p := Lookup(input)
		if p.Name != NormalCell || p.Alignment == nil || p.Alignment.Horizontal != "left" {
			t.Errorf("Lookup(%q) = %+v, expected the left-aligned normal preset", input, p)
		}
		if p.Font != nil || p.Fill != nil || len(p.Borders) != 0 {
			t.Errorf("Lookup(%q) carries font/fill/borders", input)
		}
	}
}

func TestNameString(t *testing.T) {
	if FileHeading.String() != "fileHeading" {
		t.Errorf("FileHeading.String() = %q", FileHeading.String())
	}
	if Name(99).String() != "normalCell" {
		t.Errorf("Name(99).String() = %q", Name(99).String())
	}
	if Name(99).Preset().Name != NormalCell {
		t.Error("out-of-range name did not fall back to normalCell")
	}
}

func TestPresetDefinitions(t *testing.T) {
	fh := Lookup("fileHeading")
	if fh.Font == nil || !fh.Font.Bold {
		t.Error("fileHeading should be bold")
	}
	if fh.Alignment.Horizontal != "center" {
		t.Errorf("fileHeading horizontal = %q", fh.Alignment.Horizontal)
	}
	if fh.Fill == nil || fh.Fill.Rotation != 90 || fh.Fill.StartColor != "A0A0A0" || fh.Fill.EndColor != "FFFFFF" {
		t.Errorf("fileHeading fill = %+v", fh.Fill)
	}
	if len(fh.Borders) != 1 || fh.Borders[0].Edge != EdgeTop || fh.Borders[0].Style != BorderThin {
		t.Errorf("fileHeading borders = %+v", fh.Borders)
	}

	total := Lookup("styleTotal")
	if len(total.Borders) != 1 || total.Borders[0].Edge != EdgeBottom || total.Borders[0].Style != BorderDouble {
		t.Errorf("styleTotal borders = %+v", total.Borders)
	}

	label := Lookup("styleTotalLabel")
	if !label.Font.Bold || label.Alignment.Horizontal != "right" {
		t.Errorf("styleTotalLabel = %+v / %+v", label.Font, label.Alignment)
	}
}

func borderOf(st *excelize.Style, side string) int {
	for _, b := range st.Border {
		if b.Type == side {
			return b.Style
		}
	}
	return 0
}

func TestApplyOutlineUsesPerimeter(t *testing.T) {
	p := Lookup("thinBorderBold")

	st := &excelize.Style{}
	p.Apply(st, excel.EdgeLeft|excel.EdgeTop)

	if borderOf(st, "left") != int(BorderMedium) || borderOf(st, "top") != int(BorderMedium) {
		t.Errorf("corner borders = %+v", st.Border)
	}
	if borderOf(st, "right") != 0 || borderOf(st, "bottom") != 0 {
		t.Errorf("unexpected inner borders = %+v", st.Border)
	}
	if st.Font == nil || !st.Font.Bold {
		t.Error("font not bold")
	}
	if st.Alignment == nil || st.Alignment.Horizontal != "center" {
		t.Error("alignment not centered")
	}

	inner := &excelize.Style{}
	p.Apply(inner, excel.NoEdges)
	if len(inner.Border) != 0 {
		t.Errorf("interior cell got borders %+v", inner.Border)
	}
}

func TestApplyFixedEdgeFollowsPerimeter(t *testing.T) {
	tests := []struct {
		perimeter excel.Edges
		expected  int
	}{
		{excel.AllEdges, int(BorderDouble)},
		{excel.EdgeBottom, int(BorderDouble)},
		{excel.EdgeLeft | excel.EdgeBottom, int(BorderDouble)},
		{excel.EdgeTop, 0},
		{excel.NoEdges, 0},
	}

	for _, tt := range tests {
		st := &excelize.Style{}
		Lookup("styleTotal").Apply(st, tt.perimeter)
		if got := borderOf(st, "bottom"); got != tt.expected {
			t.Errorf("perimeter %04b: bottom border = %d, expected %d", tt.perimeter, got, tt.expected)
		}
		for _, side := range []string{"left", "top", "right"} {
			if borderOf(st, side) != 0 {
				t.Errorf("perimeter %04b: unexpected %s border %+v", tt.perimeter, side, st.Border)
			}
		}
	}
}

func TestShading(t *testing.T) {
	tests := []struct {
		rotation int
		expected int
	}{
		{90, 0},
		{0, 3},
		{45, 6},
		{135, 9},
		{30, 0},
	}

	for _, tt := range tests {
		if got := shading(tt.rotation); got != tt.expected {
			t.Errorf("shading(%d) = %d, expected %d", tt.rotation, got, tt.expected)
		}
	}
}

func TestApplyMergesIntoExisting(t *testing.T) {
	st := &excelize.Style{
		Font:      &excelize.Font{Italic: true, Size: 14},
		Alignment: &excelize.Alignment{Vertical: "top"},
		Border:    []excelize.Border{{Type: "top", Color: "FF0000", Style: 2}},
	}
	Lookup("fileHeading").Apply(st, excel.AllEdges)

	if !st.Font.Italic || !st.Font.Bold || st.Font.Size != 14 {
		t.Errorf("font = %+v", st.Font)
	}
	if st.Alignment.Vertical != "top" || st.Alignment.Horizontal != "center" {
		t.Errorf("alignment = %+v", st.Alignment)
	}
	if len(st.Border) != 1 || st.Border[0].Style != int(BorderThin) || st.Border[0].Color != "000000" {
		t.Errorf("border = %+v", st.Border)
	}
	if st.Fill.Type != "gradient" || len(st.Fill.Color) != 2 || st.Fill.Shading != 0 {
		t.Errorf("fill = %+v", st.Fill)
	}
}
