package excel

import (
	"errors"
	"testing"
)

func TestIndexToColumn(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "A"},
		{9, "J"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}

	for _, tt := range tests {
		if got := IndexToColumn(tt.input); got != tt.expected {
			t.Errorf("IndexToColumn(%d) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestColumnToIndex(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"A", 0},
		{"a", 0},
		{"Z", 25},
		{"AA", 26},
		{"zz", 701},
		{"XFD", 16383},
	}

	for _, tt := range tests {
		got, err := ColumnToIndex(tt.input)
		if err != nil {
			t.Fatalf("ColumnToIndex(%q): %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ColumnToIndex(%q) = %d, expected %d", tt.input, got, tt.expected)
		}
	}

	for _, bad := range []string{"", "A1", "#"} {
		_, err := ColumnToIndex(bad)
		var ire *InvalidReferenceError
		if !errors.As(err, &ire) {
			t.Errorf("ColumnToIndex(%q) error = %v, expected InvalidReferenceError", bad, err)
		}
	}
}

func TestNextColumn(t *testing.T) {
	next, err := NextColumn("Z")
	if err != nil {
		t.Fatal(err)
	}
	if next != "AA" {
		t.Errorf("NextColumn(Z) = %q, expected AA", next)
	}

	col := "A"
	for range 9 {
		if col, err = NextColumn(col); err != nil {
			t.Fatal(err)
		}
	}
	if col != "J" {
		t.Errorf("A advanced nine times = %q, expected J", col)
	}

	for in, want := range map[string]string{"az": "BA", "ZZ": "AAA", "AB": "AC"} {
		got, err := NextColumn(in)
		if err != nil {
			t.Fatalf("NextColumn(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("NextColumn(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestParseCell(t *testing.T) {
	row, col, err := ParseCell("c12")
	if err != nil {
		t.Fatal(err)
	}
	if row != 11 || col != 2 {
		t.Errorf("ParseCell(c12) = (%d,%d), expected (11,2)", row, col)
	}
	if CellName(row, col) != "C12" {
		t.Errorf("CellName(%d,%d) = %q", row, col, CellName(row, col))
	}

	for _, bad := range []string{"", "12", "A0", "A-1", "?"} {
		if _, _, err := ParseCell(bad); err == nil {
			t.Errorf("ParseCell(%q) expected error", bad)
		}
	}
}

func TestCheckRow(t *testing.T) {
	for _, ok := range []int{1, 20, 1048576} {
		if err := CheckRow(ok); err != nil {
			t.Errorf("CheckRow(%d): %v", ok, err)
		}
	}
	for _, bad := range []int{0, -3, 1048577} {
		var ire *InvalidReferenceError
		if err := CheckRow(bad); !errors.As(err, &ire) {
			t.Errorf("CheckRow(%d) = %v, expected InvalidReferenceError", bad, err)
		}
	}
}
