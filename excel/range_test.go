package excel

import (
	"errors"
	"testing"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected Range
		str      string
	}{
		{"A1", Range{0, 0, 0, 0}, "A1"},
		{"a1:d6", Range{0, 0, 5, 3}, "A1:D6"},
		{"D6:A1", Range{0, 0, 5, 3}, "A1:D6"},
		{"Y2:AB3", Range{1, 24, 2, 27}, "Y2:AB3"},
	}

	for _, tt := range tests {
		got, err := ParseRange(tt.input)
		if err != nil {
			t.Fatalf("ParseRange(%q): %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ParseRange(%q) = %+v, expected %+v", tt.input, got, tt.expected)
		}
		if got.String() != tt.str {
			t.Errorf("ParseRange(%q).String() = %q, expected %q", tt.input, got.String(), tt.str)
		}
	}
}

func TestParseRangeInvalid(t *testing.T) {
	for _, bad := range []string{"", "A1:", ":B2", "A1:B", "hello"} {
		_, err := ParseRange(bad)
		var ire *InvalidReferenceError
		if !errors.As(err, &ire) {
			t.Errorf("ParseRange(%q) error = %v, expected InvalidReferenceError", bad, err)
			continue
		}
		if ire.Ref != bad {
			t.Errorf("ParseRange(%q) reported ref %q", bad, ire.Ref)
		}
	}
}

func TestRangeEachCrossesZ(t *testing.T) {
	r, err := ParseRange("Y1:AB2")
	if err != nil {
		t.Fatal(err)
	}

	var cells []string
	if err := r.Each(func(row, col int) error {
		cells = append(cells, CellName(row, col))
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	expected := []string{"Y1", "Z1", "AA1", "AB1", "Y2", "Z2", "AA2", "AB2"}
	if len(cells) != len(expected) {
		t.Fatalf("visited %v, expected %v", cells, expected)
	}
	for i := range expected {
		if cells[i] != expected[i] {
			t.Errorf("cell %d = %s, expected %s", i, cells[i], expected[i])
		}
	}
}

func TestRangeEachStopsOnError(t *testing.T) {
	r, _ := ParseRange("A1:C3")
	stop := errors.New("stop")
	calls := 0
	err := r.Each(func(row, col int) error {
		calls++
		if row == 0 && col == 1 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("Each error = %v, expected wrapped stop", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, expected 2", calls)
	}
}

func TestRangePerimeter(t *testing.T) {
	r, _ := ParseRange("B2:D4")
	tests := []struct {
		cell     string
		expected Edges
	}{
		{"B2", EdgeLeft | EdgeTop},
		{"C2", EdgeTop},
		{"D2", EdgeTop | EdgeRight},
		{"C3", NoEdges},
		{"D4", EdgeRight | EdgeBottom},
		{"B3", EdgeLeft},
	}
	for _, tt := range tests {
		row, col, _ := ParseCell(tt.cell)
		if got := r.Perimeter(row, col); got != tt.expected {
			t.Errorf("Perimeter(%s) = %04b, expected %04b", tt.cell, got, tt.expected)
		}
	}

	single, _ := ParseRange("A1")
	if got := single.Perimeter(0, 0); got != AllEdges {
		t.Errorf("single cell perimeter = %04b, expected all edges", got)
	}
}
