package excel

import (
	"errors"
	"fmt"
	"strings"
)

// Edges is a set of rectangle sides.
type Edges uint8

const (
	EdgeLeft Edges = 1 << iota
	EdgeTop
	EdgeRight
	EdgeBottom

	NoEdges  Edges = 0
	AllEdges       = EdgeLeft | EdgeTop | EdgeRight | EdgeBottom
)

// Has reports whether every side in o is present in e.
func (e Edges) Has(o Edges) bool { return e&o == o }

// Range is a rectangular block of cells. Coordinates are 0-based and inclusive;
// From is always the top-left corner.
type Range struct {
	FromRow, FromCol int
	ToRow, ToCol     int
}

// ParseRange parses "A1:D6" or a single cell reference "A1".
// Corners given in any order are normalised.
func ParseRange(ref string) (Range, error) {
	from, to, isRange := strings.Cut(strings.TrimSpace(ref), ":")
	r1, c1, err := ParseCell(from)
	if err != nil {
		return Range{}, &InvalidReferenceError{Ref: ref, Err: unwrapRef(err)}
	}
	if !isRange {
		return Range{FromRow: r1, FromCol: c1, ToRow: r1, ToCol: c1}, nil
	}

	r2, c2, err := ParseCell(to)
	if err != nil {
		return Range{}, &InvalidReferenceError{Ref: ref, Err: unwrapRef(err)}
	}

	return Range{
		FromRow: min(r1, r2), FromCol: min(c1, c2),
		ToRow: max(r1, r2), ToCol: max(c1, c2),
	}, nil
}

// Single reports whether the range covers exactly one cell.
func (r Range) Single() bool {
	return r.FromRow == r.ToRow && r.FromCol == r.ToCol
}

// TopLeft returns the reference of the top-left cell.
func (r Range) TopLeft() string { return CellName(r.FromRow, r.FromCol) }

// BottomRight returns the reference of the bottom-right cell.
func (r Range) BottomRight() string { return CellName(r.ToRow, r.ToCol) }

// String returns "A1" for a single cell and "A1:D6" otherwise.
func (r Range) String() string {
	if r.Single() {
		return r.TopLeft()
	}
	return r.TopLeft() + ":" + r.BottomRight()
}

// Perimeter reports which sides of the range the cell at (row, col) lies on.
func (r Range) Perimeter(row, col int) Edges {
	var e Edges
	if col == r.FromCol {
		e |= EdgeLeft
	}
	if col == r.ToCol {
		e |= EdgeRight
	}
	if row == r.FromRow {
		e |= EdgeTop
	}
	if row == r.ToRow {
		e |= EdgeBottom
	}
	return e
}

// Each calls fn for every cell of the range, row by row, left to right.
// Iteration stops at the first error.
func (r Range) Each(fn func(row, col int) error) error {
	for row := r.FromRow; row <= r.ToRow; row++ {
		for col := r.FromCol; col <= r.ToCol; col++ {
			if err := fn(row, col); err != nil {
				return fmt.Errorf("cell %s: %w", CellName(row, col), err)
			}
		}
	}
	return nil
}

func unwrapRef(err error) error {
	var ire *InvalidReferenceError
	if errors.As(err, &ire) {
		return ire.Err
	}
	return err
}
