package excel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellName converts 0-based row and column indices to an Excel cell reference (e.g. 0,0 → "A1").
func CellName(row, col int) string {
	return fmt.Sprintf("%s%d", IndexToColumn(col), row+1)
}

// IndexToColumn converts a 0-based column index to Excel column letters (0→A, 25→Z, 26→AA).
func IndexToColumn(n int) string {
	result := ""
	for n >= 0 {
		result = string(rune('A'+(n%26))) + result
		n = n/26 - 1
	}
	return result
}

// ColumnToIndex converts column letters to a 0-based index ("A"→0, "Z"→25, "AA"→26).
// Letters are matched case-insensitively.
func ColumnToIndex(col string) (int, error) {
	n, err := excelize.ColumnNameToNumber(strings.TrimSpace(col))
	if err != nil {
		return 0, &InvalidReferenceError{Ref: col, Err: err}
	}
	return n - 1, nil
}

// NextColumn returns the column following col in bijective base-26 order
// (A→B, Z→AA, AZ→BA, ZZ→AAA). The result is always upper-case.
func NextColumn(col string) (string, error) {
	idx, err := ColumnToIndex(col)
	if err != nil {
		return "", err
	}
	return IndexToColumn(idx + 1), nil
}

// ParseCell splits a cell reference such as "b12" into 0-based row and column indices.
func ParseCell(ref string) (row, col int, err error) {
	c, r, err := excelize.CellNameToCoordinates(strings.ToUpper(strings.TrimSpace(ref)))
	if err != nil {
		return 0, 0, &InvalidReferenceError{Ref: ref, Err: err}
	}
	return r - 1, c - 1, nil
}

// CheckRow validates a 1-based row number.
func CheckRow(row int) error {
	if row < 1 || row > excelize.TotalRows {
		return &InvalidReferenceError{
			Ref: strconv.Itoa(row),
			Err: fmt.Errorf("row number must be between 1 and %d", excelize.TotalRows),
		}
	}
	return nil
}
