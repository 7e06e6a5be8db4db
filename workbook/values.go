package workbook

import (
	"regexp"
	"strconv"
	"strings"
)

type valueKind int

const (
	kindString valueKind = iota
	kindNumber
	kindFormula
)

var numericPat = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|[0-9]*\.?[0-9]+)([Ee][+-]?[0-9]{1,3})?$`)

// inferKind decides how a string written with SetCellValue is stored:
// "=..." is a formula, a plain number is numeric unless it has a leading zero
// ("007"), everything else is text.
func inferKind(v string) valueKind {
	if len(v) > 1 && v[0] == '=' {
		return kindFormula
	}
	if !numericPat.MatchString(v) {
		return kindString
	}
	digits := strings.TrimLeft(v, "+-")
	if len(digits) > 1 && digits[0] == '0' && digits[1] != '.' {
		return kindString
	}
	return kindNumber
}

// parseNumber returns int64 for integers and float64 otherwise.
func parseNumber(v string) (any, error) {
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return i, nil
	}
	return strconv.ParseFloat(v, 64)
}
