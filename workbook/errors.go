package workbook

import (
	"errors"
	"fmt"
)

// ErrSheetIndex indicates a sheet index outside the workbook.
var ErrSheetIndex = errors.New("sheet index out of range")

// IOError reports a filesystem failure together with the path that was attempted.
type IOError struct {
	Op   string // "read image", "decode image", "output dir", "save"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
