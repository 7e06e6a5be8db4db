package workbook

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// styleCache derives new styles from a cell's current style and remembers the
// result, so each (base style, patch) pair is created only once per file.
type styleCache struct {
	file  *excelize.File
	cache map[string]int
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{file: f, cache: make(map[string]int)}
}

// patch applies fn to a copy of the style currently set on cell and stores the
// result back on the cell. key must uniquely describe what fn does.
func (sc *styleCache) patch(sheet, cell, key string, fn func(*excelize.Style)) error {
	base, err := sc.file.GetCellStyle(sheet, cell)
	if err != nil {
		return err
	}

	id, err := sc.getOrCreate(base, key, fn)
	if err != nil {
		return err
	}

	return sc.file.SetCellStyle(sheet, cell, cell, id)
}

func (sc *styleCache) getOrCreate(base int, key string, fn func(*excelize.Style)) (int, error) {
	ck := strconv.Itoa(base) + "|" + key
	if id, ok := sc.cache[ck]; ok {
		return id, nil
	}

	st, err := sc.file.GetStyle(base)
	if err != nil {
		return 0, err
	}
	fn(st)

	id, err := sc.file.NewStyle(st)
	if err != nil {
		return 0, err
	}

	sc.cache[ck] = id
	return id, nil
}
