package workbook

import (
	"fmt"
	"strconv"

	"github.com/orayew2002/excel-adapter/excel"
	"github.com/orayew2002/excel-adapter/style"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// DefaultHeaderStyle is the preset SetColumnHeaders uses when none is given.
const DefaultHeaderStyle = "thinBorderBold"

// Sheet issues commands against one sheet of a Workbook.
type Sheet struct {
	wb   *Workbook
	name string
}

// Name returns the sheet name.
func (s *Sheet) Name() string { return s.name }

// ApplyMode selects how SetStyle treats a multi-cell range.
type ApplyMode int

const (
	// PerCell styles every cell of the range as if it stood alone, so outline
	// borders are drawn around each cell.
	PerCell ApplyMode = iota
	// Outline styles the range as one block: outline borders are drawn only on its perimeter.
	Outline
)

// ParseApplyMode maps the legacy outline flag: "0" (or empty) is PerCell, anything else Outline.
func ParseApplyMode(outline string) ApplyMode {
	if outline == "" || outline == "0" {
		return PerCell
	}
	return Outline
}

// Header is one column header. A zero Width leaves the column width unchanged.
type Header struct {
	Label string
	Width float64
}

// SetCellValue writes value to cell. Strings are typed the way a spreadsheet
// would type them on entry: "=..." becomes a formula, plain numbers become
// numeric (unless they carry a leading zero), everything else stays text.
// Other Go values are written as excelize types them.
func (s *Sheet) SetCellValue(cell string, value any) error {
	ref, err := normalizeCell(cell)
	if err != nil {
		return err
	}

	s.wb.mu.Lock()
	defer s.wb.mu.Unlock()

	if err := s.setValue(ref, value); err != nil {
		return fmt.Errorf("set value %s: %w", ref, err)
	}

	s.wb.log.Debug().Str("sheet", s.name).Str("cell", ref).Interface("value", value).Msg("set cell value")
	return nil
}

func (s *Sheet) setValue(ref string, value any) error {
	v, ok := value.(string)
	if !ok {
		return s.wb.file.SetCellValue(s.name, ref, value)
	}

	switch inferKind(v) {
	case kindFormula:
		return s.wb.file.SetCellFormula(s.name, ref, v[1:])
	case kindNumber:
		n, err := parseNumber(v)
		if err != nil {
			return s.wb.file.SetCellStr(s.name, ref, v)
		}
		return s.wb.file.SetCellValue(s.name, ref, n)
	default:
		return s.wb.file.SetCellStr(s.name, ref, v)
	}
}

// SetCellValueForceString writes value as text, bypassing type inference.
func (s *Sheet) SetCellValueForceString(cell, value string) error {
	ref, err := normalizeCell(cell)
	if err != nil {
		return err
	}

	s.wb.mu.Lock()
	defer s.wb.mu.Unlock()

	if err := s.wb.file.SetCellStr(s.name, ref, value); err != nil {
		return fmt.Errorf("set string %s: %w", ref, err)
	}

	s.wb.log.Debug().Str("sheet", s.name).Str("cell", ref).Str("value", value).Msg("set cell string")
	return nil
}

// SetColumnHeaders writes one header per column on the 1-based row, starting
// at column startCol ("A" when empty), applies styleKey (DefaultHeaderStyle
// when empty) to each header cell, and sets the width of every column whose
// header carries one.
func (s *Sheet) SetColumnHeaders(headers []Header, row int, startCol, styleKey string) error {
	if startCol == "" {
		startCol = "A"
	}
	if styleKey == "" {
		styleKey = DefaultHeaderStyle
	}
	if err := excel.CheckRow(row); err != nil {
		return err
	}
	idx, err := excel.ColumnToIndex(startCol)
	if err != nil {
		return err
	}
	col := excel.IndexToColumn(idx)

	preset := style.Lookup(styleKey)

	s.wb.mu.Lock()
	defer s.wb.mu.Unlock()

	for i, h := range headers {
		ref := col + strconv.Itoa(row)

		if err := s.setValue(ref, h.Label); err != nil {
			return fmt.Errorf("header %d at %s: %w", i, ref, err)
		}
		if h.Width > 0 {
			if err := s.wb.file.SetColWidth(s.name, col, col, h.Width); err != nil {
				return fmt.Errorf("header %d width: %w", i, err)
			}
		}
		if err := s.applyPreset(ref, preset, excel.AllEdges); err != nil {
			return fmt.Errorf("header %d style: %w", i, err)
		}

		if col, err = excel.NextColumn(col); err != nil {
			return err
		}
	}

	s.wb.log.Debug().Str("sheet", s.name).Int("row", row).Int("count", len(headers)).Str("style", preset.Name.String()).Msg("set column headers")
	return nil
}

// MergeCells merges the range into a single cell.
func (s *Sheet) MergeCells(ref string) error {
	r, err := excel.ParseRange(ref)
	if err != nil {
		return err
	}

	s.wb.mu.Lock()
	defer s.wb.mu.Unlock()

	if err := s.wb.file.MergeCell(s.name, r.TopLeft(), r.BottomRight()); err != nil {
		return fmt.Errorf("merge %s: %w", r, err)
	}

	s.wb.log.Debug().Str("sheet", s.name).Str("range", r.String()).Msg("merge cells")
	return nil
}

// SetStyle applies the preset named by styleKey to a cell or range. Unknown
// keys apply the normalCell preset. Every cell of the range is visited; mode
// decides whether outline borders surround each cell or only the block.
func (s *Sheet) SetStyle(ref, styleKey string, mode ApplyMode) error {
	r, err := excel.ParseRange(ref)
	if err != nil {
		return err
	}
	preset := style.Lookup(styleKey)

	s.wb.mu.Lock()
	defer s.wb.mu.Unlock()

	if err := r.Each(func(row, col int) error {
		perimeter := excel.AllEdges
		if mode == Outline {
			perimeter = r.Perimeter(row, col)
		}
		return s.applyPreset(excel.CellName(row, col), preset, perimeter)
	}); err != nil {
		return fmt.Errorf("style %s: %w", r, err)
	}

	s.wb.log.Debug().Str("sheet", s.name).Str("range", r.String()).Str("style", preset.Name.String()).Int("mode", int(mode)).Msg("set style")
	return nil
}

func (s *Sheet) applyPreset(ref string, p style.Preset, perimeter excel.Edges) error {
	key := fmt.Sprintf("preset:%d:%d", p.Name, perimeter)
	return s.wb.styles.patch(s.name, ref, key, func(st *excelize.Style) {
		p.Apply(st, perimeter)
	})
}

// SetAlignment applies the alignment tokens found in desc ("hl", "hc", "hr",
// "vt", "vc", "vb", "wt", case-insensitive, combinable) to every cell of the range.
func (s *Sheet) SetAlignment(ref, desc string) error {
	a := style.ParseAlign(desc)
	return s.patchRange(ref, "align", strconv.Itoa(int(a)), a.Apply, func(e *zerolog.Event) {
		e.Str("align", desc)
	})
}

// SetFontSize sets the font size of every cell of the range.
func (s *Sheet) SetFontSize(ref string, size float64) error {
	return s.patchRange(ref, "font size", strconv.FormatFloat(size, 'g', -1, 64), func(st *excelize.Style) {
		if st.Font == nil {
			st.Font = &excelize.Font{}
		}
		st.Font.Size = size
	}, func(e *zerolog.Event) {
		e.Float64("size", size)
	})
}

// SetFontStyle applies the font tokens found in desc ("b", "i", "u",
// case-insensitive, combinable) to every cell of the range.
func (s *Sheet) SetFontStyle(ref, desc string) error {
	f := style.ParseFont(desc)
	return s.patchRange(ref, "font style", strconv.Itoa(int(f)), f.Apply, func(e *zerolog.Event) {
		e.Str("font", desc)
	})
}

// SetNumberFormat sets the number format of every cell of the range.
// "currency" (or "") selects style.CurrencyFormat; any other description is
// used as the format code itself.
func (s *Sheet) SetNumberFormat(ref, desc string) error {
	code := style.NumberFormat(desc)
	return s.patchRange(ref, "number format", code, func(st *excelize.Style) {
		c := code
		st.NumFmt = 0
		st.CustomNumFmt = &c
	}, func(e *zerolog.Event) {
		e.Str("format", code)
	})
}

// patchRange applies fn to the style of every cell of ref. op and arg
// together identify the change for the style cache.
func (s *Sheet) patchRange(ref, op, arg string, fn func(*excelize.Style), fields func(*zerolog.Event)) error {
	r, err := excel.ParseRange(ref)
	if err != nil {
		return err
	}

	s.wb.mu.Lock()
	defer s.wb.mu.Unlock()

	if err := r.Each(func(row, col int) error {
		return s.wb.styles.patch(s.name, excel.CellName(row, col), op+":"+arg, fn)
	}); err != nil {
		return fmt.Errorf("%s %s: %w", op, r, err)
	}

	e := s.wb.log.Debug().Str("sheet", s.name).Str("range", r.String())
	fields(e)
	e.Msg("set " + op)
	return nil
}

// SetRowHeight sets the height of the 1-based row.
func (s *Sheet) SetRowHeight(row int, height float64) error {
	if err := excel.CheckRow(row); err != nil {
		return err
	}

	s.wb.mu.Lock()
	defer s.wb.mu.Unlock()

	if err := s.wb.file.SetRowHeight(s.name, row, height); err != nil {
		return fmt.Errorf("row %d height: %w", row, err)
	}

	s.wb.log.Debug().Str("sheet", s.name).Int("row", row).Float64("height", height).Msg("set row height")
	return nil
}

// SetRowHeightByRange sets the height of rows rowFrom up to, but not
// including, rowTo. SetRowHeightByRange(1, 5, h) changes rows 1 to 4.
func (s *Sheet) SetRowHeightByRange(rowFrom, rowTo int, height float64) error {
	for row := rowFrom; row < rowTo; row++ {
		if err := s.SetRowHeight(row, height); err != nil {
			return err
		}
	}
	return nil
}

// SetColumnWidths sets consecutive column widths starting at startCol ("A" when empty).
func (s *Sheet) SetColumnWidths(widths []float64, startCol string) error {
	if startCol == "" {
		startCol = "A"
	}
	idx, err := excel.ColumnToIndex(startCol)
	if err != nil {
		return err
	}
	col := excel.IndexToColumn(idx)

	s.wb.mu.Lock()
	defer s.wb.mu.Unlock()

	for _, w := range widths {
		if err := s.wb.file.SetColWidth(s.name, col, col, w); err != nil {
			return fmt.Errorf("column %s width: %w", col, err)
		}
		if col, err = excel.NextColumn(col); err != nil {
			return err
		}
	}

	s.wb.log.Debug().Str("sheet", s.name).Str("start", startCol).Int("count", len(widths)).Msg("set column widths")
	return nil
}

func normalizeCell(cell string) (string, error) {
	row, col, err := excel.ParseCell(cell)
	if err != nil {
		return "", err
	}
	return excel.CellName(row, col), nil
}
