package report

import (
	"fmt"
	"strconv"

	"github.com/orayew2002/excel-adapter/domain"
	"github.com/orayew2002/excel-adapter/style"
	"github.com/orayew2002/excel-adapter/workbook"
)

const (
	titleRow  = 1
	headerRow = 3
	firstRow  = headerRow + 1
	lastCol   = "F"
	amountCol = "F"
)

// columns defines the layout of the ledger table.
var columns = []workbook.Header{
	{Label: "№", Width: 6},
	{Label: "DATE", Width: 12},
	{Label: "PAYEE", Width: 30},
	{Label: "REFERENCE", Width: 12},
	{Label: "CATEGORY", Width: 14},
	{Label: "AMOUNT", Width: 16},
}

// Ledger writes a titled payment ledger with a total row onto the active
// sheet of wb. It returns the 1-based row holding the total.
func Ledger(wb *workbook.Workbook, creator, title string, entries []domain.Entry) (int, error) {
	if err := wb.SetProperties(creator, title); err != nil {
		return 0, fmt.Errorf("properties: %w", err)
	}

	sheet := wb.ActiveSheet()

	if err := writeTitle(sheet, title); err != nil {
		return 0, fmt.Errorf("write title: %w", err)
	}

	if err := writeHeaders(sheet); err != nil {
		return 0, fmt.Errorf("write headers: %w", err)
	}

	if err := writeRows(sheet, entries); err != nil {
		return 0, fmt.Errorf("write rows: %w", err)
	}

	totalRow := firstRow + len(entries)
	if err := writeTotal(sheet, totalRow, len(entries)); err != nil {
		return 0, fmt.Errorf("write total: %w", err)
	}

	return totalRow, nil
}

func writeTitle(sheet *workbook.Sheet, title string) error {
	ref := fmt.Sprintf("A%d:%s%d", titleRow, lastCol, titleRow)

	if err := sheet.SetCellValueForceString(cell("A", titleRow), title); err != nil {
		return err
	}
	if err := sheet.MergeCells(ref); err != nil {
		return err
	}
	if err := sheet.SetStyle(ref, style.FileHeading.String(), workbook.Outline); err != nil {
		return err
	}
	if err := sheet.SetFontSize(ref, 14); err != nil {
		return err
	}
	return sheet.SetRowHeight(titleRow, 30)
}

func writeHeaders(sheet *workbook.Sheet) error {
	if err := sheet.SetColumnHeaders(columns, headerRow, "A", workbook.DefaultHeaderStyle); err != nil {
		return err
	}
	return sheet.SetAlignment(fmt.Sprintf("A%d:%s%d", headerRow, lastCol, headerRow), "hc vc wt")
}

func writeRows(sheet *workbook.Sheet, entries []domain.Entry) error {
	for i, e := range entries {
		row := firstRow + i
		values := []struct {
			col   string
			value any
		}{
			{"A", i + 1},
			{"B", e.Date.Format("2006-01-02")},
			{"C", e.Payee},
			{"E", e.Category},
			{"F", e.Amount},
		}
		for _, v := range values {
			if err := sheet.SetCellValue(cell(v.col, row), v.value); err != nil {
				return fmt.Errorf("entry %d: %w", i+1, err)
			}
		}
		// leading zeros would be lost to number inference
		if err := sheet.SetCellValueForceString(cell("D", row), e.Reference); err != nil {
			return fmt.Errorf("entry %d: %w", i+1, err)
		}
	}

	if len(entries) == 0 {
		return nil
	}

	last := firstRow + len(entries) - 1
	body := fmt.Sprintf("A%d:%s%d", firstRow, lastCol, last)
	if err := sheet.SetStyle(body, style.ThinBlackBorderOutline.String(), workbook.Outline); err != nil {
		return err
	}
	return sheet.SetNumberFormat(fmt.Sprintf("%s%d:%s%d", amountCol, firstRow, amountCol, last), "currency")
}

func writeTotal(sheet *workbook.Sheet, row, count int) error {
	label := cell("E", row)
	total := cell(amountCol, row)

	if err := sheet.SetCellValue(label, "Total:"); err != nil {
		return err
	}
	if err := sheet.SetStyle(label, style.TotalLabel.String(), workbook.PerCell); err != nil {
		return err
	}

	var value any = 0
	if count > 0 {
		value = fmt.Sprintf("=SUM(%s%d:%s%d)", amountCol, firstRow, amountCol, row-1)
	}
	if err := sheet.SetCellValue(total, value); err != nil {
		return err
	}
	if err := sheet.SetStyle(total, style.Total.String(), workbook.PerCell); err != nil {
		return err
	}
	return sheet.SetNumberFormat(total, "currency")
}

func cell(col string, row int) string {
	return col + strconv.Itoa(row)
}
