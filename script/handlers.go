package script

import (
	"fmt"

	"github.com/orayew2002/excel-adapter/workbook"
)

// RegisterDefaults registers a handler for every workbook command.
func RegisterDefaults(r *Registry) {
	r.Register("properties", handleProperties)
	r.Register("sheet", handleSheet)
	r.Register("add_sheet", handleAddSheet)
	r.Register("image", handleImage)
	r.Register("value", handleValue)
	r.Register("value_string", handleValueString)
	r.Register("headers", handleHeaders)
	r.Register("merge", handleMerge)
	r.Register("style", handleStyle)
	r.Register("align", handleAlign)
	r.Register("font_size", handleFontSize)
	r.Register("font_style", handleFontStyle)
	r.Register("row_height", handleRowHeight)
	r.Register("row_heights", handleRowHeights)
	r.Register("col_widths", handleColWidths)
	r.Register("number_format", handleNumberFormat)
}

// NewDefault returns a Registry with RegisterDefaults applied.
func NewDefault() *Registry {
	r := New()
	RegisterDefaults(r)
	return r
}

func handleProperties(wb *workbook.Workbook, cmd Command) error {
	return wb.SetProperties(cmd.Creator, cmd.Title)
}

func handleSheet(wb *workbook.Workbook, cmd Command) error {
	return wb.SetActiveSheet(cmd.Index)
}

func handleAddSheet(wb *workbook.Workbook, cmd Command) error {
	_, err := wb.AddSheet(cmd.Name)
	return err
}

func handleImage(wb *workbook.Workbook, cmd Command) error {
	opts := workbook.DefaultImageOptions()
	if cmd.Height > 0 {
		opts.Height = int(cmd.Height)
	}
	if cmd.OffsetX != nil {
		opts.OffsetX = *cmd.OffsetX
	}
	if cmd.OffsetY != nil {
		opts.OffsetY = *cmd.OffsetY
	}
	return wb.ActiveSheet().DrawImage(cmd.Cell, cmd.Name, cmd.Desc, cmd.Path, opts)
}

func handleValue(wb *workbook.Workbook, cmd Command) error {
	return wb.ActiveSheet().SetCellValue(cmd.Cell, cmd.Value)
}

func handleValueString(wb *workbook.Workbook, cmd Command) error {
	var v string
	if cmd.Value != nil {
		v = fmt.Sprint(cmd.Value)
	}
	return wb.ActiveSheet().SetCellValueForceString(cmd.Cell, v)
}

func handleHeaders(wb *workbook.Workbook, cmd Command) error {
	headers, err := parseHeaders(cmd.Headers)
	if err != nil {
		return err
	}
	return wb.ActiveSheet().SetColumnHeaders(headers, cmd.Row, cmd.Start, cmd.Style)
}

func handleMerge(wb *workbook.Workbook, cmd Command) error {
	return wb.ActiveSheet().MergeCells(cmd.Range)
}

func handleStyle(wb *workbook.Workbook, cmd Command) error {
	return wb.ActiveSheet().SetStyle(cmd.Range, cmd.Style, applyMode(cmd.Outline))
}

func handleAlign(wb *workbook.Workbook, cmd Command) error {
	return wb.ActiveSheet().SetAlignment(cmd.Range, cmd.Desc)
}

func handleFontSize(wb *workbook.Workbook, cmd Command) error {
	return wb.ActiveSheet().SetFontSize(cmd.Range, cmd.Size)
}

func handleFontStyle(wb *workbook.Workbook, cmd Command) error {
	return wb.ActiveSheet().SetFontStyle(cmd.Range, cmd.Desc)
}

func handleRowHeight(wb *workbook.Workbook, cmd Command) error {
	return wb.ActiveSheet().SetRowHeight(cmd.Row, cmd.Height)
}

func handleRowHeights(wb *workbook.Workbook, cmd Command) error {
	return wb.ActiveSheet().SetRowHeightByRange(cmd.From, cmd.To, cmd.Height)
}

func handleColWidths(wb *workbook.Workbook, cmd Command) error {
	return wb.ActiveSheet().SetColumnWidths(cmd.Widths, cmd.Start)
}

func handleNumberFormat(wb *workbook.Workbook, cmd Command) error {
	return wb.ActiveSheet().SetNumberFormat(cmd.Range, cmd.Format)
}

// applyMode reads the outline flag: absent, "0", 0 and false style each cell;
// anything else styles the range outline.
func applyMode(v any) workbook.ApplyMode {
	switch o := v.(type) {
	case nil:
		return workbook.PerCell
	case string:
		return workbook.ParseApplyMode(o)
	case bool:
		if o {
			return workbook.Outline
		}
		return workbook.PerCell
	case int64:
		if o == 0 {
			return workbook.PerCell
		}
		return workbook.Outline
	case float64:
		if o == 0 {
			return workbook.PerCell
		}
		return workbook.Outline
	default:
		return workbook.ParseApplyMode(fmt.Sprint(o))
	}
}

func parseHeaders(raw []any) ([]workbook.Header, error) {
	headers := make([]workbook.Header, 0, len(raw))
	for i, h := range raw {
		switch v := h.(type) {
		case string:
			headers = append(headers, workbook.Header{Label: v})
		case []any:
			if len(v) == 0 || len(v) > 2 {
				return nil, fmt.Errorf("header %d: expected [label] or [label, width], got %d items", i, len(v))
			}
			hdr := workbook.Header{Label: fmt.Sprint(v[0])}
			if len(v) == 2 {
				w, err := toFloat(v[1])
				if err != nil {
					return nil, fmt.Errorf("header %d width: %w", i, err)
				}
				hdr.Width = w
			}
			headers = append(headers, hdr)
		case map[string]any:
			hdr := workbook.Header{Label: fmt.Sprint(v["label"])}
			if raw, ok := v["width"]; ok {
				w, err := toFloat(raw)
				if err != nil {
					return nil, fmt.Errorf("header %d width: %w", i, err)
				}
				hdr.Width = w
			}
			headers = append(headers, hdr)
		default:
			return nil, fmt.Errorf("header %d: unsupported type %T", i, h)
		}
	}
	return headers, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}
