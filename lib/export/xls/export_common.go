package xlsexport

import "github.com/xuri/excelize/v2"

const (
	fontFamily = "Calibri"
	colWidth   = 25
	dateFormat = "02.01.2006"
)

func newStyle(f *excelize.File, bold bool, horizontal string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: horizontal,
			Vertical:   "center",
		},
		Font: &excelize.Font{
			Bold:   bold,
			Family: fontFamily,
			Size:   11,
		},
	})
}

// writeRow пишет значения в строку row начиная с первой колонки и применяет стиль
func writeRow(f *excelize.File, sheet string, row, style int, values []interface{}) error {
	cellFirst, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(len(values), row)
	if err != nil {
		return err
	}
	if err = f.SetSheetRow(sheet, cellFirst, &values); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cellFirst, cellLast, style)
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	style, err := newStyle(f, true, "center")
	if err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err = f.SetColWidth(sheet, "A", lastCol, colWidth); err != nil {
		return err
	}
	values := make([]interface{}, 0, len(headers))
	for _, header := range headers {
		values = append(values, header)
	}
	return writeRow(f, sheet, 1, style, values)
}
