package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WorkbookFileName is the XLSX companion artifact.
const WorkbookFileName = "ar_dataset.xlsx"

// WriteWorkbook writes every table into one XLSX workbook, one sheet per
// entity. Sheet names follow the CSV base names, truncated to the 31-char
// sheet name limit.
func WriteWorkbook(path string, tables []Table) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables {
		sheet := sheetName(t.Name)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return fmt.Errorf("rename sheet %s: %w", sheet, err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("create sheet %s: %w", sheet, err)
			}
		}

		if err := setRow(f, sheet, 1, t.Header); err != nil {
			return err
		}
		for r, row := range t.Rows {
			if err := setRow(f, sheet, r+2, row); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, fields []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("sheet %s row %d: %w", sheet, rowNum, err)
	}

	values := make([]interface{}, len(fields))
	for i, v := range fields {
		values[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("sheet %s row %d: %w", sheet, rowNum, err)
	}
	return nil
}

func sheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}
