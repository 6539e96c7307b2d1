package export

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Sheet1"

// WriteMasterXLSX writes master rows as a spreadsheet, same column order as the
// CSV output.
func WriteMasterXLSX(path string, rows []MasterRow) error {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = r.record()
	}
	return writeXLSX(path, MasterHeader, records)
}

// WriteProductXLSX writes product rows as a spreadsheet.
func WriteProductXLSX(path string, rows []ProductRow) error {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = r.record()
	}
	return writeXLSX(path, ProductHeader, records)
}

func writeXLSX(path string, header []string, records [][]string) error {
	f := excelize.NewFile()
	if _, err := f.NewSheet(exportSheet); err != nil {
		return err
	}

	// Add headers
	for col, h := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(exportSheet, cell, h)
	}

	// Add data
	for rowNo, record := range records {
		for col, value := range record {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNo+2)
			if err != nil {
				return err
			}
			f.SetCellValue(exportSheet, cell, value)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return f.SaveAs(path)
}
