package reports

import (
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Sheet1"

// WriteXLSX serializes a table as a single-sheet spreadsheet, header row
// first, same projection as the CSV export.
func WriteXLSX(w io.Writer, table *Table) error {
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet(exportSheet); err != nil {
		return err
	}

	for col, header := range table.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return err
		}
	}
	for i, row := range table.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}

// ExportXLSX writes the full projection of a kind into dir and returns the
// file path.
func (f *Facade) ExportXLSX(kind Kind, dir string) (string, error) {
	table, err := f.Table(kind)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, ExportFilename(kind, "xlsx"))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return path, WriteXLSX(file, table)
}
