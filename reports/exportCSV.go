package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ExportFilename embeds the pluralized kind and a second-resolution
// timestamp, one file per export call.
func ExportFilename(kind Kind, ext string) string {
	plural := string(kind) + "s"
	if kind == KindBatch {
		plural = "batches"
	}
	return fmt.Sprintf("%s_%s.%s", plural, time.Now().Format("20060102_150405"), ext)
}

// WriteCSV serializes a table as comma-separated values with the header
// row first.
func WriteCSV(w io.Writer, table *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Headers); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the full projection of a kind into dir and returns the
// file path.
func (f *Facade) ExportCSV(kind Kind, dir string) (string, error) {
	table, err := f.Table(kind)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, ExportFilename(kind, "csv"))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	if err := WriteCSV(file, table); err != nil {
		return "", err
	}
	return path, nil
}
