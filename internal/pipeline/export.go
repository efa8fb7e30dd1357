package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"gdpetl/internal"
	"gdpetl/internal/util"
)

// WriteCSV writes set with a leading unnamed row-index column, the layout
// pandas' to_csv produces by default.
func WriteCSV(set internal.RecordSet, outputPath string) error {
	if err := ensureDir(outputPath); err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{""}, set.Fields...)
	if err := w.Write(header); err != nil {
		return err
	}
	for i, rec := range set.Records {
		row := []string{strconv.Itoa(i), rec.Country, util.FormatFloat(rec.GDPUSDBillions)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func ExportRecordsToXLSX(set internal.RecordSet, outputPath string) error {
	if len(set.Fields) != 2 {
		return fmt.Errorf("xlsx export: want 2 fields, got %d", len(set.Fields))
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range set.Fields {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, rec := range set.Records {
		r := i + 2
		put := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		put(1, rec.Country)
		put(2, rec.GDPUSDBillions)
	}

	if err := ensureDir(outputPath); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
