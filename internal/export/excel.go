package export

import (
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"datasynth/internal/dataset"
)

const sheetName = "Generated Data"

type xlsxExporter struct{}

func (xlsxExporter) Ext() string { return "xlsx" }

// Export writes a single-sheet workbook with a header row.
func (xlsxExporter) Export(t *dataset.Table, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	for c, name := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return err
		}
	}
	for r, row := range t.Rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			// excelize has no native timezone handling; store
			// timestamps as RFC 3339 text.
			if ts, ok := v.(time.Time); ok {
				v = ts.UTC().Format(time.RFC3339)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}
