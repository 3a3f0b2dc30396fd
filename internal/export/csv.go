package export

import (
	"encoding/csv"
	"io"

	"datasynth/internal/dataset"
)

type csvExporter struct{}

func (csvExporter) Ext() string { return "csv" }

// Export writes a header line followed by one record per row.
func (csvExporter) Export(t *dataset.Table, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, v := range row {
			record[i] = CellString(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
