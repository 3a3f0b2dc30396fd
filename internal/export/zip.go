package export

import (
	"archive/zip"
	"fmt"
	"io"

	"datasynth/internal/dataset"
)

type zipExporter struct{}

func (zipExporter) Ext() string { return "zip" }

// Export bundles the table in every non-zip format into one archive.
func (zipExporter) Export(t *dataset.Table, w io.Writer) error {
	return WriteBundle(w, t)
}

// WriteBundle writes a ZIP archive holding each given table in CSV,
// JSON, and XLSX form.
func WriteBundle(w io.Writer, tables ...*dataset.Table) error {
	zw := zip.NewWriter(w)
	for _, t := range tables {
		for _, format := range []Format{FormatCSV, FormatJSON, FormatXLSX} {
			exp, err := For(format)
			if err != nil {
				return err
			}
			entry, err := zw.Create(fmt.Sprintf("%s.%s", t.Name, exp.Ext()))
			if err != nil {
				return err
			}
			if err := exp.Export(t, entry); err != nil {
				return err
			}
		}
	}
	return zw.Close()
}
