package export

import (
	"encoding/json"
	"io"

	"datasynth/internal/dataset"
)

type jsonExporter struct{}

func (jsonExporter) Ext() string { return "json" }

// Export writes the table as an indented array of objects, one object
// per row keyed by column name.
func (jsonExporter) Export(t *dataset.Table, w io.Writer) error {
	records := make([]map[string]any, t.Len())
	for i := range t.Rows {
		records[i] = t.Record(i)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
