// Serialization of generated tables into byte-level formats.
package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"datasynth/internal/dataset"
)

// Format identifies one export serialization.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
	FormatZip  Format = "zip"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Exporter serializes one table to a writer.
type Exporter interface {
	Export(t *dataset.Table, w io.Writer) error
	Ext() string
}

// exporters is the format registry; FormatZip bundles the others and
// is handled by ZipBundle.
var exporters = map[Format]Exporter{
	FormatCSV:  csvExporter{},
	FormatJSON: jsonExporter{},
	FormatXLSX: xlsxExporter{},
	FormatZip:  zipExporter{},
}

// ParseFormat validates a format string from the CLI or web UI.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if _, ok := exporters[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// Formats lists the registered formats in a stable order.
func Formats() []Format {
	return []Format{FormatCSV, FormatJSON, FormatXLSX, FormatZip}
}

// For returns the exporter registered for the format.
func For(f Format) (Exporter, error) {
	e, ok := exporters[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return e, nil
}

// CellString renders a cell for text formats. Bit-exact formatting is
// not a contract; timestamps use RFC 3339 so joins on exported tables
// stay unambiguous.
func CellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.UTC().Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
