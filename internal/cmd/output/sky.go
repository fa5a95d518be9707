package output

import (
	"io"

	"github.com/agentstation/skycatalog/internal/cmd/table"
	"github.com/agentstation/skycatalog/pkg/sky"
)

// isTable reports whether format renders as a table.
func isTable(format Format) bool {
	return format == FormatTable || format == FormatWide || format == ""
}

// write writes tableData for table formats and data otherwise.
func write(w io.Writer, format Format, tableData table.Data, data any) error {
	formatter := NewFormatter(format)
	if isTable(format) {
		return formatter.Format(w, tableData)
	}
	return formatter.Format(w, data)
}

// FormatObjects writes a list of objects.
func FormatObjects(w io.Writer, format Format, objects []sky.Object) error {
	if objects == nil {
		objects = []sky.Object{}
	}
	return write(w, format, table.ObjectsToTableData(objects, format == FormatWide), objects)
}

// FormatObject writes the details of one object.
func FormatObject(w io.Writer, format Format, obj sky.Object) error {
	return write(w, format, table.ObjectToTableData(obj), obj)
}

// FormatConstellations writes a list of constellations.
func FormatConstellations(w io.Writer, format Format, constellations []sky.Constellation) error {
	if constellations == nil {
		constellations = []sky.Constellation{}
	}
	return write(w, format, table.ConstellationsToTableData(constellations), constellations)
}

// FormatDescription writes the per-category counts.
func FormatDescription(w io.Writer, format Format, d sky.Description) error {
	return write(w, format, table.DescriptionToTableData(d), d)
}

// FormatAny writes any data type, using reflection for tables.
func FormatAny(w io.Writer, format Format, data any) error {
	return NewFormatter(format).Format(w, data)
}
