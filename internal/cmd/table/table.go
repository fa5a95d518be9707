// Package table converts catalog records to rows for tabular CLI output.
package table

import (
	"strconv"
	"strings"

	"github.com/agentstation/skycatalog/pkg/sky"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// ObjectsToTableData converts objects to table format. Wide adds the
// stellar motion columns.
func ObjectsToTableData(objects []sky.Object, wide bool) Data {
	headers := []string{"ID", "DESIGNATION", "NAME", "CONST", "RA", "DEC", "MAG"}
	align := []Align{AlignRight, AlignDefault, AlignDefault, AlignCenter, AlignRight, AlignRight, AlignRight}
	if wide {
		headers = append(headers, "RA DRIFT", "DEC DRIFT", "PARALLAX")
		align = append(align, AlignRight, AlignRight, AlignRight)
	}

	rows := make([][]string, 0, len(objects))
	for _, obj := range objects {
		row := []string{
			strconv.FormatInt(obj.ID, 10),
			obj.Designation,
			orDash(obj.Name),
			orDash(obj.Constellation),
			FormatDegrees(obj.RA),
			FormatDegrees(obj.Dec),
			FormatMagnitude(obj.Magnitude),
		}
		if wide {
			row = append(row, FormatOptional(obj.RADrift), FormatOptional(obj.DecDrift), FormatOptional(obj.Parallax))
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// ObjectToTableData renders one object as property/value rows.
func ObjectToTableData(obj sky.Object) Data {
	rows := [][]string{
		{"ID", strconv.FormatInt(obj.ID, 10)},
		{"Category", obj.Category.String()},
		{"Designation", obj.Designation},
		{"Name", orDash(obj.Name)},
		{"Constellation", orDash(obj.Constellation)},
		{"RA", FormatDegrees(obj.RA)},
		{"Dec", FormatDegrees(obj.Dec)},
		{"Magnitude", FormatMagnitude(obj.Magnitude)},
	}
	if obj.Category.HasStellarMotion() {
		rows = append(rows,
			[]string{"RA Drift", FormatOptional(obj.RADrift)},
			[]string{"Dec Drift", FormatOptional(obj.DecDrift)},
			[]string{"Parallax", FormatOptional(obj.Parallax)},
		)
	}
	return Data{
		Headers: []string{"PROPERTY", "VALUE"},
		Rows:    rows,
	}
}

// ConstellationsToTableData converts constellations to table format.
func ConstellationsToTableData(constellations []sky.Constellation) Data {
	rows := make([][]string, 0, len(constellations))
	for _, c := range constellations {
		rows = append(rows, []string{c.Abbreviation, c.FullName})
	}
	return Data{
		Headers: []string{"ABBREVIATION", "NAME"},
		Rows:    rows,
	}
}

// DescriptionToTableData lists the count of every category.
func DescriptionToTableData(d sky.Description) Data {
	rows := make([][]string, 0, len(sky.Categories))
	for _, cat := range sky.Categories {
		rows = append(rows, []string{cat.String(), FormatCount(d.Count(cat))})
	}
	return Data{
		Headers:         []string{"CATEGORY", "RECORDS"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignDefault, AlignRight},
	}
}

// FormatDegrees formats an angle in degrees.
func FormatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// FormatMagnitude formats a visual magnitude.
func FormatMagnitude(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatOptional formats a star-only measurement, "-" when not applicable.
func FormatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// FormatCount formats a record count with comma separators.
func FormatCount(c sky.Count) string {
	if !c.Known() {
		return c.String()
	}
	return FormatNumber(int64(c))
}

// FormatNumber formats large numbers with comma separators.
func FormatNumber(n int64) string {
	str := strconv.FormatInt(n, 10)
	sign := ""
	if n < 0 {
		sign, str = "-", str[1:]
	}
	if len(str) <= 3 {
		return sign + str
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
