package render

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"vtable/table"
)

// Table writes t to w as an ASCII table: one header line with the column
// identifiers in declared order, one line per row in position order.
func Table(w io.Writer, t *table.Table) {
	columns := t.Columns()

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Identifier()
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader(header)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)

	for position := range t.Keys() {
		line := make([]string, len(columns))
		for i, col := range columns {
			value, ok := col.ValueAt(position)
			if !ok {
				continue
			}
			line[i] = value.String()
		}
		tw.Append(line)
	}

	tw.Render()
}

// String renders t to a string.
func String(t *table.Table) string {
	var sb strings.Builder
	Table(&sb, t)
	return sb.String()
}
