package formatting

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	options Options
}

// Format renders the rows as a rounded table.
func (f *TableFormatter) Format(ds Dataset) (string, error) {
	if len(ds.Rows) == 0 {
		return f.formatEmptyMessage(ds.Empty), nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)

	header := make(table.Row, 0, len(ds.Header))
	for _, h := range ds.Header {
		if f.options.Color {
			header = append(header, text.FgHiCyan.Sprint(h))
		} else {
			header = append(header, h)
		}
	}
	t.AppendHeader(header)

	for _, row := range ds.Rows {
		r := make(table.Row, 0, len(row))
		for _, cell := range row {
			r = append(r, cell)
		}
		t.AppendRow(r)
	}

	return t.Render() + "\n", nil
}

func (f *TableFormatter) formatEmptyMessage(message string) string {
	if message == "" {
		message = "No items found"
	}
	if f.options.Color {
		return text.FgYellow.Sprint(message) + "\n"
	}
	return message + "\n"
}
