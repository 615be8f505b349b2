package formatting

import (
	"strings"
)

// ConsoleFormatter prints one row per line, cells separated by two spaces.
// It is meant for piping into other tools, so it never colors output.
type ConsoleFormatter struct{}

func (f *ConsoleFormatter) Format(ds Dataset) (string, error) {
	if len(ds.Rows) == 0 {
		if ds.Empty == "" {
			return "", nil
		}
		return ds.Empty + "\n", nil
	}

	var b strings.Builder
	for _, row := range ds.Rows {
		b.WriteString(strings.Join(row, "  "))
		b.WriteString("\n")
	}
	return b.String(), nil
}
