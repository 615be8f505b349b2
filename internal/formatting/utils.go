package formatting

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// ColorizeStatus colors pass/fail/skip style words when enabled is true.
func ColorizeStatus(status string, enabled bool) string {
	if !enabled {
		return status
	}
	switch strings.ToLower(status) {
	case "pass", "passed", "success":
		return text.FgGreen.Sprint(status)
	case "fail", "failed", "error":
		return text.FgRed.Sprint(status)
	case "skip", "skipped", "interrupted":
		return text.FgYellow.Sprint(status)
	default:
		return status
	}
}

// JoinOrDash joins values with ", " and returns "-" for an empty list.
func JoinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}

// Truncate shortens s to at most max runes, marking the cut with "...".
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 3 || len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// IndentText adds indentation to each line of text
func IndentText(s string, indent string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}
