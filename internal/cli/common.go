package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
)

// FormatError formats an error message for CLI output
func FormatError(err error, color bool) string {
	msg := fmt.Sprintf("Error: %v", err)
	if color {
		return text.FgRed.Sprint(msg)
	}
	return msg
}

// FormatWarning formats a warning message for CLI output
func FormatWarning(msg string, color bool) string {
	if color {
		return text.FgYellow.Sprint(msg)
	}
	return msg
}
