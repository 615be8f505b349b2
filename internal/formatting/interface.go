// Package formatting renders tabular command output for bootware.
//
// A Dataset carries both a row view (header plus string cells) for the table
// and console formats, and the raw value for the structured JSON and YAML
// formats. Commands build one Dataset and let the user pick the format.
package formatting

import (
	"fmt"
	"strings"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatConsole OutputFormat = "console" // Simple console output
	FormatJSON    OutputFormat = "json"    // JSON output
	FormatYAML    OutputFormat = "yaml"    // YAML output
	FormatTable   OutputFormat = "table"   // Rich table output
)

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Color  bool // Enable colored output
}

// Dataset is the input to every formatter.
type Dataset struct {
	Header []string
	Rows   [][]string
	// Data is marshalled by the JSON and YAML formatters.
	Data interface{}
	// Empty is printed by row based formatters when there are no rows.
	Empty string
}

// Formatter renders a Dataset to a string.
type Formatter interface {
	Format(ds Dataset) (string, error)
}

// ParseOutputFormat validates a user supplied format name.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatConsole, FormatJSON, FormatYAML, FormatTable:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected one of: table, console, json, yaml)", name)
	}
}

// NewFormatter creates the appropriate formatter based on options
func NewFormatter(options Options) Formatter {
	switch options.Format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatConsole:
		return &ConsoleFormatter{}
	case FormatTable:
		fallthrough
	default:
		return &TableFormatter{options: options}
	}
}
