package formatting

import (
	"encoding/json"
	"fmt"
)

// JSONFormatter provides structured JSON output formatting
type JSONFormatter struct{}

func (f *JSONFormatter) Format(ds Dataset) (string, error) {
	b, err := json.MarshalIndent(ds.Data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON output: %w", err)
	}
	return string(b) + "\n", nil
}
