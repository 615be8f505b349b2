package formatting

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter provides YAML output formatting
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(ds Dataset) (string, error) {
	b, err := yaml.Marshal(ds.Data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML output: %w", err)
	}
	return string(b), nil
}
