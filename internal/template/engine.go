package template

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Engine renders text/template strings with the sprig function library
type Engine struct {
	// Pattern to match template variables like {{ .Distro }} or {{ .Arch | upper }}
	templatePattern *regexp.Regexp
	funcs           template.FuncMap
}

// New creates a new template engine
func New() *Engine {
	return &Engine{
		templatePattern: regexp.MustCompile(`\{\{-?\s*\.([a-zA-Z_][a-zA-Z0-9_]*)`),
		funcs:           sprig.TxtFuncMap(),
	}
}

// Render executes text against context. Referencing a key that is missing
// from context is an error.
func (e *Engine) Render(name, text string, context map[string]interface{}) (string, error) {
	tmpl, err := template.New(name).Funcs(e.funcs).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, context); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}

// ExtractVariables extracts the context keys a template refers to, sorted
func (e *Engine) ExtractVariables(text string) []string {
	variables := make(map[string]bool)
	for _, match := range e.templatePattern.FindAllStringSubmatch(text, -1) {
		if len(match) >= 2 {
			variables[match[1]] = true
		}
	}

	result := make([]string, 0, len(variables))
	for varName := range variables {
		result = append(result, varName)
	}
	sort.Strings(result)
	return result
}

// ValidateContext ensures all required variables are present in the context
func (e *Engine) ValidateContext(text string, context map[string]interface{}) error {
	var missingVars []string
	for _, varName := range e.ExtractVariables(text) {
		if _, exists := context[varName]; !exists {
			missingVars = append(missingVars, varName)
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingVars, ", "))
	}

	return nil
}
