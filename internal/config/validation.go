package config

import (
	"fmt"
	"strings"
)

// knownRuntimes are the container runtimes whose CLI accepts docker style build flags.
var knownRuntimes = []string{"docker", "podman"}

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Append records err when it is a ValidationError.
func (ve *ValidationErrors) Append(err error) {
	if v, ok := err.(ValidationError); ok {
		*ve = append(*ve, v)
	}
}

// ValidateRequired checks if a required string field is not empty
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return ValidationError{
			Field:   field,
			Value:   value,
			Message: "must not be empty",
		}
	}
	return nil
}

// ValidateOneOf checks if a value is in a list of allowed values
func ValidateOneOf(field, value string, allowed []string) error {
	for _, allowedValue := range allowed {
		if value == allowedValue {
			return nil
		}
	}
	return ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("unsupported value %q, must be one of: %s", value, strings.Join(allowed, ", ")),
	}
}

// ValidateConfig checks values that would otherwise fail late, in the middle
// of a run. All problems are reported together.
func ValidateConfig(config BootwareConfig) error {
	var errs ValidationErrors

	errs.Append(ValidateRequired("catalog", config.Catalog))
	errs.Append(ValidateRequired("e2e.build_file", config.E2E.BuildFile))
	errs.Append(ValidateRequired("e2e.image_tag", config.E2E.ImageTag))

	if len(config.E2E.Runtimes) == 0 {
		errs = append(errs, ValidationError{Field: "e2e.runtimes", Message: "must list at least one container runtime"})
	}
	for _, runtime := range config.E2E.Runtimes {
		errs.Append(ValidateOneOf("e2e.runtimes", runtime, knownRuntimes))
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
