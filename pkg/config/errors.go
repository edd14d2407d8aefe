package config

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by LoadMaskingConfig and Validate; match with errors.Is.
var (
	ErrInvalidYAML          = errors.New("invalid YAML syntax")
	ErrValidationFailed     = errors.New("masking configuration is invalid")
	ErrPatternNotFound      = errors.New("unknown built-in masking pattern")
	ErrPatternGroupNotFound = errors.New("unknown built-in masking pattern group")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidValue         = errors.New("invalid field value")
)

// ValidationError locates a validation failure: Component is "masking" or
// "custom_pattern", ID names the entry (e.g. "custom_patterns[2]") and Field,
// when set, the offending YAML key.
type ValidationError struct {
	Component string
	ID        string
	Field     string
	Err       error
}

func (e *ValidationError) Error() string {
	where := fmt.Sprintf("%s '%s'", e.Component, e.ID)
	if e.Field != "" {
		where += fmt.Sprintf(": field '%s'", e.Field)
	}
	return fmt.Sprintf("%s: %v", where, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError returns a ValidationError wrapping err.
func NewValidationError(component, id, field string, err error) *ValidationError {
	return &ValidationError{Component: component, ID: id, Field: field, Err: err}
}

// LoadError reports which configuration source failed to load.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load masking config %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NewLoadError returns a LoadError wrapping err.
func NewLoadError(source string, err error) *LoadError {
	return &LoadError{Source: source, Err: err}
}
