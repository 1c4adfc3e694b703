package util

import (
	"errors"
	"fmt"
	"strings"
)

// Common error kinds for kubetab
var (
	// ErrArgumentType indicates an option or positional value has the wrong type
	ErrArgumentType = errors.New("argument has wrong type")

	// ErrConfigUnreadable indicates the kubeconfig file could not be opened
	ErrConfigUnreadable = errors.New("kubeconfig unreadable")

	// ErrConfigMalformed indicates the kubeconfig file opened but did not match the schema
	ErrConfigMalformed = errors.New("kubeconfig malformed")

	// ErrPathResolution indicates no kubeconfig path could be determined
	ErrPathResolution = errors.New("kubeconfig path could not be resolved")
)

// ArgumentError reports a named option or positional argument with the wrong type.
// Position is the zero-based index for positional arguments and -1 for named options.
type ArgumentError struct {
	Name     string
	Position int
	Got      interface{}
}

// Error implements the error interface
func (e *ArgumentError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("unrecognised argument type: positional argument %d is %T, expected string", e.Position, e.Got)
	}
	return fmt.Sprintf("unrecognised argument type: option %q is %T, expected string", e.Name, e.Got)
}

// Unwrap returns ErrArgumentType for errors.Is compatibility
func (e *ArgumentError) Unwrap() error {
	return ErrArgumentType
}

// NewPositionalError creates an argument error for the positional argument at index
func NewPositionalError(index int, got interface{}) *ArgumentError {
	return &ArgumentError{Position: index, Got: got}
}

// NewOptionError creates an argument error for a named option
func NewOptionError(name string, got interface{}) *ArgumentError {
	return &ArgumentError{Name: name, Position: -1, Got: got}
}

// ConfigErrorKind distinguishes the two ways loading a kubeconfig can fail
type ConfigErrorKind int

const (
	// Unreadable means the path could not be opened
	Unreadable ConfigErrorKind = iota
	// Malformed means the content failed schema parsing
	Malformed
)

// ConfigError wraps a kubeconfig loading failure with the path involved
type ConfigError struct {
	Kind    ConfigErrorKind
	Path    string
	Details string
	Err     error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Kind == Unreadable {
		return fmt.Sprintf("failed to open config file %s", e.Path)
	}
	return fmt.Sprintf("failed to parse config file %s: %s", e.Path, e.Details)
}

// Unwrap returns the kind sentinel and the underlying cause
func (e *ConfigError) Unwrap() []error {
	sentinel := ErrConfigMalformed
	if e.Kind == Unreadable {
		sentinel = ErrConfigUnreadable
	}
	if e.Err == nil {
		return []error{sentinel}
	}
	return []error{sentinel, e.Err}
}

// NewUnreadableError creates a ConfigError for a path that could not be opened
func NewUnreadableError(path string, err error) *ConfigError {
	return &ConfigError{Kind: Unreadable, Path: path, Err: err}
}

// NewMalformedError creates a ConfigError carrying the parser diagnostic verbatim
func NewMalformedError(path string, err error) *ConfigError {
	details := "unknown error"
	if err != nil {
		details = err.Error()
	}
	return &ConfigError{Kind: Malformed, Path: path, Details: details, Err: err}
}

// MultiError aggregates multiple errors
type MultiError struct {
	Errors []error
}

// Error implements the error interface
func (m *MultiError) Error() string {
	if len(m.Errors) == 0 {
		return "no errors"
	}
	if len(m.Errors) == 1 {
		return m.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors occurred:", len(m.Errors)))
	for i, err := range m.Errors {
		if i < 10 {
			sb.WriteString(fmt.Sprintf("\n  %d. %v", i+1, err))
		} else if i == 10 {
			sb.WriteString(fmt.Sprintf("\n  ... and %d more errors", len(m.Errors)-10))
			break
		}
	}
	return sb.String()
}

// Unwrap returns the errors for errors.Is/As compatibility
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// Add adds an error to the multi-error
func (m *MultiError) Add(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// ErrorOrNil returns nil if no errors were added, otherwise returns the MultiError
func (m *MultiError) ErrorOrNil() error {
	if len(m.Errors) == 0 {
		return nil
	}
	return m
}

// IsArgumentError checks if an error is an argument type error
func IsArgumentError(err error) bool {
	return errors.Is(err, ErrArgumentType)
}

// IsUnreadable checks if an error is an unreadable kubeconfig error
func IsUnreadable(err error) bool {
	return errors.Is(err, ErrConfigUnreadable)
}

// IsMalformed checks if an error is a malformed kubeconfig error
func IsMalformed(err error) bool {
	return errors.Is(err, ErrConfigMalformed)
}

// FriendlyError converts technical errors to user-friendly messages
func FriendlyError(err error) string {
	if err == nil {
		return ""
	}

	var cfgErr *ConfigError
	switch {
	case IsUnreadable(err) && errors.As(err, &cfgErr):
		return fmt.Sprintf("Could not open kubeconfig %q. Check the path or set --kubeconfig / KUBECONFIG.", cfgErr.Path)
	case IsMalformed(err) && errors.As(err, &cfgErr):
		return fmt.Sprintf("Kubeconfig %q is not valid: %s", cfgErr.Path, cfgErr.Details)
	case errors.Is(err, ErrPathResolution):
		return "No kubeconfig path found. Pass --kubeconfig, set KUBECONFIG, or set HOME."
	case IsArgumentError(err):
		return "Invalid argument: " + err.Error()
	default:
		return err.Error()
	}
}
