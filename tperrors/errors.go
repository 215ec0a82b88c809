package tperrors

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates the input could not be parsed as requested.
	ErrParse = errors.New("parse error")

	// ErrInvalidComponent indicates a component that can not exist on the target platform.
	ErrInvalidComponent = errors.New("invalid component")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse an input as a single component.
type ParseError struct {
	// Grammar is the name of the grammar used to parse
	Grammar string
	// Input is the raw input
	Input string
	// Count is the number of components found (0 if unknown)
	Count int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Grammar != "" {
		msg += " (" + e.Grammar + ")"
	}
	if e.Input != "" {
		msg += " in " + strconv.Quote(e.Input)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// InvalidComponentError reports a component that holds a disallowed byte or
// is a reserved name.
type InvalidComponentError struct {
	// Grammar is the name of the grammar the component was checked against
	Grammar string
	// Component is the offending component bytes
	Component string
	// Offset is the byte offset of the component in the path
	Offset int
	// Byte is the first disallowed byte, meaningful when Reserved is false
	Byte byte
	// Reserved is true when the component is a reserved name
	Reserved bool
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *InvalidComponentError) Error() string {
	msg := "invalid component"
	if e.Component != "" {
		msg += " " + strconv.Quote(e.Component)
	}
	if e.Offset > 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	switch {
	case e.Reserved:
		msg += ": reserved name"
	case e.Component != "":
		msg += fmt.Sprintf(": disallowed byte %q", e.Byte)
	}
	if e.Grammar != "" {
		msg += " for " + e.Grammar
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InvalidComponentError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *InvalidComponentError) Is(target error) bool {
	return target == ErrInvalidComponent
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
