// Package entities contains the canonical résumé document model: pure Go
// structs with validation logic. Its only dependency outside the standard
// library is github.com/rs/xid, used to mint identifiers.
package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors.
var (
	ErrEmptyName = errors.New("name cannot be empty")
	ErrEmptyID   = errors.New("id cannot be empty")
)

// ValidationError represents a single constraint failure, addressed by the
// dotted/indexed field path a caller needs to locate the offending value,
// e.g. "sections.experience.items[3].url.href".
type ValidationError struct {
	Path    string // dotted/indexed path into the document
	Message string // human-readable error message
	Err     error  // underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error.
func NewValidationError(path, message string, err error) *ValidationError {
	return &ValidationError{Path: path, Message: message, Err: err}
}

// ValidationErrors is the full set of constraint violations discovered by
// one document validation pass. Validate never stops at the first failure.
type ValidationErrors []*ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d validation errors:\n", len(ve)))
	for i, err := range ve {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return strings.TrimRight(b.String(), "\n")
}

// HasErrors returns true if there are validation errors.
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add appends a path-scoped validation failure to the collection.
func (ve *ValidationErrors) Add(path, message string, err error) {
	*ve = append(*ve, NewValidationError(path, message, err))
}

// AsError returns ve as an error, or nil when empty, so a Validate method
// can return it directly without an extra length check at the call site.
func (ve ValidationErrors) AsError() error {
	if !ve.HasErrors() {
		return nil
	}
	return ve
}

// NotFoundError covers a preview page outside the rendered document's page
// range, and, for the persistence collaborator, an unknown document ID.
type NotFoundError struct {
	Kind string // "page" or "document"
	ID   string
}

func (e *NotFoundError) Error() string {
	if e.Kind == "page" {
		return fmt.Sprintf("page %s not found", e.ID)
	}
	return fmt.Sprintf("%s %q not found", titleCase(e.Kind), e.ID)
}

func titleCase(s string) string {
	if s == "" {
		return "entry"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ConfigError reports an out-of-range renderer parameter, such as a margin
// or font size outside its allowed bounds.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

// EngineError wraps a typesetting-engine compilation or serialisation
// failure. Message is the flattened diagnostic in the form
// "<virtual-path>:<line>: <source-excerpt>: <message>".
type EngineError struct {
	Message string
}

func (e *EngineError) Error() string { return e.Message }

// ReadError means the input bytes could not be decoded in the declared
// envelope at all: malformed JSON, corrupt ZIP, non-UTF-8 text.
type ReadError struct {
	Format  string
	Message string
	Err     error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: failed to read input: %s", e.Format, e.Message)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ShapeError means the envelope decoded but its structure did not match
// what the adapter expects for that format.
type ShapeError struct {
	Format  string
	Message string
	Err     error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: invalid shape: %s", e.Format, e.Message)
}

func (e *ShapeError) Unwrap() error { return e.Err }

// ConversionError means the typed shape decoded correctly but could not be
// mapped onto the canonical document model.
type ConversionError struct {
	Format  string
	Message string
	Err     error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: conversion failed: %s", e.Format, e.Message)
}

func (e *ConversionError) Unwrap() error { return e.Err }
