// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldFormat = "format"

	// Scan fields.
	FieldConstruct = "construct"
	FieldEvents    = "events"
	FieldUnits     = "units"
	FieldConsumed  = "consumed"
	FieldLine      = "line"
	FieldColumn    = "column"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
