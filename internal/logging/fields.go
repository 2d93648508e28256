// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldInput  = "input"
	FieldOutput = "output"

	// Configuration fields.
	FieldFormat = "format"
	FieldLang   = "lang"
	FieldWidth  = "width"
	FieldStrict = "strict"

	// Parse fields.
	FieldBlocks     = "blocks"
	FieldReferences = "references"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
