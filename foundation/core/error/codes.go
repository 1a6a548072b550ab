// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              string value library and its command line front end.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-03-02 v0.2.0: Reduced to the codes raised by stringx and the CLI

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Value construction and access
	CodeInvalidInput       Code = "INVALID_INPUT"
	CodeIndexOutOfRange    Code = "INDEX_OUT_OF_RANGE"
	CodeImmutableViolation Code = "IMMUTABLE_VIOLATION"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"

	// Collaborators
	CodeInvalidPattern      Code = "INVALID_PATTERN"
	CodeEncodingError       Code = "ENCODING_ERROR"
	CodeMissingCollaborator Code = "MISSING_COLLABORATOR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeConfigInvalid Code = "CONFIG_INVALID"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidInput, CodeIndexOutOfRange, CodeImmutableViolation, CodeInvalidArgument,
		CodeInvalidPattern, CodeEncodingError, CodeMissingCollaborator,
		CodeConfigError, CodeConfigInvalid:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeIndexOutOfRange, CodeImmutableViolation, CodeInvalidArgument:
		return "value"
	case CodeInvalidPattern, CodeEncodingError, CodeMissingCollaborator:
		return "collaborator"
	case CodeConfigError, CodeConfigInvalid:
		return "configuration"
	default:
		return "generic"
	}
}
