// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The CLI maps them onto
//              log levels when reporting a failed command.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-03-02 v0.2.0: Severity mapping for the stringx error codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake such as a bad index or argument
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure the caller can usually work around
	SeverityMedium

	// SeverityHigh indicates a broken setup such as an invalid configuration
	SeverityHigh

	// SeverityCritical indicates an internal defect
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeConfigInvalid, CodeMissingCollaborator:
		return SeverityHigh

	case CodeInvalidInput, CodeIndexOutOfRange, CodeImmutableViolation,
		CodeInvalidArgument, CodeInvalidPattern, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
