// File: standards.go
// Title: Error Standards for the stringy Modules
// Description: Module identifiers and the constructors for every failure
//              the string value library and its configuration can raise.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-03-02 v0.2.0: Value, collaborator and configuration constructors

package errors

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx = "stringx"
	ModuleConfig  = "config"
	ModuleCLI     = "cli"
)

// InvalidInput reports a construction source that has no textual form.
func InvalidInput(operation string, input interface{}) *mdwerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Code(mdwerror.CodeInvalidInput).
		Messagef("cannot convert %T to a string value", input).
		Detail("input_type", fmt.Sprintf("%T", input)).
		Build()
}

// IndexOutOfRange reports an indexed read outside [-length, length).
func IndexOutOfRange(operation string, index, length int) *mdwerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Code(mdwerror.CodeIndexOutOfRange).
		Messagef("index %d out of range for length %d", index, length).
		Detail("index", index).
		Detail("length", length).
		Build()
}

// ImmutableViolation reports an attempt to write through indexed access.
func ImmutableViolation(operation string, index int) *mdwerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Code(mdwerror.CodeImmutableViolation).
		Message("string values are immutable").
		Detail("index", index).
		Build()
}

// InvalidArgument reports an argument outside its accepted set.
func InvalidArgument(operation, argument string, value interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Code(mdwerror.CodeInvalidArgument).
		Messagef("invalid %s %v: expected %s", argument, value, expected).
		Detail("argument", argument).
		Detail("value", value).
		Detail("expected", expected).
		Build()
}

// InvalidPattern wraps a failure reported by a Matcher.
func InvalidPattern(operation, pattern string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Code(mdwerror.CodeInvalidPattern).
		Cause(cause).
		Message("invalid pattern").
		Detail("pattern", pattern).
		Build()
}

// EncodingError reports an unknown encoding tag or undecodable bytes.
func EncodingError(operation, encoding string, cause error) *mdwerror.Error {
	b := NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Code(mdwerror.CodeEncodingError).
		Detail("encoding", encoding)
	if cause != nil {
		return b.Cause(cause).Messagef("cannot decode as %s", encoding).Build()
	}
	return b.Messagef("unsupported encoding %q", encoding).Build()
}

// MissingCollaborator reports an operation called without its required
// collaborator.
func MissingCollaborator(operation, collaborator string) *mdwerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Code(mdwerror.CodeMissingCollaborator).
		Messagef("%s requires a %s", operation, collaborator).
		Detail("collaborator", collaborator).
		Build()
}

// ConfigInvalid reports a configuration value that failed validation.
func ConfigInvalid(key string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("Validate").
		Code(mdwerror.CodeConfigInvalid).
		Messagef("invalid configuration %s=%v: %s", key, value, reason).
		Detail("key", key).
		Detail("value", value).
		Build()
}

// UnknownChoice reports a command argument that names none of choices.
func UnknownChoice(operation, argument, value string, choices []string) *mdwerror.Error {
	return NewErrorBuilder(ModuleCLI).
		Operation(operation).
		Code(mdwerror.CodeInvalidArgument).
		Messagef("unknown %s %q: choose one of %s", argument, value, strings.Join(choices, ", ")).
		Detail("argument", argument).
		Detail("value", value).
		Build()
}

// IsModuleError checks whether err was raised by module.
func IsModuleError(err error, module string) bool {
	return GetErrorModule(err) == module
}

// GetErrorModule returns the module of the outermost structured error.
func GetErrorModule(err error) string {
	if e, ok := mdwerror.AsError(err); ok {
		return e.Module()
	}
	return ""
}

// GetErrorOperation returns the operation of the outermost structured error.
func GetErrorOperation(err error) string {
	if e, ok := mdwerror.AsError(err); ok {
		return e.Operation()
	}
	return ""
}
