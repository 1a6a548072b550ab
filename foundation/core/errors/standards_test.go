// File: standards_test.go
// Title: Error Standards Tests
// Description: Tests for the builder and the module-scoped constructors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02

package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(mdwerror.SeverityHigh).
			Build()

		if err.Module() != "testmodule" {
			t.Errorf("Module() = %q, want %q", err.Module(), "testmodule")
		}
		if err.Operation() != "testmodule.test_op" {
			t.Errorf("Operation() = %q, want %q", err.Operation(), "testmodule.test_op")
		}
		if err.Details()["key"] != "value" {
			t.Errorf("Details()[key] = %v, want %q", err.Details()["key"], "value")
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Severity() = %v, want %v", err.Severity(), mdwerror.SeverityHigh)
		}
	})

	t.Run("default message", func(t *testing.T) {
		err := NewErrorBuilder("stringx").Operation("Pad").Build()
		if err.Error() != "stringx.Pad failed" {
			t.Errorf("Error() = %q, want %q", err.Error(), "stringx.Pad failed")
		}

		err = NewErrorBuilder("stringx").Build()
		if err.Error() != "stringx operation failed" {
			t.Errorf("Error() = %q, want %q", err.Error(), "stringx operation failed")
		}
	})

	t.Run("cause is wrapped", func(t *testing.T) {
		cause := errors.New("root")
		err := NewErrorBuilder("stringx").Cause(cause).Message("outer").Build()
		if !errors.Is(err, cause) {
			t.Error("errors.Is(err, cause) = false, want true")
		}
	})
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name      string
		err       *mdwerror.Error
		code      mdwerror.Code
		operation string
		contains  string
	}{
		{
			name:      "invalid input",
			err:       InvalidInput("From", []int{1}),
			code:      mdwerror.CodeInvalidInput,
			operation: "stringx.From",
			contains:  "[]int",
		},
		{
			name:      "index out of range",
			err:       IndexOutOfRange("Get", 5, 3),
			code:      mdwerror.CodeIndexOutOfRange,
			operation: "stringx.Get",
			contains:  "index 5 out of range for length 3",
		},
		{
			name:      "immutable violation",
			err:       ImmutableViolation("Set", 0),
			code:      mdwerror.CodeImmutableViolation,
			operation: "stringx.Set",
			contains:  "immutable",
		},
		{
			name:      "invalid argument",
			err:       InvalidArgument("Pad", "side", "middle", "left, right or both"),
			code:      mdwerror.CodeInvalidArgument,
			operation: "stringx.Pad",
			contains:  "invalid side middle",
		},
		{
			name:      "invalid pattern",
			err:       InvalidPattern("Matches", "(", errors.New("missing )")),
			code:      mdwerror.CodeInvalidPattern,
			operation: "stringx.Matches",
			contains:  "invalid pattern: missing )",
		},
		{
			name:      "unsupported encoding",
			err:       EncodingError("NewFromBytes", "klingon", nil),
			code:      mdwerror.CodeEncodingError,
			operation: "stringx.NewFromBytes",
			contains:  `unsupported encoding "klingon"`,
		},
		{
			name:      "missing collaborator",
			err:       MissingCollaborator("RemoveXSS", "Sanitizer"),
			code:      mdwerror.CodeMissingCollaborator,
			operation: "stringx.RemoveXSS",
			contains:  "requires a Sanitizer",
		},
		{
			name:      "config invalid",
			err:       ConfigInvalid("defaults.pad_side", "middle", "unknown side"),
			code:      mdwerror.CodeConfigInvalid,
			operation: "config.Validate",
			contains:  "defaults.pad_side=middle",
		},
		{
			name:      "unknown choice",
			err:       UnknownChoice("case", "style", "kebab", []string{"camelize", "dasherize"}),
			code:      mdwerror.CodeInvalidArgument,
			operation: "cli.case",
			contains:  `unknown style "kebab": choose one of camelize, dasherize`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
			if tt.err.Operation() != tt.operation {
				t.Errorf("Operation() = %q, want %q", tt.err.Operation(), tt.operation)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("Error() = %q, want it to contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}

func TestModuleLookups(t *testing.T) {
	err := fmt.Errorf("cli: %w", IndexOutOfRange("Get", 9, 1))

	if !IsModuleError(err, ModuleStringx) {
		t.Error("IsModuleError(stringx) = false, want true")
	}
	if IsModuleError(err, ModuleConfig) {
		t.Error("IsModuleError(config) = true, want false")
	}
	if got := GetErrorOperation(err); got != "stringx.Get" {
		t.Errorf("GetErrorOperation() = %q, want %q", got, "stringx.Get")
	}
	if got := GetErrorModule(errors.New("plain")); got != "" {
		t.Errorf("GetErrorModule(plain) = %q, want empty", got)
	}
}
