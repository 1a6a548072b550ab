// Package error provides the structured error type shared by every package
// of the stringy module.
//
// Package: error
// Title: Structured Error Handling
// Description: This package implements an error type carrying a code, a
//              severity, the failing operation and free-form details. It
//              stays compatible with errors.Is and errors.As through Unwrap.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-03-02 v0.2.0: Codes for the string value library, errors.As based lookups
//
// Usage:
//
//	import mdwerror "github.com/msto63/stringy/foundation/core/error"
//
//	err := mdwerror.New("index 9 out of range").
//		WithCode(mdwerror.CodeIndexOutOfRange).
//		WithOperation("stringx.Get").
//		WithDetail("index", 9)
//
//	if mdwerror.HasCode(err, mdwerror.CodeIndexOutOfRange) {
//		// handle
//	}
package error
