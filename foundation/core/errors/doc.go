// Package errors provides the module-scoped error constructors used by the
// stringx library, the configuration loader and the CLI.
//
// Package: errors
// Title: Standard Error Constructors
// Description: Builds *mdwerror.Error values that always carry the raising
//              module and operation, so callers can branch on codes and log
//              structured context without parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2025-03-02 v0.2.0: Constructors for the string value error taxonomy
//
// Usage:
//
//	return mdwerrors.IndexOutOfRange("Get", i, v.Len())
//
//	if mdwerrors.IsModuleError(err, mdwerrors.ModuleStringx) {
//		...
//	}
package errors
