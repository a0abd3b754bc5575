// Package filesystem provides filesystem implementations for sheetpick.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and the in-memory filesystem
// used by tests.
package filesystem
