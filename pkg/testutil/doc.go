// Package testutil provides shared test fixtures for sheetpick.
//
// The helpers build file trees on either the real filesystem or an
// in-memory types.FS, and read back the files and CSV reports that
// tests assert on. Every helper fails the calling test on error.
package testutil
