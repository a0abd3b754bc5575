package testutil

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"

	"github.com/sheetpick/sheetpick/pkg/filesystem"
	"github.com/sheetpick/sheetpick/pkg/types"
)

// MemoryFS returns an in-memory filesystem seeded with the given files.
// Keys are absolute paths; parent directories are created as needed.
func MemoryFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()

	fsys := filesystem.NewMemory()
	for path, content := range files {
		WriteFS(t, fsys, path, content)
	}
	return fsys
}

// WriteFS writes content to path on fsys, creating parent directories
// as needed. It fails the test if the write fails.
func WriteFS(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

// ReadFS reads path from fsys and returns its content as a string. It
// fails the test if the file cannot be read.
func ReadFS(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	data, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}

// ReadCSV reads path from fsys and parses it as CSV rows. It fails the
// test if the file cannot be read or parsed.
func ReadCSV(t *testing.T, fsys types.FS, path string) [][]string {
	t.Helper()

	data, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV %s: %v", path, err)
	}
	return rows
}

// Exists reports whether path exists on fsys.
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}
