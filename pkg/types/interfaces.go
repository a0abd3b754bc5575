package types

import (
	"io"
	"io/fs"
	"path/filepath"
)

// FS is the filesystem interface required for sheetpick operations.
// The production implementation wraps the OS filesystem; tests use an
// in-memory implementation.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
	OpenFile(name string, flag int, perm fs.FileMode) (io.WriteCloser, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Chmod(name string, mode fs.FileMode) error
	Remove(name string) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Walk traverses the tree rooted at root in lexical order.
	// The walk function may return filepath.SkipDir to prune directories.
	Walk(root string, fn filepath.WalkFunc) error
}
