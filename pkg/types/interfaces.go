package types

import (
	"io/fs"
)

// FS is the filesystem surface the settings store needs for its backing file.
// Every call opens, reads or writes, and closes the file before returning.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
}
