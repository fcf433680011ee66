package filesystem

import (
	"errors"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// ErrIsDirectory is returned when a path names a directory where a regular
// file was expected.
var ErrIsDirectory = errors.New("path is a directory")

// FileSystemProvider reads whole files by path.
type FileSystemProvider interface {
	// ReadFile reads the entire file at path into memory.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)
}
