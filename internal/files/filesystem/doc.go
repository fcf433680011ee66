// Package filesystem provides the file-access abstraction the scanner loads
// its input through.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//
// Both return errors wrapping fs.ErrNotExist for missing files and reject
// directories, so callers can classify failures with errors.Is.
package filesystem
