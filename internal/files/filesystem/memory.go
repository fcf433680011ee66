package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// MemoryFileSystem implements FileSystemProvider over an in-memory map.
// Safe for concurrent use.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool
}

// NewMemoryFileSystem creates an empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// AddFile stores a copy of content at name and registers its parent directories.
func (m *MemoryFileSystem) AddFile(name string, content []byte) {
	name = path.Clean(name)
	buf := make([]byte, len(content))
	copy(buf, content)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[name] = buf
	for dir := path.Dir(name); dir != "." && dir != "/"; dir = path.Dir(dir) {
		m.dirs[dir] = true
	}
}

// AddDir registers an empty directory.
func (m *MemoryFileSystem) AddDir(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path.Clean(name)] = true
}

func (m *MemoryFileSystem) ReadFile(name string) ([]byte, error) {
	name = path.Clean(name)

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.dirs[name] {
		return nil, fmt.Errorf("%s: %w", name, ErrIsDirectory)
	}
	content, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

func (m *MemoryFileSystem) Stat(name string) (FileInfo, error) {
	name = path.Clean(name)

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.dirs[name] {
		return &memoryFileInfo{name: path.Base(name), mode: fs.ModeDir | 0755, isDir: true}, nil
	}
	content, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return &memoryFileInfo{name: path.Base(name), size: int64(len(content)), mode: 0644}, nil
}
