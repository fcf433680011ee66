package scanner

// FileBuffer is the complete content of one input file.
// It is never modified after Load returns it.
type FileBuffer struct {
	Path string
	data []byte
}

// NewFileBuffer wraps data read from path.
func NewFileBuffer(path string, data []byte) *FileBuffer {
	return &FileBuffer{Path: path, data: data}
}

// Bytes returns the underlying content. Callers must not modify it.
func (b *FileBuffer) Bytes() []byte { return b.data }

// Len returns the content length in bytes.
func (b *FileBuffer) Len() int { return len(b.data) }
