package scanner

import (
	"fmt"
	"io"

	"github.com/vvka-141/pecheck/internal/checksum"
	"github.com/vvka-141/pecheck/internal/files/filesystem"
	"github.com/vvka-141/pecheck/internal/logging"
	"github.com/vvka-141/pecheck/internal/markers"
	"github.com/vvka-141/pecheck/pkg/pecheck"
)

// Scanner searches input files for the resource markers.
type Scanner struct {
	fs       filesystem.FileSystemProvider
	logger   pecheck.Logger
	checksum checksum.Calculator
	mode     pecheck.ContextMode
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the diagnostics logger. The default discards everything.
func WithLogger(l pecheck.Logger) Option {
	return func(s *Scanner) { s.logger = l }
}

// WithContextMode sets how the context window treats a negative lower bound.
func WithContextMode(m pecheck.ContextMode) Option {
	return func(s *Scanner) { s.mode = m }
}

// WithChecksum replaces the calculator used to fingerprint loaded buffers.
func WithChecksum(c checksum.Calculator) Option {
	return func(s *Scanner) { s.checksum = c }
}

// New creates a Scanner reading through fsys.
func New(fsys filesystem.FileSystemProvider, opts ...Option) *Scanner {
	s := &Scanner{
		fs:       fsys,
		logger:   logging.NewNullLogger(),
		checksum: checksum.New(),
		mode:     pecheck.DefaultContextMode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the whole file at path. Any failure wraps pecheck.ErrInputAccess.
func (s *Scanner) Load(path string) (*FileBuffer, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pecheck.ErrInputAccess, err)
	}
	s.logger.Verbose("Loaded %s: %d bytes, sha256 %s", path, len(data), s.checksum.CalculateRaw(data))
	return NewFileBuffer(path, data), nil
}

// Scan runs every marker search over buf. It never fails.
func (s *Scanner) Scan(buf *FileBuffer) *Report {
	data := buf.Bytes()
	r := &Report{
		Path:      buf.Path,
		Rsrc:      markers.Rsrc.Search(data),
		Build:     markers.Build.Search(data),
		BuildWide: markers.BuildWide.Search(data),
	}

	if r.Build.Found() {
		r.Window = ContextWindow(len(data), r.Build.Offset, s.mode)
		r.Context = data[r.Window.Start:r.Window.Stop]
		if r.Window.Wrapped {
			s.logger.Verbose("Context window for %s at offset %d starts before the buffer; "+
				"lower bound wrapped to the end (bytes %d..%d, %d bytes). Use --context-mode=clamp to pin it to 0.",
				pecheck.BuildMarker, r.Build.Offset, r.Window.Start, r.Window.Stop, r.Window.Len())
		}
	}

	s.logger.Verbose("Search results: %s=%d %s=%d %s=%d",
		r.Rsrc.Marker, r.Rsrc.Offset, r.Build.Marker, r.Build.Offset, r.BuildWide.Marker, r.BuildWide.Offset)
	return r
}

// Run loads path, scans it and writes the report to w.
// Nothing is written to w when the input cannot be read.
func (s *Scanner) Run(path string, w io.Writer) error {
	buf, err := s.Load(path)
	if err != nil {
		return err
	}
	if _, err := s.Scan(buf).WriteTo(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
