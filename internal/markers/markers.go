// Package markers builds the byte patterns searched for in input files.
package markers

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"

	"github.com/vvka-141/pecheck/pkg/pecheck"
)

// Marker is a named byte pattern.
type Marker struct {
	Name    string
	Pattern []byte
}

// ASCII returns a marker whose pattern is text's bytes as-is.
func ASCII(text string) Marker {
	return Marker{Name: text, Pattern: []byte(text)}
}

// UTF16LE returns a marker whose pattern is text encoded as UTF-16
// little-endian without a byte order mark.
func UTF16LE(text string) (Marker, error) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	pattern, err := enc.Bytes([]byte(text))
	if err != nil {
		return Marker{}, fmt.Errorf("failed to encode %q as UTF-16LE: %w", text, err)
	}
	return Marker{Name: text + " (Unicode)", Pattern: pattern}, nil
}

// MustUTF16LE is like UTF16LE but panics on encoding failure.
// Only use it with constant, valid UTF-8 input.
func MustUTF16LE(text string) Marker {
	m, err := UTF16LE(text)
	if err != nil {
		panic(err)
	}
	return m
}

// Index returns the offset of the first occurrence of m in data,
// or pecheck.NotFound.
func (m Marker) Index(data []byte) int {
	return bytes.Index(data, m.Pattern)
}

// Search runs Index and wraps the outcome as a SearchResult.
func (m Marker) Search(data []byte) pecheck.SearchResult {
	return pecheck.SearchResult{Marker: m.Name, Offset: m.Index(data)}
}

var (
	// Rsrc is the ASCII resource section name.
	Rsrc = ASCII(pecheck.RsrcMarker)

	// Build is the ASCII resource type name.
	Build = ASCII(pecheck.BuildMarker)

	// BuildWide is Build as it appears in a resource directory string.
	BuildWide = MustUTF16LE(pecheck.BuildMarker)
)
