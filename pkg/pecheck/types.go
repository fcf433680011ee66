package pecheck

import "fmt"

// ContextMode controls how the context window around a BuildMarker hit is
// bounded when it reaches past the start of the buffer.
type ContextMode string

const (
	// ContextWrap treats a negative lower bound as counting back from the end
	// of the buffer, matching sequence slicing in scripting runtimes.
	ContextWrap ContextMode = "wrap"

	// ContextClamp pins a negative lower bound to zero.
	ContextClamp ContextMode = "clamp"
)

// DefaultContextMode is used when neither flags, environment nor config set one.
const DefaultContextMode = ContextWrap

// ParseContextMode converts s into a ContextMode.
// An empty string yields DefaultContextMode.
func ParseContextMode(s string) (ContextMode, error) {
	switch ContextMode(s) {
	case "":
		return DefaultContextMode, nil
	case ContextWrap, ContextClamp:
		return ContextMode(s), nil
	}
	return "", fmt.Errorf("%w: unknown context mode %q (expected %q or %q)",
		ErrInvalidConfig, s, ContextWrap, ContextClamp)
}

func (m ContextMode) String() string { return string(m) }

// SearchResult is the outcome of one marker search over a buffer.
type SearchResult struct {
	// Marker is the human-readable name of what was searched for.
	Marker string

	// Offset is the zero-based position of the first occurrence,
	// or NotFound.
	Offset int
}

// Found reports whether the search located the marker.
func (r SearchResult) Found() bool {
	return r.Offset != NotFound
}
