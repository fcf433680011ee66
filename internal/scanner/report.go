package scanner

import (
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/pecheck/pkg/pecheck"
)

// Report holds the outcome of one scan in output order.
type Report struct {
	Path      string
	Rsrc      pecheck.SearchResult
	Build     pecheck.SearchResult
	BuildWide pecheck.SearchResult

	// Window and Context are set only when Build was found.
	Window  Window
	Context []byte
}

// Lines renders the report as diagnostic lines without terminators.
func (r *Report) Lines() []string {
	lines := make([]string, 0, 4)

	if r.Rsrc.Found() {
		lines = append(lines, fmt.Sprintf("Found %s at offset %d", pecheck.RsrcMarker, r.Rsrc.Offset))
	} else {
		lines = append(lines, fmt.Sprintf("No %s section found", pecheck.RsrcMarker))
	}

	if r.Build.Found() {
		lines = append(lines,
			fmt.Sprintf("Found %s at offset %d", pecheck.BuildMarker, r.Build.Offset),
			"Context: "+FormatBytes(r.Context),
		)
	} else {
		lines = append(lines, fmt.Sprintf("%s not found in file", pecheck.BuildMarker))
	}

	// The wide form only ever reports a hit.
	if r.BuildWide.Found() {
		lines = append(lines, fmt.Sprintf("Found %s (Unicode) at offset %d", pecheck.BuildMarker, r.BuildWide.Offset))
	}

	return lines
}

// WriteTo writes the rendered lines to w, each terminated by a newline.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for _, line := range r.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}
