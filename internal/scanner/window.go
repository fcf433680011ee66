package scanner

import "github.com/vvka-141/pecheck/pkg/pecheck"

// Window is a resolved byte range [Start, Stop) around a hit.
type Window struct {
	Start   int
	Stop    int
	Wrapped bool // lower bound was negative and counted back from the end
}

// Len returns the number of bytes in the window.
func (w Window) Len() int { return w.Stop - w.Start }

// ContextWindow resolves [offset-ContextBefore, offset+ContextAfter) against a
// buffer of length n.
//
// In ContextWrap mode a negative lower bound is taken relative to n, and the
// range is then bounded the way sequence slicing bounds it: an index still
// below zero becomes zero, an index past n becomes n, and a start at or past
// the stop yields an empty window. ContextClamp pins the lower bound to zero.
func ContextWindow(n, offset int, mode pecheck.ContextMode) Window {
	lo := offset - pecheck.ContextBefore
	hi := offset + pecheck.ContextAfter

	var w Window
	if lo < 0 && mode != pecheck.ContextClamp {
		w.Wrapped = true
		lo += n
	}
	w.Start = bound(lo, n)
	w.Stop = bound(hi, n)
	if w.Start > w.Stop {
		w.Start = w.Stop
	}
	return w
}

func bound(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
