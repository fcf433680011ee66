package pecheck_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/pecheck/pkg/pecheck"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, pecheck.ExitSuccess},
		{"unknown flag", errors.New("unknown flag: --foo"), pecheck.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), pecheck.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 2"), pecheck.ExitUsageError},
		{"missing argument", errors.New("missing required argument: <filepath>"), pecheck.ExitUsageError},
		{"input access", pecheck.ErrInputAccess, pecheck.ExitInputError},
		{"wrapped input access", fmt.Errorf("failed to read a.dll: %w", pecheck.ErrInputAccess), pecheck.ExitInputError},
		{"invalid config", fmt.Errorf("bad: %w", pecheck.ErrInvalidConfig), pecheck.ExitConfigError},
		{"general error", errors.New("something went wrong"), pecheck.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pecheck.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
