package pecheck

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := scanner.Load(path)
//	if errors.Is(err, pecheck.ErrInputAccess) {
//	    // file missing, unreadable, or a directory
//	}
var (
	// ErrInputAccess indicates the input file could not be opened or read.
	ErrInputAccess = errors.New("input access failed")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// usageErrorPatterns are fragments of the messages cobra and pflag produce
// for command line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts 1 arg(s)",
	"missing required argument",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInputAccess):
		return ExitInputError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	}

	errStr := err.Error()
	for _, p := range usageErrorPatterns {
		if strings.Contains(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
