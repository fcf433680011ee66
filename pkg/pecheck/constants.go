package pecheck

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Scan completed, whether or not markers were found
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitInputError   = 10 // Input file missing or unreadable
	ExitConfigError  = 11 // Invalid configuration
)

const (
	// RsrcMarker is the ASCII name of the PE resource section.
	RsrcMarker = ".rsrc"

	// BuildMarker is the resource type name searched for in both ASCII
	// and UTF-16LE form.
	BuildMarker = "FX_ASI_BUILD"

	// ContextBefore is the number of bytes shown before a BuildMarker hit.
	ContextBefore = 20

	// ContextAfter is the number of bytes, counted from the start of the hit,
	// that end the context window.
	ContextAfter = 50

	// NotFound is the offset reported by a search that found nothing.
	NotFound = -1

	// ConfigFileName is the implicit configuration file looked up in the
	// working directory.
	ConfigFileName = "pecheck.yaml"
)
