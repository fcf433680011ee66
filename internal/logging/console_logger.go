package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	verbosePrefix = "[VERBOSE]"
	errorPrefix   = "[ERROR]"
)

// ConsoleLogger writes log messages to a writer, stderr by default.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	out     io.Writer
	verbose bool
	styled  bool
	mu      sync.Mutex
}

// NewConsoleLogger creates a ConsoleLogger on stderr.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		out:     os.Stderr,
		verbose: verbose,
		styled:  stderrStyled(),
	}
}

// NewWriterLogger creates an unstyled ConsoleLogger on w.
func NewWriterLogger(w io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		out:     w,
		verbose: verbose,
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.prefix(verbosePrefix, true), format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.prefix(errorPrefix, false), format, args)
}

func (l *ConsoleLogger) prefix(p string, verbose bool) string {
	if !l.styled {
		return p + " "
	}
	if verbose {
		return verboseStyle.Render(p) + " "
	}
	return errorStyle.Render(p) + " "
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.out, prefix+msg+"\n")
}
