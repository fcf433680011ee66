// Package logging provides concrete implementations of the pecheck.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes diagnostics to stderr, styling level prefixes when
//     stderr is a terminal
//   - NullLogger: Discards all messages (useful for testing)
//
// Scan results are written to stdout by the scanner and never pass through a
// logger, so redirecting stderr leaves the report intact.
package logging
