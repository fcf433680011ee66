package scanner

import (
	"bytes"
	"strings"
)

const hexDigits = "0123456789abcdef"

// FormatBytes renders b as a byte-string literal, e.g. b'MZ\x90\x00'.
//
// Printable ASCII is kept. Backslash and the enclosing quote are escaped,
// tab, newline and carriage return use their short escapes, and every other
// byte is written as \xhh. Single quotes enclose the literal unless b
// contains a single quote and no double quote.
func FormatBytes(b []byte) string {
	quote := byte('\'')
	if bytes.IndexByte(b, '\'') >= 0 && bytes.IndexByte(b, '"') < 0 {
		quote = '"'
	}

	var sb strings.Builder
	sb.Grow(len(b) + 3)
	sb.WriteByte('b')
	sb.WriteByte(quote)
	for _, c := range b {
		switch {
		case c == quote || c == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c < ' ' || c >= 0x7f:
			sb.WriteString(`\x`)
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0x0f])
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(quote)
	return sb.String()
}
