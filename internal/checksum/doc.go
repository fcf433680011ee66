// Package checksum fingerprints loaded input buffers.
//
// The digest is reported in verbose mode next to the byte count so two runs
// over the same file can be confirmed to have scanned identical content.
package checksum
