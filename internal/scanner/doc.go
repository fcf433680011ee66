// Package scanner loads a binary into memory and reports where the resource
// section name and the FX_ASI_BUILD resource type name occur in it.
//
// The scan is a fixed sequence of independent substring searches:
//
//  1. ".rsrc" (ASCII)
//  2. "FX_ASI_BUILD" (ASCII), with a window of surrounding bytes
//  3. "FX_ASI_BUILD" (UTF-16LE)
//
// No PE structure is decoded. A marker that is absent is a normal outcome;
// the only failure is being unable to read the input.
package scanner
