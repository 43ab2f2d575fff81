// Package font provides seven-segment glyph tables for TM16XX displays.
//
// Each glyph is one byte where bit 0 is segment A and bit 6 is segment G.
// Bit 7 is left clear so callers can OR in the decimal point:
//
//	 -A-
//	F   B
//	 -G-
//	E   C
//	 -D-  .DP
//
// Three tables are provided:
//
// - Default: printable ASCII, indexed from the space character (32)
// - Number: hexadecimal digits 0-F, indexed by value
// - Error: the "Error" banner shown by Dev.SetDisplayToError
//
// Example usage:
//
//	// Segment pattern for 'A'
//	g := font.Default.Char('A')
//
//	// Segment pattern for the value 0xC
//	n := font.Number.At(0xC)
//
// Tables are plain byte slices. Custom fonts can be declared the same way and
// passed to any Dev method that accepts a Font.
package font
