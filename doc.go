// Copyright (c) 2025 The Curly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curly renders format strings with brace placeholders, in the style
// of the formatting mini languages of Rust and Python.
//
//	s, err := curly.Format("{} scored {:.1f} points", "ada", 9.75)
//	// s == "ada scored 9.8 points"
//
// A placeholder is written between braces. Literal braces are escaped by
// doubling them: "{{" renders as "{" and "}}" renders as "}".
//
// # Selecting arguments
//
// An empty placeholder "{}" selects the next argument, left to right. A
// placeholder with an index, as "{2}", selects that argument. A format
// string uses one style or the other: mixing automatic and manual
// placeholders is an error. Arguments no placeholder selects are ignored.
//
// # The specifier
//
// The text after a colon in a placeholder is the specifier:
//
//	{ [ argument ] [ ':' [ [ fill ] align ] [ '#' ] [ width ] [ '.' precision ] [ type ] ] }
//
// align is '<' (left), '>' (right) or '^' (center); fill is any single
// character and defaults to a space. A value narrower than width is padded
// with the fill character on the side the alignment leaves free; numeric
// values align right by default, textual values left. A width never
// truncates: a value wider than the field renders whole.
//
// A '0' before the width digits, with no explicit fill, zero fills the
// value: the padding goes between the sign, or the base prefix, and the
// digits.
//
//	curly.Format("{:08}", -10)    // "-0000010"
//	curly.Format("{:#010b}", 10)  // "0b00001010"
//
// The type character selects the notation. Integers accept 'd' (decimal,
// the default), 'b' and 'B' (binary), 'o' (octal), 'x' and 'X'
// (hexadecimal); with the alternate form flag '#' they take the "0b", "0B",
// "0", "0x" or "0X" prefix. Floats accept 'f' and 'F', fixed notation with
// a default precision of six digits; with no type character a float renders
// in its shortest form, or with precision significant digits. Booleans
// render as "true" and "false" and accept 'b' and 's'. Strings accept 's'
// and ignore the precision.
//
// # Rendering other types
//
// A value that implements the Formatter interface renders itself. Errors
// and values that implement fmt.Stringer render as strings. Any other value
// whose underlying type is a boolean, integer, float or string renders as
// that kind; the remaining types are a rendering error.
//
// # Errors
//
// All errors are of type *Error and carry the byte index of the offending
// placeholder. Rendering stops at the first error: Format returns an empty
// string, AppendFormat returns the buffer unchanged and Fprint writes
// nothing.
package curly
