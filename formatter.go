// Copyright (c) 2025 The Curly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curly

// Piece is the rendered but not yet padded form of an argument. The padding
// engine lays out the three parts, in order sign, prefix and body, inside the
// field width.
//
// Keeping the sign and the base prefix apart from the body is what makes
// zero filling work: with a '0' fill and right alignment the padding goes
// between the prefix and the body, as in "-0001010" or "0b00001010", instead
// of pushing the sign inside the field.
type Piece struct {
	// Sign is "-", "+" or empty.
	Sign string
	// Prefix is a base or alternate form marker such as "0x", or empty.
	Prefix string
	// Body is the digits or text of the value.
	Body string
	// Numeric reports whether the value is number-like. Numeric pieces
	// align right by default and take part in zero filling; textual pieces
	// align left and are zero filled mechanically.
	Numeric bool
}

// Formatter is implemented by values that render themselves. FormatCurly
// receives the parsed specifier of the placeholder that selected the value
// and returns the unpadded piece.
//
// FormatCurly is responsible for the precision, the alternate form and the
// type character of the specifier, including rejecting a type character that
// does not apply to the value. Fill, alignment and width are applied to the
// returned piece by the caller.
type Formatter interface {
	FormatCurly(spec Spec) (Piece, error)
}
