// Copyright (c) 2025 The Curly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curly

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Align is the alignment requested by a placeholder.
type Align int8

const (
	AlignNone   Align = iota // no explicit alignment, the value category decides
	AlignLeft                // '<'
	AlignRight               // '>'
	AlignCenter              // '^'
)

// String returns the alignment as it appears in a format specifier. It
// returns an empty string for AlignNone.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "<"
	case AlignRight:
		return ">"
	case AlignCenter:
		return "^"
	}
	return ""
}

// Spec is the parsed specifier of a placeholder, that is the part after the
// colon in "{0:*^#10.3f}". The zero value is the empty specifier, as in "{}"
// or "{:}".
//
// A Spec is passed to the FormatCurly method of values that implement
// Formatter. The fill, alignment and width are applied by the padding engine
// after FormatCurly returns; precision, alternate form and type are for
// FormatCurly to honor or reject.
type Spec struct {
	fill      rune
	align     Align
	alternate bool
	width     int
	precision int
	hasWidth  bool
	hasPrec   bool
	typ       rune
}

// Fill returns the fill character. It returns ' ' if the specifier does not
// set one.
func (s Spec) Fill() rune {
	if s.fill == 0 {
		return ' '
	}
	return s.fill
}

// Align returns the requested alignment, AlignNone if the specifier does not
// set one. With AlignNone numeric values align right and textual values align
// left.
func (s Spec) Align() Align {
	return s.align
}

// Alternate reports whether the specifier has the alternate form flag '#'.
func (s Spec) Alternate() bool {
	return s.alternate
}

// Width returns the minimum field width in characters and whether the
// specifier sets one.
func (s Spec) Width() (int, bool) {
	return s.width, s.hasWidth
}

// Precision returns the precision and whether the specifier sets one.
func (s Spec) Precision() (int, bool) {
	return s.precision, s.hasPrec
}

// Type returns the type character and whether the specifier sets one.
func (s Spec) Type() (rune, bool) {
	return s.typ, s.typ != 0
}

// String returns the specifier in its source form, without the argument
// index, as in "*^#10.3f".
func (s Spec) String() string {
	var b strings.Builder
	if s.fill != 0 && s.fill != ' ' {
		b.WriteRune(s.fill)
	}
	b.WriteString(s.align.String())
	if s.alternate {
		b.WriteByte('#')
	}
	if s.hasWidth {
		b.WriteString(strconv.Itoa(s.width))
	}
	if s.hasPrec {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(s.precision))
	}
	if s.typ != 0 {
		b.WriteRune(s.typ)
	}
	return b.String()
}

// parsePlaceholder parses the interior of a placeholder, that is the text
// between '{' and '}'. It returns the argument index part, which is empty
// for an automatic placeholder, and the parsed specifier. base is the byte
// index of content within format, used for error positions.
//
// The grammar is
//
//	interior  = [ argument ] [ ':' specifier ]
//	specifier = [ [ fill ] align ] [ '#' ] [ width ] [ '.' precision ] [ type ]
//
// where fill is any single character, align is '<', '>' or '^', width and
// precision are decimal digits and type is a single character. A '0' starting
// the width, with no explicit fill, sets the fill to '0'.
func parsePlaceholder(format string, base int, content string) (string, Spec, error) {
	spec := Spec{fill: ' '}
	colon := strings.IndexByte(content, ':')
	if colon == -1 {
		return content, spec, nil
	}
	argID := content[:colon]
	s := content[colon+1:]
	base += colon + 1

	// Fill and alignment. The fill, if any, is the character before the
	// alignment, so look one character ahead.
	i := 0
	explicitFill := false
	if r0, n0 := utf8.DecodeRuneInString(s); n0 > 0 {
		if r1, n1 := utf8.DecodeRuneInString(s[n0:]); n1 > 0 && alignOf(r1) != AlignNone {
			spec.fill = r0
			spec.align = alignOf(r1)
			explicitFill = true
			i = n0 + n1
		} else if a := alignOf(r0); a != AlignNone {
			spec.align = a
			i = n0
		}
	}

	if i < len(s) && s[i] == '#' {
		spec.alternate = true
		i++
	}

	// A '0' starting the width is a shorthand for a '0' fill, unless an
	// explicit fill was given. It still counts as the first width digit.
	if !explicitFill && i+1 < len(s) && s[i] == '0' && isDigit(s[i+1]) {
		spec.fill = '0'
	}

	if i < len(s) && isDigit(s[i]) {
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		w, err := strconv.Atoi(s[start:i])
		if err != nil {
			return "", Spec{}, formatError(format, base+start, "format width out of range")
		}
		spec.width = w
		spec.hasWidth = true
	}

	if i < len(s) && s[i] == '.' {
		dot := i
		i++
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if start == i {
			return "", Spec{}, formatError(format, base+dot, "missing precision digits after '.'")
		}
		p, err := strconv.Atoi(s[start:i])
		if err != nil {
			return "", Spec{}, formatError(format, base+start, "format precision out of range")
		}
		spec.precision = p
		spec.hasPrec = true
	}

	if i < len(s) {
		r, n := utf8.DecodeRuneInString(s[i:])
		spec.typ = r
		i += n
		if i < len(s) {
			return "", Spec{}, formatError(format, base+i, "invalid characters %q at end of format specifier", s[i:])
		}
	}

	return argID, spec, nil
}

// alignOf returns the alignment for an alignment character, AlignNone if r
// is not one.
func alignOf(r rune) Align {
	switch r {
	case '<':
		return AlignLeft
	case '>':
		return AlignRight
	case '^':
		return AlignCenter
	}
	return AlignNone
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
