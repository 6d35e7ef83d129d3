// Copyright (c) 2025 The Curly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curly

import "unicode/utf8"

// appendPadded appends the piece p to dst, laid out in the field that spec
// describes. Width is a minimum measured in characters, not bytes; a piece
// that does not fit is appended whole, never clipped.
//
// A '0' fill with a numeric piece and right alignment puts the padding
// between sign+prefix and the body, so "-10" in width 8 becomes "-0000010"
// and not "00000-10". With left or center alignment the '0' fill behaves
// like any other fill character.
func appendPadded(dst []byte, p Piece, spec Spec) []byte {
	width, ok := spec.Width()
	if !ok {
		return appendPiece(dst, p)
	}
	total := utf8.RuneCountInString(p.Sign) + utf8.RuneCountInString(p.Prefix) + utf8.RuneCountInString(p.Body)
	if total >= width {
		return appendPiece(dst, p)
	}
	pad := width - total
	align := spec.Align()
	if align == AlignNone {
		if p.Numeric {
			align = AlignRight
		} else {
			align = AlignLeft
		}
	}
	fill := spec.Fill()
	if fill == '0' && p.Numeric && align == AlignRight {
		dst = append(dst, p.Sign...)
		dst = append(dst, p.Prefix...)
		dst = appendFill(dst, '0', pad)
		return append(dst, p.Body...)
	}
	switch align {
	case AlignLeft:
		dst = appendPiece(dst, p)
		dst = appendFill(dst, fill, pad)
	case AlignRight:
		dst = appendFill(dst, fill, pad)
		dst = appendPiece(dst, p)
	case AlignCenter:
		dst = appendFill(dst, fill, pad/2)
		dst = appendPiece(dst, p)
		dst = appendFill(dst, fill, pad-pad/2)
	}
	return dst
}

// appendPiece appends sign, prefix and body, in this order, to dst.
func appendPiece(dst []byte, p Piece) []byte {
	dst = append(dst, p.Sign...)
	dst = append(dst, p.Prefix...)
	return append(dst, p.Body...)
}

func appendFill(dst []byte, fill rune, n int) []byte {
	if fill < utf8.RuneSelf {
		for i := 0; i < n; i++ {
			dst = append(dst, byte(fill))
		}
		return dst
	}
	for i := 0; i < n; i++ {
		dst = utf8.AppendRune(dst, fill)
	}
	return dst
}
