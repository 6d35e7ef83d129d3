// Copyright (c) 2025 The Curly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package builtin provides value types that render themselves through the
// curly package: arbitrary precision decimals, characters, quoted strings
// and times.
//
// For example, to render a price with an exact number of decimals
//
//	price := builtin.RequireDecimal("129.9")
//	s, err := curly.Format("{:.2f} EUR", price)  // "129.90 EUR"
//
// and to render a rune as a character instead of a number
//
//	curly.MustFormat("{}", 'A')               // "65"
//	curly.MustFormat("{}", builtin.Char('A')) // "A"
package builtin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/curlyfmt/curly"
	"github.com/shopspring/decimal"
)

// Decimal wraps a decimal.Decimal so that it renders with the float rules:
// 'f' and 'F' select fixed notation with a default precision of six digits.
// Unlike a float argument the digits are exact, whatever the precision.
type Decimal struct {
	decimal.Decimal
}

// NewDecimal returns the Decimal for a string in decimal notation, with an
// optional exponent as in "1.2e-3".
func NewDecimal(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{d}, nil
}

// RequireDecimal is like NewDecimal but panics if the string is not a valid
// decimal. It simplifies variable initialization.
func RequireDecimal(s string) Decimal {
	return Decimal{decimal.RequireFromString(s)}
}

// FormatCurly implements curly.Formatter.
func (d Decimal) FormatCurly(spec curly.Spec) (curly.Piece, error) {
	fixed := false
	if t, ok := spec.Type(); ok {
		if t != 'f' && t != 'F' {
			return curly.Piece{}, fmt.Errorf("invalid type specifier %q for decimal argument", t)
		}
		fixed = true
	}
	abs := d.Abs()
	var body string
	p, hasPrec := spec.Precision()
	switch {
	case hasPrec:
		body = abs.StringFixed(int32(p))
	case fixed:
		body = abs.StringFixed(6)
	default:
		body = abs.String()
	}
	if fixed && spec.Alternate() && !strings.Contains(body, ".") {
		body += "."
	}
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return curly.Piece{Sign: sign, Body: body, Numeric: true}, nil
}

// Char renders a rune as a character. A bare rune argument is an int32 and
// renders as a number.
type Char rune

// FormatCurly implements curly.Formatter.
func (c Char) FormatCurly(spec curly.Spec) (curly.Piece, error) {
	if t, ok := spec.Type(); ok && t != 's' {
		return curly.Piece{}, fmt.Errorf("invalid type specifier %q for char argument", t)
	}
	return curly.Piece{Body: string(rune(c))}, nil
}

// Quote renders a string in Go quoted form, as strconv.Quote does.
type Quote string

// FormatCurly implements curly.Formatter.
func (q Quote) FormatCurly(spec curly.Spec) (curly.Piece, error) {
	if t, ok := spec.Type(); ok && t != 's' {
		return curly.Piece{}, fmt.Errorf("invalid type specifier %q for quoted argument", t)
	}
	return curly.Piece{Body: strconv.Quote(string(q))}, nil
}
