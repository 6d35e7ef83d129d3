// Copyright (c) 2025 The Curly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curly

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// renderArg renders the argument v according to spec and returns the
// unpadded piece. Errors have no position; the scanner adds it.
//
// Values that implement Formatter render themselves. The other supported
// values are booleans, strings, byte slices, integers, floats, errors and
// values that implement fmt.Stringer. A value of an unsupported type is
// rendered through the kind of its underlying type, if it is one of the
// supported kinds, as a last resort.
func renderArg(v interface{}, spec Spec) (Piece, error) {
	switch v := v.(type) {
	case nil:
		return renderString("<nil>", spec)
	case Formatter:
		return v.FormatCurly(spec)
	case bool:
		return renderBool(v, spec)
	case string:
		return renderString(v, spec)
	case []byte:
		return renderString(string(v), spec)
	case int:
		return renderInt(int64(v), spec)
	case int8:
		return renderInt(int64(v), spec)
	case int16:
		return renderInt(int64(v), spec)
	case int32:
		return renderInt(int64(v), spec)
	case int64:
		return renderInt(v, spec)
	case uint:
		return renderUint(uint64(v), spec)
	case uint8:
		return renderUint(uint64(v), spec)
	case uint16:
		return renderUint(uint64(v), spec)
	case uint32:
		return renderUint(uint64(v), spec)
	case uint64:
		return renderUint(v, spec)
	case uintptr:
		return renderUint(uint64(v), spec)
	case float32:
		return renderFloat(float64(v), 32, spec)
	case float64:
		return renderFloat(v, 64, spec)
	case error:
		return renderString(v.Error(), spec)
	case fmt.Stringer:
		return renderString(v.String(), spec)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return renderBool(rv.Bool(), spec)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return renderInt(rv.Int(), spec)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return renderUint(rv.Uint(), spec)
	case reflect.Float32:
		return renderFloat(rv.Float(), 32, spec)
	case reflect.Float64:
		return renderFloat(rv.Float(), 64, spec)
	case reflect.String:
		return renderString(rv.String(), spec)
	}
	return Piece{}, fmt.Errorf("cannot format value of type %T", v)
}

// renderInt renders a signed integer. The sign is captured apart and the
// magnitude is rendered in the selected base, so -9223372036854775808 is
// exact.
func renderInt(v int64, spec Spec) (Piece, error) {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return renderInteger(v < 0, u, spec)
}

// renderUint renders an unsigned integer.
func renderUint(v uint64, spec Spec) (Piece, error) {
	return renderInteger(false, v, spec)
}

func renderInteger(neg bool, u uint64, spec Spec) (Piece, error) {
	base := 10
	marker := ""
	upper := false
	if t, ok := spec.Type(); ok {
		switch t {
		case 'd':
		case 'b':
			base, marker = 2, "0b"
		case 'B':
			base, marker = 2, "0B"
		case 'o':
			base = 8
		case 'x':
			base, marker = 16, "0x"
		case 'X':
			base, marker, upper = 16, "0X", true
		default:
			return Piece{}, fmt.Errorf("invalid type specifier %q for integer argument", t)
		}
	}
	body := strconv.FormatUint(u, base)
	if upper {
		body = strings.ToUpper(body)
	}
	prefix := ""
	if spec.Alternate() {
		prefix = marker
		// An octal body that already starts with '0', as the body of the
		// value zero does, takes no extra '0' marker.
		if base == 8 && body[0] != '0' {
			prefix = "0"
		}
	}
	sign := ""
	if neg {
		sign = "-"
	}
	return Piece{Sign: sign, Prefix: prefix, Body: body, Numeric: true}, nil
}

// renderFloat renders a floating point value. With the 'f' and 'F' type
// characters the value renders in fixed notation with six digits of default
// precision; with no type character it renders in Go's shortest notation, or
// with the given number of significant digits. Infinities and NaN render as
// "Inf" and "NaN" whatever the precision and the alternate form.
func renderFloat(v float64, bits int, spec Spec) (Piece, error) {
	fixed := false
	if t, ok := spec.Type(); ok {
		switch t {
		case 'f', 'F':
			fixed = true
		default:
			return Piece{}, fmt.Errorf("invalid type specifier %q for float argument", t)
		}
	}
	if math.IsInf(v, 1) {
		return Piece{Sign: "+", Body: "Inf", Numeric: true}, nil
	}
	if math.IsInf(v, -1) {
		return Piece{Sign: "-", Body: "Inf", Numeric: true}, nil
	}
	if math.IsNaN(v) {
		return Piece{Body: "NaN", Numeric: true}, nil
	}
	var body string
	if fixed {
		prec := 6
		if p, ok := spec.Precision(); ok {
			prec = p
		}
		body = strconv.FormatFloat(v, 'f', prec, 64)
		if spec.Alternate() && !strings.Contains(body, ".") {
			body += "."
		}
	} else {
		prec := -1
		if p, ok := spec.Precision(); ok {
			prec = p
		}
		body = strconv.FormatFloat(v, 'g', prec, bits)
	}
	sign := ""
	if body[0] == '-' {
		sign, body = "-", body[1:]
	}
	return Piece{Sign: sign, Body: body, Numeric: true}, nil
}

// renderBool renders a boolean. Booleans accept the 'b' and 's' type
// characters and no precision.
func renderBool(v bool, spec Spec) (Piece, error) {
	if t, ok := spec.Type(); ok && t != 'b' && t != 's' {
		return Piece{}, fmt.Errorf("invalid type specifier %q for bool argument", t)
	}
	if _, ok := spec.Precision(); ok {
		return Piece{}, errors.New("precision not allowed for bool argument")
	}
	return Piece{Body: strconv.FormatBool(v), Numeric: true}, nil
}

// renderString renders a textual value. Width pads a textual value but never
// clips it; a precision is ignored.
func renderString(s string, spec Spec) (Piece, error) {
	if t, ok := spec.Type(); ok && t != 's' {
		return Piece{}, fmt.Errorf("invalid type specifier %q for string argument", t)
	}
	return Piece{Body: s}, nil
}
