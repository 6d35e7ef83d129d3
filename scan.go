// Copyright (c) 2025 The Curly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curly

import (
	"strconv"
	"strings"
)

// indexingMode is how the placeholders of one call select arguments. The
// first placeholder fixes the mode: "{}" is automatic, "{2}" is manual.
// Mixing the two in the same format string is an error, in both directions.
type indexingMode int8

const (
	indexUnknown indexingMode = iota
	indexAutomatic
	indexManual
)

// renderer is the state of a single rendering call. It is created per call;
// nothing survives the call and there is no package level state.
type renderer struct {
	format string
	args   []interface{}
	mode   indexingMode
	next   int // next automatic argument index
}

// appendFormat renders format with args and appends the result to dst. It is
// the core the exported functions build on. On error dst may have grown by
// already rendered text; the exported functions discard it.
func appendFormat(dst []byte, format string, args []interface{}) ([]byte, error) {
	r := renderer{format: format, args: args}
	for i := 0; i < len(format); {
		switch format[i] {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				dst = append(dst, '{')
				i += 2
				continue
			}
			// The placeholder ends at the first '}': a '{' cannot
			// appear inside one.
			end := strings.IndexByte(format[i+1:], '}')
			if end == -1 {
				return dst, r.errorf(i, "unmatched '{' in format string")
			}
			end += i + 1
			argID, spec, err := parsePlaceholder(format, i+1, format[i+1:end])
			if err != nil {
				return dst, err
			}
			idx, err := r.resolve(argID, i)
			if err != nil {
				return dst, err
			}
			piece, err := renderArg(r.args[idx], spec)
			if err != nil {
				return dst, r.wrap(i, err)
			}
			dst = appendPadded(dst, piece, spec)
			i = end + 1
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				dst = append(dst, '}')
				i += 2
				continue
			}
			return dst, r.errorf(i, "unmatched '}' in format string")
		default:
			j := i + 1
			for j < len(format) && format[j] != '{' && format[j] != '}' {
				j++
			}
			dst = append(dst, format[i:j]...)
			i = j
		}
	}
	return dst, nil
}

// resolve returns the argument index selected by argID, which is empty for an
// automatic placeholder. pos is the byte index of the placeholder's '{'.
func (r *renderer) resolve(argID string, pos int) (int, error) {
	var idx int
	if argID == "" {
		if r.mode == indexManual {
			return 0, r.errorf(pos, "cannot switch from manual to automatic argument indexing")
		}
		r.mode = indexAutomatic
		idx = r.next
		r.next++
	} else {
		if r.mode == indexAutomatic {
			return 0, r.errorf(pos, "cannot switch from automatic to manual argument indexing")
		}
		r.mode = indexManual
		var err error
		idx, err = r.argIndex(argID, pos)
		if err != nil {
			return 0, err
		}
	}
	if idx >= len(r.args) {
		if len(r.args) == 0 {
			return 0, r.errorf(pos, "argument index %d out of bounds (no arguments provided)", idx)
		}
		return 0, r.errorf(pos, "argument index %d out of bounds for %d arguments", idx, len(r.args))
	}
	return idx, nil
}

// argIndex parses a manual argument index. An index is decimal digits only:
// no sign, no spaces, no name.
func (r *renderer) argIndex(argID string, pos int) (int, error) {
	for i := 0; i < len(argID); i++ {
		if !isDigit(argID[i]) {
			return 0, r.errorf(pos, "non-numeric argument index %q", argID)
		}
	}
	n, err := strconv.Atoi(argID)
	if err != nil {
		return 0, r.errorf(pos, "argument index %q out of range", argID)
	}
	return n, nil
}

func (r *renderer) errorf(pos int, msg string, a ...interface{}) *Error {
	return formatError(r.format, pos, msg, a...)
}

// wrap turns an error returned by a renderer or by a FormatCurly method into
// an *Error positioned at the placeholder.
func (r *renderer) wrap(pos int, err error) *Error {
	return &Error{Format: r.format, Pos: pos, msg: err.Error(), err: err}
}
