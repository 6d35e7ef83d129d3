// Copyright (c) 2025 The Curly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curly

import (
	"fmt"
	"strconv"
)

// Error represents an error occurred rendering a format string: a malformed
// placeholder, an argument index that cannot be satisfied or a type specifier
// that does not apply to the value it selects.
//
// The error reports the byte index in the format string at which the problem
// was detected. Rendering stops at the first error; nothing is guaranteed
// about output already produced by the same call.
type Error struct {
	// Format is the format string being rendered.
	Format string
	// Pos is the byte index in Format at which the error was detected.
	Pos int

	msg string
	err error
}

// Error returns a string representation of the error.
func (e *Error) Error() string {
	return "curly: " + e.msg + " at offset " + strconv.Itoa(e.Pos)
}

// Message returns the error message without the "curly:" prefix and the
// position.
func (e *Error) Message() string {
	return e.msg
}

// Unwrap returns the error returned by a FormatCurly method, when the error
// comes from one, otherwise nil.
func (e *Error) Unwrap() error {
	return e.err
}

// formatError returns a new *Error for the format string being rendered,
// positioned at the byte index pos.
func formatError(format string, pos int, msg string, a ...interface{}) *Error {
	if len(a) > 0 {
		msg = fmt.Sprintf(msg, a...)
	}
	return &Error{Format: format, Pos: pos, msg: msg}
}
