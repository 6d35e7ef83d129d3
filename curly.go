// Copyright (c) 2025 The Curly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curly

import (
	"io"
	"os"
)

// stdout is the writer of Print and Println. It is a variable for the tests.
var stdout io.Writer = os.Stdout

// Format renders the format string with the given arguments and returns the
// result.
//
// Placeholders select arguments either all automatically, in order,
//
//	Format("{} and {}", "a", "b")     // "a and b"
//
// or all manually, by index,
//
//	Format("{1} and {0}", "a", "b")   // "b and a"
//
// and a specifier after a colon controls fill, alignment, alternate form,
// width, precision and type:
//
//	Format("{:*^10}", "test")         // "***test***"
//	Format("{:#010b}", 10)            // "0b00001010"
//
// Arguments not selected by any placeholder are ignored. See the package
// documentation for the specifier grammar.
func Format(format string, args ...interface{}) (string, error) {
	b, err := appendFormat(make([]byte, 0, len(format)+16), format, args)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MustFormat is like Format but panics if the rendering fails. It simplifies
// variable initialization with formats known to be well formed.
func MustFormat(format string, args ...interface{}) string {
	s, err := Format(format, args...)
	if err != nil {
		panic(err)
	}
	return s
}

// AppendFormat renders the format string with the given arguments, appends
// the result to dst and returns the extended buffer. If the rendering fails
// it returns dst unchanged and the error.
func AppendFormat(dst []byte, format string, args ...interface{}) ([]byte, error) {
	b, err := appendFormat(dst, format, args)
	if err != nil {
		return dst, err
	}
	return b, nil
}

// Fprint renders the format string with the given arguments and writes the
// result to w. It returns the number of bytes written. Nothing is written if
// the rendering fails.
func Fprint(w io.Writer, format string, args ...interface{}) (int, error) {
	b, err := appendFormat(make([]byte, 0, len(format)+16), format, args)
	if err != nil {
		return 0, err
	}
	return w.Write(b)
}

// Print renders the format string with the given arguments and writes the
// result to the standard output. It returns the number of bytes written.
func Print(format string, args ...interface{}) (int, error) {
	return Fprint(stdout, format, args...)
}

// Println renders the format string with the given arguments and writes the
// result to the standard output followed by a newline. It returns the number
// of bytes written.
func Println(format string, args ...interface{}) (int, error) {
	b, err := appendFormat(make([]byte, 0, len(format)+17), format, args)
	if err != nil {
		return 0, err
	}
	b = append(b, '\n')
	return stdout.Write(b)
}
