// Copyright (c) 2025 The Curly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curly

import (
	"errors"
	"testing"
)

var scanTests = []struct {
	format string
	args   []interface{}
	want   string
}{
	{"", nil, ""},
	{"plain text", nil, "plain text"},
	{"line 1\nline 2", nil, "line 1\nline 2"},
	{"{{", nil, "{"},
	{"}}", nil, "}"},
	{"{{}}", nil, "{}"},
	{"a{{b}}c", nil, "a{b}c"},
	{"{{{}}}", []interface{}{1}, "{1}"},
	{"{}", []interface{}{"a"}, "a"},
	{"{}{}", []interface{}{1, 2}, "12"},
	{"{} and {}", []interface{}{"a", "b"}, "a and b"},
	{"{0}", []interface{}{"a"}, "a"},
	{"{1}, {0}", []interface{}{"zero", "one"}, "one, zero"},
	{"{0} {0}!", []interface{}{"hi"}, "hi hi!"},
	{"{2}", []interface{}{0, 1, 2}, "2"},
	{"né {} né", []interface{}{true}, "né true né"},

	// arguments not selected by a placeholder are ignored
	{"{}", []interface{}{1, 2, 3}, "1"},
	{"{1}", []interface{}{1, 2, 3}, "2"},
	{"no placeholders", []interface{}{1, 2, 3}, "no placeholders"},
}

func TestScan(t *testing.T) {
	for _, test := range scanTests {
		got, err := Format(test.format, test.args...)
		if err != nil {
			t.Errorf("format %q: %s", test.format, err)
			continue
		}
		if got != test.want {
			t.Errorf("format %q: unexpected %q, expecting %q", test.format, got, test.want)
		}
	}
}

var scanErrorTests = []struct {
	format string
	args   []interface{}
	msg    string
	pos    int
}{
	{"{", nil, "unmatched '{' in format string", 0},
	{"a{", nil, "unmatched '{' in format string", 1},
	{"abc{def", nil, "unmatched '{' in format string", 3},
	{"}", nil, "unmatched '}' in format string", 0},
	{"a}b", nil, "unmatched '}' in format string", 1},
	{"{}}", []interface{}{1}, "unmatched '}' in format string", 2},
	{"{}", nil, "argument index 0 out of bounds (no arguments provided)", 0},
	{"{3}", nil, "argument index 3 out of bounds (no arguments provided)", 0},
	{"{1}", []interface{}{"a"}, "argument index 1 out of bounds for 1 arguments", 0},
	{"{} {}", []interface{}{"a"}, "argument index 1 out of bounds for 1 arguments", 3},
	{"{5:>8}", []interface{}{"a", "b"}, "argument index 5 out of bounds for 2 arguments", 0},
	{"{} {0}", []interface{}{"a"}, "cannot switch from automatic to manual argument indexing", 3},
	{"{0} {}", []interface{}{"a"}, "cannot switch from manual to automatic argument indexing", 4},
	{"{0}{}", []interface{}{"a", "b"}, "cannot switch from manual to automatic argument indexing", 3},
	{"{a}", []interface{}{"a"}, `non-numeric argument index "a"`, 0},
	{"{name}", []interface{}{"a"}, `non-numeric argument index "name"`, 0},
	{"{-1}", []interface{}{"a"}, `non-numeric argument index "-1"`, 0},
	{"{ 0}", []interface{}{"a"}, `non-numeric argument index " 0"`, 0},
	{"{0x1}", []interface{}{"a"}, `non-numeric argument index "0x1"`, 0},
	{"{99999999999999999999}", []interface{}{"a"}, `argument index "99999999999999999999" out of range`, 0},
}

func TestScanErrors(t *testing.T) {
	for _, test := range scanErrorTests {
		_, err := Format(test.format, test.args...)
		if err == nil {
			t.Errorf("format %q: expecting error, got none", test.format)
			continue
		}
		var e *Error
		if !errors.As(err, &e) {
			t.Errorf("format %q: unexpected error type %T", test.format, err)
			continue
		}
		if e.Message() != test.msg {
			t.Errorf("format %q: unexpected error %q, expecting %q", test.format, e.Message(), test.msg)
		}
		if e.Pos != test.pos {
			t.Errorf("format %q: unexpected error offset %d, expecting %d", test.format, e.Pos, test.pos)
		}
		if e.Format != test.format {
			t.Errorf("format %q: unexpected error format %q", test.format, e.Format)
		}
	}
}

// The indexing mode is per call: a mode fixed by one call must not leak into
// the next one.
func TestScanModeIsPerCall(t *testing.T) {
	if _, err := Format("{0}", "a"); err != nil {
		t.Fatalf("manual: %s", err)
	}
	if _, err := Format("{}", "a"); err != nil {
		t.Fatalf("automatic after manual: %s", err)
	}
	if _, err := Format("{1} {0}", "a", "b"); err != nil {
		t.Fatalf("manual after automatic: %s", err)
	}
}

func TestErrorString(t *testing.T) {
	_, err := Format("ab{")
	if err == nil {
		t.Fatal("expecting error, got none")
	}
	want := "curly: unmatched '{' in format string at offset 2"
	if err.Error() != want {
		t.Fatalf("unexpected error %q, expecting %q", err.Error(), want)
	}
}
