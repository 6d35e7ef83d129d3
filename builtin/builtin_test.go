// Copyright (c) 2025 The Curly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package builtin

import (
	"strings"
	"testing"

	"github.com/curlyfmt/curly"
)

var builtinTests = []struct {
	format string
	arg    interface{}
	want   string
}{
	{"{}", RequireDecimal("2.5"), "2.5"},
	{"{}", RequireDecimal("-0.1"), "-0.1"},
	{"{}", RequireDecimal("0"), "0"},
	{"{:f}", RequireDecimal("2.5"), "2.500000"},
	{"{:.2f}", RequireDecimal("3.14159"), "3.14"},
	{"{:.2f}", RequireDecimal("1e-7"), "0.00"},
	{"{:#.0f}", RequireDecimal("3"), "3."},
	{"{:.20f}", RequireDecimal("0.1"), "0.10000000000000000000"}, // exact, unlike a float64
	{"{:012.2f}", RequireDecimal("-1234.5"), "-00001234.50"},
	{"{:>10}", RequireDecimal("2.5"), "       2.5"},

	{"{}", Char('A'), "A"},
	{"{}", Char('π'), "π"},
	{"{:>3}", Char('x'), "  x"},
	{"{:s}", Char('x'), "x"},

	{"{}", Quote("a\tb"), `"a\tb"`},
	{"{}", Quote(""), `""`},
	{"{:>8}", Quote("x"), `     "x"`},
}

func TestBuiltins(t *testing.T) {
	for _, test := range builtinTests {
		got, err := curly.Format(test.format, test.arg)
		if err != nil {
			t.Errorf("format %q of %v: %s", test.format, test.arg, err)
			continue
		}
		if got != test.want {
			t.Errorf("format %q of %v: unexpected %q, expecting %q", test.format, test.arg, got, test.want)
		}
	}
}

var builtinErrorTests = []struct {
	format string
	arg    interface{}
	msg    string
}{
	{"{:x}", RequireDecimal("1"), `invalid type specifier 'x' for decimal argument`},
	{"{:d}", Char('A'), `invalid type specifier 'd' for char argument`},
	{"{:d}", Quote("s"), `invalid type specifier 'd' for quoted argument`},
}

func TestBuiltinErrors(t *testing.T) {
	for _, test := range builtinErrorTests {
		_, err := curly.Format(test.format, test.arg)
		if err == nil {
			t.Errorf("format %q of %v: expecting error, got none", test.format, test.arg)
			continue
		}
		if !strings.Contains(err.Error(), test.msg) {
			t.Errorf("format %q of %v: unexpected error %q, expecting it to contain %q", test.format, test.arg, err, test.msg)
		}
	}
}

func TestNewDecimal(t *testing.T) {
	d, err := NewDecimal("12.5")
	if err != nil {
		t.Fatal(err)
	}
	if got := curly.MustFormat("{:.1f}", d); got != "12.5" {
		t.Fatalf("unexpected %q, expecting %q", got, "12.5")
	}
	if _, err = NewDecimal("not a number"); err == nil {
		t.Fatal("expecting error, got none")
	}
}
